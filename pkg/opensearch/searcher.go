package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/dmitrymomot/clinickit/pkg/search"
)

// Query describes a prefix-tolerant full text search over one index.
type Query struct {
	Index string
	// Fields searched with multi_match. Boosts like "full_name^2" are allowed.
	Fields []string
	Size   int
	// Sort entries such as "full_name.keyword:asc".
	Sort []string
}

// Body renders the request body for term. A blank term matches all documents.
func (q Query) Body(term string) ([]byte, error) {
	if q.Index == "" {
		return nil, fmt.Errorf("%w: index is required", ErrInvalidQuery)
	}
	if len(q.Fields) == 0 {
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidQuery)
	}

	var query map[string]any
	if term = strings.TrimSpace(term); term == "" {
		query = map[string]any{"match_all": map[string]any{}}
	} else {
		query = map[string]any{
			"multi_match": map[string]any{
				"query":  term,
				"type":   "phrase_prefix",
				"fields": q.Fields,
			},
		}
	}
	return json.Marshal(map[string]any{"query": query})
}

type searchResponse[T any] struct {
	Hits struct {
		Hits []struct {
			Source T `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// NewSearcher returns a search.Searcher that queries q.Index and decodes each
// hit's _source into T.
func NewSearcher[T any](t opensearchapi.Transport, q Query) (search.Searcher[T], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil transport", ErrInvalidQuery)
	}
	if _, err := q.Body(""); err != nil {
		return nil, err
	}

	return func(ctx context.Context, term string) ([]T, error) {
		body, err := q.Body(term)
		if err != nil {
			return nil, err
		}
		req := opensearchapi.SearchRequest{
			Index: []string{q.Index},
			Body:  bytes.NewReader(body),
			Sort:  q.Sort,
		}
		if q.Size > 0 {
			req.Size = &q.Size
		}

		resp, err := req.Do(ctx, t)
		if err != nil {
			return nil, errors.Join(ErrSearchFailed, err)
		}
		defer resp.Body.Close()

		if resp.IsError() {
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("%w: %s: %s", ErrSearchFailed, resp.Status(), bytes.TrimSpace(msg))
		}

		var decoded searchResponse[T]
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return nil, errors.Join(ErrSearchFailed, err)
		}
		out := make([]T, 0, len(decoded.Hits.Hits))
		for _, hit := range decoded.Hits.Hits {
			out = append(out, hit.Source)
		}
		return out, nil
	}, nil
}
