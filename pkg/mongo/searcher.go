package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/clinickit/pkg/search"
)

// Finder is satisfied by *mongo.Collection.
type Finder interface {
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
}

// Query describes a case-insensitive substring search over a collection.
type Query struct {
	// Fields matched with a quoted, case-insensitive regex and joined with $or.
	Fields []string
	Limit  int64
	// Sort field; a leading "-" sorts descending.
	Sort string
}

// Filter builds the find filter for term. A blank term matches everything.
func (q Query) Filter(term string) (bson.D, error) {
	if len(q.Fields) == 0 {
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidQuery)
	}
	term = strings.TrimSpace(term)
	if term == "" {
		return bson.D{}, nil
	}

	re := bson.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
	or := make(bson.A, 0, len(q.Fields))
	for _, f := range q.Fields {
		or = append(or, bson.D{{Key: f, Value: re}})
	}
	return bson.D{{Key: "$or", Value: or}}, nil
}

func (q Query) findOptions() *options.FindOptionsBuilder {
	opts := options.Find()
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	if q.Sort != "" {
		field, desc := strings.CutPrefix(q.Sort, "-")
		dir := 1
		if desc {
			dir = -1
		}
		opts.SetSort(bson.D{{Key: field, Value: dir}})
	}
	return opts
}

// NewSearcher returns a search.Searcher that runs q against coll and decodes
// documents into T with the bson codec.
func NewSearcher[T any](coll Finder, q Query) (search.Searcher[T], error) {
	if coll == nil {
		return nil, fmt.Errorf("%w: nil collection", ErrInvalidQuery)
	}
	if _, err := q.Filter(""); err != nil {
		return nil, err
	}

	return func(ctx context.Context, term string) ([]T, error) {
		filter, err := q.Filter(term)
		if err != nil {
			return nil, err
		}
		cur, err := coll.Find(ctx, filter, q.findOptions())
		if err != nil {
			return nil, errors.Join(ErrSearchFailed, err)
		}
		out := []T{}
		if err := cur.All(ctx, &out); err != nil {
			return nil, errors.Join(ErrSearchFailed, err)
		}
		return out, nil
	}, nil
}
