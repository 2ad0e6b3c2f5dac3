package opensearch

import (
	"context"
	"errors"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
)

// Healthcheck returns a probe that calls the cluster info endpoint.
// A non-2xx answer counts as unhealthy.
func Healthcheck(t opensearchapi.Transport) func(context.Context) error {
	return func(ctx context.Context) error {
		resp, err := opensearchapi.InfoRequest{ErrorTrace: true}.Do(ctx, t)
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		defer resp.Body.Close()
		if resp.IsError() {
			return fmt.Errorf("%w: %s", ErrHealthcheckFailed, resp.Status())
		}
		return nil
	}
}
