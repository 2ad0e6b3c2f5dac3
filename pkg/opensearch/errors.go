package opensearch

import "errors"

var (
	ErrConnectionFailed  = errors.New("opensearch: connection failed")
	ErrNoAddresses       = errors.New("opensearch: no addresses configured")
	ErrHealthcheckFailed = errors.New("opensearch: healthcheck failed")
	ErrInvalidQuery      = errors.New("opensearch: invalid search query")
	ErrSearchFailed      = errors.New("opensearch: search request failed")
)
