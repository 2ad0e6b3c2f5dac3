package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("mongo: failed to connect")
	ErrEmptyConnectionURL     = errors.New("mongo: empty connection URL")
	ErrHealthcheckFailed      = errors.New("mongo: healthcheck failed")
	ErrInvalidQuery           = errors.New("mongo: invalid search query")
	ErrSearchFailed           = errors.New("mongo: search failed")
)
