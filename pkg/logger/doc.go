// Package logger builds *slog.Logger values for clinickit services and
// libraries and provides attribute helpers with consistent key names.
//
// New creates a JSON or text handler, applies static attributes and wraps the
// handler with LogHandlerDecorator, which injects values pulled from
// context.Context (request ids, tenant ids) into every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "admin-dashboard"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.ErrorContext(ctx, "patient search failed",
//	    logger.Component("search"),
//	    logger.Term(term),
//	    logger.Error(err),
//	)
//
// Term logs only the length of a search term. Search input typed by staff is
// mostly patient names, phone numbers and identity numbers.
//
// Error and Errors return an empty Attr for nil errors, so they can be passed
// unconditionally.
package logger
