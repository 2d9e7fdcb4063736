// Package errs defines the generic error kinds shared by the domain, the use
// cases and the adapters of the ordering service.
//
// Every kind is a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ErrValueIsOutOfRange, ErrValueIsRequired, ErrVersionIsInvalid) plus a struct
// carrying the details. The struct unwraps to its sentinel, so callers branch
// with errors.Is and read details with errors.As:
//
//	var notFound *errs.ObjectNotFoundError
//	if errors.As(err, &notFound) {
//	    logger.Info("order missing", "id", notFound.ID)
//	}
//
// The HTTP adapter maps ErrObjectNotFound to 404 and the value errors to 400.
package errs
