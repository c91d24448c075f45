// Package errs holds the error types shared by the domain, the use cases and
// the adapters of the shop service.
//
// Every type comes in three parts: a sentinel (ErrValueIsRequired,
// ErrValueIsInvalid, ErrValueIsOutOfRange, ErrObjectNotFound, ErrPersistence),
// a struct carrying the details, and New...Error / New...ErrorWithCause
// constructors. Unwrap exposes the sentinel and the cause, so callers match
// with errors.Is and read details with errors.As:
//
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return ctx.NoContent(http.StatusNotFound)
//	}
//
// PersistenceError wraps datastore faults. Absence is never reported through
// it; repositories return ObjectNotFoundError instead.
package errs
