// Package errs holds the validation and lookup errors shared by the domain,
// the use cases and the adapters.
//
// Every error type pairs a sentinel with a detail struct:
//   - ValueIsRequiredError wraps ErrValueIsRequired
//   - ValueIsInvalidError wraps ErrValueIsInvalid
//   - ValueIsOutOfRangeError wraps ErrValueIsOutOfRange
//   - ObjectNotFoundError wraps ErrObjectNotFound
//
// Unwrap returns the sentinel only, so callers classify with errors.Is
// (the HTTP adapter maps ErrObjectNotFound to 404 and the rest to 400) and
// read the parameter name or cause through errors.As.
//
//	if err := qty.Validate(); err != nil {
//	    return errs.NewValueIsInvalidErrorWithCause("quantity", err)
//	}
package errs
