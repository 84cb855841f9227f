package ports

import "context"

// Locker grants exclusive access to a named resource.
type Locker interface {
	// Lock blocks until the key is free or ctx is done. The returned function
	// releases the lock and is safe to call more than once.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
