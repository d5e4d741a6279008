package supabase

import (
	"errors"
	"fmt"
)

// ErrNoServiceKey means a privileged call was attempted without a
// service-role key configured.
var ErrNoServiceKey = errors.New("supabase: service role key not configured")

// StoreError is returned for any transport or store-side failure.
// Callers should treat the write as not having happened.
type StoreError struct {
	Op     string // "insert", "list" or "ping"
	Status int    // HTTP status from the store, 0 on transport errors
	Err    error
}

func (e *StoreError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("supabase: %s failed (status %d): %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("supabase: %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
