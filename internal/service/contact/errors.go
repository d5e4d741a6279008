package contact

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrStore is returned when the remote store rejected or could not be
// reached. Details are logged, never surfaced to the caller.
var ErrStore = errors.New("submission store unavailable")

// ValidationError describes a rejected payload. Message is the first
// structural reason in check order (required fields, then email
// format, then mobile format); Fields maps each failing field to a
// human-readable reason.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		parts = append(parts, f)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s (fields: %s)", e.Message, strings.Join(parts, ", "))
}
