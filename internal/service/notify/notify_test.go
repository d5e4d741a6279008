package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/SatyaSire/corporatepm/pkg/supabase"
)

type recordingChannel struct {
	name   string
	err    error
	panics bool
	calls  int
}

func (c *recordingChannel) Name() string { return c.name }

func (c *recordingChannel) Send(ctx context.Context, sub supabase.Submission) error {
	c.calls++
	if c.panics {
		panic("smtp client blew up")
	}
	return c.err
}

func TestNotify_AllChannelsAttempted(t *testing.T) {
	a := &recordingChannel{name: "a"}
	b := &recordingChannel{name: "b", err: errors.New("send failed")}
	c := &recordingChannel{name: "c"}

	New(a, b, c).Notify(context.Background(), supabase.Submission{ID: "sub-1"})

	for _, ch := range []*recordingChannel{a, b, c} {
		if ch.calls != 1 {
			t.Errorf("channel %s called %d times, want 1", ch.name, ch.calls)
		}
	}
}

func TestNotify_PanicDoesNotStopFanOut(t *testing.T) {
	bad := &recordingChannel{name: "email", panics: true}
	after := &recordingChannel{name: "sms"}

	// Must not panic, and the later channel must still run.
	New(bad, after).Notify(context.Background(), supabase.Submission{ID: "sub-1"})

	if after.calls != 1 {
		t.Errorf("channel after the panicking one called %d times, want 1", after.calls)
	}
}

func TestNotify_NoChannels(t *testing.T) {
	// Degenerate wiring must be a no-op, not a crash.
	New().Notify(context.Background(), supabase.Submission{})
}
