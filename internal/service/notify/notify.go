// Package notify fans a stored submission out to side channels (log
// line, owner email, owner SMS). Delivery is best effort by design:
// no channel failure may ever fail the submission that triggered it.
package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SatyaSire/corporatepm/pkg/reqctx"
	"github.com/SatyaSire/corporatepm/pkg/supabase"
)

// Channel is one independent notification target.
type Channel interface {
	Name() string
	Send(ctx context.Context, sub supabase.Submission) error
}

type Service interface {
	// Notify delivers sub to every channel. Failures are logged and
	// discarded per channel; the call itself cannot fail.
	Notify(ctx context.Context, sub supabase.Submission)
}

type service struct {
	channels []Channel
}

func New(channels ...Channel) Service {
	return &service{channels: channels}
}

func (s *service) Notify(ctx context.Context, sub supabase.Submission) {
	for _, ch := range s.channels {
		// Each channel is wrapped individually so one failure cannot
		// short-circuit the rest of the fan-out.
		if err := send(ctx, ch, sub); err != nil {
			slog.WarnContext(ctx, "notification channel failed",
				"channel", ch.Name(),
				"submission_id", sub.ID,
				"request_id", reqctx.RequestIDFromContext(ctx),
				"error", err,
			)
		}
	}
}

func send(ctx context.Context, ch Channel, sub supabase.Submission) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("channel panicked: %v", r)
		}
	}()
	return ch.Send(ctx, sub)
}
