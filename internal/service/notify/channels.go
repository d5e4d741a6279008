package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/SatyaSire/corporatepm/pkg/email"
	"github.com/SatyaSire/corporatepm/pkg/sms"
	"github.com/SatyaSire/corporatepm/pkg/supabase"
)

// ---------------------------------------------------------------------------
// Log channel
// ---------------------------------------------------------------------------

// LogChannel writes a structured line for every submission. Always on;
// it is the fallback record when email/SMS are disabled.
type LogChannel struct{}

func (LogChannel) Name() string { return "log" }

func (LogChannel) Send(ctx context.Context, sub supabase.Submission) error {
	slog.InfoContext(ctx, "new contact form submission",
		"id", sub.ID,
		"name", sub.Name,
		"email", sub.Email,
		"mobile", sub.Mobile,
		"company", deref(sub.Company),
		"role", deref(sub.Role),
		"project_type", deref(sub.ProjectType),
		"timeline", deref(sub.Timeline),
		"budget", deref(sub.Budget),
		"message", sub.Message,
	)
	return nil
}

// ---------------------------------------------------------------------------
// Email channel
// ---------------------------------------------------------------------------

// EmailChannel mails the site owner about a new submission.
type EmailChannel struct {
	Client *email.Client
	To     string
}

func (EmailChannel) Name() string { return "email" }

func (c EmailChannel) Send(ctx context.Context, sub supabase.Submission) error {
	if !c.Client.IsEnabled() || c.To == "" {
		return nil
	}
	msg, err := email.NewSubmissionMessage(c.To, email.SubmissionDetails{
		Name:        sub.Name,
		Email:       sub.Email,
		Mobile:      sub.Mobile,
		Company:     deref(sub.Company),
		Role:        deref(sub.Role),
		ProjectType: deref(sub.ProjectType),
		Timeline:    deref(sub.Timeline),
		Budget:      deref(sub.Budget),
		Message:     sub.Message,
		SubmittedAt: sub.CreatedAt.Format(time.RFC1123),
	})
	if err != nil {
		return err
	}
	return c.Client.Send(ctx, msg)
}

// ---------------------------------------------------------------------------
// SMS channel
// ---------------------------------------------------------------------------

// SMSChannel texts the site owner that someone reached out.
type SMSChannel struct {
	Client     *sms.Client
	Mobile     string
	TemplateID string
}

func (SMSChannel) Name() string { return "sms" }

func (c SMSChannel) Send(ctx context.Context, sub supabase.Submission) error {
	if !c.Client.IsEnabled() || c.Mobile == "" {
		return nil
	}
	return c.Client.SendAlert(ctx, c.Mobile, c.TemplateID, sub.Name)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
