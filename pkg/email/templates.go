package email

import (
	"fmt"
	"html/template"
	"strings"
)

// SubmissionDetails carries the fields rendered into the owner
// notification email. Optional fields render as "Not provided".
type SubmissionDetails struct {
	Name        string
	Email       string
	Mobile      string
	Company     string
	Role        string
	ProjectType string
	Timeline    string
	Budget      string
	Message     string
	SubmittedAt string
}

var submissionTmpl = template.Must(template.New("submission").Funcs(template.FuncMap{
	"orDefault": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "Not provided"
		}
		return s
	},
}).Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Mobile:</strong> {{.Mobile}}</p>
<p><strong>Company:</strong> {{orDefault .Company}}</p>
<p><strong>Role:</strong> {{orDefault .Role}}</p>
<p><strong>Project Type:</strong> {{orDefault .ProjectType}}</p>
<p><strong>Timeline:</strong> {{orDefault .Timeline}}</p>
<p><strong>Budget:</strong> {{orDefault .Budget}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<p><strong>Submitted:</strong> {{.SubmittedAt}}</p>
`))

// NewSubmissionMessage renders the owner notification for a contact
// form submission.
func NewSubmissionMessage(to string, d SubmissionDetails) (Message, error) {
	var sb strings.Builder
	if err := submissionTmpl.Execute(&sb, d); err != nil {
		return Message{}, ErrInvalidMessage{Reason: "render submission template: " + err.Error()}
	}
	return Message{
		To:       []string{to},
		Subject:  fmt.Sprintf("New Contact Form Submission from %s", d.Name),
		HTMLBody: sb.String(),
	}, nil
}
