package contact

import (
	"regexp"
	"strings"

	"github.com/SatyaSire/corporatepm/pkg/supabase"
)

// Validation messages surfaced to the form. The frontend shows these
// verbatim, so keep them stable.
const (
	MsgMissingFields = "Missing required fields: name, email, mobile, and message are required"
	MsgInvalidEmail  = "Invalid email format"
	MsgInvalidMobile = "Invalid mobile number format"
)

var (
	// Matches local@domain.tld, nothing fancier.
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Digits with an optional leading + and optional space, dash,
	// dot or parenthesis separators.
	mobilePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-.()]*$`)
)

// Validate checks a raw submission and returns the normalized insert
// payload: strings trimmed, email lower-cased, optional fields nil
// when absent. Pure and deterministic; no side effects.
func Validate(req CreateRequest) (supabase.NewSubmission, *ValidationError) {
	name := strings.TrimSpace(req.Name)
	mail := strings.ToLower(strings.TrimSpace(req.Email))
	mobile := strings.TrimSpace(req.Mobile)
	message := strings.TrimSpace(req.Message)

	fields := map[string]string{}
	if name == "" {
		fields["name"] = "name is required"
	}
	if mail == "" {
		fields["email"] = "email is required"
	}
	if mobile == "" {
		fields["mobile"] = "mobile is required"
	}
	if message == "" {
		fields["message"] = "message is required"
	}
	if len(fields) > 0 {
		return supabase.NewSubmission{}, &ValidationError{Message: MsgMissingFields, Fields: fields}
	}

	if !emailPattern.MatchString(mail) {
		return supabase.NewSubmission{}, &ValidationError{
			Message: MsgInvalidEmail,
			Fields:  map[string]string{"email": "must look like local@domain.tld"},
		}
	}

	if !mobilePattern.MatchString(mobile) {
		return supabase.NewSubmission{}, &ValidationError{
			Message: MsgInvalidMobile,
			Fields:  map[string]string{"mobile": "digits with optional leading + and separators"},
		}
	}

	return supabase.NewSubmission{
		Name:        name,
		Email:       mail,
		Mobile:      mobile,
		Company:     optional(req.Company),
		Role:        optional(req.Role),
		Message:     message,
		ProjectType: optional(req.ProjectType),
		Timeline:    optional(req.Timeline),
		Budget:      optional(req.Budget),
	}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
