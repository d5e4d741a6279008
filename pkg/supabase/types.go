package supabase

import "time"

// Submission is a stored contact-form record. Field names and the
// status values are the wire contract with the contact_submissions
// table and must not change.
type Submission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Mobile      string    `json:"mobile"`
	Company     *string   `json:"company"`
	Role        *string   `json:"role"`
	Message     string    `json:"message"`
	ProjectType *string   `json:"project_type"`
	Timeline    *string   `json:"timeline"`
	Budget      *string   `json:"budget"`
	CreatedAt   time.Time `json:"created_at"`
	Status      string    `json:"status"`
}

// NewSubmission is the insert payload. The store assigns id and
// created_at; Status is always set to StatusNew by the client.
type NewSubmission struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Mobile      string  `json:"mobile"`
	Company     *string `json:"company"`
	Role        *string `json:"role"`
	Message     string  `json:"message"`
	ProjectType *string `json:"project_type"`
	Timeline    *string `json:"timeline"`
	Budget      *string `json:"budget"`
	Status      string  `json:"status"`
}

// Submission status values as stored.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusClosed    = "closed"
)
