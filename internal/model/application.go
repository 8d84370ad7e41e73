package model

import "time"

// Status is the lifecycle state of an application. Any status may follow any
// other; only membership in the enumerated set is validated. Authorization
// and workflow rules live in the permission layer, outside the core.
type Status string

const (
	StatusNew         Status = "new"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusInterview   Status = "interview"
	StatusOffered     Status = "offered"
	StatusHired       Status = "hired"
	StatusRejected    Status = "rejected"
	StatusWithdrawn   Status = "withdrawn"
)

// Valid reports whether s is one of the eight enumerated statuses.
// Matching is case-sensitive against the literal set.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusReviewed, StatusShortlisted, StatusInterview,
		StatusOffered, StatusHired, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// DocumentKind identifies a generated-document reference stored on an
// application. The value doubles as the column name in the applications
// table, so new kinds must stay valid SQL identifiers.
type DocumentKind string

const (
	DocOfferLetter             DocumentKind = "offer_letter"
	DocSignedOfferLetter       DocumentKind = "signed_offer_letter"
	DocAppointmentLetter       DocumentKind = "appointment_letter"
	DocSignedAppointmentLetter DocumentKind = "signed_appointment_letter"
	DocJoiningForm             DocumentKind = "joining_form"
	DocHostelForm              DocumentKind = "hostel_form"
	DocTransportForm           DocumentKind = "transport_form"
)

// Valid reports whether k is a known document kind. Kinds are whitelisted
// before being interpolated into provisioning statements.
func (k DocumentKind) Valid() bool {
	switch k {
	case DocOfferLetter, DocSignedOfferLetter, DocAppointmentLetter,
		DocSignedAppointmentLetter, DocJoiningForm, DocHostelForm, DocTransportForm:
		return true
	}
	return false
}

// Application ties one candidate to one job through the status lifecycle.
// At most one active application may exist per (job, candidate) pair.
type Application struct {
	ID            string     `json:"id"`
	JobID         string     `json:"job_id"`
	CandidateID   string     `json:"candidate_id"`
	Status        Status     `json:"status"`
	Score         *float64   `json:"score,omitempty"`
	AppliedAt     time.Time  `json:"applied_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	InterviewDate *time.Time `json:"interview_date,omitempty"`
}
