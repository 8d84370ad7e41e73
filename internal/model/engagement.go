package model

import "time"

// Referral is a staff-submitted candidate referral for a job.
// Append-only; no side effects beyond the insert.
type Referral struct {
	ID             string    `json:"id"`
	JobID          string    `json:"job_id"`
	ReferrerID     string    `json:"referrer_id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CandidateNote is a free-form staff note attached to a candidate.
type CandidateNote struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	AuthorID    string    `json:"author_id"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

// Review is a structured interviewer assessment of an application.
type Review struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	ReviewerID    string    `json:"reviewer_id"`
	Rating        int       `json:"rating"`
	Comments      string    `json:"comments"`
	CreatedAt     time.Time `json:"created_at"`
}

// TeamPost is an internal announcement on the hiring team feed.
type TeamPost struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
