package model

import "time"

// Job is a posted position. It is authored by an external flow and is a
// read-only input to scoring and screening; the core never mutates it.
type Job struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Qualifications  string     `json:"qualifications"`
	ExperienceLevel string     `json:"experience_level"`
	Department      string     `json:"department"`
	Location        string     `json:"location"`
	AdvertisedAt    *time.Time `json:"advertised_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
