package model

import "time"

// FallbackTitle is reported as a candidate's current title when no
// experience entry is flagged as current.
const FallbackTitle = "Not specified"

// Candidate is an applicant profile. Experience and education entries are
// owned by the candidate: appended over time, never mutated, and removed
// only when the candidate is deleted.
type Candidate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Experiences []Experience `json:"experiences"`
	Educations  []Education  `json:"educations"`
	ResumeText  string       `json:"resume_text,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
}

// Experience is a single work history entry.
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	IsCurrent   bool       `json:"is_current"`
	Description string     `json:"description"`
}

// Education is a single education history entry.
type Education struct {
	ID          string     `json:"id"`
	Institution string     `json:"institution"`
	Degree      string     `json:"degree"`
	Major       string     `json:"major"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

// CurrentTitle derives the candidate's present designation: the title of the
// most recent entry flagged as current, falling back to FallbackTitle.
func (c *Candidate) CurrentTitle() string {
	var title string
	var latest time.Time
	for _, exp := range c.Experiences {
		if !exp.IsCurrent {
			continue
		}
		if title == "" || exp.StartDate.After(latest) {
			title = exp.Title
			latest = exp.StartDate
		}
	}
	if title == "" {
		return FallbackTitle
	}
	return title
}
