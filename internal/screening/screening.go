// Package screening holds the pre-application eligibility gate and the
// external reviewer it delegates semantic judgment to. The reviewer scores
// on a 0-100 scale; this is intentionally separate from the 0-10 fit scorer
// in internal/match.
package screening

import (
	"context"
	"errors"

	"smartrecruit/internal/model"
)

// ErrUpstreamFormat is returned when the external reviewer responds with
// output the gate cannot interpret. The caller must not treat this as an
// admission decision.
var ErrUpstreamFormat = errors.New("reviewer returned malformed output")

// admitThreshold is the minimum reviewer score that admits an applicant.
const admitThreshold = 50

// Assessment is the structured outcome of an eligibility check.
type Assessment struct {
	Eligible      bool     `json:"eligible"`
	Score         int      `json:"score"`
	Reasons       []string `json:"reasons"`
	MissingSkills []string `json:"missing_skills"`
}

// Reviewer is the external semantic judge. Implementations receive the full
// job text and resume text and return a structured verdict.
type Reviewer interface {
	Evaluate(ctx context.Context, job *model.Job, resumeText string) (*Assessment, error)
}
