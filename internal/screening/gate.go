package screening

import (
	"context"

	"go.uber.org/zap"

	"smartrecruit/internal/model"
)

// Gate is the pre-application admission check. A nil reviewer is a
// first-class, expected condition: the gate fails open with a neutral score
// rather than blocking submissions while the reviewer is unconfigured.
// Changing that trade-off changes admission behavior for every deployment
// without an API key.
type Gate struct {
	reviewer Reviewer
	logger   *zap.Logger
}

// NewGate builds an eligibility gate. reviewer may be nil.
func NewGate(reviewer Reviewer, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{reviewer: reviewer, logger: logger}
}

// Check evaluates a resume against a job. Admission rule: eligible iff the
// reviewer score is at least 50. Reviewer transport or format failures are
// surfaced, not defaulted; only the not-configured case fails open.
func (g *Gate) Check(ctx context.Context, job *model.Job, resumeText string) (*Assessment, error) {
	if g.reviewer == nil {
		g.logger.Info("eligibility check skipped, reviewer not configured",
			zap.String("job_id", job.ID),
		)
		return &Assessment{
			Eligible: true,
			Score:    admitThreshold,
			Reasons:  []string{"eligibility check skipped: reviewer not configured"},
		}, nil
	}

	assessment, err := g.reviewer.Evaluate(ctx, job, resumeText)
	if err != nil {
		return nil, err
	}

	assessment.Eligible = assessment.Score >= admitThreshold
	return assessment, nil
}
