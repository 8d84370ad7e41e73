package repository

import (
	"context"

	"smartrecruit/internal/model"
)

// JobRepository reads job postings. Jobs are authored by an external flow
// and are read-only inputs to the core.
type JobRepository interface {
	FindByID(ctx context.Context, id string) (*model.Job, error)
}

// CandidateRepository reads candidate profiles including their experience
// and education entries, which the scorer folds into its corpus.
type CandidateRepository interface {
	FindByID(ctx context.Context, id string) (*model.Candidate, error)
}

// NotificationRepository persists in-app notifications. Rows are created by
// the side-effect coordinator and mutated only to flip the read flag.
type NotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) (*model.Notification, error)
	MarkRead(ctx context.Context, id string) error
	ListForTarget(ctx context.Context, targetID string, pq PageQuery) (*PageResult[model.Notification], error)
}

// EngagementRepository covers the append-only inserts with no further side
// effects: referrals, candidate notes, reviews and team posts.
type EngagementRepository interface {
	CreateReferral(ctx context.Context, ref *model.Referral) (*model.Referral, error)
	CreateNote(ctx context.Context, note *model.CandidateNote) (*model.CandidateNote, error)
	CreateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	CreateTeamPost(ctx context.Context, post *model.TeamPost) (*model.TeamPost, error)
}
