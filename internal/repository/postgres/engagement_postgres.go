package postgres

import (
	"context"
	"database/sql"

	"smartrecruit/internal/model"
	"smartrecruit/internal/repository"
)

// EngagementPostgres is a PostgreSQL implementation of
// repository.EngagementRepository. Every method is a plain append-only
// insert with no further side effects.
type EngagementPostgres struct {
	db *sql.DB
}

// NewEngagementPostgres creates a new EngagementPostgres repository.
func NewEngagementPostgres(db *sql.DB) *EngagementPostgres {
	return &EngagementPostgres{db: db}
}

var _ repository.EngagementRepository = (*EngagementPostgres)(nil)

func (r *EngagementPostgres) CreateReferral(ctx context.Context, ref *model.Referral) (*model.Referral, error) {
	const q = `
		INSERT INTO referrals (id, job_id, referrer_id, candidate_name, candidate_email, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, job_id, referrer_id, candidate_name, candidate_email, notes, created_at
	`
	var out model.Referral
	err := r.db.QueryRowContext(ctx, q,
		ref.ID, ref.JobID, ref.ReferrerID, ref.CandidateName, ref.CandidateEmail, ref.Notes, ref.CreatedAt,
	).Scan(&out.ID, &out.JobID, &out.ReferrerID, &out.CandidateName, &out.CandidateEmail, &out.Notes, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *EngagementPostgres) CreateNote(ctx context.Context, note *model.CandidateNote) (*model.CandidateNote, error) {
	const q = `
		INSERT INTO candidate_notes (id, candidate_id, author_id, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, candidate_id, author_id, body, created_at
	`
	var out model.CandidateNote
	err := r.db.QueryRowContext(ctx, q,
		note.ID, note.CandidateID, note.AuthorID, note.Body, note.CreatedAt,
	).Scan(&out.ID, &out.CandidateID, &out.AuthorID, &out.Body, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *EngagementPostgres) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	const q = `
		INSERT INTO reviews (id, application_id, reviewer_id, rating, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, application_id, reviewer_id, rating, comments, created_at
	`
	var out model.Review
	err := r.db.QueryRowContext(ctx, q,
		review.ID, review.ApplicationID, review.ReviewerID, review.Rating, review.Comments, review.CreatedAt,
	).Scan(&out.ID, &out.ApplicationID, &out.ReviewerID, &out.Rating, &out.Comments, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *EngagementPostgres) CreateTeamPost(ctx context.Context, post *model.TeamPost) (*model.TeamPost, error) {
	const q = `
		INSERT INTO team_posts (id, author_id, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, author_id, title, body, created_at
	`
	var out model.TeamPost
	err := r.db.QueryRowContext(ctx, q,
		post.ID, post.AuthorID, post.Title, post.Body, post.CreatedAt,
	).Scan(&out.ID, &out.AuthorID, &out.Title, &out.Body, &out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
