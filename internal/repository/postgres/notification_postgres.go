package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"smartrecruit/internal/model"
	"smartrecruit/internal/repository"
)

// NotificationPostgres is a PostgreSQL implementation of
// repository.NotificationRepository. The structured payload is stored as
// JSONB so the UI can deep-link without schema churn.
type NotificationPostgres struct {
	db *sql.DB
}

// NewNotificationPostgres creates a new NotificationPostgres repository.
func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

// Create inserts a new notification row and returns the stored record.
func (r *NotificationPostgres) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	data, err := json.Marshal(n.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal notification data: %w", err)
	}

	const q = `
		INSERT INTO notifications (id, target_id, type, title, message, data, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, false, $7)
		RETURNING id, target_id, type, title, message, data, is_read, created_at
	`
	row := r.db.QueryRowContext(ctx, q, n.ID, n.TargetID, n.Type, n.Title, n.Message, data, n.CreatedAt)
	return scanNotification(row)
}

// MarkRead flips the read flag. A missing row surfaces sql.ErrNoRows.
func (r *NotificationPostgres) MarkRead(ctx context.Context, id string) error {
	const q = `UPDATE notifications SET is_read = true WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListForTarget returns notifications for one recipient using LIMIT/OFFSET
// pagination and a total count.
func (r *NotificationPostgres) ListForTarget(ctx context.Context, targetID string, pq repository.PageQuery) (*repository.PageResult[model.Notification], error) {
	const qCount = `SELECT COUNT(*) FROM notifications WHERE target_id = $1`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount, targetID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, target_id, type, title, message, data, is_read, created_at
		FROM notifications
		WHERE target_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, qList, targetID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Notification]{Items: items, Total: total}, nil
}

func scanNotification(row interface{ Scan(...any) error }) (*model.Notification, error) {
	var n model.Notification
	var data []byte
	if err := row.Scan(
		&n.ID,
		&n.TargetID,
		&n.Type,
		&n.Title,
		&n.Message,
		&data,
		&n.IsRead,
		&n.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &n.Data); err != nil {
			return nil, fmt.Errorf("unmarshal notification data: %w", err)
		}
	}
	return &n, nil
}
