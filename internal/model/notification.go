package model

import "time"

// Notification is an in-app message for a candidate or staff member.
// Created only by the side-effect coordinator; mutated only to flip IsRead.
type Notification struct {
	ID        string         `json:"id"`
	TargetID  string         `json:"target_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}
