package models

import "time"

// Message is a single chat message, optionally replying to another one.
// The author's display name is snapshotted at post time rather than joined
// live, so historical messages keep the name they were posted under.
type Message struct {
	ID                int64     `json:"id"`
	AuthorID          string    `json:"userId"`
	AuthorDisplayName string    `json:"displayName"`
	Content           string    `json:"content"`
	CreatedAt         time.Time `json:"timestamp"`
	Edited            bool      `json:"edited"`
	ParentID          *int64    `json:"parentId,omitempty"`
}
