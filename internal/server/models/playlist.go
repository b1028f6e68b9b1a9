package models

import "time"

// Playlist references its owner by username only. Ownership is assigned
// once at creation and never reassigned; lookups resolve through the
// repository, not through an in-memory object graph.
type Playlist struct {
	ID            string
	Name          string
	OwnerUserName string
	Songs         []*Song
	CreatedAt     time.Time
}

type Song struct {
	ID              string
	Title           string
	Artist          string
	DurationSeconds int
}
