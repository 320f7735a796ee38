package types

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a user-authored content entry (a saved TikTok/Instagram post)
// optionally enriched with a detected place.
type Entry struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"user_id"`
	SourceURL  string         `json:"source_url"`
	Title      string         `json:"title,omitempty"`
	Caption    string         `json:"caption,omitempty"`
	AuthorName string         `json:"author_name,omitempty"`
	PlaceID    *uuid.UUID     `json:"place_id,omitempty"`
	Place      *DetectedPlace `json:"place,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  *time.Time     `json:"deleted_at,omitempty"`
}

type CreateEntryRequest struct {
	SourceURL  string `json:"source_url"`
	Title      string `json:"title,omitempty"`
	Caption    string `json:"caption,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
}

// EntryFilter narrows ListEntries. Nil pointer fields mean "no constraint".
type EntryFilter struct {
	HasPlace    *bool  `json:"has_place,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Limit       int    `json:"limit,omitempty"`
	Offset      int    `json:"offset,omitempty"`
}
