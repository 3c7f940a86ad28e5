// Copyright (c) 2026 Glowlab. All rights reserved.

/*
Package bug collects bug reports filed from inside the back-office and the
consumer app. Reports carry the reporter, the page they were filed from, and
a two-state status; triage happens elsewhere, this is the inbox.
*/
package bug

import (
	"time"

	"github.com/google/uuid"
)

// Report statuses.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

type Report struct {
	ID          int       `json:"id"`
	ReporterID  uuid.UUID `json:"reporter_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	PageURL     *string   `json:"page_url"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter narrows the admin listing.
type Filter struct {
	Status string // empty matches both
}

// CreateInput is the payload for filing a report. The reporter comes from
// the access token, never from the body.
type CreateInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	PageURL     *string `json:"page_url"`
}

// Global field names for validation
const (
	FieldTitle   = "title"
	FieldPageURL = "page_url"
	FieldStatus  = "status"
)
