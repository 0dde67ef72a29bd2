package models

import (
	"time"
)

// ArticlePlan represents one planned content item
type ArticlePlan struct {
	ID          int64     `json:"id" db:"id"`
	ArticleID   string    `json:"article_id" db:"article_id"`
	Title       string    `json:"title" db:"title"`
	Keyword     string    `json:"keyword" db:"keyword"`
	Intent      string    `json:"intent" db:"intent"`
	Funnel      string    `json:"funnel" db:"funnel"`
	Category    string    `json:"category" db:"category"`
	Description string    `json:"description" db:"description"`
	Priority    string    `json:"priority" db:"priority"`
	WordCount   int       `json:"word_count" db:"word_count"`
	Week        int       `json:"week" db:"week"`
	Status      string    `json:"status" db:"status"`
	Notes       string    `json:"notes" db:"notes"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// StatusPlanned is the default status assigned on insert
const StatusPlanned = "planned"

// ValidStatuses defines the fixed publication statuses
var ValidStatuses = map[string]bool{
	"planned":     true,
	"in_progress": true,
	"written":     true,
	"published":   true,
}

// ValidPriorities defines the conventional priority palette.
// The store accepts any string; the stats query counts these three.
var ValidPriorities = map[string]bool{
	"High":   true,
	"Medium": true,
	"Low":    true,
}

// ArticleUpsert is the write shape for create-or-merge on article_id.
// Descriptive fields always replace the stored values; Status and Notes
// are optional: nil keeps the stored value, non-nil replaces it.
type ArticleUpsert struct {
	ArticleID   string  `json:"article_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Keyword     string  `json:"keyword"`
	Intent      string  `json:"intent"`
	Funnel      string  `json:"funnel"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	WordCount   int     `json:"word_count" binding:"gte=0"`
	Week        int     `json:"week"`
	Status      *string `json:"status"`
	Notes       *string `json:"notes"`
}

// ArticlePatch is the partial-update shape. Only status, notes and week
// are patchable; nil fields are left untouched.
type ArticlePatch struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
	Week   *int    `json:"week"`
}

// BulkUpsertRequest wraps the bulk endpoint body
type BulkUpsertRequest struct {
	Articles []ArticleUpsert `json:"articles" binding:"required"`
}

// PlanStats holds the dashboard counters. All zero when the store is
// empty or unavailable.
type PlanStats struct {
	Total          int `json:"total"`
	HighPriority   int `json:"high_priority"`
	MediumPriority int `json:"medium_priority"`
	LowPriority    int `json:"low_priority"`
	Planned        int `json:"planned"`
	InProgress     int `json:"in_progress"`
	Written        int `json:"written"`
	Published      int `json:"published"`
}

// MergeUpsert applies the upsert merge rule to an existing record:
// descriptive fields are replaced unconditionally, status and notes only
// when supplied, updated_at always refreshed. The SQL upsert mirrors
// this function; the in-memory repository executes it directly.
func MergeUpsert(existing ArticlePlan, in ArticleUpsert, now time.Time) ArticlePlan {
	out := existing
	out.Title = in.Title
	out.Keyword = in.Keyword
	out.Intent = in.Intent
	out.Funnel = in.Funnel
	out.Category = in.Category
	out.Description = in.Description
	out.Priority = in.Priority
	out.WordCount = in.WordCount
	out.Week = in.Week
	if in.Status != nil {
		out.Status = *in.Status
	}
	if in.Notes != nil {
		out.Notes = *in.Notes
	}
	out.UpdatedAt = now
	return out
}

// NewFromUpsert builds a fresh record from an upsert, defaulting status
// to planned when not supplied. The surrogate ID is left for the store.
func NewFromUpsert(in ArticleUpsert, now time.Time) ArticlePlan {
	plan := ArticlePlan{
		ArticleID:   in.ArticleID,
		Title:       in.Title,
		Keyword:     in.Keyword,
		Intent:      in.Intent,
		Funnel:      in.Funnel,
		Category:    in.Category,
		Description: in.Description,
		Priority:    in.Priority,
		WordCount:   in.WordCount,
		Week:        in.Week,
		Status:      StatusPlanned,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Status != nil {
		plan.Status = *in.Status
	}
	if in.Notes != nil {
		plan.Notes = *in.Notes
	}
	return plan
}

// ApplyPatch applies the partial-update rule: only supplied fields
// change, everything else is untouched except updated_at.
func ApplyPatch(existing ArticlePlan, p ArticlePatch, now time.Time) ArticlePlan {
	out := existing
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.Week != nil {
		out.Week = *p.Week
	}
	out.UpdatedAt = now
	return out
}
