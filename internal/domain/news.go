package domain

import (
	"fmt"
	"time"
)

// Category classifies a news item. The set is closed; ParseCategory is the
// only way to obtain a Category from external input.
type Category string

const (
	CategoryAccident  Category = "Accident"
	CategoryFestival  Category = "Festival"
	CategoryCommunity Category = "Community Event"
	CategorySports    Category = "Sports"
	CategoryEducation Category = "Education"
	CategoryBusiness  Category = "Business"
	CategoryPolitics  Category = "Politics"
	CategoryWeather   Category = "Weather"
	CategoryOther     Category = "Other"
)

// Categories lists every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryAccident,
		CategoryFestival,
		CategoryCommunity,
		CategorySports,
		CategoryEducation,
		CategoryBusiness,
		CategoryPolitics,
		CategoryWeather,
		CategoryOther,
	}
}

// ParseCategory validates external input against the closed category set.
func ParseCategory(value string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == value {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", value)
}

// SubmissionStatus enumerates the submission lifecycle.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

// Draft carries the raw user-entered fields of a submission before it has an
// identity or a lifecycle.
type Draft struct {
	Title          string
	Description    string
	City           string
	Category       Category
	PublisherName  string
	PublisherPhone string
	ImageRef       string
}

// Submission is a user-authored candidate news item awaiting moderation. It
// mutates exactly once, pending to approved or rejected, and is never deleted.
type Submission struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	City            string           `json:"city"`
	Category        Category         `json:"category"`
	PublisherName   string           `json:"publisherName"`
	PublisherPhone  string           `json:"publisherPhone"`
	ImageRef        string           `json:"imageRef,omitempty"`
	SubmittedAt     time.Time        `json:"submittedAt"`
	Status          SubmissionStatus `json:"status"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
}

// PublishedItem is the publicly visible, edited artifact derived from an
// approved submission. It carries the masked phone only, never the raw one,
// and is immutable after publication.
type PublishedItem struct {
	ID            string    `json:"id"`
	SubmissionID  string    `json:"submissionId"`
	EditedTitle   string    `json:"editedTitle"`
	EditedSummary string    `json:"editedSummary"`
	City          string    `json:"city"`
	Category      Category  `json:"category"`
	PublisherName string    `json:"publisherName"`
	MaskedPhone   string    `json:"maskedPhone"`
	PublishedAt   time.Time `json:"publishedAt"`
	ImageRef      string    `json:"imageRef,omitempty"`
}
