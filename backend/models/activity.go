package models

import "time"

// Activity is a learning activity. ActivityID is the external business
// key (e.g. "alphabet-tracing"), distinct from the internal integer ID.
type Activity struct {
	ID              int       `json:"id"`
	ActivityID      string    `json:"activityId"`
	Category        string    `json:"category"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	Content         string    `json:"content"`
	Difficulty      int       `json:"difficulty"`
	AgeRange        *string   `json:"ageRange"`
	ThumbnailURL    *string   `json:"thumbnailUrl"`
	DurationMinutes *int      `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type InsertActivity struct {
	ActivityID      string  `json:"activityId" validate:"required"`
	Category        string  `json:"category" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Description     *string `json:"description"`
	Content         string  `json:"content" validate:"required"`
	Difficulty      *int    `json:"difficulty"`
	AgeRange        *string `json:"ageRange"`
	ThumbnailURL    *string `json:"thumbnailUrl"`
	DurationMinutes *int    `json:"durationMinutes"`
}
