package models

import "time"

// Progress is one activity attempt. Every save inserts a new row;
// attempts are never merged or updated in place.
type Progress struct {
	ID               int        `json:"id"`
	UserID           *int       `json:"userId"`
	ActivityCategory string     `json:"activityCategory"`
	ActivityID       string     `json:"activityId"`
	ActivityName     *string    `json:"activityName"`
	Completed        bool       `json:"completed"`
	Score            *float64   `json:"score"`
	TimeSpent        *int       `json:"timeSpent"` // seconds
	Attempts         int        `json:"attempts"`
	CorrectAnswers   int        `json:"correctAnswers"`
	TotalQuestions   int        `json:"totalQuestions"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        *time.Time `json:"updatedAt"`
}

type InsertProgress struct {
	UserID           *int     `json:"userId"`
	ActivityCategory string   `json:"activityCategory" validate:"required"`
	ActivityID       string   `json:"activityId" validate:"required"`
	ActivityName     *string  `json:"activityName"`
	Completed        *bool    `json:"completed"`
	Score            *float64 `json:"score"`
	TimeSpent        *int     `json:"timeSpent"`
	Attempts         *int     `json:"attempts"`
	CorrectAnswers   *int     `json:"correctAnswers"`
	TotalQuestions   *int     `json:"totalQuestions"`
}
