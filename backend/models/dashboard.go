package models

import "time"

// DashboardSummary is the aggregated report a parent sees for one
// child. It is derived on demand from Progress and LearningSkill rows
// and never stored.
type DashboardSummary struct {
	ChildInfo        ChildInfo                `json:"childInfo"`
	Summary          ProgressSummary          `json:"summary"`
	CategoryProgress map[string]CategoryStats `json:"categoryProgress"`
	Skills           []SkillSummary           `json:"skills"`
	RecentActivities []*Progress              `json:"recentActivities"`
}

type ChildInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Age  *int   `json:"age"`
}

type ProgressSummary struct {
	TotalActivities     int       `json:"totalActivities"`
	CompletedActivities int       `json:"completedActivities"`
	AverageScore        float64   `json:"averageScore"`
	MostRecentActivity  *Progress `json:"mostRecentActivity"`
	TimeSpent           int       `json:"timeSpent"` // seconds
}

type CategoryStats struct {
	Total      int     `json:"total"`
	Completed  int     `json:"completed"`
	Percentage float64 `json:"percentage"`
}

type SkillSummary struct {
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Mastery       int        `json:"mastery"`
	LastPracticed *time.Time `json:"lastPracticed"`
}
