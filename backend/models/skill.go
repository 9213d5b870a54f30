package models

import "time"

// LearningSkill is a skill snapshot. Saves insert new rows; there is no
// history beyond the latest save for a (userId, skillName) pair.
type LearningSkill struct {
	ID            int        `json:"id"`
	UserID        int        `json:"userId"`
	SkillName     string     `json:"skillName"`
	Category      string     `json:"category"`
	MasteryLevel  int        `json:"masteryLevel"` // 0-100 by convention
	LastPracticed *time.Time `json:"lastPracticed"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type InsertLearningSkill struct {
	UserID        *int       `json:"userId" validate:"required"`
	SkillName     string     `json:"skillName" validate:"required"`
	Category      string     `json:"category" validate:"required"`
	MasteryLevel  *int       `json:"masteryLevel"`
	LastPracticed *time.Time `json:"lastPracticed"`
}
