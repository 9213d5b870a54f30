// Package storage holds the in-process store for users, activities,
// progress records and learning skills. State lives for the lifetime of
// the process; nothing is persisted or deleted.
package storage

import (
	"errors"

	"kidlearn/backend/models"
)

// ErrNotFound indicates a requested record is missing. It is the only
// error single-record lookups return; list operations return empty
// slices instead.
var ErrNotFound = errors.New("record not found")

type Storage interface {
	// User methods
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(in models.InsertUser) (*models.User, error)
	GetChildrenByParentID(parentID int) ([]*models.User, error)

	// Progress methods
	GetProgressByUserID(userID int) ([]*models.Progress, error)
	SaveProgress(in models.InsertProgress) (*models.Progress, error)

	// Activity methods
	GetActivities(category string) ([]*models.Activity, error)
	GetActivityByID(activityID string) (*models.Activity, error)
	CreateActivity(in models.InsertActivity) (*models.Activity, error)

	// Learning skill methods
	GetSkillsByUserID(userID int) ([]*models.LearningSkill, error)
	SaveSkill(in models.InsertLearningSkill) (*models.LearningSkill, error)
}
