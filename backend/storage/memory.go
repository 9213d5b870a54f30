package storage

import (
	"sort"
	"sync"
	"time"

	"kidlearn/backend/models"
)

// MemStorage is a thread-safe in-memory implementation of Storage.
// Integer IDs are assigned per entity type, strictly increasing and
// never reused.
type MemStorage struct {
	mu sync.RWMutex

	users           map[int]*models.User
	progressRecords map[int]*models.Progress
	activities      map[int]*models.Activity
	learningSkills  map[int]*models.LearningSkill

	nextUserID     int
	nextProgressID int
	nextActivityID int
	nextSkillID    int
}

// NewMemStorage constructs an empty store. Call SeedSampleData to load
// the demo dataset before exposing the store to handlers.
func NewMemStorage() *MemStorage {
	return &MemStorage{
		users:           make(map[int]*models.User),
		progressRecords: make(map[int]*models.Progress),
		activities:      make(map[int]*models.Activity),
		learningSkills:  make(map[int]*models.LearningSkill),
		nextUserID:      1,
		nextProgressID:  1,
		nextActivityID:  1,
		nextSkillID:     1,
	}
}

func (s *MemStorage) GetUser(id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *MemStorage) GetUserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.users) {
		if s.users[id].Username == username {
			return s.users[id], nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) CreateUser(in models.InsertUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextUserID
	s.nextUserID++

	isParent := false
	if in.IsParent != nil {
		isParent = *in.IsParent
	}

	// No uniqueness check on username; duplicates are accepted.
	user := &models.User{
		ID:          id,
		Username:    in.Username,
		Password:    in.Password,
		IsParent:    isParent,
		ChildID:     in.ChildID,
		DisplayName: in.DisplayName,
		Age:         in.Age,
		CreatedAt:   time.Now(),
	}
	s.users[id] = user
	return user, nil
}

func (s *MemStorage) GetChildrenByParentID(parentID int) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	parent, ok := s.users[parentID]
	if !ok || !parent.IsParent {
		return []*models.User{}, nil
	}

	// If the parent links a specific child, return that user directly.
	// The target is not validated as actually being a child.
	if parent.ChildID != nil {
		if child, ok := s.users[*parent.ChildID]; ok {
			return []*models.User{child}, nil
		}
		return []*models.User{}, nil
	}

	// Fallback: scan for children whose childId points back at the parent.
	children := []*models.User{}
	for _, id := range sortedKeys(s.users) {
		u := s.users[id]
		if !u.IsParent && u.ChildID != nil && *u.ChildID == parentID {
			children = append(children, u)
		}
	}
	return children, nil
}

func (s *MemStorage) GetProgressByUserID(userID int) ([]*models.Progress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []*models.Progress{}
	for _, id := range sortedKeys(s.progressRecords) {
		p := s.progressRecords[id]
		if p.UserID != nil && *p.UserID == userID {
			records = append(records, p)
		}
	}

	// Newest first. Rows without updatedAt sort as the zero time; the
	// stable sort keeps insertion order for ties.
	sort.SliceStable(records, func(i, j int) bool {
		return progressTime(records[i]).After(progressTime(records[j]))
	})
	return records, nil
}

func (s *MemStorage) SaveProgress(in models.InsertProgress) (*models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextProgressID
	s.nextProgressID++

	completed := false
	if in.Completed != nil {
		completed = *in.Completed
	}
	attempts := 1
	if in.Attempts != nil {
		attempts = *in.Attempts
	}
	correctAnswers := 0
	if in.CorrectAnswers != nil {
		correctAnswers = *in.CorrectAnswers
	}
	totalQuestions := 0
	if in.TotalQuestions != nil {
		totalQuestions = *in.TotalQuestions
	}

	now := time.Now()
	progress := &models.Progress{
		ID:               id,
		UserID:           in.UserID,
		ActivityCategory: in.ActivityCategory,
		ActivityID:       in.ActivityID,
		ActivityName:     in.ActivityName,
		Completed:        completed,
		Score:            in.Score,
		TimeSpent:        in.TimeSpent,
		Attempts:         attempts,
		CorrectAnswers:   correctAnswers,
		TotalQuestions:   totalQuestions,
		CreatedAt:        now,
		UpdatedAt:        &now,
	}
	s.progressRecords[id] = progress
	return progress, nil
}

func (s *MemStorage) GetActivities(category string) ([]*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activities := []*models.Activity{}
	for _, id := range sortedKeys(s.activities) {
		a := s.activities[id]
		if category == "" || a.Category == category {
			activities = append(activities, a)
		}
	}
	return activities, nil
}

func (s *MemStorage) GetActivityByID(activityID string) (*models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.activities) {
		if s.activities[id].ActivityID == activityID {
			return s.activities[id], nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStorage) CreateActivity(in models.InsertActivity) (*models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextActivityID
	s.nextActivityID++

	difficulty := 1
	if in.Difficulty != nil {
		difficulty = *in.Difficulty
	}

	now := time.Now()
	activity := &models.Activity{
		ID:              id,
		ActivityID:      in.ActivityID,
		Category:        in.Category,
		Title:           in.Title,
		Description:     in.Description,
		Content:         in.Content,
		Difficulty:      difficulty,
		AgeRange:        in.AgeRange,
		ThumbnailURL:    in.ThumbnailURL,
		DurationMinutes: in.DurationMinutes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	s.activities[id] = activity
	return activity, nil
}

func (s *MemStorage) GetSkillsByUserID(userID int) ([]*models.LearningSkill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	skills := []*models.LearningSkill{}
	for _, id := range sortedKeys(s.learningSkills) {
		skill := s.learningSkills[id]
		if skill.UserID == userID {
			skills = append(skills, skill)
		}
	}
	return skills, nil
}

func (s *MemStorage) SaveSkill(in models.InsertLearningSkill) (*models.LearningSkill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSkillID
	s.nextSkillID++

	userID := 0
	if in.UserID != nil {
		userID = *in.UserID
	}
	masteryLevel := 0
	if in.MasteryLevel != nil {
		masteryLevel = *in.MasteryLevel
	}

	skill := &models.LearningSkill{
		ID:            id,
		UserID:        userID,
		SkillName:     in.SkillName,
		Category:      in.Category,
		MasteryLevel:  masteryLevel,
		LastPracticed: in.LastPracticed,
		UpdatedAt:     time.Now(),
	}
	s.learningSkills[id] = skill
	return skill, nil
}

// progressTime is the sort key for progress rows: updatedAt, or the
// zero time when unset.
func progressTime(p *models.Progress) time.Time {
	if p.UpdatedAt == nil {
		return time.Time{}
	}
	return *p.UpdatedAt
}

// sortedKeys returns map keys in ascending ID order so scans see rows
// in insertion order.
func sortedKeys[T any](m map[int]*T) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
