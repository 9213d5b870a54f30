package storage

import (
	"time"

	"kidlearn/backend/models"
)

// SeedSampleData loads the demo parent/child users, the five starter
// activities and the child's progress and skill rows. It runs
// synchronously; callers should seed before serving requests.
func (s *MemStorage) SeedSampleData() error {
	child, err := s.CreateUser(models.InsertUser{
		Username:    "child",
		Password:    "password123",
		IsParent:    boolPtr(false),
		DisplayName: strPtr("Child One"),
		Age:         intPtr(4),
	})
	if err != nil {
		return err
	}

	_, err = s.CreateUser(models.InsertUser{
		Username:    "parent",
		Password:    "password123",
		IsParent:    boolPtr(true),
		ChildID:     intPtr(child.ID),
		DisplayName: strPtr("Parent User"),
		Age:         intPtr(35),
	})
	if err != nil {
		return err
	}

	sampleActivities := []models.InsertActivity{
		{
			ActivityID:      "alphabet-tracing",
			Category:        "alphabet",
			Title:           "Alphabet Tracing",
			Description:     strPtr("Learn to write letters with gesture tracing"),
			Content:         `{"type":"tracing","letters":["A","B","C","D","E"]}`,
			Difficulty:      intPtr(1),
			AgeRange:        strPtr("3-5"),
			ThumbnailURL:    strPtr("/images/alphabet.svg"),
			DurationMinutes: intPtr(5),
		},
		{
			ActivityID:      "number-counting",
			Category:        "numbers",
			Title:           "Number Counting",
			Description:     strPtr("Count objects and learn numbers 1-5"),
			Content:         `{"type":"counting","numbers":[1,2,3,4,5]}`,
			Difficulty:      intPtr(1),
			AgeRange:        strPtr("3-5"),
			ThumbnailURL:    strPtr("/images/numbers.svg"),
			DurationMinutes: intPtr(5),
		},
		{
			ActivityID:      "shape-matching",
			Category:        "shapes",
			Title:           "Shape Matching",
			Description:     strPtr("Identify and match common shapes"),
			Content:         `{"type":"matching","shapes":["circle","square","triangle","rectangle","star"]}`,
			Difficulty:      intPtr(1),
			AgeRange:        strPtr("3-5"),
			ThumbnailURL:    strPtr("/images/shapes.svg"),
			DurationMinutes: intPtr(4),
		},
		{
			ActivityID:      "color-recognition",
			Category:        "colors",
			Title:           "Color Recognition",
			Description:     strPtr("Learn to identify basic colors"),
			Content:         `{"type":"recognition","colors":["red","blue","green","yellow","purple"]}`,
			Difficulty:      intPtr(1),
			AgeRange:        strPtr("3-5"),
			ThumbnailURL:    strPtr("/images/colors.svg"),
			DurationMinutes: intPtr(4),
		},
		{
			ActivityID:      "animal-sounds",
			Category:        "animals",
			Title:           "Animal Sounds",
			Description:     strPtr("Match animals with their sounds"),
			Content:         `{"type":"sounds","animals":["cat","dog","cow","sheep","horse"]}`,
			Difficulty:      intPtr(1),
			AgeRange:        strPtr("3-5"),
			ThumbnailURL:    strPtr("/images/animals.svg"),
			DurationMinutes: intPtr(6),
		},
	}
	for _, activity := range sampleActivities {
		if _, err := s.CreateActivity(activity); err != nil {
			return err
		}
	}

	sampleProgress := []models.InsertProgress{
		{
			UserID:           intPtr(child.ID),
			ActivityCategory: "alphabet",
			ActivityID:       "alphabet-tracing",
			ActivityName:     strPtr("Alphabet Tracing"),
			Completed:        boolPtr(true),
			Score:            floatPtr(85),
			TimeSpent:        intPtr(240),
			Attempts:         intPtr(2),
			CorrectAnswers:   intPtr(4),
			TotalQuestions:   intPtr(5),
		},
		{
			UserID:           intPtr(child.ID),
			ActivityCategory: "numbers",
			ActivityID:       "number-counting",
			ActivityName:     strPtr("Number Counting"),
			Completed:        boolPtr(true),
			Score:            floatPtr(90),
			TimeSpent:        intPtr(180),
			Attempts:         intPtr(1),
			CorrectAnswers:   intPtr(9),
			TotalQuestions:   intPtr(10),
		},
		{
			UserID:           intPtr(child.ID),
			ActivityCategory: "shapes",
			ActivityID:       "shape-matching",
			ActivityName:     strPtr("Shape Matching"),
			Completed:        boolPtr(true),
			Score:            floatPtr(75),
			TimeSpent:        intPtr(300),
			Attempts:         intPtr(2),
			CorrectAnswers:   intPtr(6),
			TotalQuestions:   intPtr(8),
		},
		{
			UserID:           intPtr(child.ID),
			ActivityCategory: "colors",
			ActivityID:       "color-recognition",
			ActivityName:     strPtr("Color Recognition"),
			Completed:        boolPtr(false),
			Score:            floatPtr(60),
			TimeSpent:        intPtr(150),
			Attempts:         intPtr(1),
			CorrectAnswers:   intPtr(3),
			TotalQuestions:   intPtr(5),
		},
	}
	for _, progress := range sampleProgress {
		if _, err := s.SaveProgress(progress); err != nil {
			return err
		}
	}

	now := time.Now()
	sampleSkills := []models.InsertLearningSkill{
		{
			UserID:        intPtr(child.ID),
			SkillName:     "letter_recognition",
			Category:      "alphabet",
			MasteryLevel:  intPtr(85),
			LastPracticed: timePtr(now.Add(-24 * time.Hour)),
		},
		{
			UserID:        intPtr(child.ID),
			SkillName:     "number_counting",
			Category:      "numbers",
			MasteryLevel:  intPtr(75),
			LastPracticed: timePtr(now.Add(-48 * time.Hour)),
		},
		{
			UserID:        intPtr(child.ID),
			SkillName:     "shape_identification",
			Category:      "shapes",
			MasteryLevel:  intPtr(90),
			LastPracticed: timePtr(now.Add(-24 * time.Hour)),
		},
		{
			UserID:        intPtr(child.ID),
			SkillName:     "color_matching",
			Category:      "colors",
			MasteryLevel:  intPtr(65),
			LastPracticed: timePtr(now.Add(-72 * time.Hour)),
		},
		{
			UserID:        intPtr(child.ID),
			SkillName:     "animal_sounds",
			Category:      "animals",
			MasteryLevel:  intPtr(50),
			LastPracticed: timePtr(now.Add(-96 * time.Hour)),
		},
	}
	for _, skill := range sampleSkills {
		if _, err := s.SaveSkill(skill); err != nil {
			return err
		}
	}

	return nil
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func timePtr(t time.Time) *time.Time { return &t }
