package controllers

import (
	"errors"
	"strconv"

	"kidlearn/backend/models"
	"kidlearn/backend/storage"
	"kidlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// dashboardCategories is the fixed set of categories the summary
// reports on, whether or not the child has rows in them.
var dashboardCategories = []string{"alphabet", "numbers", "shapes", "colors", "animals"}

type DashboardController struct {
	Store storage.Storage
}

func NewDashboardController(store storage.Storage) *DashboardController {
	return &DashboardController{Store: store}
}

// GetSummary godoc
// @Summary Get a child's dashboard summary
// @Description Aggregates progress and skill rows into the parent dashboard report
// @Tags dashboard
// @Produce json
// @Param childId path int true "Child user ID"
// @Success 200 {object} models.DashboardSummary
// @Failure 404 {object} utils.MessageResponse
// @Failure 500 {object} utils.MessageResponse
// @Router /dashboard/summary/{childId} [get]
func (dc *DashboardController) GetSummary(c *fiber.Ctx) error {
	childID, err := strconv.Atoi(c.Params("childId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid child ID")
	}

	child, err := dc.Store.GetUser(childID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Child not found")
		}
		return utils.ServerError(c)
	}

	// Two independent reads; no snapshot isolation between them.
	progress, err := dc.Store.GetProgressByUserID(childID)
	if err != nil {
		return utils.ServerError(c)
	}
	skills, err := dc.Store.GetSkillsByUserID(childID)
	if err != nil {
		return utils.ServerError(c)
	}

	totalActivities := len(progress)
	completedActivities := 0
	timeSpent := 0
	scoreSum := 0.0
	scoreCount := 0
	for _, p := range progress {
		if p.Completed {
			completedActivities++
		}
		if p.TimeSpent != nil {
			timeSpent += *p.TimeSpent
		}
		if p.Score != nil {
			scoreSum += *p.Score
			scoreCount++
		}
	}

	averageScore := 0.0
	if scoreCount > 0 {
		averageScore = scoreSum / float64(scoreCount)
	}

	// Rows arrive sorted newest first; the five most recent are the head.
	recentActivities := progress
	if len(recentActivities) > 5 {
		recentActivities = recentActivities[:5]
	}
	var mostRecent *models.Progress
	if len(recentActivities) > 0 {
		mostRecent = recentActivities[0]
	}

	categoryProgress := make(map[string]models.CategoryStats, len(dashboardCategories))
	for _, category := range dashboardCategories {
		total := 0
		completed := 0
		for _, p := range progress {
			if p.ActivityCategory != category {
				continue
			}
			total++
			if p.Completed {
				completed++
			}
		}
		percentage := 0.0
		if total > 0 {
			percentage = float64(completed) / float64(total) * 100
		}
		categoryProgress[category] = models.CategoryStats{
			Total:      total,
			Completed:  completed,
			Percentage: percentage,
		}
	}

	skillSummaries := make([]models.SkillSummary, 0, len(skills))
	for _, skill := range skills {
		skillSummaries = append(skillSummaries, models.SkillSummary{
			Name:          skill.SkillName,
			Category:      skill.Category,
			Mastery:       skill.MasteryLevel,
			LastPracticed: skill.LastPracticed,
		})
	}

	name := child.Username
	if child.DisplayName != nil && *child.DisplayName != "" {
		name = *child.DisplayName
	}

	return c.JSON(models.DashboardSummary{
		ChildInfo: models.ChildInfo{
			ID:   child.ID,
			Name: name,
			Age:  child.Age,
		},
		Summary: models.ProgressSummary{
			TotalActivities:     totalActivities,
			CompletedActivities: completedActivities,
			AverageScore:        averageScore,
			MostRecentActivity:  mostRecent,
			TimeSpent:           timeSpent,
		},
		CategoryProgress: categoryProgress,
		Skills:           skillSummaries,
		RecentActivities: recentActivities,
	})
}
