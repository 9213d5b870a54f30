package controllers

import (
	"errors"

	"kidlearn/backend/models"
	"kidlearn/backend/storage"
	"kidlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ActivityController struct {
	Store storage.Storage
}

func NewActivityController(store storage.Storage) *ActivityController {
	return &ActivityController{Store: store}
}

// GetActivities godoc
// @Summary List activities
// @Description Returns all activities, optionally filtered by exact category
// @Tags activities
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} models.Activity
// @Failure 500 {object} utils.MessageResponse
// @Router /activities [get]
func (ac *ActivityController) GetActivities(c *fiber.Ctx) error {
	category := c.Query("category")

	activities, err := ac.Store.GetActivities(category)
	if err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(activities)
}

// GetActivity godoc
// @Summary Get activity by business key
// @Description Looks up an activity by its string activityId
// @Tags activities
// @Produce json
// @Param id path string true "Activity business key"
// @Success 200 {object} models.Activity
// @Failure 404 {object} utils.MessageResponse
// @Router /activities/{id} [get]
func (ac *ActivityController) GetActivity(c *fiber.Ctx) error {
	activityID := c.Params("id")

	activity, err := ac.Store.GetActivityByID(activityID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "Activity not found")
		}
		return utils.ServerError(c)
	}

	return c.JSON(activity)
}

// CreateActivity godoc
// @Summary Create a new activity
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body models.InsertActivity true "Activity data"
// @Success 201 {object} models.Activity
// @Failure 400 {object} utils.MessageResponse
// @Router /activities [post]
func (ac *ActivityController) CreateActivity(c *fiber.Ctx) error {
	var input models.InsertActivity
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid activity data")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Invalid activity data")
	}

	activity, err := ac.Store.CreateActivity(input)
	if err != nil {
		return utils.ServerError(c)
	}

	return utils.Created(c, activity)
}
