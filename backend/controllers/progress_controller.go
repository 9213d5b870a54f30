package controllers

import (
	"strconv"

	"kidlearn/backend/models"
	"kidlearn/backend/storage"
	"kidlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Store storage.Storage
}

func NewProgressController(store storage.Storage) *ProgressController {
	return &ProgressController{Store: store}
}

// GetProgress godoc
// @Summary Get progress records for a user
// @Description Returns all progress rows for a user, newest first
// @Tags progress
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Progress
// @Failure 500 {object} utils.MessageResponse
// @Router /progress/{userId} [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	progress, err := pc.Store.GetProgressByUserID(userID)
	if err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(progress)
}

// SaveProgress godoc
// @Summary Record an activity attempt
// @Description Inserts a new progress row; attempts are never merged
// @Tags progress
// @Accept json
// @Produce json
// @Param progress body models.InsertProgress true "Progress data"
// @Success 201 {object} models.Progress
// @Failure 400 {object} utils.MessageResponse
// @Router /progress [post]
func (pc *ProgressController) SaveProgress(c *fiber.Ctx) error {
	var input models.InsertProgress
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid progress data")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Invalid progress data")
	}

	progress, err := pc.Store.SaveProgress(input)
	if err != nil {
		return utils.ServerError(c)
	}

	return utils.Created(c, progress)
}
