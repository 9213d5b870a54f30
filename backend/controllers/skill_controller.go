package controllers

import (
	"strconv"

	"kidlearn/backend/models"
	"kidlearn/backend/storage"
	"kidlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type SkillController struct {
	Store storage.Storage
}

func NewSkillController(store storage.Storage) *SkillController {
	return &SkillController{Store: store}
}

// GetSkills godoc
// @Summary Get learning skills for a user
// @Tags skills
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.LearningSkill
// @Failure 500 {object} utils.MessageResponse
// @Router /skills/{userId} [get]
func (sc *SkillController) GetSkills(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("userId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	skills, err := sc.Store.GetSkillsByUserID(userID)
	if err != nil {
		return utils.ServerError(c)
	}

	return c.JSON(skills)
}

// SaveSkill godoc
// @Summary Record a skill snapshot
// @Description Inserts a new skill row; no merge with prior entries
// @Tags skills
// @Accept json
// @Produce json
// @Param skill body models.InsertLearningSkill true "Skill data"
// @Success 201 {object} models.LearningSkill
// @Failure 400 {object} utils.MessageResponse
// @Router /skills [post]
func (sc *SkillController) SaveSkill(c *fiber.Ctx) error {
	var input models.InsertLearningSkill
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid skill data")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Invalid skill data")
	}

	skill, err := sc.Store.SaveSkill(input)
	if err != nil {
		return utils.ServerError(c)
	}

	return utils.Created(c, skill)
}
