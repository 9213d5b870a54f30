package controllers

import (
	"errors"
	"strconv"

	"kidlearn/backend/models"
	"kidlearn/backend/storage"
	"kidlearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type UserController struct {
	Store storage.Storage
}

func NewUserController(store storage.Storage) *UserController {
	return &UserController{Store: store}
}

// GetUser godoc
// @Summary Get user by ID
// @Description Returns a single user without the password field
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.SafeUser
// @Failure 404 {object} utils.MessageResponse
// @Router /users/{id} [get]
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	user, err := uc.Store.GetUser(userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.ServerError(c)
	}

	return c.JSON(user.Safe())
}

// CreateUser godoc
// @Summary Create a new user
// @Description Creates a parent or child user account
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.InsertUser true "User data"
// @Success 201 {object} models.SafeUser
// @Failure 400 {object} utils.MessageResponse
// @Router /users [post]
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var input models.InsertUser
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid user data")
	}
	if err := validate.Struct(input); err != nil {
		return utils.BadRequest(c, "Invalid user data")
	}

	user, err := uc.Store.CreateUser(input)
	if err != nil {
		return utils.ServerError(c)
	}

	return utils.Created(c, user.Safe())
}

// GetChildren godoc
// @Summary Get a parent's children
// @Description Returns the child users linked to a parent, without passwords
// @Tags users
// @Produce json
// @Param id path int true "Parent user ID"
// @Success 200 {array} models.SafeUser
// @Failure 500 {object} utils.MessageResponse
// @Router /users/{id}/children [get]
func (uc *UserController) GetChildren(c *fiber.Ctx) error {
	parentID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid user ID")
	}

	children, err := uc.Store.GetChildrenByParentID(parentID)
	if err != nil {
		return utils.ServerError(c)
	}

	safeChildren := make([]models.SafeUser, 0, len(children))
	for _, child := range children {
		safeChildren = append(safeChildren, child.Safe())
	}

	return c.JSON(safeChildren)
}
