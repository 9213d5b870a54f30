package utils

import (
	"github.com/gofiber/fiber/v2"
)

// MessageResponse структура для ошибок; тело всегда {"message": "..."}
type MessageResponse struct {
	Message string `json:"message"`
}

// Created отправляет ответ 201 Created
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// NotFound отправляет ответ 404 Not Found
func NotFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(MessageResponse{Message: message})
}

// BadRequest отправляет ответ 400 Bad Request
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: message})
}

// ServerError отправляет ответ 500 Internal Server Error
func ServerError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse{Message: "Server error"})
}
