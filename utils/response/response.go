package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error envelope used by every endpoint. The portal front
// end expects a single human-readable Portuguese message under "error".
type ErrorBody struct {
	Error string `json:"error"`
}

// MessageBody wraps the confirmation message returned by delete endpoints.
type MessageBody struct {
	Message string `json:"message"`
}

// Success returns a 200 response with the entity as the JSON body.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created returns a 201 response with the entity as the JSON body.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message returns a 200 response with a confirmation message.
func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(MessageBody{Message: message})
}

// Error returns an error response with the given status code.
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Error: message})
}

// BadRequest returns a 400 Bad Request response.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized returns a 401 Unauthorized response.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// NotFound returns a 404 Not Found response.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// InternalServerError returns a 500 Internal Server Error response.
func InternalServerError(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Erro interno do servidor"
	}
	return Error(c, fiber.StatusInternalServerError, message)
}
