package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/guard"
	"github.com/jhoicas/inventario-console/internal/domain"
)

// writeError traduce un error de aplicación a respuesta JSON. fallback es el mensaje para el
// usuario cuando el error no trae uno propio.
func writeError(c *fiber.Ctx, err error, fallback string) error {
	msg := domain.UserMessage(err, fallback)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
	case errors.Is(err, domain.ErrInvalidKind):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_KIND", Message: domain.ErrInvalidKind.Error()})
	case errors.Is(err, domain.ErrInvalidToken):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "la respuesta de autenticación no es válida", Redirect: guard.LoginPath})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: msg})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: msg})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
	case errors.Is(err, domain.ErrNoDraft):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_DRAFT", Message: domain.ErrNoDraft.Error()})
	case errors.Is(err, domain.ErrDraftIncomplete):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "DRAFT_INCOMPLETE", Message: domain.ErrDraftIncomplete.Error()})
	case errors.Is(err, domain.ErrDraftClosed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DRAFT_CLOSED", Message: domain.ErrDraftClosed.Error()})
	case errors.Is(err, domain.ErrSubmitInProgress):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SUBMIT_IN_PROGRESS", Message: domain.ErrSubmitInProgress.Error()})
	case errors.Is(err, domain.ErrBackendUnavailable):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_UNAVAILABLE", Message: msg})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND_ERROR", Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
