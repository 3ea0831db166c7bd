package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-console/internal/application/auth"
	"github.com/jhoicas/inventario-console/internal/application/dto"
	"github.com/jhoicas/inventario-console/internal/application/movement"
	"github.com/jhoicas/inventario-console/internal/domain/entity"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// AuthHandler maneja login, registro, logout y la sesión actual.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	drafts *movement.Registry
	log    *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, drafts *movement.Registry, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, drafts: drafts, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sess, err := h.uc.Login(c.UserContext(), GetStore(c), in)
	if err != nil {
		h.log.Client(GetScope(c)).Debug().Err(err).Msg("login rechazado")
		return writeError(c, err, "credenciales inválidas")
	}
	// La sesión nueva no hereda el movimiento en edición de la anterior.
	h.drafts.Forget(GetScope(c), nil)
	h.log.Client(GetScope(c)).Info().Str("user", sess.Claims.Subject).Msg("sesión iniciada")
	return c.JSON(sessionResponse(sess))
}

// Register godoc
// @Summary      Registrar almacenero
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password, confirmPassword"
// @Success      201   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	sess, err := h.uc.Register(c.UserContext(), GetStore(c), in)
	if err != nil {
		return writeError(c, err, "no se pudo completar el registro")
	}
	h.drafts.Forget(GetScope(c), nil)
	return c.Status(fiber.StatusCreated).JSON(sessionResponse(sess))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra la sesión del cliente y descarta el movimiento en edición.
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.drafts.Forget(GetScope(c), nil)
	if err := h.uc.Logout(c.UserContext(), GetStore(c)); err != nil {
		h.log.Client(GetScope(c)).Error().Err(err).Msg("no se pudo borrar la sesión")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo cerrar la sesión"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary      Sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(sessionResponse(GetStore(c).Current(c.UserContext())))
}

func sessionResponse(sess *entity.Session) dto.SessionResponse {
	if sess == nil {
		return dto.SessionResponse{}
	}
	return dto.SessionResponse{
		Authenticated: true,
		Username:      sess.Claims.Subject,
		Role:          string(sess.Claims.Role()),
		IsAdmin:       sess.IsAdmin(),
		IsStorekeeper: sess.IsAtLeastStorekeeper(),
		IssuedAt:      sess.Claims.IssuedAt,
		ExpiresAt:     sess.Claims.ExpiresAt,
	}
}
