package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/inhouse-backend/internal/domain/errors"
	"github.com/rafabene/inhouse-backend/internal/domain/ports"
	"github.com/rafabene/inhouse-backend/internal/handlers/dto"
	"github.com/rafabene/inhouse-backend/internal/handlers/middleware"
	"github.com/rafabene/inhouse-backend/internal/services"
)

// AuthHandler lida com login, cadastro e perfil
type AuthHandler struct {
	authService *services.AuthService
	logger      ports.Logger
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService, logger ports.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login autentica um usuário
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req, "validation.email_password_required") {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), services.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(result.User, result.Token))
}

// Signup cria uma conta
// @Summary Cadastro
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Dados do usuário"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !bindJSON(c, &req, "validation.all_fields_required") {
		return
	}

	result, err := h.authService.Signup(c.Request.Context(), services.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(result.User, result.Token))
}

// UpdateProfile altera nome e telefone do usuário autenticado
// @Summary Atualizar perfil
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Campos do perfil"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		respondError(c, h.logger, errors.ErrUnauthorized)
		return
	}

	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req, "error.validation.detail") {
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, services.UpdateProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
