package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/internal/sanitizer"
)

// Handler handles HTTP requests for the mock login
type Handler struct {
	service   Service
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new auth handler
func NewHandler(service Service, s sanitizer.HTMLStripperer) *Handler {
	return &Handler{service: service, sanitizer: s}
}

// Login godoc
// @Summary      Log in
// @Description  Demo login: any email with a password longer than 5 characters succeeds
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      CredentialsRequest  true  "Credentials"
// @Success      200      {object}  api.Response{data=LoginResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      401      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	h.open(c, h.service.Login, http.StatusOK, "Login successful")
}

// Register godoc
// @Summary      Register
// @Description  Demo registration, same rules as login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      CredentialsRequest  true  "Credentials"
// @Success      201      {object}  api.Response{data=LoginResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	h.open(c, h.service.Register, http.StatusCreated, "Registration successful")
}

func (h *Handler) open(
	c *gin.Context,
	fn func(context.Context, *CredentialsRequest) (*LoginResponse, error),
	status int,
	message string,
) {
	var req CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}
	req.Email = h.sanitizer.StripHTML(req.Email)

	resp, err := fn(c.Request.Context(), &req)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		api.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials", nil)
	case errors.Is(err, ErrRegistrationFailed):
		api.ErrorResponse(c, http.StatusBadRequest, "REGISTRATION_FAILED", "Registration failed", nil)
	case err != nil:
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to open session")
	default:
		api.SuccessResponse(c, status, message, resp)
	}
}

// Logout godoc
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response
// @Failure      401  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	sess, ok := SessionFrom(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	if err := h.service.Logout(c.Request.Context(), sess); err != nil {
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to log out")
		return
	}

	api.DeletedResponse(c, "Logged out")
}

// Me godoc
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  api.Response{data=User}
// @Failure      401  {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	sess, ok := SessionFrom(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Session retrieved", sess.User)
}
