package favorites

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/app/auth"
	"github.com/joefazee/atlas/models"
)

// Handler handles HTTP requests for favorites
type Handler struct {
	service Service
}

// NewHandler creates a new favorites handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// respondError maps service errors onto the API envelope.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrUnauthorized):
		api.UnauthorizedResponse(c)
	case errors.Is(err, models.ErrInvalidCountryCode):
		api.BadRequestResponse(c, "Country code must be a known 3 letter code")
	case errors.Is(err, models.ErrFavoriteExists):
		api.ConflictResponse(c, "Country is already a favorite")
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Favorite")
	case errors.Is(err, models.ErrUpstream):
		_ = c.Error(err)
		api.BadGatewayResponse(c, "Failed to look up country")
	default:
		_ = c.Error(err)
		api.InternalErrorResponse(c, fallback)
	}
}

// AddFavorite godoc
// @Summary Add a favorite
// @Tags favorites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoriteRequest true "Country to add"
// @Success 201 {object} api.Response{data=FavoriteResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/favorites [post]
func (h *Handler) AddFavorite(c *gin.Context) {
	sess, _ := auth.SessionFrom(c)

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	favorite, err := h.service.Add(c.Request.Context(), sess, &req)
	if err != nil {
		respondError(c, err, "Failed to add favorite")
		return
	}

	api.CreatedResponse(c, "Favorite added", favorite)
}

// ListFavorites godoc
// @Summary List favorites
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=[]FavoriteResponse}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/favorites [get]
func (h *Handler) ListFavorites(c *gin.Context) {
	sess, _ := auth.SessionFrom(c)

	favorites, err := h.service.List(c.Request.Context(), sess)
	if err != nil {
		respondError(c, err, "Failed to fetch favorites")
		return
	}

	api.ListResponse(c, "Favorites retrieved successfully", favorites, len(favorites))
}

// CheckFavorite godoc
// @Summary Check whether a country is a favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param code path string true "Country Code (3 letters)"
// @Success 200 {object} api.Response{data=CheckResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/favorites/{code} [get]
func (h *Handler) CheckFavorite(c *gin.Context) {
	sess, _ := auth.SessionFrom(c)
	code := c.Param("code")

	ok, err := h.service.IsFavorite(c.Request.Context(), sess, code)
	if err != nil {
		respondError(c, err, "Failed to check favorite")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Favorite status retrieved", CheckResponse{CountryCode: code, IsFavorite: ok})
}

// RemoveFavorite godoc
// @Summary Remove a favorite
// @Tags favorites
// @Produce json
// @Security BearerAuth
// @Param code path string true "Country Code (3 letters)"
// @Success 200 {object} api.Response
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/favorites/{code} [delete]
func (h *Handler) RemoveFavorite(c *gin.Context) {
	sess, _ := auth.SessionFrom(c)

	if err := h.service.Remove(c.Request.Context(), sess, c.Param("code")); err != nil {
		respondError(c, err, "Failed to remove favorite")
		return
	}

	api.DeletedResponse(c, "Favorite removed")
}
