package countries

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/internal/sanitizer"
	"github.com/joefazee/atlas/internal/validator"
	"github.com/joefazee/atlas/models"
)

// Regions offered by the region filter. Empty means all.
var Regions = []string{"africa", "americas", "asia", "europe", "oceania"}

// Handler handles HTTP requests for countries
type Handler struct {
	service   Service
	views     *Views
	sanitizer sanitizer.HTMLStripperer
}

// NewHandler creates a new country handler
func NewHandler(service Service, views *Views, s sanitizer.HTMLStripperer) *Handler {
	return &Handler{
		service:   service,
		views:     views,
		sanitizer: s,
	}
}

func (h *Handler) clean(s string) string {
	return strings.TrimSpace(h.sanitizer.StripHTML(s))
}

// cleanRegion lower-cases and checks region. Empty is allowed.
func (h *Handler) cleanRegion(raw string) (string, bool) {
	region := strings.ToLower(h.clean(raw))
	return region, region == "" || validator.In(region, Regions...)
}

func unknownRegion() *validator.ValidationError {
	v := validator.New()
	v.AddError("region", "must be one of "+strings.Join(Regions, ", "))
	return validator.NewValidationError("Unknown region", v.Errors)
}

// GetAllCountries godoc
// @Summary List all countries
// @Description Get every country from the upstream source
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=[]CountrySummary}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries [get]
func (h *Handler) GetAllCountries(c *gin.Context) {
	countries, err := h.service.ListCountries(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		api.BadGatewayResponse(c, "Failed to fetch countries")
		return
	}

	api.ListResponse(c, "Countries retrieved successfully", countries, len(countries))
}

// SearchCountries godoc
// @Summary Search countries by name
// @Description Partial name search. Upstream failures return an empty list.
// @Tags countries
// @Produce json
// @Param name path string true "Name or part of it"
// @Success 200 {object} api.Response{data=[]CountrySummary}
// @Router /api/v1/countries/name/{name} [get]
func (h *Handler) SearchCountries(c *gin.Context) {
	term := h.clean(c.Param("name"))

	countries, err := h.service.SearchByName(c.Request.Context(), term)
	if err != nil {
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to search countries")
		return
	}

	api.ListResponse(c, "Countries retrieved successfully", countries, len(countries))
}

// GetCountriesByRegion godoc
// @Summary List countries in a region
// @Tags countries
// @Produce json
// @Param region path string true "Region" Enums(africa, americas, asia, europe, oceania)
// @Success 200 {object} api.Response{data=[]CountrySummary}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 502 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/region/{region} [get]
func (h *Handler) GetCountriesByRegion(c *gin.Context) {
	region, ok := h.cleanRegion(c.Param("region"))
	if !ok || region == "" {
		api.BadRequestResponse(c, unknownRegion())
		return
	}

	countries, err := h.service.ListByRegion(c.Request.Context(), region)
	if err != nil {
		_ = c.Error(err)
		api.BadGatewayResponse(c, "Failed to fetch countries")
		return
	}

	api.ListResponse(c, "Countries retrieved successfully", countries, len(countries))
}

// GetCountryByCode godoc
// @Summary Get country detail by code
// @Description Country detail with its bordering countries resolved
// @Tags countries
// @Produce json
// @Param code path string true "Country Code (3 letters)"
// @Success 200 {object} api.Response{data=CountryDetail}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/code/{code} [get]
func (h *Handler) GetCountryByCode(c *gin.Context) {
	code := h.clean(c.Param("code"))
	if !validator.IsAlpha3(code) {
		api.BadRequestResponse(c, "Country code must be 3 letters")
		return
	}

	detail, err := h.service.GetCountryDetail(c.Request.Context(), code)
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Country")
			return
		}
		if IsValidation(err) {
			api.BadRequestResponse(c, "Country code must be 3 letters")
			return
		}
		api.InternalErrorResponse(c, "Failed to fetch country")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Country retrieved successfully", detail)
}

// OpenBrowseView godoc
// @Summary Open a browse view
// @Description Starts a listing with no search term and no region and waits for the first load
// @Tags browse
// @Produce json
// @Success 201 {object} api.Response{data=BrowseViewResponse}
// @Router /api/v1/browse [post]
func (h *Handler) OpenBrowseView(c *gin.Context) {
	id, coord, gen, err := h.views.Open(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to open browse view")
		return
	}

	snap, _ := coord.Wait(c.Request.Context(), gen)
	api.CreatedResponse(c, "Browse view opened", ToBrowseViewResponse(id, snap))
}

// GetBrowseView godoc
// @Summary Get a browse view
// @Tags browse
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} api.Response{data=BrowseViewResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/browse/{id} [get]
func (h *Handler) GetBrowseView(c *gin.Context) {
	id, coord, ok := h.lookupView(c)
	if !ok {
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Browse view retrieved", ToBrowseViewResponse(id, coord.Snapshot()))
}

// SetBrowseSearch godoc
// @Summary Change the search term of a browse view
// @Description Terms shorter than 3 characters, other than empty, leave the view unchanged
// @Tags browse
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param request body SearchRequest true "Search term"
// @Success 200 {object} api.Response{data=BrowseViewResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/browse/{id}/search [put]
func (h *Handler) SetBrowseSearch(c *gin.Context) {
	id, coord, ok := h.lookupView(c)
	if !ok {
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	term := h.clean(req.Term)
	if !AcceptsSearchInput(term) {
		api.SuccessResponse(c, http.StatusOK, "Search term too short, view unchanged", ToBrowseViewResponse(id, coord.Snapshot()))
		return
	}

	snap, _ := coord.Wait(c.Request.Context(), coord.SetSearchTerm(term))
	api.SuccessResponse(c, http.StatusOK, "Browse view updated", ToBrowseViewResponse(id, snap))
}

// SetBrowseRegion godoc
// @Summary Change the region of a browse view
// @Tags browse
// @Accept json
// @Produce json
// @Param id path string true "View ID"
// @Param request body RegionRequest true "Region, empty for all"
// @Success 200 {object} api.Response{data=BrowseViewResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/browse/{id}/region [put]
func (h *Handler) SetBrowseRegion(c *gin.Context) {
	id, coord, ok := h.lookupView(c)
	if !ok {
		return
	}

	var req RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	region, valid := h.cleanRegion(req.Region)
	if !valid {
		api.BadRequestResponse(c, unknownRegion())
		return
	}

	snap, _ := coord.Wait(c.Request.Context(), coord.SetRegion(region))
	api.SuccessResponse(c, http.StatusOK, "Browse view updated", ToBrowseViewResponse(id, snap))
}

// CloseBrowseView godoc
// @Summary Close a browse view
// @Tags browse
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} api.Response
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/browse/{id} [delete]
func (h *Handler) CloseBrowseView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid view ID format")
		return
	}

	if err := h.views.Close(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Browse view")
			return
		}
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to close browse view")
		return
	}

	api.DeletedResponse(c, "Browse view closed")
}

func (h *Handler) lookupView(c *gin.Context) (uuid.UUID, *Coordinator, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid view ID format")
		return uuid.Nil, nil, false
	}

	coord, err := h.views.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Browse view")
			return uuid.Nil, nil, false
		}
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to load browse view")
		return uuid.Nil, nil, false
	}
	return id, coord, true
}
