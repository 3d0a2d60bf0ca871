package office

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// Handler exposes the office setup REST surface over a Repository. It backs
// the bundled mock server so the HTTP gateway can run against the demo
// dataset end to end.
type Handler struct {
	repo Repository
}

// NewHandler creates a Handler over the given repository.
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes mounts the office endpoints on the API group. Fee-schedule
// creation is reachable both under /offices and at the top level; some
// client builds in the field still call the bare path.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/offices", h.ListOffices)
	api.GET("/offices/metadata", h.GetMetadata)
	api.GET("/offices/:id/setup", h.GetSetup)
	api.POST("/offices/billing-providers", h.CreateBillingProvider)
	api.POST("/offices/fee-schedules", h.CreateFeeSchedule)
	api.POST("/fee-schedules", h.CreateFeeSchedule)
}

func (h *Handler) ListOffices(c echo.Context) error {
	offices, err := h.repo.ListOffices(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	rows := make([]wireSummary, 0, len(offices))
	for _, o := range offices {
		rows = append(rows, summaryToWire(o))
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *Handler) GetSetup(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid office id")
	}
	o, err := h.repo.GetSetup(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "office not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, setupToWire(o))
}

func (h *Handler) GetMetadata(c echo.Context) error {
	meta, err := h.repo.GetMetadata(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, meta)
}

func (h *Handler) CreateBillingProvider(c echo.Context) error {
	var req CreateProviderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	created, err := h.repo.CreateBillingProvider(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *Handler) CreateFeeSchedule(c echo.Context) error {
	var req CreateFeeScheduleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name and type (STANDARD or UCR) are required")
	}
	created, err := h.repo.CreateFeeSchedule(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, created)
}
