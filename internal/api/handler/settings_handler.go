package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/marketplacepro/platform/internal/api/metrics"
	"github.com/marketplacepro/platform/internal/core/domain"
	"github.com/marketplacepro/platform/internal/core/ports"
)

// SettingsHandler serves the admin settings categories. All routes sit
// behind Auth + RequireUserType(admin).
type SettingsHandler struct {
	service ports.SettingsService
	logger  zerolog.Logger
}

func NewSettingsHandler(service ports.SettingsService, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{service: service, logger: logger}
}

// List returns the known settings category ids, used by the admin panel
// to build its tile grid.
//
// @Summary      List settings categories
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  categoriesResponse
// @Router       /api/admin/settings [get]
func (h *SettingsHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, categoriesResponse{Categories: domain.SettingsCategories()})
}

// Get returns the settings document for one category.
//
// @Summary      Get settings for a category
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string  true  "Settings category id"
// @Success      200       {object}  object
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/admin/settings/{category} [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}
	category := c.Param("category")

	settings, err := h.service.Get(c.Request().Context(), category)
	if err != nil {
		metrics.SettingsReadsTotal.WithLabelValues(category, "error").Inc()
		return err
	}

	metrics.SettingsReadsTotal.WithLabelValues(category, "ok").Inc()
	return c.JSON(http.StatusOK, settings)
}

// Update replaces the settings document for one category.
//
// @Summary      Update settings for a category
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string  true  "Settings category id"
// @Param        body      body      object  true  "Full settings document"
// @Success      200       {object}  object
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /api/admin/settings/{category} [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	category := c.Param("category")

	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	start := time.Now()
	settings, err := h.service.Update(c.Request().Context(), category, payload)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrInvalidSettingsPayload) {
			result = "invalid"
		}
		metrics.SettingsSavesTotal.WithLabelValues(category, result).Inc()
		return err
	}
	metrics.SettingsSavesTotal.WithLabelValues(category, "ok").Inc()
	metrics.SettingsSaveDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())

	h.logger.Info().
		Str("category", category).
		Str("admin_id", userID).
		Msg("settings saved")

	return c.JSON(http.StatusOK, settings)
}
