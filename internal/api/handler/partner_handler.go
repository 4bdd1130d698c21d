package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/marketplacepro/platform/internal/api/metrics"
	"github.com/marketplacepro/platform/internal/core/ports"
)

// PartnerHandler serves the admin partner-approval flow. All routes sit
// behind Auth + RequireUserType(admin).
type PartnerHandler struct {
	authService ports.AuthService
	logger      zerolog.Logger
}

func NewPartnerHandler(authService ports.AuthService, logger zerolog.Logger) *PartnerHandler {
	return &PartnerHandler{authService: authService, logger: logger}
}

// Pending lists the partner accounts still waiting for approval.
//
// @Summary      List partners pending approval
// @Tags         partners
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  pendingPartnersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/partners/pending [get]
func (h *PartnerHandler) Pending(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	partners, err := h.authService.PendingPartners(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pendingPartnersResponse{PendingPartners: partners})
}

// Verify records the admin's approve/reject decision on a partner.
//
// @Summary      Approve or reject a partner
// @Tags         partners
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Partner account id"
// @Param        body  body      partnerVerifyRequest  true  "Decision"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/admin/partners/{id}/verify [post]
func (h *PartnerHandler) Verify(c echo.Context) error {
	adminID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	partnerID := c.Param("id")

	var req partnerVerifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	approved := *req.Approved
	if err := h.authService.ApprovePartner(c.Request().Context(), partnerID, adminID, approved); err != nil {
		return err
	}

	decision := "rejected"
	message := "partner rejected"
	if approved {
		decision = "approved"
		message = "partner approved"
	}
	metrics.PartnerVerificationsTotal.WithLabelValues(decision).Inc()

	h.logger.Info().
		Str("partner_id", partnerID).
		Str("admin_id", adminID).
		Bool("approved", approved).
		Msg("partner verification recorded")

	return c.JSON(http.StatusOK, messageResponse{Message: message})
}
