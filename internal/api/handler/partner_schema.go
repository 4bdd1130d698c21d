package handler

import "github.com/marketplacepro/platform/internal/core/domain"

// partnerVerifyRequest uses a pointer so an explicit "approved": false
// passes validation while a missing field does not.
type partnerVerifyRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

type pendingPartnersResponse struct {
	PendingPartners []*domain.User `json:"pending_partners"`
}
