package handlers

import (
	"errors"
	"strings"

	"campus-lostfound/internal/adapters/persistence/models"
	"campus-lostfound/internal/core/services"
	"campus-lostfound/internal/pkg/pagination"
	"campus-lostfound/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin verification and dashboard endpoints
type AdminHandler struct {
	claimService *services.ClaimService
	statsService *services.StatsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(claimService *services.ClaimService, statsService *services.StatsService) *AdminHandler {
	return &AdminHandler{
		claimService: claimService,
		statsService: statsService,
	}
}

// ProcessClaimRequest represents an adjudication body
type ProcessClaimRequest struct {
	ClaimID   uint   `json:"claim_id"`
	Status    string `json:"status"` // 'Approved' or 'Rejected'
	Rationale string `json:"rationale"`
}

// ListPendingClaims lists the verification queue
// @Summary List pending claims
// @Description List all Pending claims with item and claimant display data
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/claims [get]
func (h *AdminHandler) ListPendingClaims(c *fiber.Ctx) error {
	claims, err := h.claimService.ListPending(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list pending claims")
	}
	return response.Success(c, "Pending claims retrieved successfully", claims)
}

// ListClaimHistory lists resolved claims
// @Summary List claims history
// @Description List Approved/Rejected claims, newest first, paginated
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Rows per page"
// @Success 200 {object} response.Response
// @Router /admin/claims/history [get]
func (h *AdminHandler) ListClaimHistory(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	claims, total, err := h.claimService.ListHistory(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list claims history")
	}

	return response.Success(c, "Claims history retrieved successfully", fiber.Map{
		"claims": claims,
		"meta":   pagination.GetMeta(params, total),
	})
}

// ProcessClaim approves or rejects a claim
// @Summary Process a claim
// @Description Move a Pending claim to Approved or Rejected; approval marks the item Claimed and rejects competing claims
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ProcessClaimRequest true "Decision"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/claims [put]
func (h *AdminHandler) ProcessClaim(c *fiber.Ctx) error {
	var req ProcessClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ClaimID == 0 {
		return response.BadRequest(c, "Claim id is required")
	}

	adminID, _ := c.Locals("userID").(string)

	input := &services.AdjudicateInput{
		ClaimID:   req.ClaimID,
		AdminID:   adminID,
		Status:    req.Status,
		Rationale: strings.TrimSpace(req.Rationale),
	}

	if err := h.claimService.Adjudicate(c.Context(), input); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidClaimStatus):
			return response.BadRequest(c, "Status must be Approved or Rejected")
		case errors.Is(err, services.ErrClaimNotFound):
			return response.NotFound(c, "Claim not found")
		case errors.Is(err, services.ErrClaimAlreadyProcessed):
			return response.BadRequest(c, "Claim has already been processed")
		case errors.Is(err, services.ErrItemNotAvailable):
			return response.BadRequest(c, "Item has already been claimed")
		default:
			return response.InternalServerError(c, "Failed to process claim")
		}
	}

	message := "Claim Rejected"
	if req.Status == models.ClaimStatusApproved {
		message = "Claim Approved"
	}
	return response.Success(c, message, nil)
}

// GetStats returns the dashboard counters
// @Summary Admin statistics
// @Description Total items, claimed items and pending claims counts
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute stats")
	}
	return response.Success(c, "Stats retrieved successfully", stats)
}
