package handlers

import (
	"errors"
	"strconv"
	"strings"

	"campus-lostfound/internal/core/services"
	"campus-lostfound/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClaimHandler handles the student-facing claim endpoints
type ClaimHandler struct {
	claimService *services.ClaimService
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService *services.ClaimService) *ClaimHandler {
	return &ClaimHandler{claimService: claimService}
}

// SubmitClaimRequest represents a claim submission body
type SubmitClaimRequest struct {
	ItemID           uint   `json:"item_id"`
	ProofOfOwnership string `json:"proof_of_ownership"`
}

// Submit handles a claim submission
// @Summary Submit an ownership claim
// @Description Submit a Pending claim on a Found item; the claimant is taken from the access token
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SubmitClaimRequest true "Claim data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /claims [post]
func (h *ClaimHandler) Submit(c *fiber.Ctx) error {
	var req SubmitClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.ItemID == 0 {
		return response.BadRequest(c, "Item id is required")
	}
	if strings.TrimSpace(req.ProofOfOwnership) == "" {
		return response.BadRequest(c, "Proof of ownership is required")
	}

	claimantID, _ := c.Locals("userID").(string)

	input := &services.SubmitInput{
		ItemID:           req.ItemID,
		ClaimantID:       claimantID,
		ProofOfOwnership: strings.TrimSpace(req.ProofOfOwnership),
	}

	claim, err := h.claimService.Submit(c.Context(), input)
	if err != nil {
		var dupErr *services.DuplicateClaimError
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return response.NotFound(c, "Item not found")
		case errors.Is(err, services.ErrItemNotAvailable):
			return response.BadRequest(c, "Item is not available for claim")
		case errors.Is(err, services.ErrSelfClaim):
			return response.BadRequest(c, "You cannot claim an item you reported")
		case errors.As(err, &dupErr):
			return response.BadRequest(c, dupErr.Error())
		default:
			return response.InternalServerError(c, "Failed to submit claim")
		}
	}

	return response.Created(c, "Claim submitted for review", fiber.Map{
		"claim_id": claim.ClaimID,
	})
}

// ListByStudent lists a student's claims
// @Summary List a student's claims
// @Description List all claims by a student, with item detail and decision data once processed
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student_id path string true "Student id"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /students/{student_id}/claims [get]
func (h *ClaimHandler) ListByStudent(c *fiber.Ctx) error {
	studentID := c.Params("student_id")

	callerID, _ := c.Locals("userID").(string)
	callerRole, _ := c.Locals("role").(string)

	// Students can only see their own claims; admins can see anyone's
	if callerRole != "admin" && callerID != studentID {
		return response.Forbidden(c, "You can only view your own claims")
	}

	claims, err := h.claimService.ListByStudent(c.Context(), studentID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list claims")
	}

	return response.Success(c, "Claims retrieved successfully", claims)
}

// Delete removes a non-Approved claim
// @Summary Delete a claim
// @Description Delete a claim unless it has been approved; students may only delete their own
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param claim_id path int true "Claim id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /claims/{claim_id} [delete]
func (h *ClaimHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("claim_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid claim id")
	}

	callerID, _ := c.Locals("userID").(string)
	callerRole, _ := c.Locals("role").(string)

	if err := h.claimService.Delete(c.Context(), uint(id), callerID, callerRole); err != nil {
		switch {
		case errors.Is(err, services.ErrClaimNotFound):
			return response.NotFound(c, "Claim not found")
		case errors.Is(err, services.ErrClaimApproved):
			return response.BadRequest(c, "Approved claims cannot be deleted")
		case errors.Is(err, services.ErrNotClaimOwner):
			return response.Forbidden(c, "You can only delete your own claims")
		default:
			return response.InternalServerError(c, "Failed to delete claim")
		}
	}

	return response.Success(c, "Claim deleted successfully", nil)
}
