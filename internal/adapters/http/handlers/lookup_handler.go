package handlers

import (
	"campus-lostfound/internal/adapters/persistence/repositories"
	"campus-lostfound/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LookupHandler handles the category/location master data endpoints
type LookupHandler struct {
	lookupRepo repositories.LookupRepository
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(lookupRepo repositories.LookupRepository) *LookupHandler {
	return &LookupHandler{lookupRepo: lookupRepo}
}

// ListCategories lists all categories
// @Summary List categories
// @Description Get all item categories
// @Tags Lookup
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /categories [get]
func (h *LookupHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.lookupRepo.ListCategories(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list categories")
	}
	return response.Success(c, "Categories retrieved successfully", categories)
}

// ListLocations lists all locations
// @Summary List locations
// @Description Get all campus locations
// @Tags Lookup
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /locations [get]
func (h *LookupHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.lookupRepo.ListLocations(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list locations")
	}
	return response.Success(c, "Locations retrieved successfully", locations)
}
