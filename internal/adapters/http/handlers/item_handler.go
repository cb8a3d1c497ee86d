package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"campus-lostfound/internal/adapters/persistence/repositories"
	"campus-lostfound/internal/core/services"
	"campus-lostfound/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ItemHandler handles the found-item catalog endpoints
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler creates a new item handler
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// ReportItemRequest represents a found-item report body
type ReportItemRequest struct {
	ItemName    string `json:"item_name"`
	Description string `json:"description"`
	CategoryID  uint   `json:"category_id"`
	LocationID  uint   `json:"location_id"`
	DateFound   string `json:"date_found"` // YYYY-MM-DD
	ImageURL    string `json:"image_url"`
}

// List lists/searches Found items
// @Summary List found items
// @Description List Found items, optionally filtered by search text, category or item id
// @Tags Items
// @Accept json
// @Produce json
// @Param search query string false "Case-insensitive substring over name/description"
// @Param category_id query int false "Exact category id"
// @Param item_id query int false "Exact item id"
// @Success 200 {object} response.Response
// @Router /items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	filter := repositories.ItemFilter{
		Search: strings.TrimSpace(c.Query("search")),
	}

	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid category_id")
		}
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}
	if v := c.Query("item_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid item_id")
		}
		itemID := uint(id)
		filter.ItemID = &itemID
	}

	items, err := h.itemService.List(c.Context(), filter)
	if err != nil {
		return response.InternalServerError(c, "Failed to list items")
	}

	return response.Success(c, "Items retrieved successfully", items)
}

// Report handles a found-item report
// @Summary Report a found item
// @Description Record a found item; the reporter is taken from the access token
// @Tags Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ReportItemRequest true "Item data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /items [post]
func (h *ItemHandler) Report(c *fiber.Ctx) error {
	var req ReportItemRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.ItemName) == "" {
		return response.BadRequest(c, "Item name is required")
	}
	if strings.TrimSpace(req.Description) == "" {
		return response.BadRequest(c, "Description is required")
	}
	if req.CategoryID == 0 {
		return response.BadRequest(c, "Category is required")
	}
	if req.LocationID == 0 {
		return response.BadRequest(c, "Location is required")
	}
	if strings.TrimSpace(req.ImageURL) == "" {
		return response.BadRequest(c, "Image is required")
	}

	dateFound := time.Now()
	if req.DateFound != "" {
		parsed, err := time.Parse("2006-01-02", req.DateFound)
		if err != nil {
			return response.BadRequest(c, "date_found must be YYYY-MM-DD")
		}
		dateFound = parsed
	}

	reporterID, _ := c.Locals("userID").(string)

	input := &services.ReportInput{
		ItemName:    strings.TrimSpace(req.ItemName),
		Description: strings.TrimSpace(req.Description),
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		DateFound:   dateFound,
		ReportedBy:  reporterID,
		ImageURL:    strings.TrimSpace(req.ImageURL),
	}

	item, err := h.itemService.Report(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			return response.BadRequest(c, "Unknown category")
		case errors.Is(err, services.ErrLocationNotFound):
			return response.BadRequest(c, "Unknown location")
		default:
			return response.InternalServerError(c, "Failed to report item")
		}
	}

	return response.Created(c, "Item reported successfully", fiber.Map{
		"item_id": item.ItemID,
	})
}

// Delete removes an item and its claims
// @Summary Delete an item
// @Description Delete an item and its dependent claims atomically (admin only)
// @Tags Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item_id path int true "Item id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /items/{item_id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("item_id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid item id")
	}

	if err := h.itemService.Delete(c.Context(), uint(id)); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return response.NotFound(c, "Item not found")
		}
		return response.InternalServerError(c, "Failed to delete item")
	}

	return response.Success(c, "Item deleted successfully", nil)
}
