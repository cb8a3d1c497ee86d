package handlers

import (
	"io"
	"log"
	"strings"

	"campus-lostfound/internal/pkg/cloudinary"
	"campus-lostfound/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UploadHandler handles the image upload endpoint. Storage is delegated
// entirely to Cloudinary; the handler only hands back the public URL.
type UploadHandler struct {
	cdnClient *cloudinary.Client // nil when not configured
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(cdnClient *cloudinary.Client) *UploadHandler {
	return &UploadHandler{cdnClient: cdnClient}
}

// UploadBase64Request represents a JSON upload body (base64 data URL)
type UploadBase64Request struct {
	Data string `json:"data"`
}

// Upload uploads an item photo and returns its public URL
// @Summary Upload an image
// @Description Upload a multipart file or a base64 data URL to object storage
// @Tags Upload
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 502 {object} response.Response
// @Failure 503 {object} response.Response
// @Router /upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if h.cdnClient == nil {
		return response.ServiceUnavailable(c, "Image storage not configured")
	}

	var result *cloudinary.UploadResult
	var err error

	if strings.Contains(c.Get(fiber.HeaderContentType), "multipart/form-data") {
		fileHeader, ferr := c.FormFile("file")
		if ferr != nil {
			return response.BadRequest(c, "file field required")
		}
		file, ferr := fileHeader.Open()
		if ferr != nil {
			return response.InternalServerError(c, "Failed to read file")
		}
		defer file.Close()

		data, ferr := io.ReadAll(file)
		if ferr != nil {
			return response.InternalServerError(c, "Failed to read file")
		}
		result, err = h.cdnClient.UploadBytes(c.Context(), data, fileHeader.Filename)
	} else {
		var req UploadBase64Request
		if berr := c.BodyParser(&req); berr != nil || req.Data == "" {
			return response.BadRequest(c, `Provide {"data": "<base64 data URL>"}`)
		}
		result, err = h.cdnClient.UploadBase64(c.Context(), req.Data)
	}

	if err != nil {
		log.Printf("❌ Image upload failed: %v", err)
		return response.BadGateway(c, "Image upload failed")
	}

	return response.Success(c, "Image uploaded successfully", fiber.Map{
		"url":       result.SecureURL,
		"public_id": result.PublicID,
		"width":     result.Width,
		"height":    result.Height,
		"bytes":     result.Bytes,
	})
}
