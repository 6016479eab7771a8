package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahsanlabs/storefront-service/internal/media"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20 // 10 MiB

// UploadImage accepts one multipart image and returns its relative URL.
// POST /api/upload-image (form fields: image, optional customName)
func (h *Handler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}
	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Image too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error().Err(err).Msg("Image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error().Err(err).Msg("Image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	imageURL, err := h.media.Save(
		fileHeader.Filename,
		c.PostForm("customName"),
		fileHeader.Header.Get("Content-Type"),
		content,
	)
	if err != nil {
		if errors.Is(err, media.ErrUnsupportedType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Only image files are allowed"})
			return
		}
		h.logger.Error().Err(err).Msg("Image upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}
