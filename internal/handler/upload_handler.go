package handler

import (
	"net/http"
	"time"

	"trackr/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

type UploadResponse struct {
	Path string `json:"path" example:"game-covers/1700000000000000000.png"`
	URL  string `json:"url" example:"http://localhost:8080/storage/game/game-covers/1700000000000000000.png"`
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Stores a single file in the bucket under a timestamp name and returns its public URL.
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        bucket path string true "game or console-images"
// @Param        file formData file true "Image"
// @Success      201 {object} UploadResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Unknown bucket"
// @Router       /admin/uploads/{bucket} [post]
func (h *Handler) UploadImage(c *gin.Context) {
	bucket := c.Param("bucket")
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	path, err := h.Store.Upload(c.Request.Context(), bucket, storage.ObjectName(time.Now(), header.Filename), file)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.Metrics.Uploaded(bucket)
	c.JSON(http.StatusCreated, UploadResponse{Path: path, URL: h.Store.PublicURL(bucket, path)})
}
