package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lemonscar/detailing-api/internal/audit"
	"github.com/lemonscar/detailing-api/internal/httperr"
	"github.com/lemonscar/detailing-api/internal/metrics"
	"github.com/lemonscar/detailing-api/internal/middleware"
	"github.com/lemonscar/detailing-api/internal/models"
	"github.com/lemonscar/detailing-api/internal/storage"
)

// ImageHandler is the admin's media manager: upload to the bucket, list
// what was uploaded per category, delete.
type ImageHandler struct {
	db      *gorm.DB
	store   *storage.ImageStore
	audit   *audit.Dispatcher
	metrics *metrics.Metrics
}

func NewImageHandler(
	db *gorm.DB,
	store *storage.ImageStore,
	auditDispatcher *audit.Dispatcher,
	m *metrics.Metrics,
) *ImageHandler {
	return &ImageHandler{db: db, store: store, audit: auditDispatcher, metrics: m}
}

func (h *ImageHandler) Upload(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie um arquivo de imagem.")
		return
	}

	category := c.DefaultPostForm("category", "general")
	description := c.PostForm("description")

	if fileHeader.Size > storage.MaxFileSize {
		h.countUpload("rejected")
		httperr.BadRequest(c, "file_too_large", "A imagem deve ter no máximo 5MB.")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Ocorreu um erro. Tente novamente.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, storage.MaxFileSize+1))
	if err != nil {
		httperr.Internal(c, "upload_failed", "Ocorreu um erro. Tente novamente.")
		return
	}

	result, err := h.store.Upload(c.Request.Context(), storage.UploadInput{
		Data:        data,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Category:    category,
	})
	if err != nil {
		h.countUpload("rejected")
		writeError(c, err)
		return
	}

	upload := models.ImageUpload{
		ID:          uuid.NewString(),
		BucketName:  "images",
		FilePath:    result.Key,
		FileName:    fileHeader.Filename,
		FileSize:    result.Size,
		MimeType:    result.ContentType,
		UploadedBy:  userID,
		Category:    category,
		Description: description,
	}

	if err := h.db.Create(&upload).Error; err != nil {
		// The object is already in the bucket; the record failing means an
		// orphan, so clean it up before reporting the error.
		_ = h.store.Delete(c.Request.Context(), result.Key)
		h.countUpload("failed")
		httperr.Internal(c, "upload_failed", "Ocorreu um erro. Tente novamente.")
		return
	}

	h.countUpload("ok")

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "image_uploaded",
		Entity:   "image",
		EntityID: &upload.ID,
		Metadata: gin.H{"path": result.Key, "category": category},
	})

	c.JSON(http.StatusCreated, gin.H{
		"image": upload,
		"url":   result.URL,
	})
}

func (h *ImageHandler) List(c *gin.Context) {
	q := h.db.Model(&models.ImageUpload{})
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var uploads []models.ImageUpload
	if err := q.Order("created_at DESC").Find(&uploads).Error; err != nil {
		httperr.Internal(c, "images_list_failed", "Ocorreu um erro. Tente novamente.")
		return
	}

	out := make([]gin.H, 0, len(uploads))
	for i := range uploads {
		out = append(out, gin.H{
			"image": uploads[i],
			"url":   h.store.PublicURL(uploads[i].FilePath),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  out,
		"total": len(out),
	})
}

func (h *ImageHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var upload models.ImageUpload
	if err := h.db.First(&upload, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "image_not_found", "Imagem não encontrada.")
			return
		}
		httperr.Internal(c, "image_delete_failed", "Ocorreu um erro. Tente novamente.")
		return
	}

	if err := h.store.Delete(c.Request.Context(), upload.FilePath); err != nil {
		httperr.Internal(c, "image_delete_failed", "Ocorreu um erro. Tente novamente.")
		return
	}

	if err := h.db.Delete(&upload).Error; err != nil {
		httperr.Internal(c, "image_delete_failed", "Ocorreu um erro. Tente novamente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "image_deleted",
		Entity:   "image",
		EntityID: &upload.ID,
		Metadata: gin.H{"path": upload.FilePath},
	})

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

func (h *ImageHandler) countUpload(outcome string) {
	if h.metrics != nil {
		h.metrics.ImageUploads.WithLabelValues(outcome).Inc()
	}
}
