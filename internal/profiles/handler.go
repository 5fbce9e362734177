package profiles

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"resume-parser/internal/documents"
	"resume-parser/internal/parse"
	"resume-parser/internal/shared/server/middleware"
	"resume-parser/internal/shared/server/respond"
)

const defaultMaxPreviewBytes = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc      *Service
	MaxBytes int64
}

// NewHandler constructs a Handler with the default preview upload cap.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc, MaxBytes: defaultMaxPreviewBytes}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles", h.create)
	rg.POST("/profiles/preview", h.preview)
	rg.GET("/profiles/:id", h.get)
	rg.GET("/profiles", h.list)
}

type createRequest struct {
	DocumentID string `json:"documentId"`
}

func (h *Handler) create(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DocumentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "documentId is required", nil)
		return
	}

	profile, err := h.Svc.Create(c.Request.Context(), userID, req.DocumentID)
	if err != nil {
		h.respondParseError(c, err)
		return
	}

	respond.Created(c, profile)
}

func (h *Handler) preview(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	result, err := h.Svc.Preview(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		h.respondParseError(c, err)
		return
	}

	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	profileID := c.Param("id")

	profile, err := h.Svc.Get(c.Request.Context(), userID, profileID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch profile", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, profile)
}

func (h *Handler) list(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	list, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list profiles", nil)
		return
	}

	respond.JSON(c, http.StatusOK, list)
}

func (h *Handler) respondParseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, documents.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
	case errors.Is(err, parse.ErrUnsupportedFormat):
		respond.Error(c, http.StatusUnsupportedMediaType, "unsupported_format", "file format is not supported", nil)
	case errors.Is(err, parse.ErrEmptyDocument):
		respond.Error(c, http.StatusUnprocessableEntity, "empty_document", "document contains no extractable text", nil)
	case errors.Is(err, parse.ErrCorruptDocument):
		respond.Error(c, http.StatusUnprocessableEntity, "corrupt_document", "document could not be decoded", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse document", nil)
	}
}
