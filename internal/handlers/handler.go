package handlers

import (
	"errors"
	"net/http"

	"brewbite-pos/internal/engine"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler adapts the consistency engine to HTTP. It holds no state of its
// own beyond the wiring; every consistency decision lives in the engine.
type Handler struct {
	engine *engine.Engine
	db     *gorm.DB
	log    *zap.Logger
}

// New creates a Handler over an engine and a read-only report handle.
func New(eng *engine.Engine, db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{engine: eng, db: db, log: logger}
}

// writeError maps the engine's error taxonomy onto HTTP status codes.
// Expected outcomes go out verbatim; infrastructure detail stays inside.
func (h *Handler) writeError(c *gin.Context, err error) {
	var ve *engine.ValidationError
	var nf *engine.NotFoundError
	var ce *engine.ConflictError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, gin.H{"error": ce.Error()})
	default:
		h.log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// fieldUpdateRequest is the wire shape of every single-field update.
type fieldUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value any    `json:"value"`
}
