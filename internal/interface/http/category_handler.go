package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nhea/awards-api/internal/domain/entity"
	"github.com/nhea/awards-api/internal/domain/repository"
	"github.com/nhea/awards-api/internal/interface/middleware"
	"github.com/nhea/awards-api/pkg/response"
	"github.com/nhea/awards-api/pkg/validation"
)

type CategoryHandler struct {
	Categories repository.CategoryRepository
	Audit      repository.AuditRepository
	Logger     *logrus.Logger
}

func NewCategoryHandler(cats repository.CategoryRepository, audit repository.AuditRepository, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Categories: cats, Audit: audit, Logger: logger}
}

type createCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// List GET /api/categories (public)
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.Categories.ListActive(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list categories failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	response.Success(c, http.StatusOK, cats, "categories", nil)
}

// Create POST /api/categories (admin)
func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cat := &entity.Category{Name: req.Name, Description: req.Description}
	if err := h.Categories.Create(c.Request.Context(), cat); err != nil {
		h.Logger.WithError(err).Error("create category failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	h.audit(c, "CATEGORY_CREATED", map[string]any{"category_id": cat.ID, "name": cat.Name})
	response.Success(c, http.StatusCreated, cat, "category created", nil)
}

// Update PUT /api/categories/:id (admin)
func (h *CategoryHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid category id", nil)
		return
	}
	var req updateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	cat, err := h.Categories.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "category not found", nil)
		return
	}
	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Description != nil {
		cat.Description = *req.Description
	}
	if req.IsActive != nil {
		cat.IsActive = *req.IsActive
	}
	if err := h.Categories.Update(c.Request.Context(), cat); err != nil {
		h.Logger.WithError(err).Error("update category failed")
		response.Error[any](c, http.StatusInternalServerError, "server error", nil)
		return
	}
	h.audit(c, "CATEGORY_UPDATED", map[string]any{"category_id": cat.ID})
	response.Success(c, http.StatusOK, cat, "category updated", nil)
}

func (h *CategoryHandler) audit(c *gin.Context, action string, details map[string]any) {
	if h.Audit == nil {
		return
	}
	err := h.Audit.Insert(c.Request.Context(), &entity.AuditEntry{
		UserID:    c.GetString(middleware.CtxUserIDKey),
		Action:    action,
		Details:   details,
		IPAddress: clientIP(c),
	})
	if err != nil && h.Logger != nil {
		h.Logger.WithError(err).WithField("action", action).Warn("audit insert failed")
	}
}
