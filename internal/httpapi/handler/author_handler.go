package handler

import (
	"context"
	"errors"
	"net/http"

	"paperhub/internal/httpapi/dto"
	"paperhub/internal/httpapi/middleware"
	"paperhub/internal/httpapi/models"
	"paperhub/internal/httpapi/service"
	"paperhub/internal/httpapi/validation"

	"github.com/gin-gonic/gin"
)

type AuthorHandler struct {
	svc service.AuthorService
}

func NewAuthorHandler(svc service.AuthorService) *AuthorHandler {
	return &AuthorHandler{svc: svc}
}

func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", middleware.ValidateResourceID(), h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", middleware.ValidateResourceID(), h.Update)
	rg.DELETE("/:id", middleware.ValidateResourceID(), h.Delete)
}

func (h *AuthorHandler) List(c *gin.Context) {
	filters, err := validation.ParseAuthorListQuery(c.Request.URL.Query())
	if err != nil {
		invalidQuery(c)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	list, total, err := h.svc.GetAll(ctx, filters)
	if err != nil {
		internalError(c, err)
		return
	}

	authors := make([]dto.AuthorResponse, 0, len(list))
	for _, a := range list {
		authors = append(authors, dto.FromAuthorToResponse(a))
	}
	c.JSON(http.StatusOK, dto.AuthorListResponse{
		Authors: authors,
		Total:   total,
		Limit:   filters.Limit,
		Offset:  filters.Offset,
	})
}

func (h *AuthorHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	a, err := h.svc.GetByID(ctx, middleware.ResourceID(c))
	if errors.Is(err, models.ErrAuthorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAuthorToResponse(*a))
}

func (h *AuthorHandler) Create(c *gin.Context) {
	payload := decodePayload(c)
	if messages := validation.ValidateAuthorPayload(payload); len(messages) > 0 {
		validationError(c, messages)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	created, err := h.svc.Create(ctx, dto.AuthorInputFromPayload(payload))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromAuthorToResponse(*created))
}

func (h *AuthorHandler) Update(c *gin.Context) {
	payload := decodePayload(c)
	if messages := validation.ValidateAuthorPayload(payload); len(messages) > 0 {
		validationError(c, messages)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	updated, err := h.svc.Update(ctx, middleware.ResourceID(c), dto.AuthorInputFromPayload(payload))
	if errors.Is(err, models.ErrAuthorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromAuthorToResponse(*updated))
}

func (h *AuthorHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	err := h.svc.Delete(ctx, middleware.ResourceID(c))
	switch {
	case errors.Is(err, models.ErrAuthorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Author not found"})
	case errors.Is(err, models.ErrSoleAuthorPaper):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Constraint Error",
			"message": models.ErrSoleAuthorPaper.Error(),
		})
	case err != nil:
		internalError(c, err)
	default:
		c.Status(http.StatusNoContent)
	}
}
