package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"paperhub/internal/httpapi/dto"
	"paperhub/internal/httpapi/middleware"
	"paperhub/internal/httpapi/models"
	"paperhub/internal/httpapi/service"
	"paperhub/internal/httpapi/validation"

	"github.com/gin-gonic/gin"
)

const requestTimeout = 5 * time.Second

type PaperHandler struct {
	svc service.PaperService
}

func NewPaperHandler(svc service.PaperService) *PaperHandler {
	return &PaperHandler{svc: svc}
}

func (h *PaperHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", middleware.ValidateResourceID(), h.Get)
	rg.POST("", h.Create)
	rg.PUT("/:id", middleware.ValidateResourceID(), h.Update)
	rg.DELETE("/:id", middleware.ValidateResourceID(), h.Delete)
}

func (h *PaperHandler) List(c *gin.Context) {
	filters, err := validation.ParsePaperListQuery(c.Request.URL.Query())
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

	papers := make([]dto.PaperResponse, 0, len(list))
	for _, p := range list {
		papers = append(papers, dto.FromPaperToResponse(p))
	}
	c.JSON(http.StatusOK, dto.PaperListResponse{
		Papers: papers,
		Total:  total,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	})
}

func (h *PaperHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	p, err := h.svc.GetByID(ctx, middleware.ResourceID(c))
	if errors.Is(err, models.ErrPaperNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPaperToResponse(*p))
}

func (h *PaperHandler) Create(c *gin.Context) {
	payload := decodePayload(c)
	if messages := validation.ValidatePaperPayload(payload); len(messages) > 0 {
		validationError(c, messages)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	created, err := h.svc.Create(ctx, dto.PaperInputFromPayload(payload))
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromPaperToResponse(*created))
}

func (h *PaperHandler) Update(c *gin.Context) {
	payload := decodePayload(c)
	// body validation runs before the existence check, so a bad body on a
	// missing paper is still a 400
	if messages := validation.ValidatePaperPayload(payload); len(messages) > 0 {
		validationError(c, messages)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	updated, err := h.svc.Update(ctx, middleware.ResourceID(c), dto.PaperInputFromPayload(payload))
	if errors.Is(err, models.ErrPaperNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPaperToResponse(*updated))
}

func (h *PaperHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	err := h.svc.Delete(ctx, middleware.ResourceID(c))
	if errors.Is(err, models.ErrPaperNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Paper not found"})
		return
	}
	if err != nil {
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
