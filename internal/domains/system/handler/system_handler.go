package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"inventory-backend/internal/domains/system"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/response"
	"inventory-backend/internal/shared/utils"
)

type SystemHandler struct {
	svc system.Service
}

func NewSystemHandler(svc system.Service) *SystemHandler {
	return &SystemHandler{svc: svc}
}

// Create handles POST /v1/systems.
func (h *SystemHandler) Create(c *gin.Context) {
	var req system.CreateSystemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondSystemError(c, err, "")
		return
	}

	response.Created(c, created)
}

// GetByID handles GET /v1/systems/:id.
func (h *SystemHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "System not found")
		return
	}

	sys, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondSystemError(c, err, "")
		return
	}

	response.JSON(c, http.StatusOK, sys)
}

// List handles GET /v1/systems. The parent_id filter accepts the
// literal "null" for roots; an invalid id matches nothing.
func (h *SystemHandler) List(c *gin.Context) {
	var filter system.ListFilter
	if raw, ok := c.GetQuery("parent_id"); ok {
		if raw == "null" {
			filter.RootsOnly = true
		} else if id, ok := utils.ParseFilterObjectID(raw); ok {
			filter.ParentID = &id
		} else {
			filter.MatchesNone = true
		}
	}

	systems, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list systems")
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, systems)
}

// Update handles PATCH /v1/systems/:id.
func (h *SystemHandler) Update(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "System not found")
		return
	}

	var req system.UpdateSystemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondSystemError(c, err, "updated")
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// Delete handles DELETE /v1/systems/:id.
func (h *SystemHandler) Delete(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "System not found")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondSystemError(c, err, "deleted")
		return
	}

	response.NoContent(c)
}

// Breadcrumbs handles GET /v1/systems/:id/breadcrumbs.
func (h *SystemHandler) Breadcrumbs(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "System not found")
		return
	}

	trail, err := h.svc.Breadcrumbs(c.Request.Context(), id)
	if err != nil {
		respondSystemError(c, err, "")
		return
	}

	response.JSON(c, http.StatusOK, trail)
}

func respondSystemError(c *gin.Context, err error, verb string) {
	var (
		invalidAction  apperrors.InvalidActionError
		integrityError apperrors.DatabaseIntegrityError
	)

	switch {
	case errors.Is(err, system.ErrSystemNotFound):
		response.NotFound(c, "System not found")
	case errors.Is(err, system.ErrParentNotFound):
		response.UnprocessableEntity(c, "The specified parent system does not exist")
	case errors.Is(err, system.ErrDuplicateSystem):
		response.Conflict(c, "A system with the same name already exists within the parent system")
	case errors.Is(err, system.ErrChildElementsExist):
		response.Conflict(c, fmt.Sprintf("System with ID %s has child elements and cannot be %s", c.Param("id"), verb))
	case errors.As(err, &invalidAction):
		response.UnprocessableEntity(c, invalidAction.Detail)
	case errors.As(err, &integrityError):
		log.Error().Str("detail", integrityError.Detail).Msg("Database integrity violation")
		response.InternalServerError(c)
	default:
		log.Error().Err(err).Msg("System operation failed")
		response.InternalServerError(c)
	}
}
