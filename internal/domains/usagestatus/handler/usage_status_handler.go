package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"inventory-backend/internal/domains/usagestatus"
	"inventory-backend/internal/shared/response"
	"inventory-backend/internal/shared/utils"
)

type UsageStatusHandler struct {
	svc usagestatus.Service
}

func NewUsageStatusHandler(svc usagestatus.Service) *UsageStatusHandler {
	return &UsageStatusHandler{svc: svc}
}

// Create handles POST /v1/usage-statuses.
func (h *UsageStatusHandler) Create(c *gin.Context) {
	var req usagestatus.CreateUsageStatusReq
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
		if errors.Is(err, usagestatus.ErrDuplicateUsageStatus) {
			response.Conflict(c, "A usage status with the same value already exists")
			return
		}
		log.Error().Err(err).Msg("Failed to create usage status")
		response.InternalServerError(c)
		return
	}

	response.Created(c, created)
}

// GetByID handles GET /v1/usage-statuses/:id.
func (h *UsageStatusHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Usage status not found")
		return
	}

	s, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usagestatus.ErrUsageStatusNotFound) {
			response.NotFound(c, "Usage status not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get usage status")
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, s)
}

// List handles GET /v1/usage-statuses.
func (h *UsageStatusHandler) List(c *gin.Context) {
	statuses, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list usage statuses")
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, statuses)
}

// Delete handles DELETE /v1/usage-statuses/:id.
func (h *UsageStatusHandler) Delete(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Usage status not found")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usagestatus.ErrUsageStatusNotFound):
			response.NotFound(c, "Usage status not found")
		case errors.Is(err, usagestatus.ErrUsageStatusInUse):
			response.Conflict(c, "The specified usage status is a part of an item")
		default:
			log.Error().Err(err).Msg("Failed to delete usage status")
			response.InternalServerError(c)
		}
		return
	}

	response.NoContent(c)
}
