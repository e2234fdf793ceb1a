package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"inventory-backend/internal/domains/unit"
	"inventory-backend/internal/shared/response"
	"inventory-backend/internal/shared/utils"
)

type UnitHandler struct {
	svc unit.Service
}

func NewUnitHandler(svc unit.Service) *UnitHandler {
	return &UnitHandler{svc: svc}
}

// Create handles POST /v1/units.
func (h *UnitHandler) Create(c *gin.Context) {
	var req unit.CreateUnitReq
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
		if errors.Is(err, unit.ErrDuplicateUnit) {
			response.Conflict(c, "A unit with the same value already exists")
			return
		}
		log.Error().Err(err).Msg("Failed to create unit")
		response.InternalServerError(c)
		return
	}

	response.Created(c, created)
}

// GetByID handles GET /v1/units/:id.
func (h *UnitHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Unit not found")
		return
	}

	u, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, unit.ErrUnitNotFound) {
			response.NotFound(c, "Unit not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get unit")
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, u)
}

// List handles GET /v1/units.
func (h *UnitHandler) List(c *gin.Context) {
	units, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list units")
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, units)
}

// Delete handles DELETE /v1/units/:id.
func (h *UnitHandler) Delete(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Unit not found")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, unit.ErrUnitNotFound):
			response.NotFound(c, "Unit not found")
		case errors.Is(err, unit.ErrUnitInUse):
			response.Conflict(c, "The specified unit is a part of a catalogue category")
		default:
			log.Error().Err(err).Msg("Failed to delete unit")
			response.InternalServerError(c)
		}
		return
	}

	response.NoContent(c)
}
