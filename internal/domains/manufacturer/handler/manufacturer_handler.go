package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"inventory-backend/internal/domains/manufacturer"
	"inventory-backend/internal/shared/response"
	"inventory-backend/internal/shared/utils"
)

type ManufacturerHandler struct {
	svc manufacturer.Service
}

func NewManufacturerHandler(svc manufacturer.Service) *ManufacturerHandler {
	return &ManufacturerHandler{svc: svc}
}

// Create handles POST /v1/manufacturers.
func (h *ManufacturerHandler) Create(c *gin.Context) {
	var req manufacturer.CreateManufacturerReq
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
		if errors.Is(err, manufacturer.ErrDuplicateManufacturer) {
			response.Conflict(c, "A manufacturer with the same name already exists")
			return
		}
		log.Error().Err(err).Msg("Failed to create manufacturer")
		response.InternalServerError(c)
		return
	}

	response.Created(c, created)
}

// GetByID handles GET /v1/manufacturers/:id.
func (h *ManufacturerHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Manufacturer not found")
		return
	}

	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, manufacturer.ErrManufacturerNotFound) {
			response.NotFound(c, "Manufacturer not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get manufacturer")
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, m)
}

// List handles GET /v1/manufacturers.
func (h *ManufacturerHandler) List(c *gin.Context) {
	manufacturers, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list manufacturers")
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, manufacturers)
}

// Update handles PATCH /v1/manufacturers/:id.
func (h *ManufacturerHandler) Update(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Manufacturer not found")
		return
	}

	var req manufacturer.UpdateManufacturerReq
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
		switch {
		case errors.Is(err, manufacturer.ErrManufacturerNotFound):
			response.NotFound(c, "Manufacturer not found")
		case errors.Is(err, manufacturer.ErrDuplicateManufacturer):
			response.Conflict(c, "A manufacturer with the same name already exists")
		default:
			log.Error().Err(err).Msg("Failed to update manufacturer")
			response.InternalServerError(c)
		}
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// Delete handles DELETE /v1/manufacturers/:id.
func (h *ManufacturerHandler) Delete(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Manufacturer not found")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, manufacturer.ErrManufacturerNotFound):
			response.NotFound(c, "Manufacturer not found")
		case errors.Is(err, manufacturer.ErrManufacturerInUse):
			response.Conflict(c, "The specified manufacturer is a part of a catalogue item")
		default:
			log.Error().Err(err).Msg("Failed to delete manufacturer")
			response.InternalServerError(c)
		}
		return
	}

	response.NoContent(c)
}
