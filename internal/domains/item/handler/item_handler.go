package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"inventory-backend/internal/domains/item"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/response"
	"inventory-backend/internal/shared/utils"
)

type ItemHandler struct {
	svc item.Service
}

func NewItemHandler(svc item.Service) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// Create handles POST /v1/items.
func (h *ItemHandler) Create(c *gin.Context) {
	var req item.CreateItemReq
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
		respondItemError(c, err)
		return
	}

	response.Created(c, created)
}

// GetByID handles GET /v1/items/:id.
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Item not found")
		return
	}

	i, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondItemError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, i)
}

// List handles GET /v1/items with optional catalogue_item_id and
// system_id filters. Invalid filter ids match nothing.
func (h *ItemHandler) List(c *gin.Context) {
	var filter item.ListFilter
	if raw, ok := c.GetQuery("catalogue_item_id"); ok {
		if id, ok := utils.ParseFilterObjectID(raw); ok {
			filter.CatalogueItemID = &id
		} else {
			filter.MatchesNone = true
		}
	}
	if raw, ok := c.GetQuery("system_id"); ok {
		if id, ok := utils.ParseFilterObjectID(raw); ok {
			filter.SystemID = &id
		} else {
			filter.MatchesNone = true
		}
	}

	items, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondItemError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, items)
}

// Update handles PATCH /v1/items/:id.
func (h *ItemHandler) Update(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Item not found")
		return
	}

	var req item.UpdateItemReq
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
		respondItemError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// Delete handles DELETE /v1/items/:id.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Item not found")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondItemError(c, err)
		return
	}

	response.NoContent(c)
}

func respondItemError(c *gin.Context, err error) {
	var (
		invalidAction  apperrors.InvalidActionError
		invalidValue   apperrors.InvalidPropertyValueError
		missingProp    apperrors.MissingMandatoryPropertyError
		integrityError apperrors.DatabaseIntegrityError
	)

	switch {
	case errors.Is(err, item.ErrItemNotFound):
		response.NotFound(c, "Item not found")
	case errors.Is(err, item.ErrCatalogueItemNotFound):
		response.UnprocessableEntity(c, "The specified catalogue item does not exist")
	case errors.Is(err, item.ErrSystemNotFound):
		response.UnprocessableEntity(c, "The specified system does not exist")
	case errors.Is(err, item.ErrUsageStatusNotFound):
		response.UnprocessableEntity(c, "The specified usage status does not exist")
	case errors.Is(err, utils.ErrInvalidObjectID):
		response.UnprocessableEntity(c, "Invalid property ID format")
	case errors.As(err, &invalidAction):
		response.UnprocessableEntity(c, invalidAction.Detail)
	case errors.As(err, &invalidValue):
		response.UnprocessableEntity(c, invalidValue.Detail)
	case errors.As(err, &missingProp):
		response.UnprocessableEntity(c, missingProp.Detail)
	case errors.As(err, &integrityError):
		log.Error().Str("detail", integrityError.Detail).Msg("Database integrity violation")
		response.InternalServerError(c)
	default:
		log.Error().Err(err).Msg("Item operation failed")
		response.InternalServerError(c)
	}
}
