package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"inventory-backend/internal/domains/catalogueitem"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/response"
	"inventory-backend/internal/shared/utils"
)

type CatalogueItemHandler struct {
	svc catalogueitem.Service
}

func NewCatalogueItemHandler(svc catalogueitem.Service) *CatalogueItemHandler {
	return &CatalogueItemHandler{svc: svc}
}

// Create handles POST /v1/catalogue-items.
func (h *CatalogueItemHandler) Create(c *gin.Context) {
	var req catalogueitem.CreateCatalogueItemReq
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
		respondCatalogueItemError(c, err, "")
		return
	}

	response.Created(c, created)
}

// GetByID handles GET /v1/catalogue-items/:id.
func (h *CatalogueItemHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Catalogue item not found")
		return
	}

	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCatalogueItemError(c, err, "")
		return
	}

	response.JSON(c, http.StatusOK, item)
}

// List handles GET /v1/catalogue-items with an optional
// catalogue_category_id filter. An invalid filter id matches nothing.
func (h *CatalogueItemHandler) List(c *gin.Context) {
	var filter catalogueitem.ListFilter
	if raw, ok := c.GetQuery("catalogue_category_id"); ok {
		if id, ok := utils.ParseFilterObjectID(raw); ok {
			filter.CatalogueCategoryID = &id
		} else {
			filter.MatchesNone = true
		}
	}

	items, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list catalogue items")
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, items)
}

// Update handles PATCH /v1/catalogue-items/:id.
func (h *CatalogueItemHandler) Update(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Catalogue item not found")
		return
	}

	var req catalogueitem.UpdateCatalogueItemReq
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
		respondCatalogueItemError(c, err, "updated")
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// Delete handles DELETE /v1/catalogue-items/:id.
func (h *CatalogueItemHandler) Delete(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Catalogue item not found")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondCatalogueItemError(c, err, "deleted")
		return
	}

	response.NoContent(c)
}

func respondCatalogueItemError(c *gin.Context, err error, verb string) {
	var (
		invalidAction apperrors.InvalidActionError
		invalidValue  apperrors.InvalidPropertyValueError
		missingProp   apperrors.MissingMandatoryPropertyError
	)

	switch {
	case errors.Is(err, catalogueitem.ErrCatalogueItemNotFound):
		response.NotFound(c, "Catalogue item not found")
	case errors.Is(err, catalogueitem.ErrCategoryNotFound):
		response.UnprocessableEntity(c, "The specified catalogue category does not exist")
	case errors.Is(err, catalogueitem.ErrNonLeafCategory):
		response.Conflict(c, "Cannot add catalogue item to a non-leaf catalogue category")
	case errors.Is(err, catalogueitem.ErrManufacturerNotFound):
		response.UnprocessableEntity(c, "The specified manufacturer does not exist")
	case errors.Is(err, catalogueitem.ErrReplacementNotFound):
		response.UnprocessableEntity(c, "The specified replacement catalogue item does not exist")
	case errors.Is(err, catalogueitem.ErrChildElementsExist):
		response.Conflict(c, fmt.Sprintf("Catalogue item with ID %s has child elements and cannot be %s", c.Param("id"), verb))
	case errors.Is(err, utils.ErrInvalidObjectID):
		response.UnprocessableEntity(c, "Invalid property ID format")
	case errors.As(err, &invalidAction):
		response.UnprocessableEntity(c, invalidAction.Detail)
	case errors.As(err, &invalidValue):
		response.UnprocessableEntity(c, invalidValue.Detail)
	case errors.As(err, &missingProp):
		response.UnprocessableEntity(c, missingProp.Detail)
	default:
		log.Error().Err(err).Msg("Catalogue item operation failed")
		response.InternalServerError(c)
	}
}
