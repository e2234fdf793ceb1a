package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/shared/apperrors"
	"inventory-backend/internal/shared/response"
	"inventory-backend/internal/shared/utils"
)

type CatalogueCategoryHandler struct {
	svc cataloguecategory.Service
}

func NewCatalogueCategoryHandler(svc cataloguecategory.Service) *CatalogueCategoryHandler {
	return &CatalogueCategoryHandler{svc: svc}
}

// Create handles POST /v1/catalogue-categories.
func (h *CatalogueCategoryHandler) Create(c *gin.Context) {
	var req cataloguecategory.CreateCatalogueCategoryReq
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
		respondCategoryError(c, err, "created")
		return
	}

	response.Created(c, created)
}

// GetByID handles GET /v1/catalogue-categories/:id.
func (h *CatalogueCategoryHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Catalogue category not found")
		return
	}

	category, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCategoryError(c, err, "")
		return
	}

	response.JSON(c, http.StatusOK, category)
}

// List handles GET /v1/catalogue-categories. The parent_id filter
// accepts the literal "null" for roots; an invalid id matches nothing.
func (h *CatalogueCategoryHandler) List(c *gin.Context) {
	var filter cataloguecategory.ListFilter
	if raw, ok := c.GetQuery("parent_id"); ok {
		if raw == "null" {
			filter.RootsOnly = true
		} else if id, ok := utils.ParseFilterObjectID(raw); ok {
			filter.ParentID = &id
		} else {
			filter.MatchesNone = true
		}
	}

	categories, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list catalogue categories")
		response.InternalServerError(c)
		return
	}

	response.JSON(c, http.StatusOK, categories)
}

// Update handles PATCH /v1/catalogue-categories/:id.
func (h *CatalogueCategoryHandler) Update(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Catalogue category not found")
		return
	}

	var req cataloguecategory.UpdateCatalogueCategoryReq
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
		respondCategoryError(c, err, "updated")
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// Delete handles DELETE /v1/catalogue-categories/:id.
func (h *CatalogueCategoryHandler) Delete(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Catalogue category not found")
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondCategoryError(c, err, "deleted")
		return
	}

	response.NoContent(c)
}

// Breadcrumbs handles GET /v1/catalogue-categories/:id/breadcrumbs.
func (h *CatalogueCategoryHandler) Breadcrumbs(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Catalogue category not found")
		return
	}

	trail, err := h.svc.Breadcrumbs(c.Request.Context(), id)
	if err != nil {
		respondCategoryError(c, err, "")
		return
	}

	response.JSON(c, http.StatusOK, trail)
}

// respondCategoryError maps service errors to the response envelope.
// verb names the blocked operation in children-exist details.
func respondCategoryError(c *gin.Context, err error, verb string) {
	var (
		invalidAction  apperrors.InvalidActionError
		invalidDef     apperrors.InvalidPropertyDefinitionError
		duplicateName  apperrors.DuplicatePropertyNameError
		invalidValue   apperrors.InvalidPropertyValueError
		missingProp    apperrors.MissingMandatoryPropertyError
		integrityError apperrors.DatabaseIntegrityError
	)

	switch {
	case errors.Is(err, cataloguecategory.ErrCatalogueCategoryNotFound):
		response.NotFound(c, "Catalogue category not found")
	case errors.Is(err, cataloguecategory.ErrPropertyNotFound):
		response.NotFound(c, "Property not found")
	case errors.Is(err, cataloguecategory.ErrParentNotFound):
		response.UnprocessableEntity(c, "The specified parent catalogue category does not exist")
	case errors.Is(err, cataloguecategory.ErrLeafParent):
		response.Conflict(c, "Adding a catalogue category within a leaf catalogue category is not allowed")
	case errors.Is(err, cataloguecategory.ErrDuplicateCatalogueCategory):
		response.Conflict(c, "A catalogue category with the same name already exists within the parent catalogue category")
	case errors.Is(err, cataloguecategory.ErrChildElementsExist):
		response.Conflict(c, fmt.Sprintf("Catalogue category with ID %s has child elements and cannot be %s", c.Param("id"), verb))
	case errors.Is(err, cataloguecategory.ErrUnitNotFound):
		response.UnprocessableEntity(c, "The specified unit does not exist")
	case errors.As(err, &invalidAction):
		response.UnprocessableEntity(c, invalidAction.Detail)
	case errors.As(err, &invalidDef):
		response.UnprocessableEntity(c, invalidDef.Detail)
	case errors.As(err, &duplicateName):
		response.UnprocessableEntity(c, duplicateName.Detail)
	case errors.As(err, &invalidValue):
		response.UnprocessableEntity(c, invalidValue.Detail)
	case errors.As(err, &missingProp):
		response.UnprocessableEntity(c, missingProp.Detail)
	case errors.As(err, &integrityError):
		log.Error().Str("detail", integrityError.Detail).Msg("Database integrity violation")
		response.InternalServerError(c)
	default:
		log.Error().Err(err).Msg("Catalogue category operation failed")
		response.InternalServerError(c)
	}
}
