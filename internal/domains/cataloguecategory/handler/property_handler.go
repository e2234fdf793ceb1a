package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventory-backend/internal/domains/cataloguecategory"
	"inventory-backend/internal/shared/response"
	"inventory-backend/internal/shared/utils"
)

type PropertyHandler struct {
	svc cataloguecategory.PropertyService
}

func NewPropertyHandler(svc cataloguecategory.PropertyService) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

// Create handles POST /v1/catalogue-categories/:id/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	categoryID, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Catalogue category not found")
		return
	}

	var req cataloguecategory.CreatePropertyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	created, err := h.svc.Create(c.Request.Context(), categoryID, req)
	if err != nil {
		respondCategoryError(c, err, "")
		return
	}

	response.Created(c, created)
}

// Update handles PATCH /v1/catalogue-categories/:id/properties/:propertyID.
func (h *PropertyHandler) Update(c *gin.Context) {
	categoryID, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Catalogue category not found")
		return
	}
	propertyID, err := utils.ParseObjectID(c.Param("propertyID"))
	if err != nil {
		response.NotFound(c, "Property not found")
		return
	}

	var req cataloguecategory.UpdatePropertyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationError(c, err)
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), categoryID, propertyID, req)
	if err != nil {
		respondCategoryError(c, err, "")
		return
	}

	response.JSON(c, http.StatusOK, updated)
}
