package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "orcamento_bot/internal/adapter/http/dto/response"
	"orcamento_bot/internal/usecase"
	"orcamento_bot/pkg"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// Refresh godoc
// @Summary Reload the product catalog from the backend
// @Tags catalog
// @Produce json
// @Success 200 {object} response.CatalogRefreshResponse
// @Failure 502 {object} pkg.HTTPError
// @Security Bearer
// @Router /catalog/refresh [post]
func (h *CatalogHandler) Refresh(c *gin.Context) {
	n, err := h.usecase.Refresh(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CatalogRefreshResponse{Entries: n})
}

// Lookup godoc
// @Summary Resolve product text against the catalog
// @Tags catalog
// @Produce json
// @Param q query string true "Product text or code"
// @Success 200 {object} response.CatalogLookupResponse
// @Failure 400 {object} pkg.HTTPError
// @Security Bearer
// @Router /catalog/lookup [get]
func (h *CatalogHandler) Lookup(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Query parameter q is required", http.StatusBadRequest).ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogMatch(q, h.usecase.Lookup(q)))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCatalogEmpty):
		return pkg.NewDomainError("CATALOG_EMPTY", "Catalog source returned no usable records", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrCatalogRefreshFailed):
		return pkg.NewDomainError("CATALOG_UNAVAILABLE", "Catalog source unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
