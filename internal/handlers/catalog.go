package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary      List fan curves
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, curves"
// @Router       /api/v1/catalog/curves [get]
// @Security     BearerAuth
func (h *Handler) listCurves(c *gin.Context) {
	curves := h.services.CatalogAccess.Curves()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(curves),
		"curves": curves,
	})
}

// @Summary      List inducer series
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/catalog/series [get]
// @Security     BearerAuth
func (h *Handler) listSeries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"series": h.services.CatalogAccess.Series()})
}

// @Summary      List a series' models
// @Tags         catalog
// @Produce      json
// @Param        name  path  string  true  "Series name"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/catalog/series/{name}/models [get]
// @Security     BearerAuth
func (h *Handler) listSeriesModels(c *gin.Context) {
	name := c.Param("name")
	models := h.services.CatalogAccess.SeriesModels(name)
	if len(models) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown series " + name})
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": name, "models": models})
}

type importRequest struct {
	Path string `json:"path" binding:"required"`
}

// @Summary      Import a catalog workbook
// @Description  Replaces the active catalog with the curves in an xlsx workbook on the server filesystem.
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  importRequest  true  "Workbook location"
// @Success      200   {object}  map[string]interface{}  "imported curve count"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/catalog/import [post]
// @Security     BearerAuth
func (h *Handler) importCatalog(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	n, err := h.services.CatalogAccess.ImportXLSX(c.Request.Context(), req.Path)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("catalog_import_failed", "err", err, "path", req.Path)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if h.log != nil {
		h.log.Infow("catalog_imported", "path", req.Path, "curves", n)
	}
	c.JSON(http.StatusOK, gin.H{"imported": n})
}
