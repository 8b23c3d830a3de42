package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"vent_sizing/internal/elevation"
)

// @Summary      Resolve site elevation and barometric pressure
// @Description  Accepts either a postal code (US ZIP or Canadian FSA) or an explicit elevation in feet.
// @Tags         site
// @Produce      json
// @Param        postal_code   query  string  false  "Postal code"
// @Param        elevation_ft  query  number  false  "Explicit elevation override"
// @Success      200  {object}  map[string]interface{}  "elevation_ft, barometric_in_hg, matched"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/elevation [get]
// @Security     BearerAuth
func (h *Handler) lookupElevation(c *gin.Context) {
	if qs := c.Query("elevation_ft"); qs != "" {
		ft, err := strconv.ParseFloat(qs, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'elevation_ft'"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"elevation_ft":     ft,
			"barometric_in_hg": elevation.PressureInHg(ft),
			"matched":          true,
		})
		return
	}

	code := c.Query("postal_code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide 'postal_code' or 'elevation_ft'"})
		return
	}
	ft, matched := elevation.Lookup(code)
	c.JSON(http.StatusOK, gin.H{
		"postal_code":      code,
		"elevation_ft":     ft,
		"barometric_in_hg": elevation.PressureInHg(ft),
		"matched":          matched,
	})
}
