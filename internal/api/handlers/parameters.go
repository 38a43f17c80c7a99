package handlers

import (
	"net/http"

	"carbon-arbitrage/internal/api/models"
	"carbon-arbitrage/internal/config"

	"github.com/gin-gonic/gin"
)

// ParameterHandler describes the tunable parameters so UI clients can build
// their sliders from the API instead of hardcoding ranges.
type ParameterHandler struct {
	defaults config.ParamsConfig
}

func NewParameterHandler(defaults config.ParamsConfig) *ParameterHandler {
	return &ParameterHandler{defaults: defaults}
}

// ListParameters handles GET /api/v1/parameters.
func (h *ParameterHandler) ListParameters(c *gin.Context) {
	parameters := []models.ParameterInfo{
		{
			Name:        "scc",
			Label:       "Social Cost of Carbon",
			Unit:        "$/tCO2",
			Min:         0,
			Max:         200,
			Step:        5,
			Default:     h.defaults.SCC,
			Description: "Dollar value assigned to one tonne of avoided CO2 emissions.",
		},
		{
			Name:        "lcoe",
			Label:       "Global LCOE Average",
			Unit:        "$/MWh",
			Min:         0,
			Max:         200,
			Step:        1,
			Default:     h.defaults.LCOE,
			Description: "Levelized cost of the replacement energy (wind+solar), assumed constant.",
		},
		{
			Name:        "beta",
			Label:       "Beta",
			Min:         0,
			Max:         2,
			Step:        0.01,
			Default:     h.defaults.Beta,
			Description: "Unlevered beta feeding the discount-rate formula.",
		},
	}
	c.JSON(http.StatusOK, gin.H{"parameters": parameters})
}
