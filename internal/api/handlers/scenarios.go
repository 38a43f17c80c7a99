package handlers

import (
	"net/http"

	"carbon-arbitrage/internal/api/models"
	"carbon-arbitrage/internal/data"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler serves the contents of the scenario data store.
type ScenarioHandler struct {
	store *data.Store
}

func NewScenarioHandler(store *data.Store) *ScenarioHandler {
	return &ScenarioHandler{store: store}
}

// ListScenarios handles GET /api/v1/scenarios.
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	names := h.store.Scenarios()
	scenarios := make([]models.ScenarioInfo, 0, len(names))
	for _, name := range names {
		scenarios = append(scenarios, models.ScenarioInfo{
			Name:      name,
			Variables: h.store.Variables(),
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"scenarios": scenarios,
		"count":     len(scenarios),
	})
}
