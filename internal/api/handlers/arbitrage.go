package handlers

import (
	"errors"
	"net/http"

	"carbon-arbitrage/internal/api/models"
	"carbon-arbitrage/internal/arbitrage"
	"carbon-arbitrage/internal/config"
	"carbon-arbitrage/internal/data"
	"carbon-arbitrage/internal/engine"
	"carbon-arbitrage/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ArbitrageHandler runs computations and serves stored results.
type ArbitrageHandler struct {
	cfg     *config.Config
	calc    *arbitrage.Calculator
	results *data.ResultStore
	log     zerolog.Logger
}

// storedRun is what the result store keeps per computation.
type storedRun struct {
	Summary models.ArbitrageSummary
	Ledger  models.LedgerPair
}

func NewArbitrageHandler(cfg *config.Config, calc *arbitrage.Calculator, results *data.ResultStore, log zerolog.Logger) *ArbitrageHandler {
	return &ArbitrageHandler{cfg: cfg, calc: calc, results: results, log: log}
}

// RunArbitrage handles POST /api/v1/arbitrage.
func (h *ArbitrageHandler) RunArbitrage(c *gin.Context) {
	var req models.ArbitrageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	params := arbitrage.Params{
		SCC:  h.cfg.Defaults.SCC,
		LCOE: h.cfg.Defaults.LCOE,
		Beta: h.cfg.Defaults.Beta,
	}
	if req.SCC != nil {
		params.SCC = *req.SCC
	}
	if req.LCOE != nil {
		params.LCOE = *req.LCOE
	}
	if req.Beta != nil {
		params.Beta = *req.Beta
	}

	reference := h.cfg.Scenarios.Reference
	if req.ReferenceScenario != "" {
		reference = req.ReferenceScenario
	}
	alternative := h.cfg.Scenarios.Alternative
	if req.AlternativeScenario != "" {
		alternative = req.AlternativeScenario
	}

	result, err := h.calc.Compute(reference, alternative, params)
	if err != nil {
		h.writeComputeError(c, err)
		return
	}

	refRows, altRows, err := h.calc.Ledgers(reference, alternative, params.Beta)
	if err != nil {
		h.writeComputeError(c, err)
		return
	}

	summary := models.ArbitrageSummary{
		CoalProduction2022Mt: result.BaseYearProductionMt,
		CostTrillionUSD:      result.CostTrillion,
		AvoidedEmissionsGt:   result.AvoidedEmissionsGt,
		BenefitTrillionUSD:   result.BenefitTrillion,
		ArbitrageTrillionUSD: result.BenefitTrillion - result.CostTrillion,
		DiscountRate:         result.DiscountRate,
		Parameters: models.ParametersUsed{
			SCC:  params.SCC,
			LCOE: params.LCOE,
			Beta: params.Beta,
		},
		Scenarios: models.ScenarioPair{
			Reference:   reference,
			Alternative: alternative,
		},
	}
	ledger := models.LedgerPair{
		Reference:   toLedgerRows(refRows),
		Alternative: toLedgerRows(altRows),
	}

	id := h.results.Put(storedRun{Summary: summary, Ledger: ledger})

	h.log.Info().
		Str("id", id).
		Float64("scc", params.SCC).
		Float64("lcoe", params.LCOE).
		Float64("beta", params.Beta).
		Float64("arbitrage_trillion_usd", summary.ArbitrageTrillionUSD).
		Msg("computed carbon arbitrage")

	resp := models.ArbitrageResponse{
		ID:      id,
		Status:  "completed",
		Summary: summary,
	}
	if req.IncludeLedger {
		resp.Ledger = &ledger
	}
	c.JSON(http.StatusOK, resp)
}

// GetLedger handles GET /api/v1/arbitrage/:id/ledger.
func (h *ArbitrageHandler) GetLedger(c *gin.Context) {
	id := c.Param("id")
	payload, ok := h.results.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "RESULT_NOT_FOUND",
				Message: "No stored result for that ID; it may have expired. Re-run the computation.",
			},
		})
		return
	}

	run, ok := payload.(storedRun)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: "Stored result has an unexpected shape",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      id,
		"summary": run.Summary,
		"ledger":  run.Ledger,
	})
}

// writeComputeError maps pipeline errors onto the error envelope. Unknown
// scenarios are a client problem; a domain error means the projection window
// disagrees with the dataset's knot range, which is a server-side
// misconfiguration.
func (h *ArbitrageHandler) writeComputeError(c *gin.Context, err error) {
	var notFound *model.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_SCENARIO",
				Message: notFound.Error(),
			},
		})
		return
	}

	var domain *model.DomainError
	if errors.As(err, &domain) {
		h.log.Error().Err(err).Msg("projection window outside dataset knot range")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PROJECTION_WINDOW",
				Message: domain.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "COMPUTE_ERROR",
			Message: err.Error(),
		},
	})
}

func toLedgerRows(rows []engine.LedgerRow) []models.LedgerRow {
	out := make([]models.LedgerRow, len(rows))
	for i, r := range rows {
		out[i] = models.LedgerRow{
			Year:                      r.Year,
			EmissionsMt:               r.EmissionsMt,
			ProductionEJ:              r.ProductionEJ,
			DiscountFactor:            r.DiscountFactor,
			DiscountedProductionEJ:    r.DiscountedProductionEJ,
			CumEmissionsGt:            r.CumEmissionsGt,
			CumDiscountedProductionEJ: r.CumDiscountedProductionEJ,
		}
	}
	return out
}
