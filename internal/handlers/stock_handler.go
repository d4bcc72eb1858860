package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/tickerlens/internal/interfaces"
	"github.com/ternarybob/tickerlens/internal/services/stock"
)

// Client-facing error messages
const (
	msgInvalidSymbol  = "Invalid stock symbol"
	msgAnalysisFailed = "Internal server error while analyzing stock"
	msgValidateFailed = "Error validating stock symbol"
	msgListFailed     = "Error listing analyses"
)

// StockHandler serves the stock analysis and symbol validation endpoints
type StockHandler struct {
	stockService interfaces.StockService
	logger       arbor.ILogger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(stockService interfaces.StockService, logger arbor.ILogger) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		logger:       logger,
	}
}

// GetStockHandler handles GET /api/stock/{symbol}
func (h *StockHandler) GetStockHandler(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	resp, err := h.stockService.GetAnalysis(r.Context(), symbol)
	if err != nil {
		var notFound *stock.NotFoundError
		switch {
		case errors.Is(err, stock.ErrInvalidSymbol):
			WriteError(w, http.StatusBadRequest, msgInvalidSymbol)
		case errors.As(err, &notFound):
			WriteError(w, http.StatusNotFound, notFound.Error())
		default:
			h.logger.Error().Err(err).Str("symbol", symbol).Msg("Stock analysis failed")
			WriteError(w, http.StatusInternalServerError, msgAnalysisFailed)
		}
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// ValidateHandler handles GET /api/validate/{symbol}
func (h *StockHandler) ValidateHandler(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	valid, err := h.stockService.ValidateSymbol(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, stock.ErrInvalidSymbol) {
			WriteError(w, http.StatusBadRequest, msgInvalidSymbol)
			return
		}
		h.logger.Error().Err(err).Str("symbol", symbol).Msg("Symbol validation failed")
		WriteError(w, http.StatusInternalServerError, msgValidateFailed)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"valid": valid})
}

// ListHandler handles GET /api/analyses
func (h *StockHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	records, err := h.stockService.ListAnalyses(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Listing analyses failed")
		WriteError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	WriteJSON(w, http.StatusOK, records)
}
