package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"solana-dashboard-go/internal/models"

	"go.uber.org/zap"
)

// APIServer exposes the computed dashboard data as plain JSON for the
// rendering layer. Every endpoint reads the current published Result;
// sections with no data serve their empty default rather than an error, so
// one broken feed never blocks sibling sections.
type APIServer struct {
	server *http.Server
	engine *Engine
	logger *zap.Logger
}

// NewAPIServer creates an APIServer listening on the given port.
func NewAPIServer(engine *Engine, port int, logger *zap.Logger) *APIServer {
	s := &APIServer{
		engine: engine,
		logger: logger.Named("api-server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/wallet", s.walletHandler)
	mux.HandleFunc("/api/trades", s.tradesHandler)
	mux.HandleFunc("/api/positions", s.positionsHandler)
	mux.HandleFunc("/api/roundtrips", s.roundTripsHandler)
	mux.HandleFunc("/api/summary", s.summaryHandler)
	mux.HandleFunc("/api/signals", s.signalsHandler)
	mux.HandleFunc("/api/strategies", s.strategiesHandler)
	mux.HandleFunc("/api/tasks", s.tasksHandler)
	mux.HandleFunc("/api/reports", s.reportsHandler)
	mux.HandleFunc("/api/history", s.historyHandler)
	mux.HandleFunc("/api/status", s.statusHandler)
	mux.HandleFunc("/health", s.healthHandler)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	return s
}

// Start runs the HTTP server in a new goroutine.
func (s *APIServer) Start() {
	s.logger.Info("Starting API server", zap.String("address", s.server.Addr))
	go func() {
		if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
			s.logger.Error("API server failed", zap.Error(err))
		}
	}()
}

// Stop gracefully shuts down the server.
func (s *APIServer) Stop(ctx context.Context) error {
	s.logger.Info("Stopping API server...")
	return s.server.Shutdown(ctx)
}

func (s *APIServer) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *APIServer) walletHandler(w http.ResponseWriter, r *http.Request) {
	if res := s.engine.Current(); res != nil {
		s.writeJSON(w, res.Dataset.Wallet)
		return
	}
	s.writeJSON(w, models.WalletSnapshot{})
}

func (s *APIServer) tradesHandler(w http.ResponseWriter, r *http.Request) {
	trades := []models.Trade{}
	if res := s.engine.Current(); res != nil {
		trades = res.Trades
	}
	s.writeJSON(w, trades)
}

func (s *APIServer) positionsHandler(w http.ResponseWriter, r *http.Request) {
	positions := []models.OpenPosition{}
	if res := s.engine.Current(); res != nil && res.Positions != nil {
		positions = res.Positions
	}
	s.writeJSON(w, positions)
}

func (s *APIServer) roundTripsHandler(w http.ResponseWriter, r *http.Request) {
	trips := []models.RoundTrip{}
	if res := s.engine.Current(); res != nil && res.RoundTrips != nil {
		trips = res.RoundTrips
	}
	s.writeJSON(w, trips)
}

func (s *APIServer) summaryHandler(w http.ResponseWriter, r *http.Request) {
	var summary models.Summary
	if res := s.engine.Current(); res != nil {
		summary = res.Summary
	}
	s.writeJSON(w, summary)
}

func (s *APIServer) signalsHandler(w http.ResponseWriter, r *http.Request) {
	signals := []map[string]any{}
	if res := s.engine.Current(); res != nil && res.Signals != nil {
		signals = res.Signals
	}
	s.writeJSON(w, signals)
}

func (s *APIServer) strategiesHandler(w http.ResponseWriter, r *http.Request) {
	var set models.StrategySet
	if res := s.engine.Current(); res != nil {
		set = res.Strategies
	}
	s.writeJSON(w, set)
}

func (s *APIServer) tasksHandler(w http.ResponseWriter, r *http.Request) {
	var tree models.TaskTree
	if res := s.engine.Current(); res != nil {
		tree = res.Tasks
	}
	s.writeJSON(w, tree)
}

func (s *APIServer) reportsHandler(w http.ResponseWriter, r *http.Request) {
	reports := []models.DailyReport{}
	if res := s.engine.Current(); res != nil && res.Dataset.Reports != nil {
		reports = res.Dataset.Reports
	}
	s.writeJSON(w, reports)
}

func (s *APIServer) historyHandler(w http.ResponseWriter, r *http.Request) {
	var history models.HistoryDocument
	if res := s.engine.Current(); res != nil {
		history = res.Dataset.History
	}
	s.writeJSON(w, history)
}

// statusResponse mirrors the bot's summary document: last-updated plus
// per-section record counts.
type statusResponse struct {
	LastUpdated    string  `json:"last_updated"`
	TradesCount    int     `json:"trades_count"`
	SignalsCount   int     `json:"signals_count"`
	PositionsCount int     `json:"positions_count"`
	RoundTrips     int     `json:"round_trips"`
	WalletTotalUsd float64 `json:"wallet_total_usd"`
	Ready          bool    `json:"ready"`
}

func (s *APIServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	res := s.engine.Current()
	if res == nil {
		s.writeJSON(w, statusResponse{})
		return
	}
	s.writeJSON(w, statusResponse{
		LastUpdated:    res.ComputedAt.Format(time.RFC3339),
		TradesCount:    len(res.Trades),
		SignalsCount:   len(res.Signals),
		PositionsCount: len(res.Positions),
		RoundTrips:     len(res.RoundTrips),
		WalletTotalUsd: res.Dataset.Wallet.TotalUsd,
		Ready:          true,
	})
}

func (s *APIServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}
