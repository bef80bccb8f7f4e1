// Package server exposes the planning pipeline over HTTP for editor-driven
// and file-upload workflows.
package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/newsvendor-planner/internal/config"
	"github.com/iwvelando/newsvendor-planner/internal/planner"
	"github.com/iwvelando/newsvendor-planner/pkg/constants"
	"github.com/iwvelando/newsvendor-planner/pkg/format"
	"github.com/iwvelando/newsvendor-planner/pkg/grid"
	"github.com/iwvelando/newsvendor-planner/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the web UI and plan API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Plan API endpoint (file upload)
	mux.HandleFunc("/api/plan", h.handlePlan)

	// Plan API endpoint for editor-driven updates
	mux.HandleFunc("/api/editor/plan", h.handlePlanEditor)

	// Config serialization endpoint for editor downloads
	mux.HandleFunc("/api/editor/export", h.handleConfigExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type planResponse struct {
	Orders          []int          `json:"orders"`
	Demands         []int          `json:"demands"`
	Probabilities   []float64      `json:"probabilities"`
	ProfitMatrix    [][]float64    `json:"profitMatrix"`
	ExpectedValues  [][]float64    `json:"expectedValues"`
	ExpectedProfits []float64      `json:"expectedProfits"`
	Optimal         optimalSummary `json:"optimal"`
	CSV             string         `json:"csv"`
	Warnings        []string       `json:"warnings,omitempty"`
	Duration        string         `json:"duration"`
	ConfigYAML      string         `json:"configYaml,omitempty"`
}

type optimalSummary struct {
	Order          int     `json:"order"`
	ExpectedProfit float64 `json:"expectedProfit"`
	Display        string  `json:"display"`
}

func (h *handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), "server.handlePlan")
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), "server.handlePlan")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "missing configuration file", "server.handlePlan")
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", "server.handlePlan"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		h.respondError(w, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), "server.handlePlan")
		return
	}

	h.runPlan(w, buf.Bytes(), start, "server.handlePlan")
}

func (h *handler) handlePlanEditor(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), "server.handlePlanEditor")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	configPayload := payload
	if rawConfig, ok := payload["config"]; ok {
		cfgMap, ok := rawConfig.(map[string]interface{})
		if !ok {
			h.respondError(w, http.StatusBadRequest, "invalid config payload: expected object", "server.handlePlanEditor")
			return
		}
		configPayload = cfgMap
	}

	configBytes, err := yaml.Marshal(configPayload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), "server.handlePlanEditor")
		return
	}

	h.runPlan(w, configBytes, start, "server.handlePlanEditor")
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), "server.handleConfigExport")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := yaml.Marshal(payload)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), "server.handleConfigExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) runPlan(w http.ResponseWriter, configBytes []byte, start time.Time, op string) {
	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	warnings := cfg.ValidateConfiguration()

	plan, err := planner.ComputePlan(h.logger, *cfg)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, planner.ErrNegativeQuantity) ||
			errors.Is(err, planner.ErrDimensionMismatch) ||
			errors.Is(err, planner.ErrEmptyInput) {
			status = http.StatusBadRequest
		}
		h.respondError(w, status, fmt.Sprintf("failed to compute plan: %v", err), op)
		return
	}

	elapsed := time.Since(start)

	response := planResponse{
		Orders:          plan.Orders,
		Demands:         plan.Demands,
		Probabilities:   plan.Probabilities,
		ProfitMatrix:    gridRows(plan.Profits),
		ExpectedValues:  gridRows(plan.ExpectedValues),
		ExpectedProfits: plan.ExpectedProfits,
		Optimal: optimalSummary{
			Order:          plan.Optimal.Order,
			ExpectedProfit: plan.Optimal.ExpectedProfit,
			Display:        format.Currency(plan.Optimal.ExpectedProfit),
		},
		CSV:        output.CsvString(plan),
		Warnings:   warnings,
		Duration:   elapsed.String(),
		ConfigYAML: string(configBytes),
	}

	h.logger.Info("plan computed",
		zap.String("op", op),
		zap.Int("orders", len(response.Orders)),
		zap.Int("demands", len(response.Demands)),
		zap.Int("optimalOrder", response.Optimal.Order),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

// gridRows converts a grid to a row slice for JSON serialization.
func gridRows(g grid.Grid) [][]float64 {
	rows := make([][]float64, g.Rows())
	for i := range rows {
		rows[i] = g.Row(i)
	}
	return rows
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("plan request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
