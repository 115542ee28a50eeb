package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"se-server/config"
	"se-server/forecasting"
	"se-server/models/forecast"
	services "se-server/service"
	"se-server/util"
)

const (
	PROJECT_ID_QUERY_ARG = "project_id"
	NAME_QUERY_ARG       = "name"
	METHOD_QUERY_ARG     = "method"
	HORIZON_QUERY_ARG    = "horizon"
)

// uploadLimitBytes caps CSV upload size.
const uploadLimitBytes = 10 << 20

// RunForecastRequest carries inline records for POST /v1/forecasts/run.
type RunForecastRequest struct {
	ProjectID string                `json:"project_id"`
	Name      string                `json:"name"`
	Method    string                `json:"method"`
	Horizon   int                   `json:"horizon"`
	Records   []forecast.LoadRecord `json:"records"`
}

// SampleForecastRequest asks for a synthetic series over a date range.
type SampleForecastRequest struct {
	ProjectID   string `json:"project_id"`
	Name        string `json:"name"`
	Method      string `json:"method"`
	Horizon     int    `json:"horizon"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	StepMinutes int    `json:"step_minutes"`
	Seed        int64  `json:"seed"`
}

// UploadForecastResponse pairs the stored run with parser bookkeeping.
type UploadForecastResponse struct {
	Result      *forecast.ForecastResult `json:"result"`
	DroppedRows int                      `json:"dropped_rows"`
}

// forecastParams is the common tuple every run needs.
type forecastParams struct {
	ProjectID string
	Name      string
	Method    forecasting.Method
	Horizon   int
}

// ForecastHandler serves forecast runs: upload, sample, inline run,
// retrieval, CSV export and chart rendering.
type ForecastHandler struct {
	forecastService *services.ForecastService
	sampleGenerator *forecasting.SampleGenerator
}

func NewForecastHandler(forecastService *services.ForecastService, sampleGenerator *forecasting.SampleGenerator) *ForecastHandler {
	return &ForecastHandler{
		forecastService: forecastService,
		sampleGenerator: sampleGenerator,
	}
}

// Upload handles POST /v1/forecasts/upload. The body is raw CSV; run
// parameters come in as query args.
func (h *ForecastHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// 1) Parse query args
	params, ok := h.parseParams(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	// 2) Read and parse the CSV body
	body, err := io.ReadAll(io.LimitReader(r.Body, uploadLimitBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	records, dropped, err := forecasting.ParseLoadCSV(string(body))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// 3) Run and store the forecast
	result, err := h.forecastService.RunForecast(UsernameFrom(r), params.ProjectID, params.Name, records, params.Horizon, params.Method)
	if err != nil {
		h.writeForecastError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, UploadForecastResponse{Result: result, DroppedRows: dropped})
}

// Sample handles POST /v1/forecasts/sample: generate a synthetic series over
// the requested range, then forecast it like any other upload.
func (h *ForecastHandler) Sample(w http.ResponseWriter, r *http.Request) {
	var req SampleForecastRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	method, err := forecasting.ParseMethod(req.Method)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Horizon < 0 {
		writeError(w, http.StatusBadRequest, "horizon must not be negative")
		return
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start_date must be YYYY-MM-DD")
		return
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "end_date must be YYYY-MM-DD")
		return
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "end_date must not precede start_date")
		return
	}

	generator := h.sampleGenerator
	if req.Seed != 0 {
		generator = forecasting.NewSampleGenerator(req.Seed)
	}
	records := generator.Generate(start, end, time.Duration(req.StepMinutes)*time.Minute)

	result, err := h.forecastService.RunForecast(UsernameFrom(r), req.ProjectID, req.Name, records, req.Horizon, method)
	if err != nil {
		h.writeForecastError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Run handles POST /v1/forecasts/run with inline records.
func (h *ForecastHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req RunForecastRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	method, err := forecasting.ParseMethod(req.Method)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Horizon < 0 {
		writeError(w, http.StatusBadRequest, "horizon must not be negative")
		return
	}

	result, err := h.forecastService.RunForecast(UsernameFrom(r), req.ProjectID, req.Name, req.Records, req.Horizon, method)
	if err != nil {
		h.writeForecastError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// Get handles GET /v1/forecasts/{id}.
func (h *ForecastHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.forecastService.GetForecast(UsernameFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "forecast not found")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// ListByProject handles GET /v1/projects/{id}/forecasts.
func (h *ForecastHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	results, err := h.forecastService.ListForecasts(UsernameFrom(r), mux.Vars(r)["id"])
	if errors.Is(err, services.ErrNotFound) {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	if err != nil {
		log.Println("Error listing forecasts:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Delete handles DELETE /v1/forecasts/{id}.
func (h *ForecastHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.forecastService.DeleteForecast(UsernameFrom(r), mux.Vars(r)["id"]); err != nil {
		writeError(w, http.StatusNotFound, "forecast not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /v1/forecasts/{id}/export, serving CSV.
func (h *ForecastHandler) Export(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	csvText, err := h.forecastService.ExportForecast(UsernameFrom(r), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "forecast not found")
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=forecast_"+id+".csv")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(csvText)); err != nil {
		log.Println("Error writing CSV export:", err)
	}
}

// Chart handles GET /v1/forecasts/{id}/chart, serving an HTML line chart.
func (h *ForecastHandler) Chart(w http.ResponseWriter, r *http.Request) {
	result, err := h.forecastService.GetForecast(UsernameFrom(r), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "forecast not found")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotForecast(result, w); err != nil {
		log.Println("Error rendering forecast chart:", err)
	}
}

func (h *ForecastHandler) parseParams(vals url.Values, w http.ResponseWriter) (forecastParams, bool) {
	var params forecastParams

	params.ProjectID = vals.Get(PROJECT_ID_QUERY_ARG)
	if params.ProjectID == "" {
		writeError(w, http.StatusBadRequest, "missing argument "+PROJECT_ID_QUERY_ARG)
		return params, false
	}
	params.Name = vals.Get(NAME_QUERY_ARG)

	method, err := forecasting.ParseMethod(vals.Get(METHOD_QUERY_ARG))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return params, false
	}
	params.Method = method

	if raw := vals.Get(HORIZON_QUERY_ARG); raw == "" {
		params.Horizon = config.DEFAULT_FORECAST_HORIZON
	} else {
		params.Horizon, err = strconv.Atoi(raw)
		if err != nil || params.Horizon < 0 {
			writeError(w, http.StatusBadRequest, "invalid argument "+HORIZON_QUERY_ARG)
			return params, false
		}
	}
	return params, true
}

// writeForecastError maps service errors onto status codes: missing project
// is 404, engine rejections are 400, everything else is 500.
func (h *ForecastHandler) writeForecastError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "project not found")
	case errors.Is(err, forecasting.ErrInsufficientData) || forecasting.IsFormatError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Println("Error running forecast:", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
