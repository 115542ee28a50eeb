package handlers

import (
	"log"
	"net/http"

	"se-server/api/inference"
	"se-server/models"
	"se-server/publisher"
)

// InferenceHandler proxies fault classification and maintenance scoring to
// the model-inference backend. Maintenance scores that cross the severity
// threshold also fan out over MQTT.
type InferenceHandler struct {
	inferenceAPI   inference.InferenceAPI
	alertPublisher *publisher.AlertPublisher
}

func NewInferenceHandler(inferenceAPI inference.InferenceAPI, alertPublisher *publisher.AlertPublisher) *InferenceHandler {
	return &InferenceHandler{
		inferenceAPI:   inferenceAPI,
		alertPublisher: alertPublisher,
	}
}

// ClassifyFault handles POST /v1/faults/classify.
func (h *InferenceHandler) ClassifyFault(w http.ResponseWriter, r *http.Request) {
	var req models.FaultClassificationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.VoltageData) == 0 {
		writeError(w, http.StatusBadRequest, "voltage_data is required")
		return
	}

	resp, err := h.inferenceAPI.ClassifyFault(req)
	if err != nil {
		log.Println("Error classifying fault:", err)
		writeError(w, http.StatusBadGateway, "inference backend unavailable")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// ScoreMaintenance handles POST /v1/maintenance/score.
func (h *InferenceHandler) ScoreMaintenance(w http.ResponseWriter, r *http.Request) {
	var req models.MaintenanceScoreRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EquipmentType == "" || len(req.Readings) == 0 {
		writeError(w, http.StatusBadRequest, "equipment_type and readings are required")
		return
	}

	resp, err := h.inferenceAPI.ScoreMaintenance(req)
	if err != nil {
		log.Println("Error scoring maintenance:", err)
		writeError(w, http.StatusBadGateway, "inference backend unavailable")
		return
	}

	// Alert fan-out must not fail the scoring request.
	if err := h.alertPublisher.PublishMaintenanceAlert(*resp); err != nil {
		log.Println("Error publishing maintenance alert:", err)
	}
	writeJSON(w, http.StatusOK, resp)
}
