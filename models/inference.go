package models

// Request/response shapes for the external model-inference backend. The
// shapes are explicit and validated at the network boundary; nothing
// downstream ever sees raw JSON maps.

// FaultClassificationRequest carries per-phase voltage and current samples
// for a three-phase system.
type FaultClassificationRequest struct {
	VoltageData map[string][]float64 `json:"voltage_data"`
	CurrentData map[string][]float64 `json:"current_data"`
	ModelType   string               `json:"model_type"`
}

// FaultClassificationResponse is the backend's verdict for one sample window.
type FaultClassificationResponse struct {
	FaultType   string             `json:"fault_type"`
	Confidence  float64            `json:"confidence"`
	Probability map[string]float64 `json:"probability,omitempty"`
}

// SensorReading is one equipment sensor sample.
type SensorReading struct {
	Timestamp   string  `json:"timestamp"`
	Temperature float64 `json:"temperature"`
	Voltage     float64 `json:"voltage"`
	Current     float64 `json:"current"`
	Vibration   float64 `json:"vibration,omitempty"`
}

// MaintenanceScoreRequest asks the backend to score recent sensor readings
// for one piece of equipment.
type MaintenanceScoreRequest struct {
	EquipmentType string          `json:"equipment_type"`
	Readings      []SensorReading `json:"readings"`
}

// MaintenanceScoreResponse is the backend's health assessment.
type MaintenanceScoreResponse struct {
	EquipmentType string   `json:"equipment_type"`
	Severity      string   `json:"severity"`
	HealthScore   float64  `json:"health_score"`
	Alerts        []string `json:"alerts"`
}
