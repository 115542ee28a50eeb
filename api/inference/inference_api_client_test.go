package inference

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"se-server/api"
	"se-server/models"
)

func TestInferenceApiClient_ClassifyFault(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fault-detection/predict" {
			t.Errorf("Expected endpoint '/fault-detection/predict', got '%s'", r.URL.Path)
		}
		if r.Method != "POST" {
			t.Errorf("Expected POST, got %s", r.Method)
		}

		var req models.FaultClassificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if len(req.VoltageData["A"]) != 2 {
			t.Errorf("Expected 2 phase-A samples, got %d", len(req.VoltageData["A"]))
		}

		json.NewEncoder(w).Encode(models.FaultClassificationResponse{
			FaultType:  "L-G",
			Confidence: 93.5,
		})
	}))
	defer mockServer.Close()

	client := NewInferenceApiClient(api.NewHTTPClient(mockServer.URL))

	resp, err := client.ClassifyFault(models.FaultClassificationRequest{
		VoltageData: map[string][]float64{"A": {230, 120}, "B": {230, 231}, "C": {229, 230}},
		CurrentData: map[string][]float64{"A": {10, 55}, "B": {10, 10}, "C": {10, 10}},
		ModelType:   "decision_tree",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.FaultType != "L-G" {
		t.Errorf("Expected fault type L-G, got %s", resp.FaultType)
	}
	if resp.Confidence != 93.5 {
		t.Errorf("Expected confidence 93.5, got %.1f", resp.Confidence)
	}
}

func TestInferenceApiClient_BackendError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	client := NewInferenceApiClient(api.NewHTTPClient(mockServer.URL))

	if _, err := client.ScoreMaintenance(models.MaintenanceScoreRequest{EquipmentType: "motor"}); err == nil {
		t.Fatal("Expected an error from a failing backend")
	}
}

func TestInferenceApiClientMock_FaultRules(t *testing.T) {
	client := NewInferenceApiClientMock()

	tests := []struct {
		name     string
		voltages map[string][]float64
		want     string
	}{
		{
			"balanced phases",
			map[string][]float64{"A": {230}, "B": {231}, "C": {229}},
			"Normal",
		},
		{
			"one sagged phase",
			map[string][]float64{"A": {90}, "B": {230}, "C": {231}},
			"L-G",
		},
		{
			"two sagged phases",
			map[string][]float64{"A": {60}, "B": {60}, "C": {230}},
			"L-L",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp, err := client.ClassifyFault(models.FaultClassificationRequest{VoltageData: test.voltages})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if resp.FaultType != test.want {
				t.Errorf("Expected %s, got %s", test.want, resp.FaultType)
			}
		})
	}
}

func TestInferenceApiClientMock_MaintenanceSeverity(t *testing.T) {
	client := NewInferenceApiClientMock()

	healthy := []models.SensorReading{
		{Temperature: 60, Voltage: 400},
		{Temperature: 65, Voltage: 401},
	}
	resp, err := client.ScoreMaintenance(models.MaintenanceScoreRequest{EquipmentType: "motor", Readings: healthy})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Severity != "low" || resp.HealthScore != 100 {
		t.Errorf("Expected healthy motor, got severity=%s score=%.0f", resp.Severity, resp.HealthScore)
	}

	failing := []models.SensorReading{
		{Temperature: 95, Voltage: 460, Vibration: 18},
		{Temperature: 96, Voltage: 455, Vibration: 17},
	}
	resp, err = client.ScoreMaintenance(models.MaintenanceScoreRequest{EquipmentType: "motor", Readings: failing})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.Severity != "critical" {
		t.Errorf("Expected critical severity, got %s", resp.Severity)
	}
	if len(resp.Alerts) == 0 {
		t.Error("Expected alerts for out-of-range readings")
	}
}
