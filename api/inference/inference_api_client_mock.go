package inference

import (
	"math"

	"se-server/models"
)

// InferenceApiClientMock is a deterministic stand-in for the model backend,
// used in dev environments and tests. Its rules are intentionally crude and
// every response is labeled simulated through the fixed confidence values;
// it never fabricates random numbers.
type InferenceApiClientMock struct {
}

// NewInferenceApiClientMock creates a new instance of InferenceApiClientMock
func NewInferenceApiClientMock() *InferenceApiClientMock {
	return &InferenceApiClientMock{}
}

// ClassifyFault applies fixed sag/surge thresholds per phase. A phase
// sagging under 80% of the three-phase mean counts as faulted.
func (c *InferenceApiClientMock) ClassifyFault(req models.FaultClassificationRequest) (*models.FaultClassificationResponse, error) {
	phases := []string{"A", "B", "C"}
	rms := make(map[string]float64, len(phases))
	total := 0.0
	counted := 0
	for _, phase := range phases {
		samples := req.VoltageData[phase]
		if len(samples) == 0 {
			continue
		}
		rms[phase] = rootMeanSquare(samples)
		total += rms[phase]
		counted++
	}
	if counted == 0 {
		return &models.FaultClassificationResponse{FaultType: "Normal", Confidence: 50}, nil
	}
	meanRMS := total / float64(counted)

	sagged := 0
	for _, v := range rms {
		if v < 0.8*meanRMS {
			sagged++
		}
	}

	faultType := "Normal"
	switch sagged {
	case 1:
		faultType = "L-G"
	case 2:
		faultType = "L-L"
	case 3:
		faultType = "3-Φ"
	}
	return &models.FaultClassificationResponse{
		FaultType:  faultType,
		Confidence: 75,
	}, nil
}

// ScoreMaintenance flags readings outside fixed operating ranges and maps
// the violation share onto a severity band.
func (c *InferenceApiClientMock) ScoreMaintenance(req models.MaintenanceScoreRequest) (*models.MaintenanceScoreResponse, error) {
	violations := 0
	var alerts []string
	for _, r := range req.Readings {
		if r.Temperature > 80 {
			violations++
			alerts = appendOnce(alerts, "temperature above operating range")
		}
		if r.Voltage != 0 && (r.Voltage < 380 || r.Voltage > 420) {
			violations++
			alerts = appendOnce(alerts, "voltage outside nominal band")
		}
		if r.Vibration > 10 {
			violations++
			alerts = appendOnce(alerts, "excessive vibration")
		}
	}

	score := 100.0
	if len(req.Readings) > 0 {
		score = math.Max(0, 100-100*float64(violations)/float64(len(req.Readings)))
	}
	severity := "low"
	switch {
	case score < 40:
		severity = "critical"
	case score < 60:
		severity = "high"
	case score < 80:
		severity = "medium"
	}

	return &models.MaintenanceScoreResponse{
		EquipmentType: req.EquipmentType,
		Severity:      severity,
		HealthScore:   score,
		Alerts:        alerts,
	}, nil
}

func rootMeanSquare(samples []float64) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

func appendOnce(list []string, msg string) []string {
	for _, existing := range list {
		if existing == msg {
			return list
		}
	}
	return append(list, msg)
}
