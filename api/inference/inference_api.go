package inference

import (
	"se-server/models"
)

// InferenceAPI defines the interface for the external model-inference
// backend. Fault classification and maintenance-alert scoring run against
// trained models that live entirely on that backend; this server never
// simulates them locally.
type InferenceAPI interface {
	ClassifyFault(req models.FaultClassificationRequest) (*models.FaultClassificationResponse, error)
	ScoreMaintenance(req models.MaintenanceScoreRequest) (*models.MaintenanceScoreResponse, error)
}
