package inference

import (
	"se-server/api"
	"se-server/models"
)

// InferenceApiClient embeds the common HTTPClient
type InferenceApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
}

// NewInferenceApiClient creates a new instance of InferenceApiClient
func NewInferenceApiClient(httpClient *api.HTTPClient) *InferenceApiClient {
	return &InferenceApiClient{
		HTTPClient: httpClient,
	}
}

// ClassifyFault submits per-phase samples and decodes the backend's verdict.
func (c *InferenceApiClient) ClassifyFault(req models.FaultClassificationRequest) (*models.FaultClassificationResponse, error) {
	var response models.FaultClassificationResponse
	err := c.Request("POST", "/fault-detection/predict", nil, req, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// ScoreMaintenance submits sensor readings and decodes the health score.
func (c *InferenceApiClient) ScoreMaintenance(req models.MaintenanceScoreRequest) (*models.MaintenanceScoreResponse, error) {
	var response models.MaintenanceScoreResponse
	err := c.Request("POST", "/maintenance-alerts/predict", nil, req, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
