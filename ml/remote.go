package ml

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// RemoteClassifier delegates inference to an external model server. The
// request carries the scaled feature vector in the fixed feature order.
type RemoteClassifier struct {
	client *resty.Client
}

// NewRemoteClassifier builds a classifier calling POST {baseURL}/predict.
func NewRemoteClassifier(baseURL string) *RemoteClassifier {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second)
	return &RemoteClassifier{client: client}
}

// Predict posts the feature vector and returns the reported probability.
func (rc *RemoteClassifier) Predict(v Vector) (float64, error) {
	body := map[string]interface{}{
		"features": v[:],
	}

	resp, err := rc.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/predict")
	if err != nil {
		return 0, fmt.Errorf("model server request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("model server returned status %d", resp.StatusCode())
	}

	var result struct {
		Probability float64 `json:"probability"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return 0, fmt.Errorf("invalid model server response: %w", err)
	}
	if result.Probability < 0 || result.Probability > 1 {
		return 0, fmt.Errorf("model server returned invalid probability %v", result.Probability)
	}
	return result.Probability, nil
}
