package huggingface

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"seosync/internal/logger"
	"seosync/internal/metrics"
)

const modelPath = "/models/facebook/bart-large-mnli"

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(apiKey string, logger *logger.Logger) *Client {
	return &Client{
		baseURL: "https://api-inference.huggingface.co",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type classifyRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters classifyParameters `json:"parameters"`
}

type classifyParameters struct {
	CandidateLabels []string `json:"candidate_labels"`
}

// Classification is a zero-shot result: labels ranked most confident first,
// with their scores in matching positions.
type Classification struct {
	Sequence string    `json:"sequence"`
	Labels   []string  `json:"labels"`
	Scores   []float64 `json:"scores"`
}

// Classify ranks candidateLabels against the input text.
func (c *Client) Classify(input string, candidateLabels []string) (*Classification, error) {
	reqBody := classifyRequest{
		Inputs:     input,
		Parameters: classifyParameters{CandidateLabels: candidateLabels},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+modelPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues("huggingface").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequests.WithLabelValues("huggingface", "error").Inc()
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequests.WithLabelValues("huggingface", "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API request failed: %d - %s", resp.StatusCode, string(body))
	}

	var classification Classification
	if err := json.NewDecoder(resp.Body).Decode(&classification); err != nil {
		metrics.UpstreamRequests.WithLabelValues("huggingface", "error").Inc()
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(classification.Labels) == 0 {
		metrics.UpstreamRequests.WithLabelValues("huggingface", "error").Inc()
		return nil, fmt.Errorf("classifier returned no labels")
	}
	metrics.UpstreamRequests.WithLabelValues("huggingface", "ok").Inc()

	return &classification, nil
}
