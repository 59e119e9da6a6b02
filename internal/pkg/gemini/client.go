package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/config"
	"github.com/geoattend/geoattend-backend-go/internal/domain/anomaly"
)

// Client calls the Gemini generateContent REST API. It implements
// anomaly.Analyzer.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

// NewClient creates a Gemini client from the anomaly configuration
func NewClient(cfg config.AnomalyConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError represents a Gemini API error
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gemini API error [%d]: %s", e.StatusCode, e.Message)
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

const promptTemplate = `You are an attendance auditor. Analyze the following check-in records for one employee and decide whether they show an unusual pattern (for example a sudden streak of lateness, or check-in times drifting consistently later).

Records (JSON array of {timestamp, status}):
%s

Respond with ONLY a JSON object of the form {"anomalyDetected": boolean, "anomalyDescription": string}. The description should be one or two sentences, empty when no anomaly is detected.`

// DetectAnomaly asks the model whether the records show an unusual
// attendance pattern.
func (c *Client) DetectAnomaly(ctx context.Context, employeeID string, records []anomaly.Record) (anomaly.Result, error) {
	recordsJSON, err := json.Marshal(records)
	if err != nil {
		return anomaly.Result{}, fmt.Errorf("failed to marshal records: %w", err)
	}

	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: fmt.Sprintf(promptTemplate, recordsJSON)}}},
		},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return anomaly.Result{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return anomaly.Result{}, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return anomaly.Result{}, fmt.Errorf("failed to call gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return anomaly.Result{}, fmt.Errorf("failed to read response: %w", err)
	}

	var gcResp generateContentResponse
	if err := json.Unmarshal(body, &gcResp); err != nil {
		return anomaly.Result{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := string(body)
		if gcResp.Error != nil {
			msg = gcResp.Error.Message
		}
		return anomaly.Result{}, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if len(gcResp.Candidates) == 0 || len(gcResp.Candidates[0].Content.Parts) == 0 {
		return anomaly.Result{}, fmt.Errorf("gemini API returned no candidates")
	}

	text := gcResp.Candidates[0].Content.Parts[0].Text
	return parseResult(text)
}

// parseResult extracts the verdict from the model's text. Models
// sometimes wrap JSON in a markdown fence even when asked not to.
func parseResult(text string) (anomaly.Result, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var verdict struct {
		AnomalyDetected    bool   `json:"anomalyDetected"`
		AnomalyDescription string `json:"anomalyDescription"`
	}
	if err := json.Unmarshal([]byte(text), &verdict); err != nil {
		return anomaly.Result{}, fmt.Errorf("failed to parse model verdict: %w", err)
	}

	return anomaly.Result{
		AnomalyDetected:    verdict.AnomalyDetected,
		AnomalyDescription: verdict.AnomalyDescription,
	}, nil
}
