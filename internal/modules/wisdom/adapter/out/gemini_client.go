package out

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

const (
	geminiBaseURL      = "https://generativelanguage.googleapis.com/v1beta"
	geminiModel        = "gemini-2.5-flash"
	geminiMaxRetries   = 3
	geminiInitialDelay = 500 * time.Millisecond
)

// GeminiClient calls the generateContent endpoint of the Gemini API.
type GeminiClient struct {
	apiKey       string
	baseURL      string
	model        string
	client       *http.Client
	maxRetries   int
	initialDelay time.Duration
}

type GeminiOption func(*GeminiClient)

func WithBaseURL(url string) GeminiOption {
	return func(c *GeminiClient) {
		if url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

func WithModel(model string) GeminiOption {
	return func(c *GeminiClient) {
		if model != "" {
			c.model = model
		}
	}
}

func WithHTTPClient(client *http.Client) GeminiOption {
	return func(c *GeminiClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithRetries sets how many attempts are made and the first backoff delay.
func WithRetries(attempts int, initialDelay time.Duration) GeminiOption {
	return func(c *GeminiClient) {
		if attempts > 0 {
			c.maxRetries = attempts
		}
		if initialDelay >= 0 {
			c.initialDelay = initialDelay
		}
	}
}

func NewGeminiClient(apiKey string, opts ...GeminiOption) *GeminiClient {
	c := &GeminiClient{
		apiKey:       strings.TrimSpace(apiKey),
		baseURL:      geminiBaseURL,
		model:        geminiModel,
		client:       &http.Client{},
		maxRetries:   geminiMaxRetries,
		initialDelay: geminiInitialDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type geminiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (c *GeminiClient) Configured() bool {
	return c.apiKey != ""
}

// Generate returns the text of the first candidate.
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("gemini api key not set")
	}
	body, err := json.Marshal(geminiRequest{Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * c.initialDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("failed to create request: %w", err)
		}
		httpReq.Header.Set("Content-Type", "application/json")
		httpReq.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.client.Do(httpReq)
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			lastErr = fmt.Errorf("HTTP request failed: %w", err)
			continue
		}
		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			var apiErr geminiError
			if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
				lastErr = fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
			} else {
				lastErr = fmt.Errorf("gemini api error (%d): %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
			}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				continue
			}
			return "", lastErr
		}

		var parsed geminiResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
		if len(parsed.Candidates) == 0 {
			return "", nil
		}
		var sb strings.Builder
		for _, part := range parsed.Candidates[0].Content.Parts {
			sb.WriteString(part.Text)
		}
		return sb.String(), nil
	}
	return "", fmt.Errorf("max retries exceeded: %w", lastErr)
}
