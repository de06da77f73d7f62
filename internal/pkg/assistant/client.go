package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/teczka-budowlanca/backend/internal/pkg/logger"
)

const (
	messagesPath = "/v1/messages"
	apiVersion   = "2023-06-01"
)

// PropertyData describes the apartment a checklist is generated for.
type PropertyData struct {
	Area  float64
	Year  int
	Floor int
}

// Client generates renovation checklists and contractor questions through a
// hosted LLM messages API. Implementations must be safe for concurrent use.
type Client interface {
	GenerateInspectionChecklist(ctx context.Context, property PropertyData) ([]string, error)
	GenerateContractorQuestions(ctx context.Context, sectionType string, propertyData map[string]interface{}) ([]string, error)
}

// Config holds the settings of the hosted messages API.
type Config struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// HTTPClient is the production Client implementation.
type HTTPClient struct {
	cfg  Config
	http *http.Client
}

// NewHTTPClient creates a messages-API client. The API key is required; the
// remaining fields fall back to sane defaults.
func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("assistant API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &HTTPClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

var _ Client = (*HTTPClient)(nil)

// Disabled is a Client for deployments without an assistant API key: every
// call fails, and the HTTP layer reports the collaborator as unavailable.
type Disabled struct{}

func (Disabled) GenerateInspectionChecklist(context.Context, PropertyData) ([]string, error) {
	return nil, fmt.Errorf("assistant API key not configured")
}

func (Disabled) GenerateContractorQuestions(context.Context, string, map[string]interface{}) ([]string, error) {
	return nil, fmt.Errorf("assistant API key not configured")
}

var _ Client = Disabled{}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// GenerateInspectionChecklist asks for inspection points for an apartment.
func (c *HTTPClient) GenerateInspectionChecklist(ctx context.Context, property PropertyData) ([]string, error) {
	prompt := fmt.Sprintf(`Wygeneruj listę inspekcji dla mieszkania:
- Metraż: %.1f m²
- Rok budowy: %d
- Piętro: %d

Zwróć JSON z tablicą punktów do sprawdzenia.`, property.Area, property.Year, property.Floor)

	text, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseItems(text, "items", "checklist"), nil
}

// GenerateContractorQuestions asks for questions to put to a tradesperson.
func (c *HTTPClient) GenerateContractorQuestions(ctx context.Context, sectionType string, propertyData map[string]interface{}) ([]string, error) {
	data, err := json.Marshal(propertyData)
	if err != nil {
		return nil, fmt.Errorf("encode property data: %w", err)
	}

	prompt := fmt.Sprintf(`Generuj 10-15 pytań do fachowca zajmującego się %s.
Dane mieszkania: %s

Zwróć JSON z tablicą pytań.`, sectionType, data)

	text, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return parseItems(text, "questions", "pytania"), nil
}

// complete sends a single-turn message and returns the text of the first
// content block.
func (c *HTTPClient) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call assistant: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		logger.Warn().Int("status", resp.StatusCode).Msg("Assistant API returned non-200 status")
		return "", fmt.Errorf("assistant API status %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var out messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	for _, block := range out.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("assistant response contained no text block")
}

// parseItems interprets the model output as a JSON string array, either bare
// or under one of the given keys. Output that is not parseable JSON degrades
// to its non-empty lines.
func parseItems(text string, keys ...string) []string {
	trimmed := strings.TrimSpace(text)

	var bare []string
	if err := json.Unmarshal([]byte(trimmed), &bare); err == nil && bare != nil {
		return bare
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
		for _, key := range keys {
			raw, ok := obj[key]
			if !ok {
				continue
			}
			var list []string
			if err := json.Unmarshal(raw, &list); err == nil && list != nil {
				return list
			}
		}
	}

	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}
