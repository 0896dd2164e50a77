package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aulaflow/academy-backend/internal/logger"
)

// Client talks to an Ollama-compatible endpoint. Generate is expected to be
// slow (minutes for a full exam), so it gets its own long timeout; Embed
// stays on a short one.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Embed(ctx context.Context, input string) ([]float32, error)
}

type Config struct {
	BaseURL         string
	Model           string
	EmbedModel      string
	Temperature     float32
	GenerateTimeout time.Duration
	EmbedTimeout    time.Duration
}

type client struct {
	log     *logger.Logger
	cfg     Config
	genHTTP *http.Client
	embHTTP *http.Client
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("missing Ollama base URL")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("missing Ollama model")
	}
	if strings.TrimSpace(cfg.EmbedModel) == "" {
		cfg.EmbedModel = cfg.Model
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.5
	}
	if cfg.GenerateTimeout <= 0 {
		cfg.GenerateTimeout = 300 * time.Second
	}
	if cfg.EmbedTimeout <= 0 {
		cfg.EmbedTimeout = 30 * time.Second
	}
	return &client{
		log:     log.With("client", "OllamaClient"),
		cfg:     cfg,
		genHTTP: &http.Client{Timeout: cfg.GenerateTimeout},
		embHTTP: &http.Client{Timeout: cfg.EmbedTimeout},
	}, nil
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float32 `json:"temperature"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (c *client) Generate(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Model:   c.cfg.Model,
		Prompt:  prompt,
		Stream:  false,
		Options: generateOptions{Temperature: c.cfg.Temperature},
	}
	var out generateResponse
	if err := c.doJSON(ctx, c.genHTTP, "/api/generate", req, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

type embedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

type embedResponse struct {
	Embedding []float32 `json:"embedding"`
}

func (c *client) Embed(ctx context.Context, input string) ([]float32, error) {
	req := embedRequest{Model: c.cfg.EmbedModel, Prompt: input}
	var out embedResponse
	if err := c.doJSON(ctx, c.embHTTP, "/api/embeddings", req, &out); err != nil {
		return nil, err
	}
	if len(out.Embedding) == 0 {
		return nil, fmt.Errorf("ollama returned empty embedding")
	}
	return out.Embedding, nil
}

func (c *client) doJSON(ctx context.Context, httpClient *http.Client, path string, in any, out any) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(in); err != nil {
		return fmt.Errorf("ollama encode request: %w", err)
	}

	u := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(defaultCtx(ctx), http.MethodPost, u, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("ollama http %d: %s", resp.StatusCode, truncateBody(raw))
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("ollama decode response: %w", err)
	}
	return nil
}

func truncateBody(raw []byte) string {
	const max = 1024
	if len(raw) <= max {
		return string(raw)
	}
	return string(raw[:max]) + "..."
}

func defaultCtx(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
