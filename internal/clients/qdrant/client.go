package qdrant

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

// Client is a thin search client for a Qdrant collection. Only the data-plane
// search call is needed; ingestion of historical exams happens out of band.
type Client interface {
	SearchPoints(ctx context.Context, req SearchRequest) ([]ScoredPoint, error)
}

type Config struct {
	URL        string
	Collection string
	Timeout    time.Duration
}

type client struct {
	log  *logger.Logger
	cfg  Config
	http *http.Client
}

func New(log *logger.Logger, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("missing Qdrant URL")
	}
	if strings.TrimSpace(cfg.Collection) == "" {
		return nil, fmt.Errorf("missing Qdrant collection")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &client{
		log:  log.With("client", "QdrantClient"),
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type SearchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
	Filter      *Filter   `json:"filter,omitempty"`
}

type Filter struct {
	Must []Condition `json:"must"`
}

type Condition struct {
	Key   string `json:"key"`
	Match Match  `json:"match"`
}

type Match struct {
	Value any `json:"value"`
}

type ScoredPoint struct {
	ID      json.RawMessage `json:"id"`
	Score   float64         `json:"score"`
	Payload map[string]any  `json:"payload"`
}

type searchEnvelope struct {
	Result []ScoredPoint   `json:"result"`
	Status json.RawMessage `json:"status"`
}

func (c *client) SearchPoints(ctx context.Context, req SearchRequest) ([]ScoredPoint, error) {
	if len(req.Vector) == 0 {
		return nil, fmt.Errorf("query vector required")
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req); err != nil {
		return nil, fmt.Errorf("qdrant encode request: %w", err)
	}

	u := strings.TrimRight(c.cfg.URL, "/") + "/collections/" + c.cfg.Collection + "/points/search"
	httpReq, err := http.NewRequestWithContext(defaultCtx(ctx), http.MethodPost, u, &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qdrant search request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("qdrant http %d: %s", resp.StatusCode, truncateBody(raw))
	}

	var envelope searchEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("qdrant decode response: %w", err)
	}
	return envelope.Result, nil
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
