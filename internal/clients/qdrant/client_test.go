package qdrant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aulaflow/academy-backend/internal/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestSearchPointsWireFormat(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":[
			{"id":1,"score":0.91,"payload":{"text":"old exam A"}},
			{"id":"uuid-2","score":0.80,"payload":{"text":"old exam B"}}
		],"status":"ok"}`))
	}))
	defer server.Close()

	c, err := New(testLogger(t), Config{URL: server.URL, Collection: "exams", Timeout: time.Second})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	points, err := c.SearchPoints(context.Background(), SearchRequest{
		Vector:      []float32{0.1, 0.2},
		Limit:       5,
		WithPayload: true,
		Filter: &Filter{
			Must: []Condition{{Key: "course_id", Match: Match{Value: "ENG-101"}}},
		},
	})
	if err != nil {
		t.Fatalf("SearchPoints: %v", err)
	}

	if gotPath != "/collections/exams/points/search" {
		t.Fatalf("path: got %q", gotPath)
	}
	if gotBody["limit"] != float64(5) {
		t.Fatalf("limit: got %v", gotBody["limit"])
	}
	if gotBody["with_payload"] != true {
		t.Fatalf("with_payload: got %v", gotBody["with_payload"])
	}
	filter, ok := gotBody["filter"].(map[string]any)
	if !ok {
		t.Fatalf("filter missing: %v", gotBody)
	}
	must, ok := filter["must"].([]any)
	if !ok || len(must) != 1 {
		t.Fatalf("must clause: got %v", filter["must"])
	}
	cond := must[0].(map[string]any)
	if cond["key"] != "course_id" {
		t.Fatalf("condition key: got %v", cond["key"])
	}
	match := cond["match"].(map[string]any)
	if match["value"] != "ENG-101" {
		t.Fatalf("match value: got %v", match["value"])
	}

	if len(points) != 2 {
		t.Fatalf("points: want=2 got=%d", len(points))
	}
	if points[0].Payload["text"] != "old exam A" {
		t.Fatalf("payload text: got %v", points[0].Payload["text"])
	}
	if points[1].Score != 0.80 {
		t.Fatalf("score: got %v", points[1].Score)
	}
}

func TestSearchPointsRejectsEmptyVector(t *testing.T) {
	c, err := New(testLogger(t), Config{URL: "http://localhost:6333", Collection: "exams"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.SearchPoints(context.Background(), SearchRequest{Limit: 5}); err == nil {
		t.Fatal("expected error for empty vector")
	}
}

func TestSearchPointsHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status":{"error":"collection not found"}}`, http.StatusNotFound)
	}))
	defer server.Close()

	c, err := New(testLogger(t), Config{URL: server.URL, Collection: "missing"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = c.SearchPoints(context.Background(), SearchRequest{Vector: []float32{0.1}})
	if err == nil {
		t.Fatal("expected error on 404")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("error should carry the status code: %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	log := testLogger(t)
	if _, err := New(log, Config{Collection: "exams"}); err == nil {
		t.Fatal("expected error for missing URL")
	}
	if _, err := New(log, Config{URL: "http://localhost:6333"}); err == nil {
		t.Fatal("expected error for missing collection")
	}
}
