// SPDX-License-Identifier: MIT

package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/graphd/engine"
	"github.com/katalvlaran/graphd/internal/config"
	"github.com/katalvlaran/graphd/internal/log"
	"github.com/katalvlaran/graphd/internal/metrics"
	"github.com/katalvlaran/graphd/internal/server"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(viper.New(), "")
	require.NoError(t, err)
	cfg.RateLimit.RPS = 0

	return cfg
}

func testLogger(t *testing.T) *log.ZapLogger {
	t.Helper()
	l, err := log.New(&log.LogOpts{Level: "error", Output: io.Discard})
	require.NoError(t, err)

	return l
}

type ServerSuite struct {
	suite.Suite
	metrics *metrics.Metrics
	handler http.Handler
}

func (s *ServerSuite) SetupTest() {
	s.metrics = metrics.New()
	e := engine.New(engine.WithObserver(s.metrics))
	s.handler = server.New(testConfig(s.T()), e, testLogger(s.T()), s.metrics).Handler()
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

// do sends a request and decodes a JSON object response.
func (s *ServerSuite) do(method, target string, body io.Reader, contentType string) (int, map[string]any) {
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}

	return rec.Code, out
}

func (s *ServerSuite) postJSON(target, body string) (int, map[string]any) {
	return s.do(http.MethodPost, target, strings.NewReader(body), "application/json")
}

func (s *ServerSuite) get(target string) (int, map[string]any) {
	return s.do(http.MethodGet, target, nil, "")
}

func (s *ServerSuite) upload(target, content string, fields map[string]string) (int, map[string]any) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		s.Require().NoError(mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile("file", "graph.txt")
	s.Require().NoError(err)
	_, err = fw.Write([]byte(content))
	s.Require().NoError(err)
	s.Require().NoError(mw.Close())

	return s.do(http.MethodPost, target, &buf, mw.FormDataContentType())
}

func (s *ServerSuite) TestHealth() {
	code, body := s.get("/health")
	s.Equal(http.StatusOK, code)
	s.Equal("healthy", body["status"])
}

func (s *ServerSuite) TestCreateGraphRequiresBothFlags() {
	code, body := s.postJSON("/create_graph", `{"directed": true}`)
	s.Equal(http.StatusBadRequest, code)
	s.Contains(body["error"], "weighted is required")

	code, _ = s.postJSON("/create_graph", `{not json`)
	s.Equal(http.StatusBadRequest, code)
}

func (s *ServerSuite) TestCreateGraphAndInfo() {
	code, body := s.postJSON("/create_graph", `{"directed": true, "weighted": true}`)
	s.Require().Equal(http.StatusOK, code)
	s.Equal("Graph created", body["message"])
	s.Equal(true, body["directed"])
	s.NotEmpty(body["id"])

	code, info := s.get("/get_graph_info")
	s.Require().Equal(http.StatusOK, code)
	s.Equal(body["id"], info["id"])
	s.Equal(0.0, info["order"])
	s.Equal(true, info["weighted"])
}

func (s *ServerSuite) TestAddVertexAndEdge() {
	code, body := s.postJSON("/add_vertex", `{"vertex": "A"}`)
	s.Equal(http.StatusOK, code)
	s.Equal("Vertex A added successfully!", body["message"])

	code, _ = s.postJSON("/add_vertex", `{"vertex": "A"}`)
	s.Equal(http.StatusConflict, code)

	code, body = s.postJSON("/add_vertex", `{}`)
	s.Equal(http.StatusBadRequest, code)
	s.Equal("vertex is required", body["error"])

	code, _ = s.postJSON("/add_edge", `{"startVertex": "A", "endVertex": "B"}`)
	s.Equal(http.StatusOK, code)

	code, body = s.postJSON("/add_edge", `{"startVertex": "A"}`)
	s.Equal(http.StatusBadRequest, code)
	s.Contains(body["error"], "endVertex is required")

	_, info := s.get("/get_graph_info")
	s.Equal(2.0, info["order"])
	s.Equal(1.0, info["size"])
}

func (s *ServerSuite) TestInsertBatchItemsArrayEdges() {
	s.postJSON("/create_graph", `{"directed": false, "weighted": true}`)

	code, body := s.postJSON("/insert_batch_items",
		`{"vertices": ["X"], "edges": [["A", "B", 2.5], ["B", "C"], {"from": "C", "to": "A", "weight": 4}]}`)
	s.Require().Equal(http.StatusOK, code)
	s.Equal("Batch items inserted", body["message"])
	s.Equal([]any{"A", "B", "C", "X"}, body["vertices"])
	s.Equal([]any{
		[]any{"A", "B", 2.5},
		[]any{"B", "C", 1.0},
		[]any{"C", "A", 4.0},
	}, body["edges"])
}

func (s *ServerSuite) TestInsertBatchItemsRejectsBadEdges() {
	code, _ := s.postJSON("/insert_batch_items", `{"vertices": [], "edges": [["A"]]}`)
	s.Equal(http.StatusBadRequest, code)

	code, _ = s.postJSON("/insert_batch_items", `{"vertices": [], "edges": [["A", "B", "heavy"]]}`)
	s.Equal(http.StatusBadRequest, code)

	code, body := s.postJSON("/insert_batch_items", `{"vertices": [""], "edges": []}`)
	s.Equal(http.StatusBadRequest, code)
	s.Contains(body["error"], "vertices[0] is required")
}

func (s *ServerSuite) TestInsertBatchInfoSkipsMalformedLines() {
	code, body := s.upload("/insert_batch_info", "A B\nC D 5\nlonely\n", nil)
	s.Require().Equal(http.StatusOK, code)
	s.Equal([]any{"A", "B"}, body["vertices"])
	s.Equal([]any{[]any{"A", "B"}}, body["edges"])
	s.Equal(2.0, body["skipped"])
}

func (s *ServerSuite) TestInsertBatchInfoRequiresFile() {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	s.Require().NoError(mw.WriteField("note", "no file"))
	s.Require().NoError(mw.Close())

	code, body := s.do(http.MethodPost, "/insert_batch_info", &buf, mw.FormDataContentType())
	s.Equal(http.StatusBadRequest, code)
	s.Contains(body["error"], "file")
}

func (s *ServerSuite) TestCreateGraphFromFile() {
	s.postJSON("/add_vertex", `{"vertex": "old"}`)

	code, body := s.upload("/create_graph_from_file", "A B 1\nB C 2\n", map[string]string{
		"directed": "true",
		"weighted": "1",
	})
	s.Require().Equal(http.StatusOK, code)
	s.Equal("Graph created from file", body["message"])
	s.Equal([]any{"A", "B", "C"}, body["vertices"])

	_, info := s.get("/get_graph_info")
	s.Equal(true, info["directed"])
	s.Equal(true, info["weighted"])
	s.Equal(3.0, info["order"])

	code, _ = s.upload("/create_graph_from_file", "A B\n", map[string]string{"directed": "maybe"})
	s.Equal(http.StatusBadRequest, code)
}

func (s *ServerSuite) TestAdjacencyAndDegree() {
	s.postJSON("/create_graph", `{"directed": true, "weighted": false}`)
	s.postJSON("/insert_batch_items", `{"vertices": [], "edges": [["A", "B"], ["C", "A"], ["A", "D"]]}`)

	code, body := s.get("/adjacency?vertex=A")
	s.Require().Equal(http.StatusOK, code)
	s.Equal([]any{"B", "D"}, body["neighbors"])
	s.Equal([]any{"C"}, body["in"])

	code, body = s.get("/degree?vertex=A")
	s.Require().Equal(http.StatusOK, code)
	s.Equal("vertex A has in-degree 1 and out-degree 2", body["message"])
	s.Equal(2.0, body["out_degree"])

	code, _ = s.get("/degree?vertex=Z")
	s.Equal(http.StatusNotFound, code)

	code, body = s.get("/adjacency")
	s.Equal(http.StatusBadRequest, code)
	s.Contains(body["error"], "vertex")
}

func (s *ServerSuite) TestShortestPath() {
	s.postJSON("/create_graph", `{"directed": false, "weighted": true}`)
	s.postJSON("/insert_batch_items", `{"vertices": ["Z"], "edges": [["A", "B", 4], ["A", "C", 1], ["C", "B", 2]]}`)

	code, body := s.get("/shortest_path?vertex_start=A&vertex_end=B")
	s.Require().Equal(http.StatusOK, code)
	s.Equal(3.0, body["length"])
	s.Equal("A -> C -> B", body["path"])

	code, _ = s.get("/shortest_path?vertex_start=A&vertex_end=Z")
	s.Equal(http.StatusUnprocessableEntity, code)

	code, _ = s.get("/shortest_path?vertex_start=A&vertex_end=Q")
	s.Equal(http.StatusNotFound, code)

	code, _ = s.get("/shortest_path?vertex_start=A")
	s.Equal(http.StatusBadRequest, code)
}

func (s *ServerSuite) TestVerifyAdj() {
	s.postJSON("/create_graph", `{"directed": true, "weighted": false}`)
	s.postJSON("/add_edge", `{"startVertex": "A", "endVertex": "B"}`)
	s.postJSON("/add_vertex", `{"vertex": "C"}`)

	_, body := s.get("/verify_adj?vertex1=B&vertex2=A")
	s.Equal(true, body["adjacent"])
	s.Equal("adjacent", body["result"])

	_, body = s.get("/verify_adj?vertex1=A&vertex2=C")
	s.Equal(false, body["adjacent"])

	code, _ := s.get("/verify_adj?vertex1=A&vertex2=Q")
	s.Equal(http.StatusNotFound, code)
}

func (s *ServerSuite) TestEulerianEndpoints() {
	s.postJSON("/insert_batch_items", `{"vertices": [], "edges": [["A", "B"], ["B", "C"], ["C", "D"], ["D", "A"]]}`)

	_, body := s.get("/check_eulerian")
	s.Equal("Eulerian", body["class"])
	s.Equal("The graph is Eulerian.", body["result"])

	code, body := s.get("/eulerian_path")
	s.Require().Equal(http.StatusOK, code)
	s.Equal("A -> B -> C -> D -> A", body["path"])

	s.postJSON("/insert_batch_items", `{"vertices": [], "edges": [["A", "C"], ["B", "D"]]}`)
	_, body = s.get("/check_eulerian")
	s.Equal("Neither", body["class"])

	code, _ = s.get("/eulerian_path")
	s.Equal(http.StatusUnprocessableEntity, code)
}

func (s *ServerSuite) TestResetGraphKeepsMode() {
	s.postJSON("/create_graph", `{"directed": true, "weighted": true}`)
	s.postJSON("/add_vertex", `{"vertex": "A"}`)

	code, body := s.postJSON("/reset_graph", ``)
	s.Require().Equal(http.StatusOK, code)
	s.Equal("Graph reset successfully.", body["message"])
	s.Equal(true, body["directed"])

	_, info := s.get("/get_graph_info")
	s.Equal(0.0, info["order"])
}

func (s *ServerSuite) TestMetricsEndpoint() {
	s.get("/degree?vertex=nope")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `graphd_http_requests_total{code="404",route="/degree"} 1`)
	s.Contains(rec.Body.String(), `graphd_operation_errors_total{kind="not_found",op="degree"} 1`)
}

func (s *ServerSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, "/add_vertex", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Equal("*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimit.RPS, cfg.RateLimit.Burst = 0.001, 2
	m := metrics.New()
	h := server.New(cfg, engine.New(), testLogger(t), m).Handler()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_graph_info", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "health is not rate limited")
}

func TestUploadTooLarge(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.MaxUploadBytes = 64
	h := server.New(cfg, engine.New(), testLogger(t), nil).Handler()

	rec := httptest.NewRecorder()
	body := `{"vertex": "` + strings.Repeat("v", 128) + `"}`
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/add_vertex", strings.NewReader(body)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code, "metrics are off without a registry")
}

func TestStart_ShutsDownOnCancel(t *testing.T) {
	cfg := testConfig(t)
	srv := server.New(cfg, engine.New(), testLogger(t), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Start(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestStart_BadAddress(t *testing.T) {
	srv := server.New(testConfig(t), engine.New(), testLogger(t), nil)
	err := srv.Start(context.Background(), "256.0.0.1:-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start HTTP server")
}
