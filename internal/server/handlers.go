// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphd/euler"
	"github.com/katalvlaran/graphd/loader"
)

const multipartMemory = 8 << 20

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// decode reads a JSON body into dst and validates it. It writes the error
// response itself and reports false on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return false
		}
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed JSON body: %v", err))
		return false
	}
	if err := validateStruct(s.validate, dst); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}

	return true
}

// query returns the named query parameters, or writes 400 naming the first missing one.
func (s *Server) query(w http.ResponseWriter, r *http.Request, names ...string) ([]string, bool) {
	vals := make([]string, len(names))
	for i, name := range names {
		vals[i] = r.URL.Query().Get(name)
		if vals[i] == "" {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("query parameter %q is required", name))
			return nil, false
		}
	}

	return vals, true
}

func (s *Server) createGraph(w http.ResponseWriter, r *http.Request) {
	var req createGraphRequest
	if !s.decode(w, r, &req) {
		return
	}
	m := s.engine.CreateGraph(*req.Directed, *req.Weighted)
	s.writeJSON(w, http.StatusOK, graphResponse{
		Message:  "Graph created",
		ID:       m.ID,
		Directed: m.Directed,
		Weighted: m.Weighted,
	})
}

func (s *Server) resetGraph(w http.ResponseWriter, _ *http.Request) {
	m := s.engine.Reset()
	s.writeJSON(w, http.StatusOK, graphResponse{
		Message:  "Graph reset successfully.",
		ID:       m.ID,
		Directed: m.Directed,
		Weighted: m.Weighted,
	})
}

func (s *Server) addVertex(w http.ResponseWriter, r *http.Request) {
	var req addVertexRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.engine.AddVertex(req.Vertex); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("Vertex %s added successfully!", req.Vertex)})
}

func (s *Server) addEdge(w http.ResponseWriter, r *http.Request) {
	var req addEdgeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.engine.AddEdge(req.StartVertex, req.EndVertex, req.Weight); err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Edge added successfully!"})
}

func (s *Server) insertBatchItems(w http.ResponseWriter, r *http.Request) {
	var req batchItemsRequest
	if !s.decode(w, r, &req) {
		return
	}
	res, err := s.engine.BatchInsertItems(req.Vertices, toEdgeItems(req.Edges))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeBatch(w, "Batch items inserted", res)
}

func (s *Server) insertBatchInfo(w http.ResponseWriter, r *http.Request) {
	file, ok := s.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	res, err := s.engine.BatchInsertFromText(file)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeBatch(w, "Batch info inserted", res)
}

func (s *Server) createGraphFromFile(w http.ResponseWriter, r *http.Request) {
	file, ok := s.upload(w, r)
	if !ok {
		return
	}
	defer file.Close()

	directed, err := formBool(r, "directed")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	weighted, err := formBool(r, "weighted")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.engine.CreateGraphFromText(file, directed, weighted)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeBatch(w, "Graph created from file", res)
}

// upload opens the multipart "file" field, writing 400/413 on failure.
func (s *Server) upload(w http.ResponseWriter, r *http.Request) (multipart.File, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return nil, false
		}
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed multipart body: %v", err))
		return nil, false
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, `multipart field "file" is required`)
		return nil, false
	}

	return file, true
}

// formBool reads an optional boolean form value; absent means false.
func formBool(r *http.Request, name string) (bool, error) {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("form field %q must be a boolean, got %q", name, v)
	}

	return b, nil
}

func (s *Server) writeBatch(w http.ResponseWriter, msg string, res *loader.Result) {
	s.writeJSON(w, http.StatusOK, batchResponse{
		Message:  msg,
		Vertices: res.Vertices,
		Edges:    fromEdgeItems(res.Edges),
		Skipped:  res.Skipped,
	})
}

func (s *Server) graphInfo(w http.ResponseWriter, _ *http.Request) {
	info := s.engine.GraphInfo()
	s.writeJSON(w, http.StatusOK, graphInfoResponse{
		ID:       info.ID,
		Order:    info.Order,
		Size:     info.Size,
		Directed: info.Directed,
		Weighted: info.Weighted,
	})
}

func (s *Server) adjacency(w http.ResponseWriter, r *http.Request) {
	q, ok := s.query(w, r, "vertex")
	if !ok {
		return
	}
	n, err := s.engine.Adjacency(q[0])
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, adjacencyResponse{Vertex: n.Vertex, Neighbors: n.Neighbors, In: n.In, Out: n.Out})
}

func (s *Server) degree(w http.ResponseWriter, r *http.Request) {
	q, ok := s.query(w, r, "vertex")
	if !ok {
		return
	}
	d, err := s.engine.Degree(q[0])
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, degreeResponse{
		Message:   d.String(),
		Vertex:    d.Vertex,
		Directed:  d.Directed,
		Degree:    d.Degree,
		InDegree:  d.In,
		OutDegree: d.Out,
	})
}

func (s *Server) shortestPath(w http.ResponseWriter, r *http.Request) {
	q, ok := s.query(w, r, "vertex_start", "vertex_end")
	if !ok {
		return
	}
	p, err := s.engine.ShortestPath(q[0], q[1])
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, shortestPathResponse{
		Length:   p.Weight,
		Path:     strings.Join(p.Vertices, " -> "),
		Vertices: p.Vertices,
	})
}

func (s *Server) verifyAdj(w http.ResponseWriter, r *http.Request) {
	q, ok := s.query(w, r, "vertex1", "vertex2")
	if !ok {
		return
	}
	adjacent, err := s.engine.VerifyAdjacent(q[0], q[1])
	if err != nil {
		s.fail(w, err)
		return
	}
	result := "not adjacent"
	if adjacent {
		result = "adjacent"
	}
	s.writeJSON(w, http.StatusOK, verifyAdjResponse{Result: result, Adjacent: adjacent})
}

func (s *Server) checkEulerian(w http.ResponseWriter, _ *http.Request) {
	c, err := s.engine.ClassifyEulerian()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, eulerianResponse{Result: describeClass(c), Class: c.String()})
}

func (s *Server) eulerianPath(w http.ResponseWriter, _ *http.Request) {
	walk, c, err := s.engine.EulerianWalk()
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, eulerianPathResponse{
		Class: c.String(),
		Path:  strings.Join(walk, " -> "),
		Walk:  walk,
	})
}

func describeClass(c euler.Class) string {
	switch c {
	case euler.Eulerian:
		return "The graph is Eulerian."
	case euler.SemiEulerian:
		return "The graph is semi-Eulerian."
	default:
		return "The graph is neither Eulerian nor semi-Eulerian."
	}
}
