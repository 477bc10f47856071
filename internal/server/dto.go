// SPDX-License-Identifier: MIT

package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/katalvlaran/graphd/loader"
)

type createGraphRequest struct {
	Directed *bool `json:"directed" validate:"required"`
	Weighted *bool `json:"weighted" validate:"required"`
}

type addVertexRequest struct {
	Vertex string `json:"vertex" validate:"required"`
}

type addEdgeRequest struct {
	StartVertex string   `json:"startVertex" validate:"required"`
	EndVertex   string   `json:"endVertex" validate:"required"`
	Weight      *float64 `json:"weight"`
}

type batchItemsRequest struct {
	Vertices []string  `json:"vertices" validate:"dive,required"`
	Edges    []edgeDTO `json:"edges" validate:"dive"`
}

// edgeDTO is an edge on the wire. It decodes from [u, v], [u, v, w] or
// {"from": u, "to": v, "weight": w} and always encodes as an array.
type edgeDTO struct {
	From   string   `json:"from" validate:"required"`
	To     string   `json:"to" validate:"required"`
	Weight *float64 `json:"weight"`
}

func (e *edgeDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		type plain edgeDTO
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*e = edgeDTO(p)
		return nil
	}

	var parts []any
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("edge must be an array or an object: %w", err)
	}
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("edge must have 2 or 3 elements, got %d", len(parts))
	}

	var err error
	if e.From, err = vertexID(parts[0]); err != nil {
		return err
	}
	if e.To, err = vertexID(parts[1]); err != nil {
		return err
	}
	e.Weight = nil
	if len(parts) == 3 {
		w, err := weightValue(parts[2])
		if err != nil {
			return err
		}
		e.Weight = &w
	}

	return nil
}

func (e edgeDTO) MarshalJSON() ([]byte, error) {
	if e.Weight != nil {
		return json.Marshal([]any{e.From, e.To, *e.Weight})
	}

	return json.Marshal([]string{e.From, e.To})
}

// vertexID accepts strings and numbers, so [1, 2] names vertices "1" and "2".
func vertexID(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("vertex must be a string or a number, got %T", v)
	}
}

func weightValue(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case string:
		w, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, fmt.Errorf("weight %q is not a number", t)
		}
		return w, nil
	default:
		return 0, fmt.Errorf("weight must be a number, got %T", v)
	}
}

func toEdgeItems(in []edgeDTO) []loader.EdgeItem {
	out := make([]loader.EdgeItem, len(in))
	for i, e := range in {
		out[i] = loader.EdgeItem{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}

func fromEdgeItems(in []loader.EdgeItem) []edgeDTO {
	out := make([]edgeDTO, len(in))
	for i, e := range in {
		out[i] = edgeDTO{From: e.From, To: e.To, Weight: e.Weight}
	}

	return out
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type graphResponse struct {
	Message  string `json:"message"`
	ID       string `json:"id"`
	Directed bool   `json:"directed"`
	Weighted bool   `json:"weighted"`
}

type batchResponse struct {
	Message  string    `json:"message"`
	Vertices []string  `json:"vertices"`
	Edges    []edgeDTO `json:"edges"`
	Skipped  int       `json:"skipped"`
}

type adjacencyResponse struct {
	Vertex    string   `json:"vertex"`
	Neighbors []string `json:"neighbors"`
	In        []string `json:"in"`
	Out       []string `json:"out"`
}

type degreeResponse struct {
	Message   string `json:"message"`
	Vertex    string `json:"vertex"`
	Directed  bool   `json:"directed"`
	Degree    int    `json:"degree"`
	InDegree  int    `json:"in_degree"`
	OutDegree int    `json:"out_degree"`
}

type shortestPathResponse struct {
	Length   float64  `json:"length"`
	Path     string   `json:"path"`
	Vertices []string `json:"vertices"`
}

type verifyAdjResponse struct {
	Result   string `json:"result"`
	Adjacent bool   `json:"adjacent"`
}

type graphInfoResponse struct {
	ID       string `json:"id"`
	Order    int    `json:"order"`
	Size     int    `json:"size"`
	Directed bool   `json:"directed"`
	Weighted bool   `json:"weighted"`
}

type eulerianResponse struct {
	Result string `json:"result"`
	Class  string `json:"class"`
}

type eulerianPathResponse struct {
	Class string   `json:"class"`
	Path  string   `json:"path"`
	Walk  []string `json:"walk"`
}
