// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	unweightedTokens = 2
	weightedTokens   = 3
)

// ParseLines reads r line by line and collects the edges it describes.
// weighted selects the three-token form. Malformed lines are skipped and
// counted; blank lines are ignored.
//
// Errors: ErrLineTooLong, or the underlying read error.
// Complexity: O(input size).
func ParseLines(r io.Reader, weighted bool) (*Batch, error) {
	want := unweightedTokens
	if weighted {
		want = weightedTokens
	}

	b := &Batch{}
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != want {
			b.Skipped++
			continue
		}

		item := EdgeItem{From: fields[0], To: fields[1]}
		if weighted {
			w, err := strconv.ParseFloat(fields[2], 64)
			if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
				b.Skipped++
				continue
			}
			item.Weight = &w
		}

		b.addVertex(seen, item.From)
		b.addVertex(seen, item.To)
		b.Edges = append(b.Edges, item)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: after line %d", ErrLineTooLong, line)
		}
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	return b, nil
}

// Items builds a batch from structured input. Edge endpoints missing from
// vertices are appended in first-seen order.
func Items(vertices []string, edges []EdgeItem) *Batch {
	b := &Batch{Edges: edges}
	seen := make(map[string]struct{}, len(vertices))
	for _, v := range vertices {
		b.addVertex(seen, v)
	}
	for _, e := range edges {
		b.addVertex(seen, e.From)
		b.addVertex(seen, e.To)
	}

	return b
}

func (b *Batch) addVertex(seen map[string]struct{}, id string) {
	if _, ok := seen[id]; ok {
		return
	}
	seen[id] = struct{}{}
	b.Vertices = append(b.Vertices, id)
}
