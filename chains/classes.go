// SPDX-License-Identifier: MIT
// Package: stationary/chains
//
// classes.go - communicating classes of a chain.
//
// The transition graph has an edge i→j (i ≠ j) whenever m[i][j] > 0; the
// diagonal is ignored so stochastic and generator matrices give the same
// graph. Communicating classes are its strongly connected components, found
// with Tarjan's depth-first walk in O(n²) over the dense matrix.
//
// A class is closed when no edge leaves it. Every stationary distribution
// puts zero mass outside the closed classes, and it is unique exactly when
// there is one closed class.

package chains

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stationary/matrix"
)

const methodClasses = "Classes"

// visitation states of the walk.
const (
	white = iota // not reached yet
	gray         // on the Tarjan stack
	black        // assigned to a class
)

// Class is one communicating class.
type Class struct {
	States []int // ascending
	Closed bool  // no positive transition leaves the class
}

// classWalker holds the Tarjan bookkeeping for one call of Classes.
type classWalker struct {
	m      matrix.Matrix
	n      int
	index  []int
	low    []int
	state  []int
	stack  []int
	next   int
	member []int // member[i] = class id of state i
	found  [][]int
}

// Classes returns the communicating classes of m ordered by their smallest state.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
// Complexity: O(n²) time, O(n) space besides the result.
func Classes(m matrix.Matrix) ([]Class, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", methodClasses, err)
	}
	n := m.Rows()
	w := &classWalker{
		m:      m,
		n:      n,
		index:  make([]int, n),
		low:    make([]int, n),
		state:  make([]int, n),
		member: make([]int, n),
	}
	for v := 0; v < n; v++ {
		if w.state[v] == white {
			w.visit(v)
		}
	}

	out := make([]Class, len(w.found))
	for c, states := range w.found {
		sort.Ints(states)
		out[c] = Class{States: states, Closed: w.closed(c, states)}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].States[0] < out[b].States[0] })

	return out, nil
}

// visit is the recursive step of Tarjan's algorithm.
func (w *classWalker) visit(v int) {
	w.index[v], w.low[v] = w.next, w.next
	w.next++
	w.state[v] = gray
	w.stack = append(w.stack, v)

	for u := 0; u < w.n; u++ {
		if !w.edge(v, u) {
			continue
		}
		switch w.state[u] {
		case white:
			w.visit(u)
			w.low[v] = min(w.low[v], w.low[u])
		case gray:
			w.low[v] = min(w.low[v], w.index[u])
		}
	}

	if w.low[v] != w.index[v] {
		return
	}
	id := len(w.found)
	var states []int
	for {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.state[top] = black
		w.member[top] = id
		states = append(states, top)
		if top == v {
			break
		}
	}
	w.found = append(w.found, states)
}

func (w *classWalker) edge(i, j int) bool {
	if i == j {
		return false
	}
	v, _ := w.m.At(i, j)

	return v > 0
}

func (w *classWalker) closed(id int, states []int) bool {
	for _, i := range states {
		for j := 0; j < w.n; j++ {
			if w.member[j] != id && w.edge(i, j) {
				return false
			}
		}
	}

	return true
}

// ClosedClasses returns only the closed classes of m.
func ClosedClasses(m matrix.Matrix) ([]Class, error) {
	all, err := Classes(m)
	if err != nil {
		return nil, err
	}
	closed := all[:0]
	for _, c := range all {
		if c.Closed {
			closed = append(closed, c)
		}
	}

	return closed, nil
}
