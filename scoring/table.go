package scoring

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Table is a substitution cost model loaded from an external tabular
// source keyed by symbol pairs. Pairs absent from the table fall back
// to an underlying Scheme, so a table over {A,C,G,T,-} still behaves
// as a total function when fed unexpected symbols.
//
// Lookups are directional: Score(a, b) reads row a, column b. Symmetry
// is the table author's choice, not an assumption.
type Table struct {
	costs map[[2]byte]int
	base  Scheme
}

// NewTable returns an empty Table backed by base for missing pairs.
func NewTable(base Scheme) *Table {
	return &Table{
		costs: make(map[[2]byte]int),
		base:  base,
	}
}

// Set records the cost of aligning symbol a (row) against b (column).
func (t *Table) Set(a, b byte, cost int) {
	t.costs[[2]byte{a, b}] = cost
}

// Len returns the number of explicit pair costs in the table.
func (t *Table) Len() int {
	return len(t.costs)
}

// Score implements Model: explicit pair cost when present, otherwise
// the base scheme's verdict.
func (t *Table) Score(a, b byte) int {
	if cost, ok := t.costs[[2]byte{a, b}]; ok {
		return cost
	}

	return t.base.Score(a, b)
}

// GapSymbol implements Model with the base scheme's gap symbol.
func (t *Table) GapSymbol() byte {
	return t.base.GapSymbol()
}

// ReadTable parses a substitution table from r in CSV form:
//
//	 ,A,C,G,T,-
//	A,1,-1,-1,-1,-1
//	C,-1,1,-1,-1,-1
//	...
//
// The header's first field is a corner label and is ignored; every
// other header field must be exactly one byte. Each data row starts
// with its row symbol followed by one integer cost per header column.
// Including the gap symbol as a row/column sets per-symbol gap costs.
//
// Errors wrap ErrTableHeader, ErrTableShape or ErrTableValue with the
// offending line for context.
func ReadTable(r io.Reader, base Scheme) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTableHeader, err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need at least one symbol column", ErrTableHeader)
	}

	// Resolve the column symbols once; header[0] is the corner label.
	cols := make([]byte, len(header)-1)
	for i, field := range header[1:] {
		sym := strings.TrimSpace(field)
		if len(sym) != 1 {
			return nil, fmt.Errorf("%w: column %d is %q", ErrTableHeader, i+1, field)
		}
		cols[i] = sym[0]
	}

	table := NewTable(base)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrTableShape, line, err)
		}
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: line %d has %d fields, want %d", ErrTableShape, line, len(row), len(header))
		}

		key := strings.TrimSpace(row[0])
		if len(key) != 1 {
			return nil, fmt.Errorf("%w: line %d row symbol is %q", ErrTableShape, line, row[0])
		}

		for i, field := range row[1:] {
			cost, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %q: %v", ErrTableValue, line, string(cols[i]), err)
			}
			table.Set(key[0], cols[i], cost)
		}
	}

	return table, nil
}

// LoadTable reads a substitution table from the CSV file at path.
func LoadTable(path string, base Scheme) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scoring: open substitution table: %w", err)
	}
	defer f.Close()

	return ReadTable(f, base)
}
