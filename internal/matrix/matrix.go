// Package matrix reads a CSV table of numeric taxa/feature measurements and
// derives per-feature pairwise distance matrices, their upper diagonals, and
// XML renderings of those values.
package matrix

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// DefaultElementName is the XML root tag used when the caller supplies none.
const DefaultElementName = "xxx"

// Matrix holds a grid of numeric measurements, one row per taxon and one
// column per feature, with insertion order preserved for both. It is
// populated once by New and read-only afterwards, so a Matrix may be shared
// by any number of concurrent readers.
type Matrix struct {
	featureNames []string
	taxaNames    []string
	features     map[string][]float64 // column view: values in taxa order
	taxa         map[string][]float64 // row view: values in feature order
}

// New reads CSV from r and builds a Matrix, consuming r completely.
//
// The first row is a header: its first cell is ignored (it labels the
// taxa-name column) and the remaining cells, whitespace-trimmed, name the
// features in order. Each following row names a taxon in its first cell and
// must carry exactly one numeric value per feature.
func New(r io.Reader) (*Matrix, error) {
	m := &Matrix{
		features: make(map[string][]float64),
		taxa:     make(map[string][]float64),
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	row := 0
	for {
		fields, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++

		if row == 1 {
			for _, name := range fields[1:] {
				name = strings.TrimSpace(name)
				if _, dup := m.features[name]; dup {
					return nil, &ValidationError{Msg: fmt.Sprintf("Feature name %q appears more than once", name)}
				}
				m.featureNames = append(m.featureNames, name)
				m.features[name] = nil
			}
			continue
		}

		if len(fields)-1 != len(m.featureNames) {
			return nil, &ValidationError{Msg: fmt.Sprintf(
				"Input row %d contains %d value fields, but there were %d feature (column) headers",
				row, len(fields)-1, len(m.featureNames))}
		}

		taxon := strings.TrimSpace(fields[0])
		if _, dup := m.taxa[taxon]; dup {
			return nil, &ValidationError{Msg: fmt.Sprintf("Taxa name %q appears more than once", taxon)}
		}
		m.taxaNames = append(m.taxaNames, taxon)

		values := make([]float64, 0, len(m.featureNames))
		for i, cell := range fields[1:] {
			cell = strings.TrimSpace(cell)
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, &ParseError{Row: row, Field: i + 1, Literal: cell, Err: err}
			}
			values = append(values, v)
			name := m.featureNames[i]
			m.features[name] = append(m.features[name], v)
		}
		m.taxa[taxon] = values
	}

	if len(m.featureNames) == 0 {
		return nil, &ValidationError{Msg: "No input CSV data found."}
	}
	if len(m.taxaNames) == 0 {
		return nil, &ValidationError{Msg: "No taxa (rows) found in input CSV."}
	}
	return m, nil
}

// NumFeatures returns the number of feature columns.
func (m *Matrix) NumFeatures() int { return len(m.featureNames) }

// NumTaxa returns the number of taxon rows.
func (m *Matrix) NumTaxa() int { return len(m.taxaNames) }

// Features returns the feature names in declaration order.
func (m *Matrix) Features() []string {
	out := make([]string, len(m.featureNames))
	copy(out, m.featureNames)
	return out
}

// Taxa returns the taxa names in input order.
func (m *Matrix) Taxa() []string {
	out := make([]string, len(m.taxaNames))
	copy(out, m.taxaNames)
	return out
}

// FeatureValues returns the named feature's raw values, one per taxon in
// taxa order.
func (m *Matrix) FeatureValues(name string) ([]float64, error) {
	vals, ok := m.features[name]
	if !ok {
		return nil, &NotFoundError{Kind: "feature", Name: name}
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out, nil
}

// TaxonValues returns the named taxon's raw values, one per feature in
// declaration order.
func (m *Matrix) TaxonValues(name string) ([]float64, error) {
	vals, ok := m.taxa[name]
	if !ok {
		return nil, &NotFoundError{Kind: "taxa", Name: name}
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return out, nil
}

// DistanceMatrix returns the square matrix of pairwise differences of the
// named feature's values across taxa. Rows and columns follow taxa order, so
// entry [i][j] is value(taxon i) - value(taxon j): the result is
// antisymmetric with a zero diagonal. With logged set, values are
// log10-transformed first; a value outside the logarithm's domain (v <= 0)
// scales to 0.0 rather than producing NaN or an error.
func (m *Matrix) DistanceMatrix(feature string, logged bool) ([][]float64, error) {
	scaled, err := m.scaledValues(feature, logged)
	if err != nil {
		return nil, err
	}
	n := len(scaled)
	dm := make([][]float64, n)
	for i := range dm {
		row := make([]float64, n)
		for j := range row {
			row[j] = scaled[i] - scaled[j]
		}
		dm[i] = row
	}
	return dm, nil
}

// UpperDiagonal returns the strictly-upper-triangular entries of
// DistanceMatrix(feature, logged), flattened row-major. For n taxa the
// result has n*(n-1)/2 entries.
func (m *Matrix) UpperDiagonal(feature string, logged bool) ([]float64, error) {
	dm, err := m.DistanceMatrix(feature, logged)
	if err != nil {
		return nil, err
	}
	n := len(dm)
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, dm[i][j])
		}
	}
	return out, nil
}

func (m *Matrix) scaledValues(feature string, logged bool) ([]float64, error) {
	raw, ok := m.features[feature]
	if !ok {
		return nil, &NotFoundError{Kind: "feature", Name: feature}
	}
	if !logged {
		return raw, nil
	}
	scaled := make([]float64, len(raw))
	for i, v := range raw {
		if v > 0 {
			scaled[i] = math.Log10(v)
		}
	}
	return scaled, nil
}
