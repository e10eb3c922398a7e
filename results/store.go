// SPDX-License-Identifier: MIT
// Package results: directory-backed result store.
//
// Contract:
//   - NewStore creates the root directory if missing.
//   - Save writes fields in sorted name order (deterministic file output for
//     a fixed clock), arrays as 4-decimal text, the rest as indented JSON
//     metadata under the reserved "datetime" stamp.
//   - Collision policy: an existing {simID}_metadata.txt appends
//     "_duplicate" to the id for this save; nothing is overwritten.
//   - simID must be non-empty (else ErrEmptySimID); metadata fields must be
//     JSON-serializable (marshal failures surface with context).

package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
)

// ErrEmptySimID indicates Save was called with an empty simulation id.
var ErrEmptySimID = errors.New("results: empty simulation id")

const (
	methodSave = "Save"

	// numberFormat mirrors a fixed-point "%6.4f" layout: aligned columns,
	// 4 decimal digits.
	numberFormat = "%6.4f"

	duplicateSuffix = "_duplicate"
	metadataSuffix  = "_metadata.txt"
	datetimeField   = "datetime"

	dirPerm  = 0o755
	filePerm = 0o644
)

// Option mutates the store configuration.
type Option func(*Store)

// WithClock overrides the datetime source used for metadata stamps.
// Intended for tests; panics on nil (omit the option instead).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("results: WithClock: now must be non-nil")
	}
	return func(st *Store) { st.now = now }
}

// Store persists simulation results under one root directory.
type Store struct {
	dir string
	now func() time.Time
}

// NewStore opens (creating if necessary) a result store rooted at dir.
func NewStore(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("NewStore: %w", err)
	}
	st := &Store{dir: dir, now: time.Now}
	for _, opt := range opts {
		opt(st)
	}
	return st, nil
}

// Save persists one simulation run. Numeric array fields ([]float64,
// *mat.Dense) get a text file each; all other fields land in the JSON
// metadata object together with the datetime stamp.
func (st *Store) Save(simID string, fields map[string]any) error {
	if simID == "" {
		return fmt.Errorf("%s: %w", methodSave, ErrEmptySimID)
	}

	metadata := map[string]any{
		datetimeField: st.now().Format(time.RFC3339),
	}

	// Collision avoidance: never overwrite an earlier run's files.
	if _, err := os.Stat(st.path(simID + metadataSuffix)); err == nil {
		simID += duplicateSuffix
	}

	// Deterministic field order regardless of map iteration.
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch v := fields[name].(type) {
		case []float64:
			if err := st.writeVector(simID, name, v); err != nil {
				return fmt.Errorf("%s: field %q: %w", methodSave, name, err)
			}
		case *mat.Dense:
			if err := st.writeMatrix(simID, name, v); err != nil {
				return fmt.Errorf("%s: field %q: %w", methodSave, name, err)
			}
		default:
			metadata[name] = v
		}
	}

	return st.writeMetadata(simID, metadata)
}

// Dir returns the store's root directory.
func (st *Store) Dir() string { return st.dir }

func (st *Store) path(name string) string {
	return filepath.Join(st.dir, name)
}

// writeVector renders one value per line, matching the layout loaders for
// column-vector text files expect.
func (st *Store) writeVector(simID, name string, v []float64) error {
	var b strings.Builder
	for _, x := range v {
		fmt.Fprintf(&b, numberFormat+"\n", x)
	}
	return os.WriteFile(st.path(simID+"_"+name+".txt"), []byte(b.String()), filePerm)
}

// writeMatrix renders one row per line, entries space-separated.
func (st *Store) writeMatrix(simID, name string, a *mat.Dense) error {
	rows, cols := a.Dims()
	var b strings.Builder
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, numberFormat, a.At(i, j))
		}
		b.WriteByte('\n')
	}
	return os.WriteFile(st.path(simID+"_"+name+".txt"), []byte(b.String()), filePerm)
}

func (st *Store) writeMetadata(simID string, metadata map[string]any) error {
	buf, err := json.MarshalIndent(metadata, "", "    ")
	if err != nil {
		return fmt.Errorf("%s: marshal metadata: %w", methodSave, err)
	}
	if err := os.WriteFile(st.path(simID+metadataSuffix), buf, filePerm); err != nil {
		return fmt.Errorf("%s: %w", methodSave, err)
	}
	return nil
}
