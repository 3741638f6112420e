package stages

import (
	"bytes"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// emptyCell marks a cell without a block in YAML layouts.
const emptyCell = "."

// stageFile is the YAML layout format.
//
//	name: Opening
//	grid:
//	  - ". . STD1 STD1 . ."
type stageFile struct {
	Name string   `yaml:"name"`
	Grid []string `yaml:"grid"`
}

// Builtin returns the stages shipped inside the binary.
func Builtin(rows, cols int) (*Set, error) {
	stages, err := loadFS(builtinFS, "builtin")
	if err != nil {
		return nil, err
	}
	return NewSet(rows, cols, stages...), nil
}

// LoadDir reads every *.yaml, *.yml and *.csv file in dir, ordered by file name.
func LoadDir(dir string, rows, cols int) (*Set, error) {
	stages, err := loadFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("stages: load %s: %w", dir, err)
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("stages: load %s: %w", dir, ErrNoStage)
	}
	return NewSet(rows, cols, stages...), nil
}

func loadFS(fsys fs.FS, dir string) ([]Stage, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".yaml", ".yml", ".csv":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	stages := make([]Stage, 0, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		var st Stage
		if strings.EqualFold(path.Ext(name), ".csv") {
			st, err = ParseCSV(bytes.NewReader(data))
		} else {
			st, err = ParseYAML(data)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if st.Name == "" {
			st.Name = strings.TrimSuffix(name, path.Ext(name))
		}
		stages = append(stages, st)
	}
	return stages, nil
}

// ParseYAML decodes a YAML layout. Cells are separated by whitespace and "." is empty.
func ParseYAML(data []byte) (Stage, error) {
	var f stageFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Stage{}, err
	}
	grid := make(Grid, len(f.Grid))
	for i, line := range f.Grid {
		fields := strings.Fields(line)
		row := make([]string, len(fields))
		for j, cell := range fields {
			if cell != emptyCell {
				row[j] = cell
			}
		}
		grid[i] = row
	}
	return Stage{Name: f.Name, Grid: grid}, nil
}

// ParseCSV decodes a CSV layout: one record per row, empty fields are empty cells.
func ParseCSV(r io.Reader) (Stage, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // shape is checked by Validate
	cr.TrimLeadingSpace = true

	var grid Grid
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Stage{}, err
		}
		row := make([]string, len(rec))
		for i, cell := range rec {
			row[i] = strings.TrimSpace(cell)
		}
		grid = append(grid, row)
	}
	return Stage{Grid: grid}, nil
}
