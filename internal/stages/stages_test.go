package stages

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func emptyGrid(rows, cols int) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]string, cols)
	}
	return g
}

func TestBuiltinStagesAreValid(t *testing.T) {
	set, err := Builtin(20, 20)
	require.NoError(t, err)
	require.Equal(t, 3, set.Count())
	require.Equal(t, "Opening", set.Name(1))

	for i := 1; i <= set.Count(); i++ {
		g, err := set.Stage(i)
		require.NoError(t, err, "stage %d", i)
		require.Positive(t, g.Blocks(), "stage %d has no blocks", i)
	}

	g, err := set.Stage(1)
	require.NoError(t, err)
	require.Equal(t, 64, g.Blocks())
	require.Equal(t, "ICE1", g[3][9])
	require.Equal(t, "", g[0][0])
}

func TestStageIndexOutOfRange(t *testing.T) {
	set := NewSet(2, 2, Stage{Name: "only", Grid: emptyGrid(2, 2)})

	_, err := set.Stage(0)
	require.ErrorIs(t, err, ErrNoStage)
	_, err = set.Stage(2)
	require.ErrorIs(t, err, ErrNoStage)
	require.Equal(t, "", set.Name(5))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		grid    Grid
		wantErr bool
	}{
		{"empty ok", emptyGrid(3, 4), false},
		{"codes ok", Grid{{"STD1", "", "SPD1", ""}, {"", "SLD2", "", "ICE1"}, {"", "", "", ""}}, false},
		{"too few rows", emptyGrid(2, 4), true},
		{"short row", Grid{{"", "", "", ""}, {"", ""}, {"", "", "", ""}}, true},
		{"unknown code", Grid{{"XXX1", "", "", ""}, {"", "", "", ""}, {"", "", "", ""}}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.grid, 3, 4)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrMalformedGrid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMalformedStageFailsOnAccess(t *testing.T) {
	set := NewSet(2, 2,
		Stage{Name: "good", Grid: emptyGrid(2, 2)},
		Stage{Name: "bad", Grid: emptyGrid(3, 2)},
	)

	_, err := set.Stage(1)
	require.NoError(t, err)
	_, err = set.Stage(2)
	require.ErrorIs(t, err, ErrMalformedGrid)
}

func TestSplitCode(t *testing.T) {
	kind, sprite, err := SplitCode("ICE3")
	require.NoError(t, err)
	require.Equal(t, KindIce, kind)
	require.Equal(t, "3", sprite)

	_, _, err = SplitCode("ST")
	require.Error(t, err)
}

func TestParseCSV(t *testing.T) {
	st, err := ParseCSV(strings.NewReader("STD1, ,SPD1\n,ICE1,\n"))
	require.NoError(t, err)
	require.Equal(t, Grid{{"STD1", "", "SPD1"}, {"", "ICE1", ""}}, st.Grid)
	require.NoError(t, Validate(st.Grid, 2, 3))
}

func TestLoadDirOrdersByName(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600))
	}
	write("b.csv", "STD1,\n,\n")
	write("a.yaml", "name: First\ngrid:\n  - \". ICE1\"\n  - \". .\"\n")
	write("notes.txt", "ignored")

	set, err := LoadDir(dir, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 2, set.Count())
	require.Equal(t, "First", set.Name(1))
	require.Equal(t, "b", set.Name(2))

	g, err := set.Stage(1)
	require.NoError(t, err)
	require.Equal(t, "ICE1", g[0][1])
	require.Equal(t, 1, g.Blocks())
}

func TestLoadDirEmpty(t *testing.T) {
	_, err := LoadDir(t.TempDir(), 2, 2)
	require.ErrorIs(t, err, ErrNoStage)
}
