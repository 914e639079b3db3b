package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	w, marks, err := ParseMarked(pocketBoard)
	require.NoError(t, err)
	require.Equal(t, 4, w.Width)

	assert.Equal(t, Position{1, 1}, marks['a'])

	// pocket around (1,1)
	for _, d := range Directions {
		assert.True(t, w.IsWall(Position{1, 1}, d), "pocket wall %s", d)
	}
	assert.True(t, w.IsWall(Position{1, 0}, Right))
	assert.True(t, w.IsWall(Position{2, 0}, Down))
	assert.False(t, w.IsWall(Position{0, 0}, Right))
	assert.True(t, w.IsWall(Position{1, 3}, Left))
}

func TestParseRoundTrip(t *testing.T) {
	w, err := Parse(pocketBoard)
	require.NoError(t, err)

	w2, err := Parse(w.String())
	require.NoError(t, err)
	assert.Equal(t, w, w2)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"even line count": "+--+\n|  |",
		"too short":       "+--+",
		"bad edge":        "+xx+\n|  |\n+--+",
		"half edge":       "+- +\n|  |\n+--+",
		"bad corner":      "x--x\n|  |\nx--x",
		"missing corner":  "+--+--+\n|     |\n+  +   \n|     |\n+--+--+",
		"shifted wall":    "+--+--+\n| |   |\n+  +  +\n|     |\n+--+--+",
		"wall in cell":    "+--+\n|-|\n+--+",
		"bad cell edge":   "+--+\n#  |\n+--+",
		"long line":       "+--+\n|  |    |\n+--+",
		"duplicate mark":  "+--+--+\n|a  a |\n+  +  +\n|     |\n+--+--+",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseEmptyBorderOnly(t *testing.T) {
	w, err := Parse(NewWalls(16).String())
	require.NoError(t, err)
	assert.Equal(t, NewWalls(16), w)
}

func TestParseMarkedRejectsWallMarks(t *testing.T) {
	w, marks, err := ParseMarked("+--+--+\n|  |- |\n+--+--+")
	assert.ErrorIs(t, err, ErrParse)
	assert.Nil(t, w)
	assert.Nil(t, marks)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte(pocketBoard), 0o600))
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("+--+\n| ||\n+--+"), 0o600))

	w, err := ReadFile(good)
	require.NoError(t, err)
	assert.Equal(t, 4, w.Width)

	_, err = ReadFile(bad)
	assert.ErrorIs(t, err, ErrParse)
	assert.ErrorContains(t, err, "bad.txt")

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
