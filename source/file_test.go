package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gatsp/source"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadFile_MatrixYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "tri.yaml", "matrix:\n- [0, 3, 4]\n- [3, 0, 5]\n- [4, 5, 0]\n")
	m, points, err := source.LoadFile(path)
	require.NoError(t, err)
	assert.Nil(t, points)
	assert.Equal(t, 3, m.Rows())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestLoadFile_PointsJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "tri.json", `{"points": [[0, 0], [3, 0], [3, 4]]}`)
	m, points, err := source.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, points, 3)

	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := source.Parse([]byte("{}"))
	assert.ErrorIs(t, err, source.ErrNoData)

	_, err = source.Parse([]byte(`{"matrix": [[0]], "points": [[0, 0]]}`))
	assert.ErrorIs(t, err, source.ErrAmbiguous)

	_, err = source.Parse([]byte(`{"distances": [[0]]}`))
	assert.Error(t, err, "unknown fields are rejected")

	in, err := source.Parse([]byte(`{"points": [[0, 0, 1]]}`))
	require.NoError(t, err)
	_, _, err = in.Build()
	assert.ErrorIs(t, err, source.ErrBadPoint)

	_, _, err = source.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
