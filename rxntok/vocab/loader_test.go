package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeVocabFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileDirectMapping(t *testing.T) {
	path := writeVocabFile(t, "vocab.json", `{"[PAD]": 0, "C": 1, ">>": 2}`)

	mapping, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"[PAD]": 0, "C": 1, ">>": 2}, mapping)
}

func TestLoadFileNestedMapping(t *testing.T) {
	path := writeVocabFile(t, "vocab.json",
		`{"token_to_id": {"[PAD]": 0, "C": 1}, "id_to_token": {"0": "[PAD]", "1": "C"}}`)

	mapping, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"[PAD]": 0, "C": 1}, mapping)
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := writeVocabFile(t, "vocab.json", `not json`)

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
