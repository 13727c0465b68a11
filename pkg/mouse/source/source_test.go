package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/mouse/pkg/mouse/internalerr"
)

func TestReadPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello world.\n\tBye."), 0o644))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "input.txt", doc.Name)
	assert.Equal(t, "Hello world.\n\tBye.", doc.Text)
}

func TestReadHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.HTML")
	page := `<html><head><style>p{}</style><script>var x = 1;</script></head>
<body><p>Hello <b>world</b>.</p></body></html>`
	require.NoError(t, os.WriteFile(path, []byte(page), 0o644))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", doc.Text)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalerr.ErrInvalidInput))
}

func TestReadFrom(t *testing.T) {
	doc, err := ReadFrom("inline", strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, Document{Name: "inline", Text: "abc"}, doc)
	assert.Equal(t, Document{Name: "n", Text: "t"}, ReadString("n", "t"))
}
