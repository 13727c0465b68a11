// Package source reads the raw text fed to the pipeline.
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/mouse/pkg/mouse/internalerr"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Document is named input text.
type Document struct {
	Name string
	Text string
}

// ReadString wraps inline text as a document.
func ReadString(name, text string) Document {
	return Document{Name: name, Text: text}
}

// Read loads a document from path, or from stdin when path is "-".
// HTML files are reduced to their text content.
func Read(path string) (Document, error) {
	if path == Stdin {
		return ReadFrom("stdin", os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: open %s: %v", internalerr.ErrInvalidInput, path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err := ExtractHTML(f)
		if err != nil {
			return Document{}, fmt.Errorf("%w: parse %s: %v", internalerr.ErrInvalidInput, path, err)
		}
		return Document{Name: filepath.Base(path), Text: text}, nil
	default:
		return ReadFrom(filepath.Base(path), f)
	}
}

// ReadFrom reads all of r verbatim.
func ReadFrom(name string, r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("%w: read %s: %v", internalerr.ErrInvalidInput, name, err)
	}
	return Document{Name: name, Text: string(data)}, nil
}

// ExtractHTML returns the concatenated text nodes of an HTML document,
// skipping script and style content.
func ExtractHTML(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.TrimSpace(buf.String()), nil
}
