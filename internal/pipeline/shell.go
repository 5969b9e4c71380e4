package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
)

// ErrShellRender indicates the document shell template failed to execute.
var ErrShellRender = errors.New("document shell rendering failed")

// Document is the data embedded into the shell.
type Document struct {
	Lang  string
	Title string
	CSS   string
	Body  string // HTML fragment, inserted verbatim
}

// ShellRenderer defines the contract for wrapping a fragment into a
// complete HTML document.
type ShellRenderer interface {
	Render(ctx context.Context, doc Document) (string, error)
}

// shellData is the template view of a Document. Typed values keep
// html/template from escaping trusted CSS and the rendered fragment.
type shellData struct {
	Lang  string
	Title string
	CSS   template.CSS
	Body  template.HTML
}

// DocumentShell renders documents with a parsed shell template.
type DocumentShell struct {
	tmpl *template.Template
}

// NewDocumentShell parses the shell template content.
func NewDocumentShell(tmplContent string) (*DocumentShell, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing document shell: %w", err)
	}
	return &DocumentShell{tmpl: tmpl}, nil
}

// Render executes the shell template for doc.
func (s *DocumentShell) Render(ctx context.Context, doc Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data := shellData{
		Lang:  doc.Lang,
		Title: doc.Title,
		CSS:   template.CSS(sanitizeCSS(doc.CSS)), // #nosec G203 -- embedded style sheet
		Body:  template.HTML(doc.Body),            // #nosec G203 -- goldmark output, raw HTML disabled
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrShellRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
