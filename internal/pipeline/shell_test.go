package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/cranberry-synth/manualgen/internal/assets"
)

func newTestShell(t *testing.T) *DocumentShell {
	t.Helper()
	tmpl, err := assets.LoadTemplate(assets.DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() unexpected error: %v", err)
	}
	shell, err := NewDocumentShell(tmpl)
	if err != nil {
		t.Fatalf("NewDocumentShell() unexpected error: %v", err)
	}
	return shell
}

// findAll collects element nodes matching a.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.DataAtom == a {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findAll(c, a)...)
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// ---------------------------------------------------------------------------
// TestSanitizeCSS - Style block escaping
// ---------------------------------------------------------------------------

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"no escape needed", "body { color: red; }", "body { color: red; }"},
		{"escapes style close", "</style>", `<\/style>`},
		{"multiple occurrences", "</a></b>", `<\/a><\/b>`},
		{"case variation", "</STYLE>", `<\/STYLE>`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeCSS(tt.input); got != tt.expected {
				t.Errorf("sanitizeCSS(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDocumentShell_Render - Shell structure
// ---------------------------------------------------------------------------

func TestDocumentShell_Render(t *testing.T) {
	t.Parallel()

	shell := newTestShell(t)
	css := "body { color: #1a1a1a; }"

	out, err := shell.Render(context.Background(), Document{
		Lang:  "ja",
		Title: "Cranberry Synth 操作マニュアル",
		CSS:   css,
		Body:  "<h1>Title</h1>\n<p>Hello <strong>world</strong>.</p>\n",
	})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, "<!DOCTYPE html>\n") {
		t.Errorf("Render() should start with doctype, got %q", out[:min(len(out), 40)])
	}
	if !strings.Contains(out, "<h1>Title</h1>\n<p>Hello <strong>world</strong>.</p>") {
		t.Errorf("Render() should embed the fragment verbatim:\n%s", out)
	}
	if strings.Count(out, "<style>") != 1 {
		t.Errorf("Render() should contain exactly one <style> block:\n%s", out)
	}
	if !strings.Contains(out, css) {
		t.Errorf("Render() should embed the CSS unescaped:\n%s", out)
	}

	doc, err := html.Parse(strings.NewReader(out))
	if err != nil {
		t.Fatalf("html.Parse() unexpected error: %v", err)
	}

	htmlNodes := findAll(doc, atom.Html)
	if len(htmlNodes) != 1 || attr(htmlNodes[0], "lang") != "ja" {
		t.Errorf("expected one <html lang=\"ja\">, got %d nodes", len(htmlNodes))
	}

	titles := findAll(doc, atom.Title)
	if len(titles) != 1 || titles[0].FirstChild == nil || titles[0].FirstChild.Data != "Cranberry Synth 操作マニュアル" {
		t.Errorf("unexpected <title> element(s): %d", len(titles))
	}

	metas := findAll(doc, atom.Meta)
	var hasCharset, hasViewport bool
	for _, m := range metas {
		if strings.EqualFold(attr(m, "charset"), "utf-8") {
			hasCharset = true
		}
		if attr(m, "name") == "viewport" {
			hasViewport = true
		}
	}
	if !hasCharset || !hasViewport {
		t.Errorf("charset meta = %v, viewport meta = %v, want both", hasCharset, hasViewport)
	}

	if styles := findAll(doc, atom.Style); len(styles) != 1 {
		t.Errorf("parsed document has %d <style> elements, want 1", len(styles))
	}
	if h1 := findAll(doc, atom.H1); len(h1) != 1 {
		t.Errorf("parsed document has %d <h1> elements, want 1", len(h1))
	}
}

func TestDocumentShell_Render_EmptyBody(t *testing.T) {
	t.Parallel()

	out, err := newTestShell(t).Render(context.Background(), Document{Lang: "ja", Title: "T", CSS: "p {}"})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if !strings.Contains(out, "<body>\n\n</body>") {
		t.Errorf("Render() with empty body should keep an empty body:\n%s", out)
	}
	if !strings.HasSuffix(out, "</html>\n") {
		t.Errorf("Render() should end with </html>")
	}
}

func TestDocumentShell_Render_EscapesTitle(t *testing.T) {
	t.Parallel()

	out, err := newTestShell(t).Render(context.Background(), Document{Lang: "ja", Title: "<b>x</b>"})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if strings.Contains(out, "<title><b>") {
		t.Errorf("Render() should escape the title:\n%s", out)
	}
}

func TestDocumentShell_Render_SanitizesCSS(t *testing.T) {
	t.Parallel()

	out, err := newTestShell(t).Render(context.Background(), Document{CSS: "p{}</style><script>x</script>"})
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if strings.Count(out, "</style>") != 1 {
		t.Errorf("CSS should not be able to close the style block:\n%s", out)
	}
}

func TestDocumentShell_Render_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestShell(t).Render(ctx, Document{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Render() error = %v, want context.Canceled", err)
	}
}

func TestNewDocumentShell_InvalidTemplate(t *testing.T) {
	t.Parallel()

	if _, err := NewDocumentShell("{{.Body"); err == nil {
		t.Error("NewDocumentShell() expected error for malformed template")
	}
}

func TestDocumentShell_Render_UnknownField(t *testing.T) {
	t.Parallel()

	shell, err := NewDocumentShell("{{.Missing}}")
	if err != nil {
		t.Fatalf("NewDocumentShell() unexpected error: %v", err)
	}
	_, err = shell.Render(context.Background(), Document{})
	if !errors.Is(err, ErrShellRender) {
		t.Errorf("Render() error = %v, want ErrShellRender", err)
	}
}
