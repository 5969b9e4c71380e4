package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Sentinel errors for conversion.
var (
	ErrHTMLConversion        = errors.New("HTML conversion failed")
	ErrInvalidHighlightStyle = errors.New("invalid highlight style")
)

// DefaultHighlightStyle is the chroma style used when highlighting is
// enabled without naming a style.
const DefaultHighlightStyle = "github"

// HTMLConverter abstracts Markdown to HTML fragment conversion.
type HTMLConverter interface {
	ToFragment(ctx context.Context, content string) (string, error)
}

// ConverterOption configures a GoldmarkConverter.
type ConverterOption func(*converterConfig)

type converterConfig struct {
	highlightStyle string
}

// WithHighlightStyle enables syntax highlighting of fenced code blocks
// using the named chroma style. Colors are emitted as inline styles so the
// document keeps a single style sheet.
func WithHighlightStyle(name string) ConverterOption {
	return func(c *converterConfig) {
		c.highlightStyle = name
	}
}

// ValidateHighlightStyle reports whether name is a registered chroma style.
func ValidateHighlightStyle(name string) error {
	if _, ok := styles.Registry[name]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidHighlightStyle, name)
	}
	return nil
}

// HighlightStyleNames returns the registered chroma style names, sorted.
func HighlightStyleNames() []string {
	return styles.Names()
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with table support.
// Fenced code blocks are part of CommonMark and always enabled.
// Raw HTML in the source is omitted from the output.
func NewGoldmarkConverter(opts ...ConverterOption) (*GoldmarkConverter, error) {
	var cfg converterConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	extensions := []goldmark.Extender{extension.Table}

	if cfg.highlightStyle != "" {
		if err := ValidateHighlightStyle(cfg.highlightStyle); err != nil {
			return nil, err
		}
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(cfg.highlightStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(false),
			),
		))
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithRendererOptions(
			html.WithXHTML(), // <hr />, <br />
		),
	)
	return &GoldmarkConverter{md: md}, nil
}

// ToFragment converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToFragment(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
