package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// utf8BOM is the byte order mark some editors prepend to UTF-8 files.
const utf8BOM = "\uFEFF"

var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before CommonMark conversion.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown prepares Markdown text for conversion.
// Content inside fenced code blocks is only affected by line ending changes.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = stripBOM(content)
	content = normalizeLineEndings(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

func stripBOM(content string) string {
	return strings.TrimPrefix(content, utf8BOM)
}
