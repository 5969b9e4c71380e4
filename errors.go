package manualgen

import (
	"errors"

	"github.com/cranberry-synth/manualgen/internal/pipeline"
)

// Sentinel errors for build operations.
var (
	ErrMissingInput    = errors.New("markdown source not found")
	ErrReadInput       = errors.New("failed to read markdown source")
	ErrInvalidEncoding = errors.New("markdown source is not valid UTF-8")
	ErrWriteOutput     = errors.New("failed to write HTML document")
	ErrResolveDir      = errors.New("failed to resolve program directory")

	ErrHTMLConversion        = pipeline.ErrHTMLConversion
	ErrShellRender           = pipeline.ErrShellRender
	ErrInvalidHighlightStyle = pipeline.ErrInvalidHighlightStyle
)
