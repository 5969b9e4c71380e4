// Package assets provides the style sheet and document shell template
// embedded into every generated manual.
//
// # Layout
//
// Assets are organized by type and compiled into the binary with go:embed:
//
//	styles/
//	└── manual.css        # A4 print style sheet
//	templates/
//	└── document.html     # HTML shell (html/template syntax)
//
// # Security
//
// Asset names are validated to prevent path traversal: a name may not be
// empty or contain path separators or dots.
package assets
