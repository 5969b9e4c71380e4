// Package pipeline implements the Markdown-to-HTML stages of a manual build.
//
// The stages run in order:
//   - Markdown preprocessing (line ending normalization, BOM removal)
//   - Markdown to HTML fragment conversion via Goldmark (tables, fenced code)
//   - Embedding the fragment into the document shell with its style sheet
//
// Reading the source and writing the output are handled by the root
// manualgen package. This keeps the pipeline free of file system concerns.
package pipeline
