// Package manualgen builds the print-ready HTML edition of a Markdown manual.
//
// # Quick Start
//
// Build manual.html from the manual.md that sits next to the executable:
//
//	result, err := manualgen.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.OutputPath)
//
// Open the generated file in a browser and print it to PDF. PDF export is
// left to the browser; the style sheet sets an A4 page with print margins
// and page breaks before each top-level heading.
//
// # Build Pipeline
//
//  1. Read the Markdown source (missing file: ErrMissingInput)
//  2. Normalize line endings and drop a leading byte order mark
//  3. Render an HTML fragment via Goldmark (tables, fenced code)
//  4. Embed the fragment in the fixed document shell and style sheet
//  5. Atomically replace the output file (failure: ErrWriteOutput)
//
// Building twice from the same source produces byte-identical output.
//
// # Configuration
//
// Paths default to manual.md and manual.html in the executable's
// directory. Use functional options to change them:
//
//	b, err := manualgen.NewBuilder(
//	    manualgen.WithDir("docs"),
//	    manualgen.WithHighlighting("monokai"),
//	    manualgen.WithStdout(io.Discard),
//	)
package manualgen
