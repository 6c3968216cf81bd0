// Package report renders an analyzed import table as plain text or as a
// self-contained HTML page suitable for saving alongside a sample.
package report

import (
	"fmt"
	"html"
	"strings"

	"petriage/internal/catalog"
	"petriage/internal/pe"
)

// DefaultMaxFunctions caps how many functions are listed per library.
const DefaultMaxFunctions = 20

// Options controls what the rendered report contains.
type Options struct {
	// IncludeDangerous adds a section listing functions from the
	// dangerous set found in the import table.
	IncludeDangerous bool
	// MaxFunctions overrides the per-library listing cap. Zero or
	// negative means DefaultMaxFunctions.
	MaxFunctions int
}

func (o Options) cap() int {
	if o.MaxFunctions > 0 {
		return o.MaxFunctions
	}
	return DefaultMaxFunctions
}

// Text renders the report as plain text.
func Text(info *pe.Info, cat *catalog.Catalog, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Import Analysis Report\n")
	fmt.Fprintf(&b, "======================\n\n")
	fmt.Fprintf(&b, "File: %s\n", info.FilePath)
	fmt.Fprintf(&b, "Size: %d bytes\n", info.FileSize)
	if info.Architecture != "" {
		fmt.Fprintf(&b, "Architecture: %s\n", info.Architecture)
	}
	fmt.Fprintf(&b, "\n")

	if len(info.Imports) == 0 {
		b.WriteString("No imports found.\n")
	}

	for _, lib := range info.Imports {
		fmt.Fprintf(&b, "[%s]\n", lib.Library)
		if known, ok := cat.Library(lib.Library); ok && known.Description != "" {
			fmt.Fprintf(&b, "  %s\n", known.Description)
		}

		shown := lib.Functions
		extra := 0
		if limit := opts.cap(); len(shown) > limit {
			extra = len(shown) - limit
			shown = shown[:limit]
		}
		for _, fn := range shown {
			if desc, ok := cat.DescribeAPI(lib.Library, fn); ok {
				fmt.Fprintf(&b, "    %-40s %s\n", fn, desc)
			} else {
				fmt.Fprintf(&b, "    %s\n", fn)
			}
		}
		if extra > 0 {
			fmt.Fprintf(&b, "    ... and %d more\n", extra)
		}
		fmt.Fprintf(&b, "\n")
	}

	if opts.IncludeDangerous {
		b.WriteString(dangerousText(info, cat))
	}

	return b.String()
}

func dangerousText(info *pe.Info, cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString("Potentially Dangerous Imports\n")
	b.WriteString("-----------------------------\n")

	findings := cat.FindDangerous(info.Imports)
	if len(findings) == 0 {
		b.WriteString("  none found\n")
		return b.String()
	}
	for _, f := range findings {
		if f.Description != "" {
			fmt.Fprintf(&b, "  [!] %-40s %s\n", f.Name, f.Description)
		} else {
			fmt.Fprintf(&b, "  [!] %s\n", f.Name)
		}
	}
	return b.String()
}

// HTML renders the report as a standalone HTML page. All values coming
// from the binary are escaped.
func HTML(info *pe.Info, cat *catalog.Catalog, opts Options) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Import Analysis - %s</title>\n", html.EscapeString(info.FilePath))
	b.WriteString(`<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 2em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
th { background: #f0f0f0; }
.dangerous { color: #b00; font-weight: bold; }
</style>
`)
	b.WriteString("</head>\n<body>\n")

	b.WriteString("<h1>Import Analysis Report</h1>\n")
	fmt.Fprintf(&b, "<p>File: %s<br>Size: %d bytes", html.EscapeString(info.FilePath), info.FileSize)
	if info.Architecture != "" {
		fmt.Fprintf(&b, "<br>Architecture: %s", html.EscapeString(info.Architecture))
	}
	b.WriteString("</p>\n")

	if len(info.Imports) == 0 {
		b.WriteString("<p>No imports found.</p>\n")
	}

	for _, lib := range info.Imports {
		fmt.Fprintf(&b, "<h2>%s</h2>\n", html.EscapeString(lib.Library))
		if known, ok := cat.Library(lib.Library); ok && known.Description != "" {
			fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(known.Description))
		}

		b.WriteString("<table>\n<tr><th>Function</th><th>Description</th></tr>\n")
		shown := lib.Functions
		extra := 0
		if limit := opts.cap(); len(shown) > limit {
			extra = len(shown) - limit
			shown = shown[:limit]
		}
		for _, fn := range shown {
			desc, _ := cat.DescribeAPI(lib.Library, fn)
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>\n",
				html.EscapeString(fn), html.EscapeString(desc))
		}
		b.WriteString("</table>\n")
		if extra > 0 {
			fmt.Fprintf(&b, "<p>... and %d more</p>\n", extra)
		}
	}

	if opts.IncludeDangerous {
		b.WriteString(dangerousHTML(info, cat))
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func dangerousHTML(info *pe.Info, cat *catalog.Catalog) string {
	var b strings.Builder

	b.WriteString("<h2 class=\"dangerous\">Potentially Dangerous Imports</h2>\n")

	findings := cat.FindDangerous(info.Imports)
	if len(findings) == 0 {
		b.WriteString("<p>none found</p>\n")
		return b.String()
	}

	b.WriteString("<table>\n<tr><th>Function</th><th>Description</th></tr>\n")
	for _, f := range findings {
		fmt.Fprintf(&b, "<tr><td class=\"dangerous\">%s</td><td>%s</td></tr>\n",
			html.EscapeString(f.Name), html.EscapeString(f.Description))
	}
	b.WriteString("</table>\n")
	return b.String()
}
