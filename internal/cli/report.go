// Package cli provides command-line interface utilities.
package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"petriage/internal/catalog"
	"petriage/internal/pe"
)

// Reporter formats and prints analysis results to the console.
type Reporter struct {
	info    *pe.Info
	catalog *catalog.Catalog
	verbose bool
}

// NewReporter creates a new reporter for the given analysis result.
func NewReporter(info *pe.Info, cat *catalog.Catalog) *Reporter {
	return &Reporter{info: info, catalog: cat}
}

// SetVerbose enables verbose mode (show all functions).
func (r *Reporter) SetVerbose(verbose bool) {
	r.verbose = verbose
}

// Print outputs the complete analysis report.
func (r *Reporter) Print() {
	r.printHeader()
	r.printBasicInfo()
	r.printSections()
	r.printImports()
	r.printExports()
	r.printDangerous()
}

func (r *Reporter) printHeader() {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("\n╔════════════════════════════════════════╗")
	cyan.Println("║        PE Import Triage Report         ║")
	cyan.Println("╚════════════════════════════════════════╝")
}

func (r *Reporter) printBasicInfo() {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Println("\n[Basic Information]")

	fmt.Printf("  %-20s: %s\n", "File path", r.info.FilePath)
	fmt.Printf("  %-20s: %s\n", "File size", formatSize(r.info.FileSize))
	fmt.Printf("  %-20s: %s\n", "Architecture", r.info.Architecture)
	fmt.Printf("  %-20s: %s\n", "Subsystem", r.info.Subsystem)
	fmt.Printf("  %-20s: 0x%X\n", "Entry point", r.info.EntryPoint)
	fmt.Printf("  %-20s: 0x%X\n", "Image base", r.info.ImageBase)

	if r.info.Checksum != nil {
		fmt.Printf("  %-20s: ", "Checksum")
		if r.info.Checksum.Stored == 0 {
			gray := color.New(color.FgHiBlack)
			gray.Print("not set")
		} else if r.info.Checksum.Valid {
			green := color.New(color.FgGreen)
			green.Printf("✓ valid (0x%08X)", r.info.Checksum.Stored)
		} else {
			red := color.New(color.FgRed, color.Bold)
			red.Printf("✗ invalid (stored: 0x%08X, computed: 0x%08X)",
				r.info.Checksum.Stored, r.info.Checksum.Computed)
		}
		fmt.Println()
	}

	if r.info.Signature != nil {
		fmt.Printf("  %-20s: ", "Signature")
		if r.info.Signature.IsSigned {
			green := color.New(color.FgGreen)
			if len(r.info.Signature.Certificates) > 0 {
				green.Printf("✓ signed (%s)", r.info.Signature.Certificates[0].Subject)
			} else {
				green.Print("✓ signed")
			}
		} else {
			gray := color.New(color.FgHiBlack)
			gray.Print("not signed")
		}
		fmt.Println()
	}
}

func (r *Reporter) printSections() {
	sections := r.info.Sections

	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Printf("\n[Sections] (%d total)\n", len(sections))

	if len(sections) == 0 {
		fmt.Println("  no sections found")
		return
	}

	fmt.Println(strings.Repeat("-", 100))
	fmt.Printf("  %-10s %-12s %-12s %-12s %-6s %-9s %s\n",
		"Name", "VirtAddr", "VirtSize", "RawSize", "Perms", "Entropy", "Flags")
	fmt.Println(strings.Repeat("-", 100))

	for _, section := range sections {
		permColor := color.New(color.FgWhite)
		if section.Permissions == "RWX" {
			permColor = color.New(color.FgRed, color.Bold)
		} else if strings.Contains(section.Permissions, "X") {
			permColor = color.New(color.FgYellow)
		}

		fmt.Printf("  %-10s 0x%08X   %-12s %-12s ",
			section.Name,
			section.VirtualAddress,
			formatSize(int64(section.VirtualSize)),
			formatSize(int64(section.RawSize)),
		)
		permColor.Printf("%-6s", section.Permissions)

		entropyColor := color.New(color.FgWhite)
		if pe.LooksPacked(section.Entropy) {
			entropyColor = color.New(color.FgRed, color.Bold)
		}
		entropyColor.Printf(" %-8.2f", section.Entropy)

		fmt.Printf(" 0x%08X\n", section.Characteristics)
	}
	fmt.Println(strings.Repeat("-", 100))
}

func (r *Reporter) printImports() {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Printf("\n[Imports] (%d libraries)\n", len(r.info.Imports))

	if len(r.info.Imports) == 0 {
		fmt.Println("  no imports found")
		return
	}

	for i, lib := range r.info.Imports {
		green := color.New(color.FgGreen)
		green.Printf("  %3d. %s (%d functions)\n", i+1, lib.Library, len(lib.Functions))
		if known, ok := r.catalog.Library(lib.Library); ok && known.Description != "" {
			gray := color.New(color.FgHiBlack)
			gray.Printf("       %s\n", known.Description)
		}

		maxDisplay := 10
		if r.verbose {
			maxDisplay = len(lib.Functions)
		}

		displayCount := len(lib.Functions)
		if displayCount > maxDisplay {
			displayCount = maxDisplay
		}

		for j := 0; j < displayCount; j++ {
			fn := lib.Functions[j]
			if r.catalog.IsDangerous(fn) {
				red := color.New(color.FgRed, color.Bold)
				red.Printf("       - %s\n", fn)
			} else {
				fmt.Printf("       - %s\n", fn)
			}
		}

		if len(lib.Functions) > maxDisplay {
			gray := color.New(color.FgHiBlack)
			gray.Printf("       ... (%d more functions)\n", len(lib.Functions)-maxDisplay)
		}
	}
	fmt.Println()
}

func (r *Reporter) printExports() {
	if len(r.info.Exports) == 0 {
		return
	}

	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Printf("\n[Exports] (%d functions)\n", len(r.info.Exports))

	maxDisplay := 20
	if r.verbose {
		maxDisplay = len(r.info.Exports)
	}

	displayCount := len(r.info.Exports)
	if displayCount > maxDisplay {
		displayCount = maxDisplay
	}

	green := color.New(color.FgGreen)
	for i := 0; i < displayCount; i++ {
		green.Printf("  %3d. %s\n", i+1, r.info.Exports[i])
	}

	if len(r.info.Exports) > maxDisplay {
		gray := color.New(color.FgHiBlack)
		gray.Printf("  ... (%d more functions)\n", len(r.info.Exports)-maxDisplay)
	}
	fmt.Println()
}

func (r *Reporter) printDangerous() {
	findings := r.catalog.FindDangerous(r.info.Imports)
	if len(findings) == 0 {
		return
	}

	red := color.New(color.FgRed, color.Bold)
	red.Printf("[Dangerous Imports] (%d found)\n", len(findings))

	for _, f := range findings {
		red.Printf("  [!] %s\n", f.Name)
		if f.Description != "" {
			fmt.Printf("      %s\n", f.Description)
		}
	}
	fmt.Println()
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
