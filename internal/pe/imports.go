package pe

import (
	"fmt"
	"sort"
	"strings"
)

// unknownLibrary is substituted when an import descriptor carries no name.
const unknownLibrary = "UNKNOWN_DLL"

// ImportEntry is a single import as read from a descriptor, before
// normalization.
type ImportEntry struct {
	Library string
	Name    string // empty when imported by ordinal
	Ordinal uint32
}

// DisplayName returns the symbol name, or a deterministic placeholder
// derived from the ordinal when the entry carries no name.
func (e ImportEntry) DisplayName() string {
	if e.Name == "" {
		return fmt.Sprintf("Ordinal_%d", e.Ordinal)
	}
	return e.Name
}

// LibraryImports holds the imported functions of one library.
type LibraryImports struct {
	Library   string
	Functions []string
}

// ImportTable extracts the import table and normalizes it: entries grouped
// by library, deduplicated, function lists and library order both sorted
// case-insensitively.
func (r *Reader) ImportTable() []LibraryImports {
	var entries []ImportEntry

	for _, imp := range r.pefile.Imports {
		library := imp.Name
		if library == "" {
			library = unknownLibrary
		}

		for _, fn := range imp.Functions {
			entry := ImportEntry{Library: library, Ordinal: fn.Ordinal}
			if !fn.ByOrdinal {
				entry.Name = fn.Name
			}
			entries = append(entries, entry)
		}
	}

	return BuildImportTable(entries)
}

// BuildImportTable groups raw entries into the normalized per-library form.
func BuildImportTable(entries []ImportEntry) []LibraryImports {
	byLibrary := make(map[string]map[string]struct{})
	for _, entry := range entries {
		if byLibrary[entry.Library] == nil {
			byLibrary[entry.Library] = make(map[string]struct{})
		}
		byLibrary[entry.Library][entry.DisplayName()] = struct{}{}
	}

	table := make([]LibraryImports, 0, len(byLibrary))
	for library, names := range byLibrary {
		functions := make([]string, 0, len(names))
		for name := range names {
			functions = append(functions, name)
		}
		sortFolded(functions)
		table = append(table, LibraryImports{
			Library:   library,
			Functions: functions,
		})
	}

	sort.Slice(table, func(i, j int) bool {
		return foldedLess(table[i].Library, table[j].Library)
	})

	return table
}

// sortFolded sorts names case-insensitively, tie-breaking on byte order so
// the result is deterministic.
func sortFolded(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return foldedLess(names[i], names[j])
	})
}

func foldedLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
