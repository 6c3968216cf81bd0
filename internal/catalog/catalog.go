// Package catalog holds the static annotation data used to enrich import
// tables: library descriptions, per-function descriptions, and the set of
// function names commonly tied to malicious behavior.
package catalog

import (
	"sort"
	"strings"

	"petriage/internal/pe"
)

// Library describes one known Windows library and its documented APIs.
// API keys are lower-cased function names.
type Library struct {
	Description string
	APIs        map[string]string
}

// Catalog maps lower-cased library file names to their annotations and
// carries the dangerous-function set.
type Catalog struct {
	Libraries map[string]Library
	Dangerous []string
}

// Builtin returns a fresh copy of the built-in catalog. The copy is safe
// to extend with Load without affecting other callers.
func Builtin() *Catalog {
	libraries := make(map[string]Library, len(builtinLibraries))
	for name, lib := range builtinLibraries {
		apis := make(map[string]string, len(lib.APIs))
		for fn, desc := range lib.APIs {
			apis[fn] = desc
		}
		libraries[name] = Library{Description: lib.Description, APIs: apis}
	}

	dangerous := make([]string, len(builtinDangerous))
	copy(dangerous, builtinDangerous)

	return &Catalog{Libraries: libraries, Dangerous: dangerous}
}

// Library looks up annotations for a library by file name, case-insensitively.
func (c *Catalog) Library(name string) (Library, bool) {
	lib, ok := c.Libraries[strings.ToLower(name)]
	return lib, ok
}

// DescribeAPI returns the description of a function within a library.
func (c *Catalog) DescribeAPI(library, function string) (string, bool) {
	lib, ok := c.Library(library)
	if !ok {
		return "", false
	}
	desc, ok := lib.APIs[strings.ToLower(function)]
	return desc, ok
}

// DescribeAnywhere searches every library for a function description.
// Libraries are scanned in sorted order so the result is deterministic.
func (c *Catalog) DescribeAnywhere(function string) (string, bool) {
	key := strings.ToLower(function)

	names := make([]string, 0, len(c.Libraries))
	for name := range c.Libraries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if desc, ok := c.Libraries[name].APIs[key]; ok {
			return desc, true
		}
	}
	return "", false
}

// IsDangerous reports whether a function name is in the dangerous set.
func (c *Catalog) IsDangerous(function string) bool {
	key := strings.ToLower(function)
	for _, name := range c.Dangerous {
		if name == key {
			return true
		}
	}
	return false
}

// Finding is a dangerous function observed in an import table.
type Finding struct {
	Name        string
	Description string
}

// FindDangerous intersects an import table with the dangerous set. Results
// are sorted case-insensitively by function name and carry a description
// when one exists anywhere in the catalog.
func (c *Catalog) FindDangerous(table []pe.LibraryImports) []Finding {
	seen := make(map[string]struct{})
	var findings []Finding

	for _, lib := range table {
		for _, fn := range lib.Functions {
			if !c.IsDangerous(fn) {
				continue
			}
			if _, dup := seen[fn]; dup {
				continue
			}
			seen[fn] = struct{}{}

			desc, _ := c.DescribeAnywhere(fn)
			findings = append(findings, Finding{Name: fn, Description: desc})
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		li, lj := strings.ToLower(findings[i].Name), strings.ToLower(findings[j].Name)
		if li != lj {
			return li < lj
		}
		return findings[i].Name < findings[j].Name
	})

	return findings
}
