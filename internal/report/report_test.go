package report

import (
	"fmt"
	"strings"
	"testing"

	"petriage/internal/catalog"
	"petriage/internal/pe"
)

func sampleInfo() *pe.Info {
	return &pe.Info{
		FilePath:     "sample.exe",
		FileSize:     4096,
		Architecture: "x64",
		Imports: []pe.LibraryImports{
			{Library: "KERNEL32.dll", Functions: []string{"CloseHandle", "CreateRemoteThread", "WriteProcessMemory"}},
			{Library: "unknown.dll", Functions: []string{"MysteryFunc"}},
		},
	}
}

func TestTextBasic(t *testing.T) {
	out := Text(sampleInfo(), catalog.Builtin(), Options{})

	for _, want := range []string{
		"File: sample.exe",
		"[KERNEL32.dll]",
		"CloseHandle",
		"[unknown.dll]",
		"MysteryFunc",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q", want)
		}
	}
	if strings.Contains(out, "Potentially Dangerous") {
		t.Error("dangerous section present without opt-in")
	}
}

func TestTextDangerousOptIn(t *testing.T) {
	out := Text(sampleInfo(), catalog.Builtin(), Options{IncludeDangerous: true})

	if !strings.Contains(out, "Potentially Dangerous Imports") {
		t.Fatal("dangerous section missing despite opt-in")
	}
	if !strings.Contains(out, "[!] CreateRemoteThread") {
		t.Error("dangerous function not flagged")
	}
	if strings.Contains(out, "[!] CloseHandle") {
		t.Error("benign function flagged as dangerous")
	}
}

func TestTextNoImports(t *testing.T) {
	info := &pe.Info{FilePath: "empty.exe"}
	out := Text(info, catalog.Builtin(), Options{})
	if !strings.Contains(out, "No imports found.") {
		t.Error("empty import table not reported")
	}
}

func TestFunctionCap(t *testing.T) {
	var functions []string
	for i := 0; i < 30; i++ {
		functions = append(functions, fmt.Sprintf("Func%02d", i))
	}
	info := &pe.Info{
		FilePath: "many.exe",
		Imports:  []pe.LibraryImports{{Library: "big.dll", Functions: functions}},
	}

	out := Text(info, catalog.Builtin(), Options{})
	if !strings.Contains(out, "Func19") {
		t.Error("function under the cap was dropped")
	}
	if strings.Contains(out, "Func20") {
		t.Error("function over the cap was listed")
	}
	if !strings.Contains(out, "... and 10 more") {
		t.Error("overflow note missing")
	}

	out = Text(info, catalog.Builtin(), Options{MaxFunctions: 5})
	if strings.Contains(out, "Func05") {
		t.Error("custom cap not honored")
	}
	if !strings.Contains(out, "... and 25 more") {
		t.Error("overflow note wrong for custom cap")
	}
}

func TestHTMLEscaping(t *testing.T) {
	info := &pe.Info{
		FilePath: `<script>alert(1)</script>.exe`,
		Imports: []pe.LibraryImports{
			{Library: "<b>.dll", Functions: []string{"Fn<img>"}},
		},
	}

	out := HTML(info, catalog.Builtin(), Options{IncludeDangerous: true})
	for _, forbidden := range []string{"<script>alert", "<b>.dll", "Fn<img>"} {
		if strings.Contains(out, forbidden) {
			t.Errorf("unescaped value %q in HTML output", forbidden)
		}
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Error("file path not HTML-escaped")
	}
}

func TestHTMLStructure(t *testing.T) {
	out := HTML(sampleInfo(), catalog.Builtin(), Options{IncludeDangerous: true})

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<h2>KERNEL32.dll</h2>",
		"<td>CloseHandle</td>",
		"Potentially Dangerous Imports",
		`<td class="dangerous">CreateRemoteThread</td>`,
		"</html>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("HTML report missing %q", want)
		}
	}
}

func TestHTMLDangerousOmitted(t *testing.T) {
	out := HTML(sampleInfo(), catalog.Builtin(), Options{})
	if strings.Contains(out, "Potentially Dangerous") {
		t.Error("dangerous section present without opt-in")
	}
}
