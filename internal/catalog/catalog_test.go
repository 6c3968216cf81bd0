package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"petriage/internal/pe"
)

func TestBuiltinLookups(t *testing.T) {
	c := Builtin()

	tests := []struct {
		name     string
		library  string
		function string
		want     bool
	}{
		{"known library and function", "kernel32.dll", "CreateRemoteThread", true},
		{"case-insensitive library", "KERNEL32.DLL", "virtualalloc", true},
		{"case-insensitive function", "ws2_32.dll", "WSAStartup", true},
		{"unknown function", "kernel32.dll", "NoSuchFunction", false},
		{"unknown library", "nothere.dll", "socket", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, ok := c.DescribeAPI(tt.library, tt.function)
			if ok != tt.want {
				t.Errorf("DescribeAPI(%q, %q) ok = %v, want %v", tt.library, tt.function, ok, tt.want)
			}
			if ok && desc == "" {
				t.Errorf("DescribeAPI(%q, %q) returned empty description", tt.library, tt.function)
			}
		})
	}
}

func TestBuiltinCopyIsIndependent(t *testing.T) {
	a := Builtin()
	b := Builtin()

	a.Libraries["kernel32.dll"].APIs["createfile"] = "changed"
	a.Dangerous = append(a.Dangerous, "extrafunc")

	if desc, _ := b.DescribeAPI("kernel32.dll", "createfile"); desc == "changed" {
		t.Error("mutating one Builtin() copy leaked into another")
	}
	if b.IsDangerous("extrafunc") {
		t.Error("appending to one copy's dangerous set leaked into another")
	}
}

func TestIsDangerous(t *testing.T) {
	c := Builtin()

	tests := []struct {
		function string
		want     bool
	}{
		{"CreateRemoteThread", true},
		{"writeprocessmemory", true},
		{"VIRTUALALLOC", true},
		{"CloseHandle", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := c.IsDangerous(tt.function); got != tt.want {
			t.Errorf("IsDangerous(%q) = %v, want %v", tt.function, got, tt.want)
		}
	}
}

func TestEveryDangerousNameHasDescription(t *testing.T) {
	c := Builtin()
	for _, fn := range c.Dangerous {
		if _, ok := c.DescribeAnywhere(fn); !ok {
			t.Errorf("dangerous function %q has no description in any library", fn)
		}
	}
}

func TestFindDangerous(t *testing.T) {
	c := Builtin()

	table := []pe.LibraryImports{
		{Library: "KERNEL32.dll", Functions: []string{"CloseHandle", "WriteProcessMemory", "CreateRemoteThread"}},
		{Library: "ADVAPI32.dll", Functions: []string{"RegCreateKeyExW"}},
		{Library: "evil.dll", Functions: []string{"WriteProcessMemory"}},
	}

	findings := c.FindDangerous(table)

	want := []string{"CreateRemoteThread", "RegCreateKeyExW", "WriteProcessMemory"}
	if len(findings) != len(want) {
		t.Fatalf("got %d findings, want %d: %+v", len(findings), len(want), findings)
	}
	for i, name := range want {
		if findings[i].Name != name {
			t.Errorf("finding[%d] = %q, want %q", i, findings[i].Name, name)
		}
		if findings[i].Description == "" {
			t.Errorf("finding %q has no description", name)
		}
	}
}

func TestFindDangerousEmpty(t *testing.T) {
	c := Builtin()

	if got := c.FindDangerous(nil); got != nil {
		t.Errorf("FindDangerous(nil) = %+v, want nil", got)
	}

	table := []pe.LibraryImports{
		{Library: "kernel32.dll", Functions: []string{"CloseHandle", "ReadFile"}},
	}
	if got := c.FindDangerous(table); got != nil {
		t.Errorf("FindDangerous(benign) = %+v, want nil", got)
	}
}

func TestLoadOverlay(t *testing.T) {
	content := `
libraries:
  Custom.DLL:
    description: A custom library.
    apis:
      EvilFunc: Does something evil.
  kernel32.dll:
    apis:
      createfile: Overridden description.
dangerous:
  - EvilFunc
  - createremotethread
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := Builtin()
	before := len(c.Dangerous)
	if err := c.Load(path); err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if desc, ok := c.DescribeAPI("custom.dll", "evilfunc"); !ok || desc != "Does something evil." {
		t.Errorf("new library function not merged, got %q ok=%v", desc, ok)
	}
	if desc, _ := c.DescribeAPI("kernel32.dll", "CreateFile"); desc != "Overridden description." {
		t.Errorf("existing function not overridden, got %q", desc)
	}
	if desc, _ := c.DescribeAPI("kernel32.dll", "ReadFile"); desc == "" {
		t.Error("untouched function lost its description after merge")
	}
	if !c.IsDangerous("evilfunc") {
		t.Error("new dangerous name not merged")
	}
	// createremotethread already present, must not be duplicated
	if len(c.Dangerous) != before+1 {
		t.Errorf("dangerous set grew by %d, want 1", len(c.Dangerous)-before)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c := Builtin()
	if err := c.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() on missing file returned nil error")
	}
}
