package pe

import (
	"testing"
)

func TestSectionPermissions(t *testing.T) {
	tests := []struct {
		name string
		char uint32
		want string
	}{
		{
			name: "Read only",
			char: 0x40000000,
			want: "R--",
		},
		{
			name: "Read Write",
			char: 0x40000000 | 0x80000000,
			want: "RW-",
		},
		{
			name: "Read Execute",
			char: 0x40000000 | 0x20000000,
			want: "R-X",
		},
		{
			name: "Read Write Execute (suspicious)",
			char: 0x40000000 | 0x80000000 | 0x20000000,
			want: "RWX",
		},
		{
			name: "Write Execute",
			char: 0x80000000 | 0x20000000,
			want: "-WX",
		},
		{
			name: "No permissions",
			char: 0,
			want: "---",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sectionPermissions(tt.char)
			if got != tt.want {
				t.Errorf("sectionPermissions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubsystemName(t *testing.T) {
	tests := []struct {
		name      string
		subsystem uint16
		want      string
	}{
		{
			name:      "Windows GUI",
			subsystem: 2,
			want:      "Windows GUI",
		},
		{
			name:      "Windows Console",
			subsystem: 3,
			want:      "Windows Console",
		},
		{
			name:      "Native",
			subsystem: 1,
			want:      "Native",
		},
		{
			name:      "Unknown subsystem",
			subsystem: 0xFF,
			want:      "unknown (0xFF)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subsystemName(tt.subsystem)
			if got != tt.want {
				t.Errorf("subsystemName() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSectionName(t *testing.T) {
	tests := []struct {
		name string
		raw  [8]byte
		want string
	}{
		{
			name: "Padded name",
			raw:  [8]byte{'.', 't', 'e', 'x', 't', 0, 0, 0},
			want: ".text",
		},
		{
			name: "Full eight characters",
			raw:  [8]byte{'.', 'i', 'd', 'a', 't', 'a', '2', '0'},
			want: ".idata20",
		},
		{
			name: "Empty name",
			raw:  [8]byte{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sectionName(tt.raw)
			if got != tt.want {
				t.Errorf("sectionName() = %q, want %q", got, tt.want)
			}
		})
	}
}
