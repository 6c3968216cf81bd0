package pe

import (
	"math"
	"testing"
)

func TestEntropy(t *testing.T) {
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}

	tests := []struct {
		name     string
		data     []byte
		want     float64
		checkVal bool
		wantMin  float64
		wantMax  float64
	}{
		{
			name:     "Empty data",
			data:     []byte{},
			want:     0.0,
			checkVal: true,
		},
		{
			name:     "All same bytes (minimum entropy)",
			data:     []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			want:     0.0,
			checkVal: true,
		},
		{
			name:     "Eight distinct bytes",
			data:     []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07},
			want:     3.0,
			checkVal: true,
		},
		{
			name:     "Every byte value once (maximum entropy)",
			data:     allBytes,
			want:     8.0,
			checkVal: true,
		},
		{
			name:    "Text data (low entropy)",
			data:    []byte("Hello World! This is a test string."),
			wantMin: 3.5,
			wantMax: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Entropy(tt.data)

			if tt.checkVal {
				if math.Abs(got-tt.want) > 0.01 {
					t.Errorf("Entropy() = %v, want %v", got, tt.want)
				}
			} else {
				if got < tt.wantMin || got > tt.wantMax {
					t.Errorf("Entropy() = %v, want between %v and %v", got, tt.wantMin, tt.wantMax)
				}
			}
		})
	}
}

func TestLooksPacked(t *testing.T) {
	tests := []struct {
		name    string
		entropy float64
		want    bool
	}{
		{name: "Plain code section", entropy: 6.1, want: false},
		{name: "At threshold", entropy: 7.2, want: true},
		{name: "Encrypted payload", entropy: 7.95, want: true},
		{name: "Zero-filled section", entropy: 0.0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksPacked(tt.entropy); got != tt.want {
				t.Errorf("LooksPacked(%v) = %v, want %v", tt.entropy, got, tt.want)
			}
		})
	}
}
