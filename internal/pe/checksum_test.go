package pe

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestCalculatePEChecksum(t *testing.T) {
	tests := []struct {
		name           string
		data           []byte
		checksumOffset int64
		want           uint32
	}{
		{
			name:           "Simple 8-byte file",
			data:           []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00},
			checksumOffset: -1,
			want:           11, // 1 + 2 + filesize(8)
		},
		{
			name: "Checksum field skipped",
			data: []byte{
				0x01, 0x00, 0x00, 0x00, // DWORD 1
				0xFF, 0xFF, 0xFF, 0xFF, // checksum field, skipped
				0x02, 0x00, 0x00, 0x00, // DWORD 2
			},
			checksumOffset: 4,
			want:           15, // 1 + 2 + filesize(12)
		},
		{
			name:           "Partial last DWORD zero-padded",
			data:           []byte{0x01, 0x00, 0x00, 0x00, 0x02, 0x00},
			checksumOffset: -1,
			want:           9, // 1 + 2 + filesize(6)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculatePEChecksum(bytes.NewReader(tt.data), int64(len(tt.data)), tt.checksumOffset)
			if err != nil {
				t.Fatalf("CalculatePEChecksum() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CalculatePEChecksum() = 0x%08X, want 0x%08X", got, tt.want)
			}
		})
	}
}

func TestChecksumCarryHandling(t *testing.T) {
	data := make([]byte, 16)
	binary.LittleEndian.PutUint32(data[0:4], 0xFFFFFFFF)
	binary.LittleEndian.PutUint32(data[4:8], 0xFFFFFFFF)
	binary.LittleEndian.PutUint32(data[8:12], 0x00000001)
	binary.LittleEndian.PutUint32(data[12:16], 0x00000001)

	got, err := CalculatePEChecksum(bytes.NewReader(data), int64(len(data)), -1)
	if err != nil {
		t.Fatalf("CalculatePEChecksum() error = %v", err)
	}

	if got == 0 {
		t.Error("checksum should not be zero for non-zero data")
	}
}
