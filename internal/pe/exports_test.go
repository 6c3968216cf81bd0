package pe

import (
	"bytes"
	"testing"
)

func TestReadCString(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		offset  int64
		want    string
		wantErr bool
	}{
		{
			name:   "simple string",
			data:   []byte("GetProcAddress\x00LoadLibraryA"),
			offset: 0,
			want:   "GetProcAddress",
		},
		{
			name:   "string at offset",
			data:   []byte("GetProcAddress\x00LoadLibraryA\x00"),
			offset: 15,
			want:   "LoadLibraryA",
		},
		{
			name:   "empty string",
			data:   []byte("\x00"),
			offset: 0,
			want:   "",
		},
		{
			name:    "offset past end",
			data:    []byte("abc\x00"),
			offset:  10,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readCString(bytes.NewReader(tt.data), tt.offset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readCString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("readCString() = %q, want %q", got, tt.want)
			}
		})
	}
}
