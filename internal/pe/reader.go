// Package pe provides PE file reading and import-table analysis.
package pe

import (
	"fmt"
	"os"

	peparser "github.com/saferwall/pe"
)

// Reader wraps a parsed saferwall/pe file with additional metadata and a
// raw handle for section-level reads.
type Reader struct {
	pefile   *peparser.File
	raw      *os.File
	filepath string
	filesize int64
}

// Open parses a PE file for analysis.
func Open(filepath string) (*Reader, error) {
	pefile, err := peparser.New(filepath, &peparser.Options{})
	if err != nil {
		return nil, fmt.Errorf("open PE file: %w", err)
	}

	if err := pefile.Parse(); err != nil {
		pefile.Close()
		return nil, fmt.Errorf("not a valid PE file: %w", err)
	}

	raw, err := os.Open(filepath)
	if err != nil {
		pefile.Close()
		return nil, fmt.Errorf("open file: %w", err)
	}

	stat, err := raw.Stat()
	if err != nil {
		pefile.Close()
		raw.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return &Reader{
		pefile:   pefile,
		raw:      raw,
		filepath: filepath,
		filesize: stat.Size(),
	}, nil
}

// Close releases the parsed file and the raw handle.
func (r *Reader) Close() error {
	r.pefile.Close()
	return r.raw.Close()
}

// File returns the underlying parsed PE file.
func (r *Reader) File() *peparser.File {
	return r.pefile
}

// RawFile returns the raw file handle for direct reads.
func (r *Reader) RawFile() *os.File {
	return r.raw
}

// FilePath returns the file path.
func (r *Reader) FilePath() string {
	return r.filepath
}

// FileSize returns the file size in bytes.
func (r *Reader) FileSize() int64 {
	return r.filesize
}
