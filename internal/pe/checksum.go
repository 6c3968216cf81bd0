package pe

import (
	"encoding/binary"
	"fmt"
	"io"

	peparser "github.com/saferwall/pe"
)

// ChecksumInfo contains PE checksum verification results.
type ChecksumInfo struct {
	Stored   uint32
	Computed uint32
	Valid    bool
}

// VerifyChecksum compares the optional-header checksum against the value
// computed over the whole file. A stored checksum of zero means the file
// was never checksummed, which is common outside system binaries.
func VerifyChecksum(f *peparser.File, r io.ReaderAt, filesize int64) (*ChecksumInfo, error) {
	var stored uint32
	switch oh := f.NtHeader.OptionalHeader.(type) {
	case peparser.ImageOptionalHeader32:
		stored = oh.CheckSum
	case peparser.ImageOptionalHeader64:
		stored = oh.CheckSum
	default:
		return nil, fmt.Errorf("unsupported optional header")
	}

	if stored == 0 {
		return &ChecksumInfo{Valid: true}, nil
	}

	offset, err := checksumFieldOffset(r)
	if err != nil {
		return nil, err
	}

	computed, err := CalculatePEChecksum(r, filesize, offset)
	if err != nil {
		return nil, err
	}

	return &ChecksumInfo{
		Stored:   stored,
		Computed: computed,
		Valid:    stored == computed,
	}, nil
}

// checksumFieldOffset locates the CheckSum field of the optional header.
// The field sits 64 bytes into the optional header for both PE32 and PE32+.
func checksumFieldOffset(r io.ReaderAt) (int64, error) {
	dosHeader := make([]byte, 64)
	if _, err := r.ReadAt(dosHeader, 0); err != nil {
		return 0, fmt.Errorf("read DOS header: %w", err)
	}

	peOffset := int64(binary.LittleEndian.Uint32(dosHeader[60:64]))
	return peOffset + 4 + 20 + 64, nil
}

// CalculatePEChecksum computes the standard PE checksum over the file,
// skipping the 4-byte checksum field itself. Pass checksumOffset -1 to
// checksum the whole file.
func CalculatePEChecksum(r io.ReaderAt, filesize int64, checksumOffset int64) (uint32, error) {
	var checksum uint64

	for offset := int64(0); offset < filesize; offset += 4 {
		if checksumOffset >= 0 && offset == checksumOffset {
			continue
		}

		buf := make([]byte, 4)
		n, err := r.ReadAt(buf, offset)
		if err != nil && err != io.EOF {
			return 0, err
		}
		if n == 0 {
			break
		}

		// Partial trailing DWORD stays zero-padded.
		checksum += uint64(binary.LittleEndian.Uint32(buf))
		checksum = (checksum & 0xFFFFFFFF) + (checksum >> 32)
	}

	// Fold to 16 bits and add the file size, matching CheckSumMappedFile.
	checksum = (checksum & 0xFFFF) + (checksum >> 16)
	checksum += checksum >> 16
	checksum &= 0xFFFF
	checksum += uint64(filesize)

	return uint32(checksum), nil
}
