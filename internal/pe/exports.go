package pe

import (
	"encoding/binary"
	"fmt"
	"io"

	peparser "github.com/saferwall/pe"
)

// exportDirectory mirrors IMAGE_EXPORT_DIRECTORY.
type exportDirectory struct {
	Characteristics       uint32
	TimeDateStamp         uint32
	MajorVersion          uint16
	MinorVersion          uint16
	Name                  uint32
	Base                  uint32
	NumberOfFunctions     uint32
	NumberOfNames         uint32
	AddressOfFunctions    uint32
	AddressOfNames        uint32
	AddressOfNameOrdinals uint32
}

// Exports returns the named exported functions of the image, in file order.
// A file without an export directory yields a nil slice and no error.
func (r *Reader) Exports() ([]string, error) {
	return parseExports(r.pefile, r.raw)
}

func parseExports(f *peparser.File, r io.ReaderAt) ([]string, error) {
	dirRVA, dirSize, err := dataDirectory(r, dirEntryExport)
	if err != nil {
		return nil, err
	}
	if dirRVA == 0 || dirSize == 0 {
		return nil, nil
	}

	dirOffset, err := rvaToOffset(f, dirRVA)
	if err != nil {
		return nil, fmt.Errorf("locate export directory: %w", err)
	}

	var dir exportDirectory
	sr := io.NewSectionReader(r, int64(dirOffset), int64(dirSize))
	if err := binary.Read(sr, binary.LittleEndian, &dir); err != nil {
		return nil, fmt.Errorf("read export directory: %w", err)
	}

	if dir.NumberOfNames == 0 {
		return nil, nil
	}

	namePointersOffset, err := rvaToOffset(f, dir.AddressOfNames)
	if err != nil {
		return nil, err
	}

	namePointers := make([]uint32, dir.NumberOfNames)
	sr = io.NewSectionReader(r, int64(namePointersOffset), int64(dir.NumberOfNames*4))
	if err := binary.Read(sr, binary.LittleEndian, &namePointers); err != nil {
		return nil, fmt.Errorf("read export name pointers: %w", err)
	}

	var exports []string
	for _, nameRVA := range namePointers {
		nameOffset, err := rvaToOffset(f, nameRVA)
		if err != nil {
			continue
		}

		name, err := readCString(r, int64(nameOffset))
		if err != nil {
			continue
		}

		exports = append(exports, name)
	}

	return exports, nil
}

// rvaToOffset converts an RVA to a file offset using the section table.
func rvaToOffset(f *peparser.File, rva uint32) (uint32, error) {
	for _, section := range f.Sections {
		start := section.Header.VirtualAddress
		if rva >= start && rva < start+section.Header.VirtualSize {
			return rva - start + section.Header.PointerToRawData, nil
		}
	}
	return 0, fmt.Errorf("RVA 0x%X not contained in any section", rva)
}

// readCString reads a null-terminated string, capped at 256 bytes.
func readCString(r io.ReaderAt, offset int64) (string, error) {
	var result []byte
	buf := make([]byte, 1)

	for i := 0; i < 256; i++ {
		_, err := r.ReadAt(buf, offset+int64(i))
		if err != nil {
			return "", err
		}
		if buf[0] == 0 {
			break
		}
		result = append(result, buf[0])
	}

	return string(result), nil
}
