package pe

import (
	"fmt"
	"strings"

	peparser "github.com/saferwall/pe"
)

// Info contains analyzed PE file information.
type Info struct {
	FilePath     string
	FileSize     int64
	Architecture string
	Subsystem    string
	EntryPoint   uint64
	ImageBase    uint64
	Checksum     *ChecksumInfo
	Signature    *SignatureInfo
	Sections     []SectionInfo
	Imports      []LibraryImports
	Exports      []string
}

// SectionInfo contains information about a PE section.
type SectionInfo struct {
	Name            string
	VirtualAddress  uint32
	VirtualSize     uint32
	RawSize         uint32
	Characteristics uint32
	Permissions     string
	Entropy         float64
}

// Analyzer extracts triage information from PE files.
type Analyzer struct {
	reader *Reader
}

// NewAnalyzer creates a new analyzer for the given reader.
func NewAnalyzer(r *Reader) *Analyzer {
	return &Analyzer{reader: r}
}

// Analyze extracts all information from the PE file.
func (a *Analyzer) Analyze() (*Info, error) {
	f := a.reader.File()

	info := &Info{
		FilePath: a.reader.FilePath(),
		FileSize: a.reader.FileSize(),
	}

	if err := a.extractBasicInfo(f, info); err != nil {
		return nil, err
	}

	a.extractSections(f, info)
	info.Imports = a.reader.ImportTable()
	if exports, err := a.reader.Exports(); err == nil {
		info.Exports = exports
	}
	a.verifyChecksum(f, info)
	a.verifySignature(info)

	return info, nil
}

func (a *Analyzer) extractBasicInfo(f *peparser.File, info *Info) error {
	switch uint16(f.NtHeader.FileHeader.Machine) {
	case 0x014c: // IMAGE_FILE_MACHINE_I386
		info.Architecture = "x86 (32-bit)"
	case 0x8664: // IMAGE_FILE_MACHINE_AMD64
		info.Architecture = "x64 (64-bit)"
	case 0x01c0, 0x01c4: // IMAGE_FILE_MACHINE_ARM / ARMNT
		info.Architecture = "ARM"
	case 0xaa64: // IMAGE_FILE_MACHINE_ARM64
		info.Architecture = "ARM64"
	default:
		info.Architecture = fmt.Sprintf("unknown (0x%X)", uint16(f.NtHeader.FileHeader.Machine))
	}

	switch oh := f.NtHeader.OptionalHeader.(type) {
	case peparser.ImageOptionalHeader32:
		info.EntryPoint = uint64(oh.AddressOfEntryPoint)
		info.ImageBase = uint64(oh.ImageBase)
		info.Subsystem = subsystemName(uint16(oh.Subsystem))
	case peparser.ImageOptionalHeader64:
		info.EntryPoint = uint64(oh.AddressOfEntryPoint)
		info.ImageBase = oh.ImageBase
		info.Subsystem = subsystemName(uint16(oh.Subsystem))
	default:
		return fmt.Errorf("unsupported optional header")
	}

	return nil
}

func (a *Analyzer) extractSections(f *peparser.File, info *Info) {
	for _, section := range f.Sections {
		entropy, err := SectionEntropy(a.reader.RawFile(),
			int64(section.Header.PointerToRawData), section.Header.SizeOfRawData)
		if err != nil {
			entropy = 0.0
		}

		info.Sections = append(info.Sections, SectionInfo{
			Name:            sectionName(section.Header.Name),
			VirtualAddress:  section.Header.VirtualAddress,
			VirtualSize:     section.Header.VirtualSize,
			RawSize:         section.Header.SizeOfRawData,
			Characteristics: section.Header.Characteristics,
			Permissions:     sectionPermissions(section.Header.Characteristics),
			Entropy:         entropy,
		})
	}
}

func (a *Analyzer) verifyChecksum(f *peparser.File, info *Info) {
	checksum, err := VerifyChecksum(f, a.reader.RawFile(), a.reader.FileSize())
	if err != nil {
		return
	}
	info.Checksum = checksum
}

func (a *Analyzer) verifySignature(info *Info) {
	signature, err := VerifySignature(a.reader.RawFile())
	if err != nil {
		// Presence is still worth reporting when the chain is unreadable.
		if signature != nil && signature.IsSigned {
			info.Signature = signature
		}
		return
	}
	info.Signature = signature
}

func sectionName(raw [8]byte) string {
	return strings.TrimRight(string(raw[:]), "\x00")
}

func subsystemName(subsystem uint16) string {
	switch subsystem {
	case 1: // IMAGE_SUBSYSTEM_NATIVE
		return "Native"
	case 2: // IMAGE_SUBSYSTEM_WINDOWS_GUI
		return "Windows GUI"
	case 3: // IMAGE_SUBSYSTEM_WINDOWS_CUI
		return "Windows Console"
	default:
		return fmt.Sprintf("unknown (0x%X)", subsystem)
	}
}

func sectionPermissions(c uint32) string {
	perms := [3]rune{'-', '-', '-'}

	if c&0x40000000 != 0 { // IMAGE_SCN_MEM_READ
		perms[0] = 'R'
	}
	if c&0x80000000 != 0 { // IMAGE_SCN_MEM_WRITE
		perms[1] = 'W'
	}
	if c&0x20000000 != 0 { // IMAGE_SCN_MEM_EXECUTE
		perms[2] = 'X'
	}

	return string(perms[:])
}
