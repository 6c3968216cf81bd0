package pe

import (
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/asn1"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// SignatureInfo contains Authenticode signature information.
type SignatureInfo struct {
	IsSigned        bool
	Certificates    []CertificateInfo
	DigestAlgorithm string
}

// CertificateInfo summarizes one certificate in the signature chain.
type CertificateInfo struct {
	Subject      string
	Issuer       string
	SerialNumber string
	NotBefore    time.Time
	NotAfter     time.Time
	IsValid      bool
}

// PE signature constants (Windows SDK naming convention).
//
//nolint:revive // ALL_CAPS matches Windows SDK naming
const (
	WIN_CERT_REVISION_2_0          = 0x0200
	WIN_CERT_TYPE_PKCS_SIGNED_DATA = 0x0002
)

// VerifySignature checks for an Authenticode signature and summarizes the
// embedded certificate chain.
func VerifySignature(r io.ReaderAt) (*SignatureInfo, error) {
	info := &SignatureInfo{}

	// The Security directory's VirtualAddress is a file offset, not an RVA.
	secOffset, secSize, err := dataDirectory(r, dirEntrySecurity)
	if err != nil {
		return nil, err
	}
	if secOffset == 0 || secSize == 0 {
		return info, nil // not signed
	}

	info.IsSigned = true

	// WIN_CERTIFICATE header: Length, Revision, CertificateType.
	header := make([]byte, 8)
	if _, err := r.ReadAt(header, int64(secOffset)); err != nil {
		return info, fmt.Errorf("read certificate header: %w", err)
	}

	length := binary.LittleEndian.Uint32(header[0:4])
	revision := binary.LittleEndian.Uint16(header[4:6])
	certType := binary.LittleEndian.Uint16(header[6:8])

	if revision != WIN_CERT_REVISION_2_0 || certType != WIN_CERT_TYPE_PKCS_SIGNED_DATA {
		return info, fmt.Errorf("unsupported certificate type 0x%X", certType)
	}
	if length <= 8 {
		return info, fmt.Errorf("truncated certificate entry")
	}

	certData := make([]byte, length-8)
	if _, err := r.ReadAt(certData, int64(secOffset)+8); err != nil {
		return info, fmt.Errorf("read certificate data: %w", err)
	}

	if err := parsePKCS7(certData, info); err != nil {
		return info, fmt.Errorf("parse PKCS#7 signature: %w", err)
	}

	return info, nil
}

// Data directory indices used here.
const (
	dirEntryExport   = 0
	dirEntrySecurity = 4
)

// dataDirectory reads one data directory entry from the raw headers.
func dataDirectory(r io.ReaderAt, index int64) (address, size uint32, err error) {
	dosHeader := make([]byte, 64)
	if _, err = r.ReadAt(dosHeader, 0); err != nil {
		return 0, 0, fmt.Errorf("read DOS header: %w", err)
	}

	peOffset := int64(binary.LittleEndian.Uint32(dosHeader[60:64]))
	optHeaderStart := peOffset + 4 + 20

	magicBuf := make([]byte, 2)
	if _, err = r.ReadAt(magicBuf, optHeaderStart); err != nil {
		return 0, 0, fmt.Errorf("read optional header magic: %w", err)
	}

	var dataDirOffset int64
	switch binary.LittleEndian.Uint16(magicBuf) {
	case 0x10b: // PE32
		dataDirOffset = optHeaderStart + 96
	case 0x20b: // PE32+
		dataDirOffset = optHeaderStart + 112
	default:
		return 0, 0, fmt.Errorf("unknown PE magic: 0x%X", binary.LittleEndian.Uint16(magicBuf))
	}

	entry := make([]byte, 8)
	if _, err = r.ReadAt(entry, dataDirOffset+index*8); err != nil {
		return 0, 0, fmt.Errorf("read data directory entry %d: %w", index, err)
	}

	return binary.LittleEndian.Uint32(entry[0:4]), binary.LittleEndian.Uint32(entry[4:8]), nil
}

// PKCS#7 ContentInfo structure.
type contentInfo struct {
	ContentType asn1.ObjectIdentifier
	Content     asn1.RawValue `asn1:"explicit,optional,tag:0"`
}

// PKCS#7 SignedData structure (simplified).
type signedData struct {
	Version          int
	DigestAlgorithms []pkix.AlgorithmIdentifier `asn1:"set"`
	ContentInfo      contentInfo
	Certificates     asn1.RawValue `asn1:"optional,tag:0"`
	SignerInfos      []interface{} `asn1:"set"`
}

func parsePKCS7(data []byte, info *SignatureInfo) error {
	var content contentInfo
	if _, err := asn1.Unmarshal(data, &content); err != nil {
		return err
	}

	var signed signedData
	if _, err := asn1.Unmarshal(content.Content.Bytes, &signed); err != nil {
		return err
	}

	if len(signed.DigestAlgorithms) > 0 {
		info.DigestAlgorithm = signed.DigestAlgorithms[0].Algorithm.String()
	}

	if signed.Certificates.Bytes != nil {
		certs, err := x509.ParseCertificates(signed.Certificates.Bytes)
		if err != nil {
			return nil // chain unreadable, signature presence already recorded
		}
		now := time.Now()
		for _, cert := range certs {
			info.Certificates = append(info.Certificates, CertificateInfo{
				Subject:      cert.Subject.String(),
				Issuer:       cert.Issuer.String(),
				SerialNumber: fmt.Sprintf("%X", cert.SerialNumber),
				NotBefore:    cert.NotBefore,
				NotAfter:     cert.NotAfter,
				IsValid:      now.After(cert.NotBefore) && now.Before(cert.NotAfter),
			})
		}
	}

	return nil
}
