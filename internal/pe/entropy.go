package pe

import (
	"io"
	"math"
)

// packedEntropyThreshold marks sections that are very likely compressed or
// encrypted. Normal code sections sit around 5.5-6.5.
const packedEntropyThreshold = 7.2

// Entropy calculates the Shannon entropy of a data block. The result
// ranges from 0 (uniform) to 8 (random).
func Entropy(data []byte) float64 {
	if len(data) == 0 {
		return 0.0
	}

	var freq [256]int
	for _, b := range data {
		freq[b]++
	}

	total := float64(len(data))
	var entropy float64
	for _, count := range freq {
		if count == 0 {
			continue
		}
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}

	return entropy
}

// SectionEntropy reads a section's raw data and calculates its entropy.
func SectionEntropy(r io.ReaderAt, offset int64, size uint32) (float64, error) {
	if size == 0 {
		return 0.0, nil
	}

	data := make([]byte, size)
	if _, err := r.ReadAt(data, offset); err != nil && err != io.EOF {
		return 0.0, err
	}

	return Entropy(data), nil
}

// LooksPacked reports whether an entropy value indicates compressed or
// encrypted content.
func LooksPacked(entropy float64) bool {
	return entropy >= packedEntropyThreshold
}
