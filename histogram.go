package huffman

import (
	"io"
)

// Histogram counts the occurrences of each byte value in an input.
type Histogram struct {
	counts [NumSymbols]uint32
	size   uint64
}

// NewHistogram returns a Histogram in which SentinelLow and SentinelHigh
// have already been counted once.  The sentinels guarantee that the code
// tree has at least two leaves, even for empty or single-valued input; they
// are not included in Size.
func NewHistogram() *Histogram {
	h := new(Histogram)
	h.counts[SentinelLow]++
	h.counts[SentinelHigh]++
	return h
}

// ScanHistogram reads r to EOF and returns the seeded Histogram of its bytes.
func ScanHistogram(r io.Reader) (*Histogram, error) {
	h := NewHistogram()
	if _, err := io.Copy(h, r); err != nil {
		return nil, err
	}
	return h, nil
}

// Write counts every byte of p.  It fails with ErrTooLarge, counting
// nothing, if the total would exceed MaxFileSize.
func (h *Histogram) Write(p []byte) (int, error) {
	if h.size+uint64(len(p)) > MaxFileSize {
		return 0, ErrTooLarge
	}
	for _, b := range p {
		h.counts[b]++
	}
	h.size += uint64(len(p))
	return len(p), nil
}

// Set overwrites the count for a single symbol.  Size is unaffected.
func (h *Histogram) Set(symbol byte, count uint32) {
	h.counts[symbol] = count
}

// Count returns the count for a single symbol.
func (h *Histogram) Count(symbol byte) uint32 {
	return h.counts[symbol]
}

// Size returns the number of bytes written to the Histogram.
func (h *Histogram) Size() uint32 {
	return uint32(h.size)
}

// NumLeaves returns the number of symbols with a nonzero count.
func (h *Histogram) NumLeaves() int {
	var n int
	for _, c := range h.counts {
		if c != 0 {
			n++
		}
	}
	return n
}

var _ io.Writer = (*Histogram)(nil)
