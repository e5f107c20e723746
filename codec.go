package huffman

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Magic bytes at the start of every HC stream.
const (
	Magic1 = byte('H')
	Magic2 = byte('C')
)

// HeaderBits is the size of the fixed-width HC header, in bits.
const HeaderBits = 8 + 8 + 32 + 16

// Header holds the fixed-width fields of an HC stream.
type Header struct {
	// FileSize is the length of the original input, in bytes.
	FileSize uint32

	// NumLeaves is the number of leaves in the serialized code tree.
	NumLeaves uint16
}

// WriteHeader writes the magic bytes followed by h.
func WriteHeader(bw *BitWriter, h Header) error {
	if err := bw.WriteUint8(Magic1); err != nil {
		return err
	}
	if err := bw.WriteUint8(Magic2); err != nil {
		return err
	}
	if err := bw.WriteUint32(h.FileSize); err != nil {
		return err
	}
	return bw.WriteUint16(h.NumLeaves)
}

// ReadHeader reads and checks the magic bytes, then reads the Header.  A
// stream too short to hold the magic is reported as ErrFormatMismatch.
func ReadHeader(br *BitReader) (Header, error) {
	var h Header

	m1, err := br.ReadUint8()
	if err == io.ErrUnexpectedEOF {
		return h, ErrFormatMismatch
	}
	if err != nil {
		return h, err
	}
	m2, err := br.ReadUint8()
	if err == io.ErrUnexpectedEOF {
		return h, ErrFormatMismatch
	}
	if err != nil {
		return h, err
	}
	if m1 != Magic1 || m2 != Magic2 {
		return h, ErrFormatMismatch
	}

	h.FileSize, err = br.ReadUint32()
	if err != nil {
		return h, corruptf("reading file size: %v", err)
	}
	h.NumLeaves, err = br.ReadUint16()
	if err != nil {
		return h, corruptf("reading leaf count: %v", err)
	}
	return h, nil
}

// Stats describes the layout of one HC stream.
type Stats struct {
	FileSize    uint32
	NumLeaves   uint16
	HeaderBits  uint64
	TreeBits    uint64
	PayloadBits uint64
}

// TotalBits returns the number of meaningful bits in the stream, excluding
// the zero padding of the final byte.
func (s Stats) TotalBits() uint64 {
	return s.HeaderBits + s.TreeBits + s.PayloadBits
}

// CompressedSize returns the size of the stream in bytes.
func (s Stats) CompressedSize() uint64 {
	return (s.TotalBits() + 7) / 8
}

// String returns a human-readable summary.
func (s Stats) String() string {
	ratio := 0.0
	if s.FileSize != 0 {
		ratio = 100 * (1 - float64(s.CompressedSize())/float64(s.FileSize))
	}
	return fmt.Sprintf("%d bytes in, %d bytes out (%.2f%% saved); %d leaves, %d tree bits, %d payload bits",
		s.FileSize, s.CompressedSize(), ratio, s.NumLeaves, s.TreeBits, s.PayloadBits)
}

// CompressTo compresses src into bw.
//
// src is read twice: once to count symbols and once, after seeking back to
// its starting offset, to encode them.  bw is not flushed or closed.
//
func CompressTo(bw *BitWriter, src io.ReadSeeker) (Stats, error) {
	var stats Stats

	start, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return stats, err
	}
	h, err := ScanHistogram(src)
	if err != nil {
		return stats, err
	}
	if _, err := src.Seek(start, io.SeekStart); err != nil {
		return stats, err
	}

	root, numLeaves := BuildTree(h)
	var e Encoder
	e.Init(root)

	stats.FileSize = h.Size()
	stats.NumLeaves = numLeaves

	mark := bw.BitsWritten()
	if err := WriteHeader(bw, Header{FileSize: stats.FileSize, NumLeaves: numLeaves}); err != nil {
		return stats, err
	}
	stats.HeaderBits = bw.BitsWritten() - mark

	mark = bw.BitsWritten()
	if err := WriteTree(bw, root); err != nil {
		return stats, err
	}
	stats.TreeBits = bw.BitsWritten() - mark

	mark = bw.BitsWritten()
	in := bufio.NewReader(io.LimitReader(src, int64(stats.FileSize)))
	var n uint32
	for {
		b, err := in.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}
		if err := bw.WriteCode(e.Encode(b)); err != nil {
			return stats, err
		}
		n++
	}
	stats.PayloadBits = bw.BitsWritten() - mark

	if n != stats.FileSize {
		return stats, fmt.Errorf("huffman: input shrank between passes: counted %d bytes, encoded %d", stats.FileSize, n)
	}
	return stats, nil
}

// Compress compresses src into dst as a complete HC stream.  dst is not
// closed.
func Compress(dst io.Writer, src io.ReadSeeker) (Stats, error) {
	bw := NewBitWriter(dst)
	stats, err := CompressTo(bw, src)
	if cerr := bw.Close(); err == nil {
		err = cerr
	}
	return stats, err
}

// CompressBytes compresses data and returns the HC stream.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decompresses the HC stream in src into dst.
//
// The header and tree are checked before anything is written to dst, so a
// stream with the wrong magic produces no output.  If the payload turns out
// to be truncated, a prefix of the output may already have been written.
//
func Decompress(dst io.Writer, src io.Reader) (Stats, error) {
	zr, err := NewReader(src)
	if err != nil {
		return Stats{}, err
	}
	w := bufio.NewWriter(dst)
	if _, err := io.Copy(w, zr); err != nil {
		return zr.Stats(), err
	}
	return zr.Stats(), w.Flush()
}

// DecompressBytes decompresses an HC stream held in memory.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
