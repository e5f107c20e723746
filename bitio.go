package huffman

import (
	"bufio"
	"io"
	"os"
)

// BitReader reads individual bits from an underlying byte stream.  Within
// each byte, bits are returned starting from the least significant bit.
//
// Errors are sticky: once a read fails, every later read returns the same
// error.  Running out of input is reported as io.ErrUnexpectedEOF.
type BitReader struct {
	r      io.ByteReader
	c      io.Closer
	err    error
	n      uint64
	cur    byte
	bitPos byte
}

// NewBitReader returns a BitReader that reads from r.  If r is not an
// io.ByteReader, it is wrapped in a bufio.Reader.  The BitReader does not
// take ownership of r.
func NewBitReader(r io.Reader) *BitReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	// bitPos starts past the end, forcing a fetch on the first ReadBit.
	return &BitReader{r: br, bitPos: 8}
}

// OpenBitReader opens the named file and returns a BitReader which owns it.
// The caller must Close the BitReader.
func OpenBitReader(path string) (*BitReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Op: "read", Path: path, Err: err}
	}
	br := NewBitReader(bufio.NewReader(f))
	br.c = f
	return br, nil
}

// ReadBit reads a single bit.  The result is always 0 or 1.
func (br *BitReader) ReadBit() (byte, error) {
	if br.err != nil {
		return 0, br.err
	}
	if br.bitPos > 7 {
		b, err := br.r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			br.err = err
			return 0, err
		}
		br.cur = b
		br.bitPos = 0
	}
	bit := (br.cur >> br.bitPos) & 1
	br.bitPos++
	br.n++
	return bit, nil
}

// ReadUint8 reads 8 bits, least significant first.
func (br *BitReader) ReadUint8() (uint8, error) {
	v, err := br.readBits(8)
	return uint8(v), err
}

// ReadUint16 reads 16 bits, least significant first.
func (br *BitReader) ReadUint16() (uint16, error) {
	v, err := br.readBits(16)
	return uint16(v), err
}

// ReadUint32 reads 32 bits, least significant first.
func (br *BitReader) ReadUint32() (uint32, error) {
	return br.readBits(32)
}

func (br *BitReader) readBits(n uint) (uint32, error) {
	var word uint32
	for i := uint(0); i < n; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		word |= uint32(bit) << i
	}
	return word, nil
}

// BitsRead returns the number of bits successfully read so far.
func (br *BitReader) BitsRead() uint64 {
	return br.n
}

// Close releases the underlying file, if this BitReader owns one.
func (br *BitReader) Close() error {
	if br.c == nil {
		return nil
	}
	err := br.c.Close()
	br.c = nil
	return err
}

// BitWriter writes individual bits to an underlying byte stream.  Within
// each byte, bits are stored starting from the least significant bit.
//
// Errors are sticky: once a write fails, every later write and Close return
// the same error.
type BitWriter struct {
	w      *bufio.Writer
	c      io.Closer
	err    error
	n      uint64
	cur    byte
	bitPos byte
}

// NewBitWriter returns a BitWriter that writes to w.  The BitWriter does not
// take ownership of w; Close flushes but does not close it.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bufio.NewWriter(w)}
}

// CreateBitWriter creates (or truncates) the named file and returns a
// BitWriter which owns it.  The caller must Close the BitWriter.
func CreateBitWriter(path string) (*BitWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &OpenError{Op: "write", Path: path, Err: err}
	}
	bw := NewBitWriter(f)
	bw.c = f
	return bw, nil
}

// WriteBit writes the least significant bit of bit.
func (bw *BitWriter) WriteBit(bit byte) error {
	if bw.err != nil {
		return bw.err
	}
	if bit&1 != 0 {
		bw.cur |= 1 << bw.bitPos
	}
	bw.bitPos++
	bw.n++
	if bw.bitPos == 8 {
		if err := bw.w.WriteByte(bw.cur); err != nil {
			bw.err = err
			return err
		}
		bw.cur = 0
		bw.bitPos = 0
	}
	return nil
}

// WriteUint8 writes 8 bits, least significant first.
func (bw *BitWriter) WriteUint8(x uint8) error {
	return bw.writeBits(uint32(x), 8)
}

// WriteUint16 writes 16 bits, least significant first.
func (bw *BitWriter) WriteUint16(x uint16) error {
	return bw.writeBits(uint32(x), 16)
}

// WriteUint32 writes 32 bits, least significant first.
func (bw *BitWriter) WriteUint32(x uint32) error {
	return bw.writeBits(x, 32)
}

// WriteCode writes the hc.Size bits of hc, first bit first.
func (bw *BitWriter) WriteCode(hc Code) error {
	for i := byte(0); i < hc.Size; i++ {
		if err := bw.WriteBit(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

func (bw *BitWriter) writeBits(x uint32, n uint) error {
	for i := uint(0); i < n; i++ {
		if err := bw.WriteBit(byte(x>>i) & 1); err != nil {
			return err
		}
	}
	return nil
}

// BitsWritten returns the number of bits successfully written so far.
func (bw *BitWriter) BitsWritten() uint64 {
	return bw.n
}

// Flush writes out any partial byte, padded with zero bits in the unused high
// positions, and then flushes the buffer.  Further writes start a new byte.
func (bw *BitWriter) Flush() error {
	if bw.err != nil {
		return bw.err
	}
	if bw.bitPos > 0 {
		if err := bw.w.WriteByte(bw.cur); err != nil {
			bw.err = err
			return err
		}
		bw.cur = 0
		bw.bitPos = 0
	}
	if err := bw.w.Flush(); err != nil {
		bw.err = err
		return err
	}
	return nil
}

// Close flushes the BitWriter and releases the underlying file, if this
// BitWriter owns one.  The file is closed even if the flush fails.
func (bw *BitWriter) Close() error {
	err := bw.Flush()
	if bw.c != nil {
		if cerr := bw.c.Close(); err == nil {
			err = cerr
		}
		bw.c = nil
	}
	return err
}
