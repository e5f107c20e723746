package huffman

import (
	"io"
)

// Reader is an io.Reader that yields the decompressed contents of an HC
// stream.
type Reader struct {
	br        *BitReader
	dec       Decoder
	hdr       Header
	remaining uint32
	treeBits  uint64
	err       error
}

// NewReader reads the header and code tree from r and returns a Reader for
// the payload.  It fails with ErrFormatMismatch if r is not an HC stream,
// and with an error wrapping ErrCorrupt if the tree is malformed.
func NewReader(r io.Reader) (*Reader, error) {
	return newReader(NewBitReader(r))
}

// OpenReader opens the named HC file.  The caller must Close the Reader.
func OpenReader(path string) (*Reader, error) {
	br, err := OpenBitReader(path)
	if err != nil {
		return nil, err
	}
	zr, err := newReader(br)
	if err != nil {
		_ = br.Close()
		return nil, err
	}
	return zr, nil
}

func newReader(br *BitReader) (*Reader, error) {
	hdr, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	mark := br.BitsRead()
	root, err := ReadTree(br, hdr.NumLeaves)
	if err != nil {
		return nil, err
	}

	zr := &Reader{
		br:        br,
		hdr:       hdr,
		remaining: hdr.FileSize,
		treeBits:  br.BitsRead() - mark,
	}
	zr.dec.Init(root)
	return zr, nil
}

// Header returns the stream's header.
func (zr *Reader) Header() Header {
	return zr.hdr
}

// Decoder returns the Decoder built from the stream's code tree.
func (zr *Reader) Decoder() *Decoder {
	return &zr.dec
}

// Read decodes up to len(p) bytes of payload.  It returns io.EOF once
// exactly Header().FileSize bytes have been produced.
func (zr *Reader) Read(p []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}
	if zr.remaining == 0 {
		zr.err = io.EOF
		return 0, zr.err
	}

	var n int
	for n < len(p) && zr.remaining != 0 {
		symbol, err := zr.dec.Decode(zr.br)
		if err != nil {
			zr.err = err
			return n, err
		}
		p[n] = symbol
		n++
		zr.remaining--
	}
	return n, nil
}

// Stats reports the layout of the stream as consumed so far.
func (zr *Reader) Stats() Stats {
	return Stats{
		FileSize:    zr.hdr.FileSize,
		NumLeaves:   zr.hdr.NumLeaves,
		HeaderBits:  HeaderBits,
		TreeBits:    zr.treeBits,
		PayloadBits: zr.br.BitsRead() - HeaderBits - zr.treeBits,
	}
}

// Close releases the underlying file, if the Reader was created by
// OpenReader.
func (zr *Reader) Close() error {
	return zr.br.Close()
}

var _ io.ReadCloser = (*Reader)(nil)
