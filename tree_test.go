package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func histogramOf(t *testing.T, data []byte) *Histogram {
	t.Helper()
	h, err := ScanHistogram(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ScanHistogram failed: %v", err)
	}
	return h
}

func TestHistogram(t *testing.T) {
	h := histogramOf(t, []byte("AAB"))

	type testRow struct {
		symbol byte
		count  uint32
	}
	testData := [...]testRow{
		{SentinelLow, 1},
		{'A', 2},
		{'B', 1},
		{'C', 0},
		{SentinelHigh, 1},
	}
	for _, row := range testData {
		if actual := h.Count(row.symbol); actual != row.count {
			t.Errorf("Count(%#x): expected %d, got %d", row.symbol, row.count, actual)
		}
	}
	if h.Size() != 3 {
		t.Errorf("expected Size 3, got %d", h.Size())
	}
	if h.NumLeaves() != 4 {
		t.Errorf("expected 4 leaves, got %d", h.NumLeaves())
	}
}

func TestHistogram_TooLarge(t *testing.T) {
	h := NewHistogram()
	h.size = MaxFileSize - 1
	if _, err := h.Write([]byte{1, 2}); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
	if _, err := h.Write([]byte{1}); err != nil {
		t.Errorf("expected final byte to fit, got %v", err)
	}
}

func TestBuildTree_AAB(t *testing.T) {
	root, numLeaves := BuildTree(histogramOf(t, []byte("AAB")))
	if numLeaves != 4 {
		t.Fatalf("expected 4 leaves, got %d", numLeaves)
	}

	expect := NewInternal(
		NewLeaf('A', 2),
		NewInternal(
			NewLeaf(SentinelHigh, 1),
			NewInternal(NewLeaf(SentinelLow, 1), NewLeaf('B', 1))))
	if !root.Equal(expect) {
		var buf bytes.Buffer
		_, _ = root.Dump(&buf)
		t.Errorf("wrong tree shape:\n%s", buf.String())
	}
	if root.Weight != 5 {
		t.Errorf("expected root weight 5, got %d", root.Weight)
	}
}

func TestBuildTree_Size(t *testing.T) {
	inputs := map[string][]byte{
		"empty":    nil,
		"repeated": bytes.Repeat([]byte{'z'}, 1000),
		"zeros":    make([]byte, 17),
		"text":     []byte("the quick brown fox jumps over the lazy dog"),
	}
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	inputs["alphabet"] = all

	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			h := histogramOf(t, data)
			root, numLeaves := BuildTree(h)
			if int(numLeaves) != h.NumLeaves() {
				t.Errorf("expected %d leaves, got %d", h.NumLeaves(), numLeaves)
			}
			if numLeaves < 2 {
				t.Errorf("expected at least 2 leaves, got %d", numLeaves)
			}
			nodes, leaves := root.Count()
			if leaves != int(numLeaves) || nodes != 2*leaves-1 {
				t.Errorf("expected %d nodes and %d leaves, got %d and %d", 2*int(numLeaves)-1, numLeaves, nodes, leaves)
			}

			var e Encoder
			e.Init(root)
			for _, b := range append([]byte{SentinelLow, SentinelHigh}, data...) {
				if hc := e.Encode(b); hc.Size == 0 {
					t.Errorf("symbol %#x has an empty code", b)
				}
			}
			if e.MinSize() < 1 {
				t.Errorf("expected MinSize >= 1, got %d", e.MinSize())
			}
		})
	}
}

func TestBuildTree_TooFewLeaves(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected BuildTree to panic on a single-leaf histogram")
		}
	}()
	var h Histogram
	h.Set('q', 7)
	BuildTree(&h)
}

func TestWriteTree_ReadTree(t *testing.T) {
	// ((A,B),C)
	tree := NewInternal(NewInternal(NewLeaf('A', 1), NewLeaf('B', 1)), NewLeaf('C', 2))

	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	if err := WriteTree(bw, tree); err != nil {
		t.Fatalf("WriteTree failed: %v", err)
	}
	if n := bw.BitsWritten(); n != 3*9+2 {
		t.Errorf("expected %d bits, got %d", 3*9+2, n)
	}
	if err := bw.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	expectRaw := []byte{0x83, 0x0a, 0x39, 0x04}
	if !bytes.Equal(expectRaw, buf.Bytes()) {
		t.Errorf("wrong serialization:\n\texpect: %#v\n\tactual: %#v", expectRaw, buf.Bytes())
	}

	got, err := ReadTree(NewBitReader(&buf), 3)
	if err != nil {
		t.Fatalf("ReadTree failed: %v", err)
	}
	if !got.Equal(tree) {
		t.Errorf("tree changed shape after round trip")
	}

	var e1, e2 Encoder
	e1.Init(tree)
	e2.Init(got)
	if !bytes.Equal(e1.SizeBySymbol(), e2.SizeBySymbol()) {
		t.Errorf("code lengths changed after round trip")
	}
	for _, symbol := range []byte("ABC") {
		if e1.Encode(symbol) != e2.Encode(symbol) {
			t.Errorf("code for %q changed: %s vs %s", symbol, e1.Encode(symbol), e2.Encode(symbol))
		}
	}
}

func TestReadTree_Corrupt(t *testing.T) {
	type testRow struct {
		name      string
		numLeaves uint16
		bits      []byte
	}

	testData := [...]testRow{
		{"zero-leaves", 0, nil},
		{"one-leaf", 1, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"too-many-leaves", 257, nil},
		{"underflow", 2, []byte{0}},
		{"underflow-after-leaf", 2, []byte{1, 1, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"residue", 2, []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}},
		{"truncated", 2, []byte{1, 0, 0, 0}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			var buf bytes.Buffer
			bw := NewBitWriter(&buf)
			for _, bit := range row.bits {
				_ = bw.WriteBit(bit)
			}
			_ = bw.Close()

			_, err := ReadTree(NewBitReader(&buf), row.numLeaves)
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}

func TestNode_Dump(t *testing.T) {
	tree := NewInternal(NewLeaf('A', 2), NewLeaf(0xff, 1))

	expect := "" +
		"   / weight = 1, symbol = 0xff\n" +
		"< weight = 3\n" +
		"   \\ weight = 2, symbol = 'A'\n"

	var buf bytes.Buffer
	_, _ = tree.Dump(&buf)
	if buf.String() != expect {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, buf.String())
	}
}
