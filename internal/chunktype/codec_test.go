package chunktype

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestTextEncodingValidates(t *testing.T) {
	var ct ChunkType
	if err := ct.UnmarshalText([]byte("RuSt")); err != nil {
		t.Fatalf("unmarshal text: %v", err)
	}
	if ct != MustParse("RuSt") {
		t.Fatalf("unexpected chunk type: %v", ct)
	}
	if err := ct.UnmarshalText([]byte("Ru1t")); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err)
	}
	if ct != MustParse("RuSt") {
		t.Fatalf("failed unmarshal must not modify receiver")
	}
	if _, err := FromBytes([Size]byte{'a', 0, 'b', 'c'}).MarshalText(); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err)
	}
}

func TestJSONUsesTextForm(t *testing.T) {
	type doc struct {
		Type ChunkType `json:"type"`
	}
	b, err := json.Marshal(doc{Type: MustParse("tEXt")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"type":"tEXt"}` {
		t.Fatalf("unexpected json: %s", b)
	}
	var out doc
	if err := json.Unmarshal([]byte(`{"type":"IHD"}`), &out); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("expected ErrInvalidLength, got %v", err)
	}
}

func TestBinaryEncodingKeepsMalformedBytes(t *testing.T) {
	in := FromBytes([Size]byte{0x00, '1', 0xff, 'x'})
	b, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal binary: %v", err)
	}
	var out ChunkType
	if err := out.UnmarshalBinary(b); err != nil {
		t.Fatalf("unmarshal binary: %v", err)
	}
	if out != in {
		t.Fatalf("binary round trip mismatch: %v != %v", out.Bytes(), in.Bytes())
	}
	var lerr *LengthError
	if err := out.UnmarshalBinary([]byte{1, 2, 3}); !errors.As(err, &lerr) || lerr.Len != 3 {
		t.Fatalf("expected LengthError{3}, got %v", err)
	}
}

func TestReadWriteStream(t *testing.T) {
	// length field, type, first data byte
	stream := []byte{0, 0, 0, 13, 'I', 'H', 'D', 'R', 0}
	r := bytes.NewReader(stream[4:])
	ct, err := Read(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ct != IHDR {
		t.Fatalf("expected IHDR, got %v", ct)
	}
	if r.Len() != 1 {
		t.Fatalf("read consumed %d bytes", len(stream[4:])-r.Len())
	}

	var buf bytes.Buffer
	n, err := ct.WriteTo(&buf)
	if err != nil || n != Size {
		t.Fatalf("write: n=%d err=%v", n, err)
	}
	if !bytes.Equal(buf.Bytes(), []byte("IHDR")) {
		t.Fatalf("unexpected bytes written: %q", buf.Bytes())
	}
}

func TestReadMalformedIsNotAnError(t *testing.T) {
	ct, err := Read(bytes.NewReader([]byte{'R', 'u', '1', 't'}))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if ct.IsValid() {
		t.Fatalf("expected malformed chunk type to be invalid")
	}
}

func TestReadShort(t *testing.T) {
	for _, in := range [][]byte{nil, {'I'}, {'I', 'H', 'D'}} {
		if _, err := Read(bytes.NewReader(in)); !errors.Is(err, ErrShortRead) {
			t.Fatalf("read %q: expected ErrShortRead, got %v", in, err)
		}
	}
}
