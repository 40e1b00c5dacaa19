package common

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/sha3"
)

func TestByteToHashMatchesKeccak(t *testing.T) {
	data := []byte("execution environment")

	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	want := h.Sum(nil)

	if got := ByteToHash(data); !bytes.Equal(got.Bytes(), want) {
		t.Errorf("hash mismatch: have %x, want %x", got, want)
	}
}

func TestTrimLeftZeroes(t *testing.T) {
	tests := []struct {
		in   []byte
		want []byte
	}{
		{[]byte{0, 0, 1, 2}, []byte{1, 2}},
		{[]byte{1, 0, 0}, []byte{1, 0, 0}},
		{[]byte{0, 0, 0}, []byte{}},
		{[]byte{}, []byte{}},
		{nil, nil},
	}
	for i, tt := range tests {
		if got := TrimLeftZeroes(tt.in); !bytes.Equal(got, tt.want) {
			t.Errorf("test %d: have %x, want %x", i, got, tt.want)
		}
	}
}

func TestUint64ByteRoundTrip(t *testing.T) {
	for _, n := range []uint64{0, 1, 0xdeadbeef, ^uint64(0)} {
		b := Uint64ToByte(n)
		if len(b) != 8 {
			t.Fatalf("encoded length mismatch: have %d, want 8", len(b))
		}
		if got := ByteToUint64(b); got != n {
			t.Errorf("round trip mismatch: have %d, want %d", got, n)
		}
	}
}

func TestIntToByte(t *testing.T) {
	b := IntToByte(0x01020304)
	if !bytes.Equal(b, []byte{1, 2, 3, 4}) {
		t.Errorf("big endian encoding mismatch: have %x", b)
	}
	if got := BytesToInt([]byte{0, 0, 0, 0, 0, 0, 0, 5}); got != 5 {
		t.Errorf("BytesToInt mismatch: have %d, want 5", got)
	}
}
