package pin

import (
	"bytes"
	"testing"
)

func TestBcdAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want string
	}{
		{"carry chain", "999", "1", "1000"},
		{"identity", "123456", "", "123456"},
		{"zero plus zero", "", "", "0"},
		{"no carry", "120", "7", "127"},
		{"full width", "999999999999", "1", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BcdFromASCII([]byte(tt.a)).Add(BcdFromASCII([]byte(tt.b)))
			if got != BcdFromASCII([]byte(tt.want)) {
				t.Errorf("got %q, want %q", got.ToASCII(), tt.want)
			}
		})
	}
}

func TestBcdAddAssociative(t *testing.T) {
	a := BcdFromASCII([]byte("123456789"))
	b := BcdFromASCII([]byte("987654321"))
	c := BcdFromASCII([]byte("55555"))
	if a.Add(b).Add(c) != a.Add(b.Add(c)) {
		t.Error("addition is not associative")
	}
}

func TestBcdMulDigit(t *testing.T) {
	tests := []struct {
		a    string
		d    uint8
		want string
	}{
		{"25000000", 4, "100000000"},
		{"1", 9, "9"},
		{"999", 9, "8991"},
		{"12345", 0, ""},
	}
	for _, tt := range tests {
		got := BcdFromASCII([]byte(tt.a)).MulDigit(tt.d)
		if got != BcdFromASCII([]byte(tt.want)) {
			t.Errorf("%s * %d: got %q", tt.a, tt.d, got.ToASCII())
		}
	}
}

func TestBcdToASCII(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12500", "       12500"},
		{"", "           0"},
		{"999999999999", "999999999999"},
	}
	for _, tt := range tests {
		got := BcdFromASCII([]byte(tt.in)).ToASCII()
		if !bytes.Equal(got[:], []byte(tt.want)) {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBcdRoundTrip(t *testing.T) {
	in := []byte("250000")
	got := BcdFromASCII(in).ToASCII()
	want := append(bytes.Repeat([]byte{' '}, 6), in...)
	if !bytes.Equal(got[:], want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBcdCmp(t *testing.T) {
	a := BcdFromASCII([]byte("5000000"))
	b := BcdFromASCII([]byte("10000000"))
	if a.Cmp(b) != -1 || b.Cmp(a) != 1 || a.Cmp(a) != 0 {
		t.Error("cmp ordering broken")
	}
	if !a.Less(b) || b.Less(a) {
		t.Error("less ordering broken")
	}
}

func TestBcdFromBytes(t *testing.T) {
	if _, err := BcdFromBytes(make([]byte, 11)); err == nil {
		t.Error("short input accepted")
	}
	if _, err := BcdFromBytes(bytes.Repeat([]byte{0xa}, 12)); err == nil {
		t.Error("digit 10 accepted")
	}
	b, err := BcdFromBytes([]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if b != BcdFromASCII([]byte("123")) {
		t.Errorf("got %q", b.ToASCII())
	}
}
