package pin

import (
	"encoding/binary"
	"testing"
)

// buildPBM assembles a minimal FORM/PBM container with an uncompressed-ish
// byte-run BODY holding the given pixels.
func buildPBM(w, h int, pixels []byte, cmap []byte) []byte {
	chunk := func(name string, data []byte) []byte {
		out := append([]byte(name), 0, 0, 0, 0)
		binary.BigEndian.PutUint32(out[4:], uint32(len(data)))
		out = append(out, data...)
		if len(out)&1 != 0 {
			out = append(out, 0)
		}
		return out
	}
	bmhd := make([]byte, 0x14)
	binary.BigEndian.PutUint16(bmhd[0:], uint16(w))
	binary.BigEndian.PutUint16(bmhd[2:], uint16(h))

	var body []byte
	for y := 0; y < h; y++ {
		row := pixels[y*w : (y+1)*w]
		// literal run per row
		body = append(body, byte(len(row)-1))
		body = append(body, row...)
	}

	inner := append([]byte("PBM "), chunk("BMHD", bmhd)...)
	inner = append(inner, chunk("CMAP", cmap)...)
	inner = append(inner, chunk("BODY", body)...)

	out := append([]byte("FORM"), 0, 0, 0, 0)
	binary.BigEndian.PutUint32(out[4:], uint32(len(inner)))
	return append(out, inner...)
}

func TestParseIFFPBM(t *testing.T) {
	pixels := []byte{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}
	cmap := make([]byte, 0x300)
	cmap[3], cmap[4], cmap[5] = 10, 20, 30 // entry 1

	img, err := ParseIFF(buildPBM(4, 2, pixels, cmap))
	if err != nil {
		t.Fatal(err)
	}
	if img.W != 4 || img.H != 2 {
		t.Fatalf("got %dx%d", img.W, img.H)
	}
	for i, want := range pixels {
		if img.Data[i] != want {
			t.Errorf("pixel %d: got %d, want %d", i, img.Data[i], want)
		}
	}
	if len(img.Cmap) != 256 {
		t.Fatalf("cmap has %d entries", len(img.Cmap))
	}
	if img.Cmap[1] != (RGB{10, 20, 30}) {
		t.Errorf("cmap[1] = %v", img.Cmap[1])
	}
}

func TestParseIFFRejects(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad magic", []byte("MORF\x00\x00\x00\x04PBM ")},
		{"unknown form", buildUnknownForm()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseIFF(tt.data); err == nil {
				t.Error("accepted")
			}
		})
	}
}

func buildUnknownForm() []byte {
	out := append([]byte("FORM"), 0, 0, 0, 4)
	return append(out, []byte("WEIR")...)
}
