package pin

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// RGB is one palette entry.
type RGB struct {
	R, G, B uint8
}

// Image is a palette-indexed pixel grid.
type Image struct {
	W, H int
	Data []uint8
	Cmap []RGB
}

// NewImage allocates a zeroed indexed image.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h, Data: make([]uint8, w*h)}
}

func (img *Image) At(x, y int) uint8       { return img.Data[y*img.W+x] }
func (img *Image) Set(x, y int, v uint8)   { img.Data[y*img.W+x] = v }
func (img *Image) Row(y int) []uint8       { return img.Data[y*img.W : (y+1)*img.W] }
func (img *Image) orAt(x, y int, v uint8)  { img.Data[y*img.W+x] |= v }

// ParseIFF decodes an IFF FORM container holding either a chunky PBM or a
// 4-plane ILBM. Only BMHD, CMAP and BODY chunks matter; BODY is byte-run
// compressed.
func ParseIFF(data []byte) (*Image, error) {
	be16 := func(b []byte) int { return int(binary.BigEndian.Uint16(b)) }
	be32 := func(b []byte) int { return int(binary.BigEndian.Uint32(b)) }
	if len(data) < 12 || !bytes.Equal(data[:4], []byte("FORM")) {
		return nil, fmt.Errorf("pin: not an IFF FORM")
	}
	totalLen := be32(data[4:8])
	if 8+totalLen > len(data) {
		return nil, fmt.Errorf("pin: truncated IFF")
	}
	data = data[8 : 8+totalLen]
	var isILBM bool
	switch string(data[:4]) {
	case "PBM ":
		isILBM = false
	case "ILBM":
		isILBM = true
	default:
		return nil, fmt.Errorf("pin: unknown IFF format %q", data[:4])
	}
	var img *Image
	var cmap []RGB
	pos := 4
	for pos != totalLen {
		if pos+8 > len(data) {
			return nil, fmt.Errorf("pin: truncated IFF chunk header")
		}
		hdr := data[pos : pos+4]
		chunkLen := be32(data[pos+4 : pos+8])
		if pos+8+chunkLen > len(data) {
			return nil, fmt.Errorf("pin: truncated IFF chunk %q", hdr)
		}
		chunk := data[pos+8 : pos+8+chunkLen]
		switch string(hdr) {
		case "BMHD":
			if chunkLen != 0x14 || img != nil {
				return nil, fmt.Errorf("pin: bad BMHD")
			}
			img = NewImage(be16(chunk[0:2]), be16(chunk[2:4]))
		case "CMAP":
			want := 0x300
			if isILBM {
				want = 0x30
			}
			if chunkLen != want {
				return nil, fmt.Errorf("pin: bad CMAP length %#x", chunkLen)
			}
			for i := 0; i < chunkLen/3; i++ {
				cmap = append(cmap, RGB{chunk[i*3], chunk[i*3+1], chunk[i*3+2]})
			}
		case "BODY":
			if img == nil {
				return nil, fmt.Errorf("pin: BODY before BMHD")
			}
			if err := decodeBody(img, chunk, isILBM); err != nil {
				return nil, err
			}
		}
		pos += chunkLen + 8
		if pos&1 != 0 {
			pos++
		}
	}
	if img == nil || cmap == nil {
		return nil, fmt.Errorf("pin: IFF missing BMHD or CMAP")
	}
	img.Cmap = cmap
	return img, nil
}

func decodeBody(img *Image, chunk []byte, isILBM bool) error {
	pos := 0
	next := func() (uint8, error) {
		if pos >= len(chunk) {
			return 0, fmt.Errorf("pin: truncated IFF body")
		}
		b := chunk[pos]
		pos++
		return b, nil
	}
	for y := 0; y < img.H; y++ {
		if isILBM {
			lw := (img.W + 15) / 16 * 2
			for plane := 0; plane < 4; plane++ {
				line := make([]uint8, lw)
				lpos := 0
				for lpos != lw {
					b, err := next()
					if err != nil {
						return err
					}
					if b < 0x80 {
						for n := int(b) + 1; n > 0; n-- {
							v, err := next()
							if err != nil {
								return err
							}
							line[lpos] = v
							lpos++
						}
					} else {
						if b == 0x80 {
							return fmt.Errorf("pin: IFF body escape")
						}
						v, err := next()
						if err != nil {
							return err
						}
						for n := 0x101 - int(b); n > 0; n-- {
							line[lpos] = v
							lpos++
						}
					}
				}
				for x := 0; x < img.W; x++ {
					img.orAt(x, y, (line[x/8]>>(7-(x&7))&1)<<plane)
				}
			}
		} else {
			x := 0
			for x != img.W {
				b, err := next()
				if err != nil {
					return err
				}
				if b < 0x80 {
					for n := int(b) + 1; n > 0; n-- {
						v, err := next()
						if err != nil {
							return err
						}
						img.Set(x, y, v)
						x++
					}
				} else {
					if b == 0x80 {
						return fmt.Errorf("pin: IFF body escape")
					}
					v, err := next()
					if err != nil {
						return err
					}
					for n := 0x101 - int(b); n > 0; n-- {
						img.Set(x, y, v)
						x++
					}
				}
			}
		}
	}
	if pos != len(chunk) {
		return fmt.Errorf("pin: IFF body trailing bytes")
	}
	return nil
}
