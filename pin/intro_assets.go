package pin

import "bytes"

// IntroAssets is the slide and preview art mined from the intro executable.
// The intro stores its art as plain IFF containers inside the image; they
// are discovered by scanning for FORM headers rather than by fixed offsets.
type IntroAssets struct {
	Exe      *MzExe
	Slides   []*Image
	Previews []*Image // one per table, in table order
}

// LoadIntroAssets mines every IFF image out of the intro executable. The
// four 320x240 table previews come last in the image; everything before
// them is a title slide.
func LoadIntroAssets(prg []byte) (*IntroAssets, error) {
	exe, err := LoadMzExe(prg)
	if err != nil {
		return nil, err
	}
	a := &IntroAssets{Exe: exe}
	var images []*Image
	for pos := 0; pos+4 <= len(exe.Image); pos += 0x10 {
		if !bytes.Equal(exe.Image[pos:pos+4], []byte("FORM")) {
			continue
		}
		img, err := ParseIFF(exe.Image[pos:])
		if err != nil {
			continue
		}
		images = append(images, img)
	}
	if len(images) < int(NumTables) {
		return nil, incompatible(0, "intro images")
	}
	a.Previews = images[len(images)-int(NumTables):]
	a.Slides = images[:len(images)-int(NumTables)]
	return a, nil
}

// introPalFixup builds the darkened upper half of the intro palette used by
// the fade effects.
func introPalFixup(cmap []RGB) {
	for i := 0; i < 0x20 && i+0x20 < len(cmap); i++ {
		c := cmap[i]
		cmap[i+0x20] = RGB{c.R / 2, c.G / 2, c.B / 2}
	}
}

// cgaFont is the classic 8x8 glyph set the intro text pages are drawn with.
// Only the characters the pages use are present.
var cgaFont = map[byte][8]uint8{
	' ': {},
	'0': {0x7c, 0xc6, 0xce, 0xde, 0xf6, 0xe6, 0x7c, 0x00},
	'1': {0x30, 0x70, 0x30, 0x30, 0x30, 0x30, 0xfc, 0x00},
	'2': {0x78, 0xcc, 0x0c, 0x38, 0x60, 0xcc, 0xfc, 0x00},
	'3': {0x78, 0xcc, 0x0c, 0x38, 0x0c, 0xcc, 0x78, 0x00},
	'4': {0x1c, 0x3c, 0x6c, 0xcc, 0xfe, 0x0c, 0x1e, 0x00},
	'5': {0xfc, 0xc0, 0xf8, 0x0c, 0x0c, 0xcc, 0x78, 0x00},
	'6': {0x38, 0x60, 0xc0, 0xf8, 0xcc, 0xcc, 0x78, 0x00},
	'7': {0xfc, 0xcc, 0x0c, 0x18, 0x30, 0x30, 0x30, 0x00},
	'8': {0x78, 0xcc, 0xcc, 0x78, 0xcc, 0xcc, 0x78, 0x00},
	'9': {0x78, 0xcc, 0xcc, 0x7c, 0x0c, 0x18, 0x70, 0x00},
	'A': {0x30, 0x78, 0xcc, 0xcc, 0xfc, 0xcc, 0xcc, 0x00},
	'B': {0xfc, 0x66, 0x66, 0x7c, 0x66, 0x66, 0xfc, 0x00},
	'C': {0x3c, 0x66, 0xc0, 0xc0, 0xc0, 0x66, 0x3c, 0x00},
	'D': {0xf8, 0x6c, 0x66, 0x66, 0x66, 0x6c, 0xf8, 0x00},
	'E': {0xfe, 0x62, 0x68, 0x78, 0x68, 0x62, 0xfe, 0x00},
	'F': {0xfe, 0x62, 0x68, 0x78, 0x68, 0x60, 0xf0, 0x00},
	'G': {0x3c, 0x66, 0xc0, 0xc0, 0xce, 0x66, 0x3e, 0x00},
	'H': {0xcc, 0xcc, 0xcc, 0xfc, 0xcc, 0xcc, 0xcc, 0x00},
	'I': {0x78, 0x30, 0x30, 0x30, 0x30, 0x30, 0x78, 0x00},
	'J': {0x1e, 0x0c, 0x0c, 0x0c, 0xcc, 0xcc, 0x78, 0x00},
	'K': {0xe6, 0x66, 0x6c, 0x78, 0x6c, 0x66, 0xe6, 0x00},
	'L': {0xf0, 0x60, 0x60, 0x60, 0x62, 0x66, 0xfe, 0x00},
	'M': {0xc6, 0xee, 0xfe, 0xfe, 0xd6, 0xc6, 0xc6, 0x00},
	'N': {0xc6, 0xe6, 0xf6, 0xde, 0xce, 0xc6, 0xc6, 0x00},
	'O': {0x38, 0x6c, 0xc6, 0xc6, 0xc6, 0x6c, 0x38, 0x00},
	'P': {0xfc, 0x66, 0x66, 0x7c, 0x60, 0x60, 0xf0, 0x00},
	'Q': {0x78, 0xcc, 0xcc, 0xcc, 0xdc, 0x78, 0x1c, 0x00},
	'R': {0xfc, 0x66, 0x66, 0x7c, 0x6c, 0x66, 0xe6, 0x00},
	'S': {0x78, 0xcc, 0xe0, 0x70, 0x1c, 0xcc, 0x78, 0x00},
	'T': {0xfc, 0xb4, 0x30, 0x30, 0x30, 0x30, 0x78, 0x00},
	'U': {0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0xfc, 0x00},
	'V': {0xcc, 0xcc, 0xcc, 0xcc, 0xcc, 0x78, 0x30, 0x00},
	'W': {0xc6, 0xc6, 0xc6, 0xd6, 0xfe, 0xee, 0xc6, 0x00},
	'X': {0xc6, 0xc6, 0x6c, 0x38, 0x38, 0x6c, 0xc6, 0x00},
	'Y': {0xcc, 0xcc, 0xcc, 0x78, 0x30, 0x30, 0x78, 0x00},
	'Z': {0xfe, 0xc6, 0x8c, 0x18, 0x32, 0x66, 0xfe, 0x00},
	'.': {0x00, 0x00, 0x00, 0x00, 0x00, 0x30, 0x30, 0x00},
	'-': {0x00, 0x00, 0x00, 0xfc, 0x00, 0x00, 0x00, 0x00},
	':': {0x00, 0x30, 0x30, 0x00, 0x00, 0x30, 0x30, 0x00},
	'!': {0x30, 0x78, 0x78, 0x30, 0x30, 0x00, 0x30, 0x00},
}
