package pin

// DmFont selects one of the four mined bitmap fonts by pixel height.
type DmFont int

const (
	FontH5 DmFont = iota
	FontH8
	FontH11
	FontH13
	numDmFonts
)

func (f DmFont) Height() int {
	switch f {
	case FontH5:
		return 5
	case FontH8:
		return 8
	case FontH11:
		return 11
	default:
		return 13
	}
}

var dmFontChars = []byte("0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ?()-")

func extractDmFonts(exe *MzExe, table TableID) [numDmFonts]map[byte][]uint8 {
	offs := [NumTables][numDmFonts]uint16{
		Table1: {FontH5: 0x6710, FontH8: 0x65d0, FontH11: 0x6410, FontH13: 0x6200},
		Table2: {FontH5: 0x67a0, FontH8: 0x6660, FontH11: 0x64a0, FontH13: 0x6290},
		Table3: {FontH5: 0x5ff0, FontH8: 0x5eb0, FontH11: 0x5cf0, FontH13: 0x5ae0},
		Table4: {FontH5: 0x6d00, FontH8: 0x6bc0, FontH11: 0x6a00, FontH13: 0x67f0},
	}
	var res [numDmFonts]map[byte][]uint8
	for font := FontH5; font < numDmFonts; font++ {
		off := offs[table][font]
		h := font.Height()
		m := make(map[byte][]uint8, len(dmFontChars)+1)
		for i, chr := range dmFontChars {
			m[chr] = append([]uint8(nil), exe.DataBytes(off+uint16(i*h), h)...)
		}
		m['_'] = make([]uint8, h)
		res[font] = m
	}
	verifyNumFonts(exe, table, res[FontH13])
	verifyLongFonts(exe, table, res[FontH13])
	return res
}

// verifyNumFonts replays the unrolled digit blit routines against the H13
// font; a mismatch means the binary is not one of ours.
func verifyNumFonts(exe *MzExe, table TableID, font map[byte][]uint8) {
	seg := [NumTables]uint16{0xac7, 0xa46, 0x9ef, 0xb40}[table]
	pos0 := uint16(0x1a0)
	pos1 := uint16(0xc40)
	for i := 0; i < 0xff; i++ {
		var chr [13]uint8
		for half, pos := range []*uint16{&pos0, &pos1} {
			for exe.Byte(seg, *pos) != 0xc3 {
				assert(exe.Byte(seg, *pos) == 0x88, "num font: store opcode")
				var val bool
				switch exe.Byte(seg, *pos+1) {
				case 0xa7:
					val = false
				case 0x87:
					val = true
				default:
					assert(false, "num font: store operand")
				}
				off := exe.Word(seg, *pos+2)
				x := off % 0xa8
				y := off / 0xa8
				assert(x < 4, "num font: x")
				assert(y < 14, "num font: y")
				if y == 0 {
					assert(!val, "num font: top row")
				} else if val {
					chr[y-1] |= 0x80 >> uint(x*2+uint16(half))
				}
				*pos += 4
			}
			*pos++
		}
		var expected []uint8
		switch {
		case i == 0x2f:
			expected = font['_']
		case i >= '0' && i <= '9':
			expected = font[byte(i)]
		default:
			expected = make([]uint8, 13)
		}
		for j := range expected {
			assert(expected[j] == chr[j], "num font: glyph mismatch")
		}
	}
}

func verifyLongFonts(exe *MzExe, table TableID, font map[byte][]uint8) {
	pos0 := [NumTables]uint16{0x7c10, 0x7400, 0x6e90, 0x83a0}[table]
	pos1 := [NumTables]uint16{0x70a0, 0x6890, 0x6320, 0x7830}[table]
	for i := 0; i < 0xff; i++ {
		var chr1, chr0 [16]uint8
		for half, pos := range []*uint16{&pos0, &pos1} {
			for exe.CodeByte(*pos) != 0xc3 {
				assert(exe.CodeByte(*pos) == 0x88, "long font: store opcode")
				var val bool
				switch exe.CodeByte(*pos + 1) {
				case 0xa7:
					val = false
				case 0x87:
					val = true
				default:
					assert(false, "long font: store operand")
				}
				off := exe.CodeWord(*pos + 2)
				x := off % 0xa8
				y := off / 0xa8
				assert(x < 4, "long font: x")
				if val {
					chr1[y] |= 0x80 >> uint(x*2+uint16(half))
				} else {
					chr0[y] |= 0x80 >> uint(x*2+uint16(half))
				}
				*pos += 4
			}
			*pos++
		}
		var chr [16]uint8
		for y := 0; y < 16; y++ {
			state := false
			for x := 0; x < 8; x++ {
				if chr1[y]&(0x80>>uint(x)) != 0 {
					state = true
				} else if chr0[y]&(0x80>>uint(x)) != 0 {
					state = false
				}
				if state {
					chr[y] |= 0x80 >> uint(x)
				}
			}
			assert(!state, "long font: row terminator")
		}
		if chr == ([16]uint8{}) {
			continue
		}
		assert(chr[0] == 0 && chr[14] == 0 && chr[15] == 0, "long font: margins")
		var c byte
		switch {
		case i >= '0' && i <= '9' || i >= 'A' && i <= 'Z':
			c = byte(i)
		case i == 0x5b:
			c = '?'
		case i == 0x5c:
			c = '('
		case i == 0x5d:
			c = ')'
		case i == 0x5e:
			c = '-'
		default:
			assert(false, "long font: glyph code")
		}
		ref := font[c]
		for j := 0; j < 13; j++ {
			assert(ref[j] == chr[j+1], "long font: glyph mismatch")
		}
	}
}

// extractDmTower decodes the scrolling tower background used by table 4's
// tower hunt.
func extractDmTower(exe *MzExe) [][160]bool {
	const seg = 0x49ff
	res := make([][160]bool, 167)
	for y := 0; y < 167; y++ {
		for x := 0; x < 160; x++ {
			b := exe.Byte(seg, uint16(y*40+x/4))
			res[y][x] = b<<uint(2*(x%4))&0x80 != 0
		}
	}
	return res
}
