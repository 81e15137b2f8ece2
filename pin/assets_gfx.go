package pin

// extractMainBoard stacks the four playfield strips (first 144 rows of each
// IFF) along Y, inheriting the palette of the last strip.
func extractMainBoard(exe *MzExe, table TableID) *Image {
	segs := [NumTables][4]uint16{
		Table1: {0x5224, 0x5947, 0x617b, 0x6a9c},
		Table2: {0x5054, 0x5820, 0x5fe4, 0x6791},
		Table3: {0x4c96, 0x5221, 0x5a4b, 0x632d},
		Table4: {0x4ba1, 0x5480, 0x5d87, 0x66c2},
	}
	board := NewImage(320, 576)
	for i, seg := range segs[table] {
		strip, err := ParseIFF(exe.Segment(seg))
		if err != nil {
			assert(false, "main board strip")
		}
		assert(strip.W == 320 && strip.H >= 144, "main board strip size")
		for y := 0; y < 144; y++ {
			copy(board.Row(i*144+y), strip.Row(y))
		}
		board.Cmap = strip.Cmap
	}
	return board
}

func extractOccmaps(exe *MzExe, table TableID) [numLayers][]uint8 {
	seg := [NumTables]uint16{0x2f94, 0x2cd8, 0x1f0f, 0x287b}[table]
	extractLayer := func(off uint16) []uint8 {
		m := make([]uint8, 320*576)
		for y := 0; y < 576; y++ {
			for x := 0; x < 320; x++ {
				b := exe.Byte(seg, off+uint16(x/8+y*40))
				m[y*320+x] = b >> uint(7-x%8) & 1
			}
		}
		return m
	}
	return [numLayers][]uint8{
		LayerGround:   extractLayer(0x580),
		LayerOverhead: extractLayer(0x6400),
	}
}

func extractSpring(exe *MzExe, table TableID) []uint8 {
	seg := [NumTables]uint16{0x82e2, 0x7e48, 0x7b0d, 0x7f4f}[table]
	spring := exe.Segment(seg)
	res := make([]uint8, 10*23)
	copy(res, spring[:10*23])
	return res
}

// extractBall scans the hand-written sprite blit routine for its per-pixel
// stores, reconstructing the 15x15 ball image.
func extractBall(exe *MzExe, table TableID) []uint8 {
	base := [NumTables]uint16{0x95b0, 0x8da0, 0x8830, 0x9d40}[table]
	res := make([]uint8, 15*15)
	pos := base + 0x57
	plane := uint16(0)
	bbit := uint16(0)
	for {
		switch {
		case exe.CodeByte(pos) == 0x26:
			assert(exe.CodeByte(pos+1) == 0x84, "ball sprite: test opcode")
			var boff uint16
			switch exe.CodeByte(pos + 2) {
			case 0x27:
				pos += 3
			case 0x67:
				x := exe.CodeByte(pos + 3)
				assert(x < 0x80, "ball sprite: disp8")
				pos += 4
				boff = uint16(x)
			case 0xa7:
				boff = exe.CodeWord(pos + 3)
				pos += 5
			default:
				assert(false, "ball sprite: modrm")
			}
			assert(exe.CodeByte(pos) == 0x75, "ball sprite: jnz")
			jd := exe.CodeByte(pos + 1)
			assert(jd < 0x80, "ball sprite: jump disp")
			pos += 2
			jdst := pos + uint16(jd)
			assert(exe.CodeByte(pos) == 0x8a, "ball sprite: load")
			var poff uint16
			switch exe.CodeByte(pos + 1) {
			case 0x44:
				x := exe.CodeByte(pos + 2)
				assert(x < 0x80, "ball sprite: load disp8")
				pos += 3
				poff = uint16(x)
			case 0x84:
				poff = exe.CodeWord(pos + 2)
				pos += 4
			default:
				assert(false, "ball sprite: load modrm")
			}
			assert(exe.CodeByte(pos) == 0xaa, "ball sprite: stosb")
			pos++
			assert(exe.CodeByte(pos) == 0xc6, "ball sprite: store imm")
			var poff2 uint16
			switch exe.CodeByte(pos + 1) {
			case 0x44:
				x := exe.CodeByte(pos + 2)
				assert(x < 0x80, "ball sprite: store disp8")
				pos += 3
				poff2 = uint16(x)
			case 0x84:
				poff2 = exe.CodeWord(pos + 2)
				pos += 4
			default:
				assert(false, "ball sprite: store modrm")
			}
			pix := exe.CodeByte(pos)
			pos++
			py := poff / 84
			px := poff%84*4 + plane
			assert(poff == poff2, "ball sprite: offset pair")
			assert(bbit == px%8, "ball sprite: bit position")
			assert(boff == px/8+py*42, "ball sprite: byte offset")
			res[int(py)*15+int(px)] = pix
			assert(jdst == pos, "ball sprite: block length")
		case exe.CodeByte(pos) == 0xd0 && exe.CodeByte(pos+1) == 0xcc:
			for i := 0; i < 4; i++ {
				want := []byte{0xd0, 0xcc, 0x73, 0x01, 0x43}
				got := exe.CodeBytes(pos, 5)
				for j := range want {
					assert(got[j] == want[j], "ball sprite: rotate block")
				}
				pos += 5
			}
			bbit = (bbit + 4) % 8
		case exe.CodeByte(pos) == 0xd0 && exe.CodeByte(pos+1) == 0xc1:
			want := []byte{
				0xd0, 0xc1, 0x83, 0xd6, 0x00, 0xfe, 0xc5, 0x80, 0xe5, 0x03, 0x50, 0x8a,
				0xe5, 0xb0, 0x04, 0xba, 0xce, 0x03, 0xef, 0xba, 0xc4, 0x03, 0xb0, 0x02,
				0x8a, 0xe1, 0x80, 0xe4, 0x0f, 0xef, 0x58, 0xd0, 0xc4, 0x73, 0x01, 0x4b,
				0xd0, 0xc4, 0x73, 0x01, 0x4b, 0xd0, 0xc4, 0x73, 0x01, 0x4b,
			}
			got := exe.CodeBytes(pos, 0x2e)
			for j := range want {
				assert(got[j] == want[j], "ball sprite: plane switch block")
			}
			pos += 0x2e
			plane++
			bbit = (bbit + 5) % 8
		case exe.CodeByte(pos) == 0x5a:
			got := exe.CodeBytes(pos, 3)
			assert(got[1] == 0x5e && got[2] == 0xc3, "ball sprite: epilogue")
			return res
		default:
			assert(false, "ball sprite: opcode")
		}
	}
}

// Light maps a palette slot range onto its lit colors.
type Light struct {
	BaseIndex uint8
	Colors    []RGB
}

// AttractLight is one entry of the attract-mode light cycle machine.
type AttractLight struct {
	CtrReset uint16
	CtrOff   uint16
	CtrOn    uint16
	Light    int
}

// DmPalette holds the palette slots and colors of the dot matrix.
type DmPalette struct {
	IndexOff uint8
	IndexOn  uint8
	ColorOff RGB
	ColorOn  RGB
}

func fixupColorA(c RGB) RGB {
	return RGB{
		uint8(uint16(c.R) * 0xa2 >> 6),
		uint8(uint16(c.G) * 0xa2 >> 6),
		uint8(uint16(c.B) * 0xa2 >> 6),
	}
}

func fixupColorB(c RGB) RGB {
	return RGB{
		c.R<<2 | c.R>>4,
		c.G<<2 | c.G>>4,
		c.B<<2 | c.B>>4,
	}
}

func extractLights(exe *MzExe, table TableID) ([]Light, DmPalette) {
	tableOff := [NumTables]uint16{0x12bd, 0xfdc, 0xd8b, 0x11d0}[table]
	num := [NumTables]uint16{56, 67, 38, 44}[table]

	var lights []Light
	for i := uint16(0); i < num; i++ {
		off := exe.DataWord(tableOff + i*2)
		light := Light{BaseIndex: exe.DataByte(off)}
		cnt := uint16(exe.DataByte(off + 1))
		for j := uint16(0); j < cnt; j++ {
			light.Colors = append(light.Colors, fixupColorA(RGB{
				exe.DataByte(off + 2 + j*3),
				exe.DataByte(off + 2 + j*3 + 1),
				exe.DataByte(off + 2 + j*3 + 2),
			}))
		}
		if table == Table1 && i == 0x27 {
			light.Colors = nil
		}
		lights = append(lights, light)
	}

	indexOff := [NumTables]uint8{0x60, 0x62, 0x72, 0xe7}[table]
	indexOn := [NumTables]uint8{0xf2, 0x80, 0x99, 0x4f}[table]

	dm0 := tableOff - 6
	assert(exe.DataByte(dm0) == indexOn, "dm palette on index")
	assert(exe.DataByte(dm0+1) == 1, "dm palette on count")
	colorOn := fixupColorA(RGB{exe.DataByte(dm0 + 2), exe.DataByte(dm0 + 3), exe.DataByte(dm0 + 4)})
	dm1 := tableOff + num*2
	assert(exe.DataByte(dm1) == indexOn, "dm palette off index")
	assert(exe.DataByte(dm1+1) == 3, "dm palette off count")
	colorOff := fixupColorB(RGB{exe.DataByte(dm1 + 2), exe.DataByte(dm1 + 3), exe.DataByte(dm1 + 4)})

	return lights, DmPalette{
		IndexOff: indexOff,
		IndexOn:  indexOn,
		ColorOff: colorOff,
		ColorOn:  colorOn,
	}
}

func extractAttractLights(exe *MzExe, table TableID) []AttractLight {
	pos := [NumTables]uint16{0xf41, 0xcb9, 0xb54, 0xf1a}[table]
	var res []AttractLight
	for exe.DataWord(pos) != 0xffff {
		assert(exe.DataWord(pos) == 0, "attract light header")
		ctrReset := exe.DataWord(pos + 2)
		ctrDim := ctrReset + exe.DataWord(pos+4)
		ctrLit := ctrDim + exe.DataWord(pos+6)
		res = append(res, AttractLight{
			CtrReset: ctrReset,
			CtrOff:   ctrDim,
			CtrOn:    ctrLit,
			Light:    int(exe.DataWord(pos+8)) - 1,
		})
		pos += 10
	}
	return res
}
