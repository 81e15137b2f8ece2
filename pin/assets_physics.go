package pin

// Rect is an inclusive pixel rectangle.
type Rect struct {
	X0, Y0 uint16
	X1, Y1 uint16
}

func (r Rect) Contains(x, y uint16) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

func (r Rect) ContainsS(x, y int16) bool {
	return x >= int16(r.X0) && x <= int16(r.X1) && y >= int16(r.Y0) && y <= int16(r.Y1)
}

// Bumper covers both bumpers and kickers: a rectangle, an SFX and a score.
type Bumper struct {
	IsKicker bool
	Rect     Rect
	Sfx      Sfx
	Score    Bcd
}

// Material describes how a surface class reflects the ball. The two
// stiffness coefficients redistribute rotation and tangential speed.
type Material struct {
	StiffCross     int16
	StiffRot       int16
	BounceFactor   int16
	MinBounceSpeed int16
	MaxBounceAngle int16
}

const (
	materialFlipper = 2
	materialKicker  = 3
	materialBumper  = 7
)

var materials = [8]Material{
	{1792, 448, 400, 300, 38},
	{1792, 448, 400, 600, 18},
	{1792, 448, 400, 600, 18},    // flipper
	{896, 224, 875, 200, 38},     // rubber (kickers)
	{1792, 448, 400, 300, 38},
	{30000, 7500, 1000, 400, 38},
	{10000, 2500, 450, 700, 38},  // steel
	{10000, 2500, 400, 500, 38},  // plastic (bumpers)
}

// Ramp is a constant gravity field; the hires variant serves the 71 fps mode.
type Ramp struct {
	Accel      [2]int16
	AccelHires [2]int16
}

// PhysmapPatch flips a drop target or gate in place.
type PhysmapPatch struct {
	Layer   Layer
	X, Y    uint16
	Raised  grid
	Dropped grid
}

type PhysmapBind int

const (
	PhysmapPartyGateSkyride PhysmapBind = iota
	PhysmapPartyHitDuck0
	PhysmapPartyHitDuck1
	PhysmapPartyHitDuck2
	PhysmapShowGateVaultEntry
	PhysmapShowGatePlunger
	PhysmapShowGateRampRight
	PhysmapShowGateVaultExit
	PhysmapShowHitLeft0
	PhysmapShowHitLeft1
	PhysmapShowHitCenter0
	PhysmapShowHitCenter1
	PhysmapStonesGateRampLeft0
	PhysmapStonesGateRampLeft1
	PhysmapStonesGateRampLeft2
	PhysmapStonesGateTowerEntry
	PhysmapStonesGateRampTower
	PhysmapStonesGateKickback
	numPhysmapBinds
)

// BallOutlinePixel is one perimeter pixel of the ball, mined out of the
// original's hand-assembled collision scan code.
type BallOutlinePixel struct {
	X, Y    uint16
	Angle   uint16
	Quad    uint8
	Idx     uint8
	IsBot   bool
	IsRight bool
}

func extractPhysmaps(exe *MzExe, table TableID) [numLayers][]uint8 {
	segs := [NumTables][numLayers][3]uint16{
		Table1: {{0x4114, 0x3b74, 0x7194}, {0x7734, 0x46b4, 0x7cd4}},
		Table2: {{0x3e58, 0x38b8, 0x6d5d}, {0x72fd, 0x43f8, 0x789d}},
		Table3: {{0x308f, 0x2aef, 0x6a1f}, {0x6fbf, 0x362f, 0x755f}},
		Table4: {{0x39fb, 0x345b, 0x6e67}, {0x7407, 0x3f9b, 0x79a7}},
	}
	var res [numLayers][]uint8
	for layer := LayerGround; layer < numLayers; layer++ {
		s := segs[table][layer]
		m := make([]uint8, 320*576)
		for y := 0; y < 576; y++ {
			for x := 0; x < 320; x++ {
				off := uint16(x/8 + y*40)
				b0 := exe.Byte(s[0], off)
				b1 := exe.Byte(s[1], off)
				b2 := exe.Byte(s[2], off)
				shift := uint(7 - x%8)
				val := (b2>>shift&1)<<2 | (b1>>shift&1)<<1 | b0>>shift&1
				// the ramp index comes from the nearest byte (left, here,
				// right) whose wall planes are clear
				switch {
				case off != 0 && exe.Byte(s[0], off-1) == 0 && exe.Byte(s[1], off-1) == 0:
					val |= exe.Byte(s[2], off-1) << 4
				case exe.Byte(s[0], off) == 0 && exe.Byte(s[1], off) == 0:
					val |= exe.Byte(s[2], off) << 4
				case exe.Byte(s[0], off+1) == 0 && exe.Byte(s[1], off+1) == 0:
					val |= exe.Byte(s[2], off+1) << 4
				default:
					val |= 0xf0
				}
				m[y*320+x] = val
			}
		}
		res[layer] = m
	}
	return res
}

func extractSineTable(exe *MzExe, table TableID) [0xa00]int16 {
	off := [NumTables]uint16{0x4600, 0x4690, 0x3ee0, 0x4bf0}[table]
	var res [0xa00]int16
	for i := range res {
		v := uint16(exe.DataWordS(off + uint16(i)*2))
		res[i] = int16(v<<8 | v>>8)
	}
	return res
}

func xlatPhysmapAddr(addr uint16) (uint16, uint16) {
	return addr % 0x28 * 8, addr / 0x28
}

func extractPhysmapRect(physmaps *[numLayers][]uint8, layer Layer, px, py, width, height uint16) grid {
	g := newGrid(int(width)*8, int(height))
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.set(x, y, physmaps[layer][(int(py)+y)*320+int(px)+x])
		}
	}
	return g
}

func extractPhysmapRectPatched(exe *MzExe, physmaps *[numLayers][]uint8, layer Layer, px, py, width, height, off uint16, skip3 bool) grid {
	g := extractPhysmapRect(physmaps, layer, px, py, width, height)
	for y := uint16(0); y < height; y++ {
		row := y
		if skip3 {
			row = y*3 + 1
		}
		for bx := uint16(0); bx < width; bx++ {
			b := exe.DataByte(off + row*width + bx)
			for dx := 0; dx < 8; dx++ {
				bit := b >> uint(7-dx) & 1
				x := int(bx)*8 + dx
				g.set(x, int(y), g.at(x, int(y))&^2|bit<<1)
			}
		}
	}
	return g
}

func extractPhysmapRectPatchedOr(exe *MzExe, physmaps *[numLayers][]uint8, layer Layer, px, py, width, height, seg, off uint16) grid {
	g := extractPhysmapRect(physmaps, layer, px, py, width, height)
	for y := uint16(0); y < height; y++ {
		for bx := uint16(0); bx < width; bx++ {
			b := exe.Byte(seg, off+y*width+bx)
			for dx := 0; dx < 8; dx++ {
				bit := b >> uint(7-dx) & 1
				x := int(bx)*8 + dx
				g.set(x, int(y), g.at(x, int(y))|bit<<1)
			}
		}
	}
	return g
}

func extractPhysmapPatchRaw(exe *MzExe, physmaps *[numLayers][]uint8, layer Layer, addr, width, height, offRaised, offDropped uint16, skip3 bool) *PhysmapPatch {
	px, py := xlatPhysmapAddr(addr)
	return &PhysmapPatch{
		Layer:   layer,
		X:       px,
		Y:       py,
		Raised:  extractPhysmapRectPatched(exe, physmaps, layer, px, py, width, height, offRaised, skip3),
		Dropped: extractPhysmapRectPatched(exe, physmaps, layer, px, py, width, height, offDropped, skip3),
	}
}

func extractPhysmapPatchFormatted(exe *MzExe, physmaps *[numLayers][]uint8, layer Layer, off uint16) *PhysmapPatch {
	return extractPhysmapPatchRaw(
		exe, physmaps, layer,
		exe.DataWord(off+4),
		exe.DataWord(off+6),
		exe.DataWord(off+8),
		exe.DataWord(off),
		exe.DataWord(off+2),
		true,
	)
}

func extractPhysmapPatches(exe *MzExe, table TableID, physmaps *[numLayers][]uint8) [numPhysmapBinds]*PhysmapPatch {
	var res [numPhysmapBinds]*PhysmapPatch
	switch table {
	case Table1:
		// the skyride gate has no stored raised variant: raised is the
		// pristine physmap itself
		px, py := xlatPhysmapAddr(0x266)
		res[PhysmapPartyGateSkyride] = &PhysmapPatch{
			Layer:   LayerOverhead,
			X:       px,
			Y:       py,
			Raised:  extractPhysmapRect(physmaps, LayerOverhead, px, py, 2, 18),
			Dropped: extractPhysmapRectPatched(exe, physmaps, LayerOverhead, px, py, 2, 18, 0x1332, false),
		}
		res[PhysmapPartyHitDuck0] = extractPhysmapPatchRaw(exe, physmaps, LayerGround, 0x2b5a, 2, 15, 0x68b0, 0x68d0, false)
		res[PhysmapPartyHitDuck1] = extractPhysmapPatchRaw(exe, physmaps, LayerGround, 0x2e2b, 2, 15, 0x68f0, 0x6910, false)
		res[PhysmapPartyHitDuck2] = extractPhysmapPatchRaw(exe, physmaps, LayerGround, 0x30fc, 1, 15, 0x6940, 0x6930, false)
	case Table3:
		res[PhysmapShowGatePlunger] = extractPhysmapPatchRaw(exe, physmaps, LayerGround, 0x2fcb, 2, 34, 0x6280, 0x6230, false)
		res[PhysmapShowGateRampRight] = extractPhysmapPatchRaw(exe, physmaps, LayerOverhead, 0x198e, 4, 20, 0x6480, 0x6390, true)
		res[PhysmapShowGateVaultEntry] = extractPhysmapPatchRaw(exe, physmaps, LayerOverhead, 0x0f00, 3, 25, 0x61e0, 0x6190, false)
		res[PhysmapShowGateVaultExit] = extractPhysmapPatchRaw(exe, physmaps, LayerGround, 0x4fd8, 4, 14, 0x6620, 0x6570, true)
		res[PhysmapShowHitCenter0] = extractPhysmapPatchRaw(exe, physmaps, LayerGround, 0x2389, 2, 16, 0x6370, 0x62d0, false)
		res[PhysmapShowHitCenter1] = extractPhysmapPatchRaw(exe, physmaps, LayerGround, 0x26a9, 1, 16, 0x6360, 0x62f0, false)
		res[PhysmapShowHitLeft0] = extractPhysmapPatchRaw(exe, physmaps, LayerGround, 0x2994, 1, 16, 0x6350, 0x6300, false)
		res[PhysmapShowHitLeft1] = extractPhysmapPatchRaw(exe, physmaps, LayerGround, 0x2cb3, 2, 16, 0x6330, 0x6310, false)
	case Table4:
		res[PhysmapStonesGateKickback] = extractPhysmapPatchFormatted(exe, physmaps, LayerGround, 0x1265)
		res[PhysmapStonesGateTowerEntry] = extractPhysmapPatchFormatted(exe, physmaps, LayerGround, 0x123d)
		res[PhysmapStonesGateRampTower] = extractPhysmapPatchFormatted(exe, physmaps, LayerGround, 0x1233)
		res[PhysmapStonesGateRampLeft0] = extractPhysmapPatchFormatted(exe, physmaps, LayerOverhead, 0x1247)
		res[PhysmapStonesGateRampLeft1] = extractPhysmapPatchFormatted(exe, physmaps, LayerOverhead, 0x1251)
		res[PhysmapStonesGateRampLeft2] = extractPhysmapPatchFormatted(exe, physmaps, LayerOverhead, 0x125b)
	}
	return res
}

func extractRamps(exe *MzExe, table TableID) []Ramp {
	off := [NumTables]uint16{0x5e, 0x7b, 0x233, 0xca2}[table]
	offHires := [NumTables]uint16{0x72, 0x97, 0x24b, 0xcd2}[table]
	num := [NumTables]int{4, 6, 5, 11}[table]
	res := make([]Ramp, num)
	for i := range res {
		o := uint16(i) * 4
		res[i] = Ramp{
			Accel:      [2]int16{exe.DataWordS(off + o), exe.DataWordS(off + o + 2)},
			AccelHires: [2]int16{exe.DataWordS(offHires + o), exe.DataWordS(offHires + o + 2)},
		}
	}
	return res
}

// extractBallOutline scans the original's unrolled collision test code. Each
// perimeter pixel is one `test` + conditional-set block; the scan is strict
// and any unexpected instruction byte is a fatal extraction error.
func extractBallOutline(exe *MzExe, table TableID) []BallOutlinePixel {
	pos := [NumTables]uint16{0x8866, 0x8056, 0x7ae6, 0x8ff6}[table]
	end := [NumTables]uint16{0x8c34, 0x8424, 0x7eb4, 0x93c4}[table]
	var res []BallOutlinePixel
	var byteOff uint16
	for pos != end {
		if exe.CodeByte(pos) == 0x26 {
			assert(exe.CodeByte(pos+1) == 0x8b, "ball outline: load opcode")
			switch exe.CodeByte(pos + 2) {
			case 0x04:
				pos += 3
				byteOff = 0
			case 0x44:
				pos += 4
				b := exe.CodeByte(pos - 1)
				assert(b&0x80 == 0, "ball outline: disp8 sign")
				byteOff = uint16(b)
			case 0x84:
				pos += 5
				byteOff = exe.CodeWord(pos - 2)
			default:
				assert(false, "ball outline: modrm")
			}
			byteOff++
			assert(exe.CodeByte(pos) == 0xd3, "ball outline: rol opcode")
			assert(exe.CodeByte(pos+1) == 0xc0, "ball outline: rol operand")
			pos += 2
		}
		assert(exe.CodeByte(pos) == 0xa8, "ball outline: test opcode")
		bit := exe.CodeByte(pos + 1)
		y := byteOff / 0x28
		bitX := uint16(0)
		switch bit {
		case 0x80:
			bitX = 0
		case 0x40:
			bitX = 1
		case 0x20:
			bitX = 2
		case 0x10:
			bitX = 3
		case 0x08:
			bitX = 4
		case 0x04:
			bitX = 5
		case 0x02:
			bitX = 6
		case 0x01:
			bitX = 7
		default:
			assert(false, "ball outline: test bit")
		}
		x := byteOff%0x28*8 + bitX - 7
		pos += 2
		assert(exe.CodeByte(pos) == 0x74, "ball outline: jz")
		curEnd := pos + 2 + uint16(exe.CodeByte(pos+1))
		pos += 2
		assert(exe.CodeByte(pos+1) == 0xc5, "ball outline: add bp")
		var angle uint16
		switch exe.CodeByte(pos) {
		case 0x81:
			pos += 4
			angle = exe.CodeWord(pos - 2)
		case 0x83:
			b := exe.CodeByte(pos + 2)
			pos += 3
			assert(b&0x80 == 0, "ball outline: angle disp8")
			angle = uint16(b)
		default:
			assert(false, "ball outline: angle opcode")
		}
		assert(exe.CodeByte(pos) == 0x83, "ball outline: or opcode")
		assert(exe.CodeByte(pos+1) == 0xcf, "ball outline: or operand")
		quad := exe.CodeByte(pos + 2)
		pos += 3
		assert(exe.CodeByte(pos) == 0xb5, "ball outline: mov ch")
		idx := exe.CodeByte(pos + 1)
		pos += 2
		assert(exe.CodeByte(pos) == 0xfe, "ball outline: inc bot")
		var isBot bool
		switch exe.CodeByte(pos + 1) {
		case 0xc2:
			isBot = false
		case 0xc6:
			isBot = true
		default:
			assert(false, "ball outline: bot operand")
		}
		pos += 2
		assert(exe.CodeByte(pos) == 0xfe, "ball outline: inc right")
		var isRight bool
		switch exe.CodeByte(pos + 1) {
		case 0xc3:
			isRight = false
		case 0xc7:
			isRight = true
		default:
			assert(false, "ball outline: right operand")
		}
		pos += 2
		assert(curEnd == pos, "ball outline: block length")

		res = append(res, BallOutlinePixel{
			X: x, Y: y, Angle: angle, Quad: quad, Idx: idx,
			IsBot: isBot, IsRight: isRight,
		})
	}
	return res
}

func extractRect(exe *MzExe, off uint16) Rect {
	return Rect{
		X0: exe.DataWord(off),
		Y0: exe.DataWord(off + 2),
		X1: exe.DataWord(off + 4),
		Y1: exe.DataWord(off + 6),
	}
}

func extractTransitionList(exe *MzExe, off uint16) []Rect {
	var res []Rect
	for exe.DataWord(off) != 0xffff {
		res = append(res, extractRect(exe, off))
		off += 8
	}
	return res
}

func extractTransitions(exe *MzExe, table TableID) (down, up []Rect) {
	offD := [NumTables]uint16{0xec5, 0xc55, 0xad8, 0xc1e}[table]
	offU := [NumTables]uint16{0xf17, 0xc97, 0xb2a, 0xc70}[table]
	return extractTransitionList(exe, offD), extractTransitionList(exe, offU)
}

func extractBumpers(exe *MzExe, table TableID) []Bumper {
	offB := [NumTables]uint16{0xcf3, 0xaad, 0x924, 0x96a}[table]
	offK := [NumTables]uint16{0xd1b, 0xadf, 0x94c, 0x99c}[table]
	var res []Bumper
	for _, set := range []struct {
		pos      uint16
		isKicker bool
	}{{offB, false}, {offK, true}} {
		pos := set.pos
		for exe.DataWord(pos) != 0xffff {
			rect := extractRect(exe, pos)
			ptr := exe.DataWord(pos + 8)
			sfx := extractSfx(exe, exe.DataWord(ptr))
			score, err := exe.DataBcd(ptr + 2)
			assert(err == nil, "bumper score digits")
			pos += 10
			res = append(res, Bumper{IsKicker: set.isKicker, Rect: rect, Sfx: sfx, Score: score})
		}
	}
	return res
}
