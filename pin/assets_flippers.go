package pin

type FlipperSide int

const (
	FlipperLeft FlipperSide = iota
	FlipperRight
	numFlipperSides
)

// Flipper carries the static flipper description plus its per-quantum
// graphics and physmap overlays.
type Flipper struct {
	Side       FlipperSide
	RectX      uint16
	RectY      uint16
	Physmap    []grid // indexed by quantum
	Gfx        []grid
	BallBbox   Rect
	OriginX    int16
	OriginY    int16
	IsVertical bool
	QuantumMax uint16
	PosMax     int16
	AccelPress      int16
	AccelRelease    int16
	SpeedPressStart int16
}

func extractVerticalFlag(v uint16) bool {
	assert(v == 0 || v == 0xffff, "flipper vertical flag")
	return v == 0xffff
}

func extractFlippers(exe *MzExe, table TableID, board *Image, physmaps *[numLayers][]uint8) []Flipper {
	off := [NumTables]uint16{0x6950, 0x6940, 0x66d0, 0x7360}[table]
	physmapSegs := [NumTables][]uint16{
		{0x4c54, 0x4fc2, 0x4eb6},
		{0x4998, 0x4df2, 0x4bfa},
		{0x3bcf, 0x3f2a, 0x3e31},
		{0x453b, 0x479d},
	}[table]
	gfxSeg := [NumTables]uint16{0xc0f, 0xb8e, 0xb37, 0xc88}[table]
	glutSeg := [NumTables]uint16{0x8274, 0x7e3d, 0x7aff, 0x7f47}[table]
	glutLen := [NumTables]uint16{0x6d4 / 4, 0xa8 / 4, 0xdc / 4, 0x78 / 4}[table]

	var res []Flipper
	for i, physmapSeg := range physmapSegs {
		foff := off + uint16(i)*0x3c
		width := exe.DataWord(foff+0x06) * 16
		height := exe.DataWord(foff + 0x08)
		physmapStride := exe.DataWord(foff+0x18) / 3
		assert(width/8*height == physmapStride, "flipper record stride")
		quantumMax := exe.DataWord(foff + 0x20)
		rectX := exe.DataWord(foff + 0x02)
		rectY := exe.DataWord(foff + 0x04)

		// quantum 0 is a straight crop of the board; each further quantum
		// applies that quantum's copy list on top of the previous image
		crop := newGrid(int(width), int(height))
		for y := 0; y < crop.h; y++ {
			for x := 0; x < crop.w; x++ {
				crop.set(x, y, board.At(int(rectX)+x, int(rectY)+y))
			}
		}
		gfx := []grid{crop}
		copyListPtr := exe.DataWord(foff+0x36) + uint16(i)*8
		copyListStride := exe.DataWord(foff + 0x38)
		for q := uint16(0); q < quantumMax; q++ {
			img := grid{w: gfx[len(gfx)-1].w, h: gfx[len(gfx)-1].h,
				data: append([]uint8(nil), gfx[len(gfx)-1].data...)}
			cloff := copyListPtr + copyListStride*q
			cnt := exe.Word(gfxSeg, cloff)
			for j := uint16(0); j < cnt; j++ {
				o := cloff + 0x12 + j*4
				dst := exe.Word(gfxSeg, o)
				src := exe.Word(gfxSeg, o+2) - 0xd4f4
				dx := dst % 0x54 * 4
				dy := dst / 0x54
				assert(dx < width, "flipper gfx x")
				assert(dy < height, "flipper gfx y")
				for k := uint16(0); k < 4; k++ {
					img.set(int(dx+k), int(dy), exe.Byte(glutSeg, src+glutLen*k))
				}
			}
			gfx = append(gfx, img)
		}

		var side FlipperSide
		switch exe.DataByte(foff) {
		case 1:
			side = FlipperRight
		case 2:
			side = FlipperLeft
		default:
			assert(false, "flipper side")
		}

		physmap := make([]grid, 0, quantumMax+1)
		for q := uint16(0); q <= quantumMax; q++ {
			physmap = append(physmap, extractPhysmapRectPatchedOr(
				exe, physmaps, LayerGround, rectX, rectY, width/8, height,
				physmapSeg, q*physmapStride,
			))
		}

		res = append(res, Flipper{
			Side:    side,
			RectX:   rectX,
			RectY:   rectY,
			Physmap: physmap,
			Gfx:     gfx,
			BallBbox: Rect{
				X0: uint16(exe.DataWordS(foff + 0x0a)),
				X1: uint16(exe.DataWordS(foff + 0x0c)),
				Y0: uint16(exe.DataWordS(foff + 0x0e)),
				Y1: uint16(exe.DataWordS(foff + 0x10)),
			},
			OriginX:    exe.DataWordS(foff + 0x12),
			OriginY:    exe.DataWordS(foff + 0x14),
			IsVertical: extractVerticalFlag(exe.DataWord(foff + 0x16)),
			QuantumMax: quantumMax,
			PosMax:     exe.DataWordS(foff + 0x22),
			AccelPress:      -exe.DataWordS(foff + 0x24),
			AccelRelease:    -exe.DataWordS(foff + 0x26),
			SpeedPressStart: -exe.DataWordS(foff + 0x28),
		})
	}
	return res
}
