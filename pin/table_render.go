package pin

// Render composites the scrolled board, spring, flippers, ball and dot
// matrix into the palette-indexed framebuffer and rewrites the palette for
// light states, dot-matrix phase, mono and fade.
func (t *Table) Render(data []uint8, pal []RGB) {
	copy(pal, t.assets.MainBoard.Cmap)
	for lid := range t.assets.Lights {
		light := &t.assets.Lights[lid]
		if t.lights.isLit(lid) {
			for i, color := range light.Colors {
				pal[int(light.BaseIndex)+i] = color
			}
		} else {
			for i, color := range light.Colors {
				pal[int(light.BaseIndex)+i] = RGB{color.R / 2, color.G / 2, color.B / 2}
			}
		}
	}
	if t.dm.state {
		pal[t.assets.DmPalette.IndexOn] = t.assets.DmPalette.ColorOn
	} else {
		pal[t.assets.DmPalette.IndexOn] = t.assets.DmPalette.ColorOff
	}

	var height int
	switch t.options.Resolution {
	case ResNormal:
		height = 240 - 33
	case ResHigh:
		height = 350 - 33
	case ResFull:
		height = 576
	}
	springPos := int(t.springPos) / 2
	bx, by := t.ball.pos()
	if !t.ball.frozen {
		by += t.push.offset()
	}
	for y := 0; y < height; y++ {
		sy := y + int(t.scroll.pos) + int(t.push.offset())
		if sy >= 576 {
			for x := 0; x < 320; x++ {
				data[y*320+x] = 0
			}
		} else {
			copy(data[y*320:(y+1)*320], t.assets.MainBoard.Row(sy))
		}
		if sy >= 556 && sy < 556+17 {
			springY := sy - 553
			if springY >= springPos {
				springY -= springPos
				for springX := 0; springX < 10; springX++ {
					data[y*320+springX+304] = t.assets.Spring.At(springX, springY)
				}
			}
		}
		for fid := range t.assets.Flippers {
			flipper := &t.assets.Flippers[fid]
			gfx := &flipper.Gfx[t.flippers[fid].quantum]
			if sy >= int(flipper.RectY) && sy-int(flipper.RectY) < gfx.h {
				fy := sy - int(flipper.RectY)
				for fx := 0; fx < gfx.w; fx++ {
					data[y*320+fx+int(flipper.RectX)] = gfx.at(fx, fy)
				}
			}
		}
		if !t.inAttract && int16(sy) >= int16(by) && int16(sy) < int16(by)+15 {
			ballY := sy - int(by)
			for ballX := 0; ballX < 15; ballX++ {
				pix := t.assets.Ball.At(ballX, ballY)
				if pix == 0 {
					continue
				}
				x := ballX + int(bx)
				if x < 0 || x >= 320 {
					continue
				}
				if sy < 576 && t.assets.Occmaps[t.ball.layer][sy*320+x] != 0 {
					continue
				}
				data[y*320+x] = pix
			}
		}
	}
	for y := 0; y < 16; y++ {
		dy := 2 + 2*y + height
		for x := 0; x < 160; x++ {
			pix := t.assets.DmPalette.IndexOff
			if t.dm.pixels[y][x] {
				pix = t.assets.DmPalette.IndexOn
			}
			data[dy*320+x*2] = pix
		}
	}

	if t.options.Mono {
		for i, color := range pal {
			mono := uint8((uint16(color.R) + uint16(color.G) + uint16(color.B)) / 3)
			pal[i] = RGB{mono, mono, mono}
		}
	}
	if t.fade != 0x100 {
		for i, color := range pal {
			pal[i] = RGB{
				uint8(uint16(color.R) * t.fade >> 8),
				uint8(uint16(color.G) * t.fade >> 8),
				uint8(uint16(color.B) * t.fade >> 8),
			}
		}
	}
}
