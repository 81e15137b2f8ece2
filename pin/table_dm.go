package pin

// dotMatrix is the 160x16 monochrome display with a saved backup buffer and
// a blink phase.
type dotMatrix struct {
	pixels [16][160]bool
	saved  [16][160]bool
	state  bool
	blink  *dmBlink
}

type dmBlink struct {
	timer  uint16
	period uint16
}

func newDotMatrix() dotMatrix {
	return dotMatrix{state: true}
}

func (d *dotMatrix) save()    { d.saved = d.pixels }
func (d *dotMatrix) restore() { d.pixels = d.saved }

func (d *dotMatrix) stopBlink() {
	d.state = true
	d.blink = nil
}

func (d *dotMatrix) startBlink(period uint16) {
	d.state = true
	d.blink = &dmBlink{timer: period, period: period}
}

func (d *dotMatrix) blinkFrame() {
	if d.blink == nil {
		return
	}
	d.blink.timer--
	if d.blink.timer == 0 {
		d.blink.timer = d.blink.period
		d.state = !d.state
	}
}

func (d *dotMatrix) setState(state bool) { d.state = state }

func (d *dotMatrix) clear() {
	d.pixels = [16][160]bool{}
}

func (t *Table) dmSubChar(chr byte) byte {
	switch {
	case chr < 0x80:
		return chr
	case chr >= charHighScores && chr < charHighScores+12:
		idx := (chr - charHighScores) / 3
		cidx := (chr - charHighScores) % 3
		return t.highScores[idx].Name[cidx]
	case chr == charCurBall:
		return '0' + t.curBall
	case chr == charCurPlayer:
		return '0' + t.curPlayer
	case chr == charTotalPlayers:
		return '0' + t.totalPlayers
	case chr == charBonusMultL:
		if t.bonusMultLate == 10 {
			return '1'
		}
		return '0' + t.bonusMultLate
	case chr == charBonusMultL+1:
		if t.bonusMultLate == 10 {
			return '0'
		}
		return ' '
	case chr == charBonusMultR:
		if t.bonusMultLate == 10 {
			return '1'
		}
		return ' '
	case chr == charBonusMultR+1:
		if t.bonusMultLate == 10 {
			return '0'
		}
		return '0' + t.bonusMultLate
	case chr == charNumCyclones:
		if t.numCyclone < 100 {
			return '_'
		}
		return '0' + byte(t.numCyclone/100%10)
	case chr == charNumCyclones+1:
		if t.numCyclone < 10 {
			return '_'
		}
		return '0' + byte(t.numCyclone/10%10)
	case chr == charNumCyclones+2:
		return '0' + byte(t.numCyclone%10)
	case chr == charNumCyclonesTgt:
		if t.numCycloneTarget < 100 {
			return '_'
		}
		return '0' + byte(t.numCycloneTarget/100%10)
	case chr == charNumCyclonesTgt+1:
		if t.numCycloneTarget < 10 {
			return '_'
		}
		return '0' + byte(t.numCycloneTarget/10%10)
	case chr == charNumCyclonesTgt+2:
		return '0' + byte(t.numCycloneTarget%10)
	case chr == charNumCyclonesTgtL:
		switch {
		case t.numCycloneTarget < 10:
			return '0' + byte(t.numCycloneTarget%10)
		case t.numCycloneTarget < 100:
			return '0' + byte(t.numCycloneTarget/10%10)
		default:
			return '0' + byte(t.numCycloneTarget/100%10)
		}
	case chr == charNumCyclonesTgtL+1:
		switch {
		case t.numCycloneTarget < 10:
			return '_'
		case t.numCycloneTarget < 100:
			return '0' + byte(t.numCycloneTarget%10)
		default:
			return '0' + byte(t.numCycloneTarget/10%10)
		}
	case chr == charNumCyclonesTgtL+2:
		if t.numCycloneTarget < 100 {
			return '_'
		}
		return '0' + byte(t.numCycloneTarget%10)
	}
	panic("pin: unknown substitution char")
}

func (t *Table) dmPutChar(font DmFont, pos DmCoord, chr byte) {
	chr = t.dmSubChar(chr)
	if chr == ' ' {
		return
	}
	fdata := t.assets.DmFonts[font][chr]
	// the long-message scroller needs '_' to clear the whole cell height
	if font == FontH13 && chr == '_' {
		for y := 0; y < 16; y++ {
			for x := int16(0); x < 8; x++ {
				dx := pos.X + x
				if dx >= 0 && dx < 160 {
					t.dm.pixels[y][dx] = false
				}
			}
		}
		return
	}
	for y := 0; y < font.Height(); y++ {
		dy := pos.Y + int16(y)
		if dy < 0 || dy >= 16 {
			continue
		}
		fline := fdata[y]
		for x := int16(0); x < 8; x++ {
			dx := pos.X + x
			if dx < 0 || dx >= 160 {
				continue
			}
			t.dm.pixels[dy][dx] = fline<<uint(x)&0x80 != 0
		}
	}
}

func (t *Table) dmPutBcd(font DmFont, pos DmCoord, num Bcd, center bool) {
	if center {
		pos.X -= int16(num.LeadingZeros()) * 4
	}
	ascii := num.ToASCII()
	for i, chr := range ascii {
		t.dmPutChar(font, pos, chr)
		if (i == 2 || i == 5 || i == 8) && chr != ' ' {
			h := font.Height()
			t.dmComma(int(pos.Y)+h, int(pos.X)+7)
			t.dmComma(int(pos.Y)+h, int(pos.X)+8)
			t.dmComma(int(pos.Y)+h+1, int(pos.X)+6)
			t.dmComma(int(pos.Y)+h+1, int(pos.X)+7)
		}
		pos.X += 8
	}
}

func (t *Table) dmComma(y, x int) {
	if y >= 0 && y < 16 && x >= 0 && x < 160 {
		t.dm.pixels[y][x] = true
	}
}

func (t *Table) dmPuts(font DmFont, pos DmCoord, msg []byte) {
	for _, chr := range msg {
		t.dmPutChar(font, pos, chr)
		pos.X += 8
		if pos.X >= 160 {
			break
		}
	}
}

func (t *Table) dmAnimFrame(frame FrameID) {
	for _, px := range t.assets.AnimFrames[frame] {
		t.dm.pixels[px.Pos.Y][px.Pos.X] = px.State
	}
}

// dot matrix script tasks

type taskDmAnim struct {
	anim     AnimID
	frameIdx int
	delay    uint16
	repeats  uint16
}

func newTaskDmAnim(t *Table, anim AnimID) *taskDmAnim {
	return &taskDmAnim{anim: anim, delay: 1, repeats: t.assets.Anims[anim].Repeats}
}

func (s *taskDmAnim) run(t *Table) bool {
	s.delay--
	if s.delay != 0 {
		return true
	}
	anim := &t.assets.Anims[s.anim]
	if s.frameIdx == anim.NumFrames {
		s.repeats--
		if s.repeats == 0 {
			return false
		}
		s.frameIdx = anim.Restart
	}
	f := anim.Frames[s.frameIdx]
	s.frameIdx++
	t.dmAnimFrame(f.Frame)
	s.delay = f.Dwell
	return true
}

type taskDmWipeDown struct{ pos int }

func (s *taskDmWipeDown) run(t *Table) bool {
	if s.pos == 16 {
		return false
	}
	t.dm.pixels[s.pos] = [160]bool{}
	s.pos++
	return true
}

type taskDmWipeRight struct{ pos int }

func (s *taskDmWipeRight) run(t *Table) bool {
	if s.pos == 160 {
		return false
	}
	for dx := 0; dx < 2; dx++ {
		for y := 0; y < 16; y++ {
			t.dm.pixels[y][s.pos+dx] = false
		}
	}
	s.pos += 2
	return true
}

type taskDmWipeDownStriped struct{ pos int }

func (s *taskDmWipeDownStriped) run(t *Table) bool {
	if s.pos == 4 {
		return false
	}
	t.dm.pixels[s.pos] = [160]bool{}
	t.dm.pixels[s.pos+4] = [160]bool{}
	t.dm.pixels[s.pos+8] = [160]bool{}
	t.dm.pixels[s.pos+12] = [160]bool{}
	s.pos++
	return true
}

type taskDmMsgScroll struct {
	msg    MsgID
	pos    int16
	target int16
	down   bool
}

func newTaskDmMsgScroll(msg MsgID, target int16, down bool) *taskDmMsgScroll {
	pos := int16(16)
	if down {
		pos = -13
	}
	return &taskDmMsgScroll{msg: msg, pos: pos, target: target, down: down}
}

func (s *taskDmMsgScroll) run(t *Table) bool {
	if s.down {
		s.pos++
	} else {
		s.pos--
	}
	t.dm.clear()
	t.dmPuts(FontH13, DmCoord{X: 0, Y: s.pos}, t.assets.Msgs[s.msg])
	return s.pos != s.target
}

type taskDmLongMsg struct {
	msg MsgID
	pos int
	x   int16
}

func (s *taskDmLongMsg) run(t *Table) bool {
	msg := t.assets.Msgs[s.msg]
	if s.pos+20 >= len(msg) {
		return false
	}
	t.dmPuts(FontH13, DmCoord{X: s.x, Y: 1}, msg[s.pos:])
	s.x--
	t.dmPuts(FontH13, DmCoord{X: s.x, Y: 1}, msg[s.pos:])
	s.x--
	if s.x == -8 {
		s.x = 0
		s.pos++
	}
	return true
}

type taskDmTowerHunt struct {
	target uint16
	pos    uint16
}

func newTaskDmTowerHunt(target uint16) *taskDmTowerHunt {
	return &taskDmTowerHunt{target: target, pos: 152}
}

func (s *taskDmTowerHunt) run(t *Table) bool {
	s.pos--
	for y := 0; y < 16; y++ {
		t.dm.pixels[y] = t.assets.DmTower[int(s.pos)+y]
	}
	return s.target != s.pos
}
