package pin

import "testing"

func TestPushStateClamps(t *testing.T) {
	p := newPushState(false)
	for i := 0; i < 100; i++ {
		p.frame(true)
	}
	if p.offsetF9 != 0x800 {
		t.Errorf("held offset = %#x, want 0x800", p.offsetF9)
	}
	if p.offset() != 0x800>>9 {
		t.Errorf("pixel offset = %d", p.offset())
	}
	for i := 0; i < 100; i++ {
		p.frame(false)
	}
	if p.offsetF9 != 0 || p.offset() != 0 {
		t.Errorf("released offset = %#x", p.offsetF9)
	}
}

func TestScrollFollowsBall(t *testing.T) {
	opts := DefaultOptions()
	s := newScrollState(&opts)
	for i := 0; i < 600; i++ {
		s.update(400)
	}
	want := uint16(400 - 75)
	if s.pos != want {
		t.Errorf("pos = %d, want %d", s.pos, want)
	}
	// top of the table pins the camera to zero
	for i := 0; i < 600; i++ {
		s.update(0)
	}
	if s.pos != 0 {
		t.Errorf("pos = %d, want 0", s.pos)
	}
}

func TestScrollFullResolution(t *testing.T) {
	opts := DefaultOptions()
	opts.Resolution = ResFull
	s := newScrollState(&opts)
	s.update(400)
	if s.pos != 0 {
		t.Errorf("full-window scroll moved to %d", s.pos)
	}
}

func TestScrollSpecialTarget(t *testing.T) {
	opts := DefaultOptions()
	s := newScrollState(&opts)
	s.setSpecialTargetNow(100)
	if s.pos != 100 {
		t.Errorf("pos = %d after special target", s.pos)
	}
	s.resetSpecialTarget()
	for i := 0; i < 600; i++ {
		s.update(500)
	}
	if s.pos == 100 {
		t.Error("special target survived reset")
	}
}

func TestDotMatrixBlink(t *testing.T) {
	dm := newDotMatrix()
	dm.startBlink(3)
	states := make([]bool, 0, 12)
	for i := 0; i < 12; i++ {
		states = append(states, dm.state)
		dm.blinkFrame()
	}
	// phase flips every three frames
	want := []bool{true, true, true, false, false, false, true, true, true, false, false, false}
	for i := range want {
		if states[i] != want[i] {
			t.Fatalf("blink states %v, want %v", states, want)
		}
	}
	dm.stopBlink()
	if !dm.state {
		t.Error("stopBlink must leave the display on")
	}
}

func TestDotMatrixSaveRestore(t *testing.T) {
	dm := newDotMatrix()
	dm.pixels[3][7] = true
	dm.save()
	dm.clear()
	if dm.pixels[3][7] {
		t.Fatal("clear did not clear")
	}
	dm.restore()
	if !dm.pixels[3][7] {
		t.Error("restore lost pixels")
	}
}

// fakeLightAssets builds a minimal asset bundle for light group logic.
func fakeLightAssets() *Assets {
	a := &Assets{
		Lights: make([]Light, 4),
	}
	a.LightBinds[LightPartyPuke] = []int{0, 1, 2, 3}
	return a
}

func fakeLightTable() *Table {
	a := fakeLightAssets()
	return &Table{assets: a, lights: newLights(a)}
}

func TestLightSequenceAndRotate(t *testing.T) {
	tb := fakeLightTable()
	if got := tb.lightSequence(LightPartyPuke); got != 0 {
		t.Fatalf("first sequence = %d", got)
	}
	if got := tb.lightSequence(LightPartyPuke); got != 1 {
		t.Fatalf("second sequence = %d", got)
	}
	tb.lightRotate(LightPartyPuke)
	want := []bool{true, false, false, true}
	for i, w := range want {
		if tb.lights.state(i) != w {
			t.Fatalf("after rotate light %d = %v", i, tb.lights.state(i))
		}
	}
}

func TestLightBlinkKeepsLogicalState(t *testing.T) {
	tb := fakeLightTable()
	tb.lightSet(LightPartyPuke, 0, true)
	tb.lightBlink(LightPartyPuke, 0, 2, 0)
	// blink drives the display bit only
	seen := map[bool]bool{}
	for i := 0; i < 8; i++ {
		tb.lights.blinkFrame()
		seen[tb.lights.isLit(0)] = true
		if !tb.lights.state(0) {
			t.Fatal("blink clobbered the logical state")
		}
	}
	if !seen[true] || !seen[false] {
		t.Error("blink never toggled the display bit")
	}
}

func TestLightTiltClearsDisplayOnly(t *testing.T) {
	tb := fakeLightTable()
	tb.lightSet(LightPartyPuke, 2, true)
	tb.lights.tilt()
	if tb.lights.isLit(2) {
		t.Error("tilt left a light lit")
	}
	if !tb.lights.state(2) {
		t.Error("tilt clobbered the logical state")
	}
}

func TestSpeedFix(t *testing.T) {
	if got := speedFix(600, true); got != 600 {
		t.Errorf("hifps fix = %d", got)
	}
	if got := speedFix(600, false); got != 500 {
		t.Errorf("60 fps fix = %d", got)
	}
	if got := speedFix(-200, false); got != -166 {
		t.Errorf("negative fix = %d", got)
	}
}

func TestMatchTimingPortedAsIs(t *testing.T) {
	// the 71 fps table keeps the original's out-of-order opening run
	hi := matchTiming(true)
	if hi[0] != 22 || hi[1] != 28 || hi[2] != 25 || hi[3] != 25 {
		t.Errorf("hifps timing head = %v", hi[:4])
	}
	lo := matchTiming(false)
	for i := 1; i < len(lo); i++ {
		if lo[i] > lo[i-1] {
			t.Errorf("60 fps timing not monotone at %d: %v", i, lo[i-1:i+1])
		}
	}
}

func TestBallPosFixedPoint(t *testing.T) {
	b := newBallState(false)
	b.setPos(280, 525)
	x, y := b.pos()
	if x != 280 || y != 525 {
		t.Errorf("pos = %d,%d", x, y)
	}
	cx, cy := b.posCenter()
	if cx != 288 || cy != 533 {
		t.Errorf("center = %d,%d", cx, cy)
	}
	if !b.frozen {
		t.Error("new ball must start frozen")
	}
}
