package pin

// lightState splits the display bit (lit) from the logical bit (state):
// attract cycles and blinks drive lit without touching state.
type lightState struct {
	lit   bool
	state bool
	blink *lightBlink
}

type lightBlink struct {
	ctr      uint8
	ctrOff   uint8
	ctrReset uint8
}

func newLightBlink(halfPeriod, phase uint8) *lightBlink {
	return &lightBlink{
		ctr:      phase,
		ctrOff:   halfPeriod,
		ctrReset: halfPeriod * 2,
	}
}

type lights struct {
	lights  []lightState
	attract []uint16
}

func newLights(assets *Assets) lights {
	return lights{
		lights:  make([]lightState, len(assets.Lights)),
		attract: make([]uint16, len(assets.AttractLights)),
	}
}

func (l *lights) attractFrame(assets *Assets) {
	for i := range l.attract {
		l.attract[i]++
		data := &assets.AttractLights[i]
		if l.attract[i] == data.CtrOff {
			l.lights[data.Light].lit = false
		} else if l.attract[i] == data.CtrOn {
			l.lights[data.Light].lit = true
			l.attract[i] = data.CtrReset
		}
	}
}

func (l *lights) reset() {
	for i := range l.lights {
		l.setState(i, false)
	}
}

func (l *lights) tilt() {
	for i := range l.lights {
		l.lights[i].lit = false
	}
}

func (l *lights) isLit(id int) bool  { return l.lights[id].lit }
func (l *lights) state(id int) bool  { return l.lights[id].state }

func (l *lights) setBlink(id int, blink *lightBlink) {
	l.lights[id].blink = blink
}

func (l *lights) setState(id int, state bool) {
	l.lights[id] = lightState{lit: state, state: state}
}

func (l *lights) blinkFrame() {
	for i := range l.lights {
		light := &l.lights[i]
		if light.blink == nil {
			continue
		}
		b := light.blink
		if b.ctr == 0 || b.ctr == b.ctrReset {
			light.lit = true
			b.ctr = 0
		} else if b.ctr == b.ctrOff {
			light.lit = false
		}
		b.ctr++
	}
}

func (t *Table) lightBlink(bind LightBind, idx uint8, halfPeriod, phase uint8) {
	t.lights.setBlink(t.assets.LightBinds[bind][idx], newLightBlink(halfPeriod, phase))
}

func (t *Table) lightSet(bind LightBind, idx uint8, state bool) {
	t.lights.setState(t.assets.LightBinds[bind][idx], state)
}

func (t *Table) lightSetAll(bind LightBind, state bool) {
	for _, id := range t.assets.LightBinds[bind] {
		t.lights.setState(id, state)
	}
}

func (t *Table) lightState(bind LightBind, idx uint8) bool {
	return t.lights.state(t.assets.LightBinds[bind][idx])
}

func (t *Table) lightAllLit(bind LightBind) bool {
	for _, id := range t.assets.LightBinds[bind] {
		if !t.lights.state(id) {
			return false
		}
	}
	return true
}

func (t *Table) lightAllUnlit(bind LightBind) bool {
	for _, id := range t.assets.LightBinds[bind] {
		if t.lights.state(id) {
			return false
		}
	}
	return true
}

func (t *Table) lightRotate(bind LightBind) {
	ids := t.assets.LightBinds[bind]
	states := make([]bool, len(ids))
	for i, id := range ids {
		states[i] = t.lights.state(id)
	}
	for i, id := range ids {
		t.lights.setState(id, states[(i+1)%len(states)])
	}
}

// lightSequence lights the first unlit light in the group and returns its
// index; returns the group size when all were lit already.
func (t *Table) lightSequence(bind LightBind) uint8 {
	ids := t.assets.LightBinds[bind]
	for i, id := range ids {
		if !t.lights.state(id) {
			t.lights.setState(id, true)
			return uint8(i)
		}
	}
	return uint8(len(ids))
}

func (t *Table) lightSave(bind LightBind, out []bool) {
	ids := t.assets.LightBinds[bind]
	for i := range out {
		out[i] = t.lights.state(ids[i])
	}
}

func (t *Table) lightLoad(bind LightBind, data []bool) {
	for i, state := range data {
		t.lightSet(bind, uint8(i), state)
	}
}
