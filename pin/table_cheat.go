package pin

type cheatState struct {
	noTilt   bool
	slowdown bool
	buf      []byte
}

// handleCheat accumulates letters typed in attract mode against the mined
// cheat sequences.
func (t *Table) handleCheat(chr byte) {
	t.cheat.buf = append(t.cheat.buf, chr)
	foundPrefix := false
	for i := range t.assets.Cheats {
		cheat := &t.assets.Cheats[i]
		if string(t.cheat.buf) == string(cheat.Keys) {
			t.cheat.buf = t.cheat.buf[:0]
			switch cheat.Effect {
			case CheatNone:
			case CheatTilt:
				t.cheat.noTilt = true
			case CheatSlowdown:
				t.cheat.slowdown = true
			case CheatBalls:
				t.totalBalls = 5
			case CheatReset:
				t.cheat.noTilt = false
				t.cheat.slowdown = false
				t.totalBalls = 3
			}
			t.startScriptRaw(cheat.Script)
			t.script.enterAttract = true
			return
		}
		if len(t.cheat.buf) < len(cheat.Keys) &&
			string(cheat.Keys[:len(t.cheat.buf)]) == string(t.cheat.buf) {
			foundPrefix = true
		}
	}
	if !foundPrefix {
		t.cheat.buf = append(t.cheat.buf[:0], chr)
	}
}
