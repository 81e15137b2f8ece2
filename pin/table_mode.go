package pin

func (t *Table) modeCountHit() {
	if t.inModeHit {
		t.scoreModeHit = t.scoreModeHit.Add(t.assets.ScoreModeHitIncr)
	}
}

func (t *Table) modeCountRamp() {
	if t.inModeRamp {
		if t.assets.Table == Table3 {
			t.scoreModeHit = t.scoreModeHit.Add(t.assets.ScoreModeRampIncr)
		} else {
			t.scoreModeRamp = t.scoreModeRamp.Add(t.assets.ScoreModeRampIncr)
		}
	}
}

// modeFrame drives the per-second mode tick; returns false when the timer
// has run out and the script should resume.
func (t *Table) modeFrame(score ScriptScore) bool {
	var bcd Bcd
	switch score.Kind {
	case ScoreModeHit:
		bcd = t.scoreModeHit
	case ScoreModeRamp:
		bcd = t.scoreModeRamp
	}
	t.dmPutBcd(FontH13, DmCoord{X: 16, Y: 1}, bcd, false)
	if t.timerStop {
		return true
	}
	t.modeTimeoutFrames--
	if t.modeTimeoutFrames != 0 {
		return true
	}
	t.modeTimeoutFrames = 60
	if t.hifps {
		t.modeTimeoutFrames = 71
	}
	if t.modeTimeoutSecs == 0 {
		return false
	}
	t.modeTimeoutSecs--
	switch t.assets.Table {
	case Table1:
		t.partyModeCheck()
	case Table2:
		t.speedModeCheck()
	case Table3:
		t.showModeCheck()
	case Table4:
		t.stonesModeCheck()
	}
	msg := [2]byte{'_', '0' + t.modeTimeoutSecs%10}
	if t.modeTimeoutSecs >= 10 {
		msg[0] = '0' + t.modeTimeoutSecs/10
	}
	t.dmPuts(FontH11, DmCoord{X: 144, Y: 2}, msg[:])
	return true
}
