package pin

func (t *Table) HandleKey(key Key, pressed bool) {
	switch key {
	case KeyShiftLeft, KeyCtrlLeft, KeyAltLeft:
		if pressed && t.flippersEnabled && !t.flipperKey[FlipperLeft] {
			t.flipperPressed = true
			t.playSfxBind(SfxFlipperPress)
		}
		t.flipperKey[FlipperLeft] = pressed
	case KeyShiftRight, KeyCtrlRight, KeyAltRight:
		if pressed && t.flippersEnabled && !t.flipperKey[FlipperRight] {
			t.flipperPressed = true
			t.playSfxBind(SfxFlipperPress)
		}
		t.flipperKey[FlipperRight] = pressed
	case KeySpace:
		if pressed && !t.spaceState {
			t.spacePressed = true
		}
		t.spaceState = pressed
	case KeyDown:
		t.springDownState = pressed
		if !pressed {
			t.springReleased = true
		}
	}

	if !pressed {
		return
	}
	chr := key.Char()

	switch t.kbdState {
	case kbdMain:
		if t.startKeysActive && (t.inAttract || t.atSpring) {
			switch key {
			case KeyF1, KeyDigit1:
				t.startKey = 1
			case KeyF2, KeyDigit2:
				t.startKey = 2
			case KeyF3, KeyDigit3:
				t.startKey = 3
			case KeyF4, KeyDigit4:
				t.startKey = 4
			case KeyF5, KeyDigit5:
				t.startKey = 5
			case KeyF6, KeyDigit6:
				t.startKey = 6
			case KeyF7, KeyDigit7:
				t.startKey = 7
			case KeyF8, KeyDigit8:
				t.startKey = 8
			case KeyEnter:
				if t.inAttract {
					t.startKey = 1
				} else if t.totalPlayers < 8 {
					t.startKey = int(t.totalPlayers) + 1
				}
			}
			if t.startKey != 0 {
				t.startKeysActive = false
			}
		}
		if t.inAttract {
			if chr != 0 {
				t.handleCheat(chr)
			}
			if key == KeyEscape {
				t.kbdState = kbdConfirmQuit
				t.startScript(ScriptConfirmQuit)
			}
		} else if !t.inDrain {
			switch key {
			case KeyEscape:
				if t.atSpring {
					t.abortGame()
				}
			case KeyLetter('M'):
				t.toggleMusic()
				t.optionChanged = true
			case KeyLetter('P'):
				t.pause()
			}
		}
	case kbdConfirmQuit:
		switch key {
		case KeyLetter('Y'):
			t.quitting = true
			t.kbdState = kbdMain
		case KeyLetter('N'):
			t.kbdState = kbdMain
		}
	case kbdPaused:
		switch key {
		case KeyLetter('M'):
			t.toggleMusic()
			t.dm.clear()
			if t.options.NoMusic {
				t.dmPuts(FontH13, DmCoord{X: 44, Y: 1}, []byte("MUSIC OFF"))
			} else {
				t.dmPuts(FontH13, DmCoord{X: 48, Y: 1}, []byte("MUSIC ON"))
			}
			t.pauseCycle = 0
			t.optionChanged = true
		case KeyLetter('R'):
			switch t.options.Resolution {
			case ResNormal:
				t.options.Resolution = ResHigh
			case ResHigh:
				t.options.Resolution = ResFull
			case ResFull:
				t.options.Resolution = ResNormal
			}
			_, ballY := t.ball.pos()
			t.scroll.setResolution(t.options.Resolution, int16(ballY), !t.inAttract)
			t.dm.clear()
			t.dmPuts(FontH13, DmCoord{X: 8, Y: 1}, []byte("RESOLUTION CHANGED"))
			t.pauseCycle = 0
			t.optionChanged = true
		case KeyLetter('S'):
			switch t.options.ScrollSpeed {
			case ScrollHard:
				t.options.ScrollSpeed = ScrollMedium
			case ScrollMedium:
				t.options.ScrollSpeed = ScrollSoft
			case ScrollSoft:
				t.options.ScrollSpeed = ScrollHard
			}
			t.scroll.setSpeed(t.options.ScrollSpeed.RawSpeed())
			t.dm.clear()
			switch t.options.ScrollSpeed {
			case ScrollHard:
				t.dmPuts(FontH13, DmCoord{X: 24, Y: 1}, []byte("SCROLLING HARD"))
			case ScrollMedium:
				t.dmPuts(FontH13, DmCoord{X: 16, Y: 1}, []byte("SCROLLING MEDIUM"))
			case ScrollSoft:
				t.dmPuts(FontH13, DmCoord{X: 24, Y: 1}, []byte("SCROLLING SOFT"))
			}
			t.pauseCycle = 0
			t.optionChanged = true
		case KeyLetter('A'):
			t.options.AngleHigh = !t.options.AngleHigh
			t.dm.clear()
			if t.options.AngleHigh {
				t.dmPuts(FontH13, DmCoord{X: 40, Y: 1}, []byte("ANGLE HIGH"))
			} else {
				t.dmPuts(FontH13, DmCoord{X: 44, Y: 1}, []byte("ANGLE LOW"))
			}
			t.pauseCycle = 0
			t.optionChanged = true
		case KeyLetter('P'):
			t.unpause()
		case KeyEscape:
			t.dm.clear()
			t.dmPuts(FontH13, DmCoord{X: 0, Y: 1}, []byte("REALLY QUIT (Y OR N)"))
			t.kbdState = kbdPausedConfirmQuit
		}
	case kbdPausedConfirmQuit:
		if key == KeyLetter('Y') {
			t.dm.restore()
			t.quitting = true
			t.kbdState = kbdMain
		} else {
			t.unpause()
		}
	case kbdGetName:
		if chr != 0 && len(t.nameBuf) < 3 {
			t.nameBuf = append(t.nameBuf, chr)
		}
	}
}

func (t *Table) HandleTouch(id uint64, phase TouchPhase, x, y int) {
	if t.inAttract && t.startKeysActive && phase == TouchStarted {
		t.startKey = 1
	}
	sid := int64(id)
	if phase == TouchEnded || phase == TouchCancelled {
		if t.touchFlipperLeft == sid {
			t.flipperKey[FlipperLeft] = false
			t.touchFlipperLeft = -1
		}
		if t.touchFlipperRight == sid {
			t.flipperKey[FlipperRight] = false
			t.touchFlipperRight = -1
		}
		if t.touchSpace == sid {
			t.spaceState = false
			t.touchSpace = -1
		}
	}
	if t.inAttract || t.drained {
		return
	}
	if t.atSpring {
		pos := int16(y)
		var factor int16
		switch t.options.Resolution {
		case ResNormal:
			factor = 2
		case ResHigh:
			factor = 3
		case ResFull:
			factor = 5
		}
		compress := func(pos int16) {
			d := (pos - t.touchSpringOrigin) / factor
			if d > 32 {
				d = 32
			}
			t.springPos = uint8(d)
		}
		switch phase {
		case TouchStarted:
			t.touchSpring = sid
			t.touchSpringOrigin = pos
		case TouchMoved:
			if t.touchSpring == sid {
				if pos > t.touchSpringOrigin {
					compress(pos)
				} else {
					t.touchSpringOrigin = pos
				}
			}
		case TouchEnded:
			if t.touchSpring == sid {
				if pos > t.touchSpringOrigin {
					compress(pos)
					t.springReleased = true
				}
				t.touchSpring = -1
			}
		case TouchCancelled:
			if t.touchSpring == sid {
				t.touchSpring = -1
			}
		}
		return
	}
	_, h := t.Resolution()
	if y < h/2 || phase != TouchStarted {
		return
	}
	switch {
	case x < 110:
		t.touchFlipperLeft = sid
		t.flipperPressed = true
		t.playSfxBind(SfxFlipperPress)
		t.flipperKey[FlipperLeft] = true
	case x < 210:
		t.touchSpace = sid
		t.spacePressed = true
		t.spaceState = true
	default:
		t.touchFlipperRight = sid
		t.flipperPressed = true
		t.playSfxBind(SfxFlipperPress)
		t.flipperKey[FlipperRight] = true
	}
}
