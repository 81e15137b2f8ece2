package pin

// scrollState smooths the camera toward the ball, with a special-target
// override during drop-zone and vault sequences.
type scrollState struct {
	pos           uint16
	rawPosF4      int16
	speed         int16
	windowHeight  uint16
	targetSpecial int32 // -1 when none
	ballTarget    int16
	attractUp     bool
}

func newScrollState(options *Options) scrollState {
	s := scrollState{
		speed:         options.ScrollSpeed.RawSpeed(),
		targetSpecial: -1,
		attractUp:     true,
	}
	switch options.Resolution {
	case ResNormal:
		s.windowHeight = 240 - 33
		s.ballTarget = 75
	case ResHigh:
		s.windowHeight = 350 - 33
		s.ballTarget = 130
	case ResFull:
		s.windowHeight = 576
		s.ballTarget = 0
	}
	s.pos = 576 - s.windowHeight
	return s
}

func (s *scrollState) setResolution(res Resolution, ballY int16, haveBall bool) {
	switch res {
	case ResNormal:
		s.windowHeight = 240 - 33
		s.ballTarget = 75
	case ResHigh:
		s.windowHeight = 350 - 33
		s.ballTarget = 130
	case ResFull:
		s.windowHeight = 576
		s.ballTarget = 0
	}
	var pos uint16
	switch {
	case s.targetSpecial >= 0:
		pos = uint16(s.targetSpecial)
	case haveBall && ballY >= s.ballTarget:
		pos = uint16(ballY - s.ballTarget)
	}
	if max := uint16(576) - s.windowHeight; pos > max {
		pos = max
	}
	s.pos = pos
	s.rawPosF4 = int16(s.pos) << 4
}

func (s *scrollState) update(ballY int16) {
	if s.windowHeight == 576 {
		s.pos = 0
		return
	}
	var target uint16
	if s.targetSpecial >= 0 {
		target = uint16(s.targetSpecial)
	} else if ballY >= s.ballTarget {
		target = uint16(ballY - s.ballTarget)
		if max := uint16(576) - s.windowHeight; target > max {
			target = max
		}
	}
	delta := int16(target) - s.rawPosF4>>4
	s.rawPosF4 += delta * s.speed >> 2
	delta = int16(target) - s.rawPosF4>>4
	if delta <= -s.ballTarget {
		s.rawPosF4 += (delta + s.ballTarget) << 4
	} else if delta >= s.ballTarget+40 {
		s.rawPosF4 += (delta - s.ballTarget - 40) << 4
	}
	s.pos = uint16(s.rawPosF4 >> 4)
}

func (s *scrollState) attractFrame() {
	if s.windowHeight == 576 {
		s.pos = 0
		return
	}
	if s.pos == 0 {
		s.attractUp = false
	} else if s.pos == 576-s.windowHeight {
		s.attractUp = true
	}
	if s.attractUp {
		s.pos--
	} else {
		s.pos++
	}
	s.rawPosF4 = int16(s.pos) << 4
}

func (s *scrollState) setSpeed(speed int16) { s.speed = speed }

func (s *scrollState) setSpecialTarget(target uint16) {
	s.targetSpecial = int32(target)
}

func (s *scrollState) setSpecialTargetNow(target uint16) {
	s.targetSpecial = int32(target)
	if s.windowHeight != 576 {
		s.rawPosF4 = int16(target) << 4
		s.pos = target
	}
}

func (s *scrollState) resetSpecialTarget() { s.targetSpecial = -1 }
