package pin

// pushState is the tilt-key camera/ball shake: a fixed-point displacement
// clamped to 0..0x800 with separate attack and release rates.
type pushState struct {
	offsetF9     int16
	speed        int16
	speedAttack  int16
	speedRelease int16
}

func newPushState(hifps bool) pushState {
	return pushState{
		speedAttack:  speedFix(600, hifps),
		speedRelease: speedFix(-200, hifps),
	}
}

func (p *pushState) frame(held bool) {
	if held {
		p.speed = p.speedAttack
		p.offsetF9 += p.speed
		if p.offsetF9 > 0x800 {
			p.speed = 0
			p.offsetF9 = 0x800
		}
	} else {
		p.speed = p.speedRelease
		p.offsetF9 += p.speed
		if p.offsetF9 < 0 {
			p.speed = 0
			p.offsetF9 = 0
		}
	}
}

func (p *pushState) offset() uint16 {
	return uint16(p.offsetF9 >> 9)
}

type flipperState struct {
	pos             int16
	speed           int16
	quantum         uint16
	prevQuantum     uint16
	accelPress      int16
	accelRelease    int16
	speedPressStart int16
}

func newFlipperState(f *Flipper, hifps bool) flipperState {
	return flipperState{
		prevQuantum:     1,
		accelPress:      speedFix(f.AccelPress, hifps),
		accelRelease:    speedFix(f.AccelRelease, hifps),
		speedPressStart: speedFix(f.SpeedPressStart, hifps),
	}
}

// speedFix rescales a 71 fps-native speed constant for the 60 fps frame rate.
func speedFix(speed int16, hifps bool) int16 {
	if hifps {
		return speed
	}
	return int16(int32(speed) * 5 / 6)
}

func prepMaterials(hifps bool) [8]Material {
	res := materials
	for i := range res {
		res[i].MinBounceSpeed = speedFix(res[i].MinBounceSpeed, hifps)
	}
	return res
}

func physmapPatchApply(physmaps *[numLayers][]uint8, layer Layer, px, py uint16, src grid) {
	for y := 0; y < src.h; y++ {
		copy(
			physmaps[layer][(int(py)+y)*320+int(px):(int(py)+y)*320+int(px)+src.w],
			src.data[y*src.w:(y+1)*src.w],
		)
	}
}

type collision struct {
	flipperSpeed [2]int16
	angle        uint16
	material     int
	cnt          uint16
}

func (t *Table) physicsFrame() {
	if t.ball.frozen {
		t.push.frame(t.spaceState)
		t.flippersMove()
		t.flippersPhysmapUpdate()
		return
	}
	if coll, ok := t.physicsCheckCollision(); ok {
		t.physicsNewDir(coll)
	}
	t.push.frame(t.spaceState)
	t.flippersMove()
	t.ballMove()
	t.flippersPhysmapUpdate()
}

func (t *Table) physicsCheckCollision() (collision, bool) {
	var angleSum uint32
	var quad uint8
	var ctrB uint16
	var cnt uint16
	material := -1
	bx, by := t.ball.pos()
	for i := range t.assets.BallOutline {
		pix := &t.assets.BallOutline[i]
		x := int32(bx) + int32(pix.X) - 1
		y := int32(by) + int32(t.push.offset()) + int32(pix.Y) - 1
		if x < 0 || x >= 320 || y < 0 || y >= 576 {
			continue
		}
		b := t.physmaps[t.ball.layer][y*320+x]
		if b&2 != 0 {
			angleSum += uint32(pix.Angle)
			quad |= pix.Quad
			if pix.IsBot {
				ctrB++
			}
			material = int(b & 7)
			cnt++
		}
	}
	if cnt == 0 {
		return collision{}, false
	}
	if quad == 0xb || quad == 9 || quad == 0xd {
		angleSum += uint32(ctrB) << 11
	}
	angle := uint16(angleSum/uint32(cnt)) & 0x7ff
	idx := (int(angle)*0x580 + 0x8000) >> 16
	hit := t.assets.OutlineByAngle[idx%len(t.assets.OutlineByAngle)]
	hitX := int16(hit[0] + bx)
	hitY := int16(hit[1] + by)
	t.hitPos = [2]int16{hitX, hitY}
	t.haveHitPos = true
	var flipperSpeed [2]int16
	switch material {
	case materialFlipper:
		for fid := range t.assets.Flippers {
			flipper := &t.assets.Flippers[fid]
			state := &t.flippers[fid]
			if !flipper.BallBbox.ContainsS(hitX, hitY) {
				continue
			}
			dx := hitX - flipper.OriginX
			dy := hitY - flipper.OriginY
			switch flipper.Side {
			case FlipperLeft:
				if dx < 0 {
					continue
				}
			case FlipperRight:
				if dx >= 0 {
					continue
				}
				if !flipper.IsVertical {
					dx = -dx
					dy = -dy
				}
			}
			var extra int16
			if flipper.IsVertical {
				dx, dy = dy, dx
				extra = dy >> 1
				if extra < 0 {
					extra = -extra
				}
			} else {
				extra = dy
				if extra < 0 {
					extra = -extra
				}
				extra >>= 2
			}
			flipperSpeed = [2]int16{dy * -state.speed, -(dx + extra) * -state.speed}
		}
	case materialKicker, materialBumper:
		if !t.tilted {
			for bid := range t.assets.Bumpers {
				bumper := &t.assets.Bumpers[bid]
				if bumper.IsKicker != (material == materialKicker) {
					continue
				}
				if bumper.Rect.ContainsS(hitX, hitY) {
					t.hitBumper = bid
				}
			}
		}
	}
	return collision{
		flipperSpeed: flipperSpeed,
		angle:        angle,
		material:     material,
		cnt:          cnt,
	}, true
}

func clampSpeed(v int32, max int16) int16 {
	if v > int32(max) {
		return max
	}
	if v < int32(-max) {
		return -max
	}
	return int16(v)
}

func (t *Table) physicsNewDir(coll collision) {
	material := &t.materials[coll.material]
	speedX := clampSpeed(int32(t.ball.speed[0])+int32(coll.flipperSpeed[0]), t.ball.maxSpeed)
	speedY := clampSpeed(int32(t.ball.speed[1])+int32(coll.flipperSpeed[1])+int32(t.push.speed), t.ball.maxSpeed)
	angle := int(0x800-coll.angle) & 0x7ff
	cos := int32(t.assets.SineTable[angle+0x200])
	sin := int32(t.assets.SineTable[angle])
	dot := (int32(speedX)*cos - int32(speedY)*sin) >> 13
	cross := (int32(speedX)*sin + int32(speedY)*cos) >> 13
	if dot <= 0 {
		t.hitBumper = -1
		return
	}
	if dot <= int32(material.MinBounceSpeed) {
		dot = 0
		t.hitBumper = -1
	} else {
		bounceFactor := cross * 0x10 / dot
		if bounceFactor < 0 {
			bounceFactor = -bounceFactor
		}
		if int16(bounceFactor) < material.MaxBounceAngle {
			if t.hitBumper >= 0 {
				if coll.material == materialKicker {
					if dot < int32(t.kickerSpeedThreshold) {
						t.hitBumper = -1
					} else {
						dot += int32(t.kickerSpeedBoost)
					}
				} else {
					dot += int32(t.bumperSpeedBoost)
				}
			}
		} else {
			dot = 0
			t.hitBumper = -1
		}
	}
	dot -= dot * 256 / int32(material.BounceFactor)
	cx := int32(material.StiffCross)
	bp := int32(material.StiffRot)
	if dot < 1024 {
		factor := dot>>6 + 1
		cx *= factor
		bp *= factor
	}
	dot = -dot
	rot := int32(t.ball.rotation) + int32(t.push.speed) - cross
	cross += rot * 256 / cx
	t.ball.rotation -= int16(rot * 256 / bp)
	cross = cross * 0x800 / 0x801
	cos = int32(t.assets.SineTable[0x200+int(coll.angle)])
	sin = int32(t.assets.SineTable[coll.angle])
	newX := int32(int16((dot*cos - cross*sin) >> 15))
	newY := int32(int16((dot*sin + cross*cos) >> 15))
	newX -= int32(coll.flipperSpeed[0])
	newY -= int32(coll.flipperSpeed[1])
	newY -= int32(t.push.speed)
	t.ball.speed = [2]int16{
		clampSpeed(newX, t.ball.maxSpeed),
		clampSpeed(newY, t.ball.maxSpeed),
	}
	if coll.cnt >= 6 {
		// stuck between surfaces, nudge away along the normal
		t.ball.posHires[0] = uint32(int32(t.ball.posHires[0]) + -cos>>6)
		t.ball.posHires[1] = uint32(int32(t.ball.posHires[1]) + -sin>>6)
	}
}

func (t *Table) ballMove() {
	t.ball.posHires[0] = uint32(int32(t.ball.posHires[0]) + int32(t.ball.speed[0]))
	t.ball.posHires[1] = uint32(int32(t.ball.posHires[1]) + int32(t.ball.speed[1]))
	if _, y := t.ball.pos(); y >= 576 {
		t.drained = true
	}
	t.ball.speed[0] += t.ball.accel[0]
	t.ball.speed[1] += t.ball.accel[1]
	if t.ball.rotation < 0 {
		t.ball.rotation += 2
		if t.ball.rotation > 0 {
			t.ball.rotation = 0
		}
	} else {
		t.ball.rotation -= 2
		if t.ball.rotation < 0 {
			t.ball.rotation = 0
		}
	}
}

func (t *Table) springRelease() {
	if t.atSpring {
		factor := int16(-138)
		if t.hifps {
			factor = -166
		}
		t.ball.speed = [2]int16{
			0,
			factor*int16(t.springPos) - int16(t.rng.Intn(0x100)),
		}
		t.ball.rotation = int16(t.rng.Intn(0x10))
	}
	t.playSfxBindVolume(SfxSpringUp, t.springPos*2)
	t.springPos = 0
}

func (t *Table) flippersMove() {
	for fid := range t.assets.Flippers {
		flipper := &t.assets.Flippers[fid]
		state := &t.flippers[fid]
		if t.flipperKey[flipper.Side] && t.flippersEnabled {
			state.speed += state.accelPress
			if state.speed < state.speedPressStart {
				state.speed = state.speedPressStart
			}
		} else {
			state.speed += state.accelRelease
		}
		state.pos += state.speed
		if state.pos < 55 {
			state.pos = 0
			state.speed = 0
		}
		if state.pos > flipper.PosMax {
			state.pos = flipper.PosMax
			state.speed = 0
		}
		state.quantum = uint16(state.pos / 55)
	}
}

func (t *Table) flippersPhysmapUpdate() {
	for fid := range t.assets.Flippers {
		flipper := &t.assets.Flippers[fid]
		state := &t.flippers[fid]
		if state.quantum != state.prevQuantum {
			state.prevQuantum = state.quantum
			physmapPatchApply(&t.physmaps, LayerGround, flipper.RectX, flipper.RectY, flipper.Physmap[state.quantum])
		}
	}
}

func (t *Table) dropPhysmap(bind PhysmapBind) {
	patch := t.assets.PhysmapPatches[bind]
	physmapPatchApply(&t.physmaps, patch.Layer, patch.X, patch.Y, patch.Dropped)
}

func (t *Table) raisePhysmap(bind PhysmapBind) {
	patch := t.assets.PhysmapPatches[bind]
	physmapPatchApply(&t.physmaps, patch.Layer, patch.X, patch.Y, patch.Raised)
}

func (t *Table) ballGravity() {
	x, y := t.ball.posCenter()
	if x >= 320 || y >= 576 {
		return
	}
	ramp := t.physmaps[t.ball.layer][int(y)*320+int(x)] >> 4
	if ramp == 0xf {
		return
	}
	r := &t.assets.Ramps[ramp]
	if t.hifps {
		t.ball.accel = r.AccelHires
	} else {
		t.ball.accel = r.Accel
	}
	if !t.options.AngleHigh {
		t.ball.accel[1] -= 3
	}
}

func (t *Table) ballCenter() (uint16, uint16) {
	x, y := t.ball.pos()
	return x + 8, y + 8 + t.push.offset()
}

func (t *Table) checkTransitions() {
	x, y := t.ballCenter()
	switch t.ball.layer {
	case LayerGround:
		for _, r := range t.assets.TransitionsUp {
			if r.Contains(x, y) {
				t.ball.layer = LayerOverhead
				break
			}
		}
	case LayerOverhead:
		for _, r := range t.assets.TransitionsDown {
			if r.Contains(x, y) {
				t.ball.layer = LayerGround
				break
			}
		}
	}
}

func (t *Table) scoreBumper() {
	if t.hitBumper < 0 {
		return
	}
	bumper := &t.assets.Bumpers[t.hitBumper]
	t.hitBumper = -1
	t.player.PlaySfx(bumper.Sfx, 0x40)
	t.score(bumper.Score, BcdZero)
	t.modeCountHit()
}
