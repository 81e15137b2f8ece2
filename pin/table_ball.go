package pin

import "math/rand"

// ballState tracks the ball in 10-bit fixed-point playfield coordinates.
type ballState struct {
	layer    Layer
	posHires [2]uint32
	speed    [2]int16
	accel    [2]int16
	frozen   bool
	rotation int16
	maxSpeed int16
}

func newBallState(hifps bool) ballState {
	return ballState{
		layer:    LayerGround,
		accel:    [2]int16{0, 8},
		frozen:   true,
		maxSpeed: speedFix(4100, hifps),
	}
}

func (b *ballState) pos() (uint16, uint16) {
	return uint16(b.posHires[0] >> 10), uint16(b.posHires[1] >> 10)
}

func (b *ballState) posCenter() (uint16, uint16) {
	x, y := b.pos()
	return x + 8, y + 8
}

func (b *ballState) setPos(x, y uint16) {
	b.posHires = [2]uint32{uint32(x) << 10, uint32(y) << 10}
}

func (b *ballState) teleportFreeze(layer Layer, x, y uint16) {
	b.layer = layer
	b.setPos(x, y)
	b.speed = [2]int16{}
	b.frozen = true
}

func (b *ballState) teleport(layer Layer, x, y uint16, sx, sy int16, rng *rand.Rand) {
	b.layer = layer
	b.setPos(x, y)
	b.speed = [2]int16{sx, sy}
	b.frozen = false
	random := int16(rng.Intn(0x400))
	if random&1 != 0 {
		b.rotation = -random
	} else {
		b.rotation = random
	}
}
