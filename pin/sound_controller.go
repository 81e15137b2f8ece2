package pin

import "sync/atomic"

// Controller is the game-facing half of the mixer: plain atomics shared
// between the main thread and the audio callback.
type Controller struct {
	ticks  atomic.Uint32
	volume atomic.Uint32
	sfx    atomic.Uint32
	paused atomic.Bool
}

func NewController() *Controller {
	c := &Controller{}
	c.volume.Store(0x100)
	return c
}

func (c *Controller) incrTick() {
	c.ticks.Store(c.ticks.Load() + 1)
}

func (c *Controller) Ticks() uint32 { return c.ticks.Load() }

func (c *Controller) SetMasterVolume(volume uint32) {
	if volume > 0x100 {
		volume = 0x100
	}
	c.volume.Store(volume)
}

func (c *Controller) MasterVolume() uint32 { return c.volume.Load() }

func (c *Controller) Pause()       { c.paused.Store(true) }
func (c *Controller) Unpause()     { c.paused.Store(false) }
func (c *Controller) Paused() bool { return c.paused.Load() }

// PlaySfx queues a one-shot sample for the mixer. The pending word holds one
// SFX at a time; a newer one replaces an unconsumed older one.
func (c *Controller) PlaySfx(sfx Sfx, volume uint8) {
	val := uint32(sfx.Period) |
		uint32(sfx.Sample)<<8 |
		uint32(volume)<<16 |
		uint32(sfx.Channel)<<24
	c.sfx.Store(val)
}

// getSfx drains the pending SFX into a synthetic note.
func (c *Controller) getSfx() (int, Note, bool) {
	val := c.sfx.Swap(0)
	if val == 0 {
		return 0, Note{}, false
	}
	note := Note{
		Period:     int8(val & 0xff),
		Sample:     uint8(val >> 8 & 0xff),
		PortTarget: -1,
	}
	if volume := uint8(val >> 16 & 0xff); volume != 0 {
		note.Vol = volSet
		note.VolValue = volume
	}
	return int(val >> 24 & 0xff), note, true
}

// Sequencer decides what position the mixer plays next. Implementations must
// be safe for concurrent use from the audio callback and the main thread.
type Sequencer interface {
	// CheckInterrupt returns a position to jump to immediately, if any.
	CheckInterrupt() (uint8, bool)
	// NextPosition advances past the current position.
	NextPosition() uint8
	// Jump handles a position-jump effect and returns the real target.
	Jump(target uint8) uint8
}

// SimpleSequencer cycles through the whole song; no interrupts. Used for the
// intro music.
type SimpleSequencer struct {
	position atomic.Uint32
	wrap     uint8
}

func NewSimpleSequencer(m *Mod) *SimpleSequencer {
	return &SimpleSequencer{wrap: uint8(len(m.Positions))}
}

func (s *SimpleSequencer) CheckInterrupt() (uint8, bool) { return 0, false }

func (s *SimpleSequencer) NextPosition() uint8 {
	next := uint8(s.position.Load())
	if next+1 == s.wrap {
		s.position.Store(0)
	} else {
		s.position.Store(uint32(next + 1))
	}
	return next
}

func (s *SimpleSequencer) Jump(target uint8) uint8 {
	s.position.Store(uint32(target))
	return s.NextPosition()
}

// TableSequencer layers jingles over a background music position. All state
// lives in one u32 so the whole update is a compare-and-swap:
//
//	bit  0..6  position
//	bit  7     interrupt pending
//	bit  8..15 repeat
//	bit 16..23 priority
//	bit 24..30 saved music position
//	bit 31     no_music
type TableSequencer struct {
	state               atomic.Uint32
	positionJingleStart uint8
	positionSilence     uint8
}

type seqState struct {
	position  uint8
	interrupt bool
	repeat    uint8
	priority  uint8
	music     uint8
	noMusic   bool
}

func unpackSeqState(v uint32) seqState {
	return seqState{
		position:  uint8(v & 0x7f),
		interrupt: v&0x80 != 0,
		repeat:    uint8(v >> 8 & 0xff),
		priority:  uint8(v >> 16 & 0xff),
		music:     uint8(v >> 24 & 0x7f),
		noMusic:   v&0x80000000 != 0,
	}
}

func packSeqState(s seqState) uint32 {
	v := uint32(s.position&0x7f) |
		uint32(s.repeat)<<8 |
		uint32(s.priority)<<16 |
		uint32(s.music&0x7f)<<24
	if s.interrupt {
		v |= 0x80
	}
	if s.noMusic {
		v |= 0x80000000
	}
	return v
}

func NewTableSequencer(position, positionJingleStart, positionSilence uint8, noMusic bool) *TableSequencer {
	t := &TableSequencer{
		positionJingleStart: positionJingleStart,
		positionSilence:     positionSilence,
	}
	t.state.Store(packSeqState(seqState{
		position:  position,
		interrupt: true,
		music:     position,
		noMusic:   noMusic,
	}))
	return t
}

// update retries f over a CAS loop. f returns false to abandon the update.
func (t *TableSequencer) update(f func(*seqState) bool) bool {
	for {
		old := t.state.Load()
		s := unpackSeqState(old)
		if !f(&s) {
			return false
		}
		if t.state.CompareAndSwap(old, packSeqState(s)) {
			return true
		}
	}
}

// PlayJingle succeeds iff forced or the jingle's priority is at least the
// current one. The running music position is saved unless a jingle is
// already playing; music overrides it when given (0xff means none).
func (t *TableSequencer) PlayJingle(j Jingle, force bool, music uint8) bool {
	return t.update(func(s *seqState) bool {
		if j.Priority < s.priority && !force {
			return false
		}
		if s.repeat == 0 {
			s.music = s.position
		}
		s.position = j.Position
		s.interrupt = true
		s.repeat = j.Repeat
		s.priority = j.Priority
		if music != NoMusicOverride {
			s.music = music
		}
		return true
	})
}

// NoMusicOverride passed as PlayJingle's music argument keeps the saved
// position. Real positions are 7-bit so 0xff can never collide.
const NoMusicOverride = 0xff

func (t *TableSequencer) SetMusic(position uint8) {
	t.update(func(s *seqState) bool {
		s.music = position
		return true
	})
}

func (t *TableSequencer) ResetPriority() {
	t.update(func(s *seqState) bool {
		s.priority = 0
		return true
	})
}

func (t *TableSequencer) SetNoMusic(flag bool) {
	t.update(func(s *seqState) bool {
		s.noMusic = flag
		return true
	})
}

// ForceEndLoop makes an endlessly repeating jingle fall back to the music on
// its next loop.
func (t *TableSequencer) ForceEndLoop() {
	t.update(func(s *seqState) bool {
		if s.repeat != 0 {
			return false
		}
		s.repeat = 1
		return true
	})
}

func (t *TableSequencer) Music() uint8 {
	return unpackSeqState(t.state.Load()).music
}

func (t *TableSequencer) Priority() uint8 {
	return unpackSeqState(t.state.Load()).priority
}

func (t *TableSequencer) JinglePlaying() bool {
	return unpackSeqState(t.state.Load()).repeat != 0
}

func (t *TableSequencer) CheckInterrupt() (uint8, bool) {
	var pos uint8
	ok := t.update(func(s *seqState) bool {
		if !s.interrupt {
			return false
		}
		s.interrupt = false
		pos = s.position
		return true
	})
	return pos, ok
}

func (t *TableSequencer) NextPosition() uint8 {
	var pos uint8
	t.update(func(s *seqState) bool {
		if s.interrupt {
			// the interrupt will override everything anyway
			pos = s.position
			return false
		}
		s.position++
		pos = s.position
		return true
	})
	return pos
}

func (t *TableSequencer) Jump(target uint8) uint8 {
	var pos uint8
	if t.update(func(s *seqState) bool {
		if s.interrupt {
			// the interrupt will override everything anyway
			return false
		}
		switch s.repeat {
		case 0:
			// nothing to worry about, just jump
		case 1:
			// repeat ran out, jump to music instead
			s.priority = 0
			s.repeat = 0
			target = s.music
		default:
			s.repeat--
		}
		if target < t.positionJingleStart && s.noMusic {
			target = t.positionSilence
		}
		s.position = target
		pos = s.position
		return true
	}) {
		return pos
	}
	return target
}
