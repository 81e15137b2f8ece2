package pin

var vibratoLut = [32]uint8{
	0x00, 0x18, 0x31, 0x4a, 0x61, 0x78, 0x8d, 0xa1, 0xb4, 0xc5, 0xd4, 0xe0, 0xeb, 0xf4, 0xfa, 0xfd,
	0xff, 0xfd, 0xfa, 0xf4, 0xeb, 0xe0, 0xd4, 0xc5, 0xb4, 0xa1, 0x8d, 0x78, 0x61, 0x4a, 0x31, 0x18,
}

type channelToneEffect int

const (
	chToneNone channelToneEffect = iota
	chTonePortamento
	chToneVibrato
	chToneArpeggio
	chToneRetrig
)

type channelState struct {
	volume             uint8
	sample             int
	samplePos          uint64
	sampleBytesPerFrame uint64
	samplePosReload    uint64
	xperiod            uint8
	period             uint16
	tone               channelToneEffect
	arpeggioPeriods    [2]uint16
	portamentoTarget   uint16
	portamentoSpeed    uint8
	vibratoPhase       uint8
	vibratoRate        uint8
	vibratoDepth       uint8
	volSlide           bool
	volSlideSpeed      int8
	retrigPeriod       uint8
	retrigLeft         uint8
}

// Player is the software mixer. The shell's audio callback drives it through
// MakeSamples; the game talks to it through the embedded Controller and the
// Sequencer it was built with. MakeSamples never allocates and never takes
// locks.
type Player struct {
	*Controller

	module     *Mod
	sequencer  Sequencer
	sampleRate uint32

	speed         uint8
	ticksLeft     uint8
	samplesLeft   uint32
	samplesInTick uint32
	position      int
	row           int
	channels      [4]channelState
	patternBreak  int // -1 when none
	jump          int // -1 when none
}

// NewPlayer builds a mixer over a loaded module. A nil sequencer gets the
// simple looping one.
func NewPlayer(module *Mod, sequencer Sequencer, sampleRate uint32) *Player {
	if sequencer == nil {
		sequencer = NewSimpleSequencer(module)
	}
	p := &Player{
		Controller:    NewController(),
		module:        module,
		sequencer:     sequencer,
		sampleRate:    sampleRate,
		speed:         6,
		samplesInTick: sampleRate / 50,
		position:      int(sequencer.NextPosition()),
		patternBreak:  -1,
		jump:          -1,
	}
	for i := range p.channels {
		p.channels[i].volume = 0x40
	}
	return p
}

// MakeSamples fills an interleaved stereo float32 buffer. Channels 0+1 land
// on the left, 2+3 on the right.
func (p *Player) MakeSamples(out []float32) {
	if p.Paused() {
		for i := range out {
			out[i] = 0
		}
		return
	}
	master := int32(p.MasterVolume())
	if pos, ok := p.sequencer.CheckInterrupt(); ok {
		p.position = int(pos)
		p.row = 0
		p.ticksLeft = 0
		p.samplesLeft = 0
	}
	if ch, note, ok := p.getSfx(); ok {
		p.playNote(ch, note)
	}
	for pos := 0; pos+1 < len(out); pos += 2 {
		if p.samplesLeft == 0 {
			if p.ticksLeft == 0 {
				p.playRow()
				p.ticksLeft = p.speed - 1
			} else {
				p.ticksLeft--
				p.playEffects()
			}
			p.samplesLeft = p.samplesInTick
			p.incrTick()
		}
		out[pos] = float32((p.playChannel(0)+p.playChannel(1))/0x100*master) / float32(0x80000000)
		out[pos+1] = float32((p.playChannel(2)+p.playChannel(3))/0x100*master) / float32(0x80000000)
		p.samplesLeft--
	}
}

func (p *Player) playRow() {
	pattern := int(p.module.Positions[p.position])
	row := p.module.Patterns[pattern][p.row]
	for i, note := range row {
		p.playNote(i, note)
	}
	switch {
	case p.jump >= 0:
		p.position = p.jump
		p.row = 0
		p.jump = -1
	case p.patternBreak >= 0:
		p.row = p.patternBreak
		p.position = int(p.sequencer.NextPosition())
		p.patternBreak = -1
	default:
		p.row++
		if p.row == 0x40 {
			p.row = 0
			p.position = int(p.sequencer.NextPosition())
		}
	}
}

func (p *Player) setPeriod(ch *channelState, period uint16) {
	byteLen := 0x361f0f / uint32(period)
	ch.sampleBytesPerFrame = uint64(byteLen) << 32 / uint64(p.sampleRate)
}

func (p *Player) playNote(cidx int, note Note) {
	ch := &p.channels[cidx]
	if note.Sample != 0 {
		ch.sample = int(note.Sample)
		ch.samplePosReload = 0
		ch.volume = p.module.Samples[ch.sample].Volume
	}
	sample := &p.module.Samples[ch.sample]
	if note.Period >= 0 {
		period := periods[sample.Finetune][note.Period]
		ch.xperiod = uint8(note.Period)
		ch.period = period
		ch.samplePos = ch.samplePosReload
		ch.vibratoPhase = 0
		p.setPeriod(ch, period)
	}
	switch note.Tone {
	case toneNone:
		ch.tone = chToneNone
	case toneArpeggio:
		ch.tone = chToneArpeggio
		a := int(ch.xperiod) + int(note.ArpA)
		b := int(ch.xperiod) + int(note.ArpB)
		if a > 35 {
			a = 35
		}
		if b > 35 {
			b = 35
		}
		ch.arpeggioPeriods[0] = periods[sample.Finetune][a]
		ch.arpeggioPeriods[1] = periods[sample.Finetune][b]
	case tonePortamento:
		ch.tone = chTonePortamento
		if note.PortTarget >= 0 {
			ch.portamentoTarget = periods[sample.Finetune][note.PortTarget]
		}
		if note.PortSpeed != 0 {
			ch.portamentoSpeed = note.PortSpeed
		}
	case toneVibrato:
		ch.tone = chToneVibrato
		if note.VibRate != 0 {
			ch.vibratoRate = note.VibRate * 4
		}
		if note.VibDepth != 0 {
			ch.vibratoDepth = note.VibDepth
		}
	}
	switch note.Vol {
	case volNone:
		ch.volSlide = false
	case volSet:
		ch.volSlide = false
		ch.volume = note.VolValue
	case volSlide:
		ch.volSlide = true
		ch.volSlideSpeed = note.VolSlide
	case volReset:
		ch.volSlide = false
		ch.volume = sample.Volume
	}
	switch note.Misc {
	case miscNone:
	case miscSetSampleOffset:
		ch.samplePosReload = uint64(note.MiscArg) << 40
		if note.Sample != 0 {
			ch.samplePos = ch.samplePosReload
		}
	case miscPositionJump:
		p.jump = int(p.sequencer.Jump(note.MiscArg))
	case miscPatternBreak:
		p.patternBreak = int(note.MiscArg)
	case miscRetrigNote:
		ch.tone = chToneRetrig
		ch.retrigPeriod = note.MiscArg
		ch.retrigLeft = note.MiscArg - 1
	case miscSetSpeed:
		p.speed = note.MiscArg
		p.ticksLeft = note.MiscArg - 1
	}
}

func (p *Player) playEffects() {
	for i := range p.channels {
		ch := &p.channels[i]
		switch ch.tone {
		case chToneArpeggio:
			tmp := ch.period
			ch.period = ch.arpeggioPeriods[1]
			ch.arpeggioPeriods[1] = ch.arpeggioPeriods[0]
			ch.arpeggioPeriods[0] = tmp
			p.setPeriod(ch, ch.period)
		case chTonePortamento:
			if ch.portamentoTarget != 0 {
				if ch.portamentoTarget < ch.period {
					ch.period -= uint16(ch.portamentoSpeed)
					if ch.period < ch.portamentoTarget {
						ch.period = ch.portamentoTarget
					}
				} else {
					ch.period += uint16(ch.portamentoSpeed)
					if ch.period > ch.portamentoTarget {
						ch.period = ch.portamentoTarget
					}
				}
				p.setPeriod(ch, ch.period)
			}
		case chToneVibrato:
			phase := ch.vibratoPhase
			ch.vibratoPhase = phase + ch.vibratoRate
			delta := int16(vibratoLut[phase>>2&0x1f])
			delta *= int16(ch.vibratoDepth)
			delta >>= 7
			if phase&0x80 != 0 {
				delta = -delta
			}
			period := uint16(int32(ch.period) + int32(delta))
			if period != 0 {
				p.setPeriod(ch, period)
			}
		case chToneRetrig:
			if ch.retrigLeft == 0 {
				ch.retrigLeft = ch.retrigPeriod - 1
				ch.samplePos = 0
			} else {
				ch.retrigLeft--
			}
		}
		if ch.volSlide {
			v := int16(ch.volume) + int16(ch.volSlideSpeed)
			if v < 0 {
				v = 0
			}
			if v > 0x40 {
				v = 0x40
			}
			ch.volume = uint8(v)
		}
	}
}

func (p *Player) playChannel(idx int) int32 {
	ch := &p.channels[idx]
	sample := &p.module.Samples[ch.sample]
	pos := int(ch.samplePos >> 32)
	if sample.HasRepeat {
		for pos >= sample.RepStart+sample.RepLen {
			pos -= sample.RepLen
			ch.samplePos -= uint64(sample.RepLen) << 32
		}
	} else if pos >= len(sample.Data) {
		return 0
	}
	ch.samplePos += ch.sampleBytesPerFrame
	val := int32(int8(sample.Data[pos]))
	val <<= 16
	val *= int32(ch.volume)
	return val
}
