package pin

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// periods holds the amiga period for every (finetune, note index) pair.
// One row per finetune 0..15, 36 notes C-1..B-3.
var periods = [16][36]uint16{
	{
		856, 808, 762, 720, 678, 640, 604, 570, 538, 508, 480, 453, 428, 404, 381, 360, 339, 320,
		302, 285, 269, 254, 240, 226, 214, 202, 190, 180, 170, 160, 151, 143, 135, 127, 120, 113,
	},
	{
		850, 802, 757, 715, 674, 637, 601, 567, 535, 505, 477, 450, 425, 401, 379, 357, 337, 318,
		300, 284, 268, 253, 239, 225, 213, 201, 189, 179, 169, 159, 150, 142, 134, 126, 119, 113,
	},
	{
		844, 796, 752, 709, 670, 632, 597, 563, 532, 502, 474, 447, 422, 398, 376, 355, 335, 316,
		298, 282, 266, 251, 237, 224, 211, 199, 188, 177, 167, 158, 149, 141, 133, 125, 118, 112,
	},
	{
		838, 791, 746, 704, 665, 628, 592, 559, 528, 498, 470, 444, 419, 395, 373, 352, 332, 314,
		296, 280, 264, 249, 235, 222, 209, 198, 187, 176, 166, 157, 148, 140, 132, 125, 118, 111,
	},
	{
		832, 785, 741, 699, 660, 623, 588, 555, 524, 495, 467, 441, 416, 392, 370, 350, 330, 312,
		294, 278, 262, 247, 233, 220, 208, 196, 185, 175, 165, 156, 147, 139, 131, 124, 117, 110,
	},
	{
		826, 779, 736, 694, 655, 619, 584, 551, 520, 491, 463, 437, 413, 390, 368, 347, 328, 309,
		292, 276, 260, 245, 232, 219, 206, 195, 184, 174, 164, 155, 146, 138, 130, 123, 116, 109,
	},
	{
		820, 774, 730, 689, 651, 614, 580, 547, 516, 487, 460, 434, 410, 387, 365, 345, 325, 307,
		290, 274, 258, 244, 230, 217, 205, 193, 183, 172, 163, 154, 145, 137, 129, 122, 115, 109,
	},
	{
		814, 768, 725, 684, 646, 610, 575, 543, 513, 484, 457, 431, 407, 384, 363, 342, 323, 305,
		288, 272, 256, 242, 228, 216, 204, 192, 181, 171, 161, 152, 144, 136, 128, 121, 114, 108,
	},
	{
		907, 856, 808, 762, 720, 678, 640, 604, 570, 538, 504, 480, 453, 428, 404, 381, 360, 339,
		320, 302, 285, 269, 254, 240, 226, 214, 202, 190, 180, 170, 160, 151, 143, 135, 127, 120,
	},
	{
		900, 850, 802, 757, 715, 675, 636, 601, 567, 535, 505, 477, 450, 425, 401, 379, 357, 337,
		318, 300, 284, 268, 253, 238, 225, 212, 200, 189, 179, 169, 159, 150, 142, 134, 126, 119,
	},
	{
		894, 844, 796, 752, 709, 670, 632, 597, 563, 532, 502, 474, 447, 422, 398, 376, 355, 335,
		316, 298, 282, 266, 251, 237, 223, 211, 199, 188, 177, 167, 158, 149, 141, 133, 125, 118,
	},
	{
		887, 838, 791, 746, 704, 665, 628, 592, 559, 528, 498, 470, 444, 419, 395, 373, 352, 332,
		314, 296, 280, 264, 249, 235, 222, 209, 198, 187, 176, 166, 157, 148, 140, 132, 125, 118,
	},
	{
		881, 832, 785, 741, 699, 660, 623, 588, 555, 524, 494, 467, 441, 416, 392, 370, 350, 330,
		312, 294, 278, 262, 247, 233, 220, 208, 196, 185, 175, 165, 156, 147, 139, 131, 123, 117,
	},
	{
		875, 826, 779, 736, 694, 655, 619, 584, 551, 520, 491, 463, 437, 413, 390, 368, 347, 338,
		309, 292, 276, 260, 245, 232, 219, 206, 195, 184, 174, 164, 155, 146, 138, 130, 123, 116,
	},
	{
		868, 820, 774, 730, 689, 651, 614, 580, 547, 516, 487, 460, 434, 410, 387, 365, 345, 325,
		307, 290, 274, 258, 244, 230, 217, 205, 193, 183, 172, 163, 154, 145, 137, 129, 122, 115,
	},
	{
		862, 814, 768, 725, 684, 646, 610, 575, 543, 513, 484, 457, 431, 407, 384, 363, 342, 323,
		305, 288, 272, 256, 242, 228, 216, 203, 192, 181, 171, 161, 152, 144, 136, 128, 121, 114,
	},
}

// Mod is a loaded tracker module.
type Mod struct {
	Name       string
	Samples    []Sample // index 0 is a dummy; real samples are 1..31
	Patterns   [][64][4]Note
	Positions  []uint8
	PosRestart uint8
}

type Sample struct {
	Name      string
	Data      []byte
	Finetune  uint8
	Volume    uint8
	HasRepeat bool
	RepStart  int
	RepLen    int
}

type toneEffectKind int

const (
	toneNone toneEffectKind = iota
	toneArpeggio
	tonePortamento
	toneVibrato
)

type volumeEffectKind int

const (
	volNone volumeEffectKind = iota
	volSet
	volSlide
	volReset
)

type miscEffectKind int

const (
	miscNone miscEffectKind = iota
	miscSetSampleOffset
	miscPositionJump
	miscPatternBreak
	miscRetrigNote
	miscSetSpeed
)

// Note is one decoded pattern cell. Period is a note index 0..35, -1 when
// absent; Sample is 1..31, 0 when absent.
type Note struct {
	Period int8
	Sample uint8

	Tone       toneEffectKind
	ArpA, ArpB uint8
	PortTarget int8  // note index, -1 to keep the current one
	PortSpeed  uint8 // 0 keeps the current speed
	VibRate    uint8 // 0 keeps the current rate
	VibDepth   uint8

	Vol        volumeEffectKind
	VolValue   uint8
	VolSlide   int8

	Misc    miscEffectKind
	MiscArg uint8
}

func decodeNote(value uint32) (Note, error) {
	n := Note{Period: -1, PortTarget: -1}
	period := uint16(value >> 16 & 0xfff)
	if period != 0 {
		idx := -1
		for i, p := range periods[0] {
			if p == period {
				idx = i
				break
			}
		}
		if idx < 0 {
			return n, fmt.Errorf("pin: unknown period %d", period)
		}
		n.Period = int8(idx)
	}
	n.Sample = uint8(value>>24&0xf0 | value>>12&0xf)
	effect := value & 0xfff
	arg := uint8(effect & 0xff)
	hi := arg >> 4 & 0xf
	lo := arg & 0xf
	slide := func() int8 {
		if hi != 0 {
			return int8(hi)
		}
		return -int8(lo)
	}
	switch effect >> 8 {
	case 0:
		if effect != 0 {
			n.Tone = toneArpeggio
			n.ArpA, n.ArpB = hi, lo
		}
	case 1: // portamento up
		n.Tone = tonePortamento
		n.PortTarget = 35
		n.PortSpeed = arg
	case 2: // portamento down
		n.Tone = tonePortamento
		n.PortTarget = 0
		n.PortSpeed = arg
	case 3: // tone portamento; clears the note trigger
		n.Tone = tonePortamento
		n.PortTarget = n.Period
		n.PortSpeed = arg
		if n.Sample != 0 {
			n.Vol = volReset
		}
		n.Period = -1
		n.Sample = 0
	case 4:
		n.Tone = toneVibrato
		n.VibRate = hi
		n.VibDepth = lo
	case 5: // tone portamento + volume slide
		n.Tone = tonePortamento
		n.PortTarget = n.Period
		n.Vol = volSlide
		n.VolSlide = slide()
		n.Period = -1
		n.Sample = 0
	case 6: // vibrato continue + volume slide
		n.Tone = toneVibrato
		n.Vol = volSlide
		n.VolSlide = slide()
	case 9:
		n.Misc = miscSetSampleOffset
		n.MiscArg = arg
	case 0xa:
		n.Vol = volSlide
		n.VolSlide = slide()
	case 0xb:
		n.Misc = miscPositionJump
		n.MiscArg = arg
	case 0xc:
		n.Vol = volSet
		n.VolValue = arg
	case 0xd:
		n.Misc = miscPatternBreak
		n.MiscArg = arg
	case 0xe:
		if hi != 9 {
			return n, fmt.Errorf("pin: unknown effect %03x", effect)
		}
		n.Misc = miscRetrigNote
		n.MiscArg = lo
	case 0xf:
		n.Misc = miscSetSpeed
		n.MiscArg = arg
	default:
		return n, fmt.Errorf("pin: unknown effect %03x", effect)
	}
	return n, nil
}

// LoadMod parses a tracker module: 20-byte title, 31 sample headers, the
// position list, pattern data, then the sample bodies.
func LoadMod(data []byte) (*Mod, error) {
	if len(data) <= 1080 {
		return nil, fmt.Errorf("pin: module too short")
	}
	be16 := func(off int) int { return int(binary.BigEndian.Uint16(data[off : off+2])) }
	m := &Mod{
		Name:    strings.TrimRight(string(data[:20]), "\x00"),
		Samples: []Sample{{}},
	}
	sampleLens := []int{0}
	pos := 20
	for i := 0; i < 31; i++ {
		buf := data[pos : pos+30]
		pos += 30
		sampleLens = append(sampleLens, be16(pos-30+22)*2)
		if buf[24]&0xf0 != 0 {
			return nil, fmt.Errorf("pin: bad finetune in sample %d", i+1)
		}
		repStart := be16(pos - 30 + 26) * 2
		repLen := be16(pos - 30 + 28) * 2
		s := Sample{
			Name:     strings.TrimRight(string(buf[:22]), "\x00"),
			Finetune: buf[24],
			Volume:   buf[25],
		}
		if !(repStart == 0 && repLen == 2) {
			s.HasRepeat = true
			s.RepStart = repStart
			s.RepLen = repLen
		}
		m.Samples = append(m.Samples, s)
	}
	songLen := int(data[pos])
	restart := data[pos+1]
	if restart == 127 {
		restart = 0
	}
	if songLen == 0 || songLen > 128 || int(restart) >= songLen {
		return nil, fmt.Errorf("pin: bad song length %d", songLen)
	}
	positions := data[pos+2 : pos+130]
	pos += 134
	numPatterns := 0
	for _, p := range positions {
		if int(p)+1 > numPatterns {
			numPatterns = int(p) + 1
		}
	}
	m.Positions = append([]uint8(nil), positions[:songLen]...)
	m.PosRestart = restart
	for i := 0; i < numPatterns; i++ {
		if pos+0x400 > len(data) {
			return nil, fmt.Errorf("pin: truncated pattern %d", i)
		}
		buf := data[pos : pos+0x400]
		pos += 0x400
		var pattern [64][4]Note
		for row := 0; row < 64; row++ {
			for ch := 0; ch < 4; ch++ {
				off := row<<4 | ch<<2
				note, err := decodeNote(binary.BigEndian.Uint32(buf[off : off+4]))
				if err != nil {
					return nil, err
				}
				pattern[row][ch] = note
			}
		}
		m.Patterns = append(m.Patterns, pattern)
	}
	for i := range m.Samples {
		n := sampleLens[i]
		if n <= 2 {
			continue
		}
		if pos+n > len(data) {
			return nil, fmt.Errorf("pin: truncated sample %d", i)
		}
		m.Samples[i].Data = append([]byte(nil), data[pos:pos+n]...)
		pos += n
	}
	return m, nil
}
