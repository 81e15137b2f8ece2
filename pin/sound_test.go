package pin

import (
	"encoding/binary"
	"math/rand"
	"sync"
	"testing"
)

// buildMod assembles a two-position module with one looping sample.
func buildMod(notes func(pattern, row, ch int) uint32) []byte {
	data := make([]byte, 0)
	name := make([]byte, 20)
	copy(name, "TEST SONG")
	data = append(data, name...)
	for i := 0; i < 31; i++ {
		hdr := make([]byte, 30)
		copy(hdr, "SAMPLE")
		if i == 0 {
			binary.BigEndian.PutUint16(hdr[22:], 0x40) // length in words
			hdr[25] = 0x40                             // volume
			binary.BigEndian.PutUint16(hdr[26:], 0)    // repeat start
			binary.BigEndian.PutUint16(hdr[28:], 0x20) // repeat length in words
		} else {
			binary.BigEndian.PutUint16(hdr[28:], 1) // no repeat
		}
		data = append(data, hdr...)
	}
	data = append(data, 2, 0) // song length, restart
	positions := make([]byte, 128)
	positions[1] = 1
	data = append(data, positions...)
	data = append(data, 0, 0, 0, 0) // M.K. tag area, unused by the loader
	for p := 0; p < 2; p++ {
		for row := 0; row < 64; row++ {
			for ch := 0; ch < 4; ch++ {
				var cell [4]byte
				binary.BigEndian.PutUint32(cell[:], notes(p, row, ch))
				data = append(data, cell[:]...)
			}
		}
	}
	data = append(data, make([]byte, 0x80)...) // sample 1 body
	return data
}

func TestLoadMod(t *testing.T) {
	// C-1 (period 856) with sample 1 on channel 0 of row 0
	m, err := LoadMod(buildMod(func(p, row, ch int) uint32 {
		if p == 0 && row == 0 && ch == 0 {
			return 856<<16 | 1<<12
		}
		return 0
	}))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "TEST SONG" {
		t.Errorf("name %q", m.Name)
	}
	if len(m.Positions) != 2 || len(m.Patterns) != 2 {
		t.Fatalf("positions %d patterns %d", len(m.Positions), len(m.Patterns))
	}
	note := m.Patterns[0][0][0]
	if note.Period != 0 || note.Sample != 1 {
		t.Errorf("note = %+v", note)
	}
	s := m.Samples[1]
	if !s.HasRepeat || s.RepStart != 0 || s.RepLen != 0x40 {
		t.Errorf("sample repeat = %+v", s)
	}
	if len(s.Data) != 0x80 {
		t.Errorf("sample body %d bytes", len(s.Data))
	}
}

func TestDecodeNoteEffects(t *testing.T) {
	tests := []struct {
		name   string
		raw    uint32
		check  func(Note) bool
	}{
		{"arpeggio", 0x047, func(n Note) bool { return n.Tone == toneArpeggio && n.ArpA == 4 && n.ArpB == 7 }},
		{"porta up", 0x103, func(n Note) bool { return n.Tone == tonePortamento && n.PortTarget == 35 && n.PortSpeed == 3 }},
		{"porta down", 0x205, func(n Note) bool { return n.Tone == tonePortamento && n.PortTarget == 0 }},
		{"tone porta clears trigger", 856<<16 | 1<<12 | 0x305, func(n Note) bool {
			return n.Tone == tonePortamento && n.PortTarget == 0 && n.Period == -1 && n.Sample == 0 && n.Vol == volReset
		}},
		{"vibrato", 0x4a3, func(n Note) bool { return n.Tone == toneVibrato && n.VibRate == 0xa && n.VibDepth == 3 }},
		{"vol slide up", 0xa30, func(n Note) bool { return n.Vol == volSlide && n.VolSlide == 3 }},
		{"vol slide down", 0xa02, func(n Note) bool { return n.Vol == volSlide && n.VolSlide == -2 }},
		{"jump", 0xb07, func(n Note) bool { return n.Misc == miscPositionJump && n.MiscArg == 7 }},
		{"set volume", 0xc20, func(n Note) bool { return n.Vol == volSet && n.VolValue == 0x20 }},
		{"break", 0xd02, func(n Note) bool { return n.Misc == miscPatternBreak && n.MiscArg == 2 }},
		{"retrig", 0xe93, func(n Note) bool { return n.Misc == miscRetrigNote && n.MiscArg == 3 }},
		{"speed", 0xf06, func(n Note) bool { return n.Misc == miscSetSpeed && n.MiscArg == 6 }},
		{"sample offset", 0x910, func(n Note) bool { return n.Misc == miscSetSampleOffset && n.MiscArg == 0x10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := decodeNote(tt.raw)
			if err != nil {
				t.Fatal(err)
			}
			if !tt.check(n) {
				t.Errorf("note = %+v", n)
			}
		})
	}
	if _, err := decodeNote(0xe13); err == nil {
		t.Error("accepted unknown E effect")
	}
}

func TestSimpleSequencerWraps(t *testing.T) {
	m := &Mod{Positions: []uint8{0, 1, 2}}
	s := NewSimpleSequencer(m)
	got := []uint8{s.NextPosition(), s.NextPosition(), s.NextPosition(), s.NextPosition()}
	want := []uint8{0, 1, 2, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("positions %v, want %v", got, want)
		}
	}
}

func TestTableSequencerJingle(t *testing.T) {
	s := NewTableSequencer(0x20, 0x06, 0x00, false)
	if pos, ok := s.CheckInterrupt(); !ok || pos != 0x20 {
		t.Fatalf("initial interrupt = %v %v", pos, ok)
	}
	if !s.PlayJingle(Jingle{Position: 0x30, Repeat: 2, Priority: 5}, false, NoMusicOverride) {
		t.Fatal("jingle rejected")
	}
	if !s.JinglePlaying() {
		t.Error("jingle not playing")
	}
	if s.PlayJingle(Jingle{Position: 0x31, Repeat: 1, Priority: 4}, false, NoMusicOverride) {
		t.Error("lower priority jingle accepted")
	}
	if !s.PlayJingle(Jingle{Position: 0x31, Repeat: 1, Priority: 1}, true, NoMusicOverride) {
		t.Error("forced jingle rejected")
	}
	if pos, ok := s.CheckInterrupt(); !ok || pos != 0x31 {
		t.Fatalf("interrupt = %v %v", pos, ok)
	}
	// repeat == 1: the next jump falls back to the saved music position
	if got := s.Jump(0x31); got != 0x20 {
		t.Errorf("jump = %#x, want 0x20", got)
	}
	if s.Priority() != 0 || s.JinglePlaying() {
		t.Error("priority not reset after the jingle ended")
	}
}

func TestTableSequencerNoMusic(t *testing.T) {
	s := NewTableSequencer(0x20, 0x06, 0x01, true)
	s.CheckInterrupt()
	// any target below the jingle start gets rewritten to silence
	if got := s.Jump(0x03); got != 0x01 {
		t.Errorf("jump = %#x, want the silence position", got)
	}
	if got := s.Jump(0x10); got != 0x10 {
		t.Errorf("jump = %#x, want 0x10", got)
	}
}

func TestTableSequencerPriorityMonotone(t *testing.T) {
	s := NewTableSequencer(0x20, 0x06, 0x00, false)
	var mu sync.Mutex
	var violations int
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for j := 0; j < 125; j++ {
				prio := uint8(rng.Intn(256))
				before := s.Priority()
				if s.PlayJingle(Jingle{Position: 0x10, Repeat: 1, Priority: prio}, false, NoMusicOverride) {
					if prio < before {
						// acceptance below the priority seen just before the
						// call means another writer lowered it in between,
						// which only ResetPriority may do - and nobody calls
						// it here.
						mu.Lock()
						violations++
						mu.Unlock()
					}
				}
			}
		}(int64(i))
	}
	wg.Wait()
	if violations != 0 {
		t.Errorf("%d accepted jingles had priority below the prior state", violations)
	}
}

func TestPlayerSilentWhenPaused(t *testing.T) {
	m, err := LoadMod(buildMod(func(p, row, ch int) uint32 {
		if row == 0 && ch == 0 {
			return 856<<16 | 1<<12
		}
		return 0
	}))
	if err != nil {
		t.Fatal(err)
	}
	p := NewPlayer(m, nil, 48000)
	p.Pause()
	out := make([]float32, 256)
	out[0] = 1
	p.MakeSamples(out)
	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample %d = %v while paused", i, v)
		}
	}
}

func TestPlayerTicksAdvance(t *testing.T) {
	m, err := LoadMod(buildMod(func(p, row, ch int) uint32 { return 0 }))
	if err != nil {
		t.Fatal(err)
	}
	p := NewPlayer(m, nil, 48000)
	out := make([]float32, 48000/50*2*3)
	p.MakeSamples(out)
	if p.Ticks() < 3 {
		t.Errorf("ticks = %d after three ticks worth of samples", p.Ticks())
	}
}
