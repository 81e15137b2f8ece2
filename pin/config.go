package pin

// TableID selects one of the four playfields.
type TableID int

const (
	Table1 TableID = iota
	Table2
	Table3
	Table4
	NumTables
)

type Resolution int

const (
	ResNormal Resolution = iota
	ResHigh
	ResFull
)

type ScrollSpeed int

const (
	ScrollHard ScrollSpeed = iota
	ScrollMedium
	ScrollSoft
)

// RawSpeed is the smoothing factor fed into the scroll integrator.
func (s ScrollSpeed) RawSpeed() int16 {
	switch s {
	case ScrollHard:
		return 16
	case ScrollSoft:
		return 2
	default:
		return 6
	}
}

type Options struct {
	Balls       uint8
	AngleHigh   bool
	ScrollSpeed ScrollSpeed
	Resolution  Resolution
	NoMusic     bool
	Mono        bool
}

type HighScore struct {
	Score Bcd
	Name  [3]byte
}

type Config struct {
	Options    Options
	HighScores [NumTables][4]HighScore
}

// ConfigStore abstracts the persistence backend; load failures are expressed
// as a nil slice and fall back to defaults, saves may silently fail.
type ConfigStore interface {
	Load(name string) []byte
	Save(name string, data []byte)
}

func DefaultOptions() Options {
	return Options{
		Balls:       3,
		AngleHigh:   true,
		ScrollSpeed: ScrollMedium,
		Resolution:  ResNormal,
	}
}

func defaultHighScores() [NumTables][4]HighScore {
	hs := func(name string, score string) HighScore {
		var h HighScore
		copy(h.Name[:], name)
		h.Score = BcdFromASCII([]byte(score))
		return h
	}
	return [NumTables][4]HighScore{
		Table1: {
			hs("TSP", "50000000"),
			hs("ICE", "25000000"),
			hs("ANY", "10000000"),
			hs("J L", "5000000"),
		},
		Table2: {
			hs("TSP", "100000000"),
			hs("J L", "50000000"),
			hs("ICE", "25000000"),
			hs("ANY", "10000000"),
		},
		Table3: {
			hs("TSP", "50000000"),
			hs("ANY", "25000000"),
			hs("J L", "10000000"),
			hs("ICE", "5000000"),
		},
		Table4: {
			hs("TSP", "100000000"),
			hs("ICE", "50000000"),
			hs("ANY", "25000000"),
			hs("J L", "10000000"),
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Options:    DefaultOptions(),
		HighScores: defaultHighScores(),
	}
}

var hiFiles = [NumTables]string{"TABLE1.HI", "TABLE2.HI", "TABLE3.HI", "TABLE4.HI"}

// LoadConfig reads PINBALL.CFG and the per-table high score files, falling
// back to built-ins on any file that is missing or the wrong shape.
func LoadConfig(store ConfigStore) Config {
	res := DefaultConfig()
	if cfg := store.Load("PINBALL.CFG"); len(cfg) == 6 {
		res.Options = decodeOptions(cfg)
	}
	for table := Table1; table < NumTables; table++ {
		hi := store.Load(hiFiles[table])
		if len(hi) != 0x40 {
			continue
		}
		var scores [4]HighScore
		ok := true
		for i := range scores {
			entry := hi[i*0x10 : (i+1)*0x10]
			score, err := BcdFromBytes(entry[:12])
			if err != nil {
				ok = false
				break
			}
			scores[i].Score = score
			copy(scores[i].Name[:], entry[12:15])
		}
		if ok {
			res.HighScores[table] = scores
		}
	}
	return res
}

func decodeOptions(cfg []byte) Options {
	var o Options
	o.Balls = 3
	if cfg[0] == 1 {
		o.Balls = 5
	}
	o.AngleHigh = cfg[1] != 1
	switch cfg[2] {
	case 0:
		o.ScrollSpeed = ScrollHard
	case 2:
		o.ScrollSpeed = ScrollSoft
	default:
		o.ScrollSpeed = ScrollMedium
	}
	o.NoMusic = cfg[3] == 1
	switch cfg[4] {
	case 1:
		o.Resolution = ResHigh
	case 2:
		o.Resolution = ResFull
	default:
		o.Resolution = ResNormal
	}
	o.Mono = cfg[5] == 1
	return o
}

// Encode packs the options back into the six-byte on-disk form.
func (o Options) Encode() [6]byte {
	var raw [6]byte
	if o.Balls == 5 {
		raw[0] = 1
	}
	if !o.AngleHigh {
		raw[1] = 1
	}
	switch o.ScrollSpeed {
	case ScrollHard:
		raw[2] = 0
	case ScrollMedium:
		raw[2] = 1
	case ScrollSoft:
		raw[2] = 2
	}
	if o.NoMusic {
		raw[3] = 1
	}
	switch o.Resolution {
	case ResNormal:
		raw[4] = 0
	case ResHigh:
		raw[4] = 1
	case ResFull:
		raw[4] = 2
	}
	if o.Mono {
		raw[5] = 1
	}
	return raw
}

// Save writes PINBALL.CFG; IO errors are dropped, the next save may succeed.
func (o Options) Save(store ConfigStore) {
	raw := o.Encode()
	store.Save("PINBALL.CFG", raw[:])
}

// EncodeHighScores packs four records into the 64-byte on-disk form.
func EncodeHighScores(scores [4]HighScore) [0x40]byte {
	var raw [0x40]byte
	for i, s := range scores {
		copy(raw[i*0x10:], s.Score[:])
		copy(raw[i*0x10+12:], s.Name[:])
	}
	return raw
}

// SaveHighScores writes the table's high score file.
func SaveHighScores(table TableID, scores [4]HighScore, store ConfigStore) {
	raw := EncodeHighScores(scores)
	store.Save(hiFiles[table], raw[:])
}
