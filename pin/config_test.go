package pin

import (
	"bytes"
	"testing"
)

type memStore map[string][]byte

func (m memStore) Load(name string) []byte      { return m[name] }
func (m memStore) Save(name string, data []byte) { m[name] = append([]byte(nil), data...) }

func TestConfigRoundTrip(t *testing.T) {
	raws := [][6]byte{
		{0, 0, 0, 0, 0, 0},
		{1, 1, 2, 1, 2, 1},
		{0, 1, 0, 0, 1, 0},
		{1, 0, 1, 1, 0, 1},
	}
	for _, raw := range raws {
		got := decodeOptions(raw[:]).Encode()
		if got != raw {
			t.Errorf("round trip %v -> %v", raw, got)
		}
	}
}

func TestHighScoreRoundTrip(t *testing.T) {
	store := memStore{}
	cfg := DefaultConfig()
	SaveHighScores(Table2, cfg.HighScores[Table2], store)

	raw := store["TABLE2.HI"]
	if len(raw) != 0x40 {
		t.Fatalf("wrote %d bytes", len(raw))
	}
	loaded := LoadConfig(store)
	if loaded.HighScores[Table2] != cfg.HighScores[Table2] {
		t.Error("high scores did not survive the round trip")
	}

	// record layout: 12 BCD digits, 3 name bytes, 1 pad
	if raw[15] != 0 {
		t.Error("missing pad byte")
	}
	if !bytes.Equal(raw[12:15], []byte("TSP")) {
		t.Errorf("name bytes %q", raw[12:15])
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(memStore{})
	if cfg.Options != DefaultOptions() {
		t.Errorf("options = %+v", cfg.Options)
	}
	if cfg.Options.Balls != 3 || !cfg.Options.AngleHigh || cfg.Options.NoMusic {
		t.Error("defaults are not 3 balls, high angle, music on")
	}
}

func TestLoadConfigCorrupt(t *testing.T) {
	store := memStore{
		"PINBALL.CFG": []byte{1, 2, 3},          // wrong length
		"TABLE1.HI":   bytes.Repeat([]byte{0xff}, 0x40), // digits out of range
	}
	cfg := LoadConfig(store)
	if cfg.Options != DefaultOptions() {
		t.Error("corrupt options not defaulted")
	}
	if cfg.HighScores[Table1] != DefaultConfig().HighScores[Table1] {
		t.Error("corrupt high scores not defaulted")
	}
}
