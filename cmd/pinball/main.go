package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/flga/pinball/pin"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

// fileStore persists PINBALL.CFG and the high score files next to the
// original assets. Save errors are dropped; the next attempt may succeed.
type fileStore struct {
	dir string
}

func (s fileStore) Load(name string) []byte {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil
	}
	return data
}

func (s fileStore) Save(name string, data []byte) {
	os.WriteFile(filepath.Join(s.dir, name), data, 0644)
}

var tablePrgs = [pin.NumTables]string{"TABLE1.PRG", "TABLE2.PRG", "TABLE3.PRG", "TABLE4.PRG"}
var tableMods = [pin.NumTables]string{"TABLE1.MOD", "TABLE2.MOD", "TABLE3.MOD", "TABLE4.MOD"}

func initSDL() (func(), error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return func() {}, fmt.Errorf("initSDL: unable to init sdl: %s", err)
	}
	return sdl.Quit, nil
}

func run(dataDir string, table int, touch bool) error {
	store := fileStore{dir: dataDir}
	config := pin.LoadConfig(store)

	quitSDL, err := initSDL()
	if err != nil {
		return err
	}
	defer quitSDL()

	audio := &audioEngine{}
	if err := audio.init(); err != nil {
		// keep playing without audio; the sequencer still ticks
		fmt.Fprintln(os.Stderr, err)
		audio = nil
	} else {
		defer audio.quit()
	}

	engine, err := newEngine("Pinball Fantasies", store, config, audio, touch)
	if err != nil {
		return err
	}
	defer engine.destroy()

	var route *pin.Route
	if table != 0 {
		route = &pin.Route{Table: pin.TableID(table - 1), ToTable: true}
	}
	return engine.run(route)
}

func main() {
	touch := flag.Bool("touch", false, "show the on-screen touch overlay bars")
	flag.Parse()

	dataDir := flag.Arg(0)
	if dataDir == "" {
		fmt.Fprintln(os.Stderr, "usage: pinball [-touch] DATA_DIR [TABLE]")
		os.Exit(2)
	}
	table := 0
	if arg := flag.Arg(1); arg != "" {
		if _, err := fmt.Sscanf(arg, "%d", &table); err != nil || table < 1 || table > 4 {
			fmt.Fprintln(os.Stderr, "table must be 1..4")
			os.Exit(2)
		}
	}

	if err := run(dataDir, table, *touch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
