package pin

import (
	"fmt"
	"runtime"
)

// extractError carries an extraction assertion out of the decoders; the load
// boundary turns it into an IncompatibleBinary error naming the extractor.
type extractError struct {
	what string
}

// assert is the extraction-time assertion: any failure means the binary is
// not one of the supported table executables.
func assert(cond bool, what string) {
	if !cond {
		panic(extractError{what})
	}
}

// Layer selects the ground or overhead plane of the playfield.
type Layer int

const (
	LayerGround Layer = iota
	LayerOverhead
	numLayers
)

// grid is a small byte rectangle cut out of (or patched into) a physmap.
type grid struct {
	w, h int
	data []uint8
}

func newGrid(w, h int) grid {
	return grid{w: w, h: h, data: make([]uint8, w*h)}
}

func (g grid) at(x, y int) uint8      { return g.data[y*g.w+x] }
func (g grid) set(x, y int, v uint8)  { g.data[y*g.w+x] = v }

// Assets is the immutable per-table bundle mined from the executable.
type Assets struct {
	Table TableID
	Exe   *MzExe

	MainBoard *Image
	Spring    *Image
	Ball      *Image
	Occmaps   [numLayers][]uint8 // 320x576, one byte per pixel, 0/1
	Physmaps  [numLayers][]uint8 // 320x576, material low nibble, ramp high

	PhysmapPatches [numPhysmapBinds]*PhysmapPatch
	Ramps          []Ramp
	BallOutline    []BallOutlinePixel
	OutlineByAngle [][2]uint16
	SineTable      [0xa00]int16

	Lights        []Light
	AttractLights []AttractLight
	LightBinds    [numLightBinds][]int
	DmPalette     DmPalette
	DmFonts       [numDmFonts]map[byte][]uint8
	DmTower       [][160]bool

	Flippers []Flipper

	TransitionsDown []Rect
	TransitionsUp   []Rect
	Bumpers         []Bumper
	RollTriggers     [numLayers][]RollTriggerArea
	RollTriggersTilt [numLayers][]RollTriggerArea
	HitTriggers      []HitTriggerArea

	JingleBinds         [numJingleBinds]*Jingle
	SfxBinds            [numSfxBinds]*Sfx
	PositionJingleStart uint8

	Scripts     []Uop
	Msgs        [][]byte
	Anims       []DmAnim
	AnimFrames  []DmAnimFrame
	ScriptBinds [numScriptBinds]ScriptPos
	Cheats      []Cheat
	Effects     [numEffectBinds]*Effect

	ScoreJackpotInit  Bcd
	ScoreJackpotIncr  Bcd
	ScoreModeHitIncr  Bcd
	ScoreModeRampIncr Bcd
	IssueBallPos        [2]uint16
	IssueBallReleasePos [2]uint16
}

// LoadTableAssets mines every static asset out of a table executable. Any
// deviation from the expected byte patterns aborts with IncompatibleBinary;
// reads past the image end with MalformedImage.
func LoadTableAssets(prg []byte, table TableID) (a *Assets, err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case extractError:
				err = fmt.Errorf("%w (%s)", incompatible(table, e.what), "extraction assertion")
			case runtime.Error:
				err = fmt.Errorf("%w: table %d: %s", ErrMalformedImage, int(table)+1, e)
			default:
				panic(r)
			}
			a = nil
		}
	}()

	exe, err := LoadMzExe(prg)
	if err != nil {
		return nil, err
	}
	a = &Assets{Table: table, Exe: exe}

	a.Lights, a.DmPalette = extractLights(exe, table)
	a.AttractLights = extractAttractLights(exe, table)
	a.LightBinds = extractLightBinds(table)
	a.MainBoard = extractMainBoard(exe, table)
	a.Occmaps = extractOccmaps(exe, table)
	a.Spring = &Image{W: 10, H: 23, Data: extractSpring(exe, table), Cmap: a.MainBoard.Cmap}
	a.Ball = &Image{W: 15, H: 15, Data: extractBall(exe, table), Cmap: a.MainBoard.Cmap}

	a.Physmaps = extractPhysmaps(exe, table)
	a.PhysmapPatches = extractPhysmapPatches(exe, table, &a.Physmaps)
	a.SineTable = extractSineTable(exe, table)
	a.DmFonts = extractDmFonts(exe, table)
	if table == Table4 {
		a.DmTower = extractDmTower(exe)
	}
	a.Flippers = extractFlippers(exe, table, a.MainBoard, &a.Physmaps)
	a.Ramps = extractRamps(exe, table)
	a.BallOutline = extractBallOutline(exe, table)
	a.OutlineByAngle = outlineByAngle(a.BallOutline)

	a.JingleBinds = extractJingleBinds(exe, table)
	a.SfxBinds = extractSfxBinds(exe, table)
	a.PositionJingleStart = [NumTables]uint8{0x06, 0x0a, 0x07, 0x0a}[table]

	var uopsByAddr map[uint16]ScriptPos
	a.Scripts, uopsByAddr, a.Msgs, a.Anims, a.AnimFrames = extractScripts(exe, table)
	a.ScriptBinds = extractScriptBinds(table, uopsByAddr)
	a.Cheats = extractCheats(table, uopsByAddr)
	a.Effects = extractEffects(exe, table, uopsByAddr)

	a.ScoreJackpotInit = [NumTables]Bcd{
		BcdFromASCII([]byte("10000000")),
		BcdFromASCII([]byte("5000000")),
		BcdFromASCII([]byte("10000000")),
		BcdFromASCII([]byte("10000000")),
	}[table]
	a.ScoreJackpotIncr = [NumTables]Bcd{
		BcdFromASCII([]byte("50000")),
		BcdFromASCII([]byte("100000")),
		BcdFromASCII([]byte("100000")),
		BcdFromASCII([]byte("100000")),
	}[table]
	a.ScoreModeHitIncr = [NumTables]Bcd{
		BcdFromASCII([]byte("1000000")),
		BcdFromASCII([]byte("100000")),
		BcdFromASCII([]byte("500000")),
		BcdFromASCII([]byte("1000000")),
	}[table]
	a.ScoreModeRampIncr = [NumTables]Bcd{
		BcdFromASCII([]byte("5000000")),
		BcdFromASCII([]byte("5000000")),
		BcdFromASCII([]byte("1000000")),
		BcdFromASCII([]byte("5000000")),
	}[table]
	a.IssueBallPos = [NumTables][2]uint16{
		{282, 530}, {285, 530}, {284, 530}, {280, 525},
	}[table]
	a.IssueBallReleasePos = [NumTables][2]uint16{
		{297, 530}, {300, 530}, {299, 530}, {295, 525},
	}[table]

	a.TransitionsDown, a.TransitionsUp = extractTransitions(exe, table)
	a.Bumpers = extractBumpers(exe, table)
	a.RollTriggers, a.RollTriggersTilt = extractRollTriggers(exe, table)
	a.HitTriggers = extractHitTriggers(exe, table)

	return a, nil
}

func outlineByAngle(outline []BallOutlinePixel) [][2]uint16 {
	sorted := append([]BallOutlinePixel(nil), outline...)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].Angle < sorted[j-1].Angle; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	res := make([][2]uint16, len(sorted))
	for i, p := range sorted {
		res[i] = [2]uint16{p.X, p.Y}
	}
	return res
}

// Jingle for the bind, which must exist for this table.
func (a *Assets) jingle(bind JingleBind) Jingle {
	j := a.JingleBinds[bind]
	if j == nil {
		panic(fmt.Sprintf("pin: jingle bind %d missing", bind))
	}
	return *j
}

func (a *Assets) effect(bind EffectBind) Effect {
	e := a.Effects[bind]
	if e == nil {
		panic(fmt.Sprintf("pin: effect bind %d missing", bind))
	}
	return *e
}
