package pin

import (
	"math/rand"
	"time"
)

type kbdState int

const (
	kbdMain kbdState = iota
	kbdConfirmQuit
	kbdPaused
	kbdPausedConfirmQuit
	kbdGetName
)

// Table is the active playfield view: it owns all mutable game state and
// borrows the immutable asset bundle.
type Table struct {
	player     *Player
	sequencer  *TableSequencer
	assets     *Assets
	options    Options
	highScores [4]HighScore
	hifps      bool
	rng        *rand.Rand

	scroll    scrollState
	lights    lights
	push      pushState
	springPos uint8
	dm        dotMatrix
	script    scriptState
	tasks     []task
	ball      ballState
	cheat     cheatState
	flippers  []flipperState
	physmaps  [numLayers][]uint8
	materials [8]Material

	kickerSpeedThreshold int16
	kickerSpeedBoost     int16
	bumperSpeedBoost     int16
	matchTiming          [36]uint16

	inAttract           bool
	inGameStart         bool
	inPlunger           bool
	atSpring            bool
	inDrain             bool
	drained             bool
	gotTopScore         bool
	partyOn             bool
	specialPlungerEvent bool
	matchDigit          int // -1 when no match has run
	ballScoredPoints    bool
	tilted              bool
	tiltCounter         uint16
	silenceEffect       bool
	timerStop           bool
	blockDrain          bool
	gotHighScore        bool
	flushHighScores     bool
	nameBuf             []byte

	inMode          bool
	inModeHit       bool
	inModeRamp      bool
	pendingMode     bool
	pendingModeHit  bool
	pendingModeRamp bool
	modeTimeoutFrames uint8
	modeTimeoutSecs   uint8

	kbdState       kbdState
	pauseCycle     uint16
	optionChanged  bool
	flipperKey     [numFlipperSides]bool
	flipperPressed bool
	flippersEnabled bool
	spaceState      bool
	spacePressed    bool
	springDownState bool
	springReleased  bool
	touchSpring       int64 // touch id, -1 when none
	touchSpringOrigin int16
	touchFlipperLeft  int64
	touchFlipperRight int64
	touchSpace        int64
	startKeysActive bool
	startKey        int // players, 0 when none

	quitting bool
	fade     uint16

	curPlayer    uint8
	totalPlayers uint8
	curBall      uint8
	totalBalls   uint8
	extraBalls   uint8
	bonusMultEarly uint8
	bonusMultLate  uint8
	players        []playerState

	scoreMain            Bcd
	scoreBonus           Bcd
	scoreJackpot         Bcd
	scoreModeHit         Bcd
	scoreModeRamp        Bcd
	scoreRaisingMillions Bcd
	numCyclone           uint16
	numCycloneTarget     uint16
	bcdNumCyclone        Bcd
	scoreCycloneBonus    Bcd
	holdBonus            bool

	hitPos          [2]int16
	haveHitPos      bool
	hitBumper       int // bumper index, -1 when none
	rollTrigger     RollTrigger
	haveRollTrigger bool
	prevRollTrigger RollTrigger
	havePrevRoll    bool

	party  partyState
	speed  speedState
	show   showState
	stones stonesState
}

// NewTable mines the table executable and module and starts its mixer state.
// The caller wires the returned table's Mixer into the audio callback.
func NewTable(prg, module []byte, config Config, table TableID) (*Table, error) {
	assets, err := LoadTableAssets(prg, table)
	if err != nil {
		return nil, err
	}
	mod, err := LoadMod(module)
	if err != nil {
		return nil, err
	}
	options := config.Options
	sequencer := NewTableSequencer(
		assets.jingle(JingleAttract).Position,
		assets.PositionJingleStart,
		assets.jingle(JingleSilence).Position,
		options.NoMusic,
	)
	player := NewPlayer(mod, sequencer, 48000)

	const hifps = false
	t := &Table{
		player:     player,
		sequencer:  sequencer,
		assets:     assets,
		options:    options,
		highScores: config.HighScores[table],
		hifps:      hifps,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),

		scroll:    newScrollState(&options),
		lights:    newLights(assets),
		push:      newPushState(hifps),
		dm:        newDotMatrix(),
		script:    newScriptState(),
		ball:      newBallState(hifps),
		cheat:     cheatState{},
		physmaps:  clonePhysmaps(&assets.Physmaps),
		materials: prepMaterials(hifps),

		kickerSpeedThreshold: speedFix(300, hifps),
		kickerSpeedBoost:     speedFix(2000, hifps),
		bumperSpeedBoost:     speedFix(7000, hifps),
		matchTiming:          matchTiming(hifps),

		inAttract:       true,
		inPlunger:       true,
		inGameStart:     true,
		matchDigit:      -1,
		startKeysActive: true,
		fade:            0x100,

		curPlayer:      1,
		totalPlayers:   1,
		curBall:        1,
		totalBalls:     config.Options.Balls,
		bonusMultEarly: 1,
		bonusMultLate:  1,

		hitBumper:         -1,
		touchSpring:       -1,
		touchFlipperLeft:  -1,
		touchFlipperRight: -1,
		touchSpace:        -1,

		party:  newPartyState(),
		speed:  newSpeedState(),
		show:   newShowState(hifps),
		stones: newStonesState(),
	}
	t.flippers = make([]flipperState, len(assets.Flippers))
	for i := range t.flippers {
		t.flippers[i] = newFlipperState(&assets.Flippers[i], hifps)
	}
	t.ball.setPos(280, 525)
	t.startScript(ScriptInit)
	t.flippersPhysmapUpdate()
	return t, nil
}

// Mixer exposes the audio engine for the shell's callback.
func (t *Table) Mixer() *Player { return t.player }

// SeedRand pins the random source; tests use this.
func (t *Table) SeedRand(seed int64) {
	t.rng = rand.New(rand.NewSource(seed))
}

func clonePhysmaps(src *[numLayers][]uint8) [numLayers][]uint8 {
	var res [numLayers][]uint8
	for i := range src {
		res[i] = append([]uint8(nil), src[i]...)
	}
	return res
}

func matchTiming(hifps bool) [36]uint16 {
	if hifps {
		// the out-of-order run at the start is present in the original
		return [36]uint16{
			22, 28, 25, 25, 22, 19, 18, 15, 13, 11, 9, 9, 8, 8, 7, 7, 6, 6, 6, 6, 6, 5, 5,
			5, 5, 5, 5, 4, 4, 4, 4, 4, 4, 4, 3, 3,
		}
	}
	return [36]uint16{
		24, 23, 21, 21, 18, 16, 15, 13, 11, 9, 8, 7, 7, 6, 6, 6, 5, 5, 5, 5, 5, 4, 4,
		4, 4, 4, 4, 4, 4, 4, 3, 3, 3, 3, 3, 3,
	}
}

func (t *Table) pause() {
	t.dm.save()
	t.dm.clear()
	t.dm.setState(true)
	t.dmPuts(FontH13, DmCoord{X: 36, Y: 1}, []byte("GAME PAUSED"))
	t.kbdState = kbdPaused
	t.pauseCycle = 0
	t.player.Pause()
}

func (t *Table) unpause() {
	t.dm.restore()
	t.kbdState = kbdMain
	t.player.Unpause()
}

func (t *Table) toggleMusic() {
	if t.options.NoMusic {
		t.options.NoMusic = false
		bind := JingleMain
		if t.inPlunger {
			bind = JinglePlunger
		}
		t.sequencer.SetMusic(t.assets.jingle(bind).Position)
		t.sequencer.ForceEndLoop()
	} else {
		t.options.NoMusic = true
		t.playJingleBindForce(JingleSilence)
	}
	t.sequencer.SetNoMusic(t.options.NoMusic)
}

func (t *Table) Resolution() (int, int) {
	switch t.options.Resolution {
	case ResHigh:
		return 320, 350
	case ResFull:
		return 320, 576 + 33
	default:
		return 320, 240
	}
}

func (t *Table) FPS() int { return 60 }

func (t *Table) RunFrame() Action {
	switch {
	case t.kbdState == kbdPaused:
		t.pauseCycle++
		switch t.pauseCycle {
		case 120:
			t.dm.clear()
			t.dmPuts(FontH13, DmCoord{X: 32, Y: 1}, []byte("P TO UNPAUSE"))
		case 240:
			t.dm.clear()
			t.dmPuts(FontH13, DmCoord{X: 16, Y: 1}, []byte("ASMR FOR OPTIONS"))
		case 360:
			t.dm.clear()
			t.dmPuts(FontH13, DmCoord{X: 36, Y: 1}, []byte("GAME PAUSED"))
			t.pauseCycle = 0
		}
		if t.optionChanged {
			t.optionChanged = false
			return Action{Kind: ActionSaveOptions, Options: t.options}
		}
		return Action{}
	case t.kbdState == kbdPausedConfirmQuit:
		return Action{}
	case t.quitting:
		if t.fade != 0 {
			t.fade -= 2
		}
		t.player.SetMasterVolume(uint32(t.fade))
		if t.fade == 0 {
			return Action{Kind: ActionNavigate, Route: Route{}}
		}
		return Action{}
	}

	if t.inAttract {
		t.scroll.attractFrame()
		t.lights.attractFrame(t.assets)
		t.dm.blinkFrame()
		if t.startKey != 0 {
			players := uint8(t.startKey)
			t.startKey = 0
			t.totalPlayers = players
			t.players = make([]playerState, players)
			for i := range t.players {
				t.players[i] = newPlayerState(t.assets.Table)
			}
			t.startScript(ScriptGameStart)
			t.playSfxBind(SfxGameStart)
			t.inAttract = false
			t.initGame()
			jingle := t.assets.jingle(JingleGameStart)
			plunger := JinglePlunger
			if t.options.NoMusic {
				plunger = JingleSilence
			}
			t.sequencer.PlayJingle(jingle, true, t.assets.jingle(plunger).Position)
			t.issueBall()
			t.addTask(taskSetStartKeysActive)
		}
	} else {
		_, ballY := t.ball.pos()
		t.scroll.update(int16(ballY))
		if t.startKey != 0 {
			players := uint8(t.startKey)
			t.startKey = 0
			t.totalPlayers = players
			t.players = make([]playerState, players)
			for i := range t.players {
				t.players[i] = newPlayerState(t.assets.Table)
			}
			t.startScript(ScriptGameStartPlayers)
			t.playSfxBind(SfxGameStart)
			t.addTask(taskSetStartKeysActive)
		}
		if !t.cheat.slowdown {
			t.physicsFrame()
		}
		t.physicsFrame()
		t.physicsFrame()
		t.physicsFrame()
		if t.tiltCounter != 0 {
			t.tiltCounter--
		}
		t.scoreBumper()
		t.ballGravity()
		t.checkTransitions()
		if t.drained && !t.inDrain {
			t.ball.teleportFreeze(LayerGround, 280, 525)
			t.flippersEnabled = false
			t.inMode = false
			t.inModeHit = false
			t.inModeRamp = false
			if !t.blockDrain {
				t.inDrain = true
				t.drainedHook()
			}
		}
		t.frameHook()
		t.doRollTriggers()
		t.doHitTriggers()
		if t.flipperPressed {
			t.flipperPressed = false
			t.flipperPressedHook()
		}
		if t.spacePressed {
			t.spacePressed = false
			if !t.cheat.noTilt && !t.inPlunger && !t.drained && !t.tilted {
				t.tiltCounter += 60
				if t.tiltCounter > 120 {
					t.tilted = true
					t.flippersEnabled = false
					t.playJingleBindSilence(JingleTilt)
					t.startScript(ScriptTilt)
					t.lights.tilt()
					t.party.secretDropRelease = true
				} else if t.tiltCounter > 60 {
					t.playJingleBind(JingleWarnTilt)
				}
			}
		}
		t.dm.blinkFrame()
		t.tasksFrame()
		t.lights.blinkFrame()
		if t.springReleased && t.springPos != 0 {
			t.springRelease()
			t.springReleased = false
		} else if t.springDownState && t.springPos < 0x20 {
			t.springPos++
		}
	}
	t.scriptFrame()
	if t.flushHighScores {
		t.flushHighScores = false
		return Action{Kind: ActionSaveHighScores, Table: t.assets.Table, HighScores: t.highScores}
	}
	if t.optionChanged {
		t.optionChanged = false
		return Action{Kind: ActionSaveOptions, Options: t.options}
	}
	return Action{}
}

func (t *Table) frameHook() {
	switch t.assets.Table {
	case Table1:
		t.partyFrame()
	case Table2:
		t.speedFrame()
	case Table3:
		t.showFrame()
	case Table4:
		t.stonesFrame()
	}
}

func (t *Table) flipperPressedHook() {
	switch t.assets.Table {
	case Table1:
		t.partyFlipperPressed()
	case Table2:
		t.speedFlipperPressed()
	case Table3:
		t.showFlipperPressed()
	case Table4:
		t.stonesFlipperPressed()
	}
}

func (t *Table) drainedHook() {
	switch t.assets.Table {
	case Table1:
		t.partyDrained()
	case Table2:
		t.speedDrained()
	case Table3:
		t.showDrained()
	case Table4:
		t.stonesDrained()
	}
}
