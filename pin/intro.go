package pin

// introState is the attract screen's phase.
type introState int

const (
	introSlides introState = iota
	introInitDelay
	introTablesGap
	introTablesWarpIn
	introTables
	introTablesWarpOut
	introTablesFadeOut
	introTextGap
	introTextFadeIn
	introText
	introTextFadeOut
	introOptionsGap
	introOptionsFadeIn
	introOptions
	introOptionsFadeOut
	introFadeOut
)

type slideState int

const (
	slideGap slideState = iota
	slideFadeIn
	slideShow
	slideFadeOut
)

// Intro is the attract / options / high-score view. It alternates table
// previews with text pages until the player picks a table or quits.
type Intro struct {
	player  *Player
	assets  *IntroAssets
	config  Config
	state   introState
	slide   int
	sstate  slideState
	counter uint16
	fade    uint16 // 0..0x100

	textPage   int // 0 = high scores (tables 1+2), 1 = high scores (3+4), 2 = title and key help
	tableShown TableID
	optionRow  int

	pendingAction Action
	havePending   bool
	pendingKey    Key
}

// NewIntro mines the intro art and starts the intro music with the simple
// looping sequencer. A non-nil table skips the slides and resumes on that
// table's text page.
func NewIntro(prg, module []byte, config Config, fromTable *TableID) (*Intro, error) {
	assets, err := LoadIntroAssets(prg)
	if err != nil {
		return nil, err
	}
	mod, err := LoadMod(module)
	if err != nil {
		return nil, err
	}
	in := &Intro{
		player: NewPlayer(mod, nil, 48000),
		assets: assets,
		config: config,
	}
	if fromTable != nil {
		in.state = introInitDelay
		if *fromTable >= Table3 {
			in.textPage = 1
		}
	}
	return in, nil
}

// Mixer exposes the audio engine for the shell's callback.
func (in *Intro) Mixer() *Player { return in.player }

func (in *Intro) Resolution() (int, int) {
	if in.config.Options.Resolution == ResFull {
		return 640, 960
	}
	return 640, 480
}

func (in *Intro) FPS() int { return 60 }

const (
	slideGapFrames  = 30
	slideFadeFrames = 0x20
	tablesShow      = 420
	textShow        = 420
	gapFrames       = 20
	warpFrames      = 0x20
)

func (in *Intro) RunFrame() Action {
	if in.havePending {
		in.havePending = false
		return in.pendingAction
	}
	key := in.pendingKey
	in.pendingKey = KeyNone

	// a table pick works from any state
	if key >= KeyDigit1 && key <= KeyDigit4 {
		return in.navigate(TableID(key - KeyDigit1))
	}
	if key >= KeyF1 && key <= KeyF4 {
		return in.navigate(TableID(key - KeyF1))
	}

	switch in.state {
	case introSlides:
		in.runSlides(key)
	case introInitDelay:
		in.counter++
		if in.counter == 30 {
			in.enter(introTextGap)
		}
	case introTablesGap:
		in.counter++
		if in.counter == gapFrames {
			in.enter(introTablesWarpIn)
		}
	case introTablesWarpIn:
		in.fade += 8
		if in.fade >= 0x100 {
			in.fade = 0x100
			in.enter(introTables)
		}
	case introTables:
		in.counter++
		switch {
		case key == KeyEscape:
			return Action{Kind: ActionExit}
		case key == KeyLetter('O'):
			in.enter(introTablesWarpOut)
			in.textPage = -1
		case key == KeySpace || in.counter == tablesShow:
			in.enter(introTablesWarpOut)
		}
	case introTablesWarpOut:
		if in.fade >= 8 {
			in.fade -= 8
		} else {
			in.fade = 0
			in.tableShown = (in.tableShown + 1) % NumTables
			if in.textPage < 0 {
				in.enter(introOptionsGap)
				in.textPage = 0
			} else {
				in.enter(introTextGap)
			}
		}
	case introTextGap:
		in.counter++
		if in.counter == gapFrames {
			in.enter(introTextFadeIn)
		}
	case introTextFadeIn:
		in.fade += 8
		if in.fade >= 0x100 {
			in.fade = 0x100
			in.enter(introText)
		}
	case introText:
		in.counter++
		switch {
		case key == KeyEscape:
			return Action{Kind: ActionExit}
		case key == KeyLetter('O'):
			in.enter(introTextFadeOut)
			in.textPage = -1
		case key == KeySpace || in.counter == textShow:
			in.enter(introTextFadeOut)
		}
	case introTextFadeOut:
		if in.fade >= 8 {
			in.fade -= 8
		} else {
			in.fade = 0
			if in.textPage < 0 {
				in.enter(introOptionsGap)
				in.textPage = 0
			} else {
				in.textPage = (in.textPage + 1) % 3
				in.enter(introTablesGap)
			}
		}
	case introOptionsGap:
		in.counter++
		if in.counter == gapFrames {
			in.enter(introOptionsFadeIn)
		}
	case introOptionsFadeIn:
		in.fade += 8
		if in.fade >= 0x100 {
			in.fade = 0x100
			in.enter(introOptions)
		}
	case introOptions:
		if done, action := in.handleOptionsKey(key); done {
			return action
		}
	case introOptionsFadeOut:
		if in.fade >= 8 {
			in.fade -= 8
		} else {
			in.fade = 0
			in.enter(introTablesGap)
		}
	case introFadeOut:
		if in.fade >= 8 {
			in.fade -= 8
			in.player.SetMasterVolume(uint32(in.fade))
		} else {
			in.havePending = false
			return in.pendingAction
		}
	}
	return Action{}
}

func (in *Intro) enter(state introState) {
	in.state = state
	in.counter = 0
}

func (in *Intro) navigate(table TableID) Action {
	in.pendingAction = Action{
		Kind:  ActionNavigate,
		Route: Route{Table: table, ToTable: true},
	}
	in.enter(introFadeOut)
	return Action{}
}

func (in *Intro) runSlides(key Key) {
	if len(in.assets.Slides) == 0 || key == KeySpace || key == KeyEnter {
		in.enter(introTablesGap)
		in.fade = 0
		return
	}
	switch in.sstate {
	case slideGap:
		in.counter++
		if in.counter == slideGapFrames {
			in.sstate = slideFadeIn
			in.counter = 0
			in.fade = 0
		}
	case slideFadeIn:
		in.fade += 8
		if in.fade >= 0x100 {
			in.fade = 0x100
			in.sstate = slideShow
			in.counter = 0
		}
	case slideShow:
		in.counter++
		if in.counter == 180 {
			in.sstate = slideFadeOut
		}
	case slideFadeOut:
		if in.fade >= 8 {
			in.fade -= 8
		} else {
			in.fade = 0
			in.slide++
			in.sstate = slideGap
			in.counter = 0
			if in.slide == len(in.assets.Slides) {
				in.enter(introTablesGap)
			}
		}
	}
}

func (in *Intro) handleOptionsKey(key Key) (bool, Action) {
	o := &in.config.Options
	switch key {
	case KeyUp:
		if in.optionRow > 0 {
			in.optionRow--
		}
	case KeyDown:
		if in.optionRow < 5 {
			in.optionRow++
		}
	case KeySpace, KeyEnter:
		switch in.optionRow {
		case 0:
			if o.Balls == 3 {
				o.Balls = 5
			} else {
				o.Balls = 3
			}
		case 1:
			o.AngleHigh = !o.AngleHigh
		case 2:
			o.ScrollSpeed = (o.ScrollSpeed + 1) % 3
		case 3:
			o.NoMusic = !o.NoMusic
		case 4:
			o.Resolution = (o.Resolution + 1) % 3
		case 5:
			o.Mono = !o.Mono
		}
	case KeyEscape:
		in.enter(introOptionsFadeOut)
		in.pendingAction = Action{Kind: ActionSaveOptions, Options: *o}
		in.havePending = true
	}
	return false, Action{}
}

func (in *Intro) HandleKey(key Key, pressed bool) {
	if pressed {
		in.pendingKey = key
	}
}

func (in *Intro) HandleTouch(id uint64, phase TouchPhase, x, y int) {
	if phase == TouchStarted {
		in.pendingKey = KeySpace
	}
}

// blit draws an image doubled horizontally, centered in the 640-wide frame.
func (in *Intro) blit(data []uint8, img *Image, pal []RGB) {
	_, h := in.Resolution()
	x0 := (320 - img.W) / 2
	y0 := (h/2 - img.H) / 2
	for y := 0; y < img.H; y++ {
		dy := (y0 + y) * 2
		if dy+1 >= h {
			break
		}
		for x := 0; x < img.W; x++ {
			pix := img.At(x, y)
			dx := (x0 + x) * 2
			data[dy*640+dx] = pix
			data[dy*640+dx+1] = pix
			data[(dy+1)*640+dx] = pix
			data[(dy+1)*640+dx+1] = pix
		}
	}
	copy(pal, img.Cmap)
	introPalFixup(pal)
}

func (in *Intro) text(data []uint8, x, y int, msg string, color uint8) {
	for _, c := range []byte(msg) {
		glyph, ok := cgaFont[c]
		if !ok {
			glyph = cgaFont[' ']
		}
		for gy := 0; gy < 8; gy++ {
			for gx := 0; gx < 8; gx++ {
				if glyph[gy]<<uint(gx)&0x80 == 0 {
					continue
				}
				dx := (x + gx) * 2
				dy := y + gy
				if dx+1 < 640 {
					data[dy*640+dx] = color
					data[dy*640+dx+1] = color
				}
			}
		}
		x += 8
	}
}

func (in *Intro) Render(data []uint8, pal []RGB) {
	for i := range data {
		data[i] = 0
	}
	for i := range pal {
		pal[i] = RGB{}
	}
	pal[1] = RGB{255, 255, 255}
	pal[2] = RGB{80, 80, 120}

	switch in.state {
	case introSlides:
		if in.slide < len(in.assets.Slides) {
			in.blit(data, in.assets.Slides[in.slide], pal)
		}
	case introTablesGap, introTablesWarpIn, introTables, introTablesWarpOut, introTablesFadeOut:
		in.blit(data, in.assets.Previews[in.tableShown], pal)
		in.text(data, 100, 420, "PRESS 1-4 TO PLAY", 1)
	case introTextGap, introTextFadeIn, introText, introTextFadeOut, introInitDelay:
		in.renderTextPage(data)
	case introOptionsGap, introOptionsFadeIn, introOptions, introOptionsFadeOut:
		in.renderOptionsPage(data)
	case introFadeOut:
		in.blit(data, in.assets.Previews[in.tableShown], pal)
	}

	if in.fade != 0x100 {
		for i, color := range pal {
			pal[i] = RGB{
				uint8(uint16(color.R) * in.fade >> 8),
				uint8(uint16(color.G) * in.fade >> 8),
				uint8(uint16(color.B) * in.fade >> 8),
			}
		}
	}
}

var tableNames = [NumTables]string{
	"PARTYLAND",
	"SPEED DEVILS",
	"BILLION DOLLAR GAMESHOW",
	"STONES N BONES",
}

func (in *Intro) renderTextPage(data []uint8) {
	if in.textPage == 2 {
		in.text(data, 104, 80, "PINBALL FANTASIES", 1)
		in.text(data, 96, 120, "PRESS 1-4 TO SELECT", 1)
		in.text(data, 96, 140, "O FOR OPTIONS", 1)
		in.text(data, 96, 160, "ESCAPE TO QUIT", 1)
		return
	}
	first := Table1
	if in.textPage == 1 {
		first = Table3
	}
	y := 60
	for table := first; table < first+2 && table < NumTables; table++ {
		in.text(data, 60, y, tableNames[table], 1)
		y += 16
		for _, hs := range in.config.HighScores[table] {
			ascii := hs.Score.ToASCII()
			in.text(data, 76, y, string(hs.Name[:])+"  "+string(ascii[:]), 2)
			y += 12
		}
		y += 20
	}
}

func (in *Intro) renderOptionsPage(data []uint8) {
	o := in.config.Options
	rows := []string{
		"BALLS: " + map[bool]string{true: "5", false: "3"}[o.Balls == 5],
		"ANGLE: " + map[bool]string{true: "HIGH", false: "LOW"}[o.AngleHigh],
		"SCROLL: " + [3]string{"HARD", "MEDIUM", "SOFT"}[o.ScrollSpeed],
		"MUSIC: " + map[bool]string{true: "OFF", false: "ON"}[o.NoMusic],
		"RESOLUTION: " + [3]string{"NORMAL", "HIGH", "FULL"}[o.Resolution],
		"COLOR: " + map[bool]string{true: "MONO", false: "COLOR"}[o.Mono],
	}
	in.text(data, 120, 60, "OPTIONS", 1)
	y := 100
	for i, row := range rows {
		color := uint8(2)
		if i == in.optionRow {
			color = 1
		}
		in.text(data, 80, y, row, color)
		y += 20
	}
	in.text(data, 80, y+20, "SPACE TO CHANGE - ESCAPE TO SAVE", 2)
}
