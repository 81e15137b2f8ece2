package main

import (
	"fmt"
	"time"

	"github.com/flga/pinball/pin"
	"github.com/veandco/go-sdl2/sdl"
)

type view interface {
	pin.View
	Mixer() *pin.Player
}

// engine owns the window, the active view slot and the frame clock.
type engine struct {
	store  pin.ConfigStore
	config pin.Config
	audio  *audioEngine
	touch  bool

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	texW     int
	texH     int

	fullscreen bool

	view      view
	lastTable *pin.TableID

	frame []byte
	data  []uint8
	pal   []pin.RGB
}

func newEngine(title string, store pin.ConfigStore, config pin.Config, audio *audioEngine, touch bool) (*engine, error) {
	window, renderer, err := sdl.CreateWindowAndRenderer(640*2, 480*2, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("newEngine: unable to create window: %s", err)
	}
	window.SetTitle(title)
	return &engine{
		store:    store,
		config:   config,
		audio:    audio,
		touch:    touch,
		window:   window,
		renderer: renderer,
		pal:      make([]pin.RGB, 256),
	}, nil
}

func (e *engine) destroy() {
	if e.texture != nil {
		e.texture.Destroy()
	}
	e.renderer.Destroy()
	e.window.Destroy()
}

func (e *engine) navigate(route pin.Route) error {
	dataDir := e.store.(fileStore).dir
	var v view
	if route.ToTable {
		table := route.Table
		prg := fileStore{dataDir}.Load(tablePrgs[table])
		mod := fileStore{dataDir}.Load(tableMods[table])
		if prg == nil || mod == nil {
			return fmt.Errorf("engine: navigate: missing assets for table %d", int(table)+1)
		}
		t, err := pin.NewTable(prg, mod, e.config, table)
		if err != nil {
			return fmt.Errorf("engine: navigate: %s", err)
		}
		last := table
		e.lastTable = &last
		v = t
	} else {
		prg := fileStore{dataDir}.Load("INTRO.PRG")
		mod := fileStore{dataDir}.Load("INTRO.MOD")
		if prg == nil || mod == nil {
			return fmt.Errorf("engine: navigate: missing intro assets")
		}
		in, err := pin.NewIntro(prg, mod, e.config, e.lastTable)
		if err != nil {
			return fmt.Errorf("engine: navigate: %s", err)
		}
		v = in
	}
	e.view = v
	if e.audio != nil {
		e.audio.setMixer(v.Mixer())
	}
	return e.resizeTo(v)
}

func (e *engine) resizeTo(v pin.View) error {
	w, h := v.Resolution()
	if e.texture != nil && e.texW == w && e.texH == h {
		return nil
	}
	if e.texture != nil {
		e.texture.Destroy()
	}
	texture, err := e.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
	if err != nil {
		return fmt.Errorf("engine: unable to create texture: %s", err)
	}
	e.texture = texture
	e.texW = w
	e.texH = h
	e.frame = make([]byte, w*h*4)
	e.data = make([]uint8, w*h)
	return nil
}

func (e *engine) run(initial *pin.Route) error {
	route := pin.Route{}
	if initial != nil {
		route = *initial
	}
	if err := e.navigate(route); err != nil {
		return err
	}

	frameDur := time.Second / time.Duration(e.view.FPS())
	next := time.Now()
	for {
		for evt := sdl.PollEvent(); evt != nil; evt = sdl.PollEvent() {
			quit, err := e.handle(evt)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}

		action := e.view.RunFrame()
		switch action.Kind {
		case pin.ActionNavigate:
			if err := e.navigate(action.Route); err != nil {
				return err
			}
			frameDur = time.Second / time.Duration(e.view.FPS())
		case pin.ActionExit:
			return nil
		case pin.ActionSaveOptions:
			e.config.Options = action.Options
			action.Options.Save(e.store)
		case pin.ActionSaveHighScores:
			e.config.HighScores[action.Table] = action.HighScores
			pin.SaveHighScores(action.Table, action.HighScores, e.store)
		}

		if err := e.paint(); err != nil {
			return err
		}

		next = next.Add(frameDur)
		if d := time.Until(next); d > 0 {
			time.Sleep(d)
		} else {
			next = time.Now()
		}
	}
}

func (e *engine) paint() error {
	e.view.Render(e.data, e.pal)
	for i, pix := range e.data {
		c := e.pal[pix]
		e.frame[i*4] = c.R
		e.frame[i*4+1] = c.G
		e.frame[i*4+2] = c.B
		e.frame[i*4+3] = 0xff
	}
	if err := e.texture.Update(nil, e.frame, e.texW*4); err != nil {
		return fmt.Errorf("engine: paint: %s", err)
	}
	if err := e.renderer.Clear(); err != nil {
		return fmt.Errorf("engine: paint: %s", err)
	}
	if err := e.renderer.Copy(e.texture, nil, nil); err != nil {
		return fmt.Errorf("engine: paint: %s", err)
	}
	if e.touch {
		e.paintTouchOverlay()
	}
	e.renderer.Present()
	return nil
}

// paintTouchOverlay draws the flipper / nudge bars over the bottom of the
// window for touch play.
func (e *engine) paintTouchOverlay() {
	w, h := e.window.GetSize()
	e.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	e.renderer.SetDrawColor(255, 255, 255, 40)
	barH := h / 8
	third := w / 3
	e.renderer.FillRect(&sdl.Rect{X: 0, Y: h - barH, W: third, H: barH})
	e.renderer.FillRect(&sdl.Rect{X: 2 * third, Y: h - barH, W: third, H: barH})
	e.renderer.SetDrawColor(255, 255, 0, 40)
	e.renderer.FillRect(&sdl.Rect{X: third, Y: h - barH, W: third, H: barH})
}

var keymap = map[sdl.Keycode]pin.Key{
	sdl.K_LSHIFT: pin.KeyShiftLeft,
	sdl.K_RSHIFT: pin.KeyShiftRight,
	sdl.K_LCTRL:  pin.KeyCtrlLeft,
	sdl.K_RCTRL:  pin.KeyCtrlRight,
	sdl.K_LALT:   pin.KeyAltLeft,
	sdl.K_RALT:   pin.KeyAltRight,
	sdl.K_SPACE:  pin.KeySpace,
	sdl.K_DOWN:   pin.KeyDown,
	sdl.K_UP:     pin.KeyUp,
	sdl.K_RETURN: pin.KeyEnter,
	sdl.K_ESCAPE: pin.KeyEscape,
	sdl.K_F1:     pin.KeyF1,
	sdl.K_F2:     pin.KeyF2,
	sdl.K_F3:     pin.KeyF3,
	sdl.K_F4:     pin.KeyF4,
	sdl.K_F5:     pin.KeyF5,
	sdl.K_F6:     pin.KeyF6,
	sdl.K_F7:     pin.KeyF7,
	sdl.K_F8:     pin.KeyF8,
	sdl.K_1:      pin.KeyDigit1,
	sdl.K_2:      pin.KeyDigit2,
	sdl.K_3:      pin.KeyDigit3,
	sdl.K_4:      pin.KeyDigit4,
	sdl.K_5:      pin.KeyDigit5,
	sdl.K_6:      pin.KeyDigit6,
	sdl.K_7:      pin.KeyDigit7,
	sdl.K_8:      pin.KeyDigit8,
}

func mapKey(code sdl.Keycode) pin.Key {
	if k, ok := keymap[code]; ok {
		return k
	}
	if code >= sdl.K_a && code <= sdl.K_z {
		return pin.KeyLetter(byte('A' + code - sdl.K_a))
	}
	return pin.KeyNone
}

func (e *engine) handle(event sdl.Event) (quit bool, err error) {
	switch evt := event.(type) {
	case *sdl.QuitEvent:
		return true, nil
	case *sdl.KeyboardEvent:
		if evt.Repeat != 0 {
			return false, nil
		}
		if evt.Type == sdl.KEYUP && evt.Keysym.Sym == sdl.K_F11 {
			if e.fullscreen {
				e.window.SetFullscreen(0)
			} else {
				e.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
			}
			e.fullscreen = !e.fullscreen
			return false, nil
		}
		if key := mapKey(evt.Keysym.Sym); key != pin.KeyNone {
			e.view.HandleKey(key, evt.Type == sdl.KEYDOWN)
		}
	case *sdl.MouseButtonEvent:
		// mouse buttons double as flippers
		switch evt.Button {
		case sdl.BUTTON_LEFT:
			e.view.HandleKey(pin.KeyShiftLeft, evt.Type == sdl.MOUSEBUTTONDOWN)
		case sdl.BUTTON_RIGHT:
			e.view.HandleKey(pin.KeyShiftRight, evt.Type == sdl.MOUSEBUTTONDOWN)
		}
	case *sdl.TouchFingerEvent:
		var phase pin.TouchPhase
		switch evt.Type {
		case sdl.FINGERDOWN:
			phase = pin.TouchStarted
		case sdl.FINGERMOTION:
			phase = pin.TouchMoved
		case sdl.FINGERUP:
			phase = pin.TouchEnded
		default:
			return false, nil
		}
		w, h := e.view.Resolution()
		x := int(evt.X * float32(w))
		y := int(evt.Y * float32(h))
		e.view.HandleTouch(uint64(evt.FingerID), phase, x, y)
	}
	return false, nil
}
