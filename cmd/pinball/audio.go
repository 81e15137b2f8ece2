package main

import (
	"fmt"
	"sync/atomic"

	"github.com/flga/pinball/cmd/internal/errors"
	"github.com/flga/pinball/pin"

	"github.com/gordonklaus/portaudio"
)

// audioEngine owns the portaudio stream and pulls samples from whichever
// mixer is active. The mixer slot is an atomic pointer so the callback never
// allocates and never takes locks; view changes just store a new mixer.
type audioEngine struct {
	mixer atomic.Pointer[pin.Player]

	streamParams portaudio.StreamParameters
	stream       *portaudio.Stream
}

func (a *audioEngine) init() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audioEngine.init: unable to initialize portaudio: %s", err)
	}

	host, err := portaudio.DefaultHostApi()
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audioEngine.init: unable to get default host api: %s", err)
	}

	a.streamParams = portaudio.LowLatencyParameters(nil, host.DefaultOutputDevice)
	a.streamParams.SampleRate = 48000
	a.streamParams.Output.Channels = 2
	a.streamParams.FramesPerBuffer = 48000 / 50

	stream, err := portaudio.OpenStream(a.streamParams, a.audioCallback)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audioEngine.init: unable to open stream: %s", err)
	}
	a.stream = stream

	if err := stream.Start(); err != nil {
		return fmt.Errorf("audioEngine.init: unable to start stream: %s", err)
	}
	return nil
}

func (a *audioEngine) quit() error {
	err := errors.NewList(
		a.stream.Stop(),
		a.stream.Close(),
		portaudio.Terminate(),
	)
	if len(err) != 0 {
		return fmt.Errorf("audioEngine.quit: %s", err)
	}
	return nil
}

func (a *audioEngine) setMixer(m *pin.Player) {
	a.mixer.Store(m)
}

func (a *audioEngine) audioCallback(out []float32) {
	mixer := a.mixer.Load()
	if mixer == nil {
		for i := range out {
			out[i] = 0
		}
		return
	}
	mixer.MakeSamples(out)
}
