package bigpicture

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// errAudioNotReady is returned while the device is still opening
var errAudioNotReady = errors.New("audio device not ready")

// audioOutput owns the process-wide oto context. oto permits one context
// per process, so it is only reached through sharedAudio.
type audioOutput struct {
	ready chan struct{}
	ctx   *oto.Context
	err   error
}

var (
	audio     *audioOutput
	audioOnce sync.Once
)

// sharedAudio starts opening the audio device on first call and returns
// the shared output. Opening waits for the device, so it runs off the
// render goroutine.
func sharedAudio() *audioOutput {
	audioOnce.Do(func() {
		audio = &audioOutput{ready: make(chan struct{})}
		go audio.open()
	})
	return audio
}

func (a *audioOutput) open() {
	defer close(a.ready)
	ctx, wait, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   chimeSampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   50 * time.Millisecond,
	})
	if err != nil {
		a.err = fmt.Errorf("failed to open audio device: %w", err)
		return
	}
	<-wait
	a.ctx = ctx
}

// context returns the oto context without blocking
func (a *audioOutput) context() (*oto.Context, error) {
	select {
	case <-a.ready:
		return a.ctx, a.err
	default:
		return nil, errAudioNotReady
	}
}
