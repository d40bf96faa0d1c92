package cue

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	outputRate      = beep.SampleRate(44100)
	resampleQuality = 4
)

// SpeakerPlayer plays mp3 samples from a directory on the default audio
// device. The device is opened once, on the first Play.
type SpeakerPlayer struct {
	dir string

	once    sync.Once
	initErr error
}

func NewSpeakerPlayer(dir string) *SpeakerPlayer {
	return &SpeakerPlayer{dir: dir}
}

// Path returns the file a sound is read from.
func (p *SpeakerPlayer) Path(s Sound) string {
	return filepath.Join(p.dir, string(s)+".mp3")
}

func (p *SpeakerPlayer) init() error {
	p.once.Do(func() {
		p.initErr = speaker.Init(outputRate, outputRate.N(time.Second/10))
	})
	return p.initErr
}

// Play decodes the sample and blocks until it has been played or ctx is
// done.
func (p *SpeakerPlayer) Play(ctx context.Context, s Sound) error {
	f, err := os.Open(p.Path(s))
	if err != nil {
		return fmt.Errorf("open sound: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode sound %s: %w", s, err)
	}
	defer streamer.Close()

	if err := p.init(); err != nil {
		return fmt.Errorf("open audio device: %w", err)
	}

	var src beep.Streamer = streamer
	if format.SampleRate != outputRate {
		src = beep.Resample(resampleQuality, format.SampleRate, outputRate, streamer)
	}

	done := make(chan struct{})
	ctrl := &beep.Ctrl{Streamer: beep.Seq(src, beep.Callback(func() {
		close(done)
	}))}
	speaker.Play(ctrl)

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Lock()
		ctrl.Streamer = nil
		speaker.Unlock()
		return ctx.Err()
	}
}
