package terminal

import (
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/kvartal/pkg/game/types"
	"github.com/cbodonnell/kvartal/pkg/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

const (
	rewardFrequency  = 880
	levelUpFrequency = 660
	chimeDuration    = 80 * time.Millisecond
)

// Chime plays short tones for rewards and level ups.
// It stays silent until Init succeeds.
type Chime struct {
	mu          sync.Mutex
	initialized bool
}

func NewChime() *Chime {
	return &Chime{}
}

// Init opens the audio device.
func (c *Chime) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %v", err)
	}
	c.initialized = true
	return nil
}

// HandleEvent plays the tone for a session event, if it has one.
func (c *Chime) HandleEvent(event interface{}) {
	switch event.(type) {
	case types.RewardEvent:
		c.play(rewardFrequency)
	case types.LevelUpEvent:
		c.play(levelUpFrequency, rewardFrequency, levelUpFrequency*2)
	}
}

func (c *Chime) play(frequencies ...int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	tones := make([]beep.Streamer, 0, len(frequencies))
	for _, f := range frequencies {
		sine, err := generators.SineTone(sampleRate, float64(f))
		if err != nil {
			log.Warn("Failed to create %d Hz tone: %v", f, err)
			return
		}
		tones = append(tones, beep.Take(sampleRate.N(chimeDuration), sine))
	}
	speaker.Play(beep.Seq(tones...))
}
