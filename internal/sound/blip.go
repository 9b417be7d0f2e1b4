package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	blipFreq   = 880.0
	blipLen    = time.Second / 12
	blipGain   = 0.25
)

// Blip plays a short synthesized sine tone through the speaker. The speaker
// is initialized lazily so a machine without an audio device only fails if
// a blip is actually requested.
type Blip struct {
	initDone bool
}

func NewBlip() *Blip {
	return &Blip{}
}

func (b *Blip) Play() error {
	if !b.initDone {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
			return err
		}
		b.initDone = true
	}
	speaker.Play(tone(blipFreq, sampleRate.N(blipLen)))
	return nil
}

// tone is a fixed-length sine streamer with a linear fade-out so the tone
// ends without a click.
func tone(freq float64, n int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		filled := 0
		for i := range samples {
			if pos >= n {
				break
			}
			t := float64(pos) / float64(sampleRate)
			fade := 1 - float64(pos)/float64(n)
			v := math.Sin(2*math.Pi*freq*t) * blipGain * fade
			samples[i][0] = v
			samples[i][1] = v
			pos++
			filled++
		}
		return filled, true
	})
}
