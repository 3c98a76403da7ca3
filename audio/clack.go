package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// decay multiplies a stream by exp(-rate*t), t in seconds since the first sample
type decay struct {
	streamer beep.Streamer
	sr       beep.SampleRate
	rate     float64
	position int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := math.Exp(-d.rate * float64(d.position) / float64(d.sr))
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// NewClackGenerator creates a one-shot clack: a sine tone of the given duration with an
// exponential decay envelope (amplitude exp(-decayRate*t))
func NewClackGenerator(sr beep.SampleRate, freq, decayRate float64, duration time.Duration) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("clack tone: %w", err)
	}
	return &decay{
		streamer: beep.Take(sr.N(duration), tone),
		sr:       sr,
		rate:     decayRate,
	}, nil
}

// clackGain maps the number of collisions in one frame to a volume exponent (base 2)
// A single clack plays at unity; bursts get louder up to a cap
func clackGain(n int, step, limit float64) float64 {
	if n <= 1 {
		return 0
	}
	return math.Min(step*math.Log2(float64(n)), limit)
}
