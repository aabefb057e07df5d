package sargam

import (
	"sync/atomic"

	"github.com/0xlemi/sargam/internal/audio"
)

// Pipeline runs silence gating, spectral analysis and scale mapping over
// incoming frames. It keeps no memory of prior frames; the only mutable
// state is the tuning, replaced wholesale by SetReference, and the latest
// published classification.
//
// ProcessFrame is safe to call from the capture goroutine while
// SetReference and Latest run elsewhere.
type Pipeline struct {
	sampleRate int
	tuning     atomic.Pointer[Tuning]
	latest     atomic.Uint64
}

// NewPipeline creates a pipeline tuned to the given base pitch class.
// An unrecognized pitch class falls back to C.
func NewPipeline(sampleRate int, basePitchClass string) *Pipeline {
	p := &Pipeline{sampleRate: sampleRate}
	t, ok := TuningFor(basePitchClass)
	if !ok {
		t, _ = TuningFor("C")
	}
	p.tuning.Store(&t)
	return p
}

// SetReference retunes the base Sa. Unrecognized pitch class names are
// ignored and the prior tuning stays in effect. The new reference applies
// from the next processed frame.
func (p *Pipeline) SetReference(pitchClass string) {
	if t, ok := TuningFor(pitchClass); ok {
		p.tuning.Store(&t)
	}
}

// Tuning returns the tuning currently in effect.
func (p *Pipeline) Tuning() Tuning {
	return *p.tuning.Load()
}

// ProcessFrame classifies one captured frame and publishes the result.
// Silent frames short-circuit to NoDetection without spectral analysis.
// A malformed frame also yields NoDetection; it never stops the stream.
func (p *Pipeline) ProcessFrame(frame *audio.Buffer) Classification {
	result := NoDetection

	if frame != nil && len(frame.Samples) > 0 {
		samples := make([]float64, len(frame.Samples))
		for i, s := range frame.Samples {
			samples[i] = float64(s)
		}

		if !IsSilent(samples) {
			rate := frame.SampleRate
			if rate <= 0 {
				rate = p.sampleRate
			}
			if freq, err := DominantFrequency(samples, rate); err == nil {
				result = Classify(freq, p.tuning.Load().Reference)
			}
		}
	}

	p.latest.Store(result.pack())
	return result
}

// Latest returns the classification published by the most recent frame.
func (p *Pipeline) Latest() Classification {
	return unpackClassification(p.latest.Load())
}

// The latest classification is packed into a single word so readers on
// other goroutines never see a torn value.

func (c Classification) pack() uint64 {
	if !c.Detected {
		return 0
	}
	return 1 | uint64(c.Degree)<<1 | uint64(c.Band)<<4
}

func unpackClassification(v uint64) Classification {
	if v&1 == 0 {
		return NoDetection
	}
	return Classification{
		Degree:   Degree(v >> 1 & 0x7),
		Band:     Band(v >> 4 & 0x3),
		Detected: true,
	}
}
