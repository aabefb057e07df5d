package sargam

import "math"

// Tuning binds the base Sa to an absolute frequency. The record is
// immutable; a new base pitch class produces a whole new Tuning.
type Tuning struct {
	PitchClass string
	Reference  float64 // Hz
}

// PitchClasses lists the recognized base pitch names in chromatic order.
var PitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

const (
	concertA   = 440.0 // A4 anchor
	baseOctave = 4     // octave assumed for every base pitch class
	midiA4     = 69
)

// TuningFor derives the equal-tempered reference frequency for a pitch
// class name, always in octave 4. Returns false for unrecognized names.
func TuningFor(pitchClass string) (Tuning, bool) {
	for i, name := range PitchClasses {
		if name == pitchClass {
			midi := i + (baseOctave+1)*12
			freq := concertA * math.Pow(2, float64(midi-midiA4)/12.0)
			return Tuning{PitchClass: name, Reference: freq}, true
		}
	}
	return Tuning{}, false
}
