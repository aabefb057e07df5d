package sargam

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// silenceFloor is the RMS level below which a frame is treated as silence,
// on the [-1, 1] normalized sample scale.
const silenceFloor = 0.005

// RMS returns the root-mean-square amplitude of the samples.
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return math.Sqrt(floats.Dot(samples, samples) / float64(len(samples)))
}

// IsSilent reports whether the frame carries too little energy to be worth
// analyzing.
func IsSilent(samples []float64) bool {
	return RMS(samples) < silenceFloor
}
