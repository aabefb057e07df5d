package sargam

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// Errors
var (
	ErrEmptyFrame  = errors.New("empty sample frame")
	ErrFrameLength = errors.New("frame length must be a power of two")
)

// DominantFrequency estimates the dominant frequency of a frame by taking
// a real FFT and picking the bin with the largest magnitude. No window is
// applied and no interpolation is done; the result is quantized to
// sampleRate/N Hz. The frame length must be a power of two.
func DominantFrequency(samples []float64, sampleRate int) (float64, error) {
	n := len(samples)
	if n == 0 {
		return 0, ErrEmptyFrame
	}
	if n < 2 || n&(n-1) != 0 {
		return 0, ErrFrameLength
	}

	spectrum := fft.FFTReal(samples)

	// Only the first half of the spectrum is meaningful (Nyquist).
	magnitudes := make([]float64, n/2)
	for i := range magnitudes {
		magnitudes[i] = cmplx.Abs(spectrum[i])
	}

	bin := floats.MaxIdx(magnitudes)
	return float64(sampleRate) * float64(bin) / float64(n), nil
}
