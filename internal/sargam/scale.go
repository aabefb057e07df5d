package sargam

import "math"

// Degree is one of the seven sargam scale degrees. The octave-closing Sa'
// is not a distinct degree; it is Sa in the Upper band.
type Degree int

const (
	Sa Degree = iota
	Re
	Ga
	Ma
	Pa
	Dha
	Ni
)

var degreeNames = [7]string{"Sa", "Re", "Ga", "Ma", "Pa", "Dha", "Ni"}

func (d Degree) String() string {
	if d < Sa || d > Ni {
		return "?"
	}
	return degreeNames[d]
}

// degreeRatios are the just-intonation frequency ratios of each degree
// relative to the base Sa.
var degreeRatios = [7]float64{
	1.0,        // Sa
	9.0 / 8.0,  // Re
	5.0 / 4.0,  // Ga
	4.0 / 3.0,  // Ma
	3.0 / 2.0,  // Pa
	5.0 / 3.0,  // Dha
	15.0 / 8.0, // Ni
}

// Band places a detected pitch one octave below, at, or one octave above
// the base Sa.
type Band int

const (
	Lower Band = iota
	Base
	Upper
)

var bandMultipliers = [3]float64{0.5, 1.0, 2.0}

// Classification is the result of one analysis cycle: either no detection,
// or a (degree, band) pair.
type Classification struct {
	Degree   Degree
	Band     Band
	Detected bool
}

// NoDetection is the classification for silence or an unusable pitch.
var NoDetection = Classification{}

// Label renders the classification for display: a leading comma marks the
// Lower band, a trailing prime marks the Upper band.
func (c Classification) Label() string {
	if !c.Detected {
		return "—"
	}
	switch c.Band {
	case Lower:
		return "," + c.Degree.String()
	case Upper:
		return c.Degree.String() + "'"
	default:
		return c.Degree.String()
	}
}

// Classify maps a detected frequency onto the nearest of the 21 candidate
// targets (3 octave bands x 7 degrees) around the reference frequency.
// Ties resolve to the candidate encountered first, iterating bands
// Lower, Base, Upper and degrees Sa through Ni. A non-positive frequency
// yields NoDetection.
func Classify(frequency, reference float64) Classification {
	if frequency <= 0 {
		return NoDetection
	}

	best := Classification{Detected: true}
	bestDiff := math.Inf(1)
	for b, mult := range bandMultipliers {
		for d, ratio := range degreeRatios {
			target := reference * mult * ratio
			diff := math.Abs(frequency - target)
			if diff < bestDiff {
				bestDiff = diff
				best.Band = Band(b)
				best.Degree = Degree(d)
			}
		}
	}
	return best
}
