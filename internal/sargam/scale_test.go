package sargam

import "testing"

func TestClassifyDeterministic(t *testing.T) {
	first := Classify(294.33, 261.63)
	for i := 0; i < 10; i++ {
		if got := Classify(294.33, 261.63); got != first {
			t.Fatalf("classification changed between calls: %+v vs %+v", got, first)
		}
	}
	if !first.Detected || first.Degree != Re || first.Band != Base {
		t.Fatalf("expected base Re, got %+v", first)
	}
}

func TestClassifyNonPositiveFrequency(t *testing.T) {
	if got := Classify(0, 261.63); got != NoDetection {
		t.Fatalf("expected NoDetection for 0 Hz, got %+v", got)
	}
	if got := Classify(-42, 261.63); got != NoDetection {
		t.Fatalf("expected NoDetection for negative frequency, got %+v", got)
	}
}

func TestClassifyExactTargets(t *testing.T) {
	ref := 240.0
	cases := []struct {
		freq   float64
		degree Degree
		band   Band
	}{
		{ref, Sa, Base},
		{ref * 9 / 8, Re, Base},
		{ref * 5 / 4, Ga, Base},
		{ref * 4 / 3, Ma, Base},
		{ref * 3 / 2, Pa, Base},
		{ref * 5 / 3, Dha, Base},
		{ref * 15 / 8, Ni, Base},
		{ref * 0.5, Sa, Lower},
		{ref * 2, Sa, Upper},
		{ref * 2 * 3 / 2, Pa, Upper},
	}
	for _, c := range cases {
		got := Classify(c.freq, ref)
		if !got.Detected || got.Degree != c.degree || got.Band != c.band {
			t.Errorf("Classify(%.2f, %.2f) = %+v, want (%s, band %d)",
				c.freq, ref, got, c.degree, c.band)
		}
	}
}

// A frequency exactly midway between two candidates must resolve to the
// candidate encountered first in Lower->Base->Upper, Sa->Ni order.
func TestClassifyTieBreak(t *testing.T) {
	ref := 100.0
	// Lower Ni sits at 93.75 Hz, Base Sa at 100 Hz; 96.875 is the exact
	// midpoint and both distances are exactly representable in binary.
	got := Classify(96.875, ref)
	if !got.Detected || got.Degree != Ni || got.Band != Lower {
		t.Fatalf("expected tie to resolve to lower Ni, got %+v", got)
	}
}

// Doubling the reference shifts every candidate up an octave, so the same
// detected frequency lands one band lower.
func TestClassifyReferenceMonotonicity(t *testing.T) {
	freq := 440.0

	got := Classify(freq, 220.0)
	if got.Degree != Sa || got.Band != Upper {
		t.Fatalf("expected upper Sa at ref 220, got %+v", got)
	}

	got = Classify(freq, 440.0)
	if got.Degree != Sa || got.Band != Base {
		t.Fatalf("expected base Sa at ref 440, got %+v", got)
	}

	got = Classify(freq, 880.0)
	if got.Degree != Sa || got.Band != Lower {
		t.Fatalf("expected lower Sa at ref 880, got %+v", got)
	}
}

func TestClassificationLabel(t *testing.T) {
	cases := []struct {
		c    Classification
		want string
	}{
		{NoDetection, "—"},
		{Classification{Degree: Ga, Band: Base, Detected: true}, "Ga"},
		{Classification{Degree: Ga, Band: Lower, Detected: true}, ",Ga"},
		{Classification{Degree: Ga, Band: Upper, Detected: true}, "Ga'"},
		{Classification{Degree: Dha, Band: Lower, Detected: true}, ",Dha"},
	}
	for _, c := range cases {
		if got := c.c.Label(); got != c.want {
			t.Errorf("Label() = %q, want %q", got, c.want)
		}
	}
}
