package sargam

import (
	"math"
	"testing"
)

func TestTuningForA(t *testing.T) {
	tuning, ok := TuningFor("A")
	if !ok {
		t.Fatalf("expected A to be recognized")
	}
	if tuning.Reference != 440.0 {
		t.Fatalf("expected exactly 440 Hz for A, got %v", tuning.Reference)
	}
}

func TestTuningForC(t *testing.T) {
	tuning, ok := TuningFor("C")
	if !ok {
		t.Fatalf("expected C to be recognized")
	}
	if math.Abs(tuning.Reference-261.63) > 0.01 {
		t.Fatalf("expected ~261.63 Hz for C, got %.4f", tuning.Reference)
	}
}

func TestTuningForSharps(t *testing.T) {
	fs, ok := TuningFor("F#")
	if !ok {
		t.Fatalf("expected F# to be recognized")
	}
	f, _ := TuningFor("F")
	// Adjacent pitch classes differ by one equal-tempered semitone.
	ratio := fs.Reference / f.Reference
	if math.Abs(ratio-math.Pow(2, 1.0/12.0)) > 1e-9 {
		t.Fatalf("expected semitone ratio between F and F#, got %.6f", ratio)
	}
}

func TestTuningForUnrecognized(t *testing.T) {
	if _, ok := TuningFor("H"); ok {
		t.Fatalf("expected H to be rejected")
	}
	if _, ok := TuningFor(""); ok {
		t.Fatalf("expected empty name to be rejected")
	}
	if _, ok := TuningFor("c"); ok {
		t.Fatalf("expected lowercase name to be rejected")
	}
}
