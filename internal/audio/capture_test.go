package audio

import "testing"

func TestNewPortAudioCapturerValidation(t *testing.T) {
	for _, size := range []int{0, 1, 1000, 4095} {
		if _, err := NewPortAudioCapturer(size, 44100, 1); err == nil {
			t.Errorf("expected error for frame size %d", size)
		}
	}

	c, err := NewPortAudioCapturer(4096, 44100, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.IsCapturing() {
		t.Fatalf("expected capturer to start idle")
	}
	if _, err := c.GetBuffer(); err == nil {
		t.Fatalf("expected GetBuffer to fail before capture starts")
	}
	if err := c.Start(); err == nil {
		t.Fatalf("expected Start to fail before permission is granted")
	}
}

func TestNewPortAudioCapturerChannels(t *testing.T) {
	if _, err := NewPortAudioCapturer(1024, 44100, 0); err == nil {
		t.Fatalf("expected error for zero channels")
	}
}
