package audio

// Buffer represents one fixed-length frame of audio samples
type Buffer struct {
	Samples    []float32
	SampleRate int
}

// Permission is the outcome of asking for capture access
type Permission int

const (
	PermissionUnknown Permission = iota
	PermissionGranted
	PermissionDenied
)

// Capturer defines the interface for audio capture
type Capturer interface {
	// RequestPermission asks for access to the default input device.
	// Capture may only start after a Granted result.
	RequestPermission() (Permission, error)

	// Start begins audio capture
	Start() error

	// Stop ends audio capture
	Stop() error

	// GetBuffer returns a copy of the most recent frame
	GetBuffer() (*Buffer, error)

	// IsCapturing returns true if currently capturing audio
	IsCapturing() bool
}
