package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"
)

// PortAudioCapturer implements audio capture using PortAudio
type PortAudioCapturer struct {
	permission    Permission
	isCapturing   bool
	stream        *portaudio.Stream
	buffer        *Buffer
	frameSize     int
	sampleRate    int
	channels      int
	bufferMutex   sync.Mutex
	amplification float32 // Audio signal amplification factor
}

// NewPortAudioCapturer creates a new audio capturer using PortAudio.
// frameSize must be a power of two so frames can go straight to the FFT.
func NewPortAudioCapturer(frameSize, sampleRate, channels int) (*PortAudioCapturer, error) {
	if frameSize < 2 || frameSize&(frameSize-1) != 0 {
		return nil, fmt.Errorf("frame size %d is not a power of two", frameSize)
	}
	if channels < 1 {
		return nil, errors.New("at least one input channel required")
	}

	return &PortAudioCapturer{
		permission: PermissionUnknown,
		buffer: &Buffer{
			Samples:    make([]float32, 0, frameSize),
			SampleRate: sampleRate,
		},
		frameSize:     frameSize,
		sampleRate:    sampleRate,
		channels:      channels,
		amplification: 5.0,
	}, nil
}

// RequestPermission initializes PortAudio and probes the default input
// device. Capture may only start after a Granted result.
func (c *PortAudioCapturer) RequestPermission() (Permission, error) {
	if c.permission == PermissionGranted {
		return PermissionGranted, nil
	}

	err := portaudio.Initialize()
	if err != nil {
		c.permission = PermissionDenied
		return PermissionDenied, err
	}

	if _, err := portaudio.DefaultInputDevice(); err != nil {
		portaudio.Terminate()
		c.permission = PermissionDenied
		return PermissionDenied, fmt.Errorf("no usable input device: %w", err)
	}

	c.permission = PermissionGranted
	return PermissionGranted, nil
}

// Start begins audio capture
func (c *PortAudioCapturer) Start() error {
	if c.permission != PermissionGranted {
		return errors.New("capture permission not granted")
	}
	if c.isCapturing {
		return errors.New("audio capture already started")
	}

	// Open default input stream
	var err error
	c.stream, err = portaudio.OpenDefaultStream(
		c.channels, // input channels
		0,          // output channels (we don't need output)
		float64(c.sampleRate),
		c.frameSize/c.channels, // frames per buffer
		c.processAudio,         // callback function
	)
	if err != nil {
		return err
	}

	// Start the stream
	err = c.stream.Start()
	if err != nil {
		c.stream.Close()
		return err
	}

	c.isCapturing = true
	return nil
}

// Stop ends audio capture
func (c *PortAudioCapturer) Stop() error {
	if !c.isCapturing {
		return errors.New("audio capture not started")
	}

	// Stop and close the stream
	err := c.stream.Stop()
	if err != nil {
		return err
	}

	err = c.stream.Close()
	if err != nil {
		return err
	}

	// Terminate PortAudio
	err = portaudio.Terminate()
	if err != nil {
		return err
	}

	c.isCapturing = false
	c.permission = PermissionUnknown
	return nil
}

// processAudio is the callback function for audio processing
func (c *PortAudioCapturer) processAudio(in, _ []float32) {
	c.bufferMutex.Lock()
	defer c.bufferMutex.Unlock()

	// If we have multi-channel input, we'll average the channels
	if c.channels > 1 {
		// Create a mono buffer for averaging channels
		monoBuffer := make([]float32, len(in)/c.channels)

		// Average each set of channel samples and apply amplification
		for i := 0; i < len(monoBuffer); i++ {
			sum := float32(0)
			for ch := 0; ch < c.channels; ch++ {
				sum += in[i*c.channels+ch]
			}
			// Average the channels and apply amplification
			monoBuffer[i] = (sum / float32(c.channels)) * c.amplification
		}

		// Update the buffer
		c.buffer.Samples = monoBuffer
	} else {
		// Just copy the mono input and apply amplification
		c.buffer.Samples = make([]float32, len(in))
		for i, sample := range in {
			c.buffer.Samples[i] = sample * c.amplification
		}
	}
}

// GetBuffer returns a copy of the most recent frame. The copy is owned by
// the caller; the capture callback keeps writing into its own buffer.
func (c *PortAudioCapturer) GetBuffer() (*Buffer, error) {
	if !c.isCapturing {
		return nil, errors.New("audio capture not started")
	}

	c.bufferMutex.Lock()
	defer c.bufferMutex.Unlock()

	bufferCopy := &Buffer{
		Samples:    make([]float32, len(c.buffer.Samples)),
		SampleRate: c.buffer.SampleRate,
	}
	copy(bufferCopy.Samples, c.buffer.Samples)

	return bufferCopy, nil
}

// IsCapturing returns true if currently capturing audio
func (c *PortAudioCapturer) IsCapturing() bool {
	return c.isCapturing
}

// SetAmplification sets the audio amplification factor
func (c *PortAudioCapturer) SetAmplification(factor float32) {
	c.bufferMutex.Lock()
	defer c.bufferMutex.Unlock()

	// Ensure amplification is positive
	if factor < 0.1 {
		factor = 0.1
	}

	c.amplification = factor
}
