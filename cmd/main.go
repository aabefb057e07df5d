package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/0xlemi/sargam/internal/audio"
	"github.com/0xlemi/sargam/internal/sargam"
	"github.com/0xlemi/sargam/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const (
	// Debug settings
	enableLevelDebug = true                   // Set to true to update level info in UI
	debugInterval    = time.Millisecond * 200 // How often to update level info

	// How often at most to push a new classification to the UI
	classifyInterval = 80 * time.Millisecond
)

var (
	frameSize  int
	sampleRate int
	channels   int
	gain       float64
	baseSa     string
)

var rootCmd = &cobra.Command{
	Use:   "sargam",
	Short: "Classify live microphone pitch into sargam scale degrees",
	Long: "Sargam listens to the default input device and continuously maps the\n" +
		"dominant pitch onto the seven sargam degrees (Sa Re Ga Ma Pa Dha Ni)\n" +
		"relative to a tunable base Sa.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().IntVar(&frameSize, "frames", 4096, "samples per analysis frame (power of two)")
	rootCmd.Flags().IntVar(&sampleRate, "sample-rate", 44100, "capture sample rate in Hz")
	rootCmd.Flags().IntVar(&channels, "channels", 1, "input channels (mixed down to mono)")
	rootCmd.Flags().Float64Var(&gain, "gain", 8.0, "input amplification factor")
	rootCmd.Flags().StringVar(&baseSa, "sa", "C", "base Sa pitch class (C, C#, D, ... B)")
}

// getAudioLevel calculates RMS and dB level
func getAudioLevel(buffer *audio.Buffer) (rms, db float32) {
	if buffer == nil || len(buffer.Samples) == 0 {
		return 0, -100
	}

	sumSquares := float32(0)

	for _, sample := range buffer.Samples {
		sumSquares += sample * sample
	}

	rms = float32(math.Sqrt(float64(sumSquares / float32(len(buffer.Samples)))))

	// Calculate dB (with protection against log(0))
	if rms > 0.0000001 { // Avoid log(0)
		// Convert to dB: dB = 20 * log10(amplitude)
		db = 20 * float32(math.Log10(float64(rms)))
	} else {
		db = -100
	}

	return rms, db
}

func run() error {
	// Create audio capturer with PortAudio
	capturer, err := audio.NewPortAudioCapturer(frameSize, sampleRate, channels)
	if err != nil {
		return fmt.Errorf("failed to create audio capturer: %w", err)
	}

	// Ask for capture access before touching the stream
	permission, err := capturer.RequestPermission()
	if err != nil {
		return fmt.Errorf("capture permission request failed: %w", err)
	}
	if permission != audio.PermissionGranted {
		return fmt.Errorf("capture permission denied")
	}

	// Create the analysis pipeline tuned to the requested base Sa
	pipeline := sargam.NewPipeline(sampleRate, baseSa)

	// Create UI model
	model := ui.NewModel(pipeline)

	// Start audio capture
	err = capturer.Start()
	if err != nil {
		return fmt.Errorf("failed to start audio capture: %w", err)
	}
	defer capturer.Stop()

	capturer.SetAmplification(float32(gain))

	// Start UI
	p := tea.NewProgram(model, tea.WithAltScreen())

	lastDebugTime := time.Now()
	lastClassifyTime := time.Now()

	// Start a goroutine for audio processing
	go func() {
		for {
			// Get audio buffer
			buffer, err := capturer.GetBuffer()
			if err != nil {
				time.Sleep(time.Millisecond * 10)
				continue
			}

			// Skip until the callback has delivered a full frame
			if len(buffer.Samples) < frameSize {
				time.Sleep(time.Millisecond * 10)
				continue
			}

			// Send audio levels to UI instead of printing to terminal
			if enableLevelDebug && time.Since(lastDebugTime) > debugInterval {
				rms, db := getAudioLevel(buffer)
				p.Send(ui.LevelMsg{
					RMS: rms,
					DB:  db,
				})
				lastDebugTime = time.Now()
			}

			// Gate, analyze and classify; silence comes back as NoDetection
			result := pipeline.ProcessFrame(buffer)

			// Only send updates at reasonable intervals to prevent flicker
			if time.Since(lastClassifyTime) > classifyInterval {
				p.Send(ui.ClassificationMsg(result))
				lastClassifyTime = time.Now()
			}

			// Sleep a bit to avoid excessive CPU usage
			time.Sleep(time.Millisecond * 50)
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
