package ui

import (
	"fmt"
	"time"

	"github.com/0xlemi/sargam/internal/sargam"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Constants for UI behavior
const (
	// How long to keep showing the last detection after the signal drops
	// (milliseconds), so the label does not flicker between frames
	detectionHoldDuration = 500
)

var (
	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	placeholderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#666666")).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#333333")).
				Padding(2, 4).
				MarginBottom(1)

	// Degree colors
	degreeColors = map[sargam.Degree]string{
		sargam.Sa:  "#E8D6B0", // Beige
		sargam.Re:  "#A020F0", // Purple
		sargam.Ga:  "#FFFF00", // Yellow
		sargam.Ma:  "#FFA500", // Orange
		sargam.Pa:  "#00FF00", // Green
		sargam.Dha: "#FF0000", // Red
		sargam.Ni:  "#0000FF", // Blue
	}
)

// Returns the style for a detected degree
func getDegreeStyle(degree sargam.Degree) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color(degreeColors[degree])).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#333333")).
		Padding(2, 4).
		MarginBottom(1)
}

// Model represents the UI state
type Model struct {
	pipeline      *sargam.Pipeline
	current       sargam.Classification
	lastDetected  sargam.Classification
	lastDetection time.Time
	pitchIndex    int // index into sargam.PitchClasses
	rms           float32
	db            float32
	width         int
	height        int
}

// NewModel creates a new UI model bound to a pipeline. The pipeline is
// retuned when the user cycles the base Sa.
func NewModel(pipeline *sargam.Pipeline) Model {
	m := Model{
		pipeline: pipeline,
		current:  sargam.NoDetection,
		db:       -100,
	}
	for i, name := range sargam.PitchClasses {
		if name == pipeline.Tuning().PitchClass {
			m.pitchIndex = i
			break
		}
	}
	return m
}

// Init initializes the UI model
func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TickMsg represents a timer tick
type TickMsg time.Time

// ClassificationMsg carries the latest pipeline result
type ClassificationMsg sargam.Classification

// LevelMsg carries audio level debug info
type LevelMsg struct {
	RMS float32
	DB  float32
}

// Update updates the UI model based on messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "[":
			m.pitchIndex = (m.pitchIndex + 11) % 12
			m.pipeline.SetReference(sargam.PitchClasses[m.pitchIndex])
		case "right", "]":
			m.pitchIndex = (m.pitchIndex + 1) % 12
			m.pipeline.SetReference(sargam.PitchClasses[m.pitchIndex])
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		return m, tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
			return TickMsg(t)
		})

	case ClassificationMsg:
		m.current = sargam.Classification(msg)
		if m.current.Detected {
			m.lastDetected = m.current
			m.lastDetection = time.Now()
		}

	case LevelMsg:
		m.rms = msg.RMS
		m.db = msg.DB
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	s := titleStyle.Render("Sargam - Live Scale Degree Monitor")
	s += "\n"

	// Show the current detection, or briefly hold the last one so the
	// label does not flicker between frames
	display := m.current
	if !display.Detected && m.lastDetected.Detected &&
		time.Since(m.lastDetection) < detectionHoldDuration*time.Millisecond {
		display = m.lastDetected
	}

	if display.Detected {
		s += getDegreeStyle(display.Degree).Render(display.Label())
	} else {
		s += placeholderStyle.Render(sargam.NoDetection.Label())
	}
	s += "\n"

	tuning := m.pipeline.Tuning()
	info := fmt.Sprintf("Base Sa: %s (%.2f Hz) | Level: %.4f RMS / %.1f dB",
		tuning.PitchClass, tuning.Reference, m.rms, m.db)
	s += infoStyle.Render(info)

	s += "\n\n"
	s += infoStyle.Render("←/→ change base Sa | q quit")

	return s
}
