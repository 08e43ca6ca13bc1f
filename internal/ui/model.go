// ABOUTME: Bubbletea model for the quiz TUI
// ABOUTME: Defines quiz screen state, key handling and playback sequencing
package ui

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/earfilter-go/pkg/audio"
	"github.com/harperreed/earfilter-go/pkg/audio/filter"
	"github.com/harperreed/earfilter-go/pkg/audio/output"
	"github.com/harperreed/earfilter-go/pkg/quiz"
)

// pauseBetween is the gap between the original and filtered sample
const pauseBetween = 500 * time.Millisecond

type phase int

const (
	phaseStarting phase = iota
	phaseType
	phaseFrequency
	phaseFeedback
	phaseFinished
	phaseError
)

type stage int

const (
	stageIdle stage = iota
	stageOriginal
	stageFiltered
)

// startMsg asks the model to start (or restart) the session
type startMsg struct{}

// playbackMsg reports the end of one buffer's playback
type playbackMsg struct {
	stage stage
	err   error
}

// Model represents the TUI state
type Model struct {
	ctx     context.Context
	session *quiz.Session
	out     output.Output

	// Quiz
	phase       phase
	question    quiz.Question
	original    audio.Buffer
	filtered    audio.Buffer
	frequencies []float64
	guessType   filter.Type
	feedback    []string
	verdict     string
	message     string
	err         error

	// Playback
	playing stage
	pause   time.Duration
	volume  int
	muted   bool

	// Dimensions
	width  int
	height int
}

// Controls is the playback state the model starts with
type Controls struct {
	Volume int
	Muted  bool
}

// NewModel creates a new TUI model for session, playing through out
func NewModel(ctx context.Context, session *quiz.Session, out output.Output, controls Controls) Model {
	freqs := append([]float64(nil), session.Config().Frequencies...)
	sort.Float64s(freqs)

	return Model{
		ctx:         ctx,
		session:     session,
		out:         out,
		frequencies: freqs,
		pause:       pauseBetween,
		volume:      controls.Volume,
		muted:       controls.Muted,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case startMsg:
		return m.start()
	case playbackMsg:
		return m.handlePlayback(msg)
	}

	return m, nil
}

// start starts the session if needed and plays the first question
func (m Model) start() (tea.Model, tea.Cmd) {
	if m.session.Status() != quiz.StatusSetup {
		m.session.Reset()
	}
	if err := m.session.Start(); err != nil {
		log.Printf("Failed to start quiz: %v", err)
		m.phase = phaseError
		m.err = err
		return m, nil
	}
	return m.loadQuestion()
}

// loadQuestion prepares the current question's buffers and plays them
func (m Model) loadQuestion() (tea.Model, tea.Cmd) {
	q, err := m.session.Current()
	if err != nil {
		m.phase = phaseError
		m.err = err
		return m, nil
	}

	filtered, err := q.Filtered()
	if err != nil {
		m.phase = phaseError
		m.err = err
		return m, nil
	}

	m.question = q
	m.original = q.Source
	m.filtered = filtered
	m.feedback = nil
	m.verdict = ""
	m.message = ""
	m.phase = phaseType
	return m.playPair()
}

// playPair starts the original, which chains into the filtered buffer
func (m Model) playPair() (tea.Model, tea.Cmd) {
	m.playing = stageOriginal
	m.message = ""
	return m, playCmd(m.ctx, m.out, stageOriginal, m.original, 0)
}

func playCmd(ctx context.Context, out output.Output, s stage, buf audio.Buffer, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return playbackMsg{stage: s, err: ctx.Err()}
			}
		}
		return playbackMsg{stage: s, err: out.Play(ctx, buf)}
	}
}

// handlePlayback advances the playback chain
func (m Model) handlePlayback(msg playbackMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Printf("Playback error: %v", msg.err)
		m.message = fmt.Sprintf("Playback error: %v", msg.err)
		m.playing = stageIdle
		return m, nil
	}

	if msg.stage == stageOriginal {
		m.playing = stageFiltered
		return m, playCmd(m.ctx, m.out, stageFiltered, m.filtered, m.pause)
	}

	m.playing = stageIdle
	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up":
		m.setVolume(m.volume + 5)
		return m, nil
	case "down":
		m.setVolume(m.volume - 5)
		return m, nil
	case "m":
		m.muted = !m.muted
		m.out.SetMuted(m.muted)
		return m, nil
	}

	// Answers wait until both samples have played
	if m.playing != stageIdle {
		return m, nil
	}

	key := msg.String()
	switch m.phase {
	case phaseType:
		if key == "r" {
			return m.playPair()
		}
		if t, ok := typeForKey(key); ok {
			return m.selectType(t)
		}
	case phaseFrequency:
		switch key {
		case "r":
			return m.playPair()
		case "esc", "backspace":
			m.phase = phaseType
			return m, nil
		}
		if i, ok := digit(key); ok && i < len(m.frequencies) {
			f := m.frequencies[i]
			return m.submit(quiz.Attempt{Type: m.guessType, Frequency: &f})
		}
	case phaseFeedback:
		switch key {
		case "r":
			return m.playPair()
		case "enter", " ":
			return m.advance()
		}
	case phaseFinished:
		if key == "r" {
			return m.start()
		}
	}

	return m, nil
}

func (m *Model) setVolume(v int) {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	m.volume = v
	m.out.SetVolume(v)
}

// selectType records the type guess and asks for a frequency when graded
func (m Model) selectType(t filter.Type) (tea.Model, tea.Cmd) {
	if m.session.NeedsFrequency(t) {
		m.guessType = t
		m.phase = phaseFrequency
		return m, nil
	}
	return m.submit(quiz.Attempt{Type: t})
}

func (m Model) submit(a quiz.Attempt) (tea.Model, tea.Cmd) {
	rec, err := m.session.Submit(a)
	if err != nil {
		m.message = err.Error()
		return m, nil
	}

	cfg := m.session.Config()
	m.feedback = quiz.Feedback(m.question, rec, cfg.ShowCorrectAnswer, cfg.ShowFilterDetails)
	m.verdict = rec.Verdict()
	m.phase = phaseFeedback
	return m, nil
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	if err := m.session.Advance(); err != nil {
		m.message = err.Error()
		return m, nil
	}
	if m.session.Status() == quiz.StatusFinished {
		m.phase = phaseFinished
		return m, nil
	}
	return m.loadQuestion()
}

// typeForKey maps 1-4 and the type initials to a filter type
func typeForKey(key string) (filter.Type, bool) {
	if i, ok := digit(key); ok && i < len(filter.Types) {
		return filter.Types[i], true
	}
	switch key {
	case "l":
		return filter.Lowpass, true
	case "h":
		return filter.Highpass, true
	case "n":
		return filter.Notch, true
	case "b":
		return filter.Bandpass, true
	}
	return 0, false
}

// digit returns the zero-based index for keys "1" through "9"
func digit(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Filter Ear Trainer"))
	b.WriteString("\n")
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.phase {
	case phaseStarting:
		b.WriteString(valueStyle.Render("Preparing questions..."))
	case phaseType:
		b.WriteString(m.renderTypeChoices())
	case phaseFrequency:
		b.WriteString(m.renderFrequencyChoices())
	case phaseFeedback:
		b.WriteString(m.renderFeedback())
	case phaseFinished:
		b.WriteString(m.renderSummary())
	case phaseError:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	b.WriteString("\n\n")

	if status := m.renderPlayback(); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(errorStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(m.renderControls())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

// renderHeader renders question progress and the running score
func (m Model) renderHeader() string {
	cfg := m.session.Config()
	info := fmt.Sprintf("%s | %s mode | %gs", cfg.SourceKind, cfg.Mode, cfg.DurationSeconds)

	if m.session.Len() == 0 {
		return headerStyle.Render(info)
	}

	answered := len(m.session.Records())
	progress := fmt.Sprintf("Question %d/%d", m.session.Index()+1, m.session.Len())
	return headerStyle.Render(progress) + "  " +
		valueStyle.Render(quiz.FormatScore(m.session.Score(), answered)) + "  " +
		faintStyle.Render(info)
}

func (m Model) renderTypeChoices() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("Which filter was applied?"))
	b.WriteString("\n")
	for i, t := range filter.Types {
		b.WriteString(fmt.Sprintf("  %d) %s\n", i+1, t))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderFrequencyChoices() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render(fmt.Sprintf("%s at which frequency?", m.guessType)))
	b.WriteString("\n")
	for i, f := range m.frequencies {
		b.WriteString(fmt.Sprintf("  %d) %s\n", i+1, quiz.FormatFrequency(f)))
	}
	b.WriteString(faintStyle.Render("  esc: change filter type"))
	return b.String()
}

func (m Model) renderFeedback() string {
	if len(m.feedback) == 0 {
		return ""
	}

	style := incorrectStyle
	switch m.verdict {
	case "Correct!", "Correct! (Type and Frequency)":
		style = correctStyle
	case "Partially Correct.":
		style = partialStyle
	}

	var b strings.Builder
	b.WriteString(style.Render(m.feedback[0]))
	for _, line := range m.feedback[1:] {
		b.WriteString("\n")
		b.WriteString(valueStyle.Render(line))
	}
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("enter: next question"))
	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Quiz Complete!"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("Final Score: %.1f/%d", m.session.Score(), m.session.Len())))
	b.WriteString("\n\n")

	for _, rec := range m.session.Records() {
		b.WriteString(fmt.Sprintf("  %2d. %-30s %.1f\n", rec.Index+1, rec.Verdict(), rec.Points))
	}
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("r: restart"))
	return b.String()
}

func (m Model) renderPlayback() string {
	switch m.playing {
	case stageOriginal:
		return playingStyle.Render("♪ Playing ORIGINAL...")
	case stageFiltered:
		return playingStyle.Render("♪ Playing FILTERED...")
	default:
		return ""
	}
}

// renderControls renders volume and mute status
func (m Model) renderControls() string {
	muteIcon := ""
	if m.muted {
		muteIcon = " 🔇"
	}
	return fmt.Sprintf("Volume: [%s] %d%%%s", renderBar(m.volume, 100, 10), m.volume, muteIcon)
}

// renderHelp renders keyboard shortcuts
func (m Model) renderHelp() string {
	return faintStyle.Render("1-4/l,h,n,b:Answer  r:Replay  ↑/↓:Volume  m:Mute  q:Quit")
}

// Utility functions
func renderBar(value, max, width int) string {
	filled := (value * width) / max
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += "█"
		} else {
			bar += "░"
		}
	}
	return bar
}
