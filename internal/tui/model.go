package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"typr/internal/engine"
	"typr/internal/model"
)

// tickEvery drives elapsed time and time-mode completion checks.
const tickEvery = 100 * time.Millisecond

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	missingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A63638")).Underline(true)
	overflowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Faint(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	doneTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7CB662")).Bold(true)
	failTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
)

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model implements the Bubble Tea typing UI over an engine session.
type Model struct {
	session *engine.Session

	width  int
	height int

	ticking bool
	samples []float64
}

// NewModel constructs a typing TUI model.
func NewModel(session *engine.Session) *Model {
	return &Model{session: session}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.ticking = true
	return tickCmd()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m.handleTick(time.Time(msg))
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.session.Tick(now)
	switch m.session.Phase() {
	case engine.PhaseCompleted, engine.PhaseFailed:
		m.ticking = false
		return m, nil
	case engine.PhaseActive:
		m.samples = append(m.samples, m.session.Metrics().WPM)
	}
	return m, tickCmd()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc, tea.KeyTab:
		return m, m.restart()
	case tea.KeyBackspace, tea.KeyDelete:
		m.session.HandleInput(engine.BackspaceEvent())
		return m, nil
	case tea.KeySpace:
		m.session.HandleInput(engine.CommitEvent())
		return m, nil
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r == ' ' {
				m.session.HandleInput(engine.CommitEvent())
				continue
			}
			m.session.HandleInput(engine.CharEvent(r))
		}
		return m, nil
	default:
		return m, nil
	}
}

// restart discards the session state wholesale before any new input is
// accepted, and revives the ticker if a terminal phase stopped it.
func (m *Model) restart() tea.Cmd {
	m.session.Reset(nil)
	m.samples = nil
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd()
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.session.Phase() {
	case engine.PhaseCompleted, engine.PhaseFailed:
		return m.viewResults()
	}
	return m.viewTyping()
}

func (m *Model) viewTyping() string {
	cells := buildCells(m.session)
	if m.width == 0 || m.height == 0 {
		return renderCells(cells)
	}
	contentWidth := int(float64(m.width) * 0.70)
	if contentWidth < 1 {
		contentWidth = 1
	}
	wrapped := wrapCells(cells, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(wrapped)
	if m.height < 5 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	header := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderHeader())
	body := lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, content)
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	return header + "\n" + body + "\n" + footer
}

func (m *Model) renderHeader() string {
	rep := m.session.Metrics()
	cfg := m.session.Config()
	segments := []string{
		fmt.Sprintf("%.0f wpm", rep.WPM),
		fmt.Sprintf("%.0f%% acc", rep.Accuracy),
	}
	if cfg.Mode == model.ModeTime {
		segments = append(segments, fmt.Sprintf("%ds left", int(m.session.Remaining().Round(time.Second).Seconds())))
	} else {
		counters := m.session.Counters()
		done := counters.CorrectWords + counters.IncorrectWords
		segments = append(segments,
			fmt.Sprintf("%d/%d words", done, cfg.WordCount),
			fmt.Sprintf("%ds", int(m.session.Elapsed().Round(time.Second).Seconds())),
		)
	}
	return headerStyle.Render(strings.Join(segments, " · "))
}

func (m *Model) renderFooter() string {
	cfg := m.session.Config()
	var target string
	if cfg.Mode == model.ModeTime {
		target = fmt.Sprintf("time %ds", cfg.TimeLimitSeconds)
	} else {
		target = fmt.Sprintf("words %d", cfg.WordCount)
	}
	segments := []string{target, string(cfg.Difficulty)}
	if cfg.IncludeNumbers {
		segments = append(segments, "numbers")
	}
	if cfg.IncludePunctuation {
		segments = append(segments, "punctuation")
	}
	if cfg.WordLengthClass != model.LengthAll {
		segments = append(segments, string(cfg.WordLengthClass))
	}
	segments = append(segments, "tab/esc restart", "ctrl+c quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}
