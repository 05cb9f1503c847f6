package viz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/arraygen"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/trace"
)

const (
	barRows      = 12
	progressCols = 40
)

// Options configures a new Model.
type Options struct {
	Registry  *algorithms.Registry
	Arrays    *arraygen.Generator
	Algorithm string
	Array     trace.Array // nil draws one from Arrays
	Speed     time.Duration
	Language  string
	Theme     string
	Autoplay  bool
	Logger    *zap.Logger
}

// Model is the Bubble Tea model of the visualizer. It owns its playback
// controller; ticks come back through Update.
type Model struct {
	sess        *session.Session
	sched       *teaScheduler
	logger      *zap.Logger
	printer     *message.Printer
	lang        string
	theme       Theme
	styles      styles
	comparisons []algorithms.Comparison
	width       int
	height      int
	showHelp    bool
	err         error
}

func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	lang := opts.Language
	if lang == "" {
		lang = "en"
	}
	printer, err := trace.NewPrinter(lang)
	if err != nil {
		return Model{}, err
	}

	sched := &teaScheduler{}
	player := playback.New(sched, opts.Speed)
	sess := session.New(opts.Registry, opts.Arrays, player, logger)
	if err := sess.Start(opts.Algorithm, opts.Array); err != nil {
		return Model{}, err
	}

	theme := GetTheme(opts.Theme)
	m := Model{
		sess:    sess,
		sched:   sched,
		logger:  logger,
		printer: printer,
		lang:    lang,
		theme:   theme,
		styles:  newStyles(theme),
	}
	m.refreshComparisons()
	if opts.Autoplay {
		player.Play()
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return m.sched.take()
}

// Update handles input events and playback ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	player := m.sess.Player()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		player.Fire(msg.ticket)
	case tea.KeyMsg:
		m.err = nil
		switch msg.String() {
		case "q", "ctrl+c":
			player.Close()
			return m, tea.Quit
		case " ":
			player.Toggle()
		case "right", "l":
			player.StepForward()
		case "left", "h":
			player.StepBackward()
		case "r":
			player.Reset()
		case "n":
			if err := m.sess.NewArray(); err != nil {
				m.err = err
			}
			m.refreshComparisons()
		case "tab":
			if err := m.sess.NextAlgorithm(); err != nil {
				m.err = err
			}
		case "+", "=":
			m.err = player.SetSpeed(max(player.Speed()-playback.SpeedStep, playback.MinSpeed))
		case "-", "_":
			m.err = player.SetSpeed(min(player.Speed()+playback.SpeedStep, playback.MaxSpeed))
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		case "L":
			m.switchLanguage()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, m.sched.take()
}

func (m *Model) refreshComparisons() {
	results, err := m.sess.Compare(context.Background())
	if err != nil {
		m.logger.Warn("compare failed", zap.Error(err))
		return
	}
	m.comparisons = results
}

func (m *Model) switchLanguage() {
	next := "ru"
	if m.lang == "ru" {
		next = "en"
	}
	p, err := trace.NewPrinter(next)
	if err != nil {
		m.err = err
		return
	}
	m.lang, m.printer = next, p
}

// Session exposes the session the model drives.
func (m Model) Session() *session.Session { return m.sess }

func (m Model) Theme() Theme     { return m.theme }
func (m Model) Language() string { return m.lang }
func (m Model) Err() error       { return m.err }

// View renders the TUI interface.
func (m Model) View() string {
	player := m.sess.Player()
	step := player.Current()
	p := m.printer
	st := m.styles

	var left strings.Builder
	title := strings.ToUpper(m.sess.Descriptor().Name)
	left.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, st.header.Render(title), "  ", m.statusView()) + "\n\n")
	left.WriteString(RenderBars(step, m.theme, barRows, p.Sprintf("No data to display")) + "\n")

	desc := trace.Describe(p, step)
	if player.Complete() {
		left.WriteString(st.sorted.Render("✓ "+desc) + "\n")
	} else {
		left.WriteString(st.description.Render(desc) + "\n")
	}

	progress := player.Progress()
	left.WriteString("\n" + ProgressBar(progress, progressCols, m.theme) + " ")
	left.WriteString(st.muted.Render(p.Sprintf("Step %d of %d (%d%%)", player.Index()+1, player.Len(), progress)) + "\n")
	if m.err != nil {
		left.WriteString(st.paused.Render(m.err.Error()) + "\n")
	}
	left.WriteString(st.help.Render(p.Sprintf(hintLine)))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), "  ", m.sideView())
	if m.showHelp {
		return m.helpView() + "\n\n" + mainView
	}
	return mainView
}

func (m Model) statusView() string {
	player := m.sess.Player()
	label := m.printer.Sprintf(statusLabel(player.Status()))
	if player.Playing() {
		return m.styles.playing.Render("▶ " + label)
	}
	return m.styles.paused.Render("■ " + label)
}

func (m Model) sideView() string {
	player := m.sess.Player()
	d := m.sess.Descriptor()
	p := m.printer
	st := m.styles

	var s strings.Builder
	s.WriteString(st.selected.Render(d.Name) + "\n")
	s.WriteString(st.label.Render(p.Sprintf("Time")) + st.value.Render(d.TimeComplexity) + "\n")
	s.WriteString(st.label.Render(p.Sprintf("Memory")) + st.value.Render(d.SpaceComplexity) + "\n")
	s.WriteString(st.muted.Width(46).Render(d.Description) + "\n\n")

	s.WriteString(st.label.Render(p.Sprintf("Elements")) + st.value.Render(fmt.Sprint(len(m.sess.Array()))) + "\n")
	s.WriteString(st.label.Render(p.Sprintf("Total steps")) + st.value.Render(fmt.Sprint(player.Len())) + "\n")
	s.WriteString(st.label.Render(p.Sprintf("Status")) + st.value.Render(p.Sprintf(statusLabel(player.Status()))) + "\n")
	s.WriteString(st.label.Render(p.Sprintf("Speed")) + st.value.Render(p.Sprintf("%d ms", player.Speed().Milliseconds())) + "\n")

	if player.Index() > 0 {
		series := metrics.Series(player.Steps()[:player.Index()+1], metrics.NewComparisons())
		chart := asciigraph.Plot(series,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption(p.Sprintf("Comparisons so far")),
		)
		s.WriteString("\n" + st.muted.Render(chart) + "\n")
	}

	s.WriteString("\n" + Separator(46, m.theme) + "\n")
	s.WriteString(st.selected.Render(p.Sprintf("Algorithm comparison")) + "\n")
	header := fmt.Sprintf("  %-16s %6s %11s %7s", "", p.Sprintf("Steps"), p.Sprintf("Comparisons"), p.Sprintf("Swaps"))
	s.WriteString(st.muted.Render(header) + "\n")
	for _, c := range m.comparisons {
		line := fmt.Sprintf("%-16s %6d %11d %7d", c.Name, c.Steps, c.Comparisons, c.Swaps)
		if c.ID == m.sess.Algorithm() {
			s.WriteString(st.selected.Render("> "+line) + "\n")
		} else {
			s.WriteString(st.value.Render("  "+line) + "\n")
		}
	}
	return st.panel.Render(s.String())
}

func (m Model) helpView() string {
	p := m.printer
	keys := []struct{ key, label string }{
		{"Space", "Play / pause"},
		{"←/→ h/l", "Step backward / forward"},
		{"R", "Reset"},
		{"N", "New array"},
		{"Tab", "Next algorithm"},
		{"+/-", "Faster / slower"},
		{"T", "Cycle themes"},
		{"L", "Switch language"},
		{"?", "Toggle this help"},
		{"Q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.selected.Render(p.Sprintf("Keyboard shortcuts")) + "\n\n")
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("  %-9s %s\n", k.key, p.Sprintf(k.label)))
	}
	return m.styles.panel.Render(b.String())
}
