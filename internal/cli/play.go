package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nailbox"
	"github.com/SeamusWaldron/nailbox/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play <sequence-file>",
	Short: "Step through a sequence interactively",
	Long: `Step through a thread sequence one pull at a time.

Keyboard shortcuts:
  n/SPACE/→  - Next step
  p/←        - Previous step
  g          - Go to step (type a number, Enter to jump, Esc to cancel)
  a          - Toggle showing every step up to the current one
  r          - Reload the sequence file
  q/Esc      - Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

var (
	playShowAll bool
	playLog     bool
)

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVarP(&playShowAll, "show-all", "a", false, "Start with every step up to the current one shown")
	playCmd.Flags().BoolVar(&playLog, "log", false, "Record the session to a JSONL log")
}

func runPlay(cmd *cobra.Command, args []string) error {
	box, cfg, err := openBox(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	// Fail before entering the TUI if the file is unusable.
	if _, err := readSequence(path, box); err != nil {
		return err
	}

	logger := session.NewLogger()
	if playLog || cfg.LogDir != "" {
		dir, err := logDir(cfg)
		if err != nil {
			return err
		}
		if err := logger.Start(dir, path, box.N()); err != nil {
			return err
		}
		defer logger.Close()
		debugf("logging to %s\n", logger.FilePath())
	}

	showAll := playShowAll || (cfg.ShowAll && !cmd.Flags().Changed("show-all"))
	model := newPlayModel(nailbox.NewPlayer(box), logger, path, showAll)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("player error: %w", err)
	}

	if path := logger.FilePath(); path != "" {
		fmt.Printf("Session log: %s\n", path)
	}
	return nil
}

// maxFaceMapSize is the largest n drawn as a face map.
const maxFaceMapSize = 30

// recentSteps is how many earlier steps are listed in show-all mode.
const recentSteps = 8

// fileLoadedMsg is sent once the whole sequence file has been read.
type fileLoadedMsg struct {
	contents string
	err      error
}

type playModel struct {
	player   *nailbox.Player
	logger   *session.Logger
	path     string
	showAll  bool
	jump     textinput.Model
	jumping  bool
	err      error
	quitting bool
}

func newPlayModel(player *nailbox.Player, logger *session.Logger, path string, showAll bool) *playModel {
	jump := textinput.New()
	jump.Placeholder = "step"
	jump.Prompt = "Go to step: "
	jump.CharLimit = 9

	return &playModel{
		player:  player,
		logger:  logger,
		path:    path,
		showAll: showAll,
		jump:    jump,
	}
}

func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		return fileLoadedMsg{contents: string(data), err: err}
	}
}

func (m *playModel) Init() tea.Cmd {
	return loadFile(m.path)
}

// dispatch sends ev to the player and records the outcome.
func (m *playModel) dispatch(ev nailbox.Event) {
	status, err := m.player.Handle(ev)
	if logErr := m.logger.LogEvent(ev, status, err); logErr != nil && err == nil {
		err = fmt.Errorf("session log: %w", logErr)
	}
	m.err = err
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileLoadedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("failed to read %s: %w", m.path, msg.err)
			return m, nil
		}
		m.dispatch(nailbox.LoadEvent{Contents: msg.contents})
		if m.err == nil {
			m.dispatch(nailbox.ShowAllEvent{On: m.showAll})
			if err := m.player.Sequence().Validate(m.player.Box()); err != nil {
				m.err = err
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.jumping {
			return m.updateJump(msg)
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "n", " ", "right", "l":
			m.dispatch(nailbox.NextEvent{})

		case "p", "left", "h":
			m.dispatch(nailbox.PrevEvent{})

		case "g":
			m.jumping = true
			m.jump.Reset()
			return m, m.jump.Focus()

		case "a":
			m.showAll = !m.player.ShowAll()
			m.dispatch(nailbox.ShowAllEvent{On: m.showAll})

		case "r":
			return m, loadFile(m.path)
		}
	}

	return m, nil
}

func (m *playModel) updateJump(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.jumping = false
		m.jump.Blur()
		m.dispatch(nailbox.JumpEvent{Input: m.jump.Value()})
		return m, nil

	case "esc", "ctrl+c":
		m.jumping = false
		m.jump.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

func (m *playModel) View() string {
	if m.quitting {
		return "Player closed.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Nail Box Player"))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.path))
	b.WriteString("\n\n")

	status := m.player.Status()
	progress := fmt.Sprintf("Step %d/%d", status.Step, status.Total)
	if status.ShowAll {
		progress += " [SHOW ALL]"
	}
	b.WriteString(stepStyle.Render(progress))
	b.WriteString("\n")
	b.WriteString(instructionStyle.Render(status.Instruction))
	b.WriteString("\n\n")

	seg, ok, segErr := m.player.CurrentSegment()
	if segErr != nil {
		b.WriteString(errorStyle.Render(segErr.Error()))
		b.WriteString("\n\n")
	} else if ok {
		b.WriteString(m.faceMaps(seg))
		b.WriteString("\n")
		if status.ShowAll {
			b.WriteString(m.recentView())
		}
	}

	if m.jumping {
		b.WriteString(m.jump.View())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "n/SPACE=next  p=prev  g=go to  a=show all  r=reload  q=quit"
	if m.jumping {
		help = "ENTER=jump  ESC=cancel"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

// faceMaps draws the faces holding the start and end nails of seg.
func (m *playModel) faceMaps(seg nailbox.ResolvedSegment) string {
	n := m.player.Box().N()
	if n > maxFaceMapSize {
		return statusStyle.Render(fmt.Sprintf("(face maps hidden for %d nails per side)", n)) + "\n"
	}

	start, end := seg.Segment.Start, seg.Segment.End
	if start.Face == end.Face {
		return renderFaceMap(n, start.Face, &start, &end) + "\n"
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderFaceMap(n, start.Face, &start, nil),
		" ",
		renderFaceMap(n, end.Face, nil, &end),
	) + "\n"
}

// renderFaceMap draws an n x n face with row 1 at the top. Marked nails
// are shown as S (start) and E (end).
func renderFaceMap(n int, face nailbox.Face, start, end *nailbox.Address) string {
	var b strings.Builder
	fmt.Fprintf(&b, "F%d %s\n", int(face)+1, face)

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			a := nailbox.Address{Face: face, Row: row, Col: col}
			switch {
			case start != nil && *start == a:
				b.WriteString(startNailStyle.Render("S"))
			case end != nil && *end == a:
				b.WriteString(endNailStyle.Render("E"))
			default:
				b.WriteString(statusStyle.Render("·"))
			}
		}
		if row < n-1 {
			b.WriteString("\n")
		}
	}
	return faceMapStyle.Render(b.String())
}

// recentView lists the latest steps drawn in show-all mode.
func (m *playModel) recentView() string {
	lines, err := m.player.RenderView(true)
	if err != nil {
		return errorStyle.Render(err.Error()) + "\n"
	}

	var b strings.Builder
	b.WriteString(statusStyle.Render(fmt.Sprintf("Threads drawn: %d", len(lines))))
	b.WriteString("\n")

	if len(lines) > recentSteps {
		lines = lines[len(lines)-recentSteps:]
		b.WriteString(statusStyle.Render("  ..."))
		b.WriteString("\n")
	}
	seq := m.player.Sequence()
	for _, l := range lines {
		text := fmt.Sprintf("  %d. %s", l.Step, seq.Segment(l.Step-1).Instruction())
		if l.Style == nailbox.StyleHighlighted {
			b.WriteString(instructionStyle.Render(text))
		} else {
			b.WriteString(statusStyle.Render(text))
		}
		b.WriteString("\n")
	}
	return b.String()
}
