package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "tia.dev/pkg/tia/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display of long results.
type TUI struct {
	*SimpleUI
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		output:   cmd.OutOrStdout(),
	}
}

// DisplayImpact shows the impacted tests, paging them when they do not fit the terminal.
func (p *TUI) DisplayImpact(ctx context.Context, tests []m.ImpactedTest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newImpactModel(renderImpact(tests))

	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If list is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(p.output, "\n"+model.content())

		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

type pagerKeys struct {
	Quit     key.Binding
	Down     key.Binding
	Up       key.Binding
	Top      key.Binding
	Bottom   key.Binding
	PageDown key.Binding
	PageUp   key.Binding
}

func (k pagerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.PageDown, k.PageUp, k.Top, k.Bottom, k.Quit}
}

func (k pagerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultPagerKeys = pagerKeys{
	Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	PageDown: key.NewBinding(key.WithKeys("d", "pgdown"), key.WithHelp("d", "page down")),
	PageUp:   key.NewBinding(key.WithKeys("u", "pgup"), key.WithHelp("u", "page up")),
}

// impactModel pages pre-rendered impact output line by line.
type impactModel struct {
	lines    []string
	keys     pagerKeys
	help     help.Model
	height   int
	width    int
	offset   int
	quitting bool
}

func newImpactModel(rendered string) impactModel {
	return impactModel{
		lines:  strings.Split(strings.TrimRight(rendered, "\n"), "\n"),
		keys:   defaultPagerKeys,
		help:   help.New(),
		height: 24,
		width:  80,
	}
}

func (im impactModel) Init() tea.Cmd {
	return nil
}

func (im impactModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		im.height = msg.Height
		im.width = msg.Width
		im.help.Width = msg.Width
		im.offset = min(im.offset, im.maxOffset())

		return im, nil

	case tea.KeyMsg:
		return im.handleKeyPress(msg)
	}

	return im, nil
}

func (im impactModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, im.keys.Quit):
		im.quitting = true
		return im, tea.Quit
	case key.Matches(msg, im.keys.Down):
		im.offset = min(im.offset+1, im.maxOffset())
	case key.Matches(msg, im.keys.Up):
		im.offset = max(im.offset-1, 0)
	case key.Matches(msg, im.keys.Top):
		im.offset = 0
	case key.Matches(msg, im.keys.Bottom):
		im.offset = im.maxOffset()
	case key.Matches(msg, im.keys.PageDown):
		im.offset = min(im.offset+im.itemsPerPage(), im.maxOffset())
	case key.Matches(msg, im.keys.PageUp):
		im.offset = max(im.offset-im.itemsPerPage(), 0)
	}

	return im, nil
}

// itemsPerPage leaves room for the status and help lines.
func (im impactModel) itemsPerPage() int {
	const reservedLines = 3

	return max(im.height-reservedLines, 1)
}

func (im impactModel) maxOffset() int {
	return max(len(im.lines)-im.itemsPerPage(), 0)
}

func (im impactModel) needsPagination() bool {
	return len(im.lines) > im.itemsPerPage()
}

func (im impactModel) content() string {
	return strings.Join(im.lines, "\n") + "\n"
}

func (im impactModel) View() string {
	if im.quitting {
		return ""
	}

	end := min(im.offset+im.itemsPerPage(), len(im.lines))

	var b strings.Builder

	for _, line := range im.lines[im.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nlines %d-%d of %d  %s", im.offset+1, end, len(im.lines), im.help.View(im.keys))

	return b.String()
}
