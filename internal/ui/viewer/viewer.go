// Package viewer implements the file viewer TUI: a modal, vim-style
// read-only view over a syntax-colorized document.
package viewer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/glintdev/glint/internal/config"
	"github.com/glintdev/glint/internal/log"
	"github.com/glintdev/glint/internal/syntax"
	"github.com/glintdev/glint/internal/ui/styles"
	"github.com/glintdev/glint/internal/watcher"
)

// Mode represents the current viewer mode. The viewer is read-only, so the
// modal layer covers navigation and the help overlay.
type Mode int

const (
	// ModeNormal is the default mode for navigation.
	ModeNormal Mode = iota
	// ModeHelp shows the keybinding help overlay.
	ModeHelp
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// fileReloadedMsg carries freshly read file content.
type fileReloadedMsg struct {
	text string
	err  error
}

// fileChangedMsg signals that the watcher saw the file change on disk.
type fileChangedMsg struct{}

// Model is the viewer's Bubble Tea model.
type Model struct {
	path string
	doc  *syntax.Document
	cfg  config.Config
	keys KeyMap

	mode   Mode
	width  int
	height int
	offset int

	cache   *renderCache
	watcher *watcher.Watcher
	changes <-chan struct{}
}

// New creates a viewer for the file at path. The syntax mode is looked up by
// extension; files with no matching mode display unstyled.
func New(path string, cfg config.Config) (*Model, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	mode := syntax.ForPath(path)
	if mode != nil {
		log.Info(log.CatSyntax, "mode selected", "mode", mode.Name, "path", path)
	} else {
		log.Info(log.CatSyntax, "no mode for file", "path", path)
	}

	m := &Model{
		path:  path,
		doc:   syntax.NewDocument(mode, string(data)),
		cfg:   cfg,
		keys:  DefaultKeyMap(),
		cache: newRenderCache(),
	}

	if cfg.AutoReload {
		w, err := watcher.New(watcher.Config{
			FilePath:    path,
			DebounceDur: time.Duration(cfg.AutoReloadDebounce) * time.Millisecond,
		})
		if err != nil {
			return nil, fmt.Errorf("creating watcher: %w", err)
		}
		ch, err := w.Start()
		if err != nil {
			return nil, fmt.Errorf("starting watcher: %w", err)
		}
		m.watcher = w
		m.changes = ch
	}

	return m, nil
}

// Close releases the watcher resources.
func (m *Model) Close() error {
	if m.watcher != nil {
		return m.watcher.Stop()
	}
	return nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange returns a command that blocks on the watcher channel.
func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// reloadFile returns a command that re-reads the file from disk.
func (m *Model) reloadFile() tea.Cmd {
	path := m.path
	return func() tea.Msg {
		data, err := os.ReadFile(path) //nolint:gosec // G304: same path the viewer was opened with
		if err != nil {
			return fileReloadedMsg{err: err}
		}
		return fileReloadedMsg{text: string(data)}
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.cache.Flush()
		m.clampOffset()
		return m, nil

	case fileChangedMsg:
		log.Debug(log.CatWatch, "file changed, reloading", "path", m.path)
		return m, tea.Batch(m.reloadFile(), m.waitForChange())

	case fileReloadedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatDoc, "reload failed", msg.err, "path", m.path)
			return m, nil
		}
		m.doc.Reload(msg.text)
		m.cache.Flush()
		m.clampOffset()
		log.Info(log.CatDoc, "reloaded", "path", m.path, "lines", m.doc.LineCount())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeHelp {
		// Any key leaves help.
		m.mode = ModeNormal
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.HalfUp):
		m.scrollBy(-m.contentHeight() / 2)
	case key.Matches(msg, m.keys.HalfDown):
		m.scrollBy(m.contentHeight() / 2)
	case key.Matches(msg, m.keys.Top):
		m.offset = 0
	case key.Matches(msg, m.keys.Bottom):
		m.offset = m.maxOffset()
	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadFile()
	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
	}
	return m, nil
}

func (m *Model) scrollBy(n int) {
	m.offset += n
	m.clampOffset()
}

func (m *Model) contentHeight() int {
	h := m.height
	if m.cfg.UI.ShowStatusBar {
		h--
	}
	return max(h, 0)
}

func (m *Model) maxOffset() int {
	return max(m.doc.LineCount()-m.contentHeight(), 0)
}

func (m *Model) clampOffset() {
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// gutterWidth returns the width of the line-number gutter, or 0 when line
// numbers are off.
func (m *Model) gutterWidth() int {
	if !m.cfg.UI.ShowLineNumbers {
		return 0
	}
	digits := len(fmt.Sprint(m.doc.LineCount()))
	return digits + 1
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.mode == ModeHelp {
		return m.helpView()
	}

	var b strings.Builder
	gw := m.gutterWidth()
	contentWidth := m.width - gw
	height := m.contentHeight()

	for row := 0; row < height; row++ {
		i := m.offset + row
		if i >= m.doc.LineCount() {
			b.WriteString("~")
		} else {
			if gw > 0 {
				b.WriteString(styles.LineNumber.Render(fmt.Sprintf("%*d ", gw-1, i+1)))
			}
			b.WriteString(m.renderedLine(i, contentWidth))
		}
		if row < height-1 {
			b.WriteByte('\n')
		}
	}

	if m.cfg.UI.ShowStatusBar {
		b.WriteByte('\n')
		b.WriteString(m.statusBar())
	}
	return b.String()
}

// renderedLine returns line i rendered at the given width, via the cache.
func (m *Model) renderedLine(i, width int) string {
	if s, ok := m.cache.Get(i, width); ok {
		return s
	}
	s := renderLine(m.doc.Runes(i), m.doc.Spans(i), width, m.cfg.UI.TabWidth)
	m.cache.Set(i, width, s)
	return s
}

// statusBar renders the bottom status line: mode badge, file path, syntax
// mode, and position.
func (m *Model) statusBar() string {
	modeName := "plain"
	if m.doc.Mode() != nil {
		modeName = m.doc.Mode().Name
	}
	left := fmt.Sprintf(" %s  %s", m.mode, m.path)
	right := fmt.Sprintf("%s  %d/%d ", modeName, min(m.offset+1, m.doc.LineCount()), m.doc.LineCount())

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return styles.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", pad) + right)
}

// helpView renders the keybinding help overlay.
func (m *Model) helpView() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.HalfUp, m.keys.HalfDown,
		m.keys.Top, m.keys.Bottom, m.keys.Reload, m.keys.Help, m.keys.Quit,
	}

	var b strings.Builder
	b.WriteString("glint keybindings\n\n")
	for _, kb := range bindings {
		b.WriteString(fmt.Sprintf("  %-8s %s\n", kb.Help().Key, kb.Help().Desc))
	}
	b.WriteString("\npress any key to return")

	wrapped := wordwrap.String(b.String(), max(m.width-2, 10))
	return styles.HelpText.Render(wrapped)
}
