// Package picker provides the interactive revision picker behind "repolink url -i".
//
// It lists branches and tags, filters them with fuzzy matching as the user
// types, and returns the chosen ref. The UI renders on stderr so stdout stays
// reserved for the URL.
package picker

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/sahilm/fuzzy"

	"github.com/raphi011/repolink/internal/ui/styles"
	"github.com/raphi011/repolink/internal/vcs"
)

// maxVisible is the number of list rows shown at once.
const maxVisible = 10

// shortHashLen is how much of a commit hash the list shows.
const shortHashLen = 7

// refSource implements fuzzy.Source over ref names.
type refSource []vcs.Ref

func (s refSource) String(i int) string { return s[i].Name }
func (s refSource) Len() int            { return len(s) }

// model is a single-screen fuzzy list over refs.
type model struct {
	title    string
	input    textinput.Model
	refs     []vcs.Ref
	filtered []fuzzy.Match
	filter   string
	cursor   int // position in filtered

	done      bool
	cancelled bool
	chosen    int // index into refs; -1 means no selection
}

func newModel(title string, refs []vcs.Ref) *model {
	ti := textinput.New()
	ti.Placeholder = "type to filter"
	ti.Prompt = "> "
	ti.SetWidth(40)

	st := ti.Styles()
	st.Cursor.Shape = tea.CursorBar
	st.Cursor.Blink = true
	ti.SetStyles(st)

	m := &model{
		title:  title,
		input:  ti,
		refs:   refs,
		chosen: -1,
	}
	m.applyFilter()
	return m
}

func (m *model) Init() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

// Update handles key presses; other messages only reach the text input.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	case "esc":
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.applyFilter()
			return m, nil
		}
		m.cancelled = true
		return m, tea.Quit
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if len(m.filtered) == 0 {
			return m, nil
		}
		m.chosen = m.filtered[m.cursor].Index
		m.done = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if m.input.Value() != m.filter {
		m.applyFilter()
	}
	return m, cmd
}

// applyFilter recomputes the visible refs from the input value.
// An empty filter lists every ref in its original order.
func (m *model) applyFilter() {
	m.filter = m.input.Value()
	if m.filter == "" {
		m.filtered = make([]fuzzy.Match, len(m.refs))
		for i, r := range m.refs {
			m.filtered[i] = fuzzy.Match{Str: r.Name, Index: i}
		}
	} else {
		m.filtered = fuzzy.FindFrom(m.filter, refSource(m.refs))
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}
}

func (m *model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *model) render() string {
	if m.done || m.cancelled {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle().Render(m.title) + "\n")
	b.WriteString(m.input.View() + "\n\n")

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.filtered))

	if start > 0 {
		b.WriteString(styles.MutedStyle().Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.filtered[i], i == m.cursor) + "\n")
	}
	if end < len(m.filtered) {
		b.WriteString(styles.MutedStyle().Render("  ↓ more below") + "\n")
	}
	if len(m.filtered) == 0 {
		b.WriteString(styles.ErrorStyle().Render("  No matching refs") + "\n")
	}

	b.WriteString("\n" + styles.MutedStyle().Render("↑/↓ select • type to filter • enter confirm • esc cancel") + "\n")
	return b.String()
}

func (m *model) renderRow(match fuzzy.Match, selected bool) string {
	ref := m.refs[match.Index]

	cursor := "  "
	style := styles.NormalStyle()
	if selected {
		cursor = "> "
		style = styles.SelectedStyle()
	}

	label := style.Render(ref.Name)
	if len(match.MatchedIndexes) > 0 {
		label = highlight(ref.Name, match.MatchedIndexes, style)
	}

	detail := fmt.Sprintf("%-6s %s", ref.Kind, shortHash(ref.Commit))
	return cursor + label + "  " + styles.MutedStyle().Render(detail)
}

// highlight renders s with the runes at matched indexes emphasized.
func highlight(s string, matched []int, base lipgloss.Style) string {
	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}
	var b strings.Builder
	for i, r := range []rune(s) {
		if set[i] {
			b.WriteString(styles.HighlightStyle().Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

func shortHash(h string) string {
	if len(h) > shortHashLen {
		return h[:shortHashLen]
	}
	return h
}

// selection returns the chosen ref, if any.
func (m *model) selection() (vcs.Ref, bool) {
	if m.cancelled || !m.done || m.chosen < 0 {
		return vcs.Ref{}, false
	}
	return m.refs[m.chosen], true
}

// Pick shows refs in a fuzzy list on stderr and returns the one chosen.
// ok is false if the user cancelled or refs is empty.
func Pick(title string, refs []vcs.Ref) (ref vcs.Ref, ok bool, err error) {
	if len(refs) == 0 {
		return vcs.Ref{}, false, nil
	}

	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(newModel(title, refs),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)

	final, err := p.Run()
	if err != nil {
		return vcs.Ref{}, false, err
	}
	ref, ok = final.(*model).selection()
	return ref, ok, nil
}
