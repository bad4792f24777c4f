package picker

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/repolink/internal/vcs"
)

var testRefs = []vcs.Ref{
	{Name: "feature/login", Kind: vcs.Branch, Commit: "1111111111111111111111111111111111111111"},
	{Name: "main", Kind: vcs.Branch, Commit: "2222222222222222222222222222222222222222"},
	{Name: "release/2.0", Kind: vcs.Branch, Commit: "3333333333333333333333333333333333333333"},
	{Name: "v1.0", Kind: vcs.Tag, Commit: "4444444444444444444444444444444444444444"},
}

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(key)[0]
	return tea.KeyPressMsg{Code: r, Text: key}
}

func newTestModel(t *testing.T) *model {
	t.Helper()
	m := newModel("Revision", testRefs)
	m.Init()
	return m
}

func typeText(m *model, text string) {
	for _, r := range text {
		m.Update(keyMsg(string(r)))
	}
}

func TestModel_SelectWithoutFilter(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(keyMsg("down"))
	_, cmd := m.Update(keyMsg("enter"))
	if cmd == nil {
		t.Error("enter should quit the program")
	}

	ref, ok := m.selection()
	if !ok {
		t.Fatal("selection() ok = false, want true")
	}
	if ref.Name != "main" {
		t.Errorf("selection() = %q, want %q", ref.Name, "main")
	}
}

func TestModel_CursorStaysInBounds(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(keyMsg("up"))
	if m.cursor != 0 {
		t.Errorf("cursor after up at top = %d, want 0", m.cursor)
	}
	for range len(testRefs) + 3 {
		m.Update(keyMsg("down"))
	}
	if m.cursor != len(testRefs)-1 {
		t.Errorf("cursor after many downs = %d, want %d", m.cursor, len(testRefs)-1)
	}
}

func TestModel_FuzzyFilter(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	typeText(m, "rel2")

	if len(m.filtered) != 1 {
		t.Fatalf("filtered = %d refs, want 1", len(m.filtered))
	}
	m.Update(keyMsg("enter"))
	ref, ok := m.selection()
	if !ok || ref.Name != "release/2.0" {
		t.Errorf("selection() = %q, %v; want release/2.0", ref.Name, ok)
	}
}

func TestModel_NoMatchesIgnoresEnter(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	typeText(m, "zzz")
	if len(m.filtered) != 0 {
		t.Fatalf("filtered = %d refs, want 0", len(m.filtered))
	}
	m.Update(keyMsg("enter"))
	if _, ok := m.selection(); ok {
		t.Error("selection() ok = true with no matches")
	}
	if !strings.Contains(m.render(), "No matching refs") {
		t.Error("View() should say there are no matches")
	}
}

func TestModel_EscClearsFilterThenCancels(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	typeText(m, "main")
	m.Update(keyMsg("esc"))
	if m.input.Value() != "" {
		t.Errorf("filter after esc = %q, want empty", m.input.Value())
	}
	if len(m.filtered) != len(testRefs) {
		t.Errorf("filtered after esc = %d, want all %d", len(m.filtered), len(testRefs))
	}
	if m.cancelled {
		t.Fatal("first esc should only clear the filter")
	}

	m.Update(keyMsg("esc"))
	if !m.cancelled {
		t.Error("second esc should cancel")
	}
	if _, ok := m.selection(); ok {
		t.Error("selection() ok = true after cancel")
	}
}

func TestModel_CtrlCCancels(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.Update(keyMsg("ctrl+c"))
	if !m.cancelled {
		t.Error("ctrl+c should cancel")
	}
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	view := m.render()
	for _, want := range []string{"Revision", "feature/login", "v1.0", "tag", "4444444"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestPick_Empty(t *testing.T) {
	t.Parallel()

	_, ok, err := Pick("Revision", nil)
	if err != nil || ok {
		t.Errorf("Pick(nil) = %v, %v; want false, nil", ok, err)
	}
}
