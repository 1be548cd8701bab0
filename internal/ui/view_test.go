package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"filebrowse/internal/browse"
)

func TestRenderRowDefinedForEveryIndex(t *testing.T) {
	m := browseModel(t,
		[]browse.Entry{{Name: "b"}, {Name: "a"}},
		[]browse.Entry{{Name: "x.txt"}, {Name: "y.txt"}},
	)

	for i := 0; i < m.itemsLen(); i++ {
		if m.renderRow(i) == "" {
			t.Fatalf("renderRow(%d) rendered nothing", i)
		}
	}
}

func TestRenderRowDispatchesOnKind(t *testing.T) {
	m := browseModel(t,
		[]browse.Entry{{Name: "sub"}},
		[]browse.Entry{{Name: "a.txt", Size: 12}},
	)

	dirRow := m.renderRow(0)
	if !strings.Contains(dirRow, "sub/") {
		t.Fatalf("directory row missing trailing slash: %q", dirRow)
	}
	fileRow := m.renderRow(1)
	if !strings.Contains(fileRow, "a.txt") || !strings.Contains(fileRow, "12 B") {
		t.Fatalf("file row missing name or size: %q", fileRow)
	}
}

func TestViewShowsPathAndRecent(t *testing.T) {
	m := browseModel(t, nil, []browse.Entry{{Name: "a.txt"}})
	m.listIndex = 0
	res, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = res.(Model)

	out := m.View()
	if !strings.Contains(out, "/data") {
		t.Fatalf("view missing current path:\n%s", out)
	}
	if !strings.Contains(out, "Zuletzt geöffnet") || !strings.Contains(out, "a.txt") {
		t.Fatalf("view missing recent panel:\n%s", out)
	}
}

func TestViewEmptyListingShowsZeroRows(t *testing.T) {
	m := browseModel(t, nil, nil)
	if m.itemsLen() != 0 {
		t.Fatalf("expected zero rows, got %d", m.itemsLen())
	}
	out := m.View()
	if !strings.Contains(out, "Leeres Verzeichnis") {
		t.Fatalf("view missing empty notice:\n%s", out)
	}
}

func TestViewAfterQuitIsEmpty(t *testing.T) {
	m := browseModel(t, nil, nil)
	res, _ := m.Update(keyMsg("q"))
	m = res.(Model)
	if m.View() != "" {
		t.Fatalf("expected empty view after quit")
	}
}

func TestHumanSize(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 * 1024 * 1024, "3.0 MiB"},
	}
	for _, c := range cases {
		if got := humanSize(c.in); got != c.want {
			t.Fatalf("humanSize(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
