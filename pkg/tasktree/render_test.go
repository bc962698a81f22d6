package tasktree

import (
	"testing"
)

func TestRenderOpenRoot(t *testing.T) {
	got := renderOpen(1, 0, "-", "build")
	want := "\n- build"
	if got != want {
		t.Errorf("renderOpen root = %q, want %q", got, want)
	}
}

func TestRenderOpenNestedAdjacent(t *testing.T) {
	// Parent sits on the line directly above: no connector glyphs are
	// needed, only the leaf prefix at the parent's column.
	got := renderOpen(2, 1, "-", "compile")
	want := "\n\x1b[s\x1b[u  ┗━ - compile"
	if got != want {
		t.Errorf("renderOpen nested = %q, want %q", got, want)
	}
}

func TestRenderOpenSibling(t *testing.T) {
	// Parent is two rows up because a sibling resolved in between. The
	// sibling's corner becomes a tee and the vertical bar extends down.
	got := renderOpen(2, 2, "-", "lint")
	want := "\n\x1b[s\x1b[1A\x1b[3G┣\x1b[1D\x1b[1B┃\x1b[u  ┗━ - lint"
	if got != want {
		t.Errorf("renderOpen sibling = %q, want %q", got, want)
	}
}

func TestRenderOpenDeepSibling(t *testing.T) {
	// Depth 2 under a parent three rows up: tee at the parent column, two
	// vertical bars descending to the new line.
	got := renderOpen(3, 3, "-", "link")
	want := "\n\x1b[s\x1b[2A\x1b[8G┣\x1b[1D\x1b[1B┃\x1b[1D\x1b[1B┃\x1b[u       ┗━ - link"
	if got != want {
		t.Errorf("renderOpen deep sibling = %q, want %q", got, want)
	}
}

func TestRenderCloseBottomLine(t *testing.T) {
	// The bottom line keeps the cursor after the message so subsequent
	// output lands below it.
	got := renderClose(0, 0, "✔", "ok")
	want := "\x1b[s\x1b[1G✔ \x1b[Kok"
	if got != want {
		t.Errorf("renderClose bottom = %q, want %q", got, want)
	}
}

func TestRenderCloseMidScreen(t *testing.T) {
	// A mid-screen edit restores the cursor so the bottom line keeps
	// building undisturbed.
	got := renderClose(2, 1, "✘", "bad")
	want := "\x1b[s\x1b[2A\x1b[6G✘ \x1b[Kbad\x1b[u"
	if got != want {
		t.Errorf("renderClose mid-screen = %q, want %q", got, want)
	}
}

func TestRenderSpin(t *testing.T) {
	got := renderSpin([]int{1, 0}, "|")
	want := "\x1b[s\x1b[1A\x1b[1G|\x1b[u\x1b[s\x1b[6G|\x1b[u"
	if got != want {
		t.Errorf("renderSpin = %q, want %q", got, want)
	}
}

func TestRenderSpinEmpty(t *testing.T) {
	if got := renderSpin(nil, "-"); got != "" {
		t.Errorf("renderSpin empty = %q, want empty", got)
	}
}

func TestIndentColumn(t *testing.T) {
	cases := []struct {
		depth, want int
	}{
		{0, 1},
		{1, 6},
		{2, 11},
	}
	for _, c := range cases {
		if got := indentColumn(c.depth); got != c.want {
			t.Errorf("indentColumn(%d) = %d, want %d", c.depth, got, c.want)
		}
	}
}
