package treeview

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/myreality/pkg/scene"
)

func layout() scene.Layout {
	return scene.Layout{Points: []scene.Point{
		{ID: "home", Content: "Kitchen", Opacity: 1},
		{ID: "tea", ParentID: "home", Depth: 1, Ring: 1, Realm: scene.RealmPhysical, Opacity: 0.5},
		{ID: "cup", ParentID: "home", Depth: 1, Ring: 1, Opacity: 0.5},
		{ID: "lost", ParentID: "gone", Opacity: 1},
	}}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(layout(), Options{})

	for _, want := range []string{
		"digraph G {",
		`"home" [label="Kitchen", penwidth=2];`,
		`"tea" [label="tea", fontcolor="#00000080"];`,
		`"home" -> "tea";`,
		`"home" -> "cup";`,
		`{ rank=same; "home"; "lost"; } // depth 0`,
		`{ rank=same; "tea"; "cup"; } // depth 1`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	if strings.Contains(dot, `"gone"`) {
		t.Error("missing parent should not become a node or edge")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(layout(), Options{Detailed: true})
	if !strings.Contains(dot, `label="tea\ndepth: 1\nring: 1\nrealm: physical"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(scene.Layout{}, Options{})
	if !strings.HasPrefix(dot, "digraph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("unexpected DOT for empty layout:\n%s", dot)
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(layout(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	out := string(svg)
	if !strings.Contains(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("svg header not normalized:\n%.200s", out)
	}
	if !strings.Contains(out, "Kitchen") {
		t.Error("rendered svg should contain node labels")
	}
}

func TestRenderSVGBadDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "digraph {"); err == nil {
		t.Error("expected parse error")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}
}
