package theme

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mmuldo/dgcolor/names"
)

func testResolver(t *testing.T) *names.Resolver {
	t.Helper()
	tb, e := names.NewTable([]names.Entry{
		{Hex: "FF0000", Name: "Red"},
		{Hex: "0000FF", Name: "Blue"},
		{Hex: "7DEB74", Name: "Screamin' Green"},
	})
	if e != nil {
		t.Fatal(e)
	}
	return names.NewResolver(tb)
}

func TestCreate(t *testing.T) {
	th, e := Create([]string{"#FE0101", "0000ff", "#7DEB74"}, testResolver(t), names.EuclideanRGB)
	if e != nil {
		t.Fatal(e)
	}

	if diff := cmp.Diff([]string{"Red", "Blue", "Screamin' Green"}, th.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}
	want := map[string]string{"Red": "#fe0101", "Blue": "#0000ff", "Screamin' Green": "#7deb74"}
	if diff := cmp.Diff(want, th.ByName()); diff != "" {
		t.Errorf("ByName mismatch (-want +got):\n%s", diff)
	}
	if th[1].Lab != th[1].RGB.Lab() {
		t.Errorf("swatch Lab = %+v", th[1].Lab)
	}
}

func TestCreateBadColor(t *testing.T) {
	if _, e := Create([]string{"#FF0000", "oops"}, testResolver(t), names.EuclideanRGB); e == nil {
		t.Error("Create accepted a malformed color")
	}
}

func TestRenderText(t *testing.T) {
	th, e := Create([]string{"#FF0000", "#7DEB74"}, testResolver(t), names.WeightedEuclideanLab)
	if e != nil {
		t.Fatal(e)
	}

	o, e := Render(th, TextTemplate)
	if e != nil {
		t.Fatal(e)
	}

	lines := strings.Split(strings.TrimSpace(o), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines:\n%s", len(lines), o)
	}
	if !strings.HasPrefix(lines[0], "Red\t#ff0000\t53.23") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Screamin' Green\t#7deb74") {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestRenderHTML(t *testing.T) {
	th, e := Create([]string{"#0000FF"}, testResolver(t), names.EuclideanRGB)
	if e != nil {
		t.Fatal(e)
	}

	o, e := Render(th, HTMLTemplate)
	if e != nil {
		t.Fatal(e)
	}
	for _, s := range []string{"background:#0000ff", ">Blue<br>#0000ff<"} {
		if !strings.Contains(o, s) {
			t.Errorf("html output missing %q:\n%s", s, o)
		}
	}
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.tpl")
	if e := os.WriteFile(path, []byte(`{% for s in swatches %}{{ s.Name }};{% endfor %}`), 0644); e != nil {
		t.Fatal(e)
	}

	th, e := Create([]string{"#FF0000", "#0000FF"}, testResolver(t), names.EuclideanRGB)
	if e != nil {
		t.Fatal(e)
	}

	o, e := RenderFile(th, path)
	if e != nil || o != "Red;Blue;" {
		t.Errorf("RenderFile = %q, %v", o, e)
	}
}

func TestPreview(t *testing.T) {
	th, e := Create([]string{"#FF0000"}, testResolver(t), names.EuclideanRGB)
	if e != nil {
		t.Fatal(e)
	}

	var b bytes.Buffer
	if e := th.Preview(&b); e != nil {
		t.Fatal(e)
	}
	if want := "\033[38;2;255;0;0m#ff0000 Red\033[0m\n"; b.String() != want {
		t.Errorf("Preview = %q; want %q", b.String(), want)
	}
}
