// Package theme labels a set of colors with their nearest names and renders
// the result.
package theme

import (
	"fmt"
	"io"

	"github.com/flosch/pongo2"
	"github.com/mmuldo/dgcolor/names"
	"github.com/mmuldo/dgcolor/palette"
)

// Swatch is one named color of a Theme.
type Swatch struct {
	Hex   string
	RGB   palette.RGB
	Lab   palette.Lab
	Name  string
	Count int
}

// Theme is an ordered list of named colors.
type Theme []Swatch

// TextTemplate renders one "name hex L a b" line per swatch.
const TextTemplate = `{% autoescape off %}{% for s in swatches %}{{ s.Name }}	{{ s.Hex }}	{{ s.Lab.L|floatformat:2 }}	{{ s.Lab.A|floatformat:2 }}	{{ s.Lab.B|floatformat:2 }}
{% endfor %}{% endautoescape %}`

// HTMLTemplate renders a row of labelled color boxes.
const HTMLTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{ title }}</title></head>
<body>
<table style="border-collapse:collapse">
<tr>{% for s in swatches %}<td style="background:{{ s.Hex }};width:6em;height:4em"></td>{% endfor %}</tr>
<tr>{% for s in swatches %}<td style="font-family:sans-serif;font-size:small">{{ s.Name }}<br>{{ s.Hex }}</td>{% endfor %}</tr>
</table>
</body>
</html>
`

//**exported functions**//
// Create names each hex color in colors with r under metric m.
func Create(colors []string, r *names.Resolver, m names.Metric) (Theme, error) {
	t := make(Theme, 0, len(colors))

	for _, hex := range colors {
		c, e := palette.ParseHex(hex)
		if e != nil {
			return nil, e
		}

		name, e := r.Closest(hex, m)
		if e != nil {
			return nil, e
		}

		t = append(t, Swatch{Hex: c.Hex(), RGB: c, Lab: c.Lab(), Name: name})
	}

	return t, nil
}

// Names returns the swatch names in order.
func (t Theme) Names() []string {
	ns := make([]string, len(t))
	for i, s := range t {
		ns[i] = s.Name
	}
	return ns
}

// ByName maps each name to its hex value. When two swatches share a name the
// later one wins.
func (t Theme) ByName() map[string]string {
	m := make(map[string]string, len(t))
	for _, s := range t {
		m[s.Name] = s.Hex
	}
	return m
}

// Preview writes each swatch to w in its own 24-bit terminal color.
func (t Theme) Preview(w io.Writer) error {
	for _, s := range t {
		_, e := fmt.Fprintf(w, "\033[38;2;%d;%d;%dm%s %s\033[0m\n", s.RGB.R, s.RGB.G, s.RGB.B, s.Hex, s.Name)
		if e != nil {
			return e
		}
	}
	return nil
}

// Render executes the pongo2 template source tpl with the theme bound to
// "swatches".
func Render(t Theme, tpl string) (string, error) {
	p, e := pongo2.FromString(tpl)
	if e != nil {
		return "", e
	}
	return p.Execute(context(t))
}

// RenderFile is Render with the template read from path.
func RenderFile(t Theme, path string) (string, error) {
	p, e := pongo2.FromFile(path)
	if e != nil {
		return "", e
	}
	return p.Execute(context(t))
}

//**helper functions**//
func context(t Theme) pongo2.Context {
	return pongo2.Context{
		"title":    "dgcolor",
		"swatches": t,
		"names":    t.ByName(),
	}
}
