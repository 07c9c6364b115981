package icon

import (
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/image/font"
)

// Generator renders icon specs and writes them into Dir.
type Generator struct {
	Dir  string    // output directory; must exist
	Out  io.Writer // receives one confirmation line per file
	Face font.Face // typeface for the initials
}

// Generate processes specs in order. It stops at the first failure and
// returns a *SpecError naming the icon that failed.
func (g *Generator) Generate(specs []Spec) error {
	out := g.Out
	if out == nil {
		out = io.Discard
	}

	for _, s := range specs {
		if err := g.generateOne(s); err != nil {
			return &SpecError{Filename: s.Filename, Err: err}
		}
		fmt.Fprintf(out, "Created %s\n", filepath.ToSlash(filepath.Join(g.Dir, s.Filename)))
	}
	fmt.Fprintln(out, "All placeholder images created successfully!")
	return nil
}

func (g *Generator) generateOne(s Spec) error {
	img, err := Render(s, g.Face)
	if err != nil {
		return err
	}
	return Write(img, filepath.Join(g.Dir, s.Filename))
}

// Run writes the Companies icons into dir using the default face.
func Run(dir string, out io.Writer) error {
	g := &Generator{Dir: dir, Out: out, Face: DefaultFace()}
	return g.Generate(Companies)
}
