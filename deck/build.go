package deck

import (
	"fmt"

	"github.com/beevik/etree"

	"pml/chart"
	"pml/oxml"
)

// Fragment is one generated markup part, named after its place in the deck.
type Fragment struct {
	Name    string
	Element *etree.Element
}

// Build turns a validated deck into markup fragments. Shape ids are
// assigned sequentially per slide starting at 2, id 1 being reserved for
// the slide group shape. tableStyleID overrides the built-in table style
// when not empty.
func Build(d *Deck, tableStyleID string) ([]Fragment, error) {
	var frags []Fragment

	if d.Core != nil {
		core, err := buildCoreProps(d.Core)
		if err != nil {
			return nil, fmt.Errorf("core properties: %w", err)
		}
		frags = append(frags, Fragment{Name: "core", Element: core})
	}

	for i, slide := range d.Slides {
		for j, shape := range slide.Shapes {
			id := j + 2
			el, err := buildShape(&shape, id, tableStyleID)
			if err != nil {
				return nil, fmt.Errorf("slide %d shape %d: %w", i+1, j+1, err)
			}
			frags = append(frags, Fragment{
				Name:    fmt.Sprintf("slide%d-shape%d-%s", i+1, j+1, shape.Kind),
				Element: el,
			})

			if shape.Kind == KindChart {
				cs, err := chart.NewChartSpace(shape.Chart.RelID, shape.Chart.Headings, shape.Chart.Categories, shape.Chart.Values)
				if err != nil {
					return nil, fmt.Errorf("slide %d shape %d chart: %w", i+1, j+1, err)
				}
				frags = append(frags, Fragment{
					Name:    fmt.Sprintf("slide%d-shape%d-chartspace", i+1, j+1),
					Element: cs.Element(),
				})
			}
		}
	}
	return frags, nil
}

func buildShape(s *Shape, id int, tableStyleID string) (*etree.Element, error) {
	name := s.Name
	if len(name) == 0 {
		name = defaultName(s.Kind, id)
	}
	g := s.Geometry

	switch s.Kind {
	case KindAutoShape:
		return oxml.NewAutoShape(id, name, s.Prst, g.X, g.Y, g.CX, g.CY).Element(), nil
	case KindPlaceholder:
		return oxml.NewPlaceholder(id, name, s.PHType, s.Orient, s.Size, s.Index).Element(), nil
	case KindTextbox:
		return oxml.NewTextbox(id, name, g.X, g.Y, g.CX, g.CY).Element(), nil
	case KindPicture:
		return oxml.NewPicture(id, name, s.Desc, s.RelID, g.X, g.Y, g.CX, g.CY).Element(), nil
	case KindTable:
		styleID := s.StyleID
		if len(styleID) == 0 {
			styleID = tableStyleID
		}
		f := oxml.NewTableGraphicFrame(id, name, s.Rows, s.Cols, g.X, g.Y, g.CX, g.CY)
		if len(styleID) != 0 {
			f.Table().SetStyleID(styleID)
		}
		return f.Element(), nil
	case KindChart:
		return oxml.NewChartGraphicFrame(id, name, s.Chart.RelID, g.X, g.Y, g.CX, g.CY).Element(), nil
	}
	return nil, fmt.Errorf("unknown shape kind %q", s.Kind)
}

func defaultName(kind string, id int) string {
	// numbered the way interactive editors number new shapes
	n := id - 1
	switch kind {
	case KindAutoShape:
		return fmt.Sprintf("AutoShape %d", n)
	case KindPlaceholder:
		return fmt.Sprintf("Placeholder %d", n)
	case KindTextbox:
		return fmt.Sprintf("TextBox %d", n)
	case KindPicture:
		return fmt.Sprintf("Picture %d", n)
	case KindTable:
		return fmt.Sprintf("Table %d", n)
	case KindChart:
		return fmt.Sprintf("Chart %d", n)
	}
	return fmt.Sprintf("Shape %d", n)
}

func buildCoreProps(cp *CoreProps) (*etree.Element, error) {
	core := oxml.NewCoreProperties()

	for _, p := range []struct {
		val string
		set func(string) error
	}{
		{cp.Title, core.SetTitle},
		{cp.Author, core.SetAuthor},
		{cp.Subject, core.SetSubject},
		{cp.Keywords, core.SetKeywords},
		{cp.Comments, core.SetComments},
		{cp.Category, core.SetCategory},
		{cp.ContentStatus, core.SetContentStatus},
		{cp.Identifier, core.SetIdentifier},
		{cp.Language, core.SetLanguage},
		{cp.LastModifiedBy, core.SetLastModifiedBy},
		{cp.Version, core.SetVersion},
	} {
		if len(p.val) == 0 {
			continue
		}
		if err := p.set(p.val); err != nil {
			return nil, err
		}
	}

	if !cp.Created.IsZero() {
		if err := core.SetCreated(cp.Created); err != nil {
			return nil, err
		}
	}
	if !cp.Modified.IsZero() {
		if err := core.SetModified(cp.Modified); err != nil {
			return nil, err
		}
	}
	if !cp.LastPrinted.IsZero() {
		if err := core.SetLastPrinted(cp.LastPrinted); err != nil {
			return nil, err
		}
	}
	if cp.Revision != 0 {
		if err := core.SetRevision(cp.Revision); err != nil {
			return nil, err
		}
	}
	return core.Element(), nil
}
