package oxml

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"pml/schema"
)

// Shape wraps a <p:sp> element: an auto shape, placeholder or text box.
type Shape struct {
	el *etree.Element
}

// newShapeBase builds the common <p:sp> skeleton: non-visual properties
// block plus an empty spPr.
func newShapeBase(id int, name string) *etree.Element {
	sp := etree.NewElement("p:sp")
	declareNamespaces(sp, "a", "p")

	nvSpPr := sp.CreateElement("p:nvSpPr")
	cNvPr := nvSpPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", name)
	nvSpPr.CreateElement("p:cNvSpPr")
	nvSpPr.CreateElement("p:nvPr")

	sp.CreateElement("p:spPr")
	return sp
}

// addXfrm appends an <a:xfrm> with offset and extents in EMU.
func addXfrm(parent *etree.Element, left, top, width, height int64) {
	xfrm := parent.CreateElement("a:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", strconv.FormatInt(left, 10))
	off.CreateAttr("y", strconv.FormatInt(top, 10))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", strconv.FormatInt(width, 10))
	ext.CreateAttr("cy", strconv.FormatInt(height, 10))
}

// addPrstGeom appends an <a:prstGeom> with an empty adjust value list.
func addPrstGeom(parent *etree.Element, prst string) {
	geom := parent.CreateElement("a:prstGeom")
	geom.CreateAttr("prst", prst)
	geom.CreateElement("a:avLst")
}

// NewAutoShape returns a new <p:sp> element configured as a base auto
// shape with the given preset geometry. The preset name is validated by
// the consuming application, not here.
func NewAutoShape(id int, name, prst string, left, top, width, height int64) *Shape {
	sp := newShapeBase(id, name)

	spPr := sp.SelectElement("p:spPr")
	addXfrm(spPr, left, top, width, height)
	addPrstGeom(spPr, prst)

	style := sp.CreateElement("p:style")
	for _, ref := range []struct {
		tag, idx, clr string
	}{
		{"a:lnRef", "1", "accent1"},
		{"a:fillRef", "3", "accent1"},
		{"a:effectRef", "2", "accent1"},
		{"a:fontRef", "minor", "lt1"},
	} {
		r := style.CreateElement(ref.tag)
		r.CreateAttr("idx", ref.idx)
		r.CreateElement("a:schemeClr").CreateAttr("val", ref.clr)
	}

	txBody := sp.CreateElement("p:txBody")
	bodyPr := txBody.CreateElement("a:bodyPr")
	bodyPr.CreateAttr("rtlCol", "0")
	bodyPr.CreateAttr("anchor", "ctr")
	txBody.CreateElement("a:lstStyle")
	p := txBody.CreateElement("a:p")
	p.CreateElement("a:pPr").CreateAttr("algn", "ctr")

	return &Shape{el: sp}
}

// NewPlaceholder returns a new <p:sp> element configured as a placeholder
// shape. Attributes equal to their defaults (obj type, horizontal
// orientation, full size, index 0) are omitted, which is the minimal
// markup consumers expect. A text body is added only for placeholder
// types that carry text.
func NewPlaceholder(id int, name, phType, orient, sz string, idx int) *Shape {
	sp := newShapeBase(id, name)

	// placeholder shapes get a "no group" lock
	cNvSpPr := sp.FindElement("p:nvSpPr/p:cNvSpPr")
	cNvSpPr.CreateElement("a:spLocks").CreateAttr("noGrp", "1")

	ph := sp.FindElement("p:nvSpPr/p:nvPr").CreateElement("p:ph")
	if phType != schema.PHTypeObject {
		ph.CreateAttr("type", phType)
	}
	if orient != schema.PHOrientHorz {
		ph.CreateAttr("orient", orient)
	}
	if sz != schema.PHSizeFull {
		ph.CreateAttr("sz", sz)
	}
	if idx != 0 {
		ph.CreateAttr("idx", strconv.Itoa(idx))
	}

	if schema.PlaceholderHasTextFrame(phType) {
		sp.AddChild(NewTextBody().Element())
	}

	return &Shape{el: sp}
}

// NewTextbox returns a new <p:sp> element configured as a text box: no
// fill, auto-fit body, txBox flag set.
func NewTextbox(id int, name string, left, top, width, height int64) *Shape {
	sp := newShapeBase(id, name)

	sp.FindElement("p:nvSpPr/p:cNvSpPr").CreateAttr("txBox", "1")

	spPr := sp.SelectElement("p:spPr")
	addXfrm(spPr, left, top, width, height)
	addPrstGeom(spPr, "rect")
	spPr.CreateElement("a:noFill")

	txBody := sp.CreateElement("p:txBody")
	bodyPr := txBody.CreateElement("a:bodyPr")
	bodyPr.CreateAttr("wrap", "none")
	bodyPr.CreateElement("a:spAutoFit")
	txBody.CreateElement("a:lstStyle")
	txBody.CreateElement("a:p")

	return &Shape{el: sp}
}

// WrapShape wraps an existing <p:sp> element.
func WrapShape(el *etree.Element) *Shape {
	return &Shape{el: el}
}

// Element returns the underlying element.
func (s *Shape) Element() *etree.Element {
	return s.el
}

func (s *Shape) txBoxFlag() bool {
	cNvSpPr := s.el.FindElement("p:nvSpPr/p:cNvSpPr")
	if cNvSpPr == nil {
		return false
	}
	v := cNvSpPr.SelectAttrValue("txBox", "")
	return v == "1" || v == "true"
}

// IsAutoshape reports whether the shape has a preset geometry and is not
// flagged as a text box.
func (s *Shape) IsAutoshape() bool {
	return s.PrstGeom() != nil && !s.txBoxFlag()
}

// IsTextbox reports whether the shape carries the txBox flag.
func (s *Shape) IsTextbox() bool {
	return s.txBoxFlag()
}

// Prst returns the preset geometry name, or "" when the shape has no
// <a:prstGeom> child (a placeholder, for example).
func (s *Shape) Prst() string {
	geom := s.el.FindElement("p:spPr/a:prstGeom")
	if geom == nil {
		return ""
	}
	return geom.SelectAttrValue("prst", "")
}

// PrstGeom returns the preset geometry wrapper, or nil when absent.
func (s *Shape) PrstGeom() *PresetGeometry2D {
	geom := s.el.FindElement("p:spPr/a:prstGeom")
	if geom == nil {
		return nil
	}
	return &PresetGeometry2D{el: geom}
}

// PresetGeometry2D wraps an <a:prstGeom> element.
type PresetGeometry2D struct {
	el *etree.Element
}

// Guide is a geometry guide: a named adjust value.
type Guide struct {
	Name string
	Val  int
}

// Element returns the underlying element.
func (g *PresetGeometry2D) Element() *etree.Element {
	return g.el
}

// Prst returns the required prst attribute value.
func (g *PresetGeometry2D) Prst() string {
	return g.el.SelectAttrValue("prst", "")
}

// Guides returns the <a:gd> children of <a:avLst>, empty when none.
func (g *PresetGeometry2D) Guides() []Guide {
	avLst := g.el.SelectElement("a:avLst")
	if avLst == nil {
		return nil
	}
	var guides []Guide
	for _, gd := range avLst.SelectElements("a:gd") {
		val := 0
		fmt.Sscanf(gd.SelectAttrValue("fmla", ""), "val %d", &val)
		guides = append(guides, Guide{Name: gd.SelectAttrValue("name", ""), Val: val})
	}
	return guides
}

// RewriteGuides replaces all <a:gd> children of <a:avLst> with the given
// guides, creating the avLst if missing.
func (g *PresetGeometry2D) RewriteGuides(guides []Guide) {
	avLst := g.el.SelectElement("a:avLst")
	if avLst == nil {
		avLst = g.el.CreateElement("a:avLst")
	}
	for _, gd := range avLst.SelectElements("a:gd") {
		avLst.RemoveChild(gd)
	}
	for _, guide := range guides {
		gd := avLst.CreateElement("a:gd")
		gd.CreateAttr("name", guide.Name)
		gd.CreateAttr("fmla", fmt.Sprintf("val %d", guide.Val))
	}
}
