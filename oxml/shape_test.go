package oxml

import (
	"testing"

	"pml/schema"
)

func TestNewAutoShape(t *testing.T) {
	s := NewAutoShape(2, "Rounded Rectangle 1", "roundRect", 914400, 457200, 1828800, 914400)
	sp := s.Element()

	cNvPr := sp.FindElement("p:nvSpPr/p:cNvPr")
	if got, want := cNvPr.SelectAttrValue("id", ""), "2"; got != want {
		t.Errorf("id = %q, want %q", got, want)
	}
	if got, want := cNvPr.SelectAttrValue("name", ""), "Rounded Rectangle 1"; got != want {
		t.Errorf("name = %q, want %q", got, want)
	}

	off := sp.FindElement("p:spPr/a:xfrm/a:off")
	if got, want := off.SelectAttrValue("x", ""), "914400"; got != want {
		t.Errorf("x = %q, want %q", got, want)
	}
	ext := sp.FindElement("p:spPr/a:xfrm/a:ext")
	if got, want := ext.SelectAttrValue("cy", ""), "914400"; got != want {
		t.Errorf("cy = %q, want %q", got, want)
	}

	if got, want := s.Prst(), "roundRect"; got != want {
		t.Errorf("Prst() = %q, want %q", got, want)
	}
	if sp.FindElement("p:spPr/a:prstGeom/a:avLst") == nil {
		t.Error("no empty adjust value list")
	}

	// style references use the accent1 scheme
	if got, want := sp.FindElement("p:style/a:fillRef").SelectAttrValue("idx", ""), "3"; got != want {
		t.Errorf("fillRef idx = %q, want %q", got, want)
	}
	if got, want := sp.FindElement("p:style/a:fontRef/a:schemeClr").SelectAttrValue("val", ""), "lt1"; got != want {
		t.Errorf("fontRef scheme color = %q, want %q", got, want)
	}

	if got, want := sp.FindElement("p:txBody/a:p/a:pPr").SelectAttrValue("algn", ""), "ctr"; got != want {
		t.Errorf("paragraph alignment = %q, want %q", got, want)
	}

	if !s.IsAutoshape() {
		t.Error("IsAutoshape() = false")
	}
	if s.IsTextbox() {
		t.Error("IsTextbox() = true")
	}
}

func TestNewPlaceholderAttrOmission(t *testing.T) {
	tests := []struct {
		name      string
		phType    string
		orient    string
		sz        string
		idx       int
		wantAttrs map[string]string
	}{
		{
			name:      "all defaults omitted",
			phType:    schema.PHTypeObject,
			orient:    schema.PHOrientHorz,
			sz:        schema.PHSizeFull,
			idx:       0,
			wantAttrs: map[string]string{},
		},
		{
			name:      "title keeps type only",
			phType:    schema.PHTypeTitle,
			orient:    schema.PHOrientHorz,
			sz:        schema.PHSizeFull,
			idx:       0,
			wantAttrs: map[string]string{"type": "title"},
		},
		{
			name:      "nothing default",
			phType:    schema.PHTypeTable,
			orient:    schema.PHOrientVert,
			sz:        schema.PHSizeHalf,
			idx:       10,
			wantAttrs: map[string]string{"type": "tbl", "orient": "vert", "sz": "half", "idx": "10"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewPlaceholder(2, "Placeholder 1", tc.phType, tc.orient, tc.sz, tc.idx)
			ph := s.Element().FindElement("p:nvSpPr/p:nvPr/p:ph")
			if ph == nil {
				t.Fatal("no p:ph element")
			}
			if got, want := len(ph.Attr), len(tc.wantAttrs); got != want {
				t.Errorf("attribute count = %d, want %d: %v", got, want, ph.Attr)
			}
			for k, want := range tc.wantAttrs {
				if got := ph.SelectAttrValue(k, ""); got != want {
					t.Errorf("%s = %q, want %q", k, got, want)
				}
			}
		})
	}
}

func TestNewPlaceholderTextFrame(t *testing.T) {
	for _, phType := range []string{schema.PHTypeTitle, schema.PHTypeCtrTitle, schema.PHTypeSubtitle, schema.PHTypeBody, schema.PHTypeObject} {
		s := NewPlaceholder(2, "P", phType, schema.PHOrientHorz, schema.PHSizeFull, 0)
		if s.Element().SelectElement("p:txBody") == nil {
			t.Errorf("placeholder type %q has no text body", phType)
		}
	}
	for _, phType := range []string{schema.PHTypeChart, schema.PHTypeDate, schema.PHTypeFooter, schema.PHTypePicture, schema.PHTypeSlideNum, schema.PHTypeTable} {
		s := NewPlaceholder(2, "P", phType, schema.PHOrientHorz, schema.PHSizeFull, 0)
		if s.Element().SelectElement("p:txBody") != nil {
			t.Errorf("placeholder type %q has a text body", phType)
		}
	}
}

func TestNewPlaceholderLocksGrouping(t *testing.T) {
	s := NewPlaceholder(2, "Title 1", schema.PHTypeTitle, schema.PHOrientHorz, schema.PHSizeFull, 0)
	lock := s.Element().FindElement("p:nvSpPr/p:cNvSpPr/a:spLocks")
	if lock == nil {
		t.Fatal("no a:spLocks element")
	}
	if got, want := lock.SelectAttrValue("noGrp", ""), "1"; got != want {
		t.Errorf("noGrp = %q, want %q", got, want)
	}

	// placeholders get no geometry of their own
	if s.Element().FindElement("p:spPr/a:xfrm") != nil {
		t.Error("placeholder has its own transform")
	}
	if got := s.Prst(); got != "" {
		t.Errorf("Prst() = %q, want \"\"", got)
	}
	if s.IsAutoshape() {
		t.Error("IsAutoshape() = true for a placeholder")
	}
}

func TestNewTextbox(t *testing.T) {
	s := NewTextbox(3, "TextBox 2", 0, 0, 914400, 457200)
	sp := s.Element()

	if got, want := sp.FindElement("p:nvSpPr/p:cNvSpPr").SelectAttrValue("txBox", ""), "1"; got != want {
		t.Errorf("txBox = %q, want %q", got, want)
	}
	if sp.FindElement("p:spPr/a:noFill") == nil {
		t.Error("no a:noFill element")
	}
	bodyPr := sp.FindElement("p:txBody/a:bodyPr")
	if got, want := bodyPr.SelectAttrValue("wrap", ""), "none"; got != want {
		t.Errorf("wrap = %q, want %q", got, want)
	}
	if bodyPr.SelectElement("a:spAutoFit") == nil {
		t.Error("no a:spAutoFit element")
	}

	if !s.IsTextbox() {
		t.Error("IsTextbox() = false")
	}
	if s.IsAutoshape() {
		t.Error("IsAutoshape() = true for a text box")
	}
	if got, want := s.Prst(), "rect"; got != want {
		t.Errorf("Prst() = %q, want %q", got, want)
	}
}

func TestPresetGeometryGuides(t *testing.T) {
	s := NewAutoShape(2, "S", "roundRect", 0, 0, 100, 100)
	geom := s.PrstGeom()
	if geom == nil {
		t.Fatal("PrstGeom() = nil")
	}

	if got := geom.Guides(); len(got) != 0 {
		t.Errorf("Guides() on fresh shape = %v, want empty", got)
	}

	geom.RewriteGuides([]Guide{{Name: "adj", Val: 25000}})
	guides := geom.Guides()
	if len(guides) != 1 {
		t.Fatalf("guide count = %d, want 1", len(guides))
	}
	if guides[0].Name != "adj" || guides[0].Val != 25000 {
		t.Errorf("guide = %+v, want {adj 25000}", guides[0])
	}

	gd := geom.Element().FindElement("a:avLst/a:gd")
	if got, want := gd.SelectAttrValue("fmla", ""), "val 25000"; got != want {
		t.Errorf("fmla = %q, want %q", got, want)
	}

	// rewrite replaces, not appends
	geom.RewriteGuides([]Guide{{Name: "adj1", Val: 10}, {Name: "adj2", Val: 20}})
	if got, want := len(geom.Guides()), 2; got != want {
		t.Errorf("guide count after rewrite = %d, want %d", got, want)
	}
}

func TestWrapDispatch(t *testing.T) {
	sp := NewAutoShape(2, "S", "rect", 0, 0, 10, 10).Element()
	if _, ok := Wrap(sp).(*Shape); !ok {
		t.Errorf("Wrap(p:sp) = %T, want *Shape", Wrap(sp))
	}

	tbl := NewTable(1, 1, 10, 10, "").Element()
	if _, ok := Wrap(tbl).(*Table); !ok {
		t.Errorf("Wrap(a:tbl) = %T, want *Table", Wrap(tbl))
	}

	cp := NewCoreProperties().Element()
	if _, ok := Wrap(cp).(*CoreProperties); !ok {
		t.Errorf("Wrap(cp:coreProperties) = %T, want *CoreProperties", Wrap(cp))
	}

	pic := NewPicture(2, "P", "", "rId2", 0, 0, 10, 10).Element()
	if _, ok := Wrap(pic).(*Picture); !ok {
		t.Errorf("Wrap(p:pic) = %T, want *Picture", Wrap(pic))
	}
}

func TestWrapUnregistered(t *testing.T) {
	el, err := NewElement("a:avLst")
	if err != nil {
		t.Fatal(err)
	}
	if got := Wrap(el); got != nil {
		t.Errorf("Wrap(a:avLst) = %T, want nil", got)
	}
	if got := Wrap(nil); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}
}
