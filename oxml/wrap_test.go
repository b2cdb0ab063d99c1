package oxml

import (
	"testing"

	"github.com/beevik/etree"
)

func TestWrapForeignPrefixSameNamespace(t *testing.T) {
	// dispatch keys on the bound URI, not the prefix spelling
	doc, err := FromString(`<x:sp xmlns:x="http://schemas.openxmlformats.org/presentationml/2006/main"/>`)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if _, ok := Wrap(doc.Root()).(*Shape); !ok {
		t.Errorf("Wrap() = %T, want *Shape", Wrap(doc.Root()))
	}
}

func TestWrapReboundPrefix(t *testing.T) {
	// a known prefix bound to a foreign URI is not a presentation shape
	doc, err := FromString(`<p:sp xmlns:p="urn:not-presentationml"/>`)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if got := Wrap(doc.Root()); got != nil {
		t.Errorf("Wrap() with rebound prefix = %T, want nil", got)
	}
}

func TestWrapAncestorDeclaration(t *testing.T) {
	doc, err := FromString(`<x:root xmlns:x="http://schemas.openxmlformats.org/presentationml/2006/main"><x:sp/></x:root>`)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	sp := doc.Root().ChildElements()[0]
	if _, ok := Wrap(sp).(*Shape); !ok {
		t.Errorf("Wrap() = %T, want *Shape", Wrap(sp))
	}
}

func TestWrapDefaultNamespace(t *testing.T) {
	doc, err := FromString(`<tbl xmlns="http://schemas.openxmlformats.org/drawingml/2006/main"/>`)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	if _, ok := Wrap(doc.Root()).(*Table); !ok {
		t.Errorf("Wrap() = %T, want *Table", Wrap(doc.Root()))
	}
}

func TestWrapUndeclaredPrefixFallback(t *testing.T) {
	// detached fragments often omit the declaration; the registered
	// binding still applies
	tbl := etree.NewElement("a:tbl")
	if _, ok := Wrap(tbl).(*Table); !ok {
		t.Errorf("Wrap() = %T, want *Table", Wrap(tbl))
	}
}

func TestWrapInvalidShapeAccessors(t *testing.T) {
	doc, err := FromString(`<p:sp xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	s, ok := Wrap(doc.Root()).(*Shape)
	if !ok {
		t.Fatalf("Wrap() = %T, want *Shape", Wrap(doc.Root()))
	}
	if s.IsTextbox() {
		t.Error("IsTextbox() on shape without nvSpPr = true")
	}
	if s.IsAutoshape() {
		t.Error("IsAutoshape() on shape without spPr = true")
	}
}

func TestWrapInvalidPictureDescr(t *testing.T) {
	doc, err := FromString(`<p:pic xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"/>`)
	if err != nil {
		t.Fatalf("FromString() error = %v", err)
	}
	p, ok := Wrap(doc.Root()).(*Picture)
	if !ok {
		t.Fatalf("Wrap() = %T, want *Picture", Wrap(doc.Root()))
	}
	if got := p.Descr(); got != "" {
		t.Errorf("Descr() on picture without nvPicPr = %q, want \"\"", got)
	}
	if got := p.Embed(); got != "" {
		t.Errorf("Embed() on picture without blipFill = %q, want \"\"", got)
	}
}
