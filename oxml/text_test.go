package oxml

import "testing"

func TestNewTextBody(t *testing.T) {
	tb := NewTextBody()
	el := tb.Element()

	if got, want := el.FullTag(), "p:txBody"; got != want {
		t.Fatalf("tag = %q, want %q", got, want)
	}
	children := el.ChildElements()
	if got, want := len(children), 3; got != want {
		t.Fatalf("child count = %d, want %d", got, want)
	}
	for i, tag := range []string{"bodyPr", "lstStyle", "p"} {
		if got := children[i].Tag; got != tag {
			t.Errorf("child %d = %q, want %q", i, got, tag)
		}
	}

	paragraphs := tb.Paragraphs()
	if got, want := len(paragraphs), 1; got != want {
		t.Fatalf("paragraph count = %d, want %d", got, want)
	}
	if got, want := len(paragraphs[0].Element().ChildElements()), 0; got != want {
		t.Errorf("initial paragraph has %d children, want %d", got, want)
	}
}

func TestTextBodyParagraphs(t *testing.T) {
	tb := NewTextBody()
	tb.Element().CreateElement("a:p")
	tb.Element().CreateElement("a:p")

	if got, want := len(tb.Paragraphs()), 3; got != want {
		t.Errorf("paragraph count = %d, want %d", got, want)
	}
}

func TestTextParagraphAlgn(t *testing.T) {
	p := NewTextBody().Paragraphs()[0]

	if got := p.Algn(); got != "" {
		t.Errorf("Algn() on fresh paragraph = %q, want \"\"", got)
	}

	p.SetAlgn("ctr")
	if got, want := p.Algn(), "ctr"; got != want {
		t.Errorf("Algn() = %q, want %q", got, want)
	}
	pPr := p.Element().SelectElement("a:pPr")
	if pPr == nil {
		t.Fatal("SetAlgn() did not create pPr")
	}

	p.SetAlgn("r")
	if got, want := p.Algn(), "r"; got != want {
		t.Errorf("Algn() after reset = %q, want %q", got, want)
	}
	if got, want := len(p.Element().SelectElements("a:pPr")), 1; got != want {
		t.Errorf("pPr count = %d, want %d", got, want)
	}
}

func TestTextParagraphAlgnOrder(t *testing.T) {
	p := NewTextBody().Paragraphs()[0]
	p.Element().CreateElement("a:r").CreateElement("a:t").SetText("hello")

	p.SetAlgn("l")
	children := p.Element().ChildElements()
	if got, want := children[0].Tag, "pPr"; got != want {
		t.Errorf("first child = %q, want %q", got, want)
	}
	if got, want := children[1].Tag, "r"; got != want {
		t.Errorf("second child = %q, want %q", got, want)
	}
}

func TestTextParagraphClearAlgn(t *testing.T) {
	p := NewTextBody().Paragraphs()[0]

	// clearing when nothing is set is a no-op
	p.ClearAlgn()

	p.SetAlgn("just")
	p.ClearAlgn()
	if got := p.Algn(); got != "" {
		t.Errorf("Algn() after clear = %q, want \"\"", got)
	}
	if p.Element().SelectElement("a:pPr") != nil {
		t.Error("attribute-empty pPr was not pruned")
	}

	// pPr with another attribute survives the clear
	p.SetAlgn("ctr")
	p.Element().SelectElement("a:pPr").CreateAttr("lvl", "1")
	p.ClearAlgn()
	if p.Element().SelectElement("a:pPr") == nil {
		t.Error("pPr with remaining attributes was pruned")
	}
}
