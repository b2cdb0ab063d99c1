package oxml

import "github.com/beevik/etree"

// TextBody wraps a <p:txBody> element.
type TextBody struct {
	el *etree.Element
}

// NewTextBody returns a new <p:txBody> element tree with an empty
// paragraph.
func NewTextBody() *TextBody {
	txBody := etree.NewElement("p:txBody")
	declareNamespaces(txBody, "a", "p")
	txBody.CreateElement("a:bodyPr")
	txBody.CreateElement("a:lstStyle")
	txBody.CreateElement("a:p")
	return &TextBody{el: txBody}
}

// WrapTextBody wraps an existing <p:txBody> element.
func WrapTextBody(el *etree.Element) *TextBody {
	return &TextBody{el: el}
}

// Element returns the underlying element.
func (t *TextBody) Element() *etree.Element {
	return t.el
}

// Paragraphs returns the <a:p> children in order.
func (t *TextBody) Paragraphs() []*TextParagraph {
	var paragraphs []*TextParagraph
	for _, p := range t.el.SelectElements("a:p") {
		paragraphs = append(paragraphs, &TextParagraph{el: p})
	}
	return paragraphs
}

// TextParagraph wraps an <a:p> element.
type TextParagraph struct {
	el *etree.Element
}

// WrapTextParagraph wraps an existing <a:p> element.
func WrapTextParagraph(el *etree.Element) *TextParagraph {
	return &TextParagraph{el: el}
}

// Element returns the underlying element.
func (p *TextParagraph) Element() *etree.Element {
	return p.el
}

// Algn returns the horizontal alignment attribute of the <a:pPr> child,
// "" when unset.
func (p *TextParagraph) Algn() string {
	pPr := p.el.SelectElement("a:pPr")
	if pPr == nil {
		return ""
	}
	return pPr.SelectAttrValue("algn", "")
}

// SetAlgn sets the alignment attribute, creating the <a:pPr> child as
// first child when missing.
func (p *TextParagraph) SetAlgn(value string) {
	pPr := p.el.SelectElement("a:pPr")
	if pPr == nil {
		pPr = etree.NewElement("a:pPr")
		p.el.InsertChildAt(0, pPr)
	}
	pPr.CreateAttr("algn", value)
}

// ClearAlgn removes the alignment attribute and prunes an attribute-empty
// pPr element.
func (p *TextParagraph) ClearAlgn() {
	pPr := p.el.SelectElement("a:pPr")
	if pPr == nil {
		return
	}
	pPr.RemoveAttr("algn")
	if len(pPr.Attr) == 0 {
		p.el.RemoveChild(pPr)
	}
}
