package oxml

import (
	"strconv"

	"github.com/beevik/etree"
)

// Picture wraps a <p:pic> element, the placement of an image on a slide.
type Picture struct {
	el *etree.Element
}

// NewPicture returns a new <p:pic> element referencing image data through
// the relationship id rID. The id is embedded verbatim; resolving it is
// the package layer's job.
func NewPicture(id int, name, desc, rID string, left, top, width, height int64) *Picture {
	pic := etree.NewElement("p:pic")
	declareNamespaces(pic, "a", "p", "r")

	nvPicPr := pic.CreateElement("p:nvPicPr")
	cNvPr := nvPicPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", name)
	cNvPr.CreateAttr("descr", desc)
	nvPicPr.CreateElement("p:cNvPicPr").CreateElement("a:picLocks").CreateAttr("noChangeAspect", "1")
	nvPicPr.CreateElement("p:nvPr")

	blipFill := pic.CreateElement("p:blipFill")
	blipFill.CreateElement("a:blip").CreateAttr("r:embed", rID)
	blipFill.CreateElement("a:stretch").CreateElement("a:fillRect")

	spPr := pic.CreateElement("p:spPr")
	addXfrm(spPr, left, top, width, height)
	addPrstGeom(spPr, "rect")

	return &Picture{el: pic}
}

// WrapPicture wraps an existing <p:pic> element.
func WrapPicture(el *etree.Element) *Picture {
	return &Picture{el: el}
}

// Element returns the underlying element.
func (p *Picture) Element() *etree.Element {
	return p.el
}

// Embed returns the r:embed relationship id of the picture's blip.
func (p *Picture) Embed() string {
	blip := p.el.FindElement("p:blipFill/a:blip")
	if blip == nil {
		return ""
	}
	return blip.SelectAttrValue("r:embed", "")
}

// Descr returns the alternative-text description of the picture, "" when
// the non-visual properties block is absent.
func (p *Picture) Descr() string {
	cNvPr := p.el.FindElement("p:nvPicPr/p:cNvPr")
	if cNvPr == nil {
		return ""
	}
	return cNvPr.SelectAttrValue("descr", "")
}
