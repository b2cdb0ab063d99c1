// Package oxml is the in-memory object model for Office Open XML
// presentation fragments. Typed wrappers over etree elements expose
// semantic accessors, and factories emit minimal schema-correct markup
// that PowerPoint opens without a repair step.
package oxml

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"pml/schema"
)

// Annotation attributes are attached by typed builders while a tree is
// under construction and carry no meaning for consumers. Serialize strips
// them; leaving them in place would trigger a repair prompt.
const (
	annotPrefix = "ptv"
	annotURI    = "urn:pml:type-annotation"
	annotKey    = annotPrefix + ":t"
)

// NewElement returns an empty element with the given prefixed tag,
// declaring the listed namespace prefixes on it.
func NewElement(tag string, nsPrefixes ...string) (*etree.Element, error) {
	if _, err := schema.Resolve(tag); err != nil {
		return nil, err
	}
	el := etree.NewElement(tag)
	if err := declareNamespaces(el, nsPrefixes...); err != nil {
		return nil, err
	}
	return el, nil
}

// SubElement creates a child with the given prefixed tag under parent.
func SubElement(parent *etree.Element, tag string) (*etree.Element, error) {
	if _, err := schema.Resolve(tag); err != nil {
		return nil, err
	}
	return parent.CreateElement(tag), nil
}

// declareNamespaces stamps xmlns declarations for the given prefixes onto
// el, preserving argument order.
func declareNamespaces(el *etree.Element, prefixes ...string) error {
	decls, err := schema.NSDecls(prefixes...)
	if err != nil {
		return err
	}
	for _, d := range decls {
		el.CreateAttr("xmlns:"+d.Prefix, d.URI)
	}
	return nil
}

// FromString parses an XML document or fragment. Every namespace prefix
// used by the text must either be declared in scope or registered in the
// schema namespace map.
func FromString(text string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("unable to parse XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("unable to parse XML: no root element")
	}
	if err := checkPrefixes(root, map[string]bool{}); err != nil {
		return nil, err
	}
	return doc, nil
}

func checkPrefixes(el *etree.Element, inScope map[string]bool) error {
	// local copy so sibling subtrees don't see our declarations
	scope := make(map[string]bool, len(inScope)+2)
	for pfx := range inScope {
		scope[pfx] = true
	}
	for _, a := range el.Attr {
		if a.Space == "xmlns" {
			scope[a.Key] = true
		}
	}
	if err := checkPrefix(el.Space, scope); err != nil {
		return fmt.Errorf("element %q: %w", el.FullTag(), err)
	}
	for _, a := range el.Attr {
		if a.Space == "" || a.Space == "xmlns" || a.Space == "xml" {
			continue
		}
		if err := checkPrefix(a.Space, scope); err != nil {
			return fmt.Errorf("attribute %q of %q: %w", a.FullKey(), el.FullTag(), err)
		}
	}
	for _, child := range el.ChildElements() {
		if err := checkPrefixes(child, scope); err != nil {
			return err
		}
	}
	return nil
}

func checkPrefix(prefix string, inScope map[string]bool) error {
	if prefix == "" || inScope[prefix] {
		return nil
	}
	if _, err := schema.NamespaceURI(prefix); err != nil {
		return err
	}
	return nil
}

// SerializeOptions control Serialize output.
type SerializeOptions struct {
	// Pretty indents nested elements with two spaces.
	Pretty bool
	// Declaration emits the standalone UTF-8 XML declaration.
	Declaration bool
}

// Serialize renders el as XML text. Builder annotations and namespace
// declarations already in force on an ancestor are stripped first; this is
// a compatibility requirement of the consuming application, not cosmetics.
// The caller's tree is left untouched.
func Serialize(el *etree.Element, opts SerializeOptions) (string, error) {
	root := el.Copy()
	deannotate(root)
	pruneRedundantNSDecls(root, map[string]string{})

	doc := etree.NewDocument()
	if opts.Declaration {
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	}
	doc.SetRoot(root)
	if opts.Pretty {
		doc.Indent(2)
	} else {
		doc.Indent(etree.NoIndent)
	}
	s, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("unable to serialize %q: %w", el.FullTag(), err)
	}
	return s, nil
}

// deannotate removes builder annotation attributes and their namespace
// declaration from the whole subtree.
func deannotate(el *etree.Element) {
	el.RemoveAttr(annotKey)
	el.RemoveAttr("xmlns:" + annotPrefix)
	for _, child := range el.ChildElements() {
		deannotate(child)
	}
}

// pruneRedundantNSDecls drops descendant xmlns declarations that repeat an
// identical binding already in force on an ancestor. Conflicting
// re-declarations are left alone.
func pruneRedundantNSDecls(el *etree.Element, inScope map[string]string) {
	scope := make(map[string]string, len(inScope)+2)
	for pfx, uri := range inScope {
		scope[pfx] = uri
	}
	for _, a := range el.Attr {
		if a.Space != "xmlns" {
			continue
		}
		if uri, ok := inScope[a.Key]; ok && uri == a.Value {
			el.RemoveAttr("xmlns:" + a.Key)
			continue
		}
		scope[a.Key] = a.Value
	}
	for _, child := range el.ChildElements() {
		pruneRedundantNSDecls(child, scope)
	}
}

// SetIntText stores v as the element text, annotating the element so the
// origin type can be recognized until serialization strips it.
func SetIntText(el *etree.Element, v int) {
	el.SetText(strconv.Itoa(v))
	el.CreateAttr(annotKey, "int")
	annotateRoot(el)
}

// SetFloatText stores v as the element text with annotation.
func SetFloatText(el *etree.Element, v float64) {
	el.SetText(strconv.FormatFloat(v, 'g', -1, 64))
	el.CreateAttr(annotKey, "float")
	annotateRoot(el)
}

// annotateRoot makes sure the annotation namespace is declared at the top
// of el's tree so annotated fragments stay well-formed if dumped raw.
func annotateRoot(el *etree.Element) {
	top := el
	for p := top.Parent(); p != nil && p.Tag != ""; p = top.Parent() {
		top = p
	}
	if top.SelectAttr("xmlns:"+annotPrefix) == nil {
		top.CreateAttr("xmlns:"+annotPrefix, annotURI)
	}
}
