package oxml

import (
	"github.com/beevik/etree"

	"pml/schema"
)

// registryKey identifies an element kind by namespace URI and local name,
// independent of whatever prefix a particular document happens to use.
type registryKey struct {
	uri   string
	local string
}

type wrapFunc func(*etree.Element) any

var wrapRegistry = map[registryKey]wrapFunc{}

// registerWrapper binds a prefixed tag to its wrapper constructor. Called
// from init only; the registry is read-only afterwards.
func registerWrapper(tag string, fn wrapFunc) {
	qn, err := schema.Resolve(tag)
	if err != nil {
		panic(err)
	}
	wrapRegistry[registryKey{uri: qn.URI, local: qn.Local}] = fn
}

// Wrap returns the typed wrapper registered for el's qualified name, or
// nil when el has no specialized wrapper.
func Wrap(el *etree.Element) any {
	if el == nil {
		return nil
	}
	uri, ok := namespaceOf(el)
	if !ok {
		return nil
	}
	fn, ok := wrapRegistry[registryKey{uri: uri, local: el.Tag}]
	if !ok {
		return nil
	}
	return fn(el)
}

// namespaceOf resolves el's effective namespace URI. The nearest ancestor
// declaration binding el's prefix wins, so documents rebinding a prefix or
// binding a fresh prefix to a known URI dispatch by URI, not spelling.
// The global registry serves as fallback for detached fragments that leave
// a registered prefix undeclared.
func namespaceOf(el *etree.Element) (string, bool) {
	if len(el.Space) == 0 {
		for e := el; e != nil; e = e.Parent() {
			for _, a := range e.Attr {
				if len(a.Space) == 0 && a.Key == "xmlns" {
					return a.Value, true
				}
			}
		}
		return "", false
	}
	for e := el; e != nil; e = e.Parent() {
		for _, a := range e.Attr {
			if a.Space == "xmlns" && a.Key == el.Space {
				return a.Value, true
			}
		}
	}
	uri, err := schema.NamespaceURI(el.Space)
	if err != nil {
		return "", false
	}
	return uri, true
}

func init() {
	registerWrapper("cp:coreProperties", func(el *etree.Element) any { return &CoreProperties{el: el} })
	registerWrapper("p:sp", func(el *etree.Element) any { return &Shape{el: el} })
	registerWrapper("p:pic", func(el *etree.Element) any { return &Picture{el: el} })
	registerWrapper("p:graphicFrame", func(el *etree.Element) any { return &GraphicFrame{el: el} })
	registerWrapper("p:txBody", func(el *etree.Element) any { return &TextBody{el: el} })
	registerWrapper("a:p", func(el *etree.Element) any { return &TextParagraph{el: el} })
	registerWrapper("a:prstGeom", func(el *etree.Element) any { return &PresetGeometry2D{el: el} })
	registerWrapper("a:tbl", func(el *etree.Element) any { return &Table{el: el} })
	registerWrapper("a:tc", func(el *etree.Element) any { return &TableCell{el: el} })
}
