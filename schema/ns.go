// Package schema holds the fixed OOXML namespace contract shared by every
// element builder: prefix to URI bindings, qualified name resolution and
// the constants PowerPoint expects byte-for-byte.
package schema

import (
	"fmt"
	"strings"
)

// Decl is a single xmlns:prefix="uri" declaration.
type Decl struct {
	Prefix string
	URI    string
}

// QName is a resolved prefixed tag or attribute name.
type QName struct {
	Prefix string
	Local  string
	URI    string
}

// nsmap is populated once and never mutated afterwards. The URIs are a
// versioned contract with the consuming application (OOXML 2006 schemas,
// Dublin Core, Microsoft 2007/2010 extensions).
var nsmap = map[string]string{
	"a":        "http://schemas.openxmlformats.org/drawingml/2006/main",
	"c":        "http://schemas.openxmlformats.org/drawingml/2006/chart",
	"c14":      "http://schemas.microsoft.com/office/drawing/2007/8/2/chart",
	"cp":       "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
	"ct":       "http://schemas.openxmlformats.org/package/2006/content-types",
	"dc":       "http://purl.org/dc/elements/1.1/",
	"dcmitype": "http://purl.org/dc/dcmitype/",
	"dcterms":  "http://purl.org/dc/terms/",
	"ep":       "http://schemas.openxmlformats.org/officeDocument/2006/extended-properties",
	"mc":       "http://schemas.openxmlformats.org/markup-compatibility/2006",
	"p":        "http://schemas.openxmlformats.org/presentationml/2006/main",
	"p14":      "http://schemas.microsoft.com/office/powerpoint/2010/main",
	"pic":      "http://schemas.openxmlformats.org/drawingml/2006/picture",
	"pr":       "http://schemas.openxmlformats.org/package/2006/relationships",
	"r":        "http://schemas.openxmlformats.org/officeDocument/2006/relationships",
	"sl":       "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout",
	"w":        "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
	"xsi":      "http://www.w3.org/2001/XMLSchema-instance",
}

// NamespaceURI returns the URI bound to prefix.
func NamespaceURI(prefix string) (string, error) {
	uri, ok := nsmap[prefix]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPrefix, prefix)
	}
	return uri, nil
}

// Resolve splits a "prefix:local" reference and resolves the prefix.
func Resolve(tag string) (QName, error) {
	prefix, local, found := strings.Cut(tag, ":")
	if !found || prefix == "" || local == "" {
		return QName{}, fmt.Errorf("%w: %q", ErrMalformedName, tag)
	}
	uri, err := NamespaceURI(prefix)
	if err != nil {
		return QName{}, err
	}
	return QName{Prefix: prefix, Local: local, URI: uri}, nil
}

// NSDecls returns xmlns declarations for the given prefixes preserving
// caller order, for stamping onto a fragment root.
func NSDecls(prefixes ...string) ([]Decl, error) {
	decls := make([]Decl, 0, len(prefixes))
	for _, pfx := range prefixes {
		uri, err := NamespaceURI(pfx)
		if err != nil {
			return nil, err
		}
		decls = append(decls, Decl{Prefix: pfx, URI: uri})
	}
	return decls, nil
}
