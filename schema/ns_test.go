package schema

import (
	"errors"
	"testing"
)

func TestNamespaceURI(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{"a", "http://schemas.openxmlformats.org/drawingml/2006/main"},
		{"p", "http://schemas.openxmlformats.org/presentationml/2006/main"},
		{"c", "http://schemas.openxmlformats.org/drawingml/2006/chart"},
		{"cp", "http://schemas.openxmlformats.org/package/2006/metadata/core-properties"},
		{"dc", "http://purl.org/dc/elements/1.1/"},
		{"dcterms", "http://purl.org/dc/terms/"},
		{"r", "http://schemas.openxmlformats.org/officeDocument/2006/relationships"},
		{"xsi", "http://www.w3.org/2001/XMLSchema-instance"},
	}
	for _, tc := range tests {
		got, err := NamespaceURI(tc.prefix)
		if err != nil {
			t.Errorf("NamespaceURI(%q) error = %v", tc.prefix, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NamespaceURI(%q) = %q, want %q", tc.prefix, got, tc.want)
		}
	}
}

func TestNamespaceURIUnknown(t *testing.T) {
	if _, err := NamespaceURI("v"); !errors.Is(err, ErrUnknownPrefix) {
		t.Errorf("NamespaceURI(\"v\") error = %v, want ErrUnknownPrefix", err)
	}
}

func TestResolve(t *testing.T) {
	qn, err := Resolve("a:tbl")
	if err != nil {
		t.Fatalf("Resolve(\"a:tbl\") error = %v", err)
	}
	if got, want := qn.Prefix, "a"; got != want {
		t.Errorf("prefix = %q, want %q", got, want)
	}
	if got, want := qn.Local, "tbl"; got != want {
		t.Errorf("local = %q, want %q", got, want)
	}
	if got, want := qn.URI, "http://schemas.openxmlformats.org/drawingml/2006/main"; got != want {
		t.Errorf("uri = %q, want %q", got, want)
	}
}

func TestResolveMalformed(t *testing.T) {
	for _, tag := range []string{"tbl", ":tbl", "a:", ":"} {
		if _, err := Resolve(tag); !errors.Is(err, ErrMalformedName) {
			t.Errorf("Resolve(%q) error = %v, want ErrMalformedName", tag, err)
		}
	}
	if _, err := Resolve("nope:tbl"); !errors.Is(err, ErrUnknownPrefix) {
		t.Errorf("Resolve(\"nope:tbl\") error = %v, want ErrUnknownPrefix", err)
	}
}

func TestNSDecls(t *testing.T) {
	decls, err := NSDecls("p", "a", "r")
	if err != nil {
		t.Fatalf("NSDecls() error = %v", err)
	}
	if got, want := len(decls), 3; got != want {
		t.Fatalf("declaration count = %d, want %d", got, want)
	}
	// caller order is preserved
	for i, want := range []string{"p", "a", "r"} {
		if decls[i].Prefix != want {
			t.Errorf("declaration %d prefix = %q, want %q", i, decls[i].Prefix, want)
		}
	}

	if _, err := NSDecls("p", "bogus"); !errors.Is(err, ErrUnknownPrefix) {
		t.Errorf("NSDecls() with unknown prefix error = %v, want ErrUnknownPrefix", err)
	}
}

func TestPlaceholderHasTextFrame(t *testing.T) {
	for _, phType := range []string{PHTypeTitle, PHTypeCtrTitle, PHTypeSubtitle, PHTypeBody, PHTypeObject} {
		if !PlaceholderHasTextFrame(phType) {
			t.Errorf("PlaceholderHasTextFrame(%q) = false, want true", phType)
		}
	}
	for _, phType := range []string{PHTypeChart, PHTypeDate, PHTypeFooter, PHTypePicture, PHTypeSlideNum, PHTypeTable} {
		if PlaceholderHasTextFrame(phType) {
			t.Errorf("PlaceholderHasTextFrame(%q) = true, want false", phType)
		}
	}
}
