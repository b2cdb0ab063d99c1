package oxml

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/beevik/etree"

	"pml/schema"
)

// CoreProperties wraps the <cp:coreProperties> root of the core document
// properties part (/docProps/core.xml). String properties read as "" when
// their element is absent and are capped at 255 unicode characters on
// write. Date properties read as the zero time when absent or
// unparseable.
type CoreProperties struct {
	el *etree.Element
}

// maxStrPropLen is the write-side cap on string property length.
const maxStrPropLen = 255

// Logical property name to backing element tag. Static configuration, not
// dispatch: each property also has a named accessor pair below.
var (
	corePropsStrTags = map[string]string{
		"author":           "dc:creator",
		"category":         "cp:category",
		"comments":         "dc:description",
		"content_status":   "cp:contentStatus",
		"identifier":       "dc:identifier",
		"keywords":         "cp:keywords",
		"language":         "dc:language",
		"last_modified_by": "cp:lastModifiedBy",
		"subject":          "dc:subject",
		"title":            "dc:title",
		"version":          "cp:version",
	}
	corePropsDateTags = map[string]string{
		"created":      "dcterms:created",
		"last_printed": "cp:lastPrinted",
		"modified":     "dcterms:modified",
	}
)

// NewCoreProperties returns a minimal <cp:coreProperties> element with the
// cp, dc and dcterms namespaces declared and no children.
func NewCoreProperties() *CoreProperties {
	el := etree.NewElement("cp:coreProperties")
	if err := declareNamespaces(el, "cp", "dc", "dcterms"); err != nil {
		panic(err) // fixed prefixes, cannot fail
	}
	return &CoreProperties{el: el}
}

// WrapCoreProperties wraps an existing <cp:coreProperties> element.
func WrapCoreProperties(el *etree.Element) *CoreProperties {
	return &CoreProperties{el: el}
}

// Element returns the underlying element.
func (c *CoreProperties) Element() *etree.Element {
	return c.el
}

func (c *CoreProperties) strProp(name string) string {
	child := c.el.SelectElement(corePropsStrTags[name])
	if child == nil {
		return ""
	}
	return child.Text()
}

func (c *CoreProperties) setStrProp(name, value string) error {
	if utf8.RuneCountInString(value) > maxStrPropLen {
		return fmt.Errorf("property %q: %w", name, schema.ErrValueTooLong)
	}
	tag := corePropsStrTags[name]
	child := c.el.SelectElement(tag)
	if child == nil {
		child = c.el.CreateElement(tag)
	}
	child.SetText(value)
	return nil
}

func (c *CoreProperties) dateProp(name string) time.Time {
	child := c.el.SelectElement(corePropsDateTags[name])
	if child == nil {
		return time.Time{}
	}
	dt, err := parseW3CDTF(child.Text())
	if err != nil {
		// invalid datetime strings are ignored
		return time.Time{}
	}
	return dt
}

func (c *CoreProperties) setDateProp(name string, value time.Time) error {
	if value.IsZero() {
		return fmt.Errorf("property %q requires a calendar timestamp: %w", name, schema.ErrTypeMismatch)
	}
	tag := corePropsDateTags[name]
	child := c.el.SelectElement(tag)
	if child == nil {
		child = c.el.CreateElement(tag)
	}
	child.SetText(value.Format("2006-01-02T15:04:05Z"))
	if name == "created" || name == "modified" {
		// these two require an explicit xsi:type, with the xsi namespace
		// declared on the root element rather than on each child
		if c.el.SelectAttr("xmlns:xsi") == nil {
			if err := declareNamespaces(c.el, "xsi"); err != nil {
				return err
			}
		}
		child.CreateAttr("xsi:type", "dcterms:W3CDTF")
	}
	return nil
}

// Author is the dc:creator property.
func (c *CoreProperties) Author() string { return c.strProp("author") }

// SetAuthor sets the dc:creator property.
func (c *CoreProperties) SetAuthor(v string) error { return c.setStrProp("author", v) }

// Category is the cp:category property.
func (c *CoreProperties) Category() string { return c.strProp("category") }

// SetCategory sets the cp:category property.
func (c *CoreProperties) SetCategory(v string) error { return c.setStrProp("category", v) }

// Comments is the dc:description property.
func (c *CoreProperties) Comments() string { return c.strProp("comments") }

// SetComments sets the dc:description property.
func (c *CoreProperties) SetComments(v string) error { return c.setStrProp("comments", v) }

// ContentStatus is the cp:contentStatus property.
func (c *CoreProperties) ContentStatus() string { return c.strProp("content_status") }

// SetContentStatus sets the cp:contentStatus property.
func (c *CoreProperties) SetContentStatus(v string) error { return c.setStrProp("content_status", v) }

// Identifier is the dc:identifier property.
func (c *CoreProperties) Identifier() string { return c.strProp("identifier") }

// SetIdentifier sets the dc:identifier property.
func (c *CoreProperties) SetIdentifier(v string) error { return c.setStrProp("identifier", v) }

// Keywords is the cp:keywords property.
func (c *CoreProperties) Keywords() string { return c.strProp("keywords") }

// SetKeywords sets the cp:keywords property.
func (c *CoreProperties) SetKeywords(v string) error { return c.setStrProp("keywords", v) }

// Language is the dc:language property.
func (c *CoreProperties) Language() string { return c.strProp("language") }

// SetLanguage sets the dc:language property.
func (c *CoreProperties) SetLanguage(v string) error { return c.setStrProp("language", v) }

// LastModifiedBy is the cp:lastModifiedBy property.
func (c *CoreProperties) LastModifiedBy() string { return c.strProp("last_modified_by") }

// SetLastModifiedBy sets the cp:lastModifiedBy property.
func (c *CoreProperties) SetLastModifiedBy(v string) error { return c.setStrProp("last_modified_by", v) }

// Subject is the dc:subject property.
func (c *CoreProperties) Subject() string { return c.strProp("subject") }

// SetSubject sets the dc:subject property.
func (c *CoreProperties) SetSubject(v string) error { return c.setStrProp("subject", v) }

// Title is the dc:title property.
func (c *CoreProperties) Title() string { return c.strProp("title") }

// SetTitle sets the dc:title property.
func (c *CoreProperties) SetTitle(v string) error { return c.setStrProp("title", v) }

// Version is the cp:version property.
func (c *CoreProperties) Version() string { return c.strProp("version") }

// SetVersion sets the cp:version property.
func (c *CoreProperties) SetVersion(v string) error { return c.setStrProp("version", v) }

// Created is the dcterms:created property, zero when absent or invalid.
func (c *CoreProperties) Created() time.Time { return c.dateProp("created") }

// SetCreated sets the dcterms:created property.
func (c *CoreProperties) SetCreated(v time.Time) error { return c.setDateProp("created", v) }

// LastPrinted is the cp:lastPrinted property, zero when absent or invalid.
func (c *CoreProperties) LastPrinted() time.Time { return c.dateProp("last_printed") }

// SetLastPrinted sets the cp:lastPrinted property.
func (c *CoreProperties) SetLastPrinted(v time.Time) error { return c.setDateProp("last_printed", v) }

// Modified is the dcterms:modified property, zero when absent or invalid.
func (c *CoreProperties) Modified() time.Time { return c.dateProp("modified") }

// SetModified sets the dcterms:modified property.
func (c *CoreProperties) SetModified(v time.Time) error { return c.setDateProp("modified", v) }

// Revision returns the cp:revision property. Absent, non-integer and
// negative stored values all read as 0.
func (c *CoreProperties) Revision() int {
	child := c.el.SelectElement("cp:revision")
	if child == nil {
		return 0
	}
	revision, err := strconv.Atoi(child.Text())
	if err != nil || revision < 0 {
		return 0
	}
	return revision
}

// SetRevision sets the cp:revision property. Only positive integers are
// accepted.
func (c *CoreProperties) SetRevision(v int) error {
	if v < 1 {
		return fmt.Errorf("revision requires a positive integer, got %d: %w", v, schema.ErrInvalidValue)
	}
	child := c.el.SelectElement("cp:revision")
	if child == nil {
		child = c.el.CreateElement("cp:revision")
	}
	child.SetText(strconv.Itoa(v))
	return nil
}

var offsetPattern = regexp.MustCompile(`^([+-])(\d\d):(\d\d)$`)

// parseW3CDTF parses the W3CDTF profile used by OOXML metadata: year,
// year-month, year-month-day, full date-time with Z, or date-time with a
// numeric offset. A "+HH:MM" suffix is subtracted from the parsed value
// and "-HH:MM" added; consumers depend on this normalization direction
// staying as is.
func parseW3CDTF(s string) (time.Time, error) {
	parseable := s
	offset := ""
	if len(s) > 19 {
		parseable, offset = s[:19], s[19:]
	}
	layouts := []string{
		"2006-01-02T15:04:05",
		"2006-01-02",
		"2006-01",
		"2006",
	}
	var dt time.Time
	var err error
	for _, layout := range layouts {
		if dt, err = time.Parse(layout, parseable); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse W3CDTF datetime %q", s)
	}
	if len(offset) == 6 {
		return offsetDT(dt, offset)
	}
	return dt, nil
}

// offsetDT applies a "±HH:MM" suffix to dt with the inverted sign
// convention described on parseW3CDTF.
func offsetDT(dt time.Time, offset string) (time.Time, error) {
	m := offsetPattern.FindStringSubmatch(offset)
	if m == nil {
		return time.Time{}, fmt.Errorf("%q is not a valid offset string", offset)
	}
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	d := time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
	if m[1] == "+" {
		d = -d
	}
	return dt.Add(d), nil
}
