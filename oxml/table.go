package oxml

import (
	"strconv"

	"github.com/beevik/etree"

	"pml/schema"
)

// defaultTableStyleID is the GUID of the default table style.
const defaultTableStyleID = "{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"

// Table wraps an <a:tbl> element.
type Table struct {
	el *etree.Element
}

// NewTable returns a new <a:tbl> element tree with the given grid. Width
// is split evenly across columns and height across rows; the integer
// division remainder goes entirely into the last column and row so the
// sums match the requested totals exactly. An empty styleID selects the
// default table style.
func NewTable(rows, cols int, width, height int64, styleID string) *Table {
	if styleID == "" {
		styleID = defaultTableStyleID
	}

	tbl := etree.NewElement("a:tbl")
	declareNamespaces(tbl, "a")

	tblPr := tbl.CreateElement("a:tblPr")
	tblPr.CreateAttr("firstRow", "1")
	tblPr.CreateAttr("bandRow", "1")
	tblPr.CreateElement("a:tableStyleId").SetText(styleID)

	grid := tbl.CreateElement("a:tblGrid")
	colWidth := width / int64(cols)
	for col := 0; col < cols; col++ {
		w := colWidth
		if col == cols-1 {
			// last column absorbs the division remainder
			w = width - int64(cols-1)*colWidth
		}
		grid.CreateElement("a:gridCol").CreateAttr("w", strconv.FormatInt(w, 10))
	}

	rowHeight := height / int64(rows)
	for row := 0; row < rows; row++ {
		h := rowHeight
		if row == rows-1 {
			h = height - int64(rows-1)*rowHeight
		}
		tr := tbl.CreateElement("a:tr")
		tr.CreateAttr("h", strconv.FormatInt(h, 10))
		for col := 0; col < cols; col++ {
			tr.AddChild(NewTableCell().Element())
		}
	}

	return &Table{el: tbl}
}

// WrapTable wraps an existing <a:tbl> element.
func WrapTable(el *etree.Element) *Table {
	return &Table{el: el}
}

// Element returns the underlying element.
func (t *Table) Element() *etree.Element {
	return t.el
}

// Rows returns the <a:tr> children in order.
func (t *Table) Rows() []*etree.Element {
	return t.el.SelectElements("a:tr")
}

// Cell returns the cell wrapper at the given row and column, or nil when
// out of range.
func (t *Table) Cell(row, col int) *TableCell {
	rows := t.Rows()
	if row < 0 || row >= len(rows) {
		return nil
	}
	cells := rows[row].SelectElements("a:tc")
	if col < 0 || col >= len(cells) {
		return nil
	}
	return &TableCell{el: cells[col]}
}

func (t *Table) boolProp(name string) bool {
	tblPr := t.el.SelectElement("a:tblPr")
	if tblPr == nil {
		return false
	}
	v := tblPr.SelectAttrValue(name, "")
	return v == "1" || v == "true"
}

// setBoolProp writes "1" for true and removes the attribute for false so
// the schema default of false takes effect. Unlike cell properties, a
// tblPr block is never removed once present.
func (t *Table) setBoolProp(name string, value bool) {
	if value {
		t.ensureTblPr().CreateAttr(name, schema.XSDTrue)
		return
	}
	tblPr := t.el.SelectElement("a:tblPr")
	if tblPr == nil {
		return
	}
	tblPr.RemoveAttr(name)
}

func (t *Table) ensureTblPr() *etree.Element {
	tblPr := t.el.SelectElement("a:tblPr")
	if tblPr == nil {
		tblPr = etree.NewElement("a:tblPr")
		t.el.InsertChildAt(0, tblPr)
	}
	return tblPr
}

// StyleID returns the table style GUID, empty when none is set.
func (t *Table) StyleID() string {
	styleID := t.el.FindElement("a:tblPr/a:tableStyleId")
	if styleID == nil {
		return ""
	}
	return styleID.Text()
}

// SetStyleID replaces the table style GUID.
func (t *Table) SetStyleID(id string) {
	tblPr := t.ensureTblPr()
	styleID := tblPr.SelectElement("a:tableStyleId")
	if styleID == nil {
		styleID = tblPr.CreateElement("a:tableStyleId")
	}
	styleID.SetText(id)
}

// BandCol reports the bandCol style flag, false when unset.
func (t *Table) BandCol() bool { return t.boolProp("bandCol") }

// SetBandCol sets or clears the bandCol style flag.
func (t *Table) SetBandCol(v bool) { t.setBoolProp("bandCol", v) }

// BandRow reports the bandRow style flag, false when unset.
func (t *Table) BandRow() bool { return t.boolProp("bandRow") }

// SetBandRow sets or clears the bandRow style flag.
func (t *Table) SetBandRow(v bool) { t.setBoolProp("bandRow", v) }

// FirstCol reports the firstCol style flag, false when unset.
func (t *Table) FirstCol() bool { return t.boolProp("firstCol") }

// SetFirstCol sets or clears the firstCol style flag.
func (t *Table) SetFirstCol(v bool) { t.setBoolProp("firstCol", v) }

// FirstRow reports the firstRow style flag, false when unset.
func (t *Table) FirstRow() bool { return t.boolProp("firstRow") }

// SetFirstRow sets or clears the firstRow style flag.
func (t *Table) SetFirstRow(v bool) { t.setBoolProp("firstRow", v) }

// LastCol reports the lastCol style flag, false when unset.
func (t *Table) LastCol() bool { return t.boolProp("lastCol") }

// SetLastCol sets or clears the lastCol style flag.
func (t *Table) SetLastCol(v bool) { t.setBoolProp("lastCol", v) }

// LastRow reports the lastRow style flag, false when unset.
func (t *Table) LastRow() bool { return t.boolProp("lastRow") }

// SetLastRow sets or clears the lastRow style flag.
func (t *Table) SetLastRow(v bool) { t.setBoolProp("lastRow", v) }

// TableCell wraps an <a:tc> element. Inset margins default to 45720 EMU
// top/bottom and 91440 EMU left/right when the tcPr attribute is unset.
type TableCell struct {
	el *etree.Element
}

// NewTableCell returns a new <a:tc> element tree holding an empty body
// paragraph and an unset properties element.
func NewTableCell() *TableCell {
	tc := etree.NewElement("a:tc")
	declareNamespaces(tc, "a")

	txBody := tc.CreateElement("a:txBody")
	txBody.CreateElement("a:bodyPr")
	txBody.CreateElement("a:lstStyle")
	txBody.CreateElement("a:p")

	tc.CreateElement("a:tcPr")

	return &TableCell{el: tc}
}

// WrapTableCell wraps an existing <a:tc> element.
func WrapTableCell(el *etree.Element) *TableCell {
	return &TableCell{el: el}
}

// Element returns the underlying element.
func (c *TableCell) Element() *etree.Element {
	return c.el
}

func (c *TableCell) marX(attr string, dflt int64) int64 {
	tcPr := c.el.SelectElement("a:tcPr")
	if tcPr == nil {
		return dflt
	}
	v, err := strconv.ParseInt(tcPr.SelectAttrValue(attr, strconv.FormatInt(dflt, 10)), 10, 64)
	if err != nil {
		return dflt
	}
	return v
}

func (c *TableCell) setMarX(attr string, value int64) {
	c.ensureTcPr().CreateAttr(attr, strconv.FormatInt(value, 10))
}

// clearMarX removes the margin attribute and then the tcPr element itself
// once no attributes remain. Cell properties prune, table properties do
// not.
func (c *TableCell) clearMarX(attr string) {
	tcPr := c.el.SelectElement("a:tcPr")
	if tcPr == nil {
		return
	}
	tcPr.RemoveAttr(attr)
	c.pruneTcPr(tcPr)
}

// ensureTcPr returns the tcPr child, inserting one immediately after the
// text body when missing.
func (c *TableCell) ensureTcPr() *etree.Element {
	tcPr := c.el.SelectElement("a:tcPr")
	if tcPr != nil {
		return tcPr
	}
	tcPr = etree.NewElement("a:tcPr")
	idx := 0
	if c.el.SelectElement("a:txBody") != nil {
		idx = 1
	}
	c.el.InsertChildAt(idx, tcPr)
	return tcPr
}

func (c *TableCell) pruneTcPr(tcPr *etree.Element) {
	if len(tcPr.Attr) == 0 {
		c.el.RemoveChild(tcPr)
	}
}

// MarT is the top inset margin in EMU.
func (c *TableCell) MarT() int64 { return c.marX("marT", schema.DefaultCellMarginTopBottom) }

// SetMarT sets the top inset margin in EMU.
func (c *TableCell) SetMarT(v int64) { c.setMarX("marT", v) }

// ClearMarT restores the top margin to its default.
func (c *TableCell) ClearMarT() { c.clearMarX("marT") }

// MarR is the right inset margin in EMU.
func (c *TableCell) MarR() int64 { return c.marX("marR", schema.DefaultCellMarginLeftRight) }

// SetMarR sets the right inset margin in EMU.
func (c *TableCell) SetMarR(v int64) { c.setMarX("marR", v) }

// ClearMarR restores the right margin to its default.
func (c *TableCell) ClearMarR() { c.clearMarX("marR") }

// MarB is the bottom inset margin in EMU.
func (c *TableCell) MarB() int64 { return c.marX("marB", schema.DefaultCellMarginTopBottom) }

// SetMarB sets the bottom inset margin in EMU.
func (c *TableCell) SetMarB(v int64) { c.setMarX("marB", v) }

// ClearMarB restores the bottom margin to its default.
func (c *TableCell) ClearMarB() { c.clearMarX("marB") }

// MarL is the left inset margin in EMU.
func (c *TableCell) MarL() int64 { return c.marX("marL", schema.DefaultCellMarginLeftRight) }

// SetMarL sets the left inset margin in EMU.
func (c *TableCell) SetMarL(v int64) { c.setMarX("marL", v) }

// ClearMarL restores the left margin to its default.
func (c *TableCell) ClearMarL() { c.clearMarX("marL") }

// Anchor returns the vertical anchor attribute, "" when unset.
func (c *TableCell) Anchor() string {
	tcPr := c.el.SelectElement("a:tcPr")
	if tcPr == nil {
		return ""
	}
	return tcPr.SelectAttrValue("anchor", "")
}

// SetAnchor sets the vertical anchor attribute.
func (c *TableCell) SetAnchor(anchor string) {
	c.ensureTcPr().CreateAttr("anchor", anchor)
}

// ClearAnchor removes the anchor attribute, pruning an attribute-empty
// tcPr element.
func (c *TableCell) ClearAnchor() {
	tcPr := c.el.SelectElement("a:tcPr")
	if tcPr == nil {
		return
	}
	tcPr.RemoveAttr("anchor")
	c.pruneTcPr(tcPr)
}
