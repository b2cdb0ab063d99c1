// Package chart builds line-chart chartSpace documents from tabular data.
// The output references an externally cached workbook through a
// relationship id and carries the cached category labels and numeric
// values inline, the way the consuming application expects.
package chart

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"pml/oxml"
	"pml/schema"
)

// Axis ids link the line-chart series block to the category and value
// axis definitions. They only need to be consistent within one chart.
const (
	catAxisID = "172167552"
	valAxisID = "172169088"
)

// sheetName is the workbook sheet all cell-reference formulas point at.
const sheetName = "Sheet1"

// ErrTooManyColumns is returned when the data has more value columns than
// single-letter cell references can address. The reference format is a
// fixed contract; it is not extended to multi-letter columns.
var ErrTooManyColumns = errors.New("more value columns than single-letter references support")

// ChartSpace wraps a <c:chartSpace> element, the root of a chart part.
type ChartSpace struct {
	el *etree.Element
}

// Element returns the underlying element.
func (cs *ChartSpace) Element() *etree.Element {
	return cs.el
}

// XML serializes the chart part with the standalone declaration the
// consuming application expects.
func (cs *ChartSpace) XML(pretty bool) (string, error) {
	return oxml.Serialize(cs.el, oxml.SerializeOptions{Pretty: pretty, Declaration: true})
}

// NewChartSpace builds a line-chart chartSpace document. headings holds
// one label per data column, category heading first; categories holds the
// first-column labels; values holds one numeric column per remaining
// heading. rID references the cached workbook part and is embedded
// verbatim.
func NewChartSpace(rID string, headings []string, categories []string, values [][]float64) (*ChartSpace, error) {
	if len(headings) != len(values)+1 {
		return nil, fmt.Errorf("%d headings for %d value columns: %w", len(headings), len(values), schema.ErrInvalidValue)
	}
	if len(values) > 'Z'-'B'+1 {
		return nil, fmt.Errorf("%d value columns: %w", len(values), ErrTooManyColumns)
	}
	for i, col := range values {
		if len(col) != len(categories) {
			return nil, fmt.Errorf("value column %d has %d points for %d categories: %w",
				i, len(col), len(categories), schema.ErrInvalidValue)
		}
	}

	cs := newChartSpaceShell(rID)
	plotArea := cs.FindElement("c:chart/c:plotArea")

	plotArea.AddChild(newLineChart(headings, categories, values))
	plotArea.AddChild(newCatAxis())
	plotArea.AddChild(newValAxis())

	return &ChartSpace{el: cs}, nil
}

// newChartSpaceShell builds the fixed chartSpace boilerplate: locale,
// rounded corners, the c14 style choice with its fallback, legend, default
// text properties and the external workbook reference.
func newChartSpaceShell(rID string) *etree.Element {
	cs := etree.NewElement("c:chartSpace")
	declareNS(cs, "c", "a", "r")

	createVal(cs, "c:date1904", "0")
	createVal(cs, "c:lang", "en-US")
	createVal(cs, "c:roundedCorners", "0")

	ac := cs.CreateElement("mc:AlternateContent")
	declareNS(ac, "mc")
	choice := ac.CreateElement("mc:Choice")
	choice.CreateAttr("Requires", "c14")
	declareNS(choice, "c14")
	createVal(choice, "c14:style", "102")
	createVal(ac.CreateElement("mc:Fallback"), "c:style", "2")

	chart := cs.CreateElement("c:chart")
	createVal(chart, "c:autoTitleDeleted", "0")
	chart.CreateElement("c:plotArea").CreateElement("c:layout")
	legend := chart.CreateElement("c:legend")
	createVal(legend, "c:legendPos", "r")
	legend.CreateElement("c:layout")
	createVal(legend, "c:overlay", "0")
	createVal(chart, "c:plotVisOnly", "1")
	createVal(chart, "c:dispBlanksAs", "gap")
	createVal(chart, "c:showDLblsOverMax", "0")

	txPr := cs.CreateElement("c:txPr")
	txPr.CreateElement("a:bodyPr")
	txPr.CreateElement("a:lstStyle")
	p := txPr.CreateElement("a:p")
	defRPr := p.CreateElement("a:pPr").CreateElement("a:defRPr")
	defRPr.CreateAttr("sz", "1800")
	p.CreateElement("a:endParaRPr").CreateAttr("lang", "en-US")

	extData := cs.CreateElement("c:externalData")
	extData.CreateAttr("r:id", rID)
	createVal(extData, "c:autoUpdate", "0")

	return cs
}

// newLineChart builds the <c:lineChart> block: one series per value
// column plus the fixed label settings and the two axis references.
func newLineChart(headings []string, categories []string, values [][]float64) *etree.Element {
	lineChart := etree.NewElement("c:lineChart")
	createVal(lineChart, "c:grouping", "standard")
	createVal(lineChart, "c:varyColors", "0")

	lastRow := strconv.Itoa(len(categories) + 1)
	for i, col := range values {
		// value columns live in B, C, ... with headings in row 1
		letter := string(rune('B' + i))
		refSeries := sheetName + "!$" + letter + "$1"
		refCat := sheetName + "!$A$2:$A$" + lastRow
		refVal := sheetName + "!$" + letter + "$2:$" + letter + "$" + lastRow

		ser := lineChart.CreateElement("c:ser")
		createVal(ser, "c:idx", strconv.Itoa(i))
		createVal(ser, "c:order", strconv.Itoa(i))
		ser.CreateElement("c:tx").AddChild(newStrRef(refSeries, []string{headings[i+1]}))
		createVal(ser.CreateElement("c:marker"), "c:symbol", "none")
		ser.CreateElement("c:cat").AddChild(newStrRef(refCat, categories))
		ser.CreateElement("c:val").AddChild(newNumRef(refVal, col))
		createVal(ser, "c:smooth", "0")
	}

	dLbls := lineChart.CreateElement("c:dLbls")
	createVal(dLbls, "c:showLegendKey", "0")
	createVal(dLbls, "c:showVal", "0")
	createVal(dLbls, "c:showCatName", "0")
	createVal(dLbls, "c:showSerName", "0")
	createVal(dLbls, "c:showPercent", "0")
	createVal(dLbls, "c:showBubbleSize", "0")

	createVal(lineChart, "c:marker", "1")
	createVal(lineChart, "c:smooth", "0")
	createVal(lineChart, "c:axId", catAxisID)
	createVal(lineChart, "c:axId", valAxisID)

	return lineChart
}

// newStrRef builds a <c:strRef> with formula f and the cached labels.
func newStrRef(f string, labels []string) *etree.Element {
	strRef := etree.NewElement("c:strRef")
	strRef.CreateElement("c:f").SetText(f)
	cache := strRef.CreateElement("c:strCache")
	createVal(cache, "c:ptCount", strconv.Itoa(len(labels)))
	for idx, label := range labels {
		pt := cache.CreateElement("c:pt")
		pt.CreateAttr("idx", strconv.Itoa(idx))
		pt.CreateElement("c:v").SetText(label)
	}
	return strRef
}

// newNumRef builds a <c:numRef> with formula f and the cached values.
func newNumRef(f string, points []float64) *etree.Element {
	numRef := etree.NewElement("c:numRef")
	numRef.CreateElement("c:f").SetText(f)
	cache := numRef.CreateElement("c:numCache")
	cache.CreateElement("c:formatCode").SetText("General")
	createVal(cache, "c:ptCount", strconv.Itoa(len(points)))
	for idx, v := range points {
		pt := cache.CreateElement("c:pt")
		pt.CreateAttr("idx", strconv.Itoa(idx))
		oxml.SetFloatText(pt.CreateElement("c:v"), v)
	}
	return numRef
}

func newCatAxis() *etree.Element {
	catAx := etree.NewElement("c:catAx")
	createVal(catAx, "c:axId", catAxisID)
	createVal(catAx.CreateElement("c:scaling"), "c:orientation", "minMax")
	createVal(catAx, "c:delete", "0")
	createVal(catAx, "c:axPos", "b")
	createVal(catAx, "c:majorTickMark", "out")
	createVal(catAx, "c:minorTickMark", "none")
	createVal(catAx, "c:tickLblPos", "nextTo")
	createVal(catAx, "c:crossAx", valAxisID)
	createVal(catAx, "c:crosses", "autoZero")
	createVal(catAx, "c:auto", "1")
	createVal(catAx, "c:lblAlgn", "ctr")
	createVal(catAx, "c:lblOffset", "100")
	createVal(catAx, "c:noMultiLvlLbl", "0")
	return catAx
}

func newValAxis() *etree.Element {
	valAx := etree.NewElement("c:valAx")
	createVal(valAx, "c:axId", valAxisID)
	createVal(valAx.CreateElement("c:scaling"), "c:orientation", "minMax")
	createVal(valAx, "c:delete", "0")
	createVal(valAx, "c:axPos", "l")
	valAx.CreateElement("c:majorGridlines")
	numFmt := valAx.CreateElement("c:numFmt")
	numFmt.CreateAttr("formatCode", "General")
	numFmt.CreateAttr("sourceLinked", "1")
	createVal(valAx, "c:majorTickMark", "out")
	createVal(valAx, "c:minorTickMark", "none")
	createVal(valAx, "c:tickLblPos", "nextTo")
	createVal(valAx, "c:crossAx", catAxisID)
	createVal(valAx, "c:crosses", "autoZero")
	createVal(valAx, "c:crossBetween", "between")
	return valAx
}

// createVal appends a child with a single val attribute, the dominant
// element shape in chart markup.
func createVal(parent *etree.Element, tag, val string) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateAttr("val", val)
	return el
}

// declareNS stamps xmlns declarations for registered prefixes onto el.
func declareNS(el *etree.Element, prefixes ...string) {
	decls, err := schema.NSDecls(prefixes...)
	if err != nil {
		panic(err) // fixed prefixes, cannot fail
	}
	for _, d := range decls {
		el.CreateAttr("xmlns:"+d.Prefix, d.URI)
	}
}
