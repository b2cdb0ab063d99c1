package oxml

import (
	"strconv"

	"github.com/beevik/etree"
)

// Graphic-data discriminator URIs. Which one is present on the
// <a:graphicData> child decides whether a frame holds a table or a chart.
const (
	DataTypeTable = "http://schemas.openxmlformats.org/drawingml/2006/table"
	DataTypeChart = "http://schemas.openxmlformats.org/drawingml/2006/chart"
)

// chartExtURI tags the p14 modification-id extension block PowerPoint
// 2010+ writes alongside chart references.
const chartExtURI = "{D42A27DB-BD31-4B8C-83A1-F6EECF244321}"

// GraphicFrame wraps a <p:graphicFrame> element, the container for a
// table or a chart.
type GraphicFrame struct {
	el *etree.Element
}

// NewGraphicFrame returns a new <p:graphicFrame> element tree suitable for
// containing a table or chart. A graphicFrame is not a valid shape until
// it holds a graphical object.
func NewGraphicFrame(id int, name string, left, top, width, height int64) *GraphicFrame {
	frame := etree.NewElement("p:graphicFrame")
	declareNamespaces(frame, "a", "p")

	nvPr := frame.CreateElement("p:nvGraphicFramePr")
	cNvPr := nvPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", strconv.Itoa(id))
	cNvPr.CreateAttr("name", name)
	nvPr.CreateElement("p:cNvGraphicFramePr").CreateElement("a:graphicFrameLocks").CreateAttr("noGrp", "1")
	nvPr.CreateElement("p:nvPr")

	xfrm := frame.CreateElement("p:xfrm")
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", strconv.FormatInt(left, 10))
	off.CreateAttr("y", strconv.FormatInt(top, 10))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", strconv.FormatInt(width, 10))
	ext.CreateAttr("cy", strconv.FormatInt(height, 10))

	frame.CreateElement("a:graphic").CreateElement("a:graphicData")

	return &GraphicFrame{el: frame}
}

// NewTableGraphicFrame returns a <p:graphicFrame> element tree populated
// with a table of the given dimensions.
func NewTableGraphicFrame(id int, name string, rows, cols int, left, top, width, height int64) *GraphicFrame {
	frame := NewGraphicFrame(id, name, left, top, width, height)

	graphicData := frame.graphicData()
	graphicData.CreateAttr("uri", DataTypeTable)
	graphicData.AddChild(NewTable(rows, cols, width, height, "").Element())

	return frame
}

// NewChartGraphicFrame returns a <p:graphicFrame> element tree referencing
// a chart part through rID. The chart XML itself is a separate part built
// by the chart package.
func NewChartGraphicFrame(id int, name, rID string, left, top, width, height int64) *GraphicFrame {
	frame := NewGraphicFrame(id, name, left, top, width, height)

	graphicData := frame.graphicData()
	graphicData.CreateAttr("uri", DataTypeChart)

	ext := frame.el.FindElement("p:nvGraphicFramePr/p:nvPr").CreateElement("p:extLst").CreateElement("p:ext")
	ext.CreateAttr("uri", chartExtURI)
	modID := ext.CreateElement("p14:modId")
	declareNamespaces(modID, "p14")
	modID.CreateAttr("val", "1947380272")

	chart := graphicData.CreateElement("c:chart")
	declareNamespaces(chart, "c", "r")
	chart.CreateAttr("r:id", rID)

	return frame
}

// WrapGraphicFrame wraps an existing <p:graphicFrame> element.
func WrapGraphicFrame(el *etree.Element) *GraphicFrame {
	return &GraphicFrame{el: el}
}

// Element returns the underlying element.
func (f *GraphicFrame) Element() *etree.Element {
	return f.el
}

func (f *GraphicFrame) graphicData() *etree.Element {
	return f.el.FindElement("a:graphic/a:graphicData")
}

func (f *GraphicFrame) dataType() string {
	gd := f.graphicData()
	if gd == nil {
		return ""
	}
	return gd.SelectAttrValue("uri", "")
}

// HasTable reports whether the frame contains a table.
func (f *GraphicFrame) HasTable() bool {
	return f.dataType() == DataTypeTable
}

// HasChart reports whether the frame references a chart part.
func (f *GraphicFrame) HasChart() bool {
	return f.dataType() == DataTypeChart
}

// Table returns the wrapped <a:tbl> child, or nil when the frame does not
// contain a table.
func (f *GraphicFrame) Table() *Table {
	if !f.HasTable() {
		return nil
	}
	tbl := f.graphicData().SelectElement("a:tbl")
	if tbl == nil {
		return nil
	}
	return &Table{el: tbl}
}

// ChartRelID returns the r:id of the referenced chart part, or "" when the
// frame does not reference a chart.
func (f *GraphicFrame) ChartRelID() string {
	if !f.HasChart() {
		return ""
	}
	chart := f.graphicData().SelectElement("c:chart")
	if chart == nil {
		return ""
	}
	return chart.SelectAttrValue("r:id", "")
}
