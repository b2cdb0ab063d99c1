package oxml

import "testing"

func TestNewGraphicFrame(t *testing.T) {
	frame := NewGraphicFrame(4, "Table 3", 100, 200, 300, 400)
	el := frame.Element()

	if got, want := el.FullTag(), "p:graphicFrame"; got != want {
		t.Fatalf("tag = %q, want %q", got, want)
	}

	cNvPr := el.FindElement("p:nvGraphicFramePr/p:cNvPr")
	if got, want := cNvPr.SelectAttrValue("id", ""), "4"; got != want {
		t.Errorf("id = %q, want %q", got, want)
	}
	if got, want := cNvPr.SelectAttrValue("name", ""), "Table 3"; got != want {
		t.Errorf("name = %q, want %q", got, want)
	}

	locks := el.FindElement("p:nvGraphicFramePr/p:cNvGraphicFramePr/a:graphicFrameLocks")
	if locks == nil {
		t.Fatal("missing a:graphicFrameLocks")
	}
	if got, want := locks.SelectAttrValue("noGrp", ""), "1"; got != want {
		t.Errorf("noGrp = %q, want %q", got, want)
	}

	// graphicFrame positioning uses p:xfrm, not the a:xfrm shapes carry
	xfrm := el.SelectElement("p:xfrm")
	if xfrm == nil {
		t.Fatal("missing p:xfrm")
	}
	if got, want := xfrm.FindElement("a:off").SelectAttrValue("x", ""), "100"; got != want {
		t.Errorf("off x = %q, want %q", got, want)
	}
	if got, want := xfrm.FindElement("a:ext").SelectAttrValue("cy", ""), "400"; got != want {
		t.Errorf("ext cy = %q, want %q", got, want)
	}

	if el.FindElement("a:graphic/a:graphicData") == nil {
		t.Error("missing a:graphic/a:graphicData")
	}
	if frame.HasTable() || frame.HasChart() {
		t.Error("bare frame reports graphical content")
	}
	if frame.Table() != nil {
		t.Error("Table() on bare frame is not nil")
	}
	if got := frame.ChartRelID(); got != "" {
		t.Errorf("ChartRelID() on bare frame = %q, want \"\"", got)
	}
}

func TestNewTableGraphicFrame(t *testing.T) {
	frame := NewTableGraphicFrame(5, "Table 4", 2, 3, 0, 0, 600, 400)

	gd := frame.Element().FindElement("a:graphic/a:graphicData")
	if got, want := gd.SelectAttrValue("uri", ""), DataTypeTable; got != want {
		t.Errorf("graphicData uri = %q, want %q", got, want)
	}
	if !frame.HasTable() {
		t.Error("HasTable() = false")
	}
	if frame.HasChart() {
		t.Error("HasChart() = true")
	}

	tbl := frame.Table()
	if tbl == nil {
		t.Fatal("Table() = nil")
	}
	if got, want := len(tbl.Rows()), 2; got != want {
		t.Errorf("row count = %d, want %d", got, want)
	}
	if got, want := len(tbl.Element().SelectElement("a:tblGrid").SelectElements("a:gridCol")), 3; got != want {
		t.Errorf("column count = %d, want %d", got, want)
	}
	if got, want := tbl.StyleID(), defaultTableStyleID; got != want {
		t.Errorf("StyleID() = %q, want %q", got, want)
	}
}

func TestNewChartGraphicFrame(t *testing.T) {
	frame := NewChartGraphicFrame(6, "Chart 5", "rId3", 0, 0, 600, 400)
	el := frame.Element()

	gd := el.FindElement("a:graphic/a:graphicData")
	if got, want := gd.SelectAttrValue("uri", ""), DataTypeChart; got != want {
		t.Errorf("graphicData uri = %q, want %q", got, want)
	}
	if !frame.HasChart() {
		t.Error("HasChart() = false")
	}
	if frame.Table() != nil {
		t.Error("Table() on chart frame is not nil")
	}

	ext := el.FindElement("p:nvGraphicFramePr/p:nvPr/p:extLst/p:ext")
	if ext == nil {
		t.Fatal("missing p:extLst/p:ext")
	}
	if got, want := ext.SelectAttrValue("uri", ""), chartExtURI; got != want {
		t.Errorf("ext uri = %q, want %q", got, want)
	}
	if got, want := ext.FindElement("p14:modId").SelectAttrValue("val", ""), "1947380272"; got != want {
		t.Errorf("p14:modId = %q, want %q", got, want)
	}

	chart := gd.SelectElement("c:chart")
	if chart == nil {
		t.Fatal("missing c:chart")
	}
	if got, want := chart.SelectAttrValue("r:id", ""), "rId3"; got != want {
		t.Errorf("c:chart r:id = %q, want %q", got, want)
	}
	if got, want := frame.ChartRelID(), "rId3"; got != want {
		t.Errorf("ChartRelID() = %q, want %q", got, want)
	}
}

func TestNewPicture(t *testing.T) {
	pic := NewPicture(7, "Picture 6", "kitten", "rId9", 10, 20, 30, 40)
	el := pic.Element()

	if got, want := el.FullTag(), "p:pic"; got != want {
		t.Fatalf("tag = %q, want %q", got, want)
	}

	cNvPr := el.FindElement("p:nvPicPr/p:cNvPr")
	if got, want := cNvPr.SelectAttrValue("id", ""), "7"; got != want {
		t.Errorf("id = %q, want %q", got, want)
	}
	if got, want := cNvPr.SelectAttrValue("name", ""), "Picture 6"; got != want {
		t.Errorf("name = %q, want %q", got, want)
	}
	if got, want := pic.Descr(), "kitten"; got != want {
		t.Errorf("Descr() = %q, want %q", got, want)
	}

	locks := el.FindElement("p:nvPicPr/p:cNvPicPr/a:picLocks")
	if got, want := locks.SelectAttrValue("noChangeAspect", ""), "1"; got != want {
		t.Errorf("noChangeAspect = %q, want %q", got, want)
	}

	blip := el.FindElement("p:blipFill/a:blip")
	if got, want := blip.SelectAttrValue("r:embed", ""), "rId9"; got != want {
		t.Errorf("r:embed = %q, want %q", got, want)
	}
	if got, want := pic.Embed(), "rId9"; got != want {
		t.Errorf("Embed() = %q, want %q", got, want)
	}
	if el.FindElement("p:blipFill/a:stretch/a:fillRect") == nil {
		t.Error("missing a:stretch/a:fillRect")
	}

	spPr := el.SelectElement("p:spPr")
	if got, want := spPr.FindElement("a:xfrm/a:off").SelectAttrValue("y", ""), "20"; got != want {
		t.Errorf("off y = %q, want %q", got, want)
	}
	if got, want := spPr.FindElement("a:prstGeom").SelectAttrValue("prst", ""), "rect"; got != want {
		t.Errorf("prst = %q, want %q", got, want)
	}
}
