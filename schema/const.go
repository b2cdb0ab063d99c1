package schema

// EMUPerInch is the number of English Metric Units per inch, the linear
// unit used for all positions and sizes.
const EMUPerInch = 914400

// Default table cell inset margins in EMU (0.05in top/bottom, 0.10in
// left/right). A cell without a tcPr element reads these values.
const (
	DefaultCellMarginTopBottom = 45720
	DefaultCellMarginLeftRight = 91440
)

// XSDTrue is the canonical serialization of a true boolean attribute.
const XSDTrue = "1"

// Placeholder type attribute values.
const (
	PHTypeBody     = "body"
	PHTypeChart    = "chart"
	PHTypeCtrTitle = "ctrTitle"
	PHTypeDate     = "dt"
	PHTypeFooter   = "ftr"
	PHTypeObject   = "obj"
	PHTypePicture  = "pic"
	PHTypeSlideNum = "sldNum"
	PHTypeSubtitle = "subTitle"
	PHTypeTable    = "tbl"
	PHTypeTitle    = "title"
)

// Placeholder orientation and size attribute values with their defaults.
const (
	PHOrientHorz = "horz"
	PHOrientVert = "vert"

	PHSizeFull    = "full"
	PHSizeHalf    = "half"
	PHSizeQuarter = "quarter"
)

// phTypesWithTextFrame lists placeholder types that carry a text body.
var phTypesWithTextFrame = map[string]bool{
	PHTypeTitle:    true,
	PHTypeCtrTitle: true,
	PHTypeSubtitle: true,
	PHTypeBody:     true,
	PHTypeObject:   true,
}

// PlaceholderHasTextFrame reports whether a placeholder of the given type
// gets a txBody child when created.
func PlaceholderHasTextFrame(phType string) bool {
	return phTypesWithTextFrame[phType]
}
