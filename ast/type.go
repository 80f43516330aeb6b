package ast

// NodeType represents the type of the AST node
type NodeType uint16

// Node types
const (
	nodeTypeClosed NodeType = 128
	nodeTypeSeq    NodeType = 256

	NodeTypeQuote           = nodeTypeClosed | 1
	NodeTypeTag             = nodeTypeClosed | 2
	NodeTypeAbstraction     = nodeTypeClosed | nodeTypeSeq | 4
	NodeTypeExponentialType = nodeTypeClosed | 8
	NodeTypeOrdinalType     = nodeTypeClosed | nodeTypeSeq | 16

	NodeTypeApplication   NodeType = 1
	NodeTypeDefinition    NodeType = 2
	NodeTypeExprStatement NodeType = 3
	NodeTypeFile          NodeType = nodeTypeSeq | 5
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

// IsClosed returns true for the types that can appear on either side of an
// application.
func (nt NodeType) IsClosed() bool {
	return nt&nodeTypeClosed > 0
}

// IsSequence returns true for the types that hold an ordered list of
// children.
func (nt NodeType) IsSequence() bool {
	return nt&nodeTypeSeq > 0
}

var nodeTypeName = map[NodeType]string{
	NodeTypeQuote:           "quote",
	NodeTypeTag:             "tag",
	NodeTypeAbstraction:     "abstraction",
	NodeTypeExponentialType: "exponential",
	NodeTypeOrdinalType:     "ordinal",
	NodeTypeApplication:     "application",
	NodeTypeDefinition:      "definition",
	NodeTypeExprStatement:   "statement",
	NodeTypeFile:            "file",
}

// Extent is the binding mode annotation of a definition
type Extent uint8

// Extents
const (
	ExtentUniversal Extent = iota
	ExtentNonstatic
	ExtentNondynamic
)

var extentName = map[Extent]string{
	ExtentUniversal:  "universal",
	ExtentNonstatic:  "nonstatic",
	ExtentNondynamic: "nondynamic",
}

func (e Extent) String() string {
	return extentName[e]
}
