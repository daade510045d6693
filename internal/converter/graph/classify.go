package graph

import (
	"updl-converter/internal/converter/parser"
)

// IsUPDLNode reports whether n belongs to the domain graph: either the editor
// put it in the UPDL category or its name is one of the UPDL kind tags.
func IsUPDLNode(n parser.Node) bool {
	if n.Data.Category == parser.CategoryUPDL {
		return true
	}
	return parser.KindOf(n) != parser.KindUnknown
}
