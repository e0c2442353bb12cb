package token

// Kind represents the lexical class of a token.
type Kind uint16

// Token kinds produced by the scanner.
const (
	KindNone Kind = iota

	// Comments
	KindComment

	// Document structure
	KindDocumentStart // ---
	KindDocumentEnd   // ...
	KindDirective     // %YAML, %TAG

	// Block structure
	KindKeyIndicator // :
	KindSequenceDash // -

	// Flow structure
	KindFlowSequenceStart // [
	KindFlowSequenceEnd   // ]
	KindFlowMappingStart  // {
	KindFlowMappingEnd    // }
	KindFlowEntry         // ,

	// Node properties
	KindAnchor // &name
	KindAlias  // *name
	KindTag    // !tag

	// Scalars
	KindScalar
	KindString
	KindNumber
	KindBool
	KindNull

	// Error is synthesized by the cache when the scanner reports a
	// recoverable lexical error. It is ordinary data in the token stream.
	KindError

	// Sentinel for iteration
	kindCount
)

// kindNames maps kinds to their string names.
var kindNames = []string{
	KindNone:              "none",
	KindComment:           "comment",
	KindDocumentStart:     "document-start",
	KindDocumentEnd:       "document-end",
	KindDirective:         "directive",
	KindKeyIndicator:      "key-indicator",
	KindSequenceDash:      "sequence-dash",
	KindFlowSequenceStart: "flow-sequence-start",
	KindFlowSequenceEnd:   "flow-sequence-end",
	KindFlowMappingStart:  "flow-mapping-start",
	KindFlowMappingEnd:    "flow-mapping-end",
	KindFlowEntry:         "flow-entry",
	KindAnchor:            "anchor",
	KindAlias:             "alias",
	KindTag:               "tag",
	KindScalar:            "scalar",
	KindString:            "string",
	KindNumber:            "number",
	KindBool:              "bool",
	KindNull:              "null",
	KindError:             "error",
}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsError returns true if this is the synthetic error kind.
func (k Kind) IsError() bool {
	return k == KindError
}

// IsScalar returns true if this is a scalar-valued kind.
func (k Kind) IsScalar() bool {
	return k >= KindScalar && k <= KindNull
}

// IsFlow returns true if this is a flow-structure delimiter.
func (k Kind) IsFlow() bool {
	return k >= KindFlowSequenceStart && k <= KindFlowEntry
}

// IsStructure returns true if this is a structural indicator
// (document markers, key indicators, dashes, flow delimiters).
func (k Kind) IsStructure() bool {
	return (k >= KindDocumentStart && k <= KindSequenceDash) || k.IsFlow()
}

// kindByName maps kind names back to kinds.
var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for i, name := range kindNames {
		if name != "" {
			m[name] = Kind(i)
		}
	}
	return m
}()

// KindFromString converts a kind name back to a Kind.
// Returns KindNone for unrecognized names.
func KindFromString(name string) Kind {
	if k, ok := kindByName[name]; ok {
		return k
	}
	return KindNone
}

// Kinds returns all named kinds in declaration order.
// Useful for iterating theme or configuration tables.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindComment; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
