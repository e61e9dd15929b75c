package javaparser

// State is the lexical region the scanner is in. Exactly one state is
// active at a time; there is no stack, Java block comments do not nest.
type State int

const (
	CodeState State = iota + 1
	LineCommentState
	BlockCommentState
	StringLiteralState
	TextBlockLiteralState
	CharLiteralState
)

func (st State) GoString() string {
	return stateToDescription[st]
}

func (st State) String() string {
	return stateToDescription[st]
}

// IsComment is true for the two comment states.
func (st State) IsComment() bool {
	return st == LineCommentState || st == BlockCommentState
}

// IsLiteral is true for string, text block and char literals.
func (st State) IsLiteral() bool {
	return st == StringLiteralState || st == TextBlockLiteralState || st == CharLiteralState
}

func init() {
	// make sure we panic if a description isn't declared
	for st := CodeState; st <= CharLiteralState; st++ {
		if stateToDescription[st] == "" {
			panic("you have not updated stateToDescription")
		}
	}
}

var stateToDescription = map[State]string{
	CodeState:             "Code",
	LineCommentState:      "LineComment",
	BlockCommentState:     "BlockComment",
	StringLiteralState:    "StringLiteral",
	TextBlockLiteralState: "TextBlockLiteral",
	CharLiteralState:      "CharLiteral",
}

// MarshalText makes State render by name in YAML and JSON.
func (st State) MarshalText() ([]byte, error) {
	return []byte(st.String()), nil
}
