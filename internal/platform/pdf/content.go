// Package pdf projects presentation models into a renderer-independent
// content description. The node tree says what a report contains, not
// how it is painted; a downstream renderer turns it into pages.
package pdf

// Kind tags a content node.
type Kind string

const (
	KindTable Kind = "table"
	KindRow   Kind = "row"
	KindCell  Kind = "cell"
	KindText  Kind = "text"
	KindRule  Kind = "hr"
)

// Node is one element of the content tree. Styles accumulate from the
// root down; a nested sub-table carries every tag of its ancestors plus
// its own.
type Node struct {
	Kind     Kind    `json:"kind"`
	Text     string  `json:"text,omitempty"`
	Styles   []string `json:"styles,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Leaves counts the text and rule leaves of the tree. Projection over a
// finite model graph always terminates with a finite leaf count.
func (n *Node) Leaves() int {
	if n == nil {
		return 0
	}
	if len(n.Children) == 0 {
		if n.Kind == KindText || n.Kind == KindRule {
			return 1
		}
		return 0
	}
	total := 0
	for _, c := range n.Children {
		total += c.Leaves()
	}
	return total
}

func text(s string, styles ...string) *Node {
	return &Node{Kind: KindText, Text: s, Styles: styles}
}

func cell(children ...*Node) *Node {
	return &Node{Kind: KindCell, Children: children}
}

func row(children ...*Node) *Node {
	return &Node{Kind: KindRow, Children: children}
}
