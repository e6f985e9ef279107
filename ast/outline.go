package ast

// OutlineNode is a plain description of a node and its children. It holds
// no references back into the tree, so it can be printed or compared as a
// value.
type OutlineNode struct {
	Kind     string
	Text     string
	Span     string
	Children []OutlineNode
}

// Outline describes n and everything it owns.
func Outline(n Node) OutlineNode {
	if isNil(n) {
		return OutlineNode{Kind: KindInvalid.String()}
	}
	out := OutlineNode{Kind: n.Kind().String(), Text: n.String()}
	if span := n.Pos(); !span.IsZero() {
		out.Span = span.String()
	}
	for _, child := range n.Childrens() {
		out.Children = append(out.Children, Outline(child))
	}
	return out
}
