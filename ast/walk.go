package ast

import (
	"iter"
)

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children of
// node with the visitor w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order over Childrens. Back-references
// are never followed.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	for _, child := range node.Childrens() {
		Walk(v, child)
	}
	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first order: it calls f(node) and, if f
// returns true, inspects each child of node, followed by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Descendants yields every node below root in depth-first pre-order, root
// excluded. The sequence is lazy and can be ranged over any number of times.
func Descendants(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if isNil(root) {
			return
		}
		stack := reversed(root.Childrens())
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n) {
				return
			}
			stack = append(stack, reversed(n.Childrens())...)
		}
	}
}

// DescendantsAndSelf is Descendants with root yielded first.
func DescendantsAndSelf(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if isNil(root) || !yield(root) {
			return
		}
		for n := range Descendants(root) {
			if !yield(n) {
				return
			}
		}
	}
}

// Find returns the first node below root, in pre-order, for which match
// holds.
func Find(root Node, match func(Node) bool) Node {
	for n := range Descendants(root) {
		if match(n) {
			return n
		}
	}
	return nil
}

// OfKind collects the nodes below root that are a T, in pre-order.
func OfKind[T Node](root Node) []T {
	var found []T
	for n := range Descendants(root) {
		if t, ok := n.(T); ok {
			found = append(found, t)
		}
	}
	return found
}

func reversed(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[len(nodes)-1-i] = n
	}
	return out
}
