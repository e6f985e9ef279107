// Package ast is the syntax tree and type model of the shading language
// front end.
//
// A parser builds a tree of nodes rooted at a Shader. Later passes walk it
// with Childrens, Descendants, Walk or a type switch over the closed set of
// node kinds, write resolved types into TypeInference slots, compare types
// with Type.Equals, and take independent copies with DeepClone.
//
// A tree is owned by one pass at a time. Passes that want to work on the same
// subtree concurrently clone it first.
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/kinds.def ../ast/kinds_gen.go ast"

import (
	"reflect"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/shaderast/source"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/shaderast", "ast")

// Node is implemented by every element of the tree.
type Node interface {
	Pos() source.Span
	Kind() NodeKind
	// Childrens returns the owned sub-nodes in declaration order.
	// Back-references are never part of it.
	Childrens() []Node
	String() string
	meta() *Meta
}

// Meta is embedded in every node. It holds the source span and the tag
// dictionary, which is only allocated on first write.
type Meta struct {
	Span source.Span
	tags map[string]interface{}
}

// At returns the Meta for a node located at span.
func At(span source.Span) Meta {
	return Meta{Span: span}
}

func (m *Meta) Pos() source.Span { return m.Span }
func (m *Meta) meta() *Meta      { return m }

func (m *Meta) Tag(key string) (interface{}, bool) {
	if m.tags == nil {
		return nil, false
	}
	v, ok := m.tags[key]
	return v, ok
}

func (m *Meta) SetTag(key string, value interface{}) {
	if m.tags == nil {
		m.tags = make(map[string]interface{})
	}
	m.tags[key] = value
}

func (m *Meta) RemoveTag(key string) bool {
	if _, ok := m.tags[key]; !ok {
		return false
	}
	delete(m.tags, key)
	return true
}

func (m *Meta) HasTags() bool {
	return len(m.tags) > 0
}

func (m *Meta) copyTags() {
	if m.tags == nil {
		return
	}
	tags := make(map[string]interface{}, len(m.tags))
	for k, v := range m.tags {
		tags[k] = v
	}
	m.tags = tags
}

// Typed is implemented by nodes that carry a type inference slot.
type Typed interface {
	Node
	TypeInference() *TypeInference
}

// Declaration is implemented by nodes that introduce a name.
type Declaration interface {
	Node
	DeclarationName() *Identifier
}

// Identifier is a name as written in the source.
type Identifier struct {
	Meta
	Text string
}

func NewIdentifier(text string) *Identifier {
	return &Identifier{Text: text}
}

func (i *Identifier) Kind() NodeKind    { return KindIdentifier }
func (i *Identifier) Childrens() []Node { return nil }
func (i *Identifier) String() string {
	if i == nil {
		return ""
	}
	return i.Text
}

// Equals compares identifiers by text. Two absent identifiers are equal.
func (i *Identifier) Equals(other *Identifier) bool {
	if i == nil || other == nil {
		return i == nil && other == nil
	}
	return i.Text == other.Text
}

// AttributeDeclaration is an attribute such as [numthreads(8, 8, 1)].
type AttributeDeclaration struct {
	Meta
	Name       *Identifier
	Parameters []*Literal
}

func (a *AttributeDeclaration) Kind() NodeKind { return KindAttributeDeclaration }

func (a *AttributeDeclaration) Childrens() []Node {
	nodes := appendNodes(nil, a.Name)
	for _, p := range a.Parameters {
		nodes = appendNodes(nodes, p)
	}
	return nodes
}

func (a *AttributeDeclaration) String() string {
	if len(a.Parameters) == 0 {
		return "[" + a.Name.String() + "]"
	}
	args := make([]string, 0, len(a.Parameters))
	for _, p := range a.Parameters {
		args = append(args, p.String())
	}
	return "[" + a.Name.String() + "(" + strings.Join(args, ", ") + ")]"
}

// Shader is the root handed over by the parser: the top-level declarations
// in source order.
type Shader struct {
	Meta
	Declarations []Node
}

func (s *Shader) Kind() NodeKind { return KindShader }

func (s *Shader) Childrens() []Node {
	return appendNodes(nil, s.Declarations...)
}

func (s *Shader) String() string {
	var lines []string
	for _, d := range s.Declarations {
		lines = append(lines, d.String())
	}
	return strings.Join(lines, "\n")
}

// appendNodes appends the non-nil nodes.
func appendNodes(dst []Node, nodes ...Node) []Node {
	for _, n := range nodes {
		if !isNil(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// isNil reports whether n is absent. Optional children may be left as nil
// interfaces or typed nil pointers by the parser.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
