package ast

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pontaoski/shaderast/errors"
	"github.com/zeebo/xxh3"
	"github.com/ztrue/tracerr"
)

// Type is implemented by every type node.
type Type interface {
	Typed
	Declaration
	Base() *TypeBase
	// Equals is nominal for most kinds; see TypesEqual.
	Equals(other Type) bool
	// Hash is consistent with Equals.
	Hash() uint64
	typeNode()
}

// TypeBase holds what all type nodes share. It is embedded, never used on
// its own.
type TypeBase struct {
	Meta
	Name       *Identifier
	Attributes []*AttributeDeclaration
	Qualifiers Qualifier
	Inference  TypeInference
}

func (t *TypeBase) Base() *TypeBase                { return t }
func (t *TypeBase) TypeInference() *TypeInference { return &t.Inference }
func (t *TypeBase) DeclarationName() *Identifier  { return t.Name }
func (t *TypeBase) typeNode()                     {}

// NameText returns the type name, or "" for anonymous types.
func (t *TypeBase) NameText() string {
	return t.Name.String()
}

func (t *TypeBase) childrens() []Node {
	var nodes []Node
	for _, a := range t.Attributes {
		nodes = appendNodes(nodes, a)
	}
	nodes = appendNodes(nodes, t.Name)
	if !t.Qualifiers.IsNone() {
		nodes = append(nodes, &t.Qualifiers)
	}
	return nodes
}

// TypesEqual compares two types. Names decide, except for generic
// instantiations (also compared parameter by parameter), arrays (compared by
// element type and dimensions) and object types (aliases count as names).
// Different kinds and nil never compare equal. A type declared elsewhere
// that embeds one of these is a different kind, even though it reports the
// same Kind.
func TypesEqual(a, b Type) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() || reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	switch x := a.(type) {
	case *VectorType:
		y, ok := b.(*VectorType)
		return ok && genericEqual(&x.GenericBase, &y.GenericBase)
	case *MatrixType:
		y, ok := b.(*MatrixType)
		return ok && genericEqual(&x.GenericBase, &y.GenericBase)
	case *GenericType:
		y, ok := b.(*GenericType)
		return ok && genericEqual(&x.GenericBase, &y.GenericBase)
	case *ArrayType:
		y, ok := b.(*ArrayType)
		return ok && arrayEqual(x, y)
	case *ObjectType:
		y, ok := b.(*ObjectType)
		return ok && objectEqual(x, y)
	default:
		return a.Base().Name.Equals(b.Base().Name)
	}
}

func genericEqual(a, b *GenericBase) bool {
	if !a.Name.Equals(b.Name) || len(a.Parameters) != len(b.Parameters) {
		return false
	}
	for i := range a.Parameters {
		if !parametersEqual(a.Parameters[i], b.Parameters[i]) {
			return false
		}
	}
	return true
}

func parametersEqual(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	switch x := a.(type) {
	case Type:
		y, ok := b.(Type)
		return ok && TypesEqual(x, y)
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.ValueEquals(y)
	case Expression:
		y, ok := b.(Expression)
		return ok && expressionsEqual(x, y)
	}
	return a == b
}

// expressionsEqual is used for array dimensions and generic parameters:
// literals compare by value, everything else by rendered text.
func expressionsEqual(a, b Expression) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	la, aok := a.(*LiteralExpression)
	lb, bok := b.(*LiteralExpression)
	if aok && bok {
		return la.Literal.ValueEquals(lb.Literal)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return a.String() == b.String()
}

func arrayEqual(a, b *ArrayType) bool {
	if !TypesEqual(a.ElementType, b.ElementType) || len(a.Dimensions) != len(b.Dimensions) {
		return false
	}
	for i := range a.Dimensions {
		if !expressionsEqual(a.Dimensions[i], b.Dimensions[i]) {
			return false
		}
	}
	return true
}

func objectEqual(a, b *ObjectType) bool {
	if a.Name.Equals(b.Name) {
		return true
	}
	return b.hasAlias(a.NameText()) || a.hasAlias(b.NameText())
}

// TypeHash hashes a type consistently with TypesEqual.
func TypeHash(t Type) uint64 {
	if isNil(t) {
		return 0
	}
	h := uint64(t.Kind()) * 0x9E3779B97F4A7C15
	switch x := t.(type) {
	case *VectorType:
		return genericHash(h, &x.GenericBase)
	case *MatrixType:
		return genericHash(h, &x.GenericBase)
	case *GenericType:
		return genericHash(h, &x.GenericBase)
	case *ArrayType:
		h = h*31 + TypeHash(x.ElementType)
		return h*31 + uint64(len(x.Dimensions))
	case *ObjectType:
		// Aliases make two differently named object types equal, and alias
		// equality is not transitive, so no name can be hashed. All object
		// types share one hash; a map keyed by them degrades to a list.
		return h
	default:
		return h*31 + xxh3.HashString(t.Base().NameText())
	}
}

func genericHash(h uint64, g *GenericBase) uint64 {
	h = h*31 + xxh3.HashString(g.NameText())
	for _, p := range g.Parameters {
		h = h*31 + parameterHash(p)
	}
	return h
}

func parameterHash(n Node) uint64 {
	switch x := n.(type) {
	case Type:
		return TypeHash(x)
	case *Literal:
		return x.valueHash()
	case *LiteralExpression:
		return x.Literal.valueHash()
	case nil:
		return 0
	}
	return xxh3.HashString(n.String())
}

// ScalarKind distinguishes the builtin scalar types.
type ScalarKind uint8

const (
	ScalarVoid ScalarKind = iota
	ScalarBool
	ScalarInt
	ScalarUInt
	ScalarHalf
	ScalarFloat
	ScalarDouble
	ScalarString
)

type ScalarType struct {
	TypeBase
	Scalar ScalarKind
}

func NewScalarType(name string, kind ScalarKind) *ScalarType {
	t := &ScalarType{Scalar: kind}
	t.Name = NewIdentifier(name)
	return t
}

func (s *ScalarType) Kind() NodeKind         { return KindScalarType }
func (s *ScalarType) Childrens() []Node      { return s.childrens() }
func (s *ScalarType) String() string         { return s.NameText() }
func (s *ScalarType) Equals(other Type) bool { return TypesEqual(s, other) }
func (s *ScalarType) Hash() uint64           { return TypeHash(s) }

// clone returns a detached copy of a builtin scalar.
func (s *ScalarType) clone() *ScalarType {
	return NewScalarType(s.NameText(), s.Scalar)
}

func (s *ScalarType) IsFloatingPoint() bool {
	return s.Scalar == ScalarHalf || s.Scalar == ScalarFloat || s.Scalar == ScalarDouble
}

func (s *ScalarType) IsInteger() bool {
	return s.Scalar == ScalarInt || s.Scalar == ScalarUInt
}

// ParameterKind is what a generic parameter slot expects.
type ParameterKind uint8

const (
	ParameterType ParameterKind = iota
	ParameterLiteral
)

func (k ParameterKind) String() string {
	if k == ParameterLiteral {
		return "literal"
	}
	return "type"
}

// GenericBase is embedded by generic instantiations. Parameters holds type
// nodes and literals, in order; ParameterTypes says what each slot expects.
type GenericBase struct {
	TypeBase
	Parameters     []Node
	ParameterTypes []ParameterKind
}

func (g *GenericBase) childrens() []Node {
	return appendNodes(g.TypeBase.childrens(), g.Parameters...)
}

func (g *GenericBase) Parameter(i int) (Node, error) {
	if i < 0 || i >= len(g.Parameters) {
		return nil, tracerr.Wrap(errors.OutOfRange{What: "generic parameter", Index: i, Limit: len(g.Parameters)})
	}
	return g.Parameters[i], nil
}

// ValidateParameters checks the parameters against ParameterTypes.
func (g *GenericBase) ValidateParameters() error {
	if len(g.Parameters) != len(g.ParameterTypes) {
		return tracerr.Wrap(errors.OutOfRange{What: "generic parameter", Index: len(g.Parameters), Limit: len(g.ParameterTypes)})
	}
	for i, p := range g.Parameters {
		var ok bool
		switch g.ParameterTypes[i] {
		case ParameterType:
			_, ok = p.(Type)
		case ParameterLiteral:
			_, ok = p.(*Literal)
		}
		if !ok {
			text := "<nil>"
			if !isNil(p) {
				text = p.String()
			}
			return tracerr.Wrap(errors.InvalidArgument{
				What:     fmt.Sprintf("%s parameter %d of %s", g.ParameterTypes[i], i, g.NameText()),
				Text:     text,
				Location: g.Span,
			})
		}
	}
	return nil
}

func (g *GenericBase) typeParameter(i int) Type {
	if i >= len(g.Parameters) {
		return nil
	}
	t, _ := g.Parameters[i].(Type)
	return t
}

func (g *GenericBase) literalParameter(i int) int {
	if i >= len(g.Parameters) {
		return 0
	}
	if l, ok := g.Parameters[i].(*Literal); ok {
		n, _ := l.Int()
		return n
	}
	return 0
}

func (g *GenericBase) String() string {
	params := make([]string, 0, len(g.Parameters))
	for _, p := range g.Parameters {
		if isNil(p) {
			continue
		}
		params = append(params, p.String())
	}
	return g.NameText() + "<" + strings.Join(params, ",") + ">"
}

// VectorType is vector<element, dimension>.
type VectorType struct {
	GenericBase
}

func NewVectorType(element Type, dimension int) *VectorType {
	v := &VectorType{}
	v.Name = NewIdentifier("vector")
	v.Parameters = []Node{element, NewLiteral(dimension)}
	v.ParameterTypes = []ParameterKind{ParameterType, ParameterLiteral}
	return v
}

func (v *VectorType) Kind() NodeKind         { return KindVectorType }
func (v *VectorType) Childrens() []Node      { return v.childrens() }
func (v *VectorType) Equals(other Type) bool { return TypesEqual(v, other) }
func (v *VectorType) Hash() uint64           { return TypeHash(v) }
func (v *VectorType) ElementType() Type      { return v.typeParameter(0) }
func (v *VectorType) Dimension() int         { return v.literalParameter(1) }

var vectorAxes = [...]string{"x", "y", "z", "w"}

// Axis returns the swizzle name of component i.
func (v *VectorType) Axis(i int) (string, error) {
	limit := v.Dimension()
	if limit > len(vectorAxes) {
		limit = len(vectorAxes)
	}
	if i < 0 || i >= limit {
		return "", tracerr.Wrap(errors.OutOfRange{What: "vector axis", Index: i, Limit: limit})
	}
	return vectorAxes[i], nil
}

// ToNonGenericType returns the flat spelling, e.g. float3, linked back to v
// through its inference slot.
func (v *VectorType) ToNonGenericType() *TypeName {
	return nonGeneric(v, fmt.Sprintf("%s%d", typeText(v.ElementType()), v.Dimension()))
}

// MatrixType is matrix<element, rows, columns>.
type MatrixType struct {
	GenericBase
}

func NewMatrixType(element Type, rows, columns int) *MatrixType {
	m := &MatrixType{}
	m.Name = NewIdentifier("matrix")
	m.Parameters = []Node{element, NewLiteral(rows), NewLiteral(columns)}
	m.ParameterTypes = []ParameterKind{ParameterType, ParameterLiteral, ParameterLiteral}
	return m
}

func (m *MatrixType) Kind() NodeKind         { return KindMatrixType }
func (m *MatrixType) Childrens() []Node      { return m.childrens() }
func (m *MatrixType) Equals(other Type) bool { return TypesEqual(m, other) }
func (m *MatrixType) Hash() uint64           { return TypeHash(m) }
func (m *MatrixType) ElementType() Type      { return m.typeParameter(0) }
func (m *MatrixType) RowCount() int          { return m.literalParameter(1) }
func (m *MatrixType) ColumnCount() int       { return m.literalParameter(2) }

// Axis returns the zero-based component name, e.g. _m01.
func (m *MatrixType) Axis(row, column int) (string, error) {
	if row < 0 || row >= m.RowCount() {
		return "", tracerr.Wrap(errors.OutOfRange{What: "matrix row", Index: row, Limit: m.RowCount()})
	}
	if column < 0 || column >= m.ColumnCount() {
		return "", tracerr.Wrap(errors.OutOfRange{What: "matrix column", Index: column, Limit: m.ColumnCount()})
	}
	return fmt.Sprintf("_m%d%d", row, column), nil
}

// ToNonGenericType returns the flat spelling, e.g. float4x4.
func (m *MatrixType) ToNonGenericType() *TypeName {
	return nonGeneric(m, fmt.Sprintf("%s%dx%d", typeText(m.ElementType()), m.RowCount(), m.ColumnCount()))
}

func nonGeneric(t Type, name string) *TypeName {
	tn := NewTypeName(name)
	tn.Span = t.Pos()
	tn.Inference.TargetType = t
	return tn
}

func typeText(t Type) string {
	if isNil(t) {
		return ""
	}
	return t.String()
}

// GenericType is any other named instantiation, e.g. StructuredBuffer<float4>.
type GenericType struct {
	GenericBase
}

func NewGenericType(name string, parameters ...Node) *GenericType {
	g := &GenericType{}
	g.Name = NewIdentifier(name)
	g.Parameters = parameters
	for _, p := range parameters {
		if _, ok := p.(*Literal); ok {
			g.ParameterTypes = append(g.ParameterTypes, ParameterLiteral)
		} else {
			g.ParameterTypes = append(g.ParameterTypes, ParameterType)
		}
	}
	return g
}

func (g *GenericType) Kind() NodeKind         { return KindGenericType }
func (g *GenericType) Childrens() []Node      { return g.childrens() }
func (g *GenericType) Equals(other Type) bool { return TypesEqual(g, other) }
func (g *GenericType) Hash() uint64           { return TypeHash(g) }

// ArrayType is element[d0][d1]... A dimension may be an EmptyExpression for
// an unsized or inferred rank.
type ArrayType struct {
	TypeBase
	ElementType Type
	Dimensions  []Expression
}

func NewArrayType(element Type, dimensions ...Expression) *ArrayType {
	return &ArrayType{ElementType: element, Dimensions: dimensions}
}

func (a *ArrayType) Kind() NodeKind         { return KindArrayType }
func (a *ArrayType) Equals(other Type) bool { return TypesEqual(a, other) }
func (a *ArrayType) Hash() uint64           { return TypeHash(a) }

func (a *ArrayType) Childrens() []Node {
	nodes := appendNodes(a.childrens(), a.ElementType)
	for _, d := range a.Dimensions {
		nodes = appendNodes(nodes, d)
	}
	return nodes
}

// IsDimensionEmpty holds for a single unbound dimension, as in float[].
func (a *ArrayType) IsDimensionEmpty() bool {
	if len(a.Dimensions) != 1 {
		return false
	}
	_, ok := a.Dimensions[0].(*EmptyExpression)
	return ok
}

func (a *ArrayType) String() string {
	var sb strings.Builder
	sb.WriteString(typeText(a.ElementType))
	for _, d := range a.Dimensions {
		sb.WriteString("[")
		if !isNil(d) {
			sb.WriteString(d.String())
		}
		sb.WriteString("]")
	}
	return sb.String()
}

type StructType struct {
	TypeBase
	Fields []*Variable
}

func NewStructType(name string, fields ...*Variable) *StructType {
	s := &StructType{Fields: fields}
	s.Name = NewIdentifier(name)
	return s
}

func (s *StructType) Kind() NodeKind         { return KindStructType }
func (s *StructType) Equals(other Type) bool { return TypesEqual(s, other) }
func (s *StructType) Hash() uint64           { return TypeHash(s) }

func (s *StructType) Childrens() []Node {
	nodes := s.childrens()
	for _, f := range s.Fields {
		nodes = appendNodes(nodes, f)
	}
	return nodes
}

// Field finds a field by name.
func (s *StructType) Field(name string) *Variable {
	for _, f := range s.Fields {
		if f.Name.String() == name {
			return f
		}
	}
	return nil
}

func (s *StructType) String() string {
	var sb strings.Builder
	sb.WriteString("struct")
	if s.Name != nil {
		sb.WriteString(" ")
		sb.WriteString(s.NameText())
	}
	sb.WriteString(" {")
	for _, f := range s.Fields {
		sb.WriteString(" ")
		sb.WriteString(f.String())
		sb.WriteString(";")
	}
	sb.WriteString(" }")
	return sb.String()
}

// ObjectType is an opaque builtin such as Texture2D or SamplerState, which
// may also be reachable through legacy spellings.
type ObjectType struct {
	TypeBase
	AlternativeNames []string
}

func NewObjectType(name string, alternativeNames ...string) *ObjectType {
	o := &ObjectType{AlternativeNames: alternativeNames}
	o.Name = NewIdentifier(name)
	return o
}

func (o *ObjectType) Kind() NodeKind         { return KindObjectType }
func (o *ObjectType) Childrens() []Node      { return o.childrens() }
func (o *ObjectType) String() string         { return o.NameText() }
func (o *ObjectType) Equals(other Type) bool { return TypesEqual(o, other) }
func (o *ObjectType) Hash() uint64           { return TypeHash(o) }

func (o *ObjectType) hasAlias(name string) bool {
	for _, alt := range o.AlternativeNames {
		if alt == name {
			return true
		}
	}
	return false
}

func (o *ObjectType) clone() *ObjectType {
	return NewObjectType(o.NameText(), append([]string(nil), o.AlternativeNames...)...)
}

// IsNamed reports whether name is the primary name or an alias.
func (o *ObjectType) IsNamed(name string) bool {
	return o.NameText() == name || o.hasAlias(name)
}

// GenericParameterType is a placeholder such as T inside a generic method.
type GenericParameterType struct {
	TypeBase
}

func NewGenericParameterType(name string) *GenericParameterType {
	g := &GenericParameterType{}
	g.Name = NewIdentifier(name)
	return g
}

func (g *GenericParameterType) Kind() NodeKind         { return KindGenericParameterType }
func (g *GenericParameterType) Childrens() []Node      { return g.childrens() }
func (g *GenericParameterType) String() string         { return g.NameText() }
func (g *GenericParameterType) Equals(other Type) bool { return TypesEqual(g, other) }
func (g *GenericParameterType) Hash() uint64           { return TypeHash(g) }

// TypeName is a type referenced by name before it is resolved. The resolver
// points Inference.TargetType at the real type.
type TypeName struct {
	TypeBase
}

func NewTypeName(name string) *TypeName {
	t := &TypeName{}
	t.Name = NewIdentifier(name)
	return t
}

func (t *TypeName) Kind() NodeKind         { return KindTypeName }
func (t *TypeName) Childrens() []Node      { return t.childrens() }
func (t *TypeName) String() string         { return t.NameText() }
func (t *TypeName) Equals(other Type) bool { return TypesEqual(t, other) }
func (t *TypeName) Hash() uint64           { return TypeHash(t) }
