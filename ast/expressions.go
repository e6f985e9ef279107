package ast

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"
)

// Literal is a constant value: int64, float64, bool or string. Other
// integer and float widths are widened by NewLiteral.
type Literal struct {
	Meta
	Value interface{}
	// Text is the spelling from the source, if any.
	Text string
}

// NewLiteral widens sized integers to int64 and float32 to float64. Values
// of any other type are stored as given.
func NewLiteral(value interface{}) *Literal {
	switch v := value.(type) {
	case int:
		value = int64(v)
	case int8:
		value = int64(v)
	case int16:
		value = int64(v)
	case int32:
		value = int64(v)
	case uint:
		value = int64(v)
	case uint8:
		value = int64(v)
	case uint16:
		value = int64(v)
	case uint32:
		value = int64(v)
	case uint64:
		value = int64(v)
	case float32:
		value = float64(v)
	}
	return &Literal{Value: value}
}

func (l *Literal) Kind() NodeKind    { return KindLiteral }
func (l *Literal) Childrens() []Node { return nil }

func (l *Literal) String() string {
	if l.Text != "" {
		return l.Text
	}
	switch v := l.Value.(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case string:
		return strconv.Quote(v)
	}
	return fmt.Sprint(l.Value)
}

func (l *Literal) Int() (int, bool) {
	v, ok := l.Value.(int64)
	return int(v), ok
}

func (l *Literal) ValueEquals(other *Literal) bool {
	if l == nil || other == nil {
		return l == nil && other == nil
	}
	if !isComparable(l.Value) || !isComparable(other.Value) {
		return reflect.DeepEqual(l.Value, other.Value)
	}
	return l.Value == other.Value
}

func isComparable(v interface{}) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

func (l *Literal) valueHash() uint64 {
	if l == nil {
		return 0
	}
	v := l.Value
	if f, ok := v.(float64); ok && f == 0 {
		// -0 == 0
		v = 0.0
	}
	return xxh3.HashString(fmt.Sprintf("%T:%v", v, v))
}

// Expression is implemented by every expression node.
type Expression interface {
	Typed
	exprNode()
}

// ExpressionBase is embedded by every expression.
type ExpressionBase struct {
	Meta
	Inference TypeInference
}

func (e *ExpressionBase) TypeInference() *TypeInference { return &e.Inference }
func (e *ExpressionBase) exprNode()                     {}

type LiteralExpression struct {
	ExpressionBase
	Literal *Literal
}

func NewLiteralExpression(value interface{}) *LiteralExpression {
	return &LiteralExpression{Literal: NewLiteral(value)}
}

func (e *LiteralExpression) Kind() NodeKind    { return KindLiteralExpression }
func (e *LiteralExpression) Childrens() []Node { return appendNodes(nil, e.Literal) }
func (e *LiteralExpression) String() string    { return nodeText(e.Literal) }

type VariableReferenceExpression struct {
	ExpressionBase
	Name *Identifier
}

func NewVariableReference(name string) *VariableReferenceExpression {
	return &VariableReferenceExpression{Name: NewIdentifier(name)}
}

func (e *VariableReferenceExpression) Kind() NodeKind    { return KindVariableReferenceExpression }
func (e *VariableReferenceExpression) Childrens() []Node { return appendNodes(nil, e.Name) }
func (e *VariableReferenceExpression) String() string    { return e.Name.String() }

// TypeReferenceExpression is a type used in expression position, as in a
// constructor call float3(0, 0, 0).
type TypeReferenceExpression struct {
	ExpressionBase
	Type Type
}

func (e *TypeReferenceExpression) Kind() NodeKind    { return KindTypeReferenceExpression }
func (e *TypeReferenceExpression) Childrens() []Node { return appendNodes(nil, e.Type) }
func (e *TypeReferenceExpression) String() string    { return typeText(e.Type) }

type MemberReferenceExpression struct {
	ExpressionBase
	Target Expression
	Member *Identifier
}

func (e *MemberReferenceExpression) Kind() NodeKind    { return KindMemberReferenceExpression }
func (e *MemberReferenceExpression) Childrens() []Node { return appendNodes(nil, e.Target, e.Member) }
func (e *MemberReferenceExpression) String() string {
	return nodeText(e.Target) + "." + e.Member.String()
}

type IndexerExpression struct {
	ExpressionBase
	Target Expression
	Index  Expression
}

func (e *IndexerExpression) Kind() NodeKind    { return KindIndexerExpression }
func (e *IndexerExpression) Childrens() []Node { return appendNodes(nil, e.Target, e.Index) }
func (e *IndexerExpression) String() string {
	return nodeText(e.Target) + "[" + nodeText(e.Index) + "]"
}

type MethodInvocationExpression struct {
	ExpressionBase
	Target    Expression
	Arguments []Expression
}

func NewMethodInvocation(target Expression, arguments ...Expression) *MethodInvocationExpression {
	return &MethodInvocationExpression{Target: target, Arguments: arguments}
}

func (e *MethodInvocationExpression) Kind() NodeKind { return KindMethodInvocationExpression }

func (e *MethodInvocationExpression) Childrens() []Node {
	nodes := appendNodes(nil, e.Target)
	for _, a := range e.Arguments {
		nodes = appendNodes(nodes, a)
	}
	return nodes
}

func (e *MethodInvocationExpression) String() string {
	return nodeText(e.Target) + "(" + expressionsText(e.Arguments) + ")"
}

// MethodName returns the invoked name for plain and member calls, or nil
// when the target is anything else.
func (e *MethodInvocationExpression) MethodName() *Identifier {
	switch t := e.Target.(type) {
	case *MemberReferenceExpression:
		return t.Member
	case *VariableReferenceExpression:
		return t.Name
	}
	return nil
}

type BinaryExpression struct {
	ExpressionBase
	Operator BinaryOperator
	Left     Expression
	Right    Expression
}

func NewBinaryExpression(op BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{Operator: op, Left: left, Right: right}
}

func (e *BinaryExpression) Kind() NodeKind    { return KindBinaryExpression }
func (e *BinaryExpression) Childrens() []Node { return appendNodes(nil, e.Left, e.Right) }
func (e *BinaryExpression) String() string {
	return nodeText(e.Left) + " " + e.Operator.String() + " " + nodeText(e.Right)
}

type UnaryExpression struct {
	ExpressionBase
	Operator   UnaryOperator
	Expression Expression
}

func (e *UnaryExpression) Kind() NodeKind    { return KindUnaryExpression }
func (e *UnaryExpression) Childrens() []Node { return appendNodes(nil, e.Expression) }
func (e *UnaryExpression) String() string {
	if e.Operator.IsPostfix() {
		return nodeText(e.Expression) + e.Operator.String()
	}
	return e.Operator.String() + nodeText(e.Expression)
}

type AssignmentExpression struct {
	ExpressionBase
	Operator AssignmentOperator
	Target   Expression
	Value    Expression
}

func (e *AssignmentExpression) Kind() NodeKind    { return KindAssignmentExpression }
func (e *AssignmentExpression) Childrens() []Node { return appendNodes(nil, e.Target, e.Value) }
func (e *AssignmentExpression) String() string {
	return nodeText(e.Target) + " " + e.Operator.String() + " " + nodeText(e.Value)
}

// ConditionalExpression is condition ? left : right.
type ConditionalExpression struct {
	ExpressionBase
	Condition Expression
	Left      Expression
	Right     Expression
}

func (e *ConditionalExpression) Kind() NodeKind { return KindConditionalExpression }
func (e *ConditionalExpression) Childrens() []Node {
	return appendNodes(nil, e.Condition, e.Left, e.Right)
}
func (e *ConditionalExpression) String() string {
	return nodeText(e.Condition) + " ? " + nodeText(e.Left) + " : " + nodeText(e.Right)
}

type ParenthesizedExpression struct {
	ExpressionBase
	Content Expression
}

func (e *ParenthesizedExpression) Kind() NodeKind    { return KindParenthesizedExpression }
func (e *ParenthesizedExpression) Childrens() []Node { return appendNodes(nil, e.Content) }
func (e *ParenthesizedExpression) String() string    { return "(" + nodeText(e.Content) + ")" }

type CastExpression struct {
	ExpressionBase
	Target Type
	From   Expression
}

func (e *CastExpression) Kind() NodeKind    { return KindCastExpression }
func (e *CastExpression) Childrens() []Node { return appendNodes(nil, e.Target, e.From) }
func (e *CastExpression) String() string {
	return "(" + typeText(e.Target) + ")" + nodeText(e.From)
}

type ArrayInitializerExpression struct {
	ExpressionBase
	Items []Expression
}

func (e *ArrayInitializerExpression) Kind() NodeKind { return KindArrayInitializerExpression }
func (e *ArrayInitializerExpression) Childrens() []Node {
	var nodes []Node
	for _, it := range e.Items {
		nodes = appendNodes(nodes, it)
	}
	return nodes
}
func (e *ArrayInitializerExpression) String() string {
	return "{ " + expressionsText(e.Items) + " }"
}

// ExpressionList is a comma expression.
type ExpressionList struct {
	ExpressionBase
	Expressions []Expression
}

func (e *ExpressionList) Kind() NodeKind { return KindExpressionList }
func (e *ExpressionList) Childrens() []Node {
	var nodes []Node
	for _, it := range e.Expressions {
		nodes = appendNodes(nodes, it)
	}
	return nodes
}
func (e *ExpressionList) String() string { return expressionsText(e.Expressions) }

// KeywordExpression is a bare keyword: break, continue, discard.
type KeywordExpression struct {
	ExpressionBase
	Name *Identifier
}

func (e *KeywordExpression) Kind() NodeKind    { return KindKeywordExpression }
func (e *KeywordExpression) Childrens() []Node { return appendNodes(nil, e.Name) }
func (e *KeywordExpression) String() string    { return e.Name.String() }

// EmptyExpression stands for a missing expression, such as the size in
// float[] or an omitted for-loop clause.
type EmptyExpression struct {
	ExpressionBase
}

func (e *EmptyExpression) Kind() NodeKind    { return KindEmptyExpression }
func (e *EmptyExpression) Childrens() []Node { return nil }
func (e *EmptyExpression) String() string    { return "" }

func nodeText(n Node) string {
	if isNil(n) {
		return ""
	}
	return n.String()
}

func expressionsText(exprs []Expression) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, nodeText(e))
	}
	return strings.Join(parts, ", ")
}
