package ast

import (
	"testing"

	"github.com/pontaoski/shaderast/source"
)

func TestRender(t *testing.T) {
	x := NewVariableReference("x")
	i := NewVariableReference("i")
	one := NewLiteralExpression(1)

	cases := []struct {
		node Node
		want string
	}{
		{NewLiteralExpression(2.5), "2.5"},
		{NewLiteralExpression(true), "true"},
		{NewLiteralExpression("main"), `"main"`},
		{&LiteralExpression{Literal: &Literal{Value: 1.0, Text: "1.0f"}}, "1.0f"},
		{&UnaryExpression{Operator: UnaryMinus, Expression: x}, "-x"},
		{&UnaryExpression{Operator: UnaryPostIncrement, Expression: i}, "i++"},
		{&AssignmentExpression{Operator: AssignmentAddition, Target: x, Value: one}, "x += 1"},
		{&ConditionalExpression{Condition: x, Left: one, Right: NewLiteralExpression(0)}, "x ? 1 : 0"},
		{&IndexerExpression{Target: x, Index: i}, "x[i]"},
		{&MemberReferenceExpression{Target: x, Member: NewIdentifier("xyz")}, "x.xyz"},
		{NewMethodInvocation(NewVariableReference("dot"), x, x), "dot(x, x)"},
		{&CastExpression{Target: Int, From: x}, "(int)x"},
		{&ArrayInitializerExpression{Items: []Expression{one, one}}, "{ 1, 1 }"},
		{&TypeReferenceExpression{Type: NewVectorType(Float, 2)}, "vector<float,2>"},
		{&KeywordExpression{Name: NewIdentifier("discard")}, "discard"},

		{&EmptyStatement{}, ";"},
		{NewBlockStatement(), "{}"},
		{&WhileStatement{Condition: x, Statement: NewBlockStatement()}, "while (x) {}"},
		{&WhileStatement{Condition: x, Statement: NewBlockStatement(), IsDoWhile: true}, "do {} while (x);"},
		{&IfStatement{Condition: x, Then: &ReturnStatement{Value: one}, Else: &ReturnStatement{}}, "if (x) return 1; else return;"},
		{&ForStatement{
			Start:     &DeclarationStatement{Content: &Variable{Type: Int, Name: NewIdentifier("i"), InitialValue: NewLiteralExpression(0)}},
			Condition: NewBinaryExpression(BinaryLess, i, NewLiteralExpression(4)),
			Next:      &UnaryExpression{Operator: UnaryPostIncrement, Expression: i},
			Body:      NewBlockStatement(),
		}, "for (int i = 0; i < 4; i++) {}"},
		{&SwitchStatement{
			Condition: x,
			Groups: []*SwitchCaseGroup{
				{Cases: []*CaseStatement{{Case: one}, {}}, Statements: &StatementList{Statements: []Statement{NewExpressionStatement(&KeywordExpression{Name: NewIdentifier("break")})}}},
			},
		}, "switch (x) { case 1: default: break; }"},
		{&ExpressionStatement{
			StatementBase: StatementBase{Attributes: []*AttributeDeclaration{{Name: NewIdentifier("unroll")}}},
			Expression:    x,
		}, "[unroll] x;"},
	}

	for _, c := range cases {
		if got := c.node.String(); got != c.want {
			t.Errorf("Expected %s to render as %q, got %q", c.node.Kind(), c.want, got)
		}
	}
}

func TestAttributeDeclaration(t *testing.T) {
	a := &AttributeDeclaration{
		Name:       NewIdentifier("numthreads"),
		Parameters: []*Literal{NewLiteral(8), NewLiteral(8), NewLiteral(1)},
	}
	if got := a.String(); got != "[numthreads(8, 8, 1)]" {
		t.Errorf("Unexpected rendering %q", got)
	}
	if n := len(a.Childrens()); n != 4 {
		t.Errorf("Expected name and 3 literals, got %d children", n)
	}
}

func TestLiteral(t *testing.T) {
	if v, ok := NewLiteral(uint8(7)).Int(); !ok || v != 7 {
		t.Errorf("Expected small integers to widen, got %d", v)
	}
	if _, ok := NewLiteral(1.5).Int(); ok {
		t.Errorf("Expected a float literal not to be an int")
	}
	if !NewLiteral(float32(0.5)).ValueEquals(NewLiteral(0.5)) {
		t.Errorf("Expected float32 and float64 literals to compare by value")
	}
	var none *Literal
	if none.ValueEquals(NewLiteral(0)) || !none.ValueEquals(nil) {
		t.Errorf("Unexpected nil literal comparison")
	}
}

func TestMetaTags(t *testing.T) {
	id := NewIdentifier("x")
	if id.HasTags() {
		t.Errorf("Expected no tags on a new node")
	}
	if _, ok := id.Tag("k"); ok {
		t.Errorf("Expected a missing tag")
	}
	id.SetTag("k", 1)
	if v, ok := id.Tag("k"); !ok || v != 1 {
		t.Errorf("Expected tag k to be 1, got %v", v)
	}
	if !id.RemoveTag("k") || id.RemoveTag("k") || id.HasTags() {
		t.Errorf("Unexpected tag removal result")
	}
}

func TestOutline(t *testing.T) {
	b := NewBinaryExpression(BinaryPlus, NewVariableReference("a"), NewLiteralExpression(1))
	b.Span = source.NewSpan("shader.sdsl", 2, 3, 10, 5)

	o := Outline(b)
	if o.Kind != "BinaryExpression" || o.Text != "a + 1" || o.Span != "shader.sdsl:2:3-2:8" {
		t.Errorf("Unexpected outline %+v", o)
	}
	if len(o.Children) != 2 || o.Children[0].Kind != "VariableReferenceExpression" || len(o.Children[0].Children) != 1 {
		t.Errorf("Unexpected children %+v", o.Children)
	}
	if b.Pos().Length() != 5 {
		t.Errorf("Expected span length 5, got %d", b.Pos().Length())
	}
}
