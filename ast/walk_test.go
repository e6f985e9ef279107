package ast

import (
	"testing"

	"github.com/alecthomas/repr"
)

// lerpShader builds
//
//	float3 lerp3(float3 a, float3 b, float t) { return a + (b - a) * t; }
func lerpShader() (*Shader, *MethodDefinition) {
	f3 := NewVectorType(Float, 3)
	m := NewMethodDefinition(f3, "lerp3",
		NewParameter(f3, "a"),
		NewParameter(f3, "b"),
		NewParameter(Float, "t"),
	)
	diff := &ParenthesizedExpression{Content: NewBinaryExpression(BinaryMinus, NewVariableReference("b"), NewVariableReference("a"))}
	body := NewBinaryExpression(BinaryPlus,
		NewVariableReference("a"),
		NewBinaryExpression(BinaryMultiply, diff, NewVariableReference("t")),
	)
	m.Body.Statements = []Statement{&ReturnStatement{Value: body}}
	return &Shader{Declarations: []Node{m}}, m
}

func kinds(seq func(func(Node) bool)) []NodeKind {
	var out []NodeKind
	for n := range seq {
		out = append(out, n.Kind())
	}
	return out
}

func TestChildrens(t *testing.T) {
	b := NewBinaryExpression(BinaryPlus, NewVariableReference("x"), NewLiteralExpression(1))
	children := b.Childrens()
	if len(children) != 2 || children[0] != b.Left || children[1] != b.Right {
		t.Errorf("Expected [left, right], got %s", repr.String(Outline(b)))
	}

	m := NewMethodDeclaration(Float, "f", NewParameter(Float, "x"))
	m.Qualifiers = QualifierInline
	got := m.Childrens()
	want := []NodeKind{KindScalarType, KindIdentifier, KindParameter, KindQualifier}
	if len(got) != len(want) {
		t.Fatalf("Expected %d children, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].Kind() != want[i] {
			t.Errorf("Expected child %d to be %s, got %s", i, want[i], got[i].Kind())
		}
	}
}

func TestChildrensSkipsNil(t *testing.T) {
	var missing *VariableReferenceExpression
	ret := &ReturnStatement{Value: missing}
	if n := len(ret.Childrens()); n != 0 {
		t.Errorf("Expected no children for an empty return, got %d", n)
	}
	if got := ret.String(); got != "return;" {
		t.Errorf("Expected \"return;\", got %q", got)
	}
	ifs := &IfStatement{Condition: NewVariableReference("c"), Then: &EmptyStatement{}}
	if n := len(ifs.Childrens()); n != 2 {
		t.Errorf("Expected condition and then, got %d children", n)
	}
}

func TestDescendants(t *testing.T) {
	shader, m := lerpShader()

	var params int
	for n := range Descendants(shader) {
		if n == Node(shader) {
			t.Errorf("Expected the root to be excluded")
		}
		if p, ok := n.(*Parameter); ok {
			params++
			if p.DeclaringMethod != m {
				t.Errorf("Expected parameter %s to point back at lerp3", p.Name)
			}
		}
	}
	if params != 3 {
		t.Errorf("Expected 3 parameters, got %d", params)
	}

	first := kinds(Descendants(shader))
	second := kinds(Descendants(shader))
	if len(first) == 0 || len(first) != len(second) {
		t.Fatalf("Expected the sequence to be restartable, got %d then %d nodes", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Expected the same order on every run, node %d is %s then %s", i, first[i], second[i])
		}
	}

	if first[0] != KindMethodDefinition || first[1] != KindVectorType {
		t.Errorf("Expected pre-order to start with the method and its return type, got %v", first[:2])
	}
}

func TestDescendantsMatchesWalk(t *testing.T) {
	shader, _ := lerpShader()

	var walked []NodeKind
	Inspect(shader, func(n Node) bool {
		if n != nil {
			walked = append(walked, n.Kind())
		}
		return true
	})

	seq := kinds(DescendantsAndSelf(shader))
	if len(walked) != len(seq) {
		t.Fatalf("Expected %d nodes from Inspect, got %d", len(seq), len(walked))
	}
	for i := range seq {
		if walked[i] != seq[i] {
			t.Errorf("Node %d: expected %s, got %s", i, seq[i], walked[i])
		}
	}
}

func TestDescendantsStopsEarly(t *testing.T) {
	shader, _ := lerpShader()
	count := 0
	for range Descendants(shader) {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("Expected to stop after 3 nodes, got %d", count)
	}
}

func TestInspectPrune(t *testing.T) {
	shader, _ := lerpShader()
	var refs int
	Inspect(shader, func(n Node) bool {
		if _, ok := n.(*MethodDefinition); ok {
			return false
		}
		if _, ok := n.(*VariableReferenceExpression); ok {
			refs++
		}
		return true
	})
	if refs != 0 {
		t.Errorf("Expected the method body to be skipped, found %d references", refs)
	}
}

func TestFindAndOfKind(t *testing.T) {
	shader, _ := lerpShader()

	refs := OfKind[*VariableReferenceExpression](shader)
	if len(refs) != 4 {
		t.Errorf("Expected 4 variable references, got %d", len(refs))
	}
	exprs := OfKind[*BinaryExpression](shader)
	if len(exprs) != 3 {
		t.Errorf("Expected 3 binary expressions, got %d", len(exprs))
	}

	found := Find(shader, func(n Node) bool {
		b, ok := n.(*BinaryExpression)
		return ok && b.Operator == BinaryMultiply
	})
	if found == nil || found.String() != "(b - a) * t" {
		t.Errorf("Expected to find (b - a) * t, got %v", found)
	}
	if Find(shader, func(n Node) bool { return n.Kind() == KindSwitchStatement }) != nil {
		t.Errorf("Expected no switch statement")
	}
}
