package ast

import (
	"math"
	"testing"

	"github.com/pontaoski/shaderast/errors"
	"github.com/ztrue/tracerr"
)

func TestTypeEquality(t *testing.T) {
	cases := []struct {
		name  string
		a, b  Type
		equal bool
	}{
		{"same vector", NewVectorType(Float, 3), NewVectorType(Float, 3), true},
		{"vector dimension", NewVectorType(Float, 3), NewVectorType(Float, 4), false},
		{"vector element", NewVectorType(Float, 3), NewVectorType(Int, 3), false},
		{"matrix", NewMatrixType(Float, 4, 4), NewMatrixType(Float, 4, 4), true},
		{"matrix shape", NewMatrixType(Float, 4, 3), NewMatrixType(Float, 3, 4), false},
		{"vector vs matrix", NewVectorType(Float, 4), NewMatrixType(Float, 4, 1), false},
		{"fresh scalar", NewScalarType("float", ScalarFloat), Float, true},
		{"scalars", Float, Int, false},
		{"struct by name", NewStructType("S", NewVariable(Float, "a")), NewStructType("S"), true},
		{"struct names", NewStructType("S"), NewStructType("T"), false},
		{"object alias", NewObjectType("Texture2D", "Texture2DArray"), NewObjectType("Texture2DArray"), true},
		{"object alias reversed", NewObjectType("Texture2DArray"), NewObjectType("Texture2D", "Texture2DArray"), true},
		{"object names", Texture2D, Texture3D, false},
		{"array", NewArrayType(Float, NewLiteralExpression(4)), NewArrayType(Float, NewLiteralExpression(4)), true},
		{"array size", NewArrayType(Float, NewLiteralExpression(4)), NewArrayType(Float, NewLiteralExpression(5)), false},
		{"array rank", NewArrayType(Float, NewLiteralExpression(4)), NewArrayType(Float, NewLiteralExpression(4), NewLiteralExpression(4)), false},
		{"generic", NewGenericType("StructuredBuffer", NewVectorType(Float, 4)), NewGenericType("StructuredBuffer", NewVectorType(Float, 4)), true},
		{"generic parameter", NewGenericType("StructuredBuffer", Float), NewGenericType("StructuredBuffer", Int), false},
		{"kinds", NewTypeName("float"), Float, false},
		{"generic parameter types", NewGenericParameterType("T"), NewGenericParameterType("T"), true},
	}

	for _, c := range cases {
		if got := c.a.Equals(c.b); got != c.equal {
			t.Errorf("%s: expected %s == %s to be %v, got %v", c.name, c.a, c.b, c.equal, got)
		}
		if c.equal && c.a.Hash() != c.b.Hash() {
			t.Errorf("%s: expected equal types to hash equally", c.name)
		}
	}
}

func TestTypeReflexive(t *testing.T) {
	types := []Type{
		Float, NewVectorType(Half, 2), NewMatrixType(Double, 2, 2),
		NewArrayType(Int, &EmptyExpression{}), NewStructType("S"), SamplerState,
		NewGenericParameterType("T"), NewTypeName("X"),
	}
	for _, typ := range types {
		if !typ.Equals(typ) {
			t.Errorf("Expected %s to equal itself", typ)
		}
		if typ.Equals(nil) {
			t.Errorf("Expected %s not to equal nil", typ)
		}
		var none *ScalarType
		if typ.Equals(none) {
			t.Errorf("Expected %s not to equal a nil scalar", typ)
		}
	}
}

func TestToNonGenericType(t *testing.T) {
	v := NewVectorType(Float, 3)
	flat := v.ToNonGenericType()
	if flat.NameText() != "float3" {
		t.Errorf("Expected float3, got %s", flat.NameText())
	}
	if flat.Inference.TargetType != v {
		t.Errorf("Expected the flat name to resolve to the vector")
	}
	if !ResolveType(flat).Equals(NewVectorType(Float, 3)) {
		t.Errorf("Expected the resolved flat name to equal vector<float,3>")
	}

	m := NewMatrixType(Float, 4, 4)
	if got := m.ToNonGenericType().NameText(); got != "float4x4" {
		t.Errorf("Expected float4x4, got %s", got)
	}
	if got := m.String(); got != "matrix<float,4,4>" {
		t.Errorf("Expected matrix<float,4,4>, got %s", got)
	}
}

func TestResolveType(t *testing.T) {
	name := NewTypeName("float")
	if ResolveType(name) != name {
		t.Errorf("Expected an unresolved type to resolve to itself")
	}
	name.Inference.TargetType = Float
	if ResolveType(name) != Float {
		t.Errorf("Expected the resolved type to be float")
	}
	if ResolveType(nil) != nil {
		t.Errorf("Expected nil to resolve to nil")
	}
	name.Inference.Reset()
	if name.Inference.IsResolved() {
		t.Errorf("Expected Reset to clear the slot")
	}
}

func TestAxis(t *testing.T) {
	v := NewVectorType(Float, 3)
	if axis, err := v.Axis(2); err != nil || axis != "z" {
		t.Errorf("Expected z, got %q (%v)", axis, err)
	}
	_, err := v.Axis(3)
	oor, ok := tracerr.Unwrap(err).(errors.OutOfRange)
	if !ok {
		t.Fatalf("Expected OutOfRange, got %v", err)
	}
	if oor.Index != 3 || oor.Limit != 3 {
		t.Errorf("Expected index 3 limit 3, got %d and %d", oor.Index, oor.Limit)
	}

	m := NewMatrixType(Float, 2, 3)
	if axis, err := m.Axis(1, 2); err != nil || axis != "_m12" {
		t.Errorf("Expected _m12, got %q (%v)", axis, err)
	}
	if _, err := m.Axis(2, 0); err == nil {
		t.Errorf("Expected an error for row 2")
	}
	if _, err := m.Axis(0, -1); err == nil {
		t.Errorf("Expected an error for column -1")
	}
}

func TestValidateParameters(t *testing.T) {
	if err := NewVectorType(Float, 4).ValidateParameters(); err != nil {
		t.Errorf("Unexpected error: %s", err)
	}

	bad := NewVectorType(Float, 4)
	bad.Parameters[1] = Int
	_, ok := tracerr.Unwrap(bad.ValidateParameters()).(errors.InvalidArgument)
	if !ok {
		t.Errorf("Expected InvalidArgument for a type in a literal slot")
	}

	short := NewMatrixType(Float, 4, 4)
	short.Parameters = short.Parameters[:2]
	_, ok = tracerr.Unwrap(short.ValidateParameters()).(errors.OutOfRange)
	if !ok {
		t.Errorf("Expected OutOfRange for a missing parameter")
	}

	if _, err := short.Parameter(2); err == nil {
		t.Errorf("Expected an error for parameter 2")
	}
}

func TestArrayType(t *testing.T) {
	unsized := NewArrayType(Float, &EmptyExpression{})
	if !unsized.IsDimensionEmpty() {
		t.Errorf("Expected float[] to have an empty dimension")
	}
	if got := unsized.String(); got != "float[]" {
		t.Errorf("Expected float[], got %s", got)
	}
	sized := NewArrayType(NewVectorType(Float, 2), NewLiteralExpression(4), NewLiteralExpression(2))
	if sized.IsDimensionEmpty() {
		t.Errorf("Expected a sized array not to have an empty dimension")
	}
	if got := sized.String(); got != "vector<float,2>[4][2]" {
		t.Errorf("Expected vector<float,2>[4][2], got %s", got)
	}
}

func TestHashOrder(t *testing.T) {
	a := NewGenericType("Pair", Float, Int)
	b := NewGenericType("Pair", Int, Float)
	if a.Equals(b) {
		t.Errorf("Expected parameter order to matter")
	}
	if a.Hash() == b.Hash() {
		t.Errorf("Expected parameter order to change the hash")
	}
}

func TestStructField(t *testing.T) {
	s := NewStructType("Light", NewVariable(NewVectorType(Float, 3), "Color"), NewVariable(Float, "Range"))
	if s.Field("Range") == nil {
		t.Errorf("Expected field Range")
	}
	if s.Field("Missing") != nil {
		t.Errorf("Expected no field Missing")
	}
	if got := s.String(); got != "struct Light { vector<float,3> Color; float Range; }" {
		t.Errorf("Unexpected rendering %q", got)
	}
}

// paddedVector and taggedArray stand in for types a client package builds on
// top of the node types.
type paddedVector struct {
	VectorType
}

type taggedArray struct {
	ArrayType
}

func TestEmbeddedTypesAreDistinct(t *testing.T) {
	vec := NewVectorType(Float, 3)
	padded := &paddedVector{VectorType: *NewVectorType(Float, 3)}
	if padded.Kind() != vec.Kind() {
		t.Fatalf("Expected the embedded kind to be promoted")
	}
	if TypesEqual(vec, padded) || TypesEqual(padded, vec) || vec.Equals(padded) {
		t.Errorf("Expected %s not to equal an embedding type", vec)
	}
	if !TypesEqual(padded, padded) {
		t.Errorf("Expected an embedding type to equal itself")
	}

	arr := NewArrayType(Int, NewLiteralExpression(4))
	tagged := &taggedArray{ArrayType: *NewArrayType(Int, NewLiteralExpression(4))}
	if TypesEqual(arr, tagged) || TypesEqual(tagged, arr) {
		t.Errorf("Expected %s not to equal an embedding type", arr)
	}
}

func TestGenericLiteralParameters(t *testing.T) {
	pos := NewGenericType("G", NewLiteral(0.0))
	neg := NewGenericType("G", NewLiteral(math.Copysign(0, -1)))
	if !pos.Equals(neg) {
		t.Fatalf("Expected 0 and -0 parameters to compare equal")
	}
	if pos.Hash() != neg.Hash() {
		t.Errorf("Expected equal types to hash alike, got %x and %x", pos.Hash(), neg.Hash())
	}

	list := NewGenericType("G", NewLiteral([]int{1}))
	same := NewGenericType("G", NewLiteral([]int{1}))
	other := NewGenericType("G", NewLiteral([]int{2}))
	if !list.Equals(same) || list.Equals(other) || list.Equals(pos) {
		t.Errorf("Unexpected comparison of slice literal parameters")
	}
	if list.Hash() != same.Hash() {
		t.Errorf("Expected equal types to hash alike")
	}
	boxed := NewGenericType("G", NewLiteral(struct{ V interface{} }{[]int{1}}))
	if boxed.Equals(NewGenericType("G", NewLiteral(struct{ V interface{} }{[]int{2}}))) {
		t.Errorf("Expected different boxed values to differ")
	}
}

func TestObjectTypeAliasHash(t *testing.T) {
	a := NewObjectType("Texture2D", "texture2D")
	b := NewObjectType("texture2D")
	c := NewObjectType("Texture2D", "tex")
	if !a.Equals(b) || !a.Equals(c) || b.Equals(c) {
		t.Fatalf("Unexpected alias equality")
	}
	if a.Hash() != b.Hash() || a.Hash() != c.Hash() {
		t.Errorf("Expected alias-equal object types to hash alike")
	}
}
