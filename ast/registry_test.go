package ast

import (
	"testing"

	"github.com/pontaoski/shaderast/errors"
	"github.com/ztrue/tracerr"
)

func TestParseQualifier(t *testing.T) {
	q, err := ParseQualifier("groupshared")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if !q.Equals(QualifierGroupShared) {
		t.Errorf("Expected groupshared, got %q", q)
	}

	_, err = ParseQualifier("sometimes")
	invalid, ok := tracerr.Unwrap(err).(errors.InvalidArgument)
	if !ok {
		t.Fatalf("Expected InvalidArgument, got %v", err)
	}
	if invalid.Text != "sometimes" {
		t.Errorf("Expected the offending text in the error, got %q", invalid.Text)
	}
}

func TestParseQualifiers(t *testing.T) {
	r := NewRegistry()
	q, err := r.ParseQualifiers("static", "const")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if got := q.String(); got != "static const" {
		t.Errorf("Expected \"static const\", got %q", got)
	}
	if _, err := r.ParseQualifiers("in", "bogus", "out"); err == nil {
		t.Errorf("Expected an error for bogus")
	}
	none, err := r.ParseQualifiers()
	if err != nil || !none.IsNone() {
		t.Errorf("Expected no tokens to give none, got %q (%v)", none, err)
	}
}

func TestRegisterQualifier(t *testing.T) {
	r := NewRegistry()
	flat, err := r.RegisterQualifier("flat", true)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if !flat.IsPost() {
		t.Errorf("Expected flat to be a post qualifier")
	}
	q, err := r.ParseQualifiers("in", "flat")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if q.PreString() != "in" || q.PostString() != "flat" {
		t.Errorf("Expected in before and flat after, got %q and %q", q.PreString(), q.PostString())
	}
	if _, err := r.RegisterQualifier("two words", false); err == nil {
		t.Errorf("Expected an error for a key with a space")
	}
	if _, err := ParseQualifier("flat"); err == nil {
		t.Errorf("Expected the default registry not to know flat")
	}
	keys := r.QualifierKeys()
	if keys[len(keys)-1] != "flat" {
		t.Errorf("Expected flat to be registered last, got %v", keys)
	}
}

func TestLookupType(t *testing.T) {
	r := NewRegistry()
	cases := []struct {
		name string
		want Type
	}{
		{"float", Float},
		{"uint", UInt},
		{"float3", NewVectorType(Float, 3)},
		{"half2", NewVectorType(Half, 2)},
		{"int4x4", NewMatrixType(Int, 4, 4)},
		{"double2x3", NewMatrixType(Double, 2, 3)},
		{"Texture2D", Texture2D},
		{"texture2D", Texture2D},
		{"sampler", SamplerState},
	}
	for _, c := range cases {
		got, ok := r.LookupType(c.name)
		if !ok {
			t.Errorf("Expected %s to resolve", c.name)
			continue
		}
		if !got.Equals(c.want) {
			t.Errorf("Expected %s to resolve to %s, got %s", c.name, c.want, got)
		}
	}

	for _, name := range []string{"float5", "float0", "float4x5", "floaty", "Texture4D", "void2", ""} {
		if _, ok := r.LookupType(name); ok {
			t.Errorf("Expected %q not to resolve", name)
		}
	}

	_, err := r.ParseType("Texture4D")
	if _, ok := tracerr.Unwrap(err).(errors.InvalidArgument); !ok {
		t.Errorf("Expected InvalidArgument, got %v", err)
	}
}

func TestRegisterObjectType(t *testing.T) {
	r := NewRegistry()
	n := len(r.ObjectTypes())
	r.RegisterObjectType(NewObjectType("RWTexture2D", "rwtexture2D"))
	if len(r.ObjectTypes()) != n+1 {
		t.Errorf("Expected one more object type")
	}
	r.RegisterObjectType(NewObjectType("RWTexture2D", "image2D"))
	if len(r.ObjectTypes()) != n+1 {
		t.Errorf("Expected re-registration to replace")
	}
	if _, ok := r.LookupType("image2D"); !ok {
		t.Errorf("Expected the new alias to resolve")
	}
	if _, ok := r.LookupType("rwtexture2D"); ok {
		t.Errorf("Expected the replaced alias to be gone")
	}
	if _, ok := DefaultRegistry.LookupType("image2D"); ok {
		t.Errorf("Expected the default registry to be unaffected")
	}
}

func TestLookupTypeIsDetached(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"float", "Texture2D", "float3"} {
		typ, ok := r.LookupType(name)
		if !ok {
			t.Fatalf("Expected %s to resolve", name)
		}
		typ.TypeInference().TargetType = Int
		typ.Base().SetTag("file", "a.sdsl")

		again, _ := r.LookupType(name)
		if again == typ {
			t.Errorf("Expected a new node for each lookup of %s", name)
		}
		if ResolveType(again) != again || again.Base().HasTags() {
			t.Errorf("Expected a fresh lookup of %s to be untouched", name)
		}
	}

	for _, builtin := range []Type{Float, Int, Texture2D} {
		if ResolveType(builtin) != builtin || builtin.Base().HasTags() {
			t.Errorf("Expected builtin %s to be untouched", builtin)
		}
	}

	vec, _ := r.LookupType("float3")
	elem := vec.(*VectorType).ElementType()
	if elem == Type(Float) {
		t.Errorf("Expected float3 not to share the builtin float")
	}
	elem.TypeInference().TargetType = Int
	if ResolveType(Float) != Type(Float) {
		t.Errorf("Expected builtin float to be untouched")
	}
}
