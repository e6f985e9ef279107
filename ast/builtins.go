package ast

import (
	"fmt"
)

// Builtin scalar types. These are read-only templates shared by the whole
// process: never write their inference slot, span or tags. Types compare by name, so Registry.LookupType hands out a fresh
// ScalarType named "float" that is interchangeable with Float.
var (
	Void   = NewScalarType("void", ScalarVoid)
	Bool   = NewScalarType("bool", ScalarBool)
	Int    = NewScalarType("int", ScalarInt)
	UInt   = NewScalarType("uint", ScalarUInt)
	Half   = NewScalarType("half", ScalarHalf)
	Float  = NewScalarType("float", ScalarFloat)
	Double = NewScalarType("double", ScalarDouble)
	String = NewScalarType("string", ScalarString)
)

// Scalars lists the builtin scalar types.
var Scalars = []*ScalarType{Void, Bool, Int, UInt, Half, Float, Double, String}

// Builtin object types. Like the scalars they are templates; lookups copy
// them.
var (
	Texture1D        = NewObjectType("Texture1D", "texture1D")
	Texture1DArray   = NewObjectType("Texture1DArray")
	Texture2D        = NewObjectType("Texture2D", "texture2D", "Texture")
	Texture2DArray   = NewObjectType("Texture2DArray")
	Texture2DMS      = NewObjectType("Texture2DMS")
	Texture3D        = NewObjectType("Texture3D", "texture3D")
	TextureCube      = NewObjectType("TextureCube", "textureCUBE")
	TextureCubeArray = NewObjectType("TextureCubeArray")

	SamplerState           = NewObjectType("SamplerState", "sampler", "sampler_state")
	SamplerComparisonState = NewObjectType("SamplerComparisonState")

	ByteAddressBuffer   = NewObjectType("ByteAddressBuffer")
	RWByteAddressBuffer = NewObjectType("RWByteAddressBuffer")
)

// ObjectTypes lists the builtin object types.
var ObjectTypes = []*ObjectType{
	Texture1D, Texture1DArray,
	Texture2D, Texture2DArray, Texture2DMS,
	Texture3D, TextureCube, TextureCubeArray,
	SamplerState, SamplerComparisonState,
	ByteAddressBuffer, RWByteAddressBuffer,
}

// Vector and matrix shapes have flat spellings for every numeric scalar,
// from float1 to float4 and float1x1 to float4x4.
var numericScalars = []*ScalarType{Bool, Int, UInt, Half, Float, Double}

// flatTypeName parses names such as float3 or uint4x4 into their generic
// form.
func flatTypeName(name string) (Type, bool) {
	for _, s := range numericScalars {
		prefix := s.NameText()
		if len(name) <= len(prefix) || name[:len(prefix)] != prefix {
			continue
		}
		rest := name[len(prefix):]
		var rows, cols int
		if n, err := fmt.Sscanf(rest, "%1dx%1d", &rows, &cols); err == nil && n == 2 && len(rest) == 3 {
			if validDimension(rows) && validDimension(cols) {
				return NewMatrixType(s.clone(), rows, cols), true
			}
			return nil, false
		}
		if len(rest) == 1 && validDimension(int(rest[0]-'0')) {
			return NewVectorType(s.clone(), int(rest[0]-'0')), true
		}
	}
	return nil, false
}

func validDimension(n int) bool {
	return n >= 1 && n <= 4
}
