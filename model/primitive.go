package model

import "strings"

// Primitive classifies a DataType by its name. The zero value is NotPrimitive.
type Primitive uint8

const (
	NotPrimitive Primitive = iota
	PrimitiveBoolean
	PrimitiveByte
	PrimitiveChar
	PrimitiveShort
	PrimitiveInt
	PrimitiveLong
	PrimitiveFloat
	PrimitiveDouble
	PrimitiveNumber
	PrimitiveString
	PrimitiveObject
)

var primitiveNames = map[string]Primitive{
	"boolean": PrimitiveBoolean,
	"byte":    PrimitiveByte,
	"char":    PrimitiveChar,
	"short":   PrimitiveShort,
	"int":     PrimitiveInt,
	"long":    PrimitiveLong,
	"float":   PrimitiveFloat,
	"double":  PrimitiveDouble,
	"number":  PrimitiveNumber,
	"string":  PrimitiveString,
	"object":  PrimitiveObject,
}

// ClassifyPrimitive maps a type name to its Primitive tag, ignoring case.
func ClassifyPrimitive(name string) Primitive {
	return primitiveNames[strings.ToLower(name)]
}

// Builtin reports whether the type is a built-in scalar that generators never emit.
// object is not builtin: a DataType named object is still declared.
func (p Primitive) Builtin() bool {
	return p != NotPrimitive && p != PrimitiveObject
}

// Aliasable reports whether a union member of this kind gets alias accessors.
// byte, char and short are builtin but have no alias.
func (p Primitive) Aliasable() bool {
	switch p {
	case PrimitiveBoolean,
		PrimitiveInt, PrimitiveLong, PrimitiveFloat, PrimitiveDouble,
		PrimitiveNumber, PrimitiveString, PrimitiveObject:
		return true
	}
	return false
}

// Numeric reports whether the primitive belongs to the numeric family.
func (p Primitive) Numeric() bool {
	switch p {
	case PrimitiveByte, PrimitiveShort, PrimitiveInt, PrimitiveLong,
		PrimitiveFloat, PrimitiveDouble, PrimitiveNumber:
		return true
	}
	return false
}

func (p Primitive) String() string {
	for name, prim := range primitiveNames {
		if prim == p {
			return name
		}
	}
	return "none"
}

// PrimitiveOf returns the tag of a type: the DataType's tag, NotPrimitive for anything else.
func PrimitiveOf(t Type) Primitive {
	if dt, ok := t.(*DataType); ok {
		return dt.Primitive
	}
	return NotPrimitive
}
