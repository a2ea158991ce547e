package cindex

import "strconv"

// TypeKind is the kind of a Cursor's type, numbered like libclang's CXTypeKind.
type TypeKind int

const (
	TypeInvalid    TypeKind = 0
	TypeUnexposed  TypeKind = 1
	TypeVoid       TypeKind = 2
	TypeBool       TypeKind = 3
	TypeCharU      TypeKind = 4
	TypeUChar      TypeKind = 5
	TypeChar16     TypeKind = 6
	TypeChar32     TypeKind = 7
	TypeUShort     TypeKind = 8
	TypeUInt       TypeKind = 9
	TypeULong      TypeKind = 10
	TypeULongLong  TypeKind = 11
	TypeUInt128    TypeKind = 12
	TypeCharS      TypeKind = 13
	TypeSChar      TypeKind = 14
	TypeWChar      TypeKind = 15
	TypeShort      TypeKind = 16
	TypeInt        TypeKind = 17
	TypeLong       TypeKind = 18
	TypeLongLong   TypeKind = 19
	TypeInt128     TypeKind = 20
	TypeFloat      TypeKind = 21
	TypeDouble     TypeKind = 22
	TypeLongDouble TypeKind = 23
	TypeNullPtr    TypeKind = 24
	TypeOverload   TypeKind = 25
	TypeDependent  TypeKind = 26
	TypeObjCID     TypeKind = 27
	TypeObjCClass  TypeKind = 28
	TypeObjCSel    TypeKind = 29
	TypeFloat128   TypeKind = 30
	TypeHalf       TypeKind = 31
	TypeFloat16    TypeKind = 32

	TypeComplex             TypeKind = 100
	TypePointer             TypeKind = 101
	TypeBlockPointer        TypeKind = 102
	TypeLValueReference     TypeKind = 103
	TypeRValueReference     TypeKind = 104
	TypeRecord              TypeKind = 105
	TypeEnum                TypeKind = 106
	TypeTypedef             TypeKind = 107
	TypeObjCInterface       TypeKind = 108
	TypeObjCObjectPointer   TypeKind = 109
	TypeFunctionNoProto     TypeKind = 110
	TypeFunctionProto       TypeKind = 111
	TypeConstantArray       TypeKind = 112
	TypeVector              TypeKind = 113
	TypeIncompleteArray     TypeKind = 114
	TypeVariableArray       TypeKind = 115
	TypeDependentSizedArray TypeKind = 116
	TypeMemberPointer       TypeKind = 117
	TypeAuto                TypeKind = 118
	TypeElaborated          TypeKind = 119
)

var typeKindNames = map[TypeKind]string{
	TypeInvalid:             "Invalid",
	TypeUnexposed:           "Unexposed",
	TypeVoid:                "Void",
	TypeBool:                "Bool",
	TypeCharU:               "Char_U",
	TypeUChar:               "UChar",
	TypeChar16:              "Char16",
	TypeChar32:              "Char32",
	TypeUShort:              "UShort",
	TypeUInt:                "UInt",
	TypeULong:               "ULong",
	TypeULongLong:           "ULongLong",
	TypeUInt128:             "UInt128",
	TypeCharS:               "Char_S",
	TypeSChar:               "SChar",
	TypeWChar:               "WChar",
	TypeShort:               "Short",
	TypeInt:                 "Int",
	TypeLong:                "Long",
	TypeLongLong:            "LongLong",
	TypeInt128:              "Int128",
	TypeFloat:               "Float",
	TypeDouble:              "Double",
	TypeLongDouble:          "LongDouble",
	TypeNullPtr:             "NullPtr",
	TypeOverload:            "Overload",
	TypeDependent:           "Dependent",
	TypeObjCID:              "ObjCId",
	TypeObjCClass:           "ObjCClass",
	TypeObjCSel:             "ObjCSel",
	TypeFloat128:            "Float128",
	TypeHalf:                "Half",
	TypeFloat16:             "Float16",
	TypeComplex:             "Complex",
	TypePointer:             "Pointer",
	TypeBlockPointer:        "BlockPointer",
	TypeLValueReference:     "LValueReference",
	TypeRValueReference:     "RValueReference",
	TypeRecord:              "Record",
	TypeEnum:                "Enum",
	TypeTypedef:             "Typedef",
	TypeObjCInterface:       "ObjCInterface",
	TypeObjCObjectPointer:   "ObjCObjectPointer",
	TypeFunctionNoProto:     "FunctionNoProto",
	TypeFunctionProto:       "FunctionProto",
	TypeConstantArray:       "ConstantArray",
	TypeVector:              "Vector",
	TypeIncompleteArray:     "IncompleteArray",
	TypeVariableArray:       "VariableArray",
	TypeDependentSizedArray: "DependentSizedArray",
	TypeMemberPointer:       "MemberPointer",
	TypeAuto:                "Auto",
	TypeElaborated:          "Elaborated",
}

func (k TypeKind) String() string {
	if s, ok := typeKindNames[k]; ok {
		return s
	}
	return "TypeKind(" + strconv.Itoa(int(k)) + ")"
}

// TypeKinds returns every type kind this package names, in numeric order.
func TypeKinds() []TypeKind {
	out := make([]TypeKind, 0, len(typeKindNames))
	for k := TypeInvalid; k <= TypeElaborated; k++ {
		if _, ok := typeKindNames[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// Type is the type attached to a cursor.
type Type struct {
	Kind     TypeKind
	Spelling string
}
