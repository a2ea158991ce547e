package syntax

import (
	"github.com/unnamed42/chromatica.nvim/pkg/cindex"
)

// EntryKind says how a table entry is to be read.
type EntryKind int

const (
	// Missing kinds have no entry and go through the fallback policy.
	Missing EntryKind = iota
	// Suppressed kinds are present in the AST but never labeled directly.
	Suppressed
	// Direct kinds map to a single label.
	Direct
	// Nested kinds are labeled by the type kind of the cursor.
	Nested
)

// TypeTable is a second-level lookup keyed by type kind.
type TypeTable func(cindex.TypeKind) (Label, bool)

// Entry is the table's answer for one cursor kind.
type Entry struct {
	Kind   EntryKind
	Label  Label
	ByType TypeTable
}

func direct(l Label) Entry { return Entry{Kind: Direct, Label: l} }

var suppressed = Entry{Kind: Suppressed}

// Lookup returns the entry for a cursor kind.
//
// The switch lists every kind of cindex.CursorKinds; kinds added by a
// front-end upgrade land in the default arm and must be sorted into one of
// the cases (TestLookupCoversEveryKind fails until they are).
func Lookup(k cindex.CursorKind) Entry {
	switch k {
	// declarations
	case cindex.StructDecl:
		return direct(StructDecl)
	case cindex.UnionDecl:
		return direct(UnionDecl)
	case cindex.ClassDecl, cindex.ClassTemplate:
		return direct(ClassDecl)
	case cindex.EnumDecl:
		return direct(EnumDecl)
	case cindex.FieldDecl:
		return direct(FieldDecl)
	case cindex.EnumConstantDecl:
		return direct(EnumConstantDecl)
	case cindex.FunctionDecl, cindex.CXXMethod, cindex.Constructor, cindex.Destructor, cindex.FunctionTemplate:
		return direct(FunctionDecl)
	case cindex.VarDecl:
		return direct(VarDecl)
	case cindex.ParmDecl:
		return direct(ParmDecl)
	case cindex.ObjCInterfaceDecl:
		return direct(ObjCInterfaceDecl)
	case cindex.ObjCCategoryDecl:
		return direct(ObjCCategoryDecl)
	case cindex.ObjCProtocolDecl:
		return direct(ObjCProtocolDecl)
	case cindex.ObjCPropertyDecl:
		return direct(ObjCPropertyDecl)
	case cindex.ObjCIvarDecl:
		return direct(ObjCIvarDecl)
	case cindex.ObjCInstanceMethodDecl:
		return direct(ObjCInstanceMethodDecl)
	case cindex.ObjCClassMethodDecl:
		return direct(ObjCClassMethodDecl)
	case cindex.ObjCImplementationDecl:
		return direct(ObjCImplementationDecl)
	case cindex.ObjCCategoryImplDecl:
		return direct(ObjCCategoryImplDecl)
	case cindex.TypedefDecl:
		return direct(TypedefDecl)
	case cindex.Namespace:
		return direct(Namespace)
	case cindex.LinkageSpec:
		return direct(LinkageSpec)
	case cindex.ConversionFunction:
		return direct(ConversionFunction)
	case cindex.TemplateTypeParameter:
		return direct(TemplateTypeParameter)
	case cindex.NonTypeTemplateParameter:
		return direct(TemplateNoneTypeParameter)
	case cindex.TemplateTemplateParameter:
		return direct(TemplateTemplateParameter)
	case cindex.ClassTemplatePartialSpecialization:
		return direct(ClassTemplatePartialSpecialization)
	case cindex.NamespaceAlias:
		return direct(NamespaceAlias)
	case cindex.UsingDirective:
		return direct(UsingDirective)
	case cindex.UsingDeclaration:
		return direct(UsingDeclaration)
	case cindex.TypeAliasDecl:
		return direct(TypeAliasDecl)
	case cindex.ObjCSynthesizeDecl:
		return direct(ObjCSynthesizeDecl)
	case cindex.ObjCDynamicDecl:
		return direct(ObjCDynamicDecl)
	case cindex.CXXAccessSpecifier:
		return direct(CXXAccessSpecifier)
	case cindex.UnexposedDecl:
		return suppressed
	case cindex.ModuleImportDecl, cindex.TypeAliasTemplateDecl, cindex.StaticAssert, cindex.FriendDecl:
		return Entry{}

	// references
	case cindex.ObjCSuperClassRef:
		return direct(ObjCSuperClassRef)
	case cindex.ObjCProtocolRef:
		return direct(ObjCProtocolRef)
	case cindex.ObjCClassRef:
		return direct(ObjCClassRef)
	case cindex.TypeRef:
		return direct(TypeRef)
	case cindex.CXXBaseSpecifier:
		return direct(CXXBaseSpecifier)
	case cindex.TemplateRef:
		return direct(TemplateRef)
	case cindex.NamespaceRef:
		return direct(NamespaceRef)
	case cindex.MemberRef:
		// designated initializers
		return direct(DeclRefExprCall)
	case cindex.LabelRef:
		return direct(LabelRef)
	case cindex.OverloadedDeclRef:
		return direct(OverloadDeclRef)
	case cindex.VariableRef:
		return direct(VariableRef)

	case cindex.InvalidFile, cindex.NoDeclFound, cindex.NotImplemented, cindex.InvalidCode:
		return suppressed

	// expressions
	case cindex.DeclRefExpr:
		return Entry{Kind: Nested, ByType: DeclRefTypes}
	case cindex.MemberRefExpr:
		return Entry{Kind: Nested, ByType: MemberRefTypes}
	case cindex.CallExpr:
		return direct(CallExpr)
	case cindex.ObjCMessageExpr:
		return direct(ObjCMessageExpr)
	case cindex.BlockExpr:
		return direct(BlockExpr)
	case cindex.CXXStaticCastExpr, cindex.CXXDynamicCastExpr, cindex.CXXReinterpretCastExpr,
		cindex.CXXConstCastExpr, cindex.CXXFunctionalCastExpr:
		return direct(Cast)
	case cindex.CXXBoolLiteralExpr:
		return direct(Boolean)
	case cindex.CXXNullPtrLiteralExpr:
		return direct(Constant)
	case cindex.CXXThisExpr, cindex.CXXThrowExpr, cindex.CXXNewExpr, cindex.CXXDeleteExpr, cindex.UnaryExpr:
		return direct(Statement)
	case cindex.UnexposedExpr, cindex.ParenExpr, cindex.UnaryOperator, cindex.ArraySubscriptExpr,
		cindex.BinaryOperator, cindex.CompoundAssignOperator, cindex.ConditionalOperator,
		cindex.CStyleCastExpr, cindex.InitListExpr, cindex.AddrLabelExpr, cindex.StmtExpr,
		cindex.GenericSelectionExpr, cindex.GNUNullExpr, cindex.CXXTypeidExpr,
		cindex.ObjCEncodeExpr, cindex.ObjCSelectorExpr, cindex.ObjCProtocolExpr,
		cindex.ObjCBridgedCastExpr, cindex.PackExpansionExpr, cindex.SizeOfPackExpr,
		cindex.LambdaExpr, cindex.ObjCBoolLiteralExpr, cindex.ObjCSelfExpr, cindex.OMPArraySectionExpr:
		return suppressed
	case cindex.IntegerLiteral, cindex.FloatingLiteral, cindex.ImaginaryLiteral, cindex.StringLiteral,
		cindex.CharacterLiteral, cindex.ObjCStringLiteral, cindex.CompoundLiteralExpr:
		// literal tokens go through LiteralLabel
		return Entry{}

	// statements
	case cindex.LabelStmt, cindex.GotoStmt, cindex.IndirectGotoStmt, cindex.ContinueStmt,
		cindex.BreakStmt, cindex.ReturnStmt, cindex.AsmStmt:
		return direct(Statement)
	case cindex.CaseStmt, cindex.DefaultStmt, cindex.SwitchStmt:
		return direct(Switch)
	case cindex.IfStmt:
		return direct(If)
	case cindex.WhileStmt, cindex.DoStmt, cindex.ForStmt, cindex.CXXForRangeStmt:
		return direct(Loop)
	case cindex.CXXCatchStmt, cindex.CXXTryStmt:
		return direct(ExceptionStatement)
	case cindex.SEHTryStmt, cindex.SEHExceptStmt, cindex.SEHFinallyStmt, cindex.MSAsmStmt:
		return direct(MSStatement)
	case cindex.UnexposedStmt, cindex.CompoundStmt, cindex.NullStmt, cindex.DeclStmt,
		cindex.ObjCAtTryStmt, cindex.ObjCAtCatchStmt, cindex.ObjCAtFinallyStmt, cindex.ObjCAtThrowStmt,
		cindex.ObjCAtSynchronizedStmt, cindex.ObjCAutoreleasePoolStmt, cindex.ObjCForCollectionStmt:
		return suppressed

	case cindex.TranslationUnit, cindex.OverloadCandidate:
		return Entry{}

	// attributes
	case cindex.UnexposedAttr, cindex.IBActionAttr, cindex.IBOutletAttr, cindex.IBOutletCollectionAttr,
		cindex.CXXFinalAttr, cindex.CXXOverrideAttr, cindex.AnnotateAttr, cindex.AsmLabelAttr,
		cindex.PackedAttr, cindex.PureAttr, cindex.ConstAttr, cindex.NoDuplicateAttr,
		cindex.CUDAConstantAttr, cindex.CUDADeviceAttr, cindex.CUDAGlobalAttr, cindex.CUDAHostAttr,
		cindex.CUDASharedAttr, cindex.VisibilityAttr, cindex.DLLExport, cindex.DLLImport:
		return suppressed

	// preprocessor
	case cindex.PreprocessingDirective:
		return suppressed
	case cindex.MacroDefinition:
		return direct(MacroDefinition)
	case cindex.MacroInstantiation:
		return direct(MacroInstantiation)
	case cindex.InclusionDirective:
		return direct(InclusionDirective)
	}

	return Entry{}
}

// DeclRefTypes labels a declaration reference by what it denotes.
func DeclRefTypes(t cindex.TypeKind) (Label, bool) {
	switch t {
	case cindex.TypeUnexposed, cindex.TypeVoid, cindex.TypeBool,
		cindex.TypeCharU, cindex.TypeUChar, cindex.TypeChar16, cindex.TypeChar32,
		cindex.TypeUShort, cindex.TypeUInt, cindex.TypeULong, cindex.TypeULongLong, cindex.TypeUInt128,
		cindex.TypeCharS, cindex.TypeSChar, cindex.TypeWChar,
		cindex.TypeShort, cindex.TypeInt, cindex.TypeLong, cindex.TypeLongLong, cindex.TypeInt128,
		cindex.TypeFloat, cindex.TypeDouble, cindex.TypeLongDouble,
		cindex.TypeNullPtr, cindex.TypeOverload, cindex.TypeDependent,
		cindex.TypeObjCID, cindex.TypeObjCClass, cindex.TypeObjCSel,
		cindex.TypeComplex, cindex.TypePointer, cindex.TypeBlockPointer,
		cindex.TypeLValueReference, cindex.TypeRValueReference,
		cindex.TypeRecord, cindex.TypeTypedef, cindex.TypeObjCInterface, cindex.TypeObjCObjectPointer,
		cindex.TypeConstantArray, cindex.TypeVector, cindex.TypeIncompleteArray,
		cindex.TypeVariableArray, cindex.TypeDependentSizedArray, cindex.TypeAuto:
		return Variable, true
	case cindex.TypeMemberPointer:
		return Member, true
	case cindex.TypeEnum:
		return EnumConstant, true
	case cindex.TypeFunctionNoProto, cindex.TypeFunctionProto:
		return Function, true
	}
	return None, false
}

// MemberRefTypes labels a member reference. A bound member function has an
// unexposed type, so that is the member call case.
func MemberRefTypes(t cindex.TypeKind) (Label, bool) {
	if t == cindex.TypeUnexposed {
		return MemberRefExprCall, true
	}
	return None, false
}

// LiteralLabel labels literal tokens by the cursor they belong to. String
// literals are left to the editor's own syntax.
func LiteralLabel(k cindex.CursorKind) Label {
	switch k {
	case cindex.IntegerLiteral, cindex.ImaginaryLiteral:
		return Number
	case cindex.FloatingLiteral:
		return Float
	case cindex.CharacterLiteral:
		return Character
	case cindex.StringLiteral, cindex.ObjCStringLiteral:
		return None
	}
	return None
}
