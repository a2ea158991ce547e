package cindex

import "strconv"

var cursorKindNames = map[CursorKind]string{
	UnexposedDecl:                      "UnexposedDecl",
	StructDecl:                         "StructDecl",
	UnionDecl:                          "UnionDecl",
	ClassDecl:                          "ClassDecl",
	EnumDecl:                           "EnumDecl",
	FieldDecl:                          "FieldDecl",
	EnumConstantDecl:                   "EnumConstantDecl",
	FunctionDecl:                       "FunctionDecl",
	VarDecl:                            "VarDecl",
	ParmDecl:                           "ParmDecl",
	ObjCInterfaceDecl:                  "ObjCInterfaceDecl",
	ObjCCategoryDecl:                   "ObjCCategoryDecl",
	ObjCProtocolDecl:                   "ObjCProtocolDecl",
	ObjCPropertyDecl:                   "ObjCPropertyDecl",
	ObjCIvarDecl:                       "ObjCIvarDecl",
	ObjCInstanceMethodDecl:             "ObjCInstanceMethodDecl",
	ObjCClassMethodDecl:                "ObjCClassMethodDecl",
	ObjCImplementationDecl:             "ObjCImplementationDecl",
	ObjCCategoryImplDecl:               "ObjCCategoryImplDecl",
	TypedefDecl:                        "TypedefDecl",
	CXXMethod:                          "CXXMethod",
	Namespace:                          "Namespace",
	LinkageSpec:                        "LinkageSpec",
	Constructor:                        "Constructor",
	Destructor:                         "Destructor",
	ConversionFunction:                 "ConversionFunction",
	TemplateTypeParameter:              "TemplateTypeParameter",
	NonTypeTemplateParameter:           "NonTypeTemplateParameter",
	TemplateTemplateParameter:          "TemplateTemplateParameter",
	FunctionTemplate:                   "FunctionTemplate",
	ClassTemplate:                      "ClassTemplate",
	ClassTemplatePartialSpecialization: "ClassTemplatePartialSpecialization",
	NamespaceAlias:                     "NamespaceAlias",
	UsingDirective:                     "UsingDirective",
	UsingDeclaration:                   "UsingDeclaration",
	TypeAliasDecl:                      "TypeAliasDecl",
	ObjCSynthesizeDecl:                 "ObjCSynthesizeDecl",
	ObjCDynamicDecl:                    "ObjCDynamicDecl",
	CXXAccessSpecifier:                 "CXXAccessSpecifier",
	ObjCSuperClassRef:                  "ObjCSuperClassRef",
	ObjCProtocolRef:                    "ObjCProtocolRef",
	ObjCClassRef:                       "ObjCClassRef",
	TypeRef:                            "TypeRef",
	CXXBaseSpecifier:                   "CXXBaseSpecifier",
	TemplateRef:                        "TemplateRef",
	NamespaceRef:                       "NamespaceRef",
	MemberRef:                          "MemberRef",
	LabelRef:                           "LabelRef",
	OverloadedDeclRef:                  "OverloadedDeclRef",
	VariableRef:                        "VariableRef",
	InvalidFile:                        "InvalidFile",
	NoDeclFound:                        "NoDeclFound",
	NotImplemented:                     "NotImplemented",
	InvalidCode:                        "InvalidCode",
	UnexposedExpr:                      "UnexposedExpr",
	DeclRefExpr:                        "DeclRefExpr",
	MemberRefExpr:                      "MemberRefExpr",
	CallExpr:                           "CallExpr",
	ObjCMessageExpr:                    "ObjCMessageExpr",
	BlockExpr:                          "BlockExpr",
	IntegerLiteral:                     "IntegerLiteral",
	FloatingLiteral:                    "FloatingLiteral",
	ImaginaryLiteral:                   "ImaginaryLiteral",
	StringLiteral:                      "StringLiteral",
	CharacterLiteral:                   "CharacterLiteral",
	ParenExpr:                          "ParenExpr",
	UnaryOperator:                      "UnaryOperator",
	ArraySubscriptExpr:                 "ArraySubscriptExpr",
	BinaryOperator:                     "BinaryOperator",
	CompoundAssignOperator:             "CompoundAssignOperator",
	ConditionalOperator:                "ConditionalOperator",
	CStyleCastExpr:                     "CStyleCastExpr",
	CompoundLiteralExpr:                "CompoundLiteralExpr",
	InitListExpr:                       "InitListExpr",
	AddrLabelExpr:                      "AddrLabelExpr",
	StmtExpr:                           "StmtExpr",
	GenericSelectionExpr:               "GenericSelectionExpr",
	GNUNullExpr:                        "GNUNullExpr",
	CXXStaticCastExpr:                  "CXXStaticCastExpr",
	CXXDynamicCastExpr:                 "CXXDynamicCastExpr",
	CXXReinterpretCastExpr:             "CXXReinterpretCastExpr",
	CXXConstCastExpr:                   "CXXConstCastExpr",
	CXXFunctionalCastExpr:              "CXXFunctionalCastExpr",
	CXXTypeidExpr:                      "CXXTypeidExpr",
	CXXBoolLiteralExpr:                 "CXXBoolLiteralExpr",
	CXXNullPtrLiteralExpr:              "CXXNullPtrLiteralExpr",
	CXXThisExpr:                        "CXXThisExpr",
	CXXThrowExpr:                       "CXXThrowExpr",
	CXXNewExpr:                         "CXXNewExpr",
	CXXDeleteExpr:                      "CXXDeleteExpr",
	UnaryExpr:                          "UnaryExpr",
	ObjCStringLiteral:                  "ObjCStringLiteral",
	ObjCEncodeExpr:                     "ObjCEncodeExpr",
	ObjCSelectorExpr:                   "ObjCSelectorExpr",
	ObjCProtocolExpr:                   "ObjCProtocolExpr",
	ObjCBridgedCastExpr:                "ObjCBridgedCastExpr",
	PackExpansionExpr:                  "PackExpansionExpr",
	SizeOfPackExpr:                     "SizeOfPackExpr",
	LambdaExpr:                         "LambdaExpr",
	ObjCBoolLiteralExpr:                "ObjCBoolLiteralExpr",
	ObjCSelfExpr:                       "ObjCSelfExpr",
	OMPArraySectionExpr:                "OMPArraySectionExpr",
	UnexposedStmt:                      "UnexposedStmt",
	LabelStmt:                          "LabelStmt",
	CompoundStmt:                       "CompoundStmt",
	CaseStmt:                           "CaseStmt",
	DefaultStmt:                        "DefaultStmt",
	IfStmt:                             "IfStmt",
	SwitchStmt:                         "SwitchStmt",
	WhileStmt:                          "WhileStmt",
	DoStmt:                             "DoStmt",
	ForStmt:                            "ForStmt",
	GotoStmt:                           "GotoStmt",
	IndirectGotoStmt:                   "IndirectGotoStmt",
	ContinueStmt:                       "ContinueStmt",
	BreakStmt:                          "BreakStmt",
	ReturnStmt:                         "ReturnStmt",
	AsmStmt:                            "AsmStmt",
	ObjCAtTryStmt:                      "ObjCAtTryStmt",
	ObjCAtCatchStmt:                    "ObjCAtCatchStmt",
	ObjCAtFinallyStmt:                  "ObjCAtFinallyStmt",
	ObjCAtThrowStmt:                    "ObjCAtThrowStmt",
	ObjCAtSynchronizedStmt:             "ObjCAtSynchronizedStmt",
	ObjCAutoreleasePoolStmt:            "ObjCAutoreleasePoolStmt",
	ObjCForCollectionStmt:              "ObjCForCollectionStmt",
	CXXCatchStmt:                       "CXXCatchStmt",
	CXXTryStmt:                         "CXXTryStmt",
	CXXForRangeStmt:                    "CXXForRangeStmt",
	SEHTryStmt:                         "SEHTryStmt",
	SEHExceptStmt:                      "SEHExceptStmt",
	SEHFinallyStmt:                     "SEHFinallyStmt",
	MSAsmStmt:                          "MSAsmStmt",
	NullStmt:                           "NullStmt",
	DeclStmt:                           "DeclStmt",
	UnexposedAttr:                      "UnexposedAttr",
	IBActionAttr:                       "IBActionAttr",
	IBOutletAttr:                       "IBOutletAttr",
	IBOutletCollectionAttr:             "IBOutletCollectionAttr",
	CXXFinalAttr:                       "CXXFinalAttr",
	CXXOverrideAttr:                    "CXXOverrideAttr",
	AnnotateAttr:                       "AnnotateAttr",
	AsmLabelAttr:                       "AsmLabelAttr",
	PackedAttr:                         "PackedAttr",
	PureAttr:                           "PureAttr",
	ConstAttr:                          "ConstAttr",
	NoDuplicateAttr:                    "NoDuplicateAttr",
	CUDAConstantAttr:                   "CUDAConstantAttr",
	CUDADeviceAttr:                     "CUDADeviceAttr",
	CUDAGlobalAttr:                     "CUDAGlobalAttr",
	CUDAHostAttr:                       "CUDAHostAttr",
	CUDASharedAttr:                     "CUDASharedAttr",
	VisibilityAttr:                     "VisibilityAttr",
	DLLExport:                          "DLLExport",
	DLLImport:                          "DLLImport",
	PreprocessingDirective:             "PreprocessingDirective",
	MacroDefinition:                    "MacroDefinition",
	MacroInstantiation:                 "MacroInstantiation",
	InclusionDirective:                 "InclusionDirective",
	ModuleImportDecl:                   "ModuleImportDecl",
	TypeAliasTemplateDecl:              "TypeAliasTemplateDecl",
	StaticAssert:                       "StaticAssert",
	FriendDecl:                         "FriendDecl",
	TranslationUnit:                    "TranslationUnit",
	OverloadCandidate:                  "OverloadCandidate",
}

func (k CursorKind) String() string {
	if s, ok := cursorKindNames[k]; ok {
		return s
	}
	return "CursorKind(" + strconv.Itoa(int(k)) + ")"
}
