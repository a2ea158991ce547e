// Package syntax holds the classification table: the mapping from cursor
// kind, type kind and token kind to the highlight group a token belongs to.
package syntax

// Label is the highlight group a token is assigned to. The values are the
// group names the editor side links to colors, so they are part of the
// plugin's public surface.
type Label string

// None means the token gets no highlight group.
const None Label = ""

// Fixed groups
const (
	Comment      Label = "Comment"
	Number       Label = "Number"
	Float        Label = "Float"
	Character    Label = "Character"
	Variable     Label = "Variable"
	Member       Label = "Member"
	EnumConstant Label = "EnumConstant"
	Function     Label = "Function"
)

// Fallback groups
const (
	Prepro             Label = "chromaticaPrepro"
	Ref                Label = "chromaticaRef"
	Decl               Label = "chromaticaDecl"
	DefaultSyntax      Label = "chromaticaDEFSYN"
	Keyword            Label = "chromaticaKeyword"
	Type               Label = "chromaticaType"
	TypeAliasStatement Label = "chromaticaTypeAliasStatement"
	MemberRefExprVar   Label = "chromaticaMemberRefExprVar"
	MemberRefExprCall  Label = "chromaticaMemberRefExprCall"
)

// Declarations
const (
	StructDecl                         Label = "chromaticaStructDecl"
	UnionDecl                          Label = "chromaticaUnionDecl"
	ClassDecl                          Label = "chromaticaClassDecl"
	EnumDecl                           Label = "chromaticaEnumDecl"
	FieldDecl                          Label = "chromaticaFieldDecl"
	EnumConstantDecl                   Label = "chromaticaEnumConstantDecl"
	FunctionDecl                       Label = "chromaticaFunctionDecl"
	VarDecl                            Label = "chromaticaVarDecl"
	ParmDecl                           Label = "chromaticaParmDecl"
	ObjCInterfaceDecl                  Label = "chromaticaObjCInterfaceDecl"
	ObjCCategoryDecl                   Label = "chromaticaObjCCategoryDecl"
	ObjCProtocolDecl                   Label = "chromaticaObjCProtocolDecl"
	ObjCPropertyDecl                   Label = "chromaticaObjCPropertyDecl"
	ObjCIvarDecl                       Label = "chromaticaObjCIvarDecl"
	ObjCInstanceMethodDecl             Label = "chromaticaObjCInstanceMethodDecl"
	ObjCClassMethodDecl                Label = "chromaticaObjCClassMethodDecl"
	ObjCImplementationDecl             Label = "chromaticaObjCImplementationDecl"
	ObjCCategoryImplDecl               Label = "chromaticaObjCCategoryImplDecl"
	TypedefDecl                        Label = "chromaticaTypedefDecl"
	Namespace                          Label = "chromaticaNamespace"
	LinkageSpec                        Label = "chromaticaLinkageSpec"
	ConversionFunction                 Label = "chromaticaConversionFunction"
	TemplateTypeParameter              Label = "chromaticaTemplateTypeParameter"
	TemplateNoneTypeParameter          Label = "chromaticaTemplateNoneTypeParameter"
	TemplateTemplateParameter          Label = "chromaticaTemplateTemplateParameter"
	ClassTemplatePartialSpecialization Label = "chromaticaClassTemplatePartialSpecialization"
	NamespaceAlias                     Label = "chromaticaNamespaceAlias"
	UsingDirective                     Label = "chromaticaUsingDirective"
	UsingDeclaration                   Label = "chromaticaUsingDeclaration"
	TypeAliasDecl                      Label = "chromaticaTypeAliasDecl"
	ObjCSynthesizeDecl                 Label = "chromaticaObjCSynthesizeDecl"
	ObjCDynamicDecl                    Label = "chromaticaObjCDynamicDecl"
	CXXAccessSpecifier                 Label = "chromaticaCXXAccessSpecifier"
)

// References
const (
	ObjCSuperClassRef Label = "chromaticaObjCSuperClassRef"
	ObjCProtocolRef   Label = "chromaticaObjCProtocolRef"
	ObjCClassRef      Label = "chromaticaObjCClassRef"
	TypeRef           Label = "chromaticaTypeRef"
	CXXBaseSpecifier  Label = "chromaticaCXXBaseSpecifier"
	TemplateRef       Label = "chromaticaTemplateRef"
	NamespaceRef      Label = "chromaticaNamespaceRef"
	DeclRefExprCall   Label = "chromaticaDeclRefExprCall"
	LabelRef          Label = "chromaticaLableRef"
	OverloadDeclRef   Label = "chromaticaOverloadDeclRef"
	VariableRef       Label = "chromaticaVariableRef"
)

// Expressions and statements
const (
	CallExpr           Label = "chromaticaCallExpr"
	ObjCMessageExpr    Label = "chromaticaObjCMessageExpr"
	BlockExpr          Label = "chromaticaBlockExpr"
	Cast               Label = "chromaticaCast"
	Boolean            Label = "chromaticaBoolean"
	Constant           Label = "chromaticaConstant"
	Statement          Label = "chromaticaStatement"
	Switch             Label = "chromaticaSwitch"
	If                 Label = "chromaticaIf"
	Loop               Label = "chromaticaLoop"
	ExceptionStatement Label = "chromaticaExceptionStatement"
	MSStatement        Label = "chromaticaMSStatement"
)

// Preprocessor
const (
	MacroDefinition    Label = "chromaticaMacroDefinition"
	MacroInstantiation Label = "chromaticaMacroInstantiation"
	InclusionDirective Label = "chromaticaInclusionDirective"
)
