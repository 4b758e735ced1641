package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (i *Ident) NodePos() Position    { return i.Pos }
func (i *Ident) NodeEndPos() Position { return i.EndPos }
func (*Ident) NodeType() NodeType     { return IDENT }

func (a *Annotation) NodePos() Position    { return a.Pos }
func (a *Annotation) NodeEndPos() Position { return a.EndPos }
func (*Annotation) NodeType() NodeType     { return ANNOTATION }

func (s *Struct) NodePos() Position    { return s.Pos }
func (s *Struct) NodeEndPos() Position { return s.EndPos }
func (*Struct) NodeType() NodeType     { return STRUCT }

func (sf *StructField) NodePos() Position    { return sf.Pos }
func (sf *StructField) NodeEndPos() Position { return sf.EndPos }
func (*StructField) NodeType() NodeType      { return STRUCT_FIELD }

func (e *Enum) NodePos() Position    { return e.Pos }
func (e *Enum) NodeEndPos() Position { return e.EndPos }
func (*Enum) NodeType() NodeType     { return ENUM }

func (f *Function) NodePos() Position    { return f.Pos }
func (f *Function) NodeEndPos() Position { return f.EndPos }
func (*Function) NodeType() NodeType     { return FUNCTION }

func (fp *FunctionParam) NodePos() Position    { return fp.Pos }
func (fp *FunctionParam) NodeEndPos() Position { return fp.EndPos }
func (*FunctionParam) NodeType() NodeType      { return FUNCTION_PARAM }

func (ta *TypeAlias) NodePos() Position    { return ta.Pos }
func (ta *TypeAlias) NodeEndPos() Position { return ta.EndPos }
func (*TypeAlias) NodeType() NodeType      { return TYPE_ALIAS }

func (s *Scope) NodePos() Position    { return s.Pos }
func (s *Scope) NodeEndPos() Position { return s.EndPos }
func (*Scope) NodeType() NodeType     { return SCOPE }

func (p *Principle) NodePos() Position    { return p.Pos }
func (p *Principle) NodeEndPos() Position { return p.EndPos }
func (*Principle) NodeType() NodeType     { return PRINCIPLE }

func (lt *LegalTest) NodePos() Position    { return lt.Pos }
func (lt *LegalTest) NodeEndPos() Position { return lt.EndPos }
func (*LegalTest) NodeType() NodeType      { return LEGAL_TEST }

func (r *Requirement) NodePos() Position    { return r.Pos }
func (r *Requirement) NodeEndPos() Position { return r.EndPos }
func (*Requirement) NodeType() NodeType     { return REQUIREMENT }

func (d *Declaration) NodePos() Position    { return d.Pos }
func (d *Declaration) NodeEndPos() Position { return d.EndPos }
func (*Declaration) NodeType() NodeType     { return DECLARATION }

func (tr *TypeRef) NodePos() Position    { return tr.Pos }
func (tr *TypeRef) NodeEndPos() Position { return tr.EndPos }
func (*TypeRef) NodeType() NodeType      { return TYPE_REF }

func (ut *UnionType) NodePos() Position    { return ut.Pos }
func (ut *UnionType) NodeEndPos() Position { return ut.EndPos }
func (*UnionType) NodeType() NodeType      { return UNION_TYPE }

func (st *StructType) NodePos() Position    { return st.Pos }
func (st *StructType) NodeEndPos() Position { return st.EndPos }
func (*StructType) NodeType() NodeType      { return STRUCT_TYPE }

func (sf *StructTypeField) NodePos() Position    { return sf.Pos }
func (sf *StructTypeField) NodeEndPos() Position { return sf.EndPos }
func (*StructTypeField) NodeType() NodeType      { return STRUCT_TYPE_FIELD }

func (lt *LiteralType) NodePos() Position    { return lt.Pos }
func (lt *LiteralType) NodeEndPos() Position { return lt.EndPos }
func (*LiteralType) NodeType() NodeType      { return LITERAL_TYPE }

func (ie *IdentExpr) NodePos() Position    { return ie.Pos }
func (ie *IdentExpr) NodeEndPos() Position { return ie.EndPos }
func (*IdentExpr) NodeType() NodeType      { return IDENT_EXPR }

func (le *LiteralExpr) NodePos() Position    { return le.Pos }
func (le *LiteralExpr) NodeEndPos() Position { return le.EndPos }
func (*LiteralExpr) NodeType() NodeType      { return LITERAL_EXPR }

func (be *BinaryExpr) NodePos() Position    { return be.Pos }
func (be *BinaryExpr) NodeEndPos() Position { return be.EndPos }
func (*BinaryExpr) NodeType() NodeType      { return BINARY_EXPR }

func (ue *UnaryExpr) NodePos() Position    { return ue.Pos }
func (ue *UnaryExpr) NodeEndPos() Position { return ue.EndPos }
func (*UnaryExpr) NodeType() NodeType      { return UNARY_EXPR }

func (ce *CallExpr) NodePos() Position    { return ce.Pos }
func (ce *CallExpr) NodeEndPos() Position { return ce.EndPos }
func (*CallExpr) NodeType() NodeType      { return CALL_EXPR }

func (fa *FieldAccessExpr) NodePos() Position    { return fa.Pos }
func (fa *FieldAccessExpr) NodeEndPos() Position { return fa.EndPos }
func (*FieldAccessExpr) NodeType() NodeType      { return FIELD_ACCESS_EXPR }

func (me *MatchExpr) NodePos() Position    { return me.Pos }
func (me *MatchExpr) NodeEndPos() Position { return me.EndPos }
func (*MatchExpr) NodeType() NodeType      { return MATCH_EXPR }

func (ma *MatchArm) NodePos() Position    { return ma.Pos }
func (ma *MatchArm) NodeEndPos() Position { return ma.EndPos }
func (*MatchArm) NodeType() NodeType      { return MATCH_ARM }

func (fe *ForallExpr) NodePos() Position    { return fe.Pos }
func (fe *ForallExpr) NodeEndPos() Position { return fe.EndPos }
func (*ForallExpr) NodeType() NodeType      { return FORALL_EXPR }

func (ee *ExistsExpr) NodePos() Position    { return ee.Pos }
func (ee *ExistsExpr) NodeEndPos() Position { return ee.EndPos }
func (*ExistsExpr) NodeType() NodeType      { return EXISTS_EXPR }

func (pe *ParenExpr) NodePos() Position    { return pe.Pos }
func (pe *ParenExpr) NodeEndPos() Position { return pe.EndPos }
func (*ParenExpr) NodeType() NodeType      { return PAREN_EXPR }

func (lp *LiteralPattern) NodePos() Position    { return lp.Pos }
func (lp *LiteralPattern) NodeEndPos() Position { return lp.EndPos }
func (*LiteralPattern) NodeType() NodeType      { return LITERAL_PATTERN }

func (ip *IdentPattern) NodePos() Position    { return ip.Pos }
func (ip *IdentPattern) NodeEndPos() Position { return ip.EndPos }
func (*IdentPattern) NodeType() NodeType      { return IDENT_PATTERN }

func (wp *WildcardPattern) NodePos() Position    { return wp.Pos }
func (wp *WildcardPattern) NodeEndPos() Position { return wp.EndPos }
func (*WildcardPattern) NodeType() NodeType      { return WILDCARD_PATTERN }
