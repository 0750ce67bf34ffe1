package ast

import (
	"bytes"
	"strconv"
	"strings"

	"pascals/lexer"
)

type Node interface {
	TokenLiteral() string
	String() string
	GetToken() lexer.Token
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

// Type is a type denotation in a declaration: a named type or a subrange
// array type.
type Type interface {
	Node
	typeNode()
}

// Program is the root node: header name, declaration part, main block.
type Program struct {
	Token        lexer.Token // the `program` keyword
	Name         *Ident
	Declarations []Statement
	Body         *CompoundStmt
}

func (p *Program) TokenLiteral() string  { return p.Token.Lexeme }
func (p *Program) GetToken() lexer.Token { return p.Token }
func (p *Program) String() string {
	var out bytes.Buffer
	out.WriteString("program ")
	if p.Name != nil {
		out.WriteString(p.Name.String())
	}
	out.WriteString("; ")
	for _, decl := range p.Declarations {
		out.WriteString(decl.String())
		out.WriteString(" ")
	}
	if p.Body != nil {
		out.WriteString(p.Body.String())
	}
	out.WriteString(".")
	return out.String()
}

// VarDecl is one identifier-list group of a var section.
type VarDecl struct {
	Token lexer.Token // the `var` keyword of the section
	Names []*Ident
	Type  Type
}

func (vd *VarDecl) statementNode()        {}
func (vd *VarDecl) TokenLiteral() string  { return vd.Token.Lexeme }
func (vd *VarDecl) GetToken() lexer.Token { return vd.Token }
func (vd *VarDecl) String() string {
	var out bytes.Buffer
	out.WriteString("var ")
	for idx, name := range vd.Names {
		out.WriteString(name.String())
		if idx < len(vd.Names)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(": ")
	if vd.Type != nil {
		out.WriteString(vd.Type.String())
	}
	out.WriteString(";")
	return out.String()
}

// ConstDecl is one name = value pair of a const section.
type ConstDecl struct {
	Token lexer.Token // the `const` keyword of the section
	Name  *Ident
	Value Expression
}

func (cd *ConstDecl) statementNode()        {}
func (cd *ConstDecl) TokenLiteral() string  { return cd.Token.Lexeme }
func (cd *ConstDecl) GetToken() lexer.Token { return cd.Token }
func (cd *ConstDecl) String() string {
	var out bytes.Buffer
	out.WriteString("const ")
	out.WriteString(cd.Name.String())
	out.WriteString(" = ")
	if cd.Value != nil {
		out.WriteString(cd.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// TypeDecl is one name = type pair of a type section.
type TypeDecl struct {
	Token lexer.Token // the `type` keyword of the section
	Name  *Ident
	Type  Type
}

func (td *TypeDecl) statementNode()        {}
func (td *TypeDecl) TokenLiteral() string  { return td.Token.Lexeme }
func (td *TypeDecl) GetToken() lexer.Token { return td.Token }
func (td *TypeDecl) String() string {
	var out bytes.Buffer
	out.WriteString("type ")
	out.WriteString(td.Name.String())
	out.WriteString(" = ")
	if td.Type != nil {
		out.WriteString(td.Type.String())
	}
	out.WriteString(";")
	return out.String()
}

// TypeName is a named type: one of the built-in type keywords or a
// user-declared type identifier.
type TypeName struct {
	Token lexer.Token
	Name  string // canonical name, e.g. "integer" for both spellings
}

func (tn *TypeName) typeNode()             {}
func (tn *TypeName) TokenLiteral() string  { return tn.Token.Lexeme }
func (tn *TypeName) GetToken() lexer.Token { return tn.Token }
func (tn *TypeName) String() string        { return tn.Name }

// ArrayType is a subrange array type: array[Low..High] of Elem. The bounds
// are kept as expressions; whether Low <= High holds is not this layer's
// business.
type ArrayType struct {
	Token lexer.Token // the `array` keyword
	Low   Expression
	High  Expression
	Elem  Type
}

func (at *ArrayType) typeNode()             {}
func (at *ArrayType) TokenLiteral() string  { return at.Token.Lexeme }
func (at *ArrayType) GetToken() lexer.Token { return at.Token }
func (at *ArrayType) String() string {
	var out bytes.Buffer
	out.WriteString("array[")
	if at.Low != nil {
		out.WriteString(at.Low.String())
	}
	out.WriteString("..")
	if at.High != nil {
		out.WriteString(at.High.String())
	}
	out.WriteString("] of ")
	if at.Elem != nil {
		out.WriteString(at.Elem.String())
	}
	return out.String()
}

// ParamGroup is one identifier-list group of a formal parameter list.
// ByRef marks groups declared with the `var` keyword.
type ParamGroup struct {
	Token lexer.Token
	Names []*Ident
	Type  Type
	ByRef bool
}

func (pg *ParamGroup) TokenLiteral() string  { return pg.Token.Lexeme }
func (pg *ParamGroup) GetToken() lexer.Token { return pg.Token }
func (pg *ParamGroup) String() string {
	var out bytes.Buffer
	if pg.ByRef {
		out.WriteString("var ")
	}
	for idx, name := range pg.Names {
		out.WriteString(name.String())
		if idx < len(pg.Names)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(": ")
	if pg.Type != nil {
		out.WriteString(pg.Type.String())
	}
	return out.String()
}

// ProcDecl is a procedure declaration with its own nested declaration part.
type ProcDecl struct {
	Token        lexer.Token // the `procedure` keyword
	Name         *Ident
	Params       []*ParamGroup
	Declarations []Statement
	Body         *CompoundStmt
}

func (pd *ProcDecl) statementNode()        {}
func (pd *ProcDecl) TokenLiteral() string  { return pd.Token.Lexeme }
func (pd *ProcDecl) GetToken() lexer.Token { return pd.Token }
func (pd *ProcDecl) String() string {
	var out bytes.Buffer
	out.WriteString("procedure ")
	out.WriteString(pd.Name.String())
	writeParams(&out, pd.Params)
	out.WriteString("; ")
	for _, decl := range pd.Declarations {
		out.WriteString(decl.String())
		out.WriteString(" ")
	}
	if pd.Body != nil {
		out.WriteString(pd.Body.String())
	}
	out.WriteString(";")
	return out.String()
}

// FuncDecl is a function declaration: a procedure with a return type.
type FuncDecl struct {
	Token        lexer.Token // the `function` keyword
	Name         *Ident
	Params       []*ParamGroup
	Return       Type
	Declarations []Statement
	Body         *CompoundStmt
}

func (fd *FuncDecl) statementNode()        {}
func (fd *FuncDecl) TokenLiteral() string  { return fd.Token.Lexeme }
func (fd *FuncDecl) GetToken() lexer.Token { return fd.Token }
func (fd *FuncDecl) String() string {
	var out bytes.Buffer
	out.WriteString("function ")
	out.WriteString(fd.Name.String())
	writeParams(&out, fd.Params)
	out.WriteString(": ")
	if fd.Return != nil {
		out.WriteString(fd.Return.String())
	}
	out.WriteString("; ")
	for _, decl := range fd.Declarations {
		out.WriteString(decl.String())
		out.WriteString(" ")
	}
	if fd.Body != nil {
		out.WriteString(fd.Body.String())
	}
	out.WriteString(";")
	return out.String()
}

func writeParams(out *bytes.Buffer, params []*ParamGroup) {
	if len(params) == 0 {
		return
	}
	out.WriteString("(")
	for idx, group := range params {
		out.WriteString(group.String())
		if idx < len(params)-1 {
			out.WriteString("; ")
		}
	}
	out.WriteString(")")
}

// CompoundStmt is a begin/end block.
type CompoundStmt struct {
	Token      lexer.Token // the `begin` keyword
	Statements []Statement
}

func (cs *CompoundStmt) statementNode()        {}
func (cs *CompoundStmt) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *CompoundStmt) GetToken() lexer.Token { return cs.Token }
func (cs *CompoundStmt) String() string {
	var out bytes.Buffer
	out.WriteString("begin ")
	for idx, stmt := range cs.Statements {
		out.WriteString(stmt.String())
		if idx < len(cs.Statements)-1 {
			out.WriteString("; ")
		}
	}
	out.WriteString(" end")
	return out.String()
}

// AssignStmt is target := value.
type AssignStmt struct {
	Token  lexer.Token // the `:=` operator
	Target *Ident
	Value  Expression
}

func (as *AssignStmt) statementNode()        {}
func (as *AssignStmt) TokenLiteral() string  { return as.Token.Lexeme }
func (as *AssignStmt) GetToken() lexer.Token { return as.Token }
func (as *AssignStmt) String() string {
	var out bytes.Buffer
	out.WriteString(as.Target.String())
	out.WriteString(" := ")
	if as.Value != nil {
		out.WriteString(as.Value.String())
	}
	return out.String()
}

type IfStmt struct {
	Token     lexer.Token // the `if` keyword
	Condition Expression
	Then      Statement
	Else      Statement // nil when there is no else branch
}

func (is *IfStmt) statementNode()        {}
func (is *IfStmt) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStmt) GetToken() lexer.Token { return is.Token }
func (is *IfStmt) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	if is.Condition != nil {
		out.WriteString(is.Condition.String())
	}
	out.WriteString(" then ")
	if is.Then != nil {
		out.WriteString(is.Then.String())
	}
	if is.Else != nil {
		out.WriteString(" else ")
		out.WriteString(is.Else.String())
	}
	return out.String()
}

type WhileStmt struct {
	Token     lexer.Token // the `while` keyword
	Condition Expression
	Body      Statement
}

func (ws *WhileStmt) statementNode()        {}
func (ws *WhileStmt) TokenLiteral() string  { return ws.Token.Lexeme }
func (ws *WhileStmt) GetToken() lexer.Token { return ws.Token }
func (ws *WhileStmt) String() string {
	var out bytes.Buffer
	out.WriteString("while ")
	if ws.Condition != nil {
		out.WriteString(ws.Condition.String())
	}
	out.WriteString(" do ")
	if ws.Body != nil {
		out.WriteString(ws.Body.String())
	}
	return out.String()
}

// ForStmt is for Var := Start to/downto End do Body.
type ForStmt struct {
	Token lexer.Token // the `for` keyword
	Var   *Ident
	Start Expression
	End   Expression
	Down  bool
	Body  Statement
}

func (fs *ForStmt) statementNode()        {}
func (fs *ForStmt) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *ForStmt) GetToken() lexer.Token { return fs.Token }
func (fs *ForStmt) String() string {
	var out bytes.Buffer
	out.WriteString("for ")
	out.WriteString(fs.Var.String())
	out.WriteString(" := ")
	if fs.Start != nil {
		out.WriteString(fs.Start.String())
	}
	if fs.Down {
		out.WriteString(" downto ")
	} else {
		out.WriteString(" to ")
	}
	if fs.End != nil {
		out.WriteString(fs.End.String())
	}
	out.WriteString(" do ")
	if fs.Body != nil {
		out.WriteString(fs.Body.String())
	}
	return out.String()
}

// CallStmt is a procedure call in statement position, writeln and friends
// included.
type CallStmt struct {
	Token lexer.Token // the procedure name
	Name  *Ident
	Args  []Expression
}

func (cs *CallStmt) statementNode()        {}
func (cs *CallStmt) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *CallStmt) GetToken() lexer.Token { return cs.Token }
func (cs *CallStmt) String() string {
	var out bytes.Buffer
	out.WriteString(cs.Name.String())
	if cs.Args != nil {
		out.WriteString("(")
		args := make([]string, 0, len(cs.Args))
		for _, arg := range cs.Args {
			args = append(args, arg.String())
		}
		out.WriteString(strings.Join(args, ", "))
		out.WriteString(")")
	}
	return out.String()
}

// EmptyStmt is the empty statement between two adjacent separators.
type EmptyStmt struct {
	Token lexer.Token
}

func (es *EmptyStmt) statementNode()        {}
func (es *EmptyStmt) TokenLiteral() string  { return es.Token.Lexeme }
func (es *EmptyStmt) GetToken() lexer.Token { return es.Token }
func (es *EmptyStmt) String() string        { return "" }

type Ident struct {
	Token lexer.Token
	Value string
}

func (id *Ident) expressionNode()       {}
func (id *Ident) TokenLiteral() string  { return id.Token.Lexeme }
func (id *Ident) GetToken() lexer.Token { return id.Token }
func (id *Ident) String() string        { return id.Value }

type IntLit struct {
	Token lexer.Token
	Value int64
}

func (il *IntLit) expressionNode()       {}
func (il *IntLit) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntLit) GetToken() lexer.Token { return il.Token }
func (il *IntLit) String() string        { return strconv.FormatInt(il.Value, 10) }

type RealLit struct {
	Token lexer.Token
	Value float64
}

func (rl *RealLit) expressionNode()       {}
func (rl *RealLit) TokenLiteral() string  { return rl.Token.Lexeme }
func (rl *RealLit) GetToken() lexer.Token { return rl.Token }
func (rl *RealLit) String() string        { return rl.Token.Lexeme }

type StringLit struct {
	Token lexer.Token
	Value string
}

func (sl *StringLit) expressionNode()       {}
func (sl *StringLit) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLit) GetToken() lexer.Token { return sl.Token }
func (sl *StringLit) String() string        { return "'" + sl.Value + "'" }

type CharLit struct {
	Token lexer.Token
	Value rune
}

func (cl *CharLit) expressionNode()       {}
func (cl *CharLit) TokenLiteral() string  { return cl.Token.Lexeme }
func (cl *CharLit) GetToken() lexer.Token { return cl.Token }
func (cl *CharLit) String() string        { return "'" + string(cl.Value) + "'" }

// BinaryExpr is Left op Right; Operator is the canonical tag (`div` for
// `bagi`, `and` for `dan`, ...).
type BinaryExpr struct {
	Token    lexer.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (be *BinaryExpr) expressionNode()       {}
func (be *BinaryExpr) TokenLiteral() string  { return be.Token.Lexeme }
func (be *BinaryExpr) GetToken() lexer.Token { return be.Token }
func (be *BinaryExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	if be.Left != nil {
		out.WriteString(be.Left.String())
	}
	out.WriteString(" " + be.Operator + " ")
	if be.Right != nil {
		out.WriteString(be.Right.String())
	}
	out.WriteString(")")
	return out.String()
}

type UnaryExpr struct {
	Token    lexer.Token // the operator token
	Operator string
	Right    Expression
}

func (ue *UnaryExpr) expressionNode()       {}
func (ue *UnaryExpr) TokenLiteral() string  { return ue.Token.Lexeme }
func (ue *UnaryExpr) GetToken() lexer.Token { return ue.Token }
func (ue *UnaryExpr) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ue.Operator)
	if ue.Operator == "not" {
		out.WriteString(" ")
	}
	if ue.Right != nil {
		out.WriteString(ue.Right.String())
	}
	out.WriteString(")")
	return out.String()
}

// CallExpr is a function call in expression position.
type CallExpr struct {
	Token    lexer.Token // the function name
	Function *Ident
	Args     []Expression
}

func (ce *CallExpr) expressionNode()       {}
func (ce *CallExpr) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpr) GetToken() lexer.Token { return ce.Token }
func (ce *CallExpr) String() string {
	var out bytes.Buffer
	out.WriteString(ce.Function.String())
	out.WriteString("(")
	args := make([]string, 0, len(ce.Args))
	for _, arg := range ce.Args {
		args = append(args, arg.String())
	}
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}
