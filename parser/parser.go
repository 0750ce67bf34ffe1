package parser

import (
	"fmt"
	"strconv"

	"pascals/ast"
	"pascals/lexer"
)

// Parser consumes the token stream with one token of lookahead and builds a
// best-effort tree. Errors never abort the parse (except a missing program
// header, where nothing downstream makes sense): each one is recorded and
// the parser resynchronizes at the next statement or declaration boundary.
type Parser struct {
	tokens   []lexer.Token
	FilePath string
	Errors   []error
	pos      int

	curToken  lexer.Token
	peekToken lexer.Token // one token lookahead
}

// NewParser wraps a token stream, which must end with an EOF token the way
// Tokenize produces it.
func NewParser(tokens []lexer.Token, filePath string) *Parser {
	p := &Parser{
		tokens:   tokens,
		FilePath: filePath,
		Errors:   []error{},
	}

	// prime curToken and peekToken
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	if p.pos < len(p.tokens) {
		p.peekToken = p.tokens[p.pos]
		p.pos++
	}
}

func (p *Parser) report(kind string, expected string) {
	p.Errors = append(p.Errors, &SyntaxError{
		FilePath: p.FilePath,
		Kind:     kind,
		Expected: expected,
		Found:    p.curToken,
	})
}

// sync skips tokens until a point where parsing can restart: a statement
// separator (consumed), the program terminator, a keyword that opens a
// declaration or statement, or EOF.
func (p *Parser) sync() {
	for {
		tok := p.curToken
		switch {
		case tok.Kind == lexer.TokenEOF:
			return
		case tok.IsDelimiter(";"):
			p.nextToken()
			return
		case tok.IsDelimiter("."):
			return
		case tok.Kind == lexer.TokenKeyword && syncKeywords[tok.Tag]:
			return
		}
		p.nextToken()
	}
}

func (p *Parser) expectKeyword(tag string) bool {
	if p.curToken.IsKeyword(tag) {
		p.nextToken()
		return true
	}
	p.report(UnexpectedToken, fmt.Sprintf("keyword %q", tag))
	p.sync()
	return false
}

func (p *Parser) expectOperator(tag string) bool {
	if p.curToken.IsOperator(tag) {
		p.nextToken()
		return true
	}
	p.report(UnexpectedToken, fmt.Sprintf("%q", tag))
	p.sync()
	return false
}

func (p *Parser) expectDelimiter(tag string) bool {
	if p.curToken.IsDelimiter(tag) {
		p.nextToken()
		return true
	}
	p.report(UnexpectedToken, fmt.Sprintf("%q", tag))
	p.sync()
	return false
}

func (p *Parser) expectIdent() *ast.Ident {
	if p.curToken.Kind == lexer.TokenIdentifier {
		ident := &ast.Ident{Token: p.curToken, Value: p.curToken.Lexeme}
		p.nextToken()
		return ident
	}
	p.report(UnexpectedToken, "an identifier")
	p.sync()
	return nil
}

// Parse builds the tree for a whole program. The returned tree is always
// non-nil; when Errors is non-empty it is a best-effort reading of the
// broken source, usable for tooling but not for later stages.
func (p *Parser) Parse() *ast.Program {
	prog := &ast.Program{Token: p.curToken}

	if !p.curToken.IsKeyword(lexer.KwProgram) {
		p.report(UnexpectedToken, `keyword "program"`)
		return prog
	}
	p.nextToken()

	prog.Name = p.expectIdent()
	p.expectDelimiter(";")

	prog.Declarations = p.parseDeclarations()

	if p.curToken.IsKeyword(lexer.KwBegin) {
		prog.Body = p.parseCompound()
	} else {
		p.report(UnexpectedToken, `keyword "begin"`)
		p.sync()
	}

	p.expectDelimiter(".")

	if p.curToken.Kind != lexer.TokenEOF {
		p.report(UnexpectedToken, "end of file after the closing '.'")
	}

	return prog
}

// ParseStatement parses a single statement instead of a whole program, for
// interactive use.
func (p *Parser) ParseStatement() ast.Statement {
	stmt := p.parseStatement()
	if p.curToken.IsDelimiter(";") {
		p.nextToken()
	}
	if p.curToken.Kind != lexer.TokenEOF {
		p.report(UnexpectedToken, "end of input")
	}
	return stmt
}

// parseDeclarations consumes declaration sections in any order, as many
// times as they appear. Used for the program level and inside procedure and
// function bodies alike.
func (p *Parser) parseDeclarations() []ast.Statement {
	decls := []ast.Statement{}

	for {
		switch {
		case p.curToken.IsKeyword(lexer.KwConst):
			decls = append(decls, p.parseConstSection()...)
		case p.curToken.IsKeyword(lexer.KwType):
			decls = append(decls, p.parseTypeSection()...)
		case p.curToken.IsKeyword(lexer.KwVar):
			decls = append(decls, p.parseVarSection()...)
		case p.curToken.IsKeyword(lexer.KwProcedure):
			if decl := p.parseProcDecl(); decl != nil {
				decls = append(decls, decl)
			}
		case p.curToken.IsKeyword(lexer.KwFunction):
			if decl := p.parseFuncDecl(); decl != nil {
				decls = append(decls, decl)
			}
		default:
			return decls
		}
	}
}

func (p *Parser) parseConstSection() []ast.Statement {
	section := p.curToken
	p.nextToken()

	decls := []ast.Statement{}
	if p.curToken.Kind != lexer.TokenIdentifier {
		p.report(MalformedDeclaration, "a constant name")
		p.sync()
	}

	for p.curToken.Kind == lexer.TokenIdentifier {
		name := p.expectIdent()
		p.expectOperator("=")
		value := p.parseExpression(LOWEST)
		p.expectDelimiter(";")
		decls = append(decls, &ast.ConstDecl{Token: section, Name: name, Value: value})
	}

	return decls
}

func (p *Parser) parseTypeSection() []ast.Statement {
	section := p.curToken
	p.nextToken()

	decls := []ast.Statement{}
	if p.curToken.Kind != lexer.TokenIdentifier {
		p.report(MalformedDeclaration, "a type name")
		p.sync()
	}

	for p.curToken.Kind == lexer.TokenIdentifier {
		name := p.expectIdent()
		p.expectOperator("=")
		typ := p.parseType()
		p.expectDelimiter(";")
		decls = append(decls, &ast.TypeDecl{Token: section, Name: name, Type: typ})
	}

	return decls
}

func (p *Parser) parseVarSection() []ast.Statement {
	section := p.curToken
	p.nextToken()

	decls := []ast.Statement{}
	if p.curToken.Kind != lexer.TokenIdentifier {
		p.report(MalformedDeclaration, "a variable name")
		p.sync()
	}

	for p.curToken.Kind == lexer.TokenIdentifier {
		names := p.parseIdentList()
		p.expectDelimiter(":")
		typ := p.parseType()
		p.expectDelimiter(";")
		decls = append(decls, &ast.VarDecl{Token: section, Names: names, Type: typ})
	}

	return decls
}

// parseIdentList parses ident {, ident}; curToken must already be an
// identifier.
func (p *Parser) parseIdentList() []*ast.Ident {
	names := []*ast.Ident{}
	for {
		if name := p.expectIdent(); name != nil {
			names = append(names, name)
		} else {
			return names
		}
		if !p.curToken.IsDelimiter(",") {
			return names
		}
		p.nextToken()
	}
}

func (p *Parser) parseProcDecl() ast.Statement {
	decl := &ast.ProcDecl{Token: p.curToken}
	p.nextToken()

	decl.Name = p.expectIdent()
	decl.Params = p.parseParams()
	p.expectDelimiter(";")

	decl.Declarations = p.parseDeclarations()
	if p.curToken.IsKeyword(lexer.KwBegin) {
		decl.Body = p.parseCompound()
	} else {
		p.report(UnexpectedToken, `keyword "begin"`)
		p.sync()
	}
	p.expectDelimiter(";")

	return decl
}

func (p *Parser) parseFuncDecl() ast.Statement {
	decl := &ast.FuncDecl{Token: p.curToken}
	p.nextToken()

	decl.Name = p.expectIdent()
	decl.Params = p.parseParams()
	p.expectDelimiter(":")
	decl.Return = p.parseType()
	p.expectDelimiter(";")

	decl.Declarations = p.parseDeclarations()
	if p.curToken.IsKeyword(lexer.KwBegin) {
		decl.Body = p.parseCompound()
	} else {
		p.report(UnexpectedToken, `keyword "begin"`)
		p.sync()
	}
	p.expectDelimiter(";")

	return decl
}

// parseParams parses an optional formal parameter list. Groups are
// separated by ';' and an optional leading `var` marks a by-reference
// group.
func (p *Parser) parseParams() []*ast.ParamGroup {
	if !p.curToken.IsDelimiter("(") {
		return nil
	}
	p.nextToken()

	groups := []*ast.ParamGroup{}
	for {
		group := &ast.ParamGroup{Token: p.curToken}
		if p.curToken.IsKeyword(lexer.KwVar) {
			group.ByRef = true
			p.nextToken()
		}

		if p.curToken.Kind != lexer.TokenIdentifier {
			p.report(MalformedDeclaration, "a parameter name")
			p.sync()
			return groups
		}
		group.Names = p.parseIdentList()
		p.expectDelimiter(":")
		group.Type = p.parseType()
		groups = append(groups, group)

		if p.curToken.IsDelimiter(";") {
			p.nextToken()
			continue
		}
		break
	}

	p.expectDelimiter(")")
	return groups
}

// parseType parses a type denotation: one of the built-in type keywords, a
// declared type name, or a subrange array type.
func (p *Parser) parseType() ast.Type {
	tok := p.curToken

	switch {
	case tok.IsKeyword(lexer.KwInteger), tok.IsKeyword(lexer.KwReal),
		tok.IsKeyword(lexer.KwBoolean), tok.IsKeyword(lexer.KwChar):
		p.nextToken()
		return &ast.TypeName{Token: tok, Name: tok.Tag}

	case tok.Kind == lexer.TokenIdentifier:
		p.nextToken()
		return &ast.TypeName{Token: tok, Name: tok.Lexeme}

	case tok.IsKeyword(lexer.KwArray):
		p.nextToken()
		arr := &ast.ArrayType{Token: tok}
		p.expectDelimiter("[")
		arr.Low = p.parseExpression(LOWEST)
		p.expectOperator("..")
		arr.High = p.parseExpression(LOWEST)
		p.expectDelimiter("]")
		p.expectKeyword(lexer.KwOf)
		arr.Elem = p.parseType()
		return arr

	default:
		p.report(MalformedDeclaration, "a type")
		p.sync()
		return nil
	}
}

// parseCompound parses begin ... end. Empty statements between separators
// are kept as nodes, matching the grammar rather than collapsing them.
func (p *Parser) parseCompound() *ast.CompoundStmt {
	block := &ast.CompoundStmt{Token: p.curToken, Statements: []ast.Statement{}}
	p.nextToken()

	for {
		if p.curToken.IsKeyword(lexer.KwEnd) {
			p.nextToken()
			return block
		}
		if p.curToken.Kind == lexer.TokenEOF {
			p.report(UnclosedBlock, `keyword "end"`)
			return block
		}
		if p.curToken.IsDelimiter(".") {
			p.report(UnclosedBlock, `keyword "end"`)
			return block
		}

		if p.curToken.IsDelimiter(";") {
			block.Statements = append(block.Statements, &ast.EmptyStmt{Token: p.curToken})
			p.nextToken()
			continue
		}

		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}

		// after a statement only a separator or the block close may follow
		if p.curToken.IsDelimiter(";") {
			p.nextToken()
			continue
		}
		if p.curToken.IsKeyword(lexer.KwEnd) || p.curToken.Kind == lexer.TokenEOF ||
			p.curToken.IsDelimiter(".") {
			continue
		}
		p.report(UnexpectedToken, `";" or keyword "end"`)
		p.sync()
	}
}

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curToken.IsKeyword(lexer.KwBegin):
		return p.parseCompound()
	case p.curToken.IsKeyword(lexer.KwIf):
		return p.parseIf()
	case p.curToken.IsKeyword(lexer.KwWhile):
		return p.parseWhile()
	case p.curToken.IsKeyword(lexer.KwFor):
		return p.parseFor()
	case p.curToken.Kind == lexer.TokenIdentifier:
		return p.parseAssignOrCall()
	default:
		p.report(UnexpectedToken, "a statement")
		p.nextToken()
		p.sync()
		return nil
	}
}

func (p *Parser) parseIf() ast.Statement {
	stmt := &ast.IfStmt{Token: p.curToken}
	p.nextToken()

	stmt.Condition = p.parseExpression(LOWEST)
	p.expectKeyword(lexer.KwThen)
	stmt.Then = p.parseStatement()

	// an else always binds to the nearest then
	if p.curToken.IsKeyword(lexer.KwElse) {
		p.nextToken()
		stmt.Else = p.parseStatement()
	}

	return stmt
}

func (p *Parser) parseWhile() ast.Statement {
	stmt := &ast.WhileStmt{Token: p.curToken}
	p.nextToken()

	stmt.Condition = p.parseExpression(LOWEST)
	p.expectKeyword(lexer.KwDo)
	stmt.Body = p.parseStatement()

	return stmt
}

func (p *Parser) parseFor() ast.Statement {
	stmt := &ast.ForStmt{Token: p.curToken}
	p.nextToken()

	stmt.Var = p.expectIdent()
	p.expectOperator(":=")
	stmt.Start = p.parseExpression(LOWEST)

	switch {
	case p.curToken.IsKeyword(lexer.KwTo):
		p.nextToken()
	case p.curToken.IsKeyword(lexer.KwDownto):
		stmt.Down = true
		p.nextToken()
	default:
		p.report(UnexpectedToken, `keyword "to" or "downto"`)
		p.sync()
	}

	stmt.End = p.parseExpression(LOWEST)
	p.expectKeyword(lexer.KwDo)
	stmt.Body = p.parseStatement()

	return stmt
}

// parseAssignOrCall disambiguates the two identifier-led statements with
// one token of lookahead: `:=` means assignment, anything else a procedure
// call, parenthesized arguments or not.
func (p *Parser) parseAssignOrCall() ast.Statement {
	target := &ast.Ident{Token: p.curToken, Value: p.curToken.Lexeme}
	p.nextToken()

	if p.curToken.IsOperator(":=") {
		stmt := &ast.AssignStmt{Token: p.curToken, Target: target}
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
		return stmt
	}

	stmt := &ast.CallStmt{Token: target.Token, Name: target}
	if p.curToken.IsDelimiter("(") {
		stmt.Args = p.parseArgs()
	}
	return stmt
}

// parseArgs parses a parenthesized argument list; curToken must be '('.
func (p *Parser) parseArgs() []ast.Expression {
	p.nextToken()

	args := []ast.Expression{}
	if p.curToken.IsDelimiter(")") {
		p.nextToken()
		return args
	}

	for {
		if arg := p.parseExpression(LOWEST); arg != nil {
			args = append(args, arg)
		}
		if p.curToken.IsDelimiter(",") {
			p.nextToken()
			continue
		}
		break
	}

	p.expectDelimiter(")")
	return args
}

// parseExpression climbs precedence levels, taking every operator that
// binds at least as tight as minPrec. Relational operators are
// non-associative, so a second one at the same climb is a recorded error;
// the tree still folds it left for recovery.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parsePrimary()
	if left == nil {
		return nil
	}

	lastRelational := false
	for {
		prec, isBinary := p.binaryPrecedence()
		if !isBinary || prec < minPrec {
			return left
		}

		isRelational := prec == RELATIONAL
		if isRelational && lastRelational {
			p.report(UnexpectedToken, "a single comparison; relational operators do not chain")
		}

		op := p.curToken
		p.nextToken()
		right := p.parseExpression(prec + 1)

		left = &ast.BinaryExpr{Token: op, Operator: op.Tag, Left: left, Right: right}
		lastRelational = isRelational
	}
}

func (p *Parser) binaryPrecedence() (int, bool) {
	if p.curToken.Kind != lexer.TokenOperator {
		return LOWEST, false
	}
	prec, ok := binaryPrecedences[p.curToken.Tag]
	return prec, ok
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.curToken

	switch {
	case tok.Kind == lexer.TokenIntLit:
		p.nextToken()
		value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			p.Errors = append(p.Errors, &SyntaxError{
				FilePath: p.FilePath,
				Kind:     UnexpectedToken,
				Expected: "an integer literal in range",
				Found:    tok,
			})
		}
		return &ast.IntLit{Token: tok, Value: value}

	case tok.Kind == lexer.TokenRealLit:
		p.nextToken()
		value, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.RealLit{Token: tok, Value: value}

	case tok.Kind == lexer.TokenStringLit:
		p.nextToken()
		return &ast.StringLit{Token: tok, Value: lexer.Quoted(tok.Lexeme)}

	case tok.Kind == lexer.TokenCharLit:
		p.nextToken()
		return &ast.CharLit{Token: tok, Value: []rune(lexer.Quoted(tok.Lexeme))[0]}

	case tok.Kind == lexer.TokenIdentifier:
		p.nextToken()
		ident := &ast.Ident{Token: tok, Value: tok.Lexeme}
		if p.curToken.IsDelimiter("(") {
			return &ast.CallExpr{Token: tok, Function: ident, Args: p.parseArgs()}
		}
		return ident

	case tok.IsOperator("-"), tok.IsOperator(lexer.OpNot):
		p.nextToken()
		return &ast.UnaryExpr{Token: tok, Operator: tok.Tag, Right: p.parseExpression(PREFIX)}

	case tok.IsDelimiter("("):
		p.nextToken()
		inner := p.parseExpression(LOWEST)
		p.expectDelimiter(")")
		return inner

	default:
		p.report(UnexpectedToken, "an expression")
		return nil
	}
}
