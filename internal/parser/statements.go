package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/token"
)

func (p *Parser) parseDeclaration() ast.Statement {
	errCount := len(p.errors)

	var stmt ast.Statement
	switch {
	case p.curIs(token.CLASS):
		stmt = p.parseClassDecl()
	case p.curIs(token.FUN) && p.peekIs(token.IDENT):
		p.advance() // 'fun'
		decl := p.parseFunction("function")
		if decl != nil {
			stmt = decl
		}
	case p.curIs(token.VAR):
		stmt = p.parseVarDecl()
	default:
		stmt = p.parseStatement()
	}

	if len(p.errors) > errCount {
		p.synchronize()
	}
	return stmt
}

func (p *Parser) parseVarDecl() ast.Statement {
	tok := p.advance() // 'var'
	name, ok := p.expect(token.IDENT, "as variable name")
	if !ok {
		p.synchronize()
		return nil
	}

	var init ast.Expression = &ast.Literal{Token: tok, Value: nil}
	if p.curIs(token.EQUAL) {
		p.advance()
		init = p.parseAssignmentOrExpression()
	}
	p.expect(token.SEMICOLON, "after variable declaration")
	return &ast.Var{Token: tok, Name: name.Lexeme, Initializer: init}
}

// parseFunction parses the shared `name(params) { body }` shape used by
// both `fun` declarations and class methods, per spec.md §4.3/§4.4 and
// ast.FunctionDecl's doc comment.
func (p *Parser) parseFunction(kind string) *ast.FunctionDecl {
	name, ok := p.expect(token.IDENT, "as "+kind+" name")
	if !ok {
		return nil
	}
	p.expect(token.LEFT_PAREN, "after "+kind+" name")

	var params []string
	if !p.curIs(token.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.errorf("can't have more than 255 parameters")
			}
			pn, ok := p.expect(token.IDENT, "as parameter name")
			if ok {
				params = append(params, pn.Lexeme)
			}
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	p.expect(token.RIGHT_PAREN, "after parameters")
	p.expect(token.LEFT_BRACE, "before "+kind+" body")
	body := p.parseBlockStatements()

	return &ast.FunctionDecl{Token: name, Name: name.Lexeme, Params: params, Body: body}
}

func (p *Parser) parseClassDecl() ast.Statement {
	tok := p.advance() // 'class'
	name, ok := p.expect(token.IDENT, "as class name")
	if !ok {
		p.synchronize()
		return nil
	}

	var superclass *ast.Variable
	if p.curIs(token.LESS) {
		p.advance()
		sc, ok := p.expect(token.IDENT, "as superclass name")
		if ok {
			superclass = &ast.Variable{Token: sc, Name: sc.Lexeme}
		}
	}

	p.expect(token.LEFT_BRACE, "before class body")
	var methods []*ast.FunctionDecl
	for !p.curIs(token.RIGHT_BRACE) && !p.curIs(token.EOF) {
		m := p.parseFunction("method")
		if m != nil {
			methods = append(methods, m)
		}
	}
	p.expect(token.RIGHT_BRACE, "after class body")

	return &ast.ClassDecl{Token: tok, Name: name.Lexeme, Superclass: superclass, Methods: methods}
}

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.curIs(token.PRINT):
		return p.parsePrintStmt()
	case p.curIs(token.LEFT_BRACE):
		return p.parseBlock()
	case p.curIs(token.IF):
		return p.parseIfStmt()
	case p.curIs(token.WHILE):
		return p.parseWhileStmt()
	case p.curIs(token.FOR):
		return p.parseForStmt()
	case p.curIs(token.RETURN):
		return p.parseReturnStmt()
	default:
		return p.parseExpressionStmt()
	}
}

func (p *Parser) parseExpressionStmt() ast.Statement {
	tok := p.cur()
	expr := p.parseAssignmentOrExpression()
	p.expect(token.SEMICOLON, "after expression")
	return &ast.ExpressionStmt{Token: tok, Expr: expr}
}

func (p *Parser) parsePrintStmt() ast.Statement {
	tok := p.advance() // 'print'
	expr := p.parseAssignmentOrExpression()
	p.expect(token.SEMICOLON, "after value")
	return &ast.Print{Token: tok, Expr: expr}
}

func (p *Parser) parseReturnStmt() ast.Statement {
	tok := p.advance() // 'return'
	var value ast.Expression = &ast.Literal{Token: tok, Value: nil}
	if !p.curIs(token.SEMICOLON) {
		value = p.parseAssignmentOrExpression()
	}
	p.expect(token.SEMICOLON, "after return value")
	return &ast.Return{Token: tok, Expr: value}
}

func (p *Parser) parseBlock() ast.Statement {
	tok := p.cur()
	p.advance() // '{'
	stmts := p.parseBlockStatements()
	return &ast.Block{Token: tok, Stmts: stmts}
}

// parseBlockStatements consumes declarations up to (and including) the
// closing brace, used both for `{ ... }` block statements and function
// bodies.
func (p *Parser) parseBlockStatements() []ast.Statement {
	var stmts []ast.Statement
	for !p.curIs(token.RIGHT_BRACE) && !p.curIs(token.EOF) {
		s := p.parseDeclaration()
		if s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RIGHT_BRACE, "after block")
	return stmts
}

func (p *Parser) parseIfStmt() ast.Statement {
	tok := p.advance() // 'if'
	p.expect(token.LEFT_PAREN, "after 'if'")
	cond := p.parseAssignmentOrExpression()
	p.expect(token.RIGHT_PAREN, "after if condition")

	then := p.parseStatement()
	var elseBranch ast.Statement
	if p.curIs(token.ELSE) {
		p.advance()
		elseBranch = p.parseStatement()
	}
	return &ast.If{Token: tok, Condition: cond, Then: then, Else: elseBranch}
}

func (p *Parser) parseWhileStmt() ast.Statement {
	tok := p.advance() // 'while'
	p.expect(token.LEFT_PAREN, "after 'while'")
	cond := p.parseAssignmentOrExpression()
	p.expect(token.RIGHT_PAREN, "after condition")
	body := p.parseStatement()
	return &ast.While{Token: tok, Condition: cond, Body: body}
}

// parseForStmt desugars `for (init; cond; incr) body` into a Block
// containing the initializer followed by a While whose body has the
// increment appended, per spec.md §4.3/§9 and ast.While's doc comment:
// the evaluator never sees a For node.
func (p *Parser) parseForStmt() ast.Statement {
	tok := p.advance() // 'for'
	p.expect(token.LEFT_PAREN, "after 'for'")

	var initializer ast.Statement
	switch {
	case p.curIs(token.SEMICOLON):
		p.advance()
	case p.curIs(token.VAR):
		initializer = p.parseVarDecl()
	default:
		initializer = p.parseExpressionStmt()
	}

	var condition ast.Expression = &ast.Literal{Token: tok, Value: true}
	if !p.curIs(token.SEMICOLON) {
		condition = p.parseAssignmentOrExpression()
	}
	p.expect(token.SEMICOLON, "after loop condition")

	var increment ast.Expression
	if !p.curIs(token.RIGHT_PAREN) {
		increment = p.parseAssignmentOrExpression()
	}
	p.expect(token.RIGHT_PAREN, "after for clauses")

	body := p.parseStatement()
	if increment != nil {
		body = &ast.Block{Token: tok, Stmts: []ast.Statement{
			body,
			&ast.ExpressionStmt{Token: tok, Expr: increment},
		}}
	}

	loop := ast.Statement(&ast.While{Token: tok, Condition: condition, Body: body})
	if initializer != nil {
		loop = &ast.Block{Token: tok, Stmts: []ast.Statement{initializer, loop}}
	}
	return loop
}
