package parser

import (
	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixFns[p.cur().Type]
	if prefix == nil {
		p.errorf("unexpected token %s in expression", p.cur())
		p.advance()
		return nil
	}
	left := prefix()

	for !p.curIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixFns[p.cur().Type]
		if infix == nil {
			return left
		}
		left = infix(left)
	}
	return left
}

// parseAssignmentOrExpression handles the one place Lox's grammar isn't
// plain precedence climbing: `target = value` is only legal when target
// is itself a valid assignment target (Variable, Get), and it is
// right-associative. Lox folds this into `expression`, but representing
// it as just another infix operator would let `1 = 2` parse, so it's
// handled as its own production above the OR level.
func (p *Parser) parseAssignmentOrExpression() ast.Expression {
	expr := p.parseExpression(LOWEST)

	if p.curIs(token.EQUAL) {
		eq := p.advance()
		value := p.parseAssignmentOrExpression()

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Token: eq, Name: target.Name, Value: value}
		case *ast.Get:
			return &ast.Set{Token: eq, Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorf("invalid assignment target")
			return expr
		}
	}
	return expr
}

func (p *Parser) parseLiteral() ast.Expression {
	tok := p.advance()
	switch tok.Type {
	case token.NUMBER:
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case token.STRING:
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case token.TRUE:
		return &ast.Literal{Token: tok, Value: true}
	case token.FALSE:
		return &ast.Literal{Token: tok, Value: false}
	case token.NIL:
		return &ast.Literal{Token: tok, Value: nil}
	default:
		panic("parser: parseLiteral called on non-literal token")
	}
}

func (p *Parser) parseVariable() ast.Expression {
	tok := p.advance()
	return &ast.Variable{Token: tok, Name: tok.Lexeme}
}

func (p *Parser) parseThis() ast.Expression {
	tok := p.advance()
	return &ast.This{Token: tok}
}

func (p *Parser) parseSuper() ast.Expression {
	tok := p.advance()
	if _, ok := p.expect(token.DOT, "after 'super'"); !ok {
		return &ast.Super{Token: tok}
	}
	method, ok := p.expect(token.IDENT, "as superclass method name")
	if !ok {
		return &ast.Super{Token: tok}
	}
	return &ast.Super{Token: tok, Method: method.Lexeme}
}

func (p *Parser) parseGrouping() ast.Expression {
	tok := p.advance() // '('
	expr := p.parseAssignmentOrExpression()
	p.expect(token.RIGHT_PAREN, "after expression")
	return &ast.Grouping{Token: tok, Expr: expr}
}

func (p *Parser) parseUnary() ast.Expression {
	tok := p.advance()
	right := p.parseExpression(UNARY)
	return &ast.Unary{Token: tok, Operator: tok.Lexeme, Right: right}
}

func (p *Parser) parseBinary(left ast.Expression) ast.Expression {
	tok := p.advance()
	precedence := precedences[tok.Type]
	right := p.parseExpression(precedence)
	return &ast.Binary{Token: tok, Left: left, Operator: tok.Lexeme, Right: right}
}

func (p *Parser) parseLogical(left ast.Expression) ast.Expression {
	tok := p.advance()
	precedence := precedences[tok.Type]
	right := p.parseExpression(precedence)
	op := "and"
	if tok.Type == token.OR {
		op = "or"
	}
	return &ast.Logical{Token: tok, Left: left, Operator: op, Right: right}
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	tok := p.advance() // '('
	var args []ast.Expression
	if !p.curIs(token.RIGHT_PAREN) {
		args = append(args, p.parseAssignmentOrExpression())
		for p.curIs(token.COMMA) {
			p.advance()
			if len(args) >= 255 {
				p.errorf("can't have more than 255 arguments")
			}
			args = append(args, p.parseAssignmentOrExpression())
		}
	}
	p.expect(token.RIGHT_PAREN, "after arguments")
	return &ast.Call{Token: tok, Callee: callee, Arguments: args}
}

func (p *Parser) parseGetOrCall(object ast.Expression) ast.Expression {
	p.advance() // '.'
	name, ok := p.expect(token.IDENT, "after '.'")
	if !ok {
		return object
	}
	return &ast.Get{Token: name, Object: object, Name: name.Lexeme}
}
