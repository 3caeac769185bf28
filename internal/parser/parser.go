// Package parser implements a recursive-descent, Pratt-style expression
// parser that turns a token stream into the internal/ast tree. It mirrors
// the teacher parser's curToken/peekToken navigation and prefix/infix
// parse-function tables, scaled down to Lox's much smaller grammar.
package parser

import (
	"fmt"

	"github.com/cwbudde/go-lox/internal/ast"
	"github.com/cwbudde/go-lox/internal/lexer"
	"github.com/cwbudde/go-lox/internal/token"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	OR
	AND
	EQUALITY
	COMPARISON
	TERM
	FACTOR
	UNARY
	CALL
)

var precedences = map[token.Type]int{
	token.OR:            OR,
	token.AND:           AND,
	token.EQUAL_EQUAL:   EQUALITY,
	token.BANG_EQUAL:    EQUALITY,
	token.LESS:          COMPARISON,
	token.LESS_EQUAL:    COMPARISON,
	token.GREATER:       COMPARISON,
	token.GREATER_EQUAL: COMPARISON,
	token.PLUS:          TERM,
	token.MINUS:         TERM,
	token.STAR:          FACTOR,
	token.SLASH:         FACTOR,
	token.LEFT_PAREN:    CALL,
	token.DOT:           CALL,
}

// Error is a single syntax failure, reported with best-effort position
// information (spec.md §7's "position info is best-effort" applies here
// too, since the parser feeds the same Token.Pos into every node).
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

type prefixParseFn func() ast.Expression
type infixParseFn func(ast.Expression) ast.Expression

// Parser consumes a lexer's token stream one token of lookahead at a
// time. It never backtracks; a failed parse is reported and the parser
// synchronizes to the next statement boundary (synchronize).
type Parser struct {
	tokens []token.Token
	pos    int

	errors []*Error

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New buffers the full token stream from l and prepares the parser.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{tokens: l.ScanTokens()}

	p.prefixFns = map[token.Type]prefixParseFn{
		token.NUMBER:     p.parseLiteral,
		token.STRING:     p.parseLiteral,
		token.TRUE:       p.parseLiteral,
		token.FALSE:      p.parseLiteral,
		token.NIL:        p.parseLiteral,
		token.IDENT:      p.parseVariable,
		token.THIS:       p.parseThis,
		token.SUPER:      p.parseSuper,
		token.LEFT_PAREN: p.parseGrouping,
		token.MINUS:      p.parseUnary,
		token.BANG:       p.parseUnary,
	}
	p.infixFns = map[token.Type]infixParseFn{
		token.PLUS:          p.parseBinary,
		token.MINUS:         p.parseBinary,
		token.STAR:          p.parseBinary,
		token.SLASH:         p.parseBinary,
		token.EQUAL_EQUAL:   p.parseBinary,
		token.BANG_EQUAL:    p.parseBinary,
		token.LESS:          p.parseBinary,
		token.LESS_EQUAL:    p.parseBinary,
		token.GREATER:       p.parseBinary,
		token.GREATER_EQUAL: p.parseBinary,
		token.AND:           p.parseLogical,
		token.OR:            p.parseLogical,
		token.LEFT_PAREN:    p.parseCall,
		token.DOT:           p.parseGetOrCall,
	}

	return p
}

// Errors returns every syntax error encountered so far.
func (p *Parser) Errors() []*Error {
	return p.errors
}

func (p *Parser) cur() token.Token  { return p.tokens[p.pos] }
func (p *Parser) peek() token.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}
func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}
func (p *Parser) curIs(t token.Type) bool  { return p.cur().Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek().Type == t }

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.curIs(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(t token.Type, context string) (token.Token, bool) {
	if p.curIs(t) {
		return p.advance(), true
	}
	p.errorf("expected %s %s, got %s", t, context, p.cur())
	return token.Token{}, false
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, &Error{Message: fmt.Sprintf(format, args...), Pos: p.cur().Pos})
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.cur().Type]; ok {
		return pr
	}
	return LOWEST
}

// synchronize discards tokens until a likely statement boundary, so one
// syntax error doesn't cascade into dozens of spurious ones.
func (p *Parser) synchronize() {
	p.advance()
	for !p.curIs(token.EOF) {
		if p.tokens[p.pos-1].Type == token.SEMICOLON {
			return
		}
		switch p.cur().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

// Parse runs the parser to completion and returns the program plus any
// accumulated syntax errors. A non-empty error slice means program may be
// partial; callers should not evaluate it (mirrors resolver.Resolve's
// contract of reporting all findings before execution starts).
func Parse(l *lexer.Lexer) (*ast.Program, []*Error) {
	p := New(l)
	program := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt := p.parseDeclaration()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	return program, p.errors
}
