package ast

import (
	"strings"

	"github.com/cwbudde/go-lox/internal/token"
)

// FunctionDecl declares a named function, and doubles as the AST shape
// used for class methods (the resolver/evaluator treat a method's
// FunctionDecl identically to a free function — only how it is captured
// differs, per spec.md §4.4/§4.5).
type FunctionDecl struct {
	Token  token.Token
	Name   string
	Params []string
	Body   []Statement
}

func (s *FunctionDecl) statementNode()     {}
func (s *FunctionDecl) TokenLiteral() string { return s.Token.Lexeme }
func (s *FunctionDecl) Pos() token.Position  { return s.Token.Pos }
func (s *FunctionDecl) String() string {
	return "fun " + s.Name + "(" + strings.Join(s.Params, ", ") + ") { ... }"
}
