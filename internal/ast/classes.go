package ast

import "github.com/cwbudde/go-lox/internal/token"

// ClassDecl declares a class, optionally inheriting from a single base
// class expression (spec.md §4.3, §4.5). Superclass is nil when there is
// no `<` clause; when present it must evaluate to a Class value at
// declaration time (spec.md §4.5 step 1).
type ClassDecl struct {
	Token      token.Token
	Name       string
	Superclass *Variable
	Methods    []*FunctionDecl
}

func (s *ClassDecl) statementNode()     {}
func (s *ClassDecl) TokenLiteral() string { return s.Token.Lexeme }
func (s *ClassDecl) Pos() token.Position  { return s.Token.Pos }
func (s *ClassDecl) String() string {
	out := "class " + s.Name
	if s.Superclass != nil {
		out += " < " + s.Superclass.Name
	}
	out += " { ... }"
	return out
}
