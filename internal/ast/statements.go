package ast

import "github.com/cwbudde/go-lox/internal/token"

// ExpressionStmt evaluates an expression and discards the value.
type ExpressionStmt struct {
	Token token.Token
	Expr  Expression
}

func (s *ExpressionStmt) statementNode()     {}
func (s *ExpressionStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *ExpressionStmt) Pos() token.Position  { return s.Token.Pos }
func (s *ExpressionStmt) String() string       { return s.Expr.String() + ";" }

// Print evaluates an expression and writes its display form to stdout.
type Print struct {
	Token token.Token
	Expr  Expression
}

func (s *Print) statementNode()     {}
func (s *Print) TokenLiteral() string { return s.Token.Lexeme }
func (s *Print) Pos() token.Position  { return s.Token.Pos }
func (s *Print) String() string       { return "print " + s.Expr.String() + ";" }

// Var declares a local/global binding. Initializer is never nil — an
// absent initializer is lowered to a Literal(nil) by the parser, per
// spec.md §4.3.
type Var struct {
	Token       token.Token
	Name        string
	Initializer Expression
}

func (s *Var) statementNode()     {}
func (s *Var) TokenLiteral() string { return s.Token.Lexeme }
func (s *Var) Pos() token.Position  { return s.Token.Pos }
func (s *Var) String() string       { return "var " + s.Name + " = " + s.Initializer.String() + ";" }

// Block pushes a new environment, runs its statements, and pops it.
type Block struct {
	Token token.Token
	Stmts []Statement
}

func (s *Block) statementNode()     {}
func (s *Block) TokenLiteral() string { return s.Token.Lexeme }
func (s *Block) Pos() token.Position  { return s.Token.Pos }
func (s *Block) String() string {
	out := "{ "
	for _, st := range s.Stmts {
		out += st.String() + " "
	}
	return out + "}"
}

// If runs Then when Condition is truthy, else Else (which may be nil).
type If struct {
	Token     token.Token
	Condition Expression
	Then      Statement
	Else      Statement
}

func (s *If) statementNode()     {}
func (s *If) TokenLiteral() string { return s.Token.Lexeme }
func (s *If) Pos() token.Position  { return s.Token.Pos }
func (s *If) String() string {
	out := "if (" + s.Condition.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

// While runs Body while Condition is truthy. The parser lowers `for`
// loops into a Block containing an optional initializer and a While
// whose body has the increment appended (spec.md §4.3, §9) — the
// evaluator never sees a For node.
type While struct {
	Token     token.Token
	Condition Expression
	Body      Statement
}

func (s *While) statementNode()     {}
func (s *While) TokenLiteral() string { return s.Token.Lexeme }
func (s *While) Pos() token.Position  { return s.Token.Pos }
func (s *While) String() string {
	return "while (" + s.Condition.String() + ") " + s.Body.String()
}

// Return transfers control to the nearest enclosing call (spec.md §5).
// Expr is never nil — a bare `return;` is lowered to Literal(nil).
type Return struct {
	Token token.Token
	Expr  Expression
}

func (s *Return) statementNode()     {}
func (s *Return) TokenLiteral() string { return s.Token.Lexeme }
func (s *Return) Pos() token.Position  { return s.Token.Pos }
func (s *Return) String() string       { return "return " + s.Expr.String() + ";" }
