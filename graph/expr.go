package graph

import "strings"

// Expr is a structured type annotation expression attached to a parameter,
// return type, or attribute value. The set of shapes is closed: name
// reference, generic subscript, binary operator, and tuple. Consumers that
// meet an unexpected shape fail fast instead of coercing it.
type Expr interface {
	// CanonicalName returns the unqualified name of the expression head
	// (for a subscript, the name of the generic being subscripted).
	CanonicalName() string

	// CanonicalPath returns the fully qualified dotted path of the
	// expression head.
	CanonicalPath() string

	// String renders the literal source text of the expression.
	String() string
}

// ExprName is a plain reference to a named type.
type ExprName struct {
	Name string
	Path string
}

func (e *ExprName) CanonicalName() string { return e.Name }

func (e *ExprName) CanonicalPath() string {
	if e.Path != "" {
		return e.Path
	}
	return e.Name
}

func (e *ExprName) String() string { return e.Name }

// ExprSubscript is a generic subscript expression like Wrapper[A, B].
// Exactly one of Slice and RawSlice is set: RawSlice carries slice text the
// exporter could not parse into a structured expression.
type ExprSubscript struct {
	Left     Expr
	Slice    Expr
	RawSlice string
}

func (e *ExprSubscript) CanonicalName() string { return e.Left.CanonicalName() }

func (e *ExprSubscript) CanonicalPath() string { return e.Left.CanonicalPath() }

func (e *ExprSubscript) String() string {
	if e.Slice != nil {
		return e.Left.String() + "[" + e.Slice.String() + "]"
	}
	return e.Left.String() + "[" + e.RawSlice + "]"
}

// ExprBinOp is a binary operator expression such as the alternation A | B.
type ExprBinOp struct {
	Left  Expr
	Op    string
	Right Expr
}

func (e *ExprBinOp) CanonicalName() string { return e.String() }

func (e *ExprBinOp) CanonicalPath() string { return e.String() }

func (e *ExprBinOp) String() string {
	return e.Left.String() + " " + e.Op + " " + e.Right.String()
}

// ExprTuple is a tuple of expressions, as found in multi-argument subscripts.
type ExprTuple struct {
	Elements []Expr
}

func (e *ExprTuple) CanonicalName() string { return e.String() }

func (e *ExprTuple) CanonicalPath() string { return e.String() }

func (e *ExprTuple) String() string {
	parts := make([]string, len(e.Elements))
	for i, el := range e.Elements {
		parts[i] = el.String()
	}
	return strings.Join(parts, ", ")
}
