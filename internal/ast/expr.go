package ast

// CompiledExpr is the compiled expression tree: two append-only arenas
// (spec section 3.3). Positive index i addresses Constants[i-1]; negative
// index i addresses Variables[-i-1]; index 0 addresses nothing (invariant
// I1). The root is always Constants[0] (invariant I2).
type CompiledExpr struct {
	Constants []Node
	Variables []Node
}

// New returns an empty CompiledExpr ready for the parser to populate.
func New() *CompiledExpr {
	return &CompiledExpr{}
}

// Get resolves index to its Node, following the sign to pick the arena.
// It returns nil for index 0.
func (e *CompiledExpr) Get(index int) *Node {
	switch {
	case index > 0:
		return &e.Constants[index-1]
	case index < 0:
		return &e.Variables[-index-1]
	default:
		return nil
	}
}

// Root returns the entry point for evaluation, Constants[0]. It returns
// nil for an empty (unparsed or freed) expression.
func (e *CompiledExpr) Root() *Node {
	if len(e.Constants) == 0 {
		return nil
	}
	return &e.Constants[0]
}

// AppendConstant appends n to the constants arena and returns its
// (positive) index.
func (e *CompiledExpr) AppendConstant(n Node) int {
	e.Constants = append(e.Constants, n)
	return len(e.Constants)
}

// AppendVariable appends n to the variables arena and returns its
// (negative) index.
func (e *CompiledExpr) AppendVariable(n Node) int {
	e.Variables = append(e.Variables, n)
	return -len(e.Variables)
}

// SetChildren attaches an operator node's children after they have been
// parsed. idx must be a positive index returned by AppendConstant for an
// operator node.
func (e *CompiledExpr) SetChildren(idx int, children []int) {
	e.Constants[idx-1].Children = children
}

// Free releases the arenas. It tolerates a partially constructed
// CompiledExpr (parser failure) and is idempotent — both are satisfied
// trivially here since Go's garbage collector owns the backing arrays;
// nilling the slices only makes them collectible without waiting for the
// CompiledExpr itself to go out of scope (spec section 3.4).
func (e *CompiledExpr) Free() {
	e.Constants = nil
	e.Variables = nil
}
