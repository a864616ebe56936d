// Package types defines the type-term representation used by the inference
// engine: constants, unification variables and their level metadata, arrows
// and type applications. See "Efficient Generalization with Levels" (Oleg
// Kiselyov) for the level-range scheme carried by every composite node.
package types

// GrayLevel marks a composite node as currently on the traversal/unify
// stack; re-entering a gray node means the type is structurally cyclic.
const GrayLevel = -1

// GenericLevel tags a variable or composite node that has been generalized.
// It is deliberately far larger than any real nesting depth will reach.
const GenericLevel = 19921213

// Type is any type term: Const, *Var, *Arrow or *App.
type Type interface {
	typeNode()
}

// Const is a nullary type constructor, e.g. int or bool.
type Const struct {
	Name string
}

func (Const) typeNode() {}

func (c Const) String() string { return c.Name }

// Var is a unification variable cell. An unbound Var holds an id (for
// identity) and a level (the shallowest let-binder it has been observed to
// escape to). Once solved, Link holds the type it was unified with and the
// level field is meaningless.
type Var struct {
	id    int
	level int
	link  Type
}

func (*Var) typeNode() {}

// NewVar allocates a fresh unbound variable at the given id and level.
func NewVar(id, level int) *Var {
	return &Var{id: id, level: level}
}

// Id returns the variable's gensym identity. Defined even on a linked
// variable, though callers should have called Find first.
func (v *Var) Id() int { return v.id }

// IsLink reports whether this cell has been solved by unification.
func (v *Var) IsLink() bool { return v.link != nil }

// Link returns the type this variable was unified with. Panics if unbound.
func (v *Var) Link() Type {
	if v.link == nil {
		panic("types: Link called on an unbound variable")
	}
	return v.link
}

// SetLink solves the variable, pointing it at t.
func (v *Var) SetLink(t Type) { v.link = t }

// Level returns the recorded scope depth of an unbound variable. Panics if
// the variable has been linked; callers must Find first.
func (v *Var) Level() int {
	if v.link != nil {
		panic("types: Level called on a linked variable")
	}
	return v.level
}

// SetLevel lowers (or otherwise sets) the recorded level of an unbound
// variable.
func (v *Var) SetLevel(level int) { v.level = level }

// IsGenericVar reports whether this unbound variable has been generalized.
// Does not resolve links; callers should Find first.
func (v *Var) IsGenericVar() bool { return v.link == nil && v.level == GenericLevel }

// Arrow is a function type: (Args...) -> Return.
type Arrow struct {
	Args   []Type
	Return Type
	levelRange
}

func (*Arrow) typeNode() {}

// NewArrow allocates a fresh arrow, stamped at curLevel.
func NewArrow(args []Type, ret Type, curLevel int) *Arrow {
	return &Arrow{Args: args, Return: ret, levelRange: levelRange{old: curLevel, new: curLevel}}
}

func (a *Arrow) children() []Type {
	c := make([]Type, 0, len(a.Args)+1)
	c = append(c, a.Args...)
	return append(c, a.Return)
}

// App is a type application, e.g. list[a] or pair[a, b].
type App struct {
	Head Type
	Args []Type
	levelRange
}

func (*App) typeNode() {}

// NewApp allocates a fresh type application, stamped at curLevel.
func NewApp(head Type, args []Type, curLevel int) *App {
	return &App{Head: head, Args: args, levelRange: levelRange{old: curLevel, new: curLevel}}
}

func (a *App) children() []Type {
	c := make([]Type, 0, len(a.Args)+1)
	c = append(c, a.Head)
	return append(c, a.Args...)
}

// levelRange is the two-level bookkeeping record carried by every composite
// node (§3 of the design notes): level_old is the deepest level at which the
// node's structure was last fully adjusted; level_new is the current best
// upper bound on the levels of variables reachable inside it. Invariant:
// new <= old, except transiently while new == GrayLevel.
type levelRange struct {
	old int
	new int
}

func (l *levelRange) LevelOld() int        { return l.old }
func (l *levelRange) LevelNew() int        { return l.new }
func (l *levelRange) SetLevelOld(n int)    { l.old = n }
func (l *levelRange) SetLevelNew(n int)    { l.new = n }
func (l *levelRange) IsDirty() bool        { return l.new != l.old }
func (l *levelRange) IsGray() bool         { return l.new == GrayLevel }
func (l *levelRange) IsGenericRange() bool { return l.new == GenericLevel }

// Composite is implemented by every multi-child type node (Arrow, App) and
// is the shape the adjustment queue and generalization walk operate over.
type Composite interface {
	Type
	LevelOld() int
	LevelNew() int
	SetLevelOld(int)
	SetLevelNew(int)
	children() []Type
}

var (
	_ Composite = (*Arrow)(nil)
	_ Composite = (*App)(nil)
)

// Children returns a composite node's structural children, in the order
// used for traversal: head then args for App, args then result for Arrow.
func Children(t Composite) []Type { return t.children() }
