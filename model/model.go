// Package model holds the linked domain model consumed by the code generators.
//
// A model is a tree: Definitions at the root, Packages nesting further elements,
// and three kinds of Type (Entity, DataType, Enum) at the leaves. Cross-references
// between types are Refs that keep the name as written alongside the resolved target,
// so a generator can still emit something meaningful when linking failed.
package model

// Position is a 1-based source location. The zero value means unknown.
type Position struct {
	Line   int
	Column int
}

// Element is anything that can appear inside Definitions or a Package.
// Generators skip element kinds they do not know.
type Element interface {
	ElementName() string
}

// Type is an Element that names a type: *Entity, *DataType or *Enum.
type Type interface {
	Element
	TypeName() string
}

// Definitions is the root of one model. Source is the file it was loaded from, if any.
type Definitions struct {
	Source   string
	Elements []Element
}

// Package groups elements under a dotted name segment such as "foo" or "foo.bar".
type Package struct {
	Name     string
	Elements []Element
	Pos      Position
}

func (p *Package) ElementName() string { return p.Name }

// Entity is a record type with optional single inheritance.
type Entity struct {
	Name      string
	SuperType *Ref
	Features  []*Feature
	Pos       Position
}

func (e *Entity) ElementName() string { return e.Name }
func (e *Entity) TypeName() string    { return e.Name }

// Super returns the resolved supertype, or nil when there is none or it did not resolve
// to an entity.
func (e *Entity) Super() *Entity {
	if e.SuperType == nil {
		return nil
	}
	super, _ := e.SuperType.Target.(*Entity)
	return super
}

// Feature is a named, typed field of an Entity.
type Feature struct {
	Name        string
	Type        Ref
	Many        bool
	NonNullable bool
	Pos         Position
}

// DataType is either an opaque named type (no members) or a union of other types.
type DataType struct {
	Name    string
	Members []Ref
	// Primitive is derived from Name when the DataType is constructed.
	Primitive Primitive
	Pos       Position
}

// NewDataType builds a DataType and classifies its name.
func NewDataType(name string, members ...Ref) *DataType {
	return &DataType{
		Name:      name,
		Members:   members,
		Primitive: ClassifyPrimitive(name),
	}
}

func (d *DataType) ElementName() string { return d.Name }
func (d *DataType) TypeName() string    { return d.Name }

// IsUnion reports whether the DataType lists union members.
func (d *DataType) IsUnion() bool { return len(d.Members) > 0 }

// Enum is a closed set of named literals.
type Enum struct {
	Name     string
	Literals []*EnumLiteral
	Pos      Position
}

func (e *Enum) ElementName() string { return e.Name }
func (e *Enum) TypeName() string    { return e.Name }

// LiteralNames returns the literal names in declaration order.
func (e *Enum) LiteralNames() []string {
	names := make([]string, 0, len(e.Literals))
	for _, lit := range e.Literals {
		names = append(names, lit.Name)
	}
	return names
}

// EnumLiteral is one value of an Enum.
type EnumLiteral struct {
	Name string
	Pos  Position
}

// Ref is a cross-reference to a Type. Text is the name as written in the source;
// Target is nil when the reference did not resolve.
type Ref struct {
	Text   string
	Target Type
	Pos    Position
}

// NewRef returns an unresolved reference.
func NewRef(text string) Ref {
	return Ref{Text: text}
}

// RefTo returns a reference already resolved to t.
func RefTo(t Type) Ref {
	return Ref{Text: t.TypeName(), Target: t}
}

// Resolved reports whether the reference has a target.
func (r Ref) Resolved() bool { return r.Target != nil }

// Name is the target's name when resolved, otherwise the text as written.
func (r Ref) Name() string {
	if r.Target != nil {
		return r.Target.TypeName()
	}
	return r.Text
}

// Union returns the target as a union DataType, or nil.
func (r Ref) Union() *DataType {
	dt, ok := r.Target.(*DataType)
	if !ok || !dt.IsUnion() {
		return nil
	}
	return dt
}
