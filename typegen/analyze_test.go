package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/ddgen/model"
)

// fixture builds a small linked model by hand:
//
//	datatype string, number, int, byte
//	entity Person, Company
//	datatype Party = Person | Company
//	datatype Named = Company | Person | Ghost(unresolved)
//	package p { datatype Id = string | number | byte | Person }
//	datatype Wide = int | number | Person | int
type fixture struct {
	defs                   *model.Definitions
	str, num, integer, byt *model.DataType
	person, company        *model.Entity
	party, named, id, wide *model.DataType
}

func newFixture() *fixture {
	f := &fixture{
		str:     model.NewDataType("string"),
		num:     model.NewDataType("number"),
		integer: model.NewDataType("int"),
		byt:     model.NewDataType("byte"),
		person:  &model.Entity{Name: "Person"},
		company: &model.Entity{Name: "Company"},
	}
	f.party = model.NewDataType("Party", model.RefTo(f.person), model.RefTo(f.company))
	f.named = model.NewDataType("Named", model.RefTo(f.company), model.RefTo(f.person), model.NewRef("Ghost"))
	f.id = model.NewDataType("Id", model.RefTo(f.str), model.RefTo(f.num), model.RefTo(f.byt), model.RefTo(f.person))
	f.wide = model.NewDataType("Wide", model.RefTo(f.integer), model.RefTo(f.num), model.RefTo(f.person), model.RefTo(f.integer))

	f.defs = &model.Definitions{Elements: []model.Element{
		f.str, f.num, f.integer, f.byt,
		f.person, f.company,
		f.party, f.named,
		&model.Package{Name: "p", Elements: []model.Element{f.id}},
		f.wide,
	}}
	return f
}

func TestAnalyze_Implements(t *testing.T) {
	f := newFixture()
	a := Analyze(f.defs)

	assert.Equal(t, []*model.DataType{f.party, f.named, f.id, f.wide}, a.ImplementsOf(f.person),
		"unions appear once each, in declaration order")
	assert.Equal(t, []*model.DataType{f.party, f.named}, a.ImplementsOf(f.company))
	assert.Equal(t, []*model.DataType{f.id}, a.ImplementsOf(f.str))
	assert.Equal(t, []*model.DataType{f.wide}, a.ImplementsOf(f.integer))
	assert.Empty(t, a.ImplementsOf(f.party))

	for typ, unions := range a.Implements {
		require.NotNil(t, typ, "unresolved members never become keys")
		seen := map[*model.DataType]bool{}
		for _, u := range unions {
			assert.False(t, seen[u], "%s listed twice for %s", u.Name, typ.TypeName())
			seen[u] = true
		}
	}
}

func TestAnalyze_Aliases(t *testing.T) {
	f := newFixture()
	a := Analyze(f.defs)

	assert.Equal(t, []*model.DataType{f.str, f.num}, a.AliasesOf(f.id), "byte is builtin but not aliasable")
	assert.Equal(t, []*model.DataType{f.integer, f.num}, a.AliasesOf(f.wide), "numeric family members alias individually")
	assert.Empty(t, a.AliasesOf(f.party))
	assert.Empty(t, a.AliasesOf(f.named))
	assert.Empty(t, a.AliasesOf(f.person), "only unions have aliases")
	assert.Empty(t, a.AliasesOf(nil))
}

func TestAnalyze_TagNotName(t *testing.T) {
	// The analyzer trusts the primitive tag set at construction
	retagged := &model.DataType{Name: "string"}
	u := model.NewDataType("U", model.RefTo(retagged))
	a := Analyze(&model.Definitions{Elements: []model.Element{retagged, u}})
	assert.Empty(t, a.AliasesOf(u))
}

func TestAnalysis_Nil(t *testing.T) {
	var a *Analysis
	assert.Nil(t, a.ImplementsOf(&model.Entity{Name: "E"}))
	assert.Nil(t, a.AliasesOf(model.NewDataType("U")))
}

func TestSubtypes(t *testing.T) {
	root := &model.Entity{Name: "Root"}
	mid := &model.Entity{Name: "Mid", SuperType: &model.Ref{Text: "Root", Target: root}}
	leaf := &model.Entity{Name: "Leaf", SuperType: &model.Ref{Text: "Mid", Target: mid}}
	other := &model.Entity{Name: "Other", SuperType: &model.Ref{Text: "Root", Target: root}}
	orphan := &model.Entity{Name: "Orphan", SuperType: &model.Ref{Text: "Missing"}}

	defs := &model.Definitions{Elements: []model.Element{
		root,
		&model.Package{Name: "x", Elements: []model.Element{leaf, mid}},
		other, orphan,
	}}
	subtypes := Subtypes(defs)

	assert.Equal(t, []*model.Entity{leaf, mid, other}, subtypes[root])
	assert.Equal(t, []*model.Entity{leaf}, subtypes[mid])
	assert.Empty(t, subtypes[leaf])
	assert.Empty(t, subtypes[orphan])
	assert.Len(t, subtypes, 2)
}

func TestSubtypes_Cycles(t *testing.T) {
	a := &model.Entity{Name: "A"}
	b := &model.Entity{Name: "B"}
	c := &model.Entity{Name: "C"}
	a.SuperType = &model.Ref{Text: "B", Target: b}
	b.SuperType = &model.Ref{Text: "C", Target: c}
	c.SuperType = &model.Ref{Text: "A", Target: a}
	self := &model.Entity{Name: "Self"}
	self.SuperType = &model.Ref{Text: "Self", Target: self}

	subtypes := Subtypes(&model.Definitions{Elements: []model.Element{a, b, c, self}})

	assert.Equal(t, []*model.Entity{b, c}, subtypes[a])
	assert.Equal(t, []*model.Entity{a, c}, subtypes[b])
	assert.Equal(t, []*model.Entity{a, b}, subtypes[c])
	assert.Empty(t, subtypes[self], "an entity is never its own subtype")
}
