package typegen

import (
	"github.com/teranos/ddgen/logger"
	"github.com/teranos/ddgen/model"
)

// Analysis holds the type relationships derived from one model.
// It is built once per run and read by the generators.
type Analysis struct {
	// Implements maps a type to the union DataTypes that list it as a member,
	// in model order
	Implements map[model.Type][]*model.DataType

	// Aliases maps a union DataType to its members that are aliasable primitives
	// (boolean, int, long, float, double, number, string, object), in member order
	Aliases map[*model.DataType][]*model.DataType
}

// Analyze walks every DataType of the model once and builds the Implements and
// Aliases maps. Unresolved union members are skipped.
func Analyze(defs *model.Definitions) *Analysis {
	a := &Analysis{
		Implements: make(map[model.Type][]*model.DataType),
		Aliases:    make(map[*model.DataType][]*model.DataType),
	}

	for _, dt := range model.DataTypes(defs) {
		for _, member := range dt.Members {
			if member.Target == nil {
				continue
			}
			if !containsUnion(a.Implements[member.Target], dt) {
				a.Implements[member.Target] = append(a.Implements[member.Target], dt)
			}

			alias, ok := member.Target.(*model.DataType)
			if ok && alias.Primitive.Aliasable() && !containsUnion(a.Aliases[dt], alias) {
				a.Aliases[dt] = append(a.Aliases[dt], alias)
			}
		}
	}

	logger.Named("typegen").Debugw("Analyzed model",
		"implementing_types", len(a.Implements),
		"aliased_unions", len(a.Aliases))
	return a
}

func containsUnion(list []*model.DataType, dt *model.DataType) bool {
	for _, existing := range list {
		if existing == dt {
			return true
		}
	}
	return false
}

// ImplementsOf returns the unions t is a member of
func (a *Analysis) ImplementsOf(t model.Type) []*model.DataType {
	if a == nil {
		return nil
	}
	return a.Implements[t]
}

// AliasesOf returns the alias members of a union, or nil for anything else
func (a *Analysis) AliasesOf(t model.Type) []*model.DataType {
	dt, ok := t.(*model.DataType)
	if a == nil || !ok {
		return nil
	}
	return a.Aliases[dt]
}

// Subtypes maps every entity to the entities whose supertype chain reaches it,
// in model order. The chain walk stops when it revisits an entity, so cyclic
// hierarchies terminate; an entity is never its own subtype.
func Subtypes(defs *model.Definitions) map[*model.Entity][]*model.Entity {
	subtypes := make(map[*model.Entity][]*model.Entity)

	for _, origin := range model.Entities(defs) {
		visited := map[*model.Entity]bool{origin: true}
		for super := origin.Super(); super != nil && !visited[super]; super = super.Super() {
			visited[super] = true
			subtypes[super] = append(subtypes[super], origin)
		}
	}
	return subtypes
}
