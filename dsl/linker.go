package dsl

import (
	"fmt"
	"strings"

	"github.com/teranos/ddgen/model"
)

// index maps qualified type names to the first type declared under that name
// across all documents being linked together.
type index map[string]model.Type

func qualify(path []string, name string) string {
	if len(path) == 0 {
		return name
	}
	return strings.Join(path, ".") + "." + name
}

func buildIndex(docs []*Document) index {
	idx := make(index)
	for _, doc := range docs {
		_ = model.Walk(doc.Definitions, func(path []string, el model.Element) error {
			t, ok := el.(model.Type)
			if !ok {
				return nil
			}
			qn := qualify(path, t.TypeName())
			if _, exists := idx[qn]; exists {
				doc.addDiagnostic(newWarning(KindSemantic, positionOf(t),
					fmt.Sprintf("Duplicate type name '%s'; the first declaration wins.", qn)))
				return nil
			}
			idx[qn] = t
			return nil
		})
	}
	return idx
}

// lookup resolves text from inside the package at path: the innermost
// package scope first, then each enclosing one, then the global scope.
func (idx index) lookup(path []string, text string, accept func(model.Type) bool) model.Type {
	for i := len(path); i >= 0; i-- {
		if t, ok := idx[qualify(path[:i], text)]; ok && accept(t) {
			return t
		}
	}
	return nil
}

func anyType(model.Type) bool { return true }

func entityOnly(t model.Type) bool {
	_, ok := t.(*model.Entity)
	return ok
}

// Link resolves every reference in docs against the types declared in all of
// them. References that cannot be resolved keep a nil Target and are reported
// as warnings on their document.
func Link(docs ...*Document) {
	idx := buildIndex(docs)

	for _, doc := range docs {
		_ = model.Walk(doc.Definitions, func(path []string, el model.Element) error {
			switch t := el.(type) {
			case *model.DataType:
				for i := range t.Members {
					doc.resolve(idx, path, &t.Members[i], "Type", anyType)
				}
			case *model.Entity:
				if t.SuperType != nil {
					doc.resolve(idx, path, t.SuperType, "Entity", entityOnly)
				}
				for _, f := range t.Features {
					doc.resolve(idx, path, &f.Type, "Type", anyType)
				}
			}
			return nil
		})
	}
}

func (d *Document) resolve(idx index, path []string, ref *model.Ref, kind string, accept func(model.Type) bool) {
	if ref.Target != nil {
		return
	}
	ref.Target = idx.lookup(path, ref.Text, accept)
	if ref.Target == nil {
		d.addDiagnostic(newWarning(KindLinking, ref.Pos,
			fmt.Sprintf("Could not resolve reference to %s named '%s'.", kind, ref.Text)))
	}
}

func positionOf(t model.Type) model.Position {
	switch t := t.(type) {
	case *model.Entity:
		return t.Pos
	case *model.DataType:
		return t.Pos
	case *model.Enum:
		return t.Pos
	}
	return model.Position{}
}
