package model

import "strings"

// WalkFunc is called for every element in pre-order. path holds the package name
// segments enclosing el; for a *Package it is the path of its parent.
type WalkFunc func(path []string, el Element) error

// Walk visits every element of defs depth-first in declaration order.
// A non-nil error from fn stops the walk and is returned.
func Walk(defs *Definitions, fn WalkFunc) error {
	if defs == nil {
		return nil
	}
	return walkElements(nil, defs.Elements, fn)
}

func walkElements(path []string, elements []Element, fn WalkFunc) error {
	for _, el := range elements {
		if err := fn(path, el); err != nil {
			return err
		}
		if pkg, ok := el.(*Package); ok {
			if err := walkElements(PackagePath(path, pkg.Name), pkg.Elements, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// PackagePath appends the segments of a dotted package name to parent without
// modifying parent.
func PackagePath(parent []string, name string) []string {
	path := make([]string, 0, len(parent)+1)
	path = append(path, parent...)
	for _, seg := range strings.Split(name, ".") {
		if seg != "" {
			path = append(path, seg)
		}
	}
	return path
}

// Flatten returns every Type of the model in pre-order, packages expanded in place.
func Flatten(defs *Definitions) []Type {
	var types []Type
	_ = Walk(defs, func(_ []string, el Element) error {
		if t, ok := el.(Type); ok {
			types = append(types, t)
		}
		return nil
	})
	return types
}

// Entities returns every Entity of the model in pre-order.
func Entities(defs *Definitions) []*Entity {
	var entities []*Entity
	for _, t := range Flatten(defs) {
		if e, ok := t.(*Entity); ok {
			entities = append(entities, e)
		}
	}
	return entities
}

// DataTypes returns every DataType of the model in pre-order.
func DataTypes(defs *Definitions) []*DataType {
	var dataTypes []*DataType
	for _, t := range Flatten(defs) {
		if dt, ok := t.(*DataType); ok {
			dataTypes = append(dataTypes, dt)
		}
	}
	return dataTypes
}
