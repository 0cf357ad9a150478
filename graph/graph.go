// Package graph models the module graph of one generated client package:
// modules, classes, functions, and attributes, each with canonical paths and
// structured type expressions. SDK code generators export this graph as a
// JSON manifest alongside the client source; Load reads it back.
package graph

// Package is the root of a client package's module graph.
type Package struct {
	Name    string
	Modules map[string]*Module
}

// Module returns the named submodule, or nil if the package does not have it.
func (p *Package) Module(name string) *Module {
	return p.Modules[name]
}

// Member is a named entity declared in a module or class: a Class, Function,
// or Attribute.
type Member interface {
	MemberName() string
	MemberPath() string
}

// Module is one submodule of a client package. Members preserve declaration
// order; classification output therefore follows source order.
type Module struct {
	Name    string
	Path    string
	Members []Member
}

// Member returns the module member with the given name, or nil.
func (m *Module) Member(name string) Member {
	for _, member := range m.Members {
		if member.MemberName() == name {
			return member
		}
	}
	return nil
}

// Classes returns the module's class members in declaration order.
func (m *Module) Classes() []*Class {
	var classes []*Class
	for _, member := range m.Members {
		if cls, ok := member.(*Class); ok {
			classes = append(classes, cls)
		}
	}
	return classes
}

// Class is a class declaration with its base-class names and nested members.
type Class struct {
	Name       string
	Path       string
	Bases      []string
	Members    []Member
	IsImported bool
	IsPrivate  bool
}

func (c *Class) MemberName() string { return c.Name }
func (c *Class) MemberPath() string { return c.Path }

// Functions returns the class's function members in declaration order.
func (c *Class) Functions() []*Function {
	var functions []*Function
	for _, member := range c.Members {
		if fn, ok := member.(*Function); ok {
			functions = append(functions, fn)
		}
	}
	return functions
}

// HasBase reports whether any of the class's declared base names is in names.
func (c *Class) HasBase(names ...string) bool {
	for _, base := range c.Bases {
		for _, name := range names {
			if base == name {
				return true
			}
		}
	}
	return false
}

// Function is a function or method declaration. Annotations are nil when the
// source carried none.
type Function struct {
	Name          string
	Path          string
	Parameters    []Parameter
	Returns       Expr
	IsPrivate     bool
	IsConstructor bool
}

func (f *Function) MemberName() string { return f.Name }
func (f *Function) MemberPath() string { return f.Path }

// Parameter returns the parameter with the given name, or nil.
func (f *Function) Parameter(name string) *Parameter {
	for i := range f.Parameters {
		if f.Parameters[i].Name == name {
			return &f.Parameters[i]
		}
	}
	return nil
}

// Parameter is one function parameter with its optional type annotation.
type Parameter struct {
	Name       string
	Annotation Expr
}

// Attribute is a module-level assignment, e.g. a type alias.
type Attribute struct {
	Name       string
	Path       string
	Value      Expr
	IsImported bool
	IsPrivate  bool
}

func (a *Attribute) MemberName() string { return a.Name }
func (a *Attribute) MemberPath() string { return a.Path }
