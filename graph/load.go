package graph

import (
	"encoding/json"
	"os"

	"github.com/teranos/stubgen/errors"
)

// Load reads a module graph manifest from disk. Failures are discovery
// errors: a client without a loadable graph cannot be documented.
func Load(path string) (*Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDiscovery, err.Error())
	}
	pkg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "module graph %s", path)
	}
	return pkg, nil
}

// Parse decodes a module graph manifest document.
func Parse(data []byte) (*Package, error) {
	var doc jsonPackage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrDiscovery, err.Error())
	}
	if doc.Name == "" {
		return nil, errors.NewDiscoveryError("module graph has no package name")
	}

	pkg := &Package{
		Name:    doc.Name,
		Modules: make(map[string]*Module, len(doc.Modules)),
	}
	for name, mod := range doc.Modules {
		module, err := mod.toModule(name)
		if err != nil {
			return nil, errors.Wrapf(err, "module %q", name)
		}
		pkg.Modules[name] = module
	}
	return pkg, nil
}

type jsonPackage struct {
	Name    string                `json:"name"`
	Modules map[string]jsonModule `json:"modules"`
}

type jsonModule struct {
	Path    string       `json:"path"`
	Members []jsonMember `json:"members"`
}

func (m jsonModule) toModule(name string) (*Module, error) {
	members, err := toMembers(m.Members)
	if err != nil {
		return nil, err
	}
	return &Module{Name: name, Path: m.Path, Members: members}, nil
}

// jsonMember is the envelope for one module or class member. Kind selects
// which of the remaining fields apply.
type jsonMember struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	Path string `json:"path"`

	// class
	Bases   []string     `json:"bases,omitempty"`
	Members []jsonMember `json:"members,omitempty"`

	// function
	Parameters    []jsonParameter `json:"parameters,omitempty"`
	Returns       *jsonExpr       `json:"returns,omitempty"`
	IsConstructor bool            `json:"is_constructor,omitempty"`

	// attribute
	Value *jsonExpr `json:"value,omitempty"`

	IsImported bool `json:"is_imported,omitempty"`
	IsPrivate  bool `json:"is_private,omitempty"`
}

type jsonParameter struct {
	Name       string    `json:"name"`
	Annotation *jsonExpr `json:"annotation,omitempty"`
}

func toMembers(raw []jsonMember) ([]Member, error) {
	members := make([]Member, 0, len(raw))
	for _, jm := range raw {
		member, err := jm.toMember()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	return members, nil
}

func (jm jsonMember) toMember() (Member, error) {
	switch jm.Kind {
	case "class":
		nested, err := toMembers(jm.Members)
		if err != nil {
			return nil, errors.Wrapf(err, "class %q", jm.Name)
		}
		return &Class{
			Name:       jm.Name,
			Path:       jm.Path,
			Bases:      jm.Bases,
			Members:    nested,
			IsImported: jm.IsImported,
			IsPrivate:  jm.IsPrivate,
		}, nil

	case "function":
		params := make([]Parameter, 0, len(jm.Parameters))
		for _, jp := range jm.Parameters {
			annotation, err := jp.Annotation.toExpr()
			if err != nil {
				return nil, errors.Wrapf(err, "function %q parameter %q", jm.Name, jp.Name)
			}
			params = append(params, Parameter{Name: jp.Name, Annotation: annotation})
		}
		returns, err := jm.Returns.toExpr()
		if err != nil {
			return nil, errors.Wrapf(err, "function %q return type", jm.Name)
		}
		return &Function{
			Name:          jm.Name,
			Path:          jm.Path,
			Parameters:    params,
			Returns:       returns,
			IsPrivate:     jm.IsPrivate,
			IsConstructor: jm.IsConstructor,
		}, nil

	case "attribute":
		value, err := jm.Value.toExpr()
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %q", jm.Name)
		}
		return &Attribute{
			Name:       jm.Name,
			Path:       jm.Path,
			Value:      value,
			IsImported: jm.IsImported,
			IsPrivate:  jm.IsPrivate,
		}, nil

	default:
		return nil, errors.NewDiscoveryError("unknown member kind %q (name %q)", jm.Kind, jm.Name)
	}
}

// jsonExpr mirrors the closed expression variant on the wire. Kind selects
// the shape; unknown kinds are rejected rather than coerced.
type jsonExpr struct {
	Kind string `json:"kind"`

	// name
	Name string `json:"name,omitempty"`
	Path string `json:"path,omitempty"`

	// subscript, binop
	Left     *jsonExpr `json:"left,omitempty"`
	Slice    *jsonExpr `json:"slice,omitempty"`
	RawSlice string    `json:"raw_slice,omitempty"`
	Op       string    `json:"op,omitempty"`
	Right    *jsonExpr `json:"right,omitempty"`

	// tuple
	Elements []*jsonExpr `json:"elements,omitempty"`
}

func (je *jsonExpr) toExpr() (Expr, error) {
	if je == nil {
		return nil, nil
	}
	switch je.Kind {
	case "name":
		if je.Name == "" {
			return nil, errors.NewDiscoveryError("name expression without a name")
		}
		return &ExprName{Name: je.Name, Path: je.Path}, nil

	case "subscript":
		left, err := je.Left.toExpr()
		if err != nil {
			return nil, err
		}
		if left == nil {
			return nil, errors.NewDiscoveryError("subscript expression without a left side")
		}
		slice, err := je.Slice.toExpr()
		if err != nil {
			return nil, err
		}
		return &ExprSubscript{Left: left, Slice: slice, RawSlice: je.RawSlice}, nil

	case "binop":
		left, err := je.Left.toExpr()
		if err != nil {
			return nil, err
		}
		right, err := je.Right.toExpr()
		if err != nil {
			return nil, err
		}
		if left == nil || right == nil {
			return nil, errors.NewDiscoveryError("binop expression missing an operand")
		}
		op := je.Op
		if op == "" {
			op = "|"
		}
		return &ExprBinOp{Left: left, Op: op, Right: right}, nil

	case "tuple":
		elements := make([]Expr, 0, len(je.Elements))
		for _, el := range je.Elements {
			expr, err := el.toExpr()
			if err != nil {
				return nil, err
			}
			elements = append(elements, expr)
		}
		return &ExprTuple{Elements: elements}, nil

	default:
		return nil, errors.NewDiscoveryError("unknown expression kind %q", je.Kind)
	}
}
