package analyzer

import (
	"strings"

	"github.com/teranos/stubgen/errors"
	"github.com/teranos/stubgen/graph"
)

// memberTag is a model member's classification, assigned exactly once during
// ingestion and pattern-matched everywhere downstream.
type memberTag int

const (
	tagSkip memberTag = iota
	tagUnion
	tagEnum
	tagError
	tagStructure
)

// classify assigns a model-module member its closed classification tag.
// Precedence: union (type alias with union-shaped value) before enum before
// error before structure; imported and private members are skipped entirely.
func classify(member graph.Member) memberTag {
	switch m := member.(type) {
	case *graph.Attribute:
		if m.IsImported || m.IsPrivate {
			return tagSkip
		}
		if isUnionValue(m.Value) {
			return tagUnion
		}
		return tagSkip

	case *graph.Class:
		if m.IsImported || m.IsPrivate {
			return tagSkip
		}
		if m.HasBase(enumBaseClasses...) {
			return tagEnum
		}
		if m.HasBase(errorBaseClasses...) {
			return tagError
		}
		return tagStructure

	default:
		return tagSkip
	}
}

// isUnionValue reports whether a type alias value has a union shape: a
// subscript of the Union generic, or any binary-operator expression.
// The binop check accepts any operator, mirroring how the graph exporter
// records PEP 604 alternation.
func isUnionValue(value graph.Expr) bool {
	switch v := value.(type) {
	case *graph.ExprSubscript:
		left, ok := v.Left.(*graph.ExprName)
		return ok && left.Name == "Union"
	case *graph.ExprBinOp:
		return true
	default:
		return false
	}
}

// extractModels classifies every exported models-module member and filters
// structures already surfaced through an operation or a union.
func extractModels(modelsModule *graph.Module, operations []OperationInfo) (ModelsInfo, error) {
	var models ModelsInfo

	for _, member := range modelsModule.Members {
		switch classify(member) {
		case tagUnion:
			attr := member.(*graph.Attribute)
			unionMembers, err := extractUnionMembers(attr, modelsModule)
			if err != nil {
				return models, err
			}
			models.Unions = append(models.Unions, UnionInfo{
				Name:       attr.Name,
				ModulePath: attr.Path,
				Members:    unionMembers,
			})
		case tagEnum:
			models.Enums = append(models.Enums, memberTypeInfo(member))
		case tagError:
			models.Errors = append(models.Errors, memberTypeInfo(member))
		case tagStructure:
			models.Structures = append(models.Structures, memberTypeInfo(member))
		}
	}

	models.Structures = dedupeStructures(models.Structures, operations, models.Unions)
	return models, nil
}

// extractUnionMembers resolves a union alias's member names against the
// models module. Names come from the alias's literal text: an optional
// Union[...] wrapper is stripped and the remainder split on "|".
func extractUnionMembers(union *graph.Attribute, modelsModule *graph.Module) ([]TypeInfo, error) {
	valueStr := union.Value.String()
	if strings.HasPrefix(valueStr, "Union[") && strings.HasSuffix(valueStr, "]") {
		valueStr = strings.TrimSuffix(strings.TrimPrefix(valueStr, "Union["), "]")
	}

	var members []TypeInfo
	for _, name := range strings.Split(valueStr, "|") {
		name = strings.TrimSpace(name)
		member := modelsModule.Member(name)
		if member == nil {
			return nil, errors.NewUnionResolutionError(
				"union member %q not found in models module", name)
		}
		members = append(members, memberTypeInfo(member))
	}
	return members, nil
}

// dedupeStructures removes structures whose name is already surfaced as an
// operation's input/output or as a union member: those types are documented
// inline on the operation or union page. Equality is by name only.
func dedupeStructures(structures []TypeInfo, operations []OperationInfo, unions []UnionInfo) []TypeInfo {
	surfaced := make(map[string]struct{})
	for _, op := range operations {
		surfaced[op.Input.Name] = struct{}{}
		surfaced[op.Output.Name] = struct{}{}
	}
	for _, union := range unions {
		for _, member := range union.Members {
			surfaced[member.Name] = struct{}{}
		}
	}

	kept := structures[:0]
	for _, structure := range structures {
		if _, ok := surfaced[structure.Name]; !ok {
			kept = append(kept, structure)
		}
	}
	return kept
}

func memberTypeInfo(member graph.Member) TypeInfo {
	return TypeInfo{Name: member.MemberName(), ModulePath: member.MemberPath()}
}
