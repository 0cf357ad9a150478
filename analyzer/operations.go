package analyzer

import (
	"github.com/teranos/stubgen/errors"
	"github.com/teranos/stubgen/graph"
)

// extractOperations analyzes every public, non-constructor method of the
// client class.
func extractOperations(clientClass *graph.Class) ([]OperationInfo, error) {
	var operations []OperationInfo
	for _, fn := range clientClass.Functions() {
		if fn.IsPrivate || fn.IsConstructor {
			continue
		}
		op, err := analyzeOperation(fn)
		if err != nil {
			return nil, err
		}
		operations = append(operations, op)
	}
	return operations, nil
}

// analyzeOperation resolves one operation's input, output, and event-stream
// decomposition.
func analyzeOperation(op *graph.Function) (OperationInfo, error) {
	info := OperationInfo{Name: op.Name, ModulePath: op.Path}

	inputParam := op.Parameter("input")
	if inputParam == nil || inputParam.Annotation == nil {
		return info, errors.NewAnnotationError(
			"%q input annotation: expected a typed expression", op.Name)
	}
	info.Input = TypeInfo{
		Name:       inputParam.Annotation.CanonicalName(),
		ModulePath: inputParam.Annotation.CanonicalPath(),
	}

	returns := op.Returns
	if returns == nil {
		return info, errors.NewAnnotationError(
			"%q return type: expected a typed expression", op.Name)
	}

	kind, streaming := streamWrapperNames[returns.CanonicalName()]
	if !streaming {
		info.Output = TypeInfo{
			Name:       returns.CanonicalName(),
			ModulePath: returns.CanonicalPath(),
		}
		return info, nil
	}

	args, err := subscriptElements(returns, op.Name)
	if err != nil {
		return info, err
	}
	if len(args) != kind.eventArity() {
		return info, errors.NewSubscriptError(
			"%q stream type: expected %d type arguments for %s, got %d",
			op.Name, kind.eventArity(), kind, len(args))
	}

	info.StreamKind = kind
	switch kind {
	case StreamInput:
		info.EventInputType = args[0].CanonicalName()
	case StreamOutput:
		info.EventOutputType = args[0].CanonicalName()
	case StreamDuplex:
		info.EventInputType = args[0].CanonicalName()
		info.EventOutputType = args[1].CanonicalName()
	}

	// The last generic argument always carries the stream's terminal output.
	last := args[len(args)-1]
	info.Output = TypeInfo{Name: last.CanonicalName(), ModulePath: last.CanonicalPath()}
	return info, nil
}

// subscriptElements extracts the type arguments from a generic subscript
// expression like Wrapper[A, B].
func subscriptElements(expr graph.Expr, opName string) ([]graph.Expr, error) {
	sub, ok := expr.(*graph.ExprSubscript)
	if !ok {
		return nil, errors.NewSubscriptError(
			"%q stream type: expected a generic subscript, got %T", opName, expr)
	}
	if sub.Slice == nil {
		return nil, errors.NewSubscriptError(
			"%q stream type: unexpected string slice %q", opName, sub.RawSlice)
	}
	if tuple, ok := sub.Slice.(*graph.ExprTuple); ok {
		return tuple.Elements, nil
	}
	return []graph.Expr{sub.Slice}, nil
}
