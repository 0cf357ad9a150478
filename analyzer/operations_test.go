package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/stubgen/errors"
	"github.com/teranos/stubgen/graph"
)

func nameExpr(name string) *graph.ExprName {
	return &graph.ExprName{Name: name, Path: "aws_sdk_example.models." + name}
}

func operation(name string, input graph.Expr, returns graph.Expr) *graph.Function {
	return &graph.Function{
		Name:       name,
		Path:       "aws_sdk_example.client.ExampleClient." + name,
		Parameters: []graph.Parameter{{Name: "input", Annotation: input}},
		Returns:    returns,
	}
}

func streamReturn(wrapper string, args ...graph.Expr) *graph.ExprSubscript {
	sub := &graph.ExprSubscript{
		Left: &graph.ExprName{Name: wrapper, Path: "smithy.eventstream." + wrapper},
	}
	if len(args) == 1 {
		sub.Slice = args[0]
	} else {
		sub.Slice = &graph.ExprTuple{Elements: args}
	}
	return sub
}

func TestAnalyzeOperationPlain(t *testing.T) {
	op := operation("converse", nameExpr("ConverseInput"), nameExpr("ConverseOperationOutput"))

	info, err := analyzeOperation(op)
	require.NoError(t, err)

	assert.Equal(t, "converse", info.Name)
	assert.Equal(t, "ConverseInput", info.Input.Name)
	assert.Equal(t, "aws_sdk_example.models.ConverseInput", info.Input.ModulePath)
	assert.Equal(t, "ConverseOperationOutput", info.Output.Name)
	assert.Equal(t, StreamNone, info.StreamKind)
	assert.Empty(t, info.EventInputType)
	assert.Empty(t, info.EventOutputType)
}

func TestAnalyzeOperationOutputStream(t *testing.T) {
	op := operation("stream_results", nameExpr("StreamInput"),
		streamReturn("OutputEventStream", nameExpr("ResultStream")))

	info, err := analyzeOperation(op)
	require.NoError(t, err)

	assert.Equal(t, StreamOutput, info.StreamKind)
	assert.Empty(t, info.EventInputType)
	assert.Equal(t, "ResultStream", info.EventOutputType)
	// Single-argument streams: the event type doubles as the terminal output.
	assert.Equal(t, "ResultStream", info.Output.Name)
}

func TestAnalyzeOperationInputStream(t *testing.T) {
	op := operation("send_events", nameExpr("SendInput"),
		streamReturn("InputEventStream", nameExpr("AudioChunk")))

	info, err := analyzeOperation(op)
	require.NoError(t, err)

	assert.Equal(t, StreamInput, info.StreamKind)
	assert.Equal(t, "AudioChunk", info.EventInputType)
	assert.Empty(t, info.EventOutputType)
	assert.Equal(t, "AudioChunk", info.Output.Name)
}

func TestAnalyzeOperationDuplexStream(t *testing.T) {
	op := operation("invoke_model_with_bidirectional_stream", nameExpr("InvokeInput"),
		streamReturn("DuplexEventStream",
			nameExpr("BidirectionalInputPayloadPart"),
			nameExpr("InvokeModelWithBidirectionalStreamOperationOutput")))

	info, err := analyzeOperation(op)
	require.NoError(t, err)

	assert.Equal(t, StreamDuplex, info.StreamKind)
	assert.Equal(t, "BidirectionalInputPayloadPart", info.EventInputType)
	assert.Equal(t, "InvokeModelWithBidirectionalStreamOperationOutput", info.EventOutputType)
	// The last argument is also the terminal output type.
	assert.Equal(t, "InvokeModelWithBidirectionalStreamOperationOutput", info.Output.Name)
	assert.Equal(t,
		"aws_sdk_example.models.InvokeModelWithBidirectionalStreamOperationOutput",
		info.Output.ModulePath)
}

func TestAnalyzeOperationMissingInputAnnotation(t *testing.T) {
	op := &graph.Function{
		Name:       "broken",
		Parameters: []graph.Parameter{{Name: "input"}},
		Returns:    nameExpr("Output"),
	}

	_, err := analyzeOperation(op)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAnnotation))
}

func TestAnalyzeOperationMissingInputParameter(t *testing.T) {
	op := &graph.Function{Name: "broken", Returns: nameExpr("Output")}

	_, err := analyzeOperation(op)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAnnotation))
}

func TestAnalyzeOperationMissingReturn(t *testing.T) {
	op := &graph.Function{
		Name:       "broken",
		Parameters: []graph.Parameter{{Name: "input", Annotation: nameExpr("Input")}},
	}

	_, err := analyzeOperation(op)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAnnotation))
}

func TestAnalyzeOperationStreamWithoutSubscript(t *testing.T) {
	// Return type names a stream wrapper but is not a generic subscript.
	op := operation("broken", nameExpr("Input"),
		&graph.ExprName{Name: "OutputEventStream", Path: "smithy.eventstream.OutputEventStream"})

	_, err := analyzeOperation(op)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSubscript))
}

func TestAnalyzeOperationStreamRawSlice(t *testing.T) {
	op := operation("broken", nameExpr("Input"), &graph.ExprSubscript{
		Left:     &graph.ExprName{Name: "OutputEventStream"},
		RawSlice: "ResultStream",
	})

	_, err := analyzeOperation(op)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSubscript))
}

func TestAnalyzeOperationDuplexWrongArity(t *testing.T) {
	op := operation("broken", nameExpr("Input"),
		streamReturn("DuplexEventStream", nameExpr("OnlyOne")))

	_, err := analyzeOperation(op)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSubscript))
	assert.Contains(t, err.Error(), "expected 2 type arguments")
}

func TestAnalyzeOperationOutputWrongArity(t *testing.T) {
	op := operation("broken", nameExpr("Input"),
		streamReturn("OutputEventStream", nameExpr("A"), nameExpr("B")))

	_, err := analyzeOperation(op)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSubscript))
}

func TestExtractOperationsSkipsPrivateAndConstructor(t *testing.T) {
	client := &graph.Class{
		Name: "ExampleClient",
		Members: []graph.Member{
			&graph.Function{Name: "__init__", IsConstructor: true},
			&graph.Function{Name: "_helper", IsPrivate: true},
			operation("converse", nameExpr("ConverseInput"), nameExpr("ConverseOperationOutput")),
		},
	}

	ops, err := extractOperations(client)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, "converse", ops[0].Name)
}

func TestStreamKindInvariants(t *testing.T) {
	// stream_kind = None <=> both event types unset.
	plain := operation("a", nameExpr("In"), nameExpr("Out"))
	info, err := analyzeOperation(plain)
	require.NoError(t, err)
	assert.True(t, (info.StreamKind == StreamNone) ==
		(info.EventInputType == "" && info.EventOutputType == ""))

	duplex := operation("b", nameExpr("In"),
		streamReturn("DuplexEventStream", nameExpr("EvIn"), nameExpr("EvOut")))
	info, err = analyzeOperation(duplex)
	require.NoError(t, err)
	assert.NotEmpty(t, info.EventInputType)
	assert.NotEmpty(t, info.EventOutputType)
}
