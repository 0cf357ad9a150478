// Package analyzer turns the module graph of a generated client package into
// a ClientInfo snapshot: operations with their stream shapes, and models
// classified into structures, unions, enums, and errors. The snapshot is
// computed once per generation run and never mutated afterward.
package analyzer

// StreamKind classifies an operation's output shape.
type StreamKind int

const (
	// StreamNone is a plain request/response operation.
	StreamNone StreamKind = iota
	// StreamInput carries client-to-server events.
	StreamInput
	// StreamOutput carries server-to-client events.
	StreamOutput
	// StreamDuplex carries events in both directions.
	StreamDuplex
)

// streamWrapperNames maps recognized stream-wrapper return type names to
// their stream kinds.
var streamWrapperNames = map[string]StreamKind{
	"InputEventStream":  StreamInput,
	"OutputEventStream": StreamOutput,
	"DuplexEventStream": StreamDuplex,
}

// String returns the stream wrapper type name, or "None".
func (k StreamKind) String() string {
	switch k {
	case StreamInput:
		return "InputEventStream"
	case StreamOutput:
		return "OutputEventStream"
	case StreamDuplex:
		return "DuplexEventStream"
	default:
		return "None"
	}
}

// Description returns the documentation phrase for a streaming kind.
func (k StreamKind) Description() string {
	switch k {
	case StreamInput:
		return "an `InputEventStream` for client-to-server streaming"
	case StreamOutput:
		return "an `OutputEventStream` for server-to-client streaming"
	case StreamDuplex:
		return "a `DuplexEventStream` for bidirectional streaming"
	default:
		return ""
	}
}

// eventArity returns how many generic type arguments the stream wrapper takes.
func (k StreamKind) eventArity() int {
	if k == StreamDuplex {
		return 2
	}
	return 1
}

// TypeInfo identifies one documented type: its name and the fully qualified
// path of its declaration.
type TypeInfo struct {
	Name       string
	ModulePath string
}

// UnionInfo describes a union type alias and its resolved member types, in
// declared order.
type UnionInfo struct {
	Name       string
	ModulePath string
	Members    []TypeInfo
}

// OperationInfo describes one client operation. EventInputType and
// EventOutputType are set exactly when StreamKind requires them; for
// streaming operations Output is the type of the stream's terminal
// (non-event) argument.
type OperationInfo struct {
	Name            string
	ModulePath      string
	Input           TypeInfo
	Output          TypeInfo
	StreamKind      StreamKind
	EventInputType  string
	EventOutputType string
}

// ModelsInfo groups every exported model-module member by classification.
// Order within each list follows declaration order; structures are filtered
// by deduplication before rendering.
type ModelsInfo struct {
	Structures []TypeInfo
	Unions     []UnionInfo
	Enums      []TypeInfo
	Errors     []TypeInfo
}

// ClientInfo is the complete, immutable result of analyzing one client
// package.
type ClientInfo struct {
	Name        string
	ModulePath  string
	PackageName string
	Config      TypeInfo
	Plugin      TypeInfo
	Operations  []OperationInfo
	Models      ModelsInfo
}
