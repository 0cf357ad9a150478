package analyzer

import (
	"strings"

	"github.com/teranos/stubgen/errors"
	"github.com/teranos/stubgen/graph"
)

// Required submodules of every generated client package.
var requiredModules = []string{"client", "config", "models"}

const clientClassSuffix = "Client"

// Base-class marker sets for model classification.
var (
	enumBaseClasses  = []string{"StrEnum", "IntEnum"}
	errorBaseClasses = []string{"ServiceError", "ModeledError"}
)

// AnalyzeClient inspects a loaded module graph and produces the ClientInfo
// snapshot consumed by the document writer. Pure function of the graph; any
// error belongs to the analysis taxonomy and aborts the client run.
func AnalyzeClient(pkg *graph.Package) (*ClientInfo, error) {
	var missing []string
	for _, name := range requiredModules {
		if pkg.Module(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewDiscoveryError(
			"missing required modules in %s: %s", pkg.Name, strings.Join(missing, ", "))
	}

	clientModule := pkg.Module("client")
	configModule := pkg.Module("config")
	modelsModule := pkg.Module("models")

	clientClass := findClassWithSuffix(clientModule, clientClassSuffix)
	if clientClass == nil {
		return nil, errors.NewDiscoveryError(
			"no class ending with %q found in %s.client", clientClassSuffix, pkg.Name)
	}

	configMember := configModule.Member("Config")
	pluginMember := configModule.Member("Plugin")
	if configMember == nil || pluginMember == nil {
		return nil, errors.NewDiscoveryError("missing Config or Plugin in %s.config", pkg.Name)
	}

	operations, err := extractOperations(clientClass)
	if err != nil {
		return nil, err
	}

	models, err := extractModels(modelsModule, operations)
	if err != nil {
		return nil, err
	}

	return &ClientInfo{
		Name:        clientClass.Name,
		ModulePath:  clientClass.Path,
		PackageName: pkg.Name,
		Config:      TypeInfo{Name: configMember.MemberName(), ModulePath: configMember.MemberPath()},
		Plugin:      TypeInfo{Name: pluginMember.MemberName(), ModulePath: pluginMember.MemberPath()},
		Operations:  operations,
		Models:      models,
	}, nil
}

// findClassWithSuffix returns the first class in the module whose name ends
// with suffix, or nil.
func findClassWithSuffix(module *graph.Module, suffix string) *graph.Class {
	for _, cls := range module.Classes() {
		if strings.HasSuffix(cls.Name, suffix) {
			return cls
		}
	}
	return nil
}
