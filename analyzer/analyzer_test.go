package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/stubgen/errors"
	"github.com/teranos/stubgen/graph"
)

func fixturePackage() *graph.Package {
	return &graph.Package{
		Name: "aws_sdk_example",
		Modules: map[string]*graph.Module{
			"client": {
				Name: "client",
				Path: "aws_sdk_example.client",
				Members: []graph.Member{
					&graph.Class{
						Name: "ExampleClient",
						Path: "aws_sdk_example.client.ExampleClient",
						Members: []graph.Member{
							&graph.Function{Name: "__init__", IsConstructor: true},
							operation("converse", nameExpr("ConverseInput"),
								nameExpr("ConverseOperationOutput")),
						},
					},
				},
			},
			"config": {
				Name: "config",
				Path: "aws_sdk_example.config",
				Members: []graph.Member{
					&graph.Class{Name: "Config", Path: "aws_sdk_example.config.Config"},
					&graph.Attribute{
						Name:  "Plugin",
						Path:  "aws_sdk_example.config.Plugin",
						Value: nameExpr("Callable"),
					},
				},
			},
			"models": {
				Name: "models",
				Path: "aws_sdk_example.models",
				Members: []graph.Member{
					modelClass("ConverseInput"),
					modelClass("ConverseOperationOutput"),
					modelClass("Standalone"),
					modelClass("Color", "StrEnum"),
					modelClass("ThrottledError", "ServiceError"),
				},
			},
		},
	}
}

func TestAnalyzeClient(t *testing.T) {
	info, err := AnalyzeClient(fixturePackage())
	require.NoError(t, err)

	assert.Equal(t, "ExampleClient", info.Name)
	assert.Equal(t, "aws_sdk_example.client.ExampleClient", info.ModulePath)
	assert.Equal(t, "aws_sdk_example", info.PackageName)
	assert.Equal(t, "Config", info.Config.Name)
	assert.Equal(t, "aws_sdk_example.config.Plugin", info.Plugin.ModulePath)

	require.Len(t, info.Operations, 1)
	assert.Equal(t, "converse", info.Operations[0].Name)

	// ConverseInput and ConverseOperationOutput are deduplicated away.
	require.Len(t, info.Models.Structures, 1)
	assert.Equal(t, "Standalone", info.Models.Structures[0].Name)
	assert.Len(t, info.Models.Enums, 1)
	assert.Len(t, info.Models.Errors, 1)
}

func TestAnalyzeClientMissingModules(t *testing.T) {
	pkg := fixturePackage()
	delete(pkg.Modules, "config")
	delete(pkg.Modules, "models")

	_, err := AnalyzeClient(pkg)
	require.Error(t, err)
	assert.True(t, errors.IsDiscoveryError(err))
	assert.Contains(t, err.Error(), "config, models")
}

func TestAnalyzeClientNoClientClass(t *testing.T) {
	pkg := fixturePackage()
	pkg.Modules["client"].Members = []graph.Member{
		&graph.Class{Name: "NotMatching", Path: "aws_sdk_example.client.NotMatching"},
	}

	_, err := AnalyzeClient(pkg)
	require.Error(t, err)
	assert.True(t, errors.IsDiscoveryError(err))
}

func TestAnalyzeClientMissingConfigOrPlugin(t *testing.T) {
	pkg := fixturePackage()
	pkg.Modules["config"].Members = pkg.Modules["config"].Members[:1] // drop Plugin

	_, err := AnalyzeClient(pkg)
	require.Error(t, err)
	assert.True(t, errors.IsDiscoveryError(err))
	assert.Contains(t, err.Error(), "Config or Plugin")
}

func TestAnalyzeClientPropagatesUnionResolution(t *testing.T) {
	pkg := fixturePackage()
	models := pkg.Modules["models"]
	models.Members = append(models.Members, unionAttr("Event", "Ghost"))

	_, err := AnalyzeClient(pkg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnionResolution))
}
