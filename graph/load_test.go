package graph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/stubgen/errors"
)

const sampleManifest = `{
  "name": "aws_sdk_example",
  "modules": {
    "client": {
      "path": "aws_sdk_example.client",
      "members": [
        {
          "kind": "class",
          "name": "ExampleClient",
          "path": "aws_sdk_example.client.ExampleClient",
          "bases": [],
          "members": [
            {
              "kind": "function",
              "name": "__init__",
              "path": "aws_sdk_example.client.ExampleClient.__init__",
              "is_constructor": true
            },
            {
              "kind": "function",
              "name": "get_thing",
              "path": "aws_sdk_example.client.ExampleClient.get_thing",
              "parameters": [
                {
                  "name": "input",
                  "annotation": {"kind": "name", "name": "GetThingInput", "path": "aws_sdk_example.models.GetThingInput"}
                }
              ],
              "returns": {"kind": "name", "name": "GetThingOutput", "path": "aws_sdk_example.models.GetThingOutput"}
            }
          ]
        }
      ]
    },
    "models": {
      "path": "aws_sdk_example.models",
      "members": [
        {
          "kind": "attribute",
          "name": "Thing",
          "path": "aws_sdk_example.models.Thing",
          "value": {
            "kind": "binop",
            "left": {"kind": "name", "name": "ThingA", "path": "aws_sdk_example.models.ThingA"},
            "op": "|",
            "right": {"kind": "name", "name": "ThingB", "path": "aws_sdk_example.models.ThingB"}
          }
        },
        {"kind": "class", "name": "ThingA", "path": "aws_sdk_example.models.ThingA", "bases": []},
        {"kind": "class", "name": "ThingB", "path": "aws_sdk_example.models.ThingB", "bases": []},
        {"kind": "class", "name": "_Internal", "path": "aws_sdk_example.models._Internal", "is_private": true}
      ]
    }
  }
}`

func TestParse(t *testing.T) {
	pkg, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "aws_sdk_example", pkg.Name)
	require.NotNil(t, pkg.Module("client"))
	require.NotNil(t, pkg.Module("models"))
	assert.Nil(t, pkg.Module("config"))

	client := pkg.Module("client")
	classes := client.Classes()
	require.Len(t, classes, 1)
	assert.Equal(t, "ExampleClient", classes[0].Name)

	functions := classes[0].Functions()
	require.Len(t, functions, 2)
	assert.True(t, functions[0].IsConstructor)

	op := functions[1]
	assert.Equal(t, "get_thing", op.Name)
	param := op.Parameter("input")
	require.NotNil(t, param)
	assert.Equal(t, "GetThingInput", param.Annotation.CanonicalName())
	assert.Equal(t, "GetThingOutput", op.Returns.CanonicalName())
}

func TestParsePreservesMemberOrder(t *testing.T) {
	pkg, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	models := pkg.Module("models")
	names := make([]string, 0, len(models.Members))
	for _, m := range models.Members {
		names = append(names, m.MemberName())
	}
	assert.Equal(t, []string{"Thing", "ThingA", "ThingB", "_Internal"}, names)
}

func TestParseMemberLookup(t *testing.T) {
	pkg, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	models := pkg.Module("models")
	member := models.Member("ThingA")
	require.NotNil(t, member)
	assert.Equal(t, "aws_sdk_example.models.ThingA", member.MemberPath())
	assert.Nil(t, models.Member("Missing"))
}

func TestParseUnknownMemberKind(t *testing.T) {
	doc := `{"name": "p", "modules": {"m": {"members": [{"kind": "widget", "name": "X"}]}}}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.True(t, errors.IsDiscoveryError(err))
	assert.Contains(t, err.Error(), "widget")
}

func TestParseUnknownExprKind(t *testing.T) {
	doc := `{"name": "p", "modules": {"m": {"members": [
		{"kind": "attribute", "name": "X", "value": {"kind": "lambda"}}
	]}}}`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.True(t, errors.IsDiscoveryError(err))
}

func TestParseMissingName(t *testing.T) {
	_, err := Parse([]byte(`{"modules": {}}`))
	require.Error(t, err)
	assert.True(t, errors.IsDiscoveryError(err))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "module-graph.json"))
	require.Error(t, err)
	assert.True(t, errors.IsDiscoveryError(err))
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "module-graph.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))

	pkg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "aws_sdk_example", pkg.Name)
}
