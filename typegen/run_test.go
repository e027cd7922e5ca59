package typegen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/ddgen/errors"
	"github.com/teranos/ddgen/model"
)

// listGenerator emits one file per type name under a fixed directory
type listGenerator struct {
	err error
}

func (g *listGenerator) Language() string { return "list" }
func (g *listGenerator) Label() string { return "Type lists" }
func (g *listGenerator) Root(Options) string { return "types" }

func (g *listGenerator) Generate(defs *model.Definitions, _ *Analysis, _ Options) ([]Artifact, error) {
	if g.err != nil {
		return nil, g.err
	}
	artifacts := []Artifact{Dir("types")}
	for _, t := range model.Flatten(defs) {
		artifacts = append(artifacts, File("types/"+t.TypeName()+".txt", t.TypeName()+"\n"))
	}
	return artifacts, nil
}

func sampleDefs(source string) *model.Definitions {
	return &model.Definitions{
		Source: source,
		Elements: []model.Element{
			&model.Entity{Name: "A"},
			model.NewDataType("B"),
		},
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"model.ddef", "model"},
		{"dir/sub/shop.yaml", "shop"},
		{"my-model.v2.ddef", "my-model.v2"},
		{"noext", "noext"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputName(tt.source), tt.source)
	}
}

func TestResolvedDestination(t *testing.T) {
	assert.Equal(t, filepath.Join("models", "generated"), Options{Source: "models/shop.ddef"}.ResolvedDestination())
	assert.Equal(t, "out", Options{Source: "models/shop.ddef", Destination: "out"}.ResolvedDestination())
	assert.Equal(t, "generated", DefaultDestination("shop.ddef"))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "shop.ddef")

	result, err := Run(context.Background(), &listGenerator{}, sampleDefs(source), Options{})
	require.NoError(t, err)

	assert.Equal(t, "Type lists", result.Target)
	assert.Equal(t, filepath.Join(dir, "generated", "types"), result.Path)
	assert.Equal(t, []string{"types/A.txt", "types/B.txt"}, result.Files)

	data, err := os.ReadFile(filepath.Join(result.Path, "A.txt"))
	require.NoError(t, err)
	assert.Equal(t, "A\n", string(data))
}

func TestRun_GeneratorError(t *testing.T) {
	_, err := Run(context.Background(), &listGenerator{err: errors.New("boom")}, sampleDefs("x.ddef"), Options{Destination: t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate Type lists")
	assert.Contains(t, err.Error(), "boom")
}

func TestWriteArtifacts(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "out")
	artifacts := []Artifact{
		Dir("a"),
		File("a/one.txt", "1"),
		Dir("a/b"),
		File("a/b/two.txt", "2"),
		File("root.txt", "r"),
	}

	require.NoError(t, WriteArtifacts(context.Background(), dest, artifacts))

	for path, want := range map[string]string{"a/one.txt": "1", "a/b/two.txt": "2", "root.txt": "r"} {
		data, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(path)))
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
	}

	// Directories are idempotent and files are overwritten
	artifacts[1] = File("a/one.txt", "changed")
	require.NoError(t, WriteArtifacts(context.Background(), dest, artifacts))
	data, err := os.ReadFile(filepath.Join(dest, "a", "one.txt"))
	require.NoError(t, err)
	assert.Equal(t, "changed", string(data))
}

func TestWriteArtifacts_FailFast(t *testing.T) {
	dest := t.TempDir()
	// A file where a directory is expected makes the second artifact fail
	require.NoError(t, os.WriteFile(filepath.Join(dest, "blocked"), []byte("x"), 0644))

	err := WriteArtifacts(context.Background(), dest, []Artifact{
		File("first.txt", "1"),
		File("blocked/second.txt", "2"),
		File("third.txt", "3"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write")

	assert.FileExists(t, filepath.Join(dest, "first.txt"))
	assert.NoFileExists(t, filepath.Join(dest, "third.txt"), "writing stops at the first failure")
}

func TestWriteArtifacts_DestinationIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	err := WriteArtifacts(context.Background(), file, []Artifact{File("x.txt", "x")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output directory")
}

func TestWriteArtifacts_Cancelled(t *testing.T) {
	dest := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteArtifacts(ctx, dest, []Artifact{File("x.txt", "x")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.NoFileExists(t, filepath.Join(dest, "x.txt"))
}
