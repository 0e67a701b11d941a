package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collection-env/internal/types"
)

const sampleGalaxyYAML = `namespace: foo
name: bar
version: 1.2.3
readme: README.md
authors:
  - Dev One <dev@example.com>
description: Sample collection
license:
  - GPL-3.0-or-later
tags:
  - networking
dependencies:
  ansible.netcommon: ">=2.0.0"
repository: https://example.com/foo/bar
build_ignore:
  - .gitignore
`

func TestGalaxyLoad_FullManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaxy.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleGalaxyYAML), 0o644))

	galaxy, err := NewGalaxyFileAdapter().Load(path)
	require.NoError(t, err)

	expected := types.Galaxy{
		Namespace:    "foo",
		Name:         "bar",
		Version:      "1.2.3",
		Readme:       "README.md",
		Authors:      []string{"Dev One <dev@example.com>"},
		Description:  "Sample collection",
		License:      []string{"GPL-3.0-or-later"},
		Tags:         []string{"networking"},
		Dependencies: map[string]string{"ansible.netcommon": ">=2.0.0"},
		Repository:   "https://example.com/foo/bar",
		BuildIgnore:  []string{".gitignore"},
	}
	if diff := cmp.Diff(expected, galaxy); diff != "" {
		t.Fatalf("unexpected manifest (-want +got):\n%s", diff)
	}
}

func TestGalaxyLoad_MissingFile(t *testing.T) {
	_, err := NewGalaxyFileAdapter().Load(filepath.Join(t.TempDir(), "galaxy.yml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestGalaxyLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaxy.yml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: [unclosed"), 0o644))

	_, err := NewGalaxyFileAdapter().Load(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestGalaxyLoad_ExtraKeysIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "galaxy.yml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: foo\nname: bar\nunknown_key: whatever\n"), 0o644))

	galaxy, err := NewGalaxyFileAdapter().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "foo", galaxy.Namespace)
	assert.Equal(t, "bar", galaxy.Name)
}
