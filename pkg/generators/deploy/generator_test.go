package deploy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

func TestGenerate_None(t *testing.T) {
	files, err := NewGenerator().Generate(stack.None, "my-app")
	require.NoError(t, err)
	assert.Nil(t, files)

	files, err = NewGenerator().Generate("", "my-app")
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestGenerate_Vercel(t *testing.T) {
	files, err := NewGenerator().Generate("vercel", "my-app")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "vercel.json", files[0].Path)

	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(files[0].Content), &cfg))
	assert.Equal(t, "nextjs", cfg["framework"])
}

func TestGenerate_Railway(t *testing.T) {
	files, err := NewGenerator().Generate("railway", "my-app")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "railway.toml", files[0].Path)
	assert.Contains(t, files[0].Content, "NIXPACKS")
}

func TestGenerate_Render(t *testing.T) {
	files, err := NewGenerator().Generate("render", "my-app")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "render.yaml", files[0].Path)

	var blueprint struct {
		Services []struct {
			Name string `yaml:"name"`
			Type string `yaml:"type"`
		} `yaml:"services"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(files[0].Content), &blueprint))
	require.Len(t, blueprint.Services, 1)
	assert.Equal(t, "my-app", blueprint.Services[0].Name)
	assert.Equal(t, "web", blueprint.Services[0].Type)
}

func TestGenerate_Docker(t *testing.T) {
	files, err := NewGenerator().Generate("docker", "my-app")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "Dockerfile", files[0].Path)
	assert.Contains(t, files[0].Content, "FROM node:20-alpine")
	assert.Equal(t, "docker-compose.yml", files[1].Path)
	assert.Contains(t, files[1].Content, "my-app:")
}

func TestGenerate_UnknownTarget(t *testing.T) {
	_, err := NewGenerator().Generate("heroku-classic", "my-app")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "heroku-classic")
}
