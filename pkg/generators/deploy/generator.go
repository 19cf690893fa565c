// Package deploy synthesizes a deployment descriptor for the chosen
// hosting target. Each target maps to one fixed descriptor; "none"
// produces nothing.
package deploy

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

// Targets lists the recognized hosting selections.
var Targets = []string{"vercel", "railway", "render", "docker"}

// Generator builds hosting descriptors.
type Generator struct{}

// NewGenerator creates a deploy generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// renderService is the service block of a render.yaml blueprint.
type renderService struct {
	Type         string `yaml:"type"`
	Name         string `yaml:"name"`
	Env          string `yaml:"env"`
	BuildCommand string `yaml:"buildCommand"`
	StartCommand string `yaml:"startCommand"`
}

type renderBlueprint struct {
	Services []renderService `yaml:"services"`
}

// Generate returns the descriptor files for a hosting target, or nil for
// "none". Unknown targets also return nil; the caller records a warning.
func (g *Generator) Generate(hosting, projectName string) ([]stack.FileEntry, error) {
	switch hosting {
	case "", stack.None:
		return nil, nil

	case "vercel":
		return []stack.FileEntry{{
			Path: "vercel.json",
			Content: "{\n" +
				"  \"$schema\": \"https://openapi.vercel.sh/vercel.json\",\n" +
				"  \"framework\": \"nextjs\",\n" +
				"  \"regions\": [\"iad1\"]\n" +
				"}\n",
		}}, nil

	case "railway":
		return []stack.FileEntry{{
			Path: "railway.toml",
			Content: "[build]\n" +
				"builder = \"NIXPACKS\"\n\n" +
				"[deploy]\n" +
				"startCommand = \"npm run start\"\n" +
				"restartPolicyType = \"ON_FAILURE\"\n",
		}}, nil

	case "render":
		blueprint := renderBlueprint{Services: []renderService{{
			Type:         "web",
			Name:         projectName,
			Env:          "node",
			BuildCommand: "npm install && npm run build",
			StartCommand: "npm run start",
		}}}
		out, err := yaml.Marshal(blueprint)
		if err != nil {
			return nil, fmt.Errorf("rendering render.yaml: %w", err)
		}
		return []stack.FileEntry{{Path: "render.yaml", Content: string(out)}}, nil

	case "docker":
		return []stack.FileEntry{
			{Path: "Dockerfile", Content: dockerfile()},
			{Path: "docker-compose.yml", Content: compose(projectName)},
		}, nil

	default:
		return nil, fmt.Errorf("unknown hosting target %q", hosting)
	}
}

func dockerfile() string {
	return strings.Join([]string{
		"FROM node:20-alpine AS deps",
		"WORKDIR /app",
		"COPY package.json package-lock.json* ./",
		"RUN npm ci",
		"",
		"FROM node:20-alpine AS build",
		"WORKDIR /app",
		"COPY --from=deps /app/node_modules ./node_modules",
		"COPY . .",
		"RUN npm run build",
		"",
		"FROM node:20-alpine",
		"WORKDIR /app",
		"ENV NODE_ENV=production",
		"COPY --from=build /app ./",
		"EXPOSE 3000",
		"CMD [\"npm\", \"run\", \"start\"]",
		"",
	}, "\n")
}

func compose(projectName string) string {
	return fmt.Sprintf("services:\n"+
		"  %s:\n"+
		"    build: .\n"+
		"    ports:\n"+
		"      - \"3000:3000\"\n"+
		"    env_file:\n"+
		"      - .env.local\n", projectName)
}
