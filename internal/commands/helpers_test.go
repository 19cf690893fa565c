package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoodasCode/ignorethem-sub001/pkg/stack"
)

func TestLoadConfig_ReadsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignorethem.yml"),
		[]byte("templates_dir: ./my-templates\ndefault_hosting: railway\n"), 0644))
	t.Chdir(dir)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "./my-templates", cfg.TemplatesDir)
	assert.Equal(t, "railway", cfg.DefaultHosting)
}

func TestLoadConfig_MissingFileMeansDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.TemplatesDir)
	assert.Empty(t, cfg.DefaultHosting)
}

func TestApplyConfigDefaults_Hosting(t *testing.T) {
	cfg := &Config{DefaultHosting: "railway"}

	sel := stack.DefaultSelections("nextjs")
	applyConfigDefaults(&sel, false, cfg)
	assert.Equal(t, "railway", sel.Hosting)

	// An explicit --hosting flag wins over the config default.
	sel = stack.DefaultSelections("nextjs")
	sel.Hosting = "vercel"
	applyConfigDefaults(&sel, true, cfg)
	assert.Equal(t, "vercel", sel.Hosting)

	// No config default leaves the selection alone.
	sel = stack.DefaultSelections("nextjs")
	applyConfigDefaults(&sel, false, &Config{})
	assert.Equal(t, stack.None, sel.Hosting)
}

func TestNewCmd_Flags(t *testing.T) {
	cmd := NewCmd()

	interactive := cmd.Flags().Lookup("interactive")
	require.NotNil(t, interactive)
	assert.Equal(t, "false", interactive.DefValue)
	assert.Equal(t, "i", interactive.Shorthand)

	for _, name := range []string{"framework", "auth", "database", "payments", "analytics", "email", "monitoring", "ui", "hosting", "templates", "output", "dry-run", "force", "skip"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestSelectionFlagsUsed(t *testing.T) {
	cmd := NewCmd()
	assert.False(t, selectionFlagsUsed(cmd))

	require.NoError(t, cmd.Flags().Set("auth", "clerk"))
	assert.True(t, selectionFlagsUsed(cmd))

	// Non-selection flags do not suppress the wizard.
	cmd = NewCmd()
	require.NoError(t, cmd.Flags().Set("dry-run", "true"))
	assert.False(t, selectionFlagsUsed(cmd))
}

func TestFillSelectionDefaults(t *testing.T) {
	sel := stack.SelectionSet{Framework: "nextjs"}
	fillSelectionDefaults(&sel)
	assert.Equal(t, stack.None, sel.Authentication)
	assert.Equal(t, stack.None, sel.Hosting)
	assert.Equal(t, "nextjs", sel.Framework)
}
