package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remessa-dev/remessa/internal/config"
	"github.com/remessa-dev/remessa/internal/payees"
)

func TestInit_CreatesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	require.NoError(t, runInit(dir, "Acme Ltda", &out))

	info, err := os.Stat(filepath.Join(dir, "out"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	cfg, err := config.Load(filepath.Join(dir, "remessa.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Acme Ltda", cfg.Payer.Name)
	assert.Equal(t, "001", cfg.Payer.BankCode)

	f, err := os.Open(filepath.Join(dir, "payees-sample.csv"))
	require.NoError(t, err)
	defer f.Close()
	sample, err := payees.ReadPayees(f)
	require.NoError(t, err)
	assert.Len(t, sample, 2)

	assert.Contains(t, out.String(), "Initialized")
}

func TestInit_RefusesExistingConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "remessa.yaml"), []byte("payer:\n"), 0o644))

	err := runInit(dir, "Acme Ltda", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_ViaCobra(t *testing.T) {
	dir := t.TempDir()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"init", dir, "--name", "Acme Ltda"})

	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "remessa.yaml"))
}

func TestInit_RequiresName(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"init", t.TempDir()})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "name"))
}
