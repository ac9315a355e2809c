package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remessa-dev/remessa/internal/config"
)

func TestRunCheck_ReportsDefects(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "remessa.yaml")
	require.NoError(t, config.Save(configPath, testConfig()))
	payeesPath := writePayeesFile(t, dir, mixedPayeeCSV)

	var out bytes.Buffer
	require.NoError(t, runCheck(configPath, payeesPath, &out))

	report := out.String()
	assert.Contains(t, report, "1 of 2 payees pass validation")
	assert.Contains(t, report, "BROKEN")
	assert.Contains(t, report, "tax_id")
}

func TestRunCheck_AllValid(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "remessa.yaml")
	require.NoError(t, config.Save(configPath, testConfig()))
	payeesPath := writePayeesFile(t, dir, validPayeeCSV)

	var out bytes.Buffer
	require.NoError(t, runCheck(configPath, payeesPath, &out))
	assert.Contains(t, out.String(), "1 of 1 payees pass validation")
}

func TestRunCheck_MissingConfig(t *testing.T) {
	dir := t.TempDir()
	payeesPath := writePayeesFile(t, dir, validPayeeCSV)

	err := runCheck(filepath.Join(dir, "missing.yaml"), payeesPath, &bytes.Buffer{})
	assert.Error(t, err)
}
