package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.json")} {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Empty(t, cfg.Interface)
		require.Len(t, cfg.LogConfigs, 1)
		assert.Equal(t, "console", cfg.LogConfigs[0].OutputType)
		assert.Equal(t, "stderr", cfg.LogConfigs[0].OutputPath)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ifaddr.json")
	data := `{
		"Interface": "eth1",
		"LogConfigs": [
			{"OutputType": "file", "OutputPath": "/var/log/ifaddr.log", "Level": "debug"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "eth1", cfg.Interface)
	require.Len(t, cfg.LogConfigs, 1)
	assert.Equal(t, "file", cfg.LogConfigs[0].OutputType)
	assert.Equal(t, "/var/log/ifaddr.log", cfg.LogConfigs[0].OutputPath)
	assert.Equal(t, "debug", cfg.LogConfigs[0].Level)
}
