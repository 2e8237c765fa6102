// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig sets VLCTL_CFG to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	assert.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("VLCTL_CFG", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "text", cfg.Data["output"])
				assert.Equal(t, "para", cfg.Data["split"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				wq, ok := cfg.Data["wq"].(map[string]interface{})
				assert.True(t, ok, "wq should be a map")
				assert.Equal(t, 5, wq["estimate"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestGetString(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load()
	require.NoError(t, err)

	t.Run("top-level key", func(t *testing.T) {
		v, err := GetString("output")
		require.NoError(t, err)
		assert.Equal(t, "text", v)
	})

	t.Run("dotted path", func(t *testing.T) {
		v, err := GetString("wq.sort")
		require.NoError(t, err)
		assert.Equal(t, "index", v)
	})

	t.Run("missing key with default", func(t *testing.T) {
		v, err := GetString("nope", "fallback")
		require.NoError(t, err)
		assert.Equal(t, "fallback", v)
	})

	t.Run("missing key without default", func(t *testing.T) {
		_, err := GetString("nope")
		require.Error(t, err)
	})
}

func TestGetStringNamespaced(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load("wq")
	require.NoError(t, err)

	// The namespaced key shadows the top-level one.
	v, err := GetString("sort")
	require.NoError(t, err)
	assert.Equal(t, "index", v)
}

func TestGetInt(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load()
	require.NoError(t, err)

	v, err := GetInt("wq.estimate")
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = GetInt("nope", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestGetStringSlice(t *testing.T) {
	cleanup := setupTestConfig(t, "nested.yaml")
	defer cleanup()

	_, err := Load()
	require.NoError(t, err)

	v, err := GetStringSlice("view.defaults")
	require.NoError(t, err)
	assert.Equal(t, []string{"--split line", "--estimate 2"}, v)

	_, err = GetStringSlice("output")
	require.Error(t, err)
}
