package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
		check   func(*testing.T, *fileConfig)
	}{
		{
			name: "full config",
			content: `docs:
  tool: ansible-doc-custom
  out: build/modules
  workers: 4
build:
  out: schemas
platforms:
  api_url: https://galaxy.example.com
`,
			check: func(t *testing.T, cfg *fileConfig) {
				assert.Equal(t, "ansible-doc-custom", cfg.Docs.Tool)
				assert.Equal(t, "build/modules", cfg.Docs.Out)
				assert.Equal(t, 4, cfg.Docs.Workers)
				assert.Equal(t, "schemas", cfg.Build.Out)
				assert.Equal(t, "https://galaxy.example.com", cfg.Platforms.APIURL)
			},
		},
		{
			name:    "invalid yaml",
			content: "docs: [unclosed",
			wantErr: true,
		},
		{
			name:    "negative workers rejected",
			content: "docs:\n  workers: -2\n",
			wantErr: true,
		},
		{
			name:    "bad api url rejected",
			content: "platforms:\n  api_url: not-a-url\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".schemas.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			cfg, err := loadConfigFile(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigFileEmptyPath(t *testing.T) {
	cfg, err := loadConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, &fileConfig{}, cfg)
}

func TestLoadConfigFileMissing(t *testing.T) {
	_, err := loadConfigFile("/nonexistent/config.yml")
	assert.Error(t, err)
}

func TestOverride(t *testing.T) {
	s := "flag-default"
	override(&s, "from-config", false)
	assert.Equal(t, "from-config", s)

	s = "flag-explicit"
	override(&s, "from-config", true)
	assert.Equal(t, "flag-explicit", s, "explicit flags beat the config file")

	s = "flag-default"
	override(&s, "", false)
	assert.Equal(t, "flag-default", s, "unset config values change nothing")

	n := 0
	override(&n, 8, false)
	assert.Equal(t, 8, n)
}
