package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krmcbride/git-workflow-guidance/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, []string{"Bash"}, cfg.Hook.ToolNames())
}

func TestLoad_MissingFileSkipped(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `hook:
  tools: "Bash, Shell"
log:
  level: debug
  format: json
  file: /tmp/guidance.log
  maxsize: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Bash", "Shell"}, cfg.Hook.ToolNames())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/guidance.log", cfg.Log.File)
	assert.Equal(t, 5, cfg.Log.MaxSize)
	assert.Equal(t, 2, cfg.Log.MaxBackups)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: [unclosed"), 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: info\n"), 0o600))

	t.Setenv("GIT_WORKFLOW_GUIDANCE_LOG_LEVEL", "error")
	t.Setenv("GIT_WORKFLOW_GUIDANCE_HOOK_TOOLS", "Shell")
	t.Setenv("GIT_WORKFLOW_GUIDANCE_LOG_MAXAGE", "7")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, []string{"Shell"}, cfg.Hook.ToolNames())
	assert.Equal(t, 7, cfg.Log.MaxAge)
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("GIT_WORKFLOW_GUIDANCE_LOG_MAXSIZE", "big")

	_, err := config.Load()
	require.Error(t, err)
}

func TestHookConfig_ToolNames(t *testing.T) {
	tests := []struct {
		name  string
		tools string
		want  []string
	}{
		{name: "Empty", tools: "", want: []string{"Bash"}},
		{name: "Only separators", tools: " , ,", want: []string{"Bash"}},
		{name: "Single", tools: "Shell", want: []string{"Shell"}},
		{name: "Several", tools: "Bash,Shell , Exec", want: []string{"Bash", "Shell", "Exec"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, config.HookConfig{Tools: tt.tools}.ToolNames())
		})
	}
}

func TestDefaultPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is only honored on linux")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "git-workflow-guidance", "config.yaml"), config.DefaultPath())
}
