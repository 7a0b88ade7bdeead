package bootstrap

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"httpcore/internal/config"
	"httpcore/internal/lint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type MockConfig struct {
	mock.Mock
}

func (m *MockConfig) Manifest() string         { return m.Called().String(0) }
func (m *MockConfig) SensitiveNames() []string { return m.Called().Get(0).([]string) }
func (m *MockConfig) StrictText() bool         { return m.Called().Bool(0) }
func (m *MockConfig) Color() config.ColorMode  { return m.Called().Get(0).(config.ColorMode) }
func (m *MockConfig) LogLevel() string         { return m.Called().String(0) }
func (m *MockConfig) LogFormat() string        { return m.Called().String(0) }

func newMockConfig(manifest string, sensitive []string) *MockConfig {
	mc := new(MockConfig)
	mc.On("Manifest").Return(manifest)
	mc.On("SensitiveNames").Return(sensitive)
	mc.On("StrictText").Return(false)
	mc.On("Color").Return(config.ColorNever)
	return mc
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		sensitive []string
		expectErr bool
	}{
		{"default names", []string{"authorization", "cookie"}, false},
		{"no names", nil, false},
		{"invalid name", []string{"x api key"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(newMockConfig("httplint.toml", tt.sensitive), zaptest.NewLogger(t), &bytes.Buffer{})
			if tt.expectErr {
				assert.ErrorContains(t, err, "HTTPLINT_SENSITIVE")
				assert.Nil(t, b)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, b.Linter)
				assert.NotNil(t, b.Renderer)
			}
		})
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.toml", "[[header]]\nname = \"accept\"\nvalue = \"*/*\"\n")
	bad := writeFile(t, dir, "bad.toml", "[[method]]\ntoken = \"BAD METHOD\"\n")
	req := writeFile(t, dir, "req.txt", "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n")
	noHost := writeFile(t, dir, "nohost.txt", "GET / HTTP/1.1\r\n\r\n")

	tests := []struct {
		name         string
		manifest     string
		paths        []string
		dump         bool
		expectErrors int
		expectOutput []string
	}{
		{
			name:         "default manifest",
			manifest:     good,
			expectOutput: []string{"no findings"},
		},
		{
			name:         "manifests in order",
			paths:        []string{bad, good},
			expectErrors: 1,
			expectOutput: []string{"BAD METHOD", "1 error(s)"},
		},
		{
			name:         "missing file",
			paths:        []string{filepath.Join(dir, "missing.toml")},
			expectErrors: 1,
			expectOutput: []string{"missing.toml", "decode manifest"},
		},
		{
			name:         "dumps",
			paths:        []string{req, noHost},
			dump:         true,
			expectErrors: 1,
			expectOutput: []string{"missing required header: host"},
		},
		{
			name:         "missing dump",
			paths:        []string{filepath.Join(dir, "missing.txt")},
			dump:         true,
			expectErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			b, err := New(newMockConfig(tt.manifest, []string{"authorization"}), zaptest.NewLogger(t), &out)
			require.NoError(t, err)

			report, err := b.Run(context.Background(), tt.paths, tt.dump)
			require.NoError(t, err)
			assert.Equal(t, tt.expectErrors, report.Count(lint.SeverityError))
			for _, s := range tt.expectOutput {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	var out bytes.Buffer
	b, err := New(newMockConfig("httplint.toml", nil), zaptest.NewLogger(t), &out)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := b.Run(ctx, []string{"a.toml", "b.toml"}, false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, report, 2)
	assert.Empty(t, out.String())
}
