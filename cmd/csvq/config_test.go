package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadConfig(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		config, err := LoadConfig(filepath.Join(t.TempDir(), "csvq.yaml"))
		assert.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		config, err := LoadConfig("")
		assert.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("ValidFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "csvq.yaml")
		content := "delimiter: \";\"\ncrlf: true\nheader: true\n"
		assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		config, err := LoadConfig(path)
		assert.NoError(t, err)
		assert.Equal(t, &Config{Delimiter: ";", CRLF: true, Header: true}, config)
	})

	t.Run("EmptyDelimiterFallsBack", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "csvq.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("header: true\n"), 0o644))

		config, err := LoadConfig(path)
		assert.NoError(t, err)
		assert.Equal(t, ",", config.Delimiter)
		assert.True(t, config.Header)
	})

	t.Run("InvalidDelimiter", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "csvq.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("delimiter: \"ab\"\n"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("InvalidYAML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "csvq.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("delimiter: [\n"), 0o644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{`\t`, '\t', false},
		{"tab", '\t', false},
		{"§", '§', false},
		{"", 0, true},
		{";;", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDelimiter(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
