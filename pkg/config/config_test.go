package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnkey/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnkey"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnkey"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnkey", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnkey", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "postgres", cfg.Database.User)
	assert.Equal(t, "gnkey", cfg.Database.Database)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 10_000, cfg.Database.BatchSize)

	assert.Equal(t, 10, cfg.Rank.Limit)
	assert.Equal(t, "text", cfg.Rank.Format)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)

	assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	assert.Empty(t, cfg.HomeDir)
	assert.Empty(t, cfg.Populate.DatasetPath)
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sets valid host", "db.example.com", "db.example.com"},
		{"trims whitespace", "  db.example.com  ", "db.example.com"},
		{"ignores empty string", "", "localhost"},
		{"ignores whitespace-only", "   ", "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseHost(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"disable", "disable", "disable"},
		{"verify-full", "verify-full", "verify-full"},
		{"normalizes to lowercase", "REQUIRE", "require"},
		{"ignores invalid value", "invalid", "disable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseSSLMode(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionRank(t *testing.T) {
	tests := []struct {
		name       string
		opts       []config.Option
		wantLimit  int
		wantFormat string
	}{
		{
			name:       "sets limit and format",
			opts:       []config.Option{config.OptRankLimit(3), config.OptRankFormat("JSON")},
			wantLimit:  3,
			wantFormat: "json",
		},
		{
			name:       "ignores zero limit",
			opts:       []config.Option{config.OptRankLimit(0)},
			wantLimit:  10,
			wantFormat: "text",
		},
		{
			name:       "ignores unknown format",
			opts:       []config.Option{config.OptRankFormat("csv")},
			wantLimit:  10,
			wantFormat: "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update(tt.opts)
			assert.Equal(t, tt.wantLimit, cfg.Rank.Limit)
			assert.Equal(t, tt.wantFormat, cfg.Rank.Format)
		})
	}
}

func TestOptionLog(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptLogLevel("DEBUG"),
		config.OptLogFormat("text"),
		config.OptLogDestination("stderr"),
	})
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{
		config.OptLogLevel("trace"),
		config.OptLogFormat("xml"),
		config.OptLogDestination("printer"),
	})
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestOptionJobsNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid jobs number", 8, 8},
		{"ignores zero", 0, runtime.NumCPU()},
		{"ignores negative", -5, runtime.NumCPU()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptJobsNumber(tt.input)})
			assert.Equal(t, tt.expected, cfg.JobsNumber)
		})
	}
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDatabaseHost("db.local"),
		config.OptDatabasePort(6543),
		config.OptRankLimit(5),
		config.OptRankFormat("json"),
		config.OptLogLevel("warn"),
		config.OptJobsNumber(3),
		config.OptHomeDir("/home/test"),
		config.OptPopulateDatasetPath("/tmp/key.yaml"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, "db.local", dst.Database.Host)
	assert.Equal(t, 6543, dst.Database.Port)
	assert.Equal(t, 5, dst.Rank.Limit)
	assert.Equal(t, "json", dst.Rank.Format)
	assert.Equal(t, "warn", dst.Log.Level)
	assert.Equal(t, 3, dst.JobsNumber)

	// runtime-only fields are not carried over
	assert.Empty(t, dst.HomeDir)
	assert.Empty(t, dst.Populate.DatasetPath)
}
