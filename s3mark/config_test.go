package s3mark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStandaloneArgs() []string {
	return []string{
		"-e", "https://s3.example.com:9000",
		"-k", "AKIAEXAMPLE",
		"-s", "sosecret",
		"-b", "bench-bucket",
		"-o", "upload",
		"-n", "100",
	}
}

func TestParseSize(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"20", 20},
		{"20K", 20 * 1024},
		{"20M", 20 * 1024 * 1024},
		{"20G", 20 * 1024 * 1024 * 1024},
		{"1k", 1024},
		{"512", 512},
	}
	for _, c := range cases {
		got, err := ParseSize(c.in)
		require.NoError(t, err, "size %q", c.in)
		assert.Equal(t, c.want, got, "size %q", c.in)
	}
}

func TestParseSizeInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "20X", "-5", "K"} {
		_, err := ParseSize(in)
		assert.Error(t, err, "size %q", in)
	}
}

func TestParseStandaloneDefaults(t *testing.T) {
	cfg, err := ParseStandalone(validStandaloneArgs())
	require.NoError(t, err)

	assert.Equal(t, DefaultThreads, cfg.Threads)
	assert.Equal(t, "", cfg.Prefix)
	assert.Equal(t, uint64(DefaultSize), cfg.Size)
	assert.Equal(t, DefaultRegion, cfg.Region)
	assert.Equal(t, "https://s3.example.com:9000", cfg.Endpoint)
	assert.Equal(t, OperationUpload, cfg.Operation)
	assert.Equal(t, 100, cfg.Number)
}

func TestParseStandaloneLongFlags(t *testing.T) {
	cfg, err := ParseStandalone([]string{
		"--endpoint", "http://127.0.0.1:9000",
		"--key", "minio",
		"--secret", "minio123",
		"--bucket", "test",
		"--prefix", "run42/",
		"--size", "4K",
		"--operation", "download",
		"--number", "8",
		"--threads", "3",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Threads)
	assert.Equal(t, "run42/", cfg.Prefix)
	assert.Equal(t, uint64(4096), cfg.Size)
	assert.Equal(t, OperationDownload, cfg.Operation)
}

func TestParseStandaloneSizeFlag(t *testing.T) {
	cfg, err := ParseStandalone(append(validStandaloneArgs(), "-sz", "20M"))
	require.NoError(t, err)
	assert.Equal(t, uint64(20*1024*1024), cfg.Size)
}

func TestParseStandaloneMissingRequired(t *testing.T) {
	cases := []struct {
		field string
		args  []string
	}{
		{"endpoint", []string{"-k", "k", "-s", "s", "-b", "b", "-o", "upload", "-n", "1"}},
		{"key", []string{"-e", "http://e", "-s", "s", "-b", "b", "-o", "upload", "-n", "1"}},
		{"secret", []string{"-e", "http://e", "-k", "k", "-b", "b", "-o", "upload", "-n", "1"}},
		{"bucket", []string{"-e", "http://e", "-k", "k", "-s", "s", "-o", "upload", "-n", "1"}},
		{"operation", []string{"-e", "http://e", "-k", "k", "-s", "s", "-b", "b", "-n", "1"}},
		{"number", []string{"-e", "http://e", "-k", "k", "-s", "s", "-b", "b", "-o", "upload"}},
	}
	for _, c := range cases {
		_, err := ParseStandalone(c.args)
		require.Error(t, err, "missing %s", c.field)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr, "missing %s", c.field)
		assert.Equal(t, c.field, cfgErr.Field)
	}
}

func TestParseStandaloneInvalidValues(t *testing.T) {
	cases := []struct {
		field string
		extra []string
	}{
		{"operation", []string{"-o", "delete"}},
		{"number", []string{"-n", "0"}},
		{"number", []string{"-n", "-5"}},
		{"threads", []string{"-t", "0"}},
		{"threads", []string{"-t", "101"}},
		{"size", []string{"-sz", "bogus"}},
	}
	for _, c := range cases {
		args := append(validStandaloneArgs(), c.extra...)
		_, err := ParseStandalone(args)
		require.Error(t, err, "%v", c.extra)
		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr, "%v", c.extra)
		assert.Equal(t, c.field, cfgErr.Field)
	}
}

func TestParseClient(t *testing.T) {
	cfg, err := ParseClient([]string{"-s", "10.0.0.1:8888"})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:8888", cfg.ServerAddr)

	_, err = ParseClient(nil)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "server", cfgErr.Field)
}

func TestParseServerDefaults(t *testing.T) {
	cfg, err := ParseServer(validStandaloneArgs())
	require.NoError(t, err)

	assert.Equal(t, DefaultBindIP, cfg.BindIP)
	assert.Equal(t, DefaultPort, cfg.Port)
	require.NotNil(t, cfg.Run)
	assert.Equal(t, "bench-bucket", cfg.Run.Bucket)
}

func TestParseServerInvalidPort(t *testing.T) {
	_, err := ParseServer(append(validStandaloneArgs(), "-port", "70000"))
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "port", cfgErr.Field)
}
