package s3mark

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFsClientRoundTrip(t *testing.T) {
	client := NewFsClient(t.TempDir())

	payload := NewPayload(512)
	_, err := client.PutObject("bucket", "run/3", bytes.NewReader(payload))
	require.NoError(t, err)

	_, body, err := client.GetObject("bucket", "run/3")
	require.NoError(t, err)
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, body.Close())

	assert.Equal(t, payload, data)
}

func TestFsClientGetMissing(t *testing.T) {
	client := NewFsClient(t.TempDir())

	_, body, err := client.GetObject("bucket", "nope")
	assert.Error(t, err)
	assert.Nil(t, body)
}

func TestNewClientSelectsBackend(t *testing.T) {
	cfg := &Config{Endpoint: t.TempDir()}
	client, err := NewClient(cfg)
	require.NoError(t, err)
	assert.IsType(t, &FsClient{}, client)
}

func TestNewPayload(t *testing.T) {
	payload := NewPayload(4096)
	assert.Len(t, payload, 4096)

	// deterministic for a given size
	assert.Equal(t, payload, NewPayload(4096))
	assert.NotEqual(t, payload[:1024], NewPayload(1024))
}
