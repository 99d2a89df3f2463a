package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil extraction service returns error", func(t *testing.T) {
		ports := &Ports{}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingExtractionService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Extraction: &mockExtractionService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil extraction service returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingExtractionService)
	})

	t.Run("extraction only is valid", func(t *testing.T) {
		ports := &Ports{
			Extraction: &mockExtractionService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Extraction: &mockExtractionService{},
			Config:     &mockConfigService{},
			Root:       "pdf_files",
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}

func TestServer_RunHTTP_StopsOnCancel(t *testing.T) {
	server, err := NewServer(&Ports{Extraction: &mockExtractionService{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.RunHTTP(ctx, "127.0.0.1:0")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
