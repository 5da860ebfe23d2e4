package main

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadFromArg(t *testing.T) {
	raw, err := payload([]string{`{"action":"check"}`})
	require.NoError(t, err)
	assert.Equal(t, `{"action":"check"}`, string(raw))
}

func TestPayloadFromStdin(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	go func() {
		_, _ = io.Copy(w, strings.NewReader(`{"action":"create"}`))
		w.Close()
	}()

	raw, err := payload(nil)
	require.NoError(t, err)
	assert.Equal(t, `{"action":"create"}`, string(raw))
}
