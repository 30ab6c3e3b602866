package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSizeMB(t *testing.T) {
	size, err := parseSizeMB("64")
	require.NoError(t, err)
	assert.Equal(t, uint64(64<<20), size)

	_, err = parseSizeMB("lots")
	assert.Error(t, err)
}

func TestRunCommand_Usage(t *testing.T) {
	ctx := context.Background()

	assert.ErrorIs(t, runCommand(ctx, nil, nil), errUsage)
	assert.ErrorIs(t, runCommand(ctx, nil, []string{"pool"}), errUsage)
	assert.ErrorIs(t, runCommand(ctx, nil, []string{"volume", "list"}), errUsage)
}
