package pdf

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupports(t *testing.T) {
	l := New()
	assert.True(t, l.Supports("transcript.pdf"))
	assert.True(t, l.Supports("TRANSCRIPT.PDF"))
	assert.False(t, l.Supports("transcript.txt"))
	assert.False(t, l.Supports("transcript"))
}

func TestLoad_Missing(t *testing.T) {
	_, err := New().Load(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
}
