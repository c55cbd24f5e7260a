package grit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/syntax"
)

func TestKind_RoundTrip(t *testing.T) {
	t.Parallel()

	for raw := syntax.RawKind(0); raw <= KindLast.ToRaw(); raw++ {
		k, err := Language.FromRaw(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, k.ToRaw())
	}
	_, err := Language.FromRaw(KindLast.ToRaw() + 1)
	assert.ErrorIs(t, err, syntax.ErrKindOutOfRange)
}

func TestKind_Keywords(t *testing.T) {
	t.Parallel()

	for word, k := range keywords {
		name, ok := k.Name()
		assert.True(t, ok)
		assert.Equal(t, word, name)
		assert.True(t, k.IsKeyword())
	}
	assert.Len(t, keywords, int(KindFalseKw-KindAndKw)+1)
	assert.False(t, KindIdent.IsKeyword())
}
