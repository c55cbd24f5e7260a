package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocst/pkg/syntax"
)

func TestKind_RoundTrip(t *testing.T) {
	t.Parallel()

	roots := 0
	for raw := syntax.RawKind(0); raw <= KindLast.ToRaw(); raw++ {
		k, err := Language.FromRaw(raw)
		require.NoError(t, err, "raw %d", raw)
		assert.Equal(t, raw, k.ToRaw())
		if k.IsRoot() {
			roots++
		}
	}
	assert.Equal(t, 1, roots)
}

func TestKind_RejectsOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := KindFromRaw(KindLast.ToRaw() + 1)
	require.ErrorIs(t, err, syntax.ErrKindOutOfRange)
	assert.Contains(t, err.Error(), "json")
}

func TestKind_ToBogus(t *testing.T) {
	t.Parallel()

	for k := KindTombstone; k < kindLast; k++ {
		assert.True(t, k.ToBogus().IsBogus(), "%s", k)
	}
	assert.Equal(t, KindBogusValue, KindObjectValue.ToBogus())
	assert.Equal(t, KindBogusMemberName, KindMemberName.ToBogus())
	assert.Equal(t, KindBogus, KindMember.ToBogus())

	name, ok := KindColon.Name()
	assert.True(t, ok)
	assert.Equal(t, ":", name)
}
