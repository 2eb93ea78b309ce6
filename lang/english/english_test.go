package english

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.True(t, m.Finalized())
	assert.True(t, m.IsAbbreviation("mr"))
	assert.True(t, m.IsAbbreviation("dr"))
	assert.True(t, m.IsAbbreviation("u.s.a"))
	assert.False(t, m.IsAbbreviation("hello"))

	assert.True(t, m.IsSentenceStarter("the"))
	assert.True(t, m.IsSentenceStarter("a"))
	assert.False(t, m.IsSentenceStarter("smith"))
}

func TestLoadIsCachedAndShared(t *testing.T) {
	m1, err := Load()
	require.NoError(t, err)
	m2, err := Load()
	require.NoError(t, err)

	assert.Same(t, m1, m2)
}

func TestLoadOrthographicContext(t *testing.T) {
	m, err := Load()
	require.NoError(t, err)

	smith := m.Ortho("smith")
	assert.True(t, smith.SeenUppercase())
	assert.False(t, smith.SeenLowercase())

	the := m.Ortho("the")
	assert.True(t, the.SeenLowercase())
}
