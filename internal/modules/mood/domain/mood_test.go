package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gentlemind/internal/modules/mood/domain"
	"gentlemind/internal/platform/i18n"
)

func TestParse(t *testing.T) {
	t.Parallel()
	m, err := domain.Parse("exhausted")
	require.NoError(t, err)
	assert.Equal(t, domain.Exhausted, m)

	_, err = domain.Parse("Sleepy")
	assert.Error(t, err)
}

func TestAllMoodsHaveConfig(t *testing.T) {
	t.Parallel()
	require.Len(t, domain.All(), 6)
	for _, m := range domain.All() {
		assert.NoError(t, m.Validate())
		c := domain.Lookup(m)
		assert.Equal(t, m, c.ID)
		assert.NotEmpty(t, c.Label(i18n.English))
		assert.NotEmpty(t, c.Label(i18n.Thai))
		assert.NotEmpty(t, c.Description(i18n.English))
		assert.NotEmpty(t, c.Emoji)
	}
}

func TestLookupUnknownFallsBackToNormal(t *testing.T) {
	t.Parallel()
	assert.Equal(t, domain.Normal, domain.Lookup(domain.Mood("??")).ID)
	assert.Error(t, domain.Mood("??").Validate())
	assert.Equal(t, "Sad", domain.Lookup(domain.Depressed).Label(i18n.English))
}
