package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 4.33, RoundWithTwoDecimalPlace(13.0/3.0))
	assert.Equal(t, 3.67, RoundWithTwoDecimalPlace(11.0/3.0))
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Colégio São José":           "colegio-sao-jose",
		"  Escola ABC -- Unidade 2 ": "escola-abc-unidade-2",
		"Ação & Educação!":           "acao-educacao",
		"":                           "",
	}

	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)
}
