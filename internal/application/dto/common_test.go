package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvergara/cartera-api/internal/application/dto"
)

func TestParseDate_FormatosAceptados(t *testing.T) {
	cases := map[string]time.Time{
		"2024-01-15":           time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		"2024-01-15T10:30:00Z": time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		"01/15/2024":           time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		"1/5/2024":             time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := dto.ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(want), "%s → %s, se esperaba %s", in, got, want)
	}
}

func TestParseDate_FormatoDesconocido(t *testing.T) {
	for _, in := range []string{"", "15 de enero de 2024", "2024/01/15", "ayer"} {
		_, err := dto.ParseDate(in)
		assert.Error(t, err, in)
	}
}
