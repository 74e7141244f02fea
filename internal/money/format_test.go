package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter("AUD", "es-CO")
	require.NoError(t, err)
	require.NotNil(t, f)
}

func TestNewFormatter_InvalidCode(t *testing.T) {
	_, err := NewFormatter("not-a-code", "es-CO")
	assert.Error(t, err)
}

func TestNewFormatter_InvalidLocale(t *testing.T) {
	_, err := NewFormatter("AUD", "!!")
	assert.Error(t, err)
}

func TestFormat_CarriesCurrencyCode(t *testing.T) {
	f, err := NewFormatter("AUD", "es-CO")
	require.NoError(t, err)

	got := f.Format(decimal.NewFromInt(350))
	assert.Contains(t, got, "AUD")
}

func TestFormat_ConsistentAcrossCalls(t *testing.T) {
	// Total revenue and average monetary go through the same formatter, so
	// the same amount must always render identically
	f, err := NewFormatter("AUD", "es-CO")
	require.NoError(t, err)

	amount := decimal.NewFromFloat(1234.5)
	assert.Equal(t, f.Format(amount), f.Format(amount))
}

func TestFormat_Zero(t *testing.T) {
	f, err := NewFormatter("AUD", "es-CO")
	require.NoError(t, err)

	got := f.Format(decimal.Zero)
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "AUD")
}
