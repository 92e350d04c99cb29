//go:build unit

package money_test

import (
	"testing"

	"vtcquote/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 19.8, money.Round2(19.800000000000004))
	assert.Equal(t, 15.0, money.Round2(15))
	assert.Equal(t, 0.13, money.Round2(0.125)) // half away from zero
	assert.Equal(t, -2.35, money.Round2(-2.345))
}

func TestFormatEUR(t *testing.T) {
	assert.Equal(t, "19,80 €", money.FormatEUR(19.8))
	assert.Equal(t, "1 234,56 €", money.FormatEUR(1234.56))
	assert.Equal(t, "0,00 €", money.FormatEUR(0))
	assert.Equal(t, "-42,50 €", money.FormatEUR(-42.5))
	assert.Equal(t, "12 345 678,90 €", money.FormatEUR(12345678.9))
}
