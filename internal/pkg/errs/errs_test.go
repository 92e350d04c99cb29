//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"vtcquote/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesMarkedSentinel(t *testing.T) {
	sentinel := errs.New("quote delivery failed")
	err := errs.Mark(stderrors.New("smtp refused"), sentinel)

	assert.True(t, errs.Is(err, sentinel))
	// The mark is metadata, not part of the Unwrap chain.
	assert.False(t, stderrors.Is(err, sentinel))
}

func TestIsWalksWrappedCauses(t *testing.T) {
	cause := errs.New("no rows in result set")
	err := errs.Wrap(cause, "find quote")

	assert.True(t, errs.Is(err, cause))
}

func TestMarkOfNilReturnsSentinel(t *testing.T) {
	sentinel := errs.New("not found")

	assert.Same(t, sentinel, errs.Mark(nil, sentinel))
	assert.True(t, errs.Is(errs.Mark(nil, sentinel), sentinel))
}
