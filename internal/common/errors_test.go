package common

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinels_AreDistinctAndWrappable(t *testing.T) {
	all := []error{ErrorNotFound, ErrCorruptData, ErrUnsupportedVersion, ErrPersist, ErrNoPendingDelete}

	for i, a := range all {
		wrapped := fmt.Errorf("layer: %w", a)
		assert.ErrorIs(t, wrapped, a)
		for j, b := range all {
			if i != j {
				assert.NotErrorIs(t, wrapped, b)
			}
		}
	}
}
