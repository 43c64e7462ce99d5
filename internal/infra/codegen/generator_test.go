package codegen

import (
	"strings"
	"testing"

	"referral/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	gen := New()

	for i := 0; i < 100; i++ {
		code := gen.Generate()
		require.Len(t, code, constants.CodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(constants.CodeAlphabet, r),
				"unexpected character %q in code %s", r, code)
		}
	}
}

func TestGenerate_ProducesDistinctCodes(t *testing.T) {
	gen := New()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		seen[gen.Generate()] = struct{}{}
	}

	// With 36^8 possible codes, 1000 draws colliding down to a handful
	// would indicate a broken generator rather than bad luck.
	assert.Greater(t, len(seen), 990)
}
