package annotation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/altproof/annotation"
)

// catalan returns the n-th Catalan number via the direct product formula,
// small enough here that overflow is not a concern for the L values tested.
func catalan(n int) int {
	c := 1
	for i := 0; i < n; i++ {
		c = c * 2 * (2*i + 1) / (i + 2)
	}

	return c
}

func TestEnumerate_BinaryCardinalityAndInvariants(t *testing.T) {
	for _, l := range []int{3, 5, 7, 9, 11, 13} {
		l := l
		t.Run("", func(t *testing.T) {
			e, err := annotation.Enumerate(l, annotation.Binary)
			require.NoError(t, err)

			seen := make(map[string]bool)
			var count int
			for {
				a, ok := e.Next()
				if !ok {
					break
				}
				count++

				require.NoError(t, a.Validate())
				assert.Equal(t, annotation.Speedup2, a[0])
				assert.Equal(t, annotation.Slowdown, a[len(a)-1])

				key := string(rune(0))
				for _, s := range a {
					key += string(rune('0' + int(s)))
				}
				assert.False(t, seen[key], "annotation emitted twice: %v", a)
				seen[key] = true
			}

			want := catalan((l - 1) / 2)
			assert.Equal(t, want, count, "L=%d", l)
		})
	}
}

func TestEnumerate_L5ExactSet(t *testing.T) {
	e, err := annotation.Enumerate(5, annotation.Binary)
	require.NoError(t, err)

	var got []annotation.Annotation
	for {
		a, ok := e.Next()
		if !ok {
			break
		}
		got = append(got, a)
	}

	want := []annotation.Annotation{
		{annotation.Speedup2, annotation.Speedup2, annotation.Slowdown, annotation.Slowdown, annotation.Slowdown},
		{annotation.Speedup2, annotation.Slowdown, annotation.Speedup2, annotation.Slowdown, annotation.Slowdown},
	}
	assert.Equal(t, want, got)
}

func TestEnumerate_RejectsBadLength(t *testing.T) {
	for _, l := range []int{0, 1, 2, 4} {
		_, err := annotation.Enumerate(l, annotation.Binary)
		assert.True(t, errors.Is(err, annotation.ErrBadLength), "l=%d", l)
	}
}

func TestAnnotation_Validate(t *testing.T) {
	tests := []struct {
		name string
		a    annotation.Annotation
		ok   bool
	}{
		{"valid L3", annotation.Annotation{annotation.Speedup2, annotation.Slowdown, annotation.Slowdown}, true},
		{"empty", annotation.Annotation{}, false},
		{"even length", annotation.Annotation{annotation.Speedup2, annotation.Slowdown}, false},
		{"starts slowdown", annotation.Annotation{annotation.Slowdown, annotation.Slowdown, annotation.Slowdown}, false},
		{"ends speedup", annotation.Annotation{annotation.Speedup2, annotation.Slowdown, annotation.Speedup2}, false},
		{"goes negative", annotation.Annotation{annotation.Speedup2, annotation.Slowdown, annotation.Slowdown, annotation.Slowdown, annotation.Slowdown}, false},
		{"speedup3 opening ok", annotation.Annotation{annotation.Speedup3, annotation.Slowdown, annotation.Slowdown}, true},
		{"speedup3 misplaced", annotation.Annotation{annotation.Speedup2, annotation.Speedup3, annotation.Slowdown, annotation.Slowdown, annotation.Slowdown}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.a.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, annotation.ErrInvalidAnnotation))
			}
		})
	}
}

func TestQuantifierProfile(t *testing.T) {
	a := annotation.Annotation{annotation.Speedup2, annotation.Slowdown, annotation.Slowdown}
	counts, m := annotation.QuantifierProfile(a)
	assert.Equal(t, []int{2, 1, 0}, counts)
	assert.Equal(t, 4, m) // max(2,1,0)+2
}

func TestEnumerate_Randomized_PromotesAndStaysValid(t *testing.T) {
	e, err := annotation.Enumerate(3, annotation.Randomized)
	require.NoError(t, err)

	var got []annotation.Annotation
	for {
		a, ok := e.Next()
		if !ok {
			break
		}
		require.NoError(t, a.Validate())
		got = append(got, a)
	}
	// the unpromoted base case must always be present
	assert.Contains(t, got, annotation.Annotation{annotation.Speedup2, annotation.Slowdown, annotation.Slowdown})
}
