package shape_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shapegen/shape"
)

// TestSampler_Strategies checks the strategy chosen for each constraint mix.
func TestSampler_Strategies(t *testing.T) {
	s, err := shape.NewSampler(3)
	require.NoError(t, err)
	assert.Equal(t, shape.Independent, s.Stats().Strategy)
	assert.Equal(t, 10, s.Stats().Admissible)

	s, err = shape.NewSampler(3, shape.WithBounds(2, 12), shape.WithGCD(2))
	require.NoError(t, err)
	assert.Equal(t, shape.Indexed, s.Stats().Strategy)
	assert.Equal(t, 6, s.Stats().Admissible)

	s, err = shape.NewSampler(2, shape.WithMaxSize(20), shape.WithTotalElements(100))
	require.NoError(t, err)
	assert.Equal(t, shape.Enumerated, s.Stats().Strategy)
	assert.Equal(t, 3, s.Stats().Solutions, "(5,20) (10,10) (20,5)")
	assert.Equal(t, 2, s.NumDimensions())
	assert.Equal(t, "Enumerated", s.Stats().Strategy.String())
}

// TestSampler_UniformOverSolutions draws from a three-solution space and
// checks that each solution appears about a third of the time, regardless
// of its position in search order.
func TestSampler_UniformOverSolutions(t *testing.T) {
	s, err := shape.NewSampler(2, shape.WithMaxSize(20), shape.WithTotalElements(100), shape.WithSeed(2024))
	require.NoError(t, err)

	const draws = 3000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		got := s.Next()
		require.Equal(t, 100, got.NumElements())
		counts[got.String()]++
	}
	require.Len(t, counts, 3)
	for k, c := range counts {
		assert.InDelta(t, draws/3, c, 200, "solution %s drawn %d times", k, c)
	}
}

// TestSampler_IndexedCoversFeasibleSet checks that GCD-only sampling reaches
// every feasible shape and nothing else.
func TestSampler_IndexedCoversFeasibleSet(t *testing.T) {
	opts := []shape.Option{shape.WithBounds(2, 6), shape.WithGCD(2)}
	all, err := shape.Enumerate(2, opts...)
	require.NoError(t, err)

	s, err := shape.NewSampler(2, append(opts, shape.WithSeed(5))...)
	require.NoError(t, err)
	seen := make(map[string]int)
	for i := 0; i < 2000; i++ {
		got := s.Next()
		require.NoError(t, shape.Validate(got, opts...))
		seen[got.String()]++
	}
	assert.Len(t, seen, len(all))
	for _, want := range all {
		assert.InDelta(t, 2000/len(all), seen[want.String()], 150, "shape %s", want)
	}
}

// TestSampler_NextReturnsCopies ensures callers cannot corrupt the solution set.
func TestSampler_NextReturnsCopies(t *testing.T) {
	s, err := shape.NewSampler(2, shape.WithBounds(2, 2), shape.WithTotalElements(4))
	require.NoError(t, err)
	first := s.Next()
	first[0] = 99
	assert.Equal(t, shape.Shape{2, 2}, s.Next())
}

// TestSampler_InjectedSource checks that a custom Source drives selection.
func TestSampler_InjectedSource(t *testing.T) {
	s, err := shape.NewSampler(2, shape.WithMaxSize(20), shape.WithTotalElements(100), shape.WithSource(fixedSource(0)))
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{5, 20}, s.Next(), "index 0 is the lexicographically first solution")

	s, err = shape.NewSampler(2, shape.WithMaxSize(20), shape.WithTotalElements(100), shape.WithSource(fixedSource(2)))
	require.NoError(t, err)
	assert.Equal(t, shape.Shape{20, 5}, s.Next())
}

// TestSampler_IndexedConstantSource checks that GCD-only draws finish with a
// source that never varies, and that each index maps to one feasible shape.
func TestSampler_IndexedConstantSource(t *testing.T) {
	cases := []struct {
		src  fixedSource
		want shape.Shape
	}{
		{0, shape.Shape{2, 2}},
		{1, shape.Shape{2, 4}},
		{2, shape.Shape{2, 6}},
		{3, shape.Shape{4, 2}},
		{4, shape.Shape{6, 2}},
		{99, shape.Shape{6, 2}},
	}
	for _, tc := range cases {
		s, err := shape.NewSampler(2, shape.WithBounds(2, 6), shape.WithGCD(2), shape.WithSource(tc.src))
		require.NoError(t, err)
		assert.Equal(t, 5, s.Stats().Solutions)
		for i := 0; i < 3; i++ {
			assert.Equal(t, tc.want, s.Next(), "source %d", int(tc.src))
		}
	}

	s, err := shape.NewSampler(3, shape.WithBounds(1, 1<<40), shape.WithGCD(1), shape.WithSource(fixedSource(1<<30)))
	require.NoError(t, err)
	got := s.Next()
	assert.Contains(t, got, 1)
	assert.Equal(t, 0, s.Stats().Solutions, "feasible count exceeds int")
}

// TestEnumerate_Lexicographic checks full enumeration order.
func TestEnumerate_Lexicographic(t *testing.T) {
	got, err := shape.Enumerate(2, shape.WithBounds(2, 6), shape.WithGCD(2))
	require.NoError(t, err)
	want := []shape.Shape{{2, 2}, {2, 4}, {2, 6}, {4, 2}, {6, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Enumerate mismatch (-want +got):\n%s", diff)
	}

	got, err = shape.Enumerate(3, shape.WithTotalElements(12), shape.WithBounds(2, 6))
	require.NoError(t, err)
	want = []shape.Shape{{2, 2, 3}, {2, 3, 2}, {3, 2, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Enumerate mismatch (-want +got):\n%s", diff)
	}
}

// TestEnumerate_Edges covers zero dimensions and failures.
func TestEnumerate_Edges(t *testing.T) {
	got, err := shape.Enumerate(0)
	require.NoError(t, err)
	assert.Equal(t, []shape.Shape{{}}, got)

	_, err = shape.Enumerate(-1)
	assert.ErrorIs(t, err, shape.ErrInvalidArgument)

	_, err = shape.Enumerate(2, shape.WithBounds(5, 20), shape.WithTotalElements(150), shape.WithGCD(5))
	assert.ErrorIs(t, err, shape.ErrIncompatibleConstraints)

	_, err = shape.Enumerate(2, shape.WithTotalElements(13))
	assert.ErrorIs(t, err, shape.ErrNoSolution)

	_, err = shape.Enumerate(2, shape.WithBounds(1, math.MaxInt))
	assert.ErrorIs(t, err, shape.ErrInvalidArgument, "too many shapes to list")

	got, err = shape.Enumerate(2, shape.WithBounds(1, math.MaxInt), shape.WithTotalElements(6))
	require.NoError(t, err)
	assert.Equal(t, []shape.Shape{{1, 6}, {2, 3}, {3, 2}, {6, 1}}, got)
}

// TestValidate checks the membership predicate.
func TestValidate(t *testing.T) {
	assert.NoError(t, shape.Validate(shape.Shape{2, 3, 4}))
	assert.NoError(t, shape.Validate(shape.Shape{5, 10}, shape.WithGCD(5), shape.WithTotalElements(50), shape.WithMaxSize(20)))
	assert.NoError(t, shape.Validate(shape.Shape{}, shape.WithTotalElements(1)))

	assert.ErrorIs(t, shape.Validate(shape.Shape{0, 3}), shape.ErrInfeasible)
	assert.ErrorIs(t, shape.Validate(shape.Shape{11}), shape.ErrInfeasible)
	assert.ErrorIs(t, shape.Validate(shape.Shape{2, 3}, shape.WithTotalElements(7)), shape.ErrInfeasible)
	assert.ErrorIs(t, shape.Validate(shape.Shape{10, 15}, shape.WithGCD(5), shape.WithMaxSize(20)), shape.ErrInfeasible,
		"gcd(10,15)=5 but no axis equals 5")
	assert.ErrorIs(t, shape.Validate(shape.Shape{}, shape.WithGCD(2)), shape.ErrInfeasible)
	assert.ErrorIs(t, shape.Validate(shape.Shape{2}, shape.WithMinSize(0)), shape.ErrInvalidArgument)
}

// TestShapeMethods covers the Shape helpers.
func TestShapeMethods(t *testing.T) {
	s := shape.Shape{4, 6, 8}
	assert.Equal(t, 192, s.NumElements())
	assert.Equal(t, 2, s.GCD())
	assert.Equal(t, "(4, 6, 8)", s.String())
	assert.True(t, s.Equal(s.Clone()))
	assert.False(t, s.Equal(shape.Shape{4, 6}))

	var empty shape.Shape
	assert.Equal(t, 1, empty.NumElements())
	assert.Equal(t, 0, empty.GCD())
	assert.Equal(t, "()", empty.String())
	assert.Nil(t, empty.Clone())
}

// fixedSource always returns the same index, clamped to n-1.
type fixedSource int

func (f fixedSource) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}
