package records

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func sample() []Supply {
	return []Supply{
		{ID: "a", Name: "Syringe", Quantity: 40, Date: base, Expiry: base.AddDate(0, 0, 30)},
		{ID: "b", Name: "gauze", Quantity: 15, Date: base.AddDate(0, 0, 1), Expiry: base.AddDate(0, 0, 20)},
		{ID: "c", Name: "Alcohol", Quantity: 90, Date: base.AddDate(0, 0, 2), Expiry: base.AddDate(0, 0, 45)},
		{ID: "d", Name: "syringe", Quantity: 15, Date: base.AddDate(0, 0, 3), Expiry: base.AddDate(0, 0, 16)},
		{ID: "e", Name: "Mask", Quantity: 5, Date: base.AddDate(0, 0, 4), Expiry: base.AddDate(0, 0, 60)},
	}
}

func ids(supplies []Supply) []string {
	out := make([]string, len(supplies))
	for i, s := range supplies {
		out[i] = s.ID
	}
	return out
}

func TestQueue(t *testing.T) {
	var q Queue[int]
	assert.True(t, q.IsEmpty())

	_, ok := q.Dequeue()
	assert.False(t, ok)

	for i := 1; i <= 3; i++ {
		q.Enqueue(i)
	}
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, []int{1, 2, 3}, q.Items())

	front, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	for want := 1; want <= 3; want++ {
		got, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.IsEmpty())
}

func TestStack(t *testing.T) {
	var s Stack[string]
	_, ok := s.Pop()
	assert.False(t, ok)

	s.Push("first")
	s.Push("second")
	s.Push("third")
	assert.Equal(t, []string{"third", "second", "first"}, s.Items())

	top, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, "third", top)

	for _, want := range []string{"third", "second", "first"} {
		got, ok := s.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Len())
}

func TestLinearSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"case insensitive matches in order", "SYRINGE", []string{"a", "d"}},
		{"single match", "mask", []string{"e"}},
		{"no match", "bandage", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearSearch(sample(), tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestBinarySearch(t *testing.T) {
	sorted, err := MergeSort(sample(), ByName)
	require.NoError(t, err)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"run of equal names", "syringe", []string{"a", "d"}},
		{"first element", "alcohol", []string{"c"}},
		{"last element", "Syringe", []string{"a", "d"}},
		{"middle", "Mask", []string{"e"}},
		{"missing", "zinc", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BinarySearch(sorted, tt.query)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.ElementsMatch(t, tt.want, ids(got))
			assert.ElementsMatch(t, ids(LinearSearch(sorted, tt.query)), ids(got))
		})
	}

	assert.Nil(t, BinarySearch(nil, "anything"))
}

func TestBinarySearch_AgreesWithSortOrderOnFoldedNames(t *testing.T) {
	// U+017F folds to "s" but does not lower-case to it, so it sorts after "syringe".
	supplies := []Supply{
		{ID: "a", Name: "Syringe"},
		{ID: "b", Name: "\u017fyringe"},
		{ID: "c", Name: "Gauze"},
	}
	sorted, err := MergeSort(supplies, ByName)
	require.NoError(t, err)

	got := BinarySearch(sorted, "syringe")
	assert.Equal(t, []string{"a"}, ids(got))
	assert.Equal(t, ids(LinearSearch(sorted, "syringe")), ids(got))
}

func TestSorts(t *testing.T) {
	tests := []struct {
		name string
		by   Criterion
		want []string
	}{
		{"by name", ByName, []string{"c", "b", "e", "a", "d"}},
		{"by quantity", ByQuantity, []string{"e", "b", "d", "a", "c"}},
		{"by date", ByDate, []string{"a", "b", "c", "d", "e"}},
		{"by expiry", ByExpiry, []string{"d", "b", "a", "c", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := sample()
			before := ids(input)

			merged, err := MergeSort(input, tt.by)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(merged))

			quick, err := QuickSort(input, tt.by)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(quick))

			assert.Equal(t, before, ids(input), "input must not be reordered")
		})
	}
}

func TestSort_Errors(t *testing.T) {
	_, err := MergeSort(sample(), "color")
	assert.ErrorIs(t, err, ErrUnknownCriterion)

	_, err = QuickSort(sample(), "color")
	assert.ErrorIs(t, err, ErrUnknownCriterion)

	_, err = Sort(sample(), "bubble", ByName)
	assert.Error(t, err)

	got, err := Sort(sample(), QuickSortAlgorithm, ByQuantity)
	require.NoError(t, err)
	assert.Equal(t, "e", got[0].ID)
}

func TestDailyConsumption(t *testing.T) {
	assert.Nil(t, DailyConsumption(nil))

	supplies := []Supply{
		{Name: "x", Quantity: 10, Date: base.Add(3 * time.Hour)},
		{Name: "y", Quantity: 5, Date: base.Add(20 * time.Hour)},
		{Name: "z", Quantity: 7, Date: base.AddDate(0, 0, 3)},
		{Name: "w", Quantity: 1, Date: base.AddDate(0, 0, 1)},
	}
	assert.Equal(t, []int{15, 1, 0, 7}, DailyConsumption(supplies))
}

func TestNewSupply(t *testing.T) {
	s := NewSupply("Gloves", 12, base, 48*time.Hour)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, base.AddDate(0, 0, 2), s.Expiry)
	assert.Contains(t, s.String(), "Gloves")
	assert.Contains(t, s.String(), "2025-03-03")
}
