package records

import (
	"errors"
	"fmt"
)

// ErrUnknownCriterion is returned for an unsupported sort key.
var ErrUnknownCriterion = errors.New("records: unknown sort criterion")

// Criterion selects the field records are ordered by.
type Criterion string

const (
	ByName     Criterion = "name"
	ByQuantity Criterion = "quantity"
	ByDate     Criterion = "date"
	ByExpiry   Criterion = "expiry"
)

// SortAlgorithm names one of the sort implementations.
type SortAlgorithm string

const (
	MergeSortAlgorithm SortAlgorithm = "merge"
	QuickSortAlgorithm SortAlgorithm = "quick"
)

// Sort orders supplies with the named algorithm and criterion.
func Sort(supplies []Supply, algorithm SortAlgorithm, by Criterion) ([]Supply, error) {
	switch algorithm {
	case MergeSortAlgorithm, "":
		return MergeSort(supplies, by)
	case QuickSortAlgorithm:
		return QuickSort(supplies, by)
	default:
		return nil, fmt.Errorf("records: unknown sort algorithm %q", algorithm)
	}
}

func lessFunc(by Criterion) (func(a, b Supply) bool, error) {
	switch by {
	case ByName, "":
		return func(a, b Supply) bool { return nameKey(a.Name) < nameKey(b.Name) }, nil
	case ByQuantity:
		return func(a, b Supply) bool { return a.Quantity < b.Quantity }, nil
	case ByDate:
		return func(a, b Supply) bool { return a.Date.Before(b.Date) }, nil
	case ByExpiry:
		return func(a, b Supply) bool { return a.Expiry.Before(b.Expiry) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, by)
	}
}

// MergeSort returns a stably sorted copy of supplies.
func MergeSort(supplies []Supply, by Criterion) ([]Supply, error) {
	less, err := lessFunc(by)
	if err != nil {
		return nil, err
	}
	out := make([]Supply, len(supplies))
	copy(out, supplies)
	return mergeSort(out, less), nil
}

func mergeSort(s []Supply, less func(a, b Supply) bool) []Supply {
	if len(s) <= 1 {
		return s
	}
	mid := len(s) / 2
	left := mergeSort(s[:mid:mid], less)
	right := mergeSort(s[mid:], less)

	merged := make([]Supply, 0, len(s))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		// take from the left on ties to stay stable
		if less(right[j], left[i]) {
			merged = append(merged, right[j])
			j++
		} else {
			merged = append(merged, left[i])
			i++
		}
	}
	merged = append(merged, left[i:]...)
	return append(merged, right[j:]...)
}

// QuickSort returns a sorted copy of supplies. Equal keys keep their relative
// order because partitioning is done into fresh slices.
func QuickSort(supplies []Supply, by Criterion) ([]Supply, error) {
	less, err := lessFunc(by)
	if err != nil {
		return nil, err
	}
	return quickSort(supplies, less), nil
}

func quickSort(s []Supply, less func(a, b Supply) bool) []Supply {
	if len(s) <= 1 {
		out := make([]Supply, len(s))
		copy(out, s)
		return out
	}

	pivot := s[len(s)/2]
	var lower, equal, greater []Supply
	for _, item := range s {
		switch {
		case less(item, pivot):
			lower = append(lower, item)
		case less(pivot, item):
			greater = append(greater, item)
		default:
			equal = append(equal, item)
		}
	}

	out := make([]Supply, 0, len(s))
	out = append(out, quickSort(lower, less)...)
	out = append(out, equal...)
	return append(out, quickSort(greater, less)...)
}
