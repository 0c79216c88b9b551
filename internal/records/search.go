package records

import "strings"

// nameKey is the case-insensitive form names are sorted and matched by.
func nameKey(name string) string {
	return strings.ToLower(name)
}

// LinearSearch returns every record whose name matches, ignoring case, in input order.
func LinearSearch(supplies []Supply, name string) []Supply {
	target := nameKey(name)
	var out []Supply
	for _, s := range supplies {
		if nameKey(s.Name) == target {
			out = append(out, s)
		}
	}
	return out
}

// BinarySearch finds all records named name in a slice sorted by name
// (case-insensitive). It returns nil when there is no match.
func BinarySearch(sortedByName []Supply, name string) []Supply {
	target := nameKey(name)
	lo, hi := 0, len(sortedByName)-1

	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch current := nameKey(sortedByName[mid].Name); {
		case current == target:
			// widen to the whole run of equal names
			start, end := mid, mid
			for start > 0 && nameKey(sortedByName[start-1].Name) == target {
				start--
			}
			for end < len(sortedByName)-1 && nameKey(sortedByName[end+1].Name) == target {
				end++
			}
			out := make([]Supply, end-start+1)
			copy(out, sortedByName[start:end+1])
			return out
		case current < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return nil
}
