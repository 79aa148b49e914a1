// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package hexspiral

// IsPath reports whether each consecutive pair in path are neighbors.
// Fewer than two indices do not form a path.
func IsPath(path []Index) (bool, error) {
	if len(path) < 2 {
		return false, nil
	}
	for k := 1; k < len(path); k++ {
		ok, err := AreNeighbors(path[k-1], path[k])
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// AreGrouped reports whether indices form a single connected group, moving
// only between neighbors that are both in the set. Duplicates are ignored and
// sets of at most one index are grouped.
func AreGrouped(indices []Index) (bool, error) {
	members := make(map[Index]bool, len(indices))
	for _, i := range indices {
		if _, err := FromIndex(i); err != nil {
			return false, err
		}
		members[i] = false
	}
	if len(members) <= 1 {
		return true, nil
	}

	stack := []Index{indices[0]}
	members[indices[0]] = true
	seen := 1
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		ns, err := Neighbors(cur)
		if err != nil {
			return false, err
		}
		for _, n := range ns {
			visited, ok := members[n]
			if !ok || visited {
				continue
			}
			members[n] = true
			seen++
			stack = append(stack, n)
		}
	}
	return seen == len(members), nil
}
