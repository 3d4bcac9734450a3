// This file is part of Geckocodes.
//
// Geckocodes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Geckocodes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Geckocodes.  If not, see <https://www.gnu.org/licenses/>.

package codes

// Merge combines a global and a local list of codes.
//
// A local code that has the same identity as a global code replaces the
// enabled state of the global code. The global code keeps its position in
// the list. Local codes with no match in the global list are appended to the
// result in the order they appear in the local list and are marked as user
// defined.
//
// If more than one global code has the same identity then local codes are
// matched to them in list order. Neither input list is modified.
func Merge(global List, local List) List {
	merged := global.Clone()
	if merged == nil {
		merged = make(List, 0, len(local))
	}

	// indexes into the merged list for each identity. a slice so that
	// duplicates are matched in order
	idx := make(map[string][]int, len(merged))
	for i := range merged {
		id := merged[i].Identity()
		idx[id] = append(idx[id], i)
	}

	for _, c := range local {
		id := c.Identity()
		if m := idx[id]; len(m) > 0 {
			merged[m[0]].Enabled = c.Enabled
			merged[m[0]].Name = c.Name
			idx[id] = m[1:]
			continue
		}

		c = c.Clone()
		c.UserDefined = true
		merged = append(merged, c)
	}

	return merged
}
