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

package paths

import (
	"path/filepath"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths.
//
// The path parameter should not include the filename of the resource, which
// should be specified in the file parameter. The directories named in path
// will be created if they do not exist. Either parameter can be the empty
// string.
func ResourcePath(path string, file string) (string, error) {
	basePath, err := getBasePath(path)
	if err != nil {
		return "", err
	}
	return filepath.Join(basePath, file), nil
}
