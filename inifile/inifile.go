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

package inifile

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/logger"
)

// MaxLineLen is the longest line that Read() will accept. Longer lines are
// dropped.
const MaxLineLen = 64 * 1024

// File is an INI file made up of named sections, each section being a list
// of lines. The order of sections is the order in which they were first
// seen, or first set.
type File struct {
	sections *orderedmap.OrderedMap[string, []string]
}

// NewFile is the preferred method of initialisation for the File type.
func NewFile() *File {
	return &File{
		sections: orderedmap.New[string, []string](),
	}
}

// Read an INI file from the reader. Blank lines are dropped. Lines before
// the first section header are ignored. Lines longer than MaxLineLen are
// dropped without affecting the rest of the file.
func Read(r io.Reader) (*File, error) {
	f := NewFile()

	var section string
	var inSection bool

	err := readLines(r, func(l string) {
		l = strings.TrimSpace(l)
		if l == "" {
			return
		}

		if l[0] == '[' && l[len(l)-1] == ']' {
			section = strings.TrimSpace(l[1 : len(l)-1])
			inSection = true
			if _, ok := f.sections.Get(section); !ok {
				f.sections.Set(section, []string{})
			}
			return
		}

		if !inSection {
			return
		}

		lines, _ := f.sections.Get(section)
		f.sections.Set(section, append(lines, l))
	})
	if err != nil {
		return nil, curated.Errorf("inifile: %v", err)
	}

	return f, nil
}

// readLines calls fn for every line read from r. The line ending is not
// included. Lines longer than MaxLineLen are skipped without being held in
// memory.
func readLines(r io.Reader, fn func(string)) error {
	br := bufio.NewReader(r)

	var line []byte
	var long bool
	var num int

	for {
		frag, isPrefix, err := br.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if !long {
			line = append(line, frag...)
			if len(line) > MaxLineLen {
				long = true
				line = line[:0]
			}
		}

		if isPrefix {
			continue
		}

		num++
		if long {
			logger.Logf(logger.Allow, "inifile", "line %d: dropped: longer than %d bytes", num, MaxLineLen)
			long = false
		} else {
			fn(string(line))
		}
		line = line[:0]
	}
}

// Load the INI file at path. A file that does not exist is not an error and
// results in an empty File.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewFile(), nil
		}
		return nil, curated.Errorf("inifile: %v", err)
	}
	defer fh.Close()
	return Read(fh)
}

// Save the File to path, creating the parent directory if necessary.
func (f *File) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return curated.Errorf("inifile: %v", err)
	}

	s := strings.Builder{}
	if err := f.Write(&s); err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(s.String()), 0o644); err != nil {
		return curated.Errorf("inifile: %v", err)
	}

	return nil
}

// Write the File to the writer. Sections with no lines are not written.
func (f *File) Write(w io.Writer) error {
	first := true
	for p := f.sections.Oldest(); p != nil; p = p.Next() {
		if len(p.Value) == 0 {
			continue
		}
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return curated.Errorf("inifile: %v", err)
			}
		}
		first = false

		if _, err := io.WriteString(w, "["+p.Key+"]\n"); err != nil {
			return curated.Errorf("inifile: %v", err)
		}
		for _, l := range p.Value {
			if _, err := io.WriteString(w, l+"\n"); err != nil {
				return curated.Errorf("inifile: %v", err)
			}
		}
	}
	return nil
}

func (f *File) String() string {
	s := strings.Builder{}
	_ = f.Write(&s)
	return s.String()
}

// Sections returns the names of all sections in order.
func (f *File) Sections() []string {
	s := make([]string, 0, f.sections.Len())
	for p := f.sections.Oldest(); p != nil; p = p.Next() {
		s = append(s, p.Key)
	}
	return s
}

// Lines returns a copy of the lines in the named section. The boolean is
// false if the section does not exist.
func (f *File) Lines(section string) ([]string, bool) {
	lines, ok := f.sections.Get(section)
	if !ok {
		return nil, false
	}
	return append([]string{}, lines...), true
}

// SetLines replaces the lines in the named section. An empty list of lines
// removes the section.
func (f *File) SetLines(section string, lines []string) {
	if len(lines) == 0 {
		f.sections.Delete(section)
		return
	}
	f.sections.Set(section, append([]string{}, lines...))
}
