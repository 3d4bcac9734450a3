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

package store

import (
	"sync"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/logger"
)

// a mutation returns a new list. the list argument must not be changed.
type mutation struct {
	desc string
	fn   func(codes.List) codes.List
}

// Store is the owner of the code list. Changes to the list are queued and
// only take effect when Commit() is called. The host should call Commit() at
// the frame boundary, outside of any call to vm.Handler.RunFrame().
//
// The list returned by List() and Enabled() is never changed by the Store.
// A commit always creates a new list.
type Store struct {
	crit sync.Mutex

	list    codes.List
	pending []mutation
}

// NewStore is the preferred method of initialisation for the Store type.
func NewStore(list codes.List) *Store {
	return &Store{
		list: list.Clone(),
	}
}

// List returns the committed code list.
func (s *Store) List() codes.List {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.list
}

// Enabled returns the enabled codes of the committed code list, in order.
func (s *Store) Enabled() codes.List {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.list.Enabled()
}

// Pending returns the number of queued changes.
func (s *Store) Pending() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return len(s.pending)
}

func (s *Store) queue(desc string, fn func(codes.List) codes.List) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.pending = append(s.pending, mutation{desc: desc, fn: fn})
}

// Commit applies all queued changes in the order they were queued. Returns
// true if there were any changes.
func (s *Store) Commit() bool {
	s.crit.Lock()
	defer s.crit.Unlock()

	if len(s.pending) == 0 {
		return false
	}

	l := s.list
	for _, m := range s.pending {
		l = m.fn(l)
		logger.Log(logger.Allow, "store", m.desc)
	}

	s.list = l
	s.pending = s.pending[:0]

	return true
}

// Discard all queued changes.
func (s *Store) Discard() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.pending = s.pending[:0]
}

// index of the code in the list with the same identity.
func index(l codes.List, c codes.Code) int {
	id := c.Identity()
	for i := range l {
		if l[i].Identity() == id {
			return i
		}
	}
	return -1
}

// SetEnabled queues a change to the enabled state of the code with the same
// identity as c.
func (s *Store) SetEnabled(c codes.Code, enabled bool) {
	s.queue("set enabled: "+c.Name, func(l codes.List) codes.List {
		i := index(l, c)
		if i == -1 {
			return l
		}
		n := l.Clone()
		n[i].Enabled = enabled
		return n
	})
}

// Toggle queues a change to the enabled state of the code with the same
// identity as c. The state is toggled relative to the state at the time the
// change is applied.
func (s *Store) Toggle(c codes.Code) {
	s.queue("toggle: "+c.Name, func(l codes.List) codes.List {
		i := index(l, c)
		if i == -1 {
			return l
		}
		n := l.Clone()
		n[i].Enabled = !n[i].Enabled
		return n
	})
}

// Add queues the addition of a code to the end of the list. The code is
// marked as user defined. A code that would not survive being saved and
// loaded is not queued and the error from codes.Code.Validate() is returned.
func (s *Store) Add(c codes.Code) error {
	if err := c.Validate(); err != nil {
		return err
	}
	c = c.Clone()
	c.UserDefined = true
	s.queue("add: "+c.Name, func(l codes.List) codes.List {
		n := l.Clone()
		return append(n, c)
	})
	return nil
}

// Remove queues the removal of the code with the same identity as c.
func (s *Store) Remove(c codes.Code) {
	s.queue("remove: "+c.Name, func(l codes.List) codes.List {
		i := index(l, c)
		if i == -1 {
			return l
		}
		n := l.Clone()
		return append(n[:i], n[i+1:]...)
	})
}

// Replace queues the replacement of the entire list.
func (s *Store) Replace(list codes.List) {
	list = list.Clone()
	s.queue("replace", func(_ codes.List) codes.List {
		return list
	})
}

// MergeDownloaded queues the merging of a downloaded list. Downloaded codes
// with the same identity as a code already in the list are ignored. All
// other downloaded codes are appended in order, disabled and marked as user
// defined.
func (s *Store) MergeDownloaded(downloaded codes.List) {
	downloaded = downloaded.Clone()
	s.queue("merge downloaded", func(l codes.List) codes.List {
		n := l.Clone()
		for _, c := range downloaded {
			if index(n, c) != -1 {
				continue
			}
			c.Enabled = false
			c.DefaultEnabled = false
			c.UserDefined = true
			n = append(n, c)
		}
		return n
	})
}
