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

package store_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/codes/store"
	"github.com/jetsetilly/geckocodes/test"
)

func code(name string, enabled bool, address uint32) codes.Code {
	return codes.Code{
		Name:         name,
		Enabled:      enabled,
		Instructions: []codes.Instruction{{Address: address, Value: 1}},
	}
}

func names(l codes.List) []string {
	n := make([]string, 0, len(l))
	for _, c := range l {
		n = append(n, c.Name)
	}
	return n
}

func TestQueuedUntilCommit(t *testing.T) {
	a := code("a", true, 0x04001000)
	b := code("b", false, 0x04001004)

	s := store.NewStore(codes.List{a, b})
	test.ExpectEquality(t, len(s.Enabled()), 1)

	before := s.List()

	s.Toggle(b)
	s.Remove(a)
	s.Add(code("c", true, 0x04001008))
	test.ExpectEquality(t, s.Pending(), 3)

	// nothing has changed yet
	test.ExpectEquality(t, len(s.List()), 2)
	test.ExpectEquality(t, s.List()[1].Enabled, false)

	test.ExpectSuccess(t, s.Commit())
	test.ExpectEquality(t, s.Pending(), 0)
	test.ExpectFailure(t, s.Commit())

	l := s.List()
	test.DemandEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0].Name, "b")
	test.ExpectEquality(t, l[0].Enabled, true)
	test.ExpectEquality(t, l[1].Name, "c")
	test.ExpectEquality(t, l[1].UserDefined, true)
	test.ExpectEquality(t, len(s.Enabled()), 2)

	// list from before the commit is unchanged
	test.DemandEquality(t, len(before), 2)
	test.ExpectEquality(t, before[0].Name, "a")
	test.ExpectEquality(t, before[1].Enabled, false)
}

func TestSetEnabled(t *testing.T) {
	a := code("a", true, 0x04001000)
	s := store.NewStore(codes.List{a})

	s.SetEnabled(a, false)
	s.SetEnabled(a, false)
	s.Commit()
	test.ExpectEquality(t, s.List()[0].Enabled, false)

	// unknown code is ignored
	s.SetEnabled(code("x", false, 0), true)
	s.Remove(code("x", false, 0))
	s.Commit()
	test.ExpectEquality(t, len(s.List()), 1)
}

func TestDiscard(t *testing.T) {
	a := code("a", true, 0x04001000)
	s := store.NewStore(codes.List{a})
	s.Remove(a)
	s.Discard()
	test.ExpectFailure(t, s.Commit())
	test.ExpectEquality(t, len(s.List()), 1)
}

func TestMergeDownloaded(t *testing.T) {
	a := code("a", true, 0x04001000)
	s := store.NewStore(codes.List{a})

	dl := codes.List{
		code("a", true, 0x04001000),
		code("d", true, 0x04001010),
		code("e", false, 0x04001014),
	}
	s.MergeDownloaded(dl)
	s.Replace(codes.List{})
	s.Discard()

	s.MergeDownloaded(dl)
	s.Commit()

	l := s.List()
	test.ExpectEquality(t, len(l), 3)
	test.ExpectEquality(t, names(l)[1], "d")
	test.ExpectEquality(t, l[0].Enabled, true)
	test.ExpectEquality(t, l[1].Enabled, false)
	test.ExpectEquality(t, l[1].UserDefined, true)

	// the downloaded list was not changed
	test.ExpectEquality(t, dl[1].Enabled, true)
}

func TestReplace(t *testing.T) {
	s := store.NewStore(nil)
	s.Replace(codes.List{code("a", true, 0)})
	s.Commit()
	test.ExpectEquality(t, len(s.List()), 1)
}

func TestConcurrentQueue(t *testing.T) {
	s := store.NewStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Add(code("c", true, uint32(i)))
		}(i)
	}
	wg.Wait()

	s.Commit()
	test.ExpectEquality(t, len(s.List()), 8)
}

func TestAddInvalid(t *testing.T) {
	s := store.NewStore(nil)

	test.ExpectFailure(t, s.Add(code("Inf [HP]", true, 0x04001000)))
	test.ExpectFailure(t, s.Add(codes.Code{Name: "No Instructions"}))
	test.ExpectEquality(t, s.Pending(), 0)

	test.ExpectSuccess(t, s.Add(code("Inf HP", true, 0x04001000)))
	test.ExpectEquality(t, s.Pending(), 1)
}
