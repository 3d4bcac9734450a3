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

package database_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/codes/remote"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/database"
	"github.com/jetsetilly/geckocodes/test"
)

const seed = `games:
  - id: GALE01
    title: Super Smash Bros. Melee
    codes:
      - name: Infinite Lives
        author: anon
        lines:
          - 04001000 00000063
        notes:
          - lives never decrease
      - name: Moon Jump
        lines:
          - 04001004 3f800000
          - 04001008 00000000
  - id: GMSE01
    title: Super Mario Sunshine
`

func open(t *testing.T) *database.Session {
	t.Helper()
	db, err := database.Open(context.Background(), "", false)
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	db := open(t)

	n, err := db.Import(ctx, strings.NewReader(seed))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 2)

	total, err := db.NumEntries(ctx)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, total, 2)

	g, ents, err := db.SelectGame(ctx, "GALE01")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Title, "Super Smash Bros. Melee")
	test.DemandEquality(t, len(ents), 2)
	test.ExpectEquality(t, ents[0].String(), "Infinite Lives [anon]")

	c := ents[1].Code()
	test.ExpectEquality(t, c.Name, "Moon Jump")
	test.ExpectEquality(t, len(c.Instructions), 2)
	test.ExpectEquality(t, c.Instructions[0].Value, uint32(0x3f800000))

	// game with no codes
	_, ents, err = db.SelectGame(ctx, "GMSE01")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(ents), 0)

	_, _, err = db.SelectGame(ctx, "XXXX01")
	test.ExpectSuccess(t, curated.Is(err, database.NotFound))
}

func TestImportBadLine(t *testing.T) {
	ctx := context.Background()
	db := open(t)

	_, err := db.Import(ctx, strings.NewReader(`games:
  - id: GALE01
    title: Melee
    codes:
      - name: Bad
        lines:
          - 0400100G 00000063
`))
	test.ExpectFailure(t, err)

	// nothing was added
	total, err := db.NumEntries(ctx)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, total, 0)
}

func TestAddDelete(t *testing.T) {
	ctx := context.Background()
	db := open(t)

	c := codes.Code{
		Name:         "Infinite Lives",
		Instructions: []codes.Instruction{{Address: 0x04001000, Value: 0x63}},
	}

	_, err := db.Add(ctx, "GALE01", c)
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, db.AddGame(ctx, "GALE01", "Melee"))
	test.DemandSuccess(t, db.AddGame(ctx, "GALE01", "Super Smash Bros. Melee"))

	id, err := db.Add(ctx, "GALE01", c)
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, id, "")

	_, err = db.Add(ctx, "GALE01", codes.Code{Name: "Empty"})
	test.ExpectFailure(t, err)

	_, err = db.Add(ctx, "GALE01", codes.Code{Name: "Inf [HP]", Instructions: c.Instructions})
	test.ExpectFailure(t, err)

	g, _, err := db.SelectGame(ctx, "GALE01")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Title, "Super Smash Bros. Melee")

	test.ExpectSuccess(t, db.Delete(ctx, id))
	test.ExpectSuccess(t, curated.Is(db.Delete(ctx, id), database.NoEntry))
}

func TestPayload(t *testing.T) {
	ctx := context.Background()
	db := open(t)

	_, err := db.Import(ctx, strings.NewReader(seed))
	test.DemandSuccess(t, err)

	p, err := db.Payload(ctx, "GALE01")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, `GALE01
Super Smash Bros. Melee

Infinite Lives [anon]
04001000 00000063
lives never decrease

Moon Jump
04001004 3f800000
04001008 00000000
`)

	// the payload can be read by the remote package
	list, err := remote.Parse("GALE01", []byte(p))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(list), 2)
	test.ExpectEquality(t, list[0].Author, "anon")
	test.ExpectEquality(t, list[0].Notes[0], "lives never decrease")

	// a game with no codes can be parsed but has no codes
	p, err = db.Payload(ctx, "GMSE01")
	test.DemandSuccess(t, err)
	_, err = remote.Parse("GMSE01", []byte(p))
	test.ExpectSuccess(t, curated.Is(err, remote.NotFound))
}

func TestList(t *testing.T) {
	ctx := context.Background()
	db := open(t)

	w := &test.CompareWriter{}
	test.DemandSuccess(t, db.List(ctx, w))
	test.ExpectSuccess(t, w.Compare("database is empty\n"))

	_, err := db.Import(ctx, strings.NewReader(seed))
	test.DemandSuccess(t, err)

	w.Clear()
	test.DemandSuccess(t, db.List(ctx, w))
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "Total: 2\n"))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "GALE01 Super Smash Bros. Melee\n"))
}
