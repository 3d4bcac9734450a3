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

package database

import (
	"strings"

	"github.com/uptrace/bun"

	"github.com/jetsetilly/geckocodes/codes"
)

// Game is a row in the games table.
type Game struct {
	bun.BaseModel `bun:"table:games,alias:g"`

	ID    string `bun:"id,pk"`
	Title string `bun:"title,notnull"`
}

// Entry is a row in the codes table. An entry is a single code for a single
// game.
type Entry struct {
	bun.BaseModel `bun:"table:codes,alias:c"`

	ID     int64  `bun:"id,pk,autoincrement"`
	UUID   string `bun:"uuid,notnull,unique"`
	GameID string `bun:"game_id,notnull"`
	Name   string `bun:"name,notnull"`
	Author string `bun:"author"`

	// instruction lines in the canonical format, separated by newlines
	Lines string `bun:"lines,notnull"`

	// notes separated by newlines
	Notes string `bun:"notes"`
}

func (ent Entry) String() string {
	if ent.Author == "" {
		return ent.Name
	}
	return ent.Name + " [" + ent.Author + "]"
}

// Code converts the entry to a codes.Code. Instruction lines that can not be
// parsed are dropped.
func (ent Entry) Code() codes.Code {
	c := codes.Code{
		Name:        ent.Name,
		Author:      ent.Author,
		UserDefined: true,
	}
	for _, l := range strings.Split(ent.Lines, "\n") {
		ins, err := codes.ParseLine(l)
		if err != nil {
			continue
		}
		c.Instructions = append(c.Instructions, ins)
	}
	if ent.Notes != "" {
		c.Notes = strings.Split(ent.Notes, "\n")
	}
	return c
}

// newEntry creates an entry from a codes.Code.
func newEntry(gameID string, c codes.Code) Entry {
	lines := make([]string, 0, len(c.Instructions))
	for _, ins := range c.Instructions {
		lines = append(lines, codes.FormatLine(ins))
	}
	return Entry{
		GameID: gameID,
		Name:   c.Name,
		Author: c.Author,
		Lines:  strings.Join(lines, "\n"),
		Notes:  strings.Join(c.Notes, "\n"),
	}
}
