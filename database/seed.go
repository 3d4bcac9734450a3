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
	"context"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/logger"
)

// SeedCode is a single code in a seed file.
type SeedCode struct {
	Name   string   `yaml:"name"`
	Author string   `yaml:"author"`
	Lines  []string `yaml:"lines"`
	Notes  []string `yaml:"notes"`
}

// SeedGame is a single game in a seed file.
type SeedGame struct {
	ID    string     `yaml:"id"`
	Title string     `yaml:"title"`
	Codes []SeedCode `yaml:"codes"`
}

// Seed is the top level of a seed file.
type Seed struct {
	Games []SeedGame `yaml:"games"`
}

// Import the YAML seed file from the reader. Every line of every code is
// checked before anything is added to the database. Returns the number of
// codes added.
func (db *Session) Import(ctx context.Context, r io.Reader) (int, error) {
	var seed Seed

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&seed); err != nil {
		if err == io.EOF {
			return 0, nil
		}
		return 0, curated.Errorf("database: seed: %v", err)
	}

	type pending struct {
		gameID string
		code   codes.Code
	}
	var add []pending

	for _, g := range seed.Games {
		if g.ID == "" {
			return 0, curated.Errorf("database: seed: game with no id")
		}
		for _, sc := range g.Codes {
			c := codes.Code{
				Name:   sc.Name,
				Author: sc.Author,
				Notes:  sc.Notes,
			}
			for _, l := range sc.Lines {
				ins, err := codes.ParseLine(l)
				if err != nil {
					return 0, curated.Errorf("database: seed: %s: %s: %v", g.ID, sc.Name, err)
				}
				c.Instructions = append(c.Instructions, ins)
			}
			if err := c.Validate(); err != nil {
				return 0, curated.Errorf("database: seed: %s: %s: %v", g.ID, sc.Name, err)
			}
			add = append(add, pending{gameID: g.ID, code: c})
		}
	}

	for _, g := range seed.Games {
		if err := db.AddGame(ctx, g.ID, g.Title); err != nil {
			return 0, err
		}
	}

	for i, p := range add {
		if _, err := db.Add(ctx, p.gameID, p.code); err != nil {
			return i, err
		}
	}

	logger.Logf(logger.Allow, "database", "imported %d codes for %d games", len(add), len(seed.Games))

	return len(add), nil
}
