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
	"strings"
)

// Payload returns the codes for the game in the text format understood by
// remote.Parse(). Returns an error with the NotFound pattern if the game is
// not in the database.
func (db *Session) Payload(ctx context.Context, gameID string) (string, error) {
	g, ents, err := db.SelectGame(ctx, gameID)
	if err != nil {
		return "", err
	}

	s := strings.Builder{}
	s.WriteString(g.ID)
	s.WriteString("\n")
	s.WriteString(g.Title)
	s.WriteString("\n")

	for _, ent := range ents {
		s.WriteString("\n")
		s.WriteString(ent.String())
		s.WriteString("\n")
		if ent.Lines != "" {
			s.WriteString(ent.Lines)
			s.WriteString("\n")
		}
		if ent.Notes != "" {
			s.WriteString(ent.Notes)
			s.WriteString("\n")
		}
	}

	return s.String(), nil
}
