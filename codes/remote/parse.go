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

package remote

import (
	"strings"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/logger"
)

// the number of lines at the start of the payload before the first block.
// the game id, the title of the game and a blank line
const headerLines = 3

// Parse the text payload returned by the code database.
//
// After the header, the payload is a series of blocks separated by blank
// lines. The first line of a block is the name of the code, optionally
// followed by the author in square brackets. The name is followed by code
// lines and then by notes. The first line that is not a code line starts
// the notes.
//
// Code lines that cannot be parsed are skipped. Codes with no instructions
// are dropped. All codes are user defined and disabled. There is no limit on
// the length of a line.
func Parse(gameID string, payload []byte) (codes.List, error) {
	lines := strings.Split(strings.TrimSuffix(string(payload), "\n"), "\n")
	if len(payload) == 0 {
		lines = nil
	}

	var header []string
	for len(header) < headerLines && len(lines) > 0 {
		header = append(header, strings.TrimRight(lines[0], "\r"))
		lines = lines[1:]
	}

	if len(header) < headerLines-1 || strings.TrimSpace(header[0]) == "" {
		return nil, curated.Errorf(Malformed, "missing header")
	}
	if len(header) == headerLines && strings.TrimSpace(header[2]) != "" {
		return nil, curated.Errorf(Malformed, "header not terminated")
	}

	const (
		readName = iota
		readCode
		readNotes
	)

	list := make(codes.List, 0)
	blocks := 0

	var c codes.Code
	state := readName

	commit := func() {
		if state == readName {
			return
		}
		blocks++
		if len(c.Instructions) == 0 {
			logger.Logf(logger.Allow, "remote", "dropping %s: no instructions", c.Name)
		} else {
			list = append(list, c)
		}
		c = codes.Code{}
		state = readName
	}

	for _, l := range lines {
		l = strings.TrimRight(l, "\r")

		if strings.TrimSpace(l) == "" {
			commit()
			continue
		}

		switch state {
		case readName:
			c.Name, c.Author = codes.ParseTitle(l)
			c.UserDefined = true
			state = readCode

		case readCode:
			if codes.IsCodeLine(l) {
				ins, err := codes.ParseLine(l)
				if err != nil {
					logger.Logf(logger.Allow, "remote", "%s: skipping line: %v", c.Name, err)
					continue
				}
				c.Instructions = append(c.Instructions, ins)
				continue
			}
			state = readNotes
			c.Notes = append(c.Notes, l)

		case readNotes:
			c.Notes = append(c.Notes, l)
		}
	}
	commit()

	if blocks == 0 {
		return nil, curated.Errorf(NotFound, gameID)
	}

	if len(list) == 0 {
		return nil, curated.Errorf(Malformed, "no usable codes")
	}

	return list, nil
}
