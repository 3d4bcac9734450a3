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

package server

import (
	"fmt"

	"github.com/jetsetilly/geckocodes/paths"
	"github.com/jetsetilly/geckocodes/prefs"
)

// Default values for the server preferences.
const (
	DefaultAddress  = ":8024"
	DefaultDatabase = "codes.db"
)

// Preferences for the code database server.
type Preferences struct {
	dsk *prefs.Disk

	// address to listen on
	Address prefs.String

	// path to the database file. a relative path is relative to the
	// resource path
	Database prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("database.path :: %s\nserver.address :: %s\n", p.Database.String(), p.Address.String())
	}
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("server.address", &p.Address)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("database.path", &p.Database)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.Address.Set(DefaultAddress)
	_ = p.Database.Set(DefaultDatabase)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
