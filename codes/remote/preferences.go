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
	"fmt"
	"time"

	"github.com/jetsetilly/geckocodes/paths"
	"github.com/jetsetilly/geckocodes/prefs"
)

// Default values for the remote preferences.
const (
	DefaultServer  = "https://codes.rc24.xyz"
	DefaultTimeout = 10 * time.Second
)

// Preferences for the remote code database.
type Preferences struct {
	dsk *prefs.Disk

	// address of the code database server, without a trailing slash
	Server prefs.String

	// maximum time allowed for a download
	Timeout prefs.Duration
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return fmt.Sprintf("remote.server :: %s\nremote.timeout :: %s\n", p.Server.String(), p.Timeout.String())
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

	err = p.dsk.Add("remote.server", &p.Server)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("remote.timeout", &p.Timeout)
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
	_ = p.Server.Set(DefaultServer)
	_ = p.Timeout.Set(DefaultTimeout)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
