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

package local

import (
	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/inifile"
	"github.com/jetsetilly/geckocodes/logger"
	"github.com/jetsetilly/geckocodes/paths"
)

// StorageError is the pattern for errors caused by the settings files.
const StorageError = "storage: %v"

// sub-directories of the resource path for game settings.
const (
	settingsDir       = "GameSettings"
	globalSettingsDir = "GameSettings/global"
)

// GamePaths returns the paths of the global and local settings files for
// the game.
func GamePaths(gameID string) (global string, local string, err error) {
	if gameID == "" {
		return "", "", curated.Errorf(StorageError, "empty game id")
	}

	global, err = paths.ResourcePath(globalSettingsDir, gameID+".ini")
	if err != nil {
		return "", "", curated.Errorf(StorageError, err)
	}

	local, err = paths.ResourcePath(settingsDir, gameID+".ini")
	if err != nil {
		return "", "", curated.Errorf(StorageError, err)
	}

	return global, local, nil
}

// LoadGame loads the code list for the game from the settings files in the
// resource path. Missing settings files are not an error.
func LoadGame(gameID string) (codes.List, error) {
	globalPath, localPath, err := GamePaths(gameID)
	if err != nil {
		return nil, err
	}

	global, err := inifile.Load(globalPath)
	if err != nil {
		return nil, curated.Errorf(StorageError, err)
	}

	local, err := inifile.Load(localPath)
	if err != nil {
		return nil, curated.Errorf(StorageError, err)
	}

	list := Load(global, local)
	logger.Logf(logger.Allow, "local", "%s: %d codes", gameID, len(list))

	return list, nil
}

// SaveGame saves the code list for the game to the local settings file in
// the resource path. Sections in the file that are not used for codes are
// preserved.
func SaveGame(gameID string, list codes.List) error {
	_, localPath, err := GamePaths(gameID)
	if err != nil {
		return err
	}

	local, err := inifile.Load(localPath)
	if err != nil {
		return curated.Errorf(StorageError, err)
	}

	Save(local, list)

	if err := local.Save(localPath); err != nil {
		return curated.Errorf(StorageError, err)
	}

	logger.Logf(logger.Allow, "local", "%s: saved %d user defined codes", gameID, len(list.UserDefined()))

	return nil
}
