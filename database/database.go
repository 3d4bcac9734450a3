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
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/logger"
)

// Error patterns returned by the database.
const (
	NotFound = "database: no codes for game (%s)"
	NoEntry  = "database: no entry (%s)"
)

// Session is an open code database.
type Session struct {
	db *bun.DB
}

// Open the database at path. An empty path opens a new database in memory.
// If debug is true then every query is printed.
func Open(ctx context.Context, path string, debug bool) (*Session, error) {
	dsn := fmt.Sprintf("file:%s?cache=shared", path)
	if path == "" {
		// every in-memory database has a unique name so that they don't
		// share the same cache
		dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, curated.Errorf("database: %v", err)
	}
	sqldb.SetMaxOpenConns(1)

	db := &Session{
		db: bun.NewDB(sqldb, sqlitedialect.New()),
	}

	db.db.AddQueryHook(bundebug.NewQueryHook(
		bundebug.WithVerbose(debug),
		bundebug.WithEnabled(debug),
	))

	for _, m := range []any{(*Game)(nil), (*Entry)(nil)} {
		_, err = db.db.NewCreateTable().Model(m).IfNotExists().Exec(ctx)
		if err != nil {
			sqldb.Close()
			return nil, curated.Errorf("database: %v", err)
		}
	}

	_, err = db.db.NewCreateIndex().Model((*Entry)(nil)).Index("codes_game_id_idx").IfNotExists().Column("game_id").Exec(ctx)
	if err != nil {
		sqldb.Close()
		return nil, curated.Errorf("database: %v", err)
	}

	logger.Logf(logger.Allow, "database", "opened %s", dsn)

	return db, nil
}

// Close the database.
func (db *Session) Close() error {
	if err := db.db.Close(); err != nil {
		return curated.Errorf("database: %v", err)
	}
	return nil
}

// AddGame adds a game to the database. If the game already exists then the
// title is updated.
func (db *Session) AddGame(ctx context.Context, id string, title string) error {
	g := Game{ID: id, Title: title}
	_, err := db.db.NewInsert().Model(&g).
		On("CONFLICT (id) DO UPDATE").
		Set("title = EXCLUDED.title").
		Exec(ctx)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}
	return nil
}

// Add a code for a game. The game must have been added with AddGame(). The
// UUID of the new entry is returned.
func (db *Session) Add(ctx context.Context, gameID string, c codes.Code) (string, error) {
	exists, err := db.db.NewSelect().Model((*Game)(nil)).Where("id = ?", gameID).Exists(ctx)
	if err != nil {
		return "", curated.Errorf("database: %v", err)
	}
	if !exists {
		return "", curated.Errorf("database: unknown game (%s)", gameID)
	}

	if err := c.Validate(); err != nil {
		return "", curated.Errorf("database: %v", err)
	}

	ent := newEntry(gameID, c)
	ent.UUID = uuid.NewString()

	_, err = db.db.NewInsert().Model(&ent).Exec(ctx)
	if err != nil {
		return "", curated.Errorf("database: %v", err)
	}

	return ent.UUID, nil
}

// Delete the entry with the UUID.
func (db *Session) Delete(ctx context.Context, id string) error {
	res, err := db.db.NewDelete().Model((*Entry)(nil)).Where("uuid = ?", id).Exec(ctx)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return curated.Errorf("database: %v", err)
	}
	if n == 0 {
		return curated.Errorf(NoEntry, id)
	}
	return nil
}

// NumEntries returns the number of codes in the database.
func (db *Session) NumEntries(ctx context.Context) (int, error) {
	n, err := db.db.NewSelect().Model((*Entry)(nil)).Count(ctx)
	if err != nil {
		return 0, curated.Errorf("database: %v", err)
	}
	return n, nil
}

// SelectGame returns the game and its entries in the order they were added.
// Returns an error with the NotFound pattern if the game is not in the
// database.
func (db *Session) SelectGame(ctx context.Context, gameID string) (Game, []Entry, error) {
	var g Game
	err := db.db.NewSelect().Model(&g).Where("id = ?", gameID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Game{}, nil, curated.Errorf(NotFound, gameID)
		}
		return Game{}, nil, curated.Errorf("database: %v", err)
	}

	var ents []Entry
	err = db.db.NewSelect().Model(&ents).Where("game_id = ?", gameID).Order("id ASC").Scan(ctx)
	if err != nil {
		return Game{}, nil, curated.Errorf("database: %v", err)
	}

	return g, ents, nil
}

// SelectAll calls onSelect for every game in the database, in game ID order.
func (db *Session) SelectAll(ctx context.Context, onSelect func(Game, []Entry) error) error {
	var games []Game
	err := db.db.NewSelect().Model(&games).Order("id ASC").Scan(ctx)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	for _, g := range games {
		_, ents, err := db.SelectGame(ctx, g.ID)
		if err != nil {
			return err
		}
		if err := onSelect(g, ents); err != nil {
			return err
		}
	}

	return nil
}

// List writes a summary of the database to output.
func (db *Session) List(ctx context.Context, output io.Writer) error {
	total := 0
	err := db.SelectAll(ctx, func(g Game, ents []Entry) error {
		if _, err := io.WriteString(output, fmt.Sprintf("%s %s\n", g.ID, g.Title)); err != nil {
			return err
		}
		for _, ent := range ents {
			if _, err := io.WriteString(output, fmt.Sprintf("  %s %s\n", ent.UUID, ent)); err != nil {
				return err
			}
		}
		total += len(ents)
		return nil
	})
	if err != nil {
		return err
	}

	if total == 0 {
		_, err = io.WriteString(output, "database is empty\n")
		return err
	}

	_, err = io.WriteString(output, fmt.Sprintf("Total: %d\n", total))
	return err
}
