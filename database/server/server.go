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
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/database"
	"github.com/jetsetilly/geckocodes/logger"
)

// Server serves the codes in a database over HTTP.
//
// The route used by the remote package is:
//
//	GET /txt.php?txt=<game id>
//
// There is also a small JSON interface:
//
//	GET    /api/games/:id
//	POST   /api/games/:id/codes
//	DELETE /api/codes/:uuid
type Server struct {
	e  *echo.Echo
	db *database.Session
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(db *database.Session) *Server {
	srv := &Server{
		e:  echo.New(),
		db: db,
	}

	srv.e.HideBanner = true
	srv.e.HidePort = true
	srv.e.Use(middleware.Recover())
	srv.e.Use(logRequests)

	srv.e.GET("/txt.php", srv.txt)
	srv.e.GET("/api/games/:id", srv.game)
	srv.e.POST("/api/games/:id/codes", srv.addCode)
	srv.e.DELETE("/api/codes/:uuid", srv.deleteCode)

	return srv
}

// Handler returns the http.Handler for the server. Useful for testing.
func (srv *Server) Handler() http.Handler {
	return srv.e
}

// Start the server. Blocks until the server is shutdown.
func (srv *Server) Start(address string) error {
	logger.Logf(logger.Allow, "server", "listening on %s", address)
	err := srv.e.Start(address)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return curated.Errorf("server: %v", err)
	}
	return nil
}

// Shutdown the server, waiting for active requests to finish.
func (srv *Server) Shutdown(ctx context.Context) error {
	if err := srv.e.Shutdown(ctx); err != nil {
		return curated.Errorf("server: %v", err)
	}
	return nil
}

func logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		logger.Logf(logger.Allow, "server", "%s %s %d (%s)",
			c.Request().Method, c.Request().URL.RequestURI(), c.Response().Status, time.Since(start).Round(time.Microsecond))
		return nil
	}
}

func (srv *Server) txt(c echo.Context) error {
	id := c.QueryParam("txt")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing game id")
	}

	p, err := srv.db.Payload(c.Request().Context(), id)
	if err != nil {
		if curated.Is(err, database.NotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	return c.String(http.StatusOK, p)
}

// jsonCode is the JSON representation of a code.
type jsonCode struct {
	UUID   string   `json:"uuid,omitempty"`
	Name   string   `json:"name"`
	Author string   `json:"author,omitempty"`
	Lines  []string `json:"lines"`
	Notes  []string `json:"notes,omitempty"`
}

type jsonGame struct {
	ID    string     `json:"id"`
	Title string     `json:"title"`
	Codes []jsonCode `json:"codes"`
}

func (srv *Server) game(c echo.Context) error {
	g, ents, err := srv.db.SelectGame(c.Request().Context(), c.Param("id"))
	if err != nil {
		if curated.Is(err, database.NotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	jg := jsonGame{
		ID:    g.ID,
		Title: g.Title,
		Codes: make([]jsonCode, 0, len(ents)),
	}
	for _, ent := range ents {
		cd := ent.Code()
		jc := jsonCode{
			UUID:   ent.UUID,
			Name:   cd.Name,
			Author: cd.Author,
			Notes:  cd.Notes,
		}
		for _, ins := range cd.Instructions {
			jc.Lines = append(jc.Lines, codes.FormatLine(ins))
		}
		jg.Codes = append(jg.Codes, jc)
	}

	return c.JSON(http.StatusOK, jg)
}

func (srv *Server) addCode(c echo.Context) error {
	var jc jsonCode
	if err := c.Bind(&jc); err != nil {
		return err
	}

	cd := codes.Code{
		Name:   jc.Name,
		Author: jc.Author,
		Notes:  jc.Notes,
	}
	for _, l := range jc.Lines {
		ins, err := codes.ParseLine(l)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		cd.Instructions = append(cd.Instructions, ins)
	}
	if err := cd.Validate(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := srv.db.Add(c.Request().Context(), c.Param("id"), cd)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	jc.UUID = id
	return c.JSON(http.StatusCreated, jc)
}

func (srv *Server) deleteCode(c echo.Context) error {
	err := srv.db.Delete(c.Request().Context(), c.Param("uuid"))
	if err != nil {
		if curated.Is(err, database.NoEntry) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
