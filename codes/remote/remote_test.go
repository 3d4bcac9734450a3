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

package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jetsetilly/geckocodes/codes/remote"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/test"
)

func newServer(t *testing.T, delay time.Duration) *httptest.Server {
	t.Helper()

	e := echo.New()
	e.HideBanner = true
	e.GET("/txt.php", func(c echo.Context) error {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-c.Request().Context().Done():
				return nil
			}
		}
		switch c.QueryParam("txt") {
		case "GALE01":
			return c.String(http.StatusOK, payload)
		case "ERROR1":
			return c.String(http.StatusInternalServerError, "error")
		case "EMPTY1":
			return c.String(http.StatusOK, "EMPTY1\nTitle\n\n")
		case "HTML01":
			return c.String(http.StatusOK, "<html>\n<body>\n</body>\n</html>\n")
		}
		return c.String(http.StatusNotFound, "")
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func newFetcher(t *testing.T, srv *httptest.Server) *remote.Fetcher {
	t.Helper()
	f := remote.NewFetcher(nil)
	test.DemandSuccess(t, f.Prefs.Server.Set(srv.URL))
	return f
}

func TestFetch(t *testing.T) {
	f := newFetcher(t, newServer(t, 0))

	list, err := f.Fetch(context.Background(), "GALE01")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(list), 2)

	_, err = f.Fetch(context.Background(), "GALE02")
	test.ExpectSuccess(t, curated.Is(err, remote.NotFound))

	_, err = f.Fetch(context.Background(), "EMPTY1")
	test.ExpectSuccess(t, curated.Is(err, remote.NotFound))

	_, err = f.Fetch(context.Background(), "HTML01")
	test.ExpectSuccess(t, curated.Is(err, remote.Malformed))

	_, err = f.Fetch(context.Background(), "ERROR1")
	test.ExpectSuccess(t, curated.Is(err, remote.Unreachable))
}

func TestUnreachable(t *testing.T) {
	srv := newServer(t, 0)
	f := newFetcher(t, srv)
	srv.Close()

	_, err := f.Fetch(context.Background(), "GALE01")
	test.ExpectSuccess(t, curated.Is(err, remote.Unreachable))
}

func TestTimeout(t *testing.T) {
	f := newFetcher(t, newServer(t, time.Second))
	test.DemandSuccess(t, f.Prefs.Timeout.Set(50*time.Millisecond))

	_, err := f.Fetch(context.Background(), "GALE01")
	test.ExpectSuccess(t, curated.Is(err, remote.Unreachable))

	// cancellation by the caller is the same as a timeout
	test.DemandSuccess(t, f.Prefs.Timeout.Set(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Fetch(ctx, "GALE01")
	test.ExpectSuccess(t, curated.Is(err, remote.Unreachable))
}

func TestDownload(t *testing.T) {
	f := newFetcher(t, newServer(t, 0))

	res := <-f.Download(context.Background(), "GALE01")
	test.ExpectSuccess(t, res.Err)
	test.ExpectEquality(t, res.GameID, "GALE01")
	test.ExpectEquality(t, len(res.List), 2)

	ch := f.Download(context.Background(), "GALE02")
	res = <-ch
	test.ExpectSuccess(t, curated.Is(res.Err, remote.NotFound))

	// channel is closed after the result
	_, ok := <-ch
	test.ExpectFailure(t, ok)
}

func TestURL(t *testing.T) {
	f := remote.NewFetcher(nil)
	test.ExpectEquality(t, f.URL("GALE01"), "https://codes.rc24.xyz/txt.php?txt=GALE01")
}

func TestDefaultPreferences(t *testing.T) {
	f := remote.NewFetcher(nil)
	test.ExpectEquality(t, f.Prefs.String(), "remote.server :: https://codes.rc24.xyz\nremote.timeout :: 10s\n")
	test.ExpectSuccess(t, f.Prefs.Save())
}
