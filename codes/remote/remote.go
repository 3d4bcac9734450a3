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
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/curated"
	"github.com/jetsetilly/geckocodes/logger"
)

// maximum size of a payload accepted from the server.
const maxPayload = 4 * 1024 * 1024

// Fetcher downloads codes from the remote code database. Instances of the
// Fetcher type can be used more than once and from more than one goroutine.
type Fetcher struct {
	Prefs  *Preferences
	client *http.Client
}

// NewFetcher is the preferred method of initialisation of the Fetcher type.
// If prefs is nil then the default preferences are used.
func NewFetcher(prefs *Preferences) *Fetcher {
	if prefs == nil {
		prefs = &Preferences{}
		prefs.SetDefaults()
	}
	return &Fetcher{
		Prefs:  prefs,
		client: &http.Client{},
	}
}

// URL returns the address used to download the codes for the game.
func (f *Fetcher) URL(gameID string) string {
	return fmt.Sprintf("%s/txt.php?txt=%s", f.Prefs.Server.String(), url.QueryEscape(gameID))
}

// Fetch the codes for the game. The time allowed for the download is limited
// by the Timeout preference, as well as by the context.
//
// Errors will have one of the NotFound, Unreachable or Malformed patterns.
func (f *Fetcher) Fetch(ctx context.Context, gameID string) (codes.List, error) {
	ctx, cancel := context.WithTimeout(ctx, f.Prefs.Timeout.Get().(time.Duration))
	defer cancel()

	statusCode, response, err := f.get(ctx, f.URL(gameID))
	if err != nil {
		return nil, curated.Errorf(Unreachable, err)
	}

	switch {
	case statusCode == http.StatusNotFound:
		return nil, curated.Errorf(NotFound, gameID)
	case statusCode < 200 || statusCode > 299:
		return nil, curated.Errorf(Unreachable, fmt.Errorf("unexpected response from server [%d]", statusCode))
	}

	list, err := Parse(gameID, response)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "remote", "%s: downloaded %d codes", gameID, len(list))

	return list, nil
}

func (f *Fetcher) get(ctx context.Context, addr string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return 0, []byte{}, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, []byte{}, err
	}
	defer resp.Body.Close()

	response, err := io.ReadAll(io.LimitReader(resp.Body, maxPayload+1))
	if err != nil {
		return resp.StatusCode, []byte{}, err
	}
	if len(response) > maxPayload {
		return resp.StatusCode, []byte{}, errors.New("response too large")
	}

	return resp.StatusCode, response, nil
}

// Result of a Download().
type Result struct {
	GameID string
	List   codes.List
	Err    error
}

// Download runs Fetch() in a new goroutine. The result is sent on the
// returned channel, which is then closed.
func (f *Fetcher) Download(ctx context.Context, gameID string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		list, err := f.Fetch(ctx, gameID)
		if err != nil {
			logger.Logf(logger.Allow, "remote", "%s: %v", gameID, err)
		}
		ch <- Result{GameID: gameID, List: list, Err: err}
	}()
	return ch
}
