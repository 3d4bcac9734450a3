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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/codes/local"
	"github.com/jetsetilly/geckocodes/codes/remote"
	"github.com/jetsetilly/geckocodes/codes/store"
	"github.com/jetsetilly/geckocodes/codes/vm"
	"github.com/jetsetilly/geckocodes/database"
	"github.com/jetsetilly/geckocodes/database/server"
	"github.com/jetsetilly/geckocodes/logger"
	"github.com/jetsetilly/geckocodes/memory"
	"github.com/jetsetilly/geckocodes/memory/bus"
	"github.com/jetsetilly/geckocodes/modalflag"
	"github.com/jetsetilly/geckocodes/paths"
	"github.com/jetsetilly/geckocodes/prefs"
	"github.com/jetsetilly/geckocodes/statsview"
)

func main() {
	// cancelled on interrupt. long running modes (SERVE, DOWNLOAD) watch the
	// context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(launch(ctx, os.Args[1:], os.Stdout))
}

// launch returns the exit value for the program.
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("LIST", "DOWNLOAD", "RUN", "SERVE", "SEED")
	echo := md.AddBool("log", false, "echo log to stderr")
	cmdPrefs := md.AddString("prefs", "", "preferences for this run (eg. \"vm.budget::1000; remote.timeout::5s\")")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *echo {
		logger.SetEcho(logger.NewColorizer(os.Stderr))
		defer logger.SetEcho(nil)
	}

	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				fmt.Fprintf(output, "* unused preferences: %s\n", unused)
			}
		}()
	}

	switch md.Mode() {
	case "LIST":
		err = list(md)

	case "DOWNLOAD":
		err = download(ctx, md)

	case "RUN":
		err = run(md)

	case "SERVE":
		err = serve(ctx, md)

	case "SEED":
		err = seed(ctx, md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func writeList(output io.Writer, list codes.List) {
	for _, c := range list {
		state := " "
		if c.Enabled {
			state = "x"
		}
		user := ""
		if c.UserDefined {
			user = " (user)"
		}
		fmt.Fprintf(output, "[%s] %s%s\n", state, c.Title()[1:], user)
	}
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	game := md.AddString("game", "", "game id")
	dump := md.AddBool("dump", false, "dump code list in full")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	// list all games with settings files if no game has been specified
	if *game == "" {
		return listGames(md.Output)
	}

	l, err := local.LoadGame(*game)
	if err != nil {
		return err
	}

	if *dump {
		spew.Fdump(md.Output, l)
		return nil
	}

	if len(l) == 0 {
		fmt.Fprintf(md.Output, "no codes for %s\n", *game)
		return nil
	}

	writeList(md.Output, l)

	return nil
}

func listGames(output io.Writer) error {
	globalPath, localPath, err := local.GamePaths("_")
	if err != nil {
		return err
	}

	games := make(map[string]bool)
	for _, dir := range []string{filepath.Dir(globalPath), filepath.Dir(localPath)} {
		ents, err := os.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, e := range ents {
			if e.IsDir() || filepath.Ext(e.Name()) != ".ini" {
				continue
			}
			games[strings.TrimSuffix(e.Name(), ".ini")] = true
		}
	}

	if len(games) == 0 {
		fmt.Fprintln(output, "no game settings")
		return nil
	}

	ids := make([]string, 0, len(games))
	for id := range games {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Fprintln(output, id)
	}

	return nil
}

func download(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	game := md.AddString("game", "", "game id")
	srv := md.AddString("server", "", "code database server")
	timeout := md.AddDuration("timeout", 0, "download timeout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.Require("game"); err != nil {
		return err
	}

	pref, err := remote.NewPreferences()
	if err != nil {
		return err
	}

	if *srv != "" {
		if err := pref.Server.Set(strings.TrimSuffix(*srv, "/")); err != nil {
			return err
		}
	}
	if *timeout > 0 {
		if err := pref.Timeout.Set(*timeout); err != nil {
			return err
		}
	}

	l, err := local.LoadGame(*game)
	if err != nil {
		return err
	}
	st := store.NewStore(l)

	fmt.Fprintf(md.Output, "downloading from %s\n", pref.Server.String())

	f := remote.NewFetcher(pref)
	res := <-f.Download(ctx, *game)
	if res.Err != nil {
		return res.Err
	}

	st.MergeDownloaded(res.List)
	st.Commit()

	added := len(st.List()) - len(l)
	fmt.Fprintf(md.Output, "%d codes downloaded. %d new\n", len(res.List), added)

	return local.SaveGame(*game, st.List())
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	game := md.AddString("game", "", "game id")
	image := md.AddString("image", "", "memory image file")
	frames := md.AddInt("frames", 1, "number of frames to run")
	origin := md.AddHex("origin", memory.OriginMEM1, "address of the first byte of the memory image")
	poke := md.AddString("poke", "", "bytes to poke before the first frame (eg. \"80001000=ff,80001001=01\")")
	peek := md.AddHex("peek", 0, "address of sixteen bytes to show after the last frame")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.Require("game", "image"); err != nil {
		return err
	}

	l, err := local.LoadGame(*game)
	if err != nil {
		return err
	}
	st := store.NewStore(l)

	fi, err := os.Stat(*image)
	if err != nil {
		return err
	}

	ram, err := memory.NewRAM(*origin, uint32(fi.Size()))
	if err != nil {
		return err
	}

	err = func() error {
		f, err := os.Open(*image)
		if err != nil {
			return err
		}
		defer f.Close()
		return ram.Load(f)
	}()
	if err != nil {
		return err
	}

	if err := pokeBytes(ram, *poke); err != nil {
		return err
	}

	pref, err := vm.NewPreferences()
	if err != nil {
		return err
	}
	h := vm.NewHandler(pref)

	for i := 0; i < *frames; i++ {
		st.Commit()
		report := h.RunFrame(st.Enabled(), ram)
		fmt.Fprintln(md.Output, report)
		for _, r := range report.Results {
			fmt.Fprintf(md.Output, "  %s: %s after %d instructions\n", r.Name, r.State, r.Executed)
		}
	}

	if *peek != 0 {
		if err := peekBytes(md.Output, ram, *peek); err != nil {
			return err
		}
	}

	f, err := os.Create(*image)
	if err != nil {
		return err
	}
	defer f.Close()

	return ram.Save(f)
}

// pokeBytes writes the comma separated list of address=value pairs to
// memory. Addresses and values are hexadecimal.
func pokeBytes(mem bus.DebuggerBus, pokes string) error {
	if strings.TrimSpace(pokes) == "" {
		return nil
	}

	for _, p := range strings.Split(pokes, ",") {
		a, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok {
			return fmt.Errorf("poke: malformed (%s)", p)
		}
		addr, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(a), "0x"), 16, 32)
		if err != nil {
			return fmt.Errorf("poke: address: %w", err)
		}
		val, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(v), "0x"), 16, 8)
		if err != nil {
			return fmt.Errorf("poke: value: %w", err)
		}
		if err := mem.Poke(uint32(addr), uint8(val)); err != nil {
			return fmt.Errorf("poke: %w", err)
		}
	}

	return nil
}

// peekBytes writes a line of sixteen bytes from memory, starting at address.
func peekBytes(output io.Writer, mem bus.DebuggerBus, address uint32) error {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%08x:", address))
	for i := uint32(0); i < 16; i++ {
		v, err := mem.Peek(address + i)
		if err != nil {
			return fmt.Errorf("peek: %w", err)
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	s.WriteString("\n")
	_, err := io.WriteString(output, s.String())
	return err
}

// resolve database path. relative paths are relative to the resource path.
func databasePath(pth string) (string, error) {
	if filepath.IsAbs(pth) {
		return pth, nil
	}
	return paths.ResourcePath("", pth)
}

func serve(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	addr := md.AddString("addr", "", "address to listen on")
	db := md.AddString("db", "", "database file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("launch statsview (available: %v)", statsview.Available()))
	debug := md.AddBool("debug", false, "print database queries")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := server.NewPreferences()
	if err != nil {
		return err
	}
	if *addr != "" {
		if err := pref.Address.Set(*addr); err != nil {
			return err
		}
	}
	if *db != "" {
		if err := pref.Database.Set(*db); err != nil {
			return err
		}
	}

	pth, err := databasePath(pref.Database.String())
	if err != nil {
		return err
	}

	sess, err := database.Open(ctx, pth, *debug)
	if err != nil {
		return err
	}
	defer sess.Close()

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		defer statsview.Launch(md.Output)()
	}

	srv := server.NewServer(sess)

	done := make(chan error, 1)
	go func() {
		done <- srv.Start(pref.Address.String())
	}()

	fmt.Fprintf(md.Output, "serving %s on %s\n", pth, pref.Address.String())

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}

	return srv.Shutdown(context.Background())
}

func seed(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	db := md.AddString("db", server.DefaultDatabase, "database file")
	show := md.AddBool("list", false, "list the contents of the database after the import")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("seed file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pth, err := databasePath(*db)
	if err != nil {
		return err
	}

	sess, err := database.Open(ctx, pth, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := sess.Import(ctx, f)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d codes added to %s\n", n, pth)

	if *show {
		return sess.List(ctx, md.Output)
	}

	return nil
}
