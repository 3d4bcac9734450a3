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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/geckocodes/test"
)

func chdir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

const settings = `[Gecko]
$Set Byte [tester]
00000010 000000ab
$Not Enabled
00000011 000000cd
[Gecko_Enabled]
$Set Byte
`

func TestLaunchList(t *testing.T) {
	chdir(t)

	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"list"}, out), 0)
	test.ExpectEquality(t, out.String(), "no game settings\n")

	test.DemandSuccess(t, os.MkdirAll(filepath.Join(".geckocodes", "GameSettings"), 0o755))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(".geckocodes", "GameSettings", "GALE01.ini"), []byte(settings), 0o644))

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"list"}, out), 0)
	test.ExpectEquality(t, out.String(), "GALE01\n")

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"list", "-game", "GALE01"}, out), 0)
	test.ExpectEquality(t, out.String(), "[x] Set Byte [tester] (user)\n[ ] Not Enabled (user)\n")
}

func TestLaunchRun(t *testing.T) {
	chdir(t)

	test.DemandSuccess(t, os.MkdirAll(filepath.Join(".geckocodes", "GameSettings"), 0o755))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(".geckocodes", "GameSettings", "GALE01.ini"), []byte(settings), 0o644))
	test.DemandSuccess(t, os.WriteFile("mem.bin", make([]byte, 32), 0o644))

	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"run", "-game", "GALE01", "-image", "mem.bin", "-frames", "2"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "frame 2: 1 codes, 0 faults"))

	b, err := os.ReadFile("mem.bin")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(b), 32)
	test.ExpectEquality(t, b[0x10], uint8(0xab))
	test.ExpectEquality(t, b[0x11], uint8(0x00))
}

func TestLaunchRunPokePeek(t *testing.T) {
	chdir(t)

	test.DemandSuccess(t, os.MkdirAll(filepath.Join(".geckocodes", "GameSettings"), 0o755))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(".geckocodes", "GameSettings", "GALE01.ini"), []byte(settings), 0o644))
	test.DemandSuccess(t, os.WriteFile("mem.bin", make([]byte, 32), 0o644))

	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"run", "-game", "GALE01", "-image", "mem.bin",
		"-poke", "80000012=7f, 0x8000001f=01", "-peek", "80000010"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(),
		"80000010: ab 00 7f 00 00 00 00 00 00 00 00 00 00 00 00 01\n"))

	b, err := os.ReadFile("mem.bin")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, b[0x12], uint8(0x7f))

	// poking outside of the image is an error
	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"run", "-game", "GALE01", "-image", "mem.bin",
		"-poke", "80000020=01"}, out), 20)

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"run", "-game", "GALE01", "-image", "mem.bin",
		"-poke", "80000010"}, out), 20)
}

func TestLaunchSeed(t *testing.T) {
	chdir(t)

	test.DemandSuccess(t, os.WriteFile("seed.yaml", []byte(`games:
  - id: GALE01
    title: Melee
    codes:
      - name: Infinite Lives
        lines:
          - 04001000 00000063
`), 0o644))

	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"seed", "-db", "codes.db", "-list", "seed.yaml"}, out), 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "1 codes added"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "GALE01 Melee\n"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "Total: 1\n"))
}

func TestLaunchErrors(t *testing.T) {
	chdir(t)

	out := &strings.Builder{}
	test.ExpectEquality(t, launch(context.Background(), []string{"run"}, out), 20)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "* error in RUN mode"))

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"seed"}, out), 20)

	out.Reset()
	test.ExpectEquality(t, launch(context.Background(), []string{"list", "-nosuchflag"}, out), 20)
}
