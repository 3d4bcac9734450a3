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

package vm

import (
	"fmt"

	"github.com/jetsetilly/geckocodes/codes"
	"github.com/jetsetilly/geckocodes/logger"
)

// CodeResult is the Result for a named code.
type CodeResult struct {
	Name string
	Result
}

// FrameReport summarises a single call to Handler.RunFrame().
type FrameReport struct {
	Frame   int
	Results []CodeResult
	Faults  int
}

func (r FrameReport) String() string {
	return fmt.Sprintf("frame %d: %d codes, %d faults", r.Frame, len(r.Results), r.Faults)
}

// Handler runs the enabled codes of a code list once per frame.
type Handler struct {
	Prefs *Preferences

	frame int
}

// NewHandler is the preferred method of initialisation for the Handler type.
// If prefs is nil then the default preferences are used.
func NewHandler(prefs *Preferences) *Handler {
	if prefs == nil {
		prefs = &Preferences{}
		prefs.SetDefaults()
	}
	return &Handler{
		Prefs: prefs,
	}
}

// RunFrame runs every enabled code in the list, in list order. Each code
// runs to completion, or until the budget is exhausted, before the next code
// starts. Faults are logged and counted but never stop the frame.
//
// The list must not be changed while RunFrame() is running.
func (h *Handler) RunFrame(list codes.List, mem Memory) FrameReport {
	h.frame++

	report := FrameReport{
		Frame: h.frame,
	}

	in := NewInterpreter(mem, h.Prefs.Budget.Get().(int))

	for _, c := range list {
		if !c.Enabled {
			continue
		}

		res := in.Run(c)
		for _, f := range res.Faults {
			logger.Log(logger.Allow, "gecko", f)
		}
		report.Faults += len(res.Faults)
		report.Results = append(report.Results, CodeResult{Name: c.Name, Result: res})
	}

	return report
}
