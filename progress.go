// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2025 TotallyGamerJet

package andiff

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Progress holds the callbacks Diff reports ambient state through: which
// phase it's in (OnPhase) and free-text log lines (OnMessage). Diff never
// calls OnProgress; no fraction-complete values are reported. All fields
// are optional; a nil Progress is never reported to.
type Progress struct {
	OnPhase    func(phase string)
	OnProgress func(fraction float64)
	OnMessage  func(level, msg string)
}

func (p *Progress) phase(name string) {
	if p != nil && p.OnPhase != nil {
		p.OnPhase(name)
	}
}

func (p *Progress) fraction(f float64) {
	if p != nil && p.OnProgress != nil {
		p.OnProgress(f)
	}
}

func (p *Progress) infof(format string, args ...interface{}) {
	if p != nil && p.OnMessage != nil {
		p.OnMessage("info", fmt.Sprintf(format, args...))
	}
}

// sizeSummary renders a short human line describing the two inputs,
// shown once at the start of a Diff call.
func sizeSummary(sourceLen, targetLen int) string {
	return fmt.Sprintf("source %s, target %s", humanize.Bytes(uint64(sourceLen)), humanize.Bytes(uint64(targetLen)))
}
