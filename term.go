// Copyright © 2026 The qrcodec Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIC
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qrcodec

import (
	"os"

	"golang.org/x/term"
)

// IsTerminalANSI reports whether fd refers to a terminal that can be
// expected to render the half-block output of Symbol.TermString
// correctly. Callers typically pass os.Stdout.Fd().
func IsTerminalANSI(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// StdoutIsTerminal is a convenience wrapper around IsTerminalANSI for
// os.Stdout, used by the demo command to decide between ANSI and plain
// ASCII rendering.
func StdoutIsTerminal() bool {
	return IsTerminalANSI(os.Stdout.Fd())
}
