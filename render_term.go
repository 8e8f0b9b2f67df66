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

import "strings"

// TermString renders the symbol for an ANSI-capable terminal using the
// Unicode half-block character, packing two module rows into each
// character (foreground = top module, background = bottom module), so
// the printed matrix is close to square without doubling characters
// horizontally the way String does.
func (s *Symbol) TermString() string {
	mat := s.Matrix
	n := mat.Width()

	const (
		reset = "\x1b[0m"
		fgDark = "\x1b[30m"
		bgDark = "\x1b[40m"
		fgLight = "\x1b[37m"
		bgLight = "\x1b[47m"
	)

	cellColor := func(c Cell, fg bool) string {
		dark := c == Dark
		switch {
		case fg && dark:
			return fgDark
		case fg && !dark:
			return fgLight
		case !fg && dark:
			return bgDark
		default:
			return bgLight
		}
	}

	var sb strings.Builder
	for y := 0; y < n; y += 2 {
		for x := 0; x < n; x++ {
			top := mat.Get(x, y)
			bottom := Light
			if y+1 < n {
				bottom = mat.Get(x, y+1)
			}
			sb.WriteString(cellColor(top, true))
			sb.WriteString(cellColor(bottom, false))
			sb.WriteString("▀")
		}
		sb.WriteString(reset)
		sb.WriteString("\n")
	}
	return sb.String()
}
