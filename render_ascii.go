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
	"fmt"
	"strings"
)

// String renders a human-readable dump of the symbol: its parameters
// followed by a full-block/space rendering of the matrix, two
// characters per module so terminal fonts (usually twice as tall as
// wide) show roughly square modules.
func (s *Symbol) String() string {
	var sb strings.Builder
	sb.WriteString("Symbol\n")
	fmt.Fprintf(&sb, "\tVersion: %d\n", s.Version)
	fmt.Fprintf(&sb, "\tSize: %d\n", s.Matrix.Width())
	fmt.Fprintf(&sb, "\tECC: %s\n", s.ECC)
	fmt.Fprintf(&sb, "\tMask: %d\n", s.Mask)
	sb.WriteString("\tMatrix\n")

	n := s.Matrix.Width()
	for y := 0; y < n; y++ {
		sb.WriteString("\t\t")
		for x := 0; x < n; x++ {
			if s.Matrix.Get(x, y) == Dark {
				sb.WriteString("██")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
