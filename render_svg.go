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

// ToSVG renders the symbol as a single-path SVG document: one <path>
// element covers every dark module, which is both smaller and faster to
// rasterize than one <rect> per module.
func (s *Symbol) ToSVG() string {
	mat := s.Matrix
	n := mat.Width()

	var path strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if mat.Get(x, y) == Dark {
				fmt.Fprintf(&path, "M%d,%dh1v1h-1z", x, y)
			}
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, n, n)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#fff"/>`, n, n)
	if path.Len() > 0 {
		fmt.Fprintf(&sb, `<path d="%s" fill="#000"/>`, path.String())
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}

// ToSVGRects renders the symbol with one <rect> per dark module instead
// of a merged path; slower to render but easier to post-process (e.g.
// per-module styling) than ToSVG's single path.
func (s *Symbol) ToSVGRects() string {
	mat := s.Matrix
	n := mat.Width()

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" shape-rendering="crispEdges">`, n, n)
	fmt.Fprintf(&sb, `<rect width="%d" height="%d" fill="#fff"/>`, n, n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if mat.Get(x, y) == Dark {
				fmt.Fprintf(&sb, `<rect x="%d" y="%d" width="1" height="1" fill="#000"/>`, x, y)
			}
		}
	}
	sb.WriteString(`</svg>`)
	return sb.String()
}
