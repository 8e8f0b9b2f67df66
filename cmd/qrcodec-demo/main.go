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

// Command qrcodec-demo encodes its argument as a QR symbol and either
// prints it to the terminal or opens an SVG rendering in the default
// browser.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/browser"
	"github.com/rs/zerolog"

	"github.com/mkrenz/qrcodec"
)

func main() {
	eccFlag := flag.String("ecc", "medium", "error correction level: low, medium, quartile, high")
	browserFlag := flag.Bool("browser", false, "open an SVG rendering in the default browser instead of printing to the terminal")
	verbose := flag.Bool("v", false, "log encoding decisions to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: qrcodec-demo [-ecc level] [-browser] [-v] <text>")
		os.Exit(2)
	}

	ecc, ok := parseECC(*eccFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown ecc level %q\n", *eccFlag)
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.Disabled)
	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	sym, err := qrcodec.Encode(flag.Arg(0), qrcodec.WithECC(ecc), qrcodec.WithLogger(logger), qrcodec.WithBorder(4))
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		os.Exit(1)
	}

	if *browserFlag {
		if err := browser.OpenReader(strings.NewReader(sym.ToSVG())); err != nil {
			fmt.Fprintln(os.Stderr, "open browser:", err)
			os.Exit(1)
		}
		return
	}

	if qrcodec.StdoutIsTerminal() {
		fmt.Print(sym.TermString())
	} else {
		fmt.Print(sym.String())
	}
}

func parseECC(s string) (qrcodec.ECC, bool) {
	switch s {
	case "low":
		return qrcodec.Low, true
	case "medium":
		return qrcodec.Medium, true
	case "quartile":
		return qrcodec.Quartile, true
	case "high":
		return qrcodec.High, true
	default:
		return 0, false
	}
}
