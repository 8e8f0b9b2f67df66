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

// Package qrcodec encodes and decodes QR Code symbols (ISO/IEC 18004,
// model 2, versions 1-40, error-correction levels L/M/Q/H).
//
// Encode builds a Symbol from text or bytes:
//
//	sym, err := qrcodec.Encode("hello, world", qrcodec.WithECC(qrcodec.Quartile))
//	fmt.Print(sym.TermString())
//
// Decode locates and reads a symbol out of a photographed or
// screen-captured image:
//
//	result, err := qrcodec.Decode(img)
//	fmt.Println(result.Text)
package qrcodec
