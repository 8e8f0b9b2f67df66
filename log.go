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
	"io"

	"github.com/rs/zerolog"
)

// defaultLogger discards everything; Encode and Decode emit debug-level
// tracing (chosen version, ECC level and mask) that only surfaces once a
// caller supplies its own logger via
// WithLogger/WithDecodeLogger.
var defaultLogger = zerolog.New(io.Discard).With().Timestamp().Logger()
