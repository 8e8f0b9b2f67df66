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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminalANSIRejectsNonTTYDescriptor(t *testing.T) {
	// Not a valid file descriptor in any test runner; the ioctl must
	// fail closed rather than panic.
	assert.False(t, IsTerminalANSI(^uintptr(0)))
}
