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

// Version is a QR symbol version, 1..40.
type Version int

const (
	MinVersion = Version(1)
	MaxVersion = Version(40)
)

func validVersion(v Version) bool { return v >= MinVersion && v <= MaxVersion }

// Size returns the module side length for v: 21 + 4·(v-1).
func (v Version) Size() int { return int(v)*4 + 17 }

// versionFromSize returns the version whose Size() equals size, or false
// if size doesn't correspond to any version 1..40.
func versionFromSize(size int) (Version, bool) {
	if (size-17)%4 != 0 {
		return 0, false
	}
	v := Version((size - 17) / 4)
	if !validVersion(v) {
		return 0, false
	}
	return v, true
}

// CapacityDescriptor is the per-(version,ecc) capacity breakdown from
// spec.md §3.
type CapacityDescriptor struct {
	WordsPerBlock   int
	NumBlocks       int
	ShortBlocks     int
	ShortBlockLen   int
	DataBitCapacity int
	TotalCodewords  int
}

// CapacityTable returns the capacity descriptor for (v, ecc).
func CapacityTable(v Version, ecc ECC) CapacityDescriptor {
	if !validVersion(v) {
		panic("qrcodec: invalid version")
	}
	if !validECC(ecc) {
		panic("qrcodec: invalid ecc")
	}
	total := numRawDataModules[v] / 8
	numBlocks := numErrorCorrectionBlocks[ecc][v]
	wordsPerBlock := eccCodeWordsPerBlock[ecc][v]
	shortBlocks := numBlocks - total%numBlocks
	shortLen := total/numBlocks - wordsPerBlock
	return CapacityDescriptor{
		WordsPerBlock:   wordsPerBlock,
		NumBlocks:       numBlocks,
		ShortBlocks:     shortBlocks,
		ShortBlockLen:   shortLen,
		DataBitCapacity: numDataCodewords[ecc][v] * 8,
		TotalCodewords:  total,
	}
}
