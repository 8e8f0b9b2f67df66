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

// splitBlocks partitions data (len == capd.DataBitCapacity/8) into
// capd.NumBlocks blocks, the first capd.ShortBlocks of length
// capd.ShortBlockLen and the rest one byte longer.
func splitBlocks(data []byte, capd CapacityDescriptor) [][]byte {
	blocks := make([][]byte, capd.NumBlocks)
	i := 0
	for b := 0; b < capd.NumBlocks; b++ {
		n := capd.ShortBlockLen
		if b >= capd.ShortBlocks {
			n++
		}
		blocks[b] = data[i : i+n]
		i += n
	}
	return blocks
}

// addECCAndInterleave splits data into blocks, computes each block's RS
// error-correction codewords, and interleaves data then ECC columns,
// per ISO/IEC 18004 §7.5.2.
func addECCAndInterleave(data []byte, v Version, ecc ECC) []byte {
	capd := CapacityTable(v, ecc)
	blocks := splitBlocks(data, capd)

	eccBlocks := make([][]byte, capd.NumBlocks)
	maxDataLen := 0
	for i, blk := range blocks {
		eccBlocks[i] = rsEncode(blk, capd.WordsPerBlock)
		if len(blk) > maxDataLen {
			maxDataLen = len(blk)
		}
	}

	out := make([]byte, 0, capd.TotalCodewords)
	for i := 0; i < maxDataLen; i++ {
		for _, blk := range blocks {
			if i < len(blk) {
				out = append(out, blk[i])
			}
		}
	}
	for i := 0; i < capd.WordsPerBlock; i++ {
		for _, blk := range eccBlocks {
			out = append(out, blk[i])
		}
	}
	return out
}

// deinterleaveAndCorrect is the decode-side inverse of
// addECCAndInterleave: it splits raw into interleaved data/ECC columns,
// regroups per block, RS-corrects each block, and concatenates the
// corrected data bytes back in block order.
func deinterleaveAndCorrect(raw []byte, v Version, ecc ECC) ([]byte, error) {
	capd := CapacityTable(v, ecc)
	blockLens := make([]int, capd.NumBlocks)
	for b := range blockLens {
		n := capd.ShortBlockLen
		if b >= capd.ShortBlocks {
			n++
		}
		blockLens[b] = n
	}
	maxDataLen := capd.ShortBlockLen
	if capd.ShortBlocks < capd.NumBlocks {
		maxDataLen++
	}

	blocks := make([][]byte, capd.NumBlocks)
	for b, n := range blockLens {
		blocks[b] = make([]byte, 0, n+capd.WordsPerBlock)
	}

	pos := 0
	for i := 0; i < maxDataLen; i++ {
		for b, n := range blockLens {
			if i < n {
				blocks[b] = append(blocks[b], raw[pos])
				pos++
			}
		}
	}
	for i := 0; i < capd.WordsPerBlock; i++ {
		for b := range blocks {
			blocks[b] = append(blocks[b], raw[pos])
			pos++
		}
	}

	out := make([]byte, 0, capd.DataBitCapacity/8)
	for _, blk := range blocks {
		corrected, err := rsDecode(blk, capd.WordsPerBlock)
		if err != nil {
			return nil, err
		}
		out = append(out, corrected[:len(blk)-capd.WordsPerBlock]...)
	}
	return out, nil
}
