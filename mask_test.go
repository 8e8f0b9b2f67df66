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

func TestApplyMaskIsInvolution(t *testing.T) {
	for m := 0; m < 8; m++ {
		mat := NewBitmap(21)
		isFunction := NewBitmap(21)
		for y := 0; y < 21; y++ {
			for x := 0; x < 21; x++ {
				v := Light
				if (x*7+y*3)%2 == 0 {
					v = Dark
				}
				mat.Set(x, y, v)
			}
		}
		before := mat.Clone()

		applyMask(mat, isFunction, m)
		applyMask(mat, isFunction, m)

		for y := 0; y < 21; y++ {
			for x := 0; x < 21; x++ {
				assert.Equal(t, before.Get(x, y), mat.Get(x, y))
			}
		}
	}
}

func TestApplyMaskSkipsFunctionModules(t *testing.T) {
	mat := NewBitmap(21)
	isFunction := NewBitmap(21)
	mat.RectFill(Point{0, 0}, Size{21, 21}, Light)
	isFunction.Set(5, 5, Dark)

	applyMask(mat, isFunction, 0) // predicate 0 flips (5+5)%2==0 -> true
	assert.Equal(t, Light, mat.Get(5, 5))
}

func TestPenaltyScoreRewardsUniformityPenalty(t *testing.T) {
	size := 21
	allLight := NewBitmap(size)
	allLight.RectFill(Point{0, 0}, Size{size, size}, Light)

	checkerboard := NewBitmap(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := Light
			if (x+y)%2 == 0 {
				v = Dark
			}
			checkerboard.Set(x, y, v)
		}
	}

	assert.Greater(t, penaltyScore(allLight), penaltyScore(checkerboard))
}

func TestBestMaskHonorsForcedMask(t *testing.T) {
	tmpl := newSymbolTemplate(1)
	data := make([]byte, numRawDataModules[1]/8)
	m, mat := bestMask(tmpl, Low, data, 3)
	assert.Equal(t, 3, m)
	assert.NotNil(t, mat)
}

func TestBestMaskIsDeterministic(t *testing.T) {
	tmpl := newSymbolTemplate(1)
	data := make([]byte, numRawDataModules[1]/8)
	for i := range data {
		data[i] = byte(i * 31)
	}

	m1, _ := bestMask(tmpl, Medium, data, -1)
	m2, _ := bestMask(tmpl, Medium, data, -1)
	assert.Equal(t, m1, m2)
}
