// Copyright 2025 Zintix Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package randval

import "github.com/zintix-labs/randval/source"

// 浮點區間映射器。
//
// 來源合約：Float64/Float32 draw 已經落在 [0,1)，粒度恰為 1/SCALE
// （SCALE = 2^mantissa_bits，float64 為 2^52、float32 為 2^23）。
// 三種區間的調整都只是純算術，沒有錯誤路徑：
//
//   - half-open [0,1)：draw 原樣回傳。
//   - open (0,1)：draw + 0.25/SCALE。
//     draw 恰為 0.0 時不能停留在 0（區間不含 0）；加上四分之一個 epsilon
//     保證嚴格為正，又遠小於一整個 epsilon，最大 draw（已 < 1.0-epsilon）
//     不會被推到 1.0 或之上。
//   - closed [0,1]：draw * SCALE/(SCALE-1)。
//     rescale 把最大 draw（1.0-epsilon）精確映到 1.0、把 0.0 映到 0.0，
//     中間的單調性與均勻性（在浮點捨入誤差內）不受影響。

const (
	scale64 float64 = 1 << 52 // 1.0 / epsilon (float64)
	scale32 float32 = 1 << 23 // 1.0 / epsilon (float32)
)

// Float64HalfOpen 回傳 [0,1) 的 float64。
func Float64HalfOpen(src source.Source) float64 {
	return src.Float64()
}

// Float64Open 回傳 (0,1) 的 float64。
func Float64Open(src source.Source) float64 {
	return src.Float64() + 0.25/scale64
}

// Float64Closed 回傳 [0,1] 的 float64。
func Float64Closed(src source.Source) float64 {
	return src.Float64() * scale64 / (scale64 - 1)
}

// Float32HalfOpen 回傳 [0,1) 的 float32。
func Float32HalfOpen(src source.Source) float32 {
	return src.Float32()
}

// Float32Open 回傳 (0,1) 的 float32。
func Float32Open(src source.Source) float32 {
	return src.Float32() + 0.25/scale32
}

// Float32Closed 回傳 [0,1] 的 float32。
func Float32Closed(src source.Source) float32 {
	return src.Float32() * scale32 / (scale32 - 1)
}
