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

import (
	"unicode/utf8"

	"github.com/zintix-labs/randval/source"
)

// runeMask : Unicode scalar value 是 21-bit 空間。
const runeMask uint32 = 0x001FFFFF

// Rune 以拒絕採樣產生一個有效的 Unicode scalar value。
//
// 流程：取一次 Uint32 draw 的低 21 位，檢查是否為有效 code point
// （排除 surrogate range 0xD800-0xDFFF 與超過 0x10FFFF 的值），
// 無效就重抽。21-bit 空間約 2,097,152 個值，其中無效的只有 2048 個
// surrogate 加上 0x10FFFF 以上的小量超額，單次成功率約 99.8%。
//
// 這是整個映射層唯一的迴圈路徑：它是「無上限但實務上必然終止」的重試，
// 不是有界重試的錯誤路徑。加上重試上限會在截止點附近引入人工偏差，
// 改變對外可觀察的分布性質，所以刻意不設。
func Rune(src source.Source) rune {
	for {
		r := rune(src.Uint32() & runeMask)
		if utf8.ValidRune(r) {
			return r
		}
	}
}
