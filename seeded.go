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
	"github.com/zintix-labs/randval/errs"
	"github.com/zintix-labs/randval/source"
)

// FromSource 是「可由熵來源直接建構」型別的 bootstrap 建構子簽名。
//
// 這是映射層的 catch-all 路徑：任何不屬於純量/複合映射的型別，
// 只要提供這種建構子就能接上 randval，映射層不需要事先認識它。
// 例如 source.NewPCG64FromSource 就是一個 FromSource[*source.PCG64]。
type FromSource[T any] func(src source.Source) (T, error)

// Seeded 呼叫 ctor 並展開其結果。
//
// 失敗語意（合約刻意收窄）：ctor 回報失敗（種子材料不足、格式不合法等）時
// 直接 panic 中止呼叫端操作——不重試、不用預設值頂替、不加任何獨立的錯誤處理。
// Seeded 完全信任建構子；要有 recovery 策略的話，請自己呼叫 ctor。
func Seeded[T any](src source.Source, ctor FromSource[T]) T {
	v, err := ctor(src)
	if err != nil {
		panic(errs.Wrap(err, "randval: seeded construction failed"))
	}
	return v
}
