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

// 純量整數映射器。
//
// 規則（寬度決定一切）：
//   - 寬度 <= 32 bits：取一次 Uint32 draw 的低位截斷。
//     截斷均勻值仍是較小範圍上的均勻值，所以分布不變；
//     一個 8-bit 結果「用掉」一整個 32-bit draw 是刻意的取捨（簡單 > 省熵）。
//   - 64-bit：取一次 Uint64 draw 截斷。
//   - 128-bit：串接兩次 Uint64 draw，第一次 draw 進高 64 位。
//   - 平台字寬（int/uint）：依 representation 的位寬分流到 32-bit 或 64-bit 路徑。
//
// 本檔案沒有任何錯誤路徑：只要熵來源存在，整數映射不可能失敗。

const is32bit = ^uint(0)>>32 == 0

// Int8 取一次 Uint32 draw 的低 8 位。
func Int8(src source.Source) int8 { return int8(src.Uint32()) }

// Uint8 取一次 Uint32 draw 的低 8 位。
func Uint8(src source.Source) uint8 { return uint8(src.Uint32()) }

// Int16 取一次 Uint32 draw 的低 16 位。
func Int16(src source.Source) int16 { return int16(src.Uint32()) }

// Uint16 取一次 Uint32 draw 的低 16 位。
func Uint16(src source.Source) uint16 { return uint16(src.Uint32()) }

// Int32 取一次 Uint32 draw。
func Int32(src source.Source) int32 { return int32(src.Uint32()) }

// Uint32 取一次 Uint32 draw。
func Uint32(src source.Source) uint32 { return src.Uint32() }

// Int64 取一次 Uint64 draw。
func Int64(src source.Source) int64 { return int64(src.Uint64()) }

// Uint64 取一次 Uint64 draw。
func Uint64(src source.Source) uint64 { return src.Uint64() }

// Int 依平台字寬分流：32-bit 平台走 Int32 路徑，64-bit 平台走 Int64 路徑。
func Int(src source.Source) int {
	if is32bit {
		return int(Int32(src))
	}
	return int(Int64(src))
}

// Uint 依平台字寬分流：32-bit 平台走 Uint32 路徑，64-bit 平台走 Uint64 路徑。
func Uint(src source.Source) uint {
	if is32bit {
		return uint(Uint32(src))
	}
	return uint(Uint64(src))
}

// Uint128 是 128-bit 無號整數值，Hi 為高 64 位。
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 是 128-bit 有號整數值（二補數），Hi 為高 64 位（含符號位）。
type Int128 struct {
	Hi int64
	Lo uint64
}

// U128 串接兩次 Uint64 draw：第一次 draw 進高 64 位，第二次進低 64 位。
func U128(src source.Source) Uint128 {
	hi := src.Uint64()
	lo := src.Uint64()
	return Uint128{Hi: hi, Lo: lo}
}

// I128 與 U128 同一條路徑，高 64 位 reinterpret 成有號。
func I128(src source.Source) Int128 {
	u := U128(src)
	return Int128{Hi: int64(u.Hi), Lo: u.Lo}
}
