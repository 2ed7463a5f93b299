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

// Package source 定義 randval 映射層所消費的「熵來源能力介面」，
// 以及兩個可重現（reproducible）的參考實作（PCG64 / PCG32）。
//
// 映射層本身只依賴 Source 介面；具體的產生器演算法、seed 策略
// 都屬於這個 package（或外部實作者）的責任。
package source

import "math"

// Source 定義核心熵來源能力。
//
// 為什麼同時要求整數與浮點方法，而不是只要求 Uint64？
//
// 1) 允許實作針對 32-bit / 64-bit 原生輸出寬度做最佳化
//   - 有些產生器的「原生輸出寬度」是 32-bit（例如 PCG32 XSH-RR），
//     直接提供 Uint32 可少一半的狀態推進；反之 64-bit 產生器直接提供 Uint64 更自然。
//   - 若合約只要求 Uint64，32-bit 友善的產生器會被迫走「先湊 uint64 再裁切」的慢路徑。
//
// 2) 浮點 draw 的精度與構造方式應由來源決定
//   - Float64 合約是 [0,1)、粒度恰為 2^-52（52 個有效隨機位）；
//     Float32 合約是 [0,1)、粒度恰為 2^-23（23 個有效隨機位）。
//   - 這個粒度是映射層區間調整（open/closed rescale）能精確命中邊界的前提，
//     實作者請用 Float64FromBits / Float32FromBits 來保證。
//
// 併發合約：Source 不保證可重入。同一個 instance 在一次呼叫期間
// 視為被獨佔持有；多 goroutine 交錯 draw 會破壞序列可重現性。
type Source interface {
	// Uint32 回傳一個均勻分布的 uint32 draw。
	Uint32() uint32
	// Uint64 回傳一個均勻分布的 uint64 draw。
	Uint64() uint64
	// Float32 回傳 [0,1) 的浮點 draw，粒度 2^-23。
	Float32() float32
	// Float64 回傳 [0,1) 的浮點 draw，粒度 2^-52。
	Float64() float64
	// Fill 以均勻 bytes 填滿整個 p。
	Fill(p []byte)
}

// Restorable 定義可快照與還原的狀態介面，供審計/回放使用。
type Restorable interface {
	// Snapshot 回傳可用於還原的序列化狀態。
	Snapshot() ([]byte, error)
	// Restore 依序列化狀態還原內部狀態。
	Restore([]byte) error
}

// Factory 以 seed 建立新的 Source。
//
// 合約（很重要）：在同一個實作與同一個版本下，New(seed) 必須是「決定性」的——
// 相同的 seed 必須產生相同的初始內部狀態與輸出序列。
// randval 的 audit 與測試都依賴這個性質做重現。
type Factory interface {
	New(seed int64) Source
}

// DefaultFactory 實作預設的 Factory，以 PCG64 為底。
type DefaultFactory struct{}

// New 滿足合約。
func (d *DefaultFactory) New(seed int64) Source {
	return NewPCG64WithSeed(seed)
}

func Default() *DefaultFactory {
	return &DefaultFactory{}
}

//---------------------------------------
// 實作者工具
//---------------------------------------

// Float64FromBits 取 u 的低 52 位作為 [1,2) 區間的 mantissa，再減 1 得到 [0,1)。
//
// 這是 Float64 合約的標準構造：輸出恰為 k * 2^-52（k 為低 52 位），
// 因此 u=0 映到 0.0、u 低 52 位全 1 映到 1.0 - 2^-52，中間每一格等距。
func Float64FromBits(u uint64) float64 {
	return math.Float64frombits(0x3FF0000000000000|(u&(1<<52-1))) - 1.0
}

// Float32FromBits 取 u 的低 23 位作為 [1,2) 區間的 mantissa，再減 1 得到 [0,1)。
func Float32FromBits(u uint32) float32 {
	return math.Float32frombits(0x3F800000|(u&(1<<23-1))) - 1.0
}

// FillVia64 以連續的 Uint64 draw（little-endian）填滿 p，
// 供原生輸出為 64-bit 的實作直接當作 Fill 用。
func FillVia64(s Source, p []byte) {
	for len(p) >= 8 {
		v := s.Uint64()
		for i := 0; i < 8; i++ {
			p[i] = byte(v >> (8 * i))
		}
		p = p[8:]
	}
	if len(p) > 0 {
		v := s.Uint64()
		for i := range p {
			p[i] = byte(v >> (8 * i))
		}
	}
}
