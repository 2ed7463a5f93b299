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

package source

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"math/big"
	"math/bits"

	"github.com/zintix-labs/randval/errs"
)

const pcg32Multiplier = 6364136223846793005

// PCG32 為 64-bit 狀態、32-bit 輸出的 PCG (XSH RR) 產生器。
// 介面設計對齊 PCG64 版本，便於在映射層中互換；
// 差別在於原生輸出寬度是 32-bit，Uint64 需要兩次狀態推進。
type PCG32 struct {
	state uint64
	inc   uint64
}

// --------------------------------------
// 提供三種New方式
// --------------------------------------

// NewPCG32 使用加密隨機來源產生 seed，建立新的 PCG32 實例。
func NewPCG32() *PCG32 {
	seed, _ := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	return NewPCG32WithSeed(seed.Int64())
}

// NewPCG32WithSeed 以指定 seed 建立新的 PCG32 實例。
func NewPCG32WithSeed(seed int64) *PCG32 {
	r := &PCG32{}
	r.initWithSeed(seed, 1)
	return r
}

// NewPCG32FromSource 從另一個 Source 抽取 16 bytes 種子材料建立 PCG32。
// inc 會被強制為奇數（PCG stream 合約）。
func NewPCG32FromSource(src Source) (*PCG32, error) {
	if src == nil {
		return nil, errs.NewFatal("pcg32: nil entropy source")
	}
	var b [16]byte
	src.Fill(b[:])
	return &PCG32{
		state: binary.LittleEndian.Uint64(b[0:8]),
		inc:   binary.LittleEndian.Uint64(b[8:16]) | 1,
	}, nil
}

//---------------------------------------
// 回傳介面方法
//---------------------------------------

// Uint32 回傳非負整數uint32亂數。
func (r *PCG32) Uint32() uint32 {
	return r.nextUint32()
}

// Uint64 回傳非負整數uint64亂數（兩次 draw，高位在前）。
func (r *PCG32) Uint64() uint64 {
	return (uint64(r.nextUint32()) << 32) | uint64(r.nextUint32())
}

// Float64 回傳 [0,1) 的浮點 draw，粒度 2^-52。
func (r *PCG32) Float64() float64 {
	return Float64FromBits(r.Uint64())
}

// Float32 回傳 [0,1) 的浮點 draw，粒度 2^-23。
func (r *PCG32) Float32() float32 {
	return Float32FromBits(r.nextUint32())
}

// Fill 以連續的 Uint32 draw（little-endian）填滿 p。
func (r *PCG32) Fill(p []byte) {
	for len(p) >= 4 {
		binary.LittleEndian.PutUint32(p, r.nextUint32())
		p = p[4:]
	}
	if len(p) > 0 {
		v := r.nextUint32()
		for i := range p {
			p[i] = byte(v >> (8 * i))
		}
	}
}

// Restore 依 Snapshot 輸出的 16 bytes 還原內部狀態。
func (r *PCG32) Restore(data []byte) error {
	if len(data) != 16 {
		return errs.Fatalf("pcg32: invalid state length %d", len(data))
	}
	r.state = binary.LittleEndian.Uint64(data[0:8])
	r.inc = binary.LittleEndian.Uint64(data[8:16])
	return nil
}

// Snapshot 取得當下內部狀態(state|inc)
func (r *PCG32) Snapshot() ([]byte, error) {
	b := make([]byte, 16)
	binary.LittleEndian.PutUint64(b[0:8], r.state)
	binary.LittleEndian.PutUint64(b[8:16], r.inc)
	return b, nil
}

//---------------------------------------
// 內部方法
//---------------------------------------

func (r *PCG32) initWithSeed(baseSeed int64, seq uint64) {
	// PCG 建議的初始化流程：先用 stream 初始化一次，再加 seed，最後再 step。
	r.state = 0
	r.inc = (seq << 1) | 1
	r.nextUint32()
	r.state += uint64(baseSeed)
	r.nextUint32()
}

func (r *PCG32) nextUint32() uint32 {
	oldstate := r.state
	r.state = oldstate*pcg32Multiplier + r.inc
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := uint32(oldstate >> 59)
	return bits.RotateLeft32(xorshifted, -int(rot))
}
