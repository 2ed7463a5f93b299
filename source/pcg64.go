// Package source implements the PCG64 random number generator.
//
// The PCG algorithm is designed by Melissa O'Neill.

package source

import (
	"crypto/rand"
	"encoding/binary"
	"math"
	"math/big"
	r2 "math/rand/v2"

	"github.com/zintix-labs/randval/errs"
)

// PCG64 亂數產生器，原生輸出寬度 64-bit。
type PCG64 struct {
	rng *r2.PCG
}

// NewPCG64 使用加密隨機來源產生 seed，建立新的 PCG64 實例。
func NewPCG64() *PCG64 {
	seed, _ := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	return NewPCG64WithSeed(seed.Int64())
}

// NewPCG64WithSeed 以指定 seed 建立新的 PCG64 實例。
func NewPCG64WithSeed(seed int64) *PCG64 {
	x := uint64(seed) ^ (0x9e3779b97f4a7c15)
	hi := splitmix64(x)
	lo := splitmix64(x ^ 0xDA942042E4DD58B5)
	return &PCG64{rng: r2.NewPCG(hi, lo)}
}

// NewPCG64FromSource 從另一個 Source 抽取 16 bytes 種子材料建立 PCG64。
//
// 這是本 package 自己的 from-source bootstrap 建構子：
// 任何「可由熵來源直接建構」的型別都應提供這種簽名 (Source) (T, error)，
// randval.Seeded 會負責呼叫並在失敗時中止。
func NewPCG64FromSource(src Source) (*PCG64, error) {
	if src == nil {
		return nil, errs.NewFatal("pcg64: nil entropy source")
	}
	var b [16]byte
	src.Fill(b[:])
	hi := binary.LittleEndian.Uint64(b[0:8])
	lo := binary.LittleEndian.Uint64(b[8:16])
	return &PCG64{rng: r2.NewPCG(hi, lo)}, nil
}

//---------------------------------------
// 回傳方法
//---------------------------------------

// Uint64 回傳非負整數uint64亂數
func (r *PCG64) Uint64() uint64 {
	return r.rng.Uint64()
}

// Uint32 取一次 Uint64 的低 32 位。
func (r *PCG64) Uint32() uint32 {
	return uint32(r.rng.Uint64())
}

// Float64 回傳 [0,1) 的浮點 draw，粒度 2^-52。
func (r *PCG64) Float64() float64 {
	return Float64FromBits(r.rng.Uint64())
}

// Float32 回傳 [0,1) 的浮點 draw，粒度 2^-23。
func (r *PCG64) Float32() float32 {
	return Float32FromBits(uint32(r.rng.Uint64()))
}

// Fill 以均勻 bytes 填滿 p。
func (r *PCG64) Fill(p []byte) {
	FillVia64(r, p)
}

// Restore 恢復內部狀態
func (r *PCG64) Restore(data []byte) error {
	return r.rng.UnmarshalBinary(data)
}

// Snapshot 取得當下內部狀態
func (r *PCG64) Snapshot() ([]byte, error) {
	return r.rng.MarshalBinary()
}

//---------------------------------------
// 內部方法
//---------------------------------------

// splitmix64 將輸入值混洗成新的 64-bit 狀態，用於種子展開。
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
