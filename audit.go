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
	"crypto/rand"
	"io"
	"math"
	"math/big"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/cheggaaa/pb/v3"

	"github.com/zintix-labs/randval/errs"
	"github.com/zintix-labs/randval/source"
	"github.com/zintix-labs/randval/stats"
)

// auditBins 是均勻性檢驗的等寬分桶數。
const auditBins = 100

// Auditor 對映射層做長跑分布審計：大量抽樣三種浮點區間與 rune/bool 路徑，
// 交給 stats 做均勻性檢驗。
//
// 審計本身是可重現的：Auditor 持有一個 baseSeed，所有 worker 的 Source
// 都由 baseSeed 以固定算法派生子 seed 建立。同一個 Factory、同一個 seed、
// 同一組參數必然得到同一份報告。
type Auditor struct {
	cf        source.Factory // 熵來源工廠
	initSeed  int64          // 初始下的種子
	seedmaker *seedMaker     // 種子生成器
}

// AuditReport 彙整一次審計的結果。
type AuditReport struct {
	HalfOpen *stats.UniformReport // [0,1) 樣本
	Open     *stats.UniformReport // (0,1) 樣本
	Closed   *stats.UniformReport // [0,1] 樣本

	Runes        int // rune 抽樣總數
	InvalidRunes int // 落在 surrogate / 超界的 rune 數，合約上必為 0

	TrueRatio float64 // bool 抽樣的 true 比例，應接近 0.5
}

// NewAuditor 使用加密隨機來源產生 baseSeed 建立 Auditor。
func NewAuditor(cf source.Factory) (*Auditor, error) {
	seed, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt64))
	if err != nil {
		return nil, err
	}
	return NewAuditorWithSeed(cf, seed.Int64())
}

// NewAuditorWithSeed 以指定 baseSeed 建立 Auditor（審計重現用）。
func NewAuditorWithSeed(cf source.Factory, seed int64) (*Auditor, error) {
	if cf == nil {
		return nil, errs.NewFatal("source factory required")
	}
	return &Auditor{
		cf:        cf,
		initSeed:  seed,
		seedmaker: newSeedMaker(seed),
	}, nil
}

// Seed 回傳這次審計使用的 baseSeed，供紀錄與重現。
func (a *Auditor) Seed() int64 { return a.initSeed }

// Run 平行執行 workers 個 worker，每個 worker 以自己專屬的 Source
// 抽 samples 組樣本，合併後回傳報告與用時。
//
// 每個 worker 獨佔一個 Source instance——Source 不可重入，
// 交錯 draw 會破壞序列可重現性，所以絕不共用。
func (a *Auditor) Run(samples int, workers int, showpb bool) (*AuditReport, time.Duration, error) {
	if samples < 1 {
		return nil, 0, errs.NewWarn("samples must > 0")
	}
	if workers < 1 {
		return nil, 0, errs.NewWarn("workers must > 0")
	}

	type bucket struct {
		halfOpen []float64
		open     []float64
		closed   []float64
		invalid  int
		trues    int
	}

	buf := make([]*bucket, workers)
	srcs := make([]source.Source, workers)
	for i := range srcs {
		srcs[i] = a.cf.New(a.seedmaker.next())
		buf[i] = &bucket{
			halfOpen: make([]float64, 0, samples),
			open:     make([]float64, 0, samples),
			closed:   make([]float64, 0, samples),
		}
	}

	wg := new(sync.WaitGroup)
	wg.Add(workers)
	bar := pb.StartNew(samples * workers)
	if !showpb {
		bar.SetWriter(io.Discard)
	}
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			src := srcs[i]
			b := buf[i]
			for n := 0; n < samples; n++ {
				b.halfOpen = append(b.halfOpen, Float64HalfOpen(src))
				b.open = append(b.open, Float64Open(src))
				b.closed = append(b.closed, Float64Closed(src))
				if r := Rune(src); !utf8.ValidRune(r) {
					b.invalid++
				}
				if Bool(src) {
					b.trues++
				}
				bar.Increment()
			}
		}(i)
	}
	wg.Wait()
	used := time.Since(bar.StartTime())
	bar.Finish()

	total := samples * workers
	merged := &bucket{
		halfOpen: make([]float64, 0, total),
		open:     make([]float64, 0, total),
		closed:   make([]float64, 0, total),
	}
	for _, b := range buf {
		merged.halfOpen = append(merged.halfOpen, b.halfOpen...)
		merged.open = append(merged.open, b.open...)
		merged.closed = append(merged.closed, b.closed...)
		merged.invalid += b.invalid
		merged.trues += b.trues
	}

	rep := &AuditReport{
		Runes:        total,
		InvalidRunes: merged.invalid,
		TrueRatio:    float64(merged.trues) / float64(total),
	}
	var err error
	if rep.HalfOpen, err = stats.Uniformity("float64 [0,1)", merged.halfOpen, auditBins); err != nil {
		return nil, used, err
	}
	if rep.Open, err = stats.Uniformity("float64 (0,1)", merged.open, auditBins); err != nil {
		return nil, used, err
	}
	if rep.Closed, err = stats.Uniformity("float64 [0,1]", merged.closed, auditBins); err != nil {
		return nil, used, err
	}
	return rep, used, nil
}

// ============================================================
// ** 種子派生 **
// ============================================================

const mask63 = uint64(1<<63) - 1

// seedMaker 以 63-bit 全週期 LCG 派生 worker 子 seed；
// CAS 推進讓多個呼叫端可以安全併發取 seed。
type seedMaker struct {
	state atomic.Uint64 // always in [0, 2^63)
}

func newSeedMaker(seed int64) *seedMaker {
	s := &seedMaker{}
	s.state.Store(uint64(seed) & mask63)
	return s
}

func (s *seedMaker) next() int64 {
	for {
		old := s.state.Load()                                            // always masked
		next := (old*6364136223846793005 + 1442695040888963407) & mask63 // full-period LCG mod 2^63
		if s.state.CompareAndSwap(old, next) {
			return int64(mix63(next)) // 一定非負
		}
	}
}

func mix63(x uint64) uint64 {
	x &= mask63
	x ^= x >> 30
	x = (x * 0xBF58476D1CE4E5B9) & mask63 // 乘奇數 ⇒ mod 2^63 可逆
	x ^= x >> 27
	x = (x * 0x94D049BB133111EB) & mask63
	x ^= x >> 31
	return x & mask63
}
