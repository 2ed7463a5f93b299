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
	"bytes"
	"math"
	"testing"
)

func TestPCG64Determinism(t *testing.T) {
	s1 := NewPCG64WithSeed(7)
	s2 := NewPCG64WithSeed(7)
	for i := 0; i < 16; i++ {
		if s1.Uint64() != s2.Uint64() {
			t.Fatalf("Uint64 mismatch at %d", i)
		}
	}
	if s1.Uint32() != s2.Uint32() {
		t.Fatalf("Uint32 mismatch")
	}
	if s1.Float64() != s2.Float64() {
		t.Fatalf("Float64 mismatch")
	}
}

func TestPCG32Determinism(t *testing.T) {
	s1 := NewPCG32WithSeed(9)
	s2 := NewPCG32WithSeed(9)
	for i := 0; i < 16; i++ {
		if s1.Uint32() != s2.Uint32() {
			t.Fatalf("Uint32 mismatch at %d", i)
		}
	}
	if s1.Uint64() != s2.Uint64() {
		t.Fatalf("Uint64 mismatch")
	}
}

func TestFactoryDefault(t *testing.T) {
	f := Default()
	s1 := f.New(11)
	s2 := f.New(11)
	if s1.Uint64() != s2.Uint64() {
		t.Fatalf("factory New(seed) must be deterministic")
	}
}

// Float64 合約：粒度恰為 2^-52，且落在 [0,1)。
func TestFloat64Granularity(t *testing.T) {
	for _, s := range []Source{NewPCG64WithSeed(3), NewPCG32WithSeed(3)} {
		for i := 0; i < 1000; i++ {
			f := s.Float64()
			if f < 0 || f >= 1 {
				t.Fatalf("Float64 out of [0,1): %v", f)
			}
			scaled := f * (1 << 52)
			if scaled != math.Trunc(scaled) {
				t.Fatalf("Float64 granularity not 2^-52: %v", f)
			}
		}
	}
}

func TestFloat32Granularity(t *testing.T) {
	s := NewPCG32WithSeed(5)
	for i := 0; i < 1000; i++ {
		f := s.Float32()
		if f < 0 || f >= 1 {
			t.Fatalf("Float32 out of [0,1): %v", f)
		}
		scaled := float64(f) * (1 << 23)
		if scaled != math.Trunc(scaled) {
			t.Fatalf("Float32 granularity not 2^-23: %v", f)
		}
	}
}

func TestFloatFromBitsEdges(t *testing.T) {
	if got := Float64FromBits(0); got != 0.0 {
		t.Fatalf("Float64FromBits(0) = %v, want 0", got)
	}
	if got := Float64FromBits(1); got != 1.0/(1<<52) {
		t.Fatalf("Float64FromBits(1) = %v, want epsilon", got)
	}
	if got := Float64FromBits(^uint64(0)); got != 1.0-1.0/(1<<52) {
		t.Fatalf("Float64FromBits(max) = %v, want 1-epsilon", got)
	}
	if got := Float32FromBits(0); got != 0.0 {
		t.Fatalf("Float32FromBits(0) = %v, want 0", got)
	}
	if got := Float32FromBits(^uint32(0)); got != 1.0-1.0/(1<<23) {
		t.Fatalf("Float32FromBits(max) = %v, want 1-epsilon", got)
	}
}

func TestFillDeterministicAndFull(t *testing.T) {
	for _, n := range []int{0, 1, 7, 8, 17, 64} {
		b1 := make([]byte, n)
		b2 := make([]byte, n)
		NewPCG64WithSeed(13).Fill(b1)
		NewPCG64WithSeed(13).Fill(b2)
		if !bytes.Equal(b1, b2) {
			t.Fatalf("Fill not deterministic at len %d", n)
		}
		b3 := make([]byte, n)
		NewPCG32WithSeed(13).Fill(b3)
	}
	// 長 buffer 全為零的機率可忽略
	b := make([]byte, 64)
	NewPCG64WithSeed(13).Fill(b)
	if bytes.Equal(b, make([]byte, 64)) {
		t.Fatalf("Fill left buffer untouched")
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := NewPCG64WithSeed(21)
	s.Uint64()
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	want := []uint64{s.Uint64(), s.Uint64(), s.Uint64()}
	if err := s.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}
	for i, w := range want {
		if got := s.Uint64(); got != w {
			t.Fatalf("replay mismatch at %d: got %d want %d", i, got, w)
		}
	}
}

func TestPCG32SnapshotRestore(t *testing.T) {
	s := NewPCG32WithSeed(23)
	s.Uint32()
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	want := []uint32{s.Uint32(), s.Uint32()}
	if err := s.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}
	for i, w := range want {
		if got := s.Uint32(); got != w {
			t.Fatalf("replay mismatch at %d: got %d want %d", i, got, w)
		}
	}
	if err := s.Restore([]byte{1, 2, 3}); err == nil {
		t.Fatalf("expected error for short state")
	}
}

func TestFromSource(t *testing.T) {
	if _, err := NewPCG64FromSource(nil); err == nil {
		t.Fatalf("expected error for nil source")
	}
	if _, err := NewPCG32FromSource(nil); err == nil {
		t.Fatalf("expected error for nil source")
	}

	// 相同種子材料 ⇒ 相同輸出序列
	a, err := NewPCG64FromSource(NewPCG64WithSeed(31))
	if err != nil {
		t.Fatalf("from source: %v", err)
	}
	b, err := NewPCG64FromSource(NewPCG64WithSeed(31))
	if err != nil {
		t.Fatalf("from source: %v", err)
	}
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			t.Fatalf("from-source construction not deterministic at %d", i)
		}
	}

	c, err := NewPCG32FromSource(NewPCG64WithSeed(33))
	if err != nil {
		t.Fatalf("from source: %v", err)
	}
	if c.inc&1 != 1 {
		t.Fatalf("pcg32 inc must be odd")
	}
}
