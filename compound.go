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

// 複合組裝器。
//
// 所有複合值都以固定的由左至右順序遞迴委派給元素的 Gen；
// 順序是合約的一部分：搭配決定性來源時，同一組 draw 序列必須
// 組出同一個複合值（可重現性）。

// Bool 取一個 byte 寬 draw 的最低位。
func Bool(src source.Source) bool {
	return Uint8(src)&1 == 1
}

// Unit 不消耗任何 draw，回傳空值單例。
func Unit(_ source.Source) struct{} {
	return struct{}{}
}

// Option 是「可能缺席」的值。OK 為 false 時 Val 一律是零值。
type Option[T any] struct {
	Val T
	OK  bool
}

// Maybe 先抽一個 bool 決定存在與否；存在才產生內層值。
//
// 注意：缺席的情況也消耗了一次 bool draw（永遠先抽存在位），
// 這讓 draw 序列的消耗量只由「抽到的值」決定，與呼叫端無關。
func Maybe[T any](src source.Source, gen Gen[T]) Option[T] {
	if Bool(src) {
		return Option[T]{Val: gen(src), OK: true}
	}
	return Option[T]{}
}

// MaxArrayLen 是 Array 允許的最大長度。
const MaxArrayLen = 32

// Array 產生長度 n 的序列，逐 index 由左至右生成。
//
// n == 0 回傳空序列且不消耗任何 draw。
// n 超出 [0, MaxArrayLen] 視為呼叫端程式錯誤，直接 panic。
func Array[T any](src source.Source, gen Gen[T], n int) []T {
	if n < 0 || n > MaxArrayLen {
		panic("randval: array length out of range")
	}
	out := make([]T, n)
	Fill(src, gen, out)
	return out
}

// Fill 逐 index 由左至右填滿呼叫端提供的 slice（長度不設限）。
func Fill[T any](src source.Source, gen Gen[T], dst []T) {
	for i := range dst {
		dst[i] = gen(src)
	}
}

// ============================================================
// ** 固定 arity tuple (1~12) **
// ============================================================
//
// 每個元素獨立生成，順序嚴格由左至右（以區域變數固定求值順序）。

func Tuple1[A any](src source.Source, ga Gen[A]) A {
	return ga(src)
}

func Tuple2[A, B any](src source.Source, ga Gen[A], gb Gen[B]) (A, B) {
	a := ga(src)
	b := gb(src)
	return a, b
}

func Tuple3[A, B, C any](src source.Source, ga Gen[A], gb Gen[B], gc Gen[C]) (A, B, C) {
	a := ga(src)
	b := gb(src)
	c := gc(src)
	return a, b, c
}

func Tuple4[A, B, C, D any](src source.Source, ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D]) (A, B, C, D) {
	a := ga(src)
	b := gb(src)
	c := gc(src)
	d := gd(src)
	return a, b, c, d
}

func Tuple5[A, B, C, D, E any](src source.Source, ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D], ge Gen[E]) (A, B, C, D, E) {
	a := ga(src)
	b := gb(src)
	c := gc(src)
	d := gd(src)
	e := ge(src)
	return a, b, c, d, e
}

func Tuple6[A, B, C, D, E, F any](src source.Source, ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D], ge Gen[E], gf Gen[F]) (A, B, C, D, E, F) {
	a := ga(src)
	b := gb(src)
	c := gc(src)
	d := gd(src)
	e := ge(src)
	f := gf(src)
	return a, b, c, d, e, f
}

func Tuple7[A, B, C, D, E, F, G any](src source.Source, ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D], ge Gen[E], gf Gen[F], gg Gen[G]) (A, B, C, D, E, F, G) {
	a := ga(src)
	b := gb(src)
	c := gc(src)
	d := gd(src)
	e := ge(src)
	f := gf(src)
	g := gg(src)
	return a, b, c, d, e, f, g
}

func Tuple8[A, B, C, D, E, F, G, H any](src source.Source, ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D], ge Gen[E], gf Gen[F], gg Gen[G], gh Gen[H]) (A, B, C, D, E, F, G, H) {
	a := ga(src)
	b := gb(src)
	c := gc(src)
	d := gd(src)
	e := ge(src)
	f := gf(src)
	g := gg(src)
	h := gh(src)
	return a, b, c, d, e, f, g, h
}

func Tuple9[A, B, C, D, E, F, G, H, I any](src source.Source, ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D], ge Gen[E], gf Gen[F], gg Gen[G], gh Gen[H], gi Gen[I]) (A, B, C, D, E, F, G, H, I) {
	a := ga(src)
	b := gb(src)
	c := gc(src)
	d := gd(src)
	e := ge(src)
	f := gf(src)
	g := gg(src)
	h := gh(src)
	i := gi(src)
	return a, b, c, d, e, f, g, h, i
}

func Tuple10[A, B, C, D, E, F, G, H, I, J any](src source.Source, ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D], ge Gen[E], gf Gen[F], gg Gen[G], gh Gen[H], gi Gen[I], gj Gen[J]) (A, B, C, D, E, F, G, H, I, J) {
	a := ga(src)
	b := gb(src)
	c := gc(src)
	d := gd(src)
	e := ge(src)
	f := gf(src)
	g := gg(src)
	h := gh(src)
	i := gi(src)
	j := gj(src)
	return a, b, c, d, e, f, g, h, i, j
}

func Tuple11[A, B, C, D, E, F, G, H, I, J, K any](src source.Source, ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D], ge Gen[E], gf Gen[F], gg Gen[G], gh Gen[H], gi Gen[I], gj Gen[J], gk Gen[K]) (A, B, C, D, E, F, G, H, I, J, K) {
	a := ga(src)
	b := gb(src)
	c := gc(src)
	d := gd(src)
	e := ge(src)
	f := gf(src)
	g := gg(src)
	h := gh(src)
	i := gi(src)
	j := gj(src)
	k := gk(src)
	return a, b, c, d, e, f, g, h, i, j, k
}

func Tuple12[A, B, C, D, E, F, G, H, I, J, K, L any](src source.Source, ga Gen[A], gb Gen[B], gc Gen[C], gd Gen[D], ge Gen[E], gf Gen[F], gg Gen[G], gh Gen[H], gi Gen[I], gj Gen[J], gk Gen[K], gl Gen[L]) (A, B, C, D, E, F, G, H, I, J, K, L) {
	a := ga(src)
	b := gb(src)
	c := gc(src)
	d := gd(src)
	e := ge(src)
	f := gf(src)
	g := gg(src)
	h := gh(src)
	i := gi(src)
	j := gj(src)
	k := gk(src)
	l := gl(src)
	return a, b, c, d, e, f, g, h, i, j, k, l
}
