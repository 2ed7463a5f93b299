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

// Package randval 是「值空間映射層（value-space mapping layer）」：
// 給定一個輸出均勻分布整數的熵來源（source.Source），把 raw draw 映射成任意目標型別的值，
// 並保持底層來源的統計均勻性。
//
// 它負責五件事：
//  1. 整數映射：8~128 bits 的有號/無號整數與平台字寬整數（截斷/串接規則見 integer.go）。
//  2. 浮點區間映射：[0,1)、(0,1)、[0,1] 三種區間、float32/float64 兩種寬度，
//     邊界必須精確（全 0 draw 映到 0.0；全 1 draw 在 closed 區間映到恰好 1.0）。
//  3. Unicode scalar value：21-bit 遮罩 + 拒絕採樣（rejection sampling），
//     絕不產出 surrogate 或超出 0x10FFFF 的值。
//  4. 複合組裝：bool、optional、固定長度序列、固定 arity tuple、unit，
//     一律由上往下遞迴委派給純量映射器。
//  5. seeded bootstrap：任何提供 from-source 建構子的型別，由 Seeded 代為呼叫並在失敗時中止。
//
// 設計重點：
//   - 所有映射器都是無狀態純函式，熵來源以參數注入；呼叫之間不保留任何狀態，
//     除了回傳值本身也不做額外配置。
//   - 同一個 Source instance 在一次呼叫期間視為被獨佔持有（非可重入）；
//     決定性來源搭配固定的 draw 順序是整個 audit/重現機制的根基。
//   - 映射層本身沒有檔案格式、網路協定或 CLI 介面；唯一的邊界就是 source.Source。
//
// 典型使用情境：
//   - 測試資料/property-based 測試：用決定性 Source 產生可重現的任意值。
//   - 模擬器：大量抽樣後以 stats 套件驗證輸出分布的均勻性（見 Auditor）。
package randval

import "github.com/zintix-labs/randval/source"

// Gen 是「由熵來源產生一個 T」的生成函式。
// 複合組裝器（Maybe / Array / TupleN）以 Gen 為元素單位做遞迴委派。
type Gen[T any] func(src source.Source) T
