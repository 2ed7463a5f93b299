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

// Package stats 提供映射層輸出的「統計均勻性驗證」。
//
// randval 的核心承諾是：映射之後仍保持底層來源的均勻分布。
// 這個 package 把承諾變成可檢驗的數字——對一批 [0,1] 樣本做等寬分桶，
// 算 Pearson chi-squared 統計量與對應 p-value（gonum distuv），
// 並以點估計（gonum stat）描述樣本的矩。
package stats

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/zintix-labs/randval/errs"
)

var lang language.Tag = language.English

// CI 95% 信賴區間。
type CI struct {
	Lo float64
	Hi float64
}

// UniformReport 是一批 [0,1] 樣本的均勻性檢驗結果。
//
// 讀法：
//   - ChiSquare / PValue：等寬分桶下的 Pearson 檢定。均勻來源的 PValue
//     應該大致均勻落在 (0,1)；持續出現極小值（< 1e-4）代表分布有偏。
//   - Mean / MeanCI：均勻分布的期望是 0.5，CI 不蓋住 0.5 是警訊。
//   - Min / Max：配合區間合約檢查邊界（open 區間兩端都必須嚴格落在內側）。
type UniformReport struct {
	Name      string  `yaml:"name"`
	N         int     `yaml:"n"`
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max"`
	Mean      float64 `yaml:"mean"`
	MeanCI    CI      `yaml:"mean_ci"`
	Variance  float64 `yaml:"variance"`
	Bins      int     `yaml:"bins"`
	BinCounts []int   `yaml:"bin_counts"`
	ChiSquare float64 `yaml:"chi_square"`
	PValue    float64 `yaml:"p_value"`
}

// Uniformity 對一批樣本做均勻性檢驗。
//
// 參數要求：
//   - samples 至少要有 bins 個（每桶期望值 < 1 的 chi-squared 沒有意義）。
//   - bins 至少 2。
//
// 樣本假定落在 [0,1]（這正是映射層的區間合約）；恰為 1.0 的樣本
// 歸入最後一桶。落在區間外的樣本直接回報錯誤——那不是統計問題，
// 是映射層合約被打破。
func Uniformity(name string, samples []float64, bins int) (*UniformReport, error) {
	if bins < 2 {
		return nil, errs.Warnf("stats: bins must >= 2, got %d", bins)
	}
	if len(samples) < bins {
		return nil, errs.Warnf("stats: need at least %d samples, got %d", bins, len(samples))
	}

	n := len(samples)
	counts := make([]int, bins)
	minV, maxV := samples[0], samples[0]
	for _, x := range samples {
		if x < 0 || x > 1 || math.IsNaN(x) {
			return nil, errs.Fatalf("stats: sample %v outside [0,1]", x)
		}
		if x < minV {
			minV = x
		}
		if x > maxV {
			maxV = x
		}
		b := int(x * float64(bins))
		if b == bins { // x == 1.0
			b = bins - 1
		}
		counts[b]++
	}

	expected := float64(n) / float64(bins)
	chi2 := 0.0
	for _, c := range counts {
		d := float64(c) - expected
		chi2 += d * d / expected
	}
	pvalue := distuv.ChiSquared{K: float64(bins - 1)}.Survival(chi2)

	mean := stat.Mean(samples, nil)
	variance := stat.Variance(samples, nil)
	se := math.Sqrt(variance / float64(n))

	return &UniformReport{
		Name:      name,
		N:         n,
		Min:       minV,
		Max:       maxV,
		Mean:      mean,
		MeanCI:    CI{Lo: mean - 1.96*se, Hi: mean + 1.96*se},
		Variance:  variance,
		Bins:      bins,
		BinCounts: counts,
		ChiSquare: chi2,
		PValue:    pvalue,
	}, nil
}

// StdOut

func (r *UniformReport) fmtBasic() ([]string, map[string]string) {
	p := message.NewPrinter(lang)
	basic := map[string]string{
		"Samples":    p.Sprintf("%d", r.N),
		"Min":        p.Sprintf("%.9f", r.Min),
		"Max":        p.Sprintf("%.9f", r.Max),
		"Mean":       p.Sprintf("%.6f", r.Mean),
		"Mean 95%CI": p.Sprintf("[%.6f,%.6f]", r.MeanCI.Lo, r.MeanCI.Hi),
		"Variance":   p.Sprintf("%.6f", r.Variance),
		"Bins":       p.Sprintf("%d", r.Bins),
		"Chi-Square": p.Sprintf("%.3f", r.ChiSquare),
		"P-Value":    p.Sprintf("%.4f", r.PValue),
	}
	keys := []string{"Samples", "Min", "Max", "Mean", "Mean 95%CI", "Variance", "Bins", "Chi-Square", "P-Value"}
	return keys, basic
}

// Table 輸出人眼可讀的檢驗結果表格。
func (r *UniformReport) Table() string {
	keys, basic := r.fmtBasic()
	title := r.Name
	if title == "" {
		title = "uniformity"
	}
	return fmtTable(title, keys, basic)
}

func fmtTable(title string, keys []string, msg map[string]string) string {
	p := message.NewPrinter(lang)
	maxKeyLen := 0
	maxValLen := 0
	for k, m := range msg {
		if w := runewidth.StringWidth(k); w > maxKeyLen {
			maxKeyLen = w
		}
		if w := runewidth.StringWidth(m); w > maxValLen {
			maxValLen = w
		}
	}
	maxKeyLen += 2
	maxValLen += 2

	divider := "+" + strings.Repeat("-", maxKeyLen) + "+" + strings.Repeat("-", maxValLen) + "+\n"
	top := "+" + strings.Repeat("-", maxKeyLen+1+maxValLen) + "+\n"

	totalInner := maxKeyLen + maxValLen + 1
	titleW := runewidth.StringWidth(title)

	left := (totalInner - titleW) / 2
	right := totalInner - titleW - left

	fmtStr := top
	fmtStr += p.Sprintf("|%s%s%s|\n", blank(left), title, blank(right))
	fmtStr += divider
	for _, k := range keys {
		fmtStr += p.Sprintf("| %s%s | %s%s |\n", k, blank(maxKeyLen-2-runewidth.StringWidth(k)), msg[k], blank(maxValLen-2-runewidth.StringWidth(msg[k])))
	}
	fmtStr += divider

	return fmtStr
}

func blank(w int) string {
	if w < 1 {
		return ""
	}
	return strings.Repeat(" ", w)
}
