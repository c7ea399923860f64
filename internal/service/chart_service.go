package service

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wcharczuk/go-chart/v2"

	"notepad/internal/model"
)

// ComputeStats считает строки, слова, символы и top самых частых слов
func ComputeStats(text string, top int) model.Stats {
	stats := model.Stats{Chars: utf8.RuneCountInString(text)}
	if text == "" {
		return stats
	}
	stats.Lines = strings.Count(text, "\n") + 1
	if strings.HasSuffix(text, "\n") {
		stats.Lines--
	}

	counts := make(map[string]int)
	for _, field := range strings.Fields(text) {
		stats.Words++
		word := strings.ToLower(strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		}))
		if word != "" {
			counts[word]++
		}
	}

	words := make([]model.WordCount, 0, len(counts))
	for w, c := range counts {
		words = append(words, model.WordCount{Word: w, Count: c})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if top > 0 && len(words) > top {
		words = words[:top]
	}
	stats.TopWords = words
	return stats
}

// GenerateWordChart рисует PNG со столбцами самых частых слов
func GenerateWordChart(stats model.Stats, title string) ([]byte, error) {
	if len(stats.TopWords) == 0 {
		return nil, model.ErrEmptyDocument
	}

	maxCount := 0
	values := make([]chart.Value, 0, len(stats.TopWords))
	for _, w := range stats.TopWords {
		values = append(values, chart.Value{
			Label: w.Word,
			Value: float64(w.Count),
		})
		if w.Count > maxCount {
			maxCount = w.Count
		}
	}

	graph := chart.BarChart{
		Title: title,
		Background: chart.Style{
			Padding: chart.Box{
				Top: 40,
			},
		},
		Width:    1024,
		Height:   480,
		BarWidth: 50,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
		},
		Bars: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
