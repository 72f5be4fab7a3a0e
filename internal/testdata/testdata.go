// Package testdata генерирует воспроизводимые наборы расходов для команд
// /load_test_1 и /load_test_2. Генератор с фиксированным зерном дает одни
// и те же суммы при каждой загрузке; метки времени привязываются к
// переданному "сейчас".
package testdata

import (
	"time"

	"github.com/GirfanovOV/tg-acc-bot/internal/model"
)

const seed = 42

// generate равномерно раскладывает samples событий по интервалу
// [now-span, now), категории по кругу, суммы из randint(5, 2000)
func generate(now time.Time, span time.Duration, samples int) []model.SpendingEvent {
	rng := newMT19937(seed)
	costs := make([]int64, samples)
	for i := range costs {
		costs[i] = rng.randint(5, 2000)
	}

	start := now.Add(-span)
	step := span / time.Duration(samples)
	events := make([]model.SpendingEvent, samples)
	for i := range events {
		events[i] = model.SpendingEvent{
			Category: model.Categories[i%len(model.Categories)],
			Amount:   costs[i],
			Date:     start.Add(step * time.Duration(i)),
		}
		events[i].GenerateID()
	}
	return events
}

// LoadTestData1 - 100 событий почти за неделю (6 дней 23 часа)
func LoadTestData1(now time.Time) []model.SpendingEvent {
	return generate(now, 6*24*time.Hour+23*time.Hour, 100)
}

// LoadTestData2 - 1000 событий за восемь недель
func LoadTestData2(now time.Time) []model.SpendingEvent {
	return generate(now, 8*7*24*time.Hour, 1000)
}
