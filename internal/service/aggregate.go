package service

import (
	"sort"
	"time"

	"github.com/GirfanovOV/tg-acc-bot/internal/model"
)

const week = 7 * 24 * time.Hour

// AccumulateBySpan разбивает историю на корзины фиксированной ширины span,
// отсчитываемые назад от now, и возвращает суммы по корзинам, начиная с
// самой старой. Корзин ровно столько, сколько нужно, чтобы покрыть самое
// старое событие; пустая история дает пустой результат.
func AccumulateBySpan(events []model.SpendingEvent, span time.Duration, now time.Time) []int64 {
	sorted := make([]model.SpendingEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var res []int64
	boundary := now
	for i := len(sorted) - 1; i >= 0; i-- {
		ev := sorted[i]
		for boundary.After(ev.Date) {
			res = append(res, 0)
			boundary = boundary.Add(-span)
		}
		if len(res) == 0 {
			// Событие из будущего, в окно не попадает
			continue
		}
		res[len(res)-1] += ev.Amount
	}

	// Разворачиваем: самая старая корзина первой
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

// WeekByCategory суммирует расходы за последние 7 дней по категориям.
// Категории без расходов в результат не попадают.
func WeekByCategory(events []model.SpendingEvent, now time.Time) map[model.Category]int64 {
	cutoff := now.Add(-week)
	res := make(map[model.Category]int64)
	for _, ev := range events {
		if !ev.Date.Before(cutoff) {
			res[ev.Category] += ev.Amount
		}
	}
	return res
}
