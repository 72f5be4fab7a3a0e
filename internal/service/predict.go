package service

import (
	"errors"
	"time"

	"github.com/GirfanovOV/tg-acc-bot/internal/model"
)

// ErrNotEnoughData возвращается, когда истории недостаточно для прогноза
var ErrNotEnoughData = errors.New("predict: not enough data")

// PredictNextWeek оценивает расходы следующей недели: по недельным корзинам
// строится МНК-прямая amount = a + b*week и вычисляется ее значение в точке
// следующей, еще не наблюдавшейся недели. Результат усекается к нулю.
// Одна корзина дает вырожденную матрицу, поэтому прогнозом служит ее же
// сумма; пустая история - ErrNotEnoughData.
func PredictNextWeek(events []model.SpendingEvent, now time.Time) (int64, error) {
	totals := AccumulateBySpan(events, week, now)
	n := len(totals)
	if n == 0 {
		return 0, ErrNotEnoughData
	}
	if n == 1 {
		return totals[0], nil
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, total := range totals {
		x, y := float64(i), float64(total)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	fn := float64(n)
	b := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	a := (sumY - b*sumX) / fn

	return int64(a + b*fn), nil
}
