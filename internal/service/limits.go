package service

import (
	"time"

	"github.com/GirfanovOV/tg-acc-bot/internal/model"
)

// CheckLimit возвращает расходы категории за последнюю неделю и ее лимит.
// ok сообщает, установлен ли лимит вообще: отсутствующий лимит и лимит 0
// различаются, limit при этом равен 0 в обоих случаях. Структурно
// отсутствующая коллекция лимитов - ошибка ErrNoLimits.
func CheckLimit(l *Ledger, cat model.Category, now time.Time) (spent, limit int64, ok bool, err error) {
	if l.Limits == nil {
		return 0, 0, false, ErrNoLimits
	}
	weekSpendings := WeekByCategory(l.Events, now)
	limit, ok = l.Limits[cat]
	return weekSpendings[cat], limit, ok, nil
}
