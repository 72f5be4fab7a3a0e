package service

import (
	"errors"
	"time"

	"github.com/GirfanovOV/tg-acc-bot/internal/model"
)

// ErrNoLimits сигнализирует о структурно отсутствующей коллекции лимитов.
// Это нарушение инварианта инициализации сессии, а не пустой леджер.
var ErrNoLimits = errors.New("ledger: limits collection is not initialized")

// Ledger хранит историю расходов и недельные лимиты одного пользователя.
// События только добавляются; лимит на категорию можно перезаписать.
type Ledger struct {
	Events []model.SpendingEvent
	Limits map[model.Category]int64
}

// NewLedger создает пустой леджер с инициализированной коллекцией лимитов
func NewLedger() *Ledger {
	return &Ledger{
		Limits: make(map[model.Category]int64),
	}
}

// Append добавляет запись о расходе, присваивая ей новый идентификатор
func (l *Ledger) Append(cat model.Category, amount int64, date time.Time) {
	ev := model.SpendingEvent{
		Category: cat,
		Amount:   amount,
		Date:     date,
	}
	ev.GenerateID()
	l.Events = append(l.Events, ev)
}

// SetLimit устанавливает либо перезаписывает недельный лимит категории
func (l *Ledger) SetLimit(cat model.Category, limit int64) {
	if l.Limits == nil {
		l.Limits = make(map[model.Category]int64)
	}
	l.Limits[cat] = limit
}

// ReplaceEvents полностью заменяет историю событий. Используется только
// загрузчиками тестовых данных.
func (l *Ledger) ReplaceEvents(events []model.SpendingEvent) {
	l.Events = events
}
