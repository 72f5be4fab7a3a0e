package service

import (
	"errors"
	"testing"
	"time"

	"github.com/GirfanovOV/tg-acc-bot/internal/model"
	"github.com/GirfanovOV/tg-acc-bot/internal/testdata"
)

func TestCheckLimitSet(t *testing.T) {
	gen, at := fixtureTimes()
	l := NewLedger()
	l.ReplaceEvents(testdata.LoadTestData1(gen))
	l.SetLimit(model.Pharmacy, 10)

	spent, limit, ok, err := CheckLimit(l, model.Pharmacy, at)
	if err != nil {
		t.Fatalf("CheckLimit: %v", err)
	}
	if !ok {
		t.Error("expected the pharmacy limit to be reported as set")
	}
	if spent != 13464 || limit != 10 {
		t.Errorf("CheckLimit = (%d, %d), want (13464, 10)", spent, limit)
	}
}

func TestCheckLimitUnset(t *testing.T) {
	gen, at := fixtureTimes()
	l := NewLedger()
	l.ReplaceEvents(testdata.LoadTestData1(gen))

	spent, limit, ok, err := CheckLimit(l, model.Pharmacy, at)
	if err != nil {
		t.Fatalf("CheckLimit: %v", err)
	}
	if ok {
		t.Error("no limit was set, ok must be false")
	}
	if spent != 13464 || limit != 0 {
		t.Errorf("CheckLimit = (%d, %d), want (13464, 0)", spent, limit)
	}
}

// Лимит 0 и отсутствие лимита различаются только флагом ok
func TestCheckLimitZeroIsSet(t *testing.T) {
	now := time.Now()
	l := NewLedger()
	l.Append(model.Other, 42, now.Add(-time.Hour))
	l.SetLimit(model.Other, 0)

	spent, limit, ok, err := CheckLimit(l, model.Other, now)
	if err != nil {
		t.Fatalf("CheckLimit: %v", err)
	}
	if !ok || limit != 0 || spent != 42 {
		t.Errorf("CheckLimit = (%d, %d, %v), want (42, 0, true)", spent, limit, ok)
	}
}

// Структурно отсутствующая коллекция лимитов - ошибка инициализации
// сессии, а не пустой леджер
func TestCheckLimitMissingCollection(t *testing.T) {
	l := &Ledger{Events: testdata.LoadTestData1(time.Now())}

	_, _, _, err := CheckLimit(l, model.Pharmacy, time.Now())
	if !errors.Is(err, ErrNoLimits) {
		t.Errorf("expected ErrNoLimits, got %v", err)
	}
}
