package model

import (
	"time"

	"github.com/google/uuid"
)

// SpendingEvent представляет одну запись о расходе. Amount хранится в
// минимальных единицах валюты и не бывает отрицательным.
type SpendingEvent struct {
	ID       string    `json:"id"`
	Category Category  `json:"category"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
}

// GenerateID генерирует новый UUID для события, если он еще не установлен
func (e *SpendingEvent) GenerateID() {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
}
