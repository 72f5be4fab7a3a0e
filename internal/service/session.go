package service

import "sync"

// UserState представляет текущее состояние диалога с пользователем
type UserState int

const (
	// StateFree - нет активного сценария, свободный ввод
	StateFree UserState = iota
	// StateChoosingCategoryForSpend - ждем выбор категории после /add
	StateChoosingCategoryForSpend
	// StateChoosingCategoryForLimit - ждем выбор категории после /set_limit
	StateChoosingCategoryForLimit
	// StateAwaitingAmount - категория выбрана, ждем сумму расхода
	StateAwaitingAmount
	// StateAwaitingLimit - категория выбрана, ждем значение лимита
	StateAwaitingLimit
)

// Session хранит состояние диалога и леджер одного пользователя.
// Обращения к сессии сериализуются через ее мьютекс: ходы одного
// пользователя обрабатываются строго последовательно.
type Session struct {
	mu sync.Mutex

	State               UserState
	PendingCategory     string
	DontUnderstandCount int

	Ledger *Ledger
}

// Reset возвращает диалог в свободное состояние, не трогая леджер
func (s *Session) Reset() {
	s.State = StateFree
	s.PendingCategory = ""
	s.DontUnderstandCount = 0
}

// sessionStore выдает сессии по идентификатору пользователя. Мьютекс
// хранилища защищает только мапу, блокировка самой сессии - per-user.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{
		sessions: make(map[int64]*Session),
	}
}

// get возвращает сессию пользователя, создавая ее при первом обращении
func (st *sessionStore) get(userID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[userID]
	if !ok {
		s = &Session{Ledger: NewLedger()}
		st.sessions[userID] = s
	}
	return s
}
