package service

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/GirfanovOV/tg-acc-bot/internal/model"
	"github.com/GirfanovOV/tg-acc-bot/internal/testdata"
)

// Reply описывает исходящее сообщение для транспортного слоя
type Reply struct {
	Text string
	// ShowCategories просит транспорт показать клавиатуру выбора категории
	ShowCategories bool
	// Photo - готовое PNG-изображение; если установлено, Text игнорируется
	Photo []byte
}

// ChartRenderer рисует круговую диаграмму недельных расходов
type ChartRenderer interface {
	WeeklyPie(data map[model.Category]int64) ([]byte, error)
}

// Тексты ответов бота
const (
	msgWelcome    = "Hey! Im an accountant bot.\nIll help u managing ur finances!"
	msgUnknownCmd = "Unknown cmd 🥵"
	msgWrongInput = "Wrong input"
	msgChooseCat  = "Please, choose category:"
	msgTypeAmount = "Type the amount spent"
	msgTypeLimit  = "Type new limit"
	msgEmptyWeek  = "You havent spent any money this week 😢"
	msgTooFewData = "Too few data 😔"
	msgTestData1  = "Test data 1 loaded"
	msgTestData2  = "Test data 2 loaded"
)

// aggressionLevels - ответы на непонятный ввод, по нарастающей
var aggressionLevels = []string{
	"Sorry, I dont understand.",
	"I dont understand🧐",
	"I dont understand!🤬",
	"STOP!✋",
}

var numberRe = regexp.MustCompile(`^[0-9]+$`)

// inputClass классифицирует необработанный текст пользователя
type inputClass int

const (
	inputCommand inputClass = iota
	inputCategory
	inputInteger
	inputFreeText
)

// ExpenseTracker - оркестратор диалога: интерпретирует ввод пользователя
// относительно состояния его сессии, обновляет леджер и выбирает ответ
type ExpenseTracker struct {
	sessions *sessionStore
	charts   ChartRenderer
	now      func() time.Time
}

// NewExpenseTracker создает новый экземпляр ExpenseTracker
func NewExpenseTracker(charts ChartRenderer) *ExpenseTracker {
	return &ExpenseTracker{
		sessions: newSessionStore(),
		charts:   charts,
		now:      time.Now,
	}
}

// HandleInput обрабатывает один ход пользователя и возвращает ответ.
// Ошибка возможна только при нарушении структурных инвариантов сессии;
// весь некорректный пользовательский ввод обрабатывается локально.
func (t *ExpenseTracker) HandleInput(userID int64, text string) (Reply, error) {
	s := t.sessions.get(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	switch class, value := classify(text); class {
	case inputCommand:
		return t.handleCommand(s, value)
	case inputCategory:
		return t.handleCategory(s, model.Category(value)), nil
	case inputInteger:
		return t.handleNumber(s, value)
	default:
		return t.handleFreeText(s), nil
	}
}

// classify определяет класс ввода: команда, имя категории, целое число
// либо произвольный текст
func classify(text string) (inputClass, string) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "/") {
		cmd := strings.Fields(text)[0][1:]
		// Телеграм позволяет адресовать команду через @botname
		if at := strings.Index(cmd, "@"); at >= 0 {
			cmd = cmd[:at]
		}
		return inputCommand, cmd
	}
	if _, ok := model.ParseCategory(text); ok {
		return inputCategory, text
	}
	if numberRe.MatchString(text) {
		if _, err := strconv.ParseInt(text, 10, 64); err == nil {
			return inputInteger, text
		}
	}
	return inputFreeText, text
}

func (t *ExpenseTracker) handleCommand(s *Session, cmd string) (Reply, error) {
	s.Reset()

	switch cmd {
	case "start":
		return Reply{Text: msgWelcome}, nil
	case "help":
		return Reply{Text: helpMessage()}, nil
	case "add":
		s.State = StateChoosingCategoryForSpend
		return Reply{Text: msgChooseCat, ShowCategories: true}, nil
	case "set_limit":
		s.State = StateChoosingCategoryForLimit
		return Reply{Text: msgChooseCat, ShowCategories: true}, nil
	case "week":
		return t.weekReport(s), nil
	case "weeks":
		return t.weeksReport(s), nil
	case "chart":
		return t.weeklyChart(s)
	case "load_test_1":
		t.loadFixture(s, 1)
		return Reply{Text: msgTestData1}, nil
	case "load_test_2":
		t.loadFixture(s, 2)
		return Reply{Text: msgTestData2}, nil
	}

	return Reply{Text: msgUnknownCmd}, nil
}

// LoadFixture заменяет леджер пользователя детерминированным тестовым
// набором. Программный аналог команд /load_test_1 и /load_test_2.
func (t *ExpenseTracker) LoadFixture(userID int64, fixtureID int) error {
	s := t.sessions.get(userID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Reset()
	if !t.loadFixture(s, fixtureID) {
		return fmt.Errorf("unknown fixture %d", fixtureID)
	}
	return nil
}

func (t *ExpenseTracker) loadFixture(s *Session, fixtureID int) bool {
	switch fixtureID {
	case 1:
		s.Ledger.ReplaceEvents(testdata.LoadTestData1(t.now()))
	case 2:
		s.Ledger.ReplaceEvents(testdata.LoadTestData2(t.now()))
	default:
		return false
	}
	return true
}

// handleCategory обрабатывает ввод, совпавший с именем категории
func (t *ExpenseTracker) handleCategory(s *Session, cat model.Category) Reply {
	switch s.State {
	case StateChoosingCategoryForSpend:
		s.PendingCategory = string(cat)
		s.State = StateAwaitingAmount
		return Reply{Text: msgTypeAmount}
	case StateChoosingCategoryForLimit:
		s.PendingCategory = string(cat)
		s.State = StateAwaitingLimit
		return Reply{Text: msgTypeLimit}
	case StateFree:
		// Вне сценария имя категории ничем не лучше любого другого текста
		return t.handleFreeText(s)
	}

	s.Reset()
	return Reply{Text: msgWrongInput}
}

// handleNumber обрабатывает ввод суммы расхода либо значения лимита
func (t *ExpenseTracker) handleNumber(s *Session, text string) (Reply, error) {
	if s.State == StateFree {
		return t.handleFreeText(s), nil
	}
	if s.State != StateAwaitingAmount && s.State != StateAwaitingLimit {
		s.Reset()
		return Reply{Text: msgWrongInput}, nil
	}

	value, _ := strconv.ParseInt(text, 10, 64)
	cat := model.Category(s.PendingCategory)

	if s.State == StateAwaitingLimit {
		s.Ledger.SetLimit(cat, value)
		s.Reset()
		return Reply{Text: fmt.Sprintf("Limit for %s category was updated!", cat)}, nil
	}

	s.Ledger.Append(cat, value, t.now())
	text = fmt.Sprintf("Category %s was updated!", cat)

	spent, limit, hasLimit, err := CheckLimit(s.Ledger, cat, t.now())
	if err != nil {
		return Reply{}, fmt.Errorf("checking limit for %s: %w", cat, err)
	}
	if hasLimit {
		if spent > limit {
			text += fmt.Sprintf("\nYouve exceeded your weekly limit for the category %s 😱", cat)
		} else {
			text += fmt.Sprintf("\nYouve already spent %d of you limit %d for this week", spent, limit)
		}
	}

	s.Reset()
	return Reply{Text: text}, nil
}

// handleFreeText отвечает на бессмысленный ввод. В свободном состоянии
// ответ становится все резче с каждым повтором, в остальных - жесткий
// сброс сценария.
func (t *ExpenseTracker) handleFreeText(s *Session) Reply {
	if s.State == StateFree {
		idx := s.DontUnderstandCount
		if idx >= len(aggressionLevels) {
			idx = len(aggressionLevels) - 1
		}
		s.DontUnderstandCount++
		return Reply{Text: aggressionLevels[idx]}
	}

	s.Reset()
	return Reply{Text: msgWrongInput}
}

// weekReport строит отчет о расходах за последнюю неделю по категориям
func (t *ExpenseTracker) weekReport(s *Session) Reply {
	if len(s.Ledger.Events) == 0 {
		return Reply{Text: msgEmptyWeek}
	}

	weekSpendings := WeekByCategory(s.Ledger.Events, t.now())
	var total int64
	for _, v := range weekSpendings {
		total += v
	}
	if total == 0 {
		return Reply{Text: msgEmptyWeek}
	}

	type catTotal struct {
		cat    model.Category
		amount int64
	}
	top := make([]catTotal, 0, len(weekSpendings))
	for _, cat := range model.Categories {
		if amount, ok := weekSpendings[cat]; ok {
			top = append(top, catTotal{cat, amount})
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].amount > top[j].amount
	})

	var sb strings.Builder
	sb.WriteString("Wow!🤩 Heres your top spenings of this week:\n\n")
	for i, item := range top {
		fmt.Fprintf(&sb, "%d. %s: %d\n", i+1, item.cat, item.amount)
	}
	fmt.Fprintf(&sb, "\nAnd the total is: %d moneys!💸", total)
	if len(top) == 1 {
		sb.WriteString("\nOnly 1 category present")
	} else {
		fmt.Fprintf(&sb, "\n%d categories present!", len(top))
	}

	return Reply{Text: sb.String()}
}

// weeksReport строит понедельную статистику за всю историю с прогнозом
func (t *ExpenseTracker) weeksReport(s *Session) Reply {
	if len(s.Ledger.Events) == 0 {
		return Reply{Text: msgEmptyWeek}
	}

	now := t.now()
	weekTotals := AccumulateBySpan(s.Ledger.Events, week, now)
	if len(weekTotals) < 2 {
		return Reply{Text: msgTooFewData}
	}

	var sb strings.Builder
	sb.WriteString("Your week totals:\n\n")
	for i := len(weekTotals) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, " - %d\n", weekTotals[i])
	}

	prediction, err := PredictNextWeek(s.Ledger.Events, now)
	if err != nil {
		return Reply{Text: msgTooFewData}
	}
	fmt.Fprintf(&sb, "\nBy the way, we predict you to spend %d next week!", prediction)

	return Reply{Text: sb.String()}
}

// weeklyChart отдает круговую диаграмму недельных расходов
func (t *ExpenseTracker) weeklyChart(s *Session) (Reply, error) {
	weekSpendings := WeekByCategory(s.Ledger.Events, t.now())
	if len(weekSpendings) == 0 {
		return Reply{Text: msgEmptyWeek}, nil
	}

	img, err := t.charts.WeeklyPie(weekSpendings)
	if err != nil {
		return Reply{}, fmt.Errorf("rendering weekly chart: %w", err)
	}
	return Reply{Photo: img}, nil
}

func helpMessage() string {
	return "This is a help message\n" +
		"/add - add spending for specific category.\n" +
		"/set_limit - set the limit for the category.\n" +
		"/week show stats for the last week.\n" +
		"/weeks show accumulated stats for the whole history."
}
