package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/GirfanovOV/tg-acc-bot/internal/model"
)

// ChartGenerator рисует графики по данным леджера
type ChartGenerator struct{}

// NewChartGenerator создает новый генератор графиков
func NewChartGenerator() *ChartGenerator {
	return &ChartGenerator{}
}

// WeeklyPie создает круговую диаграмму недельных расходов по категориям
func (g *ChartGenerator) WeeklyPie(data map[model.Category]int64) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var total int64
	for _, amount := range data {
		total += amount
	}

	values := make([]chart.Value, 0, len(data))
	// Обходим категории в порядке отображения, чтобы диаграмма была
	// стабильной от запроса к запросу
	for _, cat := range model.Categories {
		amount, ok := data[cat]
		if !ok {
			continue
		}
		percentage := float64(amount) / float64(total) * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %d (%.0f%%)", cat, amount, percentage),
			Value: float64(amount),
			Style: chart.Style{
				FontSize:  12,
				FontColor: chart.ColorBlack,
			},
		})
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render weekly pie chart: %w", err)
	}

	return buffer.Bytes(), nil
}
