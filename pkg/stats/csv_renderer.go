package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type CsvRendererImpl struct {
}

func NewCsvRenderer() *CsvRendererImpl {
	return &CsvRendererImpl{}
}

func (t *CsvRendererImpl) RenderMonthly(summary MonthlySummary) (string, error) {
	data := make([][]string, 0, len(summary.Categories)+5)
	data = append(data, []string{"Category", "Spent", "Limit", "Remaining"})

	for _, row := range summary.Categories {
		limit := ""
		remaining := ""
		if row.Limit != nil {
			limit = amountToString(*row.Limit)
			remaining = amountToString(*row.Remaining)
		}
		data = append(data, []string{row.Category.Name, amountToString(row.Total), limit, remaining})
	}

	data = append(data,
		[]string{"Income", amountToString(summary.Income), "", ""},
		[]string{"Expense", amountToString(summary.Expense), "", ""},
		[]string{"Balance", amountToString(summary.Balance), "", ""},
	)

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func amountToString(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
