package datagen

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"StorePulse/internal/domain/models"
)

// customerColumns is the required CSV header, in any order.
var customerColumns = []string{"customer_id", "recency", "frequency", "monetary"}

// LoadCustomersCSV reads customer rows from a CSV file. The header must
// carry the customer_id, recency, frequency and monetary columns; extra
// columns are skipped. Malformed values fail the load, they are not
// silently defaulted.
func LoadCustomersCSV(path string) ([]models.Customer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open customers csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, want := range customerColumns {
		if _, ok := cols[want]; !ok {
			return nil, fmt.Errorf("customers csv: missing column %q", want)
		}
	}

	var rows []models.Customer
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		line++

		c, err := parseCustomerRow(record, cols)
		if err != nil {
			return nil, fmt.Errorf("customers csv line %d: %w", line, err)
		}
		rows = append(rows, c)
	}
	return rows, nil
}

func parseCustomerRow(record []string, cols map[string]int) (models.Customer, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	id, err := strconv.Atoi(field("customer_id"))
	if err != nil {
		return models.Customer{}, fmt.Errorf("customer_id: %w", err)
	}
	recency, err := strconv.Atoi(field("recency"))
	if err != nil {
		return models.Customer{}, fmt.Errorf("recency: %w", err)
	}
	frequency, err := strconv.Atoi(field("frequency"))
	if err != nil {
		return models.Customer{}, fmt.Errorf("frequency: %w", err)
	}
	monetary, err := strconv.ParseFloat(field("monetary"), 64)
	if err != nil {
		return models.Customer{}, fmt.Errorf("monetary: %w", err)
	}

	return models.Customer{
		CustomerID: id,
		Recency:    recency,
		Frequency:  frequency,
		Monetary:   monetary,
	}, nil
}
