package spending

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"supplier-ledger-backend/internal/models"
)

// PeriodNet is the signed balance of one month or year: income counts
// positive, expenses negative.
type PeriodNet struct {
	Period  string  `json:"period"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
}

// MonthlySummary groups all records by calendar month ("2006-01").
func (s *Service) MonthlySummary() ([]PeriodNet, error) {
	return s.summarize("2006-01")
}

// YearlySummary groups all records by year ("2006").
func (s *Service) YearlySummary() ([]PeriodNet, error) {
	return s.summarize("2006")
}

// summarize groups in memory rather than in SQL: the date-bucketing
// functions differ between sqlite and postgres and both backends are
// supported.
func (s *Service) summarize(layout string) ([]PeriodNet, error) {
	var recs []models.SpendingRecord
	if err := s.db.Find(&recs).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]*PeriodNet)
	for _, rec := range recs {
		key := rec.SpentAt.Format(layout)
		b, ok := buckets[key]
		if !ok {
			b = &PeriodNet{Period: key}
			buckets[key] = b
		}
		switch rec.Kind {
		case models.SpendingIncome:
			b.Income += rec.Amount
			b.Net += rec.Amount
		case models.SpendingExpense:
			b.Expense += rec.Amount
			b.Net -= rec.Amount
		}
	}

	out := make([]PeriodNet, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out, nil
}

// ExportCSV streams every record as CSV, newest first.
func (s *Service) ExportCSV(w io.Writer) error {
	recs, err := s.List()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "date", "kind", "category", "amount", "note"}); err != nil {
		return err
	}
	for _, rec := range recs {
		row := []string{
			rec.ID.String(),
			rec.SpentAt.Format("2006-01-02"),
			rec.Kind,
			rec.Category,
			strconv.FormatFloat(rec.Amount, 'f', 2, 64),
			rec.Note,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
