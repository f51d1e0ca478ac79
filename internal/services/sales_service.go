package services

import (
	"fmt"
	"log"
	"sort"
	"time"

	"artesania/internal/domain"
	"artesania/internal/repos"

	"github.com/shopspring/decimal"
)

type SalesService struct {
	Sales *repos.SaleRepo
}

func NewSalesService(sales *repos.SaleRepo) *SalesService {
	return &SalesService{Sales: sales}
}

func (s *SalesService) ListSales() ([]domain.SaleRecord, error) {
	return s.Sales.ListAll()
}

// MonthBucket is one dashboard summary cell: every sale of one calendar
// month summed up. Flagged counts records whose price did not parse and
// therefore contributed 0 to the total.
type MonthBucket struct {
	Key     string // "MM/YYYY"
	Year    int
	Month   time.Month
	Total   decimal.Decimal
	Flagged int
}

// FilterByDateRange keeps records with startDate <= soldAt <= endDate;
// a nil bound is unbounded. Records with an unparseable sold_at are
// dropped from range filtering (they cannot be placed on the axis).
func FilterByDateRange(records []domain.SaleRecord, start, end *time.Time) []domain.SaleRecord {
	if start == nil && end == nil {
		return records
	}
	out := make([]domain.SaleRecord, 0, len(records))
	for _, rec := range records {
		t, err := parseSoldAt(rec.SoldAt)
		if err != nil {
			continue
		}
		if start != nil && t.Before(*start) {
			continue
		}
		if end != nil && t.After(*end) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// GroupByMonth buckets records by sold_at truncated to year-month.
// Bucket order is insertion order of first occurrence; use
// SortChronological for a time-ordered display.
func GroupByMonth(records []domain.SaleRecord) []MonthBucket {
	idx := map[string]int{}
	var buckets []MonthBucket
	for _, rec := range records {
		t, err := parseSoldAt(rec.SoldAt)
		if err != nil {
			log.Printf("[sales] skipping record %s: bad sold_at %q", rec.ID, rec.SoldAt)
			continue
		}
		key := fmt.Sprintf("%02d/%04d", int(t.Month()), t.Year())
		i, ok := idx[key]
		if !ok {
			i = len(buckets)
			idx[key] = i
			buckets = append(buckets, MonthBucket{Key: key, Year: t.Year(), Month: t.Month(), Total: decimal.Zero})
		}
		amount, err := decimal.NewFromString(rec.Price)
		if err != nil {
			// contributes 0 but is flagged, never silently dropped
			log.Printf("[sales] non-numeric price %q on record %s", rec.Price, rec.ID)
			buckets[i].Flagged++
			continue
		}
		buckets[i].Total = buckets[i].Total.Add(amount)
	}
	return buckets
}

// SortChronological orders buckets by parsed year/month, oldest first.
func SortChronological(buckets []MonthBucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Month < buckets[j].Month
	})
}

func parseSoldAt(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
