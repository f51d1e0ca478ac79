package repos

import (
	"artesania/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SaleRepo struct{ db *sqlx.DB }

func NewSaleRepo(db *sqlx.DB) *SaleRepo { return &SaleRepo{db: db} }

// ListAll returns the full sale log, most recent first. The log is
// append-only; nothing here updates or deletes rows.
func (r *SaleRepo) ListAll() ([]domain.SaleRecord, error) {
	var out []domain.SaleRecord
	err := r.db.Select(&out, `
  SELECT id, product_id, title, price, category, sold_at
  FROM sales
  ORDER BY sold_at DESC, id DESC
`)
	return out, err
}
