package repos

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"artesania/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, owner_id, title, description, price, category,
  COALESCE(images_json,'') AS images_json, status,
  created_at, COALESCE(updated_at,'') AS updated_at`

// ListVisible returns the public catalog: status=1 only, newest first.
func (r *ProductRepo) ListVisible() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT `+productCols+`
  FROM products
  WHERE status = 1
  ORDER BY created_at DESC, id DESC
`)
	return out, err
}

// ListByOwner returns every product of one seller, newest first,
// regardless of status.
func (r *ProductRepo) ListByOwner(ownerID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
  SELECT `+productCols+`
  FROM products
  WHERE owner_id = ?
  ORDER BY created_at DESC, id DESC
`, ownerID)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
  SELECT `+productCols+`
  FROM products
  WHERE id = ?
`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return p, domain.ErrNotFound
	}
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) error {
	_, err := r.db.Exec(`
  INSERT INTO products(id, owner_id, title, description, price, category, images_json, status, created_at)
  VALUES (?,?,?,?,?,?,?,?,CURRENT_TIMESTAMP)
`, p.ID, p.OwnerID, p.Title, p.Description, p.Price, p.Category, p.ImagesJSON, p.Status)
	return err
}

// Update mutates the editable fields in place. Scoped by owner AND id;
// a zero-row match means the caller does not own the product.
func (r *ProductRepo) Update(ownerID, id string, p domain.Product) error {
	res, err := r.db.Exec(`
  UPDATE products
  SET title = ?, description = ?, price = ?, category = ?, status = ?, updated_at = CURRENT_TIMESTAMP
  WHERE id = ? AND owner_id = ?
`, p.Title, p.Description, p.Price, p.Category, p.Status, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrForbidden
	}
	return nil
}

// Toggle flips status unconditionally. Scoped by owner AND id; it never
// writes a sale record.
func (r *ProductRepo) Toggle(ownerID, id string) error {
	res, err := r.db.Exec(`
  UPDATE products
  SET status = CASE status WHEN 1 THEN 0 ELSE 1 END, updated_at = CURRENT_TIMESTAMP
  WHERE id = ? AND owner_id = ?
`, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrForbidden
	}
	return nil
}

func (r *ProductRepo) Delete(ownerID, id string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrForbidden
	}
	return nil
}

// MarkSold performs the sold transition as one transaction: hide the
// listing first, then append the snapshot sale record. Valid only from
// Available. A failure after the status update has applied is surfaced
// as ErrSalePartial, distinct from a clean failure.
func (r *ProductRepo) MarkSold(ownerID, id, saleID string, soldAt time.Time) (domain.SaleRecord, error) {
	var rec domain.SaleRecord

	tx, err := r.db.Beginx()
	if err != nil {
		return rec, err
	}
	defer func() { _ = tx.Rollback() }()

	var p domain.Product
	if err := tx.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, domain.ErrNotFound
		}
		return rec, err
	}
	if p.OwnerID != ownerID {
		return rec, domain.ErrForbidden
	}
	if !p.Status {
		return rec, domain.ErrNotAvailable
	}

	res, err := tx.Exec(`
  UPDATE products SET status = 0, updated_at = CURRENT_TIMESTAMP
  WHERE id = ? AND owner_id = ? AND status = 1
`, id, ownerID)
	if err != nil {
		return rec, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return rec, domain.ErrNotAvailable
	}

	rec = domain.SaleRecord{
		ID:        saleID,
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Category:  p.Category,
		SoldAt:    soldAt.UTC().Format(time.RFC3339),
	}
	if _, err := tx.Exec(`
  INSERT INTO sales(id, product_id, title, price, category, sold_at)
  VALUES (?,?,?,?,?,?)
`, rec.ID, rec.ProductID, rec.Title, rec.Price, rec.Category, rec.SoldAt); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			// status flipped but the snapshot insert could not be undone
			return domain.SaleRecord{}, fmt.Errorf("%w: %v", domain.ErrSalePartial, err)
		}
		return domain.SaleRecord{}, err
	}

	if err := tx.Commit(); err != nil {
		// commit outcome unknown; the two effects may have applied partially
		return domain.SaleRecord{}, fmt.Errorf("%w: %v", domain.ErrSalePartial, err)
	}
	return rec, nil
}
