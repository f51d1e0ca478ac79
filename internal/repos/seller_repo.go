package repos

import (
	"artesania/internal/domain"

	"github.com/jmoiron/sqlx"
)

type SellerRepo struct{ DB *sqlx.DB }

func NewSellerRepo(db *sqlx.DB) *SellerRepo { return &SellerRepo{DB: db} }

func (r *SellerRepo) ByEmail(email string) (*domain.Seller, error) {
	var s domain.Seller
	err := r.DB.Get(&s, `SELECT id,email,name,password_hash FROM sellers WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SellerRepo) ByID(id string) (*domain.Seller, error) {
	var s domain.Seller
	err := r.DB.Get(&s, `SELECT id,email,name,password_hash FROM sellers WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SellerRepo) BindSession(sid, sellerID string) error {
	_, err := r.DB.Exec(`INSERT INTO sessions(id,seller_id,last_seen)
                          VALUES(?,?,CURRENT_TIMESTAMP)
                          ON CONFLICT(id) DO UPDATE SET seller_id=excluded.seller_id,last_seen=CURRENT_TIMESTAMP`, sid, sellerID)
	return err
}

func (r *SellerRepo) SessionSeller(sid string) (*domain.Seller, error) {
	var u domain.Seller
	err := r.DB.Get(&u, `
      SELECT u.id,u.email,u.name,u.password_hash
      FROM sessions s
      JOIN sellers u ON u.id=s.seller_id
      WHERE s.id=?`, sid)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *SellerRepo) UnbindSession(sid string) error {
	_, err := r.DB.Exec(`UPDATE sessions SET seller_id=NULL,last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
