package domain

import "encoding/json"

type Product struct {
	ID          string   `db:"id"`
	OwnerID     string   `db:"owner_id"`
	Title       string   `db:"title"`
	Description string   `db:"description"`
	Price       string   `db:"price"` // stored as text; formatted only at render time
	Category    Category `db:"category"`
	ImagesJSON  string   `db:"images_json"`
	Status      bool     `db:"status"` // true = publicly visible/available
	CreatedAt   string   `db:"created_at"`
	UpdatedAt   string   `db:"updated_at"`
}

// Images decodes the ordered image path list. A broken or empty
// images_json yields an empty list, never an error.
func (p Product) Images() []string {
	if p.ImagesJSON == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(p.ImagesJSON), &out); err != nil {
		return nil
	}
	kept := out[:0]
	for _, s := range out {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return kept
}

// SetImages encodes the ordered image path list. Order is gallery order;
// the first entry is the default thumbnail.
func (p *Product) SetImages(paths []string) {
	b, _ := json.Marshal(paths)
	p.ImagesJSON = string(b)
}

// SaleRecord is an append-only snapshot taken when a listing is sold.
// It is never mutated and survives later product edits or deletion.
type SaleRecord struct {
	ID        string   `db:"id"`
	ProductID string   `db:"product_id"`
	Title     string   `db:"title"`
	Price     string   `db:"price"`
	Category  Category `db:"category"`
	SoldAt    string   `db:"sold_at"`
}
