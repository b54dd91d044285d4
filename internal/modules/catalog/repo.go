package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo looks prices up in the trusted catalog. It satisfies
// checkout.PriceSource so the session endpoint never has to take the
// browser's word for what an item costs.
type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// UnitAmountCents resolves an item by id first, then by exact name.
// Inactive products read as not found.
func (r *Repo) UnitAmountCents(ctx context.Context, id, name string) (int64, bool, error) {
	var p Product

	if id != "" {
		err := r.db.WithContext(ctx).First(&p, "id = ? AND active = ?", id, true).Error
		if err == nil {
			return p.PriceCents, true, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, err
		}
	}

	err := r.db.WithContext(ctx).First(&p, "name = ? AND active = ?", name, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return p.PriceCents, true, nil
}
