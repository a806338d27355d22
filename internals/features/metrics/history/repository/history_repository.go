package repository

import (
	"context"
	"strings"

	helper "mantenimiento_backend/internals/helpers"

	"gorm.io/gorm"
)

// Filter narrows a history listing. Zero values are ignored.
type Filter struct {
	Maquina string
	Anio    int
	Semana  int
}

// SortColumns whitelists the sort_by keys accepted by the history listings.
var SortColumns = map[string]string{
	"fecha":        "fecha",
	"maquina":      "maquina",
	"semana":       "semana",
	"archivado_en": "archivado_en",
}

type HistoryRepository[M any] struct {
	DB    *gorm.DB
	Label string
}

func New[M any](db *gorm.DB, label string) *HistoryRepository[M] {
	return &HistoryRepository[M]{DB: db, Label: label}
}

func (f Filter) scope(db *gorm.DB) *gorm.DB {
	if m := strings.TrimSpace(f.Maquina); m != "" {
		db = db.Where("maquina = ?", m)
	}
	if f.Anio > 0 {
		db = db.Where("anio = ?", f.Anio)
	}
	if f.Semana > 0 {
		db = db.Where("semana = ?", f.Semana)
	}
	return db
}

func (r *HistoryRepository[M]) Page(ctx context.Context, f Filter, p helper.Params) ([]M, int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(new(M)).Scopes(f.scope).Count(&total).Error; err != nil {
		return nil, 0, helper.Classify(err, r.Label)
	}

	out := make([]M, 0)
	err := r.DB.WithContext(ctx).
		Scopes(f.scope).
		Order(p.OrderBy(SortColumns, "fecha")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&out).Error
	if err != nil {
		return nil, 0, helper.Classify(err, r.Label)
	}
	return out, total, nil
}
