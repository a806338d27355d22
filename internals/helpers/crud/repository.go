package crud

import (
	"context"
	"strings"

	helper "mantenimiento_backend/internals/helpers"

	"gorm.io/gorm"
)

// Repository is the typed data-access layer shared by the plain CRUD
// entities. Errors come back already classified (*helper.AppError).
type Repository[M any] struct {
	DB            *gorm.DB
	Label         string
	SearchColumns []string
	Order         string
}

func NewRepository[M any](db *gorm.DB, label string, order string, searchColumns ...string) *Repository[M] {
	if order == "" {
		order = "id DESC"
	}
	return &Repository[M]{DB: db, Label: label, Order: order, SearchColumns: searchColumns}
}

func (r *Repository[M]) List(ctx context.Context) ([]M, error) {
	out := make([]M, 0)
	if err := r.DB.WithContext(ctx).Order(r.Order).Find(&out).Error; err != nil {
		return nil, helper.Classify(err, r.Label)
	}
	return out, nil
}

// Search does a case-insensitive substring match over SearchColumns.
// An empty term lists everything.
func (r *Repository[M]) Search(ctx context.Context, term string) ([]M, error) {
	term = strings.TrimSpace(term)
	if term == "" || len(r.SearchColumns) == 0 {
		return r.List(ctx)
	}
	like := "%" + escapeLike(strings.ToLower(term)) + "%"

	clauses := make([]string, 0, len(r.SearchColumns))
	args := make([]any, 0, len(r.SearchColumns))
	for _, col := range r.SearchColumns {
		clauses = append(clauses, "LOWER(CAST("+col+" AS TEXT)) LIKE ? ESCAPE '\\'")
		args = append(args, like)
	}

	out := make([]M, 0)
	err := r.DB.WithContext(ctx).
		Where(strings.Join(clauses, " OR "), args...).
		Order(r.Order).
		Find(&out).Error
	if err != nil {
		return nil, helper.Classify(err, r.Label)
	}
	return out, nil
}

func (r *Repository[M]) Get(ctx context.Context, id uint) (*M, error) {
	var m M
	if err := r.DB.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, helper.Classify(err, r.Label)
	}
	return &m, nil
}

func (r *Repository[M]) Create(ctx context.Context, m *M) error {
	return helper.Classify(r.DB.WithContext(ctx).Create(m).Error, r.Label)
}

// Update loads the row, lets mutate change it and saves it in one
// transaction. mutate may return an *AppError to abort.
func (r *Repository[M]) Update(ctx context.Context, id uint, mutate func(current *M) error) (*M, error) {
	var m M
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}
		if err := mutate(&m); err != nil {
			return err
		}
		return tx.Save(&m).Error
	})
	if err != nil {
		return nil, helper.Classify(err, r.Label)
	}
	return &m, nil
}

func (r *Repository[M]) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(new(M), id)
	if res.Error != nil {
		if helper.IsForeignKeyViolation(res.Error) {
			return helper.ConflictErr(r.Label+" is still referenced", res.Error)
		}
		return helper.Classify(res.Error, r.Label)
	}
	if res.RowsAffected == 0 {
		return helper.NotFoundErr(r.Label + " not found")
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
