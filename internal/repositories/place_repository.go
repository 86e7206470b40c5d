package repositories

import (
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"weekendwish/internal/models/db_models"
	"weekendwish/internal/models/domain_models"
)

type PlaceRepository interface {
	CreatePlace(ctx context.Context, place *db_models.Place) (*db_models.Place, error)
	GetByID(ctx context.Context, id string) (*db_models.Place, error)
	UpdatePlace(ctx context.Context, place *db_models.Place) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, page, pageSize int) ([]db_models.Place, error)

	FetchPlaces(ctx context.Context, center domain_models.Coordinates, radiusM float64, limit int) ([]domain_models.Place, error)
	Kind() domain_models.SourceKind
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

type placeRepository struct {
	db *gorm.DB
}

func (r *placeRepository) CreatePlace(ctx context.Context, place *db_models.Place) (*db_models.Place, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(place).Error
	})
	if err != nil {
		return nil, err
	}
	return place, nil
}

func (r *placeRepository) GetByID(ctx context.Context, id string) (*db_models.Place, error) {
	var place db_models.Place
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&place).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) UpdatePlace(ctx context.Context, place *db_models.Place) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Save(place).Error
	})
}

func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Place{}, "id = ?", id).Error
}

func (r *placeRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Place, error) {
	var places []db_models.Place
	err := r.db.WithContext(ctx).Scopes(func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}).Find(&places).Error
	if err != nil {
		return nil, err
	}
	return places, nil
}

// FetchPlaces makes the store usable as a ranking source. The ranker
// applies the radius cutoff locally for this kind, so rows are returned
// as-is.
func (r *placeRepository) FetchPlaces(ctx context.Context, center domain_models.Coordinates, radiusM float64, limit int) ([]domain_models.Place, error) {
	var rows []db_models.Place
	query := r.db.WithContext(ctx).Order("created_at")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	places := make([]domain_models.Place, 0, len(rows))
	for i := range rows {
		places = append(places, rows[i].ToDomain())
	}
	return places, nil
}

func (r *placeRepository) Kind() domain_models.SourceKind {
	return domain_models.SourceDatabase
}
