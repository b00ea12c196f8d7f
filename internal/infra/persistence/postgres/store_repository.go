package postgres

import (
	"context"

	"rater/internal/domain/entity"
	domainerrors "rater/internal/domain/errors"
	"rater/internal/domain/repository"
	"rater/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the domain.StoreRepository interface using GORM.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// FindByID retrieves a store with its owner and ratings preloaded, each
// rating carrying its rater.
func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel
	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("ratings.created_at DESC")
		}).
		Preload("Ratings.User").
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by id")
	}

	return toStoreDomain(&storeM), nil
}

// FindByEmail retrieves a single store by its contact email.
func (repo *storeRepository) FindByEmail(ctx context.Context, email string) (*entity.Store, error) {
	var storeM model.StoreModel
	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by email")
	}

	return toStoreDomain(&storeM), nil
}

// Create persists a new store entity to the database.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrStoreAlreadyExists.WrapMessage("store email already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("store owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// List returns stores matching the query with owner and rating values
// preloaded, so per-store aggregates can be recomputed on read.
func (repo *storeRepository) List(ctx context.Context, query repository.StoreQuery) ([]*entity.Store, error) {
	tx := repo.db.WithContext(ctx).
		Preload("Owner").
		Preload("Ratings")

	if query.Name != "" {
		tx = tx.Where("name ILIKE ?", "%"+query.Name+"%")
	}
	if query.Address != "" {
		tx = tx.Where("address ILIKE ?", "%"+query.Address+"%")
	}
	// An empty SortBy leaves the result unordered; the search endpoint does
	// not guarantee an ordering.
	if query.SortBy != "" {
		tx = tx.Order(orderClause(query.SortBy, query.SortOrder))
	}

	var storeMs []*model.StoreModel
	if err := tx.Find(&storeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeMs))
	for _, storeM := range storeMs {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// Count returns the total number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return total, nil
}

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	var ratings []*entity.Rating
	for _, ratingM := range data.Ratings {
		ratings = append(ratings, toRatingDomain(ratingM))
	}

	return &entity.Store{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Address:   data.Address,
		OwnerID:   data.OwnerID,
		Owner:     toUserDomain(data.Owner),
		Ratings:   ratings,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel for persistence.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:        data.ID,
		Name:      data.Name,
		Email:     data.Email,
		Address:   data.Address,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
