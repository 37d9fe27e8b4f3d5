package productrepo

import (
	"context"
	"errors"

	"sales/internal/core/domain/model/catalog"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ProductRepository using GORM.
type GormProductRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormProductRepository creates a new GORM product repository.
func NewGormProductRepository(db *gorm.DB, tracker aggregateTracker) *GormProductRepository {
	return &GormProductRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product to the database.
func (r *GormProductRepository) Add(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(product.ID(), product)
	return nil
}

// Update saves an existing product to the database.
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := fromDomain(product)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", product.ID().String())
	}

	r.tracker.TrackAggregate(product.ID(), product)
	return nil
}

// Delete removes a product, refusing while any order item references it.
func (r *GormProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var references int64
	if err := r.db.WithContext(ctx).Table("order_items").
		Where("product_id = ?", id.Bytes()).
		Count(&references).Error; err != nil {
		return err
	}
	if references > 0 {
		return errs.NewObjectIsReferencedError("product", id.String())
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}

	return nil
}

// Get retrieves a product by ID.
func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDs retrieves the products for the given identifiers, keyed by ID.
// Missing identifiers are simply absent from the result.
func (r *GormProductRepository) GetByIDs(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]*catalog.Product, error) {
	if len(ids) == 0 {
		return map[kernel.UUID]*catalog.Product{}, nil
	}

	rawIDs := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "id IN ?", rawIDs).Error; err != nil {
		return nil, err
	}

	products := make(map[kernel.UUID]*catalog.Product, len(dtos))
	for _, dto := range dtos {
		product, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products[product.ID()] = product
	}

	return products, nil
}
