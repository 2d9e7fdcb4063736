package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for duplicate keys.
const uniqueViolation = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(aggregate *order.Order)
}

// NewGormOrderRepository creates a new GORM order repository. tracker may be nil
// for read-only use.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Create saves a new order together with its lines.
func (r *GormOrderRepository) Create(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.NewSaveFailedError(aggregate.ID(), ports.ErrOrderAlreadyExists)
		}
		return err
	}

	r.track(aggregate)
	return nil
}

// Update saves an existing order. The row is only written when its version still
// equals aggregate.Version(); the version is then incremented and the lines replaced.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ? AND version = ?", dto.ID, dto.Version).
			Updates(map[string]any{
				"status":     dto.Status,
				"updated_at": dto.UpdatedAt,
				"version":    gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return r.updateConflict(tx, dto.ID)
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderLineDTO{}).Error; err != nil {
			return err
		}

		return tx.Create(&dto.OrderLines).Error
	})
	if err != nil {
		return err
	}

	r.track(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	var dto OrderDTO
	if err := r.withLines(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all orders ordered by creation time.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withLines(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllPendingCreatedBefore retrieves Pending orders created before t, oldest first.
func (r *GormOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, t time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withLines(ctx).
		Where("status = ? AND created_at < ?", order.Pending.String(), t).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func (r *GormOrderRepository) withLines(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("OrderLines", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

// updateConflict tells a missing order apart from a stale version.
func (r *GormOrderRepository) updateConflict(tx *gorm.DB, id string) error {
	var count int64
	if err := tx.Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return ports.NewSaveFailedError(id, errs.NewObjectNotFoundError("order", id))
	}
	return ports.NewSaveFailedError(id, errs.NewVersionIsInvalidError("version"))
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate)
	}
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
