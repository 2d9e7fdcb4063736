// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps come from the domain, so GORM's automatic time tracking is disabled.
type OrderDTO struct {
	ID         string         `gorm:"type:varchar(64);primaryKey"`
	Status     string         `gorm:"type:varchar(16);not null;index"`
	CreatedAt  time.Time      `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt  time.Time      `gorm:"not null;autoUpdateTime:false"`
	Version    int            `gorm:"not null;default:0"`
	OrderLines []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one order line row. Position keeps the line order of the aggregate.
type OrderLineDTO struct {
	ID        string          `gorm:"type:varchar(64);primaryKey"`
	OrderID   string          `gorm:"type:varchar(64);not null;index"`
	Position  int             `gorm:"not null"`
	ProductID string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	lines := aggregate.OrderLines()
	lineDTOs := make([]OrderLineDTO, 0, len(lines))

	for i, line := range lines {
		lineDTOs = append(lineDTOs, OrderLineDTO{
			ID:        line.ID(),
			OrderID:   aggregate.ID(),
			Position:  i,
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice().Amount(),
			CreatedAt: line.CreatedAt(),
			UpdatedAt: line.UpdatedAt(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID(),
		Status:     aggregate.Status().String(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
		Version:    aggregate.Version(),
		OrderLines: lineDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
// Lines must already be sorted by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]order.OrderLine, 0, len(dto.OrderLines))
	for _, lineDTO := range dto.OrderLines {
		line, lineErr := order.RestoreOrderLine(
			lineDTO.ID,
			lineDTO.ProductID,
			lineDTO.Quantity,
			kernel.NewMoney(lineDTO.UnitPrice),
			lineDTO.CreatedAt.UTC(),
			lineDTO.UpdatedAt.UTC(),
		)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.ID, lines, status, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), dto.Version)
}
