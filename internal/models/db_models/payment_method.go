package db_models

import (
	"github.com/google/uuid"
)

// PaymentMethod stores only the masked tail of the card plus an opaque
// gateway token. The full card number is never persisted.
type PaymentMethod struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"index;not null"`
	CardLast4  string    `gorm:"size:4"`
	Token      string    `gorm:"uniqueIndex"`

	Customer Customer `gorm:"foreignKey:CustomerID"`
}
