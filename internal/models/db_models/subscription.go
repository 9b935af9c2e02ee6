package db_models

import (
	"github.com/google/uuid"
)

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "active"
	SubStatusCanceled SubscriptionStatus = "canceled"
)

type BillingInterval string

const (
	IntervalMonthly BillingInterval = "monthly"
	IntervalYearly  BillingInterval = "yearly"
)

type Subscription struct {
	BaseModel
	CustomerID uuid.UUID `gorm:"index;not null"`

	PlanName string          `gorm:"not null"`
	Price    float64         `gorm:"not null"`
	Interval BillingInterval `gorm:"type:varchar(16)"`

	Status SubscriptionStatus `gorm:"type:varchar(16);index"`

	// Unix seconds. EndsAt is set exactly when the subscription is canceled.
	StartsAt int64 `gorm:"not null"`
	EndsAt   *int64

	Customer Customer `gorm:"foreignKey:CustomerID"`
}

func (s *Subscription) IsCanceled() bool {
	return s.Status == SubStatusCanceled
}
