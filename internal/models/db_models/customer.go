package db_models

type CustomerRole string

const (
	RoleUser  CustomerRole = "user"
	RoleAdmin CustomerRole = "admin"
)

type Customer struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique;not null"`
	PasswordHash string
	Role         CustomerRole `gorm:"type:varchar(16);default:'user'"`

	PaymentMethods []PaymentMethod `gorm:"foreignKey:CustomerID"`
	Subscriptions  []Subscription  `gorm:"foreignKey:CustomerID"`
	Invoices       []Invoice       `gorm:"foreignKey:CustomerID"`
}
