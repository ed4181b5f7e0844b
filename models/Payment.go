package models

// Payment is a stored payment record. Records are append-only: they
// are created through the intake path and never updated or deleted.
type Payment struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Currency    string  `gorm:"size:3;not null" json:"currency"`
	Payee       string  `gorm:"size:200;not null" json:"payee"`
	Description *string `gorm:"size:200" json:"description"`
}

func (Payment) TableName() string {
	return "payments"
}
