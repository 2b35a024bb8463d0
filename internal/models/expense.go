package models

const (
	ExpenseFood          = "Food"
	ExpenseTransport     = "Transport"
	ExpenseShopping      = "Shopping"
	ExpenseBills         = "Bills"
	ExpenseEntertainment = "Entertainment"
	ExpenseHealth        = "Health"
	ExpenseOther         = "Other"
)

type Expense struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	UserID      uint    `gorm:"not null;index" json:"userId"`
	Amount      float64 `gorm:"not null" json:"amount"`
	Category    string  `gorm:"not null;default:Other" json:"category"`
	Description string  `json:"description,omitempty"`
	Date        string  `gorm:"not null" json:"date"`
}

func ValidExpenseCategory(value string) bool {
	switch value {
	case ExpenseFood, ExpenseTransport, ExpenseShopping, ExpenseBills,
		ExpenseEntertainment, ExpenseHealth, ExpenseOther:
		return true
	}
	return false
}
