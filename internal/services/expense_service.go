package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/rsahoo0530/LifeSync-V2/internal/docstore"
	"github.com/rsahoo0530/LifeSync-V2/internal/models"
	"github.com/rsahoo0530/LifeSync-V2/internal/syncer"
)

var (
	ErrExpenseInvalid  = errors.New("expense invalid")
	ErrExpenseNotFound = errors.New("expense not found")
)

type ExpenseService struct {
	store docstore.Store
}

func NewExpenseService(store docstore.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

type ExpenseInput struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

func (service *ExpenseService) Create(session *syncer.Session, input ExpenseInput) (models.Expense, error) {
	expense, err := buildExpense(session.UserID(), input)
	if err != nil {
		return models.Expense{}, err
	}
	expense.ID = uuid.NewString()
	if err := service.store.Write(session.UserID(), docstore.CollectionExpenses, expense.ID, expense); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

func (service *ExpenseService) Update(session *syncer.Session, expenseID string, input ExpenseInput) (models.Expense, error) {
	if _, found := findExpense(session.Expenses(), expenseID); !found {
		return models.Expense{}, ErrExpenseNotFound
	}

	expense, err := buildExpense(session.UserID(), input)
	if err != nil {
		return models.Expense{}, err
	}
	expense.ID = expenseID
	if err := service.store.Write(session.UserID(), docstore.CollectionExpenses, expenseID, expense); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

func (service *ExpenseService) Delete(session *syncer.Session, expenseID string) error {
	if _, found := findExpense(session.Expenses(), expenseID); !found {
		return ErrExpenseNotFound
	}
	return service.store.Delete(session.UserID(), docstore.CollectionExpenses, expenseID)
}

func buildExpense(userID uint, input ExpenseInput) (models.Expense, error) {
	if input.Amount <= 0 || !ValidDay(input.Date) {
		return models.Expense{}, ErrExpenseInvalid
	}
	if input.Category == "" {
		input.Category = models.ExpenseOther
	}
	if !models.ValidExpenseCategory(input.Category) {
		return models.Expense{}, ErrExpenseInvalid
	}
	return models.Expense{
		UserID:      userID,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: strings.TrimSpace(input.Description),
		Date:        input.Date,
	}, nil
}

func findExpense(expenses []models.Expense, expenseID string) (models.Expense, bool) {
	for _, expense := range expenses {
		if expense.ID == expenseID {
			return expense, true
		}
	}
	return models.Expense{}, false
}
