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
	ErrTodoInvalid  = errors.New("todo invalid")
	ErrTodoNotFound = errors.New("todo not found")
)

type TodoService struct {
	store docstore.Store
	clock Clock
}

func NewTodoService(store docstore.Store, clock Clock) *TodoService {
	return &TodoService{store: store, clock: clock}
}

func (service *TodoService) Create(session *syncer.Session, text string, dueDate string) (models.Todo, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Todo{}, ErrTodoInvalid
	}
	if dueDate != "" && !ValidDay(dueDate) {
		return models.Todo{}, ErrInvalidDay
	}

	todo := models.Todo{
		ID:        uuid.NewString(),
		UserID:    session.UserID(),
		Text:      text,
		Completed: false,
		DueDate:   dueDate,
		CreatedAt: service.clock.Now(),
	}
	if err := service.store.Write(session.UserID(), docstore.CollectionTodos, todo.ID, todo); err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

// Toggle flips the completed flag through a partial update so a stale
// session can never clobber the todo's text.
func (service *TodoService) Toggle(session *syncer.Session, todoID string) (models.Todo, error) {
	todo, found := findTodo(session.Todos(), todoID)
	if !found {
		return models.Todo{}, ErrTodoNotFound
	}

	todo.Completed = !todo.Completed
	err := service.store.Update(session.UserID(), docstore.CollectionTodos, todoID, map[string]any{
		"completed": todo.Completed,
	})
	if err != nil {
		return models.Todo{}, err
	}
	return todo, nil
}

func (service *TodoService) Delete(session *syncer.Session, todoID string) error {
	if _, found := findTodo(session.Todos(), todoID); !found {
		return ErrTodoNotFound
	}
	return service.store.Delete(session.UserID(), docstore.CollectionTodos, todoID)
}

func findTodo(todos []models.Todo, todoID string) (models.Todo, bool) {
	for _, todo := range todos {
		if todo.ID == todoID {
			return todo, true
		}
	}
	return models.Todo{}, false
}
