package http

import (
	"github.com/aussiebroadwan/todo/internal/todo/domain"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

func toUserView(u domain.User) todosdk.User {
	return todosdk.User{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Fullname:  u.Fullname,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toStatusView(s domain.TodoStatus) todosdk.TodoStatus {
	return todosdk.TodoStatus{Code: s.Code, Name: s.Name}
}

func toTodoView(t domain.Todo) todosdk.Todo {
	return todosdk.Todo{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      toStatusView(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTodoViews(ts []domain.Todo) []todosdk.Todo {
	out := make([]todosdk.Todo, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTodoView(t))
	}
	return out
}
