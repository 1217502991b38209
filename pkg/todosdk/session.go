package todosdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Session is an authenticated view of the API. It is safe for concurrent use.
type Session struct {
	client *Client
	token  string
	user   User
}

func (s *Session) Token() string { return s.token }

// User is the account returned at login; zero for sessions built with
// Client.Session.
func (s *Session) User() User { return s.user }

func (s *Session) call(ctx context.Context, method, path string, body, target any) error {
	return s.client.call(ctx, method, path, body, s.token, target)
}

func (s *Session) GetUser(ctx context.Context, id string) (*User, error) {
	var out UserPayload
	if err := s.call(ctx, http.MethodGet, "/user/"+escape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out.UserView, nil
}

// GetUserByUsername returns nil, nil when no user has that username.
func (s *Session) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/user?username="+url.QueryEscape(username), nil, s.token)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := decodeEnvelope(resp, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var out UserPayload
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out.UserView, nil
}

// FindTodos lists todos oldest first. An empty status lists all of them.
func (s *Session) FindTodos(ctx context.Context, status string) ([]Todo, error) {
	path := "/todo"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out TodoListPayload
	if err := s.call(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.TodoView.Todos, nil
}

func (s *Session) GetTodo(ctx context.Context, id string) (*Todo, error) {
	return s.todo(ctx, http.MethodGet, id, nil)
}

func (s *Session) CreateTodo(ctx context.Context, req CreateTodoRequest) (*Todo, error) {
	var out TodoPayload
	if err := s.call(ctx, http.MethodPost, "/todo", req, &out); err != nil {
		return nil, err
	}
	return &out.TodoView, nil
}

func (s *Session) UpdateTodo(ctx context.Context, id string, req UpdateTodoRequest) (*Todo, error) {
	return s.todo(ctx, http.MethodPatch, id, req)
}

func (s *Session) UpsertTodo(ctx context.Context, id string, req UpsertTodoRequest) (*Todo, error) {
	return s.todo(ctx, http.MethodPut, id, req)
}

func (s *Session) DeleteTodo(ctx context.Context, id string) (*Todo, error) {
	return s.todo(ctx, http.MethodDelete, id, nil)
}

func (s *Session) ListStatuses(ctx context.Context) ([]TodoStatus, error) {
	var out StatusesPayload
	if err := s.call(ctx, http.MethodGet, "/todo/statuses", nil, &out); err != nil {
		return nil, err
	}
	return out.Statuses, nil
}

func (s *Session) todo(ctx context.Context, method, id string, body any) (*Todo, error) {
	var out TodoPayload
	if err := s.call(ctx, method, "/todo/"+escape(id), body, &out); err != nil {
		return nil, err
	}
	return &out.TodoView, nil
}
