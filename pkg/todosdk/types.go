package todosdk

import "time"

// Status codes known to the service.
const (
	StatusOpen       = "open"
	StatusInProgress = "in_progress"
	StatusDone       = "done"
)

// Response is the envelope around every payload.
type Response[T any] struct {
	Result  bool   `json:"result"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// User never carries the password hash.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Fullname  string    `json:"fullname"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TodoStatus struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type Todo struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TodoStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type UserPayload struct {
	UserView User `json:"userView"`
}

type LoginPayload struct {
	UserView User   `json:"userView"`
	Token    string `json:"token"`
}

type TodoPayload struct {
	TodoView Todo `json:"todoView"`
}

type TodoList struct {
	Todos []Todo `json:"todos"`
}

type TodoListPayload struct {
	TodoView TodoList `json:"todoView"`
}

type StatusesPayload struct {
	Statuses []TodoStatus `json:"statuses"`
}

// CreateUserRequest registers an account. Username must be an email address.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"password"`
	Fullname string `json:"fullname" validate:"required,min=2,max=30"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateTodoRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=2000"`
}

// UpdateTodoRequest changes only the fields that are set. At least one must be.
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	StatusCode  *string `json:"statusCode,omitempty" validate:"omitempty,min=1"`
}

// UpsertTodoRequest replaces the whole todo.
type UpsertTodoRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required,max=2000"`
	StatusCode  string `json:"statusCode" validate:"required"`
}
