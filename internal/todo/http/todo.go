package http

import (
	"net/http"

	"github.com/aussiebroadwan/todo/internal/todo/usecase"
	"github.com/aussiebroadwan/todo/pkg/httpx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
)

const msgNoTodos = "todo not found."

type TodoHandler struct {
	TodoUseCase *usecase.TodoUseCase
}

// HandleFind godoc
//
//	@Summary		List todos
//	@Description	Oldest first. An empty result is successful with the message "todo not found.".
//	@Tags			Todos
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Status code filter"	Enums(open, in_progress, done)
//	@Success		200		{object}	todosdk.Response[todosdk.TodoListPayload]
//	@Failure		401		{object}	httpx.Envelope	"Missing or expired jwt"
//	@Router			/v1/todo [get].
func (h *TodoHandler) HandleFind(w http.ResponseWriter, r *http.Request) {
	todos, err := h.TodoUseCase.FindTodos(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	msg := msgSuccess
	if len(todos) == 0 {
		msg = msgNoTodos
	}
	httpx.WriteSuccess(w, msg, todosdk.TodoListPayload{
		TodoView: todosdk.TodoList{Todos: toTodoViews(todos)},
	})
}

// HandleCreate godoc
//
//	@Summary	Create a todo
//	@Tags		Todos
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		todosdk.CreateTodoRequest	true	"New todo"
//	@Success	200		{object}	todosdk.Response[todosdk.TodoPayload]
//	@Failure	400		{object}	httpx.Envelope	"Validation failed"
//	@Failure	401		{object}	httpx.Envelope	"Missing or expired jwt"
//	@Router		/v1/todo [post].
func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req todosdk.CreateTodoRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.TodoUseCase.CreateTodo(r.Context(), usecase.CreateTodoInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, msgSuccess, todosdk.TodoPayload{TodoView: toTodoView(todo)})
}

// HandleStatuses godoc
//
//	@Summary	List todo statuses
//	@Tags		Todos
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	todosdk.Response[todosdk.StatusesPayload]
//	@Failure	401	{object}	httpx.Envelope	"Missing or expired jwt"
//	@Router		/v1/todo/statuses [get].
func (h *TodoHandler) HandleStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.TodoUseCase.ListStatuses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]todosdk.TodoStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, toStatusView(s))
	}
	httpx.WriteSuccess(w, msgSuccess, todosdk.StatusesPayload{Statuses: out})
}

// HandleGet godoc
//
//	@Summary	Get a todo
//	@Tags		Todos
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Todo ULID"
//	@Success	200	{object}	todosdk.Response[todosdk.TodoPayload]
//	@Failure	400	{object}	httpx.Envelope	"Malformed id"
//	@Failure	401	{object}	httpx.Envelope	"Missing or expired jwt"
//	@Router		/v1/todo/{id} [get].
func (h *TodoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := parseTodoID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.TodoUseCase.GetTodo(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, msgSuccess, todosdk.TodoPayload{TodoView: toTodoView(todo)})
}

// HandleUpdate godoc
//
//	@Summary		Update a todo
//	@Description	Only the fields present in the body change.
//	@Tags			Todos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Todo ULID"
//	@Param			request	body		todosdk.UpdateTodoRequest	true	"Fields to change"
//	@Success		200		{object}	todosdk.Response[todosdk.TodoPayload]
//	@Failure		400		{object}	httpx.Envelope	"Malformed id or validation failed"
//	@Failure		401		{object}	httpx.Envelope	"Missing or expired jwt"
//	@Router			/v1/todo/{id} [patch].
func (h *TodoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := parseTodoID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req todosdk.UpdateTodoRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.TodoUseCase.UpdateTodo(r.Context(), id, usecase.UpdateTodoInput{
		Title:       req.Title,
		Description: req.Description,
		StatusCode:  req.StatusCode,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, msgSuccess, todosdk.TodoPayload{TodoView: toTodoView(todo)})
}

// HandleUpsert godoc
//
//	@Summary		Replace or create a todo
//	@Description	Every field is replaced; the todo is created under the given id when it does not exist.
//	@Tags			Todos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Todo ULID"
//	@Param			request	body		todosdk.UpsertTodoRequest	true	"Full todo"
//	@Success		200		{object}	todosdk.Response[todosdk.TodoPayload]
//	@Failure		400		{object}	httpx.Envelope	"Malformed id or validation failed"
//	@Failure		401		{object}	httpx.Envelope	"Missing or expired jwt"
//	@Router			/v1/todo/{id} [put].
func (h *TodoHandler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	id, err := parseTodoID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req todosdk.UpsertTodoRequest
	if err := decodeRequest(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.TodoUseCase.UpsertTodo(r.Context(), id, usecase.UpsertTodoInput{
		Title:       req.Title,
		Description: req.Description,
		StatusCode:  req.StatusCode,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, msgSuccess, todosdk.TodoPayload{TodoView: toTodoView(todo)})
}

// HandleDelete godoc
//
//	@Summary	Delete a todo
//	@Tags		Todos
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Todo ULID"
//	@Success	200	{object}	todosdk.Response[todosdk.TodoPayload]	"The deleted todo"
//	@Failure	400	{object}	httpx.Envelope							"Malformed id"
//	@Failure	401	{object}	httpx.Envelope							"Missing or expired jwt"
//	@Router		/v1/todo/{id} [delete].
func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := parseTodoID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	todo, err := h.TodoUseCase.DeleteTodo(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteSuccess(w, msgSuccess, todosdk.TodoPayload{TodoView: toTodoView(todo)})
}
