/*
Package todosdk is the Go client for the todo service, plus the request and
response types the service itself speaks.

# Overview

A Client covers the public endpoints (health, registration, login). Logging
in returns a Session that carries the JWT and exposes the authenticated
endpoints:

	client := todosdk.NewClient("http://localhost:8080")

	_, err := client.CreateUser(ctx, todosdk.CreateUserRequest{
		Username: "alice@example.com",
		Password: "Passw0rd!",
		Fullname: "Alice",
	})

	session, err := client.Login(ctx, todosdk.LoginRequest{
		Username: "alice@example.com",
		Password: "Passw0rd!",
	})

	todo, err := session.CreateTodo(ctx, todosdk.CreateTodoRequest{Title: "buy milk", Description: "2l"})
	todos, err := session.FindTodos(ctx, todosdk.StatusOpen)

# Errors

Every response is wrapped in the {result, message, data} envelope. A failed
call returns *APIError holding the HTTP status and the envelope message;
note that domain failures (not found, duplicate username, bad password) are
reported with HTTP 200 and result=false.

# Validation

Request types carry validator tags and a Validate method. The server runs
the same checks, so calling Validate client side only saves a round trip.
*/
package todosdk
