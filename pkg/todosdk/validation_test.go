package todosdk_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidPassword(t *testing.T) {
	tests := []struct {
		pw   string
		want bool
	}{
		{"Passw0rd!", true},
		{"a1!aaaaa", true},
		{"short1!", false},
		{"NoDigits!!", false},
		{"NoSpecial11", false},
		{"", false},
		{strings.Repeat("a", 70) + "1!", true},
		{strings.Repeat("a", 71) + "1!", false},
	}
	for _, tc := range tests {
		t.Run(tc.pw, func(t *testing.T) {
			require.Equal(t, tc.want, todosdk.ValidPassword(tc.pw))
		})
	}
}

func TestCreateUserRequestValidate(t *testing.T) {
	valid := todosdk.CreateUserRequest{Username: "a@example.com", Password: "Passw0rd!", Fullname: "Al"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name string
		req  todosdk.CreateUserRequest
		want string
	}{
		{
			name: "bad email",
			req:  todosdk.CreateUserRequest{Username: "nope", Password: "Passw0rd!", Fullname: "Al"},
			want: todosdk.MsgInvalidEmail,
		},
		{
			name: "weak password",
			req:  todosdk.CreateUserRequest{Username: "a@example.com", Password: "password", Fullname: "Al"},
			want: todosdk.MsgInvalidPassword,
		},
		{
			name: "short fullname",
			req:  todosdk.CreateUserRequest{Username: "a@example.com", Password: "Passw0rd!", Fullname: "A"},
			want: todosdk.MsgFullnameLength,
		},
		{
			name: "missing fullname",
			req:  todosdk.CreateUserRequest{Username: "a@example.com", Password: "Passw0rd!"},
			want: todosdk.MsgFullnameMissing,
		},
		{
			name: "several failures joined",
			req:  todosdk.CreateUserRequest{Username: "nope", Password: "x", Fullname: "Al"},
			want: todosdk.MsgInvalidEmail + " or " + todosdk.MsgInvalidPassword,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			var verr *todosdk.ValidationError
			require.ErrorAs(t, err, &verr)
			require.EqualError(t, err, tc.want)
		})
	}
}

func TestTodoRequestsValidate(t *testing.T) {
	require.NoError(t, todosdk.CreateTodoRequest{Title: "t", Description: "d"}.Validate())
	require.EqualError(t, todosdk.CreateTodoRequest{Description: "d"}.Validate(), "title is required")

	require.EqualError(t, todosdk.UpdateTodoRequest{}.Validate(), todosdk.MsgNothingToUpdate)
	require.NoError(t, todosdk.UpdateTodoRequest{Title: strPtr("x")}.Validate())
	require.EqualError(t, todosdk.UpdateTodoRequest{Title: strPtr("")}.Validate(), "title must be at least 1 characters")

	require.Error(t, todosdk.UpsertTodoRequest{Title: "t", Description: "d"}.Validate())
	require.NoError(t, todosdk.UpsertTodoRequest{Title: "t", Description: "d", StatusCode: todosdk.StatusDone}.Validate())

	require.NoError(t, todosdk.LoginRequest{Username: "a@example.com", Password: "x"}.Validate())
	require.EqualError(t, todosdk.LoginRequest{Username: "a@example.com"}.Validate(), "password is required")
}

func TestCreateUserRequestPasswordTooLong(t *testing.T) {
	req := todosdk.CreateUserRequest{
		Username: "a@example.com",
		Password: strings.Repeat("a", 71) + "1!",
		Fullname: "Al",
	}
	err := req.Validate()

	var verr *todosdk.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{todosdk.MsgPasswordTooLong}, verr.Messages)
}
