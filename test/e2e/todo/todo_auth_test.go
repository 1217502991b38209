package todo_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/aussiebroadwan/todo/pkg/todosdk"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	client := setupTodoServer(t)
	username := uniqueUsername()

	user, err := client.CreateUser(t.Context(), todosdk.CreateUserRequest{
		Username: username,
		Password: testPassword,
		Fullname: testFullname,
	})
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, username, user.Username)
	require.Equal(t, username, user.Email)
	require.Equal(t, testFullname, user.Fullname)

	t.Run("duplicate username", func(t *testing.T) {
		_, err := client.CreateUser(t.Context(), todosdk.CreateUserRequest{
			Username: username,
			Password: testPassword,
			Fullname: "Someone Else",
		})
		requireAPIError(t, err, "already exists")
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := client.CreateUser(t.Context(), todosdk.CreateUserRequest{
			Username: "not-an-email",
			Password: "short",
			Fullname: "X",
		})
		apiErr := requireAPIError(t, err, todosdk.MsgInvalidEmail)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.True(t, apiErr.Contains(todosdk.MsgInvalidPassword))
		require.True(t, apiErr.Contains(todosdk.MsgFullnameLength))
	})
}

func TestLogin(t *testing.T) {
	client := setupTodoServer(t)
	session := registerAndLogin(t, client)

	claims, err := jwtx.NewVerifierHS256([]byte(jwtSecret), "todo").Verify(session.Token())
	require.NoError(t, err)
	require.Equal(t, session.User().ID, claims.Subject)
	require.Equal(t, session.User().Username, claims.Username)

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.Login(t.Context(), todosdk.LoginRequest{
			Username: session.User().Username,
			Password: "Wr0ng!pass",
		})
		requireAPIError(t, err, "bad password.")
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := client.Login(t.Context(), todosdk.LoginRequest{
			Username: uniqueUsername(),
			Password: testPassword,
		})
		requireAPIError(t, err, "is not registered")
	})
}

// TestUnauthenticatedRequests verifies protected routes reject requests
// before any handler runs.
func TestUnauthenticatedRequests(t *testing.T) {
	client := setupTodoServer(t)

	for name, token := range map[string]string{
		"missing token": "",
		"garbage token": "not.a.jwt",
	} {
		t.Run(name, func(t *testing.T) {
			session := client.Session(token)

			_, err := session.FindTodos(t.Context(), "")
			apiErr := requireAPIError(t, err, "")
			require.True(t, apiErr.IsUnauthorized())
			require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

			_, err = session.CreateTodo(t.Context(), todosdk.CreateTodoRequest{Title: "x", Description: "y"})
			apiErr = requireAPIError(t, err, "")
			require.True(t, apiErr.IsUnauthorized())
		})
	}
}

func TestUserLookup(t *testing.T) {
	client := setupTodoServer(t)
	session := registerAndLogin(t, client)
	me := session.User()

	user, err := session.GetUser(t.Context(), me.ID)
	require.NoError(t, err)
	require.Equal(t, me.Username, user.Username)

	user, err = session.GetUserByUsername(t.Context(), me.Username)
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, me.ID, user.ID)

	user, err = session.GetUserByUsername(t.Context(), uniqueUsername())
	require.NoError(t, err)
	require.Nil(t, user)
}
