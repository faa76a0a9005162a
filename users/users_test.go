package users_test

import (
	"testing"

	"github.com/smartmail/go-assistant-client/users"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	named := users.User{Name: "Alice", Email: "alice@x.com"}
	assert.Equal(t, "Alice", named.DisplayName())

	unnamed := users.User{Email: "alice@x.com"}
	assert.Equal(t, "alice@x.com", unnamed.DisplayName())
}
