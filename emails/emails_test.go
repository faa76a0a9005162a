package emails_test

import (
	"testing"

	"github.com/smartmail/go-assistant-client/emails"
	"github.com/stretchr/testify/assert"
)

func TestSnippet(t *testing.T) {
	email := emails.Email{BodyText: "  First line of the body\nSecond line"}
	assert.Equal(t, "First line of the body", email.Snippet(80))
	assert.Equal(t, "First...", email.Snippet(5))

	empty := emails.Email{}
	assert.Equal(t, "", empty.Snippet(80))
}
