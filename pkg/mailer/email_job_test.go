package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailJob_Normalize(t *testing.T) {
	j := EmailJob{To: "buyer@example.com", Template: "welcome"}
	j.Normalize()
	assert.Equal(t, "buyer@example.com", j.Data["Email"])

	j = EmailJob{To: "buyer@example.com", Data: map[string]any{"Email": "other@example.com"}}
	j.Normalize()
	assert.Equal(t, "other@example.com", j.Data["Email"])
}

func TestEmailJob_Valid(t *testing.T) {
	assert.True(t, (&EmailJob{To: "a@b.c", Template: "welcome"}).Valid())
	assert.True(t, (&EmailJob{To: "a@b.c", Subject: "hi", Text: "body"}).Valid())
	assert.False(t, (&EmailJob{To: "a@b.c", Subject: "hi"}).Valid())
	assert.False(t, (&EmailJob{Template: "welcome"}).Valid())
}
