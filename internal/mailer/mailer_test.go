package mailer

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendConfirmationLogsLink(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(zerolog.New(&buf), "http://localhost:8080/")

	require.NoError(t, m.SendConfirmation(context.Background(), "a@b.c", "tok en"))
	assert.Contains(t, buf.String(), `"link":"http://localhost:8080/api/v1/auth/confirm-email?token=tok+en"`)
	assert.Contains(t, buf.String(), `"to":"a@b.c"`)
}

func TestSendConfirmationCancelled(t *testing.T) {
	m := NewLogMailer(zerolog.Nop(), "http://x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, m.SendConfirmation(ctx, "a@b.c", "t"), context.Canceled)
}
