package smtp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSmtp(t *testing.T) {
	t.Run(`not configured client skips sending`, func(t *testing.T) {
		client := NewInstance("", "", "", "", true)
		require.False(t, client.IsConfigured())
		require.NoError(t, client.SendEMail("hr@example.com", "New candidate", "body"))
	})

	t.Run(`message headers check`, func(t *testing.T) {
		msg := BuildMessage("robot@example.com", "hr@example.com", "New candidate", "John Doe")
		require.Contains(t, msg, "To: hr@example.com\r\n")
		require.Contains(t, msg, "Subject: Talent Tracker - New candidate\r\n")
		require.Contains(t, msg, "\r\n\r\nJohn Doe\r\n")
	})
}
