package notify

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeClient struct {
	calls    int
	lastURL  string
	lastBody any
	status   int
	err      error
}

func (f *fakeClient) Do(req *http.Request) (*http.Response, error) {
	return nil, nil
}

func (f *fakeClient) PostJSON(ctx context.Context, url string, payload any) (int, []byte, error) {
	f.calls++
	f.lastURL = url
	f.lastBody = payload
	return f.status, nil, f.err
}

func TestApplicationCreated(t *testing.T) {
	t.Run("Sends a chat message", func(t *testing.T) {
		client := &fakeClient{status: http.StatusOK}
		n := NewTelegramNotifier(client, "bot-token", "-100500")

		n.ApplicationCreated(context.Background(), ApplicationCreated{
			ApplicationID:     3,
			ApplicationNumber: 12,
			UserName:          "ivan",
			CompanyName:       "Romashka",
			CompanyINN:        "7707083893",
			ChecksCount:       2,
		})

		assert.Equal(t, 1, client.calls)
		assert.Equal(t, "https://api.telegram.org/botbot-token/sendMessage", client.lastURL)

		req, ok := client.lastBody.(sendMessageRequest)
		assert.True(t, ok)
		assert.Equal(t, "-100500", req.ChatID)
		assert.Contains(t, req.Text, "New application #12")
		assert.Contains(t, req.Text, "Romashka")
		assert.Contains(t, req.Text, "7707083893")
	})

	t.Run("Silent without configuration", func(t *testing.T) {
		client := &fakeClient{status: http.StatusOK}
		n := NewTelegramNotifier(client, "", "")

		n.ApplicationCreated(context.Background(), ApplicationCreated{ApplicationNumber: 12})

		assert.Equal(t, 0, client.calls)
	})

	t.Run("Delivery failure is swallowed", func(t *testing.T) {
		client := &fakeClient{err: assert.AnError}
		n := NewTelegramNotifier(client, "bot-token", "-100500")

		n.ApplicationCreated(context.Background(), ApplicationCreated{ApplicationNumber: 12})

		assert.Equal(t, 1, client.calls)
	})
}
