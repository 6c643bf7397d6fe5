package channels

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

// webhookTimeout giới hạn thời gian cho một lần gọi webhook.
const webhookTimeout = 10 * time.Second

// SendWebhook POST payload JSON tới webhookURL bằng fasthttp client.
// Status ngoài 2xx được coi là lỗi.
func SendWebhook(ctx context.Context, webhookURL string, payload map[string]interface{}) error {
	if webhookURL == "" {
		return fmt.Errorf("webhook URL trống")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(webhookURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(body)

	if err := fasthttp.DoTimeout(req, resp, webhookTimeout); err != nil {
		return err
	}

	status := resp.StatusCode()
	if status < 200 || status >= 300 {
		return fmt.Errorf("webhook returned status %d", status)
	}
	return nil
}
