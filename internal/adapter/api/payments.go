package api

import (
	"context"
	"net/http"
)

func (c *Client) InitializePayment(ctx context.Context, amount float64, email, name, phone string) (string, error) {
	body := map[string]any{
		"amount":       amount,
		"billingEmail": email,
		"billingName":  name,
		"billingPhone": phone,
	}
	var data struct {
		Reference string `json:"reference"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/payments/initialize", nil, body, &data); err != nil {
		return "", err
	}
	return data.Reference, nil
}

// VerifyPayment reports whether the backend confirmed the provider
// reference. The envelope's status is enforced by doJSON, so anything
// other than a "success" verification comes back as an error and the
// draft stays resumable.
func (c *Client) VerifyPayment(ctx context.Context, reference, draftID string) (bool, error) {
	body := map[string]string{
		"reference": reference,
		"draftId":   draftID,
	}
	if err := c.doJSON(ctx, http.MethodPost, "/payments/verify", nil, body, nil); err != nil {
		return false, err
	}
	return true, nil
}
