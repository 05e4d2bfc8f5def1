package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// WebhookSender envia pela API de webhook própria: POST multipart em {baseURL}/api/webhook/enviar
// com os campos numero, mensagem e metadata (JSON).
type WebhookSender struct {
	baseURL string
	client  *http.Client
}

// NewWebhookSender cria o sender; timeout limita cada envio.
func NewWebhookSender(baseURL string, timeout time.Duration) *WebhookSender {
	return &WebhookSender{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *WebhookSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrEmptyNumber
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("numero", msg.To); err != nil {
		return err
	}
	if err := form.WriteField("mensagem", msg.Text); err != nil {
		return err
	}
	if len(msg.Metadata) > 0 {
		meta, err := json.Marshal(msg.Metadata)
		if err != nil {
			return fmt.Errorf("whatsapp: falha ao serializar metadata: %w", err)
		}
		if err := form.WriteField("metadata", string(meta)); err != nil {
			return err
		}
	}
	if err := form.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/webhook/enviar", &body)
	if err != nil {
		return fmt.Errorf("whatsapp: falha ao montar requisição: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: falha no envio para %s: %w", msg.To, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("whatsapp: webhook respondeu %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
