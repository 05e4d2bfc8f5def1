package whatsapp

import (
	"context"
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// messageCreator é o pedaço da API do Twilio que usamos; permite trocar o cliente nos testes.
type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioSender envia pelo Twilio Messages API usando endereços "whatsapp:+<número>".
type TwilioSender struct {
	api     messageCreator
	from    string
	timeout time.Duration
}

// NewTwilioSender cria o sender a partir das credenciais da conta.
func NewTwilioSender(accountSID, authToken, fromNumber string, timeout time.Duration) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioSender{
		api:     client.Api,
		from:    whatsappAddress(fromNumber),
		timeout: timeout,
	}
}

// whatsappAddress espera o número com DDI (o remetente do Twilio pode não ser brasileiro).
func whatsappAddress(number string) string {
	return "whatsapp:+" + digits(number)
}

// Send dispara a chamada ao Twilio. O SDK não aceita context, então a espera é limitada
// pelo ctx e pelo timeout configurado; o resultado tardio é descartado.
func (s *TwilioSender) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return ErrEmptyNumber
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsappAddress(msg.To))
	params.SetFrom(s.from)
	params.SetBody(msg.Text)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		resp, err := s.api.CreateMessage(params)
		if err == nil && resp != nil && resp.ErrorCode != nil {
			err = fmt.Errorf("twilio error code %d", *resp.ErrorCode)
		}
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("whatsapp: falha no envio via Twilio para %s: %w", msg.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("whatsapp: envio via Twilio para %s interrompido: %w", msg.To, ctx.Err())
	}
}
