package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5511987654321", FormatNumber("(11) 98765-4321"))
	assert.Equal(t, "5511987654321", FormatNumber("+55 11 98765-4321"))
	assert.Equal(t, "", FormatNumber("sem telefone"))
}

func TestWebhookSender_PostsMultipartForm(t *testing.T) {
	var got struct {
		path, numero, mensagem string
		metadata               map[string]interface{}
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		got.path = r.URL.Path
		got.numero = r.FormValue("numero")
		got.mensagem = r.FormValue("mensagem")
		_ = json.Unmarshal([]byte(r.FormValue("metadata")), &got.metadata)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewWebhookSender(srv.URL+"/", 5*time.Second)
	err := s.Send(context.Background(), Message{
		To:       "5511987654321",
		Text:     "Olá!",
		Metadata: map[string]interface{}{"tipo": "teste"},
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/webhook/enviar", got.path)
	assert.Equal(t, "5511987654321", got.numero)
	assert.Equal(t, "Olá!", got.mensagem)
	assert.Equal(t, "teste", got.metadata["tipo"])
}

func TestWebhookSender_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "instância desconectada", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookSender(srv.URL, time.Second).Send(context.Background(), Message{To: "5511", Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestWebhookSender_TimesOut(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	start := time.Now()
	err := NewWebhookSender(srv.URL, 50*time.Millisecond).Send(context.Background(), Message{To: "5511", Text: "x"})
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestWebhookSender_EmptyNumber(t *testing.T) {
	err := NewWebhookSender("http://localhost", time.Second).Send(context.Background(), Message{Text: "x"})
	assert.ErrorIs(t, err, ErrEmptyNumber)
}

type fakeCreator struct {
	params *twilioApi.CreateMessageParams
	err    error
	delay  time.Duration
}

func (f *fakeCreator) CreateMessage(p *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.params = p
	time.Sleep(f.delay)
	return &twilioApi.ApiV2010Message{}, f.err
}

func TestTwilioSender_UsesWhatsAppAddresses(t *testing.T) {
	fake := &fakeCreator{}
	s := &TwilioSender{api: fake, from: whatsappAddress("14155238886"), timeout: time.Second}

	require.NoError(t, s.Send(context.Background(), Message{To: "5511987654321", Text: "Lembrete"}))
	assert.Equal(t, "whatsapp:+5511987654321", *fake.params.To)
	assert.Equal(t, "whatsapp:+14155238886", *fake.params.From)
	assert.Equal(t, "Lembrete", *fake.params.Body)
}

func TestTwilioSender_PropagatesError(t *testing.T) {
	s := &TwilioSender{api: &fakeCreator{err: errors.New("auth failed")}, timeout: time.Second}
	err := s.Send(context.Background(), Message{To: "5511", Text: "x"})
	assert.ErrorContains(t, err, "auth failed")
}

func TestTwilioSender_RespectsTimeout(t *testing.T) {
	s := &TwilioSender{api: &fakeCreator{delay: 200 * time.Millisecond}, timeout: 20 * time.Millisecond}
	err := s.Send(context.Background(), Message{To: "5511", Text: "x"})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
