// Package whatsapp entrega mensagens de texto para um número de WhatsApp por um provedor externo.
package whatsapp

import (
	"context"
	"errors"
	"strings"
)

// Message é uma mensagem pronta para envio.
type Message struct {
	To       string                 // número já normalizado (ver FormatNumber)
	Text     string
	Metadata map[string]interface{} // repassado ao provedor quando ele suportar
}

// Sender é o colaborador externo de entrega.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// ErrEmptyNumber é retornado quando o destino não tem nenhum dígito.
var ErrEmptyNumber = errors.New("whatsapp: número de destino vazio")

// countryPrefix é o DDI do Brasil.
const countryPrefix = "55"

// FormatNumber mantém apenas os dígitos e garante o prefixo internacional 55.
func FormatNumber(phone string) string {
	n := digits(phone)
	if n == "" {
		return ""
	}
	if !strings.HasPrefix(n, countryPrefix) {
		n = countryPrefix + n
	}
	return n
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
