package notificationservice

import (
	"strings"
	"text/template"
	"time"

	"github.com/shopspring/decimal"

	"barbearia/internal/domain"
)

// Nomes dos modelos de mensagem.
const (
	tmplAppointmentClient = "agendamento_cliente"
	tmplAppointmentBarber = "agendamento_barbeiro"
	tmplWelcomeClient     = "boas_vindas_cliente"
	tmplWelcomeBarber     = "boas_vindas_barbeiro"
	tmplNewBarberAdmin    = "novo_barbeiro_admin"
	tmplRecoveryCode      = "recuperacao_senha"
	tmplDailyReminder     = "lembrete_dia"
	tmplUpcomingReminder  = "lembrete_30min"
)

var funcs = template.FuncMap{
	// data converte "2006-01-02" para "02/01/2006".
	"data": func(s string) string {
		t, err := time.Parse(domain.DateLayout, s)
		if err != nil {
			return s
		}
		return t.Format("02/01/2006")
	},
	"reais": func(d decimal.Decimal) string {
		return strings.Replace(d.StringFixed(2), ".", ",", 1)
	},
	"pct": func(d *decimal.Decimal) string {
		if d == nil {
			return "0"
		}
		return d.String()
	},
	"ouPadrao": func(s, padrao string) string {
		if strings.TrimSpace(s) == "" {
			return padrao
		}
		return s
	},
}

var templates = template.Must(template.New("mensagens").Funcs(funcs).Parse(`
{{define "agendamento_cliente"}}✅ *Agendamento Confirmado!*

Olá, {{.ClientName}}!

Seu agendamento foi realizado com sucesso:

📅 *Data:* {{data .Date}}
⏰ *Horário:* {{.StartTime}}
✂️ *Serviço:* {{.ServiceName}}
👤 *Barbeiro:* {{.BarberName}}
📍 *Local:* {{.UnitName}}
💰 *Valor:* R$ {{reais .ServicePrice}}

Aguardamos você! 💈{{end}}

{{define "agendamento_barbeiro"}}📋 *Novo Agendamento*

Olá, {{.BarberName}}!

Você tem um novo agendamento:

👤 *Cliente:* {{.ClientName}}
📅 *Data:* {{data .Date}}
⏰ *Horário:* {{.StartTime}}
✂️ *Serviço:* {{.ServiceName}}
📍 *Local:* {{.UnitName}}

Prepare-se! 💈{{end}}

{{define "boas_vindas_cliente"}}🎉 *Bem-vindo à Barbearia!*

Olá, {{.Name}}!

Sua conta foi criada com sucesso!

Agora você pode:
✅ Agendar seus cortes
✅ Escolher seu barbeiro favorito
✅ Acompanhar seu histórico

Estamos prontos para te atender! 💈{{end}}

{{define "boas_vindas_barbeiro"}}🎉 *Bem-vindo à Equipe!*

Olá, {{.Account.Name}}!

Sua conta de barbeiro foi criada com sucesso!

📍 *Unidade:* {{ouPadrao .UnitName "A definir"}}
💰 *Comissão:* {{pct .Account.CommissionPercent}}%

Você já pode começar a receber agendamentos!

Sucesso! 💈✂️{{end}}

{{define "novo_barbeiro_admin"}}👤 *Novo Barbeiro Cadastrado*

*Nome:* {{.Account.Name}}
*CPF:* {{.FormattedCPF}}
*Telefone:* {{ouPadrao .Account.Phone "Não informado"}}
*Unidade:* {{ouPadrao .UnitName "Não definida"}}
*Comissão:* {{pct .Account.CommissionPercent}}%{{end}}

{{define "recuperacao_senha"}}🔐 *Recuperação de Senha - Barbearia*

Olá, {{.Name}}!

Seu código de recuperação de senha é: *{{.Code}}*

⏰ Este código é válido por {{.Minutes}} minutos.

🔒 Se você não solicitou esta recuperação, ignore esta mensagem.{{end}}

{{define "lembrete_dia"}}🔔 *Lembrete de Agendamento*

Olá, {{.ClientName}}!

Você tem um agendamento HOJE:

⏰ *Horário:* {{.StartTime}}
✂️ *Serviço:* {{.ServiceName}}
👤 *Barbeiro:* {{.BarberName}}
📍 *Local:* {{.UnitName}}
{{if .UnitAddress}}📌 {{.UnitAddress}}
{{end}}
Não esqueça! Te esperamos! 💈{{end}}

{{define "lembrete_30min"}}⚠️ *ATENÇÃO - Agendamento em 30 minutos!*

{{.ClientName}}, seu horário está chegando:

⏰ *Horário:* {{.StartTime}}
✂️ *Serviço:* {{.ServiceName}}
👤 *Barbeiro:* {{.BarberName}}
📍 *Local:* {{.UnitName}}
{{if .UnitAddress}}📌 {{.UnitAddress}}
{{end}}
⏱️ Estamos te esperando! Não se atrase! 💈{{end}}
`))

func render(name string, data interface{}) (string, error) {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// barberData alimenta as mensagens de cadastro de barbeiro.
type barberData struct {
	Account      domain.Account
	UnitName     string
	FormattedCPF string
}

type recoveryData struct {
	Name    string
	Code    string
	Minutes int
}
