package domain

// Session é a identidade autenticada extraída de um token válido.
type Session struct {
	AccountID string      `json:"id"`
	CPF       string      `json:"cpf"`
	Kind      AccountKind `json:"tipo_conta"`
	Role      StaffRole   `json:"tipo,omitempty"`
	UnitID    string      `json:"unidade_id,omitempty"`
}

// HasRole verifica se a sessão é de equipe e possui um dos papéis informados.
// Barbeiros e clientes nunca passam quando uma lista de papéis é exigida.
func (s Session) HasRole(roles ...StaffRole) bool {
	if s.Kind != KindStaff {
		return false
	}
	for _, r := range roles {
		if s.Role == r {
			return true
		}
	}
	return false
}

// IsManagement é o atalho para admin ou gerente, o par de papéis mais usado nas rotas.
func (s Session) IsManagement() bool {
	return s.HasRole(RoleAdmin, RoleManager)
}

// NewSession monta a sessão de uma conta autenticada. Papel só para equipe, unidade para equipe e barbeiros.
func NewSession(acc Account) Session {
	s := Session{AccountID: acc.ID, CPF: acc.CPF, Kind: acc.Kind}
	if acc.Kind == KindStaff {
		s.Role = acc.Role
	}
	if acc.Kind != KindClient && acc.UnitID != nil {
		s.UnitID = *acc.UnitID
	}
	return s
}
