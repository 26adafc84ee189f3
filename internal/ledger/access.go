package ledger

import "stableswap/internal/domain"

// Gate admits only the admin identity fixed at construction.
type Gate struct {
	admin domain.Identity
}

func NewGate(admin domain.Identity) Gate {
	return Gate{admin: admin}
}

func (g Gate) Admin() domain.Identity {
	return g.admin
}

func (g Gate) RequireAdmin(caller domain.Identity) error {
	if caller != g.admin {
		return domain.ErrUnauthorized
	}
	return nil
}
