package models

import "fmt"

// Status is the lifecycle state of a Pedido. The values are the wire strings
// consumed by the frontend, so they stay in Portuguese.
type Status string

const (
	StatusPendente   Status = "Pendente"
	StatusEmOracao   Status = "Em Oração"
	StatusRespondido Status = "Respondido"
	StatusArquivado  Status = "Arquivado"
)

// AllStatuses returns the closed set of valid statuses.
func AllStatuses() []Status {
	return []Status{StatusPendente, StatusEmOracao, StatusRespondido, StatusArquivado}
}

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPendente, StatusEmOracao, StatusRespondido, StatusArquivado:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a raw string into a Status, rejecting unknown values.
// Any transition between valid statuses is allowed; gating is by actor role,
// not by current state.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q", raw)
	}
	return s, nil
}
