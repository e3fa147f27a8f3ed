package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range AllStatuses() {
		parsed, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("Cancelado")
	assert.Error(t, err)

	// Values are case-sensitive wire strings.
	_, err = ParseStatus("pendente")
	assert.Error(t, err)

	_, err = ParseStatus("")
	assert.Error(t, err)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, HTTPStatus(NewValidationError("bad")))
	assert.Equal(t, 400, HTTPStatus(NewConflictError("dup")))
	assert.Equal(t, 401, HTTPStatus(NewUnauthorizedError("no")))
	assert.Equal(t, 403, HTTPStatus(NewForbiddenError("no")))
	assert.Equal(t, 404, HTTPStatus(NewNotFoundError("Pedido", 1)))
	assert.Equal(t, 500, HTTPStatus(assert.AnError))
}

func TestUserDisplayName(t *testing.T) {
	u := &User{Username: "maria", NomeCompleto: "Maria Silva"}
	assert.Equal(t, "Maria Silva", u.DisplayName())

	u.NomeCompleto = ""
	assert.Equal(t, "maria", u.DisplayName())
}

func TestPedidoResolveCriador(t *testing.T) {
	p := &Pedido{
		UsuarioCriador: &User{Username: "admin"},
		Comentarios: []Comentario{
			{Usuario: &User{Username: "carlos"}},
			{},
		},
	}
	p.ResolveCriador()

	assert.Equal(t, "admin", p.CriadorUsername)
	assert.Equal(t, "carlos", p.Comentarios[0].UsuarioUsername)
	assert.Empty(t, p.Comentarios[1].UsuarioUsername)
}
