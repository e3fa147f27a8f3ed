package models

import (
	"time"
)

// DefaultVisibilidade is the visibility tag applied when a pedido is created
// without an explicit one.
const DefaultVisibilidade = "Todos"

// Pedido is a prayer request submitted to the board. The creator reference is
// nullable: seeded or system-created pedidos have no owning user.
type Pedido struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	Titulo                string    `gorm:"size:255;not null" json:"titulo"`
	Descricao             string    `gorm:"type:text;not null" json:"descricao"`
	NomeSolicitante       string    `gorm:"size:255;not null" json:"nome_solicitante"`
	CelularSolicitante    string    `gorm:"size:20" json:"celular_solicitante"`
	EmailSolicitante      string    `gorm:"size:255" json:"email_solicitante"`
	Status                Status    `gorm:"size:50;not null;default:Pendente" json:"status"`
	DataSubmissao         time.Time `gorm:"not null" json:"data_submissao"`
	DataUltimaAtualizacao time.Time `gorm:"not null" json:"data_ultima_atualizacao"`
	Visibilidade          string    `gorm:"size:50;not null;default:Todos" json:"visibilidade"`
	UsuarioCriadorID      *uint     `json:"usuario_criador_id"`
	UsuarioCriador        *User     `gorm:"foreignKey:UsuarioCriadorID" json:"-"`
	// CriadorUsername is not persisted; resolved from UsuarioCriador at query time.
	CriadorUsername string       `gorm:"-" json:"usuario_criador"`
	Comentarios     []Comentario `gorm:"foreignKey:PedidoID;constraint:OnDelete:CASCADE" json:"comentarios"`
}

// ResolveCriador fills the computed creator username from the preloaded
// association, on the pedido and on each embedded comment.
func (p *Pedido) ResolveCriador() {
	if p.UsuarioCriador != nil {
		p.CriadorUsername = p.UsuarioCriador.Username
	}
	for i := range p.Comentarios {
		p.Comentarios[i].ResolveUsuario()
	}
}
