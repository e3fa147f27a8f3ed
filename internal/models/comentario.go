package models

import (
	"time"
)

// Comentario is a remark attached to exactly one Pedido. It cannot exist
// without its parent and is removed together with it.
type Comentario struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PedidoID       uint      `gorm:"not null;index" json:"pedido_id"`
	Autor          string    `gorm:"size:255;not null" json:"autor"`
	Conteudo       string    `gorm:"type:text;not null" json:"conteudo"`
	DataComentario time.Time `gorm:"not null" json:"data_comentario"`
	UsuarioID      *uint     `json:"usuario_id"`
	Usuario        *User     `gorm:"foreignKey:UsuarioID" json:"-"`
	// UsuarioUsername is not persisted; resolved from Usuario at query time.
	UsuarioUsername string `gorm:"-" json:"usuario"`
}

// ResolveUsuario fills the computed author username from the preloaded association.
func (c *Comentario) ResolveUsuario() {
	if c.Usuario != nil {
		c.UsuarioUsername = c.Usuario.Username
	}
}
