package repository

import (
	"context"
	"errors"

	"oracao/internal/models"

	"gorm.io/gorm"
)

// ComentarioRepository defines persistence operations for comments.
type ComentarioRepository interface {
	// Create inserts the comment and bumps the parent pedido's last-updated
	// timestamp atomically.
	Create(ctx context.Context, comentario *models.Comentario) error
	ListByPedido(ctx context.Context, pedidoID uint) ([]*models.Comentario, error)
}

type comentarioRepository struct {
	db *gorm.DB
}

// NewComentarioRepository returns a new ComentarioRepository implementation.
func NewComentarioRepository(db *gorm.DB) ComentarioRepository {
	return &comentarioRepository{db: db}
}

func (r *comentarioRepository) Create(ctx context.Context, comentario *models.Comentario) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The parent may have been deleted since the service checked it;
		// verifying inside the transaction keeps orphans out.
		var pedido models.Pedido
		if err := tx.Select("id").First(&pedido, comentario.PedidoID).Error; err != nil {
			return err
		}
		if err := tx.Create(comentario).Error; err != nil {
			return err
		}
		return touchPedido(tx, comentario.PedidoID, comentario.DataComentario)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Pedido", comentario.PedidoID)
		}
		return models.NewInternalError(err)
	}

	// Reload with the author association for the wire shape.
	if err := r.db.WithContext(ctx).Preload("Usuario").First(comentario, comentario.ID).Error; err != nil {
		return models.NewInternalError(err)
	}
	comentario.ResolveUsuario()
	return nil
}

func (r *comentarioRepository) ListByPedido(ctx context.Context, pedidoID uint) ([]*models.Comentario, error) {
	var comentarios []*models.Comentario
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Where("pedido_id = ?", pedidoID).
		Order("data_comentario").
		Find(&comentarios).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Pedido", pedidoID)
		}
		return nil, models.NewInternalError(err)
	}
	for _, c := range comentarios {
		c.ResolveUsuario()
	}
	return comentarios, nil
}
