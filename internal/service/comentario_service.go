package service

import (
	"context"
	"time"

	"oracao/internal/models"
	"oracao/internal/repository"
)

// ComentarioService owns the rules around comment threads on pedidos.
type ComentarioService struct {
	comentarioRepo repository.ComentarioRepository
	pedidoRepo     repository.PedidoRepository
	now            func() time.Time
}

type AddComentarioInput struct {
	PedidoID uint
	Conteudo string
	// Autor is the display name of the authenticated author.
	Autor     string
	UsuarioID uint
}

func NewComentarioService(comentarioRepo repository.ComentarioRepository, pedidoRepo repository.PedidoRepository) *ComentarioService {
	return &ComentarioService{
		comentarioRepo: comentarioRepo,
		pedidoRepo:     pedidoRepo,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test hook.
func (s *ComentarioService) WithClock(now func() time.Time) *ComentarioService {
	s.now = now
	return s
}

// Add appends a comment to an existing pedido. The parent's last-updated
// timestamp moves together with the insert.
func (s *ComentarioService) Add(ctx context.Context, in AddComentarioInput) (*models.Comentario, error) {
	if in.Conteudo == "" {
		return nil, models.NewValidationError("Conteudo is required")
	}

	// The parent must exist before we try to attach anything to it.
	if _, err := s.pedidoRepo.GetByID(ctx, in.PedidoID); err != nil {
		return nil, err
	}

	usuarioID := in.UsuarioID
	comentario := &models.Comentario{
		PedidoID:       in.PedidoID,
		Conteudo:       in.Conteudo,
		Autor:          in.Autor,
		DataComentario: s.now(),
		UsuarioID:      &usuarioID,
	}
	if err := s.comentarioRepo.Create(ctx, comentario); err != nil {
		return nil, err
	}
	return comentario, nil
}

// List returns the comment thread of a pedido, oldest first.
func (s *ComentarioService) List(ctx context.Context, pedidoID uint) ([]*models.Comentario, error) {
	if _, err := s.pedidoRepo.GetByID(ctx, pedidoID); err != nil {
		return nil, err
	}
	return s.comentarioRepo.ListByPedido(ctx, pedidoID)
}
