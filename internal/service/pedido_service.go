package service

import (
	"context"
	"time"

	"oracao/internal/authz"
	"oracao/internal/models"
	"oracao/internal/repository"
)

// PedidoService owns the business rules around prayer requests: who may
// change what, which status values exist, and when timestamps move.
type PedidoService struct {
	pedidoRepo repository.PedidoRepository
	now        func() time.Time
}

type CreatePedidoInput struct {
	Titulo             string
	Descricao          string
	NomeSolicitante    string
	CelularSolicitante string
	EmailSolicitante   string
	Status             string
	Visibilidade       string
}

// UpdatePedidoInput carries a partial update. Nil pointers mean "leave as is".
type UpdatePedidoInput struct {
	Titulo             *string
	Descricao          *string
	NomeSolicitante    *string
	CelularSolicitante *string
	EmailSolicitante   *string
	Status             *string
	Visibilidade       *string
}

func NewPedidoService(pedidoRepo repository.PedidoRepository) *PedidoService {
	return &PedidoService{
		pedidoRepo: pedidoRepo,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the time source. Test hook.
func (s *PedidoService) WithClock(now func() time.Time) *PedidoService {
	s.now = now
	return s
}

func (s *PedidoService) List(ctx context.Context) ([]*models.Pedido, error) {
	return s.pedidoRepo.List(ctx)
}

func (s *PedidoService) Get(ctx context.Context, id uint) (*models.Pedido, error) {
	return s.pedidoRepo.GetByID(ctx, id)
}

// Create validates the required fields and persists a new pedido owned by the
// actor. Status and visibility are optional; an unknown status is rejected.
func (s *PedidoService) Create(ctx context.Context, actor authz.Actor, in CreatePedidoInput) (*models.Pedido, error) {
	if in.Titulo == "" || in.Descricao == "" || in.NomeSolicitante == "" {
		return nil, models.NewValidationError("Titulo, descricao and nome_solicitante are required")
	}

	status := models.StatusPendente
	if in.Status != "" {
		parsed, err := models.ParseStatus(in.Status)
		if err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		status = parsed
	}

	visibilidade := in.Visibilidade
	if visibilidade == "" {
		visibilidade = models.DefaultVisibilidade
	}

	now := s.now()
	creatorID := actor.ID
	pedido := &models.Pedido{
		Titulo:                in.Titulo,
		Descricao:             in.Descricao,
		NomeSolicitante:       in.NomeSolicitante,
		CelularSolicitante:    in.CelularSolicitante,
		EmailSolicitante:      in.EmailSolicitante,
		Status:                status,
		Visibilidade:          visibilidade,
		DataSubmissao:         now,
		DataUltimaAtualizacao: now,
		UsuarioCriadorID:      &creatorID,
	}
	if err := s.pedidoRepo.Create(ctx, pedido); err != nil {
		return nil, err
	}
	return s.pedidoRepo.GetByID(ctx, pedido.ID)
}

// Update applies a partial update. Only the owner or an admin may touch a
// pedido; status and visibility changes from non-admins are silently dropped
// rather than rejected, so shared edit forms keep working.
func (s *PedidoService) Update(ctx context.Context, actor authz.Actor, id uint, in UpdatePedidoInput) (*models.Pedido, error) {
	pedido, err := s.pedidoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanModifyPedido(actor, pedido) {
		return nil, models.NewForbiddenError("You do not have permission to edit this pedido")
	}

	if in.Titulo != nil {
		pedido.Titulo = *in.Titulo
	}
	if in.Descricao != nil {
		pedido.Descricao = *in.Descricao
	}
	if in.NomeSolicitante != nil {
		pedido.NomeSolicitante = *in.NomeSolicitante
	}
	if in.CelularSolicitante != nil {
		pedido.CelularSolicitante = *in.CelularSolicitante
	}
	if in.EmailSolicitante != nil {
		pedido.EmailSolicitante = *in.EmailSolicitante
	}

	if authz.CanSetStatusOrVisibility(actor) {
		if in.Status != nil {
			parsed, err := models.ParseStatus(*in.Status)
			if err != nil {
				return nil, models.NewValidationError(err.Error())
			}
			pedido.Status = parsed
		}
		if in.Visibilidade != nil {
			pedido.Visibilidade = *in.Visibilidade
		}
	}

	pedido.DataUltimaAtualizacao = s.now()
	if err := s.pedidoRepo.Update(ctx, pedido); err != nil {
		return nil, err
	}
	return s.pedidoRepo.GetByID(ctx, pedido.ID)
}

// Delete removes a pedido and its comment thread. Owner or admin only.
func (s *PedidoService) Delete(ctx context.Context, actor authz.Actor, id uint) error {
	pedido, err := s.pedidoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanDeletePedido(actor, pedido) {
		return models.NewForbiddenError("You do not have permission to delete this pedido")
	}
	return s.pedidoRepo.Delete(ctx, id)
}

// SetStatus moves a pedido to the given status. Admin only.
func (s *PedidoService) SetStatus(ctx context.Context, actor authz.Actor, id uint, raw string) (*models.Pedido, error) {
	if !authz.CanSetStatusOrVisibility(actor) {
		return nil, models.NewForbiddenError("Admin access required")
	}

	status, err := models.ParseStatus(raw)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	pedido, err := s.pedidoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pedido.Status = status
	pedido.DataUltimaAtualizacao = s.now()
	if err := s.pedidoRepo.Update(ctx, pedido); err != nil {
		return nil, err
	}
	return s.pedidoRepo.GetByID(ctx, pedido.ID)
}

// Search filters pedidos by a case-insensitive term over title, description
// and requester name, optionally narrowed to one status. An empty or "todos"
// status means no status filter.
func (s *PedidoService) Search(ctx context.Context, term, status string) ([]*models.Pedido, error) {
	if status == "todos" {
		status = ""
	}
	return s.pedidoRepo.Search(ctx, term, models.Status(status))
}

func (s *PedidoService) Estatisticas(ctx context.Context) (*repository.Estatisticas, error) {
	return s.pedidoRepo.Estatisticas(ctx)
}
