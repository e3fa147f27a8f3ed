package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"oracao/internal/models"

	"gorm.io/gorm"
)

// Estatisticas holds per-status counts plus the total.
type Estatisticas struct {
	Total       int64 `json:"total"`
	Pendentes   int64 `json:"pendentes"`
	EmOracao    int64 `json:"em_oracao"`
	Respondidos int64 `json:"respondidos"`
	Arquivados  int64 `json:"arquivados"`
}

// PedidoRepository defines persistence operations for prayer requests.
type PedidoRepository interface {
	List(ctx context.Context) ([]*models.Pedido, error)
	GetByID(ctx context.Context, id uint) (*models.Pedido, error)
	Create(ctx context.Context, pedido *models.Pedido) error
	Update(ctx context.Context, pedido *models.Pedido) error
	Delete(ctx context.Context, id uint) error
	Search(ctx context.Context, term string, status models.Status) ([]*models.Pedido, error)
	Estatisticas(ctx context.Context) (*Estatisticas, error)
}

type pedidoRepository struct {
	db *gorm.DB
}

// NewPedidoRepository returns a new PedidoRepository implementation.
func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepository{db: db}
}

// withAssociations preloads the comment thread and creator references needed
// by the wire representation.
func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Comentarios", func(db *gorm.DB) *gorm.DB {
			return db.Order("data_comentario").Preload("Usuario")
		}).
		Preload("UsuarioCriador")
}

func resolveAll(pedidos []*models.Pedido) {
	for _, p := range pedidos {
		p.ResolveCriador()
	}
}

func (r *pedidoRepository) List(ctx context.Context) ([]*models.Pedido, error) {
	var pedidos []*models.Pedido
	if err := withAssociations(r.db.WithContext(ctx)).
		Order("data_submissao desc").
		Find(&pedidos).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	resolveAll(pedidos)
	return pedidos, nil
}

func (r *pedidoRepository) GetByID(ctx context.Context, id uint) (*models.Pedido, error) {
	var pedido models.Pedido
	if err := withAssociations(r.db.WithContext(ctx)).First(&pedido, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Pedido", id)
		}
		return nil, models.NewInternalError(err)
	}
	pedido.ResolveCriador()
	return &pedido, nil
}

func (r *pedidoRepository) Create(ctx context.Context, pedido *models.Pedido) error {
	if err := r.db.WithContext(ctx).Create(pedido).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *pedidoRepository) Update(ctx context.Context, pedido *models.Pedido) error {
	if err := r.db.WithContext(ctx).Omit("Comentarios", "UsuarioCriador").Save(pedido).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes a pedido and its comments in one transaction.
func (r *pedidoRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pedido_id = ?", id).Delete(&models.Comentario{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Pedido{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("Pedido", id)
		}
		return nil
	})
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *pedidoRepository) Search(ctx context.Context, term string, status models.Status) ([]*models.Pedido, error) {
	query := withAssociations(r.db.WithContext(ctx))

	if term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		query = query.Where(
			"LOWER(titulo) LIKE ? OR LOWER(descricao) LIKE ? OR LOWER(nome_solicitante) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var pedidos []*models.Pedido
	if err := query.Order("data_submissao desc").Find(&pedidos).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	resolveAll(pedidos)
	return pedidos, nil
}

func (r *pedidoRepository) Estatisticas(ctx context.Context) (*Estatisticas, error) {
	type row struct {
		Status models.Status
		Count  int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Pedido{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	stats := &Estatisticas{}
	for _, rw := range rows {
		stats.Total += rw.Count
		switch rw.Status {
		case models.StatusPendente:
			stats.Pendentes = rw.Count
		case models.StatusEmOracao:
			stats.EmOracao = rw.Count
		case models.StatusRespondido:
			stats.Respondidos = rw.Count
		case models.StatusArquivado:
			stats.Arquivados = rw.Count
		}
	}
	return stats, nil
}

// touchPedido bumps the last-updated timestamp inside an existing transaction.
func touchPedido(tx *gorm.DB, pedidoID uint, now time.Time) error {
	return tx.Model(&models.Pedido{}).
		Where("id = ?", pedidoID).
		Update("data_ultima_atualizacao", now).Error
}
