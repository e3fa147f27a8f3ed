package service

import (
	"context"
	"errors"
	"testing"

	"oracao/internal/models"
	"oracao/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	updateFn        func(context.Context, *models.User) error
	listFn          func(context.Context) ([]models.User, error)
	countFn         func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		listFn:          func(_ context.Context) ([]models.User, error) { return nil, nil },
		countFn:         func(_ context.Context) (int64, error) { return 1, nil },
	}
}

// pedidoRepoStub is a stub for repository.PedidoRepository.
type pedidoRepoStub struct {
	listFn         func(context.Context) ([]*models.Pedido, error)
	getByIDFn      func(context.Context, uint) (*models.Pedido, error)
	createFn       func(context.Context, *models.Pedido) error
	updateFn       func(context.Context, *models.Pedido) error
	deleteFn       func(context.Context, uint) error
	searchFn       func(context.Context, string, models.Status) ([]*models.Pedido, error)
	estatisticasFn func(context.Context) (*repository.Estatisticas, error)
}

func (s *pedidoRepoStub) List(ctx context.Context) ([]*models.Pedido, error) {
	return s.listFn(ctx)
}
func (s *pedidoRepoStub) GetByID(ctx context.Context, id uint) (*models.Pedido, error) {
	return s.getByIDFn(ctx, id)
}
func (s *pedidoRepoStub) Create(ctx context.Context, pedido *models.Pedido) error {
	return s.createFn(ctx, pedido)
}
func (s *pedidoRepoStub) Update(ctx context.Context, pedido *models.Pedido) error {
	return s.updateFn(ctx, pedido)
}
func (s *pedidoRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *pedidoRepoStub) Search(ctx context.Context, term string, status models.Status) ([]*models.Pedido, error) {
	return s.searchFn(ctx, term, status)
}
func (s *pedidoRepoStub) Estatisticas(ctx context.Context) (*repository.Estatisticas, error) {
	return s.estatisticasFn(ctx)
}

func noopPedidoRepo() *pedidoRepoStub {
	return &pedidoRepoStub{
		listFn: func(_ context.Context) ([]*models.Pedido, error) { return nil, nil },
		getByIDFn: func(_ context.Context, id uint) (*models.Pedido, error) {
			return &models.Pedido{ID: id}, nil
		},
		createFn: func(_ context.Context, _ *models.Pedido) error { return nil },
		updateFn: func(_ context.Context, _ *models.Pedido) error { return nil },
		deleteFn: func(_ context.Context, _ uint) error { return nil },
		searchFn: func(_ context.Context, _ string, _ models.Status) ([]*models.Pedido, error) {
			return nil, nil
		},
		estatisticasFn: func(_ context.Context) (*repository.Estatisticas, error) {
			return &repository.Estatisticas{}, nil
		},
	}
}

// comentarioRepoStub is a stub for repository.ComentarioRepository.
type comentarioRepoStub struct {
	createFn       func(context.Context, *models.Comentario) error
	listByPedidoFn func(context.Context, uint) ([]*models.Comentario, error)
}

func (s *comentarioRepoStub) Create(ctx context.Context, comentario *models.Comentario) error {
	return s.createFn(ctx, comentario)
}
func (s *comentarioRepoStub) ListByPedido(ctx context.Context, pedidoID uint) ([]*models.Comentario, error) {
	return s.listByPedidoFn(ctx, pedidoID)
}

func noopComentarioRepo() *comentarioRepoStub {
	return &comentarioRepoStub{
		createFn:       func(_ context.Context, _ *models.Comentario) error { return nil },
		listByPedidoFn: func(_ context.Context, _ uint) ([]*models.Comentario, error) { return nil, nil },
	}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// assertAppErrorCode asserts that err is an AppError with the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}
