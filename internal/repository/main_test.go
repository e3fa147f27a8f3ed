package repository

import (
	"testing"

	"oracao/internal/database"
	"oracao/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a fresh in-memory SQLite database with the full schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A second pooled connection would see an empty in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@email.com",
		Password: "hash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPedido(t *testing.T, db *gorm.DB, titulo string, status models.Status, owner *models.User) *models.Pedido {
	t.Helper()
	pedido := &models.Pedido{
		Titulo:          titulo,
		Descricao:       "descricao de " + titulo,
		NomeSolicitante: "Solicitante",
		Status:          status,
		Visibilidade:    models.DefaultVisibilidade,
	}
	if owner != nil {
		pedido.UsuarioCriadorID = &owner.ID
	}
	require.NoError(t, db.Create(pedido).Error)
	return pedido
}
