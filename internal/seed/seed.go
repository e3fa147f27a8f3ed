// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"time"

	"oracao/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPedidos  int
	ShouldClean bool
}

// DefaultAdminPassword is the password of the bootstrap admin account.
// Development only; production deployments must register their own admin.
const DefaultAdminPassword = "admin123"

// EnsureDefaultAdmin creates the bootstrap admin account when the user table
// is empty. Returns the admin user, freshly created or already present.
func EnsureDefaultAdmin(db *gorm.DB) (*models.User, error) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	if count > 0 {
		var admin models.User
		if err := db.Where("username = ?", "admin").First(&admin).Error; err != nil {
			return nil, nil
		}
		return &admin, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &models.User{
		Username:     "admin",
		Email:        "admin@sistema.com",
		Password:     string(hashed),
		NomeCompleto: "Administrador do Sistema",
		IsAdmin:      true,
	}
	if err := db.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	log.Printf("Default admin user created: admin / %s", DefaultAdminPassword)
	return admin, nil
}

// EnsureExamplePedidos creates a small set of example pedidos and comments
// when the pedido table is empty, so a fresh install has something to show.
func EnsureExamplePedidos(db *gorm.DB, admin *models.User) error {
	var count int64
	if err := db.Model(&models.Pedido{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count pedidos: %w", err)
	}
	if count > 0 {
		return nil
	}

	var criadorID *uint
	var usuarioID *uint
	if admin != nil {
		criadorID = &admin.ID
		usuarioID = &admin.ID
	}

	pedido1 := &models.Pedido{
		Titulo:                "Saúde da família",
		Descricao:             "Pedindo oração pela recuperação da minha mãe que está internada no hospital.",
		NomeSolicitante:       "Maria Silva",
		CelularSolicitante:    "(11) 99999-9999",
		EmailSolicitante:      "maria@email.com",
		Status:                models.StatusEmOracao,
		Visibilidade:          models.DefaultVisibilidade,
		DataSubmissao:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		DataUltimaAtualizacao: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		UsuarioCriadorID:      criadorID,
	}
	pedido2 := &models.Pedido{
		Titulo:                "Emprego",
		Descricao:             "Preciso de oração para conseguir um novo emprego. Estou desempregado há 3 meses.",
		NomeSolicitante:       "Carlos Santos",
		CelularSolicitante:    "(11) 88888-8888",
		EmailSolicitante:      "carlos@email.com",
		Status:                models.StatusRespondido,
		Visibilidade:          models.DefaultVisibilidade,
		DataSubmissao:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		DataUltimaAtualizacao: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		UsuarioCriadorID:      criadorID,
	}
	if err := db.Create(pedido1).Error; err != nil {
		return err
	}
	if err := db.Create(pedido2).Error; err != nil {
		return err
	}

	comentarios := []*models.Comentario{
		{
			PedidoID:       pedido1.ID,
			Autor:          "Pastor João",
			Conteudo:       "Estamos orando pela sua mãe. Deus é fiel!",
			DataComentario: time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			UsuarioID:      usuarioID,
		},
		{
			PedidoID:       pedido2.ID,
			Autor:          "Carlos Santos",
			Conteudo:       "Glória a Deus! Consegui um emprego ontem. Obrigado pelas orações!",
			DataComentario: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
			UsuarioID:      usuarioID,
		},
	}
	for _, c := range comentarios {
		if err := db.Create(c).Error; err != nil {
			return err
		}
	}

	log.Printf("Example pedidos created")
	return nil
}

// Seed populates the database with randomly generated test data.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding database with %d users and %d pedidos...", opts.NumUsers, opts.NumPedidos)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	admin, err := EnsureDefaultAdmin(db)
	if err != nil {
		return fmt.Errorf("failed to ensure admin: %w", err)
	}
	if err := EnsureExamplePedidos(db, admin); err != nil {
		return fmt.Errorf("failed to create example pedidos: %w", err)
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	pedidos, err := createPedidos(db, users, opts.NumPedidos)
	if err != nil {
		return fmt.Errorf("failed to create pedidos: %w", err)
	}
	log.Printf("%d pedidos created", len(pedidos))

	if err := createComentarios(db, users, pedidos); err != nil {
		return fmt.Errorf("failed to create comentarios: %w", err)
	}

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"comentarios", "pedidos", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

// TestPassword is the shared password of all generated seed users.
const TestPassword = "password123"

func createUsers(db *gorm.DB, n int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		user := &models.User{
			Username:     fmt.Sprintf("%s_%s%d", first, last, gofakeit.Number(1, 9999)),
			Email:        gofakeit.Email(),
			Password:     string(hashed),
			NomeCompleto: first + " " + last,
		}
		if err := db.Create(user).Error; err != nil {
			// Unique collisions from the generator are skipped, not fatal.
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func createPedidos(db *gorm.DB, users []*models.User, n int) ([]*models.Pedido, error) {
	if len(users) == 0 {
		return nil, nil
	}

	statuses := models.AllStatuses()
	pedidos := make([]*models.Pedido, 0, n)
	for i := 0; i < n; i++ {
		owner := users[gofakeit.Number(0, len(users)-1)]
		ownerID := owner.ID
		submitted := gofakeit.DateRange(
			time.Now().AddDate(0, -6, 0),
			time.Now(),
		).UTC()

		pedido := &models.Pedido{
			Titulo:                gofakeit.Sentence(3),
			Descricao:             gofakeit.Paragraph(1, 3, 10, " "),
			NomeSolicitante:       owner.NomeCompleto,
			CelularSolicitante:    gofakeit.Phone(),
			EmailSolicitante:      gofakeit.Email(),
			Status:                statuses[gofakeit.Number(0, len(statuses)-1)],
			Visibilidade:          models.DefaultVisibilidade,
			DataSubmissao:         submitted,
			DataUltimaAtualizacao: submitted,
			UsuarioCriadorID:      &ownerID,
		}
		if err := db.Create(pedido).Error; err != nil {
			return nil, err
		}
		pedidos = append(pedidos, pedido)
	}
	return pedidos, nil
}

func createComentarios(db *gorm.DB, users []*models.User, pedidos []*models.Pedido) error {
	if len(users) == 0 {
		return nil
	}

	for _, pedido := range pedidos {
		for i := 0; i < gofakeit.Number(0, 3); i++ {
			author := users[gofakeit.Number(0, len(users)-1)]
			authorID := author.ID
			comentario := &models.Comentario{
				PedidoID:       pedido.ID,
				Autor:          author.DisplayName(),
				Conteudo:       gofakeit.Sentence(8),
				DataComentario: pedido.DataSubmissao.Add(time.Duration(i+1) * time.Hour),
				UsuarioID:      &authorID,
			}
			if err := db.Create(comentario).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
