package server

import (
	"oracao/internal/models"
	"oracao/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AddComentario handles POST /api/pedidos/:id/comentarios
func (s *Server) AddComentario(c *fiber.Ctx) error {
	pedidoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Conteudo string `json:"conteudo"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user := s.currentUser(c)
	comentario, err := s.comentarioService.Add(c.Context(), service.AddComentarioInput{
		PedidoID:  pedidoID,
		Conteudo:  req.Conteudo,
		Autor:     user.DisplayName(),
		UsuarioID: user.ID,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comentario)
}

// ListComentarios handles GET /api/pedidos/:id/comentarios
func (s *Server) ListComentarios(c *fiber.Ctx) error {
	pedidoID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comentarios, err := s.comentarioService.List(c.Context(), pedidoID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(comentarios)
}
