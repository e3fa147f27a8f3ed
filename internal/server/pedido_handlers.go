package server

import (
	"oracao/internal/models"
	"oracao/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ListPedidos handles GET /api/pedidos
func (s *Server) ListPedidos(c *fiber.Ctx) error {
	pedidos, err := s.pedidoService.List(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(pedidos)
}

// GetPedido handles GET /api/pedidos/:id
func (s *Server) GetPedido(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	pedido, err := s.pedidoService.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(pedido)
}

// CreatePedido handles POST /api/pedidos
func (s *Server) CreatePedido(c *fiber.Ctx) error {
	var req struct {
		Titulo             string `json:"titulo"`
		Descricao          string `json:"descricao"`
		NomeSolicitante    string `json:"nome_solicitante"`
		CelularSolicitante string `json:"celular_solicitante"`
		EmailSolicitante   string `json:"email_solicitante"`
		Status             string `json:"status"`
		Visibilidade       string `json:"visibilidade"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	pedido, err := s.pedidoService.Create(c.Context(), s.actor(c), service.CreatePedidoInput{
		Titulo:             req.Titulo,
		Descricao:          req.Descricao,
		NomeSolicitante:    req.NomeSolicitante,
		CelularSolicitante: req.CelularSolicitante,
		EmailSolicitante:   req.EmailSolicitante,
		Status:             req.Status,
		Visibilidade:       req.Visibilidade,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(pedido)
}

// UpdatePedido handles PUT /api/pedidos/:id
func (s *Server) UpdatePedido(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Titulo             *string `json:"titulo"`
		Descricao          *string `json:"descricao"`
		NomeSolicitante    *string `json:"nome_solicitante"`
		CelularSolicitante *string `json:"celular_solicitante"`
		EmailSolicitante   *string `json:"email_solicitante"`
		Status             *string `json:"status"`
		Visibilidade       *string `json:"visibilidade"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	pedido, err := s.pedidoService.Update(c.Context(), s.actor(c), id, service.UpdatePedidoInput{
		Titulo:             req.Titulo,
		Descricao:          req.Descricao,
		NomeSolicitante:    req.NomeSolicitante,
		CelularSolicitante: req.CelularSolicitante,
		EmailSolicitante:   req.EmailSolicitante,
		Status:             req.Status,
		Visibilidade:       req.Visibilidade,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(pedido)
}

// DeletePedido handles DELETE /api/pedidos/:id
func (s *Server) DeletePedido(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.pedidoService.Delete(c.Context(), s.actor(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Pedido deleted successfully"})
}

// SetPedidoStatus handles PUT /api/pedidos/:id/status (admin only)
func (s *Server) SetPedidoStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.Status == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status is required"))
	}

	pedido, err := s.pedidoService.SetStatus(c.Context(), s.actor(c), id, req.Status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(pedido)
}

// SearchPedidos handles GET /api/pedidos/buscar?q=...&status=...
func (s *Server) SearchPedidos(c *fiber.Ctx) error {
	term := c.Query("q")
	status := c.Query("status")

	pedidos, err := s.pedidoService.Search(c.Context(), term, status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(pedidos)
}

// GetEstatisticas handles GET /api/pedidos/estatisticas
func (s *Server) GetEstatisticas(c *fiber.Ctx) error {
	stats, err := s.pedidoService.Estatisticas(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(stats)
}
