// Package authz contains the pure authorization rules of the board. The
// functions decide (actor, resource, action) without any I/O; callers
// translate a false result into a Forbidden error naming the violated rule.
package authz

import "oracao/internal/models"

// Actor is the authenticated identity an operation runs as.
type Actor struct {
	ID      uint
	IsAdmin bool
}

// CanModifyPedido allows admins to edit any pedido and owners to edit their
// own. Pedidos without an owner (seeded) are admin-only.
func CanModifyPedido(actor Actor, pedido *models.Pedido) bool {
	if actor.IsAdmin {
		return true
	}
	return pedido.UsuarioCriadorID != nil && *pedido.UsuarioCriadorID == actor.ID
}

// CanDeletePedido follows the same rule as modification.
func CanDeletePedido(actor Actor, pedido *models.Pedido) bool {
	return CanModifyPedido(actor, pedido)
}

// CanSetStatusOrVisibility restricts status and visibility changes to admins.
// Owners without the admin flag cannot change these even on their own pedidos.
func CanSetStatusOrVisibility(actor Actor) bool {
	return actor.IsAdmin
}

// CanManageUsers restricts user listing and administration to admins.
func CanManageUsers(actor Actor) bool {
	return actor.IsAdmin
}

// CanToggleAdmin forbids self-promotion and self-demotion.
func CanToggleAdmin(actor Actor, targetID uint) bool {
	return actor.IsAdmin && actor.ID != targetID
}
