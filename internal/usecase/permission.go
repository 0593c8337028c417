package usecase

import (
	"car-rental/internal/domain/customer"

	"github.com/google/uuid"
)

type Capability string

const (
	// ManageFleet covers car status, car edits, rental status changes,
	// returns, fleet-wide listings and refunds of other customers' payments.
	ManageFleet Capability = "manage_fleet"
)

// Principal is the authenticated caller.
type Principal struct {
	ID   uuid.UUID
	Role customer.Role
}

type PermissionChecker interface {
	Can(p Principal, c Capability) bool
}

// fleetPermissionChecker treats the fleet as one undivided owner: every
// authenticated principal may manage it.
type fleetPermissionChecker struct{}

func NewPermissionChecker() PermissionChecker {
	return fleetPermissionChecker{}
}

func (fleetPermissionChecker) Can(p Principal, c Capability) bool {
	if p.ID == uuid.Nil {
		return false
	}
	switch c {
	case ManageFleet:
		return p.Role.IsValid()
	default:
		return false
	}
}
