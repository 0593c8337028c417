package car

import (
	"strings"

	"github.com/google/uuid"
)

const (
	minModelYear = 1950
	maxModelYear = 2100
)

// Patch enumerates every descriptive field the fleet may edit.
// A nil field is left unchanged.
type Patch struct {
	CategoryID   *uuid.UUID
	BranchID     *uuid.UUID
	Brand        *string
	Model        *string
	Year         *int
	Color        *string
	LicensePlate *string
	ImageURL     *string
}

func (p Patch) IsEmpty() bool {
	return p.CategoryID == nil && p.BranchID == nil && p.Brand == nil && p.Model == nil &&
		p.Year == nil && p.Color == nil && p.LicensePlate == nil && p.ImageURL == nil
}

func (p Patch) Validate() error {
	for _, s := range []*string{p.Brand, p.Model, p.LicensePlate} {
		if s != nil && strings.TrimSpace(*s) == "" {
			return ErrBlankField
		}
	}
	if p.Year != nil && (*p.Year < minModelYear || *p.Year > maxModelYear) {
		return ErrInvalidYear
	}
	return nil
}
