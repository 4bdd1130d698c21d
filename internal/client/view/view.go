// Package view selects the top-level client surface from the current
// session. Selection is pure and recomputed on every render; nothing
// here is persisted.
package view

import (
	"github.com/marketplacepro/platform/internal/client/session"
	"github.com/marketplacepro/platform/internal/core/domain"
)

// View identifies a top-level client surface.
type View int

const (
	// ViewLoading renders while the startup restore is still running.
	ViewLoading View = iota
	// ViewStorefront is the public catalog with a login affordance.
	ViewStorefront
	// ViewDashboard is the generic signed-in surface for non-admins.
	ViewDashboard
	// ViewAdminPanel is the admin tile grid with settings drill-downs.
	ViewAdminPanel
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewStorefront:
		return "storefront"
	case ViewDashboard:
		return "dashboard"
	case ViewAdminPanel:
		return "admin-panel"
	}
	return "storefront"
}

// Select maps a session snapshot to the view to render.
func Select(snap session.Snapshot) View {
	switch snap.State {
	case session.StateRestoring:
		return ViewLoading
	case session.StateAuthenticated:
		if snap.User.Role == domain.TypeAdmin {
			return ViewAdminPanel
		}
		return ViewDashboard
	}
	return ViewStorefront
}

// TileMain is the admin panel's root tile grid.
const TileMain = "main"

// AdminPanel is the admin panel's internal router: main → one settings
// tile, with a single back transition from any leaf. State lives in
// memory only and returns to main on every restart.
type AdminPanel struct {
	tiles   map[string]struct{}
	current string
}

// NewAdminPanel returns a panel on the main grid, offering the given
// settings tiles.
func NewAdminPanel(tiles []string) *AdminPanel {
	set := make(map[string]struct{}, len(tiles))
	for _, t := range tiles {
		set[t] = struct{}{}
	}
	return &AdminPanel{tiles: set, current: TileMain}
}

// Current returns the tile being shown.
func (p *AdminPanel) Current() string {
	return p.current
}

// Open drills into a settings tile. Unknown tiles are ignored and the
// panel stays where it is.
func (p *AdminPanel) Open(tile string) bool {
	if _, ok := p.tiles[tile]; !ok {
		return false
	}
	p.current = tile
	return true
}

// Back returns to the main grid from any leaf.
func (p *AdminPanel) Back() {
	p.current = TileMain
}
