package site

import (
	"strings"

	"github.com/jonathan/portfolio-site/internal/types"
)

const homeLabel = "Home"

// cvHomeTarget points the CV page's Home entry back at the index About
// section. The CV shell has no hero, so its own top anchor would scroll
// nowhere useful.
const cvHomeTarget = "index.html#about"

// MenuFor returns the navigation list for a page variant. The index and CV
// variants share the main menu; every detail page uses the details menu.
// On the CV variant the Home entry is retargeted at cvHomeTarget regardless
// of its original target. The returned slice is always a copy; the loaded
// navigation data is never mutated.
func MenuFor(page Page, nav types.Navigation) []types.MenuItem {
	switch page.Kind {
	case KindDetail:
		return cloneMenu(nav.DetailsMenu)
	case KindCV:
		menu := cloneMenu(nav.MainMenu)
		for i := range menu {
			if strings.EqualFold(menu[i].Label, homeLabel) {
				menu[i].Target = cvHomeTarget
			}
		}
		return menu
	default:
		return cloneMenu(nav.MainMenu)
	}
}

func cloneMenu(menu []types.MenuItem) []types.MenuItem {
	out := make([]types.MenuItem, len(menu))
	copy(out, menu)
	return out
}
