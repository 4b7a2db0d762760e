package site

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Hook adjusts the rendered document after all section renders complete,
// standing in for the visual-effect re-initializers that re-scan replaced
// DOM nodes in the browser. Hooks are best-effort: an unregistered name is
// logged by the dispatcher and skipped.
type Hook func(doc *goquery.Document)

// Known hook names, invoked in this order after every dispatch.
const (
	HookTyped        = "typed"
	HookScrollReveal = "scroll-reveal"
	HookCounters     = "counters"
)

// hookNames is the fixed invocation order.
var hookNames = []string{HookTyped, HookScrollReveal, HookCounters}

// HookSet holds the optional post-render hooks by name.
type HookSet struct {
	hooks map[string]Hook
}

// NewHookSet returns an empty HookSet; every known hook is then reported
// missing at dispatch time.
func NewHookSet() *HookSet {
	return &HookSet{hooks: make(map[string]Hook)}
}

// Register installs a hook under a name, replacing any previous one.
func (h *HookSet) Register(name string, fn Hook) {
	h.hooks[name] = fn
}

// Lookup returns the hook registered under name.
func (h *HookSet) Lookup(name string) (Hook, bool) {
	fn, ok := h.hooks[name]
	return fn, ok
}

// DefaultHooks returns a HookSet with the three built-in hooks registered.
func DefaultHooks() *HookSet {
	h := NewHookSet()
	h.Register(HookTyped, typedHook)
	h.Register(HookScrollReveal, scrollRevealHook)
	h.Register(HookCounters, countersHook)
	return h
}

// typedHook seeds each typing-effect span with its first rotation item so
// the page shows text before the effect library starts.
func typedHook(doc *goquery.Document) {
	doc.Find("span.typed[data-typed-items]").Each(func(_ int, s *goquery.Selection) {
		items, _ := s.Attr("data-typed-items")
		first, _, _ := strings.Cut(items, ",")
		first = strings.TrimSpace(first)
		if first != "" {
			s.SetText(first)
		}
	})
}

// scrollRevealHook tags freshly rendered sections for the scroll-animation
// library.
func scrollRevealHook(doc *goquery.Document) {
	doc.Find("section").AddClass("reveal")
}

// countersHook zeroes counter values so the count-up animation starts from
// zero; the target stays in data-target.
func countersHook(doc *goquery.Document) {
	doc.Find("span.counter[data-target]").Each(func(_ int, s *goquery.Selection) {
		s.SetText("0")
	})
}
