package system

import "log"

// singletonGuard logs once when a system's required singleton goes missing
// and re-arms when it comes back, so startup ordering never spams the log.
type singletonGuard struct {
	missing map[string]bool
}

func (g *singletonGuard) require(system, what string, ok bool) bool {
	if g.missing == nil {
		g.missing = make(map[string]bool)
	}
	if ok {
		g.missing[what] = false
		return true
	}
	if !g.missing[what] {
		log.Printf("%s: no %s this tick; skipping", system, what)
		g.missing[what] = true
	}
	return false
}
