package catalog

import (
	"errors"
	"fmt"
	"sort"
)

// Validate checks referential integrity: unique ids, resolvable word,
// sequence, mascot and prerequisite references, and an acyclic module
// graph. All problems are returned joined into one error.
//
// The engine assumes a valid catalog and never calls this at runtime.
func (c *Catalog) Validate() error {
	var errs []error

	wordIDs := make(map[string]bool, len(c.Words))
	for _, w := range c.Words {
		if wordIDs[w.ID] {
			errs = append(errs, fmt.Errorf("duplicate word ID: %q", w.ID))
		}
		wordIDs[w.ID] = true
	}

	seqIDs := make(map[string]bool, len(c.Sequences))
	for _, s := range c.Sequences {
		if seqIDs[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate sequence ID: %q", s.ID))
		}
		seqIDs[s.ID] = true
		seen := make(map[int]bool, len(s.Parts))
		for _, p := range s.Parts {
			if !wordIDs[p.WordID] {
				errs = append(errs, fmt.Errorf("sequence %q references nonexistent word %q", s.ID, p.WordID))
			}
			if seen[p.Order] {
				errs = append(errs, fmt.Errorf("sequence %q has duplicate order %d", s.ID, p.Order))
			}
			seen[p.Order] = true
		}
	}

	modIDs := make(map[string]bool, len(c.Modules))
	for _, m := range c.Modules {
		if modIDs[m.ID] {
			errs = append(errs, fmt.Errorf("duplicate module ID: %q", m.ID))
		}
		modIDs[m.ID] = true
	}

	for _, m := range c.Modules {
		if len(m.WordIDs) == 0 {
			errs = append(errs, fmt.Errorf("module %q has no words", m.ID))
		}
		for _, id := range m.WordIDs {
			if !wordIDs[id] {
				errs = append(errs, fmt.Errorf("module %q references nonexistent word %q", m.ID, id))
			}
		}
		for _, id := range m.SequenceIDs {
			if !seqIDs[id] {
				errs = append(errs, fmt.Errorf("module %q references nonexistent sequence %q", m.ID, id))
			}
		}
		for _, id := range m.Requires {
			if !modIDs[id] {
				errs = append(errs, fmt.Errorf("module %q references nonexistent prerequisite %q", m.ID, id))
			}
		}
	}

	if order := topoOrder(c.Modules); len(order) < len(c.Modules) {
		ordered := make(map[string]bool, len(order))
		for _, id := range order {
			ordered[id] = true
		}
		var cyclic []string
		for _, m := range c.Modules {
			if !ordered[m.ID] {
				cyclic = append(cyclic, m.ID)
			}
		}
		sort.Strings(cyclic)
		errs = append(errs, fmt.Errorf("module prerequisites contain a cycle among %v", cyclic))
	}

	mascotIDs := make(map[string]bool, len(c.Mascots))
	for _, m := range c.Mascots {
		mascotIDs[m.ID] = true
	}
	for _, l := range c.Languages {
		if _, ok := ParseLanguage(string(l.Code)); !ok {
			errs = append(errs, fmt.Errorf("unknown language code %q", l.Code))
		}
		if l.Theme.MascotID != "" && !mascotIDs[l.Theme.MascotID] {
			errs = append(errs, fmt.Errorf("language %q references nonexistent mascot %q", l.Code, l.Theme.MascotID))
		}
	}

	return errors.Join(errs...)
}
