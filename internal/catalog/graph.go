package catalog

import "sort"

// Prerequisites returns the modules gating the module at index. The first
// module, and any module with an explicit empty Requires list, has none.
// Unknown ids are skipped.
func (c *Catalog) Prerequisites(index int) []Module {
	if index < 0 || index >= len(c.Modules) {
		return nil
	}
	reqs := c.Modules[index].Requires
	out := make([]Module, 0, len(reqs))
	for _, id := range reqs {
		if i, ok := c.modules[id]; ok {
			out = append(out, c.Modules[i])
		}
	}
	return out
}

// Dependents returns the ids of modules that list id as a prerequisite,
// sorted for deterministic output.
func (c *Catalog) Dependents(id string) []string {
	var out []string
	for _, m := range c.Modules {
		for _, r := range m.Requires {
			if r == id {
				out = append(out, m.ID)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// Roots returns the modules without prerequisites.
func (c *Catalog) Roots() []Module {
	var out []Module
	for _, m := range c.Modules {
		if len(m.Requires) == 0 {
			out = append(out, m)
		}
	}
	return out
}

// topoOrder sorts module ids with Kahn's algorithm. It returns the ids that
// could be ordered; any id missing from the result sits on a cycle.
func topoOrder(modules []Module) []string {
	known := make(map[string]bool, len(modules))
	for _, m := range modules {
		known[m.ID] = true
	}

	inDegree := make(map[string]int, len(modules))
	adj := make(map[string][]string)
	for _, m := range modules {
		for _, r := range m.Requires {
			if !known[r] {
				continue
			}
			inDegree[m.ID]++
			adj[r] = append(adj[r], m.ID)
		}
	}

	var queue []string
	for _, m := range modules {
		if inDegree[m.ID] == 0 {
			queue = append(queue, m.ID)
		}
	}

	var order []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		deps := adj[id]
		sorted := make([]string, len(deps))
		copy(sorted, deps)
		sort.Strings(sorted)
		for _, d := range sorted {
			inDegree[d]--
			if inDegree[d] == 0 {
				queue = append(queue, d)
			}
		}
	}
	return order
}
