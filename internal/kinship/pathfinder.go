package kinship

import "strings"

// FindPath performs unweighted BFS from fromID to toID over the undirected
// family adjacency: both parents, same-unit siblings, current spouses, and
// all children of each visited person. It returns the ordered id path
// inclusive of both endpoints: length 1 when the ids are equal, empty when
// the two are disconnected. The first shortest path by BFS discovery order
// is returned; ties are not canonicalized.
func (c *Calculator) FindPath(fromID, toID string) []string {
	if fromID == toID {
		return []string{fromID}
	}

	visited := map[string]bool{fromID: true}
	cameFrom := make(map[string]string)
	queue := []string{fromID}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, neighbor := range c.neighbors(current) {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			cameFrom[neighbor] = current

			if neighbor == toID {
				return reconstructPath(cameFrom, fromID, toID)
			}
			queue = append(queue, neighbor)
		}
	}

	return nil
}

// FindChain returns the shortest connecting path and its rendered
// possessive chain label. Callers use it when FindRelationship yields
// unknown; an empty path means no connection exists.
func (c *Calculator) FindChain(fromID, toID string) ([]string, string) {
	path := c.FindPath(fromID, toID)
	return path, c.DescribeChain(path)
}

// DescribeChain renders a path of person ids into a possessive chain label
// by joining single-hop relation names: ["Father","Brother","Wife"] becomes
// "Father's Brother's Wife".
//
// Known gap, preserved deliberately: hops that are not a direct
// parent/child/spouse/same-unit-sibling step (which cannot occur on paths
// produced by FindPath, but can on caller-supplied paths) are silently
// omitted from the join rather than rendered with invented labels.
func (c *Calculator) DescribeChain(path []string) string {
	if len(path) < 2 {
		return ""
	}

	var labels []string
	for i := 0; i+1 < len(path); i++ {
		if label, ok := c.stepLabel(path[i], path[i+1]); ok {
			labels = append(labels, label)
		}
	}
	return strings.Join(labels, "'s ")
}

// neighbors builds the symmetric adjacency for one person: parents,
// same-unit siblings, current spouses, and children, deduplicated in that
// order.
func (c *Calculator) neighbors(id string) []string {
	var out []string
	seen := map[string]bool{id: true}

	add := func(neighbor string) {
		if neighbor == "" || seen[neighbor] {
			return
		}
		seen[neighbor] = true
		out = append(out, neighbor)
	}

	father, mother := c.acc.ParentsOf(id)
	add(father)
	add(mother)
	for _, sibling := range c.acc.SiblingsOf(id) {
		add(sibling)
	}
	for _, spouse := range c.acc.SpousesOf(id) {
		add(spouse)
	}
	for _, child := range c.acc.ChildrenOf(id) {
		add(child)
	}
	return out
}

// reconstructPath walks the BFS predecessor map backward from toID to
// fromID, then reverses into from-to order.
func reconstructPath(cameFrom map[string]string, fromID, toID string) []string {
	path := []string{toID}
	for current := toID; current != fromID; {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// stepLabel computes the single-hop relation label from fromID to toID by
// direct structural check only: parent, child, spouse, or same-unit
// sibling. The full classification pipeline is deliberately not consulted.
func (c *Calculator) stepLabel(fromID, toID string) (string, bool) {
	sex := c.acc.Snapshot().SexOf(toID)

	father, mother := c.acc.ParentsOf(fromID)
	if toID == father || toID == mother {
		return gendered(sex, "Father", "Mother", "Parent"), true
	}

	for _, child := range c.acc.ChildrenOf(fromID) {
		if child == toID {
			return gendered(sex, "Son", "Daughter", "Child"), true
		}
	}

	for _, spouse := range c.acc.SpousesOf(fromID) {
		if spouse == toID {
			return spouseLabel(sex), true
		}
	}

	for _, sibling := range c.acc.SiblingsOf(fromID) {
		if sibling == toID {
			return gendered(sex, "Brother", "Sister", "Sibling"), true
		}
	}

	return "", false
}
