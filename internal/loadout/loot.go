package loadout

// generateLoot fills every loot category of the role's generation limits.
// Each category carries its own container priority and fall-through policy.
func (c *genContext) generateLoot() {
	for _, cat := range c.role.Limits.Loot {
		pool := c.allowedPool(cat.Pool)
		n := c.rng.Between(cat.Count.Min, cat.Count.Max)

		for range n {
			tplID, ok := c.drawer.Draw(c.rng, pool)
			if !ok {
				break
			}
			tpl, ok := c.catalog.Template(tplID)
			if !ok {
				c.record(skipped(Issue{
					Kind:     IssueConfiguration,
					Slot:     cat.Name,
					Template: tplID,
					Reason:   "template not in catalog",
				}))
				continue
			}

			mark := len(c.items)
			idx := c.newItem(tpl, "", "", nil)
			c.generateMods(idx, 0)
			if !c.placeInContainers(idx, cat.Containers, cat.FallThrough) {
				c.truncate(mark)
			}
		}
	}
}
