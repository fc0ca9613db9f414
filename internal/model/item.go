package model

// Item — конкретный экземпляр предмета в дереве снаряжения бота.
//
// Every item except a root has exactly one parent, referenced by ID.
// Items are plain values: the generator owns them in a flat arena and
// never holds pointers between them.
type Item struct {
	ID         string    `json:"_id"`
	TemplateID string    `json:"_tpl"`
	ParentID   string    `json:"parentId,omitempty"`
	SlotID     string    `json:"slotId,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Props      *Props    `json:"upd,omitempty"`
}

// Location is a grid placement inside a spatial container.
type Location struct {
	X       int  `json:"x"`
	Y       int  `json:"y"`
	Rotated bool `json:"r"`
}

// Props — свойства, сгенерированные один раз при создании предмета.
type Props struct {
	Durability *Durability `json:"Repairable,omitempty"`
	StackCount int         `json:"StackObjectsCount,omitempty"`
	FireMode   string      `json:"FireMode,omitempty"`
	Folded     *bool       `json:"Folded,omitempty"`
	On         *bool       `json:"On,omitempty"`
	Resource   int         `json:"Resource,omitempty"`
}

// Durability is a (current, max) condition pair.
type Durability struct {
	Current int `json:"Durability"`
	Max     int `json:"MaxDurability"`
}

// IsRoot returns true if the item has no parent.
func (i *Item) IsRoot() bool {
	return i.ParentID == ""
}

// IsFolded returns true if the item carries a folded flag set to true.
func (i *Item) IsFolded() bool {
	return i.Props != nil && i.Props.Folded != nil && *i.Props.Folded
}

// StackSize returns the stack count, treating an unset count as 1.
func (i *Item) StackSize() int {
	if i.Props == nil || i.Props.StackCount <= 0 {
		return 1
	}
	return i.Props.StackCount
}
