package player

// Slot identifies one of the five fixed equipment positions.
type Slot string

const (
	SlotHelmet    Slot = "helmet"
	SlotArmor     Slot = "armor"
	SlotLeftHand  Slot = "leftHand"
	SlotRightHand Slot = "rightHand"
	SlotBoots     Slot = "boots"
)

// Slots returns all equipment slots in display order.
func Slots() []Slot {
	return []Slot{SlotHelmet, SlotArmor, SlotLeftHand, SlotRightHand, SlotBoots}
}

// Item is a single piece of equipment. One item exists per slot, created at
// player initialization and never destroyed.
type Item struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Level         int    `json:"level"`
	Experience    int    `json:"experience"`
	MaxExperience int    `json:"maxExperience"`
	Slot          Slot   `json:"type"`
	Icon          string `json:"icon"`
	Description   string `json:"description"`
}

type Equipment struct {
	Helmet    Item `json:"helmet"`
	Armor     Item `json:"armor"`
	LeftHand  Item `json:"leftHand"`
	RightHand Item `json:"rightHand"`
	Boots     Item `json:"boots"`
}

// Item returns a pointer to the item in the given slot, or nil for an
// unknown slot.
func (e *Equipment) Item(s Slot) *Item {
	switch s {
	case SlotHelmet:
		return &e.Helmet
	case SlotArmor:
		return &e.Armor
	case SlotLeftHand:
		return &e.LeftHand
	case SlotRightHand:
		return &e.RightHand
	case SlotBoots:
		return &e.Boots
	default:
		return nil
	}
}

// Stats are derived from equipment levels and never mutated directly.
type Stats struct {
	Strength     int `json:"strength"`
	Defense      int `json:"defense"`
	Intelligence int `json:"intelligence"`
	Agility      int `json:"agility"`
	Health       int `json:"health"`
}

type Player struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Level         int       `json:"level"`
	Experience    int       `json:"experience"`
	MaxExperience int       `json:"maxExperience"`
	Equipment     Equipment `json:"equipment"`
	TotalStats    Stats     `json:"totalStats"`
}

type itemSeed struct {
	name        string
	icon        string
	description string
}

var itemSeeds = map[Slot]itemSeed{
	SlotHelmet:    {"Helmet of Knowledge", "🎓", "Guards against ignorance and grants wisdom"},
	SlotArmor:     {"Polyglot's Armor", "🛡️", "Protects from language barriers"},
	SlotLeftHand:  {"Shield of Health", "💪", "Grants strength and endurance"},
	SlotRightHand: {"Sword of Productivity", "⚔️", "Cuts through work tasks like butter"},
	SlotBoots:     {"Homebody Boots", "👟", "Speeds up household chores"},
}

// NewItem creates the level-1 item for a slot.
func NewItem(s Slot, baseMaxExperience int) Item {
	seed := itemSeeds[s]
	return Item{
		ID:            string(s) + "_initial",
		Name:          seed.name,
		Level:         1,
		Experience:    0,
		MaxExperience: baseMaxExperience,
		Slot:          s,
		Icon:          seed.icon,
		Description:   seed.description,
	}
}

// New creates a fresh level-1 player with initial equipment. TotalStats is
// left zero; the caller recomputes it from the equipment.
func New(baseMaxExperience, itemBaseMaxExperience int) Player {
	return Player{
		ID:            "player_main",
		Name:          "Reality Hero",
		Level:         1,
		Experience:    0,
		MaxExperience: baseMaxExperience,
		Equipment: Equipment{
			Helmet:    NewItem(SlotHelmet, itemBaseMaxExperience),
			Armor:     NewItem(SlotArmor, itemBaseMaxExperience),
			LeftHand:  NewItem(SlotLeftHand, itemBaseMaxExperience),
			RightHand: NewItem(SlotRightHand, itemBaseMaxExperience),
			Boots:     NewItem(SlotBoots, itemBaseMaxExperience),
		},
	}
}
