package loot

// Entry is one row of a potion content table.
type Entry struct {
	Name        string
	Icon        string
	Description string
}

// Table is the fixed content pool for one rarity.
type Table []Entry

var (
	CommonTable = Table{
		{"Coffee Break", "☕", "Fifteen minutes of rest with a favorite drink"},
		{"Sweet Snack", "🍫", "A small sweet indulgence"},
		{"Walk Outside", "🚶", "A thirty-minute walk in the fresh air"},
		{"Tea and Cookies", "🍪", "A cozy tea break"},
	}

	RareTable = Table{
		{"Gaming Session", "🎮", "An hour of a favorite game"},
		{"Tasty Dinner", "🍕", "Order something delicious"},
		{"Movie Night", "🎬", "Watch an interesting film"},
		{"Small Treat", "🛒", "Buy yourself something nice"},
	}

	EpicTable = Table{
		{"Fast Food Trip", "🍔", "A favorite fast-food outing"},
		{"Cinema Ticket", "🎭", "A ticket to a new film"},
		{"Dream Purchase", "🎁", "Buy something special"},
		{"Day Off", "🏖️", "A whole day of pure rest"},
		{"New Book or Game", "📚", "Pick up a long-awaited release"},
	}

	LegendaryTable = Table{
		{"Dream Weekend", "🏖️", "A perfect weekend on your own terms"},
		{"Wish Granted", "⭐", "Fulfill any reasonable wish"},
		{"Big Purchase", "💎", "A major long-wanted purchase"},
		{"Mini Vacation", "✈️", "A short trip anywhere you like"},
		{"VIP Day", "👑", "A day when everything revolves around you"},
	}
)

// TableFor returns the content table for a rarity.
func TableFor(r Rarity) Table {
	switch r {
	case Rare:
		return RareTable
	case Epic:
		return EpicTable
	case Legendary:
		return LegendaryTable
	default:
		return CommonTable
	}
}
