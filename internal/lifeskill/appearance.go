package lifeskill

// Appearance is the display treatment for a module in listing views.
type Appearance struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// defaultAppearance is used for any module outside the known table,
// including generated ones.
var defaultAppearance = Appearance{Icon: "🥋", Color: "from-gray-500 to-blue-500"}

var appearances = map[string]Appearance{
	"grit":       {Icon: "💪", Color: "from-red-500 to-orange-500"},
	"respect":    {Icon: "🙏", Color: "from-blue-500 to-purple-500"},
	"discipline": {Icon: "🎯", Color: "from-green-500 to-teal-500"},
	"confidence": {Icon: "🌟", Color: "from-yellow-500 to-orange-500"},
}

// AppearanceFor returns the display treatment for a module id, falling back
// to the default for unknown ids.
func AppearanceFor(id string) Appearance {
	if a, ok := appearances[id]; ok {
		return a
	}
	return defaultAppearance
}
