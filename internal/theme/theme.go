// Package theme maps a display mode to the style tokens the UI renders with.
package theme

// Mode is the display mode chosen by the user.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// StorageKey is the cookie (and browser storage) key the chosen mode is
// persisted under.
const StorageKey = "trackr-theme"

// ParseMode reports false for anything other than "dark" or "light".
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case Dark, Light:
		return Mode(s), true
	default:
		return "", false
	}
}

// Resolve picks the effective mode: an explicit override wins over the
// persisted value, which wins over the default dark mode.
func Resolve(override, persisted string) Mode {
	if m, ok := ParseMode(override); ok {
		return m
	}
	if m, ok := ParseMode(persisted); ok {
		return m
	}
	return Dark
}

type Layout struct {
	Bg     string `json:"bg"`
	MainBg string `json:"main_bg"`
	Border string `json:"border"`
	Shadow string `json:"shadow"`
}

type Text struct {
	Main      string `json:"main"`
	Muted     string `json:"muted"`
	Inactive  string `json:"inactive"`
	Highlight string `json:"highlight"`
}

type Input struct {
	Bg          string `json:"bg"`
	Border      string `json:"border"`
	Placeholder string `json:"placeholder"`
	FocusBg     string `json:"focus_bg"`
	FocusBorder string `json:"focus_border"`
	Icon        string `json:"icon"`
}

type IconButton struct {
	Base  string `json:"base"`
	Hover string `json:"hover"`
}

type PrimaryAction struct {
	BgGradient string `json:"bg_gradient"`
	Shadow     string `json:"shadow"`
	Text       string `json:"text"`
	Hover      string `json:"hover"`
}

type Card struct {
	Base        string `json:"base"`
	Hover       string `json:"hover"`
	BgGradient  string `json:"bg_gradient"`
	Border      string `json:"border"`
	HoverBorder string `json:"hover_border"`
	Shadow      string `json:"shadow"`
}

type Modal struct {
	Overlay    string `json:"overlay"`
	BgGradient string `json:"bg_gradient"`
	Border     string `json:"border"`
	Shadow     string `json:"shadow"`
}

type Cover struct {
	BgGradient string `json:"bg_gradient"`
}

// Banner styles the error and success messages.
type Banner struct {
	Bg     string `json:"bg"`
	Border string `json:"border"`
	Text   string `json:"text"`
}

// Tokens is the full set of style tokens for one mode.
type Tokens struct {
	Mode          Mode          `json:"mode"`
	Layout        Layout        `json:"layout"`
	Text          Text          `json:"text"`
	Input         Input         `json:"input"`
	IconButton    IconButton    `json:"icon_button"`
	PrimaryAction PrimaryAction `json:"primary_action"`
	Card          Card          `json:"card"`
	Modal         Modal         `json:"modal"`
	Cover         Cover         `json:"cover"`
	Error         Banner        `json:"error"`
	Success       Banner        `json:"success"`
}

// For returns the tokens for mode. Unknown modes get the dark tokens.
// The result is a copy; callers may not alter the shared tables.
func For(mode Mode) Tokens {
	if mode == Light {
		return light
	}
	return dark
}

var primaryAction = PrimaryAction{
	BgGradient: "bg-gradient-to-r from-purple-500 to-purple-600",
	Shadow:     "shadow-lg shadow-purple-500/30",
	Text:       "text-white",
	Hover:      "hover:from-purple-600 hover:to-purple-700",
}

var dark = Tokens{
	Mode: Dark,
	Layout: Layout{
		Bg:     "bg-gray-900/70 backdrop-blur-2xl",
		MainBg: "bg-gradient-to-br from-gray-900 via-indigo-950 to-gray-900",
		Border: "border-purple-500/20",
		Shadow: "shadow-sm shadow-purple-500/10",
	},
	Text: Text{
		Main:      "text-white",
		Muted:     "text-purple-400",
		Inactive:  "text-gray-300",
		Highlight: "text-yellow-400",
	},
	Input: Input{
		Bg:          "bg-gray-800/80 backdrop-blur-xl",
		Border:      "border-purple-500/20",
		Placeholder: "placeholder-purple-400/60",
		FocusBg:     "focus:bg-gray-800",
		FocusBorder: "focus:ring-2 focus:ring-purple-500/50 border",
		Icon:        "text-purple-400",
	},
	IconButton: IconButton{
		Base:  "text-purple-400",
		Hover: "hover:bg-purple-500/20",
	},
	PrimaryAction: primaryAction,
	Card: Card{
		Base:        "bg-gray-900/70 backdrop-blur-2xl",
		Hover:       "hover:bg-gray-900/80",
		BgGradient:  "bg-gradient-to-br from-purple-900/40 to-purple-800/40",
		Border:      "border-purple-500/20",
		HoverBorder: "hover:border-purple-500/30",
		Shadow:      "shadow-lg shadow-purple-500/20",
	},
	Modal: Modal{
		Overlay:    "bg-black/80 backdrop-blur-sm",
		BgGradient: "bg-gradient-to-br from-gray-900/90 to-purple-900/90",
		Border:     "border-purple-500/30",
		Shadow:     "shadow-purple-500/40",
	},
	Cover: Cover{
		BgGradient: "bg-gradient-to-br from-purple-600 to-pink-600",
	},
	Error: Banner{
		Bg:     "bg-red-500/20 border",
		Border: "border-red-500/30",
		Text:   "text-red-300",
	},
	Success: Banner{
		Bg:     "bg-emerald-500/20 border",
		Border: "border-emerald-500/30",
		Text:   "text-emerald-300",
	},
}

var light = Tokens{
	Mode: Light,
	Layout: Layout{
		Bg:     "bg-white/70 backdrop-blur-2xl",
		MainBg: "bg-gradient-to-br from-slate-100 via-white to-purple-50/50",
		Border: "border-purple-200/30",
		Shadow: "shadow-sm shadow-purple-500/5",
	},
	Text: Text{
		Main:      "text-indigo-900",
		Muted:     "text-purple-600",
		Inactive:  "text-indigo-700",
		Highlight: "text-yellow-600",
	},
	Input: Input{
		Bg:          "bg-purple-50/80 backdrop-blur-xl",
		Border:      "border-purple-200/30",
		Placeholder: "placeholder-purple-400",
		FocusBg:     "focus:bg-purple-50",
		FocusBorder: "focus:ring-2 focus:ring-purple-500/50 border",
		Icon:        "text-purple-500",
	},
	IconButton: IconButton{
		Base:  "text-purple-600",
		Hover: "hover:bg-purple-100/50",
	},
	PrimaryAction: primaryAction,
	Card: Card{
		Base:        "bg-white/70 backdrop-blur-2xl",
		Hover:       "hover:bg-white/80",
		BgGradient:  "bg-gradient-to-br from-purple-100/80 to-purple-50/80",
		Border:      "border-purple-200/30",
		HoverBorder: "hover:border-purple-500/20",
		Shadow:      "shadow-lg shadow-purple-500/10",
	},
	Modal: Modal{
		Overlay:    "bg-black/80 backdrop-blur-sm",
		BgGradient: "bg-gradient-to-br from-white/90 to-purple-50/90",
		Border:     "border-purple-200/40",
		Shadow:     "shadow-purple-500/30",
	},
	Cover: Cover{
		BgGradient: "bg-gradient-to-br from-purple-400 to-pink-400",
	},
	Error: Banner{
		Bg:     "bg-red-50 border",
		Border: "border-red-200",
		Text:   "text-red-700",
	},
	Success: Banner{
		Bg:     "bg-emerald-50 border",
		Border: "border-emerald-200",
		Text:   "text-emerald-700",
	},
}
