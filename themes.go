package main

import (
	"github.com/undanganku/undanganku/utils"
)

// ThemeOrnaments holds the decorative image URLs of a theme
type ThemeOrnaments struct {
	TopLeft  string `json:"top_left"`
	TopRight string `json:"top_right"`
	Bottom   string `json:"bottom"`
	Divider  string `json:"divider"`
}

// Theme is a fixed visual bundle an invitation renders with
type Theme struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description"`
	PrimaryColor      string         `json:"primary_color"`
	SecondaryColor    string         `json:"secondary_color"`
	AccentColor       string         `json:"accent_color"`
	FontHeading       string         `json:"font_heading"`
	FontBody          string         `json:"font_body"`
	Ornaments         ThemeOrnaments `json:"ornaments"`
	BackgroundPattern string         `json:"background_pattern"`
	GradientStart     string         `json:"gradient_start"`
	GradientMid       string         `json:"gradient_mid"`
	GradientEnd       string         `json:"gradient_end"`
}

// themeRegistry holds all available themes. The bundles are fixed at
// build time; there is no runtime theme management.
var themeRegistry = map[string]Theme{
	utils.ThemeAdat: {
		ID:             utils.ThemeAdat,
		Name:           "Adat/Traditional",
		Description:    "Tema dengan ornamen tradisional Indonesia",
		PrimaryColor:   "#8B4513",
		SecondaryColor: "#F5DEB3",
		AccentColor:    "#D4AF37",
		FontHeading:    "Cinzel",
		FontBody:       "Manrope",
		Ornaments: ThemeOrnaments{
			TopLeft:  "https://images.unsplash.com/photo-1762111067760-1f0fc2aa2866?w=400",
			TopRight: "https://images.unsplash.com/photo-1761517099247-71400d18ccd8?w=400",
			Bottom:   "https://images.unsplash.com/photo-1761515315519-7fa1af1d3e06?w=400",
			Divider:  "https://images.unsplash.com/photo-1762111067760-1f0fc2aa2866?w=200",
		},
		BackgroundPattern: "batik",
		GradientStart:     "#FDF8F0",
		GradientMid:       "#F5E6D3",
		GradientEnd:       "#FDF8F0",
	},
	utils.ThemeFloral: {
		ID:             utils.ThemeFloral,
		Name:           "Floral/Bunga",
		Description:    "Tema dengan dekorasi bunga yang elegan",
		PrimaryColor:   "#B76E79",
		SecondaryColor: "#F5E6E8",
		AccentColor:    "#D4AF37",
		FontHeading:    "Playfair Display",
		FontBody:       "Manrope",
		Ornaments: ThemeOrnaments{
			TopLeft:  "https://images.unsplash.com/photo-1581720848095-2b72764b08a2?w=400",
			TopRight: "https://images.unsplash.com/photo-1581720848209-9721f8fa30ff?w=400",
			Bottom:   "https://images.unsplash.com/photo-1762805088436-ffa7b89779a9?w=400",
			Divider:  "https://images.unsplash.com/photo-1581720848095-2b72764b08a2?w=200",
		},
		BackgroundPattern: "floral",
		GradientStart:     "#FEFCFB",
		GradientMid:       "#F8ECEE",
		GradientEnd:       "#FEFCFB",
	},
	utils.ThemeModern: {
		ID:                utils.ThemeModern,
		Name:              "Modern/Minimalist",
		Description:       "Tema modern dengan desain minimalis",
		PrimaryColor:      "#2C3E50",
		SecondaryColor:    "#ECF0F1",
		AccentColor:       "#E74C3C",
		FontHeading:       "Montserrat",
		FontBody:          "Open Sans",
		Ornaments:         ThemeOrnaments{},
		BackgroundPattern: "none",
		GradientStart:     "#FFFFFF",
		GradientMid:       "#F5F7FA",
		GradientEnd:       "#FFFFFF",
	},
}

// ResolveTheme returns the bundle for the given key. Unknown or empty
// keys fall back to the default theme so a page always renders.
func ResolveTheme(key string) Theme {
	if theme, ok := themeRegistry[key]; ok {
		return theme
	}
	return themeRegistry[utils.ThemeDefault]
}

// ListThemes returns all bundles in a stable order
func ListThemes() []Theme {
	themes := make([]Theme, 0, len(themeRegistry))
	for _, key := range utils.ThemeKeys {
		themes = append(themes, themeRegistry[key])
	}
	return themes
}

// LookupTheme returns the bundle for an exact key, without fallback
func LookupTheme(key string) (Theme, bool) {
	theme, ok := themeRegistry[key]
	return theme, ok
}
