package theme

// Centralized theming and styling initialization for the cropper UI.
// Provides palette constants and InitStyles to activate a base theme and
// configure semantic widget styles.

import (
	"github.com/soocke/ratio-crop-go/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f0f0f0" // app background
	ColorSurface   = "#ffffff" // panels, canvas frame
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#4f46e5" // open / confirm buttons
	ColorSuccess   = "#10b981"
	ColorDanger    = "#dc2626"
	ColorCrop      = "#FFC107" // crop outline and handles
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleSuccessButton = "success.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleTitleLabel    = "title.TLabel"
	StyleMutedLabel    = "muted.TLabel"
	StyleStatusInfo    = "info.TLabel"
	StyleStatusBusy    = "busy.TLabel"
	StyleStatusSuccess = "success.TLabel"
	StyleStatusError   = "error.TLabel"
)

// StatusStyle maps a status kind to its label style.
func StatusStyle(k model.StatusKind) string {
	switch k {
	case model.StatusBusy:
		return StyleStatusBusy
	case model.StatusSuccess:
		return StyleStatusSuccess
	case model.StatusError:
		return StyleStatusError
	default:
		return StyleStatusInfo
	}
}

// InitStyles activates the base theme and configures the semantic styles.
func InitStyles() {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(ColorBg))

	button := func(name, bg string) {
		StyleConfigure(name,
			Background(bg),
			Foreground("white"),
			Padding("6p 3p"),
			Borderwidth(1),
			Relief("ridge"),
		)
	}
	button(StylePrimaryButton, ColorPrimary)
	button(StyleSuccessButton, ColorSuccess)
	button(StyleDangerButton, ColorDanger)

	StyleConfigure(StyleTitleLabel, Foreground(ColorText), Background(ColorBg), Font("helvetica", 16, "bold"))
	StyleConfigure(StyleMutedLabel, Foreground(ColorTextMuted), Background(ColorBg))

	status := func(name, fg string) {
		StyleConfigure(name, Foreground(fg), Background(ColorBg), Padding("2p 1p"))
	}
	status(StyleStatusInfo, ColorTextMuted)
	status(StyleStatusBusy, ColorPrimary)
	status(StyleStatusSuccess, ColorSuccess)
	status(StyleStatusError, ColorDanger)
}
