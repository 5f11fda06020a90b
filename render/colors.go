package render

// Palette (Tokyo Night)
var (
	RgbBackground = RGB{26, 27, 38}
	RgbSurface    = RGB{36, 40, 59}

	RgbGround     = RGB{86, 95, 137}
	RgbGroundTick = RGB{59, 66, 97}
	RgbBound      = RGB{247, 118, 142}

	RgbTarget       = RGB{122, 162, 247}
	RgbTargetActive = RGB{224, 175, 104}
	RgbTargetLabel  = RGB{169, 177, 214}

	RgbAvatar         = RGB{192, 202, 245}
	RgbAvatarAirborne = RGB{125, 207, 255}
	RgbAvatarFacing   = RGB{255, 158, 100}

	RgbPanelBorder = RGB{86, 95, 137}
	RgbPanelTitle  = RGB{224, 175, 104}
	RgbPanelText   = RGB{169, 177, 214}
	RgbPanelTag    = RGB{158, 206, 106}
	RgbPanelIdle   = RGB{86, 95, 137}

	RgbStatusBar    = RGB{255, 255, 255}
	RgbAudioMuted   = RGB{255, 0, 0}
	RgbAudioUnmuted = RGB{0, 255, 0}
	RgbWarning      = RGB{255, 165, 0}
)
