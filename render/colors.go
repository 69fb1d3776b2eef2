package render

// Page palette
var (
	RgbBackground = RGB{2, 4, 10}    // Page background
	RgbCard       = RGB{15, 17, 21}  // Widget surface
	RgbBorder     = RGB{39, 39, 42}  // Card outline
	RgbInk        = RGB{212, 212, 216}
	RgbBright     = RGB{250, 250, 250}
	RgbMuted      = RGB{113, 113, 122}
	RgbDim        = RGB{82, 82, 91}
	RgbBlack      = RGB{0, 0, 0}
	RgbWhite      = RGB{255, 255, 255}

	RgbAccent   = RGB{192, 132, 252} // Purple highlights
	RgbCritical = RGB{239, 68, 68}   // Red warnings
	RgbGranted  = RGB{34, 197, 94}   // Green success
	RgbSpotify  = RGB{29, 185, 84}   // Playlist brand
	RgbPaper    = RGB{250, 250, 250} // Receipt and dossier back
	RgbPaperInk = RGB{24, 24, 27}
)

// Preload curtain
var (
	RgbCurtain        = RGB{0, 0, 0}
	RgbTitleOutline   = RGB{63, 63, 70}
	RgbCaption        = RGB{161, 161, 170}
	RgbFollower       = RGB{250, 250, 250}
	RgbFollowerMagnet = RGB{192, 132, 252}
)
