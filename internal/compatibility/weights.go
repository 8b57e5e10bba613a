package compatibility

// Shared scoring weights.
const (
	baseScore           = 50
	aspectMatchBonus    = 25
	durationFitBonus    = 15
	durationOverPenalty = 10
	faceSocialBonus     = 10
	textLongFormBonus   = 10
)

// Per-platform hand-tuned bonuses.
const (
	youtubeWidescreenBonus    = 15
	youtubeHighFrameRateBonus = 10
	youtubeHighFrameRateMin   = 60

	instagramSquareBonus   = 15
	instagramVerticalBonus = 10

	tiktokVerticalShortBonus = 20
	tiktokShortDurationMax   = 60

	twitterCeilingBonus      = 15
	twitterDurationCeiling   = 140
	twitterFileSizeCeilingMB = 512

	linkedinLandscapeBonus = 15
	linkedinDurationMin    = 30
	linkedinDurationMax    = 600
)

// Ratio buckets shared by the platform bonus rules.
const (
	verticalRatioMax     = 0.8
	squareRatioTolerance = 0.1
	widescreenRatioMin   = 1.7
	landscapeRatioMin    = 1.2
)
