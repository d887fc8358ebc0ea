package shared

const (
	UserID = "user_id"

	LanguageChinese  = "chinese"
	LanguageJapanese = "japanese"

	GenderMale    = "male"
	GenderFemale  = "female"
	GenderNeutral = "neutral"
	GenderAny     = "any"

	FormatNative       = "native"
	FormatRomanization = "romanization"
	FormatBoth         = "both"

	ToneFormal      = "formal"
	ToneCasual      = "casual"
	ToneTraditional = "traditional"
	ToneModern      = "modern"

	VariantShort  = "short"
	VariantMedium = "medium"
	VariantLong   = "long"
)

// VariantOrder is the generation order of variant types.
var VariantOrder = []string{VariantShort, VariantMedium, VariantLong}
