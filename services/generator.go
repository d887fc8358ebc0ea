package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/lac-hong-legacy/name_api/dto"
	"github.com/lac-hong-legacy/name_api/shared"
)

// VariantGenerator produces the ordered drafts for a localization request.
type VariantGenerator interface {
	Generate(ctx context.Context, input dto.GenerationInput) ([]dto.VariantDraft, error)
}

type glyph struct {
	native  string
	roman   string
	meaning string
}

// Each table has a prime length so that any step walks every entry once.
var glyphTables = map[string]map[string][]glyph{
	shared.LanguageChinese: {
		shared.GenderMale: {
			{"伟", "Wěi", "great"},
			{"强", "Qiáng", "strong"},
			{"明", "Míng", "bright"},
			{"杰", "Jié", "outstanding"},
			{"浩", "Hào", "vast"},
			{"俊", "Jùn", "handsome"},
			{"志", "Zhì", "ambition"},
		},
		shared.GenderFemale: {
			{"美", "Měi", "beauty"},
			{"丽", "Lì", "lovely"},
			{"婷", "Tíng", "graceful"},
			{"雅", "Yǎ", "elegant"},
			{"欣", "Xīn", "joyful"},
			{"怡", "Yí", "harmonious"},
			{"静", "Jìng", "quiet"},
		},
		shared.GenderNeutral: {
			{"安", "Ān", "peace"},
			{"文", "Wén", "culture"},
			{"宁", "Níng", "tranquil"},
			{"晨", "Chén", "morning"},
			{"佳", "Jiā", "fine"},
			{"和", "Hé", "harmony"},
			{"清", "Qīng", "clear"},
		},
	},
	shared.LanguageJapanese: {
		shared.GenderMale: {
			{"大", "dai", "great"},
			{"翔", "shō", "soar"},
			{"健", "ken", "health"},
			{"太", "ta", "thick"},
			{"郎", "rō", "son"},
			{"真", "ma", "truth"},
			{"一", "ichi", "one"},
		},
		shared.GenderFemale: {
			{"美", "mi", "beauty"},
			{"花", "ka", "flower"},
			{"愛", "a", "love"},
			{"子", "ko", "child"},
			{"結", "yu", "bind"},
			{"菜", "na", "greens"},
			{"里", "ri", "village"},
		},
		shared.GenderNeutral: {
			{"晴", "haru", "clear weather"},
			{"空", "sora", "sky"},
			{"和", "kazu", "harmony"},
			{"希", "ki", "hope"},
			{"真", "ma", "truth"},
			{"優", "yū", "gentle"},
			{"玲", "rei", "jade chime"},
		},
	},
}

var toneNotes = map[string]map[string]string{
	shared.LanguageChinese: {
		shared.ToneFormal:      "Suited to official documents and business cards.",
		shared.ToneCasual:      "Reads as a friendly given name among peers.",
		shared.ToneTraditional: "Built from characters common in classical poetry.",
		shared.ToneModern:      "Popular character choices in contemporary naming.",
	},
	shared.LanguageJapanese: {
		shared.ToneFormal:      "Appropriate for formal introductions and hanko seals.",
		shared.ToneCasual:      "Easy to shorten into a nickname with -chan or -kun.",
		shared.ToneTraditional: "Uses kanji found in classical family names.",
		shared.ToneModern:      "Follows current kanji naming trends.",
	},
}

var variantLengths = map[string]int{
	shared.VariantShort:  2,
	shared.VariantMedium: 3,
	shared.VariantLong:   4,
}

const (
	baseConfidence    = 0.95
	confidenceStep    = 0.07
	anyGenderDiscount = 0.03
)

// TemplateGenerator is a fixed lookup stub. Glyphs are picked
// deterministically from the name so the same input always yields the same
// drafts.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(ctx context.Context, input dto.GenerationInput) ([]dto.VariantDraft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tables, ok := glyphTables[input.TargetLanguage]
	if !ok {
		return nil, fmt.Errorf("unsupported target language %q", input.TargetLanguage)
	}

	gender := input.GenderPreference
	if gender == shared.GenderAny || gender == "" {
		gender = shared.GenderNeutral
	}
	table, ok := tables[gender]
	if !ok {
		return nil, fmt.Errorf("unsupported gender preference %q", input.GenderPreference)
	}

	notes, ok := toneNotes[input.TargetLanguage][input.Tone]
	if !ok {
		return nil, fmt.Errorf("unsupported tone %q", input.Tone)
	}

	name := strings.ToLower(strings.TrimSpace(input.OriginalName))
	seed := xxhash.Sum64String(name + "|" + input.TargetLanguage + "|" + gender)
	n := uint64(len(table))
	start := seed % n
	step := 1 + (seed>>32)%(n-1)

	confidence := baseConfidence
	if input.GenderPreference == shared.GenderAny {
		confidence -= anyGenderDiscount
	}

	drafts := make([]dto.VariantDraft, 0, len(shared.VariantOrder))
	for i, variantType := range shared.VariantOrder {
		picked := make([]glyph, variantLengths[variantType])
		for j := range picked {
			picked[j] = table[(start+uint64(j)*step)%n]
		}

		score := confidence - float64(i)*confidenceStep
		if score < 0 {
			score = 0
		}

		drafts = append(drafts, dto.VariantDraft{
			VariantType:     variantType,
			NativeScript:    joinNative(picked),
			Romanization:    romanize(input.TargetLanguage, picked),
			Meaning:         meaningOf(picked),
			Pronunciation:   pronounce(picked),
			CulturalNotes:   fmt.Sprintf("%s A %s rendering of %s.", notes, variantType, strings.TrimSpace(input.OriginalName)),
			ConfidenceScore: score,
		})
	}

	return drafts, nil
}

func joinNative(glyphs []glyph) string {
	var b strings.Builder
	for _, g := range glyphs {
		b.WriteString(g.native)
	}
	return b.String()
}

// Chinese romanization keeps one syllable per glyph, Japanese reads as one word.
func romanize(language string, glyphs []glyph) string {
	parts := make([]string, len(glyphs))
	for i, g := range glyphs {
		parts[i] = g.roman
	}
	if language == shared.LanguageChinese {
		return strings.Join(parts, " ")
	}
	word := strings.Join(parts, "")
	r := []rune(word)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

func meaningOf(glyphs []glyph) string {
	parts := make([]string, len(glyphs))
	for i, g := range glyphs {
		parts[i] = g.meaning
	}
	return strings.Join(parts, " + ")
}

func pronounce(glyphs []glyph) string {
	parts := make([]string, len(glyphs))
	for i, g := range glyphs {
		parts[i] = strings.ToLower(g.roman)
	}
	return strings.Join(parts, "-")
}
