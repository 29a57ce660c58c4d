package normalize

import "strings"

// equipmentSynonyms maps Swedish and alternate spellings onto canonical tags.
var equipmentSynonyms = map[string]string{
	"panoramatak":         "panorama_roof",
	"panoramic_roof":      "panorama_roof",
	"glastak":             "panorama_roof",
	"ventilerade_säten":   "ventilated_seats",
	"ventilerade_stolar":  "ventilated_seats",
	"kylda_säten":         "ventilated_seats",
	"hud":                 "head_up_display",
	"head_up":             "head_up_display",
	"headup_display":      "head_up_display",
	"läderklädsel":        "leather_seats",
	"läder":               "leather_seats",
	"skinnklädsel":        "leather_seats",
	"leather":             "leather_seats",
	"luftfjädring":        "air_suspension",
	"massagestolar":       "massage_seats",
	"massage":             "massage_seats",
	"massagefunktion":     "massage_seats",
	"b_o":                 "bang_olufsen",
	"b_w":                 "bowers_wilkins",
	"bowers_and_wilkins":  "bowers_wilkins",
	"bang_and_olufsen":    "bang_olufsen",
	"harman_kardon_ljud":  "harman_kardon",
	"burmester_surround":  "burmester",
	"mark_levinson_audio": "mark_levinson",
}

// premiumEquipment is the canonical tag set counted as premium equipment.
var premiumEquipment = map[string]struct{}{
	"panorama_roof":    {},
	"ventilated_seats": {},
	"head_up_display":  {},
	"harman_kardon":    {},
	"bowers_wilkins":   {},
	"burmester":        {},
	"bang_olufsen":     {},
	"mark_levinson":    {},
	"leather_seats":    {},
	"air_suspension":   {},
	"massage_seats":    {},
}

// EquipmentTag canonicalizes a free-text equipment tag: lower case, trimmed,
// separators collapsed to "_", and known synonyms resolved.
func EquipmentTag(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("&", "_", "-", "_", " ", "_", "/", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "_")

	if canon, ok := equipmentSynonyms[s]; ok {
		return canon
	}
	return s
}

// IsPremium reports whether a raw tag belongs to the premium equipment set.
func IsPremium(raw string) bool {
	_, ok := premiumEquipment[EquipmentTag(raw)]
	return ok
}

// PremiumCount returns how many distinct premium items appear in tags.
func PremiumCount(tags []string) int {
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		tag := EquipmentTag(t)
		if _, ok := premiumEquipment[tag]; !ok {
			continue
		}
		seen[tag] = struct{}{}
	}
	return len(seen)
}
