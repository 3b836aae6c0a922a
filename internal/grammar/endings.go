package grammar

// endingTable holds the regular endings, keyed first by ending class then
// by tense, each entry a 6-element array indexed by Person: 3 classes ×
// 3 tenses × 6 persons = 54 entries.
var endingTable = map[EndingClass]map[Tense][6]string{
	ClassAR: {
		PresentSubj:     {"e", "es", "e", "emos", "éis", "en"},
		ImperfectSubjRA: {"ra", "ras", "ra", "ramos", "rais", "ran"},
		ImperfectSubjSE: {"se", "ses", "se", "semos", "seis", "sen"},
	},
	ClassER: {
		PresentSubj:     {"a", "as", "a", "amos", "áis", "an"},
		ImperfectSubjRA: {"ra", "ras", "ra", "ramos", "rais", "ran"},
		ImperfectSubjSE: {"se", "ses", "se", "semos", "seis", "sen"},
	},
	ClassIR: {
		PresentSubj:     {"a", "as", "a", "amos", "áis", "an"},
		ImperfectSubjRA: {"ra", "ras", "ra", "ramos", "rais", "ran"},
		ImperfectSubjSE: {"se", "ses", "se", "semos", "seis", "sen"},
	},
}

// Ending returns the regular ending for (class, tense, person). It is
// total over the closed (EndingClass, Tense, Person) domain; an unknown
// combination (which cannot arise from the exported enums) returns "".
func Ending(class EndingClass, tense Tense, person Person) string {
	byTense, ok := endingTable[class]
	if !ok {
		return ""
	}
	forms, ok := byTense[tense]
	if !ok {
		return ""
	}
	return forms[person]
}
