package validate

import (
	"strings"

	"github.com/subjunctivo/learning-engine/internal/conjugate"
	"github.com/subjunctivo/learning-engine/internal/grammar"
)

// This file derives present-indicative and preterite forms used only to
// recognize mood confusion: a learner who answers with the indicative form
// of the same verb and person instead of the subjunctive. The engine's
// Tense type carries only subjunctive tenses, so these are best-effort
// derivations scoped to what the classifier actually needs, not a second
// conjugator. A verb/person this package can't confidently derive a
// comparison form for simply yields "", and the mood-confusion check is
// skipped for it, falling through to the next classification tier.

var presentIndicativeEndings = map[grammar.EndingClass][6]string{
	grammar.ClassAR: {"o", "as", "a", "amos", "áis", "an"},
	grammar.ClassER: {"o", "es", "e", "emos", "éis", "en"},
	grammar.ClassIR: {"o", "es", "e", "imos", "ís", "en"},
}

// suppletivePresentIndicative covers the handful of verbs whose present
// indicative is not a stem+ending composition at all.
var suppletivePresentIndicative = map[string][6]string{
	"ser":   {"soy", "eres", "es", "somos", "sois", "son"},
	"estar": {"estoy", "estás", "está", "estamos", "estáis", "están"},
	"ir":    {"voy", "vas", "va", "vamos", "vais", "van"},
	"haber": {"he", "has", "ha", "hemos", "habéis", "han"},
	"saber": {"sé", "sabes", "sabe", "sabemos", "sabéis", "saben"},
	"dar":   {"doy", "das", "da", "damos", "dais", "dan"},
}

func presentIndicative(v grammar.Verb, person grammar.Person) string {
	if forms, ok := suppletivePresentIndicative[v.Infinitive]; ok {
		return forms[person]
	}

	// The present-subjunctive stem for "go-verbs" (tenga, ponga, salga...)
	// is, not coincidentally, also their present-indicative 1SG stem
	// (tengo, pongo, salgo...); reuse the Conjugator rather than
	// duplicating the irregular stem data.
	if v.Irregular {
		subj1sg, err := conjugate.Conjugate(v.Infinitive, grammar.PresentSubj, grammar.FirstSg)
		if err != nil || len(subj1sg) == 0 {
			return ""
		}
		stem := subj1sg[:len(subj1sg)-1] // drop the subjunctive's final -a/-e
		if person == grammar.FirstSg {
			return stem + "o"
		}
		// Beyond 1SG, the go-verb present indicative is regular again.
		return regularStemFor(v, person) + presentIndicativeEndings[v.Class][person]
	}

	return regularStemFor(v, person) + presentIndicativeEndings[v.Class][person]
}

func regularStemFor(v grammar.Verb, person grammar.Person) string {
	base := v.Infinitive[:len(v.Infinitive)-2]
	return conjugate.ApplyStemChangeForIndicative(base, v.StemChange, person)
}

var strongPreteriteStems = map[string]bool{
	"haber": true, "estar": true, "tener": true, "poner": true, "poder": true,
	"querer": true, "venir": true, "traer": true, "saber": true, "hacer": true,
}

var strongPreteriteEndings = [6]string{"e", "iste", "o", "imos", "isteis", "ieron"}
var regularPreteriteEndingsAR = [6]string{"é", "aste", "ó", "amos", "asteis", "aron"}
var regularPreteriteEndingsEIR = [6]string{"í", "iste", "ió", "imos", "isteis", "ieron"}

var suppletivePreterite = map[string][6]string{
	"ser": {"fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"},
	"ir":  {"fui", "fuiste", "fue", "fuimos", "fuisteis", "fueron"},
	"dar": {"di", "diste", "dio", "dimos", "disteis", "dieron"},
}

func preterite(v grammar.Verb, person grammar.Person) string {
	if forms, ok := suppletivePreterite[v.Infinitive]; ok {
		return forms[person]
	}
	if strongPreteriteStems[v.Infinitive] {
		strong := strings.TrimSuffix(v.PreteriteStem3PL, "ie")
		if strong == v.PreteriteStem3PL {
			// j-stems store -e rather than -ie (traje-): drop the -e.
			strong = strings.TrimSuffix(strong, "e")
		}
		ending := strongPreteriteEndings[person]
		if strings.HasSuffix(strong, "j") && person == grammar.ThirdPl {
			ending = "eron" // trajeron, not trajieron
		}
		return strong + ending
	}
	if v.Irregular || v.IRBoot {
		// Out of scope: boot stem-changers and other non-strong
		// irregular preterites (dormir, pedir, construir, caer, conocer,
		// salir, ver...) aren't reliably derivable from the data this
		// package stores; skip rather than guess.
		return ""
	}
	stem := v.Infinitive[:len(v.Infinitive)-2]
	if v.Class == grammar.ClassAR {
		// The preterite 1SG ending -é starts with a front vowel, the same
		// orthographic trigger PRESENT_SUBJ reacts to, so -car/-gar/-zar
		// verbs take their spelling change here too (busqué, llegué,
		// empecé). No other preterite ending needs it.
		if person == grammar.FirstSg {
			stem = applyPreteriteSpelling(stem, v.Spelling)
		}
		return stem + regularPreteriteEndingsAR[person]
	}
	return stem + regularPreteriteEndingsEIR[person]
}

func applyPreteriteSpelling(stem string, rule grammar.SpellingRule) string {
	switch rule {
	case grammar.GtoGU:
		return strings.TrimSuffix(stem, "g") + "gu"
	case grammar.CtoQU:
		return strings.TrimSuffix(stem, "c") + "qu"
	case grammar.ZtoC:
		return strings.TrimSuffix(stem, "z") + "c"
	default:
		return stem
	}
}
