// Package conjugate implements a total, deterministic function from
// (verb, tense, person) to a subjunctive form, built entirely on top of
// the static data in internal/grammar.
package conjugate

import (
	"strings"

	"github.com/subjunctivo/learning-engine/internal/grammar"
)

// Conjugate returns the subjunctive form for (verb, tense, person) by:
//
//  1. explicit irregular-table lookup
//  2. stem derivation (present-1sg stem for PRESENT_SUBJ, 3PL preterite
//     stem for the imperfect tenses), with stem-change pattern applied
//  3. spelling-change rule applied to the stem
//  4. ending attachment
//
// It returns an *UnknownVerbError for any verb outside the declared set
// in internal/grammar; it never fails for a declared verb.
func Conjugate(verb string, tense grammar.Tense, person grammar.Person) (string, error) {
	v, ok := grammar.Lookup(verb)
	if !ok {
		return "", &UnknownVerbError{Verb: verb}
	}
	return conjugateVerb(v, tense, person), nil
}

// FullTable returns every person's form for (verb, tense).
func FullTable(verb string, tense grammar.Tense) (map[grammar.Person]string, error) {
	v, ok := grammar.Lookup(verb)
	if !ok {
		return nil, &UnknownVerbError{Verb: verb}
	}
	out := make(map[grammar.Person]string, 6)
	for _, p := range grammar.Persons {
		out[p] = conjugateVerb(v, tense, p)
	}
	return out, nil
}

func conjugateVerb(v grammar.Verb, tense grammar.Tense, person grammar.Person) string {
	if form, ok := v.Table[grammar.TenseParadigm{Tense: tense, Person: person}]; ok {
		return form
	}

	stem := Stem(v, tense, person)
	ending := grammar.Ending(v.Class, tense, person)
	return stem + ending
}

// Stem computes the stem a regular ending attaches to for (verb, tense,
// person), applying stem-change and spelling-change rules along the way.
// It is exported so the Validator can reason about "stem correct, ending
// wrong" vs. "stem wrong" without recomputing this logic.
func Stem(v grammar.Verb, tense grammar.Tense, person grammar.Person) string {
	if tense == grammar.PresentSubj {
		base := v.Present1SGStem
		if base == "" {
			base = infinitiveStem(v.Infinitive)
		}
		base = applyStemChange(base, v.StemChange, v.IRBoot, person)
		base = applySpelling(base, v.Spelling)
		return base
	}

	// Both imperfect tenses derive from the 3PL preterite stem.
	base := v.PreteriteStem3PL
	if base == "" {
		base = regularPreteriteStem(v)
	}
	if person == grammar.FirstPl {
		base = accentLastVowel(base)
	}
	return base
}

func infinitiveStem(infinitive string) string {
	if len(infinitive) < 2 {
		return infinitive
	}
	return infinitive[:len(infinitive)-2]
}

// regularPreteriteStem derives the 3PL preterite stem for a verb with no
// preterite irregularity: -AR verbs insert -a- (hablar -> hablaron ->
// "habla"), -ER/-IR verbs insert -ie- (comer -> comieron -> "comie").
func regularPreteriteStem(v grammar.Verb) string {
	stem := infinitiveStem(v.Infinitive)
	if v.Class == grammar.ClassAR {
		return stem + "a"
	}
	return stem + "ie"
}

// applyStemChange applies v's stem-change pattern to base for the given
// person, honoring the -IR "boot" rule: -IR verbs whose pattern is
// EtoIE/OtoUE use the weak vowel (e→i / o→u) rather than leaving the stem
// unchanged in 1PL/2PL, while -AR/-ER stem-changers leave 1PL/2PL
// unchanged.
func applyStemChange(base string, pattern grammar.StemChangePattern, irBoot bool, person grammar.Person) string {
	weak := person == grammar.FirstPl || person == grammar.SecondPl

	switch pattern {
	case grammar.EtoIE:
		if weak {
			if irBoot {
				return replaceLastVowel(base, 'e', "i")
			}
			return base
		}
		return replaceLastVowel(base, 'e', "ie")
	case grammar.OtoUE:
		if weak {
			if irBoot {
				return replaceLastVowel(base, 'o', "u")
			}
			return base
		}
		return replaceLastVowel(base, 'o', "ue")
	case grammar.EtoI:
		// -IR e→i verbs change in every person, including 1PL/2PL.
		return replaceLastVowel(base, 'e', "i")
	case grammar.UtoUE:
		if weak {
			return base
		}
		return replaceLastVowel(base, 'u', "ue")
	default:
		return base
	}
}

// ApplyStemChangeForIndicative applies pattern to base the way the present
// indicative does: strong vowel in 1SG/2SG/3SG/3PL, stem left unchanged in
// 1PL/2PL, with no exceptions. This differs from the subjunctive's EtoI
// pattern, where the weak and strong vowels coincide (pidamos, not
// pedamos) — the present indicative still keeps the unchanged stem in
// 1PL/2PL for that pattern (pedimos, not pidimos).
func ApplyStemChangeForIndicative(base string, pattern grammar.StemChangePattern, person grammar.Person) string {
	weak := person == grammar.FirstPl || person == grammar.SecondPl
	if weak {
		return base
	}
	switch pattern {
	case grammar.EtoIE, grammar.EtoI:
		return replaceLastVowel(base, 'e', strongVowelFor(pattern))
	case grammar.OtoUE:
		return replaceLastVowel(base, 'o', "ue")
	case grammar.UtoUE:
		return replaceLastVowel(base, 'u', "ue")
	default:
		return base
	}
}

func strongVowelFor(pattern grammar.StemChangePattern) string {
	if pattern == grammar.EtoI {
		return "i"
	}
	return "ie"
}

// replaceLastVowel replaces the last occurrence of from in base with to.
// If from does not occur, base is returned unchanged.
func replaceLastVowel(base string, from rune, to string) string {
	idx := strings.LastIndexByte(base, byte(from))
	if idx < 0 {
		return base
	}
	return base[:idx] + to + base[idx+1:]
}

// applySpelling applies v's orthographic adjustment to the stem's final
// consonant(s), run whenever PRESENT_SUBJ attaches an ending whose
// leading vowel would otherwise change the stem's pronunciation.
func applySpelling(stem string, rule grammar.SpellingRule) string {
	switch rule {
	case grammar.GtoGU:
		return strings.TrimSuffix(stem, "g") + "gu"
	case grammar.CtoQU:
		return strings.TrimSuffix(stem, "c") + "qu"
	case grammar.ZtoC:
		return strings.TrimSuffix(stem, "z") + "c"
	case grammar.GUtoGUE:
		return strings.TrimSuffix(stem, "gu") + "gü"
	case grammar.CtoZ:
		return strings.TrimSuffix(stem, "c") + "z"
	case grammar.ItoY:
		return stem + "y"
	default:
		return stem
	}
}

// accentLastVowel adds a written accent to the last unaccented vowel in
// stem. It implements the rule that 1PL imperfect subjunctive forms
// always carry a written accent on the syllable preceding -ramos/-semos
// (e.g. hablar -> habla -> habláramos), regardless of how long the stem
// is.
func accentLastVowel(stem string) string {
	accented := map[byte]string{'a': "á", 'e': "é", 'i': "í", 'o': "ó", 'u': "ú"}
	for i := len(stem) - 1; i >= 0; i-- {
		if repl, ok := accented[stem[i]]; ok {
			return stem[:i] + repl + stem[i+1:]
		}
	}
	return stem
}
