package grammar

// This file stores the precomputed irregular tables for a core set of
// high-frequency irregular verbs: ser, estar, ir, haber, dar, saber, ver,
// hacer, tener, poner, poder, querer, venir, salir, traer, caer, conocer.
// Each carries PRESENT_SUBJ for all six persons directly; most derive
// their imperfect forms from a stored 3PL preterite stem (see
// conjugate.Stem), except ver and dar, whose tables store every tense, so
// the Conjugator's table lookup returns their forms without derivation.
//
// Grouping mirrors cv-go-inflect/internal/inflect/irregular_verbs.go: verbs
// with similar behavior are clustered with a one-line banner, not one
// comment per entry.

func presentSubjTable(forms [6]string) map[TenseParadigm]string {
	t := make(map[TenseParadigm]string, 6)
	for i, p := range Persons {
		t[TenseParadigm{Tense: PresentSubj, Person: p}] = forms[i]
	}
	return t
}

func mergeTables(tables ...map[TenseParadigm]string) map[TenseParadigm]string {
	out := make(map[TenseParadigm]string)
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}

func fullTenseTable(tense Tense, forms [6]string) map[TenseParadigm]string {
	t := make(map[TenseParadigm]string, 6)
	for i, p := range Persons {
		t[TenseParadigm{Tense: tense, Person: p}] = forms[i]
	}
	return t
}

// irregularVerbs is the closed set of fully-tabulated irregular verbs.
// Registered into Verbs (verbs.go) at package init.
var irregularVerbs = map[string]Verb{
	"ser": {
		Infinitive: "ser", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "fue",
		Table:            presentSubjTable([6]string{"sea", "seas", "sea", "seamos", "seáis", "sean"}),
	},
	"estar": {
		Infinitive: "estar", Class: ClassAR, Irregular: true,
		PreteriteStem3PL: "estuvie",
		Table:            presentSubjTable([6]string{"esté", "estés", "esté", "estemos", "estéis", "estén"}),
	},
	"ir": {
		Infinitive: "ir", Class: ClassIR, Irregular: true,
		PreteriteStem3PL: "fue",
		Table:            presentSubjTable([6]string{"vaya", "vayas", "vaya", "vayamos", "vayáis", "vayan"}),
	},
	"haber": {
		Infinitive: "haber", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "hubie",
		Table:            presentSubjTable([6]string{"haya", "hayas", "haya", "hayamos", "hayáis", "hayan"}),
	},
	// dar and ver are fully stored across all three tenses: the Conjugator
	// never attempts stem derivation for them.
	"dar": {
		Infinitive: "dar", Class: ClassAR, Irregular: true,
		Table: mergeTables(
			fullTenseTable(PresentSubj, [6]string{"dé", "des", "dé", "demos", "deis", "den"}),
			fullTenseTable(ImperfectSubjRA, [6]string{"diera", "dieras", "diera", "diéramos", "dierais", "dieran"}),
			fullTenseTable(ImperfectSubjSE, [6]string{"diese", "dieses", "diese", "diésemos", "dieseis", "diesen"}),
		),
	},
	"ver": {
		Infinitive: "ver", Class: ClassER, Irregular: true,
		Table: mergeTables(
			fullTenseTable(PresentSubj, [6]string{"vea", "veas", "vea", "veamos", "veáis", "vean"}),
			fullTenseTable(ImperfectSubjRA, [6]string{"viera", "vieras", "viera", "viéramos", "vierais", "vieran"}),
			fullTenseTable(ImperfectSubjSE, [6]string{"viese", "vieses", "viese", "viésemos", "vieseis", "viesen"}),
		),
	},
	"saber": {
		Infinitive: "saber", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "supie",
		Table:            presentSubjTable([6]string{"sepa", "sepas", "sepa", "sepamos", "sepáis", "sepan"}),
	},
	"hacer": {
		Infinitive: "hacer", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "hicie",
		Table:            presentSubjTable([6]string{"haga", "hagas", "haga", "hagamos", "hagáis", "hagan"}),
	},
	"tener": {
		Infinitive: "tener", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "tuvie",
		Table:            presentSubjTable([6]string{"tenga", "tengas", "tenga", "tengamos", "tengáis", "tengan"}),
	},
	"poner": {
		Infinitive: "poner", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "pusie",
		Table:            presentSubjTable([6]string{"ponga", "pongas", "ponga", "pongamos", "pongáis", "pongan"}),
	},
	// poder and querer are tabulated like the other irregulars above, but
	// unlike those, their PRESENT_SUBJ table still reflects a genuine
	// stem-vowel alternation (o→ue, e→ie) rather than a suppletive or
	// go-verb-style form, so StemChange is set too: the Validator's
	// STEM_CHANGE_MISSING tier (internal/validate) uses it independently
	// of which table the Conjugator actually reads the form from.
	"poder": {
		Infinitive: "poder", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "pudie", StemChange: OtoUE,
		Table: presentSubjTable([6]string{"pueda", "puedas", "pueda", "podamos", "podáis", "puedan"}),
	},
	"querer": {
		Infinitive: "querer", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "quisie", StemChange: EtoIE,
		Table: presentSubjTable([6]string{"quiera", "quieras", "quiera", "queramos", "queráis", "quieran"}),
	},
	"venir": {
		Infinitive: "venir", Class: ClassIR, Irregular: true,
		PreteriteStem3PL: "vinie",
		Table:            presentSubjTable([6]string{"venga", "vengas", "venga", "vengamos", "vengáis", "vengan"}),
	},
	"salir": {
		Infinitive: "salir", Class: ClassIR, Irregular: true,
		PreteriteStem3PL: "salie",
		Table:            presentSubjTable([6]string{"salga", "salgas", "salga", "salgamos", "salgáis", "salgan"}),
	},
	"traer": {
		Infinitive: "traer", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "traje",
		Table:            presentSubjTable([6]string{"traiga", "traigas", "traiga", "traigamos", "traigáis", "traigan"}),
	},
	"caer": {
		Infinitive: "caer", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "caye",
		Table:            presentSubjTable([6]string{"caiga", "caigas", "caiga", "caigamos", "caigáis", "caigan"}),
	},
	"conocer": {
		Infinitive: "conocer", Class: ClassER, Irregular: true,
		PreteriteStem3PL: "conocie",
		Table:            presentSubjTable([6]string{"conozca", "conozcas", "conozca", "conozcamos", "conozcáis", "conozcan"}),
	},
}
