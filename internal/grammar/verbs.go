package grammar

// regularVerbs are fully regular across every tense: no stem change, no
// spelling change, no irregular table. Conjugation is ending attachment
// to the bare infinitive stem.
var regularVerbs = map[string]Verb{
	"hablar":    {Infinitive: "hablar", Class: ClassAR},
	"trabajar":  {Infinitive: "trabajar", Class: ClassAR},
	"estudiar":  {Infinitive: "estudiar", Class: ClassAR},
	"caminar":   {Infinitive: "caminar", Class: ClassAR},
	"escuchar":  {Infinitive: "escuchar", Class: ClassAR},
	"comprar":   {Infinitive: "comprar", Class: ClassAR},
	"comer":     {Infinitive: "comer", Class: ClassER},
	"aprender":  {Infinitive: "aprender", Class: ClassER},
	"correr":    {Infinitive: "correr", Class: ClassER},
	"leer":      {Infinitive: "leer", Class: ClassER},
	"beber":     {Infinitive: "beber", Class: ClassER},
	"vender":    {Infinitive: "vender", Class: ClassER},
	"vivir":     {Infinitive: "vivir", Class: ClassIR},
	"escribir":  {Infinitive: "escribir", Class: ClassIR},
	"abrir":     {Infinitive: "abrir", Class: ClassIR},
	"decidir":   {Infinitive: "decidir", Class: ClassIR},
	"recibir":   {Infinitive: "recibir", Class: ClassIR},
	"compartir": {Infinitive: "compartir", Class: ClassIR},
}

// stemChangingVerbs carry a StemChangePattern. IRBoot is set for -IR verbs
// whose 1PL/2PL also change in PRESENT_SUBJ. Imperfect subjunctive for the
// -IR boot verbs derives from a stored preterite stem that already
// carries the weak vowel (e.g. durmie-, sintie-, pidie-) because that
// alternation is a preterite phenomenon, not a present one.
var stemChangingVerbs = map[string]Verb{
	"pensar":   {Infinitive: "pensar", Class: ClassAR, StemChange: EtoIE},
	"cerrar":   {Infinitive: "cerrar", Class: ClassAR, StemChange: EtoIE},
	"entender": {Infinitive: "entender", Class: ClassER, StemChange: EtoIE},
	"perder":   {Infinitive: "perder", Class: ClassER, StemChange: EtoIE},
	"volver":   {Infinitive: "volver", Class: ClassER, StemChange: OtoUE},
	"contar":   {Infinitive: "contar", Class: ClassAR, StemChange: OtoUE},
	"encontrar": {Infinitive: "encontrar", Class: ClassAR, StemChange: OtoUE},
	"recordar":  {Infinitive: "recordar", Class: ClassAR, StemChange: OtoUE},

	"sentir": {Infinitive: "sentir", Class: ClassIR, StemChange: EtoIE, IRBoot: true, PreteriteStem3PL: "sintie"},
	"mentir": {Infinitive: "mentir", Class: ClassIR, StemChange: EtoIE, IRBoot: true, PreteriteStem3PL: "mintie"},
	"preferir": {Infinitive: "preferir", Class: ClassIR, StemChange: EtoIE, IRBoot: true, PreteriteStem3PL: "prefirie"},

	"dormir": {Infinitive: "dormir", Class: ClassIR, StemChange: OtoUE, IRBoot: true, PreteriteStem3PL: "durmie"},
	"morir":  {Infinitive: "morir", Class: ClassIR, StemChange: OtoUE, IRBoot: true, PreteriteStem3PL: "murie"},

	"pedir":   {Infinitive: "pedir", Class: ClassIR, StemChange: EtoI, IRBoot: true, PreteriteStem3PL: "pidie"},
	"servir":  {Infinitive: "servir", Class: ClassIR, StemChange: EtoI, IRBoot: true, PreteriteStem3PL: "sirvie"},
	"repetir": {Infinitive: "repetir", Class: ClassIR, StemChange: EtoI, IRBoot: true, PreteriteStem3PL: "repitie"},
	"seguir":  {Infinitive: "seguir", Class: ClassIR, StemChange: EtoI, IRBoot: true, PreteriteStem3PL: "siguie"},
	"vestir":  {Infinitive: "vestir", Class: ClassIR, StemChange: EtoI, IRBoot: true, PreteriteStem3PL: "vistie"},

	"jugar": {Infinitive: "jugar", Class: ClassAR, StemChange: UtoUE, Spelling: GtoGU},
}

// spellingChangingVerbs carry a SpellingRule applied when PRESENT_SUBJ
// attaches an ending whose leading vowel would otherwise change the stem
// consonant's sound.
var spellingChangingVerbs = map[string]Verb{
	"buscar":   {Infinitive: "buscar", Class: ClassAR, Spelling: CtoQU},
	"sacar":    {Infinitive: "sacar", Class: ClassAR, Spelling: CtoQU},
	"explicar": {Infinitive: "explicar", Class: ClassAR, Spelling: CtoQU},
	"tocar":    {Infinitive: "tocar", Class: ClassAR, Spelling: CtoQU},
	"llegar":   {Infinitive: "llegar", Class: ClassAR, Spelling: GtoGU},
	"pagar":    {Infinitive: "pagar", Class: ClassAR, Spelling: GtoGU},
	"empezar":  {Infinitive: "empezar", Class: ClassAR, StemChange: EtoIE, Spelling: ZtoC},
	"comenzar": {Infinitive: "comenzar", Class: ClassAR, StemChange: EtoIE, Spelling: ZtoC},
	"almorzar": {Infinitive: "almorzar", Class: ClassAR, StemChange: OtoUE, Spelling: ZtoC},
	"cruzar":   {Infinitive: "cruzar", Class: ClassAR, Spelling: ZtoC},
	"averiguar": {Infinitive: "averiguar", Class: ClassAR, Spelling: GUtoGUE},
	"vencer":   {Infinitive: "vencer", Class: ClassER, Spelling: CtoZ},
	"convencer": {Infinitive: "convencer", Class: ClassER, Spelling: CtoZ},
	"construir": {Infinitive: "construir", Class: ClassIR, Spelling: ItoY, PreteriteStem3PL: "construye"},
	"huir":      {Infinitive: "huir", Class: ClassIR, Spelling: ItoY, PreteriteStem3PL: "huye"},
	"incluir":   {Infinitive: "incluir", Class: ClassIR, Spelling: ItoY, PreteriteStem3PL: "incluye"},
	"concluir":  {Infinitive: "concluir", Class: ClassIR, Spelling: ItoY, PreteriteStem3PL: "concluye"},
}

// highFrequencyIrregulars are the common irregulars difficulty level 2
// admits alongside stem-changers.
var highFrequencyIrregulars = map[string]bool{
	"ser": true, "estar": true, "ir": true, "tener": true, "hacer": true,
}

// Verbs is the full, immutable declared verb set. It is built once at
// package init by merging the three source tables above with
// irregularVerbs (irregular_verbs.go); nothing mutates
// it afterward.
var Verbs = buildVerbs()

func buildVerbs() map[string]Verb {
	out := make(map[string]Verb, len(regularVerbs)+len(stemChangingVerbs)+len(spellingChangingVerbs)+len(irregularVerbs))
	for k, v := range regularVerbs {
		out[k] = v
	}
	for k, v := range stemChangingVerbs {
		out[k] = v
	}
	for k, v := range spellingChangingVerbs {
		out[k] = v
	}
	for k, v := range irregularVerbs {
		out[k] = v
	}
	return out
}

// Lookup returns the Verb for infinitive, and whether it is declared.
func Lookup(infinitive string) (Verb, bool) {
	v, ok := Verbs[infinitive]
	return v, ok
}

// DifficultyLevel is the four-tier exercise difficulty scale.
type DifficultyLevel int

const (
	Beginner DifficultyLevel = iota + 1
	Intermediate
	Advanced
	Expert
)

// VerbsForDifficulty returns the infinitives admissible at a difficulty
// level.
func VerbsForDifficulty(level DifficultyLevel) []string {
	var out []string
	for name, v := range Verbs {
		switch level {
		case Beginner:
			if !v.Irregular && v.StemChange == NoStemChange && v.Spelling == NoSpellingChange {
				out = append(out, name)
			}
		case Intermediate:
			if !v.Irregular && v.StemChange == NoStemChange && v.Spelling == NoSpellingChange {
				out = append(out, name)
			} else if v.StemChange != NoStemChange && !v.Irregular {
				out = append(out, name)
			} else if v.Irregular && highFrequencyIrregulars[name] {
				out = append(out, name)
			}
		case Advanced, Expert:
			out = append(out, name)
		}
	}
	return out
}

// TensesForDifficulty returns the tenses a difficulty level allows.
func TensesForDifficulty(level DifficultyLevel) []Tense {
	if level == Advanced || level == Expert {
		return []Tense{PresentSubj, ImperfectSubjRA, ImperfectSubjSE}
	}
	return []Tense{PresentSubj}
}

// PersonsForDifficulty returns the persons a difficulty level allows
// (beginner restricts to the three singular persons).
func PersonsForDifficulty(level DifficultyLevel) []Person {
	if level == Beginner {
		return []Person{FirstSg, SecondSg, ThirdSg}
	}
	return Persons[:]
}

// HintsEnabled reports whether hints default to on for a difficulty level.
func HintsEnabled(level DifficultyLevel) bool {
	return level == Beginner || level == Intermediate
}
