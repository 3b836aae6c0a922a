package grammar

// Triggers is the WEIRDO catalog: at least one entry per category, each
// with one or more sentence templates carrying exactly one {V} blank and
// one {P} subject slot. The subject slot is the subject of the
// subordinate (subjunctive) clause, since that is the slot whose
// person/number actually governs conjugation.
var Triggers = []Trigger{
	{
		Category: Wishes,
		Phrase:   "querer que",
		Templates: []string{
			"Quiero que {P} {V} la verdad.",
			"Espero que {P} {V} pronto.",
		},
	},
	{
		Category:  Wishes,
		Phrase:    "desear que",
		Templates: []string{"Deseamos que {P} {V} feliz."},
	},
	{
		Category:  Emotions,
		Phrase:    "alegrarse de que",
		Templates: []string{"Me alegro de que {P} {V} aquí."},
	},
	{
		Category:  Emotions,
		Phrase:    "temer que",
		Templates: []string{"Temo que {P} no {V} a tiempo."},
	},
	{
		Category:  Emotions,
		Phrase:    "sentir que",
		Templates: []string{"Siento mucho que {P} {V} tan ocupado."},
	},
	{
		Category:      Impersonal,
		Phrase:        "es importante que",
		Templates:     []string{"Es importante que {P} {V} la tarea."},
		ForceTense:    PresentSubj,
		HasForceTense: true,
	},
	{
		Category:  Impersonal,
		Phrase:    "es necesario que",
		Templates: []string{"Es necesario que {P} {V} el informe."},
	},
	{
		Category:  Impersonal,
		Phrase:    "es posible que",
		Templates: []string{"Es posible que {P} {V} mañana."},
	},
	{
		Category:  Recommendations,
		Phrase:    "recomendar que",
		Templates: []string{"Te recomiendo que {P} {V} más despacio."},
	},
	{
		Category:  Recommendations,
		Phrase:    "sugerir que",
		Templates: []string{"Sugiero que {P} {V} antes de las ocho."},
	},
	{
		Category:  Recommendations,
		Phrase:    "aconsejar que",
		Templates: []string{"Te aconsejo que {P} {V} con cuidado."},
	},
	{
		Category:  DoubtDenial,
		Phrase:    "dudar que",
		Templates: []string{"Dudo que {P} {V} la verdad."},
	},
	{
		Category:  DoubtDenial,
		Phrase:    "no creer que",
		Templates: []string{"No creo que {P} {V} razón."},
	},
	{
		Category:  DoubtDenial,
		Phrase:    "negar que",
		Templates: []string{"Niega que {P} {V} el dinero."},
	},
	{
		Category: Ojala,
		Phrase:   "ojalá",
		Templates: []string{
			"Ojalá que {P} {V} bien en el examen.",
			"Ojalá {P} {V} mañana.",
		},
	},
}

// TriggersByCategory returns the trigger catalog entries for a single
// category.
func TriggersByCategory(c TriggerCategory) []Trigger {
	var out []Trigger
	for _, t := range Triggers {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// CategoryWeights is the weighted-selection table used when the caller
// does not request a specific category. OJALÁ carries no weight: it is a
// sixth WEIRDO category available only on explicit request, kept out of
// the five-way weighted split.
var CategoryWeights = map[TriggerCategory]float64{
	Wishes:          0.30,
	Emotions:        0.30,
	Recommendations: 0.15,
	Impersonal:      0.15,
	DoubtDenial:     0.10,
	Ojala:           0.0,
}
