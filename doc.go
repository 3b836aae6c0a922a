// Package subjunctive implements the learning engine for an adaptive
// Spanish-subjunctive tutor: conjugation, answer validation, exercise
// generation, and spaced-repetition scheduling.
//
// The package has no I/O, no network access, and no persistence beyond the
// explicit snapshot format returned by [Engine.ExportState]. It is a pure
// library meant to be embedded in an outer service that owns HTTP routing,
// auth, and storage.
//
// Per-learner scheduling is exposed through [Engine], which owns one
// learner's scheduler state; the immutable grammar tables are shared
// package-wide and not held by the Engine:
//
//	form, err := subjunctive.Conjugate("hablar", subjunctive.PresentSubj, subjunctive.FirstSg)
//	e := subjunctive.New()
//	card, err := e.EnsureCard("hablar", subjunctive.PresentSubj, subjunctive.FirstSg, time.Now())
//
// Conjugate, FullTable, Validate, and Generate are package-level
// functions, since they are pure and need no per-learner state; only the
// scheduler operations require an Engine. [Engine.Generate] additionally
// feeds the Engine's own card priorities into Generate.
package subjunctive
