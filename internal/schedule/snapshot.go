package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/subjunctivo/learning-engine/internal/grammar"
)

// snapshotHeader is the fixed, required header line. ImportState rejects
// any snapshot whose header differs.
var snapshotHeader = []string{
	"card_id", "verb", "tense", "person", "ease_factor", "interval_days",
	"repetitions", "due_at", "last_reviewed", "total_reviews",
	"correct_reviews", "average_response_ms", "mastery", "current_phase",
}

const timeLayout = time.RFC3339

// ExportState serializes every card into the tab-separated snapshot
// format, rows in lexical card_id order so two exports of the same
// state produce byte-identical output.
func (s *Scheduler) ExportState() (string, error) {
	ids := make([]CardID, 0, len(s.cards))
	for id := range s.cards {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	w.UseCRLF = false

	if err := w.Write(snapshotHeader); err != nil {
		return "", err
	}
	for _, id := range ids {
		c := s.cards[id]
		if err := w.Write(cardRecord(c)); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func cardRecord(c *Card) []string {
	lastReviewed := ""
	if !c.LastReviewed.IsZero() {
		lastReviewed = c.LastReviewed.UTC().Format(timeLayout)
	}
	return []string{
		string(c.ID),
		c.Verb,
		c.Tense.String(),
		c.Person.String(),
		strconv.FormatFloat(c.EaseFactor, 'f', 5, 64),
		strconv.Itoa(c.IntervalDays),
		strconv.Itoa(c.Repetitions),
		c.DueAt.UTC().Format(timeLayout),
		lastReviewed,
		strconv.Itoa(c.TotalReviews),
		strconv.Itoa(c.CorrectReviews),
		strconv.FormatInt(c.AverageResponseMs, 10),
		strconv.FormatFloat(c.Mastery, 'f', 5, 64),
		c.CurrentPhase.String(),
	}
}

// ImportState replaces the scheduler's state with the snapshot's
// contents. The replacement is all-or-nothing: if any record fails to
// parse, or the header doesn't match exactly, no state is mutated and a
// *CorruptSnapshotError is returned.
func (s *Scheduler) ImportState(snapshot string) error {
	r := csv.NewReader(strings.NewReader(snapshot))
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return &CorruptSnapshotError{Reason: "missing header"}
	}
	if !equalHeader(header, snapshotHeader) {
		return &CorruptSnapshotError{Reason: "header does not match expected columns"}
	}

	cards := make(map[CardID]*Card)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &CorruptSnapshotError{Reason: err.Error()}
		}
		c, parseErr := parseCardRecord(record)
		if parseErr != nil {
			return &CorruptSnapshotError{Reason: parseErr.Error()}
		}
		cards[c.ID] = c
	}

	s.cards = cards
	s.rolling = nil
	return nil
}

func equalHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func parseCardRecord(record []string) (*Card, error) {
	if len(record) != len(snapshotHeader) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(snapshotHeader), len(record))
	}

	tense, ok := grammar.ParseTense(record[2])
	if !ok {
		return nil, fmt.Errorf("unknown tense %q", record[2])
	}
	person, ok := grammar.ParsePerson(record[3])
	if !ok {
		return nil, fmt.Errorf("unknown person %q", record[3])
	}
	ease, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return nil, fmt.Errorf("ease_factor: %w", err)
	}
	intervalDays, err := strconv.Atoi(record[5])
	if err != nil {
		return nil, fmt.Errorf("interval_days: %w", err)
	}
	repetitions, err := strconv.Atoi(record[6])
	if err != nil {
		return nil, fmt.Errorf("repetitions: %w", err)
	}
	dueAt, err := time.Parse(timeLayout, record[7])
	if err != nil {
		return nil, fmt.Errorf("due_at: %w", err)
	}
	var lastReviewed time.Time
	if record[8] != "" {
		lastReviewed, err = time.Parse(timeLayout, record[8])
		if err != nil {
			return nil, fmt.Errorf("last_reviewed: %w", err)
		}
	}
	totalReviews, err := strconv.Atoi(record[9])
	if err != nil {
		return nil, fmt.Errorf("total_reviews: %w", err)
	}
	correctReviews, err := strconv.Atoi(record[10])
	if err != nil {
		return nil, fmt.Errorf("correct_reviews: %w", err)
	}
	averageResponseMs, err := strconv.ParseInt(record[11], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("average_response_ms: %w", err)
	}
	mastery, err := strconv.ParseFloat(record[12], 64)
	if err != nil {
		return nil, fmt.Errorf("mastery: %w", err)
	}
	phase, ok := ParsePhase(record[13])
	if !ok {
		return nil, fmt.Errorf("unknown current_phase %q", record[13])
	}

	return &Card{
		ID:                CardID(record[0]),
		Verb:              record[1],
		Tense:             tense,
		Person:            person,
		EaseFactor:        ease,
		IntervalDays:      intervalDays,
		Repetitions:       repetitions,
		DueAt:             dueAt,
		LastReviewed:      lastReviewed,
		TotalReviews:      totalReviews,
		CorrectReviews:    correctReviews,
		AverageResponseMs: averageResponseMs,
		Mastery:           mastery,
		CurrentPhase:      phase,
	}, nil
}
