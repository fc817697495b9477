package domain

import (
	"fmt"
	"strconv"
)

// Model is a blended learning delivery format.
type Model string

const (
	StationRotation    Model = "Station Rotation"
	LabRotation        Model = "Lab Rotation"
	IndividualRotation Model = "Individual Rotation"
	FlippedClassroom   Model = "Flipped Classroom"
	FlexModel          Model = "Flex Model"
	ALaCarte           Model = "A La Carte"
	EnrichedVirtual    Model = "Enriched Virtual"
	FaceToFaceDriver   Model = "Face-to-Face Driver"
)

// Models lists every known model label.
func Models() []Model {
	return []Model{
		StationRotation,
		LabRotation,
		IndividualRotation,
		FlippedClassroom,
		FlexModel,
		ALaCarte,
		EnrichedVirtual,
		FaceToFaceDriver,
	}
}

// Option is one selectable answer for a question.
type Option struct {
	Letter string  `json:"letter"`
	Text   string  `json:"text"`
	Models []Model `json:"-"`
}

// Question is one of the fixed questionnaire slots, numbered from 1.
type Question struct {
	Number  int      `json:"number"`
	Prompt  string   `json:"prompt"`
	Options []Option `json:"options"`
}

// RecommendationEntry is a ranked model with its share of the selected votes.
type RecommendationEntry struct {
	Model   Model   `json:"model"`
	Votes   int     `json:"votes"`
	Percent float64 `json:"percent"` // one decimal
}

// String renders the entry as "Flex Model (42.9%)".
func (e RecommendationEntry) String() string {
	return fmt.Sprintf("%s (%s%%)", e.Model, strconv.FormatFloat(e.Percent, 'f', 1, 64))
}

// Recommendation is the ordered top models, highest first. Empty is valid.
type Recommendation struct {
	Entries []RecommendationEntry `json:"entries"`
}

// Lines renders each entry on its own line.
func (r Recommendation) Lines() []string {
	lines := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		lines = append(lines, e.String())
	}
	return lines
}

// Progress reports how far a respondent is through the questionnaire.
type Progress struct {
	SessionID string `json:"sessionId"`
	Answered  []int  `json:"answered"`
	Remaining int    `json:"remaining"`
}

// Complete reports whether every question has an answer.
func (p Progress) Complete() bool {
	return p.Remaining == 0
}
