package domain

import "errors"

// userError is a constant error whose text is shown to respondents verbatim.
type userError string

func (e userError) Error() string { return string(e) }

// ErrInvalidResponseCount is returned when a submission does not hold exactly one answer per question.
const ErrInvalidResponseCount = userError("Error: Please provide exactly 7 responses (one for each question).")

var (
	// ErrSessionNotFound is returned when a questionnaire session does not exist or has expired.
	ErrSessionNotFound = errors.New("questionnaire session not found")
	// ErrQuestionNotFound indicates a question number outside 1..7.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrOptionNotFound indicates an answer letter the question does not offer.
	ErrOptionNotFound = errors.New("option not found")
	// ErrIncomplete is returned when submitting before every question is answered.
	ErrIncomplete = errors.New("please select an option for all questions")
)
