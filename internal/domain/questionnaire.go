package domain

// QuestionCount is the number of questions every submission must answer.
const QuestionCount = 7

// questionnaire is the lookup table. It is never written after init;
// callers only ever see copies.
var questionnaire = []Question{
	{
		Number: 1,
		Prompt: "How do you prefer to learn new concepts?",
		Options: []Option{
			{Letter: "a", Text: "In a live classroom with direct teacher interaction", Models: []Model{StationRotation, FlippedClassroom}},
			{Letter: "b", Text: "Through self-paced online modules", Models: []Model{FlexModel, ALaCarte, EnrichedVirtual}},
			{Letter: "c", Text: "A mix of live sessions and online resources", Models: []Model{EnrichedVirtual}},
		},
	},
	{
		Number: 2,
		Prompt: "How much self-motivation do you have to complete tasks?",
		Options: []Option{
			{Letter: "a", Text: "High", Models: []Model{FlexModel, EnrichedVirtual}},
			{Letter: "b", Text: "Moderate", Models: []Model{FlippedClassroom}},
			{Letter: "c", Text: "Low", Models: []Model{StationRotation, FaceToFaceDriver}},
		},
	},
	{
		Number: 3,
		Prompt: "How comfortable are you with technology?",
		Options: []Option{
			{Letter: "a", Text: "Very comfortable", Models: []Model{FlexModel, ALaCarte, EnrichedVirtual}},
			{Letter: "b", Text: "Somewhat comfortable", Models: []Model{EnrichedVirtual, FlippedClassroom}},
			{Letter: "c", Text: "Not comfortable", Models: []Model{FaceToFaceDriver}},
		},
	},
	{
		Number: 4,
		Prompt: "Does the content involve hands-on activities or labs?",
		Options: []Option{
			{Letter: "a", Text: "Yes", Models: []Model{LabRotation}},
			{Letter: "b", Text: "No", Models: []Model{FlexModel, FlippedClassroom, EnrichedVirtual}},
		},
	},
	{
		Number: 5,
		Prompt: "Is the subject theoretical or skills-based?",
		Options: []Option{
			{Letter: "a", Text: "Mostly theoretical", Models: []Model{EnrichedVirtual, FlippedClassroom}},
			{Letter: "b", Text: "Mostly skills-based", Models: []Model{LabRotation, StationRotation}},
		},
	},
	{
		Number: 6,
		Prompt: "Does the content require real-time collaboration?",
		Options: []Option{
			{Letter: "a", Text: "Frequently", Models: []Model{StationRotation, FlippedClassroom}},
			{Letter: "b", Text: "Occasionally", Models: []Model{EnrichedVirtual}},
			{Letter: "c", Text: "Rarely", Models: []Model{FlexModel, EnrichedVirtual}},
		},
	},
	{
		Number: 7,
		Prompt: "How important is flexibility?",
		Options: []Option{
			{Letter: "a", Text: "Gaining theoretical knowledge", Models: []Model{FlexModel, ALaCarte}},
			{Letter: "b", Text: "Developing practical skills", Models: []Model{FlippedClassroom, EnrichedVirtual}},
			{Letter: "c", Text: "Preparing for exams or certifications", Models: []Model{StationRotation, FaceToFaceDriver}},
		},
	},
}

// Questionnaire returns a copy of every question, in order.
func Questionnaire() []Question {
	out := make([]Question, len(questionnaire))
	for i, q := range questionnaire {
		out[i] = copyQuestion(q)
	}
	return out
}

// LookupQuestion returns a copy of question n (1-based).
func LookupQuestion(n int) (Question, bool) {
	if n < 1 || n > len(questionnaire) {
		return Question{}, false
	}
	return copyQuestion(questionnaire[n-1]), true
}

// Endorsements returns the models endorsed by answering letter to question n.
// The second result is false when the question or letter is unknown.
func Endorsements(n int, letter string) ([]Model, bool) {
	if n < 1 || n > len(questionnaire) {
		return nil, false
	}
	for _, opt := range questionnaire[n-1].Options {
		if opt.Letter == letter {
			return append([]Model(nil), opt.Models...), true
		}
	}
	return nil, false
}

// ValidAnswer reports whether letter is one of question n's options.
func ValidAnswer(n int, letter string) bool {
	_, ok := Endorsements(n, letter)
	return ok
}

func copyQuestion(q Question) Question {
	opts := make([]Option, len(q.Options))
	for i, o := range q.Options {
		o.Models = append([]Model(nil), o.Models...)
		opts[i] = o
	}
	q.Options = opts
	return q
}
