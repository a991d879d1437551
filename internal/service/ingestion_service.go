package service

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"exam_admin_backend/internal/model"
	"exam_admin_backend/internal/repository"
	"exam_admin_backend/internal/util"
	"exam_admin_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// IngestionService is the single write path for candidate answers. The four
// submission surfaces (individual, bulk, timeout, completion) all funnel
// through the same normalization and upsert code, differing only in their
// provenance tag and pre-filter.
type IngestionService struct {
	Answers    *repository.AnswerRepository
	Candidates *repository.CandidateRepository
}

func NewIngestionService(answers *repository.AnswerRepository, candidates *repository.CandidateRepository) *IngestionService {
	return &IngestionService{Answers: answers, Candidates: candidates}
}

// AnswerSubmission is one raw tuple from any submission path. Answer is kept
// raw so "field absent" and "field null" stay distinguishable: an explicit
// null is a recorded skip, an absent field is a client error, and 0 is a
// perfectly valid first-option answer.
type AnswerSubmission struct {
	RegistrationNumber string          `json:"registrationNumber"`
	QuestionID         string          `json:"questionId"`
	Answer             json.RawMessage `json:"answer"`
	ExamName           string          `json:"examName"`
	Order              int             `json:"order"`
	Skipped            bool            `json:"skipped"`
}

// SubmissionFilter decides whether an entry is written at all.
type SubmissionFilter func(AnswerSubmission) bool

// AllSubmissions writes every entry, including explicit skips.
func AllSubmissions(AnswerSubmission) bool { return true }

// AttemptedOnly drops skips and null answers. The timeout path uses it: a
// timeout records only what the candidate actually attempted.
func AttemptedOnly(s AnswerSubmission) bool {
	return !s.Skipped && answerPresent(s.Answer) && !answerIsNull(s.Answer)
}

// NormalizeQuestionID prepends the "Q" marker only when absent, so "5" and
// "Q5" address the same stored slot on every submission path.
func NormalizeQuestionID(id string) string {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, "Q") {
		return id
	}
	return "Q" + id
}

func answerPresent(raw json.RawMessage) bool {
	return len(raw) > 0
}

func answerIsNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

// parseAnswerIndex coerces a non-skip answer value to its integer option
// index. Both JSON numbers and numeric strings are accepted.
func parseAnswerIndex(raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v, nil
		}
	}
	return 0, util.InvalidFormatErr("answer must be an integer option index")
}

// toAnswer turns a submission into its stored form: canonical question key,
// coerced value, write timestamp and provenance tag.
func (s *IngestionService) toAnswer(sub AnswerSubmission, source string) (model.Answer, error) {
	a := model.Answer{
		RegistrationNumber: strings.TrimSpace(sub.RegistrationNumber),
		QuestionKey:        NormalizeQuestionID(sub.QuestionID),
		Order:              sub.Order,
		ExamName:           sub.ExamName,
		Source:             source,
		RecordedAt:         time.Now(),
	}

	if sub.Skipped || answerIsNull(sub.Answer) {
		a.Skipped = true
		return a, nil
	}

	idx, err := parseAnswerIndex(sub.Answer)
	if err != nil {
		return model.Answer{}, err
	}
	a.AnswerIndex = &idx
	return a, nil
}

// SaveIndividual handles the single-answer path. Validation mirrors the
// historical contract: registrationNumber, questionId, answer and examName
// must all be present, where "present" for answer means the field exists.
// An explicit null (a skip) and an index of 0 both pass.
func (s *IngestionService) SaveIndividual(sub AnswerSubmission) (*model.Answer, error) {
	switch {
	case strings.TrimSpace(sub.RegistrationNumber) == "":
		return nil, util.MissingFieldErr("registrationNumber")
	case strings.TrimSpace(sub.QuestionID) == "":
		return nil, util.MissingFieldErr("questionId")
	case !answerPresent(sub.Answer):
		return nil, util.MissingFieldErr("answer")
	case strings.TrimSpace(sub.ExamName) == "":
		return nil, util.MissingFieldErr("examName")
	}

	a, err := s.toAnswer(sub, model.SourceIndividual)
	if err != nil {
		return nil, err
	}
	if err := s.Answers.Upsert(&a); err != nil {
		return nil, util.UpstreamErr("failed to save answer", err)
	}

	monitoring.AnswersIngested.WithLabelValues(model.SourceIndividual).Inc()
	return &a, nil
}

// SaveBatch writes every entry passing the filter, each independently
// normalized. Returns the number of records written.
func (s *IngestionService) SaveBatch(subs []AnswerSubmission, source string, filter SubmissionFilter) (int, error) {
	answers := make([]model.Answer, 0, len(subs))
	for _, sub := range subs {
		if !filter(sub) {
			continue
		}
		a, err := s.toAnswer(sub, source)
		if err != nil {
			return 0, err
		}
		answers = append(answers, a)
	}

	if len(answers) == 0 {
		return 0, nil
	}
	if err := s.Answers.UpsertBatch(answers); err != nil {
		return 0, util.UpstreamErr("failed to save answers", err)
	}

	monitoring.AnswersIngested.WithLabelValues(source).Add(float64(len(answers)))
	return len(answers), nil
}

// Complete is the only path that also mutates candidate state: the final
// answer batch and the submitted flag are committed atomically.
func (s *IngestionService) Complete(registrationNumber, examName string, subs []AnswerSubmission) (int, error) {
	if strings.TrimSpace(registrationNumber) == "" {
		return 0, util.MissingFieldErr("registrationNumber")
	}
	if strings.TrimSpace(examName) == "" {
		return 0, util.MissingFieldErr("examName")
	}

	if _, err := s.Candidates.FindByRegistration(registrationNumber); err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, util.NotFoundErr("candidate not found")
		}
		return 0, util.UpstreamErr("failed to load candidate", err)
	}

	answers := make([]model.Answer, 0, len(subs))
	for _, sub := range subs {
		sub.RegistrationNumber = registrationNumber
		if sub.ExamName == "" {
			sub.ExamName = examName
		}
		a, err := s.toAnswer(sub, model.SourceCompletion)
		if err != nil {
			return 0, err
		}
		answers = append(answers, a)
	}

	if err := s.Answers.CompleteWithSubmit(registrationNumber, answers); err != nil {
		return 0, util.UpstreamErr("failed to complete exam", err)
	}

	monitoring.AnswersIngested.WithLabelValues(model.SourceCompletion).Add(float64(len(answers)))
	return len(answers), nil
}

// AnswersFor returns the raw stored answers for one registration.
func (s *IngestionService) AnswersFor(registrationNumber string) ([]model.Answer, error) {
	if strings.TrimSpace(registrationNumber) == "" {
		return nil, util.MissingFieldErr("registrationId")
	}
	answers, err := s.Answers.ListByRegistration(registrationNumber)
	if err != nil {
		return nil, util.UpstreamErr("failed to load answers", err)
	}
	return answers, nil
}
