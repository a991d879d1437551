package service

import (
	"time"

	"exam_admin_backend/internal/model"
	"exam_admin_backend/internal/repository"
	"exam_admin_backend/internal/util"
	"exam_admin_backend/pkg/logger"
	"exam_admin_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ScoringService struct {
	Exams      *repository.ExamRepository
	Questions  *repository.QuestionRepository
	Candidates *repository.CandidateRepository
	Answers    *repository.AnswerRepository
	Results    *repository.ResultRepository
}

func NewScoringService(
	exams *repository.ExamRepository,
	questions *repository.QuestionRepository,
	candidates *repository.CandidateRepository,
	answers *repository.AnswerRepository,
	results *repository.ResultRepository,
) *ScoringService {
	return &ScoringService{
		Exams:      exams,
		Questions:  questions,
		Candidates: candidates,
		Answers:    answers,
		Results:    results,
	}
}

type ScoreCounts struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
	Skipped int `json:"skipped"`
	Wrong   int `json:"wrong"`
}

// Score counts one candidate's correct/skipped/wrong answers. Iteration is
// question-driven and matching is by order, so stale answers for deleted
// questions are ignored and order gaps are harmless. Wrong is derived as
// total − correct − skipped rather than accumulated, which keeps
// correct + skipped + wrong == total under every input.
func Score(questions []model.Question, answers []model.Answer) ScoreCounts {
	byOrder := make(map[int]model.Answer, len(answers))
	for _, a := range answers {
		byOrder[a.Order] = a
	}

	counts := ScoreCounts{Total: len(questions)}
	for _, q := range questions {
		a, ok := byOrder[q.Order]
		if !ok || a.Skipped || a.AnswerIndex == nil {
			counts.Skipped++
			continue
		}
		if *a.AnswerIndex == q.CorrectIndex {
			counts.Correct++
		}
	}

	counts.Wrong = counts.Total - counts.Correct - counts.Skipped
	return counts
}

// ScoreCandidate computes and materializes one candidate's result. The
// snapshot is a pure overwrite: rescoring replaces the previous row.
func (s *ScoringService) ScoreCandidate(exam *model.Exam, candidate *model.Candidate) (*model.Result, error) {
	questions, err := s.Questions.ListByExam(exam.Title)
	if err != nil {
		return nil, util.UpstreamErr("failed to load questions", err)
	}

	answers, err := s.Answers.ListByRegistration(candidate.RegistrationNumber)
	if err != nil {
		return nil, util.UpstreamErr("failed to load answers", err)
	}

	counts := Score(questions, answers)
	result := &model.Result{
		ExamTitle:          exam.Title,
		RegistrationNumber: candidate.RegistrationNumber,
		CandidateName:      candidate.Name,
		Total:              counts.Total,
		Correct:            counts.Correct,
		Skipped:            counts.Skipped,
		Wrong:              counts.Wrong,
		ComputedAt:         time.Now(),
	}

	if err := s.Results.Upsert(result); err != nil {
		return nil, util.UpstreamErr("failed to materialize result", err)
	}

	monitoring.ResultsMaterialized.Inc()
	return result, nil
}

// ExamScoreReport summarizes a bulk scoring run. Candidates are processed
// sequentially; one failure does not abort the rest, and the failures are
// reported by registration number instead of being swallowed.
type ExamScoreReport struct {
	ExamTitle       string         `json:"examTitle"`
	ExamDate        string         `json:"examDate"`
	TotalCandidates int            `json:"totalCandidates"`
	Scored          int            `json:"scored"`
	Failed          []string       `json:"failed"`
	Results         []model.Result `json:"results"`
}

// ScoreTodayExam scores every candidate registered to the exam scheduled on
// the server's current calendar date.
func (s *ScoringService) ScoreTodayExam() (*ExamScoreReport, error) {
	return s.ScoreExamByDate(util.Today())
}

func (s *ScoringService) ScoreExamByDate(date string) (*ExamScoreReport, error) {
	exam, err := s.Exams.FindByDate(date)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("no exam scheduled for " + date)
		}
		return nil, util.UpstreamErr("failed to look up exam", err)
	}

	candidates, err := s.Candidates.ListByExam(exam.Title)
	if err != nil {
		return nil, util.UpstreamErr("failed to load candidates", err)
	}

	report := &ExamScoreReport{
		ExamTitle:       exam.Title,
		ExamDate:        exam.ExamDate,
		TotalCandidates: len(candidates),
		Failed:          []string{},
		Results:         make([]model.Result, 0, len(candidates)),
	}

	for i := range candidates {
		result, err := s.ScoreCandidate(exam, &candidates[i])
		if err != nil {
			logger.Log.Error("scoring failed for candidate",
				zap.String("registration", candidates[i].RegistrationNumber),
				zap.Error(err))
			report.Failed = append(report.Failed, candidates[i].RegistrationNumber)
			continue
		}
		report.Scored++
		report.Results = append(report.Results, *result)
	}

	return report, nil
}

// ResultFor returns one candidate's materialized result, served from the
// cache when the snapshot is still warm.
func (s *ScoringService) ResultFor(examTitle, registrationNumber string) (*model.Result, error) {
	result, err := s.Results.GetSnapshot(examTitle, registrationNumber)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("result not found")
		}
		return nil, util.UpstreamErr("failed to load result", err)
	}
	return result, nil
}

type ExamResultGroup struct {
	ExamTitle  string         `json:"examTitle"`
	Candidates []model.Result `json:"candidates"`
}

type AggregateReport struct {
	TotalExams      int               `json:"totalExams"`
	TotalCandidates int               `json:"totalCandidates"`
	Exams           []ExamResultGroup `json:"exams"`
}

// AggregateResults reshapes every materialized snapshot into per-exam
// groups. Nothing is recomputed here.
func (s *ScoringService) AggregateResults() (*AggregateReport, error) {
	all, err := s.Results.ListAll()
	if err != nil {
		return nil, util.UpstreamErr("failed to load results", err)
	}

	report := &AggregateReport{Exams: []ExamResultGroup{}}
	index := make(map[string]int)
	for _, res := range all {
		i, ok := index[res.ExamTitle]
		if !ok {
			i = len(report.Exams)
			index[res.ExamTitle] = i
			report.Exams = append(report.Exams, ExamResultGroup{ExamTitle: res.ExamTitle})
		}
		report.Exams[i].Candidates = append(report.Exams[i].Candidates, res)
		report.TotalCandidates++
	}
	report.TotalExams = len(report.Exams)

	return report, nil
}
