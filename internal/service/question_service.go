package service

import (
	"strings"

	"exam_admin_backend/internal/model"
	"exam_admin_backend/internal/repository"
	"exam_admin_backend/internal/util"

	"gorm.io/gorm"
)

const optionCount = 4

type QuestionService struct {
	Exams     *repository.ExamRepository
	Questions *repository.QuestionRepository
}

func NewQuestionService(exams *repository.ExamRepository, questions *repository.QuestionRepository) *QuestionService {
	return &QuestionService{Exams: exams, Questions: questions}
}

type QuestionRequest struct {
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correctIndex"`
	Image        string   `json:"image"`
}

func validateQuestion(req QuestionRequest) error {
	if strings.TrimSpace(req.Prompt) == "" {
		return util.MissingFieldErr("prompt")
	}
	if len(req.Options) != optionCount {
		return util.InvalidFormatErr("a question must have exactly 4 options")
	}
	if req.CorrectIndex == nil {
		return util.MissingFieldErr("correctIndex")
	}
	if *req.CorrectIndex < 0 || *req.CorrectIndex >= optionCount {
		return util.InvalidFormatErr("correctIndex must be between 0 and 3")
	}
	return nil
}

// Create appends a question to an exam. Order is "current question count
// plus one", assigned once; deletions later leave gaps rather than
// renumbering, so order values are stable for answer matching.
func (s *QuestionService) Create(examTitle string, req QuestionRequest) (*model.Question, error) {
	if _, err := s.Exams.FindByTitle(examTitle); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("exam not found")
		}
		return nil, util.UpstreamErr("failed to load exam", err)
	}

	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	count, err := s.Questions.CountByExam(examTitle)
	if err != nil {
		return nil, util.UpstreamErr("failed to count questions", err)
	}

	q := &model.Question{
		ExamTitle:    examTitle,
		Prompt:       req.Prompt,
		Options:      req.Options,
		CorrectIndex: *req.CorrectIndex,
		Order:        int(count) + 1,
		Image:        req.Image,
	}
	if err := s.Questions.Create(q); err != nil {
		return nil, util.UpstreamErr("failed to create question", err)
	}
	return q, nil
}

// Update replaces prompt, options, correct index and image. Order is never
// touched by an update.
func (s *QuestionService) Update(id uint, req QuestionRequest) (*model.Question, error) {
	q, err := s.Questions.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("question not found")
		}
		return nil, util.UpstreamErr("failed to load question", err)
	}

	if err := validateQuestion(req); err != nil {
		return nil, err
	}

	q.Prompt = req.Prompt
	q.Options = req.Options
	q.CorrectIndex = *req.CorrectIndex
	q.Image = req.Image

	if err := s.Questions.Save(q); err != nil {
		return nil, util.UpstreamErr("failed to update question", err)
	}
	return q, nil
}

func (s *QuestionService) Delete(id uint) error {
	if _, err := s.Questions.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.NotFoundErr("question not found")
		}
		return util.UpstreamErr("failed to load question", err)
	}
	if err := s.Questions.Delete(id); err != nil {
		return util.UpstreamErr("failed to delete question", err)
	}
	return nil
}

func (s *QuestionService) ListByExam(examTitle string) ([]model.Question, error) {
	qs, err := s.Questions.ListByExam(examTitle)
	if err != nil {
		return nil, util.UpstreamErr("failed to list questions", err)
	}
	return qs, nil
}

// CandidateQuestion is the exam-taking view of a question: everything the
// client needs except the correct index.
type CandidateQuestion struct {
	ID      uint     `json:"id"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
	Order   int      `json:"order"`
	Image   string   `json:"image,omitempty"`
}

func (s *QuestionService) ListForCandidate(examTitle string) ([]CandidateQuestion, error) {
	qs, err := s.ListByExam(examTitle)
	if err != nil {
		return nil, err
	}

	out := make([]CandidateQuestion, len(qs))
	for i, q := range qs {
		out[i] = CandidateQuestion{
			ID:      q.ID,
			Prompt:  q.Prompt,
			Options: q.Options,
			Order:   q.Order,
			Image:   q.Image,
		}
	}
	return out, nil
}
