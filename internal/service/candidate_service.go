package service

import (
	"fmt"
	"strings"
	"time"

	"exam_admin_backend/internal/model"
	"exam_admin_backend/internal/repository"
	"exam_admin_backend/internal/util"

	"gorm.io/gorm"
)

type CandidateService struct {
	Candidates *repository.CandidateRepository
	Exams      *repository.ExamRepository
	Questions  *QuestionService
}

func NewCandidateService(candidates *repository.CandidateRepository, exams *repository.ExamRepository, questions *QuestionService) *CandidateService {
	return &CandidateService{Candidates: candidates, Exams: exams, Questions: questions}
}

type CandidateRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Gender      string `json:"gender"`
	DateOfBirth string `json:"dateOfBirth"`
	Address     string `json:"address"`
	ExamTitle   string `json:"examTitle"`
	PhotoURL    string `json:"photoUrl"`
}

// newRegistrationNumber derives a registration number from the current
// unix millisecond timestamp.
func newRegistrationNumber() string {
	return fmt.Sprintf("REG%d", time.Now().UnixMilli())
}

// Register creates a candidate for an exam. One registration per email per
// exam; a second attempt with the same email is rejected.
func (s *CandidateService) Register(req CandidateRequest) (*model.Candidate, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, util.MissingFieldErr("name")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, util.MissingFieldErr("email")
	}
	if strings.TrimSpace(req.ExamTitle) == "" {
		return nil, util.MissingFieldErr("examTitle")
	}
	if req.DateOfBirth != "" && !util.ValidDate(req.DateOfBirth) {
		return nil, util.InvalidFormatErr("dateOfBirth must be YYYY-MM-DD")
	}

	if _, err := s.Exams.FindByTitle(req.ExamTitle); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("exam not found")
		}
		return nil, util.UpstreamErr("failed to load exam", err)
	}

	exists, err := s.Candidates.ExistsByEmailAndExam(req.Email, req.ExamTitle)
	if err != nil {
		return nil, util.UpstreamErr("failed to check registration", err)
	}
	if exists {
		return nil, util.ConflictErr("candidate already registered for this exam")
	}

	c := &model.Candidate{
		RegistrationNumber: newRegistrationNumber(),
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Gender:             req.Gender,
		DateOfBirth:        req.DateOfBirth,
		Address:            req.Address,
		ExamTitle:          req.ExamTitle,
		PhotoURL:           req.PhotoURL,
	}
	if err := s.Candidates.Create(c); err != nil {
		return nil, util.UpstreamErr("failed to register candidate", err)
	}
	return c, nil
}

func (s *CandidateService) Get(registrationNumber string) (*model.Candidate, error) {
	c, err := s.Candidates.FindByRegistration(registrationNumber)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("candidate not found")
		}
		return nil, util.UpstreamErr("failed to load candidate", err)
	}
	return c, nil
}

func (s *CandidateService) ListByExam(examTitle string) ([]model.Candidate, error) {
	cs, err := s.Candidates.ListByExam(examTitle)
	if err != nil {
		return nil, util.UpstreamErr("failed to list candidates", err)
	}
	return cs, nil
}

// ExamSession is what a candidate receives when their exam session opens.
type ExamSession struct {
	Candidate *model.Candidate    `json:"candidate"`
	Exam      *model.Exam         `json:"exam"`
	Questions []CandidateQuestion `json:"questions"`
}

// StartSession opens the exam for a candidate. A registration number is
// single use; once consumed, further attempts conflict. Entry before the
// exam date is also rejected.
func (s *CandidateService) StartSession(registrationNumber string) (*ExamSession, error) {
	c, err := s.Get(registrationNumber)
	if err != nil {
		return nil, err
	}
	if c.Used {
		return nil, util.ConflictErr("registration number already used")
	}

	exam, err := s.Exams.FindByTitle(c.ExamTitle)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("exam not found")
		}
		return nil, util.UpstreamErr("failed to load exam", err)
	}
	if util.DateBefore(util.Today(), exam.ExamDate) {
		return nil, util.ConflictErr("exam has not started yet")
	}

	questions, err := s.Questions.ListForCandidate(c.ExamTitle)
	if err != nil {
		return nil, err
	}

	if err := s.Candidates.MarkUsed(registrationNumber); err != nil {
		return nil, util.UpstreamErr("failed to mark registration used", err)
	}
	c.Used = true

	return &ExamSession{Candidate: c, Exam: exam, Questions: questions}, nil
}
