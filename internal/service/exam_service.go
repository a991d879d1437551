package service

import (
	"strings"

	"exam_admin_backend/internal/model"
	"exam_admin_backend/internal/repository"
	"exam_admin_backend/internal/util"

	"gorm.io/gorm"
)

type ExamService struct {
	Exams     *repository.ExamRepository
	Questions *repository.QuestionRepository
}

func NewExamService(exams *repository.ExamRepository, questions *repository.QuestionRepository) *ExamService {
	return &ExamService{Exams: exams, Questions: questions}
}

type ExamRequest struct {
	Title      string  `json:"title"`
	ExamDate   string  `json:"examDate"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	TotalMarks int     `json:"totalMarks"`
	Price      float64 `json:"price"`
}

// Upsert creates or updates the exam named by the request's title. A
// calendar date can be held by at most one exam title; that constraint is
// what lets "today's exam" lookups assume a unique match.
func (s *ExamService) Upsert(req ExamRequest) (*model.Exam, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, util.MissingFieldErr("title")
	}
	if !util.ValidDate(req.ExamDate) {
		return nil, util.InvalidFormatErr("examDate must be a YYYY-MM-DD date")
	}
	if !util.ValidClock12(req.StartTime) {
		return nil, util.InvalidFormatErr("startTime must be a 12-hour clock time such as \"9:30 AM\"")
	}
	if !util.ValidClock12(req.EndTime) {
		return nil, util.InvalidFormatErr("endTime must be a 12-hour clock time such as \"5:00 PM\"")
	}

	if holder, err := s.Exams.FindByDate(req.ExamDate); err == nil && holder.Title != req.Title {
		return nil, util.ConflictErr("an exam is already scheduled on " + req.ExamDate + ": " + holder.Title)
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, util.UpstreamErr("failed to check exam date", err)
	}

	exam, err := s.Exams.FindByTitle(req.Title)
	if err == gorm.ErrRecordNotFound {
		exam = &model.Exam{Title: req.Title}
	} else if err != nil {
		return nil, util.UpstreamErr("failed to load exam", err)
	}

	exam.ExamDate = req.ExamDate
	exam.StartTime = util.NormalizeClock12(req.StartTime)
	exam.EndTime = util.NormalizeClock12(req.EndTime)
	exam.TotalMarks = req.TotalMarks
	exam.Price = req.Price

	if exam.ID == 0 {
		err = s.Exams.Create(exam)
	} else {
		err = s.Exams.Save(exam)
	}
	if err != nil {
		return nil, util.UpstreamErr("failed to save exam", err)
	}

	return exam, nil
}

func (s *ExamService) Get(title string) (*model.Exam, []model.Question, error) {
	exam, err := s.Exams.FindByTitle(title)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, util.NotFoundErr("exam not found")
		}
		return nil, nil, util.UpstreamErr("failed to load exam", err)
	}

	questions, err := s.Questions.ListByExam(title)
	if err != nil {
		return nil, nil, util.UpstreamErr("failed to load questions", err)
	}
	return exam, questions, nil
}

func (s *ExamService) List() ([]model.Exam, error) {
	exams, err := s.Exams.List()
	if err != nil {
		return nil, util.UpstreamErr("failed to list exams", err)
	}
	return exams, nil
}

// Today returns the exam scheduled for the current calendar date.
func (s *ExamService) Today() (*model.Exam, error) {
	exam, err := s.Exams.FindByDate(util.Today())
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("no exam scheduled today")
		}
		return nil, util.UpstreamErr("failed to look up exam", err)
	}
	return exam, nil
}
