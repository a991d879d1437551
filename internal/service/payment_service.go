package service

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"exam_admin_backend/internal/config"
	"exam_admin_backend/internal/model"
	"exam_admin_backend/internal/repository"
	"exam_admin_backend/internal/util"

	"gorm.io/gorm"
)

// PaymentService fronts the payment gateway. Orders are created upstream,
// mirrored locally, and flipped to captured only after the callback
// signature checks out.
type PaymentService struct {
	config     config.PaymentConfig
	client     *http.Client
	Payments   *repository.PaymentRepository
	Candidates *repository.CandidateRepository
	Exams      *repository.ExamRepository
}

func NewPaymentService(cfg config.PaymentConfig, payments *repository.PaymentRepository, candidates *repository.CandidateRepository, exams *repository.ExamRepository) *PaymentService {
	return &PaymentService{
		config:     cfg,
		client:     &http.Client{Timeout: 15 * time.Second},
		Payments:   payments,
		Candidates: candidates,
		Exams:      exams,
	}
}

type gatewayOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type gatewayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Error    *struct {
		Description string `json:"description"`
	} `json:"error,omitempty"`
}

func (s *PaymentService) postOrder(req gatewayOrderRequest) (*gatewayOrderResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest("POST", strings.TrimRight(s.config.BaseURL, "/")+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(s.config.KeyID, s.config.KeySecret)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var out gatewayOrderResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("gateway returned unparseable response: %w", err)
	}
	if resp.StatusCode >= 400 {
		msg := "gateway rejected order"
		if out.Error != nil {
			msg = out.Error.Description
		}
		return nil, fmt.Errorf("%s (status %d)", msg, resp.StatusCode)
	}
	return &out, nil
}

// CreateOrder opens a gateway order for a candidate's exam fee and records
// it locally in the created state.
func (s *PaymentService) CreateOrder(registrationNumber string) (*model.PaymentOrder, error) {
	if strings.TrimSpace(registrationNumber) == "" {
		return nil, util.MissingFieldErr("registrationNumber")
	}

	candidate, err := s.Candidates.FindByRegistration(registrationNumber)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("candidate not found")
		}
		return nil, util.UpstreamErr("failed to load candidate", err)
	}

	exam, err := s.Exams.FindByTitle(candidate.ExamTitle)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("exam not found")
		}
		return nil, util.UpstreamErr("failed to load exam", err)
	}

	// gateway amounts are in currency subunits
	order, err := s.postOrder(gatewayOrderRequest{
		Amount:   int64(exam.Price * 100),
		Currency: s.config.Currency,
		Receipt:  registrationNumber,
	})
	if err != nil {
		return nil, util.UpstreamErr("failed to create payment order", err)
	}

	p := &model.PaymentOrder{
		RegistrationNumber: registrationNumber,
		ExamTitle:          candidate.ExamTitle,
		Amount:             order.Amount,
		Currency:           order.Currency,
		GatewayOrderID:     order.ID,
		Status:             model.PaymentCreated,
	}
	if err := s.Payments.Create(p); err != nil {
		return nil, util.UpstreamErr("failed to record payment order", err)
	}
	return p, nil
}

// VerifySignature checks the gateway callback signature: an HMAC-SHA256
// of "orderID|paymentID" keyed by the secret, hex encoded. The compare is
// constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

type PaymentVerification struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// VerifyPayment validates a client-reported capture against the callback
// signature and, on success, marks the order captured.
func (s *PaymentService) VerifyPayment(v PaymentVerification) (*model.PaymentOrder, error) {
	if v.OrderID == "" {
		return nil, util.MissingFieldErr("orderId")
	}
	if v.PaymentID == "" {
		return nil, util.MissingFieldErr("paymentId")
	}
	if v.Signature == "" {
		return nil, util.MissingFieldErr("signature")
	}

	p, err := s.Payments.FindByGatewayOrderID(v.OrderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.NotFoundErr("payment order not found")
		}
		return nil, util.UpstreamErr("failed to load payment order", err)
	}

	if !VerifySignature(v.OrderID, v.PaymentID, v.Signature, s.config.KeySecret) {
		p.Status = model.PaymentFailed
		if saveErr := s.Payments.Save(p); saveErr != nil {
			return nil, util.UpstreamErr("failed to record payment failure", saveErr)
		}
		return nil, util.SignatureMismatchErr()
	}

	now := time.Now()
	p.GatewayPaymentID = v.PaymentID
	p.Status = model.PaymentCaptured
	p.VerifiedAt = &now
	if err := s.Payments.Save(p); err != nil {
		return nil, util.UpstreamErr("failed to record payment capture", err)
	}
	return p, nil
}

func (s *PaymentService) ListByRegistration(registrationNumber string) ([]model.PaymentOrder, error) {
	ps, err := s.Payments.ListByRegistration(registrationNumber)
	if err != nil {
		return nil, util.UpstreamErr("failed to list payments", err)
	}
	return ps, nil
}

// HasPaid reports whether a candidate holds a captured payment for an exam.
func (s *PaymentService) HasPaid(registrationNumber, examTitle string) (bool, error) {
	paid, err := s.Payments.HasCapturedPayment(registrationNumber, examTitle)
	if err != nil {
		return false, util.UpstreamErr("failed to check payment", err)
	}
	return paid, nil
}
