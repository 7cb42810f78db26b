package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/google/uuid"

	"lotus/internal/models/db_models"
	"lotus/internal/models/request_models"
	"lotus/internal/models/response_models"
	"lotus/internal/repositories"
	"lotus/pkg/utils"
)

type RetreatServiceInterface interface {
	CreateRetreat(ctx context.Context, request request_models.CreateRetreatRequest) (*response_models.RetreatResponse, error)
	UpdateRetreat(ctx context.Context, request request_models.UpdateRetreatRequest) (*response_models.RetreatResponse, error)
	DeleteRetreat(ctx context.Context, id uuid.UUID) error
	GetRetreat(ctx context.Context, id string) (*response_models.RetreatResponse, error)
	ListRetreats(ctx context.Context) (*response_models.RetreatList, error)
	SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error
	DuplicateRetreat(ctx context.Context, id string) (*response_models.RetreatResponse, error)

	CreateRegistration(ctx context.Context, request request_models.CreateRegistrationRequest) (*response_models.RegistrationResponse, error)
	ListRegistrations(ctx context.Context, retreatID string) ([]response_models.RegistrationResponse, error)
	UpdatePayment(ctx context.Context, registrationID string, request request_models.UpdatePaymentRequest) (*response_models.RegistrationResponse, error)
	ExportRegistrationsCSV(ctx context.Context, retreatID string) ([]byte, error)
}

type RetreatService struct {
	retreatRepo repositories.RetreatRepository
	mailService IMailService
}

func NewRetreatService(retreatRepo repositories.RetreatRepository, mailService IMailService) RetreatServiceInterface {
	return &RetreatService{
		retreatRepo: retreatRepo,
		mailService: mailService,
	}
}

func (r *RetreatService) CreateRetreat(ctx context.Context, request request_models.CreateRetreatRequest) (*response_models.RetreatResponse, error) {
	retreat, err := retreatFromRequest(request)
	if err != nil {
		return nil, err
	}

	if _, err := r.retreatRepo.Create(ctx, retreat); err != nil {
		log.Printf("Error creating retreat: %v", err)
		return nil, utils.ErrDatabaseError
	}

	resp := toRetreatResponse(*retreat)
	return &resp, nil
}

func (r *RetreatService) UpdateRetreat(ctx context.Context, request request_models.UpdateRetreatRequest) (*response_models.RetreatResponse, error) {
	existing, err := r.retreatRepo.GetByID(ctx, request.ID.String())
	if err != nil {
		log.Printf("Error fetching retreat %s: %v", request.ID, err)
		return nil, utils.ErrDatabaseError
	}
	if existing == nil {
		return nil, utils.ErrRetreatNotFound
	}

	updated, err := retreatFromRequest(request.CreateRetreatRequest)
	if err != nil {
		return nil, err
	}
	updated.BaseModel = existing.BaseModel

	if err := r.retreatRepo.Update(ctx, updated); err != nil {
		log.Printf("Error updating retreat %s: %v", request.ID, err)
		return nil, utils.ErrDatabaseError
	}

	resp := toRetreatResponse(*updated)
	return &resp, nil
}

func (r *RetreatService) DeleteRetreat(ctx context.Context, id uuid.UUID) error {
	existing, err := r.retreatRepo.GetByID(ctx, id.String())
	if err != nil {
		log.Printf("Error fetching retreat %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrRetreatNotFound
	}

	if err := r.retreatRepo.Delete(ctx, id); err != nil {
		log.Printf("Error deleting retreat %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *RetreatService) GetRetreat(ctx context.Context, id string) (*response_models.RetreatResponse, error) {
	retreat, err := r.retreatRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching retreat %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if retreat == nil {
		return nil, utils.ErrRetreatNotFound
	}

	resp := toRetreatResponse(*retreat)
	return &resp, nil
}

// ListRetreats fetches everything and derives the upcoming/past split
// against today's date. Membership is never stored.
func (r *RetreatService) ListRetreats(ctx context.Context) (*response_models.RetreatList, error) {
	retreats, err := r.retreatRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing retreats: %v", err)
		return nil, utils.ErrDatabaseError
	}

	upcoming, past := PartitionRetreats(retreats, utils.Today(time.Now()))

	list := &response_models.RetreatList{
		Upcoming: make([]response_models.RetreatResponse, 0, len(upcoming)),
		Past:     make([]response_models.RetreatResponse, 0, len(past)),
	}
	for _, retreat := range upcoming {
		list.Upcoming = append(list.Upcoming, toRetreatResponse(retreat))
	}
	for _, retreat := range past {
		list.Past = append(list.Past, toRetreatResponse(retreat))
	}
	return list, nil
}

// PartitionRetreats splits on end_date >= today. Upcoming sorts
// ascending by start date, past descending by end date.
func PartitionRetreats(retreats []db_models.Retreat, today time.Time) (upcoming, past []db_models.Retreat) {
	for _, retreat := range retreats {
		if !retreat.EndDate.Before(today) {
			upcoming = append(upcoming, retreat)
		} else {
			past = append(past, retreat)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].StartDate.Before(upcoming[j].StartDate)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].EndDate.After(past[j].EndDate)
	})
	return upcoming, past
}

func (r *RetreatService) SetFeatured(ctx context.Context, id uuid.UUID, featured bool) error {
	if err := r.retreatRepo.SetFeatured(ctx, id, featured); err != nil {
		log.Printf("Error setting featured on retreat %s: %v", id, err)
		return utils.ErrRetreatNotFound
	}
	return nil
}

// DuplicateRetreat clones a retreat as an inactive, unfeatured copy
// one year later. If the shifted start would still be in the past the
// copy starts 30 days from today instead, keeping the original length.
func (r *RetreatService) DuplicateRetreat(ctx context.Context, id string) (*response_models.RetreatResponse, error) {
	original, err := r.retreatRepo.GetByID(ctx, id)
	if err != nil {
		log.Printf("Error fetching retreat %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if original == nil {
		return nil, utils.ErrRetreatNotFound
	}

	copyTitle := original.Title + " (Copy)"
	newStart, newEnd := ShiftDuplicateDates(original.StartDate, original.EndDate, utils.Today(time.Now()))

	duplicate := &db_models.Retreat{
		Title:          copyTitle,
		Slug:           utils.GenerateSlug(copyTitle),
		StartDate:      newStart,
		EndDate:        newEnd,
		Location:       original.Location,
		VenueName:      original.VenueName,
		Capacity:       original.Capacity,
		Price:          original.Price,
		MemberPrice:    original.MemberPrice,
		EarlyBirdPrice: original.EarlyBirdPrice,
		DepositAmount:  original.DepositAmount,
		Active:         false,
		Featured:       false,
		GalleryImages:  original.GalleryImages,
	}

	if _, err := r.retreatRepo.Create(ctx, duplicate); err != nil {
		log.Printf("Error duplicating retreat %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}

	resp := toRetreatResponse(*duplicate)
	return &resp, nil
}

// ShiftDuplicateDates moves both dates forward one year; when that
// still lands the start in the past, the copy starts today+30d and the
// original duration is preserved.
func ShiftDuplicateDates(start, end, today time.Time) (time.Time, time.Time) {
	newStart := start.AddDate(1, 0, 0)
	newEnd := end.AddDate(1, 0, 0)
	if !newStart.After(today) {
		duration := end.Sub(start)
		newStart = today.AddDate(0, 0, 30)
		newEnd = newStart.Add(duration)
	}
	return newStart, newEnd
}

func (r *RetreatService) CreateRegistration(ctx context.Context, request request_models.CreateRegistrationRequest) (*response_models.RegistrationResponse, error) {
	retreat, err := r.retreatRepo.GetByID(ctx, request.RetreatID.String())
	if err != nil {
		log.Printf("Error fetching retreat %s: %v", request.RetreatID, err)
		return nil, utils.ErrDatabaseError
	}
	if retreat == nil {
		return nil, utils.ErrRetreatNotFound
	}

	reg := &db_models.Registration{
		RetreatID:        retreat.ID,
		UserName:         request.UserName,
		Email:            request.Email,
		PaymentStatus:    db_models.PaymentPending,
		AmountPaid:       0,
		BalanceDue:       retreat.Price,
		RegistrationDate: time.Now(),
	}

	if _, err := r.retreatRepo.CreateRegistration(ctx, reg); err != nil {
		log.Printf("Error creating registration: %v", err)
		return nil, utils.ErrDatabaseError
	}

	// confirmation mail is best-effort; the registration stands either way
	if err := r.mailService.SendRegistrationConfirmation(
		reg.Email, reg.UserName, retreat.Title,
		utils.FormatDate(retreat.StartDate), utils.FormatDate(retreat.EndDate),
	); err != nil {
		log.Printf("Error sending confirmation to %s: %v", reg.Email, err)
	}

	resp := toRegistrationResponse(*reg)
	return &resp, nil
}

func (r *RetreatService) ListRegistrations(ctx context.Context, retreatID string) ([]response_models.RegistrationResponse, error) {
	retreat, err := r.retreatRepo.GetByID(ctx, retreatID)
	if err != nil {
		log.Printf("Error fetching retreat %s: %v", retreatID, err)
		return nil, utils.ErrDatabaseError
	}
	if retreat == nil {
		return nil, utils.ErrRetreatNotFound
	}

	regs, err := r.retreatRepo.ListRegistrations(ctx, retreatID)
	if err != nil {
		log.Printf("Error listing registrations for %s: %v", retreatID, err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		out = append(out, toRegistrationResponse(reg))
	}
	return out, nil
}

func (r *RetreatService) UpdatePayment(ctx context.Context, registrationID string, request request_models.UpdatePaymentRequest) (*response_models.RegistrationResponse, error) {
	if !db_models.ValidPaymentStatus(request.PaymentStatus) {
		return nil, utils.ErrInvalidPaymentStatus
	}

	reg, err := r.retreatRepo.GetRegistration(ctx, registrationID)
	if err != nil {
		log.Printf("Error fetching registration %s: %v", registrationID, err)
		return nil, utils.ErrDatabaseError
	}
	if reg == nil {
		return nil, utils.ErrRegistrationNotFound
	}

	retreat, err := r.retreatRepo.GetByID(ctx, reg.RetreatID.String())
	if err != nil {
		log.Printf("Error fetching retreat %s: %v", reg.RetreatID, err)
		return nil, utils.ErrDatabaseError
	}

	reg.PaymentStatus = request.PaymentStatus
	reg.AmountPaid = request.AmountPaid
	if retreat != nil {
		reg.BalanceDue = retreat.Price - reg.AmountPaid
		if reg.BalanceDue < 0 {
			reg.BalanceDue = 0
		}
	}

	if err := r.retreatRepo.UpdateRegistration(ctx, reg); err != nil {
		log.Printf("Error updating registration %s: %v", registrationID, err)
		return nil, utils.ErrDatabaseError
	}

	resp := toRegistrationResponse(*reg)
	return &resp, nil
}

// ExportRegistrationsCSV renders the retreat's registrations as a CSV
// download.
func (r *RetreatService) ExportRegistrationsCSV(ctx context.Context, retreatID string) ([]byte, error) {
	regs, err := r.ListRegistrations(ctx, retreatID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{
		"registration_id", "user_name", "email", "payment_status",
		"amount_paid", "balance_due", "registration_date",
	}); err != nil {
		return nil, err
	}
	for _, reg := range regs {
		if err := w.Write([]string{
			reg.ID,
			reg.UserName,
			reg.Email,
			reg.PaymentStatus,
			fmt.Sprintf("%.2f", reg.AmountPaid),
			fmt.Sprintf("%.2f", reg.BalanceDue),
			reg.RegistrationDate,
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func retreatFromRequest(request request_models.CreateRetreatRequest) (*db_models.Retreat, error) {
	start, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if start.After(end) {
		return nil, utils.ErrInvalidDateRange
	}

	var earlyBird *time.Time
	if request.EarlyBirdDeadline != "" {
		t, err := utils.ParseDate(request.EarlyBirdDeadline)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		earlyBird = &t
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	return &db_models.Retreat{
		Title:             request.Title,
		Slug:              utils.GenerateSlug(request.Title),
		StartDate:         start,
		EndDate:           end,
		Location:          request.Location,
		VenueName:         request.VenueName,
		Capacity:          request.Capacity,
		Price:             request.Price,
		MemberPrice:       request.MemberPrice,
		EarlyBirdPrice:    request.EarlyBirdPrice,
		EarlyBirdDeadline: earlyBird,
		DepositAmount:     request.DepositAmount,
		Active:            active,
		Featured:          request.Featured,
		GalleryImages:     request.GalleryImages,
	}, nil
}

func toRetreatResponse(retreat db_models.Retreat) response_models.RetreatResponse {
	resp := response_models.RetreatResponse{
		ID:             retreat.ID.String(),
		Title:          retreat.Title,
		Slug:           retreat.Slug,
		StartDate:      utils.FormatDate(retreat.StartDate),
		EndDate:        utils.FormatDate(retreat.EndDate),
		Location:       retreat.Location,
		VenueName:      retreat.VenueName,
		Capacity:       retreat.Capacity,
		Price:          retreat.Price,
		MemberPrice:    retreat.MemberPrice,
		EarlyBirdPrice: retreat.EarlyBirdPrice,
		DepositAmount:  retreat.DepositAmount,
		Active:         retreat.Active,
		Featured:       retreat.Featured,
		GalleryImages:  retreat.GalleryImages,
	}
	if retreat.EarlyBirdDeadline != nil {
		resp.EarlyBirdDeadline = utils.FormatDate(*retreat.EarlyBirdDeadline)
	}
	return resp
}

func toRegistrationResponse(reg db_models.Registration) response_models.RegistrationResponse {
	return response_models.RegistrationResponse{
		ID:               reg.ID.String(),
		RetreatID:        reg.RetreatID.String(),
		UserName:         reg.UserName,
		Email:            reg.Email,
		PaymentStatus:    reg.PaymentStatus,
		AmountPaid:       reg.AmountPaid,
		BalanceDue:       reg.BalanceDue,
		RegistrationDate: utils.FormatDate(reg.RegistrationDate),
	}
}
