package services

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/tersoo/swiftbus/internal/core/domain"
	"github.com/tersoo/swiftbus/internal/core/ports"
)

const (
	stageHireCriteria = "hire:criteria"
	stageHireOption   = "hire:option"
	stageHireContact  = "hire:contact"
	stageHireDraft    = "hire:draft"
)

// HiringFlow sequences a whole-bus hire: route match, per-bus
// date-range availability, capacity-based pricing, contact details,
// draft creation and payment. It persists each step like BookingFlow
// so an interrupted hire resumes without duplicating the server-side
// hiring resource.
type HiringFlow struct {
	routes   ports.RouteAPI
	hiring   ports.HiringAPI
	payments ports.PaymentAPI
	store    ports.DraftStore
	session  ports.Session
	validate *validator.Validate

	flowID   string
	criteria *domain.HireCriteria
	option   *domain.HireOption
	contact  *domain.HiringContact
	draft    *domain.HiringDraft
}

func NewHiringFlow(routes ports.RouteAPI, hiring ports.HiringAPI, payments ports.PaymentAPI, store ports.DraftStore, session ports.Session) *HiringFlow {
	return &HiringFlow{
		routes:   routes,
		hiring:   hiring,
		payments: payments,
		store:    store,
		session:  session,
		validate: validator.New(),
		flowID:   uuid.NewString(),
	}
}

// ResumeHiringFlow restores a hire from its persisted stages.
func ResumeHiringFlow(ctx context.Context, routes ports.RouteAPI, hiring ports.HiringAPI, payments ports.PaymentAPI, store ports.DraftStore, session ports.Session, flowID string) (*HiringFlow, error) {
	f := NewHiringFlow(routes, hiring, payments, store, session)
	f.flowID = flowID

	if ok, err := loadStage(ctx, store, flowID, stageHireCriteria, &f.criteria); err != nil || !ok {
		return f, err
	}
	if ok, err := loadStage(ctx, store, flowID, stageHireOption, &f.option); err != nil || !ok {
		return f, err
	}
	if ok, err := loadStage(ctx, store, flowID, stageHireContact, &f.contact); err != nil || !ok {
		return f, err
	}
	if _, err := loadStage(ctx, store, flowID, stageHireDraft, &f.draft); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *HiringFlow) persistStage(ctx context.Context, stage string, v any) error {
	flow := BookingFlow{store: f.store, flowID: f.flowID}
	return flow.persistStage(ctx, stage, v)
}

func (f *HiringFlow) FlowID() string { return f.flowID }

func (f *HiringFlow) Draft() *domain.HiringDraft { return f.draft }

// Search returns hireable route/bus pairs: active routes matching the
// cities that operate on the start weekday, whose bus is free for the
// whole hire window. Each option is priced at full bus capacity.
func (f *HiringFlow) Search(ctx context.Context, criteria domain.HireCriteria) ([]domain.HireOption, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	all, err := f.routes.ListRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("search hireable routes: %w", err)
	}

	var matching []domain.Route
	for _, r := range all {
		if r.IsActive && r.Matches(criteria.From, criteria.To) && r.OperatesOn(criteria.Start) {
			matching = append(matching, r)
		}
	}
	if len(matching) == 0 {
		f.criteria = &criteria
		if err := f.persistStage(ctx, stageHireCriteria, criteria); err != nil {
			return nil, err
		}
		return nil, nil
	}

	avail, err := f.hiring.CheckHiringAvailability(ctx, criteria.Start, criteria.End)
	if err != nil {
		return nil, fmt.Errorf("check hiring availability: %w", err)
	}

	var options []domain.HireOption
	if avail != nil && avail.Available {
		byID := make(map[string]domain.Bus, len(avail.AvailableBuses))
		for _, b := range avail.AvailableBuses {
			byID[b.ID] = b
		}
		for _, r := range matching {
			bus, ok := byID[r.BusID]
			if !ok {
				continue
			}
			options = append(options, domain.HireOption{
				Route: r,
				Bus:   bus,
				Price: domain.HiringCost(r.BaseFare, bus.Capacity, criteria.TripType),
			})
		}
	}

	f.criteria = &criteria
	if err := f.persistStage(ctx, stageHireCriteria, criteria); err != nil {
		return nil, err
	}
	return options, nil
}

// SelectOption records the chosen route/bus pair.
func (f *HiringFlow) SelectOption(ctx context.Context, option domain.HireOption) error {
	if f.criteria == nil {
		return &domain.ValidationError{Field: "criteria", Message: "search before selecting a bus"}
	}
	f.option = &option
	return f.persistStage(ctx, stageHireOption, option)
}

// SetContact records the single contact person for the hire. Name,
// email and phone are mandatory.
func (f *HiringFlow) SetContact(ctx context.Context, contact domain.HiringContact) error {
	if f.option == nil {
		return &domain.ValidationError{Field: "option", Message: "select a bus before contact details"}
	}
	if err := f.validate.Struct(contact); err != nil {
		return &domain.ValidationError{Field: "contact", Message: err.Error()}
	}
	f.contact = &contact
	return f.persistStage(ctx, stageHireContact, contact)
}

// Submit creates the hiring server-side. The backend-recomputed cost
// is preferred when the calculate-cost call succeeds; on failure the
// client-computed capacity price is kept and the fallback is logged.
// Resubmitting a created hire returns it unchanged.
func (f *HiringFlow) Submit(ctx context.Context) (*domain.HiringDraft, error) {
	if f.draft != nil && f.draft.Status != domain.DraftDrafting {
		return f.draft, nil
	}
	if f.criteria == nil || f.option == nil || f.contact == nil {
		return nil, &domain.ValidationError{Field: "flow", Message: "hiring steps are incomplete"}
	}
	if err := f.session.Authenticated(); err != nil {
		return nil, err
	}

	draft := &domain.HiringDraft{
		FlowID:         f.flowID,
		BusID:          f.option.Bus.ID,
		RouteID:        f.option.Route.ID,
		StartDate:      f.criteria.Start,
		EndDate:        f.criteria.End,
		TripType:       f.criteria.TripType,
		Purpose:        fmt.Sprintf("Bus hire for travel from %s to %s", f.criteria.From, f.criteria.To),
		StartLocation:  f.criteria.From,
		EndLocation:    f.criteria.To,
		PassengerCount: f.option.Bus.Capacity,
		BaseRate:       f.option.Route.BaseFare,
		TotalCost:      domain.HiringCost(f.option.Route.BaseFare, f.option.Bus.Capacity, f.criteria.TripType),
		Contact:        *f.contact,
		Status:         domain.DraftDrafting,
	}
	if f.criteria.TripType == domain.TripRoundTrip {
		ret := f.criteria.End
		draft.ReturnDate = &ret
	}

	if cost, err := f.hiring.CalculateHiringCost(ctx, draft); err != nil {
		log.Printf("backend cost calculation failed, keeping client-computed cost %.2f: %v", draft.TotalCost, err)
	} else if cost > 0 {
		draft.TotalCost = cost
	}

	ref, err := f.hiring.CreateHiring(ctx, draft)
	if err != nil {
		return nil, err
	}
	draft.Status = domain.DraftCreated
	draft.HiringID = ref.ID
	draft.HiringNumber = ref.Number

	f.draft = draft
	if err := f.persistStage(ctx, stageHireDraft, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// InitializePayment hands the hire total and contact identity to the
// payment collaborator.
func (f *HiringFlow) InitializePayment(ctx context.Context) (string, error) {
	if f.draft == nil || f.draft.Status != domain.DraftCreated {
		return "", &domain.ValidationError{Field: "draft", Message: "submit the hiring before payment"}
	}
	c := f.draft.Contact
	return f.payments.InitializePayment(ctx, f.draft.TotalCost, c.Email, c.FullName, c.Phone)
}

// Pay verifies a provider reference; only success promotes to Paid.
func (f *HiringFlow) Pay(ctx context.Context, reference string) error {
	if f.draft == nil || f.draft.Status != domain.DraftCreated {
		return &domain.ValidationError{Field: "draft", Message: "no created hiring awaiting payment"}
	}
	ok, err := f.payments.VerifyPayment(ctx, reference, f.draft.HiringID)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.ServerError{Message: "payment verification did not succeed"}
	}
	f.draft.Status = domain.DraftPaid
	return f.persistStage(ctx, stageHireDraft, f.draft)
}

// Receipt fetches the ticket artifact for a paid hire.
func (f *HiringFlow) Receipt(ctx context.Context) (*domain.Ticket, error) {
	if f.draft == nil || f.draft.Status != domain.DraftPaid {
		return nil, &domain.ValidationError{Field: "draft", Message: "receipt is only available after payment"}
	}
	return f.hiring.GetHiringReceipt(ctx, f.draft.HiringID)
}

// Cancel cancels a created hiring and clears persisted flow state.
func (f *HiringFlow) Cancel(ctx context.Context) error {
	if f.draft != nil && f.draft.HiringID != "" && f.draft.Status == domain.DraftCreated {
		if err := f.hiring.CancelHiring(ctx, f.draft.HiringID); err != nil {
			return err
		}
		f.draft.Status = domain.DraftFailed
	}
	return f.store.DeleteFlow(ctx, f.flowID)
}
