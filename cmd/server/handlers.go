package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Poldin/budgez-sub003/internal/engine"
	"github.com/Poldin/budgez-sub003/internal/store"
)

// budgetPayload is the wire shape of a budget document. The shape checks
// (required ids, known enum tags, non-negative numbers) run here so bad
// payloads fail with 400 before the engine sees them; the engine keeps its
// own semantic validation for programmatic callers.
type budgetPayload struct {
	Title           string            `json:"title"`
	Notes           string            `json:"notes"`
	Currency        string            `json:"currency"`
	Resources       []resourcePayload `json:"resources" validate:"dive"`
	Activities      []activityPayload `json:"activities" validate:"dive"`
	GeneralDiscount *discountPayload  `json:"generalDiscount" validate:"omitempty"`
	GeneralMargin   *marginPayload    `json:"generalMargin" validate:"omitempty"`
}

type resourcePayload struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name"`
	CostModel    string  `json:"costModel" validate:"required,oneof=hourly quantity fixed"`
	PricePerHour float64 `json:"pricePerHour" validate:"gte=0"`
}

type assignmentPayload struct {
	ResourceID string  `json:"resourceId" validate:"required"`
	Hours      float64 `json:"hours" validate:"gte=0"`
	FixedPrice float64 `json:"fixedPrice" validate:"gte=0"`
}

type activityPayload struct {
	ID          string              `json:"id" validate:"required"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	VATRate     float64             `json:"vatRate" validate:"gte=0"`
	Assignments []assignmentPayload `json:"assignments" validate:"dive"`
	Discount    *discountPayload    `json:"discount" validate:"omitempty"`
	StartDate   string              `json:"startDate"`
	EndDate     string              `json:"endDate"`
}

type discountPayload struct {
	Enabled bool    `json:"enabled"`
	Kind    string  `json:"kind" validate:"required_if=Enabled true,omitempty,oneof=percentage fixed"`
	Value   float64 `json:"value" validate:"gte=0"`
	ApplyOn string  `json:"applyOn" validate:"required_if=Enabled true,omitempty,oneof=taxable withVat"`
}

type marginPayload struct {
	Enabled bool    `json:"enabled"`
	Kind    string  `json:"kind" validate:"required_if=Enabled true,omitempty,oneof=percentage fixed"`
	Value   float64 `json:"value" validate:"gte=0"`
	ApplyOn string  `json:"applyOn" validate:"required_if=Enabled true,omitempty,oneof=afterDiscount beforeDiscount"`
}

// displayTotals carries the formatted figures the quote renderer and the
// floating-total widget print verbatim.
type displayTotals struct {
	TaxableTotal string `json:"taxableTotal"`
	VATTotal     string `json:"vatTotal"`
	GrandTotal   string `json:"grandTotal"`
}

type computeResponse struct {
	Totals  engine.Result `json:"totals"`
	Display displayTotals `json:"display"`
}

type budgetResponse struct {
	Budget  store.Budget  `json:"budget"`
	Display displayTotals `json:"display"`
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleCompute(w http.ResponseWriter, r *http.Request) {
	payload, ok := s.decodeBudget(w, r)
	if !ok {
		return
	}

	totals, err := engine.Compute(s.toEngineInput(payload))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, computeResponse{
		Totals:  totals,
		Display: s.display(totals),
	})
}

func (s *server) handleBudgetCreate(w http.ResponseWriter, r *http.Request) {
	payload, ok := s.decodeBudget(w, r)
	if !ok {
		return
	}
	if strings.TrimSpace(payload.Title) == "" {
		s.writeError(w, http.StatusBadRequest, "VALIDATION", "title is required")
		return
	}

	def := s.toEngineInput(payload)
	totals, err := engine.Compute(def)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	saved, err := s.store.Save(r.Context(), payload.Title, payload.Notes, def, totals)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to save budget")
		s.writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to save budget")
		return
	}

	s.writeJSON(w, http.StatusCreated, budgetResponse{
		Budget:  saved,
		Display: s.display(saved.Totals),
	})
}

func (s *server) handleBudgetsList(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	budgets, err := s.store.List(r.Context(), query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list budgets")
		s.writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to list budgets")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"data": budgets})
}

func (s *server) handleBudgetDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	budget, err := s.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "NOT_FOUND", "budget not found")
		return
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load budget")
		s.writeError(w, http.StatusInternalServerError, "INTERNAL", "failed to load budget")
		return
	}

	s.writeJSON(w, http.StatusOK, budgetResponse{
		Budget:  budget,
		Display: s.display(budget.Totals),
	})
}

func (s *server) decodeBudget(w http.ResponseWriter, r *http.Request) (budgetPayload, bool) {
	var payload budgetPayload
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		s.writeError(w, http.StatusBadRequest, "BAD_JSON", "request body is not valid JSON: "+err.Error())
		return budgetPayload{}, false
	}

	if err := s.validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			s.writeError(w, http.StatusBadRequest, "VALIDATION", verrs[0].Error())
			return budgetPayload{}, false
		}
		s.writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return budgetPayload{}, false
	}

	return payload, true
}

func (s *server) toEngineInput(p budgetPayload) engine.Input {
	currency := strings.TrimSpace(p.Currency)
	if currency == "" {
		currency = s.currency
	}

	catalog := make(engine.Catalog, len(p.Resources))
	for _, res := range p.Resources {
		catalog[res.ID] = engine.Resource{
			ID:           res.ID,
			Name:         res.Name,
			CostModel:    engine.CostModel(res.CostModel),
			PricePerHour: res.PricePerHour,
		}
	}

	activities := make([]engine.Activity, 0, len(p.Activities))
	for _, act := range p.Activities {
		assignments := make([]engine.Assignment, 0, len(act.Assignments))
		for _, a := range act.Assignments {
			assignments = append(assignments, engine.Assignment{
				ResourceID: a.ResourceID,
				Hours:      a.Hours,
				FixedPrice: a.FixedPrice,
			})
		}
		activities = append(activities, engine.Activity{
			ID:          act.ID,
			Name:        act.Name,
			Description: act.Description,
			Assignments: assignments,
			VATRate:     act.VATRate,
			Discount:    toEngineDiscount(act.Discount),
			StartDate:   act.StartDate,
			EndDate:     act.EndDate,
		})
	}

	in := engine.Input{
		Resources:       catalog,
		Activities:      activities,
		GeneralDiscount: toEngineDiscount(p.GeneralDiscount),
		Currency:        currency,
	}
	if p.GeneralMargin != nil {
		in.GeneralMargin = engine.Margin{
			Enabled: p.GeneralMargin.Enabled,
			Kind:    engine.AdjustmentKind(p.GeneralMargin.Kind),
			Value:   p.GeneralMargin.Value,
			ApplyOn: engine.MarginBase(p.GeneralMargin.ApplyOn),
		}
	}
	return in
}

func toEngineDiscount(p *discountPayload) engine.Discount {
	if p == nil {
		return engine.Discount{}
	}
	return engine.Discount{
		Enabled: p.Enabled,
		Kind:    engine.AdjustmentKind(p.Kind),
		Value:   p.Value,
		ApplyOn: engine.DiscountBase(p.ApplyOn),
	}
}

func (s *server) display(totals engine.Result) displayTotals {
	return displayTotals{
		TaxableTotal: s.formatter.AmountWithSymbol(totals.TaxableTotal, totals.Currency),
		VATTotal:     s.formatter.AmountWithSymbol(totals.VATTotal, totals.Currency),
		GrandTotal:   s.formatter.AmountWithSymbol(totals.GrandTotal, totals.Currency),
	}
}

func (s *server) writeEngineError(w http.ResponseWriter, err error) {
	var unresolved *engine.UnresolvedResourceError
	if errors.As(err, &unresolved) {
		s.writeError(w, http.StatusUnprocessableEntity, "UNRESOLVED_RESOURCE", unresolved.Error())
		return
	}
	var invalid *engine.InvalidInputError
	if errors.As(err, &invalid) {
		s.writeError(w, http.StatusUnprocessableEntity, "INVALID_INPUT", invalid.Error())
		return
	}
	s.logger.Error().Err(err).Msg("computation failed")
	s.writeError(w, http.StatusInternalServerError, "INTERNAL", "computation failed")
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, map[string]any{
		"error": map[string]string{"code": code, "message": message},
	})
}
