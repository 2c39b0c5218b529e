package dto

import (
	"github.com/cashflow-tracker/backend/internal/domain/entity"
)

// MonthItemResponse represents one derived line item of a projected month.
// Expected items carry no entry fields; realized items echo the entry that
// fulfilled the plan occurrence.
type MonthItemResponse struct {
	Kind           string  `json:"kind"`
	PlanID         string  `json:"plan_id"`
	PlanName       string  `json:"plan_name"`
	CategoryID     string  `json:"category_id"`
	CategoryName   string  `json:"category_name"`
	CategoryType   string  `json:"category_type"`
	CategoryIcon   string  `json:"category_icon"`
	CategoryColor  string  `json:"category_color"`
	Amount         string  `json:"amount"`
	EntryID        *string `json:"entry_id,omitempty"`
	WouldCauseDebt bool    `json:"would_cause_debt"`
}

// MonthSummaryResponse represents one month of a projection window.
type MonthSummaryResponse struct {
	MonthKey           string              `json:"month_key"`
	DisplayName        string              `json:"display_name"`
	Items              []MonthItemResponse `json:"items"`
	ExpectedBalance    string              `json:"expected_balance"`
	ActualBalance      string              `json:"actual_balance"`
	CumulativeExpected string              `json:"cumulative_expected"`
	CumulativeActual   string              `json:"cumulative_actual"`
}

// ProjectionResponse represents the response for a projection query.
type ProjectionResponse struct {
	StartMonth      string                 `json:"start_month"`
	Months          int                    `json:"months"`
	StartingBalance string                 `json:"starting_balance"`
	Summaries       []MonthSummaryResponse `json:"summaries"`
}

// AffordabilityResponse represents the response for an affordability query.
// MonthKey and DisplayName are empty when no month in the window qualifies.
type AffordabilityResponse struct {
	Amount      string `json:"amount"`
	Affordable  bool   `json:"affordable"`
	MonthKey    string `json:"month_key,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// ToMonthItemResponse converts a derived MonthItem to its DTO.
func ToMonthItemResponse(item *entity.MonthItem) MonthItemResponse {
	response := MonthItemResponse{
		Kind:           string(item.Kind()),
		PlanID:         item.Plan().ID.String(),
		PlanName:       item.Plan().Name,
		CategoryID:     item.Category().ID.String(),
		CategoryName:   item.Category().Name,
		CategoryType:   string(item.Category().Type),
		CategoryIcon:   item.Category().Icon,
		CategoryColor:  item.Category().Color,
		Amount:         item.Amount().String(),
		WouldCauseDebt: item.WouldCauseDebt,
	}
	if entry, ok := item.Entry(); ok {
		id := entry.ID.String()
		response.EntryID = &id
	}
	return response
}

// ToMonthSummaryResponse converts a derived MonthSummary to its DTO.
func ToMonthSummaryResponse(summary *entity.MonthSummary) MonthSummaryResponse {
	items := make([]MonthItemResponse, len(summary.Items))
	for i := range summary.Items {
		items[i] = ToMonthItemResponse(&summary.Items[i])
	}
	return MonthSummaryResponse{
		MonthKey:           summary.MonthKey,
		DisplayName:        summary.DisplayName,
		Items:              items,
		ExpectedBalance:    summary.ExpectedBalance.String(),
		ActualBalance:      summary.ActualBalance.String(),
		CumulativeExpected: summary.CumulativeExpected.String(),
		CumulativeActual:   summary.CumulativeActual.String(),
	}
}
