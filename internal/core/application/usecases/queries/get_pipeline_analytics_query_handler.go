package queries

import (
	"context"

	"gorm.io/gorm"

	"hireflow/internal/core/domain/model/candidate"
)

// GetPipelineAnalyticsQueryHandler computes hiring funnel metrics from the
// candidates table. Stage counts come straight from SQL; conversion rates
// are derived from cumulative happy-path counts.
type GetPipelineAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewGetPipelineAnalyticsQueryHandler creates a handler for analytics queries.
func NewGetPipelineAnalyticsQueryHandler(db *gorm.DB) GetPipelineAnalyticsQueryHandler {
	return GetPipelineAnalyticsQueryHandler{db: db}
}

// Handle counts candidates per stage and derives stage-to-stage conversion
// rates. A candidate currently at Interviewing has necessarily reached
// Screening, so "reached stage S" is the sum of counts at S and beyond.
func (h GetPipelineAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetPipelineAnalyticsQuery,
) (GetPipelineAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPipelineAnalyticsQueryResponse{}, err
	}

	sql := `
		SELECT
			stage,
			COUNT(*)
		FROM candidates
	`
	args := make([]any, 0, 1)
	if query.RoleID() != nil {
		sql += " WHERE role_id = ?"
		args = append(args, query.RoleID().String())
	}
	sql += " GROUP BY stage"

	counts := make(map[candidate.Stage]int)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return GetPipelineAnalyticsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var stage, count int

		if err = rows.Scan(&stage, &count); err != nil {
			return GetPipelineAnalyticsQueryResponse{}, err
		}

		counts[candidate.Stage(stage)] = count
	}

	if err = rows.Err(); err != nil {
		return GetPipelineAnalyticsQueryResponse{}, err
	}

	return buildAnalyticsResponse(counts), nil
}

func buildAnalyticsResponse(counts map[candidate.Stage]int) GetPipelineAnalyticsQueryResponse {
	allStages := []candidate.Stage{
		candidate.Applied, candidate.Screening, candidate.Interviewing,
		candidate.Offered, candidate.Hired, candidate.Rejected, candidate.Withdrawn,
	}
	happyPath := []candidate.Stage{
		candidate.Applied, candidate.Screening, candidate.Interviewing,
		candidate.Offered, candidate.Hired,
	}

	response := GetPipelineAnalyticsQueryResponse{
		StageCounts: make([]StageCount, 0, len(allStages)),
		Conversions: make([]ConversionRate, 0, len(happyPath)-1),
	}

	for _, stage := range allStages {
		response.TotalCandidates += counts[stage]
		response.StageCounts = append(response.StageCounts, StageCount{
			Stage: stage.String(),
			Count: counts[stage],
		})
	}

	// reached[i] is the number of candidates at happyPath[i] or beyond.
	reached := make([]int, len(happyPath))
	for i := len(happyPath) - 1; i >= 0; i-- {
		reached[i] = counts[happyPath[i]]
		if i < len(happyPath)-1 {
			reached[i] += reached[i+1]
		}
	}

	for i := 0; i < len(happyPath)-1; i++ {
		rate := 0.0
		if reached[i] > 0 {
			rate = float64(reached[i+1]) / float64(reached[i])
		}

		response.Conversions = append(response.Conversions, ConversionRate{
			From: happyPath[i].String(),
			To:   happyPath[i+1].String(),
			Rate: rate,
		})
	}

	return response
}
