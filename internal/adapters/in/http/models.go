package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the JSON error body for all non-2xx responses.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created is the response body for resource-creating endpoints.
type Created struct {
	Id openapi_types.UUID `json:"id"`
}

// NewRole is the request body for creating a job role.
type NewRole struct {
	Title      string `json:"title"`
	Department string `json:"department"`
	Level      string `json:"level"`
}

// Role is one job role in list responses.
type Role struct {
	Id         openapi_types.UUID `json:"id"`
	Title      string             `json:"title"`
	Department string             `json:"department"`
	Level      string             `json:"level"`
	Status     string             `json:"status"`
}

// NewCandidate is the request body for adding a candidate to a role.
type NewCandidate struct {
	RoleId openapi_types.UUID  `json:"roleId"`
	Name   string              `json:"name"`
	Email  openapi_types.Email `json:"email"`
}

// Candidate is one candidate in list responses.
type Candidate struct {
	Id     openapi_types.UUID  `json:"id"`
	RoleId openapi_types.UUID  `json:"roleId"`
	Name   string              `json:"name"`
	Email  openapi_types.Email `json:"email"`
	Stage  string              `json:"stage"`
}

// NewInterview is the request body for scheduling an interview.
type NewInterview struct {
	Kind        string    `json:"kind"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

// NewOffer is the request body for extending an offer. Amount is in minor
// currency units.
type NewOffer struct {
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// OfferDecision is the request body for answering a sent offer. Decision is
// "accepted" or "declined".
type OfferDecision struct {
	Decision string `json:"decision"`
}

// StageCount is the number of candidates currently at one pipeline stage.
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// ConversionRate is the fraction of candidates who moved from one pipeline
// stage to the next.
type ConversionRate struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Rate float64 `json:"rate"`
}

// PipelineAnalytics is the hiring funnel response.
type PipelineAnalytics struct {
	TotalCandidates int              `json:"totalCandidates"`
	StageCounts     []StageCount     `json:"stageCounts"`
	Conversions     []ConversionRate `json:"conversions"`
}

// DatabaseHealth reports PostgreSQL connectivity and pool usage.
type DatabaseHealth struct {
	Healthy      bool  `json:"healthy"`
	OpenConns    int   `json:"openConns"`
	InUse        int   `json:"inUse"`
	Idle         int   `json:"idle"`
	WaitCount    int64 `json:"waitCount"`
	MaxOpenConns int   `json:"maxOpenConns"`
}

// RedisHealth reports Redis connectivity and pool usage.
type RedisHealth struct {
	Healthy    bool   `json:"healthy"`
	TotalConns uint32 `json:"totalConns"`
	IdleConns  uint32 `json:"idleConns"`
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
}

// Health is the health endpoint response.
type Health struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
	Redis    RedisHealth    `json:"redis"`
}
