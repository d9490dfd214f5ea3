// Package http is the inbound HTTP adapter. It translates echo requests
// into commands and queries and maps application errors to status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"hireflow/internal/adapters/out/postgres"
	"hireflow/internal/adapters/out/redis"
	"hireflow/internal/core/application/usecases/commands"
	"hireflow/internal/core/application/usecases/queries"
	"hireflow/internal/core/domain/model/candidate"
	"hireflow/internal/core/domain/model/interview"
	"hireflow/internal/core/domain/model/kernel"
	"hireflow/internal/core/domain/model/role"
	"hireflow/internal/pkg/errs"
)

// analyticsCacheTTL bounds how stale the cached pipeline funnel may get.
const analyticsCacheTTL = 30 * time.Second

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createRoleHandler        commands.CreateRoleCommandHandler
	openRoleHandler          commands.OpenRoleCommandHandler
	closeRoleHandler         commands.CloseRoleCommandHandler
	createCandidateHandler   commands.CreateCandidateCommandHandler
	advanceCandidateHandler  commands.AdvanceCandidateCommandHandler
	scheduleInterviewHandler commands.ScheduleInterviewCommandHandler
	completeInterviewHandler commands.CompleteInterviewCommandHandler
	cancelInterviewHandler   commands.CancelInterviewCommandHandler
	extendOfferHandler       commands.ExtendOfferCommandHandler
	respondToOfferHandler    commands.RespondToOfferCommandHandler

	// Query handlers
	listRolesHandler            queries.ListRolesQueryHandler
	listCandidatesHandler       queries.ListCandidatesQueryHandler
	getPipelineAnalyticsHandler queries.GetPipelineAnalyticsQueryHandler

	// Infrastructure for caching and health reporting
	db    *postgres.Database
	redis *redis.Client
	cache *redis.Cache
}

// NewServer creates the HTTP server with the required command and query
// handlers plus the infrastructure it reports on and caches through.
func NewServer(
	createRoleHandler commands.CreateRoleCommandHandler,
	openRoleHandler commands.OpenRoleCommandHandler,
	closeRoleHandler commands.CloseRoleCommandHandler,
	createCandidateHandler commands.CreateCandidateCommandHandler,
	advanceCandidateHandler commands.AdvanceCandidateCommandHandler,
	scheduleInterviewHandler commands.ScheduleInterviewCommandHandler,
	completeInterviewHandler commands.CompleteInterviewCommandHandler,
	cancelInterviewHandler commands.CancelInterviewCommandHandler,
	extendOfferHandler commands.ExtendOfferCommandHandler,
	respondToOfferHandler commands.RespondToOfferCommandHandler,
	listRolesHandler queries.ListRolesQueryHandler,
	listCandidatesHandler queries.ListCandidatesQueryHandler,
	getPipelineAnalyticsHandler queries.GetPipelineAnalyticsQueryHandler,
	db *postgres.Database,
	redisClient *redis.Client,
	cache *redis.Cache,
) *Server {
	return &Server{
		createRoleHandler:           createRoleHandler,
		openRoleHandler:             openRoleHandler,
		closeRoleHandler:            closeRoleHandler,
		createCandidateHandler:      createCandidateHandler,
		advanceCandidateHandler:     advanceCandidateHandler,
		scheduleInterviewHandler:    scheduleInterviewHandler,
		completeInterviewHandler:    completeInterviewHandler,
		cancelInterviewHandler:      cancelInterviewHandler,
		extendOfferHandler:          extendOfferHandler,
		respondToOfferHandler:       respondToOfferHandler,
		listRolesHandler:            listRolesHandler,
		listCandidatesHandler:       listCandidatesHandler,
		getPipelineAnalyticsHandler: getPipelineAnalyticsHandler,
		db:                          db,
		redis:                       redisClient,
		cache:                       cache,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/roles", s.CreateRole)
	api.GET("/roles", s.ListRoles)
	api.POST("/roles/:roleId/open", s.OpenRole)
	api.POST("/roles/:roleId/close", s.CloseRole)

	api.POST("/candidates", s.CreateCandidate)
	api.GET("/candidates", s.ListCandidates)
	api.POST("/candidates/:candidateId/advance", s.AdvanceCandidate)
	api.POST("/candidates/:candidateId/interviews", s.ScheduleInterview)
	api.POST("/candidates/:candidateId/offers", s.ExtendOffer)

	api.POST("/interviews/:interviewId/complete", s.CompleteInterview)
	api.POST("/interviews/:interviewId/cancel", s.CancelInterview)

	api.POST("/offers/:offerId/respond", s.RespondToOffer)

	api.GET("/analytics/pipeline", s.GetPipelineAnalytics)

	e.GET("/health", s.GetHealth)
}

// CreateRole handles POST /api/v1/roles - creates a new job role in Draft.
func (s *Server) CreateRole(ctx echo.Context) error {
	var newRole NewRole
	if err := ctx.Bind(&newRole); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateRoleCommand(newRole.Title, newRole.Department, newRole.Level)
	if err != nil {
		return badRequest(ctx, "Invalid role data: "+err.Error())
	}

	if handleErr := s.createRoleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return applicationError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: cmd.RoleID().Bytes()})
}

// OpenRole handles POST /api/v1/roles/{roleId}/open - publishes a Draft role.
func (s *Server) OpenRole(ctx echo.Context) error {
	roleID, err := kernel.UUIDFromString(ctx.Param("roleId"))
	if err != nil {
		return badRequest(ctx, "Invalid role ID")
	}

	cmd, err := commands.NewOpenRoleCommand(roleID)
	if err != nil {
		return badRequest(ctx, "Invalid role data: "+err.Error())
	}

	if handleErr := s.openRoleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return applicationError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseRole handles POST /api/v1/roles/{roleId}/close - ends hiring for a role.
func (s *Server) CloseRole(ctx echo.Context) error {
	roleID, err := kernel.UUIDFromString(ctx.Param("roleId"))
	if err != nil {
		return badRequest(ctx, "Invalid role ID")
	}

	cmd, err := commands.NewCloseRoleCommand(roleID)
	if err != nil {
		return badRequest(ctx, "Invalid role data: "+err.Error())
	}

	if handleErr := s.closeRoleHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return applicationError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListRoles handles GET /api/v1/roles - lists roles with optional status
// filter and pagination.
func (s *Server) ListRoles(ctx echo.Context) error {
	var status *role.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := role.StatusFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid status filter")
		}
		status = &parsed
	}

	limit, offset, err := paginationParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListRolesQuery(status, limit, offset)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	roles, err := s.listRolesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return applicationError(ctx, err)
	}

	response := make([]Role, len(roles))
	for i, r := range roles {
		response[i] = Role{
			Id:         r.ID.Bytes(),
			Title:      r.Title,
			Department: r.Department,
			Level:      r.Level,
			Status:     r.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCandidate handles POST /api/v1/candidates - adds a candidate to an
// open role.
func (s *Server) CreateCandidate(ctx echo.Context) error {
	var newCandidate NewCandidate
	if err := ctx.Bind(&newCandidate); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	roleID, err := kernel.UUIDFromBytes(newCandidate.RoleId[:])
	if err != nil {
		return badRequest(ctx, "Invalid role ID")
	}

	cmd, err := commands.NewCreateCandidateCommand(roleID, newCandidate.Name, string(newCandidate.Email))
	if err != nil {
		return badRequest(ctx, "Invalid candidate data: "+err.Error())
	}

	if handleErr := s.createCandidateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return applicationError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: cmd.CandidateID().Bytes()})
}

// AdvanceCandidate handles POST /api/v1/candidates/{candidateId}/advance -
// moves a candidate one pipeline stage forward.
func (s *Server) AdvanceCandidate(ctx echo.Context) error {
	candidateID, err := kernel.UUIDFromString(ctx.Param("candidateId"))
	if err != nil {
		return badRequest(ctx, "Invalid candidate ID")
	}

	cmd, err := commands.NewAdvanceCandidateCommand(candidateID)
	if err != nil {
		return badRequest(ctx, "Invalid candidate data: "+err.Error())
	}

	if handleErr := s.advanceCandidateHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return applicationError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListCandidates handles GET /api/v1/candidates - lists candidates with
// optional role and stage filters plus pagination.
func (s *Server) ListCandidates(ctx echo.Context) error {
	var roleID *kernel.UUID
	if raw := ctx.QueryParam("roleId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid role ID filter")
		}
		roleID = &parsed
	}

	var stage *candidate.Stage
	if raw := ctx.QueryParam("stage"); raw != "" {
		parsed, err := candidate.StageFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid stage filter")
		}
		stage = &parsed
	}

	limit, offset, err := paginationParams(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListCandidatesQuery(roleID, stage, limit, offset)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	candidates, err := s.listCandidatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return applicationError(ctx, err)
	}

	response := make([]Candidate, len(candidates))
	for i, c := range candidates {
		response[i] = Candidate{
			Id:     c.ID.Bytes(),
			RoleId: c.RoleID.Bytes(),
			Name:   c.Name,
			Email:  openapi_types.Email(c.Email),
			Stage:  c.Stage,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ScheduleInterview handles POST /api/v1/candidates/{candidateId}/interviews -
// books an interview and moves the candidate to Interviewing.
func (s *Server) ScheduleInterview(ctx echo.Context) error {
	candidateID, err := kernel.UUIDFromString(ctx.Param("candidateId"))
	if err != nil {
		return badRequest(ctx, "Invalid candidate ID")
	}

	var newInterview NewInterview
	if err = ctx.Bind(&newInterview); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewScheduleInterviewCommand(
		candidateID, interview.Kind(newInterview.Kind), newInterview.ScheduledAt)
	if err != nil {
		return badRequest(ctx, "Invalid interview data: "+err.Error())
	}

	if handleErr := s.scheduleInterviewHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return applicationError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: cmd.InterviewID().Bytes()})
}

// ExtendOffer handles POST /api/v1/candidates/{candidateId}/offers -
// extends a compensation offer and moves the candidate to Offered.
func (s *Server) ExtendOffer(ctx echo.Context) error {
	candidateID, err := kernel.UUIDFromString(ctx.Param("candidateId"))
	if err != nil {
		return badRequest(ctx, "Invalid candidate ID")
	}

	var newOffer NewOffer
	if err = ctx.Bind(&newOffer); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewExtendOfferCommand(
		candidateID, newOffer.Amount, newOffer.Currency, newOffer.ExpiresAt)
	if err != nil {
		return badRequest(ctx, "Invalid offer data: "+err.Error())
	}

	if handleErr := s.extendOfferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return applicationError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, Created{Id: cmd.OfferID().Bytes()})
}

// CompleteInterview handles POST /api/v1/interviews/{interviewId}/complete -
// records that a scheduled interview took place.
func (s *Server) CompleteInterview(ctx echo.Context) error {
	interviewID, err := kernel.UUIDFromString(ctx.Param("interviewId"))
	if err != nil {
		return badRequest(ctx, "Invalid interview ID")
	}

	cmd, err := commands.NewCompleteInterviewCommand(interviewID)
	if err != nil {
		return badRequest(ctx, "Invalid interview data: "+err.Error())
	}

	if handleErr := s.completeInterviewHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return applicationError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelInterview handles POST /api/v1/interviews/{interviewId}/cancel -
// calls off a scheduled interview. The candidate stays in their current
// stage.
func (s *Server) CancelInterview(ctx echo.Context) error {
	interviewID, err := kernel.UUIDFromString(ctx.Param("interviewId"))
	if err != nil {
		return badRequest(ctx, "Invalid interview ID")
	}

	cmd, err := commands.NewCancelInterviewCommand(interviewID)
	if err != nil {
		return badRequest(ctx, "Invalid interview data: "+err.Error())
	}

	if handleErr := s.cancelInterviewHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return applicationError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RespondToOffer handles POST /api/v1/offers/{offerId}/respond - records the
// candidate's decision on a sent offer. Accepting hires the candidate.
func (s *Server) RespondToOffer(ctx echo.Context) error {
	offerID, err := kernel.UUIDFromString(ctx.Param("offerId"))
	if err != nil {
		return badRequest(ctx, "Invalid offer ID")
	}

	var decision OfferDecision
	if err = ctx.Bind(&decision); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRespondToOfferCommand(offerID, decision.Decision)
	if err != nil {
		return badRequest(ctx, "Invalid offer response: "+err.Error())
	}

	if handleErr := s.respondToOfferHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return applicationError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPipelineAnalytics handles GET /api/v1/analytics/pipeline - returns the
// hiring funnel, company-wide or scoped to one role. Results are served
// from the Redis cache when fresh; cache failures fall through to the
// database, they never fail the request.
func (s *Server) GetPipelineAnalytics(ctx echo.Context) error {
	var roleID *kernel.UUID
	cacheKey := "pipeline:all"
	if raw := ctx.QueryParam("roleId"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return badRequest(ctx, "Invalid role ID filter")
		}
		roleID = &parsed
		cacheKey = "pipeline:" + parsed.String()
	}

	requestCtx := ctx.Request().Context()

	var cached PipelineAnalytics
	if found, err := s.cache.Get(requestCtx, cacheKey, &cached); err == nil && found {
		return ctx.JSON(http.StatusOK, cached)
	}

	query, err := queries.NewGetPipelineAnalyticsQuery(roleID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	analytics, err := s.getPipelineAnalyticsHandler.Handle(requestCtx, query)
	if err != nil {
		return applicationError(ctx, err)
	}

	response := PipelineAnalytics{
		TotalCandidates: analytics.TotalCandidates,
		StageCounts:     make([]StageCount, len(analytics.StageCounts)),
		Conversions:     make([]ConversionRate, len(analytics.Conversions)),
	}
	for i, sc := range analytics.StageCounts {
		response.StageCounts[i] = StageCount{Stage: sc.Stage, Count: sc.Count}
	}
	for i, cr := range analytics.Conversions {
		response.Conversions[i] = ConversionRate{From: cr.From, To: cr.To, Rate: cr.Rate}
	}

	if cacheErr := s.cache.Set(requestCtx, cacheKey, response, analyticsCacheTTL); cacheErr != nil {
		ctx.Logger().Warnf("pipeline analytics cache write failed: %v", cacheErr)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetHealth handles GET /health - reports connectivity and pool usage for
// PostgreSQL and Redis. Returns 503 when either dependency is down.
func (s *Server) GetHealth(ctx echo.Context) error {
	requestCtx := ctx.Request().Context()

	dbStats := s.db.Stats()
	health := Health{
		Status: "healthy",
		Database: DatabaseHealth{
			Healthy:      s.db.Ping(requestCtx) == nil,
			OpenConns:    dbStats.OpenConnections,
			InUse:        dbStats.InUse,
			Idle:         dbStats.Idle,
			WaitCount:    dbStats.WaitCount,
			MaxOpenConns: dbStats.MaxOpenConnections,
		},
	}

	redisStats := s.redis.PoolStats()
	health.Redis = RedisHealth{
		Healthy:    s.redis.Ping(requestCtx) == nil,
		TotalConns: redisStats.TotalConns,
		IdleConns:  redisStats.IdleConns,
		Hits:       redisStats.Hits,
		Misses:     redisStats.Misses,
	}

	if !health.Database.Healthy || !health.Redis.Healthy {
		health.Status = "unhealthy"
		return ctx.JSON(http.StatusServiceUnavailable, health)
	}

	return ctx.JSON(http.StatusOK, health)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// applicationError maps use-case errors to HTTP status codes.
func applicationError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrResourceUnavailable):
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Service temporarily unavailable",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func paginationParams(ctx echo.Context) (limit, offset int, err error) {
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("limit must be an integer")
		}
	}
	if raw := ctx.QueryParam("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.New("offset must be an integer")
		}
	}
	return limit, offset, nil
}
