package cmd

import (
	"log/slog"

	httpadapter "hireflow/internal/adapters/in/http"
	"hireflow/internal/adapters/out/postgres"
	"hireflow/internal/adapters/out/redis"
	"hireflow/internal/core/application/usecases/commands"
	"hireflow/internal/core/application/usecases/queries"
	"hireflow/internal/jobs"
	"hireflow/internal/pkg/ratelimit"
)

// CompositionRoot wires adapters, use cases, and infrastructure together.
// It owns no lifecycles: the database and Redis client are created and
// closed by main.
type CompositionRoot struct {
	config      Config
	db          *postgres.Database
	redisClient *redis.Client
	uowFactory  *postgres.GormUnitOfWorkFactory
	logger      *slog.Logger
}

// NewCompositionRoot creates the composition root over the already-opened
// infrastructure.
func NewCompositionRoot(
	config Config, db *postgres.Database, redisClient *redis.Client, logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:      config,
		db:          db,
		redisClient: redisClient,
		uowFactory:  postgres.NewGormUnitOfWorkFactory(db, config.DBAcquireTimeout),
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCreateRoleCommandHandler() commands.CreateRoleCommandHandler {
	var f commands.RoleUoWFactory = FuncRoleUoWFactory(func() commands.RoleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateOpenRoleCommandHandler() commands.OpenRoleCommandHandler {
	var f commands.RoleUoWFactory = FuncRoleUoWFactory(func() commands.RoleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateCloseRoleCommandHandler() commands.CloseRoleCommandHandler {
	var f commands.RoleUoWFactory = FuncRoleUoWFactory(func() commands.RoleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseRoleCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCandidateCommandHandler() commands.CreateCandidateCommandHandler {
	var f commands.CandidateUoWFactory = FuncCandidateUoWFactory(func() commands.CandidateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCandidateCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceCandidateCommandHandler() commands.AdvanceCandidateCommandHandler {
	var f commands.CandidateUoWFactory = FuncCandidateUoWFactory(func() commands.CandidateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceCandidateCommandHandler(f)
}

func (c *CompositionRoot) CreateScheduleInterviewCommandHandler() commands.ScheduleInterviewCommandHandler {
	var f commands.InterviewUoWFactory = FuncInterviewUoWFactory(func() commands.InterviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleInterviewCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteInterviewCommandHandler() commands.CompleteInterviewCommandHandler {
	var f commands.InterviewUoWFactory = FuncInterviewUoWFactory(func() commands.InterviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteInterviewCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelInterviewCommandHandler() commands.CancelInterviewCommandHandler {
	var f commands.InterviewUoWFactory = FuncInterviewUoWFactory(func() commands.InterviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelInterviewCommandHandler(f)
}

func (c *CompositionRoot) CreateExtendOfferCommandHandler() commands.ExtendOfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExtendOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateRespondToOfferCommandHandler() commands.RespondToOfferCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRespondToOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateExpireOffersCommandHandler() commands.ExpireOffersCommandHandler {
	var f commands.OfferUoWFactory = FuncOfferUoWFactory(func() commands.OfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireOffersCommandHandler(f)
}

func (c *CompositionRoot) CreateListRolesQueryHandler() queries.ListRolesQueryHandler {
	return queries.NewListRolesQueryHandler(c.db.Gorm())
}

func (c *CompositionRoot) CreateListCandidatesQueryHandler() queries.ListCandidatesQueryHandler {
	return queries.NewListCandidatesQueryHandler(c.db.Gorm())
}

func (c *CompositionRoot) CreateGetPipelineAnalyticsQueryHandler() queries.GetPipelineAnalyticsQueryHandler {
	return queries.NewGetPipelineAnalyticsQueryHandler(c.db.Gorm())
}

// CreateRateLimiter builds the limiter over the shared Redis counter store.
func (c *CompositionRoot) CreateRateLimiter() *ratelimit.Limiter {
	return ratelimit.NewLimiter(redis.NewCounterStore(c.redisClient))
}

// CreateSessionStore builds the Redis-backed session store.
func (c *CompositionRoot) CreateSessionStore() *redis.SessionStore {
	return redis.NewSessionStore(c.redisClient, c.config.SessionTTL)
}

// CreateHTTPServer assembles the HTTP adapter with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateRoleCommandHandler(),
		c.CreateOpenRoleCommandHandler(),
		c.CreateCloseRoleCommandHandler(),
		c.CreateCreateCandidateCommandHandler(),
		c.CreateAdvanceCandidateCommandHandler(),
		c.CreateScheduleInterviewCommandHandler(),
		c.CreateCompleteInterviewCommandHandler(),
		c.CreateCancelInterviewCommandHandler(),
		c.CreateExtendOfferCommandHandler(),
		c.CreateRespondToOfferCommandHandler(),
		c.CreateListRolesQueryHandler(),
		c.CreateListCandidatesQueryHandler(),
		c.CreateGetPipelineAnalyticsQueryHandler(),
		c.db,
		c.redisClient,
		redis.NewCache(c.redisClient, "analytics"),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireOffersCommandHandler(), c.logger)
}

type FuncRoleUoWFactory func() commands.RoleUoW

func (f FuncRoleUoWFactory) Create() commands.RoleUoW {
	return f()
}

type FuncCandidateUoWFactory func() commands.CandidateUoW

func (f FuncCandidateUoWFactory) Create() commands.CandidateUoW {
	return f()
}

type FuncInterviewUoWFactory func() commands.InterviewUoW

func (f FuncInterviewUoWFactory) Create() commands.InterviewUoW {
	return f()
}

type FuncOfferUoWFactory func() commands.OfferUoW

func (f FuncOfferUoWFactory) Create() commands.OfferUoW {
	return f()
}
