package v1

import (
	"net/http"

	"candidate-search-backend/config"
	"candidate-search-backend/internal/delivery/http/middleware"
	"candidate-search-backend/internal/delivery/http/response"
	"candidate-search-backend/internal/domain"
	"candidate-search-backend/internal/usecase"
	"candidate-search-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Accounts     domain.AccountService
	Contacts     domain.ContactService
	Files        domain.FileService
	News         domain.NewsService
	Candidates   domain.CandidateProfileService
	Recruiters   domain.RecruiterProfileService
	Interactions domain.InteractionService
	Health       usecase.HealthUsecase
	Sessions     *auth.Manager
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if !deps.Config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL, deps.Config.Debug))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler())

	// Uploaded files are served straight from the web root.
	r.Static("/Uploads", deps.Config.WebRoot+"/Uploads")

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", deps.Health.Check(c.Request.Context()))
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Sessions, deps.Config, deps.Accounts))

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))

	recruiter := protected.Group("")
	recruiter.Use(middleware.RequireRole(domain.RoleRecruiter, domain.RoleAdmin))

	candidate := protected.Group("")
	candidate.Use(middleware.RequireRole(domain.RoleCandidate))

	NewAuthHandler(v1, protected, deps.Accounts, deps.Config)
	NewAccountHandler(protected, deps.Accounts, deps.Files)
	NewContactHandler(protected, deps.Contacts)
	NewFileHandler(protected, deps.Files)
	NewNewsHandler(v1, admin, deps.News)
	NewCandidateHandler(candidate, deps.Candidates)
	NewRecruiterHandler(recruiter, deps.Recruiters)
	NewInteractionHandler(recruiter, candidate, deps.Interactions)

	return r
}
