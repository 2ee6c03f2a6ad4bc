package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	httpapi "github.com/uxrlab/uxr-backend/internal/api/http"
	"github.com/uxrlab/uxr-backend/internal/api/http/middleware"
	genhttp "github.com/uxrlab/uxr-backend/internal/generation/http"
	"github.com/uxrlab/uxr-backend/internal/generation/llm"
	gensvc "github.com/uxrlab/uxr-backend/internal/generation/service"
	projhttp "github.com/uxrlab/uxr-backend/internal/projects/http"
	"github.com/uxrlab/uxr-backend/internal/projects/repository"
	projsvc "github.com/uxrlab/uxr-backend/internal/projects/service"
	"github.com/uxrlab/uxr-backend/internal/uploads"
	uploadhttp "github.com/uxrlab/uxr-backend/internal/uploads/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	FrontendURL string
	DB          *gorm.DB
	Uploads     *uploads.Store
	LLM         llm.Client
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{dep.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware())

	store := repository.NewStore(dep.DB)

	projectHandler := projhttp.New(projsvc.NewProjectService(store))
	projectHandler.Register(api.Group("/projects"))

	uploadHandler := uploadhttp.New(dep.Uploads)
	uploadHandler.Register(api.Group("/upload"))

	generateHandler := genhttp.New(gensvc.NewGenerateService(store, dep.Uploads, dep.LLM))
	generateHandler.Register(api.Group("/generate"))

	return r
}
