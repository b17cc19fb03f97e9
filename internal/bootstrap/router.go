package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/satwik073/Priscus-server/internal/api/http"
	"github.com/satwik073/Priscus-server/internal/api/http/middleware"
	"github.com/satwik073/Priscus-server/internal/generation"
	projecthttp "github.com/satwik073/Priscus-server/internal/projects/http"
	"github.com/satwik073/Priscus-server/internal/projects/repository"
	"github.com/satwik073/Priscus-server/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORSOrigins []string
	Store       repository.Store
	Generator   *generation.Generator
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(dep.CORSOrigins)))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store, dep.Generator.Metrics())
	healthHandler.RegisterRoutes(r)

	projectService := service.NewProjectService(dep.Store, dep.Generator)
	projecthttp.New(projectService).Register(r.Group("/api"))

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
