package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/edukshare-max/fastapi-backend/internal/apierror"
	"github.com/edukshare-max/fastapi-backend/internal/config"
	"github.com/edukshare-max/fastapi-backend/internal/handler"
	"github.com/edukshare-max/fastapi-backend/internal/middleware"
	"github.com/edukshare-max/fastapi-backend/internal/model"
	"github.com/edukshare-max/fastapi-backend/internal/repository"
	"github.com/edukshare-max/fastapi-backend/internal/service"
	"github.com/edukshare-max/fastapi-backend/internal/token"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Cosmos DB. Everything
// is constructed here once; no package holds mutable globals.
func New(cfg *config.Config, db *mongo.Database) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RateLimiter(cfg.RateLimitMaxPerMin))

	// ── Repositories ─────────────────────────────────────────────────────────
	carnetRepo := repository.NewCarnetRepository(db, cfg.ContainerCarnets)
	citaRepo := repository.NewCitaRepository(db, cfg.ContainerCitas)
	usuarioRepo := repository.NewUsuarioRepository(db, cfg.ContainerUsuarios)
	auditRepo := repository.NewAuditRepository(db, cfg.ContainerAuditoria)

	// ── Services ─────────────────────────────────────────────────────────────
	tokens := token.NewService(cfg.JWTSecret,
		time.Duration(cfg.JWTExpiresDays)*24*time.Hour,
		time.Duration(cfg.JWTAdminExpHours)*time.Hour)
	authSvc := service.NewAuthService(carnetRepo, citaRepo, tokens)
	adminSvc := service.NewAdminService(usuarioRepo, auditRepo, tokens,
		cfg.MaxLoginAttempts, cfg.LockoutMinutes)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, tokens)
	carnetH := handler.NewCarnetHandler(authSvc)
	citasH := handler.NewCitasHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(adminSvc)
	auditH := handler.NewAuditHandler(adminSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/ping", handler.Health(db, cfg.Env))

	loginLimiter := middleware.LoginRateLimiter(cfg.LoginRateLimit)
	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimiter, authH.Login)
		auth.POST("/verify", authH.Verify)
		auth.POST("/admin/login", loginLimiter, usuariosH.Login)
	}

	jwtMW := middleware.JWTAuth(tokens)

	// Student resources require the matricula claim
	me := r.Group("/me", jwtMW)
	{
		me.GET("/carnet", carnetH.Get)
		me.GET("/citas", citasH.List)
		me.GET("/citas/:id", citasH.Get)
	}

	// Staff resources: any staff token for profile and catalog, the
	// admin role for account management and auditing
	personal := r.Group("/auth", jwtMW, middleware.RequirePersonal())
	{
		personal.GET("/me", usuariosH.Me)
		personal.GET("/instituciones", handler.Instituciones)

		admin := personal.Group("", middleware.RequireRol(model.RolAdmin))
		{
			admin.GET("/users", usuariosH.Listar)
			admin.POST("/register", usuariosH.Crear)
			admin.PATCH("/users/:id", usuariosH.Actualizar)
			admin.GET("/audit-logs", auditH.Listar)
			admin.GET("/audit-logs/stats", auditH.Stats)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, apierror.New("Endpoint no encontrado"))
	})

	return r
}
