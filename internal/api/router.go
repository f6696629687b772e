package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/todo-service/docs"
	"github.com/99minutos/todo-service/internal/api/handler"
	"github.com/99minutos/todo-service/internal/api/metrics"
	"github.com/99minutos/todo-service/internal/api/middleware"
	"github.com/99minutos/todo-service/internal/api/view"
	"github.com/99minutos/todo-service/internal/core/ports"
	"github.com/99minutos/todo-service/internal/session"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Auth     ports.AuthService
	Todos    ports.TodoService
	Admin    ports.AdminService
	Tokens   ports.AdminTokens
	Sessions *session.Manager
	Checks   []handler.DependencyCheck
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = view.MustNewRenderer()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// HTML forms can only POST; ?_method=PUT|DELETE selects the route.
	e.Pre(echomiddleware.MethodOverrideWithConfig(echomiddleware.MethodOverrideConfig{
		Getter: echomiddleware.MethodFromQuery("_method"),
	}))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(metrics.HTTPMiddleware())
	e.Use(middleware.Session(d.Sessions, d.Log))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(d.Auth, d.Sessions, d.Log)
	todoHandler := handler.NewTodoHandler(d.Todos, d.Sessions, d.Log)
	adminHandler := handler.NewAdminHandler(d.Admin, d.Log)
	requireUser := middleware.RequireUser()
	requireAdmin := middleware.RequireAdmin(d.Tokens, d.Log)

	// --- Public pages and auth ---
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.Login)
	e.GET("/register", authHandler.RegisterPage)
	e.POST("/register", authHandler.Register)
	e.GET("/adminlogin", authHandler.AdminLoginPage)
	e.POST("/adminlogin", authHandler.AdminLogin)
	e.GET("/admin", authHandler.AdminPage)
	e.GET("/logout", authHandler.Logout)
	e.POST("/logout", authHandler.Logout)

	// --- User routes ---
	e.GET("/", todoHandler.Home, requireUser)
	todos := e.Group("/todo", requireUser)
	todos.POST("", todoHandler.Create)
	todos.PUT("/:id", todoHandler.Update)
	todos.DELETE("/:id", todoHandler.Delete)

	// --- Admin routes ---
	admin := e.Group("/admin", requireAdmin)
	admin.GET("/Todolist", adminHandler.Todos)
	admin.GET("/Userlist", adminHandler.Users)
	admin.DELETE("/delete/:username", adminHandler.DeleteUser)
	admin.DELETE("/deletet/:_id", adminHandler.DeleteTodo)

	// --- Health checks, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler(d.Checks...)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness)     // readiness – are dependencies up?
	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
