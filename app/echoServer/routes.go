package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	arctrl "github.com/Maristella28/Bms-111925/app/echoServer/controller/assetrequest"
	authctrl "github.com/Maristella28/Bms-111925/app/echoServer/controller/auth"
	dashctrl "github.com/Maristella28/Bms-111925/app/echoServer/controller/dashboard"
	exportctrl "github.com/Maristella28/Bms-111925/app/echoServer/controller/export"
	surveyctrl "github.com/Maristella28/Bms-111925/app/echoServer/controller/survey"
)

type C struct {
	Auth      *authctrl.Controller
	Requests  *arctrl.Controller
	Dashboard *dashctrl.Controller
	Survey    *surveyctrl.Controller
	Export    *exportctrl.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// Auth
	authed := e.Group("/v1")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	authed.Use(extractClaims)

	// Resident feeds
	authed.GET("/announcements", c.Dashboard.Announcements)
	authed.GET("/emergency-hotlines", c.Dashboard.Hotlines)
	authed.GET("/programs/residents", c.Dashboard.Programs)

	// Back office
	admin := authed.Group("", RequireRole("admin"))
	admin.GET("/asset-requests", c.Requests.List)
	admin.GET("/asset-requests/status-counts", c.Requests.StatusCounts)
	admin.GET("/asset-requests/export", c.Export.RequestsXLSX)
	admin.GET("/asset-requests/returns.ics", c.Export.ReturnsCalendar)
	admin.PATCH("/asset-requests/:id", c.Requests.UpdateStatus)
	admin.POST("/asset-requests/:id/pay", c.Requests.Pay)
	admin.POST("/asset-requests/:id/quick-process", c.Requests.QuickProcess)
	admin.POST("/asset-requests/generate-receipt", c.Requests.GenerateReceipt)
	admin.POST("/asset-request-items/:id/generate-tracking", c.Requests.GenerateTracking)
	admin.GET("/asset-tracking", c.Requests.Tracking)
	admin.GET("/households/:id/survey-form", c.Survey.RenderForm)
}

// extractClaims pulls user id and role out of the verified token so
// handlers and the role guard can read them off the context.
func extractClaims(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		tokenObj := ctx.Get("user")
		tok, ok := tokenObj.(*jwt.Token)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		sub, ok := claims["sub"].(float64)
		if !ok {
			return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
		}
		ctx.Set("user_id", int64(sub))
		if role, ok := claims["role"].(string); ok {
			ctx.Set("role", role)
		}
		return next(ctx)
	}
}
