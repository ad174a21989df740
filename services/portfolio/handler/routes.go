package handler

import (
	"github.com/btcfolio/btcfolio/internal/pkg/models"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	httpHandler "github.com/btcfolio/btcfolio/services/portfolio/handler/http"
)

// Handler coordinates the HTTP handlers of the portfolio service
type Handler struct {
	portfolioHandler *httpHandler.PortfolioHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(portfolioHandler *httpHandler.PortfolioHandler, cfg *models.Config) *Handler {
	return &Handler{
		portfolioHandler: portfolioHandler,
		cfg:              cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware. Authentication
// itself lives with the identity provider; here the verified user_id claim
// is lifted into the Echo context for ownership checks.
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all routes of the portfolio service
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", h.GetJWTMiddleware())

	// Transaction ledger
	txGroup := protected.Group("/transactions")
	txGroup.GET("", h.portfolioHandler.ListTransactions)
	txGroup.POST("", h.portfolioHandler.CreateTransaction)
	txGroup.PUT("/:id", h.portfolioHandler.UpdateTransaction)
	txGroup.DELETE("/:id", h.portfolioHandler.DeleteTransaction)

	// Valuation views and exports
	portfolioGroup := protected.Group("/portfolio")
	portfolioGroup.GET("/summary", h.portfolioHandler.GetSummary)
	portfolioGroup.GET("/series", h.portfolioHandler.GetValueSeries)
	portfolioGroup.GET("/export/:format", h.portfolioHandler.Export)

	// Spot price
	priceGroup := protected.Group("/price")
	priceGroup.GET("", h.portfolioHandler.GetPrice)
	priceGroup.POST("/refresh", h.portfolioHandler.RefreshPrice)
}
