package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"grillbay.com/app/internal/http/cartcookie"
	"grillbay.com/app/internal/http/handlers"
	"grillbay.com/app/internal/http/middleware"
	"grillbay.com/app/internal/modules/checkout"
	"grillbay.com/app/templates"
)

type Deps struct {
	Logger   *slog.Logger
	Checkout *checkout.Service
	CartCK   *cartcookie.Codec
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(templates.Must())

	// ErrorHandler wraps Recovery so a recovered panic still gets the
	// uniform error envelope.
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.ErrorHandler(d.Logger))
	r.Use(middleware.Recovery(d.Logger))

	co := handlers.NewCheckoutHandler(d.CartCK)
	r.GET("/menu-checkout", co.Get)
	r.GET("/order-confirmation", co.Confirmation)

	cart := handlers.NewCartHandler(d.CartCK)
	r.PUT("/api/cart", cart.Put)
	r.GET("/api/cart", cart.Get)
	r.DELETE("/api/cart", cart.Delete)

	sess := handlers.NewSessionHandler(d.Checkout)
	r.POST("/api/create-checkout-session", sess.Create)

	return r
}
