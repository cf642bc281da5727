package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	_ "github.com/zelezara-doo/shop-backend/docs" // Импорт сгенерированных файлов
	"github.com/zelezara-doo/shop-backend/internal/usecase"
	"github.com/zelezara-doo/shop-backend/pkg/logger"
)

type Router struct {
	router     *chi.Mux
	adminToken string
	logger     logger.Logger
}

func NewRouter(router *chi.Mux, adminToken string, logger logger.Logger) *Router {
	return &Router{router: router, adminToken: adminToken, logger: logger}
}

func (r *Router) Init(orderUC usecase.OrderUC, catalogUC usecase.CatalogUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	orderHandler := NewOrderHandler(orderUC, r.logger)
	catalogHandler := NewCatalogHandler(catalogUC, r.logger)
	adminOnly := AdminOnly(r.adminToken, r.logger)

	r.router.Route("/api/v1", func(v1 chi.Router) {
		// Публичная витрина и оформление заказа
		v1.Get("/categories", catalogHandler.listCategories)
		v1.Get("/products", catalogHandler.listProducts)
		v1.Get("/products/{id}", catalogHandler.getProduct)
		v1.Post("/orders", orderHandler.createOrder)

		// Административные операции за статическим токеном
		v1.Group(func(admin chi.Router) {
			admin.Use(adminOnly)

			admin.Get("/orders", orderHandler.listOrders)
			admin.Get("/orders/{id}", orderHandler.getOrder)
			admin.Post("/orders/{id}/update-status", orderHandler.updateStatus)

			admin.Post("/categories", catalogHandler.createCategory)
			admin.Post("/subcategories", catalogHandler.createSubcategory)
			admin.Post("/products", catalogHandler.createProduct)
			admin.Post("/products/{id}/variants", catalogHandler.createVariant)
			admin.Post("/products/{id}/images", catalogHandler.addProductImages)
		})
	})
}
