package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/quotecraft/quotecraft-backend/internal/api/http"
	"github.com/quotecraft/quotecraft-backend/internal/api/http/middleware"
	cataloghttp "github.com/quotecraft/quotecraft-backend/internal/catalog/http"
	catalogrepo "github.com/quotecraft/quotecraft-backend/internal/catalog/repository"
	customershttp "github.com/quotecraft/quotecraft-backend/internal/customers/http"
	customersrepo "github.com/quotecraft/quotecraft-backend/internal/customers/repository"
	quoteshttp "github.com/quotecraft/quotecraft-backend/internal/quotes/http"
	quotesrepo "github.com/quotecraft/quotecraft-backend/internal/quotes/repository"
	quotessvc "github.com/quotecraft/quotecraft-backend/internal/quotes/service"
	salestaxhttp "github.com/quotecraft/quotecraft-backend/internal/salestax/http"
	salestaxrepo "github.com/quotecraft/quotecraft-backend/internal/salestax/repository"
)

type RouterDeps struct {
	ServiceName   string
	Version       string
	DataDir       string
	QuotesDir     string
	ProductsFile  string
	CustomersFile string
	SalesTaxFile  string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DataDir)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	quoteStore := quotesrepo.NewStore(dep.QuotesDir)
	quoteService := quotessvc.NewQuoteService(quoteStore)
	quoteshttp.New(quoteService).Register(api.Group("/quotes"))

	customershttp.New(customersrepo.NewRepo(dep.CustomersFile)).Register(api.Group("/customers"))

	cataloghttp.New(catalogrepo.NewRepo(dep.ProductsFile)).Register(api.Group("/products"))

	salestaxhttp.New(salestaxrepo.NewRepo(dep.SalesTaxFile)).Register(api.Group("/salestax"))

	return r
}
