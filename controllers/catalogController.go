package controllers

import (
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
	"github.com/my3dwebshop/storefront/services"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

type CatalogController struct {
	products   *services.ProductService
	categories *services.CategoryService
	reviews    *services.ReviewService
	log        *zap.Logger
}

func NewCatalogController(products *services.ProductService, categories *services.CategoryService, reviews *services.ReviewService, log *zap.Logger) *CatalogController {
	return &CatalogController{products: products, categories: categories, reviews: reviews, log: log}
}

// GetProducts serves the catalog page: search, category filter, sorting and
// pagination all happen here, over the upstream product list.
func (c *CatalogController) GetProducts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	var (
		products []models.Product
		err      error
	)
	if categoryParam := ctx.Query("category"); categoryParam != "" {
		categoryID, parseErr := strconv.ParseInt(categoryParam, 10, 64)
		if parseErr != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", parseErr)
			return
		}
		products, err = c.products.ByCategory(ctx.Request.Context(), categoryID)
	} else {
		products, err = c.products.List(ctx.Request.Context())
	}
	if err != nil {
		c.log.Error("unable to fetch products", zap.Error(err))
		respondWithError(ctx, api.StatusOf(err), "Unable to fetch products", err)
		return
	}

	if search := ctx.Query("search"); search != "" {
		needle := strings.ToLower(search)
		filtered := products[:0]
		for _, p := range products {
			if strings.Contains(strings.ToLower(p.Title), needle) ||
				strings.Contains(strings.ToLower(p.Description), needle) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	sortProducts(products, ctx.DefaultQuery("sort", "newest"))

	total := len(products)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(total) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"products": products[offset:end],
		"metadata": gin.H{
			"total":        total,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func sortProducts(products []models.Product, order string) {
	switch order {
	case "price_asc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case "price_desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	default: // newest
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt.Time)
		})
	}
}

// GetProduct serves the product details page: the product, its reviews and
// the average rating.
func (c *CatalogController) GetProduct(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := c.products.Get(ctx.Request.Context(), productID)
	if err != nil {
		if api.IsNotFound(err) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
			return
		}
		c.log.Error("unable to retrieve product", zap.Int64("productId", productID), zap.Error(err))
		respondWithError(ctx, api.StatusOf(err), "Unable to retrieve product", err)
		return
	}

	// Reviews are decoration here; the page still renders without them.
	reviews, err := c.reviews.ByProduct(ctx.Request.Context(), productID)
	if err != nil {
		c.log.Warn("unable to fetch product reviews", zap.Int64("productId", productID), zap.Error(err))
		reviews = nil
	}

	ctx.JSON(http.StatusOK, gin.H{
		"product":       product,
		"reviews":       reviews,
		"averageRating": models.AverageRating(reviews),
	})
}

func (c *CatalogController) GetCategories(ctx *gin.Context) {
	categories, err := c.categories.List(ctx.Request.Context())
	if err != nil {
		c.log.Error("unable to fetch categories", zap.Error(err))
		respondWithError(ctx, api.StatusOf(err), "Unable to fetch categories", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (c *CatalogController) GetCategory(ctx *gin.Context) {
	categoryID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid category ID", err)
		return
	}

	category, err := c.categories.Get(ctx.Request.Context(), categoryID)
	if err != nil {
		if api.IsNotFound(err) {
			respondWithError(ctx, http.StatusNotFound, "Category not found", nil)
			return
		}
		respondWithError(ctx, api.StatusOf(err), "Unable to retrieve category", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"category": category})
}

// Back-office product management.

func (c *CatalogController) CreateProduct(ctx *gin.Context) {
	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := c.products.Create(ctx.Request.Context(), input)
	if err != nil {
		c.log.Error("failed to create product", zap.Error(err))
		respondWithError(ctx, api.StatusOf(err), "Failed to create product", err)
		return
	}
	ctx.JSON(http.StatusCreated, product)
}

func (c *CatalogController) UpdateProduct(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	var input models.ProductInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, err := c.products.Update(ctx.Request.Context(), productID, input)
	if err != nil {
		c.log.Error("failed to update product", zap.Int64("productId", productID), zap.Error(err))
		respondWithError(ctx, api.StatusOf(err), "Failed to update product", err)
		return
	}
	ctx.JSON(http.StatusOK, product)
}

func (c *CatalogController) DeleteProduct(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	if err := c.products.Delete(ctx.Request.Context(), productID); err != nil {
		c.log.Error("failed to delete product", zap.Int64("productId", productID), zap.Error(err))
		respondWithError(ctx, api.StatusOf(err), "Failed to delete product", err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully."})
}
