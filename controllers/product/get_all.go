package productcontroller

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sheep-june/react-node-shop/models"
	"gorm.io/gorm"
)

// sortable columns; anything else falls back to id
var allowedSortFields = map[string]bool{
	"id":         true,
	"title":      true,
	"price":      true,
	"sold":       true,
	"views":      true,
	"category":   true,
	"created_at": true,
}

type productQuery struct {
	limit      int
	skip       int
	sortBy     string
	sortOrder  string
	searchTerm string
	priceRange []float64 // empty or [min, max]
	categories []int
}

// GET /products?limit=&skip=&sortBy=&order=&searchTerm=&filters[price][]=&filters[category][]=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := parseProductQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var total int64
		if err := applyProductFilters(db.Model(&models.Product{}), q).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		query := applyProductFilters(db.Model(&models.Product{}), q).
			Preload("Writer", func(tx *gorm.DB) *gorm.DB {
				return tx.Select("id", "email", "name", "role", "image", "created_at")
			}).
			Order(fmt.Sprintf("%s %s", q.sortBy, q.sortOrder)).
			Offset(q.skip).
			Limit(q.limit)
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products": products,
			"hasMore":  q.skip+q.limit < int(total),
		})
	}
}

func parseProductQuery(c *gin.Context) (productQuery, error) {
	q := productQuery{
		sortBy:     c.DefaultQuery("sortBy", "id"),
		sortOrder:  strings.ToLower(c.DefaultQuery("order", "desc")),
		searchTerm: c.Query("searchTerm"),
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 0 {
		return q, fmt.Errorf("invalid limit")
	}
	q.limit = limit

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		return q, fmt.Errorf("invalid skip")
	}
	q.skip = skip

	if !allowedSortFields[q.sortBy] {
		q.sortBy = "id"
	}
	if q.sortOrder != "asc" && q.sortOrder != "desc" {
		q.sortOrder = "desc"
	}

	// Filter keys are whitelisted; unknown keys from the client are ignored.
	values := c.Request.URL.Query()

	if priceVals := filterValues(values, "price"); len(priceVals) > 0 {
		if len(priceVals) != 2 {
			return q, fmt.Errorf("price filter requires [min, max]")
		}
		min, err := strconv.ParseFloat(priceVals[0], 64)
		if err != nil {
			return q, fmt.Errorf("invalid price filter")
		}
		max, err := strconv.ParseFloat(priceVals[1], 64)
		if err != nil {
			return q, fmt.Errorf("invalid price filter")
		}
		q.priceRange = []float64{min, max}
	}

	for _, v := range filterValues(values, "category") {
		code, err := strconv.Atoi(v)
		if err != nil {
			return q, fmt.Errorf("invalid category filter")
		}
		q.categories = append(q.categories, code)
	}

	return q, nil
}

// filterValues collects filters[key], filters[key][] and filters[key][N]
// forms of the same query parameter.
func filterValues(values url.Values, key string) []string {
	var out []string
	out = append(out, values[fmt.Sprintf("filters[%s]", key)]...)
	out = append(out, values[fmt.Sprintf("filters[%s][]", key)]...)
	for i := 0; ; i++ {
		vals, ok := values[fmt.Sprintf("filters[%s][%d]", key, i)]
		if !ok {
			break
		}
		out = append(out, vals...)
	}
	return out
}

func applyProductFilters(query *gorm.DB, q productQuery) *gorm.DB {
	if len(q.priceRange) == 2 {
		query = query.Where("price >= ? AND price <= ?", q.priceRange[0], q.priceRange[1])
	}
	if len(q.categories) > 0 {
		query = query.Where("category IN ?", q.categories)
	}
	if q.searchTerm != "" {
		pattern := "%" + strings.ToLower(q.searchTerm) + "%"
		query = query.Where("LOWER(title) LIKE ?", pattern)
	}
	return query
}
