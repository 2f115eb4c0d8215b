package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edukshare-max/fastapi-backend/internal/catalogo"
)

// Instituciones handles GET /auth/instituciones?q=&limit=
// Fuzzy autocomplete over the static institution catalog.
func Instituciones(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = 5
	}

	resultados := catalogo.Buscar(c.Query("q"), limit)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    resultados,
		"count":   len(resultados),
	})
}
