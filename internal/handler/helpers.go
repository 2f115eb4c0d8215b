package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/edukshare-max/fastapi-backend/internal/apierror"
	"github.com/edukshare-max/fastapi-backend/internal/middleware"
)

var validate = validator.New()

// bindAndValidate binds the JSON body and runs the validator tags.
// Returns false after writing the error response; the caller must return
// immediately without writing another one.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// internalError logs the real failure and answers with the generic
// envelope. The underlying detail is only echoed outside release mode.
func internalError(c *gin.Context, err error) {
	log.Error().
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.FullPath()).
		Err(err).
		Msg("error interno")

	if gin.Mode() == gin.ReleaseMode {
		c.JSON(http.StatusInternalServerError, apierror.New("Error interno del servidor"))
		return
	}
	c.JSON(http.StatusInternalServerError, apierror.NewDetail("Error interno del servidor", err.Error()))
}
