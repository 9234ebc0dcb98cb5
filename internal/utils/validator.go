package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a 400 response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, NewErrorResponse(bindErrorMessage(err)))
		return false
	}
	return true
}

func bindErrorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		switch e.Tag() {
		case "required":
			return fmt.Sprintf("Field '%s' is required", e.Field())
		case "min":
			return fmt.Sprintf("Field '%s' must be at least %s", e.Field(), e.Param())
		case "max":
			return fmt.Sprintf("Field '%s' must be at most %s", e.Field(), e.Param())
		default:
			return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return "Malformed JSON or invalid request body"
}
