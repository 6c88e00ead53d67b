package api

import (
	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"learning_backend/internal/shared/apperror"
)

// PathID binds the named path parameter as a positive integer identifier.
// A missing, non-numeric or non-positive value fails with invalid.
func PathID(c *gin.Context, name string, invalid *apperror.Error) (uint, error) {
	var id int64
	err := runtime.BindStyledParameterWithLocation("simple", false, name, runtime.ParamLocationPath, c.Param(name), &id)
	if err != nil {
		return 0, invalid.Wrap(err)
	}
	if id <= 0 {
		return 0, invalid
	}
	return uint(id), nil
}
