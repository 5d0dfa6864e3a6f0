package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/yigit/injurydesk/docs" // registers the OpenAPI document
)

// SwaggerDocPath is where the raw OpenAPI document is served
const SwaggerDocPath = "/swagger/doc.json"

// SetupSwagger serves the API explorer and its document under /swagger
func SetupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL(SwaggerDocPath),
		ginSwagger.DefaultModelsExpandDepth(1),
	))
}
