package routes

import (
	"errors"
	"net/http"

	"social-marketing-platform/internal/generator"
	"social-marketing-platform/internal/logger"
	"social-marketing-platform/middleware"
	"social-marketing-platform/models"

	"github.com/gin-gonic/gin"
)

// SetupGenerateRoutes mounts the two generation endpoints. Both accept
// a raw JSON body, return the {success, data, error} envelope, and
// never leak validation or provider detail to the caller; full detail
// goes to the server log only.
func SetupGenerateRoutes(router *gin.Engine, svc *generator.Service) {
	router.POST("/generate-post", func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Error: "Invalid input data"})
			return
		}

		post, err := svc.GeneratePost(c.Request.Context(), raw)
		if err != nil {
			respondGenerationError(c, err, "Failed to generate post")
			return
		}

		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: post})
	})

	router.POST("/generate-topics", func(c *gin.Context) {
		raw, err := c.GetRawData()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Error: "Invalid input data"})
			return
		}

		topics, err := svc.GenerateTopics(c.Request.Context(), raw)
		if err != nil {
			respondGenerationError(c, err, "Failed to generate topics")
			return
		}

		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: topics})
	})
}

func respondGenerationError(c *gin.Context, err error, providerMessage string) {
	requestID := middleware.GetRequestID(c)

	var invalid *generator.InvalidInputError
	if errors.As(err, &invalid) {
		logger.Warn("request rejected by validation",
			"request_id", requestID,
			"path", c.FullPath(),
			"violations", invalid.Violations,
		)
		c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Error: "Invalid input data"})
		return
	}

	if errors.Is(err, generator.ErrUnsupportedLanguage) {
		logger.Warn("request for unsupported language",
			"request_id", requestID,
			"path", c.FullPath(),
		)
		c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Error: "Unsupported language"})
		return
	}

	logger.Error("generation failed",
		"request_id", requestID,
		"path", c.FullPath(),
		"error", err,
	)
	c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Error: providerMessage})
}
