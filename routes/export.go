package routes

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"social-marketing-platform/internal/prompts"
	"social-marketing-platform/models"
	"social-marketing-platform/services"
	"social-marketing-platform/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PostExportRequest selects a download format for a generated post.
type PostExportRequest struct {
	Format string               `json:"format" binding:"required,oneof=txt json image"`
	Post   models.GeneratedPost `json:"post" binding:"required"`
}

// TopicsExportRequest asks for a month of topics as an .xlsx plan.
type TopicsExportRequest struct {
	Month    int             `json:"month" binding:"required,min=1,max=12"`
	Language models.Language `json:"language,omitempty"`
	Topics   []models.Topic  `json:"topics" binding:"required,min=1"`
}

// CalendarLinkRequest builds a calendar deeplink for a post.
type CalendarLinkRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	BestTime    string `json:"bestTime,omitempty"`
}

// SetupExportRoutes mounts the download and share helpers used by the
// presentation layer's download/calendar buttons.
func SetupExportRoutes(router *gin.Engine) {
	export := router.Group("/export")

	export.POST("/post", func(c *gin.Context) {
		var req PostExportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid export request", gin.H{"error": err.Error()})
			return
		}

		name := "social-media-post-" + uuid.New().String()

		switch req.Format {
		case "txt":
			serveAttachment(c, name+".txt", "text/plain; charset=utf-8", services.BuildPostText(&req.Post))
		case "json":
			data, err := services.BuildPostJSON(&req.Post)
			if err != nil {
				utils.RespondWithInternalError(c, "Failed to build export", nil)
				return
			}
			serveAttachment(c, name+".json", "application/json", data)
		case "image":
			data, err := base64.StdEncoding.DecodeString(req.Post.Image)
			if err != nil {
				utils.RespondWithBadRequest(c, "Post image is not valid base64", nil)
				return
			}
			contentType := utils.DetectImageContentType(data)
			if !utils.IsValidImageType(contentType) {
				utils.RespondWithBadRequest(c, "Post image is not a supported image type", nil)
				return
			}
			serveAttachment(c, name+utils.GetImageExtension(contentType), contentType, data)
		}
	})

	export.POST("/topics", func(c *gin.Context) {
		var req TopicsExportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid export request", gin.H{"error": err.Error()})
			return
		}

		lang := req.Language
		if lang == "" {
			lang = models.DefaultLanguage
		}
		monthName, ok := prompts.MonthName(lang, req.Month)
		if !ok {
			utils.RespondWithBadRequest(c, "Unsupported language", nil)
			return
		}

		buf, err := services.BuildTopicsWorkbook(monthName, req.Topics)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to build workbook", nil)
			return
		}

		filename := fmt.Sprintf("content-plan-%s-%s.xlsx", monthName, uuid.New().String())
		serveAttachment(c, filename,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	})

	export.POST("/calendar", func(c *gin.Context) {
		var req CalendarLinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid calendar request", gin.H{"error": err.Error()})
			return
		}

		url := utils.BuildGoogleCalendarURL(req.Title, req.Description, req.BestTime)
		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: gin.H{"url": url}})
	})
}

func serveAttachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
