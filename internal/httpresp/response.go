package httpresp

import "github.com/gin-gonic/gin"

type CreatedResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func Created(c *gin.Context, id uint, message string) {
	c.JSON(201, CreatedResponse{
		ID:      id,
		Message: message,
	})
}
