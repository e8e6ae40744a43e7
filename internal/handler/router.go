package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the chatbot, property and form endpoints on router
func RegisterRoutes(router *gin.Engine, chat *ChatHandler, listings *ListingHandler, inquiries *InquiryHandler, submissions *SubmissionHandler) {
	// Chat widget
	router.GET("/chatbot/get-response/", chat.GetResponse)

	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/chat", chat.Chat)

		apiV1.GET("/properties", listings.List)
		apiV1.GET("/properties/:slug", listings.Get)
		apiV1.POST("/properties/:slug/inquiry", inquiries.Submit)

		apiV1.POST("/sell/:kind", submissions.SubmitSell)
		apiV1.POST("/interior-design", submissions.SubmitInteriorDesign)
	}
}
