package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"studio/admin/api/http/controller/admin"
)

func Routers(e *gin.RouterGroup, db *gorm.DB) {
	h := admin.NewHandler(db)

	publisherGroup := e.Group("/publishers")
	publisherGroup.GET("", h.ListPublishers)
	publisherGroup.GET("/add", h.AddPublisherForm)
	publisherGroup.POST("/add", h.AddPublisher)
	publisherGroup.GET("/edit", h.EditPublisherForm)
	publisherGroup.POST("/edit", h.EditPublisher)
	publisherGroup.POST("/delete", h.DeletePublisher)

	gameGroup := e.Group("/games")
	gameGroup.GET("", h.ListGames)
	gameGroup.GET("/add", h.AddGameForm)
	gameGroup.POST("/add", h.AddGame)
	gameGroup.GET("/edit", h.EditGameForm)
	gameGroup.POST("/edit", h.EditGame)
	gameGroup.POST("/delete", h.DeleteGame)

	staffGroup := e.Group("/staff")
	staffGroup.GET("", h.ListStaff)
	staffGroup.GET("/add", h.AddStaffForm)
	staffGroup.POST("/add", h.AddStaff)
	staffGroup.GET("/edit", h.EditStaffForm)
	staffGroup.POST("/edit", h.EditStaff)
	staffGroup.POST("/delete", h.DeleteStaff)

	jobGroup := e.Group("/jobs")
	jobGroup.GET("", h.ListJobs)
	jobGroup.GET("/add", h.AddJobForm)
	jobGroup.POST("/add", h.AddJob)
	jobGroup.GET("/edit", h.EditJobForm)
	jobGroup.POST("/edit", h.EditJob)
	jobGroup.POST("/delete", h.DeleteJob)

	userGroup := e.Group("/users")
	userGroup.GET("", h.ListUsers)
	userGroup.GET("/add", h.AddUserForm)
	userGroup.POST("/add", h.AddUser)
	userGroup.GET("/edit", h.EditUserForm)
	userGroup.POST("/edit", h.EditUser)
	userGroup.POST("/delete", h.DeleteUser)

	donationGroup := e.Group("/donations")
	donationGroup.GET("", h.ListDonations)
	donationGroup.GET("/add", h.AddDonationForm)
	donationGroup.POST("/add", h.AddDonation)
	donationGroup.GET("/edit", h.EditDonationForm)
	donationGroup.POST("/edit", h.EditDonation)
	donationGroup.POST("/delete", h.DeleteDonation)

	investorGroup := e.Group("/investors")
	investorGroup.GET("", h.ListInvestors)
	investorGroup.GET("/add", h.AddInvestorForm)
	investorGroup.POST("/add", h.AddInvestor)
	investorGroup.GET("/edit", h.EditInvestorForm)
	investorGroup.POST("/edit", h.EditInvestor)
	investorGroup.POST("/delete", h.DeleteInvestor)

	investmentGroup := e.Group("/investments")
	investmentGroup.GET("", h.ListInvestments)
	investmentGroup.GET("/add", h.AddInvestmentForm)
	investmentGroup.POST("/add", h.AddInvestment)
	investmentGroup.GET("/edit", h.EditInvestmentForm)
	investmentGroup.POST("/edit", h.EditInvestment)
	investmentGroup.POST("/delete", h.DeleteInvestment)
}
