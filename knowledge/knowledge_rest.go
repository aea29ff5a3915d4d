package knowledge

import (
	"net/http"

	"opsconsole/bizerror"
	"opsconsole/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

var (
	PathAssignments = "/v1/knowledge-assignments"
	PathWeeks       = "/v1/knowledge-weeks"
)

type CellAssignmentRequest struct {
	WeekIso  string `json:"weekIso" binding:"required"`
	Section  string `json:"section" binding:"required"`
	Engineer string `json:"engineer" binding:"required"`
	// An empty companyId clears the cell.
	CompanyId string `json:"companyId"`
}

type StatusChange struct {
	Status Status `json:"status" binding:"required"`
}

type ReviewStatusChange struct {
	ReviewStatus ReviewStatus `json:"reviewStatus" binding:"required"`
}

type ColumnsChange struct {
	Columns []string `json:"columns" binding:"required"`
}

type FocusCompaniesChange struct {
	CompanyIds []string `json:"companyIds" binding:"required"`
}

func RegisterKnowledgeRestAPI(r *gin.Engine, middleWares ...gin.HandlerFunc) {
	assignments := r.Group(PathAssignments, middleWares...)
	assignments.GET("", handleQueryAssignments)
	assignments.PUT("/cell", handleUpsertCell)
	assignments.PATCH("/:id/status", handleSetStatus)
	assignments.PATCH("/:id/review", handleSetReviewStatus)

	weeks := r.Group(PathWeeks, middleWares...)
	weeks.GET("/:week/kpis", handleWeekKpis)
	weeks.GET("/:week/review-queue", handleReviewQueue)
	weeks.GET("/:week/company-stats", handleCompanyStats)
	weeks.GET("/:week/focus-companies", handleGetFocusCompanies)
	weeks.PUT("/:week/focus-companies", handleSetFocusCompanies)
	weeks.POST("/:week/engineers/:engineer/send-tasks", handleSendTasks)

	columns := r.Group("/v1/knowledge-visible-columns", middleWares...)
	columns.GET("", handleGetVisibleColumns)
	columns.PUT("", handleSetVisibleColumns)

	r.GET("/v1/knowledge-sections", handleQuerySections)
	r.GET("/v1/knowledge-engineers", handleQueryEngineers)
	r.GET("/v1/knowledge-companies", handleQueryCompanies)
}

func handleQueryAssignments(c *gin.Context) {
	c.JSON(http.StatusOK, QueryAssignmentsFunc(c.Query("week")))
}

func handleUpsertCell(c *gin.Context) {
	request := CellAssignmentRequest{}
	if err := c.ShouldBindBodyWith(&request, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := UpsertCellAssignmentFunc(request.WeekIso, request.Section, request.Engineer,
		request.CompanyId, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	if record == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, record)
}

func handleSetStatus(c *gin.Context) {
	change := StatusChange{}
	if err := c.ShouldBindBodyWith(&change, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := SetStatusFunc(c.Param("id"), change.Status, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleSetReviewStatus(c *gin.Context) {
	change := ReviewStatusChange{}
	if err := c.ShouldBindBodyWith(&change, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	record, err := SetReviewStatusFunc(c.Param("id"), change.ReviewStatus, session.FindIdentity(c))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, record)
}

func handleWeekKpis(c *gin.Context) {
	report, err := WeekKpisFunc(c.Param("week"))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, report)
}

func handleReviewQueue(c *gin.Context) {
	c.JSON(http.StatusOK, ReviewQueueFunc(c.Param("week")))
}

func handleCompanyStats(c *gin.Context) {
	c.JSON(http.StatusOK, CompanyStatsFunc(c.Param("week"), c.Query("companyId")))
}

func handleGetFocusCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, WeekFocusCompaniesFunc(c.Param("week")))
}

func handleSetFocusCompanies(c *gin.Context) {
	change := FocusCompaniesChange{}
	if err := c.ShouldBindBodyWith(&change, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	c.JSON(http.StatusOK, SetWeekFocusCompaniesFunc(c.Param("week"), change.CompanyIds))
}

func handleSendTasks(c *gin.Context) {
	message, err := SendTasksFunc(c.Param("week"), c.Param("engineer"))
	if err != nil {
		panic(err)
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func handleGetVisibleColumns(c *gin.Context) {
	c.JSON(http.StatusOK, VisibleColumnsFunc())
}

func handleSetVisibleColumns(c *gin.Context) {
	change := ColumnsChange{}
	if err := c.ShouldBindBodyWith(&change, binding.JSON); err != nil {
		panic(&bizerror.ErrBadParam{Cause: err})
	}
	c.JSON(http.StatusOK, SetVisibleColumnsFunc(change.Columns))
}

func handleQuerySections(c *gin.Context) {
	c.JSON(http.StatusOK, Sections)
}

func handleQueryEngineers(c *gin.Context) {
	c.JSON(http.StatusOK, Engineers)
}

func handleQueryCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, Companies)
}
