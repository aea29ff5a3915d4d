package knowledge_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"opsconsole/bizerror"
	"opsconsole/knowledge"
	"opsconsole/session"
	"opsconsole/testinfra"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
)

func TestQueryAssignmentsAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	knowledge.RegisterKnowledgeRestAPI(router)

	t.Run("should pass the week filter through", func(t *testing.T) {
		var queriedWeek string
		knowledge.QueryAssignmentsFunc = func(week string) []knowledge.Assignment {
			queriedWeek = week
			return []knowledge.Assignment{{
				Id: "KC-1001", WeekIso: "2025-W33", Section: "VPN", Engineer: "Alice",
				CompanyIds: []string{"C01"}, DueDate: "2025-08-15",
				Status: knowledge.StatusNotStarted, CreatedAt: "2025-08-11T09:00:00Z",
				ReviewStatus: knowledge.ReviewPending,
			}}
		}

		req := httptest.NewRequest(http.MethodGet, knowledge.PathAssignments+"?week=2025-W33", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(queriedWeek).To(Equal("2025-W33"))
		Expect(body).To(MatchJSON(`[{"id":"KC-1001","weekIso":"2025-W33","section":"VPN","engineer":"Alice",
			"companyIds":["C01"],"dueDate":"2025-08-15","status":"Not started",
			"createdAt":"2025-08-11T09:00:00Z","reviewStatus":"Pending"}]`))
	})
}

func TestUpsertCellAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	knowledge.RegisterKnowledgeRestAPI(router)

	t.Run("should return the created assignment", func(t *testing.T) {
		knowledge.UpsertCellAssignmentFunc = func(week, section, engineer, companyId string,
			identity session.Identity) (*knowledge.Assignment, error) {
			Expect(week).To(Equal("2025-W33"))
			Expect(section).To(Equal("VPN"))
			Expect(engineer).To(Equal("Alice"))
			Expect(companyId).To(Equal("C01"))
			Expect(identity.Name).To(Equal("You"))
			return &knowledge.Assignment{
				Id: "KC-1001", WeekIso: week, Section: section, Engineer: engineer,
				CompanyIds: []string{companyId}, DueDate: "2025-08-15",
				Status: knowledge.StatusNotStarted, CreatedAt: "2025-08-11T09:00:00Z",
				ReviewStatus: knowledge.ReviewPending,
			}, nil
		}

		req := httptest.NewRequest(http.MethodPut, knowledge.PathAssignments+"/cell",
			strings.NewReader(`{"weekIso":"2025-W33","section":"VPN","engineer":"Alice","companyId":"C01"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"id":"KC-1001","weekIso":"2025-W33","section":"VPN","engineer":"Alice",
			"companyIds":["C01"],"dueDate":"2025-08-15","status":"Not started",
			"createdAt":"2025-08-11T09:00:00Z","reviewStatus":"Pending"}`))
	})

	t.Run("should answer 204 when the cell was cleared", func(t *testing.T) {
		knowledge.UpsertCellAssignmentFunc = func(week, section, engineer, companyId string,
			identity session.Identity) (*knowledge.Assignment, error) {
			return nil, nil
		}

		req := httptest.NewRequest(http.MethodPut, knowledge.PathAssignments+"/cell",
			strings.NewReader(`{"weekIso":"2025-W33","section":"VPN","engineer":"Alice","companyId":""}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusNoContent))
		Expect(body).To(BeEmpty())
	})

	t.Run("should validate the request body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, knowledge.PathAssignments+"/cell", strings.NewReader(`{}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"common.bad_param","message":
			"Key: 'CellAssignmentRequest.WeekIso' Error:Field validation for 'WeekIso' failed on the 'required' tag\n` +
			`Key: 'CellAssignmentRequest.Section' Error:Field validation for 'Section' failed on the 'required' tag\n` +
			`Key: 'CellAssignmentRequest.Engineer' Error:Field validation for 'Engineer' failed on the 'required' tag","data":null}`))
	})

	t.Run("should map service failures", func(t *testing.T) {
		knowledge.UpsertCellAssignmentFunc = func(week, section, engineer, companyId string,
			identity session.Identity) (*knowledge.Assignment, error) {
			return nil, errors.New("some error")
		}

		req := httptest.NewRequest(http.MethodPut, knowledge.PathAssignments+"/cell",
			strings.NewReader(`{"weekIso":"2025-W33","section":"VPN","engineer":"Alice","companyId":"C01"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusInternalServerError))
		Expect(body).To(MatchJSON(`{"code":"common.internal_server_error","message":"some error","data":null}`))
	})
}

func TestSetStatusAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	knowledge.RegisterKnowledgeRestAPI(router)

	t.Run("should update the addressed assignment", func(t *testing.T) {
		knowledge.SetStatusFunc = func(id string, status knowledge.Status,
			identity session.Identity) (*knowledge.Assignment, error) {
			Expect(id).To(Equal("KC-1001"))
			Expect(status).To(Equal(knowledge.StatusComplete))
			return &knowledge.Assignment{
				Id: id, WeekIso: "2025-W33", Section: "VPN", Engineer: "Alice",
				CompanyIds: []string{"C01"}, DueDate: "2025-08-15",
				Status: status, CreatedAt: "2025-08-11T09:00:00Z",
				SubmittedAt: "2025-08-14T10:00:00Z", ReviewStatus: knowledge.ReviewPending,
			}, nil
		}

		req := httptest.NewRequest(http.MethodPatch, knowledge.PathAssignments+"/KC-1001/status",
			strings.NewReader(`{"status":"Complete"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"id":"KC-1001","weekIso":"2025-W33","section":"VPN","engineer":"Alice",
			"companyIds":["C01"],"dueDate":"2025-08-15","status":"Complete",
			"createdAt":"2025-08-11T09:00:00Z","submittedAt":"2025-08-14T10:00:00Z","reviewStatus":"Pending"}`))
	})

	t.Run("should answer 404 for a missing assignment", func(t *testing.T) {
		knowledge.SetStatusFunc = func(id string, status knowledge.Status,
			identity session.Identity) (*knowledge.Assignment, error) {
			return nil, bizerror.ErrNotFound
		}

		req := httptest.NewRequest(http.MethodPatch, knowledge.PathAssignments+"/KC-9999/status",
			strings.NewReader(`{"status":"Complete"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusNotFound))
		Expect(body).To(MatchJSON(`{"code":"common.record_not_found","message":"record not found","data":null}`))
	})
}

func TestSetReviewStatusAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	knowledge.RegisterKnowledgeRestAPI(router)

	t.Run("should update the review outcome", func(t *testing.T) {
		knowledge.SetReviewStatusFunc = func(id string, reviewStatus knowledge.ReviewStatus,
			identity session.Identity) (*knowledge.Assignment, error) {
			Expect(id).To(Equal("KC-1001"))
			Expect(reviewStatus).To(Equal(knowledge.ReviewApproved))
			return &knowledge.Assignment{
				Id: id, WeekIso: "2025-W33", Section: "VPN", Engineer: "Alice",
				CompanyIds: []string{"C01"}, DueDate: "2025-08-15",
				Status: knowledge.StatusComplete, CreatedAt: "2025-08-11T09:00:00Z",
				SubmittedAt: "2025-08-14T10:00:00Z", ReviewStatus: reviewStatus,
			}, nil
		}

		req := httptest.NewRequest(http.MethodPatch, knowledge.PathAssignments+"/KC-1001/review",
			strings.NewReader(`{"reviewStatus":"Approved"}`))
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"id":"KC-1001","weekIso":"2025-W33","section":"VPN","engineer":"Alice",
			"companyIds":["C01"],"dueDate":"2025-08-15","status":"Complete",
			"createdAt":"2025-08-11T09:00:00Z","submittedAt":"2025-08-14T10:00:00Z","reviewStatus":"Approved"}`))
	})
}

func TestWeekReportsAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	knowledge.RegisterKnowledgeRestAPI(router)

	t.Run("should expose the week kpis", func(t *testing.T) {
		knowledge.WeekKpisFunc = func(week string) (*knowledge.WeekKpiReport, error) {
			Expect(week).To(Equal("2025-W33"))
			return &knowledge.WeekKpiReport{CreatedThisWeek: 3, SectionsCovered: 2, CompletionPercent: 50, OverdueCount: 1}, nil
		}

		req := httptest.NewRequest(http.MethodGet, knowledge.PathWeeks+"/2025-W33/kpis", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"createdThisWeek":3,"sectionsCovered":2,"completionPercent":50,"overdueCount":1}`))
	})

	t.Run("should reject a malformed week label", func(t *testing.T) {
		knowledge.WeekKpisFunc = func(week string) (*knowledge.WeekKpiReport, error) {
			return nil, &bizerror.ErrBadParam{Cause: errors.New(`invalid week label "2025W33"`)}
		}

		req := httptest.NewRequest(http.MethodGet, knowledge.PathWeeks+"/2025W33/kpis", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(body).To(MatchJSON(`{"code":"common.bad_param","message":"invalid week label \"2025W33\"","data":null}`))
	})

	t.Run("should expose the review queue", func(t *testing.T) {
		knowledge.ReviewQueueFunc = func(week string) []knowledge.Assignment {
			Expect(week).To(Equal("2025-W33"))
			return []knowledge.Assignment{}
		}

		req := httptest.NewRequest(http.MethodGet, knowledge.PathWeeks+"/2025-W33/review-queue", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`[]`))
	})

	t.Run("should expose company stats", func(t *testing.T) {
		knowledge.CompanyStatsFunc = func(week, companyId string) *knowledge.CompanyStatsReport {
			Expect(week).To(Equal("2025-W33"))
			Expect(companyId).To(Equal("C01"))
			return &knowledge.CompanyStatsReport{Created: 2, SectionsCovered: 2, CompletionPercent: 50}
		}

		req := httptest.NewRequest(http.MethodGet, knowledge.PathWeeks+"/2025-W33/company-stats?companyId=C01", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"created":2,"sectionsCovered":2,"completionPercent":50}`))
	})

	t.Run("should read and replace the focus rotation", func(t *testing.T) {
		knowledge.WeekFocusCompaniesFunc = func(week string) []string {
			Expect(week).To(Equal("2025-W33"))
			return []string{"C01", "C02"}
		}
		knowledge.SetWeekFocusCompaniesFunc = func(week string, companyIds []string) []string {
			Expect(week).To(Equal("2025-W33"))
			Expect(companyIds).To(Equal([]string{"C01", "C99"}))
			return []string{"C01"}
		}

		req := httptest.NewRequest(http.MethodGet, knowledge.PathWeeks+"/2025-W33/focus-companies", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`["C01","C02"]`))

		req = httptest.NewRequest(http.MethodPut, knowledge.PathWeeks+"/2025-W33/focus-companies",
			strings.NewReader(`{"companyIds":["C01","C99"]}`))
		status, body, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`["C01"]`))
	})

	t.Run("should trigger task sending", func(t *testing.T) {
		knowledge.SendTasksFunc = func(week, engineer string) (string, error) {
			Expect(week).To(Equal("2025-W33"))
			Expect(engineer).To(Equal("Alice"))
			return "Tasks sent to Alice via Teams and Email", nil
		}

		req := httptest.NewRequest(http.MethodPost, knowledge.PathWeeks+"/2025-W33/engineers/Alice/send-tasks", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`{"message":"Tasks sent to Alice via Teams and Email"}`))
	})
}

func TestPreferencesAndReferenceAPI(t *testing.T) {
	RegisterTestingT(t)

	router := gin.Default()
	router.Use(bizerror.ErrorHandling())
	knowledge.RegisterKnowledgeRestAPI(router)

	t.Run("should read and replace the visible columns", func(t *testing.T) {
		knowledge.VisibleColumnsFunc = func() []string {
			return []string{"Printing", "VPN"}
		}
		knowledge.SetVisibleColumnsFunc = func(cols []string) []string {
			Expect(cols).To(Equal([]string{"Email", "LAN"}))
			return []string{"Email", "LAN"}
		}

		req := httptest.NewRequest(http.MethodGet, "/v1/knowledge-visible-columns", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`["Printing","VPN"]`))

		req = httptest.NewRequest(http.MethodPut, "/v1/knowledge-visible-columns",
			strings.NewReader(`{"columns":["Email","LAN"]}`))
		status, body, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`["Email","LAN"]`))
	})

	t.Run("should serve the reference lists", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/knowledge-engineers", nil)
		status, body, _ := testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(MatchJSON(`["Alice","Bob","Charlie","Danielle"]`))

		req = httptest.NewRequest(http.MethodGet, "/v1/knowledge-sections", nil)
		status, body, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`"Printing"`))
		Expect(body).ToNot(ContainSubstring(`"Printers"`))

		req = httptest.NewRequest(http.MethodGet, "/v1/knowledge-companies", nil)
		status, body, _ = testinfra.ExecuteRequest(req, router)
		Expect(status).To(Equal(http.StatusOK))
		Expect(body).To(ContainSubstring(`{"id":"C01","name":"Acme Industries"}`))
	})
}
