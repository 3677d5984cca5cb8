package fundraiser_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/crowdfunding-admin/internal/core/testdb"
	"github.com/frahmantamala/crowdfunding-admin/internal/fundraiser"
	fundraiserPostgres "github.com/frahmantamala/crowdfunding-admin/internal/fundraiser/postgres"
	"github.com/frahmantamala/crowdfunding-admin/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fundraiser Handler Integration", func() {
	var router chi.Router

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(io.Discard, nil))

		gormDB, sqlxDB, err := testdb.OpenSeeded()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(testdb.Close, gormDB)

		service := fundraiser.NewService(fundraiserPostgres.NewFundraiserRepository(gormDB, sqlxDB), slogger)
		handler := fundraiser.NewHandler(transport.NewBaseHandler(slogger), service)

		router = chi.NewRouter()
		router.Get("/active", handler.ListActive)
		router.Get("/search", handler.Search)
		router.Get("/{id}", handler.GetFundraiser)
		router.Post("/fundraiser", handler.CreateFundraiser)
		router.Get("/fundraiser/{id}", handler.GetFundraiserDetails)
		router.Put("/fundraiser/{id}", handler.UpdateFundraiser)
		router.Delete("/fundraiser/{id}", handler.DeleteFundraiser)
	})

	do := func(method, target string, body interface{}) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			Expect(err).NotTo(HaveOccurred())
			reader = bytes.NewReader(raw)
		}
		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decodeViews := func(w *httptest.ResponseRecorder) []fundraiser.FundraiserView {
		var views []fundraiser.FundraiserView
		Expect(json.Unmarshal(w.Body.Bytes(), &views)).To(Succeed())
		return views
	}

	decodeError := func(w *httptest.ResponseRecorder) transport.ErrorResponse {
		var resp transport.ErrorResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	payload := func() map[string]interface{} {
		return map[string]interface{}{
			"organizer":       "Erin Lee",
			"caption":         "Flood relief",
			"target_funding":  900,
			"current_funding": 0,
			"city":            "Perth",
			"active":          false,
			"category_id":     testdb.MedicalID,
		}
	}

	Describe("GET /active", func() {
		It("should list active fundraisers with category names", func() {
			w := do(http.MethodGet, "/active", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			views := decodeViews(w)
			Expect(views).To(HaveLen(2))
			Expect(views[0].CategoryName).To(Equal("Medical"))
			Expect(views[1].CategoryName).To(Equal("Education"))
		})
	})

	Describe("GET /search", func() {
		It("should filter by organizer substring", func() {
			w := do(http.MethodGet, "/search?organizer=Alice", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			views := decodeViews(w)
			Expect(views).To(HaveLen(1))
			Expect(views[0].ID).To(Equal(testdb.ClinicID))
		})

		It("should combine city and category", func() {
			w := do(http.MethodGet, "/search?city=Melbourne&category=2", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			views := decodeViews(w)
			Expect(views).To(HaveLen(1))
			Expect(views[0].ID).To(Equal(testdb.SchoolID))
		})

		It("should ignore empty parameters", func() {
			w := do(http.MethodGet, "/search?organizer=&city=", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeViews(w)).To(HaveLen(2))
		})

		It("should return an empty array when nothing matches", func() {
			w := do(http.MethodGet, "/search?city=Hobart", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(HavePrefix("[]"))
		})

		It("should reject a non-numeric category", func() {
			w := do(http.MethodGet, "/search?category=medical", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(w).Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /{id}", func() {
		It("should return an inactive fundraiser", func() {
			w := do(http.MethodGet, "/3", nil)
			Expect(w.Code).To(Equal(http.StatusOK))
			views := decodeViews(w)
			Expect(views).To(HaveLen(1))
			Expect(views[0].Active).To(BeFalse())
		})

		It("should return 404 for an unknown id", func() {
			w := do(http.MethodGet, "/999", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeError(w).Message).To(Equal("Fundraiser not found."))
		})

		It("should return 400 for a malformed id", func() {
			w := do(http.MethodGet, "/abc", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("GET /fundraiser/{id}", func() {
		It("should return one row per donation", func() {
			w := do(http.MethodGet, "/fundraiser/1", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var rows []fundraiser.FundraiserDonationRow
			Expect(json.Unmarshal(w.Body.Bytes(), &rows)).To(Succeed())
			Expect(rows).To(HaveLen(2))
			Expect(*rows[0].Giver).To(Equal("Carol"))
			Expect(rows[1].CategoryName).To(Equal("Medical"))
		})

		It("should return nulls for a fundraiser without donations", func() {
			w := do(http.MethodGet, "/fundraiser/2", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var rows []map[string]interface{}
			Expect(json.Unmarshal(w.Body.Bytes(), &rows)).To(Succeed())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0]).To(HaveKeyWithValue("organizer", "Bob Smith"))
			Expect(rows[0]).To(HaveKeyWithValue("donation_id", BeNil()))
			Expect(rows[0]).To(HaveKeyWithValue("date", BeNil()))
			Expect(rows[0]).To(HaveKeyWithValue("amount", BeNil()))
			Expect(rows[0]).To(HaveKeyWithValue("giver", BeNil()))
		})

		It("should return 404 for an unknown id", func() {
			w := do(http.MethodGet, "/fundraiser/999", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("POST /fundraiser", func() {
		It("should create the fundraiser and keep active=false", func() {
			w := do(http.MethodPost, "/fundraiser", payload())
			Expect(w.Code).To(Equal(http.StatusCreated))

			var created fundraiser.Fundraiser
			Expect(json.Unmarshal(w.Body.Bytes(), &created)).To(Succeed())
			Expect(created.ID).To(BeNumerically(">", testdb.ShelterID))
			Expect(created.Active).To(BeFalse())

			w = do(http.MethodGet, "/active", nil)
			Expect(decodeViews(w)).To(HaveLen(2))
		})

		It("should reject a missing field", func() {
			body := payload()
			delete(body, "city")

			w := do(http.MethodPost, "/fundraiser", body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(w).Message).To(ContainSubstring("city is required"))
		})

		It("should reject an unknown category", func() {
			body := payload()
			body["category_id"] = 77

			w := do(http.MethodPost, "/fundraiser", body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(w).Message).To(Equal("The referenced Category does not exist."))
		})

		It("should reject a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/fundraiser", bytes.NewBufferString("{not json"))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /fundraiser/{id}", func() {
		It("should replace the fundraiser", func() {
			body := payload()
			body["active"] = true
			body["city"] = "Darwin"

			w := do(http.MethodPut, "/fundraiser/2", body)
			Expect(w.Code).To(Equal(http.StatusOK))

			w = do(http.MethodGet, "/search?city=Darwin", nil)
			views := decodeViews(w)
			Expect(views).To(HaveLen(1))
			Expect(views[0].ID).To(Equal(testdb.SchoolID))
			Expect(views[0].Organizer).To(Equal("Erin Lee"))
		})

		It("should return 404 for an unknown id", func() {
			w := do(http.MethodPut, "/fundraiser/999", payload())
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("should reject an incomplete payload", func() {
			body := payload()
			delete(body, "target_funding")

			w := do(http.MethodPut, "/fundraiser/2", body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("DELETE /fundraiser/{id}", func() {
		It("should delete a fundraiser without donations", func() {
			w := do(http.MethodDelete, "/fundraiser/2", nil)
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp fundraiser.DeleteResponse
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Status).To(Equal("deleted"))

			Expect(do(http.MethodGet, "/2", nil).Code).To(Equal(http.StatusNotFound))
		})

		It("should refuse when donations exist", func() {
			w := do(http.MethodDelete, "/fundraiser/1", nil)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeError(w).Message).To(Equal("Cannot delete fundraiser with existing donations."))

			Expect(do(http.MethodGet, "/1", nil).Code).To(Equal(http.StatusOK))
		})

		It("should return 404 for an unknown id", func() {
			w := do(http.MethodDelete, "/fundraiser/999", nil)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
