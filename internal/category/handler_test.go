package category_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/crowdfunding-admin/internal/category"
	categoryPostgres "github.com/frahmantamala/crowdfunding-admin/internal/category/postgres"
	"github.com/frahmantamala/crowdfunding-admin/internal/core/testdb"
	"github.com/frahmantamala/crowdfunding-admin/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Category Handler Integration", func() {
	var (
		db      *gorm.DB
		service *category.Service
		handler *category.Handler
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(io.Discard, nil))

		db, _, err = testdb.Open()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(testdb.Close, db)

		service = category.NewService(categoryPostgres.NewCategoryRepository(db), slogger)
		handler = category.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		for _, name := range []string{"Medical", "Education", "Animals"} {
			_, err := service.EnsureCategory(context.Background(), name)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	It("should handle GET /categories request successfully", func() {
		req := httptest.NewRequest(http.MethodGet, "/categories", nil)
		w := httptest.NewRecorder()

		handler.GetCategories(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

		var response []category.CategoryResponse
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response).To(HaveLen(3))

		names := make([]string, len(response))
		for i, cat := range response {
			Expect(cat.ID).To(BeNumerically(">", 0))
			names[i] = cat.Name
		}
		Expect(names).To(Equal([]string{"Medical", "Education", "Animals"}))
	})

	It("should return 500 when the store is gone", func() {
		testdb.Close(db)

		w := httptest.NewRecorder()
		handler.GetCategories(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		var body transport.ErrorResponse
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body.Message).To(Equal("Error retrieving categories."))
	})
})
