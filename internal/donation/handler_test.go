package donation_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	donationDatamodel "github.com/frahmantamala/crowdfunding-admin/internal/core/datamodel/donation"
	"github.com/frahmantamala/crowdfunding-admin/internal/core/testdb"
	"github.com/frahmantamala/crowdfunding-admin/internal/donation"
	donationPostgres "github.com/frahmantamala/crowdfunding-admin/internal/donation/postgres"
	"github.com/frahmantamala/crowdfunding-admin/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Donation Handler Integration", func() {
	var (
		db      *gorm.DB
		handler *donation.Handler
	)

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(io.Discard, nil))

		gormDB, _, err := testdb.OpenSeeded()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(testdb.Close, gormDB)

		db = gormDB
		service := donation.NewService(donationPostgres.NewDonationRepository(gormDB), slogger)
		handler = donation.NewHandler(transport.NewBaseHandler(slogger), service)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/donation", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		handler.CreateDonation(w, req)
		return w
	}

	It("should create a donation and return 201", func() {
		w := post(`{"date":"2024-10-01","amount":75,"giver":"Frank","fundraiser_id":2}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created donation.Donation
		Expect(json.Unmarshal(w.Body.Bytes(), &created)).To(Succeed())
		Expect(created.ID).To(BeNumerically(">", 2))
		Expect(created.FundraiserID).To(Equal(testdb.SchoolID))
		Expect(created.Giver).To(Equal("Frank"))

		var stored donationDatamodel.Donation
		Expect(db.First(&stored, "donation_id = ?", created.ID).Error).To(Succeed())
		Expect(stored.Amount).To(Equal(75.0))
	})

	It("should accept a zero amount", func() {
		w := post(`{"date":"2024-10-01","amount":0,"giver":"Frank","fundraiser_id":2}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
	})

	It("should reject an unknown fundraiser", func() {
		w := post(`{"date":"2024-10-01","amount":75,"giver":"Frank","fundraiser_id":404}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var resp transport.ErrorResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Message).To(Equal("The referenced Fundraiser does not exist."))
	})

	It("should reject a missing field", func() {
		w := post(`{"date":"2024-10-01","giver":"Frank","fundraiser_id":2}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should reject an empty body", func() {
		w := post("")
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var resp transport.ErrorResponse
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Message).To(Equal("request body is required"))
	})
})
