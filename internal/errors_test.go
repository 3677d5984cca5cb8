package internal_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/frahmantamala/crowdfunding-admin/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AppError", func() {
	It("should match sentinels through wrapping", func() {
		err := fmt.Errorf("delete: %w", internal.ErrFundraiserHasDonations)
		Expect(errors.Is(err, internal.ErrFundraiserHasDonations)).To(BeTrue())
		Expect(errors.Is(err, internal.ErrFundraiserNotFound)).To(BeFalse())
	})

	It("should keep the sentinel intact when adding a cause", func() {
		cause := errors.New("row locked")
		err := internal.ErrFundraiserNotFound.WithCause(cause)

		Expect(errors.Is(err, internal.ErrFundraiserNotFound)).To(BeTrue())
		Expect(errors.Is(err, cause)).To(BeTrue())
		Expect(internal.ErrFundraiserNotFound.Cause).To(BeNil())
	})

	It("should map to the documented statuses", func() {
		status, msg := internal.ErrFundraiserHasDonations.ToHTTPResponse()
		Expect(status).To(Equal(http.StatusBadRequest))
		Expect(msg).To(Equal("Cannot delete fundraiser with existing donations."))

		status, _ = internal.ErrFundraiserNotFound.ToHTTPResponse()
		Expect(status).To(Equal(http.StatusNotFound))

		status, _ = internal.NewInternalError("boom", nil).ToHTTPResponse()
		Expect(status).To(Equal(http.StatusInternalServerError))
	})

	It("should be recognised by IsAppError", func() {
		appErr, ok := internal.IsAppError(fmt.Errorf("wrapped: %w", internal.NewValidationError("bad")))
		Expect(ok).To(BeTrue())
		Expect(appErr.Message).To(Equal("bad"))

		_, ok = internal.IsAppError(errors.New("plain"))
		Expect(ok).To(BeFalse())
	})
})
