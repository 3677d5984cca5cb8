package internal_test

import (
	"time"

	"github.com/frahmantamala/crowdfunding-admin/internal"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var cfg *internal.Config

	BeforeEach(func() {
		cfg = &internal.Config{
			Server: internal.ServerConfig{
				Port:              3060,
				AllowedOrigins:    "http://localhost:8181, *",
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       15 * time.Second,
			},
			Database: internal.DatabaseConfig{
				Source:          "postgres://localhost/crowdfunding",
				MaxOpenConns:    10,
				MaxIdleConns:    5,
				ConnMaxLifetime: 30 * time.Minute,
				ConnMaxIdleTime: 5 * time.Minute,
			},
			Observability: internal.ObservabilityConfig{
				Logging: internal.LoggingConfig{Level: "info", Format: "json"},
			},
		}
	})

	It("should accept a complete configuration", func() {
		Expect(cfg.Validate()).To(Succeed())
	})

	It("should require a database source", func() {
		cfg.Database.Source = ""
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("Source")))
	})

	It("should reject more idle than open connections", func() {
		cfg.Database.MaxIdleConns = 20
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("max_idle_conns")))
	})

	It("should reject unknown log formats", func() {
		cfg.Observability.Logging.Format = "xml"
		Expect(cfg.Validate()).To(HaveOccurred())
	})

	It("should reject a relative base path", func() {
		cfg.Server.BasePath = "api"
		Expect(cfg.Validate()).To(MatchError(ContainSubstring("base_path")))
	})

	It("should split and trim allowed origins", func() {
		Expect(cfg.Server.Origins()).To(Equal([]string{"http://localhost:8181", "*"}))
	})

	It("should default and normalise the base path", func() {
		Expect(cfg.Server.APIBasePath()).To(Equal(internal.DefaultBasePath))

		cfg.Server.BasePath = "/admin/api/"
		Expect(cfg.Server.APIBasePath()).To(Equal("/admin/api"))
	})

	Describe("LoadConfigFromEnv", func() {
		It("should read overrides from the environment", func() {
			GinkgoT().Setenv("HTTP_PORT", "8080")
			GinkgoT().Setenv("DATABASE_URL", "postgres://db/crowdfunding")
			GinkgoT().Setenv("HTTP_REQUEST_TIMEOUT", "2s")

			loaded := internal.LoadConfigFromEnv()
			Expect(loaded.Server.Port).To(Equal(8080))
			Expect(loaded.Server.RequestTimeout).To(Equal(2 * time.Second))
			Expect(loaded.Database.Source).To(Equal("postgres://db/crowdfunding"))
			Expect(loaded.Server.APIBasePath()).To(Equal("/api/fundraiser"))
			Expect(loaded.Validate()).To(Succeed())
		})
	})
})
