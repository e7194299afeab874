package config_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pathplan.app/engine/core/config"
)

var _ = Describe("Load", func() {
	setEnv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				_ = os.Setenv(key, prev)
			} else {
				_ = os.Unsetenv(key)
			}
		})
	}
	unsetEnv := func(key string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Unsetenv(key)).To(Succeed())
		DeferCleanup(func() {
			if had {
				_ = os.Setenv(key, prev)
			}
		})
	}

	BeforeEach(func() {
		// production skips .env loading so the test controls the environment
		setEnv("PATHPLAN_ENV", "production")
		for _, key := range []string{
			"LLM_PROVIDER", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "ROADMAP_LLM_MODEL",
			"ROADMAP_LLM_MAX_TOKENS", "ROADMAP_LLM_TEMPERATURE", "ROADMAP_LLM_TIMEOUT",
			"ROADMAP_STRICT_GOALS",
		} {
			unsetEnv(key)
		}
	})

	It("fails when the OpenAI key is missing", func() {
		_, err := config.Load()
		Expect(err).To(MatchError(ContainSubstring("OPENAI_API_KEY")))
	})

	It("fails when the anthropic key is missing for the anthropic provider", func() {
		setEnv("LLM_PROVIDER", "anthropic")
		setEnv("OPENAI_API_KEY", "sk-test")

		_, err := config.Load()
		Expect(err).To(MatchError(ContainSubstring("ANTHROPIC_API_KEY")))
	})

	It("rejects unknown providers", func() {
		setEnv("LLM_PROVIDER", "mystery")

		_, err := config.Load()
		Expect(err).To(MatchError(ContainSubstring("unsupported LLM_PROVIDER")))
	})

	It("applies roadmap defaults", func() {
		setEnv("OPENAI_API_KEY", "sk-test")

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.RoadmapLLM.Provider).To(Equal(config.ProviderOpenAI))
		Expect(cfg.RoadmapLLM.APIKey).To(Equal("sk-test"))
		Expect(cfg.RoadmapLLM.Model).To(Equal("gpt-4"))
		Expect(cfg.RoadmapLLM.MaxTokens).To(Equal(1500))
		Expect(cfg.RoadmapLLM.Temperature).To(BeNumerically("~", 0.7))
		Expect(cfg.RoadmapLLM.Timeout).To(Equal(60 * time.Second))
		Expect(cfg.Roadmap.StrictGoals).To(BeFalse())
		Expect(cfg.Port).To(Equal("8080"))
		Expect(cfg.IsProduction()).To(BeTrue())
	})

	It("reads overrides", func() {
		setEnv("OPENAI_API_KEY", "sk-test")
		setEnv("ROADMAP_LLM_MODEL", "gpt-4o")
		setEnv("ROADMAP_LLM_MAX_TOKENS", "900")
		setEnv("ROADMAP_LLM_TEMPERATURE", "0.2")
		setEnv("ROADMAP_LLM_TIMEOUT", "15s")
		setEnv("ROADMAP_STRICT_GOALS", "true")

		cfg, err := config.Load()
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.RoadmapLLM.Model).To(Equal("gpt-4o"))
		Expect(cfg.RoadmapLLM.MaxTokens).To(Equal(900))
		Expect(cfg.RoadmapLLM.Temperature).To(BeNumerically("~", 0.2))
		Expect(cfg.RoadmapLLM.Timeout).To(Equal(15 * time.Second))
		Expect(cfg.Roadmap.StrictGoals).To(BeTrue())
	})

	It("rejects a non-positive token budget", func() {
		setEnv("OPENAI_API_KEY", "sk-test")
		setEnv("ROADMAP_LLM_MAX_TOKENS", "0")

		_, err := config.Load()
		Expect(err).To(MatchError(ContainSubstring("ROADMAP_LLM_MAX_TOKENS")))
	})
})
