package service

import (
	"pathplan.app/engine/common/llm"
	"pathplan.app/engine/core/config"
)

type Services struct {
	roadmap RoadmapService
}

type ServicesConfig struct {
	LLM     llm.Client
	LLMCfg  config.LLMConfig
	Roadmap config.RoadmapConfig
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		roadmap: NewRoadmapService(cfg.LLM, RoadmapServiceConfig{
			Provider:    cfg.LLMCfg.Provider,
			MaxTokens:   cfg.LLMCfg.MaxTokens,
			Temperature: cfg.LLMCfg.Temperature,
			Timeout:     cfg.LLMCfg.Timeout,
			StrictGoals: cfg.Roadmap.StrictGoals,
		}),
	}
}

func (s *Services) Roadmap() RoadmapService {
	return s.roadmap
}
