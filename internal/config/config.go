// Package config 读取 JSON 配置文件，覆盖引擎默认参数。
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"othello/internal/engine"
)

// File 是配置文件的结构；时间都用毫秒，缺省的字段保持默认值
type File struct {
	LogLevel           string          `json:"log_level"`
	Weights            *engine.Weights `json:"weights"`
	AlternativeWeights *engine.Weights `json:"alternative_weights"`
	MaxDepth           *int            `json:"max_depth"`
	UseAlternativeEval *bool           `json:"use_alternative_eval"`
	Generations        *int            `json:"generations"`
	GeneticTimeMs      *int64          `json:"genetic_time_ms"`
	HillClimbTimeMs    *int64          `json:"hill_climb_time_ms"`
	EvalCacheSize      *int            `json:"eval_cache_size"`
	MaxRequestDepth    *int            `json:"max_request_depth"` // 服务端 ai_move 的深度上限
}

// Default 返回默认文件内容（引擎相关字段都填上，方便导出模板）
func Default() File {
	cfg := engine.DefaultConfig()
	genMs := cfg.Genetic.TimeBudget.Milliseconds()
	hcMs := cfg.HillClimb.TimeBudget.Milliseconds()
	return File{
		LogLevel:           "info",
		Weights:            &cfg.Weights,
		AlternativeWeights: &cfg.AlternativeWeights,
		MaxDepth:           &cfg.Search.MaxDepth,
		UseAlternativeEval: &cfg.Search.UseAlternativeEval,
		Generations:        &cfg.Genetic.Generations,
		GeneticTimeMs:      &genMs,
		HillClimbTimeMs:    &hcMs,
		EvalCacheSize:      &cfg.EvalCacheSize,
	}
}

// Load 读取 path；path 为空时返回默认值
func Load(path string) (File, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if f.MaxDepth != nil && *f.MaxDepth < 0 {
		return File{}, fmt.Errorf("config %s: max_depth must be >= 0", path)
	}
	if f.MaxRequestDepth != nil && *f.MaxRequestDepth < 1 {
		return File{}, fmt.Errorf("config %s: max_request_depth must be >= 1", path)
	}
	return f, nil
}

// RequestDepth 服务端允许的最大搜索深度；0 表示用服务端默认值
func (f File) RequestDepth() int {
	if f.MaxRequestDepth == nil {
		return 0
	}
	return *f.MaxRequestDepth
}

// Engine 把文件里出现的字段叠加到引擎默认配置上
func (f File) Engine() engine.Config {
	cfg := engine.DefaultConfig()
	if f.Weights != nil {
		cfg.Weights = *f.Weights
	}
	if f.AlternativeWeights != nil {
		cfg.AlternativeWeights = *f.AlternativeWeights
	}
	if f.MaxDepth != nil {
		cfg.Search.MaxDepth = *f.MaxDepth
	}
	if f.UseAlternativeEval != nil {
		cfg.Search.UseAlternativeEval = *f.UseAlternativeEval
	}
	if f.Generations != nil {
		cfg.Genetic.Generations = *f.Generations
	}
	if f.GeneticTimeMs != nil {
		cfg.Genetic.TimeBudget = time.Duration(*f.GeneticTimeMs) * time.Millisecond
	}
	if f.HillClimbTimeMs != nil {
		cfg.HillClimb.TimeBudget = time.Duration(*f.HillClimbTimeMs) * time.Millisecond
	}
	if f.EvalCacheSize != nil {
		cfg.EvalCacheSize = *f.EvalCacheSize
	}
	return cfg
}
