package engine

import (
	"math"
	"math/rand/v2"
	"time"

	"lukechampine.com/frand"

	"othello/internal/othello"
)

const defaultEvalCacheCap = 1 << 16

// Rand 是引擎用到的随机源；*rand.Rand (math/rand/v2) 直接满足
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Config 汇总三种选点算法的参数
type Config struct {
	Weights            Weights         `json:"weights"`
	AlternativeWeights Weights         `json:"alternative_weights"`
	Search             SearchConfig    `json:"search"`
	Genetic            GeneticConfig   `json:"genetic"`
	HillClimb          HillClimbConfig `json:"hill_climb"`

	// 评估缓存容量，0 表示关闭
	EvalCacheSize int `json:"eval_cache_size"`
}

func DefaultConfig() Config {
	return Config{
		Weights:            DefaultWeights(),
		AlternativeWeights: DefaultAlternativeWeights(),
		Search: SearchConfig{
			MaxDepth: 6,
		},
		Genetic:       DefaultGeneticConfig(),
		HillClimb:     DefaultHillClimbConfig(),
		EvalCacheSize: defaultEvalCacheCap,
	}
}

// evalKey 用完整盘面做键：Board 是定长数组，可以直接比较，不依赖 Hash 字段是否最新
type evalKey struct {
	board       othello.Board
	current     othello.Cell
	alternative bool
}

// Engine 不是并发安全的：随机源和评估缓存都归单个调用方所有。
// 服务端每个请求、自对弈每盘棋各建一个。
type Engine struct {
	cfg   Config
	rng   Rand
	nodes int64

	evalCache map[evalKey]float64
}

type Option func(*Engine)

// WithRand 注入随机源（测试里用固定种子）
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(frand.Uint64n(math.MaxUint64), frand.Uint64n(math.MaxUint64)))
	}
	if e.cfg.EvalCacheSize > 0 {
		e.evalCache = make(map[evalKey]float64, min(e.cfg.EvalCacheSize, 1<<12))
	}
	return e
}

// Evaluate 用引擎配置的权重评估局面（当前行棋方视角）
func (e *Engine) Evaluate(pos *othello.Position, alternative bool) float64 {
	return e.eval(pos, alternative)
}

// 搜索层调用这个
func (e *Engine) eval(pos *othello.Position, alternative bool) float64 {
	if e.evalCache == nil {
		return e.evalUncached(pos, alternative)
	}
	key := evalKey{board: pos.Board, current: pos.Current, alternative: alternative}
	if v, ok := e.evalCache[key]; ok {
		return v
	}
	v := e.evalUncached(pos, alternative)
	if len(e.evalCache) >= e.cfg.EvalCacheSize {
		e.evalCache = make(map[evalKey]float64, min(e.cfg.EvalCacheSize, 1<<12))
	}
	e.evalCache[key] = v
	return v
}

func (e *Engine) evalUncached(pos *othello.Position, alternative bool) float64 {
	if alternative {
		return EvaluateAlternative(pos, e.cfg.AlternativeWeights)
	}
	return Evaluate(pos, e.cfg.Weights)
}

// scoreMove 在副本上走 m 后用主评估函数打分，pos 不动
func (e *Engine) scoreMove(pos *othello.Position, m othello.Move) float64 {
	child := pos.Copy()
	child.MakeMove(m)
	return e.eval(child, false)
}

func budgetExceeded(start time.Time, budget time.Duration) bool {
	return time.Since(start) >= budget
}
