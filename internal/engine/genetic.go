package engine

import (
	"math/bits"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"othello/internal/othello"
)

// 每代种群翻倍，代数要有上限
const maxGenerations = 16

type GeneticConfig struct {
	Generations int           `json:"generations"` // 进化代数，<1 按 1 算
	TimeBudget  time.Duration `json:"time_budget"` // 代与代之间检查；0 表示不限时
}

func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		Generations: 1,
		TimeBudget:  5 * time.Second,
	}
}

// individual: fitness 是走完这一步后的评估值，moveIndex 是合法着法列表里的下标
type individual struct {
	fitness   float64
	moveIndex int
}

// scorer 给合法着法下标打分
type scorer func(idx int) float64

// ceilLog2 返回 ceil(log2(n))，n<=1 时为 0
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

func populationSize(numMoves int) int {
	if numMoves > 2 {
		return ceilLog2(numMoves)
	}
	return numMoves
}

// Genetic 用遗传算法挑一步。无棋可走返回 NoMove。
func (e *Engine) Genetic(pos *othello.Position, cfg GeneticConfig) othello.Move {
	moves := pos.LegalMoves()
	n := len(moves)
	if n == 0 {
		return othello.NoMove
	}
	start := time.Now()
	score := func(idx int) float64 {
		return e.scoreMove(pos, moves[idx])
	}

	generations := min(max(cfg.Generations, 1), maxGenerations)
	population := e.initPopulation(n, score)
	done := 0
	for done < generations {
		if done > 0 && cfg.TimeBudget > 0 && budgetExceeded(start, cfg.TimeBudget) {
			break
		}
		population = e.evolve(population, n, score)
		done++
	}

	best, ok := e.selectBest(population)
	if !ok {
		return othello.NoMove
	}
	move := moves[best.moveIndex%n]
	log.Debug().
		Int("legal", n).
		Int("generations", done).
		Int("population", len(population)).
		Float64("fitness", best.fitness).
		Interface("move", move).
		Dur("took", time.Since(start)).
		Msg("genetic-search")
	return move
}

func (e *Engine) initPopulation(n int, score scorer) []individual {
	size := populationSize(n)
	population := make([]individual, 0, size)
	for i := 0; i < size; i++ {
		idx := e.rng.IntN(n)
		population = append(population, individual{fitness: score(idx), moveIndex: idx})
	}
	return population
}

func totalFitness(population []individual) float64 {
	return lo.SumBy(population, func(ind individual) float64 { return ind.fitness })
}

// evolve 进化一代：轮盘赌选父母，交叉，两个孩子都变异。新种群是旧的两倍大。
func (e *Engine) evolve(population []individual, n int, score scorer) []individual {
	total := totalFitness(population)
	next := make([]individual, 0, 2*len(population))
	for range population {
		p1, _ := e.rouletteSelect(population, total)
		p2, _ := e.rouletteSelect(population, total)
		c1, c2 := e.crossover(p1, p2, len(population))
		next = append(next, e.mutate(c1, n, score), e.mutate(c2, n, score))
	}
	return next
}

// rouletteSelect 按 fitness 占比抽一个；总和为 0 或没抽中时均匀随机。
// 种群为空返回 false。
func (e *Engine) rouletteSelect(population []individual, total float64) (individual, bool) {
	if len(population) == 0 {
		return individual{}, false
	}
	if ind, hit := e.spin(population, total); hit {
		return ind, true
	}
	return population[e.rng.IntN(len(population))], true
}

// spin 转一次轮盘；总和为 0 时不转
func (e *Engine) spin(population []individual, total float64) (individual, bool) {
	if total == 0 {
		return individual{}, false
	}
	r := e.rng.Float64()
	accum := 0.0
	for _, ind := range population {
		accum += ind.fitness / total
		if accum >= r {
			return ind, true
		}
	}
	return individual{}, false
}

// selectBest 不是 argmax，而是再做一次轮盘赌。
// 总和为 0 时均匀随机；总和非 0 却没抽中（正负分混杂）时取第一个。
func (e *Engine) selectBest(population []individual) (individual, bool) {
	if len(population) == 0 {
		return individual{}, false
	}
	total := totalFitness(population)
	if total == 0 {
		return population[e.rng.IntN(len(population))], true
	}
	if ind, hit := e.spin(population, total); hit {
		return ind, true
	}
	return population[0], true
}

// crossover 单点交叉。length 是当前种群大小，决定位宽和交叉点范围 [1, length-1]。
func (e *Engine) crossover(p1, p2 individual, length int) (individual, individual) {
	numBits := ceilLog2(length)
	point := 1
	if length > 1 {
		point = 1 + e.rng.IntN(length-1)
	}

	b1 := newBitString(uint64(p1.moveIndex), numBits)
	b2 := newBitString(uint64(p2.moveIndex), numBits)
	child1 := b1.prefix(point).concat(b2.suffix(point))
	child2 := b2.prefix(point).concat(b1.suffix(point))

	mod := uint64(max(length, 1))
	return individual{moveIndex: int(child1.value % mod)},
		individual{moveIndex: int(child2.value % mod)}
}

// mutate 随机翻一位；位宽按当前合法着法数重新算，结果对 n 取模后重新打分
func (e *Engine) mutate(ind individual, n int, score scorer) individual {
	numBits := ceilLog2(n)
	b := newBitString(uint64(ind.moveIndex), numBits)
	point := 0
	if numBits != 0 {
		point = e.rng.IntN(numBits)
	}
	idx := int(b.flip(point).value % uint64(n))
	return individual{fitness: score(idx), moveIndex: idx}
}

// bitString 是高位在前的定长二进制串。
// 宽度至少为 1，值需要更多位时自动变宽（和零填充格式化的行为一致）。
type bitString struct {
	value uint64
	width int
}

func newBitString(v uint64, minWidth int) bitString {
	w := max(bits.Len64(v), 1, minWidth)
	return bitString{value: v, width: w}
}

func lowMask(width int) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// prefix 取前 n 位（n 超过宽度时取全部）
func (b bitString) prefix(n int) bitString {
	k := min(n, b.width)
	return bitString{value: b.value >> (b.width - k), width: k}
}

// suffix 去掉前 n 位后剩下的部分
func (b bitString) suffix(n int) bitString {
	k := min(n, b.width)
	rest := b.width - k
	return bitString{value: b.value & lowMask(rest), width: rest}
}

func (b bitString) concat(o bitString) bitString {
	return bitString{value: b.value<<o.width | o.value, width: b.width + o.width}
}

// flip 翻转从高位数起第 pos 位
func (b bitString) flip(pos int) bitString {
	return bitString{value: b.value ^ (uint64(1) << (b.width - 1 - pos)), width: b.width}
}
