package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"othello/internal/engine"
	"othello/internal/othello"
	"othello/internal/server/game"
)

const (
	// alpha-beta 没有时间限制，请求里的深度必须有上限
	DefaultMaxRequestDepth = 8
	// 遗传/爬山单次请求的时间预算上限
	maxRequestThink = 30 * time.Second
)

// Handler 持有对局和引擎配置。引擎不是并发安全的，每个 AI 请求新建一个。
type Handler struct {
	games    *game.Manager
	cfg      engine.Config
	maxDepth int
}

type HandlerOption func(*Handler)

// WithMaxRequestDepth 设置 ai_move 允许的最大搜索深度；<=0 时用默认值
func WithMaxRequestDepth(n int) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxDepth = n
		}
	}
}

func NewHandler(cfg engine.Config, opts ...HandlerOption) *Handler {
	h := &Handler{
		games:    game.NewManager(),
		cfg:      cfg,
		maxDepth: DefaultMaxRequestDepth,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// searchDepth 把请求深度限制在空格数和上限以内
func (h *Handler) searchDepth(requested int, pos *othello.Position) int {
	depth := h.cfg.Search.MaxDepth
	if requested > 0 {
		depth = requested
	}
	empty := othello.NumSquares - pos.Count(othello.PlayerA) - pos.Count(othello.PlayerB)
	return max(min(depth, empty, h.maxDepth), 0)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("writeJSON")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// 把领域错误映射到 HTTP 状态码
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, othello.ErrIllegalMove), errors.Is(err, game.ErrCannotPass):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return false
	}
	return true
}

func gameResponse(g *game.GameState) GameResponse {
	pos := g.Pos
	return GameResponse{
		GameID:     g.ID,
		Position:   pos.Encode(),
		ToMove:     sideToInt(pos.Current),
		LegalMoves: movesToDTO(pos.LegalMoves()),
		Status:     game.Status(pos),
		Black:      pos.Count(othello.PlayerA),
		White:      pos.Count(othello.PlayerB),
		Strategy:   string(g.Strategy),
	}
}

func parseMode(s string) (othello.PlayerMode, bool) {
	switch othello.PlayerMode(s) {
	case "":
		return othello.ModeAI, true
	case othello.ModeAI, othello.ModeFriend, othello.ModeSelf:
		return othello.PlayerMode(s), true
	default:
		return "", false
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if r.ContentLength != 0 && !decode(w, r, &req) {
		return
	}
	mode, ok := parseMode(req.Mode)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown mode")
		return
	}
	strategy, err := engine.ParseStrategy(req.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	g := h.games.NewGame(mode, strategy)
	writeJSON(w, http.StatusOK, gameResponse(g))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameResponse(g))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Play(req.GameID, dtoToMove(req.Move))
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameResponse(g))
}

func (h *Handler) handlePass(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if !decode(w, r, &req) {
		return
	}
	g, err := h.games.Pass(req.GameID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameResponse(g))
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if !decode(w, r, &req) {
		return
	}

	// ===== 1. 局面：优先用对局里的 =====
	var (
		pos      *othello.Position
		strategy engine.Strategy
		err      error
	)
	if req.GameID != "" {
		g, gerr := h.games.Get(req.GameID)
		if gerr != nil {
			writeGameError(w, gerr)
			return
		}
		pos, strategy = g.Pos, g.Strategy
	} else {
		if req.Position == "" {
			writeError(w, http.StatusBadRequest, "missing position")
			return
		}
		pos, err = othello.DecodePosition(req.Position)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if req.Strategy != "" || strategy == "" {
		strategy, err = engine.ParseStrategy(req.Strategy)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	// ===== 2. 搜索参数 =====
	cfg := h.cfg
	cfg.Search.MaxDepth = h.searchDepth(req.MaxDepth, pos)
	if req.TimeMs > 0 {
		budget := min(time.Duration(req.TimeMs)*time.Millisecond, maxRequestThink)
		cfg.Genetic.TimeBudget = budget
		cfg.HillClimb.TimeBudget = budget
	}
	if req.Generations > 0 {
		cfg.Genetic.Generations = req.Generations
	}

	// ===== 3. 只思考不落子 =====
	e := engine.NewEngine(engine.WithConfig(cfg))
	start := time.Now()
	resp := AiMoveResponse{
		Strategy: string(strategy),
		Position: pos.Encode(),
		ToMove:   sideToInt(pos.Current),
		Status:   "ok",
	}
	switch strategy {
	case engine.StrategyAlphaBeta, engine.StrategyAlphaBetaAlt:
		sc := cfg.Search
		sc.UseAlternativeEval = strategy == engine.StrategyAlphaBetaAlt
		res := e.Search(pos, sc)
		resp.BestMove = moveToDTO(res.Move)
		resp.Score = res.Value
		resp.Nodes = res.Nodes
		resp.Depth = res.Depth
	default:
		resp.BestMove = moveToDTO(e.SelectMove(pos, strategy))
	}
	resp.TimeMs = time.Since(start).Milliseconds()

	if !dtoToMove(resp.BestMove).IsValid() {
		resp.Status = "no_moves"
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := h.games.Delete(chi.URLParam(r, "id")); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
