// Package candy is the playable match-3 game: a cursor-driven front end over the
// match3 engine with levels, moves, score, tasks and star ratings.
package candy

import (
	"math/rand"

	"github.com/dev0926/candy-tiles/internal/config"
	"github.com/dev0926/candy-tiles/internal/core"
	"github.com/dev0926/candy-tiles/internal/levels"
	"github.com/dev0926/candy-tiles/internal/match3"
	"github.com/dev0926/candy-tiles/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// Registry IDs.
const (
	IDCampaign = "candy"
	IDEndless  = "candy_endless"
)

// Game implements a match-3 level.
type Game struct {
	mode Mode
	cfg  config.CandyConfig
	rng  *rand.Rand
	tick uint64

	campaign []levels.Level
	level    levels.Level
	startAt  int
	loadErr  string

	session *match3.Session
	scorer  *Scorer
	board   match3.Items // what the player sees; lags the session during playback
	marks   map[int]bool
	phase   Phase
	play    *playback

	cursor    int
	selected  int // -1 when nothing is selected
	hint      *match3.Swap
	movesLeft int // -1 means unlimited
	movesUsed int
	lastGain  int
	shuffles  int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
	stars    int
}

// Package-level variables for config, set by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset string
	levelsDir        string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLevelsDir loads campaign levels from dir instead of the built-in set.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign, selected: -1}
}

// NewEndless creates an endless game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless, selected: -1}
}

// NewWithConfig creates a game with an explicit config, bypassing the loader. A
// non-empty campaign replaces the level set for campaign mode.
func NewWithConfig(mode Mode, cfg config.CandyConfig, campaign ...levels.Level) *Game {
	return &Game{mode: mode, cfg: cfg, selected: -1, campaign: campaign}
}

func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDCampaign
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Candy Tiles (Endless)"
	}
	return "Candy Tiles"
}

// Level returns the current campaign level ID, 0 in endless mode.
func (g *Game) Level() int {
	if g.mode == ModeEndless {
		return 0
	}
	return g.level.ID
}

// StartAt makes the next Reset start the campaign at the given level ID. Ignored in
// endless mode.
func (g *Game) StartAt(level int) {
	if g.mode == ModeCampaign {
		g.startAt = level
	}
}

// Resize adapts to a new terminal size without restarting the level.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Reset initializes or restarts the game. A campaign restart replays the current level
// unless a start level was selected since.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if g.cfg == (config.CandyConfig{}) {
		g.cfg = loadConfig()
	}

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.loadErr = ""

	if g.mode == ModeEndless {
		g.startLevel(levels.Endless())
		g.checkScreenSize()
		return
	}

	if len(g.campaign) == 0 {
		list, err := levels.Campaign(levelsDir)
		if err != nil || len(list) == 0 {
			list, err = levels.Builtin()
		}
		if err != nil {
			g.loadErr = err.Error()
		}
		g.campaign = list
	}
	if len(g.campaign) == 0 {
		if g.loadErr == "" {
			g.loadErr = "no levels found"
		}
		g.gameOver = true
		g.checkScreenSize()
		return
	}

	id := g.level.ID
	if g.startAt > 0 {
		id = g.startAt
		g.startAt = 0
	}
	lvl, err := levels.Find(g.campaign, id)
	if err != nil {
		lvl = g.campaign[0]
	}
	g.startLevel(lvl)
	g.checkScreenSize()
}

// loadConfig reads the candy config and applies the difficulty preset.
func loadConfig() config.CandyConfig {
	cfg, err := config.LoadCandy(configPath)
	if err != nil {
		cfg = config.DefaultCandyConfig()
	}
	config.ApplyCandyPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	return cfg
}

// startLevel builds a fresh board for lvl and resets all per-level state.
func (g *Game) startLevel(lvl levels.Level) {
	g.level = lvl
	g.gameOver = false
	g.won = false
	g.stars = 0
	g.movesUsed = 0
	g.lastGain = 0
	g.shuffles = 0
	g.selected = -1
	g.hint = nil
	g.play = nil
	g.phase = PhaseIdle
	g.marks = nil

	keys := match3.UUIDKeys{}
	tiles, items := lvl.Build(match3.NewSpawner(keys, g.rng))
	g.session = match3.NewSession(tiles, items,
		match3.WithKeys(keys),
		match3.WithRand(g.rng),
		match3.WithRules(g.cfg.Rules.Engine()),
	)
	// Designer-placed candies may still line up; clear them before play starts.
	g.session.Settle()
	g.scorer = NewScorer(g.cfg.Scoring, lvl.Tasks)

	switch {
	case g.mode == ModeEndless && g.cfg.Endless.Moves > 0:
		g.movesLeft = g.cfg.Endless.Moves
	case g.mode == ModeEndless:
		g.movesLeft = -1
	default:
		g.movesLeft = g.cfg.MovesFor(lvl.Moves)
	}

	g.cursor = firstPresent(tiles)
	g.board = g.session.Items()
	g.ensurePlayable()
}

func firstPresent(tiles match3.Tiles) int {
	for i, present := range tiles {
		if present {
			return i
		}
	}
	return 0
}

// checkScreenSize checks if the screen is large enough for board and side panel.
func (g *Game) checkScreenSize() {
	screen := core.NewRect(0, 0, g.screenW, g.screenH)
	g.tooSmall = !screen.Contains(minScreenW-1, minScreenH-1)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.play != nil {
		// Swap intents are ignored while a move is being played back.
		g.advancePlayback()
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		if g.won && in.Has(core.ActionConfirm) {
			g.nextLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	return core.StepResult{State: g.State()}
}

// handleInput moves the cursor, manages the selection and issues swaps.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionBack) {
		g.gameOver = true
		return
	}

	if in.Has(core.ActionHint) {
		if moves := g.session.LegalMoves(); len(moves) > 0 {
			g.hint = &moves[g.rng.Intn(len(moves))]
		}
	}

	for _, dir := range match3.Directions {
		if !in.Has(actionFor(dir)) {
			continue
		}
		if g.selected >= 0 {
			// A direction while a cell is selected swaps it with that neighbour.
			from := g.selected
			g.selected = -1
			if match3.Steps(from, dir) > 0 {
				g.requestSwap(match3.Swap{From: from, To: match3.Neighbor(from, dir)})
			}
			return
		}
		g.moveCursor(dir)
	}

	if in.Has(core.ActionConfirm) {
		g.confirm()
	}
}

func actionFor(d match3.Direction) core.Action {
	switch d {
	case match3.DirUp:
		return core.ActionUp
	case match3.DirRight:
		return core.ActionRight
	case match3.DirDown:
		return core.ActionDown
	default:
		return core.ActionLeft
	}
}

func (g *Game) moveCursor(d match3.Direction) {
	row := match3.Row(g.cursor)
	col := match3.Col(g.cursor)
	switch d {
	case match3.DirUp:
		row--
	case match3.DirDown:
		row++
	case match3.DirLeft:
		col--
	case match3.DirRight:
		col++
	}
	row = core.Clamp(row, 1, match3.Rows)
	col = core.Clamp(col, 1, match3.Columns)
	g.cursor = match3.Index(row, col)
}

// confirm selects the cell under the cursor, or swaps it with the selected one when
// they are neighbours.
func (g *Game) confirm() {
	switch {
	case g.selected == g.cursor:
		g.selected = -1
	case g.selected >= 0 && match3.AreAdjacent(g.selected, g.cursor):
		from := g.selected
		g.selected = -1
		g.requestSwap(match3.Swap{From: from, To: g.cursor})
	case g.session.Tiles().Present(g.cursor):
		g.selected = g.cursor
	}
}

// requestSwap hands a swap intent to the engine and starts playback of the result.
func (g *Game) requestSwap(swap match3.Swap) {
	res := g.session.Move(swap)

	switch res.Outcome {
	case match3.OutcomeRejected:
		return
	case match3.OutcomeReverted:
		g.startPlayback(swapFrames(res, swap, g.cfg.Animation.SwapTicks))
	case match3.OutcomeResolved:
		g.hint = nil
		g.lastGain = 0
		g.movesUsed++
		if g.movesLeft > 0 {
			g.movesLeft--
		}
		g.startPlayback(traceFrames(res, swap, g.cfg.Animation.SwapTicks, g.cfg.Animation.PhaseTicks))
	}
}

func (g *Game) startPlayback(frames []frame) {
	g.play = &playback{frames: frames}
	g.enterFrame(g.play.current())
}

func (g *Game) advancePlayback() {
	if f := g.play.advance(); f != nil {
		g.enterFrame(f)
	}
	if g.play.done() {
		g.finishMove()
	}
}

func (g *Game) enterFrame(f *frame) {
	if f == nil {
		return
	}
	g.phase = f.phase
	g.board = f.grid
	g.marks = f.marks
	if f.phase == PhaseCleared {
		g.lastGain += g.scorer.OnRound(f.round, f.before, f.grid, f.fusions)
	}
}

// finishMove releases the input lock and evaluates the end of the level.
func (g *Game) finishMove() {
	g.play = nil
	g.phase = PhaseIdle
	g.marks = nil
	g.board = g.session.Items()

	if g.mode == ModeCampaign && g.levelComplete() {
		g.won = true
		g.gameOver = true
		g.stars = Stars(g.scorer.Score(), g.level.TargetScore, g.cfg.Scoring)
		return
	}
	if g.movesLeft == 0 {
		g.gameOver = true
		return
	}
	g.ensurePlayable()
}

func (g *Game) levelComplete() bool {
	return g.scorer.Score() >= g.level.TargetScore && g.scorer.TasksDone()
}

// ensurePlayable shuffles the board when no swap can match. Ends the game when no
// playable arrangement is found.
func (g *Game) ensurePlayable() {
	if len(g.session.LegalMoves()) > 0 {
		return
	}
	if g.session.Shuffle(g.cfg.Rules.ShuffleAttempts) {
		g.shuffles++
		g.board = g.session.Items()
		return
	}
	g.gameOver = true
}

// nextLevel starts the campaign level after the current one, if any.
func (g *Game) nextLevel() {
	for i, lvl := range g.campaign {
		if lvl.ID == g.level.ID && i+1 < len(g.campaign) {
			g.startLevel(g.campaign[i+1])
			return
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.scorer != nil {
		score = g.scorer.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
		Won:      g.won,
		Stars:    g.stars,
	}
}
