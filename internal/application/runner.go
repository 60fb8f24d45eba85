package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/animix-bot/internal/domain"
	"github.com/bnema/animix-bot/internal/logging"
	"github.com/bnema/animix-bot/internal/ports"
)

const (
	DefaultClanID      int64 = 219
	DefaultPacing            = time.Second
	DefaultQuestPacing       = 2 * time.Second
)

type RunnerOptions struct {
	ClanID      int64
	Pacing      time.Duration
	QuestPacing time.Duration
}

// Runner performs the fixed per-account sequence of game actions.
type Runner struct {
	api     ports.GameAPI
	logger  *logging.Logger
	metrics *logging.Metrics
	clock   ports.Clock
	random  ports.Random
	opts    RunnerOptions
}

func NewRunner(api ports.GameAPI, logger *logging.Logger, metrics *logging.Metrics, clock ports.Clock, random ports.Random, opts RunnerOptions) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = logging.NewMetrics(clock.Now())
	}
	if random == nil {
		random = ports.SystemRandom{}
	}
	if opts.ClanID == 0 {
		opts.ClanID = DefaultClanID
	}
	if opts.Pacing <= 0 {
		opts.Pacing = DefaultPacing
	}
	if opts.QuestPacing <= 0 {
		opts.QuestPacing = DefaultQuestPacing
	}

	return &Runner{
		api:     api,
		logger:  logger,
		metrics: metrics,
		clock:   clock,
		random:  random,
		opts:    opts,
	}
}

type step struct {
	name string
	run  func(ctx context.Context, session domain.Session) error
}

// RunAccount runs every step for one account. A failing step is logged and
// the next one still runs; only cancellation ends the sequence early.
func (r *Runner) RunAccount(ctx context.Context, session domain.Session) error {
	steps := []step{
		{name: "gacha bonus", run: r.ClaimGachaBonus},
		{name: "hatch", run: r.HatchPets},
		{name: "breeding", run: r.BreedPets},
		{name: "claim missions", run: r.ClaimMissions},
		{name: "join missions", run: r.JoinMissions},
		{name: "quests", run: r.DoQuests},
		{name: "achievements", run: r.ClaimAchievements},
		{name: "season pass", run: r.ClaimSeasonPasses},
	}

	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.run(ctx, session); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r.logger.Error("step failed", err, "step", s.name)
		}
	}

	return nil
}

func (r *Runner) pace(ctx context.Context, d time.Duration) error {
	return r.clock.Sleep(ctx, d)
}

// ClaimGachaBonus claims at most one gacha bonus, god power first.
func (r *Runner) ClaimGachaBonus(ctx context.Context, session domain.Session) error {
	r.logger.Info("fetching gacha bonus")
	bonus, err := r.api.GachaBonus(ctx, session)
	if err != nil {
		return fmt.Errorf("fetch gacha bonus: %w", err)
	}

	reward, ok := bonus.Claimable()
	if !ok {
		r.logger.Warn("no gacha bonus to claim", "step", bonus.CurrentStep)
		return nil
	}

	r.logger.Info("claiming gacha bonus", "reward", reward.String(), "step", bonus.CurrentStep)
	if err := r.api.ClaimGachaBonus(ctx, session, reward); err != nil {
		return fmt.Errorf("claim %s bonus: %w", reward, err)
	}
	r.metrics.RewardsClaimed.Inc()

	return nil
}

// HatchPets draws new pets while the account has god power left.
func (r *Runner) HatchPets(ctx context.Context, session domain.Session) error {
	info, err := r.api.UserInfo(ctx, session)
	if err != nil {
		return fmt.Errorf("fetch user info: %w", err)
	}
	r.logger.Debug("user info", "name", info.Username, "token", info.TokenBalance, "power", info.GodPower)

	power := info.GodPower
	for power >= 1 {
		r.logger.Info("power is enough to hatch a new pet", "power", power)
		result, err := r.api.HatchPet(ctx, session)
		if err != nil {
			return fmt.Errorf("hatch pet: %w", err)
		}
		r.metrics.PetsHatched.Inc()
		r.logger.Info("hatched new pet", "pet", result.Pet.String(), "power_left", result.GodPower)

		power = result.GodPower
		if err := r.pace(ctx, r.opts.Pacing); err != nil {
			return err
		}
	}

	return nil
}

// BreedPets pairs every breeding-capable mother it can and mixes each pair.
func (r *Runner) BreedPets(ctx context.Context, session domain.Session) error {
	r.logger.Info("fetching pets that can breed")
	pets, err := r.api.PetDNAList(ctx, session)
	if err != nil {
		return fmt.Errorf("fetch dna list: %w", err)
	}

	pool := domain.SplitBreeding(pets)
	if len(pool.All) == 0 {
		return nil
	}
	r.logger.Info("breeding pool", "moms", len(pool.Moms), "dads", len(pool.Dads))

	if len(pool.Moms) == 0 {
		r.logger.Warn("no female pets to breed")
		return nil
	}

	plan := PairBreeding(pool.Moms, pool.Dads, r.random)
	for _, pair := range plan.Pairs {
		r.logger.Info("breeding pets", "mom", pair.Mom, "dad", pair.Dad)
		born, err := r.api.MixPets(ctx, session, pair)
		if err != nil {
			return fmt.Errorf("mix pets %s and %s: %w", pair.Mom, pair.Dad, err)
		}
		r.metrics.PetsMerged.Inc()
		r.logger.Info("new pet born", "pet", born.String())

		if err := r.pace(ctx, r.opts.Pacing); err != nil {
			return err
		}
	}

	if plan.NoCouple {
		r.logger.Warn("no couple left to breed")
	}

	return nil
}

// ClaimMissions claims every mission the server reports as completed.
func (r *Runner) ClaimMissions(ctx context.Context, session domain.Session) error {
	missions, err := r.api.MissionList(ctx, session)
	if err != nil {
		return fmt.Errorf("fetch missions: %w", err)
	}

	r.logger.Info("checking for completed missions")
	ids := domain.CompletedMissionIDs(missions)
	if len(ids) == 0 {
		r.logger.Warn("no completed missions found")
		return nil
	}

	var errs []error
	for _, id := range ids {
		r.logger.Info("claiming mission", "mission", id)
		if err := r.api.ClaimMission(ctx, session, id); err != nil {
			errs = append(errs, fmt.Errorf("claim mission %d: %w", id, err))
		} else {
			r.metrics.MissionsClaimed.Inc()
		}

		if err := r.pace(ctx, r.opts.Pacing); err != nil {
			return err
		}
	}

	return errors.Join(errs...)
}

// JoinMissions matches available pets against open missions and joins each
// match until nothing else fits. The pool is fetched once; committed units are
// removed locally before the next match.
func (r *Runner) JoinMissions(ctx context.Context, session domain.Session) error {
	pets, err := r.api.PetList(ctx, session)
	if err != nil {
		return fmt.Errorf("fetch pets: %w", err)
	}
	missions, err := r.api.MissionList(ctx, session)
	if err != nil {
		return fmt.Errorf("fetch missions: %w", err)
	}

	pool := domain.BuildPetPool(pets)
	available := domain.AvailablePetIDs(pool.All, domain.UsedPetIDs(missions))
	r.logger.Info("checking for missions to enter", "available_pets", len(available))

	for {
		assignment, ok := domain.MatchMission(missions, available, pool)
		if !ok {
			break
		}

		r.logger.Info("entering mission", "mission", assignment.MissionID, "pets", assignment.Pets)
		if err := r.api.EnterMission(ctx, session, assignment); err != nil {
			return fmt.Errorf("enter mission %d: %w", assignment.MissionID, err)
		}
		r.metrics.MissionsJoined.Inc()

		available = domain.RemoveUnits(available, assignment.PetIDs()...)
		missions = markJoined(missions, assignment)

		if err := r.pace(ctx, r.opts.Pacing); err != nil {
			return err
		}
	}

	r.logger.Warn("cannot join another mission with current available pets")
	return nil
}

func markJoined(missions []domain.Mission, assignment domain.MissionAssignment) []domain.Mission {
	updated := make([]domain.Mission, len(missions))
	copy(updated, missions)
	for i := range updated {
		if updated[i].ID == assignment.MissionID {
			updated[i].PetJoined = assignment.PetIDs()
		}
	}

	return updated
}

// DoQuests joins the configured clan and checks in on every pending quest.
func (r *Runner) DoQuests(ctx context.Context, session domain.Session) error {
	r.logger.Info("checking for available quests")
	quests, err := r.api.QuestList(ctx, session)
	if err != nil {
		return fmt.Errorf("fetch quests: %w", err)
	}

	codes := domain.PendingQuestCodes(quests)
	if len(codes) == 0 {
		r.logger.Warn("no quests to do")
		return nil
	}
	r.logger.Info("found quests", "count", len(codes))

	if err := r.api.JoinClan(ctx, session, r.opts.ClanID); err != nil {
		r.logger.Warn("join clan failed", "clan", r.opts.ClanID, "error", err)
	}

	var errs []error
	for _, code := range codes {
		r.logger.Info("doing daily quest", "quest", code)
		if err := r.api.CheckQuest(ctx, session, code); err != nil {
			errs = append(errs, fmt.Errorf("check quest %s: %w", code, err))
		}
	}

	if err := r.pace(ctx, r.opts.QuestPacing); err != nil {
		return err
	}

	return errors.Join(errs...)
}

// ClaimAchievements claims every completed and unclaimed achievement.
func (r *Runner) ClaimAchievements(ctx context.Context, session domain.Session) error {
	r.logger.Info("checking for completed achievements")
	achievements, err := r.api.AchievementList(ctx, session)
	if err != nil {
		return fmt.Errorf("fetch achievements: %w", err)
	}

	ids := domain.ClaimableAchievements(achievements)
	if len(ids) == 0 {
		r.logger.Warn("no completed achievements found")
		return nil
	}
	r.logger.Info("found completed achievements", "count", len(ids))

	var errs []error
	for _, id := range ids {
		r.logger.Info("claiming achievement", "quest", id)
		if err := r.api.ClaimAchievement(ctx, session, id); err != nil {
			errs = append(errs, fmt.Errorf("claim achievement %d: %w", id, err))
		} else {
			r.metrics.AchievementsClaimed.Inc()
		}

		if err := r.pace(ctx, r.opts.Pacing); err != nil {
			return err
		}
	}

	return errors.Join(errs...)
}

// ClaimSeasonPasses claims every reachable free-tier reward.
func (r *Runner) ClaimSeasonPasses(ctx context.Context, session domain.Session) error {
	r.logger.Info("checking for available season pass")
	passes, err := r.api.SeasonPasses(ctx, session)
	if err != nil {
		return fmt.Errorf("fetch season passes: %w", err)
	}
	if len(passes) == 0 {
		r.logger.Warn("season pass not found")
		return nil
	}

	var errs []error
	for _, pass := range passes {
		r.logger.Info("checking season pass", "season", pass.ID, "step", pass.CurrentStep, "title", pass.Title)

		for _, reward := range pass.ClaimableRewards() {
			r.logger.Info("claiming season pass reward",
				"season", pass.ID,
				"step", reward.Step,
				"reward", fmt.Sprintf("%d %s", reward.Amount, reward.Name),
			)
			if err := r.api.ClaimSeasonPass(ctx, session, pass.ID, domain.RewardTierFree, reward.Step); err != nil {
				errs = append(errs, fmt.Errorf("claim season %d step %d: %w", pass.ID, reward.Step, err))
			} else {
				r.metrics.RewardsClaimed.Inc()
			}

			if err := r.pace(ctx, r.opts.Pacing); err != nil {
				return err
			}
		}
	}

	return errors.Join(errs...)
}
