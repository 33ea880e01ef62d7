package sheet

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/dnd-character-sheet/internal/dice"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	sheeterr "github.com/KirkDiggler/dnd-character-sheet/internal/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// entry is the per-owner state held by the service
type entry struct {
	sheet   *character.Sheet
	focused shared.Attribute
	source  Source
}

type service struct {
	gateway  Gateway
	roller   dice.Roller
	rulebook *rulebook.Rulebook
	logger   *zap.Logger

	// mu guards sheets and every ledger inside them
	mu     sync.Mutex
	sheets map[string]*entry

	loads singleflight.Group
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Gateway  Gateway            // Required
	Roller   dice.Roller        // Optional, defaults to a clock-seeded roller
	Rulebook *rulebook.Rulebook // Optional, defaults to rulebook.Default()
	Logger   *zap.Logger
}

// NewService creates a new sheet service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Gateway == nil {
		panic("gateway is required")
	}

	svc := &service{
		gateway:  cfg.Gateway,
		roller:   cfg.Roller,
		rulebook: cfg.Rulebook,
		logger:   cfg.Logger,
		sheets:   make(map[string]*entry),
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.rulebook == nil {
		svc.rulebook = rulebook.Default()
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}
	svc.logger = svc.logger.Named("sheet")

	return svc
}

func (s *service) Rulebook() *rulebook.Rulebook {
	return s.rulebook
}

// load fetches a snapshot and never fails: anything the gateway cannot
// deliver becomes the default sheet.
func (s *service) load(ctx context.Context, ownerID string) (*character.Snapshot, Source) {
	snapshot, err := s.gateway.Load(ctx, ownerID)
	switch {
	case err == nil && snapshot != nil:
		return snapshot, SourceGateway
	case sheeterr.IsNotFound(err):
		s.logger.Info("no stored character, using defaults", zap.String("owner_id", ownerID))
	case err != nil:
		s.logger.Warn("failed to load character, using defaults",
			zap.String("owner_id", ownerID),
			zap.String("code", string(sheeterr.GetCode(err))),
			zap.Error(err),
		)
	default:
		s.logger.Warn("gateway returned no character, using defaults", zap.String("owner_id", ownerID))
	}
	return character.DefaultSnapshot(s.rulebook), SourceDefault
}

// ensure makes sure the owner has a sheet. Concurrent first opens share one
// gateway load.
func (s *service) ensure(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return sheeterr.InvalidArgument("owner ID is required")
	}

	s.mu.Lock()
	_, ok := s.sheets[ownerID]
	s.mu.Unlock()
	if ok {
		return nil
	}

	_, _, _ = s.loads.Do(ownerID, func() (any, error) {
		// A previous flight may have finished between the check above and now
		s.mu.Lock()
		_, exists := s.sheets[ownerID]
		s.mu.Unlock()
		if exists {
			return nil, nil
		}

		// The flight outlives the caller that started it, and a cancelled
		// request must not cache defaults over stored data
		snapshot, source := s.load(context.WithoutCancel(ctx), ownerID)

		s.mu.Lock()
		defer s.mu.Unlock()
		if _, exists := s.sheets[ownerID]; exists {
			return nil, nil
		}

		sheet := character.NewSheet(s.rulebook)
		sheet.Load(snapshot)
		s.sheets[ownerID] = &entry{
			sheet:   sheet,
			focused: shared.Attributes[0],
			source:  source,
		}
		return nil, nil
	})
	return nil
}

// withSheet opens the owner's sheet and runs fn under the service lock
func (s *service) withSheet(ctx context.Context, ownerID string, fn func(e *entry) error) (*View, error) {
	if err := s.ensure(ctx, ownerID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.sheets[ownerID]
	if e == nil {
		return nil, sheeterr.Internalf("sheet for owner '%s' missing after open", ownerID)
	}
	if fn != nil {
		if err := fn(e); err != nil {
			return nil, err
		}
	}
	return buildView(ownerID, e), nil
}

func (s *service) Open(ctx context.Context, ownerID string) (*View, error) {
	return s.withSheet(ctx, ownerID, nil)
}

func (s *service) Reload(ctx context.Context, ownerID string) (*View, error) {
	if ownerID == "" {
		return nil, sheeterr.InvalidArgument("owner ID is required")
	}

	s.mu.Lock()
	_, opened := s.sheets[ownerID]
	s.mu.Unlock()
	if !opened {
		// First open already loads fresh
		return s.Open(ctx, ownerID)
	}

	snapshot, source := s.load(ctx, ownerID)

	return s.withSheet(ctx, ownerID, func(e *entry) error {
		e.sheet.Load(snapshot)
		e.source = source
		return nil
	})
}

func (s *service) AdjustAttribute(ctx context.Context, ownerID string, attr shared.Attribute, delta int) (*AdjustResult, error) {
	if !attr.IsValid() {
		return nil, sheeterr.InvalidArgumentf("unknown attribute '%s'", attr).
			WithMeta("attribute", string(attr))
	}

	applied := false
	view, err := s.withSheet(ctx, ownerID, func(e *entry) error {
		applied = e.sheet.Attributes.Adjust(attr, delta)
		e.focused = attr
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !applied {
		s.logger.Debug("attribute adjustment rejected",
			zap.String("owner_id", ownerID),
			zap.String("attribute", string(attr)),
			zap.Int("delta", delta),
			zap.Int("total", view.AttributeTotal),
		)
	}
	return &AdjustResult{Applied: applied, Sheet: view}, nil
}

func (s *service) FocusAttribute(ctx context.Context, ownerID string, attr shared.Attribute) (*View, error) {
	if !attr.IsValid() {
		return nil, sheeterr.InvalidArgumentf("unknown attribute '%s'", attr).
			WithMeta("attribute", string(attr))
	}

	return s.withSheet(ctx, ownerID, func(e *entry) error {
		e.focused = attr
		return nil
	})
}

func (s *service) AdjustSkill(ctx context.Context, ownerID, skillName string, delta int) (*AdjustResult, error) {
	skill, ok := s.rulebook.LookupSkill(skillName)
	if !ok {
		return nil, sheeterr.InvalidArgumentf("unknown skill '%s'", skillName).
			WithMeta("skill", skillName)
	}

	applied := false
	view, err := s.withSheet(ctx, ownerID, func(e *entry) error {
		applied = e.sheet.Skills.Adjust(skill.Name, delta)
		e.sheet.SelectSkill(skill.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !applied {
		s.logger.Debug("skill adjustment rejected",
			zap.String("owner_id", ownerID),
			zap.String("skill", skill.Name),
			zap.Int("delta", delta),
			zap.Int("remaining", view.SkillPoints.Remaining),
		)
	}
	return &AdjustResult{Applied: applied, Sheet: view}, nil
}

func (s *service) SelectSkill(ctx context.Context, ownerID, skillName string) (*View, error) {
	if _, ok := s.rulebook.LookupSkill(skillName); !ok {
		return nil, sheeterr.InvalidArgumentf("unknown skill '%s'", skillName).
			WithMeta("skill", skillName)
	}

	return s.withSheet(ctx, ownerID, func(e *entry) error {
		e.sheet.SelectSkill(skillName)
		return nil
	})
}

func (s *service) SetDifficulty(ctx context.Context, ownerID string, difficulty int) (*View, error) {
	return s.withSheet(ctx, ownerID, func(e *entry) error {
		e.sheet.SetDifficulty(difficulty)
		return nil
	})
}

func (s *service) RollCheck(ctx context.Context, ownerID string) (*View, error) {
	return s.withSheet(ctx, ownerID, func(e *entry) error {
		result, err := e.sheet.PerformCheck(s.roller)
		if errors.Is(err, character.ErrUnknownSkill) {
			return sheeterr.WrapWithCode(err, sheeterr.CodeInvalidArgument, "cannot roll check")
		}
		if err != nil {
			return sheeterr.WrapWithCode(err, sheeterr.CodeInternal, "failed to roll check")
		}

		s.logger.Info("skill check",
			zap.String("owner_id", ownerID),
			zap.String("skill", result.Skill),
			zap.Int("roll", result.Roll),
			zap.Int("total", result.Total),
			zap.Int("difficulty", result.Difficulty),
			zap.Bool("success", result.Success),
		)
		return nil
	})
}

func (s *service) Save(ctx context.Context, ownerID string) error {
	if err := s.ensure(ctx, ownerID); err != nil {
		return err
	}

	s.mu.Lock()
	e := s.sheets[ownerID]
	var snapshot *character.Snapshot
	if e != nil {
		snapshot = e.sheet.Snapshot()
	}
	s.mu.Unlock()
	if snapshot == nil {
		return sheeterr.Internalf("sheet for owner '%s' missing after open", ownerID)
	}

	if err := s.gateway.Save(ctx, ownerID, snapshot); err != nil {
		s.logger.Warn("failed to save character", zap.String("owner_id", ownerID), zap.Error(err))
		if sheeterr.GetCode(err) == sheeterr.CodeUnknown {
			return sheeterr.Unavailable(err, "failed to save character").WithMeta("owner_id", ownerID)
		}
		return sheeterr.Wrap(err, "failed to save character")
	}

	s.logger.Info("character saved", zap.String("owner_id", ownerID))
	return nil
}

func (s *service) ClassRequirements(ctx context.Context, ownerID, className string) (*ClassView, error) {
	class, ok := s.rulebook.Class(className)
	if !ok {
		return nil, sheeterr.InvalidArgumentf("unknown class '%s'", className).
			WithMeta("class", className)
	}

	var classView *ClassView
	_, err := s.withSheet(ctx, ownerID, func(e *entry) error {
		classView = buildClassView(class, e.sheet.Attributes.Scores())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return classView, nil
}
