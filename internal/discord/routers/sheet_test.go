package routers

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/builders"
	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/core"
	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/middleware"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/character"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	sheeterr "github.com/KirkDiggler/dnd-character-sheet/internal/errors"
	"github.com/KirkDiggler/dnd-character-sheet/internal/services/sheet"
	mocksheet "github.com/KirkDiggler/dnd-character-sheet/internal/services/sheet/mock"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const ownerID = "111222333"

type SheetRouterTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	service   *mocksheet.MockService
	pipeline  *core.Pipeline
	responder *core.MockResponder
}

func (s *SheetRouterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocksheet.NewMockService(s.ctrl)
	s.pipeline = core.NewPipeline(nil)
	s.pipeline.Use(middleware.ErrorMiddleware(nil))
	s.responder = core.NewMockResponder()

	NewSheetRouter(&SheetRouterConfig{
		Pipeline: s.pipeline,
		Service:  s.service,
	})
}

func (s *SheetRouterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SheetRouterTestSuite) dispatch(ctx *core.TestInteractionContext) *core.Response {
	s.Require().NoError(s.pipeline.Dispatch(ctx.InteractionContext, s.responder))
	response := s.responder.LastResponse()
	s.Require().NotNil(response)
	return response
}

func (s *SheetRouterTestSuite) command(sub string) *core.TestInteractionContext {
	return core.NewTestInteractionContext().WithUserID(ownerID).AsCommand(SheetDomain, sub)
}

func (s *SheetRouterTestSuite) component(customID string, values ...string) *core.TestInteractionContext {
	return core.NewTestInteractionContext().WithUserID(ownerID).AsComponent(customID, values...)
}

func view() *sheet.View {
	return &sheet.View{
		OwnerID: ownerID,
		Source:  sheet.SourceGateway,
		Attributes: []sheet.AttributeView{
			{Attribute: shared.AttributeStrength, Score: 10},
		},
		AttributeTotal: 60,
		AttributeMax:   70,
		Skills: []sheet.SkillView{
			{Name: "Arcana", Attribute: shared.AttributeIntelligence},
		},
		SkillPoints: sheet.SkillPoints{Available: 10, Remaining: 10},
		Classes: []sheet.ClassSummary{
			{Name: "Barbarian"},
			{Name: "Wizard"},
		},
		Check: sheet.CheckView{Difficulty: character.DefaultDifficulty},
	}
}

func (s *SheetRouterTestSuite) TestShow() {
	s.service.EXPECT().Open(gomock.Any(), ownerID).Return(view(), nil)

	response := s.dispatch(s.command("show"))

	s.True(response.Ephemeral)
	s.False(response.Update)
	s.Require().Len(response.Embeds, 1)
	s.Equal("📜 Character Sheet", response.Embeds[0].Title)
	s.Len(response.Components, 5)
}

func (s *SheetRouterTestSuite) TestShow_ServiceError() {
	s.service.EXPECT().Open(gomock.Any(), ownerID).Return(nil, sheeterr.InvalidArgument("owner ID is required"))

	response := s.dispatch(s.command("show"))

	s.True(response.Ephemeral)
	s.Equal("❌ owner ID is required", response.Content)
}

func (s *SheetRouterTestSuite) TestCheck_WithSkillAndDC() {
	rolled := view()
	rolled.Check = sheet.CheckView{
		SelectedSkill: "Arcana",
		Difficulty:    18,
		Last: &character.CheckResult{
			Skill:      "Arcana",
			Attribute:  shared.AttributeIntelligence,
			Difficulty: 18,
			Roll:       15,
			Rank:       2,
			Total:      19,
			Success:    true,
		},
	}

	gomock.InOrder(
		s.service.EXPECT().SelectSkill(gomock.Any(), ownerID, "arcana").Return(view(), nil),
		s.service.EXPECT().SetDifficulty(gomock.Any(), ownerID, 18).Return(view(), nil),
		s.service.EXPECT().Open(gomock.Any(), ownerID).Return(rolled, nil),
		s.service.EXPECT().RollCheck(gomock.Any(), ownerID).Return(rolled, nil),
	)

	ctx := s.command("check").WithOption("skill", "arcana").WithOption("dc", float64(18))
	response := s.dispatch(ctx)

	s.Contains(response.Content, "= **19** vs DC 18: ✅ Success")
	s.Len(response.Embeds, 1)
}

func (s *SheetRouterTestSuite) TestCheck_NoSkillSelected() {
	s.service.EXPECT().Open(gomock.Any(), ownerID).Return(view(), nil)

	response := s.dispatch(s.command("check"))

	s.True(response.Ephemeral)
	s.Contains(response.Content, "Pick a skill first")
}

func (s *SheetRouterTestSuite) TestCheck_UnknownSkill() {
	s.service.EXPECT().SelectSkill(gomock.Any(), ownerID, "Basket Weaving").
		Return(nil, sheeterr.InvalidArgumentf("unknown skill %q", "Basket Weaving"))

	response := s.dispatch(s.command("check").WithOption("skill", "Basket Weaving"))

	s.Equal(`❌ unknown skill "Basket Weaving"`, response.Content)
}

func (s *SheetRouterTestSuite) TestReloadCommand() {
	reloaded := view()
	reloaded.Source = sheet.SourceDefault
	s.service.EXPECT().Reload(gomock.Any(), ownerID).Return(reloaded, nil)

	response := s.dispatch(s.command("reload"))

	s.Equal("🔄 Nothing saved yet, the sheet was reset to defaults.", response.Content)
}

func (s *SheetRouterTestSuite) TestAttributeSelect() {
	s.service.EXPECT().FocusAttribute(gomock.Any(), ownerID, shared.AttributeWisdom).Return(view(), nil)

	response := s.dispatch(s.component("sheet:attr_select:"+ownerID, "Wisdom"))

	s.True(response.Update)
}

func (s *SheetRouterTestSuite) TestAttributeSteps() {
	s.service.EXPECT().AdjustAttribute(gomock.Any(), ownerID, shared.AttributeStrength, 1).
		Return(&sheet.AdjustResult{Applied: true, Sheet: view()}, nil)
	response := s.dispatch(s.component("sheet:attr_inc:" + ownerID + ":Strength"))
	s.True(response.Update)

	s.service.EXPECT().AdjustAttribute(gomock.Any(), ownerID, shared.AttributeStrength, -1).
		Return(&sheet.AdjustResult{Applied: false, Sheet: view()}, nil)
	response = s.dispatch(s.component("sheet:attr_dec:" + ownerID + ":Strength"))
	s.True(response.Update, "rejected steps re-render without an error")
	s.Empty(response.Content)
}

func (s *SheetRouterTestSuite) TestAttributeStep_BadArg() {
	response := s.dispatch(s.component("sheet:attr_inc:" + ownerID + ":Luck"))

	s.True(response.Ephemeral)
	s.Equal("That button is no longer valid.", response.Content)
}

func (s *SheetRouterTestSuite) TestSkillSelectAndSteps() {
	s.service.EXPECT().SelectSkill(gomock.Any(), ownerID, "Arcana").Return(view(), nil)
	s.True(s.dispatch(s.component("sheet:skill_select:"+ownerID, "Arcana")).Update)

	s.service.EXPECT().AdjustSkill(gomock.Any(), ownerID, "Arcana", 1).
		Return(&sheet.AdjustResult{Applied: true, Sheet: view()}, nil)
	s.True(s.dispatch(s.component("sheet:skill_inc:" + ownerID + ":Arcana")).Update)

	s.service.EXPECT().AdjustSkill(gomock.Any(), ownerID, "Arcana", -1).
		Return(&sheet.AdjustResult{Applied: false, Sheet: view()}, nil)
	s.True(s.dispatch(s.component("sheet:skill_dec:" + ownerID + ":Arcana")).Update)
}

func (s *SheetRouterTestSuite) TestSkillStep_WithoutSkill() {
	response := s.dispatch(s.component("sheet:skill_inc:" + ownerID))

	s.Equal("Pick a skill first.", response.Content)
}

func (s *SheetRouterTestSuite) TestRoll() {
	rolled := view()
	rolled.Check.SelectedSkill = "Arcana"
	rolled.Check.Last = &character.CheckResult{
		Skill:      "Arcana",
		Attribute:  shared.AttributeIntelligence,
		Difficulty: 10,
		Roll:       20,
		Total:      20,
		Success:    true,
		Natural20:  true,
	}
	s.service.EXPECT().RollCheck(gomock.Any(), ownerID).Return(rolled, nil)

	response := s.dispatch(s.component("sheet:roll:" + ownerID))

	s.True(response.Update)
	s.Contains(response.Content, "(natural 20!)")
}

func (s *SheetRouterTestSuite) TestClasses() {
	s.service.EXPECT().Open(gomock.Any(), ownerID).Return(view(), nil)
	s.service.EXPECT().ClassRequirements(gomock.Any(), ownerID, "Barbarian").Return(&sheet.ClassView{
		Name: "Barbarian",
		Requirements: []sheet.RequirementView{
			{Attribute: shared.AttributeStrength, Minimum: 14, Score: 10},
		},
	}, nil)

	response := s.dispatch(s.component("sheet:classes:" + ownerID))

	s.True(response.Update)
	s.Require().Len(response.Embeds, 1)
	s.Equal("🛡️ Barbarian", response.Embeds[0].Title)
	menu := response.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	s.Equal("sheet:class_select:"+ownerID, menu.CustomID)
}

func (s *SheetRouterTestSuite) TestClassSelect() {
	s.service.EXPECT().Open(gomock.Any(), ownerID).Return(view(), nil)
	s.service.EXPECT().ClassRequirements(gomock.Any(), ownerID, "Wizard").Return(&sheet.ClassView{
		Name:     "Wizard",
		Eligible: true,
	}, nil)

	response := s.dispatch(s.component("sheet:class_select:"+ownerID, "Wizard"))

	s.Equal("🛡️ Wizard", response.Embeds[0].Title)
	s.Equal(builders.ColorSuccess, response.Embeds[0].Color)
}

func (s *SheetRouterTestSuite) TestSave() {
	s.service.EXPECT().Save(gomock.Any(), ownerID).Return(nil)

	response := s.dispatch(s.component("sheet:save:" + ownerID))

	s.True(response.Ephemeral)
	s.False(response.Update, "save notifies without touching the sheet message")
	s.Equal("✅ Sheet saved", response.Embeds[0].Title)
}

func (s *SheetRouterTestSuite) TestSave_Failure() {
	s.service.EXPECT().Save(gomock.Any(), ownerID).
		Return(sheeterr.Unavailable(errors.New("HTTP 500"), "failed to save character sheet"))

	response := s.dispatch(s.component("sheet:save:" + ownerID))

	s.True(response.Ephemeral)
	s.Contains(response.Content, "could not be reached")
}

func (s *SheetRouterTestSuite) TestReloadAndRefreshComponents() {
	s.service.EXPECT().Reload(gomock.Any(), ownerID).Return(view(), nil)
	response := s.dispatch(s.component("sheet:reload:" + ownerID))
	s.True(response.Update)
	s.Equal("🔄 Reloaded from the character store.", response.Content)

	s.service.EXPECT().Open(gomock.Any(), ownerID).Return(view(), nil)
	response = s.dispatch(s.component("sheet:refresh:" + ownerID))
	s.True(response.Update)
}

func (s *SheetRouterTestSuite) TestComponentFromAnotherUser() {
	ctx := core.NewTestInteractionContext().WithUserID("999").AsComponent("sheet:attr_inc:" + ownerID + ":Strength")

	response := s.dispatch(ctx)

	s.True(response.Ephemeral)
	s.Contains(response.Content, "belongs to someone else")
}

func (s *SheetRouterTestSuite) TestUsesInteractionContext() {
	type ctxKey struct{}
	base := context.WithValue(context.Background(), ctxKey{}, "marker")

	s.service.EXPECT().Open(gomock.Any(), ownerID).DoAndReturn(func(ctx context.Context, _ string) (*sheet.View, error) {
		s.Equal("marker", ctx.Value(ctxKey{}))
		return view(), nil
	})

	s.dispatch(s.command("show").WithContext(base))
}

func TestSheetRouterSuite(t *testing.T) {
	suite.Run(t, new(SheetRouterTestSuite))
}

func TestSheetCommand(t *testing.T) {
	cmd := SheetCommand()

	names := make([]string, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		names = append(names, opt.Name)
	}

	assert.Equal(t, SheetDomain, cmd.Name)
	assert.Equal(t, []string{"show", "check", "reload"}, names)
	assert.Len(t, cmd.Options[1].Options, 2)
}
