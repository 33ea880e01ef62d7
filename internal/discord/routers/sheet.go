package routers

import (
	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/builders"
	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/core"
	"github.com/KirkDiggler/dnd-character-sheet/internal/discord/middleware"
	"github.com/KirkDiggler/dnd-character-sheet/internal/domain/shared"
	"github.com/KirkDiggler/dnd-character-sheet/internal/services/sheet"
	"github.com/bwmarrin/discordgo"
)

// SheetDomain is both the slash command name and the custom ID prefix
const SheetDomain = "sheet"

const (
	minDifficulty = 1
	maxDifficulty = 40
)

// SheetRouter handles /sheet and every component on a sheet message
type SheetRouter struct {
	router    *core.Router
	service   sheet.Service
	idBuilder *core.CustomIDBuilder
}

type SheetRouterConfig struct {
	Pipeline *core.Pipeline
	Service  sheet.Service
}

func NewSheetRouter(cfg *SheetRouterConfig) *SheetRouter {
	if cfg == nil {
		panic("config cannot be nil")
	}
	if cfg.Service == nil {
		panic("sheet service is required")
	}

	router := core.NewRouter(SheetDomain, cfg.Pipeline)
	sr := &SheetRouter{
		router:    router,
		service:   cfg.Service,
		idBuilder: router.CustomIDs(),
	}

	router.Use(middleware.AuthorizationMiddleware(&middleware.AuthConfig{
		Checkers: []middleware.AuthChecker{middleware.ComponentOwner()},
	}))

	sr.registerRoutes()
	router.Register()

	return sr
}

func (r *SheetRouter) registerRoutes() {
	r.router.SubcommandFunc("show", r.handleShow)
	r.router.SubcommandFunc("check", r.handleCheck)
	r.router.SubcommandFunc("reload", r.handleReloadCommand)

	r.router.ComponentFunc(builders.ActionAttributeSelect, r.handleAttributeSelect)
	r.router.ComponentFunc(builders.ActionAttributeDec, r.attributeStep(-1))
	r.router.ComponentFunc(builders.ActionAttributeInc, r.attributeStep(1))
	r.router.ComponentFunc(builders.ActionSkillSelect, r.handleSkillSelect)
	r.router.ComponentFunc(builders.ActionSkillDec, r.skillStep(-1))
	r.router.ComponentFunc(builders.ActionSkillInc, r.skillStep(1))
	r.router.ComponentFunc(builders.ActionRoll, r.handleRoll)
	r.router.ComponentFunc(builders.ActionClasses, r.handleClasses)
	r.router.ComponentFunc(builders.ActionClassSelect, r.handleClassSelect)
	r.router.ComponentFunc(builders.ActionSave, r.handleSave)
	r.router.ComponentFunc(builders.ActionReload, r.handleReloadComponent)
	r.router.ComponentFunc(builders.ActionRefresh, r.handleRefresh)
}

// Handler exposes the built routes, mainly for tests
func (r *SheetRouter) Handler() core.Handler {
	return r.router.Build()
}

// SheetCommand is the application command definition registered with Discord
func SheetCommand() *discordgo.ApplicationCommand {
	minDC := float64(minDifficulty)
	return &discordgo.ApplicationCommand{
		Name:        SheetDomain,
		Description: "View and edit your character sheet",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Name:        "show",
				Description: "Open your character sheet",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
			{
				Name:        "check",
				Description: "Roll a skill check",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Options: []*discordgo.ApplicationCommandOption{
					{
						Name:        "skill",
						Description: "Skill to check (defaults to the selected one)",
						Type:        discordgo.ApplicationCommandOptionString,
					},
					{
						Name:        "dc",
						Description: "Difficulty class",
						Type:        discordgo.ApplicationCommandOptionInteger,
						MinValue:    &minDC,
						MaxValue:    maxDifficulty,
					},
				},
			},
			{
				Name:        "reload",
				Description: "Fetch your sheet from the character store again",
				Type:        discordgo.ApplicationCommandOptionSubCommand,
			},
		},
	}
}

func (r *SheetRouter) sheetResponse(view *sheet.View) *core.Response {
	return &core.Response{
		Embeds:     []*discordgo.MessageEmbed{builders.SheetEmbed(view)},
		Components: builders.SheetComponents(r.idBuilder, view),
		Ephemeral:  true,
	}
}

func (r *SheetRouter) sheetUpdate(view *sheet.View) *core.HandlerResult {
	return &core.HandlerResult{Response: r.sheetResponse(view).InPlace()}
}

// owner is the sheet a component acts on, taken from the custom ID target
func owner(ctx *core.InteractionContext) (*core.CustomID, error) {
	customID, err := core.ParseCustomID(ctx.ComponentID())
	if err != nil {
		return nil, core.NewValidationError("That button is no longer valid.")
	}
	if customID.Target == "" {
		return nil, core.NewValidationError("That button is missing its sheet.")
	}
	return customID, nil
}

func (r *SheetRouter) handleShow(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	view, err := r.service.Open(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}
	return &core.HandlerResult{Response: r.sheetResponse(view)}, nil
}

func (r *SheetRouter) handleCheck(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	if skill := ctx.StringOption("skill"); skill != "" {
		if _, err := r.service.SelectSkill(ctx.Context, ctx.UserID, skill); err != nil {
			return nil, err
		}
	}
	if ctx.HasOption("dc") {
		if _, err := r.service.SetDifficulty(ctx.Context, ctx.UserID, ctx.IntOption("dc")); err != nil {
			return nil, err
		}
	}

	view, err := r.service.Open(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}
	if view.Check.SelectedSkill == "" {
		return nil, core.NewValidationError("Pick a skill first, e.g. `/sheet check skill:Arcana dc:12`.")
	}

	view, err = r.service.RollCheck(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}

	response := r.sheetResponse(view)
	response.Content = builders.CheckResultLine(view.Check.Last)
	return &core.HandlerResult{Response: response}, nil
}

func (r *SheetRouter) handleReloadCommand(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	view, err := r.service.Reload(ctx.Context, ctx.UserID)
	if err != nil {
		return nil, err
	}
	response := r.sheetResponse(view)
	response.Content = reloadNote(view)
	return &core.HandlerResult{Response: response}, nil
}

func reloadNote(view *sheet.View) string {
	if view.Source == sheet.SourceDefault {
		return "🔄 Nothing saved yet, the sheet was reset to defaults."
	}
	return "🔄 Reloaded from the character store."
}

func (r *SheetRouter) handleAttributeSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	attr, err := shared.ParseAttribute(ctx.FirstValue())
	if err != nil {
		return nil, core.NewValidationError("Pick one of the six attributes.")
	}

	view, err := r.service.FocusAttribute(ctx.Context, customID.Target, attr)
	if err != nil {
		return nil, err
	}
	return r.sheetUpdate(view), nil
}

// attributeStep handles the -/+ buttons; a rejected step re-renders the sheet unchanged
func (r *SheetRouter) attributeStep(delta int) core.HandlerFunc {
	return func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		customID, err := owner(ctx)
		if err != nil {
			return nil, err
		}
		attr, err := shared.ParseAttribute(customID.Arg(0))
		if err != nil {
			return nil, core.NewValidationError("That button is no longer valid.")
		}

		result, err := r.service.AdjustAttribute(ctx.Context, customID.Target, attr, delta)
		if err != nil {
			return nil, err
		}
		return r.sheetUpdate(result.Sheet), nil
	}
}

func (r *SheetRouter) handleSkillSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	skill := ctx.FirstValue()
	if skill == "" {
		return nil, core.NewValidationError("Pick a skill.")
	}

	view, err := r.service.SelectSkill(ctx.Context, customID.Target, skill)
	if err != nil {
		return nil, err
	}
	return r.sheetUpdate(view), nil
}

func (r *SheetRouter) skillStep(delta int) core.HandlerFunc {
	return func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
		customID, err := owner(ctx)
		if err != nil {
			return nil, err
		}
		skill := customID.Arg(0)
		if skill == "" {
			return nil, core.NewValidationError("Pick a skill first.")
		}

		result, err := r.service.AdjustSkill(ctx.Context, customID.Target, skill, delta)
		if err != nil {
			return nil, err
		}
		return r.sheetUpdate(result.Sheet), nil
	}
}

func (r *SheetRouter) handleRoll(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	view, err := r.service.RollCheck(ctx.Context, customID.Target)
	if err != nil {
		return nil, err
	}

	result := r.sheetUpdate(view)
	result.Response.Content = builders.CheckResultLine(view.Check.Last)
	return result, nil
}

func (r *SheetRouter) classResponse(ctx *core.InteractionContext, ownerID, className string) (*core.HandlerResult, error) {
	view, err := r.service.Open(ctx.Context, ownerID)
	if err != nil {
		return nil, err
	}
	if className == "" {
		if len(view.Classes) == 0 {
			return nil, core.NewNotFoundError("Class")
		}
		className = view.Classes[0].Name
	}

	classView, err := r.service.ClassRequirements(ctx.Context, ownerID, className)
	if err != nil {
		return nil, err
	}

	return &core.HandlerResult{
		Response: &core.Response{
			Embeds:     []*discordgo.MessageEmbed{builders.ClassEmbed(classView)},
			Components: builders.ClassComponents(r.idBuilder, ownerID, classView.Name, view.Classes),
			Ephemeral:  true,
			Update:     true,
		},
	}, nil
}

func (r *SheetRouter) handleClasses(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	return r.classResponse(ctx, customID.Target, "")
}

func (r *SheetRouter) handleClassSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	className := ctx.FirstValue()
	if className == "" {
		return nil, core.NewValidationError("Pick a class.")
	}
	return r.classResponse(ctx, customID.Target, className)
}

// handleSave answers with a separate notification so the sheet message stays as is
func (r *SheetRouter) handleSave(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.service.Save(ctx.Context, customID.Target); err != nil {
		return nil, err
	}

	embed := builders.NoticeEmbed("✅ Sheet saved", "Your attributes and skills were stored.", builders.ColorSuccess)
	return &core.HandlerResult{
		Response: core.ReplyEmbeds(embed).Private(),
	}, nil
}

func (r *SheetRouter) handleReloadComponent(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	view, err := r.service.Reload(ctx.Context, customID.Target)
	if err != nil {
		return nil, err
	}

	result := r.sheetUpdate(view)
	result.Response.Content = reloadNote(view)
	return result, nil
}

func (r *SheetRouter) handleRefresh(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	customID, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	view, err := r.service.Open(ctx.Context, customID.Target)
	if err != nil {
		return nil, err
	}
	return r.sheetUpdate(view), nil
}
